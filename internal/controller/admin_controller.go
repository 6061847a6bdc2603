// FILE: internal/controller/admin_controller.go
package controller

import (
	"vendor-marketplace-be/internal/entity"
	"vendor-marketplace-be/internal/pkg/serverutils"
	"vendor-marketplace-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler)
	GetLogs(ctx *fiber.Ctx) error
}

type adminController struct {
	service service.IAdminService
}

func NewAdminController(service service.IAdminService) IAdminController {
	return &adminController{
		service: service,
	}
}

func (c *adminController) RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler) {
	h := api.Group("/admin", jwtMiddleware, serverutils.RequireRole(string(entity.UserRoleAdmin)))
	h.Get("/logs", c.GetLogs)
}

// GetLogs pages through the JSON log file, newest first. ?level=ERROR narrows the result.
func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	page := queryInt(ctx, "page", 1)
	limit := queryInt(ctx, "limit", 20)

	logs, err := c.service.GetLogs(ctx.Query("level"), page, limit)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Logs retrieved", logs))
}
