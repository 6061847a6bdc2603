package controller

import (
	"vendor-marketplace-be/internal/dto"
	"vendor-marketplace-be/internal/entity"
	"vendor-marketplace-be/internal/pkg/apperror"
	"vendor-marketplace-be/internal/pkg/serverutils"
	"vendor-marketplace-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler)
}

type catalogController struct {
	service service.ICatalogService
}

func NewCatalogController(svc service.ICatalogService) ICatalogController {
	return &catalogController{service: svc}
}

func (c *catalogController) RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler) {
	h := api.Group("/services")
	h.Get("/", c.ListServices)
	h.Post("/", jwtMiddleware, serverutils.RequireRole(string(entity.UserRoleAdmin)), c.CreateService)
}

func (c *catalogController) ListServices(ctx *fiber.Ctx) error {
	res, err := c.service.ListServices(ctx.UserContext(), ctx.Query("category"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Services retrieved", res))
}

func (c *catalogController) CreateService(ctx *fiber.Ctx) error {
	var req dto.CreateServiceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.InvalidInput("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateService(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Service created", res))
}
