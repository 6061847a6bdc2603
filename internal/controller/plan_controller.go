// FILE: internal/controller/plan_controller.go
// Admin maintenance of subscription plans
package controller

import (
	"vendor-marketplace-be/internal/dto"
	"vendor-marketplace-be/internal/entity"
	"vendor-marketplace-be/internal/pkg/apperror"
	"vendor-marketplace-be/internal/pkg/serverutils"
	"vendor-marketplace-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type PlanController interface {
	RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler)
}

type planController struct {
	planService service.PlanService
}

func NewPlanController(planService service.PlanService) PlanController {
	return &planController{
		planService: planService,
	}
}

func (c *planController) RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler) {
	admin := api.Group("/plans", jwtMiddleware, serverutils.RequireRole(string(entity.UserRoleAdmin)))
	admin.Get("/", c.GetAllPlans)
	admin.Post("/", c.CreatePlan)
	admin.Put("/:id", c.UpdatePlan)
	admin.Delete("/:id", c.DeletePlan)
}

// GetAllPlans returns every plan, including inactive ones
// @Summary List all subscription plans
// @Tags Plans
// @Security BearerAuth
// @Produce json
// @Success 200 {object} []dto.AdminPlanResponse
// @Router /api/plans [get]
func (c *planController) GetAllPlans(ctx *fiber.Ctx) error {
	plans, err := c.planService.ListAllPlans(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Plans retrieved", plans))
}

func (c *planController) CreatePlan(ctx *fiber.Ctx) error {
	var req dto.CreatePlanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.InvalidInput("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	plan, err := c.planService.CreatePlan(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Plan created", plan))
}

func (c *planController) UpdatePlan(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdatePlanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.InvalidInput("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	plan, err := c.planService.UpdatePlan(ctx.UserContext(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Plan updated", plan))
}

// DeletePlan deactivates the plan; existing subscriptions keep referencing it.
func (c *planController) DeletePlan(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.planService.DeactivatePlan(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Plan deactivated", nil))
}
