// FILE: internal/controller/subscription_controller.go
// Vendor subscription lifecycle and admin payment review
package controller

import (
	"strings"

	"vendor-marketplace-be/internal/dto"
	"vendor-marketplace-be/internal/entity"
	"vendor-marketplace-be/internal/pkg/apperror"
	"vendor-marketplace-be/internal/pkg/serverutils"
	"vendor-marketplace-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISubscriptionController interface {
	RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler)
}

type subscriptionController struct {
	service       service.ISubscriptionService
	planService   service.PlanService
	uploadLimiter fiber.Handler
}

func NewSubscriptionController(svc service.ISubscriptionService, planService service.PlanService, uploadLimiter fiber.Handler) ISubscriptionController {
	return &subscriptionController{
		service:       svc,
		planService:   planService,
		uploadLimiter: uploadLimiter,
	}
}

func (c *subscriptionController) RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler) {
	vendorOnly := serverutils.RequireRole(string(entity.UserRoleVendor))
	adminOnly := serverutils.RequireRole(string(entity.UserRoleAdmin))

	h := api.Group("/subscriptions")

	// Public
	h.Get("/plans", c.ListPlans)

	// Vendor
	h.Post("/", jwtMiddleware, vendorOnly, c.uploadLimiter, c.Create)
	h.Get("/vendor", jwtMiddleware, vendorOnly, c.GetVendorSubscription)
	h.Put("/decrease-booking", jwtMiddleware, vendorOnly, c.DecrementQuota)
	h.Put("/:id/payment", jwtMiddleware, vendorOnly, c.uploadLimiter, c.RecordPaymentProof)

	// Admin
	h.Get("/", jwtMiddleware, adminOnly, c.ListSubscriptions)
	h.Get("/admin", jwtMiddleware, adminOnly, c.ListSubscriptions)
	h.Get("/:id", jwtMiddleware, adminOnly, c.GetSubscription)
	h.Put("/:id/verify", jwtMiddleware, adminOnly, c.Verify)
}

func (c *subscriptionController) ListPlans(ctx *fiber.Ctx) error {
	plans, err := c.planService.ListPlans(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Plans retrieved", plans))
}

// Create expects multipart/form-data with planId, services, transactionId and a
// screenshot file holding the payment proof.
func (c *subscriptionController) Create(ctx *fiber.Ctx) error {
	vendorId, err := serverutils.UserIDFromCtx(ctx)
	if err != nil {
		return err
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		return apperror.InvalidInput("multipart form expected")
	}

	planId, err := uuid.Parse(strings.TrimSpace(ctx.FormValue("planId")))
	if err != nil {
		return apperror.InvalidInput("invalid planId format")
	}
	serviceIds, err := parseServiceIDs(form.Value)
	if err != nil {
		return err
	}

	fileHeader, err := ctx.FormFile("screenshot")
	if err != nil {
		return apperror.InvalidInput("payment screenshot is required")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return apperror.InvalidInput("unable to read payment screenshot")
	}
	defer file.Close()

	res, err := c.service.Create(ctx.UserContext(), &dto.CreateSubscriptionRequest{
		VendorId:      vendorId,
		PlanId:        planId,
		ServiceIds:    serviceIds,
		TransactionId: ctx.FormValue("transactionId"),
		PaymentProof:  file,
	})
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Subscription created, awaiting payment verification", res))
}

func (c *subscriptionController) RecordPaymentProof(ctx *fiber.Ctx) error {
	vendorId, err := serverutils.UserIDFromCtx(ctx)
	if err != nil {
		return err
	}
	subscriptionId, err := parseIDParam(ctx, "id")
	if err != nil {
		return err
	}

	fileHeader, err := ctx.FormFile("screenshot")
	if err != nil {
		return apperror.InvalidInput("payment screenshot is required")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return apperror.InvalidInput("unable to read payment screenshot")
	}
	defer file.Close()

	res, err := c.service.RecordPaymentProof(ctx.UserContext(), &dto.RecordPaymentProofRequest{
		SubscriptionId: subscriptionId,
		VendorId:       vendorId,
		TransactionId:  ctx.FormValue("transactionId"),
		PaymentProof:   file,
	})
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Payment proof updated", res))
}

func (c *subscriptionController) GetVendorSubscription(ctx *fiber.Ctx) error {
	vendorId, err := serverutils.UserIDFromCtx(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetVendorSubscription(ctx.UserContext(), vendorId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Subscription retrieved", res))
}

func (c *subscriptionController) DecrementQuota(ctx *fiber.Ctx) error {
	vendorId, err := serverutils.UserIDFromCtx(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.DecrementQuota(ctx.UserContext(), vendorId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Booking count decreased", res))
}

func (c *subscriptionController) ListSubscriptions(ctx *fiber.Ctx) error {
	filter := dto.SubscriptionListFilter{
		Status:        strings.TrimSpace(ctx.Query("status")),
		PaymentStatus: strings.TrimSpace(ctx.Query("paymentStatus")),
		Search:        ctx.Query("search"),
		Page:          queryInt(ctx, "page", 1),
		Limit:         queryInt(ctx, "limit", 20),
	}
	if raw := ctx.Query("plan"); raw != "" {
		planId, err := uuid.Parse(raw)
		if err != nil {
			return apperror.InvalidInput("invalid plan format")
		}
		filter.PlanId = &planId
	}

	res, err := c.service.ListSubscriptions(ctx.UserContext(), filter)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Subscriptions retrieved", res))
}

func (c *subscriptionController) GetSubscription(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.GetSubscription(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Subscription retrieved", res))
}

func (c *subscriptionController) Verify(ctx *fiber.Ctx) error {
	adminId, err := serverutils.UserIDFromCtx(ctx)
	if err != nil {
		return err
	}
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.VerifySubscriptionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.InvalidInput("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Verify(ctx.UserContext(), id, req.PaymentStatus, adminId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Subscription verified", res))
}
