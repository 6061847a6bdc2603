package controller

import (
	"vendor-marketplace-be/internal/dto"
	"vendor-marketplace-be/internal/entity"
	"vendor-marketplace-be/internal/pkg/apperror"
	"vendor-marketplace-be/internal/pkg/serverutils"
	"vendor-marketplace-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IBookingController interface {
	RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler)
}

type bookingController struct {
	service service.IBookingService
}

func NewBookingController(svc service.IBookingService) IBookingController {
	return &bookingController{service: svc}
}

func (c *bookingController) RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler) {
	vendorOnly := serverutils.RequireRole(string(entity.UserRoleVendor))
	customerOnly := serverutils.RequireRole(string(entity.UserRoleCustomer))

	h := api.Group("/bookings", jwtMiddleware)
	h.Post("/", customerOnly, c.CreateBooking)
	h.Get("/customer", customerOnly, c.ListCustomerBookings)
	h.Get("/vendor", vendorOnly, c.ListVendorBookings)
	h.Put("/:id/vendor-status", vendorOnly, c.UpdateVendorStatus)
}

func (c *bookingController) CreateBooking(ctx *fiber.Ctx) error {
	customerId, err := serverutils.UserIDFromCtx(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateBookingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.InvalidInput("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateBooking(ctx.UserContext(), customerId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Booking created", res))
}

// UpdateVendorStatus moving a booking to in-progress spends one booking from the vendor's plan.
func (c *bookingController) UpdateVendorStatus(ctx *fiber.Ctx) error {
	vendorId, err := serverutils.UserIDFromCtx(ctx)
	if err != nil {
		return err
	}
	bookingId, err := parseIDParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateBookingStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.InvalidInput("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.TransitionStatus(ctx.UserContext(), bookingId, vendorId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Booking status updated", res))
}

func (c *bookingController) ListVendorBookings(ctx *fiber.Ctx) error {
	vendorId, err := serverutils.UserIDFromCtx(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ListVendorBookings(ctx.UserContext(), vendorId, ctx.Query("status"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Bookings retrieved", res))
}

func (c *bookingController) ListCustomerBookings(ctx *fiber.Ctx) error {
	customerId, err := serverutils.UserIDFromCtx(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ListCustomerBookings(ctx.UserContext(), customerId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Bookings retrieved", res))
}
