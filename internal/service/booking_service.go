package service

import (
	"context"
	"strings"
	"time"

	"vendor-marketplace-be/internal/dto"
	"vendor-marketplace-be/internal/entity"
	"vendor-marketplace-be/internal/pkg/apperror"
	"vendor-marketplace-be/internal/pkg/logger"
	"vendor-marketplace-be/internal/repository/scope"
	"vendor-marketplace-be/internal/repository/specification"
	"vendor-marketplace-be/internal/repository/unitofwork"
	"vendor-marketplace-be/pkg/events"

	"github.com/google/uuid"
)

type IBookingService interface {
	CreateBooking(ctx context.Context, customerId uuid.UUID, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	TransitionStatus(ctx context.Context, bookingId, vendorId uuid.UUID, req *dto.UpdateBookingStatusRequest) (*dto.BookingStatusResponse, error)
	ListVendorBookings(ctx context.Context, vendorId uuid.UUID, status string) ([]*dto.BookingResponse, error)
	ListCustomerBookings(ctx context.Context, customerId uuid.UUID) ([]*dto.BookingResponse, error)
}

type bookingService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IEventPublisher
	logger     logger.ILogger
	now        func() time.Time
}

func NewBookingService(uowFactory unitofwork.RepositoryFactory, publisher IEventPublisher, log logger.ILogger) IBookingService {
	return &bookingService{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     log,
		now:        time.Now,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, customerId uuid.UUID, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	now := s.now()
	if !req.ScheduledAt.After(now) {
		return nil, apperror.InvalidInput("scheduledAt must be in the future")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	svc, err := uow.ServiceRepository().FindOne(ctx, specification.ByID{ID: req.ServiceId}, specification.ActiveOnly{})
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, apperror.ErrServiceNotFound
	}

	vendor, err := uow.UserRepository().FindOne(ctx,
		specification.ByID{ID: req.VendorId},
		specification.ByRole{Role: string(entity.UserRoleVendor)},
	)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperror.NotFound("vendor not found")
	}

	booking := &entity.Booking{
		CustomerId:  customerId,
		VendorId:    vendor.Id,
		ServiceId:   svc.Id,
		Status:      entity.BookingStatusPending,
		ScheduledAt: req.ScheduledAt,
		Address:     strings.TrimSpace(req.Address),
		Notes:       req.Notes,
		StatusHistory: []entity.BookingStatusChange{{
			Status:    entity.BookingStatusPending,
			Note:      "booking created",
			ChangedBy: customerId,
			ChangedAt: now,
		}},
	}
	if err := uow.BookingRepository().Create(ctx, booking); err != nil {
		return nil, err
	}

	s.logger.Info("BOOKING", "Booking created", map[string]interface{}{
		"booking_id":  booking.Id.String(),
		"customer_id": customerId.String(),
		"vendor_id":   vendor.Id.String(),
	})
	return toBookingResponse(booking), nil
}

// TransitionStatus moves a booking assigned to vendorId into in-progress, completed or
// cancelled. Entering in-progress consumes one booking from the vendor's quota in the
// same transaction as the booking update.
func (s *bookingService) TransitionStatus(ctx context.Context, bookingId, vendorId uuid.UUID, req *dto.UpdateBookingStatusRequest) (*dto.BookingStatusResponse, error) {
	newStatus := strings.ToLower(strings.TrimSpace(req.Status))
	if !entity.IsVendorTransitionStatus(newStatus) {
		return nil, apperror.InvalidInput("status must be one of in-progress, completed, cancelled")
	}

	now := s.now()
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	booking, err := uow.BookingRepository().FindOne(ctx, specification.ByID{ID: bookingId}, specification.ForUpdate{})
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperror.ErrBookingNotFound
	}
	if booking.VendorId != vendorId {
		return nil, apperror.ErrNotBookingVendor
	}

	var consumed *entity.VendorSubscription
	if entity.BookingStatus(newStatus) == entity.BookingStatusInProgress && booking.Status != entity.BookingStatusInProgress {
		consumed, err = uow.SubscriptionRepository().ConsumeBooking(ctx, vendorId, now)
		if err != nil {
			s.logger.Warn("BOOKING", "Quota check rejected status change", map[string]interface{}{
				"booking_id": bookingId.String(),
				"vendor_id":  vendorId.String(),
				"error":      err.Error(),
			})
			return nil, err
		}
	}

	previous := booking.Status
	booking.Status = entity.BookingStatus(newStatus)
	booking.StatusHistory = append(booking.StatusHistory, entity.BookingStatusChange{
		Status:    booking.Status,
		Note:      strings.TrimSpace(req.Note),
		ChangedBy: vendorId,
		ChangedAt: now,
	})
	if err := uow.BookingRepository().Update(ctx, booking); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("BOOKING", "Booking status changed", map[string]interface{}{
		"booking_id": booking.Id.String(),
		"from":       string(previous),
		"to":         newStatus,
	})
	s.publisher.Publish(ctx, events.New(events.BookingStatusChanged, map[string]interface{}{
		"bookingId":  booking.Id.String(),
		"vendorId":   booking.VendorId.String(),
		"customerId": booking.CustomerId.String(),
		"from":       string(previous),
		"to":         newStatus,
	}))

	res := &dto.BookingStatusResponse{Booking: *toBookingResponse(booking)}
	if consumed != nil {
		s.publisher.Publish(ctx, events.New(events.BookingQuotaConsumed, subscriptionPayload(consumed)))
		left := consumed.BookingsLeft
		res.BookingsLeft = &left
	}
	return res, nil
}

func (s *bookingService) ListVendorBookings(ctx context.Context, vendorId uuid.UUID, status string) ([]*dto.BookingResponse, error) {
	specs := []specification.Specification{specification.ByVendor{VendorID: vendorId}}
	if status = strings.TrimSpace(status); status != "" {
		if !entity.IsValidBookingStatus(status) {
			return nil, apperror.InvalidInput("invalid status filter")
		}
		specs = append(specs, specification.Filter("status", status))
	}
	return s.list(ctx, specs...)
}

func (s *bookingService) ListCustomerBookings(ctx context.Context, customerId uuid.UUID) ([]*dto.BookingResponse, error) {
	return s.list(ctx, specification.ByCustomer{CustomerID: customerId})
}

func (s *bookingService) list(ctx context.Context, specs ...specification.Specification) ([]*dto.BookingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	specs = append(specs, specification.ScopeFunc(scope.OrderByCreatedDesc))

	bookings, err := uow.BookingRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		res = append(res, toBookingResponse(b))
	}
	return res, nil
}
