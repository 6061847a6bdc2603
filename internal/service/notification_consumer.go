package service

import (
	"context"

	"vendor-marketplace-be/internal/entity"
	"vendor-marketplace-be/internal/pkg/logger"
	"vendor-marketplace-be/internal/pkg/mailer"
	"vendor-marketplace-be/internal/repository/specification"
	"vendor-marketplace-be/internal/repository/unitofwork"
	"vendor-marketplace-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

// INotificationConsumer mails vendors when their subscription is activated, rejected or expires.
type INotificationConsumer interface {
	Consume(ctx context.Context) error
}

type notificationConsumer struct {
	subscriber message.Subscriber
	topic      string
	uowFactory unitofwork.RepositoryFactory
	mailer     mailer.IEmailService
	logger     logger.ILogger
}

func NewNotificationConsumer(
	subscriber message.Subscriber,
	topic string,
	uowFactory unitofwork.RepositoryFactory,
	mailService mailer.IEmailService,
	log logger.ILogger,
) INotificationConsumer {
	return &notificationConsumer{
		subscriber: subscriber,
		topic:      topic,
		uowFactory: uowFactory,
		mailer:     mailService,
		logger:     log,
	}
}

func (c *notificationConsumer) Consume(ctx context.Context) error {
	messages, err := c.subscriber.Subscribe(ctx, c.topic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			c.processMessage(ctx, msg)
		}
	}()

	return nil
}

// processMessage always acks: a mail that cannot be sent is logged, not retried.
func (c *notificationConsumer) processMessage(ctx context.Context, msg *message.Message) {
	defer msg.Ack()

	event, err := events.Unmarshal(msg.Payload)
	if err != nil {
		c.logger.Error("NOTIFY", "Failed to decode event", map[string]interface{}{"error": err.Error()})
		return
	}

	var send func(mailer.SubscriptionMail) error
	switch event.Type {
	case events.SubscriptionActivated:
		send = c.mailer.SendSubscriptionActivated
	case events.SubscriptionRejected:
		send = c.mailer.SendSubscriptionRejected
	case events.SubscriptionExpired:
		send = c.mailer.SendSubscriptionExpired
	default:
		return
	}

	mail, err := c.buildMail(ctx, event)
	if err != nil {
		c.logger.Error("NOTIFY", "Failed to load mail recipient", map[string]interface{}{
			"type":  event.Type,
			"error": err.Error(),
		})
		return
	}
	if mail == nil {
		return
	}

	if err := send(*mail); err != nil {
		c.logger.Error("NOTIFY", "Failed to send subscription mail", map[string]interface{}{
			"type":  event.Type,
			"to":    mail.ToEmail,
			"error": err.Error(),
		})
		return
	}

	c.logger.Info("NOTIFY", "Subscription mail sent", map[string]interface{}{
		"type": event.Type,
		"to":   mail.ToEmail,
	})
}

func (c *notificationConsumer) buildMail(ctx context.Context, event events.BaseEvent) (*mailer.SubscriptionMail, error) {
	rawId, _ := event.Data["subscriptionId"].(string)
	subscriptionId, err := uuid.Parse(rawId)
	if err != nil {
		return nil, err
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	sub, err := uow.SubscriptionRepository().FindOneSubscription(ctx, specification.ByID{ID: subscriptionId})
	if err != nil || sub == nil {
		return nil, err
	}
	vendor, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: sub.VendorId})
	if err != nil || vendor == nil || vendor.Email == "" {
		return nil, err
	}

	planName := string(sub.PlanType)
	plan, err := uow.SubscriptionRepository().FindOnePlan(ctx, specification.ByID{ID: sub.PlanId})
	if err != nil {
		return nil, err
	}
	if plan != nil {
		planName = plan.Name
	}

	return &mailer.SubscriptionMail{
		ToEmail:      vendor.Email,
		VendorName:   vendor.Name,
		PlanName:     planName,
		BookingLimit: bookingLimitOrLeft(sub, plan),
		EndDate:      sub.EndDate.Format("02 Jan 2006"),
	}, nil
}

func bookingLimitOrLeft(sub *entity.VendorSubscription, plan *entity.SubscriptionPlan) int {
	if sub.BookingsLeft > 0 {
		return sub.BookingsLeft
	}
	if plan != nil {
		return plan.BookingLimit
	}
	return entity.FallbackBookingLimit(sub.PlanType)
}
