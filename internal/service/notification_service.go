package service

import (
	"context"
	"strings"

	"estate-listing-be/internal/pkg/logger"
	"estate-listing-be/internal/pkg/mailer"
	"estate-listing-be/internal/repository/specification"
	"estate-listing-be/internal/repository/unitofwork"
	"estate-listing-be/pkg/events"
	pkgNats "estate-listing-be/pkg/nats"

	"github.com/google/uuid"
)

// NotificationService turns domain events into submitter emails. It is
// strictly best-effort: a failed email never rolls back the transition
// that caused it.
type NotificationService struct {
	uowFactory unitofwork.RepositoryFactory
	subscriber *pkgNats.Subscriber
	mailer     mailer.IEmailService
	logger     logger.ILogger
}

func NewNotificationService(
	uowFactory unitofwork.RepositoryFactory,
	sub *pkgNats.Subscriber,
	mail mailer.IEmailService,
	log logger.ILogger,
) *NotificationService {
	return &NotificationService{
		uowFactory: uowFactory,
		subscriber: sub,
		mailer:     mail,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *NotificationService) Start() {
	if s.subscriber == nil {
		s.logger.Warn("NOTIFICATION", "Event bus unavailable, email notifications disabled", nil)
		return
	}
	err := s.subscriber.Subscribe("events.>", "notif-service-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NOTIFICATION", "Failed to start notification subscriber", map[string]interface{}{"error": err.Error()})
		return
	}
	s.logger.Info("NOTIFICATION", "Notification service started, listening to events.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	// The NATS subject includes the stream prefix.
	typeCode := strings.TrimPrefix(event.EventType(), "events.")
	payload := event.Payload()

	switch typeCode {
	case "SUBMISSION_CREATED", "SUBMISSION_APPROVED", "SUBMISSION_REJECTED", "PAYMENT_CONFIRMED":
	default:
		return nil
	}

	rawId, _ := payload["submission_id"].(string)
	subId, err := uuid.Parse(rawId)
	if err != nil {
		s.logger.Warn("NOTIFICATION", "Event carries no parsable submission id", map[string]interface{}{"type": typeCode})
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	sub, err := uow.SubmissionRepository().FindOne(ctx, specification.ByID{ID: subId})
	if err != nil {
		return err
	}
	if sub == nil || sub.OwnerEmail == "" {
		return nil
	}

	switch typeCode {
	case "SUBMISSION_CREATED":
		err = s.mailer.SendSubmissionReceived(sub.OwnerEmail, sub.Title, sub.CommissionAmount, "EUR")
	case "SUBMISSION_APPROVED":
		listingId, _ := payload["listing_id"].(string)
		err = s.mailer.SendSubmissionApproved(sub.OwnerEmail, sub.Title, listingId)
	case "SUBMISSION_REJECTED":
		reason, _ := payload["reason"].(string)
		err = s.mailer.SendSubmissionRejected(sub.OwnerEmail, sub.Title, reason)
	case "PAYMENT_CONFIRMED":
		amount, _ := payload["amount"].(float64)
		err = s.mailer.SendPaymentReceived(sub.OwnerEmail, sub.Title, amount, "EUR")
	}

	if err != nil {
		s.logger.Error("NOTIFICATION", "Failed to send notification email", map[string]interface{}{
			"type":  typeCode,
			"error": err.Error(),
		})
	}
	// Never redeliver on mail failures; the email is best-effort.
	return nil
}
