package domainevents

import (
	"context"
	"time"

	"estate-listing-be/internal/pkg/logger"
	pkgEvents "estate-listing-be/pkg/events"
	pkgNats "estate-listing-be/pkg/nats"

	"github.com/google/uuid"
)

// Publisher abstracts the marketplace's domain event emission. All
// methods are fire-and-forget: a dead event bus never blocks a
// lifecycle transition.
type Publisher interface {
	PublishSubmissionCreated(ctx context.Context, submissionId, ownerId uuid.UUID, commission float64, status string)
	PublishPaymentConfirmed(ctx context.Context, submissionId uuid.UUID, amount float64, currency, source string)
	PublishSubmissionApproved(ctx context.Context, submissionId, listingId uuid.UUID, reviewedBy *uuid.UUID, viaOverride bool)
	PublishSubmissionRejected(ctx context.Context, submissionId uuid.UUID, reason string, reviewedBy *uuid.UUID)
	PublishListingExpired(ctx context.Context, listingId uuid.UUID)
}

// NatsPublisher implements Publisher using NATS JetStream.
type NatsPublisher struct {
	publisher *pkgNats.Publisher
	logger    logger.ILogger
}

func NewNatsPublisher(publisher *pkgNats.Publisher, logger logger.ILogger) *NatsPublisher {
	return &NatsPublisher{
		publisher: publisher,
		logger:    logger,
	}
}

func (p *NatsPublisher) emit(ctx context.Context, eventType string, data map[string]interface{}) {
	if p.publisher == nil {
		return
	}
	evt := pkgEvents.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("EVENTS", "Failed to publish "+eventType+" event", map[string]interface{}{"error": err.Error()})
	}
}

func (p *NatsPublisher) PublishSubmissionCreated(ctx context.Context, submissionId, ownerId uuid.UUID, commission float64, status string) {
	p.emit(ctx, "SUBMISSION_CREATED", map[string]interface{}{
		"submission_id":     submissionId,
		"owner_id":          ownerId,
		"commission_amount": commission,
		"submission_status": status,
		"entity_type":       "submission",
		"entity_id":         submissionId.String(),
	})
}

func (p *NatsPublisher) PublishPaymentConfirmed(ctx context.Context, submissionId uuid.UUID, amount float64, currency, source string) {
	p.emit(ctx, "PAYMENT_CONFIRMED", map[string]interface{}{
		"submission_id": submissionId,
		"amount":        amount,
		"currency":      currency,
		"source":        source,
		"entity_type":   "submission",
		"entity_id":     submissionId.String(),
	})
}

func (p *NatsPublisher) PublishSubmissionApproved(ctx context.Context, submissionId, listingId uuid.UUID, reviewedBy *uuid.UUID, viaOverride bool) {
	data := map[string]interface{}{
		"submission_id": submissionId,
		"listing_id":    listingId,
		"via_override":  viaOverride,
		"entity_type":   "submission",
		"entity_id":     submissionId.String(),
	}
	if reviewedBy != nil {
		data["reviewed_by"] = reviewedBy.String()
	}
	p.emit(ctx, "SUBMISSION_APPROVED", data)
}

func (p *NatsPublisher) PublishSubmissionRejected(ctx context.Context, submissionId uuid.UUID, reason string, reviewedBy *uuid.UUID) {
	data := map[string]interface{}{
		"submission_id": submissionId,
		"reason":        reason,
		"entity_type":   "submission",
		"entity_id":     submissionId.String(),
	}
	if reviewedBy != nil {
		data["reviewed_by"] = reviewedBy.String()
	}
	p.emit(ctx, "SUBMISSION_REJECTED", data)
}

func (p *NatsPublisher) PublishListingExpired(ctx context.Context, listingId uuid.UUID) {
	p.emit(ctx, "LISTING_EXPIRED", map[string]interface{}{
		"listing_id":  listingId,
		"entity_type": "listing",
		"entity_id":   listingId.String(),
	})
}
