package lifecycle

import (
	"context"
	"time"

	"estate-listing-be/internal/entity"
	"estate-listing-be/internal/pkg/apperrors"
	"estate-listing-be/internal/pkg/logger"
	"estate-listing-be/internal/repository/contract"
	"estate-listing-be/internal/repository/specification"
	"estate-listing-be/internal/repository/unitofwork"
	"estate-listing-be/pkg/domainevents"

	"github.com/google/uuid"
)

// ApproveOptions carries the admin's approval-time decisions.
type ApproveOptions struct {
	// Override publishes despite an unpaid commission. Recorded on the
	// submission so the audit trail shows the gate was bypassed.
	Override bool
	Publish  PublishOptions
}

// Machine owns every submission status transition. Writes go through
// compare-and-swap repository calls so two concurrent admins (or an
// admin racing a webhook) can never both win the same transition.
type Machine struct {
	publisher *Publisher
	events    domainevents.Publisher
	logger    logger.ILogger
}

func NewMachine(publisher *Publisher, events domainevents.Publisher, logger logger.ILogger) *Machine {
	return &Machine{
		publisher: publisher,
		events:    events,
		logger:    logger,
	}
}

// InitialStatuses decides where a freshly created submission starts.
// Zero commission means there is nothing to pay: the submission is born
// approved and paid, ready for immediate publishing.
func InitialStatuses(commissionAmount float64) (entity.SubmissionStatus, entity.PaymentStatus) {
	if commissionAmount == 0 {
		return entity.SubmissionStatusApproved, entity.PaymentStatusPaid
	}
	return entity.SubmissionStatusPending, entity.PaymentStatusUnpaid
}

// ApproveByAdmin moves a pending submission to approved and publishes
// its listing. Re-approving an already-approved, already-linked
// submission is a no-op returning the existing listing id.
func (m *Machine) ApproveByAdmin(ctx context.Context, uow unitofwork.UnitOfWork, actor entity.AdminActor, submissionId uuid.UUID, opts ApproveOptions) (uuid.UUID, error) {
	sub, err := uow.SubmissionRepository().FindOne(ctx, specification.ByID{ID: submissionId})
	if err != nil {
		return uuid.Nil, err
	}
	if sub == nil {
		return uuid.Nil, apperrors.NotFoundf("submission %s not found", submissionId)
	}

	if sub.SubmissionStatus == entity.SubmissionStatusApproved {
		if sub.ApprovedListingId != nil {
			return *sub.ApprovedListingId, nil
		}
		// Approved but the publish side-effect never completed; retry it.
		return m.publisher.Publish(ctx, uow, sub, opts.Publish)
	}
	if sub.SubmissionStatus == entity.SubmissionStatusRejected {
		return uuid.Nil, apperrors.Conflictf("submission %s was already rejected", submissionId)
	}

	if !CanApprove(sub, opts.Override) {
		return uuid.Nil, apperrors.PolicyViolationf("commission of %.2f is unpaid; pay it or approve with override", sub.CommissionAmount)
	}

	now := time.Now()
	actorId := actor.Id
	moved, err := uow.SubmissionRepository().TransitionStatus(ctx, sub.Id,
		entity.SubmissionStatusPending, entity.SubmissionStatusApproved,
		contract.StatusReview{
			ReviewedAt:  &now,
			ReviewedBy:  &actorId,
			ViaOverride: opts.Override && sub.PaymentStatus != entity.PaymentStatusPaid,
		})
	if err != nil {
		return uuid.Nil, err
	}
	if !moved {
		return uuid.Nil, apperrors.Conflictf("submission %s was already processed by another reviewer", submissionId)
	}

	sub.SubmissionStatus = entity.SubmissionStatusApproved
	sub.ReviewedAt = &now
	sub.ReviewedBy = &actorId

	listingId, err := m.publisher.Publish(ctx, uow, sub, opts.Publish)
	if err != nil {
		// The approval itself stands; reconciliation finishes the publish.
		m.logger.Error("LIFECYCLE", "Publish failed after approval, leaving for reconciliation", map[string]interface{}{
			"submission_id": sub.Id,
			"error":         err.Error(),
		})
		return uuid.Nil, err
	}

	m.events.PublishSubmissionApproved(ctx, sub.Id, listingId, &actorId, opts.Override)

	return listingId, nil
}

// Reject moves a pending submission to the terminal rejected state. A
// reason is mandatory: the submitter always learns why.
func (m *Machine) Reject(ctx context.Context, uow unitofwork.UnitOfWork, actor entity.AdminActor, submissionId uuid.UUID, reason string) error {
	if reason == "" {
		return apperrors.Validationf("rejection reason is required")
	}

	sub, err := uow.SubmissionRepository().FindOne(ctx, specification.ByID{ID: submissionId})
	if err != nil {
		return err
	}
	if sub == nil {
		return apperrors.NotFoundf("submission %s not found", submissionId)
	}
	if sub.IsTerminal() {
		return apperrors.Conflictf("submission %s was already processed", submissionId)
	}

	now := time.Now()
	actorId := actor.Id
	moved, err := uow.SubmissionRepository().TransitionStatus(ctx, sub.Id,
		entity.SubmissionStatusPending, entity.SubmissionStatusRejected,
		contract.StatusReview{
			ReviewedAt:      &now,
			ReviewedBy:      &actorId,
			RejectionReason: &reason,
		})
	if err != nil {
		return err
	}
	if !moved {
		return apperrors.Conflictf("submission %s was already processed by another reviewer", submissionId)
	}

	m.events.PublishSubmissionRejected(ctx, sub.Id, reason, &actorId)

	return nil
}

// HandlePaymentConfirmed records a confirmed commission payment and, when
// policy allows, auto-approves the submission. Payments confirmed after a
// rejection never resurrect the submission; they are recorded with a
// refund flag instead.
func (m *Machine) HandlePaymentConfirmed(ctx context.Context, uow unitofwork.UnitOfWork, submissionId uuid.UUID, policy entity.CommissionPolicy, amount float64, currency string, source entity.PaymentSource, providerRef *string) error {
	sub, err := uow.SubmissionRepository().FindOne(ctx, specification.ByID{ID: submissionId})
	if err != nil {
		return err
	}
	if sub == nil {
		return apperrors.NotFoundf("submission %s not found", submissionId)
	}

	if sub.SubmissionStatus == entity.SubmissionStatusRejected {
		m.logger.Warn("LIFECYCLE", "Payment arrived for a rejected submission, flagging refund", map[string]interface{}{
			"submission_id": sub.Id,
			"amount":        amount,
		})
		return m.recordPayment(ctx, uow, sub.Id, amount, currency, source, providerRef, true)
	}

	if sub.PaymentStatus == entity.PaymentStatusPaid {
		// Replayed confirmation; everything below already happened.
		return nil
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.SubmissionRepository().SetPaymentStatus(ctx, sub.Id, entity.PaymentStatusPaid); err != nil {
		return err
	}
	record := &entity.PaymentRecord{
		Id:           uuid.New(),
		SubmissionId: sub.Id,
		Amount:       amount,
		Currency:     currency,
		Source:       source,
		ProviderRef:  providerRef,
		CreatedAt:    time.Now(),
	}
	if err := uow.PaymentRecordRepository().Create(ctx, record); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	sub.PaymentStatus = entity.PaymentStatusPaid
	m.events.PublishPaymentConfirmed(ctx, sub.Id, amount, currency, string(source))

	if !policy.AutoApprovePaid || sub.SubmissionStatus != entity.SubmissionStatusPending {
		return nil
	}

	now := time.Now()
	moved, err := uow.SubmissionRepository().TransitionStatus(ctx, sub.Id,
		entity.SubmissionStatusPending, entity.SubmissionStatusApproved,
		contract.StatusReview{ReviewedAt: &now})
	if err != nil {
		return err
	}
	if !moved {
		// An admin got there first; nothing left to do.
		return nil
	}

	sub.SubmissionStatus = entity.SubmissionStatusApproved
	sub.ReviewedAt = &now

	listingId, err := m.publisher.Publish(ctx, uow, sub, PublishOptions{})
	if err != nil {
		m.logger.Error("LIFECYCLE", "Auto-approval publish failed, leaving for reconciliation", map[string]interface{}{
			"submission_id": sub.Id,
			"error":         err.Error(),
		})
		return err
	}

	m.events.PublishSubmissionApproved(ctx, sub.Id, listingId, nil, false)

	return nil
}

// DeletePublished removes a public listing. When the listing came from an
// approved submission, that submission is moved to rejected so it cannot
// silently republish; the reason makes the removal visible to the owner.
func (m *Machine) DeletePublished(ctx context.Context, uow unitofwork.UnitOfWork, actor entity.AdminActor, listingId uuid.UUID) error {
	listing, err := uow.ListingRepository().FindOne(ctx, specification.ByID{ID: listingId})
	if err != nil {
		return err
	}
	if listing == nil {
		return apperrors.NotFoundf("listing %s not found", listingId)
	}

	sub, err := uow.SubmissionRepository().FindOne(ctx, specification.ByApprovedListingID{ListingID: listingId})
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ListingRepository().Delete(ctx, listingId); err != nil {
		return err
	}

	demoted := false
	actorId := actor.Id
	reason := "Listing removed by administrator"
	if sub != nil && sub.SubmissionStatus == entity.SubmissionStatusApproved {
		now := time.Now()
		moved, err := uow.SubmissionRepository().TransitionStatus(ctx, sub.Id,
			entity.SubmissionStatusApproved, entity.SubmissionStatusRejected,
			contract.StatusReview{
				ReviewedAt:      &now,
				ReviewedBy:      &actorId,
				RejectionReason: &reason,
			})
		if err != nil {
			return err
		}
		demoted = moved
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	if demoted {
		m.events.PublishSubmissionRejected(ctx, sub.Id, reason, &actorId)
	}

	return nil
}

// recordPayment writes the audit row outside of any lifecycle change.
func (m *Machine) recordPayment(ctx context.Context, uow unitofwork.UnitOfWork, submissionId uuid.UUID, amount float64, currency string, source entity.PaymentSource, providerRef *string, refundRequired bool) error {
	return uow.PaymentRecordRepository().Create(ctx, &entity.PaymentRecord{
		Id:             uuid.New(),
		SubmissionId:   submissionId,
		Amount:         amount,
		Currency:       currency,
		Source:         source,
		ProviderRef:    providerRef,
		RefundRequired: refundRequired,
		CreatedAt:      time.Now(),
	})
}
