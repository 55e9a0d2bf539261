package contract

import (
	"context"
	"time"

	"estate-listing-be/internal/entity"
	"estate-listing-be/internal/repository/specification"

	"github.com/google/uuid"
)

// StatusReview carries the reviewer fields written together with a
// status transition.
type StatusReview struct {
	ReviewedAt      *time.Time
	ReviewedBy      *uuid.UUID
	RejectionReason *string
	ViaOverride     bool
}

type SubmissionRepository interface {
	Create(ctx context.Context, submission *entity.Submission) error
	Update(ctx context.Context, submission *entity.Submission) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Submission, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Submission, error)

	// TransitionStatus performs the compare-and-swap status write: the
	// update only applies while the row is still in `from`. Returns false
	// when the guard fails (another actor already moved the submission).
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to entity.SubmissionStatus, review StatusReview) (bool, error)

	// SetPaymentStatus flips payment_status only; lifecycle status is
	// owned by TransitionStatus.
	SetPaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error

	// LinkApprovedListing writes approved_listing_id once; a second call
	// for the same submission is a no-op returning false.
	LinkApprovedListing(ctx context.Context, id uuid.UUID, listingId uuid.UUID) (bool, error)

	// Dashboard
	CountByStatus(ctx context.Context, status entity.SubmissionStatus) (int, error)
	SumPaidCommission(ctx context.Context) (float64, error)
}
