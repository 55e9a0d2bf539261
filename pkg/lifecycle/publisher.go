package lifecycle

import (
	"context"
	"time"

	"estate-listing-be/internal/entity"
	"estate-listing-be/internal/pkg/apperrors"
	"estate-listing-be/internal/pkg/logger"
	"estate-listing-be/internal/repository/specification"
	"estate-listing-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// PublishOptions carries the admin-decided presentation and expiration
// settings captured at approval time. These are independent of anything
// the submitter proposed.
type PublishOptions struct {
	Featured       bool
	ExpiresAt      *time.Time
	AutoExpireDays *int
}

// Publisher materializes an approved submission into a public listing.
// Idempotency key is the submission id: a second publish for the same
// submission returns the already-created listing id.
type Publisher struct {
	logger logger.ILogger
}

func NewPublisher(logger logger.ILogger) *Publisher {
	return &Publisher{logger: logger}
}

// Publish copies the submission's property fields into a new listing and
// then links it back onto the submission. Ordering is publish-then-link:
// if the link write fails the listing already exists durably, and the
// reconciliation pass retries the link from the approved-but-unlinked
// signal instead of creating a duplicate.
func (p *Publisher) Publish(ctx context.Context, uow unitofwork.UnitOfWork, sub *entity.Submission, opts PublishOptions) (uuid.UUID, error) {
	if sub.ApprovedListingId != nil {
		return *sub.ApprovedListingId, nil
	}

	// A listing row may already exist from a previous attempt whose
	// link-back failed; reuse it instead of inserting a second copy.
	listing, err := uow.ListingRepository().FindOne(ctx, specification.BySourceSubmissionID{SubmissionID: sub.Id})
	if err != nil {
		return uuid.Nil, err
	}

	if listing == nil {
		subId := sub.Id
		listing = &entity.Listing{
			Id:                 uuid.New(),
			Title:              sub.Title,
			Description:        sub.Description,
			Price:              sub.Price,
			PropertyType:       sub.PropertyType,
			ListingKind:        sub.ListingKind,
			Bedrooms:           sub.Bedrooms,
			Bathrooms:          sub.Bathrooms,
			AreaSqft:           sub.AreaSqft,
			Address:            sub.Address,
			City:               sub.City,
			State:              sub.State,
			ZipCode:            sub.ZipCode,
			Latitude:           sub.Latitude,
			Longitude:          sub.Longitude,
			Features:           sub.Features,
			Images:             sub.Images,
			Status:             entity.ListingStatusAvailable,
			Featured:           opts.Featured,
			ExpiresAt:          opts.ExpiresAt,
			AutoExpireDays:     opts.AutoExpireDays,
			SourceSubmissionId: &subId,
			CreatedAt:          time.Now(),
		}
		if err := uow.ListingRepository().Create(ctx, listing); err != nil {
			return uuid.Nil, apperrors.Publisherf(err, "failed to create listing for submission %s", sub.Id)
		}
	}

	linked, err := uow.SubmissionRepository().LinkApprovedListing(ctx, sub.Id, listing.Id)
	if err != nil {
		// The listing exists; only the link is missing. Reconciliation
		// will retry from the approved-with-nil-link state.
		return listing.Id, apperrors.Publisherf(err, "listing %s created but link-back failed for submission %s", listing.Id, sub.Id)
	}
	if !linked {
		// Someone else completed the link first; idempotent outcome.
		p.logger.Info("PUBLISHER", "Link already present, treating publish as no-op", map[string]interface{}{
			"submission_id": sub.Id,
			"listing_id":    listing.Id,
		})
	}

	sub.ApprovedListingId = &listing.Id
	return listing.Id, nil
}
