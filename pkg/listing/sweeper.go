package listing

import (
	"context"
	"time"

	"estate-listing-be/internal/pkg/logger"
	"estate-listing-be/internal/repository/specification"
	"estate-listing-be/internal/repository/unitofwork"
	"estate-listing-be/pkg/domainevents"
	"estate-listing-be/pkg/lifecycle"
)

// Sweeper flags listings whose expiration instant has passed and
// finishes publishes that were approved but never linked. Both passes
// are conditional writes, so overlapping runs (ticker plus an
// opportunistic sweep from a browse request) never double-apply.
type Sweeper struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  *lifecycle.Publisher
	events     domainevents.Publisher
	logger     logger.ILogger
}

func NewSweeper(uowFactory unitofwork.RepositoryFactory, publisher *lifecycle.Publisher, events domainevents.Publisher, logger logger.ILogger) *Sweeper {
	return &Sweeper{
		uowFactory: uowFactory,
		publisher:  publisher,
		events:     events,
		logger:     logger,
	}
}

// Sweep marks every listing whose effective expiration is in the past.
// Returns how many listings were newly flagged.
func (s *Sweeper) Sweep(ctx context.Context) (int, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	candidates, err := uow.ListingRepository().FindAll(ctx, specification.Expirable{})
	if err != nil {
		return 0, err
	}

	now := time.Now()
	flagged := 0
	for _, l := range candidates {
		deadline, ok := l.EffectiveExpiration()
		if !ok || deadline.After(now) {
			continue
		}
		marked, err := uow.ListingRepository().MarkExpired(ctx, l.Id)
		if err != nil {
			s.logger.Error("SWEEPER", "Failed to mark listing expired", map[string]interface{}{
				"listing_id": l.Id,
				"error":      err.Error(),
			})
			continue
		}
		if marked {
			flagged++
			s.events.PublishListingExpired(ctx, l.Id)
		}
	}

	if flagged > 0 {
		s.logger.Info("SWEEPER", "Expired listings flagged", map[string]interface{}{"count": flagged})
	}
	return flagged, nil
}

// Reconcile retries the publish side-effect for submissions that are
// approved but still have no linked listing. These are the survivors of
// a crash between the status write and the link-back.
func (s *Sweeper) Reconcile(ctx context.Context) (int, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	orphans, err := uow.SubmissionRepository().FindAll(ctx, specification.ApprovedUnlinked{})
	if err != nil {
		return 0, err
	}

	repaired := 0
	for _, sub := range orphans {
		listingId, err := s.publisher.Publish(ctx, uow, sub, lifecycle.PublishOptions{})
		if err != nil {
			s.logger.Error("SWEEPER", "Reconciliation publish failed", map[string]interface{}{
				"submission_id": sub.Id,
				"error":         err.Error(),
			})
			continue
		}
		repaired++
		s.logger.Info("SWEEPER", "Reconciled unpublished approval", map[string]interface{}{
			"submission_id": sub.Id,
			"listing_id":    listingId,
		})
	}
	return repaired, nil
}

// Run drives both passes on a fixed interval until the context ends.
// Intended to be launched as a background goroutine from main.
func (s *Sweeper) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Info("SWEEPER", "Background sweeper started", map[string]interface{}{"interval": interval.String()})

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("SWEEPER", "Background sweeper stopped", nil)
			return
		case <-ticker.C:
			if _, err := s.Sweep(ctx); err != nil {
				s.logger.Error("SWEEPER", "Sweep pass failed", map[string]interface{}{"error": err.Error()})
			}
			if _, err := s.Reconcile(ctx); err != nil {
				s.logger.Error("SWEEPER", "Reconcile pass failed", map[string]interface{}{"error": err.Error()})
			}
		}
	}
}
