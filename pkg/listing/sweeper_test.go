package listing

import (
	"context"
	"testing"
	"time"

	"estate-listing-be/internal/entity"
	"estate-listing-be/internal/pkg/logger"
	"estate-listing-be/internal/repository/contract"
	"estate-listing-be/internal/repository/specification"
	"estate-listing-be/internal/repository/unitofwork"
	"estate-listing-be/pkg/lifecycle"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debug(string, string, map[string]interface{}) {}
func (noopLogger) Info(string, string, map[string]interface{})  {}
func (noopLogger) Warn(string, string, map[string]interface{})  {}
func (noopLogger) Error(string, string, map[string]interface{}) {}
func (noopLogger) Sync() error                                  { return nil }
func (noopLogger) GetLogs(string, int, int) ([]logger.LogEntry, error) {
	return nil, nil
}
func (noopLogger) GetLogById(string) (*logger.LogEntry, error) { return nil, nil }

type fakeListingRepo struct {
	listings map[uuid.UUID]*entity.Listing
}

func (r *fakeListingRepo) Create(_ context.Context, l *entity.Listing) error {
	r.listings[l.Id] = l
	return nil
}

func (r *fakeListingRepo) Update(_ context.Context, l *entity.Listing) error {
	r.listings[l.Id] = l
	return nil
}

func (r *fakeListingRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.listings, id)
	return nil
}

func (r *fakeListingRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Listing, error) {
	for _, l := range r.listings {
		if r.matches(l, specs) {
			copied := *l
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeListingRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Listing, error) {
	var out []*entity.Listing
	for _, l := range r.listings {
		if r.matches(l, specs) {
			copied := *l
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeListingRepo) matches(l *entity.Listing, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if l.Id != s.ID {
				return false
			}
		case specification.BySourceSubmissionID:
			if l.SourceSubmissionId == nil || *l.SourceSubmissionId != s.SubmissionID {
				return false
			}
		case specification.Expirable:
			if l.IsExpired || (l.ExpiresAt == nil && l.AutoExpireDays == nil) {
				return false
			}
		}
	}
	return true
}

func (r *fakeListingRepo) MarkExpired(_ context.Context, id uuid.UUID) (bool, error) {
	l, ok := r.listings[id]
	if !ok || l.IsExpired {
		return false, nil
	}
	l.IsExpired = true
	return true, nil
}

func (r *fakeListingRepo) CountActive(_ context.Context) (int, error) {
	n := 0
	for _, l := range r.listings {
		if !l.IsExpired {
			n++
		}
	}
	return n, nil
}

type fakeSubmissionRepo struct {
	subs map[uuid.UUID]*entity.Submission
}

func (r *fakeSubmissionRepo) Create(_ context.Context, sub *entity.Submission) error {
	r.subs[sub.Id] = sub
	return nil
}

func (r *fakeSubmissionRepo) Update(_ context.Context, sub *entity.Submission) error {
	r.subs[sub.Id] = sub
	return nil
}

func (r *fakeSubmissionRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.subs, id)
	return nil
}

func (r *fakeSubmissionRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Submission, error) {
	subs, err := r.FindAll(context.Background(), specs...)
	if err != nil || len(subs) == 0 {
		return nil, err
	}
	return subs[0], nil
}

func (r *fakeSubmissionRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Submission, error) {
	var out []*entity.Submission
	for _, sub := range r.subs {
		match := true
		for _, spec := range specs {
			switch s := spec.(type) {
			case specification.ByID:
				if sub.Id != s.ID {
					match = false
				}
			case specification.ApprovedUnlinked:
				if sub.SubmissionStatus != entity.SubmissionStatusApproved || sub.ApprovedListingId != nil {
					match = false
				}
			}
		}
		if match {
			copied := *sub
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeSubmissionRepo) TransitionStatus(_ context.Context, id uuid.UUID, from, to entity.SubmissionStatus, review contract.StatusReview) (bool, error) {
	sub, ok := r.subs[id]
	if !ok || sub.SubmissionStatus != from {
		return false, nil
	}
	sub.SubmissionStatus = to
	return true, nil
}

func (r *fakeSubmissionRepo) SetPaymentStatus(_ context.Context, id uuid.UUID, status entity.PaymentStatus) error {
	if sub, ok := r.subs[id]; ok {
		sub.PaymentStatus = status
	}
	return nil
}

func (r *fakeSubmissionRepo) LinkApprovedListing(_ context.Context, id uuid.UUID, listingId uuid.UUID) (bool, error) {
	sub, ok := r.subs[id]
	if !ok || sub.ApprovedListingId != nil {
		return false, nil
	}
	sub.ApprovedListingId = &listingId
	return true, nil
}

func (r *fakeSubmissionRepo) CountByStatus(_ context.Context, status entity.SubmissionStatus) (int, error) {
	return 0, nil
}

func (r *fakeSubmissionRepo) SumPaidCommission(_ context.Context) (float64, error) {
	return 0, nil
}

type fakeUow struct {
	subs     *fakeSubmissionRepo
	listings *fakeListingRepo
}

func (u *fakeUow) Begin(context.Context) error { return nil }
func (u *fakeUow) Commit() error               { return nil }
func (u *fakeUow) Rollback() error             { return nil }

func (u *fakeUow) SubmissionRepository() contract.SubmissionRepository { return u.subs }
func (u *fakeUow) ListingRepository() contract.ListingRepository       { return u.listings }
func (u *fakeUow) CommissionRepository() contract.CommissionRepository { return nil }
func (u *fakeUow) PaymentSettingRepository() contract.PaymentSettingRepository {
	return nil
}
func (u *fakeUow) PaymentRecordRepository() contract.PaymentRecordRepository {
	return nil
}

type fakeFactory struct {
	uow *fakeUow
}

func (f *fakeFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork { return f.uow }

type expiredRecorder struct {
	ids []uuid.UUID
}

func (r *expiredRecorder) PublishSubmissionCreated(context.Context, uuid.UUID, uuid.UUID, float64, string) {
}
func (r *expiredRecorder) PublishPaymentConfirmed(context.Context, uuid.UUID, float64, string, string) {
}
func (r *expiredRecorder) PublishSubmissionApproved(context.Context, uuid.UUID, uuid.UUID, *uuid.UUID, bool) {
}
func (r *expiredRecorder) PublishSubmissionRejected(context.Context, uuid.UUID, string, *uuid.UUID) {
}
func (r *expiredRecorder) PublishListingExpired(_ context.Context, id uuid.UUID) {
	r.ids = append(r.ids, id)
}

func newTestSweeper() (*Sweeper, *fakeUow, *expiredRecorder) {
	uow := &fakeUow{
		subs:     &fakeSubmissionRepo{subs: map[uuid.UUID]*entity.Submission{}},
		listings: &fakeListingRepo{listings: map[uuid.UUID]*entity.Listing{}},
	}
	events := &expiredRecorder{}
	sweeper := NewSweeper(&fakeFactory{uow: uow}, lifecycle.NewPublisher(noopLogger{}), events, noopLogger{})
	return sweeper, uow, events
}

func listingExpiringAt(expiresAt *time.Time, autoExpireDays *int, createdAt time.Time) *entity.Listing {
	return &entity.Listing{
		Id:             uuid.New(),
		Title:          "Canal house",
		Price:          450000,
		ListingKind:    entity.ListingKindSale,
		Status:         entity.ListingStatusAvailable,
		ExpiresAt:      expiresAt,
		AutoExpireDays: autoExpireDays,
		CreatedAt:      createdAt,
	}
}

func TestSweepFlagsPastExpiration(t *testing.T) {
	sweeper, uow, events := newTestSweeper()

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(24 * time.Hour)
	expired := listingExpiringAt(&past, nil, time.Now().AddDate(0, 0, -10))
	alive := listingExpiringAt(&future, nil, time.Now())
	forever := listingExpiringAt(nil, nil, time.Now().AddDate(-1, 0, 0))
	for _, l := range []*entity.Listing{expired, alive, forever} {
		uow.listings.listings[l.Id] = l
	}

	flagged, err := sweeper.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, flagged)

	assert.True(t, uow.listings.listings[expired.Id].IsExpired)
	assert.False(t, uow.listings.listings[alive.Id].IsExpired)
	assert.False(t, uow.listings.listings[forever.Id].IsExpired)

	require.Len(t, events.ids, 1)
	assert.Equal(t, expired.Id, events.ids[0])
}

func TestSweepAutoExpireDays(t *testing.T) {
	sweeper, uow, _ := newTestSweeper()

	days := 30
	over := listingExpiringAt(nil, &days, time.Now().AddDate(0, 0, -31))
	under := listingExpiringAt(nil, &days, time.Now().AddDate(0, 0, -29))
	uow.listings.listings[over.Id] = over
	uow.listings.listings[under.Id] = under

	flagged, err := sweeper.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, flagged)
	assert.True(t, uow.listings.listings[over.Id].IsExpired)
	assert.False(t, uow.listings.listings[under.Id].IsExpired)
}

func TestSweepExplicitDateWinsOverAutoDays(t *testing.T) {
	sweeper, uow, _ := newTestSweeper()

	// Auto days say expired long ago, but the explicit date is still in
	// the future and takes precedence.
	days := 7
	future := time.Now().Add(48 * time.Hour)
	l := listingExpiringAt(&future, &days, time.Now().AddDate(0, 0, -30))
	uow.listings.listings[l.Id] = l

	flagged, err := sweeper.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, flagged)
	assert.False(t, uow.listings.listings[l.Id].IsExpired)
}

func TestSweepTwiceFlagsOnce(t *testing.T) {
	sweeper, uow, events := newTestSweeper()

	past := time.Now().Add(-time.Minute)
	l := listingExpiringAt(&past, nil, time.Now().AddDate(0, 0, -10))
	uow.listings.listings[l.Id] = l

	first, err := sweeper.Sweep(context.Background())
	require.NoError(t, err)
	second, err := sweeper.Sweep(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, first)
	assert.Equal(t, 0, second)
	assert.Len(t, events.ids, 1)
}

func TestReconcileLinksOrphanedApprovals(t *testing.T) {
	sweeper, uow, _ := newTestSweeper()

	orphan := &entity.Submission{
		Id:               uuid.New(),
		OwnerId:          uuid.New(),
		Title:            "Loft with skylight",
		Price:            900,
		ListingKind:      entity.ListingKindRent,
		PaymentStatus:    entity.PaymentStatusPaid,
		SubmissionStatus: entity.SubmissionStatusApproved,
		CreatedAt:        time.Now(),
	}
	uow.subs.subs[orphan.Id] = orphan

	repaired, err := sweeper.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repaired)

	stored := uow.subs.subs[orphan.Id]
	require.NotNil(t, stored.ApprovedListingId)
	l := uow.listings.listings[*stored.ApprovedListingId]
	require.NotNil(t, l)
	assert.Equal(t, orphan.Title, l.Title)

	// A second pass finds nothing left to repair.
	repaired, err = sweeper.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, repaired)
}

func TestReconcileReusesExistingListing(t *testing.T) {
	sweeper, uow, _ := newTestSweeper()

	subId := uuid.New()
	orphan := &entity.Submission{
		Id:               subId,
		OwnerId:          uuid.New(),
		Title:            "Townhouse",
		SubmissionStatus: entity.SubmissionStatusApproved,
		PaymentStatus:    entity.PaymentStatusPaid,
		CreatedAt:        time.Now(),
	}
	uow.subs.subs[orphan.Id] = orphan

	// A listing from a crashed earlier publish already exists.
	existing := &entity.Listing{
		Id:                 uuid.New(),
		Title:              "Townhouse",
		Status:             entity.ListingStatusAvailable,
		SourceSubmissionId: &subId,
		CreatedAt:          time.Now(),
	}
	uow.listings.listings[existing.Id] = existing

	repaired, err := sweeper.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repaired)

	assert.Len(t, uow.listings.listings, 1)
	stored := uow.subs.subs[orphan.Id]
	require.NotNil(t, stored.ApprovedListingId)
	assert.Equal(t, existing.Id, *stored.ApprovedListingId)
}
