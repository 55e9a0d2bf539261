package lifecycle

import (
	"context"
	"testing"
	"time"

	"estate-listing-be/internal/entity"
	"estate-listing-be/internal/pkg/apperrors"
	"estate-listing-be/internal/pkg/logger"
	"estate-listing-be/internal/repository/contract"
	"estate-listing-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- in-memory fakes ----

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

type fakeSubmissionRepo struct {
	subs map[uuid.UUID]*entity.Submission
}

func newFakeSubmissionRepo(subs ...*entity.Submission) *fakeSubmissionRepo {
	r := &fakeSubmissionRepo{subs: map[uuid.UUID]*entity.Submission{}}
	for _, s := range subs {
		r.subs[s.Id] = s
	}
	return r
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
	for _, sub := range r.subs {
		if submissionMatches(sub, specs) {
			copied := *sub
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeSubmissionRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Submission, error) {
	var out []*entity.Submission
	for _, sub := range r.subs {
		if submissionMatches(sub, specs) {
			copied := *sub
			out = append(out, &copied)
		}
	}
	return out, nil
}

func submissionMatches(sub *entity.Submission, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if sub.Id != s.ID {
				return false
			}
		case specification.ByApprovedListingID:
			if sub.ApprovedListingId == nil || *sub.ApprovedListingId != s.ListingID {
				return false
			}
		case specification.ApprovedUnlinked:
			if sub.SubmissionStatus != entity.SubmissionStatusApproved || sub.ApprovedListingId != nil {
				return false
			}
		}
	}
	return true
}

func (r *fakeSubmissionRepo) TransitionStatus(_ context.Context, id uuid.UUID, from, to entity.SubmissionStatus, review contract.StatusReview) (bool, error) {
	sub, ok := r.subs[id]
	if !ok || sub.SubmissionStatus != from {
		return false, nil
	}
	sub.SubmissionStatus = to
	sub.ReviewedAt = review.ReviewedAt
	sub.ReviewedBy = review.ReviewedBy
	sub.RejectionReason = review.RejectionReason
	sub.ApprovedViaOverride = review.ViaOverride
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
	n := 0
	for _, sub := range r.subs {
		if sub.SubmissionStatus == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeSubmissionRepo) SumPaidCommission(_ context.Context) (float64, error) {
	var sum float64
	for _, sub := range r.subs {
		if sub.PaymentStatus == entity.PaymentStatusPaid {
			sum += sub.CommissionAmount
		}
	}
	return sum, nil
}

type fakeListingRepo struct {
	listings map[uuid.UUID]*entity.Listing

	markExpiredCalls int
}

func newFakeListingRepo(listings ...*entity.Listing) *fakeListingRepo {
	r := &fakeListingRepo{listings: map[uuid.UUID]*entity.Listing{}}
	for _, l := range listings {
		r.listings[l.Id] = l
	}
	return r
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
		if listingMatches(l, specs) {
			copied := *l
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeListingRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Listing, error) {
	var out []*entity.Listing
	for _, l := range r.listings {
		if listingMatches(l, specs) {
			copied := *l
			out = append(out, &copied)
		}
	}
	return out, nil
}

func listingMatches(l *entity.Listing, specs []specification.Specification) bool {
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
		case specification.NotExpired:
			if l.IsExpired {
				return false
			}
		}
	}
	return true
}

func (r *fakeListingRepo) MarkExpired(_ context.Context, id uuid.UUID) (bool, error) {
	r.markExpiredCalls++
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

type fakePaymentRecordRepo struct {
	records []*entity.PaymentRecord
}

func (r *fakePaymentRecordRepo) Create(_ context.Context, rec *entity.PaymentRecord) error {
	r.records = append(r.records, rec)
	return nil
}

func (r *fakePaymentRecordRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.PaymentRecord, error) {
	return r.records, nil
}

func (r *fakePaymentRecordRepo) FindBySubmission(_ context.Context, submissionId uuid.UUID) ([]*entity.PaymentRecord, error) {
	var out []*entity.PaymentRecord
	for _, rec := range r.records {
		if rec.SubmissionId == submissionId {
			out = append(out, rec)
		}
	}
	return out, nil
}

type fakeUow struct {
	subs     *fakeSubmissionRepo
	listings *fakeListingRepo
	records  *fakePaymentRecordRepo
}

func newFakeUow(subs *fakeSubmissionRepo, listings *fakeListingRepo) *fakeUow {
	return &fakeUow{
		subs:     subs,
		listings: listings,
		records:  &fakePaymentRecordRepo{},
	}
}

func (u *fakeUow) Begin(context.Context) error { return nil }
func (u *fakeUow) Commit() error               { return nil }
func (u *fakeUow) Rollback() error             { return nil }

func (u *fakeUow) SubmissionRepository() contract.SubmissionRepository   { return u.subs }
func (u *fakeUow) ListingRepository() contract.ListingRepository         { return u.listings }
func (u *fakeUow) CommissionRepository() contract.CommissionRepository   { return nil }
func (u *fakeUow) PaymentSettingRepository() contract.PaymentSettingRepository {
	return nil
}
func (u *fakeUow) PaymentRecordRepository() contract.PaymentRecordRepository {
	return u.records
}

type recordedEvent struct {
	kind string
	id   uuid.UUID
}

type fakeEvents struct {
	events []recordedEvent
}

func (f *fakeEvents) PublishSubmissionCreated(_ context.Context, id, _ uuid.UUID, _ float64, _ string) {
	f.events = append(f.events, recordedEvent{"created", id})
}
func (f *fakeEvents) PublishPaymentConfirmed(_ context.Context, id uuid.UUID, _ float64, _, _ string) {
	f.events = append(f.events, recordedEvent{"payment", id})
}
func (f *fakeEvents) PublishSubmissionApproved(_ context.Context, id, _ uuid.UUID, _ *uuid.UUID, _ bool) {
	f.events = append(f.events, recordedEvent{"approved", id})
}
func (f *fakeEvents) PublishSubmissionRejected(_ context.Context, id uuid.UUID, _ string, _ *uuid.UUID) {
	f.events = append(f.events, recordedEvent{"rejected", id})
}
func (f *fakeEvents) PublishListingExpired(_ context.Context, id uuid.UUID) {
	f.events = append(f.events, recordedEvent{"expired", id})
}

func newTestMachine() (*Machine, *fakeEvents) {
	events := &fakeEvents{}
	publisher := NewPublisher(noopLogger{})
	return NewMachine(publisher, events, noopLogger{}), events
}

func pendingSubmission(amount float64) *entity.Submission {
	return &entity.Submission{
		Id:               uuid.New(),
		OwnerId:          uuid.New(),
		Title:            "Sunny flat in Lisbon",
		Price:            1200,
		ListingKind:      entity.ListingKindRent,
		CommissionAmount: amount,
		PaymentStatus:    entity.PaymentStatusUnpaid,
		SubmissionStatus: entity.SubmissionStatusPending,
		SubmittedAt:      time.Now(),
		CreatedAt:        time.Now(),
	}
}

var testAdmin = entity.AdminActor{Id: uuid.New(), Email: "admin@example.com"}

// ---- tests ----

func TestApprovePaidSubmissionPublishesListing(t *testing.T) {
	sub := pendingSubmission(120)
	sub.PaymentStatus = entity.PaymentStatusPaid

	subs := newFakeSubmissionRepo(sub)
	listings := newFakeListingRepo()
	uow := newFakeUow(subs, listings)
	machine, events := newTestMachine()

	listingId, err := machine.ApproveByAdmin(context.Background(), uow, testAdmin, sub.Id, ApproveOptions{})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, listingId)

	stored := subs.subs[sub.Id]
	assert.Equal(t, entity.SubmissionStatusApproved, stored.SubmissionStatus)
	require.NotNil(t, stored.ApprovedListingId)
	assert.Equal(t, listingId, *stored.ApprovedListingId)
	assert.False(t, stored.ApprovedViaOverride)

	l := listings.listings[listingId]
	require.NotNil(t, l)
	assert.Equal(t, sub.Title, l.Title)
	require.NotNil(t, l.SourceSubmissionId)
	assert.Equal(t, sub.Id, *l.SourceSubmissionId)

	require.Len(t, events.events, 1)
	assert.Equal(t, "approved", events.events[0].kind)
}

func TestApproveUnpaidSubmissionIsBlocked(t *testing.T) {
	sub := pendingSubmission(120)

	subs := newFakeSubmissionRepo(sub)
	uow := newFakeUow(subs, newFakeListingRepo())
	machine, _ := newTestMachine()

	_, err := machine.ApproveByAdmin(context.Background(), uow, testAdmin, sub.Id, ApproveOptions{})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindPolicyViolation, apperrors.KindOf(err))
	assert.Equal(t, entity.SubmissionStatusPending, subs.subs[sub.Id].SubmissionStatus)
}

func TestApproveWithOverrideBypassesGate(t *testing.T) {
	sub := pendingSubmission(120)

	subs := newFakeSubmissionRepo(sub)
	uow := newFakeUow(subs, newFakeListingRepo())
	machine, _ := newTestMachine()

	listingId, err := machine.ApproveByAdmin(context.Background(), uow, testAdmin, sub.Id, ApproveOptions{Override: true})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, listingId)

	stored := subs.subs[sub.Id]
	assert.Equal(t, entity.SubmissionStatusApproved, stored.SubmissionStatus)
	assert.True(t, stored.ApprovedViaOverride)
	// Override publishes, it does not fabricate a payment.
	assert.Equal(t, entity.PaymentStatusUnpaid, stored.PaymentStatus)
}

func TestApproveTwiceIsIdempotent(t *testing.T) {
	sub := pendingSubmission(120)
	sub.PaymentStatus = entity.PaymentStatusPaid

	subs := newFakeSubmissionRepo(sub)
	listings := newFakeListingRepo()
	uow := newFakeUow(subs, listings)
	machine, _ := newTestMachine()

	first, err := machine.ApproveByAdmin(context.Background(), uow, testAdmin, sub.Id, ApproveOptions{})
	require.NoError(t, err)

	second, err := machine.ApproveByAdmin(context.Background(), uow, testAdmin, sub.Id, ApproveOptions{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, listings.listings, 1)
}

func TestApproveRejectedSubmissionConflicts(t *testing.T) {
	sub := pendingSubmission(0)
	sub.SubmissionStatus = entity.SubmissionStatusRejected

	subs := newFakeSubmissionRepo(sub)
	uow := newFakeUow(subs, newFakeListingRepo())
	machine, _ := newTestMachine()

	_, err := machine.ApproveByAdmin(context.Background(), uow, testAdmin, sub.Id, ApproveOptions{})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
}

func TestRejectRequiresReason(t *testing.T) {
	sub := pendingSubmission(120)

	subs := newFakeSubmissionRepo(sub)
	uow := newFakeUow(subs, newFakeListingRepo())
	machine, _ := newTestMachine()

	err := machine.Reject(context.Background(), uow, testAdmin, sub.Id, "")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	err = machine.Reject(context.Background(), uow, testAdmin, sub.Id, "Incomplete photos")
	require.NoError(t, err)

	stored := subs.subs[sub.Id]
	assert.Equal(t, entity.SubmissionStatusRejected, stored.SubmissionStatus)
	require.NotNil(t, stored.RejectionReason)
	assert.Equal(t, "Incomplete photos", *stored.RejectionReason)
}

func TestRejectTerminalSubmissionConflicts(t *testing.T) {
	sub := pendingSubmission(120)
	sub.SubmissionStatus = entity.SubmissionStatusRejected

	uow := newFakeUow(newFakeSubmissionRepo(sub), newFakeListingRepo())
	machine, _ := newTestMachine()

	err := machine.Reject(context.Background(), uow, testAdmin, sub.Id, "again")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
}

func TestPaymentConfirmedRecordsAndStaysPending(t *testing.T) {
	sub := pendingSubmission(120)

	subs := newFakeSubmissionRepo(sub)
	uow := newFakeUow(subs, newFakeListingRepo())
	machine, events := newTestMachine()

	ref := "pi_123"
	err := machine.HandlePaymentConfirmed(context.Background(), uow, sub.Id,
		entity.CommissionPolicy{RentPercentage: 10}, 120, "EUR", entity.PaymentSourceProcessor, &ref)
	require.NoError(t, err)

	stored := subs.subs[sub.Id]
	assert.Equal(t, entity.PaymentStatusPaid, stored.PaymentStatus)
	// Without auto-approval the submission waits for an admin.
	assert.Equal(t, entity.SubmissionStatusPending, stored.SubmissionStatus)

	require.Len(t, uow.records.records, 1)
	rec := uow.records.records[0]
	assert.Equal(t, 120.0, rec.Amount)
	assert.False(t, rec.RefundRequired)

	require.Len(t, events.events, 1)
	assert.Equal(t, "payment", events.events[0].kind)
}

func TestPaymentConfirmedAutoApproves(t *testing.T) {
	sub := pendingSubmission(120)

	subs := newFakeSubmissionRepo(sub)
	listings := newFakeListingRepo()
	uow := newFakeUow(subs, listings)
	machine, _ := newTestMachine()

	err := machine.HandlePaymentConfirmed(context.Background(), uow, sub.Id,
		entity.CommissionPolicy{RentPercentage: 10, AutoApprovePaid: true}, 120, "EUR", entity.PaymentSourceProcessor, nil)
	require.NoError(t, err)

	stored := subs.subs[sub.Id]
	assert.Equal(t, entity.SubmissionStatusApproved, stored.SubmissionStatus)
	require.NotNil(t, stored.ApprovedListingId)
	assert.Len(t, listings.listings, 1)
	// Auto-approval has no human reviewer.
	assert.Nil(t, stored.ReviewedBy)
}

func TestPaymentConfirmedReplayIsNoop(t *testing.T) {
	sub := pendingSubmission(120)

	subs := newFakeSubmissionRepo(sub)
	uow := newFakeUow(subs, newFakeListingRepo())
	machine, _ := newTestMachine()

	policy := entity.CommissionPolicy{RentPercentage: 10}
	require.NoError(t, machine.HandlePaymentConfirmed(context.Background(), uow, sub.Id, policy, 120, "EUR", entity.PaymentSourceProcessor, nil))
	require.NoError(t, machine.HandlePaymentConfirmed(context.Background(), uow, sub.Id, policy, 120, "EUR", entity.PaymentSourceProcessor, nil))

	assert.Len(t, uow.records.records, 1)
}

func TestPaymentAfterRejectionFlagsRefund(t *testing.T) {
	sub := pendingSubmission(120)
	sub.SubmissionStatus = entity.SubmissionStatusRejected

	subs := newFakeSubmissionRepo(sub)
	uow := newFakeUow(subs, newFakeListingRepo())
	machine, _ := newTestMachine()

	err := machine.HandlePaymentConfirmed(context.Background(), uow, sub.Id,
		entity.CommissionPolicy{RentPercentage: 10, AutoApprovePaid: true}, 120, "EUR", entity.PaymentSourceProcessor, nil)
	require.NoError(t, err)

	stored := subs.subs[sub.Id]
	// Rejected stays rejected; the money is flagged, not applied.
	assert.Equal(t, entity.SubmissionStatusRejected, stored.SubmissionStatus)
	assert.Equal(t, entity.PaymentStatusUnpaid, stored.PaymentStatus)

	require.Len(t, uow.records.records, 1)
	assert.True(t, uow.records.records[0].RefundRequired)
}

func TestDeletePublishedDemotesSubmission(t *testing.T) {
	sub := pendingSubmission(120)
	sub.PaymentStatus = entity.PaymentStatusPaid

	subs := newFakeSubmissionRepo(sub)
	listings := newFakeListingRepo()
	uow := newFakeUow(subs, listings)
	machine, events := newTestMachine()

	listingId, err := machine.ApproveByAdmin(context.Background(), uow, testAdmin, sub.Id, ApproveOptions{})
	require.NoError(t, err)

	err = machine.DeletePublished(context.Background(), uow, testAdmin, listingId)
	require.NoError(t, err)

	assert.Empty(t, listings.listings)
	stored := subs.subs[sub.Id]
	assert.Equal(t, entity.SubmissionStatusRejected, stored.SubmissionStatus)
	require.NotNil(t, stored.RejectionReason)
	assert.Equal(t, "Listing removed by administrator", *stored.RejectionReason)

	last := events.events[len(events.events)-1]
	assert.Equal(t, "rejected", last.kind)
}

func TestInitialStatuses(t *testing.T) {
	status, payment := InitialStatuses(0)
	assert.Equal(t, entity.SubmissionStatusApproved, status)
	assert.Equal(t, entity.PaymentStatusPaid, payment)

	status, payment = InitialStatuses(0.5)
	assert.Equal(t, entity.SubmissionStatusPending, status)
	assert.Equal(t, entity.PaymentStatusUnpaid, payment)
}
