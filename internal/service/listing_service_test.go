package service

import (
	"context"
	"testing"

	"estate-listing-be/internal/dto"
	"estate-listing-be/internal/entity"
	"estate-listing-be/internal/pkg/logger"
	"estate-listing-be/internal/repository/contract"
	"estate-listing-be/internal/repository/specification"
	"estate-listing-be/internal/repository/unitofwork"
	"estate-listing-be/pkg/lifecycle"
	"estate-listing-be/pkg/listing"

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

type noopEvents struct{}

func (noopEvents) PublishSubmissionCreated(_ context.Context, _, _ uuid.UUID, _ float64, _ string) {
}
func (noopEvents) PublishPaymentConfirmed(_ context.Context, _ uuid.UUID, _ float64, _, _ string) {
}
func (noopEvents) PublishSubmissionApproved(_ context.Context, _, _ uuid.UUID, _ *uuid.UUID, _ bool) {
}
func (noopEvents) PublishSubmissionRejected(_ context.Context, _ uuid.UUID, _ string, _ *uuid.UUID) {
}
func (noopEvents) PublishListingExpired(_ context.Context, _ uuid.UUID) {
}

// browseListingRepo records the specifications each FindAll receives so
// tests can assert which filters the service applied.
type browseListingRepo struct {
	results  []*entity.Listing
	received [][]specification.Specification
}

func (r *browseListingRepo) Create(context.Context, *entity.Listing) error { return nil }
func (r *browseListingRepo) Update(context.Context, *entity.Listing) error { return nil }
func (r *browseListingRepo) Delete(context.Context, uuid.UUID) error       { return nil }

func (r *browseListingRepo) FindOne(context.Context, ...specification.Specification) (*entity.Listing, error) {
	if len(r.results) == 0 {
		return nil, nil
	}
	copied := *r.results[0]
	return &copied, nil
}

func (r *browseListingRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Listing, error) {
	r.received = append(r.received, specs)
	return r.results, nil
}

func (r *browseListingRepo) MarkExpired(context.Context, uuid.UUID) (bool, error) {
	return false, nil
}

func (r *browseListingRepo) CountActive(context.Context) (int, error) { return len(r.results), nil }

type browseUow struct {
	listings *browseListingRepo
}

func (u *browseUow) Begin(context.Context) error { return nil }
func (u *browseUow) Commit() error               { return nil }
func (u *browseUow) Rollback() error             { return nil }

func (u *browseUow) SubmissionRepository() contract.SubmissionRepository { return nil }
func (u *browseUow) ListingRepository() contract.ListingRepository       { return u.listings }
func (u *browseUow) CommissionRepository() contract.CommissionRepository { return nil }
func (u *browseUow) PaymentSettingRepository() contract.PaymentSettingRepository {
	return nil
}
func (u *browseUow) PaymentRecordRepository() contract.PaymentRecordRepository { return nil }

type browseFactory struct {
	uow *browseUow
}

func (f *browseFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork { return f.uow }

func newBrowseService(repo *browseListingRepo) IListingService {
	factory := &browseFactory{uow: &browseUow{listings: repo}}
	sweeper := listing.NewSweeper(factory, lifecycle.NewPublisher(noopLogger{}), noopEvents{}, noopLogger{})
	return NewListingService(factory, sweeper, noopLogger{})
}

func availableListing() *entity.Listing {
	return &entity.Listing{
		Id:          uuid.New(),
		Title:       "Canal-side apartment",
		Price:       1450,
		ListingKind: entity.ListingKindRent,
		City:        "Amsterdam",
		Status:      entity.ListingStatusAvailable,
	}
}

// browseSpecs returns the specification set of the browse query itself,
// skipping the sweeper's preceding candidate scan.
func browseSpecs(t *testing.T, repo *browseListingRepo) []specification.Specification {
	t.Helper()
	require.Len(t, repo.received, 2)
	return repo.received[1]
}

func TestBrowseFiltersByListingStatus(t *testing.T) {
	repo := &browseListingRepo{results: []*entity.Listing{availableListing()}}
	svc := newBrowseService(repo)

	res, err := svc.Browse(context.Background(), &dto.BrowseListingsRequest{Status: "rented"})
	require.NoError(t, err)
	require.Len(t, res.Listings, 1)

	assert.Contains(t, browseSpecs(t, repo), specification.ListingStatusIs{Status: "rented"})
}

func TestBrowseWithoutStatusReturnsAllStatuses(t *testing.T) {
	repo := &browseListingRepo{results: []*entity.Listing{availableListing()}}
	svc := newBrowseService(repo)

	_, err := svc.Browse(context.Background(), &dto.BrowseListingsRequest{})
	require.NoError(t, err)

	for _, spec := range browseSpecs(t, repo) {
		_, isStatus := spec.(specification.ListingStatusIs)
		assert.False(t, isStatus)
	}
}

func TestBrowseClampsPagination(t *testing.T) {
	repo := &browseListingRepo{}
	svc := newBrowseService(repo)

	res, err := svc.Browse(context.Background(), &dto.BrowseListingsRequest{Page: -3, PageSize: 5000})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Page)
	assert.Equal(t, maxPageSize, res.PageSize)
	assert.Contains(t, browseSpecs(t, repo), specification.Pagination{Limit: maxPageSize, Offset: 0})
}
