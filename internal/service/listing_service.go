package service

import (
	"context"

	"estate-listing-be/internal/dto"
	"estate-listing-be/internal/entity"
	"estate-listing-be/internal/pkg/apperrors"
	"estate-listing-be/internal/pkg/logger"
	"estate-listing-be/internal/repository/specification"
	"estate-listing-be/internal/repository/unitofwork"
	"estate-listing-be/pkg/listing"

	"github.com/google/uuid"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type IListingService interface {
	Browse(ctx context.Context, req *dto.BrowseListingsRequest) (*dto.BrowseListingsResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ListingResponse, error)
}

type listingService struct {
	uowFactory unitofwork.RepositoryFactory
	sweeper    *listing.Sweeper
	logger     logger.ILogger
}

func NewListingService(uowFactory unitofwork.RepositoryFactory, sweeper *listing.Sweeper, logger logger.ILogger) IListingService {
	return &listingService{
		uowFactory: uowFactory,
		sweeper:    sweeper,
		logger:     logger,
	}
}

// Browse lists public, non-expired listings. A sweep runs first so a
// listing whose deadline passed between ticker runs never leaks into
// the results.
func (s *listingService) Browse(ctx context.Context, req *dto.BrowseListingsRequest) (*dto.BrowseListingsResponse, error) {
	if _, err := s.sweeper.Sweep(ctx); err != nil {
		// Browsing still works with a stale expiration flag.
		s.logger.Warn("LISTING", "Opportunistic sweep failed", map[string]interface{}{"error": err.Error()})
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	specs := []specification.Specification{
		specification.NotExpired{},
	}
	if req.City != "" {
		specs = append(specs, specification.ByCity{City: req.City})
	}
	if req.ListingKind != "" {
		specs = append(specs, specification.ByListingKind{Kind: req.ListingKind})
	}
	if req.PropertyType != "" {
		specs = append(specs, specification.ByPropertyType{PropertyType: req.PropertyType})
	}
	if req.Status != "" {
		specs = append(specs, specification.ListingStatusIs{Status: req.Status})
	}
	if req.MinPrice != nil || req.MaxPrice != nil {
		between := specification.PriceBetween{}
		if req.MinPrice != nil {
			between.Min = *req.MinPrice
		}
		if req.MaxPrice != nil {
			between.Max = *req.MaxPrice
		}
		specs = append(specs, between)
	}
	if req.FeaturedOnly {
		specs = append(specs, specification.FeaturedOnly{})
	}
	specs = append(specs,
		specification.OrderBy{Field: "featured", Desc: true},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: pageSize, Offset: (page - 1) * pageSize},
	)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	listings, err := uow.ListingRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ListingResponse, 0, len(listings))
	for _, l := range listings {
		res = append(res, toListingResponse(l))
	}

	return &dto.BrowseListingsResponse{
		Listings: res,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *listingService) Show(ctx context.Context, id uuid.UUID) (*dto.ListingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	l, err := uow.ListingRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if l == nil || l.IsExpired {
		return nil, apperrors.NotFoundf("listing %s not found", id)
	}
	return toListingResponse(l), nil
}

func toListingResponse(l *entity.Listing) *dto.ListingResponse {
	return &dto.ListingResponse{
		Id:           l.Id,
		Title:        l.Title,
		Description:  l.Description,
		Price:        l.Price,
		PropertyType: l.PropertyType,
		ListingKind:  string(l.ListingKind),
		Bedrooms:     l.Bedrooms,
		Bathrooms:    l.Bathrooms,
		AreaSqft:     l.AreaSqft,
		Address:      l.Address,
		City:         l.City,
		State:        l.State,
		ZipCode:      l.ZipCode,
		Latitude:     l.Latitude,
		Longitude:    l.Longitude,
		Features:     l.Features,
		Images:       l.Images,
		Status:       string(l.Status),
		Featured:     l.Featured,
		ExpiresAt:    l.ExpiresAt,
		CreatedAt:    l.CreatedAt,
	}
}
