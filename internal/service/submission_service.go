package service

import (
	"context"
	"time"

	"estate-listing-be/internal/dto"
	"estate-listing-be/internal/entity"
	"estate-listing-be/internal/pkg/apperrors"
	"estate-listing-be/internal/pkg/logger"
	"estate-listing-be/internal/repository/specification"
	"estate-listing-be/internal/repository/unitofwork"
	"estate-listing-be/pkg/commission"
	"estate-listing-be/pkg/domainevents"
	"estate-listing-be/pkg/lifecycle"

	"github.com/google/uuid"
)

const listingCurrency = "EUR"

type ISubmissionService interface {
	Quote(ctx context.Context, req *dto.QuoteRequest) (*dto.QuoteResponse, error)
	Create(ctx context.Context, owner entity.OwnerRef, req *dto.CreateSubmissionRequest) (*dto.CreateSubmissionResponse, error)
	GetMine(ctx context.Context, owner entity.OwnerRef) ([]*dto.SubmissionResponse, error)
	Show(ctx context.Context, owner entity.OwnerRef, id uuid.UUID) (*dto.SubmissionResponse, error)
}

type submissionService struct {
	uowFactory unitofwork.RepositoryFactory
	policy     IPolicyService
	publisher  *lifecycle.Publisher
	events     domainevents.Publisher
	logger     logger.ILogger
}

func NewSubmissionService(
	uowFactory unitofwork.RepositoryFactory,
	policy IPolicyService,
	publisher *lifecycle.Publisher,
	events domainevents.Publisher,
	logger logger.ILogger,
) ISubmissionService {
	return &submissionService{
		uowFactory: uowFactory,
		policy:     policy,
		publisher:  publisher,
		events:     events,
		logger:     logger,
	}
}

// Quote prices a submission without creating anything. The same policy
// and rounding are used at creation, so the quoted amount is exactly
// what will be snapshotted.
func (s *submissionService) Quote(ctx context.Context, req *dto.QuoteRequest) (*dto.QuoteResponse, error) {
	policy, err := s.policy.Current(ctx)
	if err != nil {
		return nil, err
	}

	kind := entity.ListingKind(req.ListingKind)
	return &dto.QuoteResponse{
		Price:                req.Price,
		ListingKind:          req.ListingKind,
		CommissionPercentage: policy.PercentageFor(kind),
		CommissionAmount:     commission.Compute(req.Price, kind, policy),
		Currency:             listingCurrency,
	}, nil
}

func (s *submissionService) Create(ctx context.Context, owner entity.OwnerRef, req *dto.CreateSubmissionRequest) (*dto.CreateSubmissionResponse, error) {
	policy, err := s.policy.Current(ctx)
	if err != nil {
		return nil, err
	}

	kind := entity.ListingKind(req.ListingKind)

	// The commission is snapshotted server-side: whatever a client sent
	// in the request body never reaches the stored amount.
	amount := commission.Compute(req.Price, kind, policy)
	status, payStatus := lifecycle.InitialStatuses(amount)

	now := time.Now()
	sub := &entity.Submission{
		Id:                   uuid.New(),
		OwnerId:              owner.Id,
		OwnerEmail:           owner.Email,
		Title:                req.Title,
		Description:          req.Description,
		Price:                req.Price,
		PropertyType:         req.PropertyType,
		ListingKind:          kind,
		Bedrooms:             req.Bedrooms,
		Bathrooms:            req.Bathrooms,
		AreaSqft:             req.AreaSqft,
		Address:              req.Address,
		City:                 req.City,
		State:                req.State,
		ZipCode:              req.ZipCode,
		Latitude:             req.Latitude,
		Longitude:            req.Longitude,
		Features:             req.Features,
		Images:               req.Images,
		CommissionPercentage: policy.PercentageFor(kind),
		CommissionAmount:     amount,
		PaymentStatus:        payStatus,
		SubmissionStatus:     status,
		SubmittedAt:          now,
		CreatedAt:            now,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.SubmissionRepository().Create(ctx, sub); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.events.PublishSubmissionCreated(ctx, sub.Id, owner.Id, amount, string(status))

	res := &dto.CreateSubmissionResponse{
		Id:                   sub.Id,
		SubmissionStatus:     string(sub.SubmissionStatus),
		PaymentStatus:        string(sub.PaymentStatus),
		CommissionPercentage: sub.CommissionPercentage,
		CommissionAmount:     sub.CommissionAmount,
	}

	// Free submissions go live immediately. A publish failure here does
	// not fail the creation; the submission stays approved-but-unlinked
	// and the sweeper's reconcile pass finishes the job.
	if status == entity.SubmissionStatusApproved {
		listingId, err := s.publisher.Publish(ctx, uow, sub, lifecycle.PublishOptions{})
		if err != nil {
			s.logger.Error("SUBMISSION", "Immediate publish of free submission failed", map[string]interface{}{
				"submission_id": sub.Id,
				"error":         err.Error(),
			})
		} else {
			res.ListingId = &listingId
		}
	}

	return res, nil
}

func (s *submissionService) GetMine(ctx context.Context, owner entity.OwnerRef) ([]*dto.SubmissionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	subs, err := uow.SubmissionRepository().FindAll(ctx,
		specification.OwnedBy{OwnerID: owner.Id},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.SubmissionResponse, 0, len(subs))
	for _, sub := range subs {
		res = append(res, toSubmissionResponse(sub))
	}
	return res, nil
}

func (s *submissionService) Show(ctx context.Context, owner entity.OwnerRef, id uuid.UUID) (*dto.SubmissionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	sub, err := uow.SubmissionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if sub == nil || sub.OwnerId != owner.Id {
		// Existence of other users' submissions is not disclosed.
		return nil, apperrors.NotFoundf("submission %s not found", id)
	}
	return toSubmissionResponse(sub), nil
}

func toSubmissionResponse(sub *entity.Submission) *dto.SubmissionResponse {
	return &dto.SubmissionResponse{
		Id:                   sub.Id,
		Title:                sub.Title,
		Description:          sub.Description,
		Price:                sub.Price,
		PropertyType:         sub.PropertyType,
		ListingKind:          string(sub.ListingKind),
		Bedrooms:             sub.Bedrooms,
		Bathrooms:            sub.Bathrooms,
		AreaSqft:             sub.AreaSqft,
		Address:              sub.Address,
		City:                 sub.City,
		State:                sub.State,
		ZipCode:              sub.ZipCode,
		Features:             sub.Features,
		Images:               sub.Images,
		CommissionPercentage: sub.CommissionPercentage,
		CommissionAmount:     sub.CommissionAmount,
		PaymentStatus:        string(sub.PaymentStatus),
		SubmissionStatus:     string(sub.SubmissionStatus),
		RejectionReason:      sub.RejectionReason,
		ApprovedListingId:    sub.ApprovedListingId,
		SubmittedAt:          sub.SubmittedAt,
		ReviewedAt:           sub.ReviewedAt,
	}
}
