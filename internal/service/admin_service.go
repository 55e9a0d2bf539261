// FILE: internal/service/admin_service.go
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
	"estate-listing-be/pkg/lifecycle"
	"estate-listing-be/pkg/listing"

	"github.com/google/uuid"
)

type IAdminService interface {
	ListSubmissions(ctx context.Context, req *dto.ListSubmissionsRequest) ([]*dto.SubmissionResponse, error)
	ShowSubmission(ctx context.Context, id uuid.UUID) (*dto.SubmissionResponse, error)
	ApproveSubmission(ctx context.Context, actor entity.AdminActor, req *dto.ApproveSubmissionRequest) (*dto.ApproveSubmissionResponse, error)
	RejectSubmission(ctx context.Context, actor entity.AdminActor, req *dto.RejectSubmissionRequest) error
	MarkPaid(ctx context.Context, actor entity.AdminActor, req *dto.MarkPaidRequest) error

	CreateListing(ctx context.Context, req *dto.CreateListingRequest) (*dto.CreateListingResponse, error)
	UpdateListing(ctx context.Context, req *dto.UpdateListingRequest) error
	DeleteListing(ctx context.Context, actor entity.AdminActor, id uuid.UUID) error

	SaveCommissionSetting(ctx context.Context, req *dto.CommissionSettingRequest) (*dto.CommissionSettingResponse, error)
	ListCommissionSettings(ctx context.Context) ([]*dto.CommissionSettingResponse, error)

	SavePaymentSetting(ctx context.Context, req *dto.PaymentSettingRequest) (*dto.PaymentSettingResponse, error)
	ListPaymentSettings(ctx context.Context) ([]*dto.PaymentSettingResponse, error)

	ListPaymentRecords(ctx context.Context, submissionId *uuid.UUID) ([]*dto.PaymentRecordResponse, error)

	DashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
	RunSweep(ctx context.Context) (*dto.SweepResponse, error)

	ListSystemLogs(page, limit int, level string) ([]*dto.LogListResponse, error)
	ShowSystemLog(id string) (*dto.LogDetailResponse, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	machine    *lifecycle.Machine
	sweeper    *listing.Sweeper
	policy     IPolicyService
	logger     logger.ILogger
}

func NewAdminService(
	uowFactory unitofwork.RepositoryFactory,
	machine *lifecycle.Machine,
	sweeper *listing.Sweeper,
	policy IPolicyService,
	logger logger.ILogger,
) IAdminService {
	return &adminService{
		uowFactory: uowFactory,
		machine:    machine,
		sweeper:    sweeper,
		policy:     policy,
		logger:     logger,
	}
}

func (s *adminService) ListSubmissions(ctx context.Context, req *dto.ListSubmissionsRequest) ([]*dto.SubmissionResponse, error) {
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

	var specs []specification.Specification
	if req.Status != "" {
		specs = append(specs, specification.SubmissionStatusIs{Status: req.Status})
	}
	if req.PaymentStatus != "" {
		specs = append(specs, specification.PaymentStatusIs{Status: req.PaymentStatus})
	}
	specs = append(specs,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: pageSize, Offset: (page - 1) * pageSize},
	)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	subs, err := uow.SubmissionRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.SubmissionResponse, 0, len(subs))
	for _, sub := range subs {
		res = append(res, toSubmissionResponse(sub))
	}
	return res, nil
}

func (s *adminService) ShowSubmission(ctx context.Context, id uuid.UUID) (*dto.SubmissionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	sub, err := uow.SubmissionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, apperrors.NotFoundf("submission %s not found", id)
	}
	return toSubmissionResponse(sub), nil
}

func (s *adminService) ApproveSubmission(ctx context.Context, actor entity.AdminActor, req *dto.ApproveSubmissionRequest) (*dto.ApproveSubmissionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	listingId, err := s.machine.ApproveByAdmin(ctx, uow, actor, req.Id, lifecycle.ApproveOptions{
		Override: req.Override,
		Publish: lifecycle.PublishOptions{
			Featured:       req.Featured,
			ExpiresAt:      req.ExpiresAt,
			AutoExpireDays: req.AutoExpireDays,
		},
	})
	if err != nil {
		return nil, err
	}
	return &dto.ApproveSubmissionResponse{
		SubmissionId: req.Id,
		ListingId:    listingId,
	}, nil
}

func (s *adminService) RejectSubmission(ctx context.Context, actor entity.AdminActor, req *dto.RejectSubmissionRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.machine.Reject(ctx, uow, actor, req.Id, req.Reason)
}

// MarkPaid confirms an out-of-band payment (bank transfer, PayPal). Card
// payments are confirmed exclusively by the processor webhook; marking
// those by hand would bypass the verified money trail.
func (s *adminService) MarkPaid(ctx context.Context, actor entity.AdminActor, req *dto.MarkPaidRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	sub, err := uow.SubmissionRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return err
	}
	if sub == nil {
		return apperrors.NotFoundf("submission %s not found", req.Id)
	}
	if sub.CommissionAmount == 0 {
		return apperrors.Validationf("submission %s is free, there is nothing to mark paid", req.Id)
	}

	setting, err := uow.PaymentSettingRepository().FindActive(ctx)
	if err != nil {
		return err
	}
	if setting != nil && setting.PaymentMethod == entity.PaymentMethodStripe {
		return apperrors.PolicyViolationf("card payments are confirmed by the processor; manual confirmation is disabled")
	}

	var providerRef *string
	if req.Reference != "" {
		providerRef = &req.Reference
	}

	policy, err := s.policy.Current(ctx)
	if err != nil {
		return err
	}

	return s.machine.HandlePaymentConfirmed(ctx, uow, sub.Id, policy,
		sub.CommissionAmount, listingCurrency, entity.PaymentSourceAdmin, providerRef)
}

// CreateListing publishes a property directly, without a submission or a
// commission. Used for the agency's own inventory.
func (s *adminService) CreateListing(ctx context.Context, req *dto.CreateListingRequest) (*dto.CreateListingResponse, error) {
	now := time.Now()
	l := &entity.Listing{
		Id:             uuid.New(),
		Title:          req.Title,
		Description:    req.Description,
		Price:          req.Price,
		PropertyType:   req.PropertyType,
		ListingKind:    entity.ListingKind(req.ListingKind),
		Bedrooms:       req.Bedrooms,
		Bathrooms:      req.Bathrooms,
		AreaSqft:       req.AreaSqft,
		Address:        req.Address,
		City:           req.City,
		State:          req.State,
		ZipCode:        req.ZipCode,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		Features:       req.Features,
		Images:         req.Images,
		Status:         entity.ListingStatusAvailable,
		Featured:       req.Featured,
		ExpiresAt:      req.ExpiresAt,
		AutoExpireDays: req.AutoExpireDays,
		CreatedAt:      now,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ListingRepository().Create(ctx, l); err != nil {
		return nil, err
	}
	return &dto.CreateListingResponse{Id: l.Id}, nil
}

func (s *adminService) UpdateListing(ctx context.Context, req *dto.UpdateListingRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	l, err := uow.ListingRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return err
	}
	if l == nil {
		return apperrors.NotFoundf("listing %s not found", req.Id)
	}

	l.Title = req.Title
	l.Description = req.Description
	l.Price = req.Price
	l.Status = entity.ListingStatus(req.Status)
	l.Featured = req.Featured
	l.ExpiresAt = req.ExpiresAt
	l.AutoExpireDays = req.AutoExpireDays
	l.UpdatedAt = time.Now()

	return uow.ListingRepository().Update(ctx, l)
}

func (s *adminService) DeleteListing(ctx context.Context, actor entity.AdminActor, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.machine.DeletePublished(ctx, uow, actor, id)
}

func (s *adminService) SaveCommissionSetting(ctx context.Context, req *dto.CommissionSettingRequest) (*dto.CommissionSettingResponse, error) {
	setting := &entity.CommissionSetting{
		Id:              uuid.New(),
		ListingKind:     entity.ListingKind(req.ListingKind),
		Percentage:      req.Percentage,
		AutoApprovePaid: req.AutoApprovePaid,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.CommissionRepository().Upsert(ctx, setting); err != nil {
		return nil, err
	}

	// New percentages must take effect before the cache TTL lapses.
	s.policy.Invalidate()

	saved, err := uow.CommissionRepository().FindByKind(ctx, setting.ListingKind)
	if err != nil {
		return nil, err
	}
	return toCommissionSettingResponse(saved), nil
}

func (s *adminService) ListCommissionSettings(ctx context.Context) ([]*dto.CommissionSettingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	settings, err := uow.CommissionRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.CommissionSettingResponse, 0, len(settings))
	for _, setting := range settings {
		res = append(res, toCommissionSettingResponse(setting))
	}
	return res, nil
}

func (s *adminService) SavePaymentSetting(ctx context.Context, req *dto.PaymentSettingRequest) (*dto.PaymentSettingResponse, error) {
	method := entity.PaymentMethod(req.PaymentMethod)
	if method == entity.PaymentMethodStripe && req.StripeSecretKey == "" {
		return nil, apperrors.Validationf("stripe configuration requires a secret key")
	}

	setting := &entity.PaymentSetting{
		Id:                     uuid.New(),
		PaymentMethod:          method,
		IsActive:               true,
		BankName:               req.BankName,
		AccountHolder:          req.AccountHolder,
		Iban:                   req.Iban,
		BicSwift:               req.BicSwift,
		PaypalEmail:            req.PaypalEmail,
		StripePublishableKey:   req.StripePublishableKey,
		StripeSecretKey:        req.StripeSecretKey,
		StripeWebhookSecret:    req.StripeWebhookSecret,
		CardInstructions:       req.CardInstructions,
		AdditionalInstructions: req.AdditionalInstructions,
		CreatedAt:              time.Now(),
		UpdatedAt:              time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.PaymentSettingRepository().Save(ctx, setting); err != nil {
		return nil, err
	}
	return toPaymentSettingResponse(setting), nil
}

func (s *adminService) ListPaymentSettings(ctx context.Context) ([]*dto.PaymentSettingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	settings, err := uow.PaymentSettingRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.PaymentSettingResponse, 0, len(settings))
	for _, setting := range settings {
		res = append(res, toPaymentSettingResponse(setting))
	}
	return res, nil
}

func (s *adminService) ListPaymentRecords(ctx context.Context, submissionId *uuid.UUID) ([]*dto.PaymentRecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var records []*entity.PaymentRecord
	var err error
	if submissionId != nil {
		records, err = uow.PaymentRecordRepository().FindBySubmission(ctx, *submissionId)
	} else {
		records, err = uow.PaymentRecordRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	}
	if err != nil {
		return nil, err
	}

	res := make([]*dto.PaymentRecordResponse, 0, len(records))
	for _, r := range records {
		res = append(res, &dto.PaymentRecordResponse{
			Id:             r.Id,
			SubmissionId:   r.SubmissionId,
			Amount:         r.Amount,
			Currency:       r.Currency,
			Source:         string(r.Source),
			ProviderRef:    r.ProviderRef,
			RefundRequired: r.RefundRequired,
			CreatedAt:      r.CreatedAt,
		})
	}
	return res, nil
}

func (s *adminService) DashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	pending, err := uow.SubmissionRepository().CountByStatus(ctx, entity.SubmissionStatusPending)
	if err != nil {
		return nil, err
	}
	approved, err := uow.SubmissionRepository().CountByStatus(ctx, entity.SubmissionStatusApproved)
	if err != nil {
		return nil, err
	}
	rejected, err := uow.SubmissionRepository().CountByStatus(ctx, entity.SubmissionStatusRejected)
	if err != nil {
		return nil, err
	}
	active, err := uow.ListingRepository().CountActive(ctx)
	if err != nil {
		return nil, err
	}
	collected, err := uow.SubmissionRepository().SumPaidCommission(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStatsResponse{
		PendingSubmissions:  pending,
		ApprovedSubmissions: approved,
		RejectedSubmissions: rejected,
		ActiveListings:      active,
		CollectedCommission: collected,
	}, nil
}

func (s *adminService) RunSweep(ctx context.Context) (*dto.SweepResponse, error) {
	expired, err := s.sweeper.Sweep(ctx)
	if err != nil {
		return nil, err
	}
	reconciled, err := s.sweeper.Reconcile(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.SweepResponse{Expired: expired, Reconciled: reconciled}, nil
}

// ListSystemLogs reads the rotated JSON log file for the dashboard, not
// the database.
func (s *adminService) ListSystemLogs(page, limit int, level string) ([]*dto.LogListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	logs, err := s.logger.GetLogs(level, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.LogListResponse, 0, len(logs))
	for _, l := range logs {
		res = append(res, &dto.LogListResponse{
			Id:        l.Id,
			Timestamp: l.Timestamp,
			Level:     l.Level,
			Module:    l.Module,
			Message:   l.Message,
		})
	}
	return res, nil
}

func (s *adminService) ShowSystemLog(id string) (*dto.LogDetailResponse, error) {
	l, err := s.logger.GetLogById(id)
	if err != nil {
		return nil, apperrors.NotFoundf("log %s not found", id)
	}
	return &dto.LogDetailResponse{
		LogListResponse: dto.LogListResponse{
			Id:        l.Id,
			Timestamp: l.Timestamp,
			Level:     l.Level,
			Module:    l.Module,
			Message:   l.Message,
		},
		Details: l.Details,
	}, nil
}

func toCommissionSettingResponse(setting *entity.CommissionSetting) *dto.CommissionSettingResponse {
	if setting == nil {
		return nil
	}
	return &dto.CommissionSettingResponse{
		Id:              setting.Id,
		ListingKind:     string(setting.ListingKind),
		Percentage:      setting.Percentage,
		AutoApprovePaid: setting.AutoApprovePaid,
		UpdatedAt:       setting.UpdatedAt,
	}
}

func toPaymentSettingResponse(setting *entity.PaymentSetting) *dto.PaymentSettingResponse {
	return &dto.PaymentSettingResponse{
		Id:                     setting.Id,
		PaymentMethod:          string(setting.PaymentMethod),
		IsActive:               setting.IsActive,
		BankName:               setting.BankName,
		AccountHolder:          setting.AccountHolder,
		Iban:                   setting.Iban,
		BicSwift:               setting.BicSwift,
		PaypalEmail:            setting.PaypalEmail,
		StripePublishableKey:   setting.StripePublishableKey,
		CardInstructions:       setting.CardInstructions,
		AdditionalInstructions: setting.AdditionalInstructions,
		UpdatedAt:              setting.UpdatedAt,
	}
}
