// FILE: internal/service/payment_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"estate-listing-be/internal/dto"
	"estate-listing-be/internal/entity"
	"estate-listing-be/internal/pkg/apperrors"
	"estate-listing-be/internal/pkg/logger"
	"estate-listing-be/internal/repository/specification"
	"estate-listing-be/internal/repository/unitofwork"
	"estate-listing-be/pkg/payment"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// webhookDedupeTTL covers the processor's retry window; a replayed event
// id inside this window is acknowledged without reprocessing.
const webhookDedupeTTL = 24 * time.Hour

type IPaymentService interface {
	CreateIntent(ctx context.Context, owner entity.OwnerRef, req *dto.CreateIntentRequest) (*dto.CreateIntentResponse, error)
	CreateCheckout(ctx context.Context, owner entity.OwnerRef, req *dto.CreateCheckoutRequest) (*dto.CreateCheckoutResponse, error)
	GetInstructions(ctx context.Context, owner entity.OwnerRef, submissionId uuid.UUID) (*dto.PaymentInstructionsResponse, error)
	SelfReport(ctx context.Context, owner entity.OwnerRef, req *dto.SelfReportPaymentRequest) error
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

type paymentService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
	rdb        *redis.Client
	logger     logger.ILogger
}

func NewPaymentService(
	uowFactory unitofwork.RepositoryFactory,
	publisher IPublisherService,
	rdb *redis.Client,
	logger logger.ILogger,
) IPaymentService {
	return &paymentService{
		uowFactory: uowFactory,
		publisher:  publisher,
		rdb:        rdb,
		logger:     logger,
	}
}

// payableSubmission loads a submission and checks it actually has an
// outstanding commission the given owner can pay.
func (s *paymentService) payableSubmission(ctx context.Context, owner entity.OwnerRef, id uuid.UUID) (*entity.Submission, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	sub, err := uow.SubmissionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if sub == nil || sub.OwnerId != owner.Id {
		return nil, apperrors.NotFoundf("submission %s not found", id)
	}
	if sub.CommissionAmount == 0 {
		return nil, apperrors.Validationf("submission %s is free, there is nothing to pay", id)
	}
	if sub.PaymentStatus == entity.PaymentStatusPaid {
		return nil, apperrors.Conflictf("commission for submission %s is already paid", id)
	}
	if sub.SubmissionStatus == entity.SubmissionStatusRejected {
		return nil, apperrors.PolicyViolationf("submission %s was rejected; paying now would require a refund", id)
	}
	return sub, nil
}

// stripeProcessor builds a processor from the active payment
// configuration. Settings live in the database so keys can be rotated
// by an admin without a deploy.
func (s *paymentService) stripeProcessor(ctx context.Context) (payment.Processor, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	setting, err := uow.PaymentSettingRepository().FindActive(ctx)
	if err != nil {
		return nil, err
	}
	if setting == nil || setting.PaymentMethod != entity.PaymentMethodStripe || setting.StripeSecretKey == "" {
		return nil, apperrors.Validationf("card payments are not configured; use the manual payment instructions")
	}
	return payment.NewStripeProcessor(setting.StripeSecretKey, setting.StripeWebhookSecret), nil
}

func (s *paymentService) CreateIntent(ctx context.Context, owner entity.OwnerRef, req *dto.CreateIntentRequest) (*dto.CreateIntentResponse, error) {
	sub, err := s.payableSubmission(ctx, owner, req.SubmissionId)
	if err != nil {
		return nil, err
	}

	processor, err := s.stripeProcessor(ctx)
	if err != nil {
		return nil, err
	}

	intent, err := processor.CreateIntent(ctx, payment.IntentRequest{
		SubmissionId:  sub.Id,
		Amount:        sub.CommissionAmount,
		Currency:      listingCurrency,
		Description:   fmt.Sprintf("Listing commission: %s", sub.Title),
		CustomerEmail: sub.OwnerEmail,
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateIntentResponse{
		ProviderRef:  intent.ProviderRef,
		ClientSecret: intent.ClientSecret,
		Amount:       sub.CommissionAmount,
		Currency:     listingCurrency,
	}, nil
}

func (s *paymentService) CreateCheckout(ctx context.Context, owner entity.OwnerRef, req *dto.CreateCheckoutRequest) (*dto.CreateCheckoutResponse, error) {
	sub, err := s.payableSubmission(ctx, owner, req.SubmissionId)
	if err != nil {
		return nil, err
	}

	processor, err := s.stripeProcessor(ctx)
	if err != nil {
		return nil, err
	}

	checkout, err := processor.CreateCheckout(ctx, payment.CheckoutRequest{
		SubmissionId:  sub.Id,
		Amount:        sub.CommissionAmount,
		Currency:      listingCurrency,
		Description:   fmt.Sprintf("Listing commission: %s", sub.Title),
		CustomerEmail: sub.OwnerEmail,
		SuccessURL:    req.SuccessURL,
		CancelURL:     req.CancelURL,
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateCheckoutResponse{
		SessionId:   checkout.SessionId,
		RedirectURL: checkout.RedirectURL,
	}, nil
}

func (s *paymentService) GetInstructions(ctx context.Context, owner entity.OwnerRef, submissionId uuid.UUID) (*dto.PaymentInstructionsResponse, error) {
	sub, err := s.payableSubmission(ctx, owner, submissionId)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	setting, err := uow.PaymentSettingRepository().FindActive(ctx)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return nil, apperrors.NotFoundf("no payment method is configured")
	}

	reference := fmt.Sprintf("SUB-%s", sub.Id)
	ins := payment.BuildInstructions(setting, reference, sub.CommissionAmount, listingCurrency)

	return &dto.PaymentInstructionsResponse{
		Method:    string(ins.Method),
		Amount:    sub.CommissionAmount,
		Currency:  listingCurrency,
		Reference: reference,
		Steps:     ins.Lines,
	}, nil
}

// SelfReport lets a submitter declare an out-of-band payment ("I have
// transferred the money"). Only allowed while a manual payment method is
// active; with Stripe configured the webhook is the sole confirmation
// path. The confirmation is queued like a webhook but audited with
// source "manual", so an admin can always tell a bank-statement claim
// from a verified processor event.
func (s *paymentService) SelfReport(ctx context.Context, owner entity.OwnerRef, req *dto.SelfReportPaymentRequest) error {
	sub, err := s.payableSubmission(ctx, owner, req.SubmissionId)
	if err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	setting, err := uow.PaymentSettingRepository().FindActive(ctx)
	if err != nil {
		return err
	}
	if setting == nil || setting.PaymentMethod == entity.PaymentMethodStripe {
		return apperrors.PolicyViolationf("card payments are confirmed automatically; self-reporting is disabled")
	}

	reference := req.Reference
	msg := dto.PaymentConfirmedMessage{
		SubmissionId: sub.Id,
		Amount:       sub.CommissionAmount,
		Currency:     listingCurrency,
		Source:       string(entity.PaymentSourceManual),
		ProviderRef:  &reference,
	}
	msgJson, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	if err := s.publisher.Publish(ctx, msgJson); err != nil {
		return err
	}

	s.logger.Info("PAYMENT", "Self-reported payment queued", map[string]interface{}{
		"submission_id": sub.Id,
		"reference":     reference,
	})
	return nil
}

// HandleWebhook verifies the processor callback, deduplicates it, and
// schedules the lifecycle work on the in-process queue. Any error
// answers non-2xx so the processor retries; nothing is confirmed on a
// failed verification.
func (s *paymentService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	processor, err := s.stripeProcessor(ctx)
	if err != nil {
		return err
	}

	ev, err := processor.VerifyWebhook(payload, signature)
	if err != nil {
		return err
	}
	if !ev.Confirmed {
		s.logger.Info("WEBHOOK", "Ignoring non-confirming event", map[string]interface{}{"event_id": ev.Id, "type": ev.Type})
		return nil
	}

	// Event-id dedupe. Redis being down fails the webhook, which is the
	// safe direction: the processor retries and we dedupe then.
	dedupeKey := fmt.Sprintf("payment:event:%s", ev.Id)
	fresh, err := s.rdb.SetNX(ctx, dedupeKey, 1, webhookDedupeTTL).Result()
	if err != nil {
		return apperrors.Processorf(err, "webhook dedupe store unavailable")
	}
	if !fresh {
		s.logger.Info("WEBHOOK", "Duplicate event acknowledged", map[string]interface{}{"event_id": ev.Id})
		return nil
	}

	providerRef := ev.ProviderRef
	msg := dto.PaymentConfirmedMessage{
		SubmissionId: ev.SubmissionId,
		Amount:       ev.Amount,
		Currency:     ev.Currency,
		Source:       string(entity.PaymentSourceProcessor),
		ProviderRef:  &providerRef,
	}
	msgJson, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	if err := s.publisher.Publish(ctx, msgJson); err != nil {
		// Let the processor retry; the dedupe key blocks double handling
		// only within its TTL, so release it on a failed enqueue.
		s.rdb.Del(ctx, dedupeKey)
		return err
	}

	s.logger.Info("WEBHOOK", "Payment confirmation queued", map[string]interface{}{
		"event_id":      ev.Id,
		"submission_id": ev.SubmissionId,
	})
	return nil
}
