package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"estate-listing-be/internal/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"
)

const metadataSubmissionKey = "submission_id"

// StripeProcessor implements Processor against the Stripe API. Keys are
// injected per instance rather than set on the package global so the
// active configuration can be rotated without a restart.
type StripeProcessor struct {
	api           *client.API
	webhookSecret string
}

func NewStripeProcessor(secretKey, webhookSecret string) *StripeProcessor {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeProcessor{
		api:           api,
		webhookSecret: webhookSecret,
	}
}

// minorUnits converts a major-unit amount to Stripe's integer cents.
func minorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func (p *StripeProcessor) CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:       stripe.Int64(minorUnits(req.Amount)),
		Currency:     stripe.String(req.Currency),
		Description:  stripe.String(req.Description),
		ReceiptEmail: stripe.String(req.CustomerEmail),
	}
	params.Context = ctx
	params.AddMetadata(metadataSubmissionKey, req.SubmissionId.String())

	pi, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return nil, apperrors.Processorf(err, "failed to create payment intent for submission %s", req.SubmissionId)
	}

	return &Intent{
		ProviderRef:  pi.ID,
		ClientSecret: pi.ClientSecret,
	}, nil
}

func (p *StripeProcessor) CreateCheckout(ctx context.Context, req CheckoutRequest) (*Checkout, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:    stripe.String(req.SuccessURL),
		CancelURL:     stripe.String(req.CancelURL),
		CustomerEmail: stripe.String(req.CustomerEmail),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(req.Currency),
					UnitAmount: stripe.Int64(minorUnits(req.Amount)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.Description),
					},
				},
			},
		},
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: map[string]string{metadataSubmissionKey: req.SubmissionId.String()},
		},
	}
	params.Context = ctx
	params.AddMetadata(metadataSubmissionKey, req.SubmissionId.String())

	sess, err := p.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, apperrors.Processorf(err, "failed to create checkout session for submission %s", req.SubmissionId)
	}

	return &Checkout{
		SessionId:   sess.ID,
		RedirectURL: sess.URL,
	}, nil
}

// VerifyWebhook checks the Stripe signature and normalizes the event.
// Any verification or parsing failure is returned as an error so the
// caller answers non-2xx and Stripe retries.
func (p *StripeProcessor) VerifyWebhook(payload []byte, signature string) (*WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, p.webhookSecret)
	if err != nil {
		return nil, apperrors.Processorf(err, "webhook signature verification failed")
	}

	out := &WebhookEvent{
		Id:   event.ID,
		Type: string(event.Type),
	}

	switch event.Type {
	case "payment_intent.succeeded":
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return nil, apperrors.Processorf(err, "failed to parse payment intent payload")
		}
		subId, err := submissionIdFromMetadata(pi.Metadata)
		if err != nil {
			return nil, err
		}
		out.SubmissionId = subId
		out.Amount = float64(pi.AmountReceived) / 100
		out.Currency = string(pi.Currency)
		out.ProviderRef = pi.ID
		out.Confirmed = true

	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return nil, apperrors.Processorf(err, "failed to parse checkout session payload")
		}
		subId, err := submissionIdFromMetadata(sess.Metadata)
		if err != nil {
			return nil, err
		}
		out.SubmissionId = subId
		out.Amount = float64(sess.AmountTotal) / 100
		out.Currency = string(sess.Currency)
		out.ProviderRef = sess.ID
		if sess.PaymentIntent != nil {
			out.ProviderRef = sess.PaymentIntent.ID
		}
		out.Confirmed = sess.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid
	}

	return out, nil
}

func submissionIdFromMetadata(metadata map[string]string) (uuid.UUID, error) {
	raw, ok := metadata[metadataSubmissionKey]
	if !ok || raw == "" {
		return uuid.Nil, apperrors.Processorf(fmt.Errorf("metadata key %q missing", metadataSubmissionKey), "webhook event carries no submission reference")
	}
	subId, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperrors.Processorf(err, "webhook submission reference %q is not a uuid", raw)
	}
	return subId, nil
}
