package payment

import (
	"context"

	"github.com/google/uuid"
)

// IntentRequest asks the processor to collect a commission payment for
// one submission. Amount is in the currency's major unit (euros, not
// cents); conversion to the processor's minor unit happens inside the
// implementation.
type IntentRequest struct {
	SubmissionId  uuid.UUID
	Amount        float64
	Currency      string
	Description   string
	CustomerEmail string
}

// Intent is the processor-side handle the client needs to complete the
// payment in the browser.
type Intent struct {
	ProviderRef  string
	ClientSecret string
}

// CheckoutRequest asks for a hosted checkout page instead of an
// embedded payment element.
type CheckoutRequest struct {
	SubmissionId  uuid.UUID
	Amount        float64
	Currency      string
	Description   string
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
}

// Checkout carries the redirect target for a hosted session.
type Checkout struct {
	SessionId   string
	RedirectURL string
}

// WebhookEvent is the processor-agnostic result of verifying an
// incoming webhook. SubmissionId comes from the metadata attached when
// the intent or session was created.
type WebhookEvent struct {
	Id           string
	Type         string
	SubmissionId uuid.UUID
	Amount       float64
	Currency     string
	ProviderRef  string

	// Confirmed is true only for event types that mean money actually
	// moved. Unrecognized event types verify fine but stay unconfirmed.
	Confirmed bool
}

// Processor abstracts the card payment provider. Verification failures
// must surface as errors, never as zero-value events: an unverifiable
// webhook is treated as hostile.
type Processor interface {
	CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error)
	CreateCheckout(ctx context.Context, req CheckoutRequest) (*Checkout, error)
	VerifyWebhook(payload []byte, signature string) (*WebhookEvent, error)
}
