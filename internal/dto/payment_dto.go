package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateIntentRequest struct {
	SubmissionId uuid.UUID `json:"submission_id" validate:"required"`
}

type CreateIntentResponse struct {
	ProviderRef  string  `json:"provider_ref"`
	ClientSecret string  `json:"client_secret"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
}

type CreateCheckoutRequest struct {
	SubmissionId uuid.UUID `json:"submission_id" validate:"required"`
	SuccessURL   string    `json:"success_url" validate:"required,url"`
	CancelURL    string    `json:"cancel_url" validate:"required,url"`
}

type CreateCheckoutResponse struct {
	SessionId   string `json:"session_id"`
	RedirectURL string `json:"redirect_url"`
}

type SelfReportPaymentRequest struct {
	SubmissionId uuid.UUID
	// What the submitter says they paid with: a bank transfer reference,
	// a PayPal transaction id.
	Reference string `json:"reference" validate:"required"`
}

type PaymentInstructionsResponse struct {
	Method    string   `json:"method"`
	Amount    float64  `json:"amount"`
	Currency  string   `json:"currency"`
	Reference string   `json:"reference"`
	Steps     []string `json:"steps"`
}

// PaymentConfirmedMessage is the in-process queue payload handed from
// the webhook handler to the lifecycle consumer. The webhook answers the
// processor immediately; the consumer does the heavy lifting.
type PaymentConfirmedMessage struct {
	SubmissionId uuid.UUID `json:"submission_id"`
	Amount       float64   `json:"amount"`
	Currency     string    `json:"currency"`
	Source       string    `json:"source"`
	ProviderRef  *string   `json:"provider_ref,omitempty"`
}

type PaymentRecordResponse struct {
	Id             uuid.UUID `json:"id"`
	SubmissionId   uuid.UUID `json:"submission_id"`
	Amount         float64   `json:"amount"`
	Currency       string    `json:"currency"`
	Source         string    `json:"source"`
	ProviderRef    *string   `json:"provider_ref,omitempty"`
	RefundRequired bool      `json:"refund_required"`
	CreatedAt      time.Time `json:"created_at"`
}

type PaymentSettingRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required,oneof=bank_transfer paypal stripe card"`

	BankName      string `json:"bank_name"`
	AccountHolder string `json:"account_holder"`
	Iban          string `json:"iban"`
	BicSwift      string `json:"bic_swift"`

	PaypalEmail string `json:"paypal_email" validate:"omitempty,email"`

	StripePublishableKey string `json:"stripe_publishable_key"`
	StripeSecretKey      string `json:"stripe_secret_key"`
	StripeWebhookSecret  string `json:"stripe_webhook_secret"`

	CardInstructions       string `json:"card_instructions"`
	AdditionalInstructions string `json:"additional_instructions"`
}

// PaymentSettingResponse deliberately omits the Stripe secret key and
// webhook secret; only the publishable key may reach a client.
type PaymentSettingResponse struct {
	Id            uuid.UUID `json:"id"`
	PaymentMethod string    `json:"payment_method"`
	IsActive      bool      `json:"is_active"`

	BankName      string `json:"bank_name,omitempty"`
	AccountHolder string `json:"account_holder,omitempty"`
	Iban          string `json:"iban,omitempty"`
	BicSwift      string `json:"bic_swift,omitempty"`

	PaypalEmail string `json:"paypal_email,omitempty"`

	StripePublishableKey string `json:"stripe_publishable_key,omitempty"`

	CardInstructions       string `json:"card_instructions,omitempty"`
	AdditionalInstructions string `json:"additional_instructions,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}
