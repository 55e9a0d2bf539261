// FILE: internal/entity/payment_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type PaymentMethod string
type PaymentSource string

const (
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodPaypal       PaymentMethod = "paypal"
	PaymentMethodStripe       PaymentMethod = "stripe"
	PaymentMethodCard         PaymentMethod = "card"

	// PaymentSource records how a confirmation arrived: verified by the
	// processor webhook, self-reported by the submitter, or marked by an
	// admin. Only "processor" confirmations are cryptographically verified.
	PaymentSourceProcessor PaymentSource = "processor"
	PaymentSourceManual    PaymentSource = "manual"
	PaymentSourceAdmin     PaymentSource = "admin"
)

// PaymentSetting is the single active processor configuration. Secret
// fields must never reach a client-facing DTO.
type PaymentSetting struct {
	Id            uuid.UUID
	PaymentMethod PaymentMethod
	IsActive      bool

	// bank_transfer
	BankName      string
	AccountHolder string
	Iban          string
	BicSwift      string

	// paypal
	PaypalEmail string

	// stripe (secrets, backend only)
	StripePublishableKey string
	StripeSecretKey      string
	StripeWebhookSecret  string

	// card (manual instructions)
	CardInstructions string

	AdditionalInstructions string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PaymentRecord is the audit row written for every payment confirmation.
type PaymentRecord struct {
	Id           uuid.UUID
	SubmissionId uuid.UUID
	Amount       float64
	Currency     string
	Source       PaymentSource
	ProviderRef  *string

	// A payment that landed after the submission was already rejected is
	// kept but flagged for manual refund, never silently dropped.
	RefundRequired bool

	CreatedAt time.Time
}
