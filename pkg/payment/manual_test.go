package payment

import (
	"strings"
	"testing"

	"estate-listing-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestBuildInstructionsBankTransfer(t *testing.T) {
	setting := &entity.PaymentSetting{
		PaymentMethod: entity.PaymentMethodBankTransfer,
		BankName:      "Deutsche Bank",
		AccountHolder: "Estate Listing GmbH",
		Iban:          "DE89370400440532013000",
		BicSwift:      "DEUTDEFF",
	}

	ins := BuildInstructions(setting, "SUB-42", 150, "EUR")

	assert.Equal(t, entity.PaymentMethodBankTransfer, ins.Method)
	joined := strings.Join(ins.Lines, "\n")
	assert.Contains(t, joined, "150.00 EUR")
	assert.Contains(t, joined, "DE89370400440532013000")
	assert.Contains(t, joined, "DEUTDEFF")
	assert.Contains(t, joined, "SUB-42")
}

func TestBuildInstructionsOmitsEmptyBic(t *testing.T) {
	setting := &entity.PaymentSetting{
		PaymentMethod: entity.PaymentMethodBankTransfer,
		BankName:      "ING",
		AccountHolder: "Estate Listing GmbH",
		Iban:          "NL91ABNA0417164300",
	}

	ins := BuildInstructions(setting, "SUB-7", 80, "EUR")
	for _, line := range ins.Lines {
		assert.NotContains(t, line, "BIC")
	}
}

func TestBuildInstructionsPaypalAndExtras(t *testing.T) {
	setting := &entity.PaymentSetting{
		PaymentMethod:          entity.PaymentMethodPaypal,
		PaypalEmail:            "pay@example.com",
		AdditionalInstructions: "Payments are verified within one business day.",
	}

	ins := BuildInstructions(setting, "SUB-9", 42.5, "EUR")
	joined := strings.Join(ins.Lines, "\n")
	assert.Contains(t, joined, "pay@example.com")
	assert.Contains(t, joined, "SUB-9")
	assert.Equal(t, "Payments are verified within one business day.", ins.Lines[len(ins.Lines)-1])
}
