package payment

import (
	"fmt"

	"estate-listing-be/internal/entity"
)

// Instructions is what a submitter sees for payment methods that are
// settled outside the processor (bank transfer, PayPal, card-on-file).
type Instructions struct {
	Method entity.PaymentMethod
	Lines  []string
}

// BuildInstructions renders the active payment configuration into
// submitter-facing payment steps. The reference line ties the incoming
// transfer back to the submission during manual reconciliation.
func BuildInstructions(setting *entity.PaymentSetting, reference string, amount float64, currency string) Instructions {
	ins := Instructions{Method: setting.PaymentMethod}

	switch setting.PaymentMethod {
	case entity.PaymentMethodBankTransfer:
		ins.Lines = append(ins.Lines,
			fmt.Sprintf("Transfer %.2f %s to the account below.", amount, currency),
			fmt.Sprintf("Bank: %s", setting.BankName),
			fmt.Sprintf("Account holder: %s", setting.AccountHolder),
			fmt.Sprintf("IBAN: %s", setting.Iban),
		)
		if setting.BicSwift != "" {
			ins.Lines = append(ins.Lines, fmt.Sprintf("BIC/SWIFT: %s", setting.BicSwift))
		}
		ins.Lines = append(ins.Lines, fmt.Sprintf("Payment reference: %s", reference))

	case entity.PaymentMethodPaypal:
		ins.Lines = append(ins.Lines,
			fmt.Sprintf("Send %.2f %s via PayPal to %s.", amount, currency, setting.PaypalEmail),
			fmt.Sprintf("Include the reference %s in the payment note.", reference),
		)

	case entity.PaymentMethodCard:
		if setting.CardInstructions != "" {
			ins.Lines = append(ins.Lines, setting.CardInstructions)
		}
		ins.Lines = append(ins.Lines, fmt.Sprintf("Payment reference: %s", reference))
	}

	if setting.AdditionalInstructions != "" {
		ins.Lines = append(ins.Lines, setting.AdditionalInstructions)
	}

	return ins
}
