package lifecycle

import "estate-listing-be/internal/entity"

// RequiresPayment reports whether the submitter still has money to move
// before the submission can be published without an override. Zero
// commission means the listing is free.
func RequiresPayment(sub *entity.Submission) bool {
	return sub.CommissionAmount > 0
}

// CanApprove is the payment gate: approval is allowed when the listing
// is free, when the commission has been paid, or when an admin
// explicitly overrides the payment requirement. The gate never moves
// money itself; it only reads payment_status.
func CanApprove(sub *entity.Submission, override bool) bool {
	if sub.CommissionAmount == 0 {
		return true
	}
	if sub.PaymentStatus == entity.PaymentStatusPaid {
		return true
	}
	return override
}
