// Package commission computes the listing fee charged for publishing a
// property. The fee is a snapshot: callers persist it on the submission
// at creation time and never recompute it from a later policy.
package commission

import (
	"math"

	"estate-listing-be/internal/entity"
)

// ProcessorMinimumFee is the smallest amount the card processor will
// charge (Stripe's €0.50 floor). A computed fee of exactly zero means
// "free listing" and is never clamped up to this floor.
const ProcessorMinimumFee = 0.50

// Compute returns the commission for a candidate listing. Price is
// assumed non-negative and finite; validation happens upstream.
func Compute(price float64, kind entity.ListingKind, policy entity.CommissionPolicy) float64 {
	raw := price * policy.PercentageFor(kind) / 100

	fee := math.Round(raw*100) / 100

	// Clamp against the unrounded fee: a sub-cent charge must still hit
	// the processor floor instead of rounding down to a free listing.
	if raw > 0 && fee < ProcessorMinimumFee {
		fee = ProcessorMinimumFee
	}
	return fee
}
