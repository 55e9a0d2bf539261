package commission

import (
	"testing"

	"estate-listing-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	policy := entity.CommissionPolicy{
		RentPercentage: 10,
		SalePercentage: 3,
	}

	tests := []struct {
		name  string
		price float64
		kind  entity.ListingKind
		want  float64
	}{
		{name: "rent standard", price: 1000, kind: entity.ListingKindRent, want: 100.00},
		{name: "sale standard", price: 1000, kind: entity.ListingKindSale, want: 30.00},
		{name: "below processor floor is clamped", price: 10, kind: entity.ListingKindSale, want: 0.50},
		{name: "exactly at floor", price: 5, kind: entity.ListingKindRent, want: 0.50},
		{name: "just above floor", price: 17, kind: entity.ListingKindSale, want: 0.51},
		{name: "sub-cent fee clamps to floor", price: 0.04, kind: entity.ListingKindRent, want: 0.50},
		{name: "half-cent fee clamps to floor", price: 0.05, kind: entity.ListingKindRent, want: 0.50},
		{name: "zero price stays free", price: 0, kind: entity.ListingKindRent, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.price, tt.kind, policy)
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestComputeZeroPercentageMeansFree(t *testing.T) {
	// A zero percentage means free listing, not "below minimum": the
	// floor must not kick in.
	policy := entity.CommissionPolicy{RentPercentage: 0, SalePercentage: 0}

	assert.Zero(t, Compute(1000, entity.ListingKindRent, policy))
	assert.Zero(t, Compute(999999, entity.ListingKindSale, policy))
}

func TestPercentageFor(t *testing.T) {
	policy := entity.CommissionPolicy{RentPercentage: 10, SalePercentage: 3}

	assert.Equal(t, 10.0, policy.PercentageFor(entity.ListingKindRent))
	assert.Equal(t, 3.0, policy.PercentageFor(entity.ListingKindSale))
}
