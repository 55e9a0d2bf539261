// FILE: internal/entity/commission_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CommissionSetting is one row of global commission configuration,
// unique per listing kind.
type CommissionSetting struct {
	Id              uuid.UUID
	ListingKind     ListingKind
	Percentage      float64
	AutoApprovePaid bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CommissionPolicy is the aggregated view the pricing and approval logic
// consumes: one percentage per listing kind plus the auto-approve flag.
type CommissionPolicy struct {
	RentPercentage  float64
	SalePercentage  float64
	AutoApprovePaid bool
}

func (p CommissionPolicy) PercentageFor(kind ListingKind) float64 {
	if kind == ListingKindSale {
		return p.SalePercentage
	}
	return p.RentPercentage
}

// PolicyFromSettings folds setting rows into a single policy. Missing
// kinds keep the zero percentage (free listings).
func PolicyFromSettings(settings []*CommissionSetting) CommissionPolicy {
	var p CommissionPolicy
	for _, s := range settings {
		switch s.ListingKind {
		case ListingKindRent:
			p.RentPercentage = s.Percentage
		case ListingKindSale:
			p.SalePercentage = s.Percentage
		}
		if s.AutoApprovePaid {
			p.AutoApprovePaid = true
		}
	}
	return p
}
