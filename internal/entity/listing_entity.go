// FILE: internal/entity/listing_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type ListingStatus string

const (
	ListingStatusAvailable ListingStatus = "available"
	ListingStatusPending   ListingStatus = "pending"
	ListingStatusSold      ListingStatus = "sold"
	ListingStatusRented    ListingStatus = "rented"
)

// Listing is a published, publicly browsable property. Property fields
// are copied from the source submission at publish time, so the listing
// stays stable even if the submission is later modified or deleted.
type Listing struct {
	Id           uuid.UUID
	Title        string
	Description  string
	Price        float64
	PropertyType string
	ListingKind  ListingKind
	Bedrooms     int
	Bathrooms    int
	AreaSqft     float64
	Address      string
	City         string
	State        string
	ZipCode      string
	Latitude     *float64
	Longitude    *float64
	Features     []string
	Images       []string

	Status   ListingStatus
	Featured bool

	IsExpired      bool
	ExpiresAt      *time.Time
	AutoExpireDays *int

	// Set when the listing was materialized from a submission; nil for
	// listings created directly by an admin.
	SourceSubmissionId *uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveExpiration resolves the single expiration instant for the
// listing. ExpiresAt wins when both fields are set; AutoExpireDays is
// only a fallback relative to CreatedAt. The second return is false for
// listings that never expire.
func (l *Listing) EffectiveExpiration() (time.Time, bool) {
	if l.ExpiresAt != nil {
		return *l.ExpiresAt, true
	}
	if l.AutoExpireDays != nil && *l.AutoExpireDays > 0 {
		return l.CreatedAt.AddDate(0, 0, *l.AutoExpireDays), true
	}
	return time.Time{}, false
}
