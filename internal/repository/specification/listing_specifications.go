package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BySourceSubmissionID keys a listing on the submission it was
// materialized from (the publisher's idempotency column).
type BySourceSubmissionID struct {
	SubmissionID uuid.UUID
}

func (s BySourceSubmissionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("source_submission_id = ?", s.SubmissionID)
}

type NotExpired struct{}

func (s NotExpired) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_expired = ?", false)
}

type ListingStatusIs struct {
	Status string
}

func (s ListingStatusIs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

type ByCity struct {
	City string
}

func (s ByCity) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(city) = LOWER(?)", s.City)
}

type ByListingKind struct {
	Kind string
}

func (s ByListingKind) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("listing_kind = ?", s.Kind)
}

type ByPropertyType struct {
	PropertyType string
}

func (s ByPropertyType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("property_type = ?", s.PropertyType)
}

type PriceBetween struct {
	Min float64
	Max float64
}

func (s PriceBetween) Apply(db *gorm.DB) *gorm.DB {
	if s.Min > 0 {
		db = db.Where("price >= ?", s.Min)
	}
	if s.Max > 0 {
		db = db.Where("price <= ?", s.Max)
	}
	return db
}

type FeaturedOnly struct{}

func (s FeaturedOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("featured = ?", true)
}

// Expirable narrows the sweeper scan to listings that can actually
// expire: not yet flagged, with at least one expiration field set.
type Expirable struct{}

func (s Expirable) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_expired = ? AND (expires_at IS NOT NULL OR auto_expire_days IS NOT NULL)", false)
}
