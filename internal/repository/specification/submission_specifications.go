package specification

import (
	"gorm.io/gorm"

	"github.com/google/uuid"
)

type OwnedBy struct {
	OwnerID uuid.UUID
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("owner_id = ?", s.OwnerID)
}

type SubmissionStatusIs struct {
	Status string
}

func (s SubmissionStatusIs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("submission_status = ?", s.Status)
}

type PaymentStatusIs struct {
	Status string
}

func (s PaymentStatusIs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("payment_status = ?", s.Status)
}

// ApprovedUnlinked matches submissions whose listing materialization never
// completed (publish-then-link partial failure); used by the
// reconciliation pass.
type ApprovedUnlinked struct{}

func (s ApprovedUnlinked) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("submission_status = ? AND approved_listing_id IS NULL", "approved")
}

type ByApprovedListingID struct {
	ListingID uuid.UUID
}

func (s ByApprovedListingID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("approved_listing_id = ?", s.ListingID)
}
