package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PropertySubmission struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OwnerId      uuid.UUID `gorm:"type:uuid;not null;index"`
	OwnerEmail   string    `gorm:"type:varchar(255);not null"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text"`
	Price        float64   `gorm:"type:decimal(12,2);not null"`
	PropertyType string    `gorm:"type:varchar(50);not null"`
	ListingKind  string    `gorm:"type:varchar(10);not null;index"`
	Bedrooms     int       `gorm:"default:0"`
	Bathrooms    int       `gorm:"default:0"`
	AreaSqft     float64   `gorm:"type:decimal(10,2);default:0"`
	Address      string    `gorm:"type:varchar(255)"`
	City         string    `gorm:"type:varchar(100);index"`
	State        string    `gorm:"type:varchar(100)"`
	ZipCode      string    `gorm:"type:varchar(20)"`
	Latitude     *float64  `gorm:"type:decimal(9,6)"`
	Longitude    *float64  `gorm:"type:decimal(9,6)"`
	Features     datatypes.JSON
	Images       datatypes.JSON

	// Snapshot at submission time, immutable afterwards.
	CommissionPercentage float64 `gorm:"type:decimal(5,2);not null"`
	CommissionAmount     float64 `gorm:"type:decimal(12,2);not null"`

	PaymentStatus       string  `gorm:"type:varchar(20);not null;default:'unpaid'"`
	SubmissionStatus    string  `gorm:"type:varchar(20);not null;default:'pending';index"`
	RejectionReason     *string `gorm:"type:text"`
	ApprovedViaOverride bool    `gorm:"default:false"`

	SubmittedAt       time.Time  `gorm:"not null"`
	ReviewedAt        *time.Time
	ReviewedBy        *uuid.UUID `gorm:"type:uuid"`
	ApprovedListingId *uuid.UUID `gorm:"type:uuid;index"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (PropertySubmission) TableName() string {
	return "property_submissions"
}
