package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Property struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text"`
	Price        float64   `gorm:"type:decimal(12,2);not null"`
	PropertyType string    `gorm:"type:varchar(50);not null;index"`
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

	Status   string `gorm:"type:varchar(20);not null;default:'available';index"`
	Featured bool   `gorm:"default:false"`

	IsExpired      bool       `gorm:"default:false;index"`
	ExpiresAt      *time.Time
	AutoExpireDays *int

	// Idempotency key for the publisher; no FK so deleting the submission
	// never cascades to the published listing.
	SourceSubmissionId *uuid.UUID `gorm:"type:uuid;uniqueIndex"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Property) TableName() string {
	return "properties"
}
