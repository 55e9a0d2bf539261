package model

import (
	"time"

	"github.com/google/uuid"
)

type CommissionSetting struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ListingKind     string    `gorm:"type:varchar(10);uniqueIndex;not null"`
	Percentage      float64   `gorm:"type:decimal(5,2);not null;default:0"`
	AutoApprovePaid bool      `gorm:"default:false"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (CommissionSetting) TableName() string {
	return "commission_settings"
}
