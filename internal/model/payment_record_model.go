package model

import (
	"time"

	"github.com/google/uuid"
)

type PaymentRecord struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SubmissionId   uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount         float64   `gorm:"type:decimal(12,2);not null"`
	Currency       string    `gorm:"type:varchar(3);not null;default:'eur'"`
	Source         string    `gorm:"type:varchar(20);not null"`
	ProviderRef    *string   `gorm:"type:varchar(255);index"`
	RefundRequired bool      `gorm:"default:false"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (PaymentRecord) TableName() string {
	return "payment_records"
}
