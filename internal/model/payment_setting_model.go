package model

import (
	"time"

	"github.com/google/uuid"
)

type PaymentSetting struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PaymentMethod string    `gorm:"type:varchar(20);not null"`
	IsActive      bool      `gorm:"default:true;index"`

	BankName      *string `gorm:"type:varchar(255)"`
	AccountHolder *string `gorm:"type:varchar(255)"`
	Iban          *string `gorm:"type:varchar(64)"`
	BicSwift      *string `gorm:"type:varchar(32)"`

	PaypalEmail *string `gorm:"type:varchar(255)"`

	StripePublishableKey *string `gorm:"type:varchar(255)"`
	StripeSecretKey      *string `gorm:"type:varchar(255)"`
	StripeWebhookSecret  *string `gorm:"type:varchar(255)"`

	CardInstructions       *string `gorm:"type:text"`
	AdditionalInstructions *string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (PaymentSetting) TableName() string {
	return "payment_settings"
}
