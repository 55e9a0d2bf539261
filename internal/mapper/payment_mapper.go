package mapper

import (
	"estate-listing-be/internal/entity"
	"estate-listing-be/internal/model"
)

type PaymentMapper struct{}

func NewPaymentMapper() *PaymentMapper {
	return &PaymentMapper{}
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func strOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (m *PaymentMapper) SettingToEntity(s *model.PaymentSetting) *entity.PaymentSetting {
	if s == nil {
		return nil
	}
	return &entity.PaymentSetting{
		Id:                     s.Id,
		PaymentMethod:          entity.PaymentMethod(s.PaymentMethod),
		IsActive:               s.IsActive,
		BankName:               strOrEmpty(s.BankName),
		AccountHolder:          strOrEmpty(s.AccountHolder),
		Iban:                   strOrEmpty(s.Iban),
		BicSwift:               strOrEmpty(s.BicSwift),
		PaypalEmail:            strOrEmpty(s.PaypalEmail),
		StripePublishableKey:   strOrEmpty(s.StripePublishableKey),
		StripeSecretKey:        strOrEmpty(s.StripeSecretKey),
		StripeWebhookSecret:    strOrEmpty(s.StripeWebhookSecret),
		CardInstructions:       strOrEmpty(s.CardInstructions),
		AdditionalInstructions: strOrEmpty(s.AdditionalInstructions),
		CreatedAt:              s.CreatedAt,
		UpdatedAt:              s.UpdatedAt,
	}
}

func (m *PaymentMapper) SettingToModel(s *entity.PaymentSetting) *model.PaymentSetting {
	if s == nil {
		return nil
	}
	return &model.PaymentSetting{
		Id:                     s.Id,
		PaymentMethod:          string(s.PaymentMethod),
		IsActive:               s.IsActive,
		BankName:               strOrNil(s.BankName),
		AccountHolder:          strOrNil(s.AccountHolder),
		Iban:                   strOrNil(s.Iban),
		BicSwift:               strOrNil(s.BicSwift),
		PaypalEmail:            strOrNil(s.PaypalEmail),
		StripePublishableKey:   strOrNil(s.StripePublishableKey),
		StripeSecretKey:        strOrNil(s.StripeSecretKey),
		StripeWebhookSecret:    strOrNil(s.StripeWebhookSecret),
		CardInstructions:       strOrNil(s.CardInstructions),
		AdditionalInstructions: strOrNil(s.AdditionalInstructions),
		CreatedAt:              s.CreatedAt,
		UpdatedAt:              s.UpdatedAt,
	}
}

func (m *PaymentMapper) RecordToEntity(r *model.PaymentRecord) *entity.PaymentRecord {
	if r == nil {
		return nil
	}
	return &entity.PaymentRecord{
		Id:             r.Id,
		SubmissionId:   r.SubmissionId,
		Amount:         r.Amount,
		Currency:       r.Currency,
		Source:         entity.PaymentSource(r.Source),
		ProviderRef:    r.ProviderRef,
		RefundRequired: r.RefundRequired,
		CreatedAt:      r.CreatedAt,
	}
}

func (m *PaymentMapper) RecordToModel(r *entity.PaymentRecord) *model.PaymentRecord {
	if r == nil {
		return nil
	}
	return &model.PaymentRecord{
		Id:             r.Id,
		SubmissionId:   r.SubmissionId,
		Amount:         r.Amount,
		Currency:       r.Currency,
		Source:         string(r.Source),
		ProviderRef:    r.ProviderRef,
		RefundRequired: r.RefundRequired,
		CreatedAt:      r.CreatedAt,
	}
}
