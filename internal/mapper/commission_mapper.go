package mapper

import (
	"estate-listing-be/internal/entity"
	"estate-listing-be/internal/model"
)

type CommissionMapper struct{}

func NewCommissionMapper() *CommissionMapper {
	return &CommissionMapper{}
}

func (m *CommissionMapper) ToEntity(s *model.CommissionSetting) *entity.CommissionSetting {
	if s == nil {
		return nil
	}
	return &entity.CommissionSetting{
		Id:              s.Id,
		ListingKind:     entity.ListingKind(s.ListingKind),
		Percentage:      s.Percentage,
		AutoApprovePaid: s.AutoApprovePaid,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func (m *CommissionMapper) ToModel(s *entity.CommissionSetting) *model.CommissionSetting {
	if s == nil {
		return nil
	}
	return &model.CommissionSetting{
		Id:              s.Id,
		ListingKind:     string(s.ListingKind),
		Percentage:      s.Percentage,
		AutoApprovePaid: s.AutoApprovePaid,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
