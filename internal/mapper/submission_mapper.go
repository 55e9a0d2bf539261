package mapper

import (
	"estate-listing-be/internal/entity"
	"estate-listing-be/internal/model"
)

type SubmissionMapper struct{}

func NewSubmissionMapper() *SubmissionMapper {
	return &SubmissionMapper{}
}

func (m *SubmissionMapper) ToEntity(s *model.PropertySubmission) *entity.Submission {
	if s == nil {
		return nil
	}
	return &entity.Submission{
		Id:                   s.Id,
		OwnerId:              s.OwnerId,
		OwnerEmail:           s.OwnerEmail,
		Title:                s.Title,
		Description:          s.Description,
		Price:                s.Price,
		PropertyType:         s.PropertyType,
		ListingKind:          entity.ListingKind(s.ListingKind),
		Bedrooms:             s.Bedrooms,
		Bathrooms:            s.Bathrooms,
		AreaSqft:             s.AreaSqft,
		Address:              s.Address,
		City:                 s.City,
		State:                s.State,
		ZipCode:              s.ZipCode,
		Latitude:             s.Latitude,
		Longitude:            s.Longitude,
		Features:             jsonToStrings(s.Features),
		Images:               jsonToStrings(s.Images),
		CommissionPercentage: s.CommissionPercentage,
		CommissionAmount:     s.CommissionAmount,
		PaymentStatus:        entity.PaymentStatus(s.PaymentStatus),
		SubmissionStatus:     entity.SubmissionStatus(s.SubmissionStatus),
		RejectionReason:      s.RejectionReason,
		ApprovedViaOverride:  s.ApprovedViaOverride,
		SubmittedAt:          s.SubmittedAt,
		ReviewedAt:           s.ReviewedAt,
		ReviewedBy:           s.ReviewedBy,
		ApprovedListingId:    s.ApprovedListingId,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}

func (m *SubmissionMapper) ToModel(s *entity.Submission) *model.PropertySubmission {
	if s == nil {
		return nil
	}
	return &model.PropertySubmission{
		Id:                   s.Id,
		OwnerId:              s.OwnerId,
		OwnerEmail:           s.OwnerEmail,
		Title:                s.Title,
		Description:          s.Description,
		Price:                s.Price,
		PropertyType:         s.PropertyType,
		ListingKind:          string(s.ListingKind),
		Bedrooms:             s.Bedrooms,
		Bathrooms:            s.Bathrooms,
		AreaSqft:             s.AreaSqft,
		Address:              s.Address,
		City:                 s.City,
		State:                s.State,
		ZipCode:              s.ZipCode,
		Latitude:             s.Latitude,
		Longitude:            s.Longitude,
		Features:             stringsToJSON(s.Features),
		Images:               stringsToJSON(s.Images),
		CommissionPercentage: s.CommissionPercentage,
		CommissionAmount:     s.CommissionAmount,
		PaymentStatus:        string(s.PaymentStatus),
		SubmissionStatus:     string(s.SubmissionStatus),
		RejectionReason:      s.RejectionReason,
		ApprovedViaOverride:  s.ApprovedViaOverride,
		SubmittedAt:          s.SubmittedAt,
		ReviewedAt:           s.ReviewedAt,
		ReviewedBy:           s.ReviewedBy,
		ApprovedListingId:    s.ApprovedListingId,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}
