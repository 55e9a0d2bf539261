package mapper

import (
	"estate-listing-be/internal/entity"
	"estate-listing-be/internal/model"
)

type ListingMapper struct{}

func NewListingMapper() *ListingMapper {
	return &ListingMapper{}
}

func (m *ListingMapper) ToEntity(p *model.Property) *entity.Listing {
	if p == nil {
		return nil
	}
	return &entity.Listing{
		Id:                 p.Id,
		Title:              p.Title,
		Description:        p.Description,
		Price:              p.Price,
		PropertyType:       p.PropertyType,
		ListingKind:        entity.ListingKind(p.ListingKind),
		Bedrooms:           p.Bedrooms,
		Bathrooms:          p.Bathrooms,
		AreaSqft:           p.AreaSqft,
		Address:            p.Address,
		City:               p.City,
		State:              p.State,
		ZipCode:            p.ZipCode,
		Latitude:           p.Latitude,
		Longitude:          p.Longitude,
		Features:           jsonToStrings(p.Features),
		Images:             jsonToStrings(p.Images),
		Status:             entity.ListingStatus(p.Status),
		Featured:           p.Featured,
		IsExpired:          p.IsExpired,
		ExpiresAt:          p.ExpiresAt,
		AutoExpireDays:     p.AutoExpireDays,
		SourceSubmissionId: p.SourceSubmissionId,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func (m *ListingMapper) ToModel(l *entity.Listing) *model.Property {
	if l == nil {
		return nil
	}
	return &model.Property{
		Id:                 l.Id,
		Title:              l.Title,
		Description:        l.Description,
		Price:              l.Price,
		PropertyType:       l.PropertyType,
		ListingKind:        string(l.ListingKind),
		Bedrooms:           l.Bedrooms,
		Bathrooms:          l.Bathrooms,
		AreaSqft:           l.AreaSqft,
		Address:            l.Address,
		City:               l.City,
		State:              l.State,
		ZipCode:            l.ZipCode,
		Latitude:           l.Latitude,
		Longitude:          l.Longitude,
		Features:           stringsToJSON(l.Features),
		Images:             stringsToJSON(l.Images),
		Status:             string(l.Status),
		Featured:           l.Featured,
		IsExpired:          l.IsExpired,
		ExpiresAt:          l.ExpiresAt,
		AutoExpireDays:     l.AutoExpireDays,
		SourceSubmissionId: l.SourceSubmissionId,
		CreatedAt:          l.CreatedAt,
		UpdatedAt:          l.UpdatedAt,
	}
}
