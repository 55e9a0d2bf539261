package dto

import (
	"time"

	"github.com/google/uuid"
)

type BrowseListingsRequest struct {
	City         string   `query:"city"`
	ListingKind  string   `query:"listing_kind" validate:"omitempty,oneof=rent sale"`
	PropertyType string   `query:"property_type"`
	Status       string   `query:"status" validate:"omitempty,oneof=available pending sold rented"`
	MinPrice     *float64 `query:"min_price"`
	MaxPrice     *float64 `query:"max_price"`
	FeaturedOnly bool     `query:"featured"`
	Page         int      `query:"page"`
	PageSize     int      `query:"page_size"`
}

type ListingResponse struct {
	Id           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Price        float64    `json:"price"`
	PropertyType string     `json:"property_type"`
	ListingKind  string     `json:"listing_kind"`
	Bedrooms     int        `json:"bedrooms"`
	Bathrooms    int        `json:"bathrooms"`
	AreaSqft     float64    `json:"area_sqft"`
	Address      string     `json:"address"`
	City         string     `json:"city"`
	State        string     `json:"state"`
	ZipCode      string     `json:"zip_code"`
	Latitude     *float64   `json:"latitude,omitempty"`
	Longitude    *float64   `json:"longitude,omitempty"`
	Features     []string   `json:"features"`
	Images       []string   `json:"images"`
	Status       string     `json:"status"`
	Featured     bool       `json:"featured"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type BrowseListingsResponse struct {
	Listings []*ListingResponse `json:"listings"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

type CreateListingRequest struct {
	Title          string     `json:"title" validate:"required"`
	Description    string     `json:"description"`
	Price          float64    `json:"price" validate:"required,gt=0"`
	PropertyType   string     `json:"property_type" validate:"required"`
	ListingKind    string     `json:"listing_kind" validate:"required,oneof=rent sale"`
	Bedrooms       int        `json:"bedrooms" validate:"gte=0"`
	Bathrooms      int        `json:"bathrooms" validate:"gte=0"`
	AreaSqft       float64    `json:"area_sqft" validate:"gte=0"`
	Address        string     `json:"address" validate:"required"`
	City           string     `json:"city" validate:"required"`
	State          string     `json:"state"`
	ZipCode        string     `json:"zip_code"`
	Latitude       *float64   `json:"latitude"`
	Longitude      *float64   `json:"longitude"`
	Features       []string   `json:"features"`
	Images         []string   `json:"images"`
	Featured       bool       `json:"featured"`
	ExpiresAt      *time.Time `json:"expires_at"`
	AutoExpireDays *int       `json:"auto_expire_days" validate:"omitempty,gt=0"`
}

type CreateListingResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateListingRequest struct {
	Id             uuid.UUID
	Title          string     `json:"title" validate:"required"`
	Description    string     `json:"description"`
	Price          float64    `json:"price" validate:"required,gt=0"`
	Status         string     `json:"status" validate:"required,oneof=available pending sold rented"`
	Featured       bool       `json:"featured"`
	ExpiresAt      *time.Time `json:"expires_at"`
	AutoExpireDays *int       `json:"auto_expire_days" validate:"omitempty,gt=0"`
}
