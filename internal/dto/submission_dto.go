package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSubmissionRequest struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description"`
	Price        float64  `json:"price" validate:"required,gt=0"`
	PropertyType string   `json:"property_type" validate:"required"`
	ListingKind  string   `json:"listing_kind" validate:"required,oneof=rent sale"`
	Bedrooms     int      `json:"bedrooms" validate:"gte=0"`
	Bathrooms    int      `json:"bathrooms" validate:"gte=0"`
	AreaSqft     float64  `json:"area_sqft" validate:"gte=0"`
	Address      string   `json:"address" validate:"required"`
	City         string   `json:"city" validate:"required"`
	State        string   `json:"state"`
	ZipCode      string   `json:"zip_code"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	Features     []string `json:"features"`
	Images       []string `json:"images"`
}

type CreateSubmissionResponse struct {
	Id                   uuid.UUID `json:"id"`
	SubmissionStatus     string    `json:"submission_status"`
	PaymentStatus        string    `json:"payment_status"`
	CommissionPercentage float64   `json:"commission_percentage"`
	CommissionAmount     float64   `json:"commission_amount"`
	// Set immediately for free submissions, which publish on creation.
	ListingId *uuid.UUID `json:"listing_id,omitempty"`
}

type SubmissionResponse struct {
	Id                   uuid.UUID  `json:"id"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	Price                float64    `json:"price"`
	PropertyType         string     `json:"property_type"`
	ListingKind          string     `json:"listing_kind"`
	Bedrooms             int        `json:"bedrooms"`
	Bathrooms            int        `json:"bathrooms"`
	AreaSqft             float64    `json:"area_sqft"`
	Address              string     `json:"address"`
	City                 string     `json:"city"`
	State                string     `json:"state"`
	ZipCode              string     `json:"zip_code"`
	Features             []string   `json:"features"`
	Images               []string   `json:"images"`
	CommissionPercentage float64    `json:"commission_percentage"`
	CommissionAmount     float64    `json:"commission_amount"`
	PaymentStatus        string     `json:"payment_status"`
	SubmissionStatus     string     `json:"submission_status"`
	RejectionReason      *string    `json:"rejection_reason,omitempty"`
	ApprovedListingId    *uuid.UUID `json:"approved_listing_id,omitempty"`
	SubmittedAt          time.Time  `json:"submitted_at"`
	ReviewedAt           *time.Time `json:"reviewed_at,omitempty"`
}

type QuoteRequest struct {
	Price       float64 `json:"price" validate:"required,gt=0"`
	ListingKind string  `json:"listing_kind" validate:"required,oneof=rent sale"`
}

type QuoteResponse struct {
	Price                float64 `json:"price"`
	ListingKind          string  `json:"listing_kind"`
	CommissionPercentage float64 `json:"commission_percentage"`
	CommissionAmount     float64 `json:"commission_amount"`
	Currency             string  `json:"currency"`
}
