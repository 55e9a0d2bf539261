// FILE: internal/entity/submission_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type SubmissionStatus string
type PaymentStatus string
type ListingKind string

const (
	SubmissionStatusPending  SubmissionStatus = "pending"
	SubmissionStatusApproved SubmissionStatus = "approved"
	SubmissionStatusRejected SubmissionStatus = "rejected"

	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"

	ListingKindRent ListingKind = "rent"
	ListingKindSale ListingKind = "sale"
)

// Submission is a client's request to list a property. The commission
// fields are a snapshot taken at creation time; re-pricing requires a
// new submission.
type Submission struct {
	Id           uuid.UUID
	OwnerId      uuid.UUID
	OwnerEmail   string
	Title        string
	Description  string
	Price        float64
	PropertyType string
	ListingKind  ListingKind
	Bedrooms     int
	Bathrooms    int
	AreaSqft     float64
	Address      string
	City         string
	State        string
	ZipCode      string
	Latitude     *float64
	Longitude    *float64
	Features     []string
	Images       []string

	CommissionPercentage float64
	CommissionAmount     float64

	PaymentStatus    PaymentStatus
	SubmissionStatus SubmissionStatus
	RejectionReason  *string

	// Set when an admin approved via override instead of payment.
	ApprovedViaOverride bool

	SubmittedAt       time.Time
	ReviewedAt        *time.Time
	ReviewedBy        *uuid.UUID
	ApprovedListingId *uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal reports whether the submission can no longer change status.
func (s *Submission) IsTerminal() bool {
	return s.SubmissionStatus == SubmissionStatusApproved ||
		s.SubmissionStatus == SubmissionStatusRejected
}
