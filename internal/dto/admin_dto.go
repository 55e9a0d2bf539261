package dto

import (
	"time"

	"github.com/google/uuid"
)

type ApproveSubmissionRequest struct {
	Id             uuid.UUID
	Override       bool       `json:"override"`
	Featured       bool       `json:"featured"`
	ExpiresAt      *time.Time `json:"expires_at"`
	AutoExpireDays *int       `json:"auto_expire_days" validate:"omitempty,gt=0"`
}

type ApproveSubmissionResponse struct {
	SubmissionId uuid.UUID `json:"submission_id"`
	ListingId    uuid.UUID `json:"listing_id"`
}

type RejectSubmissionRequest struct {
	Id     uuid.UUID
	Reason string `json:"reason" validate:"required"`
}

type MarkPaidRequest struct {
	Id uuid.UUID
	// Free-form reference like a bank statement line.
	Reference string `json:"reference"`
}

type ListSubmissionsRequest struct {
	Status        string `query:"status" validate:"omitempty,oneof=pending approved rejected"`
	PaymentStatus string `query:"payment_status" validate:"omitempty,oneof=unpaid paid refunded"`
	Page          int    `query:"page"`
	PageSize      int    `query:"page_size"`
}

type CommissionSettingRequest struct {
	ListingKind     string  `json:"listing_kind" validate:"required,oneof=rent sale"`
	Percentage      float64 `json:"percentage" validate:"gte=0,lte=100"`
	AutoApprovePaid bool    `json:"auto_approve_paid"`
}

type CommissionSettingResponse struct {
	Id              uuid.UUID `json:"id"`
	ListingKind     string    `json:"listing_kind"`
	Percentage      float64   `json:"percentage"`
	AutoApprovePaid bool      `json:"auto_approve_paid"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type DashboardStatsResponse struct {
	PendingSubmissions  int     `json:"pending_submissions"`
	ApprovedSubmissions int     `json:"approved_submissions"`
	RejectedSubmissions int     `json:"rejected_submissions"`
	ActiveListings      int     `json:"active_listings"`
	CollectedCommission float64 `json:"collected_commission"`
}

type SweepResponse struct {
	Expired    int `json:"expired"`
	Reconciled int `json:"reconciled"`
}

type LogListResponse struct {
	Id        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Module    string `json:"module,omitempty"`
	Message   string `json:"message"`
}

type LogDetailResponse struct {
	LogListResponse
	Details map[string]interface{} `json:"details,omitempty"`
}
