package unitofwork

import (
	"context"

	"estate-listing-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	SubmissionRepository() contract.SubmissionRepository
	ListingRepository() contract.ListingRepository
	CommissionRepository() contract.CommissionRepository
	PaymentSettingRepository() contract.PaymentSettingRepository
	PaymentRecordRepository() contract.PaymentRecordRepository
}
