package contract

import (
	"context"

	"estate-listing-be/internal/entity"
	"estate-listing-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PaymentSettingRepository interface {
	// Save deactivates any other active configuration; exactly one row is
	// active at a time.
	Save(ctx context.Context, setting *entity.PaymentSetting) error
	FindActive(ctx context.Context) (*entity.PaymentSetting, error)
	FindAll(ctx context.Context) ([]*entity.PaymentSetting, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PaymentRecordRepository interface {
	Create(ctx context.Context, record *entity.PaymentRecord) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PaymentRecord, error)
	FindBySubmission(ctx context.Context, submissionId uuid.UUID) ([]*entity.PaymentRecord, error)
}
