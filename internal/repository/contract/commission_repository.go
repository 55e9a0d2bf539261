package contract

import (
	"context"

	"estate-listing-be/internal/entity"
)

type CommissionRepository interface {
	// Upsert keeps at most one setting row per listing kind.
	Upsert(ctx context.Context, setting *entity.CommissionSetting) error
	FindByKind(ctx context.Context, kind entity.ListingKind) (*entity.CommissionSetting, error)
	FindAll(ctx context.Context) ([]*entity.CommissionSetting, error)
}
