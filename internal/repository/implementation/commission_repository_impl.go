package implementation

import (
	"context"
	"errors"

	"estate-listing-be/internal/entity"
	"estate-listing-be/internal/mapper"
	"estate-listing-be/internal/model"
	"estate-listing-be/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommissionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CommissionMapper
}

func NewCommissionRepository(db *gorm.DB) contract.CommissionRepository {
	return &CommissionRepositoryImpl{
		db:     db,
		mapper: mapper.NewCommissionMapper(),
	}
}

func (r *CommissionRepositoryImpl) Upsert(ctx context.Context, setting *entity.CommissionSetting) error {
	m := r.mapper.ToModel(setting)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "listing_kind"}},
		DoUpdates: clause.AssignmentColumns([]string{"percentage", "auto_approve_paid", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*setting = *r.mapper.ToEntity(m)
	return nil
}

func (r *CommissionRepositoryImpl) FindByKind(ctx context.Context, kind entity.ListingKind) (*entity.CommissionSetting, error) {
	var m model.CommissionSetting
	err := r.db.WithContext(ctx).Where("listing_kind = ?", string(kind)).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CommissionRepositoryImpl) FindAll(ctx context.Context) ([]*entity.CommissionSetting, error) {
	var models []*model.CommissionSetting
	if err := r.db.WithContext(ctx).Order("listing_kind ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.CommissionSetting, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
