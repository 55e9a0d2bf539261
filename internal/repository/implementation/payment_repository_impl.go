package implementation

import (
	"context"
	"errors"

	"estate-listing-be/internal/entity"
	"estate-listing-be/internal/mapper"
	"estate-listing-be/internal/model"
	"estate-listing-be/internal/repository/contract"
	"estate-listing-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentSettingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PaymentMapper
}

func NewPaymentSettingRepository(db *gorm.DB) contract.PaymentSettingRepository {
	return &PaymentSettingRepositoryImpl{
		db:     db,
		mapper: mapper.NewPaymentMapper(),
	}
}

func (r *PaymentSettingRepositoryImpl) Save(ctx context.Context, setting *entity.PaymentSetting) error {
	m := r.mapper.SettingToModel(setting)
	m.IsActive = true

	// Single active configuration: demote the rest before saving.
	if err := r.db.WithContext(ctx).Model(&model.PaymentSetting{}).
		Where("id <> ?", m.Id).
		Update("is_active", false).Error; err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*setting = *r.mapper.SettingToEntity(m)
	return nil
}

func (r *PaymentSettingRepositoryImpl) FindActive(ctx context.Context) (*entity.PaymentSetting, error) {
	var m model.PaymentSetting
	err := r.db.WithContext(ctx).Where("is_active = ?", true).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SettingToEntity(&m), nil
}

func (r *PaymentSettingRepositoryImpl) FindAll(ctx context.Context) ([]*entity.PaymentSetting, error) {
	var models []*model.PaymentSetting
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.PaymentSetting, len(models))
	for i, m := range models {
		entities[i] = r.mapper.SettingToEntity(m)
	}
	return entities, nil
}

func (r *PaymentSettingRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.PaymentSetting{}, id).Error
}

type PaymentRecordRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PaymentMapper
}

func NewPaymentRecordRepository(db *gorm.DB) contract.PaymentRecordRepository {
	return &PaymentRecordRepositoryImpl{
		db:     db,
		mapper: mapper.NewPaymentMapper(),
	}
}

func (r *PaymentRecordRepositoryImpl) Create(ctx context.Context, record *entity.PaymentRecord) error {
	m := r.mapper.RecordToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.RecordToEntity(m)
	return nil
}

func (r *PaymentRecordRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PaymentRecord, error) {
	var models []*model.PaymentRecord
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.PaymentRecord, len(models))
	for i, m := range models {
		entities[i] = r.mapper.RecordToEntity(m)
	}
	return entities, nil
}

func (r *PaymentRecordRepositoryImpl) FindBySubmission(ctx context.Context, submissionId uuid.UUID) ([]*entity.PaymentRecord, error) {
	return r.FindAll(ctx, specification.Filter("submission_id", submissionId), specification.OrderBy{Field: "created_at", Desc: true})
}
