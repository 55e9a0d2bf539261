package implementation

import (
	"context"
	"errors"
	"time"

	"estate-listing-be/internal/entity"
	"estate-listing-be/internal/mapper"
	"estate-listing-be/internal/model"
	"estate-listing-be/internal/repository/contract"
	"estate-listing-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubmissionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SubmissionMapper
}

func NewSubmissionRepository(db *gorm.DB) contract.SubmissionRepository {
	return &SubmissionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSubmissionMapper(),
	}
}

func (r *SubmissionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SubmissionRepositoryImpl) Create(ctx context.Context, submission *entity.Submission) error {
	m := r.mapper.ToModel(submission)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*submission = *r.mapper.ToEntity(m)
	return nil
}

func (r *SubmissionRepositoryImpl) Update(ctx context.Context, submission *entity.Submission) error {
	m := r.mapper.ToModel(submission)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*submission = *r.mapper.ToEntity(m)
	return nil
}

func (r *SubmissionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.PropertySubmission{}, id).Error
}

func (r *SubmissionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Submission, error) {
	var m model.PropertySubmission
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SubmissionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Submission, error) {
	var models []*model.PropertySubmission
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Submission, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

// TransitionStatus is the CAS write both admins and the payment consumer
// race through; the WHERE guard on the prior status decides the winner.
func (r *SubmissionRepositoryImpl) TransitionStatus(ctx context.Context, id uuid.UUID, from, to entity.SubmissionStatus, review contract.StatusReview) (bool, error) {
	updates := map[string]interface{}{
		"submission_status": string(to),
		"updated_at":        time.Now(),
	}
	if review.ReviewedAt != nil {
		updates["reviewed_at"] = review.ReviewedAt
	}
	if review.ReviewedBy != nil {
		updates["reviewed_by"] = review.ReviewedBy
	}
	if review.RejectionReason != nil {
		updates["rejection_reason"] = review.RejectionReason
	}
	if review.ViaOverride {
		updates["approved_via_override"] = true
	}

	res := r.db.WithContext(ctx).Model(&model.PropertySubmission{}).
		Where("id = ? AND submission_status = ?", id, string(from)).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *SubmissionRepositoryImpl) SetPaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error {
	return r.db.WithContext(ctx).Model(&model.PropertySubmission{}).
		Where("id = ?", id).
		Update("payment_status", string(status)).Error
}

func (r *SubmissionRepositoryImpl) LinkApprovedListing(ctx context.Context, id uuid.UUID, listingId uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.PropertySubmission{}).
		Where("id = ? AND approved_listing_id IS NULL", id).
		Update("approved_listing_id", listingId)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *SubmissionRepositoryImpl) CountByStatus(ctx context.Context, status entity.SubmissionStatus) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.PropertySubmission{}).
		Where("submission_status = ?", string(status)).
		Count(&count).Error
	return int(count), err
}

func (r *SubmissionRepositoryImpl) SumPaidCommission(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&model.PropertySubmission{}).
		Where("payment_status = ?", string(entity.PaymentStatusPaid)).
		Select("COALESCE(SUM(commission_amount), 0)").
		Scan(&total).Error
	return total, err
}
