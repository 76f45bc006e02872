package repository

import (
	"errors"

	"clinic-booking-api/internal/domain/entity"
	domainRepo "clinic-booking-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type feedbackRepository struct{}

func NewFeedbackRepository() domainRepo.FeedbackRepository {
	return &feedbackRepository{}
}

func (r *feedbackRepository) Create(db *gorm.DB, feedback *entity.Feedback) error {
	return db.Omit(clause.Associations).Create(feedback).Error
}

func (r *feedbackRepository) FindByID(db *gorm.DB, id int) (*entity.Feedback, error) {
	var feedback entity.Feedback
	err := db.Preload("Patient.Account").
		Preload("Doctor.Account").
		Where("id = ?", id).
		First(&feedback).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &feedback, nil
}

func (r *feedbackRepository) FindAll(db *gorm.DB, scope entity.ScopeFilter) ([]entity.Feedback, int64, error) {
	var feedbacks []entity.Feedback
	var total int64

	if err := applyScope(db.Model(&entity.Feedback{}), scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := applyScope(db, scope).
		Preload("Patient.Account").
		Preload("Doctor.Account").
		Order("created_at DESC, id DESC").
		Limit(scope.Limit).
		Offset(scope.Offset).
		Find(&feedbacks).Error
	if err != nil {
		return nil, 0, err
	}
	return feedbacks, total, nil
}

func (r *feedbackRepository) Update(db *gorm.DB, feedback *entity.Feedback) error {
	return db.Omit(clause.Associations).Save(feedback).Error
}

func (r *feedbackRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Feedback{})
	return result.RowsAffected, result.Error
}

func (r *feedbackRepository) RatingStats(db *gorm.DB, doctorIDs []uuid.UUID) (map[uuid.UUID]entity.RatingStats, error) {
	stats := make(map[uuid.UUID]entity.RatingStats, len(doctorIDs))
	if len(doctorIDs) == 0 {
		return stats, nil
	}

	var rows []entity.RatingStats
	err := db.Model(&entity.Feedback{}).
		Select("doctor_id, COALESCE(SUM(rating), 0) AS rating_sum, COUNT(rating) AS rated_count, COUNT(*) AS feedback_count").
		Where("doctor_id IN ?", doctorIDs).
		Group("doctor_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		stats[row.DoctorID] = row
	}
	return stats, nil
}
