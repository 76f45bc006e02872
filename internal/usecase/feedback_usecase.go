package usecase

import (
	"context"
	"strconv"

	"clinic-booking-api/internal/converter"
	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/internal/domain/repository"
	"clinic-booking-api/internal/pagination"
	"clinic-booking-api/internal/policy"
	"clinic-booking-api/internal/service"
	"clinic-booking-api/pkg/apperror"
	"clinic-booking-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrFeedbackNotFound  = apperror.NotFound("feedback not found")
	ErrFeedbackNoPatient = apperror.Validation("patient", "create your patient details before leaving feedback")
	ErrFeedbackEmpty     = apperror.ValidationFields(map[string]string{
		"rating":  "Choose at least one of rating or comment",
		"comment": "Choose at least one of rating or comment",
	})
)

type FeedbackUsecase interface {
	ListFeedback(ctx context.Context, actor policy.Actor, page pagination.Params) ([]dto.FeedbackResponse, int64, error)
	CreateFeedback(ctx context.Context, actor policy.Actor, req *dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error)
	GetFeedback(ctx context.Context, actor policy.Actor, id int) (*dto.FeedbackResponse, error)
	ReplaceFeedback(ctx context.Context, actor policy.Actor, id int, req *dto.ReplaceFeedbackRequest) (*dto.FeedbackResponse, error)
	UpdateFeedback(ctx context.Context, actor policy.Actor, id int, req *dto.UpdateFeedbackRequest) (*dto.FeedbackResponse, error)
	DeleteFeedback(ctx context.Context, actor policy.Actor, id int) error
}

type feedbackUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	validate     *validator.CustomValidator
	feedbackRepo repository.FeedbackRepository
	patientRepo  repository.PatientRepository
	doctorRepo   repository.DoctorRepository
	auditService service.AuditService
}

func NewFeedbackUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	validate *validator.CustomValidator,
	feedbackRepo repository.FeedbackRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) FeedbackUsecase {
	return &feedbackUsecase{
		db:           db,
		log:          log,
		validate:     validate,
		feedbackRepo: feedbackRepo,
		patientRepo:  patientRepo,
		doctorRepo:   doctorRepo,
		auditService: auditService,
	}
}

// ListFeedback returns the calling patient's own feedback.
func (u *feedbackUsecase) ListFeedback(ctx context.Context, actor policy.Actor, page pagination.Params) ([]dto.FeedbackResponse, int64, error) {
	if !policy.CanListFeedback(actor) {
		return nil, 0, ErrPermissionDenied
	}

	patientID := actor.UserID
	scope := entity.ScopeFilter{PatientID: &patientID, Limit: page.Limit, Offset: page.Offset()}

	feedbacks, total, err := u.feedbackRepo.FindAll(u.db.WithContext(ctx), scope)
	if err != nil {
		u.log.Warnf("Failed to find feedback: %+v", err)
		return nil, 0, err
	}

	return converter.FeedbacksToResponses(feedbacks), total, nil
}

func (u *feedbackUsecase) CreateFeedback(ctx context.Context, actor policy.Actor, req *dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error) {
	if !policy.CanCreateFeedback(actor, actor.UserID) {
		return nil, ErrPermissionDenied
	}
	if err := u.validate.ValidateRequest(req); err != nil {
		return nil, err
	}

	feedback := &entity.Feedback{
		PatientID: actor.UserID,
		DoctorID:  uuid.MustParse(req.DoctorID),
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := feedback.Validate(); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByUserID(tx, actor.UserID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", actor.UserID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrFeedbackNoPatient
	}

	doctor, err := u.doctorRepo.FindByUserID(tx, feedback.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", feedback.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, apperror.Validation("doctor_id", "doctor does not exist")
	}

	if err := u.feedbackRepo.Create(tx, feedback); err != nil {
		if mapped := mapFeedbackWriteError(err); mapped != nil {
			return nil, mapped
		}
		u.log.Warnf("Failed to create feedback: %+v", err)
		return nil, err
	}

	created, err := u.feedbackRepo.FindByID(tx, feedback.ID)
	if err != nil {
		u.log.Warnf("Failed to reload feedback %d: %+v", feedback.ID, err)
		return nil, err
	}

	resp := converter.FeedbackToResponse(created)
	u.auditService.LogCreate(tx, actor, entity.AuditActionFeedbackCreate, "feedback", strconv.Itoa(feedback.ID), resp)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

func (u *feedbackUsecase) GetFeedback(ctx context.Context, actor policy.Actor, id int) (*dto.FeedbackResponse, error) {
	if !policy.CanManageFeedback(actor) {
		return nil, ErrPermissionDenied
	}

	feedback, err := u.feedbackRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find feedback %d: %+v", id, err)
		return nil, err
	}
	if feedback == nil {
		return nil, ErrFeedbackNotFound
	}

	return converter.FeedbackToResponse(feedback), nil
}

func (u *feedbackUsecase) ReplaceFeedback(ctx context.Context, actor policy.Actor, id int, req *dto.ReplaceFeedbackRequest) (*dto.FeedbackResponse, error) {
	if !policy.CanManageFeedback(actor) {
		return nil, ErrPermissionDenied
	}
	if err := u.validate.ValidateRequest(req); err != nil {
		return nil, err
	}

	return u.update(ctx, actor, id, func(feedback *entity.Feedback) {
		feedback.Rating = req.Rating
		feedback.Comment = req.Comment
	})
}

// UpdateFeedback applies the present fields, then removes the fields named in Clear.
func (u *feedbackUsecase) UpdateFeedback(ctx context.Context, actor policy.Actor, id int, req *dto.UpdateFeedbackRequest) (*dto.FeedbackResponse, error) {
	if !policy.CanManageFeedback(actor) {
		return nil, ErrPermissionDenied
	}
	if err := u.validate.ValidateRequest(req); err != nil {
		return nil, err
	}

	return u.update(ctx, actor, id, func(feedback *entity.Feedback) {
		if req.Rating != nil {
			feedback.Rating = req.Rating
		}
		if req.Comment != nil {
			feedback.Comment = req.Comment
		}
		for _, field := range req.Clear {
			switch field {
			case "rating":
				feedback.Rating = nil
			case "comment":
				feedback.Comment = nil
			}
		}
	})
}

func (u *feedbackUsecase) update(ctx context.Context, actor policy.Actor, id int, mutate func(*entity.Feedback)) (*dto.FeedbackResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	feedback, err := u.feedbackRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find feedback %d: %+v", id, err)
		return nil, err
	}
	if feedback == nil {
		return nil, ErrFeedbackNotFound
	}

	old := converter.FeedbackToResponse(feedback)
	mutate(feedback)
	if err := feedback.Validate(); err != nil {
		return nil, err
	}

	if err := u.feedbackRepo.Update(tx, feedback); err != nil {
		if mapped := mapFeedbackWriteError(err); mapped != nil {
			return nil, mapped
		}
		u.log.Warnf("Failed to update feedback %d: %+v", id, err)
		return nil, err
	}

	resp := converter.FeedbackToResponse(feedback)
	u.auditService.LogUpdate(tx, actor, entity.AuditActionFeedbackUpdate, "feedback", strconv.Itoa(id), old, resp)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

func (u *feedbackUsecase) DeleteFeedback(ctx context.Context, actor policy.Actor, id int) error {
	if !policy.CanManageFeedback(actor) {
		return ErrPermissionDenied
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	feedback, err := u.feedbackRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find feedback %d: %+v", id, err)
		return err
	}
	if feedback == nil {
		return ErrFeedbackNotFound
	}

	if _, err := u.feedbackRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete feedback %d: %+v", id, err)
		return err
	}

	u.auditService.LogDelete(tx, actor, entity.AuditActionFeedbackDelete, "feedback", strconv.Itoa(id), converter.FeedbackToResponse(feedback))

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// mapFeedbackWriteError maps the rating-or-comment CHECK constraint and the
// patient and doctor foreign keys to validation errors. Other errors yield nil.
func mapFeedbackWriteError(err error) error {
	switch {
	case isCheckViolation(err, "feedbacks_rating_or_comment_check"):
		return ErrFeedbackEmpty
	case isForeignKeyError(err, "feedbacks_patient_id_fkey"):
		return ErrFeedbackNoPatient
	case isForeignKeyError(err, "feedbacks_doctor_id_fkey"):
		return apperror.Validation("doctor_id", "doctor does not exist")
	}
	return nil
}
