package usecase

import (
	"context"

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
	ErrPatientNotFound      = apperror.NotFound("patient not found")
	ErrPatientDetailsExists = apperror.Validation("user", "patient details already exist for this account")
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, actor policy.Actor, req *dto.CreatePatientRequest) (*dto.PatientDetailResponse, error)
	GetPatient(ctx context.Context, actor policy.Actor, patientID uuid.UUID) (*dto.PatientDetailResponse, error)
	ListPatients(ctx context.Context, actor policy.Actor, page pagination.Params) ([]dto.PatientListItem, int64, error)
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	validate     *validator.CustomValidator
	patientRepo  repository.PatientRepository
	auditService service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	validate *validator.CustomValidator,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:           db,
		log:          log,
		validate:     validate,
		patientRepo:  patientRepo,
		auditService: auditService,
	}
}

// CreatePatient attaches patient details to the caller's own account.
func (u *patientUsecase) CreatePatient(ctx context.Context, actor policy.Actor, req *dto.CreatePatientRequest) (*dto.PatientDetailResponse, error) {
	if !policy.CanCreatePatientDetails(actor, actor.UserID) {
		return nil, ErrPermissionDenied
	}
	if err := u.validate.ValidateRequest(req); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.patientRepo.FindByUserID(tx, actor.UserID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", actor.UserID, err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrPatientDetailsExists
	}

	patient := &entity.PatientDetails{
		UserID:           actor.UserID,
		EmergencyContact: req.EmergencyContact,
		BloodType:        req.BloodType,
	}
	if err := u.patientRepo.Create(tx, patient); err != nil {
		if isDuplicateKeyError(err, "patient_details_pkey") {
			return nil, ErrPatientDetailsExists
		}
		u.log.Warnf("Failed to create patient details: %+v", err)
		return nil, err
	}

	created, err := u.patientRepo.FindByUserID(tx, actor.UserID)
	if err != nil {
		u.log.Warnf("Failed to reload patient %s: %+v", actor.UserID, err)
		return nil, err
	}

	resp := converter.PatientToDetailResponse(created)
	u.auditService.LogCreate(tx, actor, entity.AuditActionPatientCreate, "patient", actor.UserID.String(), resp)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, actor policy.Actor, patientID uuid.UUID) (*dto.PatientDetailResponse, error) {
	if !policy.CanReadPatient(actor, patientID) {
		return nil, ErrPermissionDenied
	}

	patient, err := u.patientRepo.FindByUserID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToDetailResponse(patient), nil
}

func (u *patientUsecase) ListPatients(ctx context.Context, actor policy.Actor, page pagination.Params) ([]dto.PatientListItem, int64, error) {
	if !policy.CanListPatients(actor) {
		return nil, 0, ErrPermissionDenied
	}

	patients, total, err := u.patientRepo.FindAll(u.db.WithContext(ctx), page.Limit, page.Offset())
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, 0, err
	}

	return converter.PatientsToListItems(patients), total, nil
}
