package usecase

import (
	"context"
	"strconv"
	"time"

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

var ErrMedicalRecordNotFound = apperror.NotFound("medical record not found")

type MedicalRecordUsecase interface {
	ListMedicalRecords(ctx context.Context, actor policy.Actor, page pagination.Params) ([]dto.MedicalRecordResponse, int64, error)
	CreateMedicalRecord(ctx context.Context, actor policy.Actor, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	GetMedicalRecord(ctx context.Context, actor policy.Actor, id int) (*dto.MedicalRecordResponse, error)
	ReplaceMedicalRecord(ctx context.Context, actor policy.Actor, id int, req *dto.ReplaceMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	UpdateMedicalRecord(ctx context.Context, actor policy.Actor, id int, req *dto.UpdateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	DeleteMedicalRecord(ctx context.Context, actor policy.Actor, id int) error
}

type medicalRecordUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	validate     *validator.CustomValidator
	recordRepo   repository.MedicalRecordRepository
	patientRepo  repository.PatientRepository
	doctorRepo   repository.DoctorRepository
	auditService service.AuditService
}

func NewMedicalRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	validate *validator.CustomValidator,
	recordRepo repository.MedicalRecordRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) MedicalRecordUsecase {
	return &medicalRecordUsecase{
		db:           db,
		log:          log,
		validate:     validate,
		recordRepo:   recordRepo,
		patientRepo:  patientRepo,
		doctorRepo:   doctorRepo,
		auditService: auditService,
	}
}

func (u *medicalRecordUsecase) ListMedicalRecords(ctx context.Context, actor policy.Actor, page pagination.Params) ([]dto.MedicalRecordResponse, int64, error) {
	scope, err := actorScope(actor, page)
	if err != nil {
		return nil, 0, err
	}

	records, total, err := u.recordRepo.FindAll(u.db.WithContext(ctx), scope)
	if err != nil {
		u.log.Warnf("Failed to find medical records: %+v", err)
		return nil, 0, err
	}

	return converter.MedicalRecordsToResponses(records), total, nil
}

func (u *medicalRecordUsecase) CreateMedicalRecord(ctx context.Context, actor policy.Actor, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	if !actor.IsDoctor() && !actor.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	if err := u.validate.ValidateRequest(req); err != nil {
		return nil, err
	}

	doctorID := actor.UserID
	if req.DoctorID != "" {
		doctorID = uuid.MustParse(req.DoctorID)
	} else if actor.IsAdmin() {
		return nil, apperror.Validation("doctor_id", "This field is required.")
	}
	if !policy.CanCreateMedicalRecord(actor, doctorID) {
		return nil, ErrPermissionDenied
	}
	patientID := uuid.MustParse(req.PatientID)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByUserID(tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, apperror.Validation("patient_id", "patient does not exist")
	}

	doctor, err := u.doctorRepo.FindByUserID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, apperror.Validation("doctor_id", "doctor does not exist")
	}

	record := &entity.MedicalRecord{
		PatientID:            patientID,
		DoctorID:             doctorID,
		Diagnosis:            req.Diagnosis,
		Treatment:            req.Treatment,
		PrescribedMedication: req.PrescribedMedication,
		CreatedAt:            time.Now().UTC().Truncate(24 * time.Hour),
	}
	if err := u.recordRepo.Create(tx, record); err != nil {
		u.log.Warnf("Failed to create medical record: %+v", err)
		return nil, err
	}

	created, err := u.recordRepo.FindByID(tx, record.ID)
	if err != nil {
		u.log.Warnf("Failed to reload medical record %d: %+v", record.ID, err)
		return nil, err
	}

	resp := converter.MedicalRecordToResponse(created)
	u.auditService.LogCreate(tx, actor, entity.AuditActionMedicalRecordCreate, "medical_record", strconv.Itoa(record.ID), resp)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

func (u *medicalRecordUsecase) GetMedicalRecord(ctx context.Context, actor policy.Actor, id int) (*dto.MedicalRecordResponse, error) {
	if !actor.Authenticated {
		return nil, ErrPermissionDenied
	}

	record, err := u.recordRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find medical record %d: %+v", id, err)
		return nil, err
	}
	if record == nil {
		return nil, ErrMedicalRecordNotFound
	}
	if !policy.CanReadMedicalRecord(actor, record) {
		return nil, ErrPermissionDenied
	}

	return converter.MedicalRecordToResponse(record), nil
}

func (u *medicalRecordUsecase) ReplaceMedicalRecord(ctx context.Context, actor policy.Actor, id int, req *dto.ReplaceMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	if !actor.Authenticated {
		return nil, ErrPermissionDenied
	}
	if err := u.validate.ValidateRequest(req); err != nil {
		return nil, err
	}

	return u.update(ctx, actor, id, func(record *entity.MedicalRecord) {
		record.Diagnosis = req.Diagnosis
		record.Treatment = req.Treatment
		record.PrescribedMedication = req.PrescribedMedication
	})
}

func (u *medicalRecordUsecase) UpdateMedicalRecord(ctx context.Context, actor policy.Actor, id int, req *dto.UpdateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	if !actor.Authenticated {
		return nil, ErrPermissionDenied
	}
	if err := u.validate.ValidateRequest(req); err != nil {
		return nil, err
	}

	return u.update(ctx, actor, id, func(record *entity.MedicalRecord) {
		if req.Diagnosis != nil {
			record.Diagnosis = *req.Diagnosis
		}
		if req.Treatment != nil {
			record.Treatment = *req.Treatment
		}
		if req.PrescribedMedication != nil {
			record.PrescribedMedication = *req.PrescribedMedication
		}
	})
}

func (u *medicalRecordUsecase) update(ctx context.Context, actor policy.Actor, id int, mutate func(*entity.MedicalRecord)) (*dto.MedicalRecordResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	record, err := u.recordRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find medical record %d: %+v", id, err)
		return nil, err
	}
	if record == nil {
		return nil, ErrMedicalRecordNotFound
	}
	if !policy.CanWriteMedicalRecord(actor, record) {
		return nil, ErrPermissionDenied
	}

	old := converter.MedicalRecordToResponse(record)
	mutate(record)

	if err := u.recordRepo.Update(tx, record); err != nil {
		u.log.Warnf("Failed to update medical record %d: %+v", id, err)
		return nil, err
	}

	resp := converter.MedicalRecordToResponse(record)
	u.auditService.LogUpdate(tx, actor, entity.AuditActionMedicalRecordUpdate, "medical_record", strconv.Itoa(id), old, resp)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

func (u *medicalRecordUsecase) DeleteMedicalRecord(ctx context.Context, actor policy.Actor, id int) error {
	if !actor.Authenticated {
		return ErrPermissionDenied
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	record, err := u.recordRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find medical record %d: %+v", id, err)
		return err
	}
	if record == nil {
		return ErrMedicalRecordNotFound
	}
	if !policy.CanWriteMedicalRecord(actor, record) {
		return ErrPermissionDenied
	}

	if _, err := u.recordRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete medical record %d: %+v", id, err)
		return err
	}

	u.auditService.LogDelete(tx, actor, entity.AuditActionMedicalRecordDelete, "medical_record", strconv.Itoa(id), converter.MedicalRecordToResponse(record))

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
