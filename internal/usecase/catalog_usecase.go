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

var ErrSpecialtyExists = apperror.Validation("specialty_name", "specialty with this specialty name already exists.")

// CatalogUsecase serves departments and specialties.
type CatalogUsecase interface {
	ListDepartments(ctx context.Context, search string, page pagination.Params) ([]dto.DepartmentResponse, int64, error)
	ListSpecialties(ctx context.Context, search string, page pagination.Params) ([]dto.SpecialtyResponse, int64, error)
	CreateDepartment(ctx context.Context, actor policy.Actor, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error)
	CreateSpecialty(ctx context.Context, actor policy.Actor, req *dto.CreateSpecialtyRequest) (*dto.SpecialtyResponse, error)
}

type catalogUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	validate       *validator.CustomValidator
	departmentRepo repository.DepartmentRepository
	specialtyRepo  repository.SpecialtyRepository
	doctorRepo     repository.DoctorRepository
	auditService   service.AuditService
}

func NewCatalogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	validate *validator.CustomValidator,
	departmentRepo repository.DepartmentRepository,
	specialtyRepo repository.SpecialtyRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) CatalogUsecase {
	return &catalogUsecase{
		db:             db,
		log:            log,
		validate:       validate,
		departmentRepo: departmentRepo,
		specialtyRepo:  specialtyRepo,
		doctorRepo:     doctorRepo,
		auditService:   auditService,
	}
}

func (u *catalogUsecase) ListDepartments(ctx context.Context, search string, page pagination.Params) ([]dto.DepartmentResponse, int64, error) {
	filter := entity.NameFilter{Search: search, Limit: page.Limit, Offset: page.Offset()}

	departments, total, err := u.departmentRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to find departments: %+v", err)
		return nil, 0, err
	}

	return converter.DepartmentsToResponses(departments), total, nil
}

func (u *catalogUsecase) ListSpecialties(ctx context.Context, search string, page pagination.Params) ([]dto.SpecialtyResponse, int64, error) {
	filter := entity.NameFilter{Search: search, Limit: page.Limit, Offset: page.Offset()}

	specialties, total, err := u.specialtyRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to find specialties: %+v", err)
		return nil, 0, err
	}

	return converter.SpecialtiesToResponses(specialties), total, nil
}

func (u *catalogUsecase) CreateDepartment(ctx context.Context, actor policy.Actor, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	if !policy.CanManageCatalog(actor) {
		return nil, ErrPermissionDenied
	}
	if err := u.validate.ValidateRequest(req); err != nil {
		return nil, err
	}
	doctorID := uuid.MustParse(req.DoctorID)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByUserID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, apperror.Validation("doctor_id", "doctor does not exist")
	}

	department := &entity.Department{DoctorID: doctorID, DepartmentName: req.DepartmentName}
	if err := u.departmentRepo.Create(tx, department); err != nil {
		u.log.Warnf("Failed to create department: %+v", err)
		return nil, err
	}

	resp := &dto.DepartmentResponse{ID: department.ID, DepartmentName: department.DepartmentName}
	u.auditService.LogCreate(tx, actor, entity.AuditActionDepartmentCreate, "department", strconv.Itoa(department.ID), resp)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

func (u *catalogUsecase) CreateSpecialty(ctx context.Context, actor policy.Actor, req *dto.CreateSpecialtyRequest) (*dto.SpecialtyResponse, error) {
	if !policy.CanManageCatalog(actor) {
		return nil, ErrPermissionDenied
	}
	if err := u.validate.ValidateRequest(req); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	specialty := &entity.Specialty{SpecialtyName: req.SpecialtyName}
	if err := u.specialtyRepo.Create(tx, specialty); err != nil {
		if isDuplicateKeyError(err, "specialty_name") {
			return nil, ErrSpecialtyExists
		}
		u.log.Warnf("Failed to create specialty: %+v", err)
		return nil, err
	}

	resp := &dto.SpecialtyResponse{ID: specialty.ID, SpecialtyName: specialty.SpecialtyName}
	u.auditService.LogCreate(tx, actor, entity.AuditActionSpecialtyCreate, "specialty", strconv.Itoa(specialty.ID), resp)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}
