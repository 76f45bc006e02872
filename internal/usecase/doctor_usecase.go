package usecase

import (
	"context"
	"strconv"
	"strings"

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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrDoctorNotFound = apperror.NotFound("doctor not found")

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, actor policy.Actor, req *dto.CreateDoctorRequest) (*dto.DoctorDetailResponse, error)
	GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorDetailResponse, error)
	ListDoctors(ctx context.Context, query dto.DoctorListQuery, page pagination.Params) ([]dto.DoctorListItem, int64, error)
}

type doctorUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	validate       *validator.CustomValidator
	accountRepo    repository.AccountRepository
	doctorRepo     repository.DoctorRepository
	departmentRepo repository.DepartmentRepository
	specialtyRepo  repository.SpecialtyRepository
	feedbackRepo   repository.FeedbackRepository
	auditService   service.AuditService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	validate *validator.CustomValidator,
	accountRepo repository.AccountRepository,
	doctorRepo repository.DoctorRepository,
	departmentRepo repository.DepartmentRepository,
	specialtyRepo repository.SpecialtyRepository,
	feedbackRepo repository.FeedbackRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		db:             db,
		log:            log,
		validate:       validate,
		accountRepo:    accountRepo,
		doctorRepo:     doctorRepo,
		departmentRepo: departmentRepo,
		specialtyRepo:  specialtyRepo,
		feedbackRepo:   feedbackRepo,
		auditService:   auditService,
	}
}

// CreateDoctor creates the doctor account, its details, owned departments
// and specialty links in a single transaction.
func (u *doctorUsecase) CreateDoctor(ctx context.Context, actor policy.Actor, req *dto.CreateDoctorRequest) (*dto.DoctorDetailResponse, error) {
	if !policy.CanCreateDoctor(actor) {
		return nil, ErrPermissionDenied
	}
	if err := u.validate.ValidateRequest(req); err != nil {
		return nil, err
	}

	gender := entity.Gender(req.Gender)
	if gender == "" {
		gender = entity.GenderUnspecified
	}
	details := &entity.DoctorDetails{
		ShiftStart:        req.ShiftStart,
		ShiftEnd:          req.ShiftEnd,
		Price:             req.Price,
		Experience:        req.Experience,
		Gender:            gender,
		DoctorInformation: req.DoctorInformation,
	}
	for _, day := range req.WorkingDays {
		if err := details.AddWorkingDay(entity.Weekday(day)); err != nil {
			return nil, err
		}
	}
	if err := details.Validate(); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if len(req.SpecialtyIDs) > 0 {
		count, err := u.specialtyRepo.CountByIDs(tx, req.SpecialtyIDs)
		if err != nil {
			u.log.Warnf("Failed to count specialties: %+v", err)
			return nil, err
		}
		if count != int64(len(req.SpecialtyIDs)) {
			return nil, apperror.Validation("specialty_ids", "one or more specialties do not exist")
		}
	}

	account := &entity.Account{
		RoleID:         entity.RoleIDDoctor,
		Username:       req.Username,
		Email:          req.Email,
		Password:       string(hashedPassword),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Age:            req.Age,
		PhoneNumber:    req.PhoneNumber,
		ProfilePicture: req.ProfilePicture,
		IsActive:       true,
	}
	if err := u.accountRepo.Create(tx, account); err != nil {
		if mapped := mapAccountWriteError(err); mapped != nil {
			return nil, mapped
		}
		u.log.Warnf("Failed to create doctor account: %+v", err)
		return nil, err
	}

	details.UserID = account.ID
	if err := u.doctorRepo.Create(tx, details); err != nil {
		u.log.Warnf("Failed to create doctor details: %+v", err)
		return nil, err
	}

	for _, name := range req.Departments {
		department := &entity.Department{DoctorID: account.ID, DepartmentName: name}
		if err := u.departmentRepo.Create(tx, department); err != nil {
			u.log.Warnf("Failed to create department %q: %+v", name, err)
			return nil, err
		}
	}

	if err := u.doctorRepo.AddSpecialties(tx, account.ID, req.SpecialtyIDs); err != nil {
		u.log.Warnf("Failed to link specialties: %+v", err)
		return nil, err
	}

	created, err := u.doctorRepo.FindByUserID(tx, account.ID)
	if err != nil {
		u.log.Warnf("Failed to reload doctor %s: %+v", account.ID, err)
		return nil, err
	}

	resp := converter.DoctorToDetailResponse(created, entity.RatingStats{DoctorID: account.ID})
	u.auditService.LogCreate(tx, actor, entity.AuditActionDoctorCreate, "doctor", account.ID.String(), resp)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorDetailResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindByUserID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil || !doctor.Account.IsActive {
		return nil, ErrDoctorNotFound
	}

	stats, err := u.feedbackRepo.RatingStats(db, []uuid.UUID{doctorID})
	if err != nil {
		u.log.Warnf("Failed to aggregate ratings for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return converter.DoctorToDetailResponse(doctor, stats[doctorID]), nil
}

func (u *doctorUsecase) ListDoctors(ctx context.Context, query dto.DoctorListQuery, page pagination.Params) ([]dto.DoctorListItem, int64, error) {
	filter, err := parseDoctorFilter(query)
	if err != nil {
		return nil, 0, err
	}
	filter.Limit = page.Limit
	filter.Offset = page.Offset()

	db := u.db.WithContext(ctx)

	doctors, total, err := u.doctorRepo.FindAll(db, filter)
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, 0, err
	}

	ids := make([]uuid.UUID, len(doctors))
	for i := range doctors {
		ids[i] = doctors[i].UserID
	}
	stats, err := u.feedbackRepo.RatingStats(db, ids)
	if err != nil {
		u.log.Warnf("Failed to aggregate doctor ratings: %+v", err)
		return nil, 0, err
	}

	return converter.DoctorsToListItems(doctors, stats), total, nil
}

// parseDoctorFilter validates the raw query values. Unknown orderings are ignored.
func parseDoctorFilter(query dto.DoctorListQuery) (entity.DoctorFilter, error) {
	filter := entity.DoctorFilter{Search: strings.TrimSpace(query.Search)}
	fields := map[string]string{}

	if query.PriceGT != "" {
		v, err := strconv.Atoi(query.PriceGT)
		if err != nil {
			fields["price__gt"] = "Enter a whole number."
		} else {
			filter.PriceGT = &v
		}
	}
	if query.PriceLT != "" {
		v, err := strconv.Atoi(query.PriceLT)
		if err != nil {
			fields["price__lt"] = "Enter a whole number."
		} else {
			filter.PriceLT = &v
		}
	}
	if err := apperror.ValidationFields(fields); err != nil {
		return filter, err
	}

	switch query.Ordering {
	case entity.DoctorOrderPrice, "-" + entity.DoctorOrderPrice:
		filter.Ordering = query.Ordering
	}
	return filter, nil
}
