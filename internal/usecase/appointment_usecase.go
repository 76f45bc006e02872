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

var (
	ErrAppointmentNotFound = apperror.NotFound("appointment not found")
	ErrAppointmentChanged  = apperror.Validation("status", "appointment is no longer planned")
)

// appointmentDateTimeLayouts are accepted for date_time, in order.
var appointmentDateTimeLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02 15:04"}

type AppointmentUsecase interface {
	ListAppointments(ctx context.Context, actor policy.Actor, page pagination.Params) ([]dto.AppointmentResponse, int64, error)
	CreateAppointment(ctx context.Context, actor policy.Actor, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateAppointmentStatus(ctx context.Context, actor policy.Actor, id int, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	validate        *validator.CustomValidator
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	validate *validator.CustomValidator,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		validate:        validate,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		auditService:    auditService,
	}
}

func (u *appointmentUsecase) ListAppointments(ctx context.Context, actor policy.Actor, page pagination.Params) ([]dto.AppointmentResponse, int64, error) {
	scope, err := actorScope(actor, page)
	if err != nil {
		return nil, 0, err
	}

	appointments, total, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx), scope)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, 0, err
	}

	return converter.AppointmentsToResponses(appointments), total, nil
}

// CreateAppointment books a planned appointment. Patients book for
// themselves and doctors for themselves, so the matching id may be omitted.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, actor policy.Actor, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if !actor.Authenticated {
		return nil, ErrPermissionDenied
	}
	if err := u.validate.ValidateRequest(req); err != nil {
		return nil, err
	}

	patientID, doctorID, err := appointmentParties(actor, req)
	if err != nil {
		return nil, err
	}
	if !policy.CanCreateAppointment(actor, patientID, doctorID) {
		return nil, ErrPermissionDenied
	}

	status := entity.AppointmentStatusPlanned
	if req.Status != "" && entity.AppointmentStatus(req.Status) != status {
		return nil, apperror.Validation("status", "new appointments must be planned")
	}

	dateTime, err := parseAppointmentDateTime(req.DateTime)
	if err != nil {
		return nil, err
	}

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

	appointment := &entity.Appointment{
		PatientID: patientID,
		DoctorID:  doctorID,
		DateTime:  dateTime,
		Status:    status,
	}
	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	created, err := u.appointmentRepo.FindByID(tx, appointment.ID)
	if err != nil {
		u.log.Warnf("Failed to reload appointment %d: %+v", appointment.ID, err)
		return nil, err
	}

	resp := converter.AppointmentToResponse(created)
	u.auditService.LogCreate(tx, actor, entity.AuditActionAppointmentCreate, "appointment", strconv.Itoa(appointment.ID), resp)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

// UpdateAppointmentStatus completes or cancels a planned appointment.
// Appointments the actor is not part of are reported as missing.
func (u *appointmentUsecase) UpdateAppointmentStatus(ctx context.Context, actor policy.Actor, id int, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	if !actor.Authenticated {
		return nil, ErrPermissionDenied
	}
	if err := u.validate.ValidateRequest(req); err != nil {
		return nil, err
	}
	to := entity.AppointmentStatus(req.Status)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil || !policy.CanReadAppointment(actor, appointment) {
		return nil, ErrAppointmentNotFound
	}
	if !policy.CanTransitionAppointment(actor, appointment, to) {
		return nil, ErrPermissionDenied
	}

	old := converter.AppointmentToResponse(appointment)
	if err := appointment.TransitionTo(to); err != nil {
		return nil, err
	}

	affected, err := u.appointmentRepo.UpdateStatus(tx, id, to)
	if err != nil {
		u.log.Warnf("Failed to update appointment %d: %+v", id, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrAppointmentChanged
	}

	resp := converter.AppointmentToResponse(appointment)
	action := entity.AuditActionAppointmentCancel
	if to == entity.AppointmentStatusCompleted {
		action = entity.AuditActionAppointmentComplete
	}
	u.auditService.LogUpdate(tx, actor, action, "appointment", strconv.Itoa(id), old, resp)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

// appointmentParties resolves patient and doctor ids, defaulting the
// caller's own side. Admins must name both.
func appointmentParties(actor policy.Actor, req *dto.CreateAppointmentRequest) (uuid.UUID, uuid.UUID, error) {
	fields := map[string]string{}

	patientID, doctorID := uuid.Nil, uuid.Nil
	if req.PatientID != "" {
		patientID = uuid.MustParse(req.PatientID)
	} else if actor.IsPatient() {
		patientID = actor.UserID
	} else {
		fields["patient_id"] = "This field is required."
	}
	if req.DoctorID != "" {
		doctorID = uuid.MustParse(req.DoctorID)
	} else if actor.IsDoctor() {
		doctorID = actor.UserID
	} else {
		fields["doctor_id"] = "This field is required."
	}

	if err := apperror.ValidationFields(fields); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return patientID, doctorID, nil
}

func parseAppointmentDateTime(s string) (time.Time, error) {
	for _, layout := range appointmentDateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperror.Validation("date_time", "Datetime has wrong format. Use one of these formats instead: YYYY-MM-DDThh:mm[:ss][+HH:MM|-HH:MM|Z].")
}
