package usecase

import (
	"context"
	"testing"

	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/internal/pagination"
	"clinic-booking-api/internal/policy"
	"clinic-booking-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCatalogCreate_AdminOnly(t *testing.T) {
	u := NewCatalogUsecase(nil, newTestLogger(), validator.NewValidator(), nil, nil, nil, nil)
	doctor := policy.NewActor(uuid.New(), entity.RoleIDDoctor)
	ctx := context.Background()

	_, err := u.CreateDepartment(ctx, doctor, &dto.CreateDepartmentRequest{DoctorID: doctor.UserID.String(), DepartmentName: "Cardiology"})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = u.CreateSpecialty(ctx, policy.Anonymous(), &dto.CreateSpecialtyRequest{SpecialtyName: "Surgeon"})
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestPatientUsecase_Permissions(t *testing.T) {
	u := NewPatientUsecase(nil, newTestLogger(), validator.NewValidator(), nil, nil)
	ctx := context.Background()
	patient := policy.NewActor(uuid.New(), entity.RoleIDPatient)
	doctor := policy.NewActor(uuid.New(), entity.RoleIDDoctor)

	_, err := u.CreatePatient(ctx, doctor, &dto.CreatePatientRequest{EmergencyContact: "+14155552671", BloodType: "O+"})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = u.GetPatient(ctx, patient, uuid.New())
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = u.GetPatient(ctx, doctor, patient.UserID)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, _, err = u.ListPatients(ctx, patient, pagination.Params{Page: 1, Limit: 2})
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestAccountUsecase_OtherAccountsAreNotFound(t *testing.T) {
	u := NewAccountUsecase(nil, newTestLogger(), validator.NewValidator(), nil, nil, nil, nil)
	ctx := context.Background()
	patient := policy.NewActor(uuid.New(), entity.RoleIDPatient)
	otherID := uuid.New()

	_, err := u.GetAccount(ctx, patient, otherID)
	assert.ErrorIs(t, err, ErrAccountNotFound)

	assert.ErrorIs(t, u.DeleteAccount(ctx, patient, otherID), ErrAccountNotFound)
}

func TestAccountUsecase_AnonymousListIsEmpty(t *testing.T) {
	u := NewAccountUsecase(nil, newTestLogger(), validator.NewValidator(), nil, nil, nil, nil)

	items, total, err := u.ListAccounts(context.Background(), policy.Anonymous())
	assert.NoError(t, err)
	assert.Empty(t, items)
	assert.Zero(t, total)
}

func TestCreateAccount_AdminOnly(t *testing.T) {
	u := NewAccountUsecase(nil, newTestLogger(), validator.NewValidator(), nil, nil, nil, nil)
	doctor := policy.NewActor(uuid.New(), entity.RoleIDDoctor)

	_, err := u.CreateAccount(context.Background(), doctor, &dto.CreateAccountRequest{})
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestAuditLogs_AdminOnly(t *testing.T) {
	u := NewAuditLogUsecase(nil, newTestLogger(), nil)
	patient := policy.NewActor(uuid.New(), entity.RoleIDPatient)

	_, _, err := u.ListAuditLogs(context.Background(), patient, pagination.Params{Page: 1, Limit: 10})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = u.GetAuditLog(context.Background(), patient, 1)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestMedicalRecordCreate_PatientDenied(t *testing.T) {
	u := NewMedicalRecordUsecase(nil, newTestLogger(), validator.NewValidator(), nil, nil, nil, nil)
	patient := policy.NewActor(uuid.New(), entity.RoleIDPatient)

	_, err := u.CreateMedicalRecord(context.Background(), patient, &dto.CreateMedicalRecordRequest{})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	doctor := policy.NewActor(uuid.New(), entity.RoleIDDoctor)
	_, err = u.CreateMedicalRecord(context.Background(), doctor, &dto.CreateMedicalRecordRequest{
		PatientID:            uuid.NewString(),
		DoctorID:             uuid.NewString(),
		Diagnosis:            "flu",
		Treatment:            "rest",
		PrescribedMedication: "none",
	})
	assert.ErrorIs(t, err, ErrPermissionDenied)
}
