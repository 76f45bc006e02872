package usecase

import (
	"context"
	"errors"
	"testing"

	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/internal/policy"
	"clinic-booking-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockDepartmentRepository struct {
	createFunc  func(db *gorm.DB, department *entity.Department) error
	findAllFunc func(db *gorm.DB, filter entity.NameFilter) ([]entity.Department, int64, error)
}

func (m *mockDepartmentRepository) Create(db *gorm.DB, department *entity.Department) error {
	if m.createFunc != nil {
		return m.createFunc(db, department)
	}
	return errors.New("not implemented")
}

func (m *mockDepartmentRepository) FindAll(db *gorm.DB, filter entity.NameFilter) ([]entity.Department, int64, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(db, filter)
	}
	return nil, 0, errors.New("not implemented")
}

func TestCreateDepartment_AuditsDepartmentID(t *testing.T) {
	doctorID := uuid.New()
	admin := policy.NewActor(uuid.New(), entity.RoleIDAdmin)

	doctorRepo := &mockDoctorRepository{
		findByUserIDFunc: func(db *gorm.DB, userID uuid.UUID) (*entity.DoctorDetails, error) {
			return &entity.DoctorDetails{UserID: userID}, nil
		},
	}
	departmentRepo := &mockDepartmentRepository{
		createFunc: func(db *gorm.DB, department *entity.Department) error {
			assert.Equal(t, doctorID, department.DoctorID)
			department.ID = 17
			return nil
		},
	}
	audit := &mockAuditService{}
	u := NewCatalogUsecase(newTestDB(t), newTestLogger(), validator.NewValidator(), departmentRepo, nil, doctorRepo, audit)

	// The handle never connects, so the commit fails after the audit write.
	_, _ = u.CreateDepartment(context.Background(), admin, &dto.CreateDepartmentRequest{
		DoctorID:       doctorID.String(),
		DepartmentName: "Cardiology",
	})

	require.Len(t, audit.calls, 1)
	assert.Equal(t, entity.AuditActionDepartmentCreate, audit.calls[0].action)
	assert.Equal(t, "department", audit.calls[0].entity)
	assert.Equal(t, "17", audit.calls[0].entityID)
}
