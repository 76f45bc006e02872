package usecase

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/internal/policy"
	"clinic-booking-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// newTestDB returns a handle that never connects. It is only valid for
// paths whose repositories are mocked.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=127.0.0.1 user=test dbname=test sslmode=disable"}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)
	return db
}

type mockDoctorRepository struct {
	createFunc         func(db *gorm.DB, doctor *entity.DoctorDetails) error
	addSpecialtiesFunc func(db *gorm.DB, doctorID uuid.UUID, specialtyIDs []int) error
	findByUserIDFunc   func(db *gorm.DB, userID uuid.UUID) (*entity.DoctorDetails, error)
	findAllFunc        func(db *gorm.DB, filter entity.DoctorFilter) ([]entity.DoctorDetails, int64, error)
	countByIDsFunc     func(db *gorm.DB, ids []uuid.UUID) (int64, error)
}

func (m *mockDoctorRepository) Create(db *gorm.DB, doctor *entity.DoctorDetails) error {
	if m.createFunc != nil {
		return m.createFunc(db, doctor)
	}
	return errors.New("not implemented")
}

func (m *mockDoctorRepository) AddSpecialties(db *gorm.DB, doctorID uuid.UUID, specialtyIDs []int) error {
	if m.addSpecialtiesFunc != nil {
		return m.addSpecialtiesFunc(db, doctorID, specialtyIDs)
	}
	return errors.New("not implemented")
}

func (m *mockDoctorRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorDetails, error) {
	if m.findByUserIDFunc != nil {
		return m.findByUserIDFunc(db, userID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockDoctorRepository) FindAll(db *gorm.DB, filter entity.DoctorFilter) ([]entity.DoctorDetails, int64, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(db, filter)
	}
	return nil, 0, errors.New("not implemented")
}

func (m *mockDoctorRepository) CountByIDs(db *gorm.DB, ids []uuid.UUID) (int64, error) {
	if m.countByIDsFunc != nil {
		return m.countByIDsFunc(db, ids)
	}
	return 0, errors.New("not implemented")
}

type mockFeedbackRepository struct {
	createFunc      func(db *gorm.DB, feedback *entity.Feedback) error
	findByIDFunc    func(db *gorm.DB, id int) (*entity.Feedback, error)
	findAllFunc     func(db *gorm.DB, scope entity.ScopeFilter) ([]entity.Feedback, int64, error)
	updateFunc      func(db *gorm.DB, feedback *entity.Feedback) error
	deleteFunc      func(db *gorm.DB, id int) (int64, error)
	ratingStatsFunc func(db *gorm.DB, doctorIDs []uuid.UUID) (map[uuid.UUID]entity.RatingStats, error)
}

func (m *mockFeedbackRepository) Create(db *gorm.DB, feedback *entity.Feedback) error {
	if m.createFunc != nil {
		return m.createFunc(db, feedback)
	}
	return errors.New("not implemented")
}

func (m *mockFeedbackRepository) FindByID(db *gorm.DB, id int) (*entity.Feedback, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(db, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockFeedbackRepository) FindAll(db *gorm.DB, scope entity.ScopeFilter) ([]entity.Feedback, int64, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(db, scope)
	}
	return nil, 0, errors.New("not implemented")
}

func (m *mockFeedbackRepository) Update(db *gorm.DB, feedback *entity.Feedback) error {
	if m.updateFunc != nil {
		return m.updateFunc(db, feedback)
	}
	return errors.New("not implemented")
}

func (m *mockFeedbackRepository) Delete(db *gorm.DB, id int) (int64, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(db, id)
	}
	return 0, errors.New("not implemented")
}

func (m *mockFeedbackRepository) RatingStats(db *gorm.DB, doctorIDs []uuid.UUID) (map[uuid.UUID]entity.RatingStats, error) {
	if m.ratingStatsFunc != nil {
		return m.ratingStatsFunc(db, doctorIDs)
	}
	return nil, errors.New("not implemented")
}

type mockPatientRepository struct {
	createFunc       func(db *gorm.DB, patient *entity.PatientDetails) error
	findByUserIDFunc func(db *gorm.DB, userID uuid.UUID) (*entity.PatientDetails, error)
	findAllFunc      func(db *gorm.DB, limit, offset int) ([]entity.PatientDetails, int64, error)
}

func (m *mockPatientRepository) Create(db *gorm.DB, patient *entity.PatientDetails) error {
	if m.createFunc != nil {
		return m.createFunc(db, patient)
	}
	return errors.New("not implemented")
}

func (m *mockPatientRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.PatientDetails, error) {
	if m.findByUserIDFunc != nil {
		return m.findByUserIDFunc(db, userID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockPatientRepository) FindAll(db *gorm.DB, limit, offset int) ([]entity.PatientDetails, int64, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(db, limit, offset)
	}
	return nil, 0, errors.New("not implemented")
}

type mockTokenStore struct {
	saveFunc      func(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string, ttl time.Duration) error
	existsFunc    func(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string) (bool, error)
	revokeFunc    func(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string) (bool, error)
	revokeAllFunc func(ctx context.Context, userID uuid.UUID) error
}

func (m *mockTokenStore) Save(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, tokenType, userID, tokenID, ttl)
	}
	return errors.New("not implemented")
}

func (m *mockTokenStore) Exists(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string) (bool, error) {
	if m.existsFunc != nil {
		return m.existsFunc(ctx, tokenType, userID, tokenID)
	}
	return false, errors.New("not implemented")
}

func (m *mockTokenStore) Revoke(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string) (bool, error) {
	if m.revokeFunc != nil {
		return m.revokeFunc(ctx, tokenType, userID, tokenID)
	}
	return false, errors.New("not implemented")
}

func (m *mockTokenStore) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	if m.revokeAllFunc != nil {
		return m.revokeAllFunc(ctx, userID)
	}
	return errors.New("not implemented")
}

type mockAccountRepository struct {
	createFunc         func(db *gorm.DB, account *entity.Account) error
	findByIDFunc       func(db *gorm.DB, id uuid.UUID) (*entity.Account, error)
	findByUsernameFunc func(db *gorm.DB, username string) (*entity.Account, error)
	updateFunc         func(db *gorm.DB, account *entity.Account) error
	deleteFunc         func(db *gorm.DB, id uuid.UUID) (int64, error)
}

func (m *mockAccountRepository) Create(db *gorm.DB, account *entity.Account) error {
	if m.createFunc != nil {
		return m.createFunc(db, account)
	}
	return errors.New("not implemented")
}

func (m *mockAccountRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Account, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(db, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAccountRepository) FindByUsername(db *gorm.DB, username string) (*entity.Account, error) {
	if m.findByUsernameFunc != nil {
		return m.findByUsernameFunc(db, username)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAccountRepository) Update(db *gorm.DB, account *entity.Account) error {
	if m.updateFunc != nil {
		return m.updateFunc(db, account)
	}
	return errors.New("not implemented")
}

func (m *mockAccountRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(db, id)
	}
	return 0, errors.New("not implemented")
}

// auditCall is one recorded audit write.
type auditCall struct {
	actor    policy.Actor
	action   string
	entity   string
	entityID string
}

type mockAuditService struct {
	calls []auditCall
}

func (m *mockAuditService) add(actor policy.Actor, action, entityName, entityID string) {
	m.calls = append(m.calls, auditCall{actor: actor, action: action, entity: entityName, entityID: entityID})
}

func (m *mockAuditService) LogCreate(tx *gorm.DB, actor policy.Actor, action string, entityName string, entityID string, newValue interface{}) {
	m.add(actor, action, entityName, entityID)
}

func (m *mockAuditService) LogUpdate(tx *gorm.DB, actor policy.Actor, action string, entityName string, entityID string, oldValue, newValue interface{}) {
	m.add(actor, action, entityName, entityID)
}

func (m *mockAuditService) LogDelete(tx *gorm.DB, actor policy.Actor, action string, entityName string, entityID string, oldValue interface{}) {
	m.add(actor, action, entityName, entityID)
}

func (m *mockAuditService) LogEvent(tx *gorm.DB, actor policy.Actor, action string, entityName string, entityID string) {
	m.add(actor, action, entityName, entityID)
}
