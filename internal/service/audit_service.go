package service

import (
	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/internal/domain/repository"
	"clinic-booking-api/internal/policy"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const auditSavePoint = "audit_log"

// AuditService writes audit rows inside the caller's transaction. A failed
// audit write is rolled back to a savepoint so it never aborts the caller.
type AuditService interface {
	LogCreate(tx *gorm.DB, actor policy.Actor, action string, entityName string, entityID string, newValue interface{})
	LogUpdate(tx *gorm.DB, actor policy.Actor, action string, entityName string, entityID string, oldValue, newValue interface{})
	LogDelete(tx *gorm.DB, actor policy.Actor, action string, entityName string, entityID string, oldValue interface{})
	// LogEvent records an action that changes no row, such as login.
	LogEvent(tx *gorm.DB, actor policy.Actor, action string, entityName string, entityID string)
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(tx *gorm.DB, actor policy.Actor, action string, entityName string, entityID string, newValue interface{}) {
	s.record(tx, actor, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": nil,
		"new_value": newValue,
	})
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(tx *gorm.DB, actor policy.Actor, action string, entityName string, entityID string, oldValue, newValue interface{}) {
	s.record(tx, actor, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": newValue,
	})
}

// LogDelete logs a delete action with old value
func (s *auditService) LogDelete(tx *gorm.DB, actor policy.Actor, action string, entityName string, entityID string, oldValue interface{}) {
	s.record(tx, actor, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": nil,
	})
}

func (s *auditService) LogEvent(tx *gorm.DB, actor policy.Actor, action string, entityName string, entityID string) {
	s.record(tx, actor, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
	})
}

func (s *auditService) record(tx *gorm.DB, actor policy.Actor, action string, metadata entity.JSON) {
	var userID *uuid.UUID
	if actor.Authenticated {
		id := actor.UserID
		userID = &id
	}

	auditLog := &entity.AuditLog{
		UserID:   userID,
		Action:   action,
		Metadata: metadata,
	}

	if err := tx.SavePoint(auditSavePoint).Error; err != nil {
		s.log.Warnf("Failed to create audit savepoint: %+v", err)
		return
	}
	if err := s.auditRepo.Create(tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		if rbErr := tx.RollbackTo(auditSavePoint).Error; rbErr != nil {
			s.log.Warnf("Failed to roll back audit savepoint: %+v", rbErr)
		}
	}
}
