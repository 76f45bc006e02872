package usecase

import (
	"context"

	"clinic-booking-api/internal/converter"
	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/domain/repository"
	"clinic-booking-api/internal/pagination"
	"clinic-booking-api/internal/policy"
	"clinic-booking-api/pkg/apperror"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrAuditLogNotFound = apperror.NotFound("audit log not found")

type AuditLogUsecase interface {
	ListAuditLogs(ctx context.Context, actor policy.Actor, page pagination.Params) ([]dto.AuditLogResponse, int64, error)
	GetAuditLog(ctx context.Context, actor policy.Actor, id int64) (*dto.AuditLogResponse, error)
}

type auditLogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	auditLogRepo repository.AuditLogRepository,
) AuditLogUsecase {
	return &auditLogUsecase{
		db:           db,
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

func (u *auditLogUsecase) ListAuditLogs(ctx context.Context, actor policy.Actor, page pagination.Params) ([]dto.AuditLogResponse, int64, error) {
	if !policy.CanReadAuditLog(actor) {
		return nil, 0, ErrPermissionDenied
	}

	logs, total, err := u.auditLogRepo.FindAll(u.db.WithContext(ctx), page.Limit, page.Offset())
	if err != nil {
		u.log.Warnf("Failed to find audit logs: %+v", err)
		return nil, 0, err
	}

	return converter.AuditLogsToResponses(logs), total, nil
}

func (u *auditLogUsecase) GetAuditLog(ctx context.Context, actor policy.Actor, id int64) (*dto.AuditLogResponse, error) {
	if !policy.CanReadAuditLog(actor) {
		return nil, ErrPermissionDenied
	}

	auditLog, err := u.auditLogRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find audit log %d: %+v", id, err)
		return nil, err
	}
	if auditLog == nil {
		return nil, ErrAuditLogNotFound
	}

	return converter.AuditLogToResponse(auditLog), nil
}
