package usecase

import (
	"context"

	"clinic-booking-api/internal/converter"
	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/internal/domain/repository"
	"clinic-booking-api/internal/infrastructure/tokenstore"
	"clinic-booking-api/internal/policy"
	"clinic-booking-api/internal/service"
	"clinic-booking-api/pkg/apperror"
	"clinic-booking-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrAccountNotFound = apperror.NotFound("account not found")
	ErrRoleNotFound    = apperror.Validation("role", "role does not exist")
)

// AccountUsecase manages accounts. Every account sees only itself.
type AccountUsecase interface {
	ListAccounts(ctx context.Context, actor policy.Actor) ([]dto.AccountResponse, int64, error)
	CreateAccount(ctx context.Context, actor policy.Actor, req *dto.CreateAccountRequest) (*dto.AccountResponse, error)
	GetAccount(ctx context.Context, actor policy.Actor, id uuid.UUID) (*dto.AccountResponse, error)
	ReplaceAccount(ctx context.Context, actor policy.Actor, id uuid.UUID, req *dto.ReplaceAccountRequest) (*dto.AccountResponse, error)
	UpdateAccount(ctx context.Context, actor policy.Actor, id uuid.UUID, req *dto.UpdateAccountRequest) (*dto.AccountResponse, error)
	DeleteAccount(ctx context.Context, actor policy.Actor, id uuid.UUID) error
}

type accountUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	validate     *validator.CustomValidator
	accountRepo  repository.AccountRepository
	roleRepo     repository.RoleRepository
	tokens       tokenstore.Store
	auditService service.AuditService
}

func NewAccountUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	validate *validator.CustomValidator,
	accountRepo repository.AccountRepository,
	roleRepo repository.RoleRepository,
	tokens tokenstore.Store,
	auditService service.AuditService,
) AccountUsecase {
	return &accountUsecase{
		db:           db,
		log:          log,
		validate:     validate,
		accountRepo:  accountRepo,
		roleRepo:     roleRepo,
		tokens:       tokens,
		auditService: auditService,
	}
}

func (u *accountUsecase) ListAccounts(ctx context.Context, actor policy.Actor) ([]dto.AccountResponse, int64, error) {
	if !actor.Authenticated {
		return []dto.AccountResponse{}, 0, nil
	}

	account, err := u.accountRepo.FindByID(u.db.WithContext(ctx), actor.UserID)
	if err != nil {
		u.log.Warnf("Failed to find account %s: %+v", actor.UserID, err)
		return nil, 0, err
	}
	if account == nil {
		return []dto.AccountResponse{}, 0, nil
	}

	return []dto.AccountResponse{*converter.AccountToResponse(account)}, 1, nil
}

func (u *accountUsecase) CreateAccount(ctx context.Context, actor policy.Actor, req *dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	if !policy.CanCreateAccount(actor) {
		return nil, ErrPermissionDenied
	}
	if err := u.validate.ValidateRequest(req); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	role, err := u.roleRepo.FindByName(tx, req.Role)
	if err != nil {
		u.log.Warnf("Failed to find role %q: %+v", req.Role, err)
		return nil, err
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}

	account := &entity.Account{
		RoleID:         role.ID,
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
		u.log.Warnf("Failed to create account: %+v", err)
		return nil, err
	}

	resp := converter.AccountToResponse(account)
	u.auditService.LogCreate(tx, actor, entity.AuditActionAccountCreate, "account", account.ID.String(), resp)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

func (u *accountUsecase) GetAccount(ctx context.Context, actor policy.Actor, id uuid.UUID) (*dto.AccountResponse, error) {
	if !policy.CanAccessAccount(actor, id) {
		return nil, ErrAccountNotFound
	}

	account, err := u.accountRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find account %s: %+v", id, err)
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	return converter.AccountToResponse(account), nil
}

func (u *accountUsecase) ReplaceAccount(ctx context.Context, actor policy.Actor, id uuid.UUID, req *dto.ReplaceAccountRequest) (*dto.AccountResponse, error) {
	if !policy.CanAccessAccount(actor, id) {
		return nil, ErrAccountNotFound
	}
	if err := u.validate.ValidateRequest(req); err != nil {
		return nil, err
	}

	return u.update(ctx, actor, id, func(account *entity.Account) (bool, error) {
		account.Username = req.Username
		account.Email = req.Email
		account.FirstName = req.FirstName
		account.LastName = req.LastName
		account.Age = req.Age
		account.PhoneNumber = req.PhoneNumber
		account.ProfilePicture = req.ProfilePicture
		return false, nil
	})
}

func (u *accountUsecase) UpdateAccount(ctx context.Context, actor policy.Actor, id uuid.UUID, req *dto.UpdateAccountRequest) (*dto.AccountResponse, error) {
	if !policy.CanAccessAccount(actor, id) {
		return nil, ErrAccountNotFound
	}
	if err := u.validate.ValidateRequest(req); err != nil {
		return nil, err
	}

	return u.update(ctx, actor, id, func(account *entity.Account) (bool, error) {
		if req.Username != nil {
			account.Username = *req.Username
		}
		if req.Email != nil {
			account.Email = *req.Email
		}
		if req.FirstName != nil {
			account.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			account.LastName = *req.LastName
		}
		if req.Age != nil {
			account.Age = req.Age
		}
		if req.PhoneNumber != nil {
			account.PhoneNumber = *req.PhoneNumber
		}
		if req.ProfilePicture != nil {
			account.ProfilePicture = *req.ProfilePicture
		}
		if req.Password != nil {
			hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
			if err != nil {
				return false, err
			}
			account.Password = string(hashed)
			return true, nil
		}
		return false, nil
	})
}

// update loads the account, applies mutate and saves it in one transaction.
// mutate reports whether credentials changed, in which case every token of
// the account is revoked after commit.
func (u *accountUsecase) update(ctx context.Context, actor policy.Actor, id uuid.UUID, mutate func(*entity.Account) (bool, error)) (*dto.AccountResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	account, err := u.accountRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find account %s: %+v", id, err)
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	oldValue := converter.AccountToResponse(account)

	credentialsChanged, err := mutate(account)
	if err != nil {
		u.log.Warnf("Failed to apply account changes: %+v", err)
		return nil, err
	}

	if err := u.accountRepo.Update(tx, account); err != nil {
		if mapped := mapAccountWriteError(err); mapped != nil {
			return nil, mapped
		}
		u.log.Warnf("Failed to update account %s: %+v", id, err)
		return nil, err
	}

	newValue := converter.AccountToResponse(account)
	u.auditService.LogUpdate(tx, actor, entity.AuditActionAccountUpdate, "account", id.String(), oldValue, newValue)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	if credentialsChanged {
		if err := u.tokens.RevokeAll(ctx, id); err != nil {
			u.log.Warnf("Failed to revoke tokens of account %s: %+v", id, err)
		}
	}

	return newValue, nil
}

func (u *accountUsecase) DeleteAccount(ctx context.Context, actor policy.Actor, id uuid.UUID) error {
	if !policy.CanAccessAccount(actor, id) {
		return ErrAccountNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	account, err := u.accountRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find account %s: %+v", id, err)
		return err
	}
	if account == nil {
		return ErrAccountNotFound
	}

	if _, err := u.accountRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete account %s: %+v", id, err)
		return err
	}

	u.auditService.LogDelete(tx, actor, entity.AuditActionAccountDelete, "account", id.String(), converter.AccountToResponse(account))

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	if err := u.tokens.RevokeAll(ctx, id); err != nil {
		u.log.Warnf("Failed to revoke tokens of account %s: %+v", id, err)
	}

	return nil
}
