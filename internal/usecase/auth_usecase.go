package usecase

import (
	"context"

	"clinic-booking-api/config"
	"clinic-booking-api/internal/converter"
	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/internal/domain/repository"
	"clinic-booking-api/internal/infrastructure/tokenstore"
	"clinic-booking-api/internal/policy"
	"clinic-booking-api/internal/service"
	"clinic-booking-api/pkg/apperror"
	"clinic-booking-api/pkg/jwt"
	"clinic-booking-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = apperror.Authentication("No active account found with the given credentials")
	ErrInvalidToken       = apperror.Authentication("Token is invalid or expired")
	ErrLogoutFailed       = apperror.New(apperror.KindValidation, "Invalid or already revoked refresh token")
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	// Logout blacklists the refresh token and revokes the access token the
	// request was made with.
	Logout(ctx context.Context, actor policy.Actor, accessTokenID string, req *dto.LogoutRequest) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	// EnsureAdmin creates the configured administrator if it does not exist yet.
	EnsureAdmin(ctx context.Context, cfg config.AdminConfig) error
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	validate     *validator.CustomValidator
	accountRepo  repository.AccountRepository
	jwtService   *jwt.JWTService
	tokens       tokenstore.Store
	auditService service.AuditService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	validate *validator.CustomValidator,
	accountRepo repository.AccountRepository,
	jwtService *jwt.JWTService,
	tokens tokenstore.Store,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		validate:     validate,
		accountRepo:  accountRepo,
		jwtService:   jwtService,
		tokens:       tokens,
		auditService: auditService,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := u.validate.ValidateRequest(req); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	account := &entity.Account{
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hashedPassword),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		RoleID:    entity.RoleIDPatient,
		IsActive:  true,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.accountRepo.Create(tx, account); err != nil {
		if mapped := mapAccountWriteError(err); mapped != nil {
			return nil, mapped
		}
		u.log.Warnf("Failed to create account: %+v", err)
		return nil, err
	}

	u.auditService.LogCreate(tx, policy.NewActor(account.ID, account.RoleID), entity.AuditActionAccountRegister,
		"account", account.ID.String(), converter.AccountToAuthUser(account))

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.issue(ctx, account)
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := u.validate.ValidateRequest(req); err != nil {
		return nil, err
	}

	// Find account by username (read-only, no transaction needed)
	account, err := u.accountRepo.FindByUsername(u.db.WithContext(ctx), req.Username)
	if err != nil {
		u.log.Warnf("Failed to find account by username: %+v", err)
		return nil, err
	}
	if account == nil || !account.IsActive {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	resp, err := u.issue(ctx, account)
	if err != nil {
		return nil, err
	}

	u.recordEvent(ctx, policy.NewActor(account.ID, account.RoleID), entity.AuditActionAccountLogin, account.ID)
	return resp, nil
}

func (u *authUsecase) Logout(ctx context.Context, actor policy.Actor, accessTokenID string, req *dto.LogoutRequest) error {
	if req.Refresh == "" {
		return ErrLogoutFailed
	}

	claims, err := u.jwtService.ValidateToken(req.Refresh)
	if err != nil || claims.TokenType != jwt.RefreshToken || !actor.Is(claims.UserID) {
		return ErrLogoutFailed
	}

	revoked, err := u.tokens.Revoke(ctx, jwt.RefreshToken, claims.UserID, claims.TokenID)
	if err != nil {
		u.log.Warnf("Failed to revoke refresh token: %+v", err)
		return ErrLogoutFailed
	}
	if !revoked {
		return ErrLogoutFailed
	}

	if _, err := u.tokens.Revoke(ctx, jwt.AccessToken, actor.UserID, accessTokenID); err != nil {
		u.log.Warnf("Failed to revoke access token: %+v", err)
	}

	u.recordEvent(ctx, actor, entity.AuditActionAccountLogout, actor.UserID)
	return nil
}

// recordEvent writes the audit row of a login or logout in its own
// transaction. The tokens are already issued or revoked, so failures are
// only logged.
func (u *authUsecase) recordEvent(ctx context.Context, actor policy.Actor, action string, accountID uuid.UUID) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	u.auditService.LogEvent(tx, actor, action, "account", accountID.String())

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit %s audit log: %+v", action, err)
	}
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	if err := u.validate.ValidateRequest(req); err != nil {
		return nil, err
	}

	claims, err := u.jwtService.ValidateToken(req.Refresh)
	if err != nil || claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	// Rotation: the old refresh token is consumed exactly once
	revoked, err := u.tokens.Revoke(ctx, jwt.RefreshToken, claims.UserID, claims.TokenID)
	if err != nil {
		u.log.Warnf("Failed to revoke old refresh token: %+v", err)
		return nil, err
	}
	if !revoked {
		return nil, ErrInvalidToken
	}

	account, err := u.accountRepo.FindByID(u.db.WithContext(ctx), claims.UserID)
	if err != nil {
		u.log.Warnf("Failed to find account by ID: %+v", err)
		return nil, err
	}
	if account == nil || !account.IsActive {
		return nil, ErrInvalidToken
	}

	resp, err := u.issue(ctx, account)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		Access:    resp.Access,
		Refresh:   resp.Refresh,
		ExpiresIn: int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) EnsureAdmin(ctx context.Context, cfg config.AdminConfig) error {
	if cfg.Username == "" {
		return nil
	}

	existing, err := u.accountRepo.FindByUsername(u.db.WithContext(ctx), cfg.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &entity.Account{
		Username: cfg.Username,
		Email:    cfg.Email,
		Password: string(hashedPassword),
		RoleID:   entity.RoleIDAdmin,
		IsActive: true,
	}
	if err := u.accountRepo.Create(u.db.WithContext(ctx), admin); err != nil {
		if isDuplicateKeyError(err, "username") {
			return nil
		}
		return err
	}

	u.log.Infof("Seeded admin account %q", admin.Username)
	return nil
}

// issue generates an access/refresh pair and records both token ids in the allow-list.
func (u *authUsecase) issue(ctx context.Context, account *entity.Account) (*dto.AuthResponse, error) {
	sub := jwt.Subject{UserID: account.ID, Email: account.Email, RoleID: account.RoleID}

	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(sub)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(sub)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.tokens.Save(ctx, jwt.AccessToken, account.ID, accessTokenID, u.jwtService.GetAccessExpiry()); err != nil {
		u.log.Warnf("Failed to store access token: %+v", err)
		return nil, err
	}

	if err := u.tokens.Save(ctx, jwt.RefreshToken, account.ID, refreshTokenID, u.jwtService.GetRefreshExpiry()); err != nil {
		u.log.Warnf("Failed to store refresh token: %+v", err)
		return nil, err
	}

	return &dto.AuthResponse{
		User:    converter.AccountToAuthUser(account),
		Access:  accessToken,
		Refresh: refreshToken,
	}, nil
}

// mapAccountWriteError turns unique violations on accounts into field errors.
func mapAccountWriteError(err error) error {
	switch {
	case isDuplicateKeyError(err, "accounts_username"):
		return apperror.Validation("username", "A user with that username already exists.")
	case isDuplicateKeyError(err, "accounts_email"):
		return apperror.Validation("email", "A user with that email already exists.")
	}
	return nil
}
