package usecase

import (
	"context"
	"testing"
	"time"

	"clinic-booking-api/config"
	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/internal/policy"
	"clinic-booking-api/pkg/apperror"
	"clinic-booking-api/pkg/jwt"
	"clinic-booking-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestJWT() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  time.Minute,
		RefreshExpiry: time.Hour,
	})
}

func TestLogout_RevokesRefreshAndAccess(t *testing.T) {
	jwtService := newTestJWT()
	actor := policy.NewActor(uuid.New(), entity.RoleIDPatient)

	refresh, refreshID, err := jwtService.GenerateRefreshToken(jwt.Subject{UserID: actor.UserID, RoleID: actor.RoleID})
	require.NoError(t, err)

	revoked := map[jwt.TokenType]string{}
	store := &mockTokenStore{
		revokeFunc: func(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string) (bool, error) {
			assert.Equal(t, actor.UserID, userID)
			revoked[tokenType] = tokenID
			return true, nil
		},
	}

	audit := &mockAuditService{}
	u := NewAuthUsecase(newTestDB(t), newTestLogger(), validator.NewValidator(), nil, jwtService, store, audit)

	err = u.Logout(context.Background(), actor, "access-id", &dto.LogoutRequest{Refresh: refresh})
	require.NoError(t, err)
	assert.Equal(t, refreshID, revoked[jwt.RefreshToken])
	assert.Equal(t, "access-id", revoked[jwt.AccessToken])

	require.Len(t, audit.calls, 1)
	assert.Equal(t, entity.AuditActionAccountLogout, audit.calls[0].action)
	assert.Equal(t, actor.UserID, audit.calls[0].actor.UserID)
	assert.Equal(t, actor.UserID.String(), audit.calls[0].entityID)
}

func TestLogout_Failures(t *testing.T) {
	jwtService := newTestJWT()
	actor := policy.NewActor(uuid.New(), entity.RoleIDPatient)
	sub := jwt.Subject{UserID: actor.UserID, RoleID: actor.RoleID}

	refresh, _, err := jwtService.GenerateRefreshToken(sub)
	require.NoError(t, err)
	access, _, err := jwtService.GenerateAccessToken(sub)
	require.NoError(t, err)
	foreign, _, err := jwtService.GenerateRefreshToken(jwt.Subject{UserID: uuid.New()})
	require.NoError(t, err)

	alreadyRevoked := &mockTokenStore{
		revokeFunc: func(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string) (bool, error) {
			return false, nil
		},
	}

	tests := []struct {
		name    string
		refresh string
	}{
		{name: "missing", refresh: ""},
		{name: "garbage", refresh: "not-a-token"},
		{name: "access token", refresh: access},
		{name: "other user", refresh: foreign},
		{name: "already revoked", refresh: refresh},
	}

	audit := &mockAuditService{}
	u := NewAuthUsecase(nil, newTestLogger(), validator.NewValidator(), nil, jwtService, alreadyRevoked, audit)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := u.Logout(context.Background(), actor, "access-id", &dto.LogoutRequest{Refresh: tt.refresh})
			assert.ErrorIs(t, err, ErrLogoutFailed)
			assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
		})
	}
	assert.Empty(t, audit.calls)
}

func TestRegister_ValidatesBody(t *testing.T) {
	u := NewAuthUsecase(nil, newTestLogger(), validator.NewValidator(), nil, newTestJWT(), nil, nil)

	_, err := u.Register(context.Background(), &dto.RegisterRequest{Username: "ab", Email: "not-an-email", Password: "short"})

	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Fields, "username")
	assert.Contains(t, appErr.Fields, "email")
	assert.Contains(t, appErr.Fields, "password")
}

func TestRefreshToken_RejectsAccessToken(t *testing.T) {
	jwtService := newTestJWT()
	access, _, err := jwtService.GenerateAccessToken(jwt.Subject{UserID: uuid.New()})
	require.NoError(t, err)

	u := NewAuthUsecase(nil, newTestLogger(), validator.NewValidator(), nil, jwtService, &mockTokenStore{}, nil)

	_, err = u.RefreshToken(context.Background(), &dto.RefreshTokenRequest{Refresh: access})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogin_IssuesTokensAndAudits(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	account := &entity.Account{ID: uuid.New(), Username: "alice", RoleID: entity.RoleIDPatient, Password: string(hash), IsActive: true}

	accountRepo := &mockAccountRepository{
		findByUsernameFunc: func(db *gorm.DB, username string) (*entity.Account, error) {
			if username == account.Username {
				return account, nil
			}
			return nil, nil
		},
	}
	saved := map[jwt.TokenType]int{}
	store := &mockTokenStore{
		saveFunc: func(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string, ttl time.Duration) error {
			saved[tokenType]++
			return nil
		},
	}
	audit := &mockAuditService{}
	u := NewAuthUsecase(newTestDB(t), newTestLogger(), validator.NewValidator(), accountRepo, newTestJWT(), store, audit)

	resp, err := u.Login(context.Background(), &dto.LoginRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Access)
	assert.NotEmpty(t, resp.Refresh)
	assert.Equal(t, 1, saved[jwt.AccessToken])
	assert.Equal(t, 1, saved[jwt.RefreshToken])

	require.Len(t, audit.calls, 1)
	assert.Equal(t, entity.AuditActionAccountLogin, audit.calls[0].action)
	assert.Equal(t, "account", audit.calls[0].entity)
	assert.Equal(t, account.ID, audit.calls[0].actor.UserID)
}

func TestLogin_BadPasswordIsNotAudited(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	accountRepo := &mockAccountRepository{
		findByUsernameFunc: func(db *gorm.DB, username string) (*entity.Account, error) {
			return &entity.Account{ID: uuid.New(), Password: string(hash), IsActive: true}, nil
		},
	}
	audit := &mockAuditService{}
	u := NewAuthUsecase(newTestDB(t), newTestLogger(), validator.NewValidator(), accountRepo, newTestJWT(), &mockTokenStore{}, audit)

	_, err = u.Login(context.Background(), &dto.LoginRequest{Username: "alice", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, audit.calls)
}
