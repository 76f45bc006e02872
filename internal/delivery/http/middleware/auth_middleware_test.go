package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinic-booking-api/config"
	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/internal/policy"
	"clinic-booking-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWT() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  time.Minute,
		RefreshExpiry: time.Hour,
	})
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// captureActor records the actor the middleware put on the request.
func captureActor(got *policy.Actor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got = GetActorFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate(t *testing.T) {
	jwtService := newTestJWT()
	userID := uuid.New()
	sub := jwt.Subject{UserID: userID, RoleID: entity.RoleIDDoctor}

	access, accessID, err := jwtService.GenerateAccessToken(sub)
	require.NoError(t, err)
	refresh, _, err := jwtService.GenerateRefreshToken(sub)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		exists     bool
		existsErr  error
		wantStatus int
	}{
		{name: "valid token", header: "Bearer " + access, exists: true, wantStatus: http.StatusOK},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Token " + access, wantStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not-a-jwt", wantStatus: http.StatusUnauthorized},
		{name: "refresh token", header: "Bearer " + refresh, exists: true, wantStatus: http.StatusUnauthorized},
		{name: "revoked", header: "Bearer " + access, exists: false, wantStatus: http.StatusUnauthorized},
		{name: "store down", header: "Bearer " + access, existsErr: errors.New("connection refused"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockStore{
				existsFunc: func(ctx context.Context, tokenType jwt.TokenType, uid uuid.UUID, tokenID string) (bool, error) {
					assert.Equal(t, jwt.AccessToken, tokenType)
					assert.Equal(t, userID, uid)
					assert.Equal(t, accessID, tokenID)
					return tt.exists, tt.existsErr
				},
			}
			m := NewAuthMiddleware(jwtService, store, newTestLogger())

			var got policy.Actor
			req := httptest.NewRequest(http.MethodGet, "/users/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			m.Authenticate(captureActor(&got)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.True(t, got.Authenticated)
				assert.Equal(t, userID, got.UserID)
				assert.Equal(t, entity.RoleIDDoctor, got.RoleID)
			}
		})
	}
}

func TestAuthenticate_SetsTokenID(t *testing.T) {
	jwtService := newTestJWT()
	access, accessID, err := jwtService.GenerateAccessToken(jwt.Subject{UserID: uuid.New(), RoleID: entity.RoleIDPatient})
	require.NoError(t, err)

	var gotID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = GetTokenIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodPost, "/logout/", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	NewAuthMiddleware(jwtService, &mockStore{}, newTestLogger()).Authenticate(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, accessID, gotID)
}

func TestOptionalAuthenticate(t *testing.T) {
	jwtService := newTestJWT()
	m := NewAuthMiddleware(jwtService, &mockStore{}, newTestLogger())

	t.Run("no header is anonymous", func(t *testing.T) {
		got := policy.NewActor(uuid.New(), entity.RoleIDAdmin)
		rec := httptest.NewRecorder()
		m.OptionalAuthenticate(captureActor(&got)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/doctors/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, got.Authenticated)
	})

	t.Run("invalid header is rejected", func(t *testing.T) {
		var got policy.Actor
		req := httptest.NewRequest(http.MethodGet, "/doctors/", nil)
		req.Header.Set("Authorization", "Bearer expired")
		rec := httptest.NewRecorder()
		m.OptionalAuthenticate(captureActor(&got)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	tests := []struct {
		name       string
		actor      *policy.Actor
		wantStatus int
	}{
		{name: "anonymous", actor: nil, wantStatus: http.StatusUnauthorized},
		{name: "patient", actor: ptrActor(policy.NewActor(uuid.New(), entity.RoleIDPatient)), wantStatus: http.StatusForbidden},
		{name: "admin", actor: ptrActor(policy.NewActor(uuid.New(), entity.RoleIDAdmin)), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/audit_logs/", nil)
			if tt.actor != nil {
				req = req.WithContext(context.WithValue(req.Context(), ActorKey, *tt.actor))
			}
			rec := httptest.NewRecorder()
			RequireAdmin(ok).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func ptrActor(a policy.Actor) *policy.Actor { return &a }
