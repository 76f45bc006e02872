package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"clinic-booking-api/internal/infrastructure/tokenstore"
	"clinic-booking-api/internal/policy"
	"clinic-booking-api/pkg/jwt"
	"clinic-booking-api/pkg/response"

	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	ActorKey   contextKey = "actor"
	TokenIDKey contextKey = "token_id"
)

var (
	errMissingHeader = errors.New("Authorization header is required")
	errHeaderFormat  = errors.New("Invalid authorization header format")
	errInvalidToken  = errors.New("Invalid or expired token")
	errTokenType     = errors.New("Invalid token type")
	errTokenRevoked  = errors.New("Token has been revoked")
)

type AuthMiddleware struct {
	jwtService *jwt.JWTService
	tokens     tokenstore.Store
	log        *logrus.Logger
}

func NewAuthMiddleware(jwtService *jwt.JWTService, tokens tokenstore.Store, log *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		tokens:     tokens,
		log:        log,
	}
}

// Authenticate rejects requests without a valid, unrevoked access token.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, err := m.authenticate(r)
		if err != nil {
			m.reject(w, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuthenticate lets requests without an Authorization header through
// as anonymous. A header that is present must still be valid.
func (m *AuthMiddleware) OptionalAuthenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			next.ServeHTTP(w, r)
			return
		}
		ctx, err := m.authenticate(r)
		if err != nil {
			m.reject(w, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *AuthMiddleware) authenticate(r *http.Request) (context.Context, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, errMissingHeader
	}

	// Extract token from "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, errHeaderFormat
	}

	claims, err := m.jwtService.ValidateToken(parts[1])
	if err != nil {
		return nil, errInvalidToken
	}
	if claims.TokenType != jwt.AccessToken {
		return nil, errTokenType
	}

	exists, err := m.tokens.Exists(r.Context(), jwt.AccessToken, claims.UserID, claims.TokenID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errTokenRevoked
	}

	ctx := context.WithValue(r.Context(), ActorKey, policy.NewActor(claims.UserID, claims.RoleID))
	ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)
	return ctx, nil
}

func (m *AuthMiddleware) reject(w http.ResponseWriter, err error) {
	switch err {
	case errMissingHeader, errHeaderFormat, errInvalidToken, errTokenType, errTokenRevoked:
		response.Unauthorized(w, err.Error())
	default:
		m.log.Warnf("Failed to check token allow-list: %+v", err)
		response.InternalServerError(w, "Failed to validate token")
	}
}

// GetActorFromContext returns the authenticated actor, or an anonymous one.
func GetActorFromContext(ctx context.Context) policy.Actor {
	if actor, ok := ctx.Value(ActorKey).(policy.Actor); ok {
		return actor
	}
	return policy.Anonymous()
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}
