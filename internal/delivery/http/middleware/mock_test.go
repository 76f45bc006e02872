package middleware

import (
	"context"
	"time"

	"clinic-booking-api/pkg/jwt"

	"github.com/google/uuid"
)

type mockStore struct {
	existsFunc func(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string) (bool, error)
}

func (m *mockStore) Save(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	return nil
}

func (m *mockStore) Exists(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string) (bool, error) {
	if m.existsFunc != nil {
		return m.existsFunc(ctx, tokenType, userID, tokenID)
	}
	return true, nil
}

func (m *mockStore) Revoke(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string) (bool, error) {
	return true, nil
}

func (m *mockStore) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	return nil
}
