package handler

import (
	"context"
	"errors"

	"clinic-booking-api/config"
	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/pagination"
	"clinic-booking-api/internal/policy"

	"github.com/google/uuid"
)

type mockDoctorUsecase struct {
	createDoctorFunc func(ctx context.Context, actor policy.Actor, req *dto.CreateDoctorRequest) (*dto.DoctorDetailResponse, error)
	getDoctorFunc    func(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorDetailResponse, error)
	listDoctorsFunc  func(ctx context.Context, query dto.DoctorListQuery, page pagination.Params) ([]dto.DoctorListItem, int64, error)
}

func (m *mockDoctorUsecase) CreateDoctor(ctx context.Context, actor policy.Actor, req *dto.CreateDoctorRequest) (*dto.DoctorDetailResponse, error) {
	if m.createDoctorFunc != nil {
		return m.createDoctorFunc(ctx, actor, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockDoctorUsecase) GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorDetailResponse, error) {
	if m.getDoctorFunc != nil {
		return m.getDoctorFunc(ctx, doctorID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockDoctorUsecase) ListDoctors(ctx context.Context, query dto.DoctorListQuery, page pagination.Params) ([]dto.DoctorListItem, int64, error) {
	if m.listDoctorsFunc != nil {
		return m.listDoctorsFunc(ctx, query, page)
	}
	return nil, 0, errors.New("not implemented")
}

type mockAuthUsecase struct {
	registerFunc     func(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	loginFunc        func(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	logoutFunc       func(ctx context.Context, actor policy.Actor, accessTokenID string, req *dto.LogoutRequest) error
	refreshTokenFunc func(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	ensureAdminFunc  func(ctx context.Context, cfg config.AdminConfig) error
}

func (m *mockAuthUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthUsecase) Logout(ctx context.Context, actor policy.Actor, accessTokenID string, req *dto.LogoutRequest) error {
	if m.logoutFunc != nil {
		return m.logoutFunc(ctx, actor, accessTokenID, req)
	}
	return errors.New("not implemented")
}

func (m *mockAuthUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	if m.refreshTokenFunc != nil {
		return m.refreshTokenFunc(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthUsecase) EnsureAdmin(ctx context.Context, cfg config.AdminConfig) error {
	if m.ensureAdminFunc != nil {
		return m.ensureAdminFunc(ctx, cfg)
	}
	return errors.New("not implemented")
}
