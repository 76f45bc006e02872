package dto

// Request DTOs

type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=150"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"omitempty,max=150"`
	LastName  string `json:"last_name" validate:"omitempty,max=150"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LogoutRequest carries the refresh token to blacklist.
type LogoutRequest struct {
	Refresh string `json:"refresh"`
}

type RefreshTokenRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// Response DTOs

type AuthUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type AuthResponse struct {
	User    AuthUser `json:"user"`
	Access  string   `json:"access"`
	Refresh string   `json:"refresh"`
}

type TokenResponse struct {
	Access    string `json:"access"`
	Refresh   string `json:"refresh"`
	ExpiresIn int64  `json:"expires_in"`
}
