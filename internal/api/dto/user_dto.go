package dto

import "time"

// UserRegisterRequest payload for new job seekers.
type UserRegisterRequest struct {
	Login    string `json:"login" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name" validate:"required,max=200"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// CompanyRegisterRequest payload for new employers.
type CompanyRegisterRequest struct {
	Login       string `json:"login" validate:"required,min=3,max=64"`
	Email       string `json:"email" validate:"required,email"`
	FullName    string `json:"full_name" validate:"required,max=200"`
	Password    string `json:"password" validate:"required,min=6,max=72"`
	NIP         string `json:"nip" validate:"required,len=10,numeric"`
	CompanyName string `json:"company_name" validate:"required,max=200"`
}

// LoginRequest payload for login by login name or email.
type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AccountResponse describes a registered account.
type AccountResponse struct {
	ID          string `json:"user_id"`
	Role        string `json:"role"`
	Login       string `json:"login"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	CompanyName string `json:"company_name,omitempty"`
	NIP         string `json:"nip,omitempty"`
}
