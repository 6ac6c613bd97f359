package domain

import (
	"errors"
)

var (
	MessageSuccessLogin    = "login success"
	MessageSuccessRegister = "register success"

	MessageFailedLogin    = "failed to login"
	MessageFailedRegister = "failed to register"

	ErrCredentialsInvalid    = errors.New("email or password invalid")
	ErrEmailAlreadyExists    = errors.New("email already registered")
	ErrUserNotFound          = errors.New("user not found")
	ErrSecretNotConfigured   = errors.New("jwt secret not configured")
	ErrPasswordHashingFailed = errors.New("failed to hash password")
)

type (
	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	RegisterRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
	}

	AuthResponse struct {
		Token string `json:"token"`
	}
)
