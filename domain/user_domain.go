package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister        = "user registered successfully"
	MessageSuccessLogin           = "login successful"
	MessageSuccessGetMe           = "user profile retrieved successfully"
	MessageSuccessSendVerifyEmail = "verification email sent successfully"
	MessageSuccessVerifyEmail     = "email verified successfully"

	MessageFailedRegister        = "failed to register user"
	MessageFailedLogin           = "failed to login"
	MessageFailedGetMe           = "failed to retrieve user profile"
	MessageFailedSendVerifyEmail = "failed to send verification email"
	MessageFailedVerifyEmail     = "failed to verify email"

	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailNotVerified   = errors.New("email not verified")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required,min=2"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	RegisterResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	SendVerifyEmailRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	UserResponse struct {
		ID         string    `json:"id"`
		Name       string    `json:"name"`
		Email      string    `json:"email"`
		Role       string    `json:"role"`
		IsVerified bool      `json:"is_verified"`
		CreatedAt  time.Time `json:"created_at"`
	}
)
