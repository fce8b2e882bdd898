package usecase

import (
	"context"

	"retrokick/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new customer.
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a customer to log in.
// ClientIP feeds the sign-in notification mail.
type LoginInput struct {
	Email    string
	Password string
	ClientIP string
}

// AdminLoginInput defines the data checked against the configured
// admin credential pair.
type AdminLoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// SignupOutput returns the newly created customer's basic information.
type SignupOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// AdminLoginOutput returns the admin token pair.
type AdminLoginOutput struct {
	AccessToken  string
	RefreshToken string
	Email        string
}

// UserUsecase defines the interface for account and authentication
// operations. This is the contract the delivery layer depends on.
type UserUsecase interface {
	Signup(ctx context.Context, input SignupInput) (*SignupOutput, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	AdminLogin(ctx context.Context, input AdminLoginInput) (*AdminLoginOutput, error)
}
