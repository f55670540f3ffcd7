// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// --- Input DTOs ---
// Each struct is the static validation schema for one operation: required and
// optional fields are declared once, and the validator collects every failing
// field in a single pass.

// SignUpInput defines the data required to create a new account.
type SignUpInput struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	Name            string `json:"name" validate:"required"`
	PhoneNumber     string `json:"phoneNumber" validate:"omitempty,vnmobile"`
	DateOfBirth     string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
}

// SignInInput defines the data required to authenticate.
type SignInInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// TokenOutput carries the issued bearer token.
type TokenOutput struct {
	Token string `json:"token"`
}

// AuthUsecase defines the interface for account creation and authentication.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	SignUp(ctx context.Context, input *SignUpInput) (*TokenOutput, error)
	SignIn(ctx context.Context, input *SignInInput) (*TokenOutput, error)
}
