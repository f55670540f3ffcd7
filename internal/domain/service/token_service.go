package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"tutorhub/internal/domain/entity"
)

// Claims defines the identity facts embedded in every issued token.
// Downstream authorization reads these without a database round trip.
type Claims struct {
	UserID      uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Role        string    `json:"userType"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	DateOfBirth string    `json:"dateOfBirth,omitempty"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed token embedding the user's identity claims.
	Issue(user *entity.User) (string, error)

	// Validate checks a token string and returns its claims when valid.
	Validate(tokenString string) (*Claims, error)
}
