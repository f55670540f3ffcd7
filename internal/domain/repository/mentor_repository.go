package repository

import (
	"context"
	"errors"

	"tutorhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMentorNotFound is a domain-specific error returned when a mentor is not found.
var ErrMentorNotFound = errors.New("mentor not found")

// ErrUserAlreadyMentor is returned when an insert or update violates the
// one-mentor-per-user uniqueness constraint on the user reference.
var ErrUserAlreadyMentor = errors.New("user already backs a mentor")

// MentorRepository defines the standard operations for mentor persistence.
// Reads populate the backing User with password, saved tutorials and tasks
// excluded at the query level.
type MentorRepository interface {
	// FindByID retrieves a single mentor by ID with the backing User populated.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Mentor, error)

	// FindAll retrieves every mentor with the backing User populated.
	FindAll(ctx context.Context) ([]*entity.Mentor, error)

	// FindByUserID retrieves the mentor backed by the given user, if any.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Mentor, error)

	// Create persists a new mentor entity.
	// Returns ErrUserAlreadyMentor when the user reference constraint rejects the insert.
	Create(ctx context.Context, mentor *entity.Mentor) error

	// Update replaces the mentor's scalar and list fields wholesale.
	// Returns ErrUserAlreadyMentor when the new user reference is already taken.
	Update(ctx context.Context, mentor *entity.Mentor) error

	// Delete removes a mentor by ID. Returns ErrMentorNotFound when no row matched.
	Delete(ctx context.Context, id uuid.UUID) error
}
