// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity record of the system. Every account, whether it
// later becomes a mentor or stays a plain client, starts as a User.
type User struct {
	ID              uuid.UUID   // The unique identifier for the user.
	Email           string      // The user's login identifier. Globally unique.
	PasswordHash    string      // The bcrypt hash of the user's password. Never serialized outward.
	Name            string      // The user's display name.
	PhoneNumber     string      // Optional contact number (Vietnamese mobile format).
	DateOfBirth     *time.Time  // Optional date of birth. Nil when not supplied.
	Role            Role        // Flat role tag, defaults to RoleClient on sign-up.
	SavedTutorials  []uuid.UUID // References to tutorials the user bookmarked.
	Tasks           []Task      // Task records owned by the user.
	ProfileImageURL string      // Optional reference to the user's profile image.
	CreatedAt       time.Time   // Timestamp of when this account was created.
	UpdatedAt       time.Time   // Timestamp of the last modification to this account.
}

// Task is a lightweight to-do record embedded in a user's account.
type Task struct {
	ID        uuid.UUID // The unique identifier for the task.
	Title     string    // Short description of the task.
	Done      bool      // Whether the task has been completed.
	DueAt     *time.Time
	CreatedAt time.Time
}
