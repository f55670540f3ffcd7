// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Mentor is a role-extension record attached to exactly one User.
// The one-to-one relationship is enforced by a uniqueness constraint on
// UserID in the storage layer; Mentor holds the reference, User has no
// back-pointer.
type Mentor struct {
	ID                      uuid.UUID // The unique identifier for the mentor record.
	UserID                  uuid.UUID // Reference to the backing User. Unique across mentors.
	User                    *User     // The populated User, present when the read resolved the reference.
	NumberOfYearsExperience float64   // Non-negative, in half-year steps.
	CurrentJob              JobTitle  // One of the fixed job titles.
	Specialities            []string  // Non-empty set of speciality names, no duplicates.
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// ValidExperience reports whether years is non-negative and an exact
// multiple of half a year.
func ValidExperience(years float64) bool {
	if years < 0 {
		return false
	}
	doubled := years * 2

	return doubled == math.Trunc(doubled)
}
