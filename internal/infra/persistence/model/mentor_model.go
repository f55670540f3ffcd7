package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MentorModel mirrors the 'mentors' table. The UNIQUE constraint on user_id
// narrows the many-to-one user reference to one-to-one; violations are the
// authoritative signal that a user already backs a mentor.
type MentorModel struct {
	ID                      uuid.UUID                   `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID                  uuid.UUID                   `gorm:"type:uuid;not null;unique"`
	User                    *UserModel                  `gorm:"foreignKey:UserID"`
	NumberOfYearsExperience float64                     `gorm:"not null"`
	CurrentJob              string                      `gorm:"type:varchar(100);not null"`
	Specialities            datatypes.JSONSlice[string] `gorm:"type:jsonb;not null"`
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// TableName explicitly sets the table name for GORM.
func (MentorModel) TableName() string {
	return "mentors"
}
