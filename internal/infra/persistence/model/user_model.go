// Package model contains the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via gen_random_uuid().
// The UNIQUE constraint on email is the authoritative uniqueness guard; the
// application pre-check is only a fast path.
type UserModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email           string     `gorm:"type:varchar(255);unique;not null"`
	PasswordHash    string     `gorm:"type:varchar(255);not null;column:password_hash"`
	Name            string     `gorm:"type:varchar(100);not null"`
	PhoneNumber     string     `gorm:"type:varchar(20)"`
	DateOfBirth     *time.Time `gorm:"type:date"`
	Role            string     `gorm:"type:varchar(20);not null;default:client"`
	ProfileImageURL string     `gorm:"type:varchar(512)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	SavedTutorials []SavedTutorialModel `gorm:"foreignKey:UserID"`
	Tasks          []TaskModel          `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// SavedTutorialModel mirrors the 'user_saved_tutorials' table, one row per
// tutorial reference a user bookmarked.
type SavedTutorialModel struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	TutorialID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (SavedTutorialModel) TableName() string {
	return "user_saved_tutorials"
}

// TaskModel mirrors the 'user_tasks' table holding a user's embedded task records.
type TaskModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Done      bool      `gorm:"not null;default:false"`
	DueAt     *time.Time
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TaskModel) TableName() string {
	return "user_tasks"
}
