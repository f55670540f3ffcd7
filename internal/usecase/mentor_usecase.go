package usecase

import (
	"context"
	"time"

	"tutorhub/internal/domain/entity"

	"github.com/google/uuid"
)

// MentorPayload is the full replacement body shared by mentor create and update.
type MentorPayload struct {
	UserID                  string   `json:"userId" validate:"required,uuid"`
	NumberOfYearsExperience float64  `json:"numberOfYearsExperience" validate:"required,halfstep"`
	CurrentJob              string   `json:"currentJob" validate:"required,jobtitle"`
	Specialities            []string `json:"specialities" validate:"required,min=1,unique"`
}

// UserView is the outward representation of a user: the storage-internal
// identifier is promoted to a plain "id" and the password hash, saved
// tutorials and tasks never appear.
type UserView struct {
	ID              uuid.UUID `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	PhoneNumber     string    `json:"phoneNumber,omitempty"`
	DateOfBirth     string    `json:"dateOfBirth,omitempty"`
	Role            string    `json:"userType"`
	ProfileImageURL string    `json:"profileImageURL,omitempty"`
}

// MentorView is the outward representation of a mentor with its backing user embedded.
type MentorView struct {
	ID                      uuid.UUID `json:"id"`
	User                    *UserView `json:"user"`
	NumberOfYearsExperience float64   `json:"numberOfYearsExperience"`
	CurrentJob              string    `json:"currentJob"`
	Specialities            []string  `json:"specialities"`
	CreatedAt               time.Time `json:"createdAt"`
	UpdatedAt               time.Time `json:"updatedAt"`
}

// NewUserView normalizes a user entity into its outward representation.
func NewUserView(user *entity.User) *UserView {
	if user == nil {
		return nil
	}

	dateOfBirth := ""
	if user.DateOfBirth != nil {
		dateOfBirth = user.DateOfBirth.Format("2006-01-02")
	}

	return &UserView{
		ID:              user.ID,
		Email:           user.Email,
		Name:            user.Name,
		PhoneNumber:     user.PhoneNumber,
		DateOfBirth:     dateOfBirth,
		Role:            user.Role.String(),
		ProfileImageURL: user.ProfileImageURL,
	}
}

// NewMentorView normalizes a mentor entity into its outward representation.
func NewMentorView(mentor *entity.Mentor) *MentorView {
	if mentor == nil {
		return nil
	}

	return &MentorView{
		ID:                      mentor.ID,
		User:                    NewUserView(mentor.User),
		NumberOfYearsExperience: mentor.NumberOfYearsExperience,
		CurrentJob:              mentor.CurrentJob.String(),
		Specialities:            mentor.Specialities,
		CreatedAt:               mentor.CreatedAt,
		UpdatedAt:               mentor.UpdatedAt,
	}
}

// MentorUsecase defines the interface for mentor-related business operations.
// Identifier arguments arrive as raw strings and are syntax-checked before any
// storage access.
type MentorUsecase interface {
	List(ctx context.Context) ([]*MentorView, error)
	Get(ctx context.Context, mentorID string) (*MentorView, error)
	Create(ctx context.Context, input *MentorPayload) (*MentorView, error)
	Update(ctx context.Context, mentorID string, input *MentorPayload) error
	Delete(ctx context.Context, mentorID string) error
}
