// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"tutorhub/internal/domain/entity"
	"tutorhub/internal/domain/repository"
	"tutorhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// mentorRepository implements the domain.MentorRepository interface using GORM.
type mentorRepository struct {
	db *gorm.DB
}

// NewMentorRepository is the constructor for mentorRepository.
func NewMentorRepository(db *gorm.DB) repository.MentorRepository {
	return &mentorRepository{db: db}
}

// preloadSanitizedUser resolves the backing user with the password hash and
// the saved-tutorials/tasks associations excluded at the query level.
func preloadSanitizedUser(db *gorm.DB) *gorm.DB {
	return db.Select(
		"id", "email", "name", "phone_number", "date_of_birth",
		"role", "profile_image_url", "created_at", "updated_at",
	)
}

// FindByID retrieves a single mentor by ID with the backing User populated.
func (repo *mentorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Mentor, error) {
	var mentorM model.MentorModel

	err := repo.db.WithContext(ctx).
		Preload("User", preloadSanitizedUser).
		Where("id = ?", id).
		First(&mentorM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMentorNotFound
		}

		return nil, errors.Wrap(err, "failed to find mentor by id")
	}

	return toMentorDomain(&mentorM), nil
}

// FindAll retrieves every mentor with the backing User populated.
func (repo *mentorRepository) FindAll(ctx context.Context) ([]*entity.Mentor, error) {
	var mentorMs []model.MentorModel

	err := repo.db.WithContext(ctx).
		Preload("User", preloadSanitizedUser).
		Order("created_at").
		Find(&mentorMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list mentors")
	}

	mentors := make([]*entity.Mentor, 0, len(mentorMs))
	for i := range mentorMs {
		mentors = append(mentors, toMentorDomain(&mentorMs[i]))
	}

	return mentors, nil
}

// FindByUserID retrieves the mentor backed by the given user, if any.
func (repo *mentorRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Mentor, error) {
	var mentorM model.MentorModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&mentorM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMentorNotFound
		}

		return nil, errors.Wrap(err, "failed to find mentor by user id")
	}

	return toMentorDomain(&mentorM), nil
}

// Create persists a new mentor entity. The UNIQUE constraint on user_id is
// the authoritative one-mentor-per-user guard.
func (repo *mentorRepository) Create(ctx context.Context, mentor *entity.Mentor) error {
	mentorM := fromMentorDomain(mentor)

	if err := repo.db.WithContext(ctx).Create(mentorM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrUserAlreadyMentor
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to create mentor")
	}

	mentor.ID = mentorM.ID
	mentor.CreatedAt = mentorM.CreatedAt
	mentor.UpdatedAt = mentorM.UpdatedAt

	return nil
}

// Update replaces the mentor's scalar and list fields wholesale.
func (repo *mentorRepository) Update(ctx context.Context, mentor *entity.Mentor) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MentorModel{}).
		Where("id = ?", mentor.ID).
		Updates(map[string]any{
			"user_id":                    mentor.UserID,
			"number_of_years_experience": mentor.NumberOfYearsExperience,
			"current_job":                mentor.CurrentJob.String(),
			"specialities":               datatypes.NewJSONSlice(mentor.Specialities),
		})
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrUserAlreadyMentor
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to update mentor")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMentorNotFound
	}

	return nil
}

// Delete removes a mentor by ID.
func (repo *mentorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MentorModel{})
	if err := result.Error; err != nil {
		return errors.Wrap(err, "failed to delete mentor")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMentorNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toMentorDomain converts a GORM MentorModel to a domain Mentor entity.
func toMentorDomain(data *model.MentorModel) *entity.Mentor {
	if data == nil {
		return nil
	}

	return &entity.Mentor{
		ID:                      data.ID,
		UserID:                  data.UserID,
		User:                    toUserDomain(data.User),
		NumberOfYearsExperience: data.NumberOfYearsExperience,
		CurrentJob:              entity.JobTitle(data.CurrentJob),
		Specialities:            []string(data.Specialities),
		CreatedAt:               data.CreatedAt,
		UpdatedAt:               data.UpdatedAt,
	}
}

// fromMentorDomain converts a domain Mentor entity to a GORM MentorModel for persistence.
func fromMentorDomain(data *entity.Mentor) *model.MentorModel {
	if data == nil {
		return nil
	}

	return &model.MentorModel{
		ID:                      data.ID,
		UserID:                  data.UserID,
		NumberOfYearsExperience: data.NumberOfYearsExperience,
		CurrentJob:              data.CurrentJob.String(),
		Specialities:            datatypes.NewJSONSlice(data.Specialities),
	}
}
