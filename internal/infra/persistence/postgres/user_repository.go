// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"tutorhub/internal/domain/entity"
	"tutorhub/internal/domain/repository"
	"tutorhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID, preloading saved tutorials and tasks.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	err := repo.db.WithContext(ctx).
		Preload("SavedTutorials").
		Preload("Tasks").
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	err := repo.db.WithContext(ctx).
		Preload("SavedTutorials").
		Preload("Tasks").
		Where("email = ?", email).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity to the database. The email UNIQUE
// constraint is the authoritative duplicate guard.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrEmailTaken
		}
		if isNotNullConstraintViolation(err) {
			return errors.Wrap(err, "missing required user information")
		}

		return errors.Wrap(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies an existing user entity in the database.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Save(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrEmailTaken
		}

		return errors.Wrap(err, "failed to update user")
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	savedTutorials := make([]uuid.UUID, 0, len(data.SavedTutorials))
	for _, ref := range data.SavedTutorials {
		savedTutorials = append(savedTutorials, ref.TutorialID)
	}

	tasks := make([]entity.Task, 0, len(data.Tasks))
	for _, task := range data.Tasks {
		tasks = append(tasks, entity.Task{
			ID:        task.ID,
			Title:     task.Title,
			Done:      task.Done,
			DueAt:     task.DueAt,
			CreatedAt: task.CreatedAt,
		})
	}

	return &entity.User{
		ID:              data.ID,
		Email:           data.Email,
		PasswordHash:    data.PasswordHash,
		Name:            data.Name,
		PhoneNumber:     data.PhoneNumber,
		DateOfBirth:     data.DateOfBirth,
		Role:            entity.Role(data.Role),
		SavedTutorials:  savedTutorials,
		Tasks:           tasks,
		ProfileImageURL: data.ProfileImageURL,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	savedTutorials := make([]model.SavedTutorialModel, 0, len(data.SavedTutorials))
	for _, tutorialID := range data.SavedTutorials {
		savedTutorials = append(savedTutorials, model.SavedTutorialModel{
			UserID:     data.ID,
			TutorialID: tutorialID,
		})
	}

	tasks := make([]model.TaskModel, 0, len(data.Tasks))
	for _, task := range data.Tasks {
		tasks = append(tasks, model.TaskModel{
			ID:     task.ID,
			UserID: data.ID,
			Title:  task.Title,
			Done:   task.Done,
			DueAt:  task.DueAt,
		})
	}

	role := data.Role
	if role == "" {
		role = entity.RoleClient
	}

	return &model.UserModel{
		ID:              data.ID,
		Email:           data.Email,
		PasswordHash:    data.PasswordHash,
		Name:            data.Name,
		PhoneNumber:     data.PhoneNumber,
		DateOfBirth:     data.DateOfBirth,
		Role:            role.String(),
		ProfileImageURL: data.ProfileImageURL,
		SavedTutorials:  savedTutorials,
		Tasks:           tasks,
	}
}
