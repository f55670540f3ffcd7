package impl

import (
	"context"
	"log/slog"
	"net/http"

	"tutorhub/internal/domain/entity"
	domainerrors "tutorhub/internal/domain/errors"
	"tutorhub/internal/domain/repository"
	"tutorhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// mentorService implements the MentorUsecase interface.
type mentorService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewMentorService is the constructor for mentorService.
func NewMentorService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.MentorUsecase {
	return &mentorService{
		txManager: txManager,
		logger:    logger,
	}
}

// List returns every mentor profile with its backing user embedded.
func (srv *mentorService) List(ctx context.Context) ([]*usecase.MentorView, error) {
	srv.logger.Debug("Listing mentors")

	var views []*usecase.MentorView

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		mentors, err := repoFactory.MentorRepo().FindAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list mentors")
		}

		views = make([]*usecase.MentorView, 0, len(mentors))
		for _, mentor := range mentors {
			views = append(views, usecase.NewMentorView(mentor))
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list mentors")
	}

	return views, nil
}

// Get returns a single mentor profile by its identifier.
func (srv *mentorService) Get(ctx context.Context, mentorID string) (*usecase.MentorView, error) {
	srv.logger.Debug("Getting mentor", "mentorID", mentorID)

	id, err := parseMentorID(mentorID)
	if err != nil {
		return nil, err
	}

	var view *usecase.MentorView

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		mentor, err := repoFactory.MentorRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrMentorNotFound) {
				return errors.Wrap(domainerrors.ErrMentorNotFound, "no mentor with that id")
			}

			return errors.Wrap(err, "failed to find mentor")
		}
		view = usecase.NewMentorView(mentor)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get mentor")
	}

	return view, nil
}

// Create promotes an existing user to mentor. The pre-checks are fast
// paths; the UNIQUE constraint on mentors.user_id is the authoritative
// one-mentor-per-user guard.
func (srv *mentorService) Create(ctx context.Context, input *usecase.MentorPayload) (*usecase.MentorView, error) {
	srv.logger.Info("Creating mentor", "userID", input.UserID)

	userID, err := parseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	var view *usecase.MentorView

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		mentorRepo := repoFactory.MentorRepo()

		// 1. The backing user must exist
		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrMentorUserNotFound, "no user with that id")
			}

			return errors.Wrap(err, "failed to find user")
		}

		// 2. Persist the mentor profile
		mentor := &entity.Mentor{
			UserID:                  userID,
			NumberOfYearsExperience: input.NumberOfYearsExperience,
			CurrentJob:              entity.JobTitle(input.CurrentJob),
			Specialities:            input.Specialities,
		}
		if err := mentorRepo.Create(ctx, mentor); err != nil {
			switch {
			case errors.Is(err, repository.ErrUserAlreadyMentor):
				return errors.Wrap(domainerrors.ErrAlreadyMentor, "user already has a mentor profile")
			case errors.Is(err, repository.ErrUserNotFound):
				return errors.Wrap(domainerrors.ErrMentorUserNotFound, "no user with that id")
			}

			return errors.Wrap(err, "failed to create mentor")
		}

		mentor.User = user
		view = usecase.NewMentorView(mentor)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create mentor")
	}
	srv.logger.Debug("mentor created", "mentorID", view.ID)

	return view, nil
}

// Update replaces a mentor profile wholesale. Moving the profile to a
// different user re-checks the one-mentor-per-user rule.
func (srv *mentorService) Update(ctx context.Context, mentorID string, input *usecase.MentorPayload) error {
	srv.logger.Info("Updating mentor", "mentorID", mentorID)

	id, err := parseMentorID(mentorID)
	if err != nil {
		return err
	}
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		mentorRepo := repoFactory.MentorRepo()

		// 1. The mentor being updated must exist
		mentor, err := mentorRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrMentorNotFound) {
				return errors.Wrap(domainerrors.ErrMentorNotFound, "no mentor with that id")
			}

			return errors.Wrap(err, "failed to find mentor")
		}

		// 2. The target user must exist
		if _, err := userRepo.FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrMentorUserNotFound, "no user with that id")
			}

			return errors.Wrap(err, "failed to find user")
		}

		// 3. Moving to another user must not collide with their mentor profile
		if mentor.UserID != userID {
			existing, err := mentorRepo.FindByUserID(ctx, userID)
			if err != nil && !errors.Is(err, repository.ErrMentorNotFound) {
				return errors.Wrap(err, "failed to check target user")
			}
			if existing != nil && existing.ID != mentor.ID {
				return errors.Wrap(domainerrors.ErrAlreadyMentor, "target user already has a mentor profile")
			}
		}

		// 4. Replace the profile fields wholesale
		mentor.UserID = userID
		mentor.NumberOfYearsExperience = input.NumberOfYearsExperience
		mentor.CurrentJob = entity.JobTitle(input.CurrentJob)
		mentor.Specialities = input.Specialities

		if err := mentorRepo.Update(ctx, mentor); err != nil {
			switch {
			case errors.Is(err, repository.ErrUserAlreadyMentor):
				return errors.Wrap(domainerrors.ErrAlreadyMentor, "target user already has a mentor profile")
			case errors.Is(err, repository.ErrMentorNotFound):
				return errors.Wrap(domainerrors.ErrMentorNotFound, "no mentor with that id")
			case errors.Is(err, repository.ErrUserNotFound):
				return errors.Wrap(domainerrors.ErrMentorUserNotFound, "no user with that id")
			}

			return errors.Wrap(err, "failed to update mentor")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to update mentor")
	}

	return nil
}

// Delete removes a mentor profile by its identifier.
func (srv *mentorService) Delete(ctx context.Context, mentorID string) error {
	srv.logger.Info("Deleting mentor", "mentorID", mentorID)

	id, err := parseMentorID(mentorID)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.MentorRepo().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrMentorNotFound) {
				return errors.Wrap(domainerrors.ErrMentorNotFound, "no mentor with that id")
			}

			return errors.Wrap(err, "failed to delete mentor")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete mentor")
	}

	return nil
}

// parseMentorID syntax-checks a mentor identifier taken from the request path.
func parseMentorID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.NewFieldError(http.StatusBadRequest, "VALIDATION_FAILED", "mentorId", "mentorId is invalid")
	}

	return id, nil
}

// parseUserID syntax-checks a user identifier taken from the request body.
func parseUserID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.NewFieldError(http.StatusBadRequest, "VALIDATION_FAILED", "userId", "userId is invalid")
	}

	return id, nil
}
