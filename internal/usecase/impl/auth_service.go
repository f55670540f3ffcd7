// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"tutorhub/internal/domain/entity"
	domainerrors "tutorhub/internal/domain/errors"
	"tutorhub/internal/domain/repository"
	"tutorhub/internal/domain/service"
	"tutorhub/internal/usecase"

	"github.com/pkg/errors"
)

// dateOfBirthLayout is the wire format for dates of birth.
const dateOfBirthLayout = "2006-01-02"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// SignUp registers a new account and returns a signed access token.
// The pre-check on the email is a fast path; the UNIQUE constraint on
// users.email is the authoritative guard against concurrent sign-ups.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.TokenOutput, error) {
	srv.logger.Info("Signing up new user", "email", input.Email)

	dateOfBirth, err := parseDateOfBirth(input.DateOfBirth)
	if err != nil {
		return nil, err
	}

	var user *entity.User

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. Reject the email if it is already registered
		_, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return errors.Wrap(domainerrors.ErrEmailExists, "email already registered")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email")
		}

		// 2. Hash the password
		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}

		// 3. Persist the new user
		user = &entity.User{
			Email:        input.Email,
			PasswordHash: hash,
			Name:         input.Name,
			PhoneNumber:  input.PhoneNumber,
			DateOfBirth:  dateOfBirth,
			Role:         entity.RoleClient,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrEmailTaken) {
				return errors.Wrap(domainerrors.ErrEmailExists, "email already registered")
			}

			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "sign up failed")
	}

	token, err := srv.tokenService.Issue(user)
	if err != nil {
		srv.logger.Error("failed to issue token after sign up", "userID", user.ID, "error", err)

		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}
	srv.logger.Debug("user signed up", "userID", user.ID)

	return &usecase.TokenOutput{Token: token}, nil
}

// SignIn verifies the credentials and returns a signed access token.
func (srv *authService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.TokenOutput, error) {
	srv.logger.Info("Signing in user", "email", input.Email)

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		foundUser, err := userRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrEmailNotExist, "unknown email")
			}

			return errors.Wrap(err, "failed to find user by email")
		}
		user = foundUser

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "sign in failed")
	}

	// bcrypt comparison stays outside the transaction
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, errors.Wrap(domainerrors.ErrPasswordMismatch, "wrong password")
	}

	token, err := srv.tokenService.Issue(user)
	if err != nil {
		srv.logger.Error("failed to issue token after sign in", "userID", user.ID, "error", err)

		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}
	srv.logger.Debug("user signed in", "userID", user.ID)

	return &usecase.TokenOutput{Token: token}, nil
}

// parseDateOfBirth parses an optional YYYY-MM-DD date string.
func parseDateOfBirth(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse(dateOfBirthLayout, raw)
	if err != nil {
		return nil, domainerrors.NewFieldError(http.StatusBadRequest, "VALIDATION_FAILED", "dateOfBirth", "dateOfBirth is invalid")
	}

	return &parsed, nil
}
