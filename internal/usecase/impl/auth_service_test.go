package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"tutorhub/internal/domain/entity"
	domainerrors "tutorhub/internal/domain/errors"
	"tutorhub/internal/domain/repository"
	mockRepo "tutorhub/internal/mocks/repository"
	mockService "tutorhub/internal/mocks/service"
	"tutorhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewAuthService(txManager, hasher, tokenService, logger)

	return authServiceFixtures{
		service:      service,
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func validSignUpInput() *usecase.SignUpInput {
	return &usecase.SignUpInput{
		Email:           "new@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
		Name:            "New User",
		PhoneNumber:     "0912345678",
		DateOfBirth:     "1995-06-15",
	}
}

func TestAuthService_SignUp_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := validSignUpInput()
	userID := uuid.New()

	fx.hasher.EXPECT().Hash("password123").Return("$2a$10$hash", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.Equal(t, "new@example.com", user.Email)
					assert.Equal(t, "$2a$10$hash", user.PasswordHash)
					assert.Equal(t, entity.RoleClient, user.Role)
					require.NotNil(t, user.DateOfBirth)
					assert.Equal(t, "1995-06-15", user.DateOfBirth.Format("2006-01-02"))
					user.ID = userID
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.tokenService.EXPECT().
		Issue(mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(user *entity.User) (string, error) {
			assert.Equal(t, userID, user.ID)

			return "signed.token", nil
		})

	out, err := fx.service.SignUp(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "signed.token", out.Token)
}

func TestAuthService_SignUp_EmailAlreadyRegistered(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := validSignUpInput()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				FindByEmail(ctx, "new@example.com").
				Return(&entity.User{ID: uuid.New(), Email: "new@example.com"}, nil)

			return fn(mockFactory)
		})

	out, err := fx.service.SignUp(ctx, input)

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrEmailExists)
}

func TestAuthService_SignUp_ConcurrentInsertLosesRace(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := validSignUpInput()

	fx.hasher.EXPECT().Hash("password123").Return("$2a$10$hash", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Return(repository.ErrEmailTaken)

			return fn(mockFactory)
		})

	_, err := fx.service.SignUp(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailExists)
}

func TestAuthService_SignUp_BadDateOfBirth(t *testing.T) {
	fx := createTestAuthService(t)

	input := validSignUpInput()
	input.DateOfBirth = "15/06/1995"

	_, err := fx.service.SignUp(context.Background(), input)

	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "dateOfBirth is invalid", validationErr.Fields()["dateOfBirth"])
}

func TestAuthService_SignIn_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "known@example.com",
		PasswordHash: "$2a$10$hash",
		Name:         "Known User",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByEmail(ctx, "known@example.com").Return(user, nil)

			return fn(mockFactory)
		})

	fx.hasher.EXPECT().Check("password123", "$2a$10$hash").Return(true)
	fx.tokenService.EXPECT().Issue(user).Return("signed.token", nil)

	out, err := fx.service.SignIn(ctx, &usecase.SignInInput{
		Email:    "known@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed.token", out.Token)
}

func TestAuthService_SignIn_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

			return fn(mockFactory)
		})

	_, err := fx.service.SignIn(ctx, &usecase.SignInInput{
		Email:    "ghost@example.com",
		Password: "password123",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailNotExist)
}

func TestAuthService_SignIn_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "known@example.com",
		PasswordHash: "$2a$10$hash",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByEmail(ctx, "known@example.com").Return(user, nil)

			return fn(mockFactory)
		})

	fx.hasher.EXPECT().Check("wrongpass", "$2a$10$hash").Return(false)

	_, err := fx.service.SignIn(ctx, &usecase.SignInInput{
		Email:    "known@example.com",
		Password: "wrongpass",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordMismatch)
}
