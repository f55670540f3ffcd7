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
	"tutorhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mentorServiceFixtures holds all test dependencies for mentor service tests.
type mentorServiceFixtures struct {
	service   usecase.MentorUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestMentorService(t *testing.T) mentorServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewMentorService(txManager, logger)

	return mentorServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func validMentorPayload(userID uuid.UUID) *usecase.MentorPayload {
	return &usecase.MentorPayload{
		UserID:                  userID.String(),
		NumberOfYearsExperience: 2.5,
		CurrentJob:              "Back-end Developer",
		Specialities:            []string{"Go", "PostgreSQL"},
	}
}

func TestMentorService_Get_InvalidID(t *testing.T) {
	fx := createTestMentorService(t)

	_, err := fx.service.Get(context.Background(), "not-a-uuid")

	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "mentorId is invalid", validationErr.Fields()["mentorId"])
}

func TestMentorService_Get_NotFound(t *testing.T) {
	fx := createTestMentorService(t)

	ctx := context.Background()
	mentorID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockMentorRepo := mockRepo.NewMockMentorRepository(t)

			mockFactory.EXPECT().MentorRepo().Return(mockMentorRepo)
			mockMentorRepo.EXPECT().FindByID(ctx, mentorID).Return(nil, repository.ErrMentorNotFound)

			return fn(mockFactory)
		})

	_, err := fx.service.Get(ctx, mentorID.String())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMentorNotFound)
}

func TestMentorService_Get_Success(t *testing.T) {
	fx := createTestMentorService(t)

	ctx := context.Background()
	mentorID := uuid.New()
	userID := uuid.New()
	mentor := &entity.Mentor{
		ID:     mentorID,
		UserID: userID,
		User: &entity.User{
			ID:    userID,
			Email: "mentor@example.com",
			Name:  "Mentor User",
			Role:  entity.RoleClient,
		},
		NumberOfYearsExperience: 3,
		CurrentJob:              entity.JobBackEnd,
		Specialities:            []string{"Go"},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockMentorRepo := mockRepo.NewMockMentorRepository(t)

			mockFactory.EXPECT().MentorRepo().Return(mockMentorRepo)
			mockMentorRepo.EXPECT().FindByID(ctx, mentorID).Return(mentor, nil)

			return fn(mockFactory)
		})

	view, err := fx.service.Get(ctx, mentorID.String())

	require.NoError(t, err)
	assert.Equal(t, mentorID, view.ID)
	assert.Equal(t, "Back-end Developer", view.CurrentJob)
	require.NotNil(t, view.User)
	assert.Equal(t, "mentor@example.com", view.User.Email)
	assert.Equal(t, "client", view.User.Role)
}

func TestMentorService_List_Success(t *testing.T) {
	fx := createTestMentorService(t)

	ctx := context.Background()
	mentors := []*entity.Mentor{
		{ID: uuid.New(), CurrentJob: entity.JobFrontEnd, User: &entity.User{ID: uuid.New(), Email: "a@example.com"}},
		{ID: uuid.New(), CurrentJob: entity.JobFullStack, User: &entity.User{ID: uuid.New(), Email: "b@example.com"}},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockMentorRepo := mockRepo.NewMockMentorRepository(t)

			mockFactory.EXPECT().MentorRepo().Return(mockMentorRepo)
			mockMentorRepo.EXPECT().FindAll(ctx).Return(mentors, nil)

			return fn(mockFactory)
		})

	views, err := fx.service.List(ctx)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "a@example.com", views[0].User.Email)
}

func TestMentorService_Create_Success(t *testing.T) {
	fx := createTestMentorService(t)

	ctx := context.Background()
	userID := uuid.New()
	mentorID := uuid.New()
	user := &entity.User{ID: userID, Email: "mentor@example.com", Name: "Mentor User"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockMentorRepo := mockRepo.NewMockMentorRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().MentorRepo().Return(mockMentorRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			mockMentorRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Mentor")).
				Run(func(ctx context.Context, mentor *entity.Mentor) {
					assert.Equal(t, userID, mentor.UserID)
					assert.Equal(t, entity.JobBackEnd, mentor.CurrentJob)
					mentor.ID = mentorID
				}).
				Return(nil)

			return fn(mockFactory)
		})

	view, err := fx.service.Create(ctx, validMentorPayload(userID))

	require.NoError(t, err)
	assert.Equal(t, mentorID, view.ID)
	require.NotNil(t, view.User)
	assert.Equal(t, "mentor@example.com", view.User.Email)
}

func TestMentorService_Create_UserNotFound(t *testing.T) {
	fx := createTestMentorService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockMentorRepo := mockRepo.NewMockMentorRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().MentorRepo().Return(mockMentorRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

			return fn(mockFactory)
		})

	_, err := fx.service.Create(ctx, validMentorPayload(userID))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMentorUserNotFound)
}

func TestMentorService_Create_AlreadyMentor(t *testing.T) {
	fx := createTestMentorService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "mentor@example.com"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockMentorRepo := mockRepo.NewMockMentorRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().MentorRepo().Return(mockMentorRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			mockMentorRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Mentor")).
				Return(repository.ErrUserAlreadyMentor)

			return fn(mockFactory)
		})

	_, err := fx.service.Create(ctx, validMentorPayload(userID))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyMentor)
}

func TestMentorService_Create_InvalidUserID(t *testing.T) {
	fx := createTestMentorService(t)

	payload := validMentorPayload(uuid.New())
	payload.UserID = "123"

	_, err := fx.service.Create(context.Background(), payload)

	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "userId is invalid", validationErr.Fields()["userId"])
}

func TestMentorService_Update_Success_SameUser(t *testing.T) {
	fx := createTestMentorService(t)

	ctx := context.Background()
	mentorID := uuid.New()
	userID := uuid.New()
	mentor := &entity.Mentor{ID: mentorID, UserID: userID, NumberOfYearsExperience: 1}
	user := &entity.User{ID: userID}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockMentorRepo := mockRepo.NewMockMentorRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().MentorRepo().Return(mockMentorRepo)
			mockMentorRepo.EXPECT().FindByID(ctx, mentorID).Return(mentor, nil)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			mockMentorRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Mentor")).
				Run(func(ctx context.Context, updated *entity.Mentor) {
					assert.Equal(t, mentorID, updated.ID)
					assert.InEpsilon(t, 2.5, updated.NumberOfYearsExperience, 1e-9)
					assert.Equal(t, []string{"Go", "PostgreSQL"}, updated.Specialities)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.Update(ctx, mentorID.String(), validMentorPayload(userID))

	require.NoError(t, err)
}

func TestMentorService_Update_TargetUserAlreadyMentor(t *testing.T) {
	fx := createTestMentorService(t)

	ctx := context.Background()
	mentorID := uuid.New()
	oldUserID := uuid.New()
	newUserID := uuid.New()
	mentor := &entity.Mentor{ID: mentorID, UserID: oldUserID}
	otherMentor := &entity.Mentor{ID: uuid.New(), UserID: newUserID}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockMentorRepo := mockRepo.NewMockMentorRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().MentorRepo().Return(mockMentorRepo)
			mockMentorRepo.EXPECT().FindByID(ctx, mentorID).Return(mentor, nil)
			mockUserRepo.EXPECT().FindByID(ctx, newUserID).Return(&entity.User{ID: newUserID}, nil)
			mockMentorRepo.EXPECT().FindByUserID(ctx, newUserID).Return(otherMentor, nil)

			return fn(mockFactory)
		})

	err := fx.service.Update(ctx, mentorID.String(), validMentorPayload(newUserID))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyMentor)
}

func TestMentorService_Update_MentorNotFound(t *testing.T) {
	fx := createTestMentorService(t)

	ctx := context.Background()
	mentorID := uuid.New()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockMentorRepo := mockRepo.NewMockMentorRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().MentorRepo().Return(mockMentorRepo)
			mockMentorRepo.EXPECT().FindByID(ctx, mentorID).Return(nil, repository.ErrMentorNotFound)

			return fn(mockFactory)
		})

	err := fx.service.Update(ctx, mentorID.String(), validMentorPayload(userID))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMentorNotFound)
}

func TestMentorService_Delete_InvalidID(t *testing.T) {
	fx := createTestMentorService(t)

	err := fx.service.Delete(context.Background(), "999")

	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "mentorId is invalid", validationErr.Fields()["mentorId"])
}

func TestMentorService_Delete_NotFound(t *testing.T) {
	fx := createTestMentorService(t)

	ctx := context.Background()
	mentorID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockMentorRepo := mockRepo.NewMockMentorRepository(t)

			mockFactory.EXPECT().MentorRepo().Return(mockMentorRepo)
			mockMentorRepo.EXPECT().Delete(ctx, mentorID).Return(repository.ErrMentorNotFound)

			return fn(mockFactory)
		})

	err := fx.service.Delete(ctx, mentorID.String())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMentorNotFound)
}

func TestMentorService_Delete_Success(t *testing.T) {
	fx := createTestMentorService(t)

	ctx := context.Background()
	mentorID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockMentorRepo := mockRepo.NewMockMentorRepository(t)

			mockFactory.EXPECT().MentorRepo().Return(mockMentorRepo)
			mockMentorRepo.EXPECT().Delete(ctx, mentorID).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.Delete(ctx, mentorID.String())

	require.NoError(t, err)
}
