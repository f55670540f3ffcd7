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

// chatServiceFixtures holds all test dependencies for chat service tests.
type chatServiceFixtures struct {
	service   usecase.ChatUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestChatService(t *testing.T) chatServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewChatService(txManager, logger)

	return chatServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func TestChatService_CreateRoom_Success(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	roomID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRoomRepo := mockRepo.NewMockRoomRepository(t)

			mockFactory.EXPECT().RoomRepo().Return(mockRoomRepo)
			mockRoomRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Room")).
				Run(func(ctx context.Context, room *entity.Room) {
					assert.Equal(t, "golang study group", room.Name)
					room.ID = roomID
				}).
				Return(nil)

			return fn(mockFactory)
		})

	view, err := fx.service.CreateRoom(ctx, &usecase.CreateRoomInput{Name: "golang study group"})

	require.NoError(t, err)
	assert.Equal(t, roomID, view.ID)
	assert.Equal(t, "golang study group", view.Name)
}

func TestChatService_SendMessage_RoomNotFound(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	roomID := uuid.New()
	senderID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRoomRepo := mockRepo.NewMockRoomRepository(t)
			mockMessageRepo := mockRepo.NewMockMessageRepository(t)

			mockFactory.EXPECT().RoomRepo().Return(mockRoomRepo)
			mockFactory.EXPECT().MessageRepo().Return(mockMessageRepo)
			mockRoomRepo.EXPECT().FindByID(ctx, roomID).Return(nil, repository.ErrRoomNotFound)

			return fn(mockFactory)
		})

	_, err := fx.service.SendMessage(ctx, roomID.String(), senderID, &usecase.SendMessageInput{Text: "hello"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRoomNotFound)
}

func TestChatService_SendMessage_Success(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	roomID := uuid.New()
	senderID := uuid.New()
	messageID := uuid.New()
	room := &entity.Room{ID: roomID, Name: "general"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRoomRepo := mockRepo.NewMockRoomRepository(t)
			mockMessageRepo := mockRepo.NewMockMessageRepository(t)

			mockFactory.EXPECT().RoomRepo().Return(mockRoomRepo)
			mockFactory.EXPECT().MessageRepo().Return(mockMessageRepo)
			mockRoomRepo.EXPECT().FindByID(ctx, roomID).Return(room, nil)
			mockMessageRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Message")).
				Run(func(ctx context.Context, message *entity.Message) {
					assert.Equal(t, roomID, message.RoomID)
					assert.Equal(t, senderID, message.SenderID)
					assert.Equal(t, "hello", message.Text)
					message.ID = messageID
				}).
				Return(nil)

			return fn(mockFactory)
		})

	view, err := fx.service.SendMessage(ctx, roomID.String(), senderID, &usecase.SendMessageInput{Text: "hello"})

	require.NoError(t, err)
	assert.Equal(t, messageID, view.ID)
	assert.Equal(t, roomID, view.RoomID)
	assert.Equal(t, senderID, view.SenderID)
}

func TestChatService_ListRoomMessages_InvalidID(t *testing.T) {
	fx := createTestChatService(t)

	_, err := fx.service.ListRoomMessages(context.Background(), "bogus")

	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "roomId is invalid", validationErr.Fields()["roomId"])
}

func TestChatService_ListRoomMessages_Success(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	roomID := uuid.New()
	room := &entity.Room{ID: roomID, Name: "general"}
	messages := []*entity.Message{
		{ID: uuid.New(), RoomID: roomID, SenderID: uuid.New(), Text: "first"},
		{ID: uuid.New(), RoomID: roomID, SenderID: uuid.New(), Text: "second"},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRoomRepo := mockRepo.NewMockRoomRepository(t)
			mockMessageRepo := mockRepo.NewMockMessageRepository(t)

			mockFactory.EXPECT().RoomRepo().Return(mockRoomRepo)
			mockFactory.EXPECT().MessageRepo().Return(mockMessageRepo)
			mockRoomRepo.EXPECT().FindByID(ctx, roomID).Return(room, nil)
			mockMessageRepo.EXPECT().FindByRoom(ctx, roomID).Return(messages, nil)

			return fn(mockFactory)
		})

	views, err := fx.service.ListRoomMessages(ctx, roomID.String())

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "first", views[0].Text)
	assert.Equal(t, "second", views[1].Text)
}
