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

// chatService implements the ChatUsecase interface.
type chatService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewChatService is the constructor for chatService.
func NewChatService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ChatUsecase {
	return &chatService{
		txManager: txManager,
		logger:    logger,
	}
}

// CreateRoom opens a new chat room.
func (srv *chatService) CreateRoom(ctx context.Context, input *usecase.CreateRoomInput) (*usecase.RoomView, error) {
	srv.logger.Info("Creating room", "name", input.Name)

	var view *usecase.RoomView

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		room := &entity.Room{Name: input.Name}
		if err := repoFactory.RoomRepo().Create(ctx, room); err != nil {
			return errors.Wrap(err, "failed to create room")
		}

		view = &usecase.RoomView{
			ID:        room.ID,
			Name:      room.Name,
			CreatedAt: room.CreatedAt,
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create room")
	}

	return view, nil
}

// SendMessage posts a message into an existing room on behalf of the
// authenticated sender.
func (srv *chatService) SendMessage(ctx context.Context, roomID string, senderID uuid.UUID, input *usecase.SendMessageInput) (*usecase.MessageView, error) {
	srv.logger.Debug("Sending message", "roomID", roomID, "senderID", senderID)

	id, err := parseRoomID(roomID)
	if err != nil {
		return nil, err
	}

	var view *usecase.MessageView

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		roomRepo := repoFactory.RoomRepo()
		messageRepo := repoFactory.MessageRepo()

		// 1. The room must exist
		if _, err := roomRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrRoomNotFound) {
				return errors.Wrap(domainerrors.ErrRoomNotFound, "no room with that id")
			}

			return errors.Wrap(err, "failed to find room")
		}

		// 2. Persist the message
		message := &entity.Message{
			RoomID:   id,
			SenderID: senderID,
			Text:     input.Text,
		}
		if err := messageRepo.Create(ctx, message); err != nil {
			if errors.Is(err, repository.ErrRoomNotFound) {
				return errors.Wrap(domainerrors.ErrRoomNotFound, "no room with that id")
			}

			return errors.Wrap(err, "failed to create message")
		}
		view = usecase.NewMessageView(message)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to send message")
	}

	return view, nil
}

// ListRoomMessages returns the messages of a room in chronological order.
func (srv *chatService) ListRoomMessages(ctx context.Context, roomID string) ([]*usecase.MessageView, error) {
	srv.logger.Debug("Listing room messages", "roomID", roomID)

	id, err := parseRoomID(roomID)
	if err != nil {
		return nil, err
	}

	var views []*usecase.MessageView

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		roomRepo := repoFactory.RoomRepo()
		messageRepo := repoFactory.MessageRepo()

		if _, err := roomRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrRoomNotFound) {
				return errors.Wrap(domainerrors.ErrRoomNotFound, "no room with that id")
			}

			return errors.Wrap(err, "failed to find room")
		}

		messages, err := messageRepo.FindByRoom(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to list messages")
		}

		views = make([]*usecase.MessageView, 0, len(messages))
		for _, message := range messages {
			views = append(views, usecase.NewMessageView(message))
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list room messages")
	}

	return views, nil
}

// parseRoomID syntax-checks a room identifier taken from the request path.
func parseRoomID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.NewFieldError(http.StatusBadRequest, "VALIDATION_FAILED", "roomId", "roomId is invalid")
	}

	return id, nil
}
