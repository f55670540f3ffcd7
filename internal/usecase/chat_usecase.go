package usecase

import (
	"context"
	"time"

	"tutorhub/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateRoomInput defines the data required to open a chat room.
type CreateRoomInput struct {
	Name string `json:"name" validate:"required"`
}

// SendMessageInput defines the data required to post a message.
// The sender comes from the authenticated token claims, not the body.
type SendMessageInput struct {
	Text string `json:"text" validate:"required"`
}

// RoomView is the outward representation of a room.
type RoomView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// MessageView is the outward representation of a message.
type MessageView struct {
	ID        uuid.UUID `json:"id"`
	RoomID    uuid.UUID `json:"room"`
	SenderID  uuid.UUID `json:"sender"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewMessageView normalizes a message entity into its outward representation.
func NewMessageView(message *entity.Message) *MessageView {
	if message == nil {
		return nil
	}

	return &MessageView{
		ID:        message.ID,
		RoomID:    message.RoomID,
		SenderID:  message.SenderID,
		Text:      message.Text,
		CreatedAt: message.CreatedAt,
		UpdatedAt: message.UpdatedAt,
	}
}

// ChatUsecase defines the interface for the room/message slice. No relational
// invariants here beyond referential existence of room and sender.
type ChatUsecase interface {
	CreateRoom(ctx context.Context, input *CreateRoomInput) (*RoomView, error)
	SendMessage(ctx context.Context, roomID string, senderID uuid.UUID, input *SendMessageInput) (*MessageView, error)
	ListRoomMessages(ctx context.Context, roomID string) ([]*MessageView, error)
}
