package repository

import (
	"context"
	"errors"

	"tutorhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRoomNotFound is a domain-specific error returned when a room is not found.
var ErrRoomNotFound = errors.New("room not found")

// RoomRepository defines the operations for chat room persistence.
type RoomRepository interface {
	// FindByID retrieves a single room by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)

	// Create persists a new room entity.
	Create(ctx context.Context, room *entity.Room) error
}

// MessageRepository defines the operations for chat message persistence.
type MessageRepository interface {
	// Create persists a new message entity.
	Create(ctx context.Context, message *entity.Message) error

	// FindByRoom retrieves all messages in a room, oldest first.
	FindByRoom(ctx context.Context, roomID uuid.UUID) ([]*entity.Message, error)
}
