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

// roomRepository implements the domain.RoomRepository interface using GORM.
type roomRepository struct {
	db *gorm.DB
}

// NewRoomRepository is the constructor for roomRepository.
func NewRoomRepository(db *gorm.DB) repository.RoomRepository {
	return &roomRepository{db: db}
}

// FindByID retrieves a single room by its unique ID.
func (repo *roomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	var roomM model.RoomModel

	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&roomM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoomNotFound
		}

		return nil, errors.Wrap(err, "failed to find room by id")
	}

	return &entity.Room{ID: roomM.ID, Name: roomM.Name, CreatedAt: roomM.CreatedAt}, nil
}

// Create persists a new room entity.
func (repo *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	roomM := model.RoomModel{ID: room.ID, Name: room.Name}

	if err := repo.db.WithContext(ctx).Create(&roomM).Error; err != nil {
		return errors.Wrap(err, "failed to create room")
	}

	room.ID = roomM.ID
	room.CreatedAt = roomM.CreatedAt

	return nil
}

// messageRepository implements the domain.MessageRepository interface using GORM.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

// Create persists a new message entity.
func (repo *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	messageM := model.MessageModel{
		ID:       message.ID,
		RoomID:   message.RoomID,
		SenderID: message.SenderID,
		Text:     message.Text,
	}

	if err := repo.db.WithContext(ctx).Create(&messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRoomNotFound
		}

		return errors.Wrap(err, "failed to create message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt
	message.UpdatedAt = messageM.UpdatedAt

	return nil
}

// FindByRoom retrieves all messages in a room, oldest first.
func (repo *messageRepository) FindByRoom(ctx context.Context, roomID uuid.UUID) ([]*entity.Message, error) {
	var messageMs []model.MessageModel

	err := repo.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("created_at").
		Find(&messageMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list room messages")
	}

	messages := make([]*entity.Message, 0, len(messageMs))
	for i := range messageMs {
		m := messageMs[i]
		messages = append(messages, &entity.Message{
			ID:        m.ID,
			RoomID:    m.RoomID,
			SenderID:  m.SenderID,
			Text:      m.Text,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		})
	}

	return messages, nil
}
