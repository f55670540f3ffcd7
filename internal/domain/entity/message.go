// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Room is a named container for chat messages between users.
type Room struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// Message is a single chat message in a room. Beyond referential existence
// of Room and Sender there are no relational invariants; ordering is by
// persisted timestamp only.
type Message struct {
	ID        uuid.UUID
	RoomID    uuid.UUID // The room this message belongs to.
	SenderID  uuid.UUID // The user who sent the message.
	Text      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
