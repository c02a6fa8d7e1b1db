package models

import (
	"time"

	"gorm.io/gorm"
)

// Message is append-only; rows are never updated.
type Message struct {
	gorm.Model

	RoomCode   string    `gorm:"not null;index:idx_messages_room_sent"`
	SenderID   string    `gorm:"not null"`
	SenderName string    `gorm:"not null"`
	Content    string    `gorm:"not null"`
	SentAt     time.Time `gorm:"not null;index:idx_messages_room_sent"`
}
