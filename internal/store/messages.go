package store

import (
	"context"

	"github.com/monocle-dev/huddle/internal/models"
	"gorm.io/gorm"
)

const DefaultHistoryLimit = 50

type Messages struct {
	db *gorm.DB
}

func NewMessages(db *gorm.DB) *Messages {
	return &Messages{db: db}
}

func (r *Messages) Create(ctx context.Context, msg *models.Message) error {
	msg.SentAt = msg.SentAt.UTC()
	return wrap(r.db.WithContext(ctx).Create(msg).Error)
}

// Recent returns the newest limit messages of a room, oldest first.
func (r *Messages) Recent(ctx context.Context, roomCode string, limit int) ([]models.Message, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	var messages []models.Message
	err := r.db.WithContext(ctx).
		Where("room_code = ?", roomCode).
		Order("sent_at DESC").Order("id DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, wrap(err)
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}
