package models

import (
	"time"

	"gorm.io/gorm"
)

const DefaultScheduleColor = "#607D8B"

type Schedule struct {
	gorm.Model

	RoomCode  string    `gorm:"not null;index:idx_schedules_room_start"`
	SenderID  string    `gorm:"not null"`
	Title     string    `gorm:"not null"`
	StartTime time.Time `gorm:"not null;index:idx_schedules_room_start"`
	EndTime   *time.Time
	Color     string `gorm:"not null"`
}
