package models

import "time"

type User struct {
	ID           string `gorm:"primaryKey;size:36"`
	DisplayName  string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
}
