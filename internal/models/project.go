package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Status string

const (
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

// Task lives only inside its project's Tasks document. Title is the key.
type Task struct {
	Title     string    `json:"title"`
	Status    Status    `json:"status"`
	Assignee  string    `json:"assignee,omitempty"`
	OwnerID   string    `json:"owner_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Project struct {
	gorm.Model

	RoomCode string                    `gorm:"not null;uniqueIndex:idx_projects_room_name"`
	Name     string                    `gorm:"not null;uniqueIndex:idx_projects_room_name"`
	Status   Status                    `gorm:"not null"`
	Progress int                       `gorm:"not null"`
	Tasks    datatypes.JSONSlice[Task] `gorm:"not null"`

	// Version guards the read-modify-write cycle on Tasks.
	Version int `gorm:"not null"`
}

func NewProject(roomCode, name string) *Project {
	return &Project{
		RoomCode: roomCode,
		Name:     name,
		Status:   StatusInProgress,
		Progress: 0,
		Tasks:    datatypes.JSONSlice[Task]{},
	}
}

// FindTask returns the task with an exactly matching title, or nil.
func (p *Project) FindTask(title string) *Task {
	for i := range p.Tasks {
		if p.Tasks[i].Title == title {
			return &p.Tasks[i]
		}
	}
	return nil
}
