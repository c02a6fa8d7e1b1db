package handlers

import (
	"time"

	"github.com/monocle-dev/huddle/internal/models"
)

type MessageResponse struct {
	ID         uint      `json:"id"`
	RoomCode   string    `json:"room_code"`
	SenderID   string    `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	Content    string    `json:"content"`
	SentAt     time.Time `json:"sent_at"`
}

type ScheduleResponse struct {
	ID        uint       `json:"id"`
	RoomCode  string     `json:"room_code"`
	SenderID  string     `json:"sender_id"`
	Title     string     `json:"title"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Color     string     `json:"color"`
}

type ProjectResponse struct {
	ID        uint          `json:"id"`
	RoomCode  string        `json:"room_code"`
	Name      string        `json:"name"`
	Status    models.Status `json:"status"`
	Progress  int           `json:"progress"`
	Tasks     []models.Task `json:"tasks"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func toMessageResponse(m models.Message) MessageResponse {
	return MessageResponse{
		ID:         m.ID,
		RoomCode:   m.RoomCode,
		SenderID:   m.SenderID,
		SenderName: m.SenderName,
		Content:    m.Content,
		SentAt:     m.SentAt,
	}
}

func toScheduleResponse(s models.Schedule) ScheduleResponse {
	return ScheduleResponse{
		ID:        s.ID,
		RoomCode:  s.RoomCode,
		SenderID:  s.SenderID,
		Title:     s.Title,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Color:     s.Color,
	}
}

func toProjectResponse(p models.Project) ProjectResponse {
	tasks := []models.Task(p.Tasks)
	if tasks == nil {
		tasks = []models.Task{}
	}
	return ProjectResponse{
		ID:        p.ID,
		RoomCode:  p.RoomCode,
		Name:      p.Name,
		Status:    p.Status,
		Progress:  p.Progress,
		Tasks:     tasks,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
