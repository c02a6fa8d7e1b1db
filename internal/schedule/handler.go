// Package schedule handles the add-schedule command.
package schedule

import (
	"context"
	"time"

	"github.com/monocle-dev/huddle/internal/apperrors"
	"github.com/monocle-dev/huddle/internal/commands"
	"github.com/monocle-dev/huddle/internal/models"
)

type Repository interface {
	Create(ctx context.Context, schedule *models.Schedule) error
}

type Handler struct {
	repo Repository
	loc  *time.Location
	now  func() time.Time
}

// NewHandler resolves relative dates in loc. A nil now uses time.Now.
func NewHandler(repo Repository, loc *time.Location, now func() time.Time) *Handler {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &Handler{repo: repo, loc: loc, now: now}
}

func (h *Handler) Location() *time.Location {
	return h.loc
}

// Handle validates the fields title, date, time and optional color, then
// stores one new schedule. Identical commands create identical schedules.
func (h *Handler) Handle(ctx context.Context, cmd commands.AddSchedule) (*models.Schedule, error) {
	if commands.CountPresent(cmd.Fields) < 3 {
		return nil, apperrors.Validation(apperrors.MsgMissingFields)
	}

	title := cmd.Fields[0]
	startTime, err := Resolve(cmd.Fields[1], cmd.Fields[2], h.now().In(h.loc))
	if err != nil {
		return nil, err
	}

	color := commands.Field(cmd.Fields, 3)
	if color == "" {
		color = models.DefaultScheduleColor
	}

	schedule := &models.Schedule{
		RoomCode:  cmd.RoomCode,
		SenderID:  cmd.SenderID,
		Title:     title,
		StartTime: startTime,
		Color:     color,
	}

	if err := h.repo.Create(ctx, schedule); err != nil {
		return nil, apperrors.Persistence(err)
	}

	return schedule, nil
}
