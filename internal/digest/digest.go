// Package digest builds the announcement-bar view of a room: the closest
// upcoming schedule and a summary of every project.
package digest

import (
	"context"
	"time"

	"github.com/monocle-dev/huddle/internal/apperrors"
	"github.com/monocle-dev/huddle/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	MaxTasksShown      = 3
	UnassignedAssignee = "unassigned"
)

type ScheduleSource interface {
	Upcoming(ctx context.Context, roomCode string, from time.Time) ([]models.Schedule, error)
}

type ProjectSource interface {
	ListByRoom(ctx context.Context, roomCode string) ([]models.Project, error)
}

type Digest struct {
	RoomCode    string          `json:"room_code"`
	GeneratedAt time.Time       `json:"generated_at"`
	Schedule    ScheduleSection `json:"schedule"`
	Projects    ProjectSection  `json:"projects"`
}

// ScheduleSection holds Next == nil when nothing is upcoming. Error is the
// message key of a failed lookup.
type ScheduleSection struct {
	Next  *ScheduleSummary `json:"next"`
	Error string           `json:"error,omitempty"`
}

type ScheduleSummary struct {
	ID        uint       `json:"id"`
	Title     string     `json:"title"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Color     string     `json:"color"`
}

type ProjectSection struct {
	Items []ProjectSummary `json:"items"`
	Error string           `json:"error,omitempty"`
}

type ProjectSummary struct {
	Name           string        `json:"name"`
	Progress       int           `json:"progress"`
	Status         models.Status `json:"status"`
	Tasks          []TaskSummary `json:"tasks"`
	RemainingTasks int           `json:"remaining_tasks"`
}

type TaskSummary struct {
	Title    string        `json:"title"`
	Status   models.Status `json:"status"`
	Assignee string        `json:"assignee"`
}

type Builder struct {
	schedules ScheduleSource
	projects  ProjectSource
	now       func() time.Time
	logger    *zap.Logger
}

func NewBuilder(schedules ScheduleSource, projects ProjectSource, logger *zap.Logger) *Builder {
	return &Builder{schedules: schedules, projects: projects, now: time.Now, logger: logger}
}

// Build always returns a digest. A failing section carries its error key
// and leaves the other section intact.
func (b *Builder) Build(ctx context.Context, roomCode string) Digest {
	now := b.now()
	d := Digest{RoomCode: roomCode, GeneratedAt: now}

	// Neither goroutine returns an error, so one failing never cancels the other.
	var g errgroup.Group
	g.Go(func() error {
		next, err := b.closestSchedule(ctx, roomCode, now)
		if err != nil {
			b.logger.Error("digest schedule lookup failed", zap.String("room", roomCode), zap.Error(err))
			d.Schedule.Error = apperrors.As(err).MsgKey
			return nil
		}
		d.Schedule.Next = next
		return nil
	})
	g.Go(func() error {
		items, err := b.projectSummaries(ctx, roomCode)
		if err != nil {
			b.logger.Error("digest project lookup failed", zap.String("room", roomCode), zap.Error(err))
			d.Projects.Error = apperrors.As(err).MsgKey
			d.Projects.Items = []ProjectSummary{}
			return nil
		}
		d.Projects.Items = items
		return nil
	})
	_ = g.Wait()

	return d
}

func (b *Builder) closestSchedule(ctx context.Context, roomCode string, now time.Time) (*ScheduleSummary, error) {
	schedules, err := b.schedules.Upcoming(ctx, roomCode, now)
	if err != nil {
		return nil, err
	}

	var closest *models.Schedule
	for i := range schedules {
		s := &schedules[i]
		if !s.StartTime.After(now) {
			continue
		}
		if closest == nil || s.StartTime.Before(closest.StartTime) {
			closest = s
		}
	}
	if closest == nil {
		return nil, nil
	}

	return &ScheduleSummary{
		ID:        closest.ID,
		Title:     closest.Title,
		StartTime: closest.StartTime,
		EndTime:   closest.EndTime,
		Color:     closest.Color,
	}, nil
}

func (b *Builder) projectSummaries(ctx context.Context, roomCode string) ([]ProjectSummary, error) {
	projects, err := b.projects.ListByRoom(ctx, roomCode)
	if err != nil {
		return nil, err
	}

	items := make([]ProjectSummary, 0, len(projects))
	for _, p := range projects {
		items = append(items, Summarize(p))
	}
	return items, nil
}

func Summarize(p models.Project) ProjectSummary {
	shown := len(p.Tasks)
	if shown > MaxTasksShown {
		shown = MaxTasksShown
	}

	tasks := make([]TaskSummary, 0, shown)
	for _, t := range p.Tasks[:shown] {
		assignee := t.Assignee
		if assignee == "" {
			assignee = UnassignedAssignee
		}
		tasks = append(tasks, TaskSummary{Title: t.Title, Status: t.Status, Assignee: assignee})
	}

	return ProjectSummary{
		Name:           p.Name,
		Progress:       p.Progress,
		Status:         p.Status,
		Tasks:          tasks,
		RemainingTasks: len(p.Tasks) - shown,
	}
}
