// Package projects handles project creation and the task upsert/complete
// commands. Every task mutation recomputes project progress before it is
// written.
package projects

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/monocle-dev/huddle/internal/apperrors"
	"github.com/monocle-dev/huddle/internal/commands"
	"github.com/monocle-dev/huddle/internal/models"
	"github.com/monocle-dev/huddle/internal/progress"
	"github.com/monocle-dev/huddle/internal/store"
	"go.uber.org/zap"
)

const maxSaveAttempts = 3

var completedTokens = []string{"completed", "done", "완료"}

type Repository interface {
	FindByName(ctx context.Context, roomCode, name string) (*models.Project, error)
	Create(ctx context.Context, project *models.Project) error
	// Save must return store.ErrVersionConflict when the stored version moved.
	Save(ctx context.Context, project *models.Project) error
	ListByRoom(ctx context.Context, roomCode string) ([]models.Project, error)
}

type Service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, now: time.Now, logger: logger}
}

type ProjectResult struct {
	Project *models.Project
	Created bool
}

type TaskResult struct {
	Project *models.Project
	Task    models.Task
	Created bool
}

// ParseStatus maps the localized "completed" token to COMPLETED and
// anything else, including "", to IN_PROGRESS.
func ParseStatus(token string) models.Status {
	for _, t := range completedTokens {
		if strings.EqualFold(strings.TrimSpace(token), t) {
			return models.StatusCompleted
		}
	}
	return models.StatusInProgress
}

// CreateProject creates the named project in the room, or reports that it
// already exists without touching it.
func (s *Service) CreateProject(ctx context.Context, cmd commands.AddProject) (ProjectResult, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return ProjectResult{}, apperrors.Validation(apperrors.MsgEmptyName)
	}

	existing, err := s.repo.FindByName(ctx, cmd.RoomCode, name)
	if err == nil {
		return ProjectResult{Project: existing}, nil
	}
	if !apperrors.Is(err, apperrors.KindNotFound) {
		return ProjectResult{}, apperrors.Persistence(err)
	}

	project := models.NewProject(cmd.RoomCode, name)
	if err := s.repo.Create(ctx, project); err != nil {
		if !apperrors.Is(err, apperrors.KindDuplicate) {
			return ProjectResult{}, apperrors.Persistence(err)
		}
		// Lost a creation race; the winner's row is the project.
		existing, findErr := s.repo.FindByName(ctx, cmd.RoomCode, name)
		if findErr != nil {
			return ProjectResult{}, apperrors.Persistence(findErr)
		}
		return ProjectResult{Project: existing}, nil
	}

	return ProjectResult{Project: project, Created: true}, nil
}

// UpsertTask takes the fields projectName, taskTitle, assignee and an
// optional status. A title already present in the project is updated in
// place; otherwise the task is appended.
func (s *Service) UpsertTask(ctx context.Context, cmd commands.AddTask) (TaskResult, error) {
	if commands.CountPresent(cmd.Fields) < 3 {
		return TaskResult{}, apperrors.Validation(apperrors.MsgMissingFields)
	}

	projectName := cmd.Fields[0]
	title := cmd.Fields[1]
	assignee := cmd.Fields[2]
	status := ParseStatus(commands.Field(cmd.Fields, 3))

	return s.mutate(ctx, cmd.RoomCode, projectName, func(p *models.Project, now time.Time) (models.Task, bool, error) {
		if task := p.FindTask(title); task != nil {
			task.Assignee = assignee
			task.Status = status
			task.UpdatedAt = now
			return *task, false, nil
		}

		task := models.Task{
			Title:     title,
			Status:    status,
			Assignee:  assignee,
			OwnerID:   cmd.SenderID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		p.Tasks = append(p.Tasks, task)
		return task, true, nil
	})
}

// CompleteTask marks an existing task COMPLETED. Names are normalized the
// way chat commands are, so titles created over chat match here.
func (s *Service) CompleteTask(ctx context.Context, roomCode, projectName, taskTitle string) (TaskResult, error) {
	projectName = commands.Normalize(projectName)
	taskTitle = commands.Normalize(taskTitle)
	if roomCode == "" || projectName == "" || taskTitle == "" {
		return TaskResult{}, apperrors.Validation(apperrors.MsgMissingFields)
	}

	return s.mutate(ctx, roomCode, projectName, func(p *models.Project, now time.Time) (models.Task, bool, error) {
		task := p.FindTask(taskTitle)
		if task == nil {
			return models.Task{}, false, apperrors.NotFound(apperrors.MsgTaskNotFound, map[string]any{
				"Project": projectName,
				"Task":    taskTitle,
			})
		}
		task.Status = models.StatusCompleted
		task.UpdatedAt = now
		return *task, false, nil
	})
}

func (s *Service) List(ctx context.Context, roomCode string) ([]models.Project, error) {
	projects, err := s.repo.ListByRoom(ctx, roomCode)
	if err != nil {
		return nil, apperrors.Persistence(err)
	}
	return projects, nil
}

type mutation func(p *models.Project, now time.Time) (models.Task, bool, error)

// mutate runs read, apply, recalculate, conditional write. A version
// conflict means another writer got in between, so the cycle is replayed on
// fresh state.
func (s *Service) mutate(ctx context.Context, roomCode, projectName string, apply mutation) (TaskResult, error) {
	for attempt := 1; ; attempt++ {
		project, err := s.repo.FindByName(ctx, roomCode, projectName)
		if err != nil {
			return TaskResult{}, apperrors.Persistence(err)
		}

		task, created, err := apply(project, s.now())
		if err != nil {
			return TaskResult{}, err
		}
		progress.Recalculate(project)

		err = s.repo.Save(ctx, project)
		if err == nil {
			return TaskResult{Project: project, Task: task, Created: created}, nil
		}
		if !errors.Is(err, store.ErrVersionConflict) {
			return TaskResult{}, apperrors.Persistence(err)
		}
		if attempt >= maxSaveAttempts {
			return TaskResult{}, apperrors.Conflict(err)
		}

		s.logger.Info("project changed during write, retrying",
			zap.String("room", roomCode),
			zap.String("project", projectName),
			zap.Int("attempt", attempt),
		)
	}
}
