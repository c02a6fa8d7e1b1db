package store

import (
	"context"
	"time"

	"github.com/monocle-dev/huddle/internal/apperrors"
	"github.com/monocle-dev/huddle/internal/models"
	"gorm.io/gorm"
)

type Projects struct {
	db *gorm.DB
}

func NewProjects(db *gorm.DB) *Projects {
	return &Projects{db: db}
}

func (r *Projects) FindByName(ctx context.Context, roomCode, name string) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).
		Where("room_code = ? AND name = ?", roomCode, name).
		First(&project).Error
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.NotFound(apperrors.MsgProjectNotFound, map[string]any{"Project": name})
		}
		return nil, wrap(err)
	}
	return &project, nil
}

// Create inserts a new project. A name already used in the room is a
// Duplicate error.
func (r *Projects) Create(ctx context.Context, project *models.Project) error {
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		if isDuplicate(err) {
			return apperrors.Duplicate(apperrors.MsgDuplicateName)
		}
		return wrap(err)
	}
	return nil
}

// Save writes the derived fields and tasks only if nobody saved since the
// project was read, then bumps its version. Otherwise it returns
// ErrVersionConflict and leaves project untouched.
func (r *Projects) Save(ctx context.Context, project *models.Project) error {
	now := time.Now()

	res := r.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("id = ? AND version = ?", project.ID, project.Version).
		Updates(map[string]interface{}{
			"status":     project.Status,
			"progress":   project.Progress,
			"tasks":      project.Tasks,
			"version":    project.Version + 1,
			"updated_at": now,
		})
	if res.Error != nil {
		return wrap(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrVersionConflict
	}

	project.Version++
	project.UpdatedAt = now
	return nil
}

// ListByRoom returns a room's projects ordered by name.
func (r *Projects) ListByRoom(ctx context.Context, roomCode string) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.WithContext(ctx).
		Where("room_code = ?", roomCode).
		Order("name ASC").
		Find(&projects).Error
	if err != nil {
		return nil, wrap(err)
	}
	return projects, nil
}
