package store

import (
	"context"
	"time"

	"github.com/monocle-dev/huddle/internal/apperrors"
	"github.com/monocle-dev/huddle/internal/models"
	"gorm.io/gorm"
)

type Schedules struct {
	db *gorm.DB
}

func NewSchedules(db *gorm.DB) *Schedules {
	return &Schedules{db: db}
}

// Create stores times in UTC so that range queries compare consistently on
// every driver.
func (r *Schedules) Create(ctx context.Context, schedule *models.Schedule) error {
	schedule.StartTime = schedule.StartTime.UTC()
	if schedule.EndTime != nil {
		end := schedule.EndTime.UTC()
		schedule.EndTime = &end
	}
	return wrap(r.db.WithContext(ctx).Create(schedule).Error)
}

// Upcoming lists a room's schedules starting at or after from, earliest first.
func (r *Schedules) Upcoming(ctx context.Context, roomCode string, from time.Time) ([]models.Schedule, error) {
	var schedules []models.Schedule
	err := r.db.WithContext(ctx).
		Where("room_code = ? AND start_time >= ?", roomCode, from.UTC()).
		Order("start_time ASC").Order("id ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, wrap(err)
	}
	return schedules, nil
}

func (r *Schedules) FindByID(ctx context.Context, id uint) (*models.Schedule, error) {
	var schedule models.Schedule
	if err := r.db.WithContext(ctx).First(&schedule, id).Error; err != nil {
		if isNotFound(err) {
			return nil, apperrors.NotFound(apperrors.MsgScheduleNotFound, nil)
		}
		return nil, wrap(err)
	}
	return &schedule, nil
}

func (r *Schedules) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Schedule{}, id)
	if res.Error != nil {
		return wrap(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound(apperrors.MsgScheduleNotFound, nil)
	}
	return nil
}
