// Package chat routes inbound room lines to the command handlers and turns
// their outcomes into room events.
package chat

import (
	"context"
	"time"

	"github.com/monocle-dev/huddle/internal/apperrors"
	"github.com/monocle-dev/huddle/internal/commands"
	"github.com/monocle-dev/huddle/internal/models"
	"github.com/monocle-dev/huddle/internal/projects"
	"github.com/monocle-dev/huddle/internal/realtime"
	"go.uber.org/zap"
)

const startLayout = "2006-01-02 15:04"

type Broadcaster interface {
	Broadcast(ctx context.Context, ev realtime.Event)
}

type Localizer interface {
	T(msgID string, data map[string]any) string
}

type MessageStore interface {
	Create(ctx context.Context, msg *models.Message) error
}

type ScheduleStore interface {
	FindByID(ctx context.Context, id uint) (*models.Schedule, error)
	Delete(ctx context.Context, id uint) error
}

type ScheduleHandler interface {
	Handle(ctx context.Context, cmd commands.AddSchedule) (*models.Schedule, error)
	Location() *time.Location
}

type ProjectService interface {
	CreateProject(ctx context.Context, cmd commands.AddProject) (projects.ProjectResult, error)
	UpsertTask(ctx context.Context, cmd commands.AddTask) (projects.TaskResult, error)
	CompleteTask(ctx context.Context, roomCode, projectName, taskTitle string) (projects.TaskResult, error)
}

// Reply delivers an event to the connection a line came from.
type Reply func(realtime.Event)

type Dispatcher struct {
	messages  MessageStore
	schedules ScheduleStore
	scheduler ScheduleHandler
	projects  ProjectService
	room      Broadcaster
	tr        Localizer
	now       func() time.Time
	logger    *zap.Logger
}

func NewDispatcher(
	messages MessageStore,
	schedules ScheduleStore,
	scheduler ScheduleHandler,
	projectService ProjectService,
	room Broadcaster,
	tr Localizer,
	logger *zap.Logger,
) *Dispatcher {
	return &Dispatcher{
		messages:  messages,
		schedules: schedules,
		scheduler: scheduler,
		projects:  projectService,
		room:      room,
		tr:        tr,
		now:       time.Now,
		logger:    logger,
	}
}

// Handle parses one line and applies it. Every outcome ends as an event;
// nothing is returned to the transport.
func (d *Dispatcher) Handle(ctx context.Context, env commands.Envelope, line string, reply Reply) {
	switch cmd := commands.Parse(env, line).(type) {
	case commands.ListCommands:
		reply(d.system(env.RoomCode, "helpText", nil))
	case commands.AddSchedule:
		d.addSchedule(ctx, cmd, reply)
	case commands.AddProject:
		d.addProject(ctx, cmd, reply)
	case commands.AddTask:
		d.addTask(ctx, cmd, reply)
	case commands.CompleteTask:
		d.completeFromChat(ctx, cmd, reply)
	case commands.Unrecognized:
		d.say(ctx, cmd, reply)
	}
}

// JoinNotice is the caller-only acknowledgment of a join.
func (d *Dispatcher) JoinNotice(room string) realtime.Event {
	ev := d.system(room, "joinedRoom", map[string]any{"Room": room})
	ev.Type = realtime.EventJoined
	return ev
}

// Notice renders err as a failure line: input problems and system trouble
// get different markers.
func (d *Dispatcher) Notice(err error) string {
	appErr := apperrors.As(err)
	detail := d.tr.T(appErr.MsgKey, appErr.Data)
	if appErr.Kind == apperrors.KindPersistence {
		return d.tr.T("noticeSystemError", map[string]any{"Detail": detail})
	}
	return d.tr.T("noticeInputError", map[string]any{"Detail": detail})
}

func (d *Dispatcher) say(ctx context.Context, cmd commands.Unrecognized, reply Reply) {
	if cmd.Text == "" {
		return
	}

	msg := &models.Message{
		RoomCode:   cmd.RoomCode,
		SenderID:   cmd.SenderID,
		SenderName: cmd.SenderName,
		Content:    cmd.Text,
		SentAt:     d.now(),
	}
	if err := d.messages.Create(ctx, msg); err != nil {
		d.logFailure(cmd.Kind(), cmd.RoomCode, err)
		reply(realtime.SystemEvent(cmd.RoomCode, d.Notice(err)))
		return
	}

	d.room.Broadcast(ctx, realtime.Event{
		Type:       realtime.EventChat,
		Room:       msg.RoomCode,
		ID:         msg.ID,
		SenderID:   msg.SenderID,
		SenderName: msg.SenderName,
		Content:    msg.Content,
		SentAt:     msg.SentAt,
	})
}

func (d *Dispatcher) addSchedule(ctx context.Context, cmd commands.AddSchedule, reply Reply) {
	schedule, err := d.scheduler.Handle(ctx, cmd)
	if err != nil {
		d.logFailure(cmd.Kind(), cmd.RoomCode, err)
		reply(realtime.SystemEvent(cmd.RoomCode, d.Notice(err)))
		return
	}

	d.broadcast(ctx, cmd.RoomCode, "scheduleCreated", map[string]any{
		"Title":  schedule.Title,
		"Start":  schedule.StartTime.In(d.scheduler.Location()).Format(startLayout),
		"Sender": cmd.SenderName,
	})
	d.room.Broadcast(ctx, realtime.RefreshEvent(cmd.RoomCode))
}

func (d *Dispatcher) addProject(ctx context.Context, cmd commands.AddProject, reply Reply) {
	result, err := d.projects.CreateProject(ctx, cmd)
	if err != nil {
		d.logFailure(cmd.Kind(), cmd.RoomCode, err)
		reply(realtime.SystemEvent(cmd.RoomCode, d.Notice(err)))
		return
	}

	if !result.Created {
		d.broadcast(ctx, cmd.RoomCode, "projectExists", map[string]any{"Project": result.Project.Name})
		return
	}
	d.broadcast(ctx, cmd.RoomCode, "projectCreated", map[string]any{
		"Project": result.Project.Name,
		"Sender":  cmd.SenderName,
	})
	d.room.Broadcast(ctx, realtime.RefreshEvent(cmd.RoomCode))
}

// addTask reports malformed input to the caller only. A missing project or
// a storage failure is announced to the whole room.
func (d *Dispatcher) addTask(ctx context.Context, cmd commands.AddTask, reply Reply) {
	result, err := d.projects.UpsertTask(ctx, cmd)
	if err != nil {
		d.logFailure(cmd.Kind(), cmd.RoomCode, err)
		if apperrors.Is(err, apperrors.KindValidation) {
			reply(realtime.SystemEvent(cmd.RoomCode, d.Notice(err)))
			return
		}
		d.room.Broadcast(ctx, realtime.SystemEvent(cmd.RoomCode, d.Notice(err)))
		return
	}

	key := "taskUpdated"
	if result.Created {
		key = "taskCreated"
	}
	d.broadcast(ctx, cmd.RoomCode, key, map[string]any{
		"Project":  result.Project.Name,
		"Task":     result.Task.Title,
		"Assignee": result.Task.Assignee,
		"Status":   d.statusLabel(result.Task.Status),
		"Progress": result.Project.Progress,
	})
	d.room.Broadcast(ctx, realtime.RefreshEvent(cmd.RoomCode))
}

func (d *Dispatcher) completeFromChat(ctx context.Context, cmd commands.CompleteTask, reply Reply) {
	if commands.CountPresent(cmd.Fields) < 2 {
		reply(realtime.SystemEvent(cmd.RoomCode, d.Notice(apperrors.Validation(apperrors.MsgMissingFields))))
		return
	}

	if _, err := d.CompleteTask(ctx, cmd.RoomCode, cmd.Fields[0], cmd.Fields[1]); err != nil {
		reply(realtime.SystemEvent(cmd.RoomCode, d.Notice(err)))
	}
}

// CompleteTask marks a task completed and announces it to the room. The
// result lets a request/response caller confirm on its own.
func (d *Dispatcher) CompleteTask(ctx context.Context, roomCode, projectName, taskTitle string) (projects.TaskResult, error) {
	result, err := d.projects.CompleteTask(ctx, roomCode, projectName, taskTitle)
	if err != nil {
		d.logFailure(commands.KindCompleteTask, roomCode, err)
		return projects.TaskResult{}, err
	}

	d.broadcast(ctx, roomCode, "taskCompleted", map[string]any{
		"Project":  result.Project.Name,
		"Task":     result.Task.Title,
		"Progress": result.Project.Progress,
	})
	d.room.Broadcast(ctx, realtime.RefreshEvent(roomCode))

	return result, nil
}

// CompletionReply is the caller's confirmation text for a completion.
func (d *Dispatcher) CompletionReply(result projects.TaskResult) string {
	return d.tr.T("taskCompletedReply", map[string]any{
		"Project": result.Project.Name,
		"Task":    result.Task.Title,
	})
}

// DeleteSchedule removes a schedule of roomCode and tells the room. A
// schedule belonging to another room is reported as not found.
func (d *Dispatcher) DeleteSchedule(ctx context.Context, roomCode string, id uint) (*models.Schedule, error) {
	schedule, err := d.schedules.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if schedule.RoomCode != roomCode {
		return nil, apperrors.NotFound(apperrors.MsgScheduleNotFound, nil)
	}
	if err := d.schedules.Delete(ctx, id); err != nil {
		d.logFailure("deleteSchedule", schedule.RoomCode, err)
		return nil, err
	}

	d.broadcast(ctx, schedule.RoomCode, "scheduleDeleted", map[string]any{"Title": schedule.Title})
	d.room.Broadcast(ctx, realtime.RefreshEvent(schedule.RoomCode))

	return schedule, nil
}

func (d *Dispatcher) broadcast(ctx context.Context, room, key string, data map[string]any) {
	d.room.Broadcast(ctx, d.system(room, key, data))
}

func (d *Dispatcher) system(room, key string, data map[string]any) realtime.Event {
	return realtime.SystemEvent(room, d.tr.T(key, data))
}

func (d *Dispatcher) statusLabel(status models.Status) string {
	if status == models.StatusCompleted {
		return d.tr.T("statusCompleted", nil)
	}
	return d.tr.T("statusInProgress", nil)
}

func (d *Dispatcher) logFailure(kind commands.Kind, room string, err error) {
	if apperrors.KindOf(err) != apperrors.KindPersistence {
		d.logger.Debug("command rejected", zap.String("command", string(kind)), zap.String("room", room), zap.Error(err))
		return
	}
	d.logger.Error("command failed", zap.String("command", string(kind)), zap.String("room", room), zap.Error(err))
}
