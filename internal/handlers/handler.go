package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/huddle/internal/apperrors"
	"github.com/monocle-dev/huddle/internal/chat"
	"github.com/monocle-dev/huddle/internal/digest"
	"github.com/monocle-dev/huddle/internal/identity"
	"github.com/monocle-dev/huddle/internal/models"
	"github.com/monocle-dev/huddle/internal/realtime"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type IdentityService interface {
	Register(ctx context.Context, name, secret string) (identity.Identity, error)
	Authenticate(ctx context.Context, name, secret string) (identity.Identity, error)
}

type MessageReader interface {
	Recent(ctx context.Context, roomCode string, limit int) ([]models.Message, error)
}

type ScheduleReader interface {
	Upcoming(ctx context.Context, roomCode string, from time.Time) ([]models.Schedule, error)
}

type ProjectLister interface {
	List(ctx context.Context, roomCode string) ([]models.Project, error)
}

type DigestBuilder interface {
	Build(ctx context.Context, roomCode string) digest.Digest
}

// Handler serves the HTTP and websocket surface.
type Handler struct {
	DB         *gorm.DB
	Identity   IdentityService
	Tokens     *identity.Tokens
	Messages   MessageReader
	Schedules  ScheduleReader
	Projects   ProjectLister
	Digest     DigestBuilder
	Dispatcher *chat.Dispatcher
	Hub        *realtime.Hub
	Translator apperrors.Localizer
	Origins    []string
	Domain     string
	Logger     *zap.Logger

	Now func() time.Time
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// fail writes err as the standard error body. Persistence failures are
// logged; the client only sees the localized message.
func (h *Handler) fail(ctx *gin.Context, err error) {
	if apperrors.KindOf(err) == apperrors.KindPersistence {
		h.Logger.Error("request failed", zap.String("path", ctx.FullPath()), zap.Error(err))
	}
	code, body := apperrors.Response(err, h.Translator)
	ctx.JSON(code, body)
}

func (h *Handler) badRequest(ctx *gin.Context) {
	h.fail(ctx, apperrors.Validation(apperrors.MsgInvalidRequest))
}
