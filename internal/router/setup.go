package router

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/huddle/internal/chat"
	"github.com/monocle-dev/huddle/internal/config"
	"github.com/monocle-dev/huddle/internal/digest"
	"github.com/monocle-dev/huddle/internal/handlers"
	"github.com/monocle-dev/huddle/internal/identity"
	"github.com/monocle-dev/huddle/internal/projects"
	"github.com/monocle-dev/huddle/internal/realtime"
	"github.com/monocle-dev/huddle/internal/schedule"
	"github.com/monocle-dev/huddle/internal/store"
	"github.com/monocle-dev/huddle/internal/translator"
	"github.com/monocle-dev/huddle/internal/types"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps is everything Setup cannot build itself. Relay may be nil.
type Deps struct {
	Config *config.Config
	DB     *gorm.DB
	Relay  realtime.Relay
	Logger *zap.Logger
}

// Setup builds every component over one database and returns the engine
// with the hub the caller must Run.
func Setup(deps Deps) (*gin.Engine, *realtime.Hub, error) {
	cfg, logger := deps.Config, deps.Logger

	tr, err := translator.New(translator.Config{Language: cfg.Locale}, logger)
	if err != nil {
		return nil, nil, err
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", cfg.Timezone, err)
	}

	tokens, err := identity.NewTokens(cfg.JWTSecret, identity.DefaultTokenTTL)
	if err != nil {
		return nil, nil, err
	}

	users := store.NewUsers(deps.DB)
	messages := store.NewMessages(deps.DB)
	schedules := store.NewSchedules(deps.DB)
	projectStore := store.NewProjects(deps.DB)

	identities := identity.NewService(users, logger)
	projectService := projects.NewService(projectStore, logger)
	hub := realtime.NewHub(deps.Relay, logger)

	dispatcher := chat.NewDispatcher(
		messages,
		schedules,
		schedule.NewHandler(schedules, loc, nil),
		projectService,
		hub,
		tr,
		logger,
	)

	h := &handlers.Handler{
		DB:         deps.DB,
		Identity:   identities,
		Tokens:     tokens,
		Messages:   messages,
		Schedules:  schedules,
		Projects:   projectService,
		Digest:     digest.NewBuilder(schedules, projectStore, logger),
		Dispatcher: dispatcher,
		Hub:        hub,
		Translator: tr,
		Origins:    types.AllowedOrigins(cfg.ClientURL, cfg.AllowedOrigins),
		Domain:     cfg.Domain,
		Logger:     logger,
	}

	return NewRouter(h, identities), hub, nil
}
