package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/huddle/internal/store"
	"github.com/monocle-dev/huddle/internal/utils"
)

// ListMessages returns the latest messages of a room, oldest first. The
// optional limit is capped at the default history size.
func (h *Handler) ListMessages(ctx *gin.Context) {
	room, err := utils.GetRoomCode(ctx)
	if err != nil {
		h.badRequest(ctx)
		return
	}

	limit := store.DefaultHistoryLimit
	if raw := ctx.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			h.badRequest(ctx)
			return
		}
		if n < limit {
			limit = n
		}
	}

	messages, err := h.Messages.Recent(ctx.Request.Context(), room, limit)
	if err != nil {
		h.fail(ctx, err)
		return
	}

	response := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		response = append(response, toMessageResponse(m))
	}

	ctx.JSON(http.StatusOK, response)
}
