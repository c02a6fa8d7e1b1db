package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/huddle/internal/utils"
)

// GetDigest always answers 200; a failed section carries a localized error.
func (h *Handler) GetDigest(ctx *gin.Context) {
	room, err := utils.GetRoomCode(ctx)
	if err != nil {
		h.badRequest(ctx)
		return
	}

	d := h.Digest.Build(ctx.Request.Context(), room)
	if d.Schedule.Error != "" {
		d.Schedule.Error = h.Translator.T(d.Schedule.Error, nil)
	}
	if d.Projects.Error != "" {
		d.Projects.Error = h.Translator.T(d.Projects.Error, nil)
	}

	ctx.JSON(http.StatusOK, d)
}
