package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/huddle/internal/utils"
)

func (h *Handler) ListSchedules(ctx *gin.Context) {
	room, err := utils.GetRoomCode(ctx)
	if err != nil {
		h.badRequest(ctx)
		return
	}

	schedules, err := h.Schedules.Upcoming(ctx.Request.Context(), room, h.now())
	if err != nil {
		h.fail(ctx, err)
		return
	}

	response := make([]ScheduleResponse, 0, len(schedules))
	for _, s := range schedules {
		response = append(response, toScheduleResponse(s))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *Handler) DeleteSchedule(ctx *gin.Context) {
	room, err := utils.GetRoomCode(ctx)
	if err != nil {
		h.badRequest(ctx)
		return
	}
	scheduleID, err := utils.GetScheduleID(ctx)
	if err != nil {
		h.badRequest(ctx)
		return
	}

	schedule, err := h.Dispatcher.DeleteSchedule(ctx.Request.Context(), room, scheduleID)
	if err != nil {
		h.fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":  "Schedule deleted successfully",
		"schedule": toScheduleResponse(*schedule),
	})
}
