package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/huddle/internal/models"
	"github.com/monocle-dev/huddle/internal/utils"
)

type CompleteTaskRequest struct {
	Project string `json:"project" binding:"required"`
	Task    string `json:"task" binding:"required"`
}

type CompleteTaskResponse struct {
	Project  string        `json:"project"`
	Task     string        `json:"task"`
	Progress int           `json:"progress"`
	Status   models.Status `json:"status"`
	Message  string        `json:"message"`
}

func (h *Handler) ListProjects(ctx *gin.Context) {
	room, err := utils.GetRoomCode(ctx)
	if err != nil {
		h.badRequest(ctx)
		return
	}

	projects, err := h.Projects.List(ctx.Request.Context(), room)
	if err != nil {
		h.fail(ctx, err)
		return
	}

	response := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		response = append(response, toProjectResponse(p))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *Handler) CompleteTask(ctx *gin.Context) {
	room, err := utils.GetRoomCode(ctx)
	if err != nil {
		h.badRequest(ctx)
		return
	}

	var body CompleteTaskRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.badRequest(ctx)
		return
	}

	result, err := h.Dispatcher.CompleteTask(ctx.Request.Context(), room, body.Project, body.Task)
	if err != nil {
		h.fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, CompleteTaskResponse{
		Project:  result.Project.Name,
		Task:     result.Task.Title,
		Progress: result.Project.Progress,
		Status:   result.Project.Status,
		Message:  h.Dispatcher.CompletionReply(result),
	})
}
