package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (h *Handler) HealthCheck(c *gin.Context) {
	status, database := http.StatusOK, "ok"

	if sqlDB, err := h.DB.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		status, database = http.StatusServiceUnavailable, "unreachable"
	}

	c.JSON(status, gin.H{
		"status":    http.StatusText(status),
		"message":   "Huddle is running",
		"database":  database,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
