package utils

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

func GetRoomCode(ctx *gin.Context) (string, error) {
	room := strings.TrimSpace(ctx.Param("room"))

	if room == "" {
		return "", errors.New("Room code not found")
	}

	return room, nil
}

func GetScheduleID(ctx *gin.Context) (uint, error) {
	scheduleIDStr := ctx.Param("id")

	if scheduleIDStr == "" {
		return 0, errors.New("Schedule ID not found")
	}

	scheduleID, err := strconv.ParseUint(scheduleIDStr, 10, 32)

	if err != nil || scheduleID == 0 {
		return 0, errors.New("Invalid Schedule ID")
	}

	return uint(scheduleID), nil
}
