package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/monocle-dev/huddle/internal/commands"
	"github.com/monocle-dev/huddle/internal/realtime"
	"github.com/monocle-dev/huddle/internal/utils"
	"go.uber.org/zap"
)

func (h *Handler) upgrader() websocket.Upgrader {
	return websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			// Non-browser clients send no Origin.
			if origin == "" {
				return true
			}
			for _, allowed := range h.Origins {
				if origin == allowed {
					return true
				}
			}
			return false
		},
	}
}

// WebSocket upgrades an authenticated request into a room socket. The room
// may be given as ?room= or later through a join frame.
func (h *Handler) WebSocket(c *gin.Context) {
	user, err := utils.GetCurrentUser(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	upgrader := h.upgrader()
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.Logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := realtime.NewClient(conn, user.ID, user.Name, h.Logger)
	go client.WritePump()

	defer func() {
		h.Hub.Leave(client)
		client.Close()
		h.Logger.Debug("websocket connection closed", zap.String("user", user.ID))
	}()

	if room := strings.TrimSpace(c.Query("room")); room != "" {
		h.join(client, room)
	}

	ctx := c.Request.Context()
	reply := func(ev realtime.Event) { h.Hub.SendTo(client, ev) }

	client.ReadPump(func(frame realtime.Frame) {
		switch frame.Type {
		case realtime.FrameJoin:
			if room := strings.TrimSpace(frame.Room); room != "" {
				h.join(client, room)
			}
		case realtime.FrameMessage:
			room := client.Room()
			if room == "" {
				return
			}
			env := commands.Envelope{RoomCode: room, SenderID: client.UserID, SenderName: client.UserName}
			h.Dispatcher.Handle(ctx, env, frame.Content, reply)
		default:
			h.Logger.Debug("ignoring frame", zap.String("type", frame.Type), zap.String("user", client.UserID))
		}
	})
}

func (h *Handler) join(client *realtime.Client, room string) {
	h.Hub.Join(room, client)
	h.Hub.SendTo(client, h.Dispatcher.JoinNotice(room))
}
