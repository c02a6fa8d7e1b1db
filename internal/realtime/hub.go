// Package realtime fans room events out to websocket clients, optionally
// across instances through a Relay.
package realtime

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Relay carries room events between instances. Every instance, including
// the publisher, receives each published event through Run.
type Relay interface {
	Publish(ctx context.Context, ev Event) error
	Run(ctx context.Context, deliver func(Event)) error
}

type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]struct{}

	relay  Relay
	logger *zap.Logger
}

// NewHub returns a hub. A nil relay keeps delivery on this instance.
func NewHub(relay Relay, logger *zap.Logger) *Hub {
	return &Hub{
		rooms:  make(map[string]map[*Client]struct{}),
		relay:  relay,
		logger: logger,
	}
}

// Join moves c into room, leaving any room it was in.
func (h *Hub) Join(room string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeLocked(c)
	if h.rooms[room] == nil {
		h.rooms[room] = make(map[*Client]struct{})
	}
	h.rooms[room][c] = struct{}{}
	c.setRoom(room)
}

func (h *Hub) Leave(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
	c.setRoom("")
}

func (h *Hub) removeLocked(c *Client) {
	room := c.Room()
	clients, ok := h.rooms[room]
	if !ok {
		return
	}
	delete(clients, c)
	if len(clients) == 0 {
		delete(h.rooms, room)
	}
}

func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

// Broadcast sends ev to every member of ev.Room on every instance. When the
// relay is unavailable the event still reaches local members.
func (h *Hub) Broadcast(ctx context.Context, ev Event) {
	if h.relay != nil {
		err := h.relay.Publish(ctx, ev)
		if err == nil {
			return
		}
		h.logger.Warn("relay publish failed, delivering locally", zap.String("room", ev.Room), zap.Error(err))
	}
	h.Deliver(ev)
}

// Deliver fans ev out to local members. A member whose queue is full is
// dropped and closed.
func (h *Hub) Deliver(ev Event) {
	h.mu.RLock()
	clients := make([]*Client, 0, len(h.rooms[ev.Room]))
	for c := range h.rooms[ev.Room] {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		if !c.Send(ev) {
			h.logger.Warn("dropping slow client", zap.String("room", ev.Room), zap.String("user", c.UserID))
			h.Leave(c)
			c.Close()
		}
	}
}

// SendTo delivers ev to c alone.
func (h *Hub) SendTo(c *Client, ev Event) {
	if !c.Send(ev) {
		h.logger.Debug("caller-only event not queued", zap.String("user", c.UserID), zap.String("type", string(ev.Type)))
	}
}

// Run pumps relayed events into local delivery until ctx ends. Without a
// relay it just waits for ctx.
func (h *Hub) Run(ctx context.Context) error {
	if h.relay == nil {
		<-ctx.Done()
		return nil
	}
	return h.relay.Run(ctx, h.Deliver)
}
