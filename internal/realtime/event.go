package realtime

import "time"

type EventType string

const (
	EventChat    EventType = "chat"
	EventSystem  EventType = "system"
	EventJoined  EventType = "joined"
	EventRefresh EventType = "refresh"
)

// Event is the single outbound frame shape. Chat events carry the sender so
// a client can skip rendering its own echo.
type Event struct {
	Type       EventType `json:"type"`
	Room       string    `json:"room"`
	ID         uint      `json:"id,omitempty"`
	SenderID   string    `json:"sender_id,omitempty"`
	SenderName string    `json:"sender_name,omitempty"`
	Content    string    `json:"content,omitempty"`
	SentAt     time.Time `json:"sent_at"`
}

const (
	FrameMessage = "message"
	FrameJoin    = "join"
)

type Frame struct {
	Type    string `json:"type"`
	Content string `json:"content,omitempty"`
	Room    string `json:"room,omitempty"`
}

func SystemEvent(room, text string) Event {
	return Event{Type: EventSystem, Room: room, Content: text, SentAt: time.Now().UTC()}
}

func RefreshEvent(room string) Event {
	return Event{Type: EventRefresh, Room: room, SentAt: time.Now().UTC()}
}
