package realtime

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096

	sendBuffer = 32
)

// Client is one socket. Only WritePump writes to conn.
type Client struct {
	UserID   string
	UserName string

	conn      *websocket.Conn
	send      chan Event
	done      chan struct{}
	closeOnce sync.Once
	logger    *zap.Logger

	mu   sync.Mutex
	room string
}

func NewClient(conn *websocket.Conn, userID, userName string, logger *zap.Logger) *Client {
	return &Client{
		UserID:   userID,
		UserName: userName,
		conn:     conn,
		send:     make(chan Event, sendBuffer),
		done:     make(chan struct{}),
		logger:   logger,
	}
}

func (c *Client) Room() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.room
}

func (c *Client) setRoom(room string) {
	c.mu.Lock()
	c.room = room
	c.mu.Unlock()
}

// Send queues ev without blocking. It reports false when the client is
// closed or its buffer is full.
func (c *Client) Send(ev Event) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.send <- ev:
		return true
	default:
		return false
	}
}

func (c *Client) Close() {
	c.closeOnce.Do(func() { close(c.done) })
}

func (c *Client) Done() <-chan struct{} {
	return c.done
}

// ReadPump decodes inbound frames until the socket fails, then closes the
// client. Malformed frames are skipped.
func (c *Client) ReadPump(handle func(Frame)) {
	defer c.Close()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.logger.Warn("failed to set initial read deadline", zap.Error(err))
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warn("websocket read failed", zap.String("user", c.UserID), zap.Error(err))
			}
			return
		}

		var frame Frame
		if err := json.Unmarshal(data, &frame); err != nil {
			c.logger.Debug("dropping malformed frame", zap.String("user", c.UserID), zap.Error(err))
			continue
		}
		handle(frame)
	}
}

// WritePump drains the send queue and pings the peer until the client is
// closed, then closes the socket.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case ev := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.Close()
				return
			}
			if err := c.conn.WriteJSON(ev); err != nil {
				c.logger.Warn("websocket write failed", zap.String("user", c.UserID), zap.Error(err))
				c.Close()
				return
			}
		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.Close()
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.logger.Debug("ping failed", zap.String("user", c.UserID), zap.Error(err))
				c.Close()
				return
			}
		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}
