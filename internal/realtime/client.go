package realtime

import (
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Client is one connected dashboard subscriber. All writes to the
// connection go through the send channel so the write pump is the only
// goroutine touching it.
type Client struct {
	id   string
	conn *websocket.Conn
	send chan Message
}

// NewClient wraps a websocket connection with a buffered send channel.
func NewClient(conn *websocket.Conn, buffer int) *Client {
	return &Client{
		id:   uuid.New().String(),
		conn: conn,
		send: make(chan Message, buffer),
	}
}

// ID returns the connection id, used in logs.
func (c *Client) ID() string {
	return c.id
}

// Queue enqueues a message directly to this client, dropping it when the
// buffer is full. Used for the initial snapshot and pong replies.
func (c *Client) Queue(msg Message) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// WritePump drains the send channel onto the connection. It returns on the
// first write error or when the hub closes the channel.
func (c *Client) WritePump() {
	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

func nowMilli() int64 {
	return time.Now().UnixMilli()
}
