package ws

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"notify-lab/domain/notification"
)

// Conn adapts one gorilla connection to contract.SessionConn. Writes are
// serialized under a mutex: gorilla allows a single concurrent writer.
type Conn struct {
	id           string
	ws           *websocket.Conn
	log          *slog.Logger
	writeTimeout time.Duration

	mu     sync.Mutex
	closed bool
}

func newConn(id string, ws *websocket.Conn, log *slog.Logger, writeTimeout time.Duration) *Conn {
	return &Conn{id: id, ws: ws, log: log, writeTimeout: writeTimeout}
}

// Send writes the envelope as a JSON text frame and reports whether the
// write succeeded. Transport failures are logged and collapsed to false;
// a failed write also marks the connection inactive since the peer is
// unreachable.
func (c *Conn) Send(env notification.Envelope) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}
	_ = c.ws.SetWriteDeadline(time.Now().Add(c.writeTimeout))
	if err := c.ws.WriteJSON(env); err != nil {
		c.log.Error("Failed to write envelope", "connection_id", c.id, "err", err)
		c.closed = true
		return false
	}
	return true
}

func (c *Conn) IsActive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.closed
}

// Close sends a best-effort close frame and tears the socket down.
// Idempotent.
func (c *Conn) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.mu.Unlock()

	deadline := time.Now().Add(time.Second)
	_ = c.ws.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
	if err := c.ws.Close(); err != nil {
		c.log.Debug("Closing connection", "connection_id", c.id, "err", err)
	}
}

func (c *Conn) ID() string {
	return c.id
}
