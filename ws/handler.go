package ws

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"notify-lab/auth"
	"notify-lab/contract"
	"notify-lab/domain/notification"
)

// heartbeatMarker is the literal text frame clients send as a liveness
// probe.
const heartbeatMarker = "heartbeat"

// Handler owns the lifecycle of notification connections: it
// authenticates the upgrade, registers the session and turns transport
// events (heartbeat, error, close) into registry calls.
type Handler struct {
	log          *slog.Logger
	registry     contract.SessionRegistry
	verifier     *auth.Verifier
	upgrader     websocket.Upgrader
	writeTimeout time.Duration
	readLimit    int64
}

func NewHandler(log *slog.Logger, registry contract.SessionRegistry,
	verifier *auth.Verifier, writeTimeout time.Duration, readLimit int64) *Handler {
	return &Handler{
		log:          log,
		registry:     registry,
		verifier:     verifier,
		writeTimeout: writeTimeout,
		readLimit:    readLimit,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// The bearer token is the access control, not the origin.
				return true
			},
		},
	}
}

// Serve upgrades the request and drives the connection until it dies.
// A connection that does not present a valid token in the `token` query
// parameter is closed without a diagnostic frame and never reaches the
// registry.
func (h *Handler) Serve(c echo.Context) error {
	socket, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.log.Warn("WebSocket upgrade failed", "err", err)
		return err
	}

	userID, ok := h.verifier.UserID(c.QueryParam("token"))
	if !ok {
		h.log.Warn("Connection refused: invalid token", "remote", socket.RemoteAddr().String())
		_ = socket.Close()
		return nil
	}

	conn := newConn(uuid.NewString(), socket, h.log, h.writeTimeout)
	h.registry.Register(userID, conn.ID(), conn)
	h.log.Info("User connected", "user_id", userID, "connection_id", conn.ID())

	if !conn.Send(notification.System("Connected", "connection established")) {
		h.log.Warn("Failed to send welcome envelope", "user_id", userID)
	}

	h.readLoop(conn, socket)
	return nil
}

// readLoop blocks on the socket and exits on the first read error, which
// covers both a clean peer close and a transport failure. The deferred
// cleanup removes the session in every exit path. conn is the session
// abstraction, not the raw socket, so the ack path is observable.
func (h *Handler) readLoop(conn contract.SessionConn, socket *websocket.Conn) {
	defer func() {
		h.registry.Deregister(conn.ID())
		conn.Close()
		h.log.Info("Connection closed", "connection_id", conn.ID())
	}()

	socket.SetReadLimit(h.readLimit)
	for {
		_, payload, err := socket.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseNormalClosure,
				websocket.CloseGoingAway,
				websocket.CloseNoStatusReceived) {
				h.log.Warn("Connection error", "connection_id", conn.ID(), "err", err)
			}
			return
		}

		if string(payload) == heartbeatMarker {
			h.registry.TouchHeartbeat(conn.ID())
			if !conn.Send(notification.HeartbeatAck()) {
				// The peer cannot even receive the ack: the session is dead.
				return
			}
			continue
		}
		// Other client payloads are reserved for future use.
	}
}
