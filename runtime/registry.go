package runtime

import (
	"log/slog"
	"sync"
	"time"

	"github.com/samber/lo"

	"notify-lab/contract"
	"notify-lab/domain/notification"
)

const (
	DefaultHeartbeatTimeout = 10 * time.Minute
	DefaultSweepInterval    = 5 * time.Minute
)

// session tracks one live connection of a user.
type session struct {
	userID        int64
	connectionID  string
	conn          contract.SessionConn
	connectedAt   time.Time
	lastHeartbeat time.Time
}

// deliveryStatus preserves the failure taxonomy that the public boolean
// API collapses. Tests assert on the precise reason a send did not happen.
type deliveryStatus int

const (
	delivered deliveryStatus = iota
	noSession
	inactiveSession
	sendFailed
)

// Registry is the authoritative index of active sessions.
// Two maps are kept mutually consistent under a single mutex:
// byUser resolves the current session of a user, byConn resolves the
// owning user of a transport connection.
//
// Registering a new connection for an already-online user overwrites the
// user index and leaves the previous reverse entry in place until that
// connection goes away on its own; the old handle is not closed.
type Registry struct {
	mu     sync.RWMutex
	byUser map[int64]*session
	byConn map[string]int64

	log              *slog.Logger
	heartbeatTimeout time.Duration

	done     chan struct{}
	shutdown sync.Once
}

// NewRegistry builds the registry and starts its sweep loop. Non-positive
// durations fall back to the defaults. The loop runs until Shutdown.
func NewRegistry(log *slog.Logger, heartbeatTimeout, sweepInterval time.Duration) *Registry {
	if heartbeatTimeout <= 0 {
		heartbeatTimeout = DefaultHeartbeatTimeout
	}
	if sweepInterval <= 0 {
		sweepInterval = DefaultSweepInterval
	}
	r := &Registry{
		byUser:           make(map[int64]*session),
		byConn:           make(map[string]int64),
		log:              log,
		heartbeatTimeout: heartbeatTimeout,
		done:             make(chan struct{}),
	}
	go r.sweepLoop(sweepInterval)
	return r
}

func (r *Registry) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-r.done:
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

// Register makes conn the current session of userID. Atomic from the
// caller's point of view: both indices are updated in one critical
// section.
func (r *Registry) Register(userID int64, connectionID string, conn contract.SessionConn) {
	now := time.Now()
	r.mu.Lock()
	r.byUser[userID] = &session{
		userID:        userID,
		connectionID:  connectionID,
		conn:          conn,
		connectedAt:   now,
		lastHeartbeat: now,
	}
	r.byConn[connectionID] = userID
	r.mu.Unlock()

	r.log.Info("Session registered", "user_id", userID, "connection_id", connectionID)
}

// Deregister removes the connection from both indices. The user index is
// only cleared when it still points at this connection, so deregistering
// a connection that was orphaned by a reconnect does not take the user
// offline. No-op for unknown connections.
func (r *Registry) Deregister(connectionID string) {
	r.mu.Lock()
	userID, ok := r.byConn[connectionID]
	if !ok {
		r.mu.Unlock()
		return
	}
	delete(r.byConn, connectionID)
	if s, ok := r.byUser[userID]; ok && s.connectionID == connectionID {
		delete(r.byUser, userID)
	}
	r.mu.Unlock()

	r.log.Info("Session removed", "user_id", userID, "connection_id", connectionID)
}

// TouchHeartbeat refreshes the liveness timestamp of the session owned by
// the connection's user. No-op for unknown connections.
func (r *Registry) TouchHeartbeat(connectionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	userID, ok := r.byConn[connectionID]
	if !ok {
		return
	}
	if s, ok := r.byUser[userID]; ok {
		s.lastHeartbeat = time.Now()
	}
}

// deliver resolves the user's current session and pushes one envelope
// synchronously through its handle.
func (r *Registry) deliver(userID int64, env notification.Envelope) deliveryStatus {
	r.mu.RLock()
	s, ok := r.byUser[userID]
	r.mu.RUnlock()

	if !ok {
		r.log.Debug("User has no session", "user_id", userID)
		return noSession
	}
	if !s.conn.IsActive() {
		r.log.Debug("User has no active connection", "user_id", userID)
		return inactiveSession
	}
	if !s.conn.Send(env) {
		return sendFailed
	}
	return delivered
}

// SendToUser reports true iff the user has an active session and the
// envelope was written to it. Every failure collapses to false.
func (r *Registry) SendToUser(userID int64, env notification.Envelope) bool {
	return r.deliver(userID, env) == delivered
}

// SendToUsers is a best-effort fan-out: one user's failure never aborts
// the others.
func (r *Registry) SendToUsers(userIDs []int64, env notification.Envelope) {
	for _, userID := range userIDs {
		r.deliver(userID, env)
	}
}

// Broadcast pushes the envelope to every currently active session. The
// sessions are snapshotted first so sends do not hold the registry lock;
// a session added mid-broadcast may or may not receive the envelope.
func (r *Registry) Broadcast(env notification.Envelope) {
	for _, s := range r.snapshot() {
		if s.conn.IsActive() {
			s.conn.Send(env)
		}
	}
}

func (r *Registry) snapshot() []*session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Values(r.byUser)
}

func (r *Registry) IsOnline(userID int64) bool {
	r.mu.RLock()
	s, ok := r.byUser[userID]
	r.mu.RUnlock()
	return ok && s.conn.IsActive()
}

func (r *Registry) OnlineCount() int {
	return lo.CountBy(r.snapshot(), func(s *session) bool {
		return s.conn.IsActive()
	})
}

func (r *Registry) OnlineUserIDs() []int64 {
	return lo.FilterMap(r.snapshot(), func(s *session, _ int) (int64, bool) {
		return s.userID, s.conn.IsActive()
	})
}

// Sweep evicts every session whose last heartbeat is older than the
// timeout and closes its handle. Called by the sweep loop; exported so
// tests can trigger it directly.
func (r *Registry) Sweep() {
	cutoff := time.Now().Add(-r.heartbeatTimeout)

	r.mu.Lock()
	var expired []*session
	for _, s := range r.byUser {
		if s.lastHeartbeat.Before(cutoff) {
			expired = append(expired, s)
			delete(r.byConn, s.connectionID)
			delete(r.byUser, s.userID)
		}
	}
	r.mu.Unlock()

	for _, s := range expired {
		r.log.Info("Evicting stale session",
			"user_id", s.userID,
			"connection_id", s.connectionID,
			"connected_at", s.connectedAt)
		s.conn.Close()
	}
	if len(expired) > 0 {
		r.log.Info("Sweep finished", "evicted", len(expired))
	}
}

// Shutdown closes every handle, clears both indices and stops the sweep
// loop. Safe to call more than once.
func (r *Registry) Shutdown() {
	r.shutdown.Do(func() {
		close(r.done)

		r.mu.Lock()
		sessions := lo.Values(r.byUser)
		r.byUser = make(map[int64]*session)
		r.byConn = make(map[string]int64)
		r.mu.Unlock()

		for _, s := range sessions {
			s.conn.Close()
		}
		r.log.Info("Registry shut down", "closed", len(sessions))
	})
}
