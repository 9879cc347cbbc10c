package runtime

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"notify-lab/domain/notification"
	"notify-lab/mocks"
)

// newTestRegistry uses an hour-long sweep interval so the background loop
// never interferes; tests trigger Sweep directly.
func newTestRegistry() *Registry {
	return NewRegistry(slog.Default(), 10*time.Minute, time.Hour)
}

func activeConn(ctrl *gomock.Controller) *mocks.MockSessionConn {
	conn := mocks.NewMockSessionConn(ctrl)
	conn.EXPECT().IsActive().Return(true).AnyTimes()
	return conn
}

func TestRegistry_Register_UserIsOnline(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := newTestRegistry()
	conn := activeConn(ctrl)

	// When a session is registered
	registry.Register(7, "sA", conn)

	// Then the user is visible in every snapshot read
	req.True(registry.IsOnline(7))
	req.Equal(1, registry.OnlineCount())
	req.Contains(registry.OnlineUserIDs(), int64(7))
}

func TestRegistry_Deregister_RemovesSession(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := newTestRegistry()
	conn := activeConn(ctrl)

	registry.Register(7, "sA", conn)
	req.Equal(1, registry.OnlineCount())

	registry.Deregister("sA")

	req.False(registry.IsOnline(7))
	req.Equal(0, registry.OnlineCount())
	req.Empty(registry.byConn)
}

func TestRegistry_Deregister_UnknownConnectionIsNoop(t *testing.T) {
	req := require.New(t)
	registry := newTestRegistry()

	req.NotPanics(func() {
		registry.Deregister("never-registered")
	})
}

func TestRegistry_SendToUser_NoSession(t *testing.T) {
	req := require.New(t)
	registry := newTestRegistry()
	env := notification.Notification("T", "C", 0, "")

	req.Equal(noSession, registry.deliver(99, env))
	req.False(registry.SendToUser(99, env))
}

func TestRegistry_SendToUser_InactiveConnection(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := newTestRegistry()

	// Given a session whose handle reports inactive; Send must never be
	// invoked on it
	conn := mocks.NewMockSessionConn(ctrl)
	conn.EXPECT().IsActive().Return(false).AnyTimes()
	registry.Register(7, "sA", conn)

	env := notification.Notification("T", "C", 0, "")
	req.Equal(inactiveSession, registry.deliver(7, env))
	req.False(registry.SendToUser(7, env))
}

func TestRegistry_SendToUser_SendFailure(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := newTestRegistry()

	env := notification.Notification("T", "C", 0, "")
	conn := activeConn(ctrl)
	conn.EXPECT().Send(env).Return(false).Times(1)
	registry.Register(7, "sA", conn)

	req.Equal(sendFailed, registry.deliver(7, env))
}

func TestRegistry_SendToUser_Delivered(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := newTestRegistry()

	env := notification.Notification("T", "C", 42, "task")
	conn := activeConn(ctrl)
	conn.EXPECT().Send(env).Return(true).Times(1)
	registry.Register(7, "sA", conn)

	req.True(registry.SendToUser(7, env))
}

func TestRegistry_SendToUsers_OneFailureNeverAbortsOthers(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := newTestRegistry()
	env := notification.Notification("T", "C", 0, "")

	reachable := activeConn(ctrl)
	reachable.EXPECT().Send(env).Return(true).Times(1)
	registry.Register(7, "sA", reachable)

	unreachable := mocks.NewMockSessionConn(ctrl)
	unreachable.EXPECT().IsActive().Return(false).AnyTimes()
	registry.Register(9, "sC", unreachable)

	// User 8 has no session at all
	registry.SendToUsers([]int64{7, 8, 9}, env)

	req.True(registry.IsOnline(7))
}

func TestRegistry_Broadcast_SendsOncePerActiveSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := newTestRegistry()
	env := notification.Notification("Sys", "Hello", 0, "")

	first := activeConn(ctrl)
	first.EXPECT().Send(env).Return(true).Times(1)
	registry.Register(7, "sA", first)

	second := activeConn(ctrl)
	second.EXPECT().Send(env).Return(true).Times(1)
	registry.Register(8, "sB", second)

	inactive := mocks.NewMockSessionConn(ctrl)
	inactive.EXPECT().IsActive().Return(false).AnyTimes()
	registry.Register(9, "sC", inactive)

	registry.Broadcast(env)
}

func TestRegistry_TouchHeartbeat_StrictlyIncreases(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := newTestRegistry()

	registry.Register(7, "sA", activeConn(ctrl))

	// Given a heartbeat recorded one minute in the past
	before := time.Now().Add(-time.Minute)
	registry.byUser[7].lastHeartbeat = before

	registry.TouchHeartbeat("sA")

	req.True(registry.byUser[7].lastHeartbeat.After(before))
}

func TestRegistry_TouchHeartbeat_UnknownConnectionIsNoop(t *testing.T) {
	req := require.New(t)
	registry := newTestRegistry()

	req.NotPanics(func() {
		registry.TouchHeartbeat("never-registered")
	})
}

func TestRegistry_Sweep_EvictsOnlyStaleSessions(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := newTestRegistry()

	stale := activeConn(ctrl)
	stale.EXPECT().Close().Times(1)
	registry.Register(7, "sA", stale)
	registry.byUser[7].lastHeartbeat = time.Now().Add(-11 * time.Minute)

	fresh := activeConn(ctrl)
	registry.Register(8, "sB", fresh)

	registry.Sweep()

	req.False(registry.IsOnline(7))
	req.True(registry.IsOnline(8))
	req.NotContains(registry.byConn, "sA")
	req.Contains(registry.byConn, "sB")
}

// Reconnecting replaces the user-index entry but does not close or evict
// the previous connection: its reverse entry stays until the connection
// dies on its own, and deregistering it must not take the user offline.
func TestRegistry_Reconnect_OrphansPreviousConnection(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := newTestRegistry()
	env := notification.Notification("T", "C", 0, "")

	previous := activeConn(ctrl)
	registry.Register(7, "sA", previous)

	replacement := activeConn(ctrl)
	replacement.EXPECT().Send(env).Return(true).Times(1)
	registry.Register(7, "sB", replacement)

	// Delivery resolves to the most recently registered session only
	req.True(registry.SendToUser(7, env))
	req.Equal(1, registry.OnlineCount())
	req.Len(registry.byConn, 2)

	// Deregistering the orphaned connection is a no-op for the user
	registry.Deregister("sA")
	req.True(registry.IsOnline(7))
	req.Len(registry.byConn, 1)
}

func TestRegistry_Shutdown_ClosesEverythingOnce(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := newTestRegistry()

	first := activeConn(ctrl)
	first.EXPECT().Close().Times(1)
	registry.Register(7, "sA", first)

	second := activeConn(ctrl)
	second.EXPECT().Close().Times(1)
	registry.Register(8, "sB", second)

	registry.Shutdown()
	// Idempotent: a second call must not close handles again
	registry.Shutdown()

	req.Equal(0, registry.OnlineCount())
	req.Empty(registry.OnlineUserIDs())
}
