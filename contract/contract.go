//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"notify-lab/domain/notification"
)

// SessionConn is the capability set a registered session exposes to the
// registry. It hides the transport: the registry never sees a concrete
// WebSocket type, only this interface.
type SessionConn interface {
	// Send pushes one envelope to the peer. Transport failures are
	// collapsed to false, never propagated.
	Send(env notification.Envelope) bool
	IsActive() bool
	// Close tears the connection down. Best-effort and idempotent.
	Close()
	ID() string
}

// SessionRegistry indexes the live sessions and delivers envelopes to
// them. Implemented by runtime.Registry.
type SessionRegistry interface {
	Register(userID int64, connectionID string, conn SessionConn)
	Deregister(connectionID string)
	TouchHeartbeat(connectionID string)
	SendToUser(userID int64, env notification.Envelope) bool
	SendToUsers(userIDs []int64, env notification.Envelope)
	Broadcast(env notification.Envelope)
	IsOnline(userID int64) bool
	OnlineCount() int
	OnlineUserIDs() []int64
	Shutdown()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
