package notification

import "time"

// Kind discriminates the envelope variants exchanged over a connection.
type Kind string

const (
	KindSystem       Kind = "system"
	KindNotification Kind = "notification"
	KindHeartbeat    Kind = "heartbeat"
	KindError        Kind = "error"
)

// HeartbeatContent is the fixed payload of a heartbeat acknowledgment.
const HeartbeatContent = "pong"

// Envelope is the message unit written to a notification connection as a
// JSON text frame. Optional fields are omitted on the wire, never emitted
// as null. Envelopes are treated as immutable once built.
type Envelope struct {
	Type        Kind      `json:"type"`
	Title       string    `json:"title,omitempty"`
	Content     any       `json:"content,omitempty"`
	RelatedID   int64     `json:"relatedId,omitempty"`
	RelatedType string    `json:"relatedType,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// System builds a system envelope. The title may be empty.
func System(title, content string) Envelope {
	return Envelope{
		Type:      KindSystem,
		Title:     title,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
}

// Notification builds a user-facing notification. relatedID and
// relatedType tie the notification to a business entity and may be left
// zero when there is none.
func Notification(title string, content any, relatedID int64, relatedType string) Envelope {
	return Envelope{
		Type:        KindNotification,
		Title:       title,
		Content:     content,
		RelatedID:   relatedID,
		RelatedType: relatedType,
		Timestamp:   time.Now().UTC(),
	}
}

// HeartbeatAck builds the reply to a client heartbeat probe.
func HeartbeatAck() Envelope {
	return Envelope{
		Type:      KindHeartbeat,
		Content:   HeartbeatContent,
		Timestamp: time.Now().UTC(),
	}
}

// Error builds an error envelope.
func Error(content string) Envelope {
	return Envelope{
		Type:      KindError,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
}
