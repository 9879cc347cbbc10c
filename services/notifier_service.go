package services

import (
	"log/slog"

	"github.com/go-playground/validator/v10"

	"notify-lab/contract"
	"notify-lab/domain/notification"
)

var validate = validator.New()

// notificationPayload is checked before any envelope is built, so a
// malformed business-side call never reaches connected clients. Only
// the content is mandatory; a title may be empty and no size cap is
// imposed beyond the transport read limit.
type notificationPayload struct {
	Content string `validate:"required"`
}

// INotifierService is the outbound surface business services call to push
// notifications. All methods are fire-and-forget except the single-user
// forms, which report whether the envelope reached an active session.
type INotifierService interface {
	SendNotification(userID int64, title, content string) bool
	SendRelatedNotification(userID int64, title, content string, relatedID int64, relatedType string) bool
	SendNotificationToUsers(userIDs []int64, title, content string)
	SendRelatedNotificationToUsers(userIDs []int64, title, content string, relatedID int64, relatedType string)
	BroadcastNotification(title, content string)
	BroadcastRelatedNotification(title, content string, relatedID int64, relatedType string)
	SendProjectNotification(projectID int64, title, content string)
}

type NotifierService struct {
	log      *slog.Logger
	registry contract.SessionRegistry
}

func NewNotifierService(log *slog.Logger, registry contract.SessionRegistry) *NotifierService {
	return &NotifierService{log: log, registry: registry}
}

func (s *NotifierService) SendNotification(userID int64, title, content string) bool {
	return s.SendRelatedNotification(userID, title, content, 0, "")
}

func (s *NotifierService) SendRelatedNotification(userID int64, title, content string,
	relatedID int64, relatedType string) bool {
	if !s.validPayload(content) {
		return false
	}
	return s.registry.SendToUser(userID, notification.Notification(title, content, relatedID, relatedType))
}

func (s *NotifierService) SendNotificationToUsers(userIDs []int64, title, content string) {
	s.SendRelatedNotificationToUsers(userIDs, title, content, 0, "")
}

func (s *NotifierService) SendRelatedNotificationToUsers(userIDs []int64, title, content string,
	relatedID int64, relatedType string) {
	if !s.validPayload(content) {
		return
	}
	s.registry.SendToUsers(userIDs, notification.Notification(title, content, relatedID, relatedType))
}

func (s *NotifierService) BroadcastNotification(title, content string) {
	s.BroadcastRelatedNotification(title, content, 0, "")
}

func (s *NotifierService) BroadcastRelatedNotification(title, content string,
	relatedID int64, relatedType string) {
	if !s.validPayload(content) {
		return
	}
	s.registry.Broadcast(notification.Notification(title, content, relatedID, relatedType))
}

// SendProjectNotification notifies about a project-scoped event. Project
// membership is resolved upstream; until a caller supplies the member
// list this broadcasts to every connected user, tagged with the project
// id so clients can filter.
func (s *NotifierService) SendProjectNotification(projectID int64, title, content string) {
	if !s.validPayload(content) {
		return
	}
	s.registry.Broadcast(notification.Notification(title, content, projectID, "project"))
	s.log.Info("Project notification sent", "project_id", projectID, "title", title)
}

func (s *NotifierService) validPayload(content string) bool {
	if err := validate.Struct(notificationPayload{Content: content}); err != nil {
		s.log.Warn("Dropping invalid notification payload", "err", err)
		return false
	}
	return true
}
