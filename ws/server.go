package ws

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"notify-lab/contract"
	apperrors "notify-lab/errors"
	"notify-lab/services"
)

// Server hosts the notification WebSocket endpoint plus a small
// operational surface. It implements contract.Worker so the supervisor
// owns its lifecycle.
type Server struct {
	log      *slog.Logger
	addr     string
	echo     *echo.Echo
	registry contract.SessionRegistry
	notifier services.INotifierService
}

func NewServer(log *slog.Logger, addr string, handler *Handler,
	registry contract.SessionRegistry, notifier services.INotifierService) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	s := &Server{log: log, addr: addr, echo: e, registry: registry, notifier: notifier}

	e.GET("/ws/notifications", handler.Serve)
	e.GET("/healthz", s.handleHealth)
	e.GET("/api/notifications/online", s.handleOnline)
	e.POST("/internal/notifications", s.handleInternalPush)

	return s
}

// Run starts the HTTP listener and blocks until the context is canceled
// or the listener fails.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	s.log.Info("Notification server listening", "addr", s.addr)

	select {
	case err := <-errCh:
		// A dead listener cannot be cured by a restart; bubbling the
		// marker up lets the supervisor terminate the process instead
		// of crash-looping on the same port.
		return fmt.Errorf("http server: %w", errors.Join(err, apperrors.ErrUnrecoverable))
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.echo.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"online": s.registry.OnlineCount(),
	})
}

type onlineResponse struct {
	Count   int     `json:"count"`
	UserIDs []int64 `json:"userIds"`
}

func (s *Server) handleOnline(c echo.Context) error {
	userIDs := s.registry.OnlineUserIDs()
	if userIDs == nil {
		// An empty collection on the wire, never null.
		userIDs = []int64{}
	}
	return c.JSON(http.StatusOK, onlineResponse{
		Count:   s.registry.OnlineCount(),
		UserIDs: userIDs,
	})
}

// pushRequest is the body business services POST to have a notification
// delivered. Exactly one addressing mode applies: broadcast, a user list,
// or a single user.
type pushRequest struct {
	UserIDs     []int64 `json:"userIds"`
	Broadcast   bool    `json:"broadcast"`
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	RelatedID   int64   `json:"relatedId"`
	RelatedType string  `json:"relatedType"`
}

type pushResponse struct {
	OK        bool `json:"ok"`
	Delivered bool `json:"delivered,omitempty"`
}

func (s *Server) handleInternalPush(c echo.Context) error {
	var req pushRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	switch {
	case req.Broadcast:
		s.notifier.BroadcastRelatedNotification(req.Title, req.Content, req.RelatedID, req.RelatedType)
		return c.JSON(http.StatusOK, pushResponse{OK: true})
	case len(req.UserIDs) == 1:
		delivered := s.notifier.SendRelatedNotification(req.UserIDs[0], req.Title, req.Content,
			req.RelatedID, req.RelatedType)
		return c.JSON(http.StatusOK, pushResponse{OK: true, Delivered: delivered})
	case len(req.UserIDs) > 1:
		s.notifier.SendRelatedNotificationToUsers(req.UserIDs, req.Title, req.Content,
			req.RelatedID, req.RelatedType)
		return c.JSON(http.StatusOK, pushResponse{OK: true})
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "userIds or broadcast is required"})
	}
}
