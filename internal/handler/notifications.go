package handler

import (
	"net/http"

	"github.com/daili-wash/partner-api/internal/store"
	"github.com/go-chi/chi/v5"
)

// NotificationHandler serves the partner notification feed.
type NotificationHandler struct {
	store *store.NotificationStore
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(store *store.NotificationStore) *NotificationHandler {
	return &NotificationHandler{store: store}
}

// RegisterRoutes registers notification endpoints.
func (h *NotificationHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.ListNotifications)
	r.Post("/read-all", h.ReadAll)
}

type notificationsResponse struct {
	Notifications []store.Notification `json:"notifications"`
	HasUnread     bool                 `json:"has_unread"`
}

// ListNotifications returns the feed, newest first.
func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, notificationsResponse{
		Notifications: h.store.List(),
		HasUnread:     h.store.HasUnread(),
	})
}

// ReadAll marks every notification as read.
func (h *NotificationHandler) ReadAll(w http.ResponseWriter, r *http.Request) {
	h.store.MarkAllRead()
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
