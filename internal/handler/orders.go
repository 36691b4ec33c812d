package handler

import (
	"encoding/json"
	"net/http"

	"github.com/daili-wash/partner-api/internal/analytics"
	"github.com/daili-wash/partner-api/internal/enum"
	"github.com/daili-wash/partner-api/internal/store"
	"github.com/daili-wash/partner-api/internal/ws"
	"github.com/go-chi/chi/v5"
)

// OrderStore defines the store methods needed by order handlers.
// Satisfied by *store.Store; narrow interface for testability.
type OrderStore interface {
	List() []store.Order
	UpdateStatus(id, status string) (store.Order, bool)
}

// OrderHandler handles the order list and status updates.
type OrderHandler struct {
	store OrderStore
	hub   *ws.Hub
}

// NewOrderHandler creates a new OrderHandler. hub may be nil when no
// live feed is wired (tests).
func NewOrderHandler(store OrderStore, hub *ws.Hub) *OrderHandler {
	return &OrderHandler{store: store, hub: hub}
}

// RegisterRoutes registers order endpoints.
func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.ListOrders)
	r.Patch("/{id}/status", h.UpdateStatus)
}

// ListOrders returns the order list filtered by free text and status,
// sorted active-work-first ("latest") or chronologically ("oldest").
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	query, status, sortMode, err := parseListParams(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	orders := analytics.FilterAndSort(h.store.List(), query, status, sortMode)
	writeJSON(w, http.StatusOK, toOrderResponses(orders))
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus replaces the status of one order and broadcasts the
// change to connected dashboard clients. All other fields are left
// untouched.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if !enum.IsValidStatus(req.Status) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown status"})
		return
	}

	order, ok := h.store.UpdateStatus(id, req.Status)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
		return
	}

	resp := toOrderResponse(order)

	if h.hub != nil {
		if payload, err := json.Marshal(resp); err == nil {
			h.hub.Broadcast(ws.Event{Type: "order.status_updated", Payload: payload})
		}
	}

	writeJSON(w, http.StatusOK, resp)
}
