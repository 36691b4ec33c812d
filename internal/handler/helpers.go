package handler

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/daili-wash/partner-api/internal/enum"
	"github.com/daili-wash/partner-api/internal/store"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("ERROR: failed to encode JSON response: %v", err)
	}
}

// orderResponse is the wire shape of an order, shared by the dashboard,
// order list, and invoice endpoints. Money renders with two decimals.
type orderResponse struct {
	ID               string    `json:"id"`
	CustomerName     string    `json:"customer_name"`
	CustomerPhone    string    `json:"customer_phone"`
	ServiceType      string    `json:"service_type"`
	WashKg           float64   `json:"wash_kg"`
	DryKg            float64   `json:"dry_kg"`
	Subtotal         string    `json:"subtotal"`
	Discount         string    `json:"discount"`
	Total            string    `json:"total"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	EstimatedReadyAt time.Time `json:"estimated_ready_at"`
}

func toOrderResponse(o store.Order) orderResponse {
	return orderResponse{
		ID:               o.ID,
		CustomerName:     o.CustomerName,
		CustomerPhone:    o.CustomerPhone,
		ServiceType:      o.ServiceType,
		WashKg:           o.WashKg,
		DryKg:            o.DryKg,
		Subtotal:         o.Price.Subtotal.StringFixed(2),
		Discount:         o.Price.Discount.StringFixed(2),
		Total:            o.Price.Total.StringFixed(2),
		Status:           o.Status,
		CreatedAt:        o.CreatedAt,
		EstimatedReadyAt: o.EstimatedReadyAt,
	}
}

func toOrderResponses(orders []store.Order) []orderResponse {
	out := make([]orderResponse, len(orders))
	for i, o := range orders {
		out[i] = toOrderResponse(o)
	}
	return out
}

// parseListParams validates the order list query params shared by the
// order list and finance statement endpoints.
func parseListParams(r *http.Request) (query, status, sortMode string, err error) {
	q := r.URL.Query()

	status = q.Get("status")
	if status != "" && status != "all" && !enum.IsValidStatus(status) {
		return "", "", "", fmt.Errorf("unknown status %q", status)
	}

	sortMode = q.Get("sort")
	if sortMode == "" {
		sortMode = enum.SortLatest
	}
	if sortMode != enum.SortLatest && sortMode != enum.SortOldest {
		return "", "", "", fmt.Errorf("unknown sort %q", sortMode)
	}

	return q.Get("q"), status, sortMode, nil
}
