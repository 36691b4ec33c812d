package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/daili-wash/partner-api/internal/enum"
	"github.com/daili-wash/partner-api/internal/handler"
	"github.com/daili-wash/partner-api/internal/store"
	"github.com/go-chi/chi/v5"
)

func setupDashboardRouter(s *mockOrderStore) http.Handler {
	h := handler.NewDashboardHandler(s, time.UTC)
	r := chi.NewRouter()
	r.Route("/dashboard", h.RegisterRoutes)
	return r
}

type dashboardResp struct {
	Range string `json:"range"`
	Stats struct {
		GrossSales string `json:"gross_sales"`
		OrderCount int    `json:"order_count"`
		ActiveJobs int    `json:"active_jobs"`
	} `json:"stats"`
	SalesSeries []struct {
		Label string `json:"label"`
		Sales string `json:"sales"`
	} `json:"sales_series"`
	CustomerSegments []struct {
		Segment string `json:"segment"`
		Count   int    `json:"count"`
		Percent int    `json:"percent"`
	} `json:"customer_segments"`
	HourlyActivity []struct {
		Time   string `json:"time"`
		Orders int    `json:"orders"`
	} `json:"hourly_activity"`
	RecentOrders []map[string]interface{} `json:"recent_orders"`
}

func getDashboard(t *testing.T, router http.Handler, url string) dashboardResp {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, url, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp dashboardResp
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

func TestGetDashboard_Today(t *testing.T) {
	now := time.Now().UTC()
	s := &mockOrderStore{orders: []store.Order{
		// Two created right now, one well outside today.
		mkOrder("ORD-1", now, enum.OrderStatusDelivered, 150),
		mkOrder("ORD-2", now, enum.OrderStatusWashing, 180),
		mkOrder("ORD-3", now.AddDate(0, 0, -3), enum.OrderStatusDelivered, 999),
	}}

	resp := getDashboard(t, setupDashboardRouter(s), "/dashboard")

	if resp.Range != enum.RangeToday {
		t.Errorf("expected default range today, got %s", resp.Range)
	}
	if resp.Stats.GrossSales != "330.00" {
		t.Errorf("expected gross 330.00, got %s", resp.Stats.GrossSales)
	}
	if resp.Stats.OrderCount != 2 {
		t.Errorf("expected 2 orders, got %d", resp.Stats.OrderCount)
	}
	if resp.Stats.ActiveJobs != 1 {
		t.Errorf("expected 1 active job, got %d", resp.Stats.ActiveJobs)
	}

	// Today's chart is always eight three-hour buckets.
	if len(resp.SalesSeries) != 8 {
		t.Fatalf("expected 8 sales buckets, got %d", len(resp.SalesSeries))
	}
	if resp.SalesSeries[0].Label != "00:00" || resp.SalesSeries[7].Label != "21:00" {
		t.Errorf("unexpected bucket labels: %s .. %s",
			resp.SalesSeries[0].Label, resp.SalesSeries[7].Label)
	}

	if len(resp.HourlyActivity) != 24 {
		t.Errorf("expected 24 hourly slots, got %d", len(resp.HourlyActivity))
	}

	if len(resp.RecentOrders) != 2 {
		t.Errorf("expected 2 recent orders, got %d", len(resp.RecentOrders))
	}
}

func TestGetDashboard_30d(t *testing.T) {
	now := time.Now().UTC()
	s := &mockOrderStore{orders: []store.Order{
		mkOrder("ORD-1", now.AddDate(0, 0, -5), enum.OrderStatusDelivered, 200),
		mkOrder("ORD-2", now.AddDate(0, 0, -10), enum.OrderStatusDelivered, 50),
		mkOrder("ORD-3", now.AddDate(0, 0, -45), enum.OrderStatusDelivered, 999),
	}}

	resp := getDashboard(t, setupDashboardRouter(s), "/dashboard?range=30d")

	if resp.Stats.GrossSales != "250.00" {
		t.Errorf("expected gross 250.00, got %s", resp.Stats.GrossSales)
	}
	if resp.Stats.OrderCount != 2 {
		t.Errorf("expected 2 orders, got %d", resp.Stats.OrderCount)
	}
	// Daily buckets, one per distinct day, ascending.
	if len(resp.SalesSeries) != 2 {
		t.Fatalf("expected 2 daily buckets, got %d", len(resp.SalesSeries))
	}
	if resp.SalesSeries[0].Sales != "50.00" || resp.SalesSeries[1].Sales != "200.00" {
		t.Errorf("buckets out of order: %+v", resp.SalesSeries)
	}
}

func TestGetDashboard_Segments(t *testing.T) {
	now := time.Now().UTC()
	orders := []store.Order{
		mkOrder("ORD-1", now, enum.OrderStatusDelivered, 100),
		mkOrder("ORD-2", now, enum.OrderStatusDelivered, 100),
		mkOrder("ORD-3", now, enum.OrderStatusDelivered, 100),
	}
	orders[0].CustomerPhone = "081-111-1112" // even: returning
	orders[1].CustomerPhone = "081-111-1113" // odd: new
	orders[2].CustomerPhone = "081-111-1115" // odd: new
	s := &mockOrderStore{orders: orders}

	resp := getDashboard(t, setupDashboardRouter(s), "/dashboard")

	if len(resp.CustomerSegments) != 2 {
		t.Fatalf("expected 2 segments, got %+v", resp.CustomerSegments)
	}
	for _, seg := range resp.CustomerSegments {
		switch seg.Segment {
		case "returning":
			if seg.Count != 1 || seg.Percent != 33 {
				t.Errorf("returning: got count=%d percent=%d", seg.Count, seg.Percent)
			}
		case "new":
			if seg.Count != 2 || seg.Percent != 67 {
				t.Errorf("new: got count=%d percent=%d", seg.Count, seg.Percent)
			}
		default:
			t.Errorf("unexpected segment %q", seg.Segment)
		}
	}
}

func TestGetDashboard_EmptyWindow(t *testing.T) {
	resp := getDashboard(t, setupDashboardRouter(&mockOrderStore{}), "/dashboard")

	if resp.Stats.GrossSales != "0.00" {
		t.Errorf("expected gross 0.00, got %s", resp.Stats.GrossSales)
	}
	if len(resp.CustomerSegments) != 1 || resp.CustomerSegments[0].Segment != "none" {
		t.Errorf("expected placeholder segment, got %+v", resp.CustomerSegments)
	}
	if resp.CustomerSegments[0].Percent != 100 {
		t.Errorf("placeholder percent should be 100, got %d", resp.CustomerSegments[0].Percent)
	}
	if len(resp.HourlyActivity) != 24 {
		t.Errorf("expected 24 hourly slots even when empty, got %d", len(resp.HourlyActivity))
	}
}

func TestGetDashboard_CustomRange(t *testing.T) {
	loc := time.UTC
	s := &mockOrderStore{orders: []store.Order{
		mkOrder("ORD-1", time.Date(2026, 8, 10, 14, 0, 0, 0, loc), enum.OrderStatusDelivered, 120),
		mkOrder("ORD-2", time.Date(2026, 8, 12, 23, 59, 0, 0, loc), enum.OrderStatusDelivered, 80),
		mkOrder("ORD-3", time.Date(2026, 8, 13, 0, 1, 0, 0, loc), enum.OrderStatusDelivered, 60),
	}}

	url := "/dashboard?range=custom&start_date=2026-08-10&end_date=2026-08-12"
	resp := getDashboard(t, setupDashboardRouter(s), url)

	// end_date's day is included whole; the next day is not.
	if resp.Stats.OrderCount != 2 {
		t.Errorf("expected 2 orders in window, got %d", resp.Stats.OrderCount)
	}
	if resp.Stats.GrossSales != "200.00" {
		t.Errorf("expected gross 200.00, got %s", resp.Stats.GrossSales)
	}
}

func TestGetDashboard_BadRange(t *testing.T) {
	router := setupDashboardRouter(&mockOrderStore{})

	req := httptest.NewRequest(http.MethodGet, "/dashboard?range=yearly", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
}

func TestGetDashboard_BadCustomDate(t *testing.T) {
	router := setupDashboardRouter(&mockOrderStore{})

	req := httptest.NewRequest(http.MethodGet, "/dashboard?range=custom&start_date=10-08-2026", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
}
