package handler

import (
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/daili-wash/partner-api/internal/analytics"
	"github.com/daili-wash/partner-api/internal/enum"
	"github.com/daili-wash/partner-api/internal/store"
	"github.com/go-chi/chi/v5"
)

// OrderSource defines the read access needed by derived-view handlers.
// Satisfied by *store.Store; narrow interface for testability.
type OrderSource interface {
	List() []store.Order
}

// DashboardHandler serves the partner dashboard's derived views.
type DashboardHandler struct {
	store OrderSource
	loc   *time.Location
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(store OrderSource, loc *time.Location) *DashboardHandler {
	return &DashboardHandler{store: store, loc: loc}
}

// RegisterRoutes registers dashboard endpoints.
func (h *DashboardHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.GetDashboard)
}

// --- Response types ---

type dashboardResponse struct {
	Range            string               `json:"range"`
	Stats            statsResponse        `json:"stats"`
	SalesSeries      []salesPointResp     `json:"sales_series"`
	CustomerSegments []segmentResp        `json:"customer_segments"`
	HourlyActivity   []hourlyActivityResp `json:"hourly_activity"`
	RecentOrders     []orderResponse      `json:"recent_orders"`
}

type statsResponse struct {
	GrossSales string `json:"gross_sales"`
	OrderCount int    `json:"order_count"`
	ActiveJobs int    `json:"active_jobs"`
}

type salesPointResp struct {
	Label string `json:"label"`
	Sales string `json:"sales"`
}

type segmentResp struct {
	Segment string `json:"segment"`
	Count   int    `json:"count"`
	Percent int    `json:"percent"`
}

type hourlyActivityResp struct {
	Time   string `json:"time"`
	Orders int    `json:"orders"`
}

// --- Handler ---

// GetDashboard returns summary stats, the sales chart, the customer
// base split, and the hourly activity histogram for the selected time
// range.
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	rng, startDate, endDate, err := h.parseRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	now := time.Now().In(h.loc)
	filtered := analytics.FilterByRange(h.store.List(), rng, now, startDate, endDate)

	stats := analytics.Summarize(filtered)
	series := analytics.SalesSeries(filtered, rng, h.loc)
	segments := analytics.CustomerSegments(filtered)
	activity := analytics.HourlyActivity(filtered, h.loc)

	resp := dashboardResponse{
		Range: rng,
		Stats: statsResponse{
			GrossSales: stats.GrossSales.StringFixed(2),
			OrderCount: stats.OrderCount,
			ActiveJobs: stats.ActiveJobs,
		},
		SalesSeries:      buildSalesSeries(series),
		CustomerSegments: buildSegments(segments),
		HourlyActivity:   buildHourlyActivity(activity),
		RecentOrders:     toOrderResponses(recentOrders(filtered, 4)),
	}

	writeJSON(w, http.StatusOK, resp)
}

// parseRange parses the range selector and, for the custom range, the
// optional start_date / end_date params (local calendar dates).
func (h *DashboardHandler) parseRange(r *http.Request) (string, *time.Time, *time.Time, error) {
	const layout = "2006-01-02"
	q := r.URL.Query()

	rng := q.Get("range")
	if rng == "" {
		rng = enum.RangeToday
	}
	switch rng {
	case enum.RangeToday, enum.Range7d, enum.Range30d, enum.RangeCustom:
	default:
		return "", nil, nil, fmt.Errorf("unknown range %q", rng)
	}

	var startDate, endDate *time.Time
	if rng == enum.RangeCustom {
		if s := q.Get("start_date"); s != "" {
			t, err := time.ParseInLocation(layout, s, h.loc)
			if err != nil {
				return "", nil, nil, fmt.Errorf("invalid start_date format: %w", err)
			}
			startDate = &t
		}
		if s := q.Get("end_date"); s != "" {
			t, err := time.ParseInLocation(layout, s, h.loc)
			if err != nil {
				return "", nil, nil, fmt.Errorf("invalid end_date format: %w", err)
			}
			endDate = &t
		}
	}

	return rng, startDate, endDate, nil
}

// --- Response builders ---

func buildSalesSeries(points []analytics.SalesPoint) []salesPointResp {
	out := make([]salesPointResp, len(points))
	for i, p := range points {
		out[i] = salesPointResp{Label: p.Label, Sales: p.Sales.StringFixed(2)}
	}
	return out
}

func buildSegments(segments []analytics.CustomerSegment) []segmentResp {
	out := make([]segmentResp, len(segments))
	for i, s := range segments {
		out[i] = segmentResp{Segment: s.Segment, Count: s.Count, Percent: s.Percent}
	}
	return out
}

func buildHourlyActivity(points []analytics.HourlyPoint) []hourlyActivityResp {
	out := make([]hourlyActivityResp, len(points))
	for i, p := range points {
		out[i] = hourlyActivityResp{Time: p.Time, Orders: p.Orders}
	}
	return out
}

// recentOrders returns up to n newest orders of the window.
func recentOrders(orders []store.Order, n int) []store.Order {
	out := make([]store.Order, len(orders))
	copy(out, orders)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
