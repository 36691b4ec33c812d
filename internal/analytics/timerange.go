// Package analytics derives the dashboard's read-only views from the
// order collection: time-range filtering, chart bucketing, customer
// segmentation, and the order list's filter/sort rules. Every function
// is pure; callers re-run them whenever their inputs change.
package analytics

import (
	"time"

	"github.com/daili-wash/partner-api/internal/enum"
	"github.com/daili-wash/partner-api/internal/store"
)

// FilterByRange returns the orders whose CreatedAt falls inside the
// window selected by rng, evaluated against now. Calendar math uses
// now's location.
//
//   - today: same local calendar day as now (not a rolling 24h window).
//   - 7d/30d: rolling window [now-N days, now], timestamp comparison.
//   - custom: [start of startDate, start of the day after endDate], so
//     the end date keeps its whole calendar day. A nil startDate leaves
//     the lower bound open; a nil endDate closes the window 24h after
//     the start, or at now when the start is open too.
func FilterByRange(orders []store.Order, rng string, now time.Time, startDate, endDate *time.Time) []store.Order {
	loc := now.Location()

	if rng == enum.RangeToday {
		out := make([]store.Order, 0, len(orders))
		for _, o := range orders {
			t := o.CreatedAt.In(loc)
			if t.Year() == now.Year() && t.Month() == now.Month() && t.Day() == now.Day() {
				out = append(out, o)
			}
		}
		return out
	}

	var lower, upper time.Time
	hasLower := true

	switch rng {
	case enum.Range7d:
		lower, upper = now.AddDate(0, 0, -7), now
	case enum.Range30d:
		lower, upper = now.AddDate(0, 0, -30), now
	case enum.RangeCustom:
		switch {
		case startDate != nil:
			lower = startOfDay(*startDate, loc)
			if endDate != nil {
				upper = startOfDay(*endDate, loc).Add(24 * time.Hour)
			} else {
				upper = lower.Add(24 * time.Hour)
			}
		case endDate != nil:
			hasLower = false
			upper = startOfDay(*endDate, loc).Add(24 * time.Hour)
		default:
			hasLower = false
			upper = now
		}
	default:
		return nil
	}

	out := make([]store.Order, 0, len(orders))
	for _, o := range orders {
		t := o.CreatedAt
		if hasLower && t.Before(lower) {
			continue
		}
		if t.After(upper) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
