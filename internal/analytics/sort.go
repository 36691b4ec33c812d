package analytics

import (
	"sort"
	"strings"

	"github.com/daili-wash/partner-api/internal/enum"
	"github.com/daili-wash/partner-api/internal/store"
)

// FilterAndSort produces the order list view. The free-text query
// matches case-insensitively against the customer name or the order id;
// status narrows to one lifecycle token, with "all" (or empty) passing
// everything.
//
// Sort "latest" puts active work first: every active-status order sorts
// before every terminal one regardless of timestamps, newest first
// within each group. Sort "oldest" is plain chronological ascending.
// The input slice is never mutated and ties keep their input order.
func FilterAndSort(orders []store.Order, query, status, sortMode string) []store.Order {
	query = strings.ToLower(query)

	out := make([]store.Order, 0, len(orders))
	for _, o := range orders {
		if query != "" &&
			!strings.Contains(strings.ToLower(o.CustomerName), query) &&
			!strings.Contains(strings.ToLower(o.ID), query) {
			continue
		}
		if status != "" && status != "all" && o.Status != status {
			continue
		}
		out = append(out, o)
	}

	switch sortMode {
	case enum.SortOldest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		})
	default: // latest
		sort.SliceStable(out, func(i, j int) bool {
			activeI := enum.IsActiveStatus(out[i].Status)
			activeJ := enum.IsActiveStatus(out[j].Status)
			if activeI != activeJ {
				return activeI
			}
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}
	return out
}
