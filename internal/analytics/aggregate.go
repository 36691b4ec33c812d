package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/daili-wash/partner-api/internal/enum"
	"github.com/daili-wash/partner-api/internal/store"
	"github.com/shopspring/decimal"
)

// Summary is the dashboard's stat-card row.
type Summary struct {
	GrossSales decimal.Decimal
	OrderCount int
	ActiveJobs int
}

// Summarize computes the stat cards over an already time-filtered
// subset. Cancelled orders carry no revenue and don't count as jobs,
// but they are still scanned when counting active work.
func Summarize(orders []store.Order) Summary {
	s := Summary{GrossSales: decimal.Zero}
	for _, o := range orders {
		if o.Status != enum.OrderStatusCancelled {
			s.GrossSales = s.GrossSales.Add(o.Price.Total)
			s.OrderCount++
		}
		if enum.IsActiveStatus(o.Status) {
			s.ActiveJobs++
		}
	}
	return s
}

// SalesPoint is one bar of the sales chart.
type SalesPoint struct {
	Label string
	Sales decimal.Decimal
}

// SalesSeries buckets non-cancelled revenue for the sales chart. For
// the today range the 24 hourly sums are merged into 8 three-hour
// buckets labelled by their first hour, so the chart always has the
// same shape regardless of data sparsity. Every other range buckets by
// local calendar day, ascending.
func SalesSeries(orders []store.Order, rng string, loc *time.Location) []SalesPoint {
	if rng == enum.RangeToday {
		return hourlySalesSeries(orders, loc)
	}
	return dailySalesSeries(orders, loc)
}

func hourlySalesSeries(orders []store.Order, loc *time.Location) []SalesPoint {
	var hours [24]decimal.Decimal
	for i := range hours {
		hours[i] = decimal.Zero
	}
	for _, o := range orders {
		if o.Status == enum.OrderStatusCancelled {
			continue
		}
		h := o.CreatedAt.In(loc).Hour()
		hours[h] = hours[h].Add(o.Price.Total)
	}

	out := make([]SalesPoint, 0, 8)
	for i := 0; i < 24; i += 3 {
		out = append(out, SalesPoint{
			Label: fmt.Sprintf("%02d:00", i),
			Sales: hours[i].Add(hours[i+1]).Add(hours[i+2]),
		})
	}
	return out
}

func dailySalesSeries(orders []store.Order, loc *time.Location) []SalesPoint {
	byDay := make(map[string]decimal.Decimal)
	for _, o := range orders {
		if o.Status == enum.OrderStatusCancelled {
			continue
		}
		key := o.CreatedAt.In(loc).Format("2006-01-02")
		sum, ok := byDay[key]
		if !ok {
			sum = decimal.Zero
		}
		byDay[key] = sum.Add(o.Price.Total)
	}

	keys := make([]string, 0, len(byDay))
	for k := range byDay {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]SalesPoint, 0, len(keys))
	for _, key := range keys {
		day, _ := time.ParseInLocation("2006-01-02", key, loc)
		out = append(out, SalesPoint{
			Label: day.Format("2 Jan"),
			Sales: byDay[key],
		})
	}
	return out
}

// Segment labels for the customer base chart.
const (
	SegmentReturning = "returning"
	SegmentNew       = "new"
	SegmentNone      = "none"
)

// CustomerSegment is one slice of the customer base chart.
type CustomerSegment struct {
	Segment string
	Count   int
	Percent int
}

// CustomerSegments splits the filtered orders into returning vs. new
// customers using the phone-number parity heuristic: an even last digit
// counts as returning, anything else (odd, non-digit, empty) as new.
// Percentages are rounded independently and need not sum to 100. An
// empty subset yields a single placeholder slice.
func CustomerSegments(orders []store.Order) []CustomerSegment {
	var returning, fresh int
	for _, o := range orders {
		if isEvenLastDigit(o.CustomerPhone) {
			returning++
		} else {
			fresh++
		}
	}

	total := returning + fresh
	if total == 0 {
		return []CustomerSegment{{Segment: SegmentNone, Count: 0, Percent: 100}}
	}

	return []CustomerSegment{
		{Segment: SegmentReturning, Count: returning, Percent: roundPercent(returning, total)},
		{Segment: SegmentNew, Count: fresh, Percent: roundPercent(fresh, total)},
	}
}

func isEvenLastDigit(phone string) bool {
	if phone == "" {
		return false
	}
	c := phone[len(phone)-1]
	if c < '0' || c > '9' {
		return false
	}
	return (c-'0')%2 == 0
}

func roundPercent(part, total int) int {
	return int(math.Round(float64(part) / float64(total) * 100))
}

// HourlyPoint is one slot of the hourly activity chart.
type HourlyPoint struct {
	Time   string
	Orders int
}

// HourlyActivity counts orders per local hour of creation. The result
// always has exactly 24 entries in hour order, zero-filled, and counts
// every filtered order including cancelled ones.
func HourlyActivity(orders []store.Order, loc *time.Location) []HourlyPoint {
	out := make([]HourlyPoint, 24)
	for i := range out {
		out[i] = HourlyPoint{Time: fmt.Sprintf("%02d:00", i)}
	}
	for _, o := range orders {
		out[o.CreatedAt.In(loc).Hour()].Orders++
	}
	return out
}
