// Package seed provides the demo order fixture: a deterministic
// generator mirroring the partner app's sample dataset, and a JSON
// loader for externally supplied fixtures.
package seed

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/daili-wash/partner-api/internal/enum"
	"github.com/daili-wash/partner-api/internal/store"
	"github.com/shopspring/decimal"
)

var customerNames = []string{
	"คุณสมชาย", "คุณวิภา", "คุณอารียา", "คุณธนินทร์", "คุณปิติ",
	"คุณมานะ", "คุณก้องเกียรติ", "คุณสมหญิง", "Hostel A", "Hotel B",
}

var phonePrefixes = []string{"081", "090", "089", "088", "085"}

var activePool = []string{
	enum.OrderStatusReceived,
	enum.OrderStatusPickupInProgress,
	enum.OrderStatusWashing,
	enum.OrderStatusDrying,
	enum.OrderStatusDeliveryInProgress,
}

// Generate produces count demo orders spread over the 30 days before
// now. The same seed always yields the same fixture. Order timestamps
// are weighted towards business hours, and statuses follow recency:
// today's orders are still in progress, older ones are delivered.
func Generate(count int, seedVal int64, now time.Time) []store.Order {
	rng := rand.New(rand.NewSource(seedVal))
	loc := now.Location()

	orders := make([]store.Order, 0, count)
	for i := 0; i < count; i++ {
		isBedding := rng.Float64() > 0.7
		serviceType := enum.ServiceTypeStandard
		if isBedding {
			serviceType = enum.ServiceTypeBedding
		}

		var washKg, dryKg float64
		if isBedding {
			washKg = pick(rng, 14, 18, 28)
			dryKg = pick(rng, 15, 28)
		} else {
			washKg = pick(rng, 9, 14, 18, 28)
			dryKg = washKg
		}

		basePrice := int64(130)
		if isBedding {
			basePrice = 180
		}
		total := decimal.NewFromInt(basePrice + int64(rng.Intn(50)))
		discount := decimal.NewFromInt(10)

		daysAgo := rng.Intn(30)
		day := now.AddDate(0, 0, -daysAgo)

		// Weighted towards the morning, afternoon and evening rushes.
		var hour int
		switch roll := rng.Float64(); {
		case roll < 0.1:
			hour = rng.Intn(7) // small hours
		case roll < 0.4:
			hour = 7 + rng.Intn(5) // morning rush
		case roll < 0.7:
			hour = 12 + rng.Intn(5) // afternoon
		default:
			hour = 17 + rng.Intn(5) // evening rush
		}
		createdAt := time.Date(day.Year(), day.Month(), day.Day(), hour, rng.Intn(60), 0, 0, loc)

		status := enum.OrderStatusDelivered
		if daysAgo == 0 {
			status = activePool[rng.Intn(len(activePool))]
		} else if daysAgo <= 2 && rng.Float64() <= 0.5 {
			status = enum.OrderStatusDeliveryInProgress
		}

		orders = append(orders, store.Order{
			ID:            fmt.Sprintf("ORD-%d", 1000+i),
			CustomerName:  customerNames[rng.Intn(len(customerNames))],
			CustomerPhone: fmt.Sprintf("%s-%d-%d", phonePrefixes[rng.Intn(len(phonePrefixes))], 100+rng.Intn(900), 1000+rng.Intn(9000)),
			ServiceType:   serviceType,
			WashKg:        washKg,
			DryKg:         dryKg,
			Price: store.Price{
				Subtotal: total.Add(discount),
				Discount: discount,
				Total:    total,
			},
			Status:           status,
			CreatedAt:        createdAt,
			EstimatedReadyAt: createdAt.Add(4 * time.Hour),
		})
	}
	return orders
}

// LoadFile reads an order fixture from a JSON file.
func LoadFile(path string) ([]store.Order, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var orders []store.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return orders, nil
}

// Notifications returns the demo notification feed.
func Notifications(now time.Time) []store.Notification {
	return []store.Notification{
		{
			ID:        3,
			Title:     "ออเดอร์ใหม่เข้า",
			Message:   "มีลูกค้าเรียกใช้บริการซักอบด่วน โปรดตรวจสอบ",
			Type:      "info",
			CreatedAt: now.Add(-10 * time.Minute),
		},
		{
			ID:        2,
			Title:     "ยอดขายทะลุเป้า!",
			Message:   "ยินดีด้วย! วันนี้ร้านของคุณทำยอดขายได้ถึง 2,000 บาท",
			Type:      "success",
			CreatedAt: now.Add(-5 * time.Hour),
		},
		{
			ID:        1,
			Title:     "สมัครพาร์ทเนอร์สำเร็จ!",
			Message:   "ยินดีต้อนรับสู่ครอบครัว Daili Wash & Delivery เริ่มรับงานได้เลย",
			Type:      "success",
			CreatedAt: now.AddDate(0, 0, -2),
		},
	}
}

func pick(rng *rand.Rand, options ...float64) float64 {
	return options[rng.Intn(len(options))]
}
