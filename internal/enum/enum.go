package enum

// ── Order lifecycle (wire tokens shared with the partner app) ──

const (
	OrderStatusReceived           = "order_received"
	OrderStatusPickupInProgress   = "pickup_in_progress"
	OrderStatusWashing            = "washing"
	OrderStatusDrying             = "drying"
	OrderStatusDeliveryInProgress = "delivery_in_progress"
	OrderStatusDelivered          = "delivered"
	OrderStatusCancelled          = "cancelled"
)

// IsValidStatus reports whether s is a known order status token.
func IsValidStatus(s string) bool {
	switch s {
	case OrderStatusReceived, OrderStatusPickupInProgress, OrderStatusWashing,
		OrderStatusDrying, OrderStatusDeliveryInProgress, OrderStatusDelivered,
		OrderStatusCancelled:
		return true
	}
	return false
}

// IsActiveStatus reports whether s is a lifecycle stage prior to delivery
// or cancellation.
func IsActiveStatus(s string) bool {
	switch s {
	case OrderStatusReceived, OrderStatusPickupInProgress, OrderStatusWashing,
		OrderStatusDrying, OrderStatusDeliveryInProgress:
		return true
	}
	return false
}

// ── Service types ──

const (
	ServiceTypeStandard = "standard"
	ServiceTypeBedding  = "bedding"
)

// ── Dashboard time ranges ──

const (
	RangeToday  = "today"
	Range7d     = "7d"
	Range30d    = "30d"
	RangeCustom = "custom"
)

// ── Order list sort modes ──

const (
	SortLatest = "latest"
	SortOldest = "oldest"
)

// ── Billing payment cycles ──

const (
	CycleMonthly = "monthly"
	CycleAll     = "all"
)
