package domain

// OrderStatus represents the status of a storefront order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
	OrderStatusOnHold     OrderStatus = "on-hold"
	OrderStatusFailed     OrderStatus = "failed"
)

// AllOrderStatuses lists every status in display order. Template sets are
// keyed by this set, so the order here drives UI listings.
var AllOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusOnHold,
	OrderStatusCancelled,
	OrderStatusRefunded,
	OrderStatusFailed,
}

// IsValid checks if the order status is valid
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
		OrderStatusRefunded,
		OrderStatusOnHold,
		OrderStatusFailed:
		return true
	default:
		return false
	}
}

// Label returns the human-readable label for the status
func (s OrderStatus) Label() string {
	switch s {
	case OrderStatusPending:
		return "Pending"
	case OrderStatusProcessing:
		return "Processing"
	case OrderStatusShipped:
		return "Shipped"
	case OrderStatusDelivered:
		return "Delivered / Completed"
	case OrderStatusOnHold:
		return "On Hold"
	case OrderStatusCancelled:
		return "Cancelled"
	case OrderStatusRefunded:
		return "Refunded"
	case OrderStatusFailed:
		return "Failed"
	default:
		return string(s)
	}
}
