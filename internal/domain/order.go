package domain

import "time"

type OrderStatus string

const (
	StatusPending        OrderStatus = "Pending"
	StatusAccepted       OrderStatus = "Accepted"
	StatusProcessing     OrderStatus = "Processing"
	StatusOutForDelivery OrderStatus = "Out For Delivery"
	StatusCompleted      OrderStatus = "Completed"
	StatusCancelled      OrderStatus = "Cancelled"
)

// OrderStatuses lists every status in canonical forward order, terminal
// states last.
var OrderStatuses = []OrderStatus{
	StatusPending,
	StatusAccepted,
	StatusProcessing,
	StatusOutForDelivery,
	StatusCompleted,
	StatusCancelled,
}

// ParseOrderStatus maps the wire representation back to a known status.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	for _, st := range OrderStatuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// Terminal reports whether no further transition may leave this status.
func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransition is the order status transition table. A caterer may move an
// order between any statuses as long as the current one is not terminal; the
// customer-facing cancel path is further restricted by Order.Cancellable.
func CanTransition(from, to OrderStatus) bool {
	if from.Terminal() {
		return false
	}
	return from != to
}

type OrderItem struct {
	ProductID  string `json:"productId"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	Quantity   int    `json:"quantity"`
}

// Order is an immutable snapshot of a cart at checkout time. Later product
// edits or deletions never alter it.
type Order struct {
	ID         string      `json:"id"`
	UserID     string      `json:"userId"`
	Items      []OrderItem `json:"items"`
	TotalCents int64       `json:"totalCents"`
	Status     OrderStatus `json:"status"`
	Address    string      `json:"address"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// Cancellable reports whether the customer may still cancel the order.
func (o Order) Cancellable() bool {
	return o.Status == StatusPending
}
