package models

import "time"

// Order statuses, as written by the storefront checkout and the admin panel.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// ShippingInfo is the checkout shipping block. Email doubles as the
// customer identity key for aggregation.
type ShippingInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Country  string `json:"country"`
}

// OrderItem is a single line of an order, captured at order time.
type OrderItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Image    string  `json:"image,omitempty"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Order is one record of the append-only order log stored by the
// storefront. Field names match the stored JSON blobs, so records round-trip
// through the store unchanged. Immutable once created except for status
// transitions applied by the admin panel.
type Order struct {
	ID            string       `json:"id"`
	Date          string       `json:"date,omitempty"`
	CreatedAt     string       `json:"createdAt,omitempty"`
	UpdatedAt     string       `json:"updatedAt,omitempty"`
	Shipping      ShippingInfo `json:"shipping"`
	Items         []OrderItem  `json:"items,omitempty"`
	Subtotal      float64      `json:"subtotal"`
	VAT           float64      `json:"vat"`
	Total         float64      `json:"total"`
	Status        string       `json:"status,omitempty"`
	PaymentMethod string       `json:"paymentMethod,omitempty"`
	PaymentStatus string       `json:"paymentStatus,omitempty"`
	TransactionID string       `json:"transactionId,omitempty"`
}

// orderTimeLayouts are the timestamp formats the storefront has written over
// time. RFC3339Nano covers JS toISOString() output.
var orderTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// EffectiveTime resolves the order's effective date: `date` when present,
// else `createdAt`. ok is false when the chosen field is empty or does not
// parse; callers exclude such orders from any date-based computation.
func (o Order) EffectiveTime() (t time.Time, ok bool) {
	raw := o.Date
	if raw == "" {
		raw = o.CreatedAt
	}
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range orderTimeLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// EffectiveStatus returns the order status, defaulting to pending when the
// record predates the status field.
func (o Order) EffectiveStatus() string {
	if o.Status == "" {
		return OrderStatusPending
	}
	return o.Status
}

// UpdateOrderStatusRequest is the admin panel's status transition payload.
// Transition-graph legality is deliberately not enforced here; the admin
// panel may move an order to any of the five states.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending processing shipped completed cancelled"`
}

// UpdateOrderStatusResponse echoes the transitioned order.
type UpdateOrderStatusResponse struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	UpdatedAt string `json:"updated_at"`
}
