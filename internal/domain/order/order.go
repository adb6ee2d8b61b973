package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Status is the server-owned order lifecycle state. The client only displays
// it, never drives transitions.
type Status string

const (
	StatusPlaced    Status = "placed"
	StatusPreparing Status = "preparing"
	StatusOnTheWay  Status = "on the way"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// PaymentStatus is the server-owned payment state.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// PaymentMethod selects how an order is paid.
type PaymentMethod string

const (
	PaymentCard           PaymentMethod = "card"
	PaymentCashOnDelivery PaymentMethod = "cod"
)

// MenuItemRef is the menu item embedded in an order line. The backend may
// return it unpopulated (deleted menu items); a zero value then stands in,
// with the price defaulting to 0.
type MenuItemRef struct {
	ID    string
	Name  string
	Price decimal.Decimal
}

// Item is one line of a placed order.
type Item struct {
	MenuItem MenuItemRef
	Quantity int
}

// RestaurantRef identifies the restaurant an order was placed with. The
// backend returns either a bare id or an embedded document; Name and Address
// are empty in the former case.
type RestaurantRef struct {
	ID      string
	Name    string
	Address string
}

// Order is an immutable (from the client's perspective) record created from
// a cart snapshot at checkout. TotalAmount is nil when the backend omitted
// it; displays then fall back to a locally computed total.
type Order struct {
	ID              string
	UserID          string
	Restaurant      RestaurantRef
	Items           []Item
	TotalAmount     *decimal.Decimal
	DeliveryAddress string
	PaymentMethod   PaymentMethod
	Status          Status
	PaymentStatus   PaymentStatus
	OrderTime       time.Time
}

// CardDetails are collected at checkout for card payments. Only presence is
// validated client-side.
type CardDetails struct {
	Number     string
	Expiry     string
	CVV        string
	NameOnCard string
}

// DraftItem references a menu item by id; prices are re-derived server-side.
type DraftItem struct {
	MenuItemID string
	Quantity   int
}

// Draft is the order payload assembled at checkout and submitted as a single
// atomic creation request.
type Draft struct {
	UserID          string
	RestaurantID    string
	Items           []DraftItem
	TotalAmount     decimal.Decimal
	DeliveryAddress string
	PaymentMethod   PaymentMethod
	Card            *CardDetails
}

// Ack is the order-creation response envelope.
type Ack struct {
	Success bool
	Message string
	OrderID string
}

// Store defines the remote order operations.
type Store interface {
	Create(ctx context.Context, draft Draft) (*Ack, error)
	ListByUser(ctx context.Context, userID string) ([]Order, error)
	Details(ctx context.Context, id, token string) (*Order, error)
}
