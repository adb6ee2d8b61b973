package cart

import (
	"context"

	"github.com/shopspring/decimal"
)

// MenuItem is the catalog entry a cart line references.
type MenuItem struct {
	ID           string
	Name         string
	Price        decimal.Decimal
	ImageURL     string
	RestaurantID string
}

// Line is one (menu item, unit price, quantity) tuple within a cart.
// Price is the unit price captured when the line was added; Quantity is
// always at least 1.
type Line struct {
	ID       string
	MenuItem MenuItem
	Price    decimal.Decimal
	Quantity int
}

// Cart is the remote cart snapshot for a single user. Total is computed by
// the store of record; the client never derives a trustworthy total without
// re-fetching.
type Cart struct {
	Lines []Line
	Total decimal.Decimal
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Lines) == 0
}

// Store defines the remote cart operations.
type Store interface {
	Fetch(ctx context.Context, userID string) (*Cart, error)
	UpdateQuantity(ctx context.Context, userID, menuItemID string, quantity int) error
	RemoveItem(ctx context.Context, userID, menuItemID string) error
}
