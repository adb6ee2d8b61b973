// Package pricing holds the fixed, client-side price arithmetic. Two
// different formulas coexist on purpose: the cart view adds only the
// delivery fee to the server total, while the order-detail fallback also
// applies tax to a locally recomputed subtotal. Backend business rules own
// the authoritative numbers; these are display values.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/forkful/forkful/internal/domain/cart"
	"github.com/forkful/forkful/internal/domain/order"
)

var (
	// DeliveryFee is the flat fee added to every displayed total.
	DeliveryFee = decimal.RequireFromString("2.99")
	// TaxRate is applied only in the order-detail fallback computation.
	TaxRate = decimal.RequireFromString("0.10")
)

// Subtotal sums unit price times quantity over cart lines.
func Subtotal(lines []cart.Line) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return sum
}

// CartTotal is the displayed cart total: subtotal plus the delivery fee.
// No tax here; that asymmetry with FallbackTotal is observed behavior.
func CartTotal(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Add(DeliveryFee).Round(2)
}

// OrderSubtotal sums menu-item price times quantity over order items.
// A missing menu item contributes zero.
func OrderSubtotal(items []order.Item) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.MenuItem.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sum
}

// Tax is the displayed tax line for the order-detail view.
func Tax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(TaxRate).Round(2)
}

// FallbackTotal is the locally computed order total: subtotal plus tax plus
// the delivery fee. Used only when the backend omitted totalAmount.
func FallbackTotal(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Add(subtotal.Mul(TaxRate)).Add(DeliveryFee).Round(2)
}

// DisplayTotal prefers the authoritative order total and falls back to the
// local computation when the backend omitted it.
func DisplayTotal(o *order.Order) decimal.Decimal {
	if o.TotalAmount != nil {
		return *o.TotalAmount
	}
	return FallbackTotal(OrderSubtotal(o.Items))
}

// ItemCount sums quantities over order items.
func ItemCount(items []order.Item) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}
