package view

import (
	"bytes"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/forkful/forkful/internal/domain/account"
	"github.com/forkful/forkful/internal/domain/cart"
	"github.com/forkful/forkful/internal/domain/order"
	"github.com/forkful/forkful/internal/domain/restaurant"
	"github.com/forkful/forkful/internal/session"
)

func mustDec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", s, err)
	}
	return d
}

func render(fn func(*bytes.Buffer)) string {
	var buf bytes.Buffer
	fn(&buf)
	return buf.String()
}

func TestClassify(t *testing.T) {
	t.Run("not authenticated", func(t *testing.T) {
		st := Classify[*cart.Cart](nil, errors.Wrap(session.ErrNotAuthenticated, "load cart"), false)
		assert.Equal(t, KindUnauthenticated, st.Kind)
	})
	t.Run("failed", func(t *testing.T) {
		err := errors.New("boom")
		st := Classify[*cart.Cart](nil, err, false)
		assert.Equal(t, KindFailed, st.Kind)
		assert.Equal(t, err, st.Err)
	})
	t.Run("empty", func(t *testing.T) {
		st := Classify(&cart.Cart{}, nil, true)
		assert.Equal(t, KindEmpty, st.Kind)
	})
	t.Run("ready", func(t *testing.T) {
		c := &cart.Cart{Total: decimal.NewFromInt(5)}
		st := Classify(c, nil, false)
		assert.Equal(t, KindReady, st.Kind)
		assert.Equal(t, c, st.Data)
	})
}

func TestRenderCart(t *testing.T) {
	t.Run("loading", func(t *testing.T) {
		out := render(func(buf *bytes.Buffer) { RenderCart(buf, Loading[*cart.Cart]()) })
		assert.Contains(t, out, "Loading...")
	})
	t.Run("unauthenticated", func(t *testing.T) {
		out := render(func(buf *bytes.Buffer) { RenderCart(buf, Unauthenticated[*cart.Cart]()) })
		assert.Contains(t, out, "Please log in to view your cart.")
	})
	t.Run("failed", func(t *testing.T) {
		out := render(func(buf *bytes.Buffer) {
			RenderCart(buf, Failed[*cart.Cart](errors.New("connection refused")))
		})
		assert.Contains(t, out, "Failed to load your cart: connection refused")
	})
	t.Run("empty", func(t *testing.T) {
		out := render(func(buf *bytes.Buffer) { RenderCart(buf, Empty[*cart.Cart]()) })
		assert.Contains(t, out, "Your cart is empty.")
		assert.Contains(t, out, "forkful restaurants")
	})
	t.Run("ready", func(t *testing.T) {
		c := &cart.Cart{
			Lines: []cart.Line{{
				ID:       "line-1",
				MenuItem: cart.MenuItem{ID: "m1", Name: "Margherita", Price: mustDec(t, "10.00")},
				Price:    mustDec(t, "10.00"),
				Quantity: 3,
			}},
			Total: mustDec(t, "30.00"),
		}
		out := render(func(buf *bytes.Buffer) { RenderCart(buf, Ready(c)) })
		assert.Contains(t, out, "Margherita")
		assert.Contains(t, out, "$30.00")
		// Cart total is subtotal plus the flat delivery fee, no tax.
		assert.Contains(t, out, "Delivery Fee: $2.99")
		assert.Contains(t, out, "Total:        $32.99")
	})
}

func TestRenderOrders(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		out := render(func(buf *bytes.Buffer) { RenderOrders(buf, Empty[[]order.Order]()) })
		assert.Contains(t, out, "You haven't placed any orders yet.")
	})
	t.Run("ready", func(t *testing.T) {
		total := mustDec(t, "32.99")
		orders := []order.Order{{
			ID:     "64f1c2d3e4a5b6c7d8e9f0a1",
			Status: order.StatusPlaced,
			Items: []order.Item{{
				MenuItem: order.MenuItemRef{ID: "m1", Name: "Margherita", Price: mustDec(t, "10.00")},
				Quantity: 3,
			}},
			TotalAmount:     &total,
			PaymentStatus:   order.PaymentCompleted,
			DeliveryAddress: "12 Main St",
			Restaurant:      order.RestaurantRef{Name: "Luigi's"},
			OrderTime:       time.Date(2025, 3, 14, 18, 30, 0, 0, time.UTC),
		}}
		out := render(func(buf *bytes.Buffer) { RenderOrders(buf, Ready(orders)) })
		assert.Contains(t, out, "Order #64f1c2d3") // 8-char id prefix
		assert.Contains(t, out, "Placed")
		assert.Contains(t, out, "Margherita x 3")
		assert.Contains(t, out, "$30.00")
		assert.Contains(t, out, "Total: $32.99")
		assert.Contains(t, out, "12 Main St")
		assert.Contains(t, out, "Luigi's")
	})
}

func TestRenderOrderDetail(t *testing.T) {
	t.Run("no items", func(t *testing.T) {
		o := &order.Order{ID: "abc12345ff", Status: order.StatusPlaced}
		out := render(func(buf *bytes.Buffer) { RenderOrderDetail(buf, Ready(o)) })
		assert.Contains(t, out, "No items found in this order.")
		assert.Contains(t, out, "Total Items:  0")
	})
	t.Run("fallback total when backend omits totalAmount", func(t *testing.T) {
		o := &order.Order{
			ID: "abc12345ff",
			Items: []order.Item{
				{MenuItem: order.MenuItemRef{Name: "Pasta", Price: mustDec(t, "5.00")}, Quantity: 2},
				{MenuItem: order.MenuItemRef{Name: "Salad", Price: mustDec(t, "3.50")}, Quantity: 1},
			},
			PaymentMethod: order.PaymentCashOnDelivery,
			PaymentStatus: order.PaymentPending,
		}
		out := render(func(buf *bytes.Buffer) { RenderOrderDetail(buf, Ready(o)) })
		assert.Contains(t, out, "Subtotal:     $13.50")
		assert.Contains(t, out, "Tax (10%):    $1.35")
		assert.Contains(t, out, "Delivery Fee: $2.99")
		assert.Contains(t, out, "Total Amount: $17.84")
		assert.Contains(t, out, "Method: Cash on Delivery")
		assert.Contains(t, out, "Status: Pending")
	})
	t.Run("authoritative total wins", func(t *testing.T) {
		total := mustDec(t, "99.00")
		o := &order.Order{
			ID: "abc12345ff",
			Items: []order.Item{
				{MenuItem: order.MenuItemRef{Name: "Pasta", Price: mustDec(t, "5.00")}, Quantity: 2},
			},
			TotalAmount:   &total,
			PaymentMethod: order.PaymentCard,
		}
		out := render(func(buf *bytes.Buffer) { RenderOrderDetail(buf, Ready(o)) })
		assert.Contains(t, out, "Total Amount: $99.00")
		assert.Contains(t, out, "Method: Card")
	})
}

func TestRenderRestaurants(t *testing.T) {
	rs := []restaurant.Restaurant{
		{ID: "r1", Name: "Luigi's", Address: "12 Main St"},
		{ID: "r2", Name: "Taco Shed"},
	}
	out := render(func(buf *bytes.Buffer) { RenderRestaurants(buf, Ready(rs)) })
	assert.Contains(t, out, "Luigi's")
	assert.Contains(t, out, "Taco Shed")
	assert.Contains(t, out, "r2")
}

func TestRenderProfile(t *testing.T) {
	p := &account.Profile{
		Name:      "Ada",
		Email:     "ada@example.com",
		Age:       30,
		ContactNo: "5551234",
	}
	out := render(func(buf *bytes.Buffer) { RenderProfile(buf, Ready(p)) })
	assert.Contains(t, out, "Ada")
	assert.Contains(t, out, "ada@example.com")
	assert.Contains(t, out, "5551234")
	assert.NotContains(t, out, "Address:")
}
