package view

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/forkful/forkful/internal/domain/order"
	"github.com/forkful/forkful/internal/domain/pricing"
)

// shortID trims an order id the way the web client did: the first 8 chars.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func paymentMethodLabel(m order.PaymentMethod) string {
	if m == order.PaymentCashOnDelivery {
		return "Cash on Delivery"
	}
	return "Card"
}

// RenderOrders renders the order history screen.
func RenderOrders(w io.Writer, st State[[]order.Order]) {
	switch st.Kind {
	case KindLoading:
		fmt.Fprintln(w, "Loading...")
	case KindUnauthenticated:
		fmt.Fprintln(w, "Please log in to view your orders.")
	case KindFailed:
		fmt.Fprintf(w, "Failed to load orders: %v\n", st.Err)
	case KindEmpty:
		fmt.Fprintln(w, "You haven't placed any orders yet.")
		fmt.Fprintln(w, "Browse restaurants with: forkful restaurants")
	case KindReady:
		fmt.Fprintln(w, "Your Orders")
		for _, o := range st.Data {
			fmt.Fprintln(w)
			renderOrderCard(w, o)
		}
	}
}

func renderOrderCard(w io.Writer, o order.Order) {
	fmt.Fprintf(w, "Order #%s\t%s\n", shortID(o.ID), titleCase(string(o.Status)))
	if !o.OrderTime.IsZero() {
		fmt.Fprintf(w, "  Placed: %s\n", o.OrderTime.Local().Format("Jan 2, 2006 3:04 PM"))
	}
	for _, it := range o.Items {
		lineTotal := it.MenuItem.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		fmt.Fprintf(w, "  %s x %d\t%s\n", itemName(it), it.Quantity, money(lineTotal))
	}
	if o.TotalAmount != nil {
		fmt.Fprintf(w, "  Total: %s\n", money(*o.TotalAmount))
	}
	fmt.Fprintf(w, "  Payment: %s\n", o.PaymentStatus)
	if o.DeliveryAddress != "" {
		fmt.Fprintf(w, "  Deliver to: %s\n", o.DeliveryAddress)
	}
	if o.Restaurant.Name != "" {
		fmt.Fprintf(w, "  Restaurant: %s\n", o.Restaurant.Name)
	}
	fmt.Fprintf(w, "  Details: forkful order %s\n", o.ID)
}

func itemName(it order.Item) string {
	if it.MenuItem.Name == "" {
		return "Unknown Item"
	}
	return it.MenuItem.Name
}

// RenderOrderDetail renders a single order with the summary block. The
// authoritative totalAmount wins; without it the view falls back to the
// locally computed subtotal + tax + delivery fee.
func RenderOrderDetail(w io.Writer, st State[*order.Order]) {
	switch st.Kind {
	case KindLoading:
		fmt.Fprintln(w, "Loading...")
	case KindUnauthenticated:
		fmt.Fprintln(w, "Please log in to view order details.")
	case KindFailed:
		fmt.Fprintf(w, "Failed to load order details: %v\n", st.Err)
	case KindEmpty:
		fmt.Fprintln(w, "Order not found.")
	case KindReady:
		renderOrderDetail(w, st.Data)
	}
}

func renderOrderDetail(w io.Writer, o *order.Order) {
	fmt.Fprintf(w, "Order #%s\t%s\n", shortID(o.ID), titleCase(string(o.Status)))
	if !o.OrderTime.IsZero() {
		fmt.Fprintf(w, "Placed on %s\n", o.OrderTime.Local().Format("Jan 2, 2006 3:04 PM"))
	}
	fmt.Fprintln(w)

	if len(o.Items) == 0 {
		fmt.Fprintln(w, "No items found in this order.")
	} else {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ITEM\tQTY\tPRICE\tSUBTOTAL")
		for _, it := range o.Items {
			lineTotal := it.MenuItem.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n",
				itemName(it), it.Quantity, money(it.MenuItem.Price), money(lineTotal))
		}
		tw.Flush()
	}

	subtotal := pricing.OrderSubtotal(o.Items)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Order Summary")
	fmt.Fprintf(w, "  Total Items:  %d\n", pricing.ItemCount(o.Items))
	fmt.Fprintf(w, "  Subtotal:     %s\n", money(subtotal))
	fmt.Fprintf(w, "  Tax (10%%):    %s\n", money(pricing.Tax(subtotal)))
	fmt.Fprintf(w, "  Delivery Fee: %s\n", money(pricing.DeliveryFee))
	fmt.Fprintf(w, "  Total Amount: %s\n", money(pricing.DisplayTotal(o)))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Payment Information")
	fmt.Fprintf(w, "  Method: %s\n", paymentMethodLabel(o.PaymentMethod))
	fmt.Fprintf(w, "  Status: %s\n", titleCase(string(o.PaymentStatus)))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Delivery Information")
	if o.DeliveryAddress != "" {
		fmt.Fprintf(w, "  Address: %s\n", o.DeliveryAddress)
	} else {
		fmt.Fprintln(w, "  Address: no address provided")
	}
	if o.Restaurant.Name != "" {
		fmt.Fprintf(w, "  Restaurant: %s\n", o.Restaurant.Name)
		if o.Restaurant.Address != "" {
			fmt.Fprintf(w, "  %s\n", o.Restaurant.Address)
		}
	}
}
