package view

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/forkful/forkful/internal/domain/cart"
	"github.com/forkful/forkful/internal/domain/pricing"
)

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// RenderCart renders the cart screen.
func RenderCart(w io.Writer, st State[*cart.Cart]) {
	switch st.Kind {
	case KindLoading:
		fmt.Fprintln(w, "Loading...")
	case KindUnauthenticated:
		fmt.Fprintln(w, "Please log in to view your cart.")
	case KindFailed:
		fmt.Fprintf(w, "Failed to load your cart: %v\n", st.Err)
	case KindEmpty:
		fmt.Fprintln(w, "Your cart is empty.")
		fmt.Fprintln(w, "Browse restaurants with: forkful restaurants")
	case KindReady:
		renderCartLines(w, st.Data)
		renderCartSummary(w, st.Data)
	}
}

func renderCartLines(w io.Writer, c *cart.Cart) {
	fmt.Fprintln(w, "Your Cart")
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ITEM\tPRICE\tQTY\tSUBTOTAL\tID")
	for _, l := range c.Lines {
		lineTotal := l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
			l.MenuItem.Name, money(l.Price), l.Quantity, money(lineTotal), l.MenuItem.ID)
	}
	tw.Flush()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Change quantities with: forkful cart set <menu-item-id> <qty>")
	fmt.Fprintln(w, "Remove a line with:    forkful cart remove <menu-item-id>")
}

func renderCartSummary(w io.Writer, c *cart.Cart) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Order Summary")
	fmt.Fprintf(w, "  Subtotal:     %s\n", money(c.Total))
	fmt.Fprintf(w, "  Delivery Fee: %s\n", money(pricing.DeliveryFee))
	fmt.Fprintf(w, "  Total:        %s\n", money(pricing.CartTotal(c.Total)))
}

// RenderCheckoutSummary renders the per-line order summary shown next to the
// checkout form.
func RenderCheckoutSummary(w io.Writer, c *cart.Cart) {
	fmt.Fprintln(w, "Checkout")
	fmt.Fprintln(w)
	for _, l := range c.Lines {
		lineTotal := l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
		fmt.Fprintf(w, "  %s x %d\t%s\n", l.MenuItem.Name, l.Quantity, money(lineTotal))
	}
	renderCartSummary(w, c)
}
