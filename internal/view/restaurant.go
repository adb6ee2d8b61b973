package view

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/forkful/forkful/internal/domain/restaurant"
)

// RenderRestaurants renders the restaurant list. The list is public, so the
// unauthenticated case never occurs in practice but the switch stays total.
func RenderRestaurants(w io.Writer, st State[[]restaurant.Restaurant]) {
	switch st.Kind {
	case KindLoading:
		fmt.Fprintln(w, "Loading...")
	case KindUnauthenticated:
		fmt.Fprintln(w, "Please log in to view restaurants.")
	case KindFailed:
		fmt.Fprintf(w, "Failed to load restaurants: %v\n", st.Err)
	case KindEmpty:
		fmt.Fprintln(w, "No restaurants available right now.")
	case KindReady:
		fmt.Fprintln(w, "Restaurants")
		fmt.Fprintln(w)
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tADDRESS\tID")
		for _, r := range st.Data {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Name, r.Address, r.ID)
		}
		tw.Flush()
	}
}
