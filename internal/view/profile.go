package view

import (
	"fmt"
	"io"

	"github.com/forkful/forkful/internal/domain/account"
)

// RenderProfile renders the account profile screen.
func RenderProfile(w io.Writer, st State[*account.Profile]) {
	switch st.Kind {
	case KindLoading:
		fmt.Fprintln(w, "Loading...")
	case KindUnauthenticated:
		fmt.Fprintln(w, "Please log in to view your profile.")
	case KindFailed:
		fmt.Fprintf(w, "Failed to load your profile: %v\n", st.Err)
	case KindEmpty:
		fmt.Fprintln(w, "Profile not found.")
	case KindReady:
		p := st.Data
		fmt.Fprintln(w, "Your Profile")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  Name:    %s\n", p.Name)
		fmt.Fprintf(w, "  Email:   %s\n", p.Email)
		if p.Age > 0 {
			fmt.Fprintf(w, "  Age:     %d\n", p.Age)
		}
		if p.Gender != "" {
			fmt.Fprintf(w, "  Gender:  %s\n", p.Gender)
		}
		if p.ContactNo != "" {
			fmt.Fprintf(w, "  Contact: %s\n", p.ContactNo)
		}
		if p.Address != "" {
			fmt.Fprintf(w, "  Address: %s\n", p.Address)
		}
	}
}
