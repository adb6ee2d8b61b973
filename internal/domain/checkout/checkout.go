// Package checkout drives the cart-to-order submission workflow as an
// explicit state machine: Cart -> Checkout -> Submitting -> Succeeded, with
// failures returning to Checkout for correction.
package checkout

import (
	"strings"

	"github.com/go-faster/errors"

	"github.com/forkful/forkful/internal/domain/order"
)

// State enumerates the checkout workflow states.
type State int

const (
	// StateCart is the initial browsing/editing state.
	StateCart State = iota
	// StateCheckout shows the address and payment form.
	StateCheckout
	// StateSubmitting means the creation request is in flight; the submit
	// control is disabled.
	StateSubmitting
	// StateSucceeded is terminal: the order was created.
	StateSucceeded
)

func (s State) String() string {
	switch s {
	case StateCart:
		return "cart"
	case StateCheckout:
		return "checkout"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	default:
		return "unknown"
	}
}

// Validation and precondition errors.
var (
	ErrAddressRequired     = errors.New("delivery address is required")
	ErrCardDetailsRequired = errors.New("card details are required for card payment")
	ErrEmptyCart           = errors.New("cart is empty")
	// ErrMixedRestaurants is raised when cart lines span more than one
	// restaurant. The order payload carries a single restaurant id, so a
	// mixed cart cannot be attributed honestly; it is rejected instead of
	// silently charged to the first line's restaurant.
	ErrMixedRestaurants = errors.New("cart contains items from more than one restaurant")
	ErrNotInCheckout    = errors.New("not in the checkout step")
)

// Form holds the checkout input fields. Card fields are only consulted when
// PaymentMethod is card; a cod order never requires them, even if populated.
type Form struct {
	DeliveryAddress string
	PaymentMethod   order.PaymentMethod
	CardNumber      string
	CardExpiry      string
	CardCVV         string
	NameOnCard      string
}

// Reset restores the form to its initial state, card as the default method.
func (f *Form) Reset() {
	*f = Form{PaymentMethod: order.PaymentCard}
}

// Validate checks presence of the required fields. Card number, expiry and
// CVV formats are not validated beyond being non-empty.
func (f *Form) Validate() error {
	if strings.TrimSpace(f.DeliveryAddress) == "" {
		return ErrAddressRequired
	}
	if f.PaymentMethod == order.PaymentCard {
		if f.NameOnCard == "" || f.CardNumber == "" || f.CardExpiry == "" || f.CardCVV == "" {
			return ErrCardDetailsRequired
		}
	}
	return nil
}
