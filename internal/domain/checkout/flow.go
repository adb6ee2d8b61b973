package checkout

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/forkful/forkful/internal/domain/cart"
	"github.com/forkful/forkful/internal/domain/order"
	"github.com/forkful/forkful/internal/session"
)

// successRedirectDelay is how long the confirmation stays on screen before
// navigating to the order list. Not cancellable, not configurable.
const successRedirectDelay = 2 * time.Second

const (
	successMessage        = "Order placed successfully!"
	genericRejectMessage  = "Failed to place order"
	genericFailureMessage = "Error placing order. Please try again."
)

// FailedError reports a rejected or failed submission. Message carries the
// text to display: the server's own words when it provided any, a generic
// fallback otherwise.
type FailedError struct {
	Message string
	cause   error
}

func (e *FailedError) Error() string { return e.Message }

func (e *FailedError) Unwrap() error { return e.cause }

// Flow is the checkout state machine for a single cart. It is not safe for
// concurrent use; it models one user's single-threaded screen flow.
type Flow struct {
	orders order.Store

	// Form is edited in place between Begin and Submit.
	Form Form

	// OnSucceeded, when set, receives the confirmation message as soon as
	// the order is accepted: before the redirect delay, so the linger is
	// spent looking at the confirmation rather than at a blank screen.
	OnSucceeded func(message string)

	state   State
	message string
	sleep   func(time.Duration)
}

// NewFlow creates a Flow in the cart state with an empty card-payment form.
func NewFlow(orders order.Store) *Flow {
	return &Flow{
		orders: orders,
		Form:   Form{PaymentMethod: order.PaymentCard},
		state:  StateCart,
		sleep:  time.Sleep,
	}
}

// State returns the current workflow state.
func (fl *Flow) State() State { return fl.state }

// Message returns the status line from the last transition: the success
// confirmation or the failure text to display. Empty before any submit.
func (fl *Flow) Message() string { return fl.message }

// Begin moves from browsing to the checkout form. Explicit user action.
func (fl *Flow) Begin() {
	if fl.state == StateCart {
		fl.state = StateCheckout
	}
}

// Back returns from the checkout form to browsing. Explicit user action.
func (fl *Flow) Back() {
	if fl.state == StateCheckout {
		fl.state = StateCart
	}
}

// Submit assembles the order payload from the cart snapshot and the form,
// and issues the creation request. On success the form is cleared, the
// confirmation is shown for a fixed delay, and navigate (when non-nil) is
// invoked to move to the order list. On any failure the state returns to
// StateCheckout and a *FailedError carries the message to display.
//
// Preconditions checked before any request is sent: the user is logged in,
// the cart is non-empty, the form validates, and all cart lines belong to
// one restaurant.
func (fl *Flow) Submit(ctx context.Context, sess session.Session, c *cart.Cart, navigate func()) error {
	if fl.state != StateCheckout {
		return ErrNotInCheckout
	}
	if !sess.Authenticated() {
		return session.ErrNotAuthenticated
	}
	if c.IsEmpty() {
		return ErrEmptyCart
	}
	if err := fl.Form.Validate(); err != nil {
		return err
	}
	restaurantID, err := singleRestaurant(c)
	if err != nil {
		return err
	}

	fl.state = StateSubmitting
	ack, err := fl.orders.Create(ctx, fl.draft(sess.UserID, restaurantID, c))
	if err != nil {
		fl.state = StateCheckout
		fl.message = failureMessage(err)
		zctx.From(ctx).Warn("Order submission failed", zap.Error(err))
		return &FailedError{Message: fl.message, cause: err}
	}
	if !ack.Success {
		fl.state = StateCheckout
		fl.message = ack.Message
		if fl.message == "" {
			fl.message = genericRejectMessage
		}
		return &FailedError{Message: fl.message}
	}

	fl.Form.Reset()
	fl.state = StateSucceeded
	fl.message = successMessage
	if fl.OnSucceeded != nil {
		fl.OnSucceeded(fl.message)
	}

	// The confirmation lingers before the view moves on.
	fl.sleep(successRedirectDelay)
	if navigate != nil {
		navigate()
	}
	return nil
}

// draft builds the creation payload. The submitted total is the cart total
// exactly as fetched from the backend; the delivery fee is a display-side
// addition and never goes over the wire. The backend stores this value
// verbatim and later displays prefer it, so inflating it here would taint
// every order record.
func (fl *Flow) draft(userID, restaurantID string, c *cart.Cart) order.Draft {
	items := make([]order.DraftItem, len(c.Lines))
	for i, l := range c.Lines {
		items[i] = order.DraftItem{MenuItemID: l.MenuItem.ID, Quantity: l.Quantity}
	}

	d := order.Draft{
		UserID:          userID,
		RestaurantID:    restaurantID,
		Items:           items,
		TotalAmount:     c.Total,
		DeliveryAddress: fl.Form.DeliveryAddress,
		PaymentMethod:   fl.Form.PaymentMethod,
	}
	if fl.Form.PaymentMethod == order.PaymentCard {
		d.Card = &order.CardDetails{
			Number:     fl.Form.CardNumber,
			Expiry:     fl.Form.CardExpiry,
			CVV:        fl.Form.CardCVV,
			NameOnCard: fl.Form.NameOnCard,
		}
	}
	return d
}

// singleRestaurant returns the restaurant shared by every cart line, or
// ErrMixedRestaurants.
func singleRestaurant(c *cart.Cart) (string, error) {
	id := c.Lines[0].MenuItem.RestaurantID
	for _, l := range c.Lines[1:] {
		if l.MenuItem.RestaurantID != id {
			return "", ErrMixedRestaurants
		}
	}
	return id, nil
}

// failureMessage extracts a server-provided message from a transport error,
// falling back to the generic text.
func failureMessage(err error) string {
	var sm interface{ ServerMessage() string }
	if errors.As(err, &sm) && sm.ServerMessage() != "" {
		return sm.ServerMessage()
	}
	return genericFailureMessage
}
