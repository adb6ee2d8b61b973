package order

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/forkful/forkful/internal/session"
)

// Service exposes the order history views: the user's order list and single
// order details.
type Service struct {
	store Store
}

// NewService creates an order Service over the given Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// List fetches the current user's orders, newest first as returned by the
// backend. Without a user identifier it returns session.ErrNotAuthenticated.
func (s *Service) List(ctx context.Context, sess session.Session) ([]Order, error) {
	if !sess.Authenticated() {
		return nil, session.ErrNotAuthenticated
	}
	orders, err := s.store.ListByUser(ctx, sess.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "fetch orders")
	}
	return orders, nil
}

// Details fetches a single order. The bearer token is attached when the
// session has one; the request is made either way, matching the backend's
// optional auth on this endpoint.
func (s *Service) Details(ctx context.Context, sess session.Session, id string) (*Order, error) {
	if id == "" {
		return nil, errors.New("order id is required")
	}
	o, err := s.store.Details(ctx, id, sess.Token)
	if err != nil {
		return nil, errors.Wrap(err, "fetch order details")
	}
	return o, nil
}
