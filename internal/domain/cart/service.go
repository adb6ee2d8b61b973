package cart

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/forkful/forkful/internal/session"
)

// ErrQuantityTooLow is returned when a quantity below 1 is requested.
// The frontend disables the decrement control at quantity 1, so this is a
// local guard: no request is sent.
var ErrQuantityTooLow = errors.New("quantity must be at least 1")

// Service coordinates cart reads and mutations. Every mutation is followed
// by a fresh read so displayed totals always come from the store of record;
// the pair is one logical transaction even though it is two round trips.
type Service struct {
	store  Store
	tracer trace.Tracer
}

// NewService creates a cart Service over the given Store.
func NewService(store Store) *Service {
	return &Service{
		store:  store,
		tracer: otel.Tracer("forkful/cart"),
	}
}

// Load fetches the current user's cart. Without a user identifier it
// returns session.ErrNotAuthenticated before attempting any request.
func (s *Service) Load(ctx context.Context, sess session.Session) (*Cart, error) {
	if !sess.Authenticated() {
		return nil, session.ErrNotAuthenticated
	}
	c, err := s.store.Fetch(ctx, sess.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "fetch cart")
	}
	return c, nil
}

// SetQuantity updates a line's quantity and re-reads the cart for the
// authoritative total. A failed refetch after a successful update returns an
// error; callers keep rendering their last snapshot.
func (s *Service) SetQuantity(ctx context.Context, sess session.Session, menuItemID string, quantity int) (*Cart, error) {
	if !sess.Authenticated() {
		return nil, session.ErrNotAuthenticated
	}
	if quantity < 1 {
		return nil, ErrQuantityTooLow
	}

	ctx, span := s.tracer.Start(ctx, "cart.SetQuantity")
	defer span.End()

	if err := s.store.UpdateQuantity(ctx, sess.UserID, menuItemID, quantity); err != nil {
		zctx.From(ctx).Warn("Quantity update failed, cart left stale",
			zap.String("menu_item", menuItemID),
			zap.Error(err),
		)
		return nil, errors.Wrap(err, "update quantity")
	}
	return s.refetch(ctx, sess.UserID)
}

// RemoveItem removes a line from the cart and re-reads the cart.
func (s *Service) RemoveItem(ctx context.Context, sess session.Session, menuItemID string) (*Cart, error) {
	if !sess.Authenticated() {
		return nil, session.ErrNotAuthenticated
	}

	ctx, span := s.tracer.Start(ctx, "cart.RemoveItem")
	defer span.End()

	if err := s.store.RemoveItem(ctx, sess.UserID, menuItemID); err != nil {
		zctx.From(ctx).Warn("Item removal failed, cart left stale",
			zap.String("menu_item", menuItemID),
			zap.Error(err),
		)
		return nil, errors.Wrap(err, "remove item")
	}
	return s.refetch(ctx, sess.UserID)
}

func (s *Service) refetch(ctx context.Context, userID string) (*Cart, error) {
	c, err := s.store.Fetch(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "refetch cart")
	}
	return c, nil
}
