package remote

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/forkful/forkful/internal/domain/cart"
)

type menuItemJSON struct {
	ID         string          `json:"_id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	ImageURL   string          `json:"imageUrl"`
	Restaurant string          `json:"restaurant"`
}

type cartItemJSON struct {
	ID       string          `json:"_id"`
	MenuItem menuItemJSON    `json:"menuItem"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

type cartResponse struct {
	Items []cartItemJSON  `json:"items"`
	Total decimal.Decimal `json:"total"`
}

type updateQuantityRequest struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
}

// Fetch implements cart.Store.
func (c *Client) Fetch(ctx context.Context, userID string) (*cart.Cart, error) {
	var resp cartResponse
	if err := c.get(ctx, "/cart/"+url.PathEscape(userID), "", &resp); err != nil {
		return nil, err
	}

	out := &cart.Cart{
		Lines: make([]cart.Line, len(resp.Items)),
		Total: resp.Total,
	}
	for i, it := range resp.Items {
		out.Lines[i] = cart.Line{
			ID: it.ID,
			MenuItem: cart.MenuItem{
				ID:           it.MenuItem.ID,
				Name:         it.MenuItem.Name,
				Price:        it.MenuItem.Price,
				ImageURL:     it.MenuItem.ImageURL,
				RestaurantID: it.MenuItem.Restaurant,
			},
			Price:    it.Price,
			Quantity: it.Quantity,
		}
	}
	return out, nil
}

// UpdateQuantity implements cart.Store.
func (c *Client) UpdateQuantity(ctx context.Context, userID, menuItemID string, quantity int) error {
	path := "/cart/" + url.PathEscape(userID) + "/update"
	return c.do(ctx, http.MethodPut, path, "", updateQuantityRequest{
		MenuItemID: menuItemID,
		Quantity:   quantity,
	}, nil)
}

// RemoveItem implements cart.Store.
func (c *Client) RemoveItem(ctx context.Context, userID, menuItemID string) error {
	path := "/cart/" + url.PathEscape(userID) + "/remove/" + url.PathEscape(menuItemID)
	return c.do(ctx, http.MethodDelete, path, "", nil, nil)
}
