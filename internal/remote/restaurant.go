package remote

import (
	"context"

	"github.com/forkful/forkful/internal/domain/restaurant"
)

type restaurantJSON struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	ImageURL string `json:"imageUrl"`
}

// List implements restaurant.Store.
func (c *Client) List(ctx context.Context) ([]restaurant.Restaurant, error) {
	var resp []restaurantJSON
	if err := c.get(ctx, "/restaurants", "", &resp); err != nil {
		return nil, err
	}

	out := make([]restaurant.Restaurant, len(resp))
	for i, r := range resp {
		out[i] = restaurant.Restaurant{
			ID:       r.ID,
			Name:     r.Name,
			Address:  r.Address,
			ImageURL: r.ImageURL,
		}
	}
	return out, nil
}
