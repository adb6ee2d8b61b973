package restaurant

import "context"

// PlaceholderImageURL is shown for restaurants without an image of their own.
const PlaceholderImageURL = "https://via.placeholder.com/300x200?text=Restaurant"

// Restaurant is a listing entry. The menu itself is browsed elsewhere; the
// client only renders the catalog card.
type Restaurant struct {
	ID       string
	Name     string
	Address  string
	ImageURL string
}

// Image returns the restaurant's image URL, or the placeholder when unset.
func (r Restaurant) Image() string {
	if r.ImageURL == "" {
		return PlaceholderImageURL
	}
	return r.ImageURL
}

// Store defines the remote restaurant catalog operations. Listing requires
// no authentication.
type Store interface {
	List(ctx context.Context) ([]Restaurant, error)
}
