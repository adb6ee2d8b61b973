package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"

	"github.com/forkful/forkful/internal/domain/order"
)

type orderItemRequest struct {
	MenuItem string `json:"menuItem"`
	Quantity int    `json:"quantity"`
}

type paymentDetailsJSON struct {
	CardNumber string `json:"cardNumber"`
	CardExpiry string `json:"cardExpiry"`
	CardCvv    string `json:"cardCvv"`
	NameOnCard string `json:"nameOnCard"`
}

// createOrderRequest mirrors the POST /orders body. TotalAmount is a
// json.Number so it goes over the wire as a bare number. PaymentDetails is
// an explicit null for cash on delivery.
type createOrderRequest struct {
	UserID          string              `json:"userId"`
	RestaurantID    string              `json:"restaurantId"`
	Items           []orderItemRequest  `json:"items"`
	TotalAmount     json.Number         `json:"totalAmount"`
	DeliveryAddress string              `json:"deliveryAddress"`
	PaymentMethod   string              `json:"paymentMethod"`
	PaymentDetails  *paymentDetailsJSON `json:"paymentDetails"`
}

// Create implements order.Store.
func (c *Client) Create(ctx context.Context, d order.Draft) (*order.Ack, error) {
	req := createOrderRequest{
		UserID:          d.UserID,
		RestaurantID:    d.RestaurantID,
		Items:           make([]orderItemRequest, len(d.Items)),
		TotalAmount:     json.Number(d.TotalAmount.String()),
		DeliveryAddress: d.DeliveryAddress,
		PaymentMethod:   string(d.PaymentMethod),
	}
	for i, it := range d.Items {
		req.Items[i] = orderItemRequest{MenuItem: it.MenuItemID, Quantity: it.Quantity}
	}
	if d.Card != nil {
		req.PaymentDetails = &paymentDetailsJSON{
			CardNumber: d.Card.Number,
			CardExpiry: d.Card.Expiry,
			CardCvv:    d.Card.CVV,
			NameOnCard: d.Card.NameOnCard,
		}
	}

	var raw []byte
	if err := c.do(ctx, http.MethodPost, "/orders", "", req, &raw); err != nil {
		return nil, err
	}
	return decodeAck(raw)
}

// ListByUser implements order.Store.
func (c *Client) ListByUser(ctx context.Context, userID string) ([]order.Order, error) {
	var raw []byte
	if err := c.get(ctx, "/orders/"+url.PathEscape(userID), "", &raw); err != nil {
		return nil, err
	}

	var orders []order.Order
	d := jx.DecodeBytes(raw)
	if err := d.Arr(func(d *jx.Decoder) error {
		o, err := decodeOrder(d)
		if err != nil {
			return err
		}
		orders = append(orders, o)
		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "decode orders")
	}
	return orders, nil
}

// Details implements order.Store. token may be empty; when present it is
// sent as a bearer header.
func (c *Client) Details(ctx context.Context, id, token string) (*order.Order, error) {
	var raw []byte
	if err := c.get(ctx, "/orders/details/"+url.PathEscape(id), token, &raw); err != nil {
		return nil, err
	}

	o, err := decodeOrder(jx.DecodeBytes(raw))
	if err != nil {
		return nil, errors.Wrap(err, "decode order")
	}
	return &o, nil
}

// decodeAck parses the {success, message?, order?} creation envelope.
func decodeAck(data []byte) (*order.Ack, error) {
	var ack order.Ack
	d := jx.DecodeBytes(data)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "success":
			v, err := d.Bool()
			ack.Success = v
			return err
		case "message":
			if d.Next() != jx.String {
				return d.Skip()
			}
			s, err := d.Str()
			ack.Message = s
			return err
		case "order":
			if d.Next() != jx.Object {
				return d.Skip()
			}
			return d.Obj(func(d *jx.Decoder, k string) error {
				if k != "_id" {
					return d.Skip()
				}
				s, err := d.Str()
				ack.OrderID = s
				return err
			})
		default:
			return d.Skip()
		}
	}); err != nil {
		return nil, errors.Wrap(err, "decode order ack")
	}
	return &ack, nil
}

// decodeOrder parses an order document leniently: the backend sometimes
// returns references (user, restaurant, menuItem) as bare ids and sometimes
// as populated documents, and omits fields like totalAmount entirely.
func decodeOrder(d *jx.Decoder) (order.Order, error) {
	var o order.Order
	err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "_id":
			s, err := d.Str()
			o.ID = s
			return err
		case "user", "userId":
			switch d.Next() {
			case jx.String:
				s, err := d.Str()
				o.UserID = s
				return err
			case jx.Object:
				return d.Obj(func(d *jx.Decoder, k string) error {
					if k != "_id" {
						return d.Skip()
					}
					s, err := d.Str()
					o.UserID = s
					return err
				})
			default:
				return d.Skip()
			}
		case "restaurant":
			switch d.Next() {
			case jx.String:
				s, err := d.Str()
				o.Restaurant.ID = s
				return err
			case jx.Object:
				return d.Obj(func(d *jx.Decoder, k string) error {
					switch k {
					case "_id":
						s, err := d.Str()
						o.Restaurant.ID = s
						return err
					case "name":
						s, err := d.Str()
						o.Restaurant.Name = s
						return err
					case "address":
						s, err := d.Str()
						o.Restaurant.Address = s
						return err
					default:
						return d.Skip()
					}
				})
			default:
				return d.Skip()
			}
		case "items":
			if d.Next() != jx.Array {
				return d.Skip()
			}
			return d.Arr(func(d *jx.Decoder) error {
				it, err := decodeOrderItem(d)
				if err != nil {
					return err
				}
				o.Items = append(o.Items, it)
				return nil
			})
		case "totalAmount":
			if d.Next() != jx.Number {
				return d.Skip()
			}
			n, err := d.Num()
			if err != nil {
				return err
			}
			v, err := decimal.NewFromString(n.String())
			if err != nil {
				return errors.Wrap(err, "parse totalAmount")
			}
			o.TotalAmount = &v
			return nil
		case "deliveryAddress":
			s, err := d.Str()
			o.DeliveryAddress = s
			return err
		case "paymentMethod":
			s, err := d.Str()
			o.PaymentMethod = order.PaymentMethod(s)
			return err
		case "status":
			s, err := d.Str()
			o.Status = order.Status(s)
			return err
		case "paymentStatus":
			s, err := d.Str()
			o.PaymentStatus = order.PaymentStatus(s)
			return err
		case "orderTime", "createdAt":
			if d.Next() != jx.String {
				return d.Skip()
			}
			s, err := d.Str()
			if err != nil {
				return err
			}
			if ts, perr := time.Parse(time.RFC3339, s); perr == nil && o.OrderTime.IsZero() {
				o.OrderTime = ts
			}
			return nil
		default:
			return d.Skip()
		}
	})
	return o, err
}

func decodeOrderItem(d *jx.Decoder) (order.Item, error) {
	var it order.Item
	err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "menuItem":
			switch d.Next() {
			case jx.String:
				s, err := d.Str()
				it.MenuItem.ID = s
				return err
			case jx.Object:
				return d.Obj(func(d *jx.Decoder, k string) error {
					switch k {
					case "_id":
						s, err := d.Str()
						it.MenuItem.ID = s
						return err
					case "name":
						s, err := d.Str()
						it.MenuItem.Name = s
						return err
					case "price":
						if d.Next() != jx.Number {
							return d.Skip()
						}
						n, err := d.Num()
						if err != nil {
							return err
						}
						v, err := decimal.NewFromString(n.String())
						if err != nil {
							return errors.Wrap(err, "parse price")
						}
						it.MenuItem.Price = v
						return nil
					default:
						return d.Skip()
					}
				})
			default:
				// Deleted menu items arrive as null; the zero value stands in.
				return d.Skip()
			}
		case "quantity":
			v, err := d.Int()
			it.Quantity = v
			return err
		default:
			return d.Skip()
		}
	})
	return it, err
}
