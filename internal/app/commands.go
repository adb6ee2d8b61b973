package app

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/forkful/forkful/internal/domain/account"
	"github.com/forkful/forkful/internal/domain/checkout"
	"github.com/forkful/forkful/internal/domain/order"
	"github.com/forkful/forkful/internal/view"
)

func (a *App) cmdLogin(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: forkful login <email> <password>")
	}
	sess, err := a.accounts.Login(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Logged in. User id: %s\n", sess.UserID)

	// Move straight to the profile screen, like the post-login navigation.
	p, err := a.accounts.Profile(ctx, sess)
	view.RenderProfile(a.out, view.Classify(p, err, p == nil && err == nil))
	return nil
}

func (a *App) cmdRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(a.out)
	var reg account.Registration
	fs.StringVar(&reg.Name, "name", "", "full name")
	fs.StringVar(&reg.Email, "email", "", "email address")
	fs.IntVar(&reg.Age, "age", 0, "age")
	fs.StringVar(&reg.Gender, "gender", "", "gender")
	fs.StringVar(&reg.ContactNo, "contact", "", "contact number")
	fs.StringVar(&reg.Address, "address", "", "delivery address")
	fs.StringVar(&reg.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if reg.Email == "" || reg.Password == "" {
		return errors.New("register: -email and -password are required")
	}
	if err := a.accounts.Register(ctx, reg); err != nil {
		return err
	}
	// Registration does not issue a session; the user logs in afterwards.
	fmt.Fprintf(a.out, "Account created. Log in with: forkful login %s <password>\n", reg.Email)
	return nil
}

func (a *App) cmdAdminLogin(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: forkful admin-login <username> <password>")
	}
	sess, err := a.accounts.AdminLogin(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Logged in as admin %s.\n", sess.AdminUsername)
	return nil
}

func (a *App) cmdLogout() error {
	if err := a.accounts.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) cmdProfile(ctx context.Context) error {
	sess, err := a.sessions.Load()
	if err != nil {
		return err
	}
	p, err := a.accounts.Profile(ctx, sess)
	view.RenderProfile(a.out, view.Classify(p, err, p == nil && err == nil))
	return nil
}

func (a *App) cmdRestaurants(ctx context.Context) error {
	rs, err := a.restaurants.List(ctx)
	view.RenderRestaurants(a.out, view.Classify(rs, err, len(rs) == 0 && err == nil))
	return nil
}

func (a *App) cmdCart(ctx context.Context, args []string) error {
	sess, err := a.sessions.Load()
	if err != nil {
		return err
	}

	if len(args) == 0 || args[0] == "show" {
		c, err := a.carts.Load(ctx, sess)
		view.RenderCart(a.out, view.Classify(c, err, err == nil && c.IsEmpty()))
		return nil
	}

	switch args[0] {
	case "set":
		if len(args) != 3 {
			return errors.New("usage: forkful cart set <menu-item-id> <qty>")
		}
		qty, err := strconv.Atoi(args[2])
		if err != nil {
			return errors.Wrap(err, "parse quantity")
		}
		c, err := a.carts.SetQuantity(ctx, sess, args[1], qty)
		if err != nil {
			return err
		}
		view.RenderCart(a.out, view.Classify(c, nil, c.IsEmpty()))
		return nil
	case "remove":
		if len(args) != 2 {
			return errors.New("usage: forkful cart remove <menu-item-id>")
		}
		c, err := a.carts.RemoveItem(ctx, sess, args[1])
		if err != nil {
			return err
		}
		view.RenderCart(a.out, view.Classify(c, nil, c.IsEmpty()))
		return nil
	default:
		return errors.Errorf("unknown cart subcommand %q", args[0])
	}
}

func (a *App) cmdCheckout(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("checkout", flag.ContinueOnError)
	fs.SetOutput(a.out)
	var (
		address    = fs.String("address", "", "delivery address")
		payment    = fs.String("payment", "card", "payment method: card or cod")
		cardNumber = fs.String("card-number", "", "card number")
		cardExpiry = fs.String("card-expiry", "", "card expiry (MM/YY)")
		cardCVV    = fs.String("card-cvv", "", "card CVV")
		cardName   = fs.String("card-name", "", "name on card")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	method := order.PaymentMethod(*payment)
	if method != order.PaymentCard && method != order.PaymentCashOnDelivery {
		return errors.Errorf("unknown payment method %q", *payment)
	}

	sess, err := a.sessions.Load()
	if err != nil {
		return err
	}
	c, err := a.carts.Load(ctx, sess)
	if err != nil {
		return err
	}
	view.RenderCheckoutSummary(a.out, c)
	fmt.Fprintln(a.out)

	flow := checkout.NewFlow(a.checkouts)
	// Show the confirmation the moment the order is accepted; the redirect
	// delay then runs with it on screen, before the order list appears.
	flow.OnSucceeded = func(message string) {
		fmt.Fprintln(a.out, message)
	}
	flow.Begin()
	flow.Form = checkout.Form{
		DeliveryAddress: *address,
		PaymentMethod:   method,
		CardNumber:      *cardNumber,
		CardExpiry:      *cardExpiry,
		CardCVV:         *cardCVV,
		NameOnCard:      *cardName,
	}

	fmt.Fprintln(a.out, "Placing your order...")
	err = flow.Submit(ctx, sess, c, func() {
		a.showOrders(ctx)
	})
	if err != nil {
		var failed *checkout.FailedError
		if errors.As(err, &failed) {
			fmt.Fprintln(a.out, failed.Message)
		}
		return err
	}
	return nil
}

func (a *App) cmdOrders(ctx context.Context) error {
	sess, err := a.sessions.Load()
	if err != nil {
		return err
	}
	list, err := a.orders.List(ctx, sess)
	view.RenderOrders(a.out, view.Classify(list, err, err == nil && len(list) == 0))
	return nil
}

func (a *App) cmdOrderDetail(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: forkful order <order-id>")
	}
	sess, err := a.sessions.Load()
	if err != nil {
		return err
	}
	o, err := a.orders.Details(ctx, sess, args[0])
	view.RenderOrderDetail(a.out, view.Classify(o, err, err == nil && o == nil))
	return nil
}

// showOrders renders the order list after a successful checkout, mirroring
// the post-confirmation navigation. Failures here only log: the order has
// already been placed.
func (a *App) showOrders(ctx context.Context) {
	sess, err := a.sessions.Load()
	if err != nil {
		zctx.From(ctx).Warn("Load session after checkout", zap.Error(err))
		return
	}
	list, err := a.orders.List(ctx, sess)
	view.RenderOrders(a.out, view.Classify(list, err, err == nil && len(list) == 0))
}
