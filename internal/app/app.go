package app

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/go-faster/errors"

	"github.com/forkful/forkful/internal/domain/account"
	"github.com/forkful/forkful/internal/domain/cart"
	"github.com/forkful/forkful/internal/domain/order"
	"github.com/forkful/forkful/internal/domain/restaurant"
	"github.com/forkful/forkful/internal/remote"
	"github.com/forkful/forkful/internal/session"
	"github.com/forkful/forkful/pkg/httpclient"
)

// App wires the remote client, the session store, and the domain services
// behind the CLI subcommands. It is the single wiring point for the client.
type App struct {
	out io.Writer

	sessions    *session.Store
	carts       *cart.Service
	orders      *order.Service
	accounts    *account.Service
	checkouts   order.Store
	restaurants restaurant.Store
}

// New creates the App from configuration. All subcommands share one HTTP
// client with request-id, logging, and tracing transport middleware.
func New(cfg *Config, out io.Writer) *App {
	client := remote.NewClient(cfg.APIBaseURL, &http.Client{
		Timeout: cfg.Timeout,
		Transport: httpclient.Wrap(nil,
			httpclient.RequestID(),
			httpclient.Instrument(),
			httpclient.LogRequests(),
		),
	})
	sessions := session.NewStore(cfg.SessionFile)

	return &App{
		out:         out,
		sessions:    sessions,
		carts:       cart.NewService(client),
		orders:      order.NewService(client),
		accounts:    account.NewService(client, sessions),
		checkouts:   client,
		restaurants: client,
	}
}

// Run dispatches a subcommand. The returned error is the command's failure;
// usage errors are reported as errors too so the process exits nonzero.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return errors.New("missing command")
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login":
		return a.cmdLogin(ctx, rest)
	case "register":
		return a.cmdRegister(ctx, rest)
	case "admin-login":
		return a.cmdAdminLogin(ctx, rest)
	case "logout":
		return a.cmdLogout()
	case "profile":
		return a.cmdProfile(ctx)
	case "restaurants":
		return a.cmdRestaurants(ctx)
	case "cart":
		return a.cmdCart(ctx, rest)
	case "checkout":
		return a.cmdCheckout(ctx, rest)
	case "orders":
		return a.cmdOrders(ctx)
	case "order":
		return a.cmdOrderDetail(ctx, rest)
	case "help", "-h", "--help":
		a.usage()
		return nil
	default:
		a.usage()
		return errors.Errorf("unknown command %q", cmd)
	}
}

func (a *App) usage() {
	fmt.Fprint(a.out, `Usage: forkful <command> [arguments]

Commands:
  login <email> <password>        Log in and store the session
  register [flags]                Create an account (then log in separately)
  admin-login <username> <pass>   Log in as an admin
  logout                          Clear the stored session
  profile                         Show the logged-in user's profile
  restaurants                     List restaurants
  cart                            Show the cart
  cart set <menu-item-id> <qty>   Change a line's quantity
  cart remove <menu-item-id>      Remove a line
  checkout [flags]                Place an order from the cart
  orders                          List your orders
  order <order-id>                Show one order

Configuration comes from FORKFUL_* environment variables or forkful.yaml.
`)
}
