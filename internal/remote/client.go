// Package remote implements the domain Store interfaces over the ordering
// service's HTTP JSON API. One Client serves every endpoint; all calls are
// synchronous request/response with no retries.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-faster/errors"

	"github.com/forkful/forkful/internal/domain/account"
	"github.com/forkful/forkful/internal/domain/cart"
	"github.com/forkful/forkful/internal/domain/order"
	"github.com/forkful/forkful/internal/domain/restaurant"
)

// Compile-time checks: the Client is the remote side of every domain store.
var (
	_ cart.Store       = (*Client)(nil)
	_ order.Store      = (*Client)(nil)
	_ account.Store    = (*Client)(nil)
	_ restaurant.Store = (*Client)(nil)
)

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 1 << 20

// Client is an HTTP client for the ordering API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the given base URL. A nil httpClient gets a
// default with a 15 second timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// get issues a GET request. See do for the token and out semantics.
func (c *Client) get(ctx context.Context, path, token string, out any) error {
	return c.do(ctx, http.MethodGet, path, token, nil, out)
}

// do issues a request and decodes the response. token, when non-empty, is
// sent as a bearer Authorization header. body, when non-nil, is JSON
// encoded. out may be nil (response discarded), *[]byte (raw body for
// callers that decode themselves), or a pointer for json.Unmarshal.
// Non-2xx responses become *APIError carrying any server-provided message.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request")
		}
		rd = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return errors.Wrap(err, "create request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "send request")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return errors.Wrap(err, "read response")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &APIError{StatusCode: resp.StatusCode, Message: serverMessage(data)}
	}

	switch v := out.(type) {
	case nil:
		return nil
	case *[]byte:
		*v = data
		return nil
	default:
		if err := json.Unmarshal(data, v); err != nil {
			return errors.Wrap(err, "decode response")
		}
		return nil
	}
}
