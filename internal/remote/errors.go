package remote

import (
	"fmt"

	"github.com/go-faster/jx"
)

// APIError is a non-2xx response from the backend. Message holds the
// server-provided message when the body carried one, so callers can surface
// it verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("api: unexpected status %d", e.StatusCode)
}

// ServerMessage returns the server-provided message verbatim, or empty.
func (e *APIError) ServerMessage() string { return e.Message }

// serverMessage extracts a message from an error response body. The backend
// is inconsistent about the field name: order endpoints use "message", auth
// endpoints use "error". "message" wins when both are present.
func serverMessage(data []byte) string {
	d := jx.DecodeBytes(data)
	if d.Next() != jx.Object {
		return ""
	}
	var message, errText string
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "message":
			if d.Next() != jx.String {
				return d.Skip()
			}
			s, err := d.Str()
			message = s
			return err
		case "error":
			if d.Next() != jx.String {
				return d.Skip()
			}
			s, err := d.Str()
			errText = s
			return err
		default:
			return d.Skip()
		}
	}); err != nil {
		return ""
	}
	if message != "" {
		return message
	}
	return errText
}
