// Package view renders each screen from a closed state variant. Every
// renderer dispatches over exactly five disjoint states (Loading,
// Unauthenticated, Failed, Empty, Ready), so a screen can never conflate
// "please log in" with "something went wrong" or "no data yet".
package view

import (
	"github.com/go-faster/errors"

	"github.com/forkful/forkful/internal/session"
)

// Kind enumerates the disjoint rendering states.
type Kind int

const (
	KindLoading Kind = iota
	KindUnauthenticated
	KindFailed
	KindEmpty
	KindReady
)

// State is the closed variant a renderer consumes. Err is set only for
// KindFailed; Data only for KindReady.
type State[T any] struct {
	Kind Kind
	Err  error
	Data T
}

// Loading is the initial state while a fetch is outstanding.
func Loading[T any]() State[T] { return State[T]{Kind: KindLoading} }

// Unauthenticated prompts for login instead of showing an error banner.
func Unauthenticated[T any]() State[T] { return State[T]{Kind: KindUnauthenticated} }

// Failed shows a load failure.
func Failed[T any](err error) State[T] { return State[T]{Kind: KindFailed, Err: err} }

// Empty is a successful fetch with nothing to show.
func Empty[T any]() State[T] { return State[T]{Kind: KindEmpty} }

// Ready holds fetched data.
func Ready[T any](data T) State[T] { return State[T]{Kind: KindReady, Data: data} }

// Classify maps a service result onto the variant: a missing session becomes
// Unauthenticated, any other error Failed, an empty result Empty.
func Classify[T any](data T, err error, empty bool) State[T] {
	switch {
	case errors.Is(err, session.ErrNotAuthenticated):
		return Unauthenticated[T]()
	case err != nil:
		return Failed[T](err)
	case empty:
		return Empty[T]()
	default:
		return Ready(data)
	}
}
