package account

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/forkful/forkful/internal/session"
)

// Service handles login, registration and profile access, persisting issued
// identities to the session store. User and admin identities live side by
// side in the same session file; logging in as one never evicts the other.
type Service struct {
	store    Store
	sessions *session.Store
}

// NewService creates an account Service.
func NewService(store Store, sessions *session.Store) *Service {
	return &Service{store: store, sessions: sessions}
}

// Login authenticates the user and saves the issued token and user id.
// The admin side of the session, if any, is preserved.
func (s *Service) Login(ctx context.Context, email, password string) (session.Session, error) {
	res, err := s.store.Login(ctx, email, password)
	if err != nil {
		return session.Session{}, errors.Wrap(err, "login")
	}

	sess, err := s.sessions.Load()
	if err != nil {
		return session.Session{}, errors.Wrap(err, "load session")
	}
	sess.Token = res.Token
	sess.UserID = res.UserID
	if err := s.sessions.Save(sess); err != nil {
		return session.Session{}, errors.Wrap(err, "save session")
	}
	return sess, nil
}

// Register creates a new account. It does not log the user in; the caller
// is expected to proceed to login.
func (s *Service) Register(ctx context.Context, reg Registration) error {
	if err := s.store.Register(ctx, reg); err != nil {
		return errors.Wrap(err, "register")
	}
	return nil
}

// AdminLogin authenticates an admin and saves the admin identity triple,
// preserving the user side of the session.
func (s *Service) AdminLogin(ctx context.Context, username, password string) (session.Session, error) {
	res, err := s.store.AdminLogin(ctx, username, password)
	if err != nil {
		return session.Session{}, errors.Wrap(err, "admin login")
	}

	sess, err := s.sessions.Load()
	if err != nil {
		return session.Session{}, errors.Wrap(err, "load session")
	}
	sess.AdminToken = res.Token
	sess.AdminID = res.AdminID
	sess.AdminUsername = res.Username
	if err := s.sessions.Save(sess); err != nil {
		return session.Session{}, errors.Wrap(err, "save session")
	}
	return sess, nil
}

// Logout invalidates the whole session file.
func (s *Service) Logout() error {
	if err := s.sessions.Clear(); err != nil {
		return errors.Wrap(err, "clear session")
	}
	return nil
}

// Profile fetches the current user's profile. Without a user identifier it
// returns session.ErrNotAuthenticated before attempting the request.
func (s *Service) Profile(ctx context.Context, sess session.Session) (*Profile, error) {
	if !sess.Authenticated() {
		return nil, session.ErrNotAuthenticated
	}
	p, err := s.store.Profile(ctx, sess.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "fetch profile")
	}
	return p, nil
}
