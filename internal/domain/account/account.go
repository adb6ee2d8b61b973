package account

import "context"

// Registration is the sign-up payload. All fields are required by the form.
type Registration struct {
	Name      string
	Email     string
	Age       int
	Gender    string
	ContactNo string
	Address   string
	Password  string
}

// Profile is the user profile as returned by the backend.
type Profile struct {
	Name      string
	Email     string
	Age       int
	Gender    string
	ContactNo string
	Address   string
}

// LoginResult is the issued session identity for a user login.
type LoginResult struct {
	Token  string
	UserID string
}

// AdminLoginResult is the issued session identity for an admin login.
type AdminLoginResult struct {
	Token    string
	AdminID  string
	Username string
}

// Store defines the remote authentication and profile operations.
type Store interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Register(ctx context.Context, reg Registration) error
	AdminLogin(ctx context.Context, username, password string) (*AdminLoginResult, error)
	Profile(ctx context.Context, userID string) (*Profile, error)
}
