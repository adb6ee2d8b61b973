package remote

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-faster/errors"

	"github.com/forkful/forkful/internal/domain/account"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	User  *struct {
		ID string `json:"_id"`
	} `json:"user"`
}

// Login implements account.Store.
func (c *Client) Login(ctx context.Context, email, password string) (*account.LoginResult, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/login", "", loginRequest{
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.User == nil || resp.User.ID == "" {
		return nil, errors.New("login response is missing the user identity")
	}
	return &account.LoginResult{Token: resp.Token, UserID: resp.User.ID}, nil
}

type registerRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
	ContactNo string `json:"contactno"`
	Address   string `json:"address"`
	Password  string `json:"password"`
}

// Register implements account.Store.
func (c *Client) Register(ctx context.Context, reg account.Registration) error {
	return c.do(ctx, http.MethodPost, "/register", "", registerRequest{
		Name:      reg.Name,
		Email:     reg.Email,
		Age:       reg.Age,
		Gender:    reg.Gender,
		ContactNo: reg.ContactNo,
		Address:   reg.Address,
		Password:  reg.Password,
	}, nil)
}

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type adminLoginResponse struct {
	Token string `json:"token"`
	Admin *struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	} `json:"admin"`
}

// AdminLogin implements account.Store.
func (c *Client) AdminLogin(ctx context.Context, username, password string) (*account.AdminLoginResult, error) {
	var resp adminLoginResponse
	err := c.do(ctx, http.MethodPost, "/admin/login", "", adminLoginRequest{
		Username: username,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Admin == nil {
		return nil, errors.New("admin login response is missing the admin identity")
	}
	return &account.AdminLoginResult{
		Token:    resp.Token,
		AdminID:  resp.Admin.ID,
		Username: resp.Admin.Username,
	}, nil
}

type profileResponse struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
	ContactNo string `json:"contactno"`
	Address   string `json:"address"`
}

// Profile implements account.Store.
func (c *Client) Profile(ctx context.Context, userID string) (*account.Profile, error) {
	var resp profileResponse
	if err := c.get(ctx, "/users/"+url.PathEscape(userID), "", &resp); err != nil {
		return nil, err
	}
	return &account.Profile{
		Name:      resp.Name,
		Email:     resp.Email,
		Age:       resp.Age,
		Gender:    resp.Gender,
		ContactNo: resp.ContactNo,
		Address:   resp.Address,
	}, nil
}
