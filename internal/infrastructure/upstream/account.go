package upstream

import (
	"context"
	"net/http"

	"github.com/quillboard/quillboard-web/internal/core/ports"
)

// registerRequest is the wire shape for both registration endpoints.
type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterUser calls POST /users/register.
func (c *Client) RegisterUser(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	return c.register(ctx, "register_user", "/users/register", in)
}

// RegisterAdmin calls POST /admin/register. The remote API places no
// restriction on admin self-registration; this client does not add one.
func (c *Client) RegisterAdmin(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	return c.register(ctx, "register_admin", "/admin/register", in)
}

// LoginUser calls POST /users/login.
func (c *Client) LoginUser(ctx context.Context, in ports.LoginInput) (*ports.AuthResult, error) {
	return c.login(ctx, "login_user", "/users/login", in)
}

// LoginAdmin calls POST /admin/login.
func (c *Client) LoginAdmin(ctx context.Context, in ports.LoginInput) (*ports.AuthResult, error) {
	return c.login(ctx, "login_admin", "/admin/login", in)
}

func (c *Client) register(ctx context.Context, operation, path string, in ports.RegisterInput) (*ports.AuthResult, error) {
	req := registerRequest{
		Username: in.Username,
		Email:    in.Email,
		Password: in.Password,
	}
	var out ports.AuthResult
	if err := c.do(ctx, operation, http.MethodPost, path, "", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) login(ctx context.Context, operation, path string, in ports.LoginInput) (*ports.AuthResult, error) {
	req := loginRequest{Email: in.Email, Password: in.Password}
	var out ports.AuthResult
	if err := c.do(ctx, operation, http.MethodPost, path, "", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
