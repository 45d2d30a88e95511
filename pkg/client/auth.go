package client

import (
	"context"
	"fmt"

	"github.com/naveenspark/folio/pkg/domain"
)

// LoginResult is the response of POST /auth/login.
type LoginResult struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

const loginPath = "/auth/login"

// Login exchanges admin credentials for a bearer token. It does not
// persist anything; the caller hands the token to the session.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var res LoginResult
	body := map[string]string{"email": email, "password": password}
	if err := c.post(ctx, loginPath, body, &res); err != nil {
		return nil, fmt.Errorf("client.Login: %w", err)
	}
	if res.Token == "" {
		return nil, fmt.Errorf("client.Login: response carried no token")
	}
	return &res, nil
}
