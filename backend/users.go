package backend

import (
	"context"

	"fundilink/models"
)

// Credentials are the login inputs forwarded upstream.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration are the account-creation inputs forwarded upstream.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	County   string `json:"county,omitempty"`
}

// TokenGrant is the upstream answer to a successful login or registration.
type TokenGrant struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        models.User `json:"user"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, creds Credentials) (*TokenGrant, error) {
	var grant TokenGrant
	if err := c.postJSON(ctx, "/api/users/login", false, creds, &grant); err != nil {
		return nil, err
	}
	return &grant, nil
}

// Register creates an account; the upstream logs the new user straight in.
func (c *Client) Register(ctx context.Context, reg Registration) (*TokenGrant, error) {
	var grant TokenGrant
	if err := c.postJSON(ctx, "/api/users/register", false, reg, &grant); err != nil {
		return nil, err
	}
	return &grant, nil
}

// Me fetches the account behind the current token.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.getJSON(ctx, "/api/users/me", true, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
