package client

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/swift-aid/admin-console/models"
)

// Login authenticates against the admin login route and returns the
// flattened identity and bearer token. The session container decides what to
// do with them, this call stores nothing.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (models.Admin, string, error) {
	var lr models.LoginResponse
	err := c.do(ctx, http.MethodPost, "/admin/auth/login", nil, creds, false, "Login failed", &lr)
	if err != nil {
		return models.Admin{}, "", err
	}
	zap.S().Debugw("login succeeded", "email", creds.Email)
	return lr.User(), lr.Token, nil
}
