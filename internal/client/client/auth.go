package client

import (
	"context"
	"net/http"

	"github.com/safetytracker/tracker/internal/client/models"
	"github.com/safetytracker/tracker/internal/common"
)

const (
	LoginPath    = "/api/auth/login/"
	RegisterPath = "/api/auth/register/"
)

type tokenResponse struct {
	Token string `json:"token"`
}

// AuthClient exchanges user credentials for a bearer token.
type AuthClient struct {
	doer Doer
}

func NewAuthClient(doer Doer) *AuthClient {
	return &AuthClient{doer: doer}
}

func (c *AuthClient) Login(ctx context.Context, email, password string) (string, error) {
	var resp tokenResponse
	in := map[string]string{"email": email, "password": password}
	if err := c.doer.Do(ctx, http.MethodPost, LoginPath, in, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", common.ErrInvalidToken
	}
	return resp.Token, nil
}

func (c *AuthClient) Register(ctx context.Context, r models.Registration) (string, error) {
	var resp tokenResponse
	if err := c.doer.Do(ctx, http.MethodPost, RegisterPath, r, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", common.ErrInvalidToken
	}
	return resp.Token, nil
}
