package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/safetytracker/tracker/internal/client/models"
	"github.com/safetytracker/tracker/internal/common"
)

// trackerClaims is the payload the backend signs into its tokens.
type trackerClaims struct {
	UserID      int64  `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name,omitempty"`
	jwt.RegisteredClaims
}

// TokenIdentityResolver reads the user out of a bearer token. The signature
// is not checked here: the client does not hold the signing key and the
// backend verifies every request anyway. Expiry is checked so a stale token
// does not show a signed-in user the backend would reject.
type TokenIdentityResolver struct {
	parser *jwt.Parser
	now    func() time.Time
}

func NewTokenIdentityResolver() *TokenIdentityResolver {
	return &TokenIdentityResolver{parser: jwt.NewParser(), now: time.Now}
}

func (r *TokenIdentityResolver) ResolveIdentity(ctx context.Context, credential string) (models.Identity, error) {
	claims := &trackerClaims{}
	if _, _, err := r.parser.ParseUnverified(credential, claims); err != nil {
		return models.Identity{}, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if claims.UserID <= 0 || claims.Username == "" {
		return models.Identity{}, fmt.Errorf("%w: missing user claims", common.ErrInvalidToken)
	}
	if claims.ExpiresAt != nil && !r.now().Before(claims.ExpiresAt.Time) {
		return models.Identity{}, common.ErrTokenExpired
	}
	return models.Identity{
		ID:          claims.UserID,
		Username:    claims.Username,
		DisplayName: claims.DisplayName,
	}, nil
}
