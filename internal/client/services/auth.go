// Package services contains the application services of the Safety Tracker
// client. This file defines the authentication service: login, register and
// logout on top of the backend auth endpoints and the session store.
package services

import (
	"context"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/safetytracker/tracker/internal/client/models"
	"github.com/safetytracker/tracker/internal/common"
	"github.com/safetytracker/tracker/internal/logging"
)

// AuthAPI is the backend side of authentication; *client.AuthClient
// implements it.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, r models.Registration) (string, error)
}

// IdentityResolver derives the user from a freshly issued token.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, credential string) (models.Identity, error)
}

// SessionWriter is the part of *session.Store that changes the user.
type SessionWriter interface {
	SignIn(ctx context.Context, identity models.Identity, credential string) error
	SignOut(ctx context.Context) error
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: validate the form, exchange it for a token, sign the user in.
//   - Register: validate the form, create the account, sign the new user in.
//   - Logout: sign out; the persisted credential is deleted.
//
// Validation failures are *common.ValidationError and never reach the backend.
type AuthService interface {
	Login(ctx context.Context, email, password string) (models.Identity, error)
	Register(ctx context.Context, r models.Registration) (models.Identity, error)
	Logout(ctx context.Context) error
}

type authService struct {
	api      AuthAPI
	resolver IdentityResolver
	session  SessionWriter
	logger   logging.Logger
}

func NewAuthService(api AuthAPI, resolver IdentityResolver, session SessionWriter, logger logging.Logger) AuthService {
	return &authService{api: api, resolver: resolver, session: session, logger: logger}
}

func (a *authService) Login(ctx context.Context, email, password string) (models.Identity, error) {
	email = strings.TrimSpace(email)
	err := validation.Errors{
		"email":    validation.Validate(email, validation.Required, is.EmailFormat),
		"password": validation.Validate(password, validation.Required),
	}.Filter()
	if err != nil {
		return models.Identity{}, common.Invalid(err)
	}

	token, err := a.api.Login(ctx, email, password)
	if err != nil {
		return models.Identity{}, fmt.Errorf("login error: %w", err)
	}
	return a.signIn(ctx, token)
}

func (a *authService) Register(ctx context.Context, r models.Registration) (models.Identity, error) {
	r.Email = strings.TrimSpace(r.Email)
	r.Username = strings.TrimSpace(r.Username)
	if err := ValidateRegistration(r); err != nil {
		return models.Identity{}, err
	}

	token, err := a.api.Register(ctx, r)
	if err != nil {
		return models.Identity{}, fmt.Errorf("register error: %w", err)
	}
	return a.signIn(ctx, token)
}

func (a *authService) signIn(ctx context.Context, token string) (models.Identity, error) {
	identity, err := a.resolver.ResolveIdentity(ctx, token)
	if err != nil {
		return models.Identity{}, fmt.Errorf("issued token unusable: %w", err)
	}
	if err := a.session.SignIn(ctx, identity, token); err != nil {
		return models.Identity{}, err
	}
	a.logger.Debug(ctx, "auth service signed in", "user_id", identity.ID)
	return identity, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.SignOut(ctx)
}

// ValidateRegistration checks the sign-up form locally.
func ValidateRegistration(r models.Registration) error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.EmailFormat),
		validation.Field(&r.Username, validation.Required, validation.Length(1, 150)),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 0)),
		validation.Field(&r.PasswordConfirmation, validation.Required,
			validation.In(r.Password).Error("passwords do not match")),
		validation.Field(&r.FirstName, validation.Required),
		validation.Field(&r.LastName, validation.Required),
		validation.Field(&r.ProfileImage, is.URL),
	)
	return common.Invalid(err)
}
