package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/safetytracker/tracker/internal/client/client"
	"github.com/safetytracker/tracker/internal/client/models"
	"github.com/safetytracker/tracker/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// readSecret reads a password without echo when stdin is a terminal and as a
// plain line otherwise (piped input).
func (a *App) readSecret(label string) ([]byte, error) {
	if isTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(a.out, label)
		return getPassword(a.out)
	}
	text, err := getSimpleText(a.reader, label, a.out)
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

// Register prompts for the sign-up form and creates the account. On success
// the new user is signed in.
func (a *App) Register(ctx context.Context) error {
	var r models.Registration
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Enter email", &r.Email},
		{"Enter username", &r.Username},
		{"Enter first name", &r.FirstName},
		{"Enter last name", &r.LastName},
		{"Profile image URL (optional)", &r.ProfileImage},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	password, err := a.readSecret("Choose a password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	confirmation, err := a.readSecret("Repeat the password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirmation)
	r.Password, r.PasswordConfirmation = string(password), string(confirmation)

	identity, err := a.auth.Register(ctx, r)
	if err != nil {
		fmt.Fprintln(a.out, "Registration unsuccessful:", loginMessage(err))
		return err
	}

	fmt.Fprintf(a.out, "Success! Welcome, %s\n", identity.Username)
	return nil
}

// Login prompts for email and password and signs the user in.
//
// The input buffer holding the password is zeroed before returning; the
// string copy handed to the auth service is not. A backend that cannot be
// reached is reported as such; there is no offline mode.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := a.readSecret("Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	identity, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		a.logger.Info(ctx, "login unsuccessful", "error", err.Error())
		fmt.Fprintln(a.out, "Login unsuccessful:", loginMessage(err))
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s\n", identity.Username)
	return nil
}

func loginMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrValidation):
		return err.Error()
	case client.IsUnavailable(err):
		return "server unavailable, try again later"
	case errors.Is(err, client.ErrUnauthorized):
		return "wrong email or password"
	default:
		var rf *client.RequestFailure
		if errors.As(err, &rf) && rf.Message != "" {
			return rf.Message
		}
		return err.Error()
	}
}

// Logout signs out and deletes the persisted credential. The mounted page
// is dropped by the session subscription.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.report(err)
		return err
	}
	fmt.Fprintln(a.out, "Signed out")
	return nil
}
