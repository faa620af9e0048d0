// Package models defines the client-side data models exchanged with the
// Safety Tracker backend.
package models

import (
	"encoding/json"
	"strconv"
)

// Identity is the signed-in user as known to the client.
type Identity struct {
	ID          int64
	Username    string
	DisplayName string
}

// Name returns the display name, falling back to the username.
func (i Identity) Name() string {
	if i.DisplayName != "" {
		return i.DisplayName
	}
	return i.Username
}

// Owner is the user a Story or CheckIn belongs to. The backend sends either
// a nested object or a bare primary key; both decode.
type Owner struct {
	ID       int64  `json:"id"`
	Username string `json:"username,omitempty"`
}

func (o *Owner) UnmarshalJSON(b []byte) error {
	if id, ok := bareID(b); ok {
		*o = Owner{ID: id}
		return nil
	}
	type plain Owner
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*o = Owner(p)
	return nil
}

// Owned is implemented by entities that carry an owner reference.
type Owned interface {
	OwnerID() (int64, bool)
}

func bareID(b []byte) (int64, bool) {
	id, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// Registration is the sign-up form.
type Registration struct {
	Email                string `json:"email"`
	Username             string `json:"username"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
	FirstName            string `json:"first_name"`
	LastName             string `json:"last_name"`
	ProfileImage         string `json:"profile_image,omitempty"`
}
