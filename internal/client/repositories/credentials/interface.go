// Package credentials persists the bearer credential in the local sqlite
// database so a signed-in session survives restarts.
package credentials

import "context"

// Repository is a small key/value store. Get returns ("", nil) when the key
// is absent.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
