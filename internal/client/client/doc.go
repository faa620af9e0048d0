// Package client talks to the Safety Tracker REST backend.
//
// # Overview
//
// The package provides:
//  1. HTTPClient, the JSON transport. It attaches the bearer credential taken
//     from a TokenSource and a fresh X-Request-ID to every call, and turns
//     transport errors and non-2xx answers into *RequestFailure.
//  2. Resource[T], the generic list/get/create/update/delete wrapper, and the
//     typed per-entity clients built on it: StoryClient, AuthorClient,
//     CheckInClient. AuthClient covers login and registration.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring the
//     sqlite file and applying embedded goose migrations.
//
// # Error Handling
//
// Every failure is a *RequestFailure carrying the status and the backend's
// message. It unwraps to ErrUnauthorized (401/403), ErrNotFound (404),
// ErrUnavailable (transport failure, 502/503/504) or ErrRequestFailed, so
// callers can use errors.Is. Nothing is retried.
//
// There is no caching: every call goes to the backend.
package client
