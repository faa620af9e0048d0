// Package cli provides the interactive Safety Tracker terminal client.
//
// It wires configuration, the local credential database, the REST client,
// the session store and the page controllers behind a read-eval-print loop.
// Each command mounts a page; protected pages go through an access guard that
// waits for the persisted session to resolve and sends signed-out users to
// the login page.
//
// Key features:
//   - Register / Login / Logout
//   - Stories: list, show, create, edit, delete (owner only)
//   - Authors: list with story counts, show with story excerpts
//   - Check-ins: list, show, create, edit, delete (owner only)
//   - Emergency resources
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
