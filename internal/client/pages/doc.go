// Package pages contains the page controllers the client mounts: one per
// screen. A controller owns the page state, calls the backend through small
// interfaces, and exposes a View snapshot for rendering.
//
// Entity pages (a single Story or CheckIn) share Controller, which loads the
// entity together with its lookups, gates editing and deletion on ownership,
// and keeps an edit draft separate from the last good entity:
//
//	Init -> Loading -> Viewing | LoadError
//	Viewing -> Editing         only for the owner
//	Editing -> Viewing         submit ok, or cancel
//	Editing -> Editing         submit failed; draft kept, error set
//	Viewing -> Deleted         delete confirmed and ok; navigates to the listing
//
// Failures never panic; they end up in View.Err.
package pages
