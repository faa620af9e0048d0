// Package common contains shared constants and sentinel errors used across
// the Safety Tracker client packages.
package common

// CredentialKey is the fixed storage key under which the bearer credential
// is persisted between runs.
const CredentialKey = "token"

// AuthorizationHeaderName carries the bearer credential on outbound requests.
const AuthorizationHeaderName = "Authorization"

// RequestIDHeaderName carries a per-request correlation id.
const RequestIDHeaderName = "X-Request-ID"

// SignInPath is where unauthorized visitors are redirected.
const SignInPath = "/login"
