// Package appstate is the gateway's equivalent of the browser's local
// storage: a small key-value store holding the auth token, current user,
// pending search, and signup wizard progress. All reads and writes go
// through one typed, versioned boundary so schema drift and corrupt
// payloads are handled in a single place.
package appstate

import "context"

// Storage keys. Session-scoped values (return URL, post-login action) share
// the same store; concurrent writers are last-write-wins.
const (
	KeyAuthToken       = "authToken"
	KeyCurrentUser     = "currentUser"
	KeyPendingSearch   = "pendingServiceSearch"
	KeySignupForm      = "providerSignupFormState"
	KeySignupStep      = "providerSignupCurrentStep"
	KeyReturnURL       = "returnUrl"
	KeyPostLoginAction = "postLoginAction"
)

// Store is the raw byte-oriented backend. Implementations: Badger (embedded,
// default), Redis (shared deployment), and in-memory (tests).
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}
