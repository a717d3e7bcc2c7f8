// Package identity resolves the user that module documents are stored
// under. Identities are local: an anonymous identity is minted on first
// use and persisted, and a signed HMAC token can bind the session to a
// named user instead.
package identity

import (
	"context"
	"fmt"
)

// User is a resolved identity.
type User struct {
	UID       string `json:"uid"`
	Anonymous bool   `json:"anonymous"`
}

// State is one auth state emitted on the States channel. A nil User
// means signed out.
type State struct {
	User *User
}

// AuthError reports a sign-in failure with a stable code callers can
// branch on.
type AuthError struct {
	Code string
	Err  error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("auth failed (%s): %v", e.Code, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// Error codes for AuthError.
const (
	CodeInvalidToken = "invalid-token"
	CodeNoSecret     = "no-secret"
	CodeStorage      = "storage"
)

// Provider is the identity source for a session.
//
// States delivers the restored identity as its first value before any
// sign-in call is made; callers must receive that first value before
// reading documents so the storage path is known. Subsequent values
// reflect sign-ins and sign-outs. The channel is closed by Close.
type Provider interface {
	// SignInAnonymously resolves the persisted anonymous identity,
	// minting one on first use.
	SignInAnonymously(ctx context.Context) (*User, error)

	// SignInWithToken verifies a signed token and adopts its subject
	// as the session identity.
	SignInWithToken(ctx context.Context, token string) (*User, error)

	// SignOut clears the session identity. The persisted anonymous
	// identity is kept and resumed by the next anonymous sign-in.
	SignOut(ctx context.Context) error

	// CurrentUser returns the session identity, or nil if signed out.
	CurrentUser() *User

	// States returns the auth state stream.
	States() <-chan State

	// Close releases the provider and closes the state stream.
	Close() error
}
