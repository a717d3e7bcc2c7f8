package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, secret, sub string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestFirstStateBeforeSignIn(t *testing.T) {
	p, err := NewLocalProvider(t.TempDir(), "")
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	defer p.Close()

	select {
	case state := <-p.States():
		if state.User != nil {
			t.Fatalf("fresh provider should start signed out, got %+v", state.User)
		}
	default:
		t.Fatal("first state must be available without waiting for a sign-in")
	}
}

func TestAnonymousIdentityPersists(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	p1, err := NewLocalProvider(dir, "")
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	u1, err := p1.SignInAnonymously(ctx)
	if err != nil {
		t.Fatalf("anonymous sign-in: %v", err)
	}
	if !u1.Anonymous || u1.UID == "" {
		t.Fatalf("unexpected user: %+v", u1)
	}
	p1.Close()

	// A second provider over the same directory resumes the same identity.
	p2, err := NewLocalProvider(dir, "")
	if err != nil {
		t.Fatalf("reopen provider: %v", err)
	}
	defer p2.Close()

	state := <-p2.States()
	if state.User == nil || state.User.UID != u1.UID {
		t.Fatalf("expected restored identity %q, got %+v", u1.UID, state.User)
	}

	u2, err := p2.SignInAnonymously(ctx)
	if err != nil {
		t.Fatalf("anonymous sign-in after restore: %v", err)
	}
	if u2.UID != u1.UID {
		t.Fatalf("anonymous identity changed across sessions: %q != %q", u2.UID, u1.UID)
	}
}

func TestTokenSignIn(t *testing.T) {
	p, err := NewLocalProvider(t.TempDir(), "test-secret")
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	defer p.Close()

	u, err := p.SignInWithToken(context.Background(), signToken(t, "test-secret", "user-42"))
	if err != nil {
		t.Fatalf("token sign-in: %v", err)
	}
	if u.UID != "user-42" || u.Anonymous {
		t.Fatalf("unexpected user: %+v", u)
	}
	if got := p.CurrentUser(); got == nil || got.UID != "user-42" {
		t.Fatalf("current user = %+v, want user-42", got)
	}
}

func TestTokenSignIn_WrongSecret(t *testing.T) {
	p, err := NewLocalProvider(t.TempDir(), "right-secret")
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	defer p.Close()

	_, err = p.SignInWithToken(context.Background(), signToken(t, "wrong-secret", "user-42"))
	var authErr *AuthError
	if !errors.As(err, &authErr) || authErr.Code != CodeInvalidToken {
		t.Fatalf("expected invalid-token AuthError, got %v", err)
	}
}

func TestTokenSignIn_NoSecret(t *testing.T) {
	p, err := NewLocalProvider(t.TempDir(), "")
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	defer p.Close()

	_, err = p.SignInWithToken(context.Background(), signToken(t, "any", "user-42"))
	var authErr *AuthError
	if !errors.As(err, &authErr) || authErr.Code != CodeNoSecret {
		t.Fatalf("expected no-secret AuthError, got %v", err)
	}
}

func TestTokenSignIn_NoSubject(t *testing.T) {
	p, err := NewLocalProvider(t.TempDir(), "test-secret")
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	defer p.Close()

	_, err = p.SignInWithToken(context.Background(), signToken(t, "test-secret", ""))
	var authErr *AuthError
	if !errors.As(err, &authErr) || authErr.Code != CodeInvalidToken {
		t.Fatalf("expected invalid-token AuthError, got %v", err)
	}
}

func TestSignOutKeepsAnonymousIdentity(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	p, err := NewLocalProvider(dir, "")
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	defer p.Close()

	u1, err := p.SignInAnonymously(ctx)
	if err != nil {
		t.Fatalf("anonymous sign-in: %v", err)
	}
	if err := p.SignOut(ctx); err != nil {
		t.Fatalf("sign out: %v", err)
	}
	if p.CurrentUser() != nil {
		t.Fatal("expected signed-out session")
	}

	u2, err := p.SignInAnonymously(ctx)
	if err != nil {
		t.Fatalf("anonymous re-sign-in: %v", err)
	}
	if u2.UID != u1.UID {
		t.Fatal("anonymous identity must survive sign-out")
	}
}

func TestStatesDeliverSignInTransitions(t *testing.T) {
	p, err := NewLocalProvider(t.TempDir(), "")
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	defer p.Close()

	<-p.States() // initial signed-out state

	u, err := p.SignInAnonymously(context.Background())
	if err != nil {
		t.Fatalf("anonymous sign-in: %v", err)
	}

	select {
	case state := <-p.States():
		if state.User == nil || state.User.UID != u.UID {
			t.Fatalf("expected sign-in state for %q, got %+v", u.UID, state.User)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for sign-in state")
	}
}
