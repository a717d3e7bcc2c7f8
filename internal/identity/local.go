package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const identityFile = "identity.json"

// LocalProvider keeps identities on disk next to the database. The
// anonymous identity survives restarts so a learner's modules stay
// reachable across sessions.
type LocalProvider struct {
	dir    string
	secret []byte

	mu     sync.Mutex
	user   *User
	states chan State
	closed bool
}

// NewLocalProvider creates a provider storing identity state in dir.
// secret is the HMAC key for token sign-in; it may be empty, in which
// case SignInWithToken fails with CodeNoSecret. The restored identity
// (or signed-out state) is emitted as the first value on States.
func NewLocalProvider(dir, secret string) (*LocalProvider, error) {
	p := &LocalProvider{
		dir:    dir,
		secret: []byte(secret),
		states: make(chan State, 8),
	}

	u, err := p.loadPersisted()
	if err != nil {
		return nil, err
	}
	p.user = u
	p.states <- State{User: u}
	return p, nil
}

func (p *LocalProvider) SignInAnonymously(ctx context.Context) (*User, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.user != nil && p.user.Anonymous {
		return p.user, nil
	}

	u, err := p.loadPersisted()
	if err != nil {
		return nil, err
	}
	if u == nil || !u.Anonymous {
		u = &User{UID: "anon-" + uuid.NewString(), Anonymous: true}
		if err := p.persist(u); err != nil {
			return nil, &AuthError{Code: CodeStorage, Err: err}
		}
	}

	p.setUserLocked(u)
	return u, nil
}

func (p *LocalProvider) SignInWithToken(ctx context.Context, token string) (*User, error) {
	if len(p.secret) == 0 {
		return nil, &AuthError{Code: CodeNoSecret, Err: errors.New("PATHWISE_AUTH_SECRET is not set")}
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return p.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, &AuthError{Code: CodeInvalidToken, Err: err}
	}

	sub, err := parsed.Claims.GetSubject()
	if err != nil || sub == "" {
		return nil, &AuthError{Code: CodeInvalidToken, Err: errors.New("token has no subject")}
	}

	u := &User{UID: sub, Anonymous: false}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.setUserLocked(u)
	return u, nil
}

func (p *LocalProvider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.setUserLocked(nil)
	return nil
}

func (p *LocalProvider) CurrentUser() *User {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.user
}

func (p *LocalProvider) States() <-chan State { return p.states }

func (p *LocalProvider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.states)
	}
	return nil
}

// setUserLocked updates the session identity and emits a state. Stale
// states are dropped if the consumer is behind; the latest one always
// fits in the buffer.
func (p *LocalProvider) setUserLocked(u *User) {
	p.user = u
	if p.closed {
		return
	}
	select {
	case p.states <- State{User: u}:
	default:
		select {
		case <-p.states:
		default:
		}
		p.states <- State{User: u}
	}
}

func (p *LocalProvider) loadPersisted() (*User, error) {
	data, err := os.ReadFile(filepath.Join(p.dir, identityFile))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &AuthError{Code: CodeStorage, Err: err}
	}
	var u User
	if err := json.Unmarshal(data, &u); err != nil {
		// A corrupt identity file is discarded; a fresh anonymous
		// identity will be minted on the next sign-in.
		return nil, nil
	}
	return &u, nil
}

func (p *LocalProvider) persist(u *User) error {
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(u, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(p.dir, identityFile), data, 0o600)
}
