package store

import (
	"context"
	"sync"

	"github.com/abhisek/pathwise/internal/modules"
)

// Subscription is a cancellable handle on a module collection stream.
// Snapshots of the full collection (up to the subscription cap) arrive
// on C after every change. C closes on Unsubscribe, on store shutdown,
// and when a snapshot query fails. Always call Unsubscribe when done:
// the underlying connection is leaked otherwise.
type Subscription struct {
	C <-chan []*modules.Module

	ch     chan []*modules.Module
	cancel func()
	once   sync.Once

	mu     sync.Mutex
	closed bool
}

// Unsubscribe releases the subscription and closes the channel. Pending
// snapshots may still be drained.
func (s *Subscription) Unsubscribe() {
	s.once.Do(s.cancel)
}

// push delivers a snapshot without ever blocking a writer. When the
// consumer lags, the stale pending snapshot is dropped in favor of the
// new one.
func (s *Subscription) push(snap []*modules.Module) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	for {
		select {
		case s.ch <- snap:
			return
		default:
			select {
			case <-s.ch:
			default:
			}
		}
	}
}

func (s *Subscription) markClosed() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	close(s.ch)
}

// notifier fans document changes out to per-collection subscribers.
type notifier struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]*subEntry
	closed bool
}

type subEntry struct {
	appID  string
	userID string
	limit  int
	sub    *Subscription
}

func newNotifier() *notifier {
	return &notifier{subs: make(map[int]*subEntry)}
}

func (n *notifier) subscribe(appID, userID string, limit int) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++

	ch := make(chan []*modules.Module, 1)
	sub := &Subscription{C: ch, ch: ch}
	sub.cancel = func() {
		n.mu.Lock()
		entry, ok := n.subs[id]
		if ok {
			delete(n.subs, id)
		}
		n.mu.Unlock()
		if ok {
			entry.sub.markClosed()
		}
	}

	n.subs[id] = &subEntry{appID: appID, userID: userID, limit: limit, sub: sub}
	return sub
}

// changed queries a fresh snapshot for every subscriber watching the
// given collection and pushes it. Runs asynchronously so mutations
// never wait on subscribers.
func (n *notifier) changed(s *Store, appID, userID string) {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	var targets []*subEntry
	for _, e := range n.subs {
		if e.appID == appID && e.userID == userID {
			targets = append(targets, e)
		}
	}
	n.mu.Unlock()

	if len(targets) == 0 {
		return
	}

	go func() {
		repo := &docRepo{store: s, appID: appID, userID: userID}
		for _, e := range targets {
			snap, err := repo.snapshot(context.Background(), e.limit)
			if err != nil {
				// A subscriber left waiting for a snapshot that will
				// never arrive blocks forever. Close the stream so the
				// failure is observable.
				e.sub.Unsubscribe()
				continue
			}
			e.sub.push(snap)
		}
	}()
}

func (n *notifier) closeAll() {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.closed = true
	entries := make([]*subEntry, 0, len(n.subs))
	for id, e := range n.subs {
		delete(n.subs, id)
		entries = append(entries, e)
	}
	n.mu.Unlock()

	for _, e := range entries {
		e.sub.markClosed()
	}
}
