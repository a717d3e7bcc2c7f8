package content

import (
	"errors"
	"sync"
)

// ErrGenerationInFlight reports that content generation for a module is
// already running. Callers should wait for the running generation to
// persist its results rather than start a duplicate.
var ErrGenerationInFlight = errors.New("content generation already in progress for this module")

// inflight tracks modules with a running generation so that concurrent
// requests for the same module collapse to a single generation.
type inflight struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func newInflight() *inflight {
	return &inflight{active: make(map[string]struct{})}
}

// tryAcquire marks id as generating. It returns false if a generation
// for id is already running.
func (f *inflight) tryAcquire(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.active[id]; ok {
		return false
	}
	f.active[id] = struct{}{}
	return true
}

func (f *inflight) release(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.active, id)
}
