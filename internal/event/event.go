// Package event provides typed broadcast dispatchers. A dispatcher holds an
// ordered set of listeners and notifies all of them with one argument,
// either inline, on fresh goroutines, or on a shared worker pool. Feature
// code declares a dispatcher per extension point and providers register
// against it, so the caller never knows who is listening.
package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

// ErrNotFound is returned by Remove for a registration that is not (or no
// longer) present.
var ErrNotFound = errors.New("listener not found")

// PanicError wraps a panic raised by a listener so one broken listener
// cannot take down the dispatch.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("listener panic: %v", e.Value)
}

// Listener handles one notification. Listeners on concurrent dispatchers
// must honor ctx so an abandoned notification can stop early.
type Listener[A, R any] func(ctx context.Context, arg A) (R, error)

// Result is the outcome of one listener: a value or an error, never both
// meaningful at once.
type Result[R any] struct {
	Value R
	Err   error
}

// Registration identifies one added listener for later removal.
type Registration struct {
	id uint64
}

func (r *Registration) String() string {
	return fmt.Sprintf("listener#%d", r.id)
}

var registrationIDs atomic.Uint64

// strategy selects how a dispatcher runs its listeners.
type strategy int

const (
	direct strategy = iota
	tasking
	threading
)

type options struct {
	pool *Pool
}

// Option configures a dispatcher at construction.
type Option func(*options)

// WithPool makes a threading dispatcher submit to p instead of creating
// its own pool. The caller keeps ownership of p.
func WithPool(p *Pool) Option {
	return func(o *options) { o.pool = p }
}

// entry is one registered listener. alive is nil for strong
// registrations; for owned ones it reports whether the owner is still
// reachable.
type entry[A, R any] struct {
	reg      *Registration
	fn       Listener[A, R]
	alive    func() bool
	ownerKey any
	fnPtr    uintptr
}

// Event is a broadcast dispatcher for one extension point. The zero value
// is not usable; construct with New, NewTasking or NewThreading.
type Event[A, R any] struct {
	name     string
	strategy strategy

	poolOnce sync.Once
	pool     *Pool
	ownsPool bool

	mu      sync.RWMutex
	entries []*entry[A, R]
}

// New returns a dispatcher that runs listeners inline, one after the
// other, in registration order.
func New[A, R any](name string) *Event[A, R] {
	return &Event[A, R]{name: name, strategy: direct}
}

// NewTasking returns a dispatcher that runs every listener on its own
// goroutine and delivers results in completion order.
func NewTasking[A, R any](name string, opts ...Option) *Event[A, R] {
	e := &Event[A, R]{name: name, strategy: tasking}
	e.configure(opts)
	return e
}

// NewThreading returns a dispatcher that runs listeners on a worker pool
// and delivers results in completion order. Without WithPool the
// dispatcher lazily creates a pool of its own.
func NewThreading[A, R any](name string, opts ...Option) *Event[A, R] {
	e := &Event[A, R]{name: name, strategy: threading}
	e.configure(opts)
	return e
}

func (e *Event[A, R]) configure(opts []Option) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	e.pool = o.pool
}

// Name returns the dispatcher's name.
func (e *Event[A, R]) Name() string { return e.name }

// Add registers fn and returns its registration. The same function can be
// added more than once; each call notifies it one more time.
func (e *Event[A, R]) Add(fn Listener[A, R]) *Registration {
	reg := &Registration{id: registrationIDs.Add(1)}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.entries = append(e.entries, &entry[A, R]{reg: reg, fn: fn})
	return reg
}

// Remove drops the listener identified by reg. Removing a registration
// that was never added, or was already removed, returns ErrNotFound.
func (e *Event[A, R]) Remove(reg *Registration) error {
	if reg == nil {
		return ErrNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, ent := range e.entries {
		if ent.reg == reg {
			e.entries = append(e.entries[:i], e.entries[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Len returns the number of live listeners.
func (e *Event[A, R]) Len() int {
	return len(e.snapshot())
}

// HasListeners reports whether at least one live listener is registered.
// Features use this to decide whether to advertise a capability at all.
func (e *Event[A, R]) HasListeners() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, ent := range e.entries {
		if ent.alive == nil || ent.alive() {
			return true
		}
	}
	return false
}

// Close releases the dispatcher's own pool. Pools passed in through
// WithPool stay open.
func (e *Event[A, R]) Close() {
	if e.ownsPool && e.pool != nil {
		e.pool.Close()
	}
}

// snapshot returns the live listeners in registration order and prunes
// entries whose owner is gone.
func (e *Event[A, R]) snapshot() []*entry[A, R] {
	e.mu.RLock()
	dead := false
	out := make([]*entry[A, R], 0, len(e.entries))
	for _, ent := range e.entries {
		if ent.alive != nil && !ent.alive() {
			dead = true
			continue
		}
		out = append(out, ent)
	}
	e.mu.RUnlock()

	if dead {
		e.prune()
	}
	return out
}

func (e *Event[A, R]) prune() {
	e.mu.Lock()
	defer e.mu.Unlock()
	kept := e.entries[:0]
	for _, ent := range e.entries {
		if ent.alive != nil && !ent.alive() {
			continue
		}
		kept = append(kept, ent)
	}
	e.entries = kept
}

// removeEntry drops the entry holding reg, ignoring absence. Used by the
// owner cleanup, which can race with explicit removal.
func (e *Event[A, R]) removeEntry(reg *Registration) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, ent := range e.entries {
		if ent.reg == reg {
			e.entries = append(e.entries[:i], e.entries[i+1:]...)
			return
		}
	}
}

// workerPool returns the pool to submit to, creating the dispatcher's own
// pool on first use.
func (e *Event[A, R]) workerPool() *Pool {
	e.poolOnce.Do(func() {
		if e.pool == nil {
			e.pool = NewPool(e.name, 0)
			e.ownsPool = true
		}
	})
	return e.pool
}
