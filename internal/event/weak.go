package event

import (
	"context"
	"errors"
	"reflect"
	"runtime"
	"weak"
)

// errOwnerCollected marks a call that hit an owned listener whose owner
// was freed between snapshot and invocation. The dispatch drops such
// results instead of delivering them.
var errOwnerCollected = errors.New("listener owner collected")

// OwnedListener is a listener expressed as a method on its owner. Using a
// method expression instead of a bound method value keeps the dispatcher
// from holding the owner alive.
type OwnedListener[T, A, R any] func(owner *T, ctx context.Context, arg A) (R, error)

// Owned registers fn against e for as long as owner stays reachable. Once
// the garbage collector frees owner the registration disappears on its
// own, so a provider can hook a dispatcher without arranging removal on
// every teardown path.
//
// Registering the same method for the same owner again returns the
// existing registration instead of adding a second listener.
func Owned[T, A, R any](e *Event[A, R], owner *T, fn OwnedListener[T, A, R]) *Registration {
	wp := weak.Make(owner)
	fnPtr := reflect.ValueOf(fn).Pointer()

	e.mu.Lock()
	for _, ent := range e.entries {
		if ent.ownerKey == any(wp) && ent.fnPtr == fnPtr && ent.alive() {
			reg := ent.reg
			e.mu.Unlock()
			return reg
		}
	}
	reg := &Registration{id: registrationIDs.Add(1)}
	e.entries = append(e.entries, &entry[A, R]{
		reg: reg,
		fn: func(ctx context.Context, arg A) (R, error) {
			o := wp.Value()
			if o == nil {
				var zero R
				return zero, errOwnerCollected
			}
			return fn(o, ctx, arg)
		},
		alive:    func() bool { return wp.Value() != nil },
		ownerKey: wp,
		fnPtr:    fnPtr,
	})
	e.mu.Unlock()

	runtime.AddCleanup(owner, func(r *Registration) { e.removeEntry(r) }, reg)
	return reg
}
