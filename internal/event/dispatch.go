package event

import (
	"context"
	"errors"
	"iter"
	"runtime/debug"
)

// Notify runs every listener with arg and returns their results. Direct
// dispatchers deliver in registration order, concurrent ones in completion
// order. The first listener error stops the dispatch and is returned with
// the results collected so far; remaining concurrent listeners see their
// context canceled.
func (e *Event[A, R]) Notify(ctx context.Context, arg A) ([]Result[R], error) {
	var results []Result[R]
	err := e.dispatch(ctx, arg, false, func(r Result[R]) bool {
		results = append(results, r)
		return true
	})
	return results, err
}

// NotifyAll runs every listener with arg, keeping listener failures as
// error results so one failing listener cannot stop the others. The
// returned error is only ever the context's.
func (e *Event[A, R]) NotifyAll(ctx context.Context, arg A) ([]Result[R], error) {
	var results []Result[R]
	err := e.dispatch(ctx, arg, true, func(r Result[R]) bool {
		results = append(results, r)
		return true
	})
	return results, err
}

// NotifyEach runs every listener with arg and hands each result to on as
// it completes. Listener failures are delivered as error results.
func (e *Event[A, R]) NotifyEach(ctx context.Context, arg A, on func(Result[R])) error {
	return e.dispatch(ctx, arg, true, func(r Result[R]) bool {
		on(r)
		return true
	})
}

// Stream returns an iterator over the listeners' results as they
// complete. Breaking out of the range stops the dispatch; listeners still
// running see their context canceled.
func (e *Event[A, R]) Stream(ctx context.Context, arg A) iter.Seq[Result[R]] {
	return func(yield func(Result[R]) bool) {
		e.dispatch(ctx, arg, true, yield)
	}
}

// dispatch is the single engine behind the notify variants. sink receives
// each result and reports whether to go on. With keepErrors false the
// first listener error aborts the dispatch and is returned.
func (e *Event[A, R]) dispatch(ctx context.Context, arg A, keepErrors bool, sink func(Result[R]) bool) error {
	listeners := e.snapshot()
	if len(listeners) == 0 {
		return ctx.Err()
	}
	if e.strategy == direct {
		return e.dispatchDirect(ctx, arg, listeners, keepErrors, sink)
	}
	return e.dispatchConcurrent(ctx, arg, listeners, keepErrors, sink)
}

func (e *Event[A, R]) dispatchDirect(ctx context.Context, arg A, listeners []*entry[A, R], keepErrors bool, sink func(Result[R]) bool) error {
	for _, ent := range listeners {
		if err := ctx.Err(); err != nil {
			return err
		}
		value, err := safeCall(ctx, ent.fn, arg)
		if errors.Is(err, errOwnerCollected) {
			continue
		}
		if err != nil && !keepErrors {
			return err
		}
		if !sink(Result[R]{Value: value, Err: err}) {
			return nil
		}
	}
	return nil
}

func (e *Event[A, R]) dispatchConcurrent(ctx context.Context, arg A, listeners []*entry[A, R], keepErrors bool, sink func(Result[R]) bool) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// The buffer takes every result, so listeners never block on send
	// even when the dispatch stops reading early.
	ch := make(chan Result[R], len(listeners))
	for _, ent := range listeners {
		fn := ent.fn
		run := func() {
			value, err := safeCall(runCtx, fn, arg)
			ch <- Result[R]{Value: value, Err: err}
		}
		if e.strategy == threading {
			e.workerPool().Submit(run)
		} else {
			go run()
		}
	}

	for range listeners {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case res := <-ch:
			if errors.Is(res.Err, errOwnerCollected) {
				continue
			}
			if res.Err != nil && !keepErrors {
				return res.Err
			}
			if !sink(res) {
				return nil
			}
		}
	}
	return nil
}

// safeCall invokes fn, turning a panic into a PanicError.
func safeCall[A, R any](ctx context.Context, fn Listener[A, R], arg A) (value R, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = &PanicError{Value: v, Stack: debug.Stack()}
		}
	}()
	return fn(ctx, arg)
}
