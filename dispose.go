// Package dispose aggregates independent cleanup obligations behind one
// handle, so a single trigger at the end of a scope runs every registered
// cleanup in registration order.
package dispose

import (
	"context"
	"errors"

	"github.com/AnatoleLucet/dispose/internal"
)

// Disposer is the synchronous dispose capability an entry can expose.
type Disposer interface {
	Dispose() error
}

// ContextDisposer is the asynchronous dispose capability an entry can expose.
type ContextDisposer interface {
	DisposeContext(ctx context.Context) error
}

// Set holds cleanup entries and runs them all when disposed.
//
// An entry can be a func(), a func() error, a func(context.Context) error,
// or any value implementing Disposer, ContextDisposer or io.Closer. Anything
// else is kept but silently skipped at disposal time. Shapes are checked
// when an entry runs, never when it is added.
//
// A Set is a single-goroutine primitive: it does no locking, no catching,
// no retrying, and no logging of its own.
type Set struct {
	set *internal.Set
}

// NewSet creates a disposal set, optionally seeded with initial entries.
// Duplicate entries (by identity) collapse to one.
func NewSet(entries ...any) *Set {
	return &Set{internal.NewSet(entries)}
}

// Add registers a cleanup entry. Adding an entry that is already in the set
// does nothing.
//
// Entries stay registered after disposal: disposing manually and then again
// at scope exit runs the entry twice unless it was Deleted in between.
func (s *Set) Add(entry any) { s.set.Add(entry) }

// Delete removes an entry by identity, so a resource cleaned up by hand can
// be opted out of the batch before it runs twice. Deleting an absent entry
// does nothing. Funcs compare by func value, so every closure is its own
// entry: pass the same value that was added.
func (s *Set) Delete(entry any) { s.set.Delete(entry) }

// Disposed reports whether a full disposal pass has completed. It starts
// false, flips once, and never resets. An aborted pass leaves it false.
func (s *Set) Disposed() bool { return s.set.Disposed() }

// Len returns the number of registered entries.
func (s *Set) Len() int { return s.set.Len() }

// Dispose runs every entry in registration order and returns the first
// error, skipping whatever comes after it.
//
// Known asymmetry: entries that only expose an async shape are started but
// not awaited here, and their error is dropped. Use DisposeContext when
// completion of async entries matters.
//
// Disposing twice is fine; the second pass runs whatever entries remain.
func (s *Set) Dispose() error { return s.set.Dispose() }

// DisposeContext runs every entry in registration order, waiting for each
// one to finish before starting the next, and returns the first error,
// skipping whatever comes after it. There is no built-in timeout: a hung
// entry hangs the pass unless the entry itself honors ctx.
func (s *Set) DisposeContext(ctx context.Context) error {
	return s.set.DisposeContext(ctx)
}

// Close disposes the set synchronously. It makes a Set an io.Closer, so it
// can sit behind a defer or be registered into a parent Set.
func (s *Set) Close() error { return s.Dispose() }

// With runs fn with a fresh set as the calling goroutine's innermost scope,
// then disposes it synchronously. Errors from fn and from disposal are
// joined.
func With(fn func(s *Set) error) error {
	s := NewSet()

	var err error
	internal.RunScope(s.set, func() {
		err = fn(s)
	})

	return errors.Join(err, s.Dispose())
}

// WithContext runs fn with a fresh set as the calling goroutine's innermost
// scope, then disposes it asynchronously, waiting for every entry. Errors
// from fn and from disposal are joined.
func WithContext(ctx context.Context, fn func(ctx context.Context, s *Set) error) error {
	s := NewSet()

	var err error
	internal.RunScope(s.set, func() {
		err = fn(ctx, s)
	})

	return errors.Join(err, s.DisposeContext(ctx))
}

// Defer registers an entry with the calling goroutine's innermost scope.
// Outside of any scope it does nothing.
func Defer(entry any) {
	if s := internal.CurrentScope(); s != nil {
		s.Add(entry)
	}
}
