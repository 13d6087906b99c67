package internal

import "context"

// Set is the disposal controller: an insertion-ordered set of cleanup
// entries plus a monotonic disposed flag. It assumes one logical thread of
// control and is not safe for concurrent use.
type Set struct {
	entries  entryList
	disposed bool
}

func NewSet(entries []any) *Set {
	s := &Set{}
	for _, e := range entries {
		s.entries.Add(e)
	}

	return s
}

func (s *Set) Add(entry any)    { s.entries.Add(entry) }
func (s *Set) Delete(entry any) { s.entries.Delete(entry) }
func (s *Set) Disposed() bool   { return s.disposed }
func (s *Set) Len() int         { return s.entries.Len() }

// Dispose runs every entry in insertion order. Async-only entries are
// started on their own goroutine and not awaited; their error is dropped.
// The first error from a sync action aborts the pass before the disposed
// flag is set.
func (s *Set) Dispose() error {
	for entry := range s.entries.Values() {
		act := resolve(entry, syncPass)
		if act == nil {
			continue
		}

		if act.async {
			go func() { _ = act.run(context.Background()) }()
			continue
		}

		if err := act.run(context.Background()); err != nil {
			return err
		}
	}

	s.disposed = true
	return nil
}

// DisposeContext runs every entry in insertion order, waiting for each
// action to finish before starting the next. The first error aborts the
// pass before the disposed flag is set.
func (s *Set) DisposeContext(ctx context.Context) error {
	for entry := range s.entries.Values() {
		act := resolve(entry, asyncPass)
		if act == nil {
			continue
		}

		if err := act.run(ctx); err != nil {
			return err
		}
	}

	s.disposed = true
	return nil
}
