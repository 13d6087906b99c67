package internal

import (
	"context"
	"io"
)

// Disposer is the synchronous dispose capability an entry can expose.
type Disposer interface {
	Dispose() error
}

// ContextDisposer is the asynchronous dispose capability an entry can expose.
type ContextDisposer interface {
	DisposeContext(ctx context.Context) error
}

type action struct {
	run func(ctx context.Context) error

	// async actions are started but not awaited by a sync pass
	async bool
}

type mode int

const (
	syncPass mode = iota
	asyncPass
)

// resolve turns a raw entry into a runnable action. Shape checks happen
// here, at execution time, and nowhere else: what the entry looked like
// when it was added is irrelevant. Unrecognized shapes resolve to nothing.
//
// A both-capable object keeps its capability kinds apart: a sync pass picks
// the sync capability, an async pass the async one.
func resolve(entry any, m mode) *action {
	switch fn := entry.(type) {
	case func():
		return &action{run: func(context.Context) error { fn(); return nil }}
	case func() error:
		return &action{run: func(context.Context) error { return fn() }}
	case func(context.Context) error:
		return &action{run: fn, async: true}
	}

	if m == asyncPass {
		if d, ok := entry.(ContextDisposer); ok {
			return &action{run: d.DisposeContext, async: true}
		}
	}

	if d, ok := entry.(Disposer); ok {
		return &action{run: func(context.Context) error { return d.Dispose() }}
	}
	if c, ok := entry.(io.Closer); ok {
		return &action{run: func(context.Context) error { return c.Close() }}
	}

	if m == syncPass {
		if d, ok := entry.(ContextDisposer); ok {
			return &action{run: d.DisposeContext, async: true}
		}
	}

	return nil
}
