package dispose

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWith(t *testing.T) {
	t.Run("disposes at scope exit", func(t *testing.T) {
		log := []string{}

		err := With(func(s *Set) error {
			s.Add(func() { log = append(log, "cleanup") })

			log = append(log, "working")
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, []string{"working", "cleanup"}, log)
	})

	t.Run("joins fn and disposal errors", func(t *testing.T) {
		errFn := errors.New("fn failed")
		errCleanup := errors.New("cleanup failed")

		err := With(func(s *Set) error {
			s.Add(func() error { return errCleanup })
			return errFn
		})

		assert.ErrorIs(t, err, errFn)
		assert.ErrorIs(t, err, errCleanup)
	})

	t.Run("registers defers on the innermost scope", func(t *testing.T) {
		log := []string{}

		err := With(func(*Set) error {
			Defer(func() { log = append(log, "outer") })

			inner := With(func(*Set) error {
				Defer(func() { log = append(log, "inner") })
				return nil
			})
			assert.NoError(t, inner)

			log = append(log, "between")
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, []string{"inner", "between", "outer"}, log)
	})

	t.Run("a set can nest into a parent set", func(t *testing.T) {
		log := []string{}

		child := NewSet()
		child.Add(func() { log = append(log, "child") })

		err := With(func(s *Set) error {
			s.Add(child) // *Set is itself an entry
			s.Add(func() { log = append(log, "parent") })
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, []string{"child", "parent"}, log)
		assert.True(t, child.Disposed())
	})
}

func TestWithContext(t *testing.T) {
	t.Run("awaits entries at scope exit", func(t *testing.T) {
		flag := false

		err := WithContext(context.Background(), func(ctx context.Context, s *Set) error {
			s.Add(func(context.Context) error {
				time.Sleep(10 * time.Millisecond)
				flag = true
				return nil
			})
			return nil
		})

		assert.NoError(t, err)
		assert.True(t, flag)
	})

	t.Run("joins fn and disposal errors", func(t *testing.T) {
		errFn := errors.New("fn failed")
		errCleanup := errors.New("cleanup failed")

		err := WithContext(context.Background(), func(ctx context.Context, s *Set) error {
			s.Add(&ctxDisposable{fn: func(context.Context) error {
				return errCleanup
			}})
			return errFn
		})

		assert.ErrorIs(t, err, errFn)
		assert.ErrorIs(t, err, errCleanup)
	})
}

func TestDefer(t *testing.T) {
	t.Run("without a scope is a no-op", func(t *testing.T) {
		invoked := false

		Defer(func() { invoked = true })

		assert.False(t, invoked)
	})

	t.Run("scopes are per goroutine", func(t *testing.T) {
		var wg sync.WaitGroup
		invoked := false

		err := With(func(*Set) error {
			wg.Add(1)
			go func() {
				defer wg.Done()

				// this goroutine has no scope of its own
				Defer(func() { invoked = true })
			}()
			wg.Wait()

			return nil
		})

		assert.NoError(t, err)
		assert.False(t, invoked)
	})
}
