package internal

import (
	"iter"
	"reflect"
	"unsafe"
)

// entryList is the disposal set: insertion-ordered, deduped by identity.
// Iteration is live, so entries added during a pass are visited and entries
// removed during a pass are skipped. Not safe for concurrent use.
type entryList struct {
	nodes []*entryNode

	// number of passes currently iterating; deletions tombstone
	// instead of compacting while this is non-zero
	iterating int
}

type entryNode struct {
	value any
	dead  bool
}

func (l *entryList) Add(v any) {
	if l.find(v) != nil {
		return
	}

	l.nodes = append(l.nodes, &entryNode{value: v})
}

func (l *entryList) Delete(v any) {
	n := l.find(v)
	if n == nil {
		return
	}

	n.dead = true
	if l.iterating == 0 {
		l.compact()
	}
}

func (l *entryList) Len() int {
	count := 0
	for _, n := range l.nodes {
		if !n.dead {
			count++
		}
	}
	return count
}

// Values iterates the live set in insertion order.
func (l *entryList) Values() iter.Seq[any] {
	return func(yield func(any) bool) {
		l.iterating++
		defer func() {
			l.iterating--
			if l.iterating == 0 {
				l.compact()
			}
		}()

		// index-based so entries appended mid-pass are visited too
		for i := 0; i < len(l.nodes); i++ {
			n := l.nodes[i]
			if n.dead {
				continue
			}

			if !yield(n.value) {
				return
			}
		}
	}
}

func (l *entryList) find(v any) *entryNode {
	for _, n := range l.nodes {
		if !n.dead && identical(n.value, v) {
			return n
		}
	}

	return nil
}

func (l *entryList) compact() {
	live := l.nodes[:0]
	for _, n := range l.nodes {
		if !n.dead {
			live = append(live, n)
		}
	}

	clear(l.nodes[len(live):])
	l.nodes = live
}

// identical is the set's equality: == for comparable values, the pointer
// behind the interface for funcs (so every closure is its own entry, and
// re-adding the same func value still collapses), backing array and length
// for slices, and the map reference for maps.
func identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	at, bt := reflect.TypeOf(a), reflect.TypeOf(b)
	if at != bt {
		return false
	}

	switch at.Kind() {
	case reflect.Func:
		return ifaceData(a) == ifaceData(b)
	case reflect.Slice:
		av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
		return av.Pointer() == bv.Pointer() && av.Len() == bv.Len()
	case reflect.Map:
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	}

	if at.Comparable() {
		return a == b
	}

	// uncomparable composites: only the exact same boxed value matches
	return ifaceData(a) == ifaceData(b)
}

// ifaceData returns the data word of an interface value. Funcs are
// pointer-shaped, so for them this is the func value itself.
func ifaceData(v any) unsafe.Pointer {
	return (*[2]unsafe.Pointer)(unsafe.Pointer(&v))[1]
}
