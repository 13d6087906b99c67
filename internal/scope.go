package internal

// scopeStack is one goroutine's stack of active disposal scopes.
type scopeStack struct {
	sets []*Set
}

func (st *scopeStack) push(s *Set) {
	st.sets = append(st.sets, s)
}

func (st *scopeStack) pop() {
	st.sets = st.sets[:len(st.sets)-1]
}

func (st *scopeStack) current() *Set {
	if len(st.sets) == 0 {
		return nil
	}

	return st.sets[len(st.sets)-1]
}

// RunScope makes s the calling goroutine's innermost scope for the duration
// of fn. Disposal itself is left to the caller, after the scope is popped.
func RunScope(s *Set, fn func()) {
	st := getScopes()
	st.push(s)

	defer func() {
		st.pop()
		if len(st.sets) == 0 {
			dropScopes()
		}
	}()

	fn()
}

// CurrentScope returns the calling goroutine's innermost active scope,
// or nil outside of any.
func CurrentScope() *Set {
	st := lookupScopes()
	if st == nil {
		return nil
	}

	return st.current()
}
