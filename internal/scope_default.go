//go:build !wasm

package internal

import (
	"sync"

	"github.com/petermattis/goid"
)

var scopes sync.Map

func getScopes() *scopeStack {
	gid := goid.Get()

	if st, ok := scopes.Load(gid); ok {
		return st.(*scopeStack)
	}

	st := &scopeStack{}
	scopes.Store(gid, st)
	return st
}

func lookupScopes() *scopeStack {
	if st, ok := scopes.Load(goid.Get()); ok {
		return st.(*scopeStack)
	}

	return nil
}

func dropScopes() {
	scopes.Delete(goid.Get())
}
