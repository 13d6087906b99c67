//go:build wasm

package internal

import "sync"

var once sync.Once
var globalScopes *scopeStack

func getScopes() *scopeStack {
	once.Do(func() {
		globalScopes = &scopeStack{}
	})

	return globalScopes
}

func lookupScopes() *scopeStack {
	return globalScopes
}

func dropScopes() {}
