/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package alias implements apis.AliasTable: explicit Go type -> registry key
// mappings consulted before a key is derived from the type name.
package alias

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"dirpx.dev/locator/apis"
	"dirpx.dev/locator/config"
	uref "dirpx.dev/locator/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("locator(alias): nil reflect.Type provided")
	// ErrEmptyKey is returned when an empty key is provided.
	ErrEmptyKey = errors.New("locator(alias): empty key provided")
	// ErrConflictingAlias indicates an attempt to alias a type to a second key.
	ErrConflictingAlias = errors.New("locator(alias): conflicting alias")
	// ErrBuiltinType is returned when aliasing a builtin type while
	// Config.IncludeBuiltins is off.
	ErrBuiltinType = errors.New("locator(alias): builtin types cannot be aliased")
)

// New constructs an AliasTable that normalizes types according to cfg.
// An alias of T also matches *T, []T and other containers of T.
func New(cfg apis.Config) apis.AliasTable {
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = config.DefaultMaxUnwrap
	}
	return &table{cfg: cfg}
}

// table is an AliasTable backed by sync.Map with a mutex-guarded write path.
type table struct {
	cfg apis.Config
	// mu serializes writers and guards count.
	mu sync.Mutex
	// m maps normalized reflect.Type to key.
	m     sync.Map
	count int
}

// Register associates the nearest named type of t with key.
// It is idempotent for the same (type, key) pair.
func (a *table) Register(t reflect.Type, key string) error {
	if t == nil {
		return ErrNilType
	}
	if key == "" {
		return ErrEmptyKey
	}

	nt, err := uref.Normalize(t, a.cfg)
	if err != nil {
		return err
	}
	if nt.PkgPath() == "" && !a.cfg.IncludeBuiltins {
		return fmt.Errorf("%w: %s", ErrBuiltinType, nt)
	}

	// Lock-free idempotency check first; most re-registrations end here.
	if found, err := a.existing(nt, key); found {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if found, err := a.existing(nt, key); found {
		return err
	}
	a.m.Store(nt, key)
	a.count++
	return nil
}

// existing reports whether nt already has an alias, and whether it conflicts with key.
func (a *table) existing(nt reflect.Type, key string) (bool, error) {
	old, ok := a.m.Load(nt)
	if !ok {
		return false, nil
	}
	if old.(string) == key {
		return true, nil
	}
	return true, fmt.Errorf("%w: %s is %q, not %q", ErrConflictingAlias, nt, old, key)
}

// Lookup returns the key aliased to t's nearest named type.
func (a *table) Lookup(t reflect.Type) (string, bool) {
	if t == nil {
		return "", false
	}
	nt, err := uref.Normalize(t, a.cfg)
	if err != nil {
		return "", false
	}
	if v, ok := a.m.Load(nt); ok {
		return v.(string), true
	}
	return "", false
}

// Entries returns a snapshot (order is unspecified).
func (a *table) Entries() []apis.Alias {
	out := make([]apis.Alias, 0, a.Count())
	a.m.Range(func(k, v any) bool {
		out = append(out, apis.Alias{Type: k.(reflect.Type), Key: v.(string)})
		return true
	})
	return out
}

// Count returns the number of aliases.
func (a *table) Count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.count
}

// Reset clears all aliases.
func (a *table) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.m.Clear()
	a.count = 0
}
