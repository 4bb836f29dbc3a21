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

package apis

import "reflect"

// Factory produces an instance for a key. It may resolve other keys from the
// same registry before constructing its result.
type Factory func() (any, error)

// Registry stores singleton instances by string key.
// Implementations must be safe for concurrent use.
type Registry interface {
	// RegisterInstance stores v under key. A previous binding is overwritten.
	RegisterInstance(key string, v any)
	// RegisterFactory invokes f once, immediately, and stores its result under key.
	// The only errors are ErrNilFactory and whatever f returns; on error nothing is stored.
	RegisterFactory(key string, f Factory) error
	// RegisterLazyFactory stores f under key and invokes it on the first Resolve.
	// The result is memoized; an error is returned to the caller and not cached.
	RegisterLazyFactory(key string, f Factory) error
	// Resolve returns the instance bound to key, or a *NotRegisteredError.
	Resolve(key string) (any, error)
	// Has reports whether key is bound (built or pending).
	Has(key string) bool
	// Unregister removes the binding for key and reports whether one existed.
	Unregister(key string) bool
	// Entries returns a snapshot for diagnostics (order is unspecified).
	Entries() []Entry
	// Count returns the number of bound keys.
	Count() int
	// Reset clears all bindings.
	Reset()
}

// Entry is a single binding in a Registry snapshot.
type Entry struct {
	// Key is the registry key.
	Key string
	// Kind is how the binding was registered.
	Kind Kind
	// Type is the dynamic type of Value. Nil while a lazy binding is pending.
	Type reflect.Type
	// Value is the stored instance. Nil while a lazy binding is pending.
	Value any
	// Factory is set only while a lazy binding is pending.
	Factory Factory
	// Pending reports a lazy binding whose factory has not run successfully yet.
	Pending bool
}
