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

// AliasTable maps Go types to explicit registry keys.
// Keep it minimal so implementations can be lock-free or sync.Map-backed.
type AliasTable interface {
	// Register associates a (nearest named) reflect.Type with a fixed key.
	// Re-registering the same pair is a no-op; a different key is an error.
	Register(t reflect.Type, key string) error
	// Lookup returns the key for a type if present.
	Lookup(t reflect.Type) (key string, ok bool)
	// Entries returns a snapshot for diagnostics (order is unspecified).
	Entries() []Alias
	// Count returns the number of aliases.
	Count() int
	// Reset clears all aliases.
	Reset()
}

// Alias is a single (type, key) association in an AliasTable snapshot.
type Alias struct {
	// Type is the normalized reflect.Type.
	Type reflect.Type
	// Key is the associated registry key.
	Key string
}
