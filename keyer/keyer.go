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

// Package keyer chains key-derivation strategies into an apis.Keyer.
package keyer

import (
	"reflect"

	"dirpx.dev/locator/apis"
)

// New constructs an apis.Keyer that tries the given strategies in order.
// Nil strategies are ignored. The Keyer is safe for concurrent use when the
// strategies are.
func New(strategies ...apis.Strategy) apis.Keyer {
	out := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return chain{steps: out}
}

// chain is immutable after New.
type chain struct {
	steps []apis.Strategy
}

// Key returns the key of the first strategy that handles v, or "".
func (c chain) Key(v any, cfg apis.Config) string {
	for _, s := range c.steps {
		if key, ok := s.TryKey(v, cfg); ok {
			return key
		}
	}
	return ""
}

// KeyType returns the key of the first strategy that handles t, or "".
func (c chain) KeyType(t reflect.Type, cfg apis.Config) string {
	for _, s := range c.steps {
		if key, ok := s.TryKeyType(t, cfg); ok {
			return key
		}
	}
	return ""
}
