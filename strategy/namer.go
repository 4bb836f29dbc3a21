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

package strategy

import (
	"reflect"

	"dirpx.dev/locator/apis"
)

var namerType = reflect.TypeFor[apis.Namer]()

// NewNamerStrategy creates an apis.Strategy that uses apis.Namer.
func NewNamerStrategy() apis.Strategy {
	return namerStrategy{}
}

// namerStrategy returns ServiceKey() for values and types implementing
// apis.Namer and stops the chain.
type namerStrategy struct{}

// Ensure namerStrategy implements apis.Strategy.
var _ apis.Strategy = namerStrategy{}

// TryKey checks if v implements apis.Namer and returns its ServiceKey().
func (namerStrategy) TryKey(v any, _ apis.Config) (string, bool) {
	if n, ok := v.(apis.Namer); ok && n != nil {
		return n.ServiceKey(), true
	}
	return "", false
}

// TryKeyType builds a zero instance of t, or of *t when only the pointer
// implements apis.Namer, and asks it for its key.
func (namerStrategy) TryKeyType(t reflect.Type, _ apis.Config) (string, bool) {
	n, ok := zeroNamer(t)
	if !ok {
		return "", false
	}
	return n.ServiceKey(), true
}

// zeroNamer returns an apis.Namer backed by t's zero value.
// Interface and func types are skipped: their zero value is nil.
func zeroNamer(t reflect.Type) (apis.Namer, bool) {
	if t == nil {
		return nil, false
	}
	switch t.Kind() {
	case reflect.Interface, reflect.Func:
		return nil, false
	case reflect.Pointer:
		if t.Implements(namerType) {
			return reflect.New(t.Elem()).Interface().(apis.Namer), true
		}
		return nil, false
	}
	if t.Implements(namerType) {
		return reflect.Zero(t).Interface().(apis.Namer), true
	}
	if reflect.PointerTo(t).Implements(namerType) {
		return reflect.New(t).Interface().(apis.Namer), true
	}
	return nil, false
}
