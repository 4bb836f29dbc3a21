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

package reflect

import (
	"errors"
	"reflect"

	"dirpx.dev/locator/apis"
	"dirpx.dev/locator/config"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("locator(reflect): nil reflect.Type provided")
	// ErrUnnamedType indicates that the type (after unwrapping containers)
	// does not reach a named type (anonymous struct, func, interface{}, ...).
	ErrUnnamedType = errors.New("locator(reflect): type has no nearest named type")
)

// Normalize unwraps containers according to cfg (MaxUnwrap/MapPreferElem)
// and returns the nearest named inner type.
//
// Unwrapping policy:
//   - ptr/slice/array/chan -> Elem()
//   - map[K]V: the preferred side (V if MapPreferElem, else K) wins if named,
//     then the other side; if neither is named, unwrapping continues with V.
//     Sides are not unwrapped first, so map[string]*T yields string.
//   - anything else: named types are returned, unnamed ones fail.
//
// A MaxUnwrap <= 0 means config.DefaultMaxUnwrap.
func Normalize(t reflect.Type, cfg apis.Config) (reflect.Type, error) {
	if t == nil {
		return nil, ErrNilType
	}
	depth := cfg.MaxUnwrap
	if depth <= 0 {
		depth = config.DefaultMaxUnwrap
	}

	for ; depth > 0; depth-- {
		switch t.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Array, reflect.Chan:
			t = t.Elem()
		case reflect.Map:
			if named := namedMapSide(t, cfg.MapPreferElem); named != nil {
				return named, nil
			}
			t = t.Elem()
		default:
			if t.Name() != "" {
				return t, nil
			}
			return nil, ErrUnnamedType
		}
	}

	// Depth exhausted: only a named type is acceptable here.
	if t.Name() != "" {
		return t, nil
	}
	return nil, ErrUnnamedType
}

// namedMapSide returns the preferred named side of map type m, then the
// other side, or nil when neither key nor element is named.
func namedMapSide(m reflect.Type, preferElem bool) reflect.Type {
	first, second := m.Key(), m.Elem()
	if preferElem {
		first, second = second, first
	}
	if first.Name() != "" {
		return first
	}
	if second.Name() != "" {
		return second
	}
	return nil
}
