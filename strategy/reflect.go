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
	"strconv"
	"strings"
	"sync"

	"dirpx.dev/locator/apis"
)

// NewReflectStrategy creates an apis.Strategy that keys a type by its exact
// identity: named types by full import path and name, composite types by
// their structure. Distinct types never share a key, so *T, T and []T each
// get their own binding.
func NewReflectStrategy() apis.Strategy {
	return reflectStrategy{}
}

// reflectStrategy handles every non-nil input, so it belongs last in a chain.
type reflectStrategy struct{}

// Ensure reflectStrategy implements apis.Strategy.
var _ apis.Strategy = reflectStrategy{}

// identities memoizes keys process-wide; reflect.Type values are immutable.
var identities sync.Map // reflect.Type -> string

// TryKey returns the identity key of v's dynamic type.
func (reflectStrategy) TryKey(v any, _ apis.Config) (string, bool) {
	if v == nil {
		return "", false
	}
	return identityKey(reflect.TypeOf(v)), true
}

// TryKeyType returns the identity key of t.
func (reflectStrategy) TryKeyType(t reflect.Type, _ apis.Config) (string, bool) {
	if t == nil {
		return "", false
	}
	return identityKey(t), true
}

func identityKey(t reflect.Type) string {
	if v, ok := identities.Load(t); ok {
		return v.(string)
	}
	var b strings.Builder
	writeIdentity(&b, t)
	v, _ := identities.LoadOrStore(t, b.String())
	return v.(string)
}

// writeIdentity spells t with every named type qualified by its import path:
// "*example.com/mail.Sender", "map[string]example.com/mail.Sender".
func writeIdentity(b *strings.Builder, t reflect.Type) {
	if t.Name() != "" {
		// Name includes instantiation arguments, themselves path-qualified.
		if p := t.PkgPath(); p != "" {
			b.WriteString(p)
			b.WriteByte('.')
		}
		b.WriteString(t.Name())
		return
	}

	switch t.Kind() {
	case reflect.Pointer:
		b.WriteByte('*')
		writeIdentity(b, t.Elem())
	case reflect.Slice:
		b.WriteString("[]")
		writeIdentity(b, t.Elem())
	case reflect.Array:
		b.WriteString("[" + strconv.Itoa(t.Len()) + "]")
		writeIdentity(b, t.Elem())
	case reflect.Map:
		b.WriteString("map[")
		writeIdentity(b, t.Key())
		b.WriteByte(']')
		writeIdentity(b, t.Elem())
	case reflect.Chan:
		switch t.ChanDir() {
		case reflect.RecvDir:
			b.WriteString("<-chan ")
		case reflect.SendDir:
			b.WriteString("chan<- ")
		default:
			b.WriteString("chan ")
		}
		if e := t.Elem(); e.Kind() == reflect.Chan && e.Name() == "" {
			b.WriteByte('(')
			writeIdentity(b, e)
			b.WriteByte(')')
		} else {
			writeIdentity(b, e)
		}
	default:
		// Unnamed struct, func and interface types.
		b.WriteString(t.String())
	}
}
