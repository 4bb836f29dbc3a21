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

import (
	"fmt"
	"strings"
)

// Kind describes how a binding entered a Registry.
//
// The textual forms ("instance", "factory", "lazy") are stable and are used
// as metric label values and in diagnostic output.
type Kind int

const (
	// KindInstance is a pre-constructed value stored as-is.
	KindInstance Kind = iota

	// KindFactory is a value produced by a factory invoked at registration
	// time. Once stored it behaves exactly like KindInstance.
	KindFactory

	// KindLazy is a factory deferred until the first resolution. After a
	// successful build the binding keeps KindLazy but is no longer pending.
	KindLazy
)

// String returns the stable lowercase token for k.
func (k Kind) String() string {
	switch k {
	case KindInstance:
		return "instance"
	case KindFactory:
		return "factory"
	case KindLazy:
		return "lazy"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// ParseKind parses a kind token case-insensitively, ignoring surrounding space.
func ParseKind(s string) (Kind, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return KindInstance, fmt.Errorf("locator: empty kind")
	}

	switch strings.ToLower(trimmed) {
	case "instance":
		return KindInstance, nil
	case "factory":
		return KindFactory, nil
	case "lazy":
		return KindLazy, nil
	default:
		return KindInstance, fmt.Errorf("locator: unknown kind %q", s)
	}
}

// MustParseKind is like ParseKind but panics on error.
func MustParseKind(s string) Kind {
	k, err := ParseKind(s)
	if err != nil {
		panic(err)
	}
	return k
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case KindInstance, KindFactory, KindLazy:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("locator: cannot marshal unknown kind %d", int(k))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	v, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
