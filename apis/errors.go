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
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNotRegistered matches any *NotRegisteredError via errors.Is.
	ErrNotRegistered = errors.New("locator: service not registered")
	// ErrTypeMismatch matches any *TypeMismatchError via errors.Is.
	ErrTypeMismatch = errors.New("locator: service type mismatch")
	// ErrNilFactory is returned when a nil Factory is registered.
	ErrNilFactory = errors.New("locator: nil factory provided")
)

// NotRegisteredError reports a Resolve of a key with no binding.
type NotRegisteredError struct {
	Key string
}

func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("locator: service %q is not registered", e.Key)
}

func (e *NotRegisteredError) Is(target error) bool {
	return target == ErrNotRegistered
}

// TypeMismatchError reports a typed resolve whose stored value is not of the
// requested type.
type TypeMismatchError struct {
	Key  string
	Want reflect.Type
	Got  reflect.Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("locator: service %q is %s, not %s", e.Key, typeString(e.Got), typeString(e.Want))
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// IsNotRegistered checks if err is, or wraps, a not-registered error.
func IsNotRegistered(err error) bool {
	return errors.Is(err, ErrNotRegistered)
}

// IsTypeMismatch checks if err is, or wraps, a type mismatch error.
func IsTypeMismatch(err error) bool {
	return errors.Is(err, ErrTypeMismatch)
}

func typeString(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
