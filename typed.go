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

package locator

import (
	"reflect"

	"dirpx.dev/locator/apis"
)

// RegisterInstance stores v under key.
func RegisterInstance[T any](r apis.Registry, key string, v T) {
	r.RegisterInstance(key, v)
}

// RegisterFactory invokes f once and stores its result under key.
func RegisterFactory[T any](r apis.Registry, key string, f func() (T, error)) error {
	if f == nil {
		return apis.ErrNilFactory
	}
	return r.RegisterFactory(key, erase(f))
}

// RegisterLazyFactory stores f under key; it runs on the first Resolve.
func RegisterLazyFactory[T any](r apis.Registry, key string, f func() (T, error)) error {
	if f == nil {
		return apis.ErrNilFactory
	}
	return r.RegisterLazyFactory(key, erase(f))
}

// Resolve returns the instance bound to key as a T. A binding of another
// type yields a *apis.TypeMismatchError. A nil binding resolves to the zero
// T when T can hold nil.
func Resolve[T any](r apis.Registry, key string) (T, error) {
	var zero T
	v, err := r.Resolve(key)
	if err != nil {
		return zero, err
	}
	if t, ok := v.(T); ok {
		return t, nil
	}
	want := reflect.TypeFor[T]()
	if v == nil && nilable(want) {
		return zero, nil
	}
	return zero, &apis.TypeMismatchError{Key: key, Want: want, Got: reflect.TypeOf(v)}
}

// MustResolve is like Resolve but panics on error.
func MustResolve[T any](r apis.Registry, key string) T {
	v, err := Resolve[T](r, key)
	if err != nil {
		panic(err)
	}
	return v
}

// KeyOf returns the key the type-keyed helpers use for T.
func KeyOf[T any](l *Locator) string {
	return l.KeyType(reflect.TypeFor[T]())
}

// Provide stores v under KeyOf[T].
func Provide[T any](l *Locator, v T) {
	RegisterInstance(l, KeyOf[T](l), v)
}

// ProvideFactory invokes f once and stores its result under KeyOf[T].
func ProvideFactory[T any](l *Locator, f func() (T, error)) error {
	return RegisterFactory(l, KeyOf[T](l), f)
}

// ProvideLazy stores f under KeyOf[T]; it runs on the first Get.
func ProvideLazy[T any](l *Locator, f func() (T, error)) error {
	return RegisterLazyFactory(l, KeyOf[T](l), f)
}

// Get resolves the instance stored under KeyOf[T].
func Get[T any](l *Locator) (T, error) {
	return Resolve[T](l, KeyOf[T](l))
}

// MustGet is like Get but panics on error.
func MustGet[T any](l *Locator) T {
	return MustResolve[T](l, KeyOf[T](l))
}

func erase[T any](f func() (T, error)) apis.Factory {
	return func() (any, error) {
		v, err := f()
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	}
	return false
}
