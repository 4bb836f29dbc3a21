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
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/locator/apis"
)

type clock struct{}
type pool[T any] struct{}
type handle[T any] struct{ v T }

const pkg = "dirpx.dev/locator/strategy"

func TestReflectStrategy_TryKeyType(t *testing.T) {
	s := NewReflectStrategy()

	cases := []struct {
		name string
		typ  reflect.Type
		want string
	}{
		{"named", reflect.TypeFor[clock](), pkg + ".clock"},
		{"pointer", reflect.TypeFor[*clock](), "*" + pkg + ".clock"},
		{"double pointer", reflect.TypeFor[**clock](), "**" + pkg + ".clock"},
		{"slice", reflect.TypeFor[[]clock](), "[]" + pkg + ".clock"},
		{"array", reflect.TypeFor[[3]clock](), "[3]" + pkg + ".clock"},
		{"chan", reflect.TypeFor[chan clock](), "chan " + pkg + ".clock"},
		{"recv chan", reflect.TypeFor[<-chan clock](), "<-chan " + pkg + ".clock"},
		{"send chan", reflect.TypeFor[chan<- clock](), "chan<- " + pkg + ".clock"},
		{"chan of recv chan", reflect.TypeFor[chan (<-chan int)](), "chan (<-chan int)"},
		{"map", reflect.TypeFor[map[string]clock](), "map[string]" + pkg + ".clock"},
		{"map of int", reflect.TypeFor[map[string]int](), "map[string]int"},
		{"builtin", reflect.TypeFor[int](), "int"},
		{"generic", reflect.TypeFor[pool[int]](), pkg + ".pool[int]"},
		{"nested generic", reflect.TypeFor[[]handle[pool[clock]]](),
			"[]" + pkg + ".handle[" + pkg + ".pool[" + pkg + ".clock]]"},
		{"interface", reflect.TypeFor[apis.Namer](), "dirpx.dev/locator/apis.Namer"},
		{"unnamed", reflect.TypeFor[struct{ n int }](), "struct { n int }"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := s.TryKeyType(tc.typ, apis.Config{})
			if !ok {
				t.Fatalf("expected handled for %v", tc.typ)
			}
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}

	if got, ok := s.TryKeyType(nil, apis.Config{}); ok || got != "" {
		t.Fatalf("nil type: got (%q,%v), want ('',false)", got, ok)
	}
}

// Every distinct type gets a distinct key, whatever the config says.
func TestReflectStrategy_Distinct(t *testing.T) {
	s := NewReflectStrategy()
	cfg := apis.Config{IncludeBuiltins: false, MaxUnwrap: 1, MapPreferElem: false}

	types := []reflect.Type{
		reflect.TypeFor[clock](),
		reflect.TypeFor[*clock](),
		reflect.TypeFor[[]clock](),
		reflect.TypeFor[[]*clock](),
		reflect.TypeFor[map[string]clock](),
		reflect.TypeFor[map[string]*clock](),
		reflect.TypeFor[map[string]int](),
		reflect.TypeFor[int](),
		reflect.TypeFor[pool[int]](),
		reflect.TypeFor[pool[string]](),
		reflect.TypeFor[reflect.Value](),
		reflect.TypeFor[apis.Config](),
	}
	seen := make(map[string]reflect.Type, len(types))
	for _, typ := range types {
		got, ok := s.TryKeyType(typ, cfg)
		if !ok || got == "" {
			t.Fatalf("TryKeyType(%v) = (%q,%v)", typ, got, ok)
		}
		if prev, dup := seen[got]; dup {
			t.Fatalf("%v and %v share key %q", prev, typ, got)
		}
		seen[got] = typ
	}
}

func TestReflectStrategy_TryKey(t *testing.T) {
	s := NewReflectStrategy()

	cases := map[any]string{
		clock{}:  pkg + ".clock",
		&clock{}: "*" + pkg + ".clock",
	}
	for v, want := range cases {
		if got, ok := s.TryKey(v, apis.Config{}); !ok || got != want {
			t.Fatalf("TryKey(%T) = (%q,%v), want (%q,true)", v, got, ok, want)
		}
	}
	if got, ok := s.TryKey([]*clock{}, apis.Config{}); !ok || got != "[]*"+pkg+".clock" {
		t.Fatalf("TryKey([]*clock) = (%q,%v)", got, ok)
	}
	if got, ok := s.TryKey(nil, apis.Config{}); ok || got != "" {
		t.Fatalf("TryKey(nil) = (%q,%v), want ('',false)", got, ok)
	}
}

func TestReflectStrategy_Concurrent(t *testing.T) {
	s := NewReflectStrategy()

	types := []reflect.Type{
		reflect.TypeFor[clock](),
		reflect.TypeFor[*clock](),
		reflect.TypeFor[map[string]clock](),
		reflect.TypeFor[pool[int]](),
		reflect.TypeFor[handle[pool[int]]](),
		reflect.TypeFor[int](),
	}
	want := []string{
		pkg + ".clock",
		"*" + pkg + ".clock",
		"map[string]" + pkg + ".clock",
		pkg + ".pool[int]",
		pkg + ".handle[" + pkg + ".pool[int]]",
		"int",
	}

	workers := runtime.GOMAXPROCS(0) * 4
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan string, workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				idx := (i + id) % len(types)
				if got, ok := s.TryKeyType(types[idx], apis.Config{}); !ok || got != want[idx] {
					errCh <- got
					return
				}
			}
		}(w)
	}
	wg.Wait()
	close(errCh)
	for e := range errCh {
		t.Fatalf("concurrent mismatch: got=%q", e)
	}
}

func BenchmarkReflectStrategy_TryKeyType(b *testing.B) {
	s := NewReflectStrategy()
	types := []reflect.Type{
		reflect.TypeFor[clock](),
		reflect.TypeFor[[]*clock](),
		reflect.TypeFor[handle[pool[int]]](),
		reflect.TypeFor[int](),
	}
	var c apis.Config
	for _, t0 := range types {
		s.TryKeyType(t0, c)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.TryKeyType(types[i%len(types)], c)
	}
}
