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
	"encoding/json"
	"testing"
)

func TestKind_String(t *testing.T) {
	cases := map[Kind]string{
		KindInstance: "instance",
		KindFactory:  "factory",
		KindLazy:     "lazy",
		Kind(42):     "unknown(42)",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}

func TestParseKind(t *testing.T) {
	ok := map[string]Kind{
		"instance":  KindInstance,
		" Factory ": KindFactory,
		"LAZY":      KindLazy,
	}
	for in, want := range ok {
		got, err := ParseKind(in)
		if err != nil || got != want {
			t.Errorf("ParseKind(%q) = (%v, %v), want (%v, nil)", in, got, err, want)
		}
	}
	for _, in := range []string{"", "   ", "eager"} {
		if _, err := ParseKind(in); err == nil {
			t.Errorf("ParseKind(%q): expected error", in)
		}
	}
}

func TestMustParseKind_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustParseKind("eager")
}

func TestKind_JSON(t *testing.T) {
	in := struct {
		Kind Kind `json:"kind"`
	}{Kind: KindLazy}
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `{"kind":"lazy"}` {
		t.Fatalf("Marshal = %s", b)
	}

	in.Kind = KindInstance
	if err := json.Unmarshal([]byte(`{"kind":"factory"}`), &in); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if in.Kind != KindFactory {
		t.Fatalf("Unmarshal = %v, want factory", in.Kind)
	}

	if _, err := json.Marshal(struct{ K Kind }{Kind(9)}); err == nil {
		t.Fatal("expected error marshaling unknown kind")
	}
}
