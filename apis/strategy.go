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
	"reflect"
)

// Strategy is a pluggable key-derivation step. A Keyer can chain multiple
// strategies in order (e.g., Namer -> Alias -> Reflect).
type Strategy interface {
	// TryKey attempts to derive a key for value v according to cfg.
	// It returns (key, true) if handled; otherwise ("", false) to fall through.
	TryKey(v any, cfg Config) (key string, handled bool)

	// TryKeyType attempts to derive a key for the reflect.Type t.
	TryKeyType(t reflect.Type, cfg Config) (key string, handled bool)
}
