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

// Config carries read-only knobs for a locator instance.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// Name labels the registry in logs and metrics. Empty means "default".
	Name string `koanf:"name"`

	// WarnOnOverwrite logs overwrites of an existing key at warn level
	// instead of debug. Overwrites never fail either way.
	WarnOnOverwrite bool `koanf:"warn_on_overwrite"`

	// IncludeBuiltins controls whether builtin/no-package named types
	// (e.g., "int", "string") may be aliased. With it off, an alias can never
	// capture every map[string]V when MapPreferElem is false.
	IncludeBuiltins bool `koanf:"include_builtins"`

	// MaxUnwrap limits container unwrapping depth (ptr/slice/array/chan/map)
	// when an alias is matched against a type.
	MaxUnwrap int `koanf:"max_unwrap"`

	// MapPreferElem controls which side of map[K]V is considered primary
	// when searching for a nearest named inner type. If true, prefer V; otherwise K.
	MapPreferElem bool `koanf:"map_prefer_elem"`
}
