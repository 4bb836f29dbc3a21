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

// NewAliasStrategy creates an apis.Strategy that consults an apis.AliasTable.
func NewAliasStrategy(aliases apis.AliasTable) apis.Strategy {
	return &aliasStrategy{aliases: aliases}
}

// aliasStrategy maps a type to the key it was explicitly aliased to.
type aliasStrategy struct {
	aliases apis.AliasTable
}

// Ensure aliasStrategy implements apis.Strategy.
var _ apis.Strategy = (*aliasStrategy)(nil)

// TryKey looks up v's dynamic type.
func (s *aliasStrategy) TryKey(v any, cfg apis.Config) (string, bool) {
	if v == nil {
		return "", false
	}
	return s.TryKeyType(reflect.TypeOf(v), cfg)
}

// TryKeyType looks up t.
func (s *aliasStrategy) TryKeyType(t reflect.Type, _ apis.Config) (string, bool) {
	if t == nil || s.aliases == nil {
		return "", false
	}
	return s.aliases.Lookup(t)
}
