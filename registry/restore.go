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

package registry

import (
	"dirpx.dev/locator/apis"
)

// Restore binds e into dst, keeping its Kind when dst was built by New.
// Pending lazy entries stay pending; their factory is shared with the source.
// For registries built by New a restore is not counted as a registration.
// Other Registry implementations receive the closest public registration.
func Restore(dst apis.Registry, e apis.Entry) error {
	if r, ok := dst.(*registry); ok {
		if e.Pending {
			if e.Factory == nil {
				return apis.ErrNilFactory
			}
			r.restore(e.Key, &binding{kind: apis.KindLazy, factory: e.Factory})
			return nil
		}
		r.restore(e.Key, &binding{kind: e.Kind, value: e.Value})
		return nil
	}

	if e.Pending {
		return dst.RegisterLazyFactory(e.Key, e.Factory)
	}
	dst.RegisterInstance(e.Key, e.Value)
	return nil
}
