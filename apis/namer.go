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

// Namer lets a service type choose its own registry key.
//
// ServiceKey is a type-level contract: it must not depend on instance state,
// because the key of a type is sometimes derived from a zero value (or a
// pointer to one) before any instance exists. Implementations should return
// a constant.
//
//	type Mailer struct{ ... }
//
//	func (*Mailer) ServiceKey() string { return "mail.sender" }
type Namer interface {
	ServiceKey() string
}

// KeyFunc adapts a plain function to Namer.
type KeyFunc func() string

// ServiceKey calls f.
func (f KeyFunc) ServiceKey() string {
	return f()
}
