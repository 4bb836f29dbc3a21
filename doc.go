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

// Package locator is a small, explicit service locator.
//
// A Locator maps string keys to singleton instances. Instances are
// registered up front, either directly or through a factory, and resolved
// by key later:
//
//	l := locator.New()
//	l.RegisterInstance("EmailService", email)
//	l.RegisterInstance("Logger", logger)
//	err := locator.RegisterFactory(l, "NotificationService", func() (*NotificationService, error) {
//		e, err := locator.Resolve[*EmailService](l, "EmailService")
//		if err != nil {
//			return nil, err
//		}
//		lg, err := locator.Resolve[*Logger](l, "Logger")
//		if err != nil {
//			return nil, err
//		}
//		return NewNotificationService(e, lg), nil
//	})
//
// # Registration
//
// RegisterInstance stores a value. RegisterFactory calls its factory once,
// immediately, and stores the result, so a factory may resolve keys that
// were registered before it. RegisterLazyFactory defers the call to the
// first Resolve and memoizes the result; concurrent first resolutions share
// one call, and a failed call is retried by the next Resolve.
//
// A later registration under the same key replaces the earlier one. Nothing
// fails on overwrite; set Config.WarnOnOverwrite to log it at warn level.
//
// # Resolution
//
// Resolve on an unknown key returns a *apis.NotRegisteredError, which
// matches apis.ErrNotRegistered. The generic Resolve[T] also checks the
// stored type and returns a *apis.TypeMismatchError instead of panicking.
//
// # Type keys
//
// Provide, ProvideFactory, ProvideLazy and Get key bindings by Go type.
// The key comes from a Keyer chain:
//
//  1. a type implementing apis.Namer supplies its own ServiceKey();
//  2. an alias registered with Locator.Alias;
//  3. the type's identity, with every named type qualified by its import
//     path: "example.com/mail.Mailer", "*example.com/mail.Mailer".
//
// Distinct types get distinct keys, so Provide[Mailer] and Provide[*Mailer]
// are two bindings. An alias of Mailer also covers *Mailer, []Mailer and
// the like; Get then reports a TypeMismatchError if the stored value is the
// other form.
//
// # Concurrency
//
// A Locator is safe for concurrent use. Resolve does not lock. Factories run
// without any lock held. A lazy factory that resolves its own key deadlocks;
// there is no cycle detection.
//
// SetConfig rebuilds the locator's registry from its current bindings and
// is meant for setup time. Fork returns an isolated copy, which is handy in
// tests that need to override a few bindings.
package locator
