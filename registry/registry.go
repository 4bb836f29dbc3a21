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

// Package registry implements apis.Registry, the key -> singleton store.
package registry

import (
	"fmt"
	"reflect"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"dirpx.dev/locator/apis"
	"dirpx.dev/locator/config"
	"dirpx.dev/locator/metrics"
)

// Option configures a registry built by New.
type Option func(*registry)

// WithLogger sets the logger. Nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *registry) {
		if l != nil {
			r.log = l
		}
	}
}

// WithMetrics sets the collectors. Nil disables metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *registry) {
		r.met = m
	}
}

// New constructs an empty Registry labeled with cfg.Name.
func New(cfg apis.Config, opts ...Option) apis.Registry {
	if cfg.Name == "" {
		cfg.Name = config.DefaultName
	}
	r := &registry{cfg: cfg, log: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.With(zap.String("registry", cfg.Name))
	return r
}

// registry is backed by sync.Map so Resolve never takes a lock on the hot
// path. Writers are serialized by mu, which also guards count.
type registry struct {
	cfg apis.Config
	log *zap.Logger
	met *metrics.Metrics

	mu    sync.Mutex
	m     sync.Map // map[string]*binding
	count int

	// builds deduplicates concurrent first resolutions of lazy bindings.
	builds singleflight.Group
}

// binding is immutable once stored; a finished lazy build replaces it.
type binding struct {
	kind  apis.Kind
	value any
	// factory is non-nil only while a lazy binding is pending.
	factory apis.Factory
}

// Ensure registry implements apis.Registry.
var _ apis.Registry = (*registry)(nil)

// RegisterInstance stores v under key, overwriting any previous binding.
func (r *registry) RegisterInstance(key string, v any) {
	r.store(key, &binding{kind: apis.KindInstance, value: v})
}

// RegisterFactory runs f now, without holding any lock, so f may resolve
// keys registered earlier. Nothing is stored when f fails.
func (r *registry) RegisterFactory(key string, f apis.Factory) error {
	if f == nil {
		return apis.ErrNilFactory
	}
	v, err := f()
	if err != nil {
		r.log.Debug("service factory failed", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("locator: factory for %q: %w", key, err)
	}
	r.store(key, &binding{kind: apis.KindFactory, value: v})
	return nil
}

// RegisterLazyFactory stores f; it runs on the first Resolve of key.
func (r *registry) RegisterLazyFactory(key string, f apis.Factory) error {
	if f == nil {
		return apis.ErrNilFactory
	}
	r.store(key, &binding{kind: apis.KindLazy, factory: f})
	return nil
}

// Resolve returns the instance bound to key.
func (r *registry) Resolve(key string) (any, error) {
	raw, ok := r.m.Load(key)
	if !ok {
		r.met.ObserveResolution(r.cfg.Name, metrics.ResultMiss)
		r.log.Debug("service not registered", zap.String("key", key))
		return nil, &apis.NotRegisteredError{Key: key}
	}

	b := raw.(*binding)
	if b.factory == nil {
		r.met.ObserveResolution(r.cfg.Name, metrics.ResultHit)
		return b.value, nil
	}

	v, err := r.build(key)
	if err != nil {
		result := metrics.ResultError
		if apis.IsNotRegistered(err) {
			result = metrics.ResultMiss
		}
		r.met.ObserveResolution(r.cfg.Name, result)
		return nil, err
	}
	r.met.ObserveResolution(r.cfg.Name, metrics.ResultHit)
	return v, nil
}

// build runs the pending factory of key at most once at a time. Callers that
// arrive while a build is in flight wait for and share its result.
func (r *registry) build(key string) (any, error) {
	v, err, _ := r.builds.Do(key, func() (any, error) {
		// Re-load: the build may have finished, or key may have been
		// replaced or removed, since the caller's lookup.
		raw, ok := r.m.Load(key)
		if !ok {
			return nil, &apis.NotRegisteredError{Key: key}
		}
		pending := raw.(*binding)
		if pending.factory == nil {
			return pending.value, nil
		}

		v, err := pending.factory()
		r.met.ObserveLazyBuild(r.cfg.Name, err)
		if err != nil {
			r.log.Debug("lazy service factory failed", zap.String("key", key), zap.Error(err))
			return nil, fmt.Errorf("locator: lazy factory for %q: %w", key, err)
		}

		r.mu.Lock()
		swapped := r.m.CompareAndSwap(key, pending, &binding{kind: apis.KindLazy, value: v})
		r.mu.Unlock()

		if swapped {
			r.log.Debug("built lazy service", zap.String("key", key), zap.String("type", fmt.Sprintf("%T", v)))
		} else {
			// Overwritten or removed while building: hand the value to the
			// waiting callers without caching it.
			r.log.Debug("lazy service replaced during build", zap.String("key", key))
		}
		return v, nil
	})
	return v, err
}

// Has reports whether key is bound.
func (r *registry) Has(key string) bool {
	_, ok := r.m.Load(key)
	return ok
}

// Unregister removes key and reports whether it was bound.
func (r *registry) Unregister(key string) bool {
	r.mu.Lock()
	_, loaded := r.m.LoadAndDelete(key)
	if loaded {
		r.count--
	}
	r.met.SetEntries(r.cfg.Name, r.count)
	r.mu.Unlock()

	if loaded {
		r.log.Debug("unregistered service", zap.String("key", key))
	}
	return loaded
}

// Entries returns a snapshot (order is unspecified).
func (r *registry) Entries() []apis.Entry {
	out := make([]apis.Entry, 0, r.Count())
	r.m.Range(func(k, v any) bool {
		out = append(out, entryOf(k.(string), v.(*binding)))
		return true
	})
	return out
}

// Count returns the number of bound keys.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all bindings.
func (r *registry) Reset() {
	r.mu.Lock()
	r.m.Clear()
	r.count = 0
	r.met.SetEntries(r.cfg.Name, 0)
	r.mu.Unlock()

	r.log.Debug("registry reset")
}

// store publishes b under key and records it as a registration.
// Last write wins.
func (r *registry) store(key string, b *binding) {
	overwrite := r.publish(key, b)
	r.met.ObserveRegistration(r.cfg.Name, b.kind.String(), overwrite)

	fields := []zap.Field{zap.String("key", key), zap.Stringer("kind", b.kind)}
	switch {
	case overwrite && r.cfg.WarnOnOverwrite:
		r.log.Warn("overwriting registered service", fields...)
	case overwrite:
		r.log.Debug("overwriting registered service", fields...)
	default:
		r.log.Debug("registered service", fields...)
	}
}

// restore publishes a binding carried over from another registry. It is not
// a registration and leaves the registration counters alone.
func (r *registry) restore(key string, b *binding) {
	r.publish(key, b)
	r.log.Debug("restored service", zap.String("key", key), zap.Stringer("kind", b.kind))
}

// publish swaps b in under key and reports whether it replaced a binding.
func (r *registry) publish(key string, b *binding) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, overwrite := r.m.Swap(key, b)
	if !overwrite {
		r.count++
	}
	r.met.SetEntries(r.cfg.Name, r.count)
	return overwrite
}

func entryOf(key string, b *binding) apis.Entry {
	e := apis.Entry{Key: key, Kind: b.kind}
	if b.factory != nil {
		e.Factory = b.factory
		e.Pending = true
		return e
	}
	e.Value = b.value
	e.Type = reflect.TypeOf(b.value)
	return e
}
