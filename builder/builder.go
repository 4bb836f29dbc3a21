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

// Package builder assembles the parts of a locator from a Config.
package builder

import (
	"go.uber.org/zap"

	"dirpx.dev/locator/alias"
	"dirpx.dev/locator/apis"
	"dirpx.dev/locator/keyer"
	"dirpx.dev/locator/metrics"
	"dirpx.dev/locator/registry"
	"dirpx.dev/locator/strategy"
)

// Option configures the builder.
type Option func(*builder)

// WithLogger passes l to every registry the builder creates.
func WithLogger(l *zap.Logger) Option {
	return func(b *builder) {
		if l != nil {
			b.log = l
		}
	}
}

// WithMetrics passes m to every registry the builder creates.
func WithMetrics(m *metrics.Metrics) Option {
	return func(b *builder) {
		b.met = m
	}
}

// New creates the default apis.Builder.
func New(opts ...Option) apis.Builder {
	b := &builder{log: zap.NewNop()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

type builder struct {
	log *zap.Logger
	met *metrics.Metrics
}

// BuildRegistry returns a registry for cfg holding a copy of prev's bindings.
// Pending lazy bindings stay pending and share their factory with prev.
func (b *builder) BuildRegistry(cfg apis.Config, prev apis.Registry) apis.Registry {
	reg := registry.New(cfg, registry.WithLogger(b.log), registry.WithMetrics(b.met))
	if prev == nil {
		return reg
	}
	for _, e := range prev.Entries() {
		if err := registry.Restore(reg, e); err != nil {
			b.log.Warn("dropping binding during migration", zap.String("key", e.Key), zap.Error(err))
		}
	}
	return reg
}

// BuildAliases returns an alias table for cfg holding a copy of prev's aliases.
func (b *builder) BuildAliases(cfg apis.Config, prev apis.AliasTable) apis.AliasTable {
	aliases := alias.New(cfg)
	if prev == nil {
		return aliases
	}
	for _, a := range prev.Entries() {
		if err := aliases.Register(a.Type, a.Key); err != nil {
			b.log.Warn("dropping alias during migration", zap.Stringer("type", a.Type), zap.Error(err))
		}
	}
	return aliases
}

// BuildKeyer returns the Namer -> Alias -> Reflect chain.
func (b *builder) BuildKeyer(_ apis.Config, aliases apis.AliasTable) apis.Keyer {
	return keyer.New(
		strategy.NewNamerStrategy(),
		strategy.NewAliasStrategy(aliases),
		strategy.NewReflectStrategy(),
	)
}
