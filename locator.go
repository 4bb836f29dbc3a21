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

package locator

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"dirpx.dev/locator/apis"
	"dirpx.dev/locator/builder"
	"dirpx.dev/locator/config"
	"dirpx.dev/locator/metrics"
)

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("locator: builder returned nil registry")
	// ErrNilAliases is returned when a builder returns a nil alias table.
	ErrNilAliases = errors.New("locator: builder returned nil alias table")
	// ErrNilKeyer is returned when a builder returns a nil keyer.
	ErrNilKeyer = errors.New("locator: builder returned nil keyer")
)

// Option configures a Locator built by New.
type Option func(*options)

type options struct {
	cfg apis.Config
	bld apis.Builder
	log *zap.Logger
	met *metrics.Metrics
}

// WithConfig sets the initial configuration.
func WithConfig(cfg apis.Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// WithBuilder replaces the default builder. WithLogger and WithMetrics only
// apply to the default builder; a custom one wires its own.
func WithBuilder(b apis.Builder) Option {
	return func(o *options) {
		o.bld = b
	}
}

// WithLogger sets the logger. Every line carries the locator_id field.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithMetrics sets the Prometheus collectors.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) {
		o.met = m
	}
}

// Locator is an explicit service locator. The zero value is not usable;
// construct one with New.
//
// Reads load an immutable snapshot and take no locator lock. Writes hold a
// shared lock so that SetConfig, which rebuilds the snapshot, never loses a
// concurrent registration.
type Locator struct {
	id   string
	log  *zap.Logger
	met  *metrics.Metrics
	base *zap.Logger

	// custom is set when the builder came from WithBuilder.
	custom bool

	buildMu sync.RWMutex
	st      atomic.Pointer[state]
}

// state is never mutated after it is published.
type state struct {
	cfg     apis.Config
	bld     apis.Builder
	reg     apis.Registry
	aliases apis.AliasTable
	keyer   apis.Keyer
}

// Ensure Locator implements apis.Registry.
var _ apis.Registry = (*Locator)(nil)

// New constructs an empty Locator. It panics if a custom builder returns a
// nil component.
func New(opts ...Option) *Locator {
	o := options{cfg: config.DefaultConfig(), log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	l := newLocator(o.log, o.met)
	bld := o.bld
	if bld != nil {
		l.custom = true
	} else {
		bld = l.defaultBuilder()
	}
	l.st.Store(mustBuild(bld, o.cfg, nil))
	l.log.Debug("locator created", zap.String("registry", o.cfg.Name))
	return l
}

func newLocator(log *zap.Logger, met *metrics.Metrics) *Locator {
	id := uuid.NewString()
	return &Locator{
		id:   id,
		base: log,
		log:  log.With(zap.String("locator_id", id)),
		met:  met,
	}
}

func (l *Locator) defaultBuilder() apis.Builder {
	return builder.New(builder.WithLogger(l.log), builder.WithMetrics(l.met))
}

// mustBuild assembles a snapshot, migrating bindings and aliases from prev.
func mustBuild(bld apis.Builder, cfg apis.Config, prev *state) *state {
	var (
		preg     apis.Registry
		paliases apis.AliasTable
	)
	if prev != nil {
		preg, paliases = prev.reg, prev.aliases
	}

	reg := bld.BuildRegistry(cfg, preg)
	if reg == nil {
		panic(ErrNilRegistry)
	}
	aliases := bld.BuildAliases(cfg, paliases)
	if aliases == nil {
		panic(ErrNilAliases)
	}
	k := bld.BuildKeyer(cfg, aliases)
	if k == nil {
		panic(ErrNilKeyer)
	}
	return &state{cfg: cfg, bld: bld, reg: reg, aliases: aliases, keyer: k}
}

func registryName(cfg apis.Config) string {
	if cfg.Name == "" {
		return config.DefaultName
	}
	return cfg.Name
}

// ID returns the random identifier attached to this locator's log lines.
func (l *Locator) ID() string {
	return l.id
}

// Config returns the active configuration.
func (l *Locator) Config() apis.Config {
	return l.st.Load().cfg
}

// SetConfig rebuilds the registry, aliases and keyer for cfg, carrying over
// every binding and alias.
func (l *Locator) SetConfig(cfg apis.Config) {
	l.buildMu.Lock()
	defer l.buildMu.Unlock()

	old := l.st.Load()
	l.st.Store(mustBuild(old.bld, cfg, old))
	if prev := registryName(old.cfg); prev != registryName(cfg) {
		l.met.Forget(prev)
	}
	l.log.Debug("locator reconfigured", zap.String("registry", registryName(cfg)))
}

// Fork returns an isolated Locator holding a copy of the current bindings
// and aliases. Pending lazy bindings are copied unbuilt and share their
// factory with the parent. The fork's Config.Name is the parent's with a
// "-fork-<id prefix>" suffix, so its logs and metrics are labeled apart.
func (l *Locator) Fork() *Locator {
	l.buildMu.Lock()
	defer l.buildMu.Unlock()

	old := l.st.Load()
	f := newLocator(l.base, l.met)
	bld := old.bld
	if l.custom {
		f.custom = true
	} else {
		bld = f.defaultBuilder()
	}
	cfg := old.cfg
	cfg.Name = registryName(old.cfg) + "-fork-" + f.id[:8]
	f.st.Store(mustBuild(bld, cfg, old))

	l.log.Debug("locator forked", zap.String("fork_id", f.id), zap.String("fork_registry", cfg.Name), zap.Int("entries", old.reg.Count()))
	return f
}

// Registry returns the active registry.
func (l *Locator) Registry() apis.Registry {
	return l.st.Load().reg
}

// Aliases returns the active alias table.
func (l *Locator) Aliases() apis.AliasTable {
	return l.st.Load().aliases
}

// Alias maps t, and containers of t, to key for the type-keyed helpers.
func (l *Locator) Alias(t reflect.Type, key string) error {
	l.buildMu.RLock()
	defer l.buildMu.RUnlock()
	return l.st.Load().aliases.Register(t, key)
}

// Key returns the registry key derived from v's dynamic type.
func (l *Locator) Key(v any) string {
	s := l.st.Load()
	if key := s.keyer.Key(v, s.cfg); key != "" {
		return key
	}
	if v == nil {
		return ""
	}
	return reflect.TypeOf(v).String()
}

// KeyType returns the registry key derived from t. Types the keyer cannot
// name, such as unnamed structs, fall back to t.String().
func (l *Locator) KeyType(t reflect.Type) string {
	s := l.st.Load()
	if key := s.keyer.KeyType(t, s.cfg); key != "" {
		return key
	}
	if t == nil {
		return ""
	}
	return t.String()
}

// RegisterInstance stores v under key, overwriting any previous binding.
func (l *Locator) RegisterInstance(key string, v any) {
	l.buildMu.RLock()
	defer l.buildMu.RUnlock()
	l.st.Load().reg.RegisterInstance(key, v)
}

// RegisterFactory invokes f once and stores its result under key.
// f runs before any locator lock is taken, so it may register other keys.
func (l *Locator) RegisterFactory(key string, f apis.Factory) error {
	if f == nil {
		return apis.ErrNilFactory
	}
	v, err := f()

	l.buildMu.RLock()
	defer l.buildMu.RUnlock()
	return l.st.Load().reg.RegisterFactory(key, func() (any, error) { return v, err })
}

// RegisterLazyFactory stores f under key; it runs on the first Resolve.
func (l *Locator) RegisterLazyFactory(key string, f apis.Factory) error {
	l.buildMu.RLock()
	defer l.buildMu.RUnlock()
	return l.st.Load().reg.RegisterLazyFactory(key, f)
}

// Resolve returns the instance bound to key.
func (l *Locator) Resolve(key string) (any, error) {
	return l.st.Load().reg.Resolve(key)
}

// Has reports whether key is bound.
func (l *Locator) Has(key string) bool {
	return l.st.Load().reg.Has(key)
}

// Unregister removes key and reports whether it was bound.
func (l *Locator) Unregister(key string) bool {
	l.buildMu.RLock()
	defer l.buildMu.RUnlock()
	return l.st.Load().reg.Unregister(key)
}

// Entries returns a snapshot of the bindings.
func (l *Locator) Entries() []apis.Entry {
	return l.st.Load().reg.Entries()
}

// Count returns the number of bound keys.
func (l *Locator) Count() int {
	return l.st.Load().reg.Count()
}

// Reset clears all bindings and aliases.
func (l *Locator) Reset() {
	l.buildMu.RLock()
	defer l.buildMu.RUnlock()
	s := l.st.Load()
	s.reg.Reset()
	s.aliases.Reset()
}
