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

// Package metrics exposes Prometheus collectors for locator registries.
//
// All metrics are prefixed with "locator_" and labeled with the registry
// name (apis.Config.Name):
//   - locator_registrations_total{registry,kind}
//   - locator_overwrites_total{registry}
//   - locator_resolutions_total{registry,result}   result: hit, miss, error
//   - locator_lazy_builds_total{registry,result}   result: ok, error
//   - locator_entries{registry}
//
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Resolution results.
const (
	ResultHit   = "hit"
	ResultMiss  = "miss"
	ResultError = "error"
	ResultOK    = "ok"
)

// Metrics holds the locator collectors.
type Metrics struct {
	Registrations *prometheus.CounterVec
	Overwrites    *prometheus.CounterVec
	Resolutions   *prometheus.CounterVec
	LazyBuilds    *prometheus.CounterVec
	Entries       *prometheus.GaugeVec
}

// New creates the collectors and registers them with reg.
// Use a dedicated prometheus.NewRegistry() per test to avoid duplicate
// registration panics; nil reg creates unregistered collectors.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Registrations: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "locator_registrations_total",
				Help: "Total number of bindings registered",
			},
			[]string{"registry", "kind"},
		),
		Overwrites: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "locator_overwrites_total",
				Help: "Total number of registrations that replaced an existing binding",
			},
			[]string{"registry"},
		),
		Resolutions: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "locator_resolutions_total",
				Help: "Total number of resolve calls by result",
			},
			[]string{"registry", "result"},
		),
		LazyBuilds: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "locator_lazy_builds_total",
				Help: "Total number of lazy factory invocations by result",
			},
			[]string{"registry", "result"},
		),
		Entries: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "locator_entries",
				Help: "Current number of bound keys",
			},
			[]string{"registry"},
		),
	}
}

// ObserveRegistration records a registration of the given kind.
func (m *Metrics) ObserveRegistration(registry, kind string, overwrite bool) {
	if m == nil {
		return
	}
	m.Registrations.WithLabelValues(registry, kind).Inc()
	if overwrite {
		m.Overwrites.WithLabelValues(registry).Inc()
	}
}

// ObserveResolution records the result of a resolve call.
func (m *Metrics) ObserveResolution(registry, result string) {
	if m == nil {
		return
	}
	m.Resolutions.WithLabelValues(registry, result).Inc()
}

// ObserveLazyBuild records a lazy factory invocation.
func (m *Metrics) ObserveLazyBuild(registry string, err error) {
	if m == nil {
		return
	}
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	m.LazyBuilds.WithLabelValues(registry, result).Inc()
}

// SetEntries sets the number of bound keys.
func (m *Metrics) SetEntries(registry string, n int) {
	if m == nil {
		return
	}
	m.Entries.WithLabelValues(registry).Set(float64(n))
}

// Forget drops the entries gauge of a registry label that is no longer in
// use. Counters are kept.
func (m *Metrics) Forget(registry string) {
	if m == nil {
		return
	}
	m.Entries.DeleteLabelValues(registry)
}
