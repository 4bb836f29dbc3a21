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

package metrics_test

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/locator/metrics"
)

func TestMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.ObserveRegistration("billing", "instance", false)
	m.ObserveRegistration("billing", "instance", true)
	m.ObserveRegistration("billing", "lazy", false)
	m.ObserveResolution("billing", metrics.ResultHit)
	m.ObserveResolution("billing", metrics.ResultMiss)
	m.ObserveLazyBuild("billing", nil)
	m.ObserveLazyBuild("billing", errors.New("boom"))
	m.SetEntries("billing", 2)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Registrations.WithLabelValues("billing", "instance")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Registrations.WithLabelValues("billing", "lazy")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Overwrites.WithLabelValues("billing")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Resolutions.WithLabelValues("billing", metrics.ResultHit)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Resolutions.WithLabelValues("billing", metrics.ResultMiss)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LazyBuilds.WithLabelValues("billing", metrics.ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LazyBuilds.WithLabelValues("billing", metrics.ResultError)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Entries.WithLabelValues("billing")))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 5)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.ObserveRegistration("x", "instance", true)
		m.ObserveResolution("x", metrics.ResultHit)
		m.ObserveLazyBuild("x", nil)
		m.SetEntries("x", 1)
		m.Forget("x")
	})
}

func TestMetrics_Forget(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	m.SetEntries("old", 3)
	m.SetEntries("new", 3)
	m.ObserveRegistration("old", "instance", false)

	m.Forget("old")
	m.Forget("unknown")

	assert.Equal(t, 1, testutil.CollectAndCount(m.Entries))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.Entries.WithLabelValues("new")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Registrations.WithLabelValues("old", "instance")), "counters survive")
}

func TestMetrics_SeparateRegistries(t *testing.T) {
	// Two sets on distinct registries must not collide.
	assert.NotPanics(t, func() {
		metrics.New(prometheus.NewRegistry())
		metrics.New(prometheus.NewRegistry())
	})
}
