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

package demo_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/locator"
	"dirpx.dev/locator/apis"
	"dirpx.dev/locator/internal/demo"
)

func TestWire(t *testing.T) {
	for _, lazy := range []bool{false, true} {
		var out bytes.Buffer
		l := locator.New()
		require.NoError(t, demo.Wire(l, demo.Options{From: "noreply@example.com", Prefix: "[app]", Out: &out, Lazy: lazy}))

		ns, err := locator.Resolve[*demo.NotificationService](l, demo.KeyNotification)
		require.NoError(t, err)
		require.NoError(t, ns.Notify("alice@example.com", "hello"))

		assert.Equal(t, "[app] notifying alice@example.com\nemail from=noreply@example.com to=alice@example.com: hello\n", out.String())

		kinds := map[string]apis.Kind{}
		for _, e := range l.Entries() {
			kinds[e.Key] = e.Kind
		}
		want := apis.KindFactory
		if lazy {
			want = apis.KindLazy
		}
		assert.Equal(t, want, kinds[demo.KeyNotification])
	}
}

func TestWire_OverwriteBeforeUse(t *testing.T) {
	var out, other bytes.Buffer
	l := locator.New()
	require.NoError(t, demo.Wire(l, demo.Options{From: "a@example.com", Prefix: "[1]", Out: &out, Lazy: true}))
	replacement := &demo.Logger{Prefix: "[2]", Out: &other}
	l.RegisterInstance(demo.KeyLogger, replacement)

	ns := locator.MustResolve[*demo.NotificationService](l, demo.KeyNotification)
	require.NoError(t, ns.Notify("bob@example.com", "hi"))
	assert.Equal(t, "[2] notifying bob@example.com\n", other.String())
}
