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

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestNotify(t *testing.T) {
	stdout, stderr, err := run(t, "notify", "alice@example.com", "build finished")
	require.NoError(t, err)

	assert.Contains(t, stdout, "[default] notifying alice@example.com")
	assert.Contains(t, stdout, "email from=noreply@example.com to=alice@example.com: build finished")
	assert.Contains(t, stderr, "notification sent")
}

func TestNotify_WrongArgs(t *testing.T) {
	_, _, err := run(t, "notify", "alice@example.com")
	assert.Error(t, err)
}

func TestEntries_Text(t *testing.T) {
	stdout, _, err := run(t, "entries", "--lazy")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "KEY"))
	assert.Contains(t, lines[1], "EmailService")
	assert.Contains(t, lines[1], "*demo.EmailService")
	assert.Contains(t, lines[3], "NotificationService")
	assert.Contains(t, lines[3], "lazy")
	assert.Contains(t, lines[3], "(pending)")
}

func TestEntries_JSON(t *testing.T) {
	stdout, _, err := run(t, "entries", "--format", "json")
	require.NoError(t, err)

	var views []entryView
	require.NoError(t, json.Unmarshal([]byte(stdout), &views))
	require.Len(t, views, 3)
	assert.Equal(t, "EmailService", views[0].Key)
	assert.Equal(t, "instance", views[0].Kind.String())
	assert.Equal(t, "NotificationService", views[2].Key)
	assert.Equal(t, "factory", views[2].Kind.String())
	assert.Equal(t, "*demo.NotificationService", views[2].Type)
}

func TestEntries_BadFormat(t *testing.T) {
	_, _, err := run(t, "entries", "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestConfigAndMetrics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locator.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: billing\n"), 0o600))

	stdout, _, err := run(t, "--config", path, "--metrics", "--log-format", "json", "notify", "bob@example.com", "hi")
	require.NoError(t, err)

	assert.Contains(t, stdout, "[billing] notifying bob@example.com")
	assert.Contains(t, stdout, `locator_registrations_total{kind="instance",registry="billing"} 2`)
	assert.Contains(t, stdout, `locator_registrations_total{kind="factory",registry="billing"} 1`)
	assert.Contains(t, stdout, `locator_entries{registry="billing"} 3`)
}

func TestBadFlags(t *testing.T) {
	_, _, err := run(t, "--log-level", "loud", "entries")
	assert.ErrorContains(t, err, "invalid log level")

	_, _, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "entries")
	assert.ErrorContains(t, err, "failed to stat config file")
}
