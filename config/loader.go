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

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"dirpx.dev/locator/apis"
)

const (
	// EnvPrefix is the prefix of environment variables read by Load.
	EnvPrefix = "LOCATOR_"

	maxConfigFileSize = 1024 * 1024 // 1MB
)

// Load builds an apis.Config from defaults, an optional YAML file and the
// environment.
//
// Precedence (highest to lowest):
//  1. Environment variables (LOCATOR_NAME, LOCATOR_WARN_ON_OVERWRITE, ...)
//  2. YAML file at path (skipped when path is empty)
//  3. DefaultConfig
//
// Keys are the koanf tags of apis.Config:
//
//	name: billing
//	warn_on_overwrite: true
//	include_builtins: false
//	max_unwrap: 4
//	map_prefer_elem: true
func Load(path string) (apis.Config, error) {
	k := koanf.New(".")

	if path != "" {
		content, err := readConfigFile(path)
		if err != nil {
			return apis.Config{}, err
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return apis.Config{}, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// LOCATOR_WARN_ON_OVERWRITE -> warn_on_overwrite
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return apis.Config{}, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := DefaultConfig()
	if err := k.Unmarshal("", &cfg); err != nil {
		return apis.Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return sanitize(cfg), nil
}

func readConfigFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("config path %s is a directory", path)
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file %s exceeds %d bytes", path, maxConfigFileSize)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return content, nil
}
