// Copyright 2023 Lack (xingyys@gmail.com).
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vine-io/flow-editor/converter"
	"github.com/vine-io/flow-editor/dict"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flowconv.yaml")
	data := []byte(`
target_namespace: http://example.com/leave
workers: 2
cache_size: 8
models:
  forms:
    - id: f1
      name: Leave
      key: leaveForm
  decision_tables:
    - id: d1
      key: risk
`)
	if !assert.NoError(t, os.WriteFile(path, data, 0o644)) {
		return
	}

	cfg, err := LoadConfig(path)
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, "http://example.com/leave", cfg.TargetNamespace)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 8, cfg.CacheSize)
	assert.Equal(t, "  ", cfg.Indent, "unset values keep their defaults")

	r := newStaticResolver(cfg.Models)
	key, ok := r.KeyForID(converter.FormModel, "f1")
	assert.True(t, ok)
	assert.Equal(t, "leaveForm", key)

	info, ok := r.InfoForKey(converter.DecisionTableModel, "risk")
	if assert.True(t, ok) {
		assert.Equal(t, "d1", info.ID)
	}
	_, ok = r.KeyForID(converter.DecisionServiceModel, "d1")
	assert.False(t, ok)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig(defaultConfigPath)
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, dict.DefaultTargetNS, cfg.TargetNamespace)
	assert.Equal(t, 4, cfg.Workers)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "only the default file may be missing")
}

func TestLoadConfigInvalid(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		body string
	}{
		{"no workers", "workers: 0\n"},
		{"model without key", "models:\n  forms:\n    - id: f1\n"},
		{"not yaml", "workers: [\n"},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			if !assert.NoError(t, os.WriteFile(path, []byte(tt.body), 0o644)) {
				return
			}
			_, err := LoadConfig(path)
			assert.Error(t, err, "case %d", i)
		})
	}
}

func TestNamespaceFromEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("FLOWCONV_NAMESPACE", "urn:flows")

	cfg, err := LoadConfig(defaultConfigPath)
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, "urn:flows", cfg.TargetNamespace)

	conv, err := cfg.NewConverter()
	if assert.NoError(t, err) {
		assert.Equal(t, "urn:flows", conv.Options().TargetNamespace)
	}
}
