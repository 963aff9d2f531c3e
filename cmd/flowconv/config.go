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
	"fmt"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/mitchellh/go-homedir"
	"github.com/vine-io/flow-editor/converter"
	"github.com/vine-io/flow-editor/dict"
	"gopkg.in/yaml.v2"
)

const defaultConfigPath = "~/.flowconv.yaml"

// ModelEntry registers a form or decision model for reference lookups.
type ModelEntry struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Key  string `yaml:"key"`
}

func (e ModelEntry) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.ID, validation.Required),
		validation.Field(&e.Key, validation.Required),
	)
}

// Models lists the modeler artifacts known to the converter.
type Models struct {
	Forms            []ModelEntry `yaml:"forms"`
	DecisionTables   []ModelEntry `yaml:"decision_tables"`
	DecisionServices []ModelEntry `yaml:"decision_services"`
}

// Config is the configuration of flowconv.
type Config struct {
	TargetNamespace string `yaml:"target_namespace"`
	Workers         int    `yaml:"workers"`
	Indent          string `yaml:"indent"`
	CacheSize       int    `yaml:"cache_size"`
	Models          Models `yaml:"models"`
}

func DefaultConfig() *Config {
	return &Config{
		TargetNamespace: dict.DefaultTargetNS,
		Workers:         4,
		Indent:          "  ",
		CacheSize:       128,
	}
}

func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Workers, validation.Min(1)),
		validation.Field(&c.CacheSize, validation.Min(1)),
		validation.Field(&c.Models),
	)
}

func (m Models) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Forms),
		validation.Field(&m.DecisionTables),
		validation.Field(&m.DecisionServices),
	)
}

// LoadConfig reads the yaml file at path. A missing file yields the
// defaults. FLOWCONV_NAMESPACE overrides the target namespace.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return nil, fmt.Errorf("expand %s: %w", path, err)
		}
		data, err := os.ReadFile(expanded)
		switch {
		case err == nil:
			if err = yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", expanded, err)
			}
		case os.IsNotExist(err) && path == defaultConfigPath:
		default:
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if ns := os.Getenv("FLOWCONV_NAMESPACE"); ns != "" {
		cfg.TargetNamespace = ns
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// NewConverter builds a converter whose reference lookups are served from
// the configured models.
func (c *Config) NewConverter() (*converter.Converter, error) {
	resolver, err := converter.NewCachedResolver(newStaticResolver(c.Models), c.CacheSize)
	if err != nil {
		return nil, err
	}
	return converter.New(
		converter.WithResolver(resolver),
		converter.WithTargetNamespace(c.TargetNamespace),
	), nil
}

var _ converter.ReferenceResolver = (*staticResolver)(nil)

// staticResolver answers lookups from the configuration file.
type staticResolver struct {
	byID  map[converter.ModelKind]map[string]*converter.ModelInfo
	byKey map[converter.ModelKind]map[string]*converter.ModelInfo
}

func newStaticResolver(models Models) *staticResolver {
	r := &staticResolver{
		byID:  map[converter.ModelKind]map[string]*converter.ModelInfo{},
		byKey: map[converter.ModelKind]map[string]*converter.ModelInfo{},
	}
	r.register(converter.FormModel, models.Forms)
	r.register(converter.DecisionTableModel, models.DecisionTables)
	r.register(converter.DecisionServiceModel, models.DecisionServices)
	return r
}

func (r *staticResolver) register(kind converter.ModelKind, entries []ModelEntry) {
	ids := map[string]*converter.ModelInfo{}
	keys := map[string]*converter.ModelInfo{}
	for _, entry := range entries {
		info := &converter.ModelInfo{ID: entry.ID, Name: entry.Name, Key: entry.Key}
		ids[entry.ID] = info
		keys[entry.Key] = info
	}
	r.byID[kind] = ids
	r.byKey[kind] = keys
}

func (r *staticResolver) KeyForID(kind converter.ModelKind, id string) (string, bool) {
	info, ok := r.byID[kind][id]
	if !ok {
		return "", false
	}
	return info.Key, true
}

func (r *staticResolver) InfoForKey(kind converter.ModelKind, key string) (*converter.ModelInfo, bool) {
	info, ok := r.byKey[kind][key]
	return info, ok
}
