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

package converter

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ModelKind names the kind of modeler artifact a reference points to.
type ModelKind int32

const (
	FormModel ModelKind = iota + 1
	DecisionTableModel
	DecisionServiceModel
)

func (k ModelKind) String() string {
	switch k {
	case FormModel:
		return "form"
	case DecisionTableModel:
		return "decisionTable"
	case DecisionServiceModel:
		return "decisionService"
	default:
		return "unknown"
	}
}

// ModelInfo identifies a modeler artifact.
type ModelInfo struct {
	ID   string
	Name string
	Key  string
}

// ReferenceResolver maps the form and decision references of the editor
// (model ids) to the keys stored on the process graph and back.
type ReferenceResolver interface {
	// KeyForID returns the key of the model with the id.
	KeyForID(kind ModelKind, id string) (string, bool)
	// InfoForKey returns the model registered under the key.
	InfoForKey(kind ModelKind, key string) (*ModelInfo, bool)
}

var _ ReferenceResolver = NopResolver{}

// NopResolver knows no models. Every lookup misses.
type NopResolver struct{}

func (NopResolver) KeyForID(ModelKind, string) (string, bool) {
	return "", false
}

func (NopResolver) InfoForKey(ModelKind, string) (*ModelInfo, bool) {
	return nil, false
}

var _ ReferenceResolver = (*CachedResolver)(nil)

type cachedKey struct {
	value string
	ok    bool
}

type cachedInfo struct {
	info *ModelInfo
	ok   bool
}

// CachedResolver remembers the answers of another resolver, misses included.
type CachedResolver struct {
	next  ReferenceResolver
	keys  *lru.Cache[string, cachedKey]
	infos *lru.Cache[string, cachedInfo]
}

// NewCachedResolver wraps next with two caches of size entries each.
func NewCachedResolver(next ReferenceResolver, size int) (*CachedResolver, error) {
	if next == nil {
		return nil, fmt.Errorf("resolver is nil")
	}
	keys, err := lru.New[string, cachedKey](size)
	if err != nil {
		return nil, fmt.Errorf("create key cache: %w", err)
	}
	infos, err := lru.New[string, cachedInfo](size)
	if err != nil {
		return nil, fmt.Errorf("create info cache: %w", err)
	}
	return &CachedResolver{next: next, keys: keys, infos: infos}, nil
}

func (r *CachedResolver) KeyForID(kind ModelKind, id string) (string, bool) {
	k := kind.String() + "/" + id
	if v, ok := r.keys.Get(k); ok {
		return v.value, v.ok
	}
	value, ok := r.next.KeyForID(kind, id)
	r.keys.Add(k, cachedKey{value: value, ok: ok})
	return value, ok
}

func (r *CachedResolver) InfoForKey(kind ModelKind, key string) (*ModelInfo, bool) {
	k := kind.String() + "/" + key
	if v, ok := r.infos.Get(k); ok {
		return v.info, v.ok
	}
	info, ok := r.next.InfoForKey(kind, key)
	r.infos.Add(k, cachedInfo{info: info, ok: ok})
	return info, ok
}

// Purge drops every cached answer.
func (r *CachedResolver) Purge() {
	r.keys.Purge()
	r.infos.Purge()
}
