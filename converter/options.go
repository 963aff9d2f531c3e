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

import "github.com/vine-io/flow-editor/dict"

// Options configures a Converter.
type Options struct {
	// Resolver maps form and decision references, NopResolver when unset.
	Resolver ReferenceResolver
	// TargetNamespace is used when a document names none.
	TargetNamespace string
}

// Option represents a configuration option for Converter.
type Option func(o *Options)

func NewOptions(opts ...Option) Options {
	var options Options
	for _, o := range opts {
		o(&options)
	}

	if options.Resolver == nil {
		options.Resolver = NopResolver{}
	}
	if options.TargetNamespace == "" {
		options.TargetNamespace = dict.DefaultTargetNS
	}
	return options
}

// WithResolver sets the reference resolver.
func WithResolver(resolver ReferenceResolver) Option {
	return func(o *Options) {
		o.Resolver = resolver
	}
}

// WithTargetNamespace sets the default target namespace of converted models.
func WithTargetNamespace(namespace string) Option {
	return func(o *Options) {
		o.TargetNamespace = namespace
	}
}
