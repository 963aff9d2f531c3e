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

	"github.com/vine-io/flow-editor/bpmn"
	"github.com/vine-io/flow-editor/codec"
	"github.com/vine-io/flow-editor/dict"
)

var textAnnotationConverter = &nodeConverter{
	stencil: fixedStencil(dict.StencilTextAnnotation),
	toJSON: func(ctx Context, elem bpmn.Element, shape codec.Node) error {
		annotation, ok := elem.(*bpmn.TextAnnotation)
		if !ok {
			return fmt.Errorf("%v is not TextAnnotation", elem.GetID())
		}
		codec.PutString(codec.ShapeProperties(shape), dict.PropertyText, annotation.Text)
		return nil
	},
	toDomain: func(ctx Context, shape codec.Node) (bpmn.Element, error) {
		return &bpmn.TextAnnotation{Text: codec.String(dict.PropertyText, shape)}, nil
	},
}

var dataStoreConverter = &nodeConverter{
	stencil:  fixedStencil(dict.StencilDataStore),
	toJSON:   dataStoreToJSON,
	toDomain: dataStoreToDomain,
}

func dataStoreToJSON(ctx Context, elem bpmn.Element, shape codec.Node) error {
	ref, ok := elem.(*bpmn.DataStoreReference)
	if !ok {
		return fmt.Errorf("%v is not DataStoreReference", elem.GetID())
	}
	props := codec.ShapeProperties(shape)
	codec.PutString(props, dict.PropertyDataStoreRef, ref.DataStoreRef)
	codec.PutString(props, dict.PropertyItemSubjectRef, ref.ItemSubjectRef)
	codec.PutString(props, dict.PropertyDataState, ref.DataState)
	if store, ok := ctx.Model().DataStores[ref.DataStoreRef]; ok {
		codec.PutString(props, dict.PropertyDataStoreName, store.Name)
	}
	return nil
}

// dataStoreToDomain builds the reference and declares the referenced store
// on the model when it is not known yet.
func dataStoreToDomain(ctx Context, shape codec.Node) (bpmn.Element, error) {
	ref := &bpmn.DataStoreReference{
		DataStoreRef:   codec.String(dict.PropertyDataStoreRef, shape),
		ItemSubjectRef: codec.String(dict.PropertyItemSubjectRef, shape),
		DataState:      codec.String(dict.PropertyDataState, shape),
	}
	model := ctx.Model()
	if len(ref.DataStoreRef) > 0 {
		if _, ok := model.DataStores[ref.DataStoreRef]; !ok {
			model.AddDataStore(&bpmn.DataStore{
				Id:             ref.DataStoreRef,
				Name:           codec.String(dict.PropertyDataStoreName, shape),
				DataState:      ref.DataState,
				ItemSubjectRef: ref.ItemSubjectRef,
			})
		}
	}
	return ref, nil
}
