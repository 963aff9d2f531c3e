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

var subProcessConverter = &nodeConverter{
	stencil:  subProcessStencil,
	toJSON:   subProcessToJSON,
	toDomain: subProcessToDomain,
}

var adhocSubProcessConverter = &nodeConverter{
	stencil:  fixedStencil(dict.StencilAdhocSubProcess),
	toJSON:   adhocSubProcessToJSON,
	toDomain: adhocSubProcessToDomain,
}

// subProcessStencil returns the expanded stencil. Whether a sub process is
// drawn collapsed is a diagram property, the shape is switched to the
// collapsed stencil when it is written.
func subProcessStencil(elem bpmn.Element) string {
	if elem.GetShape() == bpmn.EventSubProcessShape {
		return dict.StencilEventSubProcess
	}
	return dict.StencilSubProcess
}

func subProcessToJSON(ctx Context, elem bpmn.Element, shape codec.Node) error {
	sub, ok := elem.(bpmn.SubProcessElement)
	if !ok {
		return fmt.Errorf("%v is not SubProcess", elem.GetID())
	}

	info := ctx.Model().GetGraphicInfo(elem.GetID())
	stencil := codec.StencilID(shape)
	if info.Collapsed() && stencil == dict.StencilSubProcess {
		stencil = dict.StencilCollapsedSubProcess
		shape[dict.EditorStencil] = codec.Node{dict.EditorStencilID: stencil}
	}

	props := codec.ShapeProperties(shape)
	props[dict.PropertyActivityType] = stencil
	containerToJSON(ctx, sub, info, shape)
	codec.PutTrue(props, dict.PropertyIsTransaction, sub.Sub().Transaction)
	dataPropertiesToJSON(props, sub.Sub().DataObjects)
	return nil
}

// containerToJSON writes the children of a sub process. Children of an
// expanded sub process are placed relative to it, a collapsed one keeps the
// absolute positions of its own diagram.
func containerToJSON(ctx Context, sub bpmn.SubProcessElement, info *bpmn.GraphicInfo, shape codec.Node) {
	child := ctx.WithContainer(sub).WithLane(nil).WithOffset(0, 0)
	if !info.Collapsed() {
		child = child.WithOffset(info.X, info.Y)
	}
	shape[dict.EditorChildShapes] = ctx.walker.elementsToJSON(child, sub)
}

func subProcessToDomain(ctx Context, shape codec.Node) (bpmn.Element, error) {
	var sub bpmn.SubProcessElement
	switch codec.StencilID(shape) {
	case dict.StencilEventSubProcess:
		sub = &bpmn.EventSubProcess{}
	default:
		sub = &bpmn.SubProcess{}
	}
	if err := containerToDomain(ctx, sub, shape); err != nil {
		return nil, err
	}
	sub.Sub().Transaction = codec.GetBool(dict.PropertyIsTransaction, shape, false)
	return sub, nil
}

// containerToDomain fills a sub process from its shape: children, data
// objects and the collapsed flag of its diagram.
func containerToDomain(ctx Context, sub bpmn.SubProcessElement, shape codec.Node) error {
	id := codec.ElementID(shape)
	if len(id) == 0 {
		return fmt.Errorf("sub process %s has no id", codec.ResourceID(shape))
	}
	// children resolve their parent by id before the base sets it
	sub.SetID(id)
	sub.Sub().DataObjects = parseDataProperties(shape)
	ctx.walker.shapesToDomain(ctx.WithContainer(sub).WithLane(nil), codec.ChildShapes(shape))

	if codec.StencilID(shape) == dict.StencilCollapsedSubProcess {
		if info := ctx.Model().GetGraphicInfo(id); info != nil {
			info.SetExpanded(false)
		}
	}
	return nil
}

func adhocSubProcessToJSON(ctx Context, elem bpmn.Element, shape codec.Node) error {
	sub, ok := elem.(*bpmn.AdhocSubProcess)
	if !ok {
		return fmt.Errorf("%v is not AdhocSubProcess", elem.GetID())
	}

	info := ctx.Model().GetGraphicInfo(elem.GetID())
	props := codec.ShapeProperties(shape)
	containerToJSON(ctx, sub, info, shape)
	codec.PutString(props, dict.PropertyCompletionCondition, sub.CompletionCondition)
	codec.PutString(props, dict.PropertyOrdering, sub.Ordering)
	props[dict.PropertyCancelRemainingInstances] = sub.CancelRemainingInstances
	dataPropertiesToJSON(props, sub.DataObjects)
	return nil
}

func adhocSubProcessToDomain(ctx Context, shape codec.Node) (bpmn.Element, error) {
	sub := bpmn.NewAdhocSubProcess()
	if err := containerToDomain(ctx, sub, shape); err != nil {
		return nil, err
	}
	sub.CompletionCondition = codec.String(dict.PropertyCompletionCondition, shape)
	if ordering := codec.String(dict.PropertyOrdering, shape); len(ordering) > 0 {
		sub.Ordering = ordering
	}
	sub.CancelRemainingInstances = codec.GetBool(dict.PropertyCancelRemainingInstances, shape, true)
	return sub, nil
}
