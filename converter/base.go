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

// nodeConverter holds what every element family shares. The hooks add the
// family specific part on both sides.
type nodeConverter struct {
	stencil func(elem bpmn.Element) string
	// toJSON fills the family properties of the shape built by the base.
	toJSON func(ctx Context, elem bpmn.Element, shape codec.Node) error
	// toDomain builds the bare element of a shape.
	toDomain func(ctx Context, shape codec.Node) (bpmn.Element, error)
}

var _ ElementConverter = (*nodeConverter)(nil)

func (c *nodeConverter) StencilID(elem bpmn.Element) string {
	return c.stencil(elem)
}

func (c *nodeConverter) ToJSON(ctx Context, elem bpmn.Element) ([]codec.Node, error) {
	model := ctx.Model()
	info := model.GetGraphicInfo(elem.GetID())
	if info == nil {
		return nil, fmt.Errorf("element %s has no graphic info", elem.GetID())
	}

	offset := ctx.Offset()
	x, y := info.X-offset.X, info.Y-offset.Y
	shape := codec.NewShape(elem.GetID(), c.StencilID(elem), x+info.Width, y+info.Height, x, y)
	props := codec.ShapeProperties(shape)
	props[dict.PropertyOverrideID] = elem.GetID()
	codec.PutString(props, dict.PropertyName, elem.GetName())
	codec.PutString(props, dict.PropertyDocumentation, elem.GetDocument())

	if c.toJSON != nil {
		if err := c.toJSON(ctx, elem, shape); err != nil {
			return nil, err
		}
	}

	shapes := []codec.Node{shape}
	out := &outgoing{}
	if node, ok := elem.(bpmn.FlowNode); ok {
		for _, flow := range node.Node().Outgoing {
			out.add(flow.Id)
		}
		for _, flow := range model.MessageFlows() {
			if flow.SourceRef == elem.GetID() {
				out.add(flow.Id)
			}
		}
		if main := model.MainProcess(); main != nil {
			out.addAssociations(main, elem.GetID())
		}
	}

	switch v := elem.(type) {
	case bpmn.Activity:
		meta := v.Activity()
		for _, event := range meta.BoundaryEvents {
			out.add(event.Id)
		}
		props[dict.PropertyAsynchronous] = v.Node().Asynchronous
		props[dict.PropertyExclusive] = !v.Node().NotExclusive
		props[dict.PropertyForCompensation] = meta.ForCompensation
		multiInstanceToJSON(props, meta.MultiInstance)
		if task, ok := v.(*bpmn.UserTask); ok {
			props[dict.PropertyTaskListeners] = listenersToJSON(dict.ValueTaskListeners, task.TaskListeners)
		}
		for _, association := range meta.DataInputAssociations {
			if model.GetFlowElement(association.SourceRef) == nil {
				continue
			}
			shapes = append(shapes, connectorShape(ctx, association.Id, dict.StencilDataAssociation,
				association.SourceRef, v.GetID(), nil))
		}
		for _, association := range meta.DataOutputAssociations {
			if model.GetFlowElement(association.TargetRef) == nil {
				continue
			}
			shapes = append(shapes, connectorShape(ctx, association.Id, dict.StencilDataAssociation,
				v.GetID(), association.TargetRef, nil))
			out.add(association.Id)
		}
	case bpmn.Gateway:
		props[dict.PropertyAsynchronous] = v.Node().Asynchronous
		props[dict.PropertyExclusive] = !v.Node().NotExclusive
	}

	if flowElement, ok := elem.(bpmn.FlowElement); ok {
		props[dict.PropertyExecutionListeners] = listenersToJSON(dict.ValueExecutionListeners, flowElement.GetExecutionListeners())
	}
	if container := ctx.Container(); container != nil {
		out.addAssociations(container, elem.GetID())
	}
	if _, ok := elem.(*bpmn.DataStoreReference); ok {
		for _, process := range model.Processes {
			out.addDataStoreReads(process, elem.GetID())
		}
	}

	shape[dict.EditorOutgoing] = out.items()
	return shapes, nil
}

func (c *nodeConverter) ToDomain(ctx Context, shape codec.Node) (bpmn.Element, error) {
	elem, err := c.toDomain(ctx, shape)
	if err != nil {
		return nil, err
	}

	elem.SetID(codec.ElementID(shape))
	elem.SetName(codec.String(dict.PropertyName, shape))
	elem.SetDocument(codec.String(dict.PropertyDocumentation, shape))

	if flowElement, ok := elem.(bpmn.FlowElement); ok {
		flowElement.SetExecutionListeners(parseListeners(dict.PropertyExecutionListeners, dict.ValueExecutionListeners, shape))
	}

	switch v := elem.(type) {
	case bpmn.Activity:
		v.Node().Asynchronous = codec.GetBool(dict.PropertyAsynchronous, shape, false)
		v.Node().NotExclusive = !codec.GetBool(dict.PropertyExclusive, shape, false)
		v.Activity().ForCompensation = codec.GetBool(dict.PropertyForCompensation, shape, false)
		v.Activity().MultiInstance = parseMultiInstance(shape)
		if task, ok := v.(*bpmn.UserTask); ok {
			task.TaskListeners = parseListeners(dict.PropertyTaskListeners, dict.ValueTaskListeners, shape)
		}
	case bpmn.Gateway:
		v.Node().Asynchronous = codec.GetBool(dict.PropertyAsynchronous, shape, false)
		v.Node().NotExclusive = !codec.GetBool(dict.PropertyExclusive, shape, false)
		if order := codec.GetObject(dict.PropertySequenceflowOrder, shape); order != nil {
			for _, id := range texts(order[dict.ValueSequenceFlowOrder]) {
				v.GetExtensions().Add(&bpmn.ExtensionElement{Name: dict.ExtensionFlowOrder, Text: id})
			}
		}
	case *bpmn.SequenceFlow:
		v.GetExtensions().Add(&bpmn.ExtensionElement{Name: dict.ExtensionResourceID, Text: codec.ResourceID(shape)})
	}

	if err = attach(ctx, elem); err != nil {
		return nil, err
	}
	return elem, nil
}

// attach adds elem to the lane or container of ctx.
func attach(ctx Context, elem bpmn.Element) error {
	var container bpmn.FlowElementsContainer
	if lane := ctx.Lane(); lane != nil {
		if lane.ParentProcess == nil {
			return fmt.Errorf("lane %s has no process", lane.Id)
		}
		lane.AddReference(elem.GetID())
		container = lane.ParentProcess
	} else {
		container = ctx.Container()
	}

	switch v := elem.(type) {
	case *bpmn.MessageFlow:
		ctx.Model().AddMessageFlow(v)
		return nil
	case *bpmn.TextAnnotation, *bpmn.Association:
		if container == nil {
			return fmt.Errorf("%v has no container", elem.GetID())
		}
		container.AddArtifact(v)
	case bpmn.FlowElement:
		if container == nil {
			return fmt.Errorf("%v has no container", elem.GetID())
		}
		container.AddFlowElement(v)
	default:
		return fmt.Errorf("%v is not FlowElement", elem.GetID())
	}
	return nil
}

// outgoing collects the resource references of a shape, each id once.
type outgoing struct {
	ids  []string
	seen map[string]struct{}
}

func (o *outgoing) add(id string) {
	if len(id) == 0 {
		return
	}
	if o.seen == nil {
		o.seen = map[string]struct{}{}
	}
	if _, ok := o.seen[id]; ok {
		return
	}
	o.seen[id] = struct{}{}
	o.ids = append(o.ids, id)
}

// addAssociations adds the associations of container that start at source.
func (o *outgoing) addAssociations(container bpmn.FlowElementsContainer, source string) {
	for _, artifact := range container.Artifacts() {
		if association, ok := artifact.(*bpmn.Association); ok && association.SourceRef == source {
			o.add(association.Id)
		}
	}
}

// addDataStoreReads adds the data input associations reading from the store,
// descending into sub processes.
func (o *outgoing) addDataStoreReads(container bpmn.FlowElementsContainer, store string) {
	for _, elem := range container.FlowElements() {
		if activity, ok := elem.(bpmn.Activity); ok {
			for _, association := range activity.Activity().DataInputAssociations {
				if association.SourceRef == store {
					o.add(association.Id)
				}
			}
		}
		if sub, ok := elem.(bpmn.SubProcessElement); ok {
			o.addDataStoreReads(sub, store)
		}
	}
}

func (o *outgoing) items() []interface{} {
	out := make([]interface{}, 0, len(o.ids))
	for _, id := range o.ids {
		out = append(out, codec.ResourceRef(id))
	}
	return out
}

// connectorShape builds the shape of an edge. The first docker is the
// center of the source, the last one is end or the center of the target.
func connectorShape(ctx Context, id, stencil, sourceRef, targetRef string, end codec.Node) codec.Node {
	model := ctx.Model()
	shape := codec.NewShape(id, stencil, 172, 212, 128, 212)

	dockers := make([]interface{}, 0, 2)
	if source := model.GetGraphicInfo(sourceRef); source != nil {
		dockers = append(dockers, codec.NewPoint(source.Width/2, source.Height/2))
	}
	if waypoints := model.GetFlowLocationGraphicInfo(id); len(waypoints) > 2 {
		for _, p := range waypoints[1 : len(waypoints)-1] {
			dockers = append(dockers, codec.NewPoint(p.X, p.Y))
		}
	}
	if end == nil {
		if target := model.GetGraphicInfo(targetRef); target != nil {
			end = codec.NewPoint(target.Width/2, target.Height/2)
		}
	}
	if end != nil {
		dockers = append(dockers, end)
	}

	shape[dict.EditorDockers] = dockers
	shape[dict.EditorOutgoing] = []interface{}{codec.ResourceRef(targetRef)}
	shape[dict.EditorTarget] = codec.ResourceRef(targetRef)
	codec.ShapeProperties(shape)[dict.PropertyOverrideID] = id
	return shape
}

// nullable returns nil for an empty value so it is written as JSON null.
func nullable(value string) interface{} {
	if len(value) == 0 {
		return nil
	}
	return value
}

// texts returns the scalar items of an array value as text.
func texts(value interface{}) []string {
	items, ok := codec.Decode(value).([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if text := codec.Text(item); len(text) > 0 {
			out = append(out, text)
		}
	}
	return out
}
