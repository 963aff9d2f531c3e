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
	"math"
	"strings"

	"github.com/vine-io/flow-editor/bpmn"
	"github.com/vine-io/flow-editor/codec"
	"github.com/vine-io/flow-editor/dict"
)

const (
	conditionExpression  = "expression"
	conditionType        = "type"
	conditionFieldType   = "fieldType"
	conditionStaticValue = "staticValue"
	conditionVariables   = "variables"
	conditionField       = "field"
	conditionOutcome     = "outcome"

	// sideTolerance is how close the last waypoint must be to a side of the
	// target for an association to dock on that side.
	sideTolerance = 5
)

// edgeConverter converts connectors. Their shapes carry dockers instead of
// bounds, so the whole shape is built by toShape.
type edgeConverter struct {
	*nodeConverter
	toShape func(ctx Context, elem bpmn.Element) (codec.Node, error)
}

var _ ElementConverter = (*edgeConverter)(nil)

func (c *edgeConverter) ToJSON(ctx Context, elem bpmn.Element) ([]codec.Node, error) {
	shape, err := c.toShape(ctx, elem)
	if err != nil {
		return nil, err
	}
	return []codec.Node{shape}, nil
}

var sequenceFlowConverter = &edgeConverter{
	nodeConverter: &nodeConverter{
		stencil:  fixedStencil(dict.StencilSequenceFlow),
		toDomain: sequenceFlowToDomain,
	},
	toShape: sequenceFlowShape,
}

var messageFlowConverter = &edgeConverter{
	nodeConverter: &nodeConverter{
		stencil:  fixedStencil(dict.StencilMessageFlow),
		toDomain: messageFlowToDomain,
	},
	toShape: messageFlowShape,
}

var associationConverter = &edgeConverter{
	nodeConverter: &nodeConverter{
		stencil:  fixedStencil(dict.StencilAssociation),
		toDomain: associationToDomain,
	},
	toShape: associationShape,
}

// dataAssociationConverter has no element of its own: the association is
// stored on the activity it belongs to, and the activity writes its shape.
var dataAssociationConverter = &dataAssociationEdge{}

// placed checks that both ends of an edge are drawn.
func placed(ctx Context, id, sourceRef, targetRef string) error {
	model := ctx.Model()
	if model.GetGraphicInfo(sourceRef) == nil && model.Pool(sourceRef) == nil {
		return fmt.Errorf("source %s of %s is not placed", sourceRef, id)
	}
	if model.GetGraphicInfo(targetRef) == nil && model.Pool(targetRef) == nil {
		return fmt.Errorf("target %s of %s is not placed", targetRef, id)
	}
	return nil
}

func sequenceFlowShape(ctx Context, elem bpmn.Element) (codec.Node, error) {
	flow, ok := elem.(*bpmn.SequenceFlow)
	if !ok {
		return nil, fmt.Errorf("%v is not SequenceFlow", elem.GetID())
	}
	if err := placed(ctx, flow.Id, flow.SourceRef, flow.TargetRef); err != nil {
		return nil, err
	}

	shape := connectorShape(ctx, flow.Id, dict.StencilSequenceFlow, flow.SourceRef, flow.TargetRef, nil)
	props := codec.ShapeProperties(shape)
	codec.PutString(props, dict.PropertyName, flow.Name)
	codec.PutString(props, dict.PropertyDocumentation, flow.Document)
	codec.PutString(props, dict.PropertySequenceflowCondition, flow.ConditionExpression)
	if source, ok := ctx.Model().GetFlowElement(flow.SourceRef).(bpmn.FlowNode); ok {
		codec.PutTrue(props, dict.PropertySequenceflowDefault, bpmn.DefaultFlowOf(source) == flow.Id)
	}
	codec.PutString(props, dict.PropertySkipExpression, flow.SkipExpression)
	if len(flow.ExecutionListeners) > 0 {
		props[dict.PropertyExecutionListeners] = listenersToJSON(dict.ValueExecutionListeners, flow.ExecutionListeners)
	}
	return shape, nil
}

func sequenceFlowToDomain(ctx Context, shape codec.Node) (bpmn.Element, error) {
	flow := &bpmn.SequenceFlow{}
	flow.SourceRef = ctx.sourceOf(codec.ResourceID(shape))
	if len(flow.SourceRef) == 0 {
		return nil, fmt.Errorf("sequence flow %s has no source", codec.ResourceID(shape))
	}
	flow.TargetRef = ctx.targetOf(shape)

	switch v := codec.Decode(codec.Property(dict.PropertySequenceflowCondition, shape)).(type) {
	case string:
		flow.ConditionExpression = v
	case map[string]interface{}:
		parseConditionExpression(flow, codec.Object(v[conditionExpression]))
	}
	flow.SkipExpression = codec.String(dict.PropertySkipExpression, shape)
	return flow, nil
}

// parseConditionExpression reads the structured condition of the form
// editor. A variable condition is compiled to an expression and its parts
// are kept as modeler extensions.
func parseConditionExpression(flow *bpmn.SequenceFlow, expression codec.Node) {
	if expression == nil {
		return
	}
	typ := codec.Field(expression, conditionType)
	if len(typ) == 0 {
		return
	}

	fieldType := codec.Field(expression, conditionFieldType)
	if strings.EqualFold(typ, conditionVariables) && len(fieldType) > 0 {
		operator := codec.Field(expression, "operator")
		switch {
		case strings.EqualFold(fieldType, conditionField):
			fieldID, value := codec.Field(expression, "fieldId"), codec.Field(expression, "value")
			if len(fieldID) == 0 || len(operator) == 0 || len(value) == 0 {
				return
			}
			flow.ConditionExpression = "${" + fieldID + " " + operator + " " + value + "}"
			addModelerExtension(flow, dict.ExtensionConditionFieldID, fieldID)
			addModelerExtension(flow, dict.ExtensionConditionOperator, operator)
			addModelerExtension(flow, dict.ExtensionConditionValue, value)
		case strings.EqualFold(fieldType, conditionOutcome):
			formID, outcome := codec.Field(expression, "outcomeFormId"), codec.Field(expression, "outcomeName")
			if len(formID) == 0 || len(operator) == 0 || len(outcome) == 0 {
				return
			}
			flow.ConditionExpression = "${form" + formID + "outcome " + operator + " " + outcome + "}"
			addModelerExtension(flow, dict.ExtensionConditionFormID, formID)
			addModelerExtension(flow, dict.ExtensionConditionOperator, operator)
			addModelerExtension(flow, dict.ExtensionConditionOutcomeName, outcome)
		}
		return
	}
	if static := codec.Field(expression, conditionStaticValue); len(static) > 0 {
		flow.ConditionExpression = static
	}
}

func addModelerExtension(elem bpmn.Element, name, value string) {
	elem.GetExtensions().Add(&bpmn.ExtensionElement{
		Name:      name,
		Namespace: dict.ModelerNamespace,
		Prefix:    dict.ModelerNamespacePrefix,
		Text:      value,
	})
}

func messageFlowShape(ctx Context, elem bpmn.Element) (codec.Node, error) {
	flow, ok := elem.(*bpmn.MessageFlow)
	if !ok {
		return nil, fmt.Errorf("%v is not MessageFlow", elem.GetID())
	}
	if err := placed(ctx, flow.Id, flow.SourceRef, flow.TargetRef); err != nil {
		return nil, err
	}

	shape := connectorShape(ctx, flow.Id, dict.StencilMessageFlow, flow.SourceRef, flow.TargetRef, nil)
	codec.PutString(codec.ShapeProperties(shape), dict.PropertyName, flow.Name)
	return shape, nil
}

func messageFlowToDomain(ctx Context, shape codec.Node) (bpmn.Element, error) {
	flow := &bpmn.MessageFlow{}
	flow.SourceRef = ctx.sourceOf(codec.ResourceID(shape))
	if len(flow.SourceRef) == 0 {
		return nil, fmt.Errorf("message flow %s has no source", codec.ResourceID(shape))
	}
	flow.TargetRef = ctx.targetOf(shape)
	return flow, nil
}

func associationShape(ctx Context, elem bpmn.Element) (codec.Node, error) {
	association, ok := elem.(*bpmn.Association)
	if !ok {
		return nil, fmt.Errorf("%v is not Association", elem.GetID())
	}
	if err := placed(ctx, association.Id, association.SourceRef, association.TargetRef); err != nil {
		return nil, err
	}

	model := ctx.Model()
	var end codec.Node
	target := model.GetGraphicInfo(association.TargetRef)
	if waypoints := model.GetFlowLocationGraphicInfo(association.Id); len(waypoints) > 0 && target != nil {
		end = sideDocker(waypoints[len(waypoints)-1], target)
	}
	return connectorShape(ctx, association.Id, dict.StencilAssociation, association.SourceRef, association.TargetRef, end), nil
}

// sideDocker docks the end of an association on the side of the target the
// last waypoint touches: top, right, bottom, and left otherwise.
func sideDocker(last, target *bpmn.GraphicInfo) codec.Node {
	switch {
	case math.Abs(last.Y-target.Y) < sideTolerance:
		return codec.NewPoint(target.Width/2, 0)
	case math.Abs(last.X-(target.X+target.Width)) < sideTolerance:
		return codec.NewPoint(target.Width, target.Height/2)
	case math.Abs(last.Y-(target.Y+target.Height)) < sideTolerance:
		return codec.NewPoint(target.Width/2, target.Height)
	default:
		return codec.NewPoint(0, target.Height/2)
	}
}

func associationToDomain(ctx Context, shape codec.Node) (bpmn.Element, error) {
	association := &bpmn.Association{}
	association.SourceRef = ctx.sourceOf(codec.ResourceID(shape))
	if len(association.SourceRef) == 0 {
		return nil, fmt.Errorf("association %s has no source", codec.ResourceID(shape))
	}
	association.TargetRef = ctx.targetOf(shape)
	return association, nil
}

// dataAssociationEdge stores a data association on the activity at one of
// its ends: an activity reading from a store gets an input association, an
// activity writing to one an output association.
type dataAssociationEdge struct{}

var _ ElementConverter = (*dataAssociationEdge)(nil)

func (dataAssociationEdge) StencilID(elem bpmn.Element) string {
	return dict.StencilDataAssociation
}

func (dataAssociationEdge) ToJSON(ctx Context, elem bpmn.Element) ([]codec.Node, error) {
	return nil, fmt.Errorf("%v is written by the activity it belongs to", elem.GetID())
}

// ToDomain returns nil, the association is not an element of a container.
func (dataAssociationEdge) ToDomain(ctx Context, shape codec.Node) (bpmn.Element, error) {
	id := codec.ElementID(shape)
	sourceRef := ctx.sourceOf(codec.ResourceID(shape))
	targetRef := ctx.targetOf(shape)
	if len(sourceRef) == 0 || len(targetRef) == 0 {
		return nil, fmt.Errorf("data association %s is not connected", id)
	}

	association := &bpmn.DataAssociation{Id: id, SourceRef: sourceRef, TargetRef: targetRef}
	model := ctx.Model()
	if activity, ok := model.GetFlowElement(targetRef).(bpmn.Activity); ok {
		meta := activity.Activity()
		meta.DataInputAssociations = append(meta.DataInputAssociations, association)
		return nil, nil
	}
	if activity, ok := model.GetFlowElement(sourceRef).(bpmn.Activity); ok {
		meta := activity.Activity()
		meta.DataOutputAssociations = append(meta.DataOutputAssociations, association)
		return nil, nil
	}
	return nil, fmt.Errorf("data association %s does not touch an activity", id)
}
