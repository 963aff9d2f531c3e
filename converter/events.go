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

	"github.com/shopspring/decimal"

	"github.com/vine-io/flow-editor/bpmn"
	"github.com/vine-io/flow-editor/codec"
	"github.com/vine-io/flow-editor/dict"
)

var startEventConverter = &nodeConverter{
	stencil:  startEventStencil,
	toJSON:   startEventToJSON,
	toDomain: startEventToDomain,
}

var endEventConverter = &nodeConverter{
	stencil:  endEventStencil,
	toJSON:   eventToJSON,
	toDomain: endEventToDomain,
}

var boundaryEventConverter = &nodeConverter{
	stencil:  boundaryEventStencil,
	toJSON:   boundaryEventToJSON,
	toDomain: boundaryEventToDomain,
}

var catchEventConverter = &nodeConverter{
	stencil:  catchEventStencil,
	toJSON:   catchEventToJSON,
	toDomain: catchEventToDomain,
}

var throwEventConverter = &nodeConverter{
	stencil:  throwEventStencil,
	toJSON:   throwEventToJSON,
	toDomain: throwEventToDomain,
}

// hasEventType reports whether the element carries an event registry
// eventType extension.
func hasEventType(elem bpmn.Element) bool {
	return len(elem.GetExtensions().Value(dict.ExtensionEventType)) > 0
}

// registryCandidate reports whether an event without definitions is drawn
// with the event registry stencil of its family.
func registryCandidate(event bpmn.Event) bool {
	return len(event.GetEventDefinitions()) == 0 && hasEventType(event)
}

func asEvent(elem bpmn.Element) (bpmn.Event, error) {
	event, ok := elem.(bpmn.Event)
	if !ok {
		return nil, fmt.Errorf("%v is not Event", elem.GetID())
	}
	return event, nil
}

func startEventStencil(elem bpmn.Element) string {
	event, ok := elem.(bpmn.Event)
	if !ok {
		return dict.StencilEventStartNone
	}
	if registryCandidate(event) {
		return dict.StencilEventStartEventRegistry
	}
	definition := bpmn.SingleDefinition(event)
	if definition == nil {
		return dict.StencilEventStartNone
	}
	switch definition.Kind() {
	case bpmn.TimerDefinition:
		return dict.StencilEventStartTimer
	case bpmn.MessageDefinition:
		return dict.StencilEventStartMessage
	case bpmn.SignalDefinition:
		return dict.StencilEventStartSignal
	case bpmn.ErrorDefinition:
		return dict.StencilEventStartError
	case bpmn.EscalationDefinition:
		return dict.StencilEventStartEscalation
	case bpmn.ConditionalDefinition:
		return dict.StencilEventStartConditional
	case bpmn.VariableListenerDefinition:
		return dict.StencilEventStartVariableListener
	case bpmn.CancelDefinition, bpmn.CompensateDefinition, bpmn.TerminateDefinition:
		// no start stencil draws these triggers
		return dict.StencilEventStartNone
	default:
		return dict.StencilEventStartNone
	}
}

func startEventToJSON(ctx Context, elem bpmn.Element, shape codec.Node) error {
	event, ok := elem.(*bpmn.StartEvent)
	if !ok {
		return fmt.Errorf("%v is not StartEvent", elem.GetID())
	}
	props := codec.ShapeProperties(shape)
	codec.PutString(props, dict.PropertyNoneStarteventInitiator, event.Initiator)
	formKeyToJSON(ctx, props, event.FormKey)
	props[dict.PropertyFormFieldValidation] = event.ValidateForm
	props[dict.PropertyInterrupting] = event.Interrupting
	formPropertiesToJSON(props, event.FormProperties)
	eventPropertiesToJSON(props, event)
	eventRegistryToJSON(props, event)
	return nil
}

func startEventToDomain(ctx Context, shape codec.Node) (bpmn.Element, error) {
	event := bpmn.NewStartEvent()
	switch codec.StencilID(shape) {
	case dict.StencilEventStartNone:
		event.Initiator = codec.String(dict.PropertyNoneStarteventInitiator, shape)
		event.FormKey = parseFormKey(ctx, shape)
		event.ValidateForm = codec.GetBool(dict.PropertyFormFieldValidation, shape, false)
		event.FormProperties = parseFormProperties(shape)
	case dict.StencilEventStartTimer:
		event.AddEventDefinition(parseTimerDefinition(shape))
	case dict.StencilEventStartMessage:
		event.AddEventDefinition(parseMessageDefinition(shape))
	case dict.StencilEventStartSignal:
		event.AddEventDefinition(parseSignalDefinition(shape))
	case dict.StencilEventStartError:
		event.AddEventDefinition(parseErrorDefinition(shape))
	case dict.StencilEventStartEscalation:
		event.AddEventDefinition(parseEscalationDefinition(shape))
	case dict.StencilEventStartConditional:
		event.AddEventDefinition(parseConditionalDefinition(shape))
	case dict.StencilEventStartVariableListener:
		event.AddEventDefinition(parseVariableListenerDefinition(shape))
	case dict.StencilEventStartEventRegistry:
		parseReceiveEvent(shape, event)
	}
	event.Interrupting = codec.GetBool(dict.PropertyInterrupting, shape, true)
	return event, nil
}

// eventToJSON writes the definition properties only.
func eventToJSON(ctx Context, elem bpmn.Element, shape codec.Node) error {
	event, err := asEvent(elem)
	if err != nil {
		return err
	}
	eventPropertiesToJSON(codec.ShapeProperties(shape), event)
	return nil
}

func endEventStencil(elem bpmn.Element) string {
	event, ok := elem.(bpmn.Event)
	if !ok {
		return dict.StencilEventEndNone
	}
	definition := bpmn.SingleDefinition(event)
	if definition == nil {
		return dict.StencilEventEndNone
	}
	switch definition.Kind() {
	case bpmn.ErrorDefinition:
		return dict.StencilEventEndError
	case bpmn.EscalationDefinition:
		return dict.StencilEventEndEscalation
	case bpmn.CancelDefinition:
		return dict.StencilEventEndCancel
	case bpmn.TerminateDefinition:
		return dict.StencilEventEndTerminate
	case bpmn.TimerDefinition, bpmn.MessageDefinition, bpmn.SignalDefinition, bpmn.ConditionalDefinition,
		bpmn.CompensateDefinition, bpmn.VariableListenerDefinition:
		// an end event only throws the kinds above
		return dict.StencilEventEndNone
	default:
		return dict.StencilEventEndNone
	}
}

func endEventToDomain(ctx Context, shape codec.Node) (bpmn.Element, error) {
	event := &bpmn.EndEvent{}
	switch codec.StencilID(shape) {
	case dict.StencilEventEndError:
		event.AddEventDefinition(parseErrorDefinition(shape))
	case dict.StencilEventEndEscalation:
		event.AddEventDefinition(parseEscalationDefinition(shape))
	case dict.StencilEventEndCancel:
		event.AddEventDefinition(&bpmn.CancelEventDefinition{})
	case dict.StencilEventEndTerminate:
		event.AddEventDefinition(parseTerminateDefinition(shape))
	}
	return event, nil
}

func boundaryEventStencil(elem bpmn.Element) string {
	event, ok := elem.(bpmn.Event)
	if !ok {
		return dict.StencilEventBoundaryTimer
	}
	if registryCandidate(event) {
		return dict.StencilEventBoundaryEventRegistry
	}
	definition := bpmn.SingleDefinition(event)
	if definition == nil {
		return dict.StencilEventBoundaryTimer
	}
	switch definition.Kind() {
	case bpmn.TimerDefinition:
		return dict.StencilEventBoundaryTimer
	case bpmn.ConditionalDefinition:
		return dict.StencilEventBoundaryConditional
	case bpmn.ErrorDefinition:
		return dict.StencilEventBoundaryError
	case bpmn.EscalationDefinition:
		return dict.StencilEventBoundaryEscalation
	case bpmn.SignalDefinition:
		return dict.StencilEventBoundarySignal
	case bpmn.MessageDefinition:
		return dict.StencilEventBoundaryMessage
	case bpmn.CancelDefinition:
		return dict.StencilEventBoundaryCancel
	case bpmn.CompensateDefinition:
		return dict.StencilEventBoundaryCompensation
	case bpmn.VariableListenerDefinition:
		return dict.StencilEventBoundaryVariableListener
	case bpmn.TerminateDefinition:
		// no boundary stencil draws a terminate trigger
		return dict.StencilEventBoundaryTimer
	default:
		return dict.StencilEventBoundaryTimer
	}
}

// boundaryDocker returns the center of the boundary event relative to the
// origin of its host, rounded half up.
func boundaryDocker(event, host *bpmn.GraphicInfo) codec.Node {
	two := decimal.NewFromInt(2)
	x := decimal.NewFromFloat(event.X).
		Add(decimal.NewFromFloat(event.Width).Div(two)).
		Sub(decimal.NewFromFloat(host.X)).
		Round(0)
	y := decimal.NewFromFloat(event.Y).
		Add(decimal.NewFromFloat(event.Height).Div(two)).
		Sub(decimal.NewFromFloat(host.Y)).
		Round(0)
	return codec.NewPoint(x.InexactFloat64(), y.InexactFloat64())
}

func boundaryEventToJSON(ctx Context, elem bpmn.Element, shape codec.Node) error {
	event, ok := elem.(*bpmn.BoundaryEvent)
	if !ok {
		return fmt.Errorf("%v is not BoundaryEvent", elem.GetID())
	}

	host := event.AttachedToRefID
	if event.AttachedTo != nil {
		host = event.AttachedTo.GetID()
	}
	info := ctx.Model().GetGraphicInfo(event.Id)
	hostInfo := ctx.Model().GetGraphicInfo(host)
	if hostInfo == nil {
		ctx.Diagnostics().Warnf(event.Id, "host %q of boundary event has no graphic info", host)
		shape[dict.EditorDockers] = []interface{}{}
	} else {
		shape[dict.EditorDockers] = []interface{}{boundaryDocker(info, hostInfo)}
	}

	props := codec.ShapeProperties(shape)
	props[dict.PropertyCancelActivity] = event.CancelActivity
	eventPropertiesToJSON(props, event)
	eventRegistryToJSON(props, event)
	return nil
}

// boundaryEventToDomain builds the event with its host id taken from the
// shape listing it as outgoing. The host itself is linked once the whole
// graph exists.
func boundaryEventToDomain(ctx Context, shape codec.Node) (bpmn.Element, error) {
	event := bpmn.NewBoundaryEvent()
	stencil := codec.StencilID(shape)
	switch stencil {
	case dict.StencilEventBoundaryTimer:
		event.AddEventDefinition(parseTimerDefinition(shape))
	case dict.StencilEventBoundaryConditional:
		event.AddEventDefinition(parseConditionalDefinition(shape))
	case dict.StencilEventBoundaryError:
		event.AddEventDefinition(parseErrorDefinition(shape))
	case dict.StencilEventBoundaryEscalation:
		event.AddEventDefinition(parseEscalationDefinition(shape))
	case dict.StencilEventBoundarySignal:
		event.AddEventDefinition(parseSignalDefinition(shape))
	case dict.StencilEventBoundaryMessage:
		event.AddEventDefinition(parseMessageDefinition(shape))
	case dict.StencilEventBoundaryCancel:
		event.AddEventDefinition(&bpmn.CancelEventDefinition{})
		event.CancelActivity = false
	case dict.StencilEventBoundaryCompensation:
		event.AddEventDefinition(&bpmn.CompensateEventDefinition{})
		event.CancelActivity = false
	case dict.StencilEventBoundaryEventRegistry:
		parseReceiveEvent(shape, event)
	case dict.StencilEventBoundaryVariableListener:
		event.AddEventDefinition(parseVariableListenerDefinition(shape))
	}

	switch stencil {
	case dict.StencilEventBoundaryError, dict.StencilEventBoundaryCancel,
		dict.StencilEventBoundaryCompensation, dict.StencilEventBoundaryConditional:
	default:
		event.CancelActivity = codec.GetBool(dict.PropertyCancelActivity, shape, false)
	}

	event.AttachedToRefID = ctx.sourceOf(codec.ResourceID(shape))
	return event, nil
}

func catchEventStencil(elem bpmn.Element) string {
	event, ok := elem.(bpmn.Event)
	if !ok {
		return dict.StencilEventCatchTimer
	}
	if registryCandidate(event) {
		return dict.StencilEventCatchEventRegistry
	}
	definition := bpmn.SingleDefinition(event)
	if definition == nil {
		return dict.StencilEventCatchTimer
	}
	switch definition.Kind() {
	case bpmn.TimerDefinition:
		return dict.StencilEventCatchTimer
	case bpmn.MessageDefinition:
		return dict.StencilEventCatchMessage
	case bpmn.SignalDefinition:
		return dict.StencilEventCatchSignal
	case bpmn.ConditionalDefinition:
		return dict.StencilEventCatchConditional
	case bpmn.VariableListenerDefinition:
		return dict.StencilEventCatchVariableListener
	case bpmn.ErrorDefinition, bpmn.EscalationDefinition, bpmn.CancelDefinition,
		bpmn.CompensateDefinition, bpmn.TerminateDefinition:
		// not catchable in the flow, drawn as a timer
		return dict.StencilEventCatchTimer
	default:
		return dict.StencilEventCatchTimer
	}
}

func catchEventToJSON(ctx Context, elem bpmn.Element, shape codec.Node) error {
	event, err := asEvent(elem)
	if err != nil {
		return err
	}
	props := codec.ShapeProperties(shape)
	eventPropertiesToJSON(props, event)
	eventRegistryToJSON(props, event)
	return nil
}

func catchEventToDomain(ctx Context, shape codec.Node) (bpmn.Element, error) {
	event := &bpmn.IntermediateCatchEvent{}
	switch codec.StencilID(shape) {
	case dict.StencilEventCatchTimer:
		event.AddEventDefinition(parseTimerDefinition(shape))
	case dict.StencilEventCatchMessage:
		event.AddEventDefinition(parseMessageDefinition(shape))
	case dict.StencilEventCatchSignal:
		event.AddEventDefinition(parseSignalDefinition(shape))
	case dict.StencilEventCatchConditional:
		event.AddEventDefinition(parseConditionalDefinition(shape))
	case dict.StencilEventCatchEventRegistry:
		parseReceiveEvent(shape, event)
	case dict.StencilEventCatchVariableListener:
		event.AddEventDefinition(parseVariableListenerDefinition(shape))
	}
	return event, nil
}

func throwEventStencil(elem bpmn.Element) string {
	event, ok := elem.(bpmn.Event)
	if !ok {
		return dict.StencilEventThrowNone
	}
	definition := bpmn.SingleDefinition(event)
	if definition == nil {
		return dict.StencilEventThrowNone
	}
	switch definition.Kind() {
	case bpmn.SignalDefinition:
		return dict.StencilEventThrowSignal
	case bpmn.EscalationDefinition:
		return dict.StencilEventThrowEscalation
	case bpmn.CompensateDefinition:
		return dict.StencilEventThrowCompensation
	case bpmn.TimerDefinition, bpmn.MessageDefinition, bpmn.ConditionalDefinition, bpmn.ErrorDefinition,
		bpmn.CancelDefinition, bpmn.TerminateDefinition, bpmn.VariableListenerDefinition:
		// the editor throws no other trigger
		return dict.StencilEventThrowNone
	default:
		return dict.StencilEventThrowNone
	}
}

func throwEventToJSON(ctx Context, elem bpmn.Element, shape codec.Node) error {
	event, ok := elem.(*bpmn.ThrowEvent)
	if !ok {
		return fmt.Errorf("%v is not ThrowEvent", elem.GetID())
	}
	props := codec.ShapeProperties(shape)
	codec.PutTrue(props, dict.PropertyAsynchronous, event.Asynchronous)
	eventPropertiesToJSON(props, event)
	return nil
}

func throwEventToDomain(ctx Context, shape codec.Node) (bpmn.Element, error) {
	event := &bpmn.ThrowEvent{}
	event.Asynchronous = codec.GetBool(dict.PropertyAsynchronous, shape, false)
	switch codec.StencilID(shape) {
	case dict.StencilEventThrowSignal:
		event.AddEventDefinition(parseSignalDefinition(shape))
	case dict.StencilEventThrowEscalation:
		event.AddEventDefinition(parseEscalationDefinition(shape))
	case dict.StencilEventThrowCompensation:
		event.AddEventDefinition(parseCompensateDefinition(shape))
	}
	return event, nil
}
