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
	"strings"

	"github.com/vine-io/flow-editor/bpmn"
	"github.com/vine-io/flow-editor/codec"
	"github.com/vine-io/flow-editor/dict"
)

// addExtension adds a flowable extension holding value, nothing when value
// is empty.
func addExtension(elem bpmn.Element, name, value string) {
	if len(value) == 0 {
		return
	}
	elem.GetExtensions().Add(bpmn.NewFlowableExtension(name, value))
}

// eventRegistryToJSON writes the receive side event registry properties of
// an element carrying an eventType extension.
func eventRegistryToJSON(props codec.Node, elem bpmn.Element) {
	ext := elem.GetExtensions()
	eventType := ext.Value(dict.ExtensionEventType)
	if len(eventType) == 0 {
		return
	}
	props[dict.PropertyEventRegistryEventKey] = eventType
	codec.PutString(props, dict.PropertyEventRegistryEventName, ext.Value(dict.ExtensionEventName))
	eventOutParametersToJSON(props, ext.Get(dict.ExtensionEventOutParameter))
	correlationToJSON(props, ext.Get(dict.ExtensionEventCorrelation))
	channelToJSON(props, ext)
	keyDetectionToJSON(props, ext)
}

// parseReceiveEvent adds the receive side event registry extensions of a
// shape declaring an event key.
func parseReceiveEvent(shape codec.Node, elem bpmn.Element) {
	eventKey := codec.String(dict.PropertyEventRegistryEventKey, shape)
	if len(eventKey) == 0 {
		return
	}
	addExtension(elem, dict.ExtensionEventType, eventKey)
	addExtension(elem, dict.ExtensionEventName, codec.String(dict.PropertyEventRegistryEventName, shape))
	parseEventOutParameters(shape, elem)
	parseCorrelation(shape, dict.ExtensionEventCorrelation, elem)
	parseChannel(shape, elem)
	parseKeyDetection(shape, elem)
}

func channelToJSON(props codec.Node, ext *bpmn.Extensions) {
	codec.PutString(props, dict.PropertyEventRegistryChannelKey, ext.Value(dict.ExtensionChannelKey))
	codec.PutString(props, dict.PropertyEventRegistryChannelName, ext.Value(dict.ExtensionChannelName))
	codec.PutString(props, dict.PropertyEventRegistryChannelType, ext.Value(dict.ExtensionChannelType))
	codec.PutString(props, dict.PropertyEventRegistryChannelDestination, ext.Value(dict.ExtensionChannelDestination))
}

func parseChannel(shape codec.Node, elem bpmn.Element) {
	addExtension(elem, dict.ExtensionChannelKey, codec.String(dict.PropertyEventRegistryChannelKey, shape))
	addExtension(elem, dict.ExtensionChannelName, codec.String(dict.PropertyEventRegistryChannelName, shape))
	addExtension(elem, dict.ExtensionChannelType, codec.String(dict.PropertyEventRegistryChannelType, shape))
	addExtension(elem, dict.ExtensionChannelDestination, codec.String(dict.PropertyEventRegistryChannelDestination, shape))
}

func keyDetectionToJSON(props codec.Node, ext *bpmn.Extensions) {
	typ := ext.Value(dict.ExtensionKeyDetectionType)
	value := ext.Value(dict.ExtensionKeyDetectionValue)
	if len(typ) == 0 || len(value) == 0 {
		return
	}
	switch {
	case strings.EqualFold(typ, dict.KeyDetectionFixedValue):
		props[dict.PropertyEventRegistryKeyDetectionFixedValue] = value
	case strings.EqualFold(typ, dict.KeyDetectionJSONField):
		props[dict.PropertyEventRegistryKeyDetectionJSONField] = value
	case strings.EqualFold(typ, dict.KeyDetectionJSONPointer):
		props[dict.PropertyEventRegistryKeyDetectionJSONPointer] = value
	}
}

// parseKeyDetection takes the fixed value, then the JSON field, then the
// JSON pointer.
func parseKeyDetection(shape codec.Node, elem bpmn.Element) {
	detections := []struct{ key, typ string }{
		{dict.PropertyEventRegistryKeyDetectionFixedValue, dict.KeyDetectionFixedValue},
		{dict.PropertyEventRegistryKeyDetectionJSONField, dict.KeyDetectionJSONField},
		{dict.PropertyEventRegistryKeyDetectionJSONPointer, dict.KeyDetectionJSONPointer},
	}
	for _, detection := range detections {
		if value := codec.String(detection.key, shape); len(value) > 0 {
			addExtension(elem, dict.ExtensionKeyDetectionType, detection.typ)
			addExtension(elem, dict.ExtensionKeyDetectionValue, value)
			return
		}
	}
}

func eventOutParametersToJSON(props codec.Node, elements []*bpmn.ExtensionElement) {
	if len(elements) == 0 {
		return
	}
	items := make([]interface{}, 0, len(elements))
	for _, element := range elements {
		items = append(items, codec.Node{
			dict.PropertyEventRegistryParameterEventname:    element.Attr("source"),
			dict.PropertyEventRegistryParameterEventtype:    element.Attr("sourceType"),
			dict.PropertyEventRegistryParameterVariablename: element.Attr("target"),
		})
	}
	props[dict.PropertyEventRegistryOutParameters] = codec.Node{dict.ValueOutParameters: items}
}

func parseEventOutParameters(shape codec.Node, elem bpmn.Element) {
	for _, item := range codec.GetItems(dict.PropertyEventRegistryOutParameters, dict.ValueOutParameters, shape) {
		if item[dict.PropertyEventRegistryParameterEventname] == nil {
			continue
		}
		element := bpmn.NewFlowableExtension(dict.ExtensionEventOutParameter, "")
		element.SetAttr("source", codec.Field(item, dict.PropertyEventRegistryParameterEventname))
		element.SetAttr("sourceType", codec.Field(item, dict.PropertyEventRegistryParameterEventtype))
		element.SetAttr("target", codec.Field(item, dict.PropertyEventRegistryParameterVariablename))
		elem.GetExtensions().Add(element)
	}
}

// correlationToJSON writes correlation parameters. The type attribute falls
// back to nameType, the spelling of older documents.
func correlationToJSON(props codec.Node, elements []*bpmn.ExtensionElement) {
	if len(elements) == 0 {
		return
	}
	items := make([]interface{}, 0, len(elements))
	for _, element := range elements {
		typ := element.Attr("type")
		if len(typ) == 0 {
			typ = element.Attr("nameType")
		}
		items = append(items, codec.Node{
			dict.PropertyEventRegistryCorrelationname:  element.Attr("name"),
			dict.PropertyEventRegistryCorrelationtype:  typ,
			dict.PropertyEventRegistryCorrelationvalue: element.Attr("value"),
		})
	}
	props[dict.PropertyEventRegistryCorrelationParameters] = codec.Node{dict.ValueCorrelationParameters: items}
}

func parseCorrelation(shape codec.Node, name string, elem bpmn.Element) {
	for _, item := range codec.GetItems(dict.PropertyEventRegistryCorrelationParameters, dict.ValueCorrelationParameters, shape) {
		if item[dict.PropertyEventRegistryCorrelationname] == nil {
			continue
		}
		element := bpmn.NewFlowableExtension(name, "")
		element.SetAttr("name", codec.Field(item, dict.PropertyEventRegistryCorrelationname))
		element.SetAttr("type", codec.Field(item, dict.PropertyEventRegistryCorrelationtype))
		element.SetAttr("value", codec.Field(item, dict.PropertyEventRegistryCorrelationvalue))
		elem.GetExtensions().Add(element)
	}
}

// sendEventToJSON writes the properties of a send event task with an event
// type.
func sendEventToJSON(props codec.Node, task *bpmn.ServiceTask) {
	if len(task.EventType) == 0 {
		return
	}
	ext := task.GetExtensions()
	props[dict.PropertyEventRegistryEventKey] = task.EventType
	codec.PutString(props, dict.PropertyEventRegistryEventName, ext.Value(dict.ExtensionEventName))
	if len(task.EventInParameters) > 0 {
		items := make([]interface{}, 0, len(task.EventInParameters))
		for _, parameter := range task.EventInParameters {
			variable := parameter.Source
			if len(parameter.SourceExpression) > 0 {
				variable = parameter.SourceExpression
			}
			items = append(items, codec.Node{
				dict.PropertyEventRegistryParameterVariablename: variable,
				dict.PropertyEventRegistryParameterEventname:    parameter.Target,
				dict.PropertyEventRegistryParameterEventtype:    parameter.Attr("targetType"),
			})
		}
		props[dict.PropertyEventRegistryInParameters] = codec.Node{dict.ValueInParameters: items}
	}
	channelToJSON(props, ext)

	codec.PutTrue(props, dict.PropertyServicetaskTriggerable, task.Triggerable)
	codec.PutString(props, dict.PropertyEventRegistryTriggerEventKey, task.TriggerEventType)
	codec.PutString(props, dict.PropertyEventRegistryTriggerEventName, ext.Value(dict.ExtensionTriggerEventName))
	if len(task.EventOutParameters) > 0 {
		items := make([]interface{}, 0, len(task.EventOutParameters))
		for _, parameter := range task.EventOutParameters {
			variable := parameter.Target
			if len(parameter.TargetExpression) > 0 {
				variable = parameter.TargetExpression
			}
			items = append(items, codec.Node{
				dict.PropertyEventRegistryParameterEventname:    parameter.Source,
				dict.PropertyEventRegistryParameterEventtype:    parameter.Attr("sourceType"),
				dict.PropertyEventRegistryParameterVariablename: variable,
			})
		}
		props[dict.PropertyEventRegistryOutParameters] = codec.Node{dict.ValueOutParameters: items}
	}
	codec.PutString(props, dict.PropertyEventRegistryTriggerChannelKey, ext.Value(dict.ExtensionTriggerChannelKey))
	codec.PutString(props, dict.PropertyEventRegistryTriggerChannelName, ext.Value(dict.ExtensionTriggerChannelName))
	codec.PutString(props, dict.PropertyEventRegistryTriggerChannelType, ext.Value(dict.ExtensionTriggerChannelType))
	codec.PutString(props, dict.PropertyEventRegistryTriggerChannelDestination, ext.Value(dict.ExtensionTriggerChannelDest))
	correlationToJSON(props, ext.Get(dict.ExtensionTriggerEventCorrelation))
	keyDetectionToJSON(props, ext)
}

// parseSendEvent fills a send event task. The trigger part is read only
// with a trigger event key.
func parseSendEvent(shape codec.Node, task *bpmn.ServiceTask) {
	eventKey := codec.String(dict.PropertyEventRegistryEventKey, shape)
	if len(eventKey) == 0 {
		return
	}
	task.EventType = eventKey
	addExtension(task, dict.ExtensionEventName, codec.String(dict.PropertyEventRegistryEventName, shape))
	for _, item := range codec.GetItems(dict.PropertyEventRegistryInParameters, dict.ValueInParameters, shape) {
		if item[dict.PropertyEventRegistryParameterVariablename] == nil {
			continue
		}
		parameter := &bpmn.IOParameter{Target: codec.Field(item, dict.PropertyEventRegistryParameterEventname)}
		variable := codec.Field(item, dict.PropertyEventRegistryParameterVariablename)
		if bpmn.IsExpression(variable) {
			parameter.SourceExpression = variable
		} else {
			parameter.Source = variable
		}
		parameter.SetAttr("targetType", codec.Field(item, dict.PropertyEventRegistryParameterEventtype))
		task.EventInParameters = append(task.EventInParameters, parameter)
	}
	parseChannel(shape, task)

	triggerKey := codec.String(dict.PropertyEventRegistryTriggerEventKey, shape)
	if len(triggerKey) == 0 {
		return
	}
	task.TriggerEventType = triggerKey
	task.Triggerable = codec.GetBool(dict.PropertyServicetaskTriggerable, shape, false)
	addExtension(task, dict.ExtensionTriggerEventName, codec.String(dict.PropertyEventRegistryTriggerEventName, shape))
	for _, item := range codec.GetItems(dict.PropertyEventRegistryOutParameters, dict.ValueOutParameters, shape) {
		if item[dict.PropertyEventRegistryParameterEventname] == nil {
			continue
		}
		parameter := &bpmn.IOParameter{Source: codec.Field(item, dict.PropertyEventRegistryParameterEventname)}
		parameter.SetAttr("sourceType", codec.Field(item, dict.PropertyEventRegistryParameterEventtype))
		variable := codec.Field(item, dict.PropertyEventRegistryParameterVariablename)
		if bpmn.IsExpression(variable) {
			parameter.TargetExpression = variable
		} else {
			parameter.Target = variable
		}
		task.EventOutParameters = append(task.EventOutParameters, parameter)
	}
	addExtension(task, dict.ExtensionTriggerChannelKey, codec.String(dict.PropertyEventRegistryTriggerChannelKey, shape))
	addExtension(task, dict.ExtensionTriggerChannelName, codec.String(dict.PropertyEventRegistryTriggerChannelName, shape))
	addExtension(task, dict.ExtensionTriggerChannelType, codec.String(dict.PropertyEventRegistryTriggerChannelType, shape))
	addExtension(task, dict.ExtensionTriggerChannelDest, codec.String(dict.PropertyEventRegistryTriggerChannelDestination, shape))
	parseCorrelation(shape, dict.ExtensionTriggerEventCorrelation, task)
	parseKeyDetection(shape, task)
}
