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

	log "github.com/vine-io/vine/lib/logger"

	"github.com/vine-io/flow-editor/bpmn"
	"github.com/vine-io/flow-editor/codec"
	"github.com/vine-io/flow-editor/dict"
)

const (
	multiInstanceParallel   = "Parallel"
	multiInstanceSequential = "Sequential"
	multiInstanceNone       = "none"

	rethrowError        = "error"
	rethrowMessage      = "message"
	rethrowSignal       = "signal"
	rethrowGlobalSignal = "globalSignal"
)

// dataTypes are the item types a data object may declare.
var dataTypes = map[string]struct{}{
	"string":   {},
	"int":      {},
	"long":     {},
	"double":   {},
	"boolean":  {},
	"datetime": {},
}

func listenersToJSON(inner string, listeners []*bpmn.Listener) codec.Node {
	items := make([]interface{}, 0, len(listeners))
	for _, listener := range listeners {
		item := codec.Node{dict.PropertyListenerEvent: listener.Event}
		switch listener.ImplementationType {
		case bpmn.ImplementationClass:
			item[dict.PropertyListenerClassName] = listener.Implementation
		case bpmn.ImplementationExpression:
			item[dict.PropertyListenerExpression] = listener.Implementation
		case bpmn.ImplementationDelegateExpression:
			item[dict.PropertyListenerDelegateExpression] = listener.Implementation
		}
		if len(listener.FieldExtensions) > 0 {
			fields := make([]interface{}, 0, len(listener.FieldExtensions))
			for _, field := range listener.FieldExtensions {
				fields = append(fields, fieldToJSON(field))
			}
			item[dict.PropertyListenerFields] = fields
		}
		items = append(items, item)
	}
	return codec.Node{inner: items}
}

// parseListeners reads the listeners stored under inner of the key property.
// A listener without an event is dropped.
func parseListeners(key, inner string, shape codec.Node) []*bpmn.Listener {
	var listeners []*bpmn.Listener
	for _, item := range codec.GetItems(key, inner, shape) {
		event := codec.Field(item, dict.PropertyListenerEvent)
		if len(event) == 0 {
			continue
		}
		listener := &bpmn.Listener{Event: event}
		if v := codec.Field(item, dict.PropertyListenerClassName); len(v) > 0 {
			listener.ImplementationType = bpmn.ImplementationClass
			listener.Implementation = v
		} else if v = codec.Field(item, dict.PropertyListenerExpression); len(v) > 0 {
			listener.ImplementationType = bpmn.ImplementationExpression
			listener.Implementation = v
		} else if v = codec.Field(item, dict.PropertyListenerDelegateExpression); len(v) > 0 {
			listener.ImplementationType = bpmn.ImplementationDelegateExpression
			listener.Implementation = v
		}
		listener.FieldExtensions = parseFieldItems(codec.Objects(item[dict.PropertyListenerFields]))
		listeners = append(listeners, listener)
	}
	return listeners
}

func fieldToJSON(field *bpmn.FieldExtension) codec.Node {
	item := codec.Node{dict.PropertyFieldName: field.FieldName}
	codec.PutString(item, dict.PropertyFieldStringValue, field.StringValue)
	codec.PutString(item, dict.PropertyFieldExpression, field.Expression)
	return item
}

// parseFieldItems reads named fields, taking stringValue, then string, then
// expression.
func parseFieldItems(items []codec.Node) []*bpmn.FieldExtension {
	var fields []*bpmn.FieldExtension
	for _, item := range items {
		name := codec.Field(item, dict.PropertyFieldName)
		if len(name) == 0 {
			continue
		}
		field := &bpmn.FieldExtension{FieldName: name}
		field.StringValue = codec.Field(item, dict.PropertyFieldStringValue)
		if len(field.StringValue) == 0 {
			field.StringValue = codec.Field(item, dict.PropertyFieldString)
		}
		if len(field.StringValue) == 0 {
			field.Expression = codec.Field(item, dict.PropertyFieldExpression)
		}
		fields = append(fields, field)
	}
	return fields
}

func fieldsToJSON(props codec.Node, fields []*bpmn.FieldExtension) {
	items := make([]interface{}, 0, len(fields))
	for _, field := range fields {
		items = append(items, fieldToJSON(field))
	}
	props[dict.PropertyServicetaskFields] = codec.Node{dict.ValueFields: items}
}

func parseFields(shape codec.Node) []*bpmn.FieldExtension {
	return parseFieldItems(codec.GetItems(dict.PropertyServicetaskFields, dict.ValueFields, shape))
}

func exceptionsToJSON(props codec.Node, exceptions []*bpmn.MapException) {
	items := make([]interface{}, 0, len(exceptions))
	for _, exception := range exceptions {
		item := codec.Node{}
		codec.PutString(item, dict.PropertyServicetaskExceptionClass, exception.ClassName)
		codec.PutString(item, dict.PropertyServicetaskExceptionCode, exception.ErrorCode)
		item[dict.PropertyServicetaskExceptionChildren] = codec.Text(exception.AndChildren)
		items = append(items, item)
	}
	props[dict.PropertyServicetaskExceptions] = codec.Node{dict.ValueExceptions: items}
}

func parseExceptions(shape codec.Node) []*bpmn.MapException {
	var exceptions []*bpmn.MapException
	for _, item := range codec.GetItems(dict.PropertyServicetaskExceptions, dict.ValueExceptions, shape) {
		exception := &bpmn.MapException{
			ClassName:   codec.Field(item, dict.PropertyServicetaskExceptionClass),
			ErrorCode:   codec.Field(item, dict.PropertyServicetaskExceptionCode),
			AndChildren: codec.FieldBool(item, dict.PropertyServicetaskExceptionChildren, false),
		}
		if len(exception.ClassName) == 0 && len(exception.ErrorCode) == 0 {
			continue
		}
		exceptions = append(exceptions, exception)
	}
	return exceptions
}

func eventListenersToJSON(props codec.Node, listeners []*bpmn.EventListener) {
	items := make([]interface{}, 0, len(listeners))
	for _, listener := range listeners {
		item := codec.Node{}
		if len(listener.Events) > 0 {
			events := make([]interface{}, 0)
			for _, event := range strings.Split(listener.Events, ",") {
				if event = strings.TrimSpace(event); len(event) > 0 {
					events = append(events, codec.Node{dict.PropertyEventlistenerEvent: event})
				}
			}
			item[dict.PropertyEventlistenerEvent] = listener.Events
			item[dict.PropertyEventlistenerEvents] = events
		}

		implementation := ""
		switch listener.ImplementationType {
		case bpmn.ImplementationClass:
			item[dict.PropertyEventlistenerClassName] = listener.Implementation
			implementation = listener.Implementation
		case bpmn.ImplementationDelegateExpression:
			item[dict.PropertyEventlistenerDelegateExpression] = listener.Implementation
			implementation = listener.Implementation
		case bpmn.ImplementationThrowError:
			item[dict.PropertyEventlistenerRethrowEvent] = true
			item[dict.PropertyEventlistenerRethrowType] = rethrowError
			item[dict.PropertyEventlistenerErrorCode] = listener.Implementation
			implementation = "Rethrow as error " + listener.Implementation
		case bpmn.ImplementationThrowMessage:
			item[dict.PropertyEventlistenerRethrowEvent] = true
			item[dict.PropertyEventlistenerRethrowType] = rethrowMessage
			item[dict.PropertyEventlistenerMessageName] = listener.Implementation
			implementation = "Rethrow as message " + listener.Implementation
		case bpmn.ImplementationThrowSignal:
			item[dict.PropertyEventlistenerRethrowEvent] = true
			item[dict.PropertyEventlistenerRethrowType] = rethrowSignal
			item[dict.PropertyEventlistenerSignalName] = listener.Implementation
			implementation = "Rethrow as signal " + listener.Implementation
		case bpmn.ImplementationThrowGlobalSignal:
			item[dict.PropertyEventlistenerRethrowEvent] = true
			item[dict.PropertyEventlistenerRethrowType] = rethrowGlobalSignal
			item[dict.PropertyEventlistenerSignalName] = listener.Implementation
			implementation = "Rethrow as signal " + listener.Implementation
		}
		codec.PutString(item, dict.PropertyEventlistenerImplementation, implementation)
		codec.PutString(item, dict.PropertyEventlistenerEntityType, listener.EntityType)
		items = append(items, item)
	}
	props[dict.PropertyEventListeners] = codec.Node{dict.PropertyEventlistenerValue: items}
}

// parseEventListeners reads the process event listeners. A listener without
// events or without an implementation is dropped.
func parseEventListeners(shape codec.Node) []*bpmn.EventListener {
	var listeners []*bpmn.EventListener
	for _, item := range codec.GetItems(dict.PropertyEventListeners, dict.PropertyEventlistenerValue, shape) {
		var events []string
		for _, event := range codec.Objects(item[dict.PropertyEventlistenerEvents]) {
			if v := codec.Field(event, dict.PropertyEventlistenerEvent); len(v) > 0 {
				events = append(events, v)
			}
		}
		if len(events) == 0 {
			continue
		}

		listener := &bpmn.EventListener{Events: strings.Join(events, ",")}
		if codec.FieldBool(item, dict.PropertyEventlistenerRethrowEvent, false) {
			rethrowType := codec.Field(item, dict.PropertyEventlistenerRethrowType)
			switch {
			case strings.EqualFold(rethrowType, rethrowError):
				listener.ImplementationType = bpmn.ImplementationThrowError
				listener.Implementation = codec.Field(item, dict.PropertyEventlistenerErrorCode)
			case strings.EqualFold(rethrowType, rethrowMessage):
				listener.ImplementationType = bpmn.ImplementationThrowMessage
				listener.Implementation = codec.Field(item, dict.PropertyEventlistenerMessageName)
			case strings.EqualFold(rethrowType, rethrowSignal):
				listener.ImplementationType = bpmn.ImplementationThrowSignal
				listener.Implementation = codec.Field(item, dict.PropertyEventlistenerSignalName)
			case strings.EqualFold(rethrowType, rethrowGlobalSignal):
				listener.ImplementationType = bpmn.ImplementationThrowGlobalSignal
				listener.Implementation = codec.Field(item, dict.PropertyEventlistenerSignalName)
			}
		} else {
			if v := codec.Field(item, dict.PropertyEventlistenerClassName); len(v) > 0 {
				listener.ImplementationType = bpmn.ImplementationClass
				listener.Implementation = v
			} else if v = codec.Field(item, dict.PropertyEventlistenerDelegateExpression); len(v) > 0 {
				listener.ImplementationType = bpmn.ImplementationDelegateExpression
				listener.Implementation = v
			}
			listener.EntityType = codec.Field(item, dict.PropertyEventlistenerEntityType)
		}
		if len(listener.Implementation) == 0 {
			continue
		}
		listeners = append(listeners, listener)
	}
	return listeners
}

func formPropertiesToJSON(props codec.Node, properties []*bpmn.FormProperty) {
	if len(properties) == 0 {
		return
	}
	items := make([]interface{}, 0, len(properties))
	for _, property := range properties {
		item := codec.Node{
			dict.PropertyFormID:         property.Id,
			dict.PropertyFormName:       property.Name,
			dict.PropertyFormType:       property.Type,
			dict.PropertyFormExpression: nullable(property.Expression),
			dict.PropertyFormVariable:   nullable(property.Variable),
			dict.PropertyFormDefault:    nullable(property.DefaultExpression),
			dict.PropertyFormRequired:   property.Required,
			dict.PropertyFormReadable:   property.Readable,
			dict.PropertyFormWritable:   property.Writeable,
		}
		codec.PutString(item, dict.PropertyFormDatePattern, property.DatePattern)
		if len(property.FormValues) > 0 {
			values := make([]interface{}, 0, len(property.FormValues))
			for _, value := range property.FormValues {
				values = append(values, codec.Node{
					dict.PropertyFormEnumValuesName: value.Name,
					dict.PropertyFormEnumValuesID:   value.Id,
				})
			}
			item[dict.PropertyFormEnumValues] = values
		}
		items = append(items, item)
	}
	props[dict.PropertyFormProperties] = codec.Node{dict.ValueFormProperties: items}
}

func parseFormProperties(shape codec.Node) []*bpmn.FormProperty {
	var properties []*bpmn.FormProperty
	for _, item := range codec.GetItems(dict.PropertyFormProperties, dict.ValueFormProperties, shape) {
		id := codec.Field(item, dict.PropertyFormID)
		if len(id) == 0 {
			continue
		}
		property := &bpmn.FormProperty{
			Id:                id,
			Name:              codec.Field(item, dict.PropertyFormName),
			Type:              codec.Field(item, dict.PropertyFormType),
			Expression:        codec.Field(item, dict.PropertyFormExpression),
			Variable:          codec.Field(item, dict.PropertyFormVariable),
			DefaultExpression: codec.Field(item, dict.PropertyFormDefault),
			Required:          codec.FieldBool(item, dict.PropertyFormRequired, false),
			Readable:          codec.FieldBool(item, dict.PropertyFormReadable, false),
			Writeable:         codec.FieldBool(item, dict.PropertyFormWritable, false),
		}
		switch strings.ToLower(property.Type) {
		case "date":
			property.DatePattern = codec.Field(item, dict.PropertyFormDatePattern)
		case "enum":
			for _, value := range codec.Objects(item[dict.PropertyFormEnumValues]) {
				if value[dict.PropertyFormEnumValuesID] != nil && value[dict.PropertyFormEnumValuesName] != nil {
					property.FormValues = append(property.FormValues, &bpmn.FormValue{
						Id:   codec.Field(value, dict.PropertyFormEnumValuesID),
						Name: codec.Field(value, dict.PropertyFormEnumValuesName),
					})
				} else if value["value"] != nil {
					text := codec.Field(value, "value")
					property.FormValues = append(property.FormValues, &bpmn.FormValue{Id: text, Name: text})
				}
			}
		}
		properties = append(properties, property)
	}
	return properties
}

// multiInstanceToJSON writes the loop characteristics when at least the
// cardinality, the collection or the completion condition is set.
func multiInstanceToJSON(props codec.Node, mi *bpmn.MultiInstance) {
	if mi == nil || (len(mi.LoopCardinality) == 0 && len(mi.InputDataItem) == 0 && len(mi.CompletionCondition) == 0) {
		return
	}
	if mi.Sequential {
		props[dict.PropertyMultiinstanceType] = multiInstanceSequential
	} else {
		props[dict.PropertyMultiinstanceType] = multiInstanceParallel
	}
	codec.PutString(props, dict.PropertyMultiinstanceCardinality, mi.LoopCardinality)
	codec.PutString(props, dict.PropertyMultiinstanceCollection, mi.InputDataItem)
	codec.PutString(props, dict.PropertyMultiinstanceVariable, mi.ElementVariable)
	codec.PutString(props, dict.PropertyMultiinstanceCondition, mi.CompletionCondition)
	codec.PutString(props, dict.PropertyMultiinstanceIndexVariable, mi.ElementIndexVariable)

	if mi.Aggregations == nil {
		props[dict.PropertyMultiinstanceVariableAggregations] = nil
		return
	}
	items := make([]interface{}, 0, len(mi.Aggregations))
	for _, aggregation := range mi.Aggregations {
		item := codec.Node{
			"target":           nullable(aggregation.Target),
			"targetExpression": nullable(aggregation.TargetExpression),
			"storeAsTransient": aggregation.StoreAsTransient,
			"createOverview":   aggregation.CreateOverview,
		}
		switch aggregation.ImplementationType {
		case bpmn.ImplementationDelegateExpression:
			item["delegateExpression"] = aggregation.Implementation
		case bpmn.ImplementationClass:
			item["class"] = aggregation.Implementation
		}
		definitions := make([]interface{}, 0, len(aggregation.Definitions))
		for _, definition := range aggregation.Definitions {
			definitions = append(definitions, codec.Node{
				"source":           nullable(definition.Source),
				"sourceExpression": nullable(definition.SourceExpression),
				"target":           nullable(definition.Target),
				"targetExpression": nullable(definition.TargetExpression),
			})
		}
		item[dict.ValueAggregationDefinitions] = definitions
		items = append(items, item)
	}
	props[dict.PropertyMultiinstanceVariableAggregations] = codec.Node{dict.ValueAggregations: items}
}

// parseMultiInstance returns nil unless the shape declares a multi instance
// type other than none.
func parseMultiInstance(shape codec.Node) *bpmn.MultiInstance {
	typ := codec.String(dict.PropertyMultiinstanceType, shape)
	if len(typ) == 0 || strings.EqualFold(typ, multiInstanceNone) {
		return nil
	}
	mi := &bpmn.MultiInstance{
		Sequential:           strings.EqualFold(typ, multiInstanceSequential),
		LoopCardinality:      codec.String(dict.PropertyMultiinstanceCardinality, shape),
		InputDataItem:        codec.String(dict.PropertyMultiinstanceCollection, shape),
		ElementVariable:      codec.String(dict.PropertyMultiinstanceVariable, shape),
		CompletionCondition:  codec.String(dict.PropertyMultiinstanceCondition, shape),
		ElementIndexVariable: codec.String(dict.PropertyMultiinstanceIndexVariable, shape),
	}

	node := codec.GetObject(dict.PropertyMultiinstanceVariableAggregations, shape)
	if node == nil {
		return mi
	}
	mi.Aggregations = []*bpmn.VariableAggregation{}
	for _, item := range codec.Objects(node[dict.ValueAggregations]) {
		aggregation := &bpmn.VariableAggregation{
			Target:           strings.TrimSpace(codec.Field(item, "target")),
			TargetExpression: strings.TrimSpace(codec.Field(item, "targetExpression")),
			StoreAsTransient: codec.FieldBool(item, "storeAsTransient", false),
			CreateOverview:   codec.FieldBool(item, "createOverview", false),
		}
		if v := strings.TrimSpace(codec.Field(item, "delegateExpression")); len(v) > 0 {
			aggregation.ImplementationType = bpmn.ImplementationDelegateExpression
			aggregation.Implementation = v
		} else if v = strings.TrimSpace(codec.Field(item, "class")); len(v) > 0 {
			aggregation.ImplementationType = bpmn.ImplementationClass
			aggregation.Implementation = v
		}
		for _, definition := range codec.Objects(item[dict.ValueAggregationDefinitions]) {
			aggregation.Definitions = append(aggregation.Definitions, &bpmn.AggregationVariable{
				Source:           strings.TrimSpace(codec.Field(definition, "source")),
				SourceExpression: strings.TrimSpace(codec.Field(definition, "sourceExpression")),
				Target:           strings.TrimSpace(codec.Field(definition, "target")),
				TargetExpression: strings.TrimSpace(codec.Field(definition, "targetExpression")),
			})
		}
		mi.Aggregations = append(mi.Aggregations, aggregation)
	}
	return mi
}

func dataPropertiesToJSON(props codec.Node, objects []*bpmn.DataObject) {
	items := make([]interface{}, 0, len(objects))
	for _, object := range objects {
		items = append(items, codec.Node{
			dict.PropertyDataID:    object.Id,
			dict.PropertyDataName:  object.Name,
			dict.PropertyDataType:  object.DataType(),
			dict.PropertyDataValue: object.Value,
		})
	}
	props[dict.PropertyDataProperties] = codec.Node{dict.EditorGeneralItems: items}
}

// parseDataProperties reads the data objects of a process or sub process.
// An item with an unknown type is logged and dropped.
func parseDataProperties(shape codec.Node) []*bpmn.DataObject {
	var objects []*bpmn.DataObject
	for _, item := range codec.GetItems(dict.PropertyDataProperties, dict.EditorGeneralItems, shape) {
		id := codec.Field(item, dict.PropertyDataID)
		if len(id) == 0 {
			continue
		}
		typ := codec.Field(item, dict.PropertyDataType)
		if _, ok := dataTypes[typ]; !ok {
			log.Errorf("data property %s has unsupported type %q", id, typ)
			continue
		}
		objects = append(objects, &bpmn.DataObject{
			Id:             id,
			Name:           codec.Field(item, dict.PropertyDataName),
			ItemSubjectRef: "xsd:" + typ,
			Value:          codec.Field(item, dict.PropertyDataValue),
		})
	}
	return objects
}

func ioParametersToJSON(inner string, parameters []*bpmn.IOParameter) codec.Node {
	items := make([]interface{}, 0, len(parameters))
	for _, parameter := range parameters {
		items = append(items, codec.Node{
			dict.PropertyIoparameterSource:           nullable(parameter.Source),
			dict.PropertyIoparameterTarget:           nullable(parameter.Target),
			dict.PropertyIoparameterSourceExpression: nullable(parameter.SourceExpression),
		})
	}
	return codec.Node{inner: items}
}

// parseIOParameters keeps the parameters that name a source or a source
// expression.
func parseIOParameters(key, inner string, shape codec.Node) []*bpmn.IOParameter {
	var parameters []*bpmn.IOParameter
	for _, item := range codec.GetItems(key, inner, shape) {
		parameter := &bpmn.IOParameter{Target: codec.Field(item, dict.PropertyIoparameterTarget)}
		if v := codec.Field(item, dict.PropertyIoparameterSource); len(v) > 0 {
			parameter.Source = v
		} else if v = codec.Field(item, dict.PropertyIoparameterSourceExpression); len(v) > 0 {
			parameter.SourceExpression = v
		} else {
			continue
		}
		parameters = append(parameters, parameter)
	}
	return parameters
}
