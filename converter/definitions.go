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
	"github.com/vine-io/flow-editor/bpmn"
	"github.com/vine-io/flow-editor/codec"
	"github.com/vine-io/flow-editor/dict"
)

// eventPropertiesToJSON writes the properties of the only event definition.
// Events with no or several definitions get none.
func eventPropertiesToJSON(props codec.Node, event bpmn.Event) {
	switch d := bpmn.SingleDefinition(event).(type) {
	case *bpmn.ErrorEventDefinition:
		codec.PutString(props, dict.PropertyErrorref, d.ErrorCode)
		codec.PutString(props, dict.PropertyErrorVariableName, d.VariableName)
		if d.Transient != nil {
			props[dict.PropertyErrorVariableTransient] = *d.Transient
		}
		if d.LocalScope != nil {
			props[dict.PropertyErrorVariableLocalScope] = *d.LocalScope
		}
	case *bpmn.SignalEventDefinition:
		codec.PutString(props, dict.PropertySignalref, d.SignalRef)
		codec.PutString(props, dict.PropertySignalexpression, d.SignalExpression)
	case *bpmn.MessageEventDefinition:
		codec.PutString(props, dict.PropertyMessageref, d.MessageRef)
		codec.PutString(props, dict.PropertyMessageexpression, d.MessageExpression)
	case *bpmn.ConditionalEventDefinition:
		codec.PutString(props, dict.PropertyConditionalEventCondition, d.ConditionExpression)
	case *bpmn.EscalationEventDefinition:
		codec.PutString(props, dict.PropertyEscalationref, d.EscalationCode)
	case *bpmn.TimerEventDefinition:
		codec.PutString(props, dict.PropertyCalendarName, d.CalendarName)
		codec.PutString(props, dict.PropertyTimerDuration, d.TimeDuration)
		codec.PutString(props, dict.PropertyTimerCycle, d.TimeCycle)
		codec.PutString(props, dict.PropertyTimerDate, d.TimeDate)
		codec.PutString(props, dict.PropertyTimerCycleEndDate, d.EndDate)
	case *bpmn.TerminateEventDefinition:
		props[dict.PropertyTerminateAll] = d.TerminateAll
		props[dict.PropertyTerminateMultiInstance] = d.TerminateMultiInstance
	case *bpmn.VariableListenerEventDefinition:
		codec.PutString(props, dict.PropertyVariableListenerVariableName, d.VariableName)
		codec.PutString(props, dict.PropertyVariableListenerVariableChangeType, d.ChangeType)
	case *bpmn.CompensateEventDefinition:
		codec.PutString(props, dict.PropertyCompensationActivityRef, d.ActivityRef)
	case *bpmn.CancelEventDefinition, nil:
		// no properties
	}
}

// parseTimerDefinition reads a timer. Date wins over cycle, cycle over
// duration.
func parseTimerDefinition(shape codec.Node) *bpmn.TimerEventDefinition {
	d := &bpmn.TimerEventDefinition{
		CalendarName: codec.String(dict.PropertyCalendarName, shape),
		EndDate:      codec.String(dict.PropertyTimerCycleEndDate, shape),
	}
	if v := codec.String(dict.PropertyTimerDate, shape); len(v) > 0 {
		d.TimeDate = v
	} else if v = codec.String(dict.PropertyTimerCycle, shape); len(v) > 0 {
		d.TimeCycle = v
	} else if v = codec.String(dict.PropertyTimerDuration, shape); len(v) > 0 {
		d.TimeDuration = v
	}
	return d
}

func parseSignalDefinition(shape codec.Node) *bpmn.SignalEventDefinition {
	return &bpmn.SignalEventDefinition{
		SignalRef:        codec.String(dict.PropertySignalref, shape),
		SignalExpression: codec.String(dict.PropertySignalexpression, shape),
		Async:            codec.GetBool(dict.PropertyAsynchronous, shape, false),
	}
}

func parseMessageDefinition(shape codec.Node) *bpmn.MessageEventDefinition {
	return &bpmn.MessageEventDefinition{
		MessageRef:        codec.String(dict.PropertyMessageref, shape),
		MessageExpression: codec.String(dict.PropertyMessageexpression, shape),
	}
}

func parseConditionalDefinition(shape codec.Node) *bpmn.ConditionalEventDefinition {
	return &bpmn.ConditionalEventDefinition{
		ConditionExpression: codec.String(dict.PropertyConditionalEventCondition, shape),
	}
}

func parseEscalationDefinition(shape codec.Node) *bpmn.EscalationEventDefinition {
	return &bpmn.EscalationEventDefinition{EscalationCode: codec.String(dict.PropertyEscalationref, shape)}
}

func parseCompensateDefinition(shape codec.Node) *bpmn.CompensateEventDefinition {
	return &bpmn.CompensateEventDefinition{ActivityRef: codec.String(dict.PropertyCompensationActivityRef, shape)}
}

// parseErrorDefinition reads an error. Transient and local scope default
// to true.
func parseErrorDefinition(shape codec.Node) *bpmn.ErrorEventDefinition {
	transient := codec.GetBool(dict.PropertyErrorVariableTransient, shape, true)
	localScope := codec.GetBool(dict.PropertyErrorVariableLocalScope, shape, true)
	return &bpmn.ErrorEventDefinition{
		ErrorCode:    codec.String(dict.PropertyErrorref, shape),
		VariableName: codec.String(dict.PropertyErrorVariableName, shape),
		Transient:    &transient,
		LocalScope:   &localScope,
	}
}

// parseVariableListenerDefinition keeps the change type only with a
// variable name.
func parseVariableListenerDefinition(shape codec.Node) *bpmn.VariableListenerEventDefinition {
	d := &bpmn.VariableListenerEventDefinition{
		VariableName: codec.String(dict.PropertyVariableListenerVariableName, shape),
	}
	if len(d.VariableName) > 0 {
		d.ChangeType = codec.String(dict.PropertyVariableListenerVariableChangeType, shape)
	}
	return d
}

func parseTerminateDefinition(shape codec.Node) *bpmn.TerminateEventDefinition {
	return &bpmn.TerminateEventDefinition{
		TerminateAll:           codec.GetBool(dict.PropertyTerminateAll, shape, false),
		TerminateMultiInstance: codec.GetBool(dict.PropertyTerminateMultiInstance, shape, false),
	}
}
