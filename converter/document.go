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

// defaultProcessID names the process of a document without process_id.
const defaultProcessID = "process"

// processToJSON writes the properties of the root shape: the main process
// and the definitions shared by the whole model.
func processToJSON(props codec.Node, model *bpmn.Model, process *bpmn.Process) {
	props[dict.PropertyProcessID] = process.Id
	codec.PutString(props, dict.PropertyName, process.Name)
	codec.PutString(props, dict.PropertyDocumentation, process.Document)
	if !process.Executable {
		props[dict.PropertyIsExecutable] = "false"
	}
	codec.PutString(props, dict.PropertyProcessNamespace, model.TargetNamespace)
	codec.PutList(props, dict.PropertyProcessPotentialstartergroup, process.CandidateStarterGroups)
	codec.PutList(props, dict.PropertyProcessPotentialstarteruser, process.CandidateStarterUsers)
	codec.PutString(props, dict.PropertyProcessHistorylevel, process.Extensions.Value(dict.ExtensionHistoryLevel))
	props[dict.PropertyIsEagerExecutionFetching] = process.EagerExecution

	props[dict.PropertyExecutionListeners] = listenersToJSON(dict.ValueExecutionListeners, process.ExecutionListeners)
	eventListenersToJSON(props, process.EventListeners)
	definitionsToJSON(props, model)
	if len(process.DataObjects) > 0 {
		dataPropertiesToJSON(props, process.DataObjects)
	}
}

func definitionsToJSON(props codec.Node, model *bpmn.Model) {
	messages := make([]interface{}, 0, len(model.Messages))
	messageDefinitions := make([]interface{}, 0, len(model.Messages))
	for _, message := range model.Messages {
		messages = append(messages, codec.Node{
			dict.PropertyMessageID:      message.Id,
			dict.PropertyMessageName:    message.Name,
			dict.PropertyMessageItemRef: nullable(message.ItemRef),
		})
		definition := codec.Node{
			dict.PropertyMessageDefinitionID:   message.Id,
			dict.PropertyMessageDefinitionName: message.Name,
		}
		codec.PutString(definition, dict.PropertyMessageDefinitionItemRef, message.ItemRef)
		messageDefinitions = append(messageDefinitions, definition)
	}
	props[dict.PropertyMessages] = messages
	props[dict.PropertyMessageDefinitions] = messageDefinitions

	signals := make([]interface{}, 0, len(model.Signals))
	for _, signal := range model.Signals {
		signals = append(signals, codec.Node{
			dict.PropertySignalDefinitionID:    signal.Id,
			dict.PropertySignalDefinitionName:  signal.Name,
			dict.PropertySignalDefinitionScope: signal.Scope,
		})
	}
	props[dict.PropertySignalDefinitions] = signals

	escalations := make([]interface{}, 0, len(model.Escalations))
	for _, escalation := range model.Escalations {
		item := codec.Node{dict.PropertyEscalationDefinitionID: escalation.Code}
		codec.PutString(item, dict.PropertyEscalationDefinitionName, escalation.Name)
		escalations = append(escalations, item)
	}
	props[dict.PropertyEscalationDefinitions] = escalations
}

// parseDefinitions reads the signals, escalations and messages of the root
// shape. Entries without an id are dropped, signals and escalations also
// need a name.
func parseDefinitions(root codec.Node, model *bpmn.Model) {
	for _, item := range codec.GetArray(dict.PropertySignalDefinitions, root) {
		id, name := codec.Field(item, dict.PropertySignalDefinitionID), codec.Field(item, dict.PropertySignalDefinitionName)
		if len(id) == 0 || len(name) == 0 {
			continue
		}
		scope := bpmn.SignalScopeGlobal
		if strings.EqualFold(codec.Field(item, dict.PropertySignalDefinitionScope), bpmn.SignalScopeProcessInstance) {
			scope = bpmn.SignalScopeProcessInstance
		}
		model.AddSignal(&bpmn.Signal{Id: id, Name: name, Scope: scope})
	}

	for _, item := range codec.GetArray(dict.PropertyEscalationDefinitions, root) {
		id, name := codec.Field(item, dict.PropertyEscalationDefinitionID), codec.Field(item, dict.PropertyEscalationDefinitionName)
		if len(id) == 0 || len(name) == 0 {
			continue
		}
		model.AddEscalation(&bpmn.Escalation{Id: id, Name: name, Code: id})
	}

	for _, item := range codec.GetArray(dict.PropertyMessageDefinitions, root) {
		id := codec.Field(item, dict.PropertyMessageDefinitionID)
		if len(id) == 0 || model.ContainsMessage(id) {
			continue
		}
		model.AddMessage(&bpmn.Message{
			Id:      id,
			Name:    codec.Field(item, dict.PropertyMessageDefinitionName),
			ItemRef: codec.Field(item, dict.PropertyMessageDefinitionItemRef),
		})
	}
	for _, item := range codec.GetArray(dict.PropertyMessages, root) {
		id := codec.Field(item, dict.PropertyMessageID)
		if len(id) == 0 || model.ContainsMessage(id) {
			continue
		}
		model.AddMessage(&bpmn.Message{
			Id:      id,
			Name:    codec.Field(item, dict.PropertyMessageName),
			ItemRef: codec.Field(item, dict.PropertyMessageItemRef),
		})
	}
}

// parseProcess reads the main process of a document without pools.
func parseProcess(root codec.Node, model *bpmn.Model) *bpmn.Process {
	id := codec.String(dict.PropertyProcessID, root)
	if len(id) == 0 {
		id = defaultProcessID
	}
	process := bpmn.NewProcess(id)
	process.Name = codec.String(dict.PropertyName, root)
	process.Document = codec.String(dict.PropertyDocumentation, root)
	process.Executable = codec.GetBool(dict.PropertyIsExecutable, root, true)
	if namespace := codec.String(dict.PropertyProcessNamespace, root); len(namespace) > 0 {
		model.TargetNamespace = namespace
	}
	addExtension(process, dict.ExtensionHistoryLevel, codec.String(dict.PropertyProcessHistorylevel, root))
	parseProcessDetails(root, process)
	return process
}

// parseProcessDetails reads the root properties every process of the
// document shares, pool processes included.
func parseProcessDetails(root codec.Node, process *bpmn.Process) {
	process.EagerExecution = codec.GetBool(dict.PropertyIsEagerExecutionFetching, root, false)
	process.CandidateStarterUsers = codec.GetList(dict.PropertyProcessPotentialstarteruser, root)
	process.CandidateStarterGroups = codec.GetList(dict.PropertyProcessPotentialstartergroup, root)
	process.ExecutionListeners = parseListeners(dict.PropertyExecutionListeners, dict.ValueExecutionListeners, root)
	process.EventListeners = parseEventListeners(root)
	process.DataObjects = parseDataProperties(root)
}
