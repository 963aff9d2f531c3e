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

// Package dict holds the vocabulary shared with the diagram editor: stencil
// ids, property keys and document layout keys. The spellings are part of the
// wire format.
package dict

// Document layout keys.
const (
	EditorStencil          = "stencil"
	EditorStencilID        = "id"
	EditorStencilSet       = "stencilset"
	EditorChildShapes      = "childShapes"
	EditorShapeProperties  = "properties"
	EditorShapeID          = "resourceId"
	EditorBounds           = "bounds"
	EditorBoundsLowerRight = "lowerRight"
	EditorBoundsUpperLeft  = "upperLeft"
	EditorBoundsX          = "x"
	EditorBoundsY          = "y"
	EditorDockers          = "dockers"
	EditorOutgoing         = "outgoing"
	EditorTarget           = "target"
	EditorGeneralItems     = "items"
)

// Canvas of the root shape.
const (
	CanvasResourceID     = "canvas"
	StencilDiagram       = "BPMNDiagram"
	StencilSetNamespace  = "http://b3mn.org/stencilset/bpmn2.0#"
	StencilSetURL        = "../editor/stencilsets/bpmn2.0/bpmn2.0.json"
	CanvasMinWidth       = 1485
	CanvasMinHeight      = 700
	CanvasMargin         = 50
	DefaultTargetNS      = "http://flowable.org/test"
	ModelerNamespace     = "http://flowable.org/modeler"
	FlowableNamespace    = "http://flowable.org/bpmn"
	FlowableNamespaceTag = "flowable"
)

// Extension element names used by the editor round trip.
const (
	ExtensionResourceID              = "EDITOR_RESOURCEID"
	ExtensionFlowOrder               = "EDITOR_FLOW_ORDER"
	ExtensionHistoryLevel            = "historyLevel"
	ExtensionDecisionReferenceType   = "decisionReferenceType"
	ExtensionEventType               = "eventType"
	ExtensionEventName               = "eventName"
	ExtensionEventInParameter        = "eventInParameter"
	ExtensionEventOutParameter       = "eventOutParameter"
	ExtensionEventCorrelation        = "eventCorrelationParameter"
	ExtensionTriggerEventCorrelation = "triggerEventCorrelationParameter"
	ExtensionChannelKey              = "channelKey"
	ExtensionChannelName             = "channelName"
	ExtensionChannelType             = "channelType"
	ExtensionChannelDestination      = "channelDestination"
	ExtensionKeyDetectionType        = "keyDetectionType"
	ExtensionKeyDetectionValue       = "keyDetectionValue"
	ExtensionTriggerEventType        = "triggerEventType"
	ExtensionTriggerEventName        = "triggerEventName"
	ExtensionTriggerChannelKey       = "triggerChannelKey"
	ExtensionTriggerChannelName      = "triggerChannelName"
	ExtensionTriggerChannelType      = "triggerChannelType"
	ExtensionTriggerChannelDest      = "triggerChannelDestination"
	ExtensionConditionFieldID        = "conditionFieldId"
	ExtensionConditionOperator       = "conditionOperator"
	ExtensionConditionValue          = "conditionValue"
	ExtensionConditionFormID         = "conditionFormId"
	ExtensionConditionOutcomeName    = "conditionOutcomeName"
	ExtensionInitiatorCanComplete    = "initiator-can-complete"
	ModelerNamespacePrefix           = "modeler"
)

// Extensions recording identity assignments of user tasks.
const (
	ExtensionIdmAssignee           = "activiti-idm-assignee"
	ExtensionIdmAssigneeField      = "activiti-idm-assignee-field"
	ExtensionIdmCandidateUser      = "activiti-idm-candidate-user"
	ExtensionIdmCandidateGroup     = "activiti-idm-candidate-group"
	ExtensionIdmInitiator          = "activiti-idm-initiator"
	ExtensionCandidateUsersEmails  = "activiti-candidate-users-emails"
	ExtensionAssigneeInfoPrefix    = "assignee-info-"
	ExtensionAssigneeFieldInfoName = "assignee-field-info-name"
	ExtensionUserInfoPrefix        = "user-info-"
	ExtensionUserFieldInfoPrefix   = "user-field-info-name-"
	ExtensionGroupInfoPrefix       = "group-info-name-"
	ExtensionGroupFieldInfoPrefix  = "group-field-info-name-"
)

// Values of the decisionReferenceType extension.
const (
	DecisionReferenceTable   = "decisionTable"
	DecisionReferenceService = "decisionService"
)

// Values of the keyDetectionType extension.
const (
	KeyDetectionFixedValue  = "fixedValue"
	KeyDetectionJSONField   = "jsonField"
	KeyDetectionJSONPointer = "jsonPointer"
)
