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

package dict

// Stencil identifiers of the editor vocabulary.
const (
	StencilEventStartNone                = "StartNoneEvent"
	StencilEventStartTimer               = "StartTimerEvent"
	StencilEventStartMessage             = "StartMessageEvent"
	StencilEventStartSignal              = "StartSignalEvent"
	StencilEventStartError               = "StartErrorEvent"
	StencilEventStartEventRegistry       = "StartEventRegistryEvent"
	StencilEventStartVariableListener    = "StartVariableListenerEvent"
	StencilEventStartConditional         = "StartConditionalEvent"
	StencilEventStartEscalation          = "StartEscalationEvent"
	StencilEventEndNone                  = "EndNoneEvent"
	StencilEventEndError                 = "EndErrorEvent"
	StencilEventEndEscalation            = "EndEscalationEvent"
	StencilEventEndCancel                = "EndCancelEvent"
	StencilEventEndTerminate             = "EndTerminateEvent"
	StencilSubProcess                    = "SubProcess"
	StencilCollapsedSubProcess           = "CollapsedSubProcess"
	StencilEventSubProcess               = "EventSubProcess"
	StencilAdhocSubProcess               = "AdhocSubProcess"
	StencilCallActivity                  = "CallActivity"
	StencilPool                          = "Pool"
	StencilLane                          = "Lane"
	StencilTaskBusinessRule              = "BusinessRule"
	StencilTaskMail                      = "MailTask"
	StencilTaskManual                    = "ManualTask"
	StencilTaskReceive                   = "ReceiveTask"
	StencilTaskReceiveEvent              = "ReceiveEventTask"
	StencilTaskScript                    = "ScriptTask"
	StencilTaskSend                      = "SendTask"
	StencilTaskService                   = "ServiceTask"
	StencilTaskUser                      = "UserTask"
	StencilTaskCamel                     = "CamelTask"
	StencilTaskMule                      = "MuleTask"
	StencilTaskHTTP                      = "HttpTask"
	StencilTaskSendEvent                 = "SendEventTask"
	StencilTaskExternalWorker            = "ExternalWorkerTask"
	StencilTaskShell                     = "ShellTask"
	StencilTaskDecision                  = "DecisionTask"
	StencilGatewayExclusive              = "ExclusiveGateway"
	StencilGatewayParallel               = "ParallelGateway"
	StencilGatewayInclusive              = "InclusiveGateway"
	StencilGatewayEvent                  = "EventGateway"
	StencilEventBoundaryTimer            = "BoundaryTimerEvent"
	StencilEventBoundaryError            = "BoundaryErrorEvent"
	StencilEventBoundaryConditional      = "BoundaryConditionalEvent"
	StencilEventBoundaryEscalation       = "BoundaryEscalationEvent"
	StencilEventBoundarySignal           = "BoundarySignalEvent"
	StencilEventBoundaryMessage          = "BoundaryMessageEvent"
	StencilEventBoundaryEventRegistry    = "BoundaryEventRegistryEvent"
	StencilEventBoundaryVariableListener = "BoundaryVariableListenerEvent"
	StencilEventBoundaryCancel           = "BoundaryCancelEvent"
	StencilEventBoundaryCompensation     = "BoundaryCompensationEvent"
	StencilEventCatchSignal              = "CatchSignalEvent"
	StencilEventCatchTimer               = "CatchTimerEvent"
	StencilEventCatchMessage             = "CatchMessageEvent"
	StencilEventCatchConditional         = "CatchConditionalEvent"
	StencilEventCatchEventRegistry       = "CatchEventRegistryEvent"
	StencilEventCatchVariableListener    = "CatchVariableListenerEvent"
	StencilEventThrowSignal              = "ThrowSignalEvent"
	StencilEventThrowEscalation          = "ThrowEscalationEvent"
	StencilEventThrowNone                = "ThrowNoneEvent"
	StencilEventThrowCompensation        = "ThrowCompensationEvent"
	StencilSequenceFlow                  = "SequenceFlow"
	StencilMessageFlow                   = "MessageFlow"
	StencilAssociation                   = "Association"
	StencilDataAssociation               = "DataAssociation"
	StencilTextAnnotation                = "TextAnnotation"
	StencilDataStore                     = "DataStore"
)
