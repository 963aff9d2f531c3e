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

// ElementConverter converts one element family between the process graph
// and the editor document.
type ElementConverter interface {
	// StencilID returns the stencil the element is drawn with.
	StencilID(elem bpmn.Element) string
	// ToJSON returns the shapes of the element, its own shape first.
	ToJSON(ctx Context, elem bpmn.Element) ([]codec.Node, error)
	// ToDomain builds the element of a shape and adds it to the container
	// or lane of ctx.
	ToDomain(ctx Context, shape codec.Node) (bpmn.Element, error)
}

// stencils maps every stencil id the editor may send to its converter.
var stencils = map[string]ElementConverter{
	dict.StencilEventStartNone:             startEventConverter,
	dict.StencilEventStartTimer:            startEventConverter,
	dict.StencilEventStartMessage:          startEventConverter,
	dict.StencilEventStartSignal:           startEventConverter,
	dict.StencilEventStartError:            startEventConverter,
	dict.StencilEventStartEscalation:       startEventConverter,
	dict.StencilEventStartConditional:      startEventConverter,
	dict.StencilEventStartVariableListener: startEventConverter,
	dict.StencilEventStartEventRegistry:    startEventConverter,

	dict.StencilEventEndNone:       endEventConverter,
	dict.StencilEventEndError:      endEventConverter,
	dict.StencilEventEndEscalation: endEventConverter,
	dict.StencilEventEndCancel:     endEventConverter,
	dict.StencilEventEndTerminate:  endEventConverter,

	dict.StencilEventBoundaryTimer:            boundaryEventConverter,
	dict.StencilEventBoundaryError:            boundaryEventConverter,
	dict.StencilEventBoundaryConditional:      boundaryEventConverter,
	dict.StencilEventBoundaryEscalation:       boundaryEventConverter,
	dict.StencilEventBoundarySignal:           boundaryEventConverter,
	dict.StencilEventBoundaryMessage:          boundaryEventConverter,
	dict.StencilEventBoundaryEventRegistry:    boundaryEventConverter,
	dict.StencilEventBoundaryVariableListener: boundaryEventConverter,
	dict.StencilEventBoundaryCancel:           boundaryEventConverter,
	dict.StencilEventBoundaryCompensation:     boundaryEventConverter,

	dict.StencilEventCatchTimer:            catchEventConverter,
	dict.StencilEventCatchMessage:          catchEventConverter,
	dict.StencilEventCatchSignal:           catchEventConverter,
	dict.StencilEventCatchConditional:      catchEventConverter,
	dict.StencilEventCatchVariableListener: catchEventConverter,
	dict.StencilEventCatchEventRegistry:    catchEventConverter,

	dict.StencilEventThrowNone:         throwEventConverter,
	dict.StencilEventThrowSignal:       throwEventConverter,
	dict.StencilEventThrowEscalation:   throwEventConverter,
	dict.StencilEventThrowCompensation: throwEventConverter,

	dict.StencilTaskUser:           userTaskConverter,
	dict.StencilTaskService:        serviceTaskConverter,
	dict.StencilTaskMail:           mailTaskConverter,
	dict.StencilTaskCamel:          camelTaskConverter,
	dict.StencilTaskMule:           muleTaskConverter,
	dict.StencilTaskHTTP:           httpTaskConverter,
	dict.StencilTaskShell:          shellTaskConverter,
	dict.StencilTaskDecision:       decisionTaskConverter,
	dict.StencilTaskExternalWorker: externalWorkerTaskConverter,
	dict.StencilTaskSendEvent:      sendEventTaskConverter,
	dict.StencilTaskScript:         scriptTaskConverter,
	dict.StencilTaskBusinessRule:   businessRuleTaskConverter,
	dict.StencilTaskManual:         manualTaskConverter,
	dict.StencilTaskReceive:        receiveTaskConverter,
	dict.StencilTaskReceiveEvent:   receiveTaskConverter,
	dict.StencilTaskSend:           sendTaskConverter,
	dict.StencilCallActivity:       callActivityConverter,

	dict.StencilGatewayExclusive: gatewayConverter,
	dict.StencilGatewayParallel:  gatewayConverter,
	dict.StencilGatewayInclusive: gatewayConverter,
	dict.StencilGatewayEvent:     gatewayConverter,

	dict.StencilSubProcess:          subProcessConverter,
	dict.StencilCollapsedSubProcess: subProcessConverter,
	dict.StencilEventSubProcess:     subProcessConverter,
	dict.StencilAdhocSubProcess:     adhocSubProcessConverter,

	dict.StencilSequenceFlow:    sequenceFlowConverter,
	dict.StencilMessageFlow:     messageFlowConverter,
	dict.StencilAssociation:     associationConverter,
	dict.StencilDataAssociation: dataAssociationConverter,

	dict.StencilTextAnnotation: textAnnotationConverter,
	dict.StencilDataStore:      dataStoreConverter,

	dict.StencilPool: poolConverter,
	dict.StencilLane: laneConverter,
}

// shapes maps every element kind of the process graph to its converter.
var shapes = map[bpmn.Shape]ElementConverter{
	bpmn.StartEventShape:       startEventConverter,
	bpmn.EndEventShape:         endEventConverter,
	bpmn.BoundaryEventShape:    boundaryEventConverter,
	bpmn.CatchEventShape:       catchEventConverter,
	bpmn.ThrowEventShape:       throwEventConverter,
	bpmn.UserTaskShape:         userTaskConverter,
	bpmn.ServiceTaskShape:      serviceTaskConverter,
	bpmn.ScriptTaskShape:       scriptTaskConverter,
	bpmn.BusinessRuleTaskShape: businessRuleTaskConverter,
	bpmn.ManualTaskShape:       manualTaskConverter,
	bpmn.ReceiveTaskShape:      receiveTaskConverter,
	bpmn.SendTaskShape:         sendTaskConverter,
	bpmn.CallActivityShape:     callActivityConverter,
	bpmn.ExclusiveGatewayShape: gatewayConverter,
	bpmn.ParallelGatewayShape:  gatewayConverter,
	bpmn.InclusiveGatewayShape: gatewayConverter,
	bpmn.EventGatewayShape:     gatewayConverter,
	bpmn.SubProcessShape:       subProcessConverter,
	bpmn.EventSubProcessShape:  subProcessConverter,
	bpmn.AdhocSubProcessShape:  adhocSubProcessConverter,
	bpmn.FlowShape:             sequenceFlowConverter,
	bpmn.MessageFlowShape:      messageFlowConverter,
	bpmn.AssociationShape:      associationConverter,
	bpmn.TextAnnotationShape:   textAnnotationConverter,
	bpmn.DataStoreShape:        dataStoreConverter,
	bpmn.PoolShape:             poolConverter,
	bpmn.LaneShape:             laneConverter,
}

// ForStencil returns the converter of a stencil id.
func ForStencil(stencilID string) (ElementConverter, bool) {
	c, ok := stencils[stencilID]
	return c, ok
}

// ForShape returns the converter of an element kind.
func ForShape(shape bpmn.Shape) (ElementConverter, bool) {
	c, ok := shapes[shape]
	return c, ok
}

// StencilOf returns the stencil an element is drawn with, empty when no
// converter knows its kind.
func StencilOf(elem bpmn.Element) string {
	c, ok := ForShape(elem.GetShape())
	if !ok {
		return ""
	}
	return c.StencilID(elem)
}
