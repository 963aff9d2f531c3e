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

var userTaskConverter = &nodeConverter{
	stencil:  fixedStencil(dict.StencilTaskUser),
	toJSON:   userTaskToJSON,
	toDomain: userTaskToDomain,
}

var scriptTaskConverter = &nodeConverter{
	stencil:  fixedStencil(dict.StencilTaskScript),
	toJSON:   scriptTaskToJSON,
	toDomain: scriptTaskToDomain,
}

var businessRuleTaskConverter = &nodeConverter{
	stencil:  fixedStencil(dict.StencilTaskBusinessRule),
	toJSON:   businessRuleTaskToJSON,
	toDomain: businessRuleTaskToDomain,
}

var manualTaskConverter = &nodeConverter{
	stencil: fixedStencil(dict.StencilTaskManual),
	toDomain: func(ctx Context, shape codec.Node) (bpmn.Element, error) {
		return &bpmn.ManualTask{}, nil
	},
}

var receiveTaskConverter = &nodeConverter{
	stencil:  receiveTaskStencil,
	toJSON:   receiveTaskToJSON,
	toDomain: receiveTaskToDomain,
}

var sendTaskConverter = &nodeConverter{
	stencil:  fixedStencil(dict.StencilTaskSend),
	toJSON:   sendTaskToJSON,
	toDomain: sendTaskToDomain,
}

var callActivityConverter = &nodeConverter{
	stencil:  fixedStencil(dict.StencilCallActivity),
	toJSON:   callActivityToJSON,
	toDomain: callActivityToDomain,
}

// fixedStencil returns a stencil func for families drawn with one stencil.
func fixedStencil(id string) func(bpmn.Element) string {
	return func(bpmn.Element) string { return id }
}

func modelInfoNode(info *ModelInfo) codec.Node {
	return codec.Node{"id": info.ID, "name": info.Name, "key": info.Key}
}

// referenceKey returns the key of a model reference object. The id is
// looked up first, the key stored in the reference is the fallback.
func referenceKey(ctx Context, kind ModelKind, ref codec.Node) string {
	if id := codec.Field(ref, "id"); len(id) > 0 {
		if key, ok := ctx.Resolver().KeyForID(kind, id); ok {
			return key
		}
	}
	return codec.Field(ref, "key")
}

// formKeyToJSON writes a form key as a form reference when the resolver
// knows it, as a plain form key otherwise.
func formKeyToJSON(ctx Context, props codec.Node, key string) {
	if len(key) == 0 {
		return
	}
	if info, ok := ctx.Resolver().InfoForKey(FormModel, key); ok {
		props[dict.PropertyFormReference] = modelInfoNode(info)
		return
	}
	props[dict.PropertyFormkey] = key
}

func parseFormKey(ctx Context, shape codec.Node) string {
	if key := codec.String(dict.PropertyFormkey, shape); len(key) > 0 {
		return key
	}
	if ref := codec.GetObject(dict.PropertyFormReference, shape); ref != nil {
		return referenceKey(ctx, FormModel, ref)
	}
	return ""
}

func userTaskToJSON(ctx Context, elem bpmn.Element, shape codec.Node) error {
	task, ok := elem.(*bpmn.UserTask)
	if !ok {
		return fmt.Errorf("%v is not UserTask", elem.GetID())
	}
	props := codec.ShapeProperties(shape)

	if assignment := assignmentToJSON(task); assignment != nil {
		props[dict.PropertyUsertaskAssignment] = assignment
	}

	codec.PutString(props, dict.PropertyUsertaskPriority, task.Priority)
	codec.PutString(props, dict.PropertySkipExpression, task.SkipExpression)
	formKeyToJSON(ctx, props, task.FormKey)
	codec.PutString(props, dict.PropertyFormFieldValidation, task.ValidateFormFields)
	codec.PutString(props, dict.PropertyUsertaskDuedate, task.DueDate)
	codec.PutString(props, dict.PropertyCalendarName, task.BusinessCalendarName)
	codec.PutString(props, dict.PropertyUsertaskCategory, task.Category)
	codec.PutString(props, dict.PropertyUsertaskTaskIDVariableName, task.TaskIDVariableName)
	formPropertiesToJSON(props, task.FormProperties)
	return nil
}

func userTaskToDomain(ctx Context, shape codec.Node) (bpmn.Element, error) {
	task := &bpmn.UserTask{}
	task.Priority = codec.String(dict.PropertyUsertaskPriority, shape)
	task.FormKey = parseFormKey(ctx, shape)
	task.ValidateFormFields = codec.String(dict.PropertyFormFieldValidation, shape)
	task.DueDate = codec.String(dict.PropertyUsertaskDuedate, shape)
	task.BusinessCalendarName = codec.String(dict.PropertyCalendarName, shape)
	task.Category = codec.String(dict.PropertyUsertaskCategory, shape)
	task.TaskIDVariableName = codec.String(dict.PropertyUsertaskTaskIDVariableName, shape)
	task.SkipExpression = codec.String(dict.PropertySkipExpression, shape)

	parseAssignment(task, shape)

	task.FormProperties = parseFormProperties(shape)
	return task, nil
}

func scriptTaskToJSON(ctx Context, elem bpmn.Element, shape codec.Node) error {
	task, ok := elem.(*bpmn.ScriptTask)
	if !ok {
		return fmt.Errorf("%v is not ScriptTask", elem.GetID())
	}
	props := codec.ShapeProperties(shape)
	codec.PutString(props, dict.PropertyScriptFormat, task.ScriptFormat)
	codec.PutString(props, dict.PropertyScriptText, task.Script)
	codec.PutString(props, dict.PropertySkipExpression, task.SkipExpression)
	props[dict.PropertyScriptAutoStoreVariables] = task.AutoStoreVariables
	return nil
}

func scriptTaskToDomain(ctx Context, shape codec.Node) (bpmn.Element, error) {
	return &bpmn.ScriptTask{
		ScriptFormat:       codec.String(dict.PropertyScriptFormat, shape),
		Script:             codec.String(dict.PropertyScriptText, shape),
		SkipExpression:     codec.String(dict.PropertySkipExpression, shape),
		AutoStoreVariables: codec.GetBool(dict.PropertyScriptAutoStoreVariables, shape, false),
	}, nil
}

func businessRuleTaskToJSON(ctx Context, elem bpmn.Element, shape codec.Node) error {
	task, ok := elem.(*bpmn.BusinessRuleTask)
	if !ok {
		return fmt.Errorf("%v is not BusinessRuleTask", elem.GetID())
	}
	props := codec.ShapeProperties(shape)
	codec.PutString(props, dict.PropertyRuletaskClass, task.ClassName)
	codec.PutList(props, dict.PropertyRuletaskVariablesInput, task.InputVariables)
	codec.PutString(props, dict.PropertyRuletaskResult, task.ResultVariableName)
	codec.PutList(props, dict.PropertyRuletaskRules, task.RuleNames)
	if task.Exclude {
		props[dict.PropertyRuletaskExclude] = dict.PropertyValueYes
	}
	return nil
}

func businessRuleTaskToDomain(ctx Context, shape codec.Node) (bpmn.Element, error) {
	return &bpmn.BusinessRuleTask{
		ClassName:          codec.String(dict.PropertyRuletaskClass, shape),
		InputVariables:     codec.GetList(dict.PropertyRuletaskVariablesInput, shape),
		ResultVariableName: codec.String(dict.PropertyRuletaskResult, shape),
		RuleNames:          codec.GetList(dict.PropertyRuletaskRules, shape),
		Exclude:            codec.GetBool(dict.PropertyRuletaskExclude, shape, false),
	}, nil
}

func receiveTaskStencil(elem bpmn.Element) string {
	if hasEventType(elem) {
		return dict.StencilTaskReceiveEvent
	}
	return dict.StencilTaskReceive
}

func receiveTaskToJSON(ctx Context, elem bpmn.Element, shape codec.Node) error {
	eventRegistryToJSON(codec.ShapeProperties(shape), elem)
	return nil
}

func receiveTaskToDomain(ctx Context, shape codec.Node) (bpmn.Element, error) {
	task := &bpmn.ReceiveTask{}
	if codec.StencilID(shape) == dict.StencilTaskReceiveEvent {
		parseReceiveEvent(shape, task)
	}
	return task, nil
}

// sendTaskToJSON writes the delegate of a send task the way a plain service
// task does.
func sendTaskToJSON(ctx Context, elem bpmn.Element, shape codec.Node) error {
	task, ok := elem.(*bpmn.SendTask)
	if !ok {
		return fmt.Errorf("%v is not SendTask", elem.GetID())
	}
	props := codec.ShapeProperties(shape)
	implementationToJSON(props, task.ImplementationType, task.Implementation)
	if len(task.FieldExtensions) > 0 {
		fieldsToJSON(props, task.FieldExtensions)
	}
	return nil
}

func sendTaskToDomain(ctx Context, shape codec.Node) (bpmn.Element, error) {
	task := &bpmn.SendTask{}
	task.ImplementationType, task.Implementation = parseImplementation(shape)
	task.FieldExtensions = parseFields(shape)
	return task, nil
}

func callActivityToJSON(ctx Context, elem bpmn.Element, shape codec.Node) error {
	call, ok := elem.(*bpmn.CallActivity)
	if !ok {
		return fmt.Errorf("%v is not CallActivity", elem.GetID())
	}
	props := codec.ShapeProperties(shape)
	codec.PutString(props, dict.PropertyCallactivityCalledelement, call.CalledElement)
	codec.PutString(props, dict.PropertyCallactivityCalledelementtype, call.CalledElementType)
	codec.PutTrue(props, dict.PropertyCallactivityInheritVariables, call.InheritVariables)
	codec.PutTrue(props, dict.PropertyCallactivitySameDeployment, call.SameDeployment)
	codec.PutString(props, dict.PropertyCallactivityProcessInstanceName, call.ProcessInstanceName)
	codec.PutString(props, dict.PropertyCallactivityBusinessKey, call.BusinessKey)
	codec.PutTrue(props, dict.PropertyCallactivityInheritBusinessKey, call.InheritBusinessKey)
	codec.PutTrue(props, dict.PropertyCallactivityUseLocalscopeForOutparameters, call.UseLocalScopeForOutParameters)
	codec.PutTrue(props, dict.PropertyCallactivityCompleteAsync, call.CompleteAsync)
	if call.FallbackToDefaultTenant != nil {
		props[dict.PropertyCallactivityFallbackToDefaultTenant] = *call.FallbackToDefaultTenant
	}
	codec.PutString(props, dict.PropertyCallactivityIDVariableName, call.ProcessInstanceIDVariableName)
	props[dict.PropertyCallactivityIn] = ioParametersToJSON(dict.ValueInParameters, call.InParameters)
	props[dict.PropertyCallactivityOut] = ioParametersToJSON(dict.ValueOutParameters, call.OutParameters)
	return nil
}

func callActivityToDomain(ctx Context, shape codec.Node) (bpmn.Element, error) {
	call := &bpmn.CallActivity{
		CalledElement:                 codec.String(dict.PropertyCallactivityCalledelement, shape),
		CalledElementType:             codec.String(dict.PropertyCallactivityCalledelementtype, shape),
		InheritVariables:              codec.GetBool(dict.PropertyCallactivityInheritVariables, shape, false),
		SameDeployment:                codec.GetBool(dict.PropertyCallactivitySameDeployment, shape, false),
		ProcessInstanceName:           codec.String(dict.PropertyCallactivityProcessInstanceName, shape),
		BusinessKey:                   codec.String(dict.PropertyCallactivityBusinessKey, shape),
		InheritBusinessKey:            codec.GetBool(dict.PropertyCallactivityInheritBusinessKey, shape, false),
		UseLocalScopeForOutParameters: codec.GetBool(dict.PropertyCallactivityUseLocalscopeForOutparameters, shape, false),
		CompleteAsync:                 codec.GetBool(dict.PropertyCallactivityCompleteAsync, shape, false),
		ProcessInstanceIDVariableName: codec.String(dict.PropertyCallactivityIDVariableName, shape),
	}
	if v := codec.String(dict.PropertyCallactivityFallbackToDefaultTenant, shape); len(v) > 0 {
		fallback := codec.Bool(v, false)
		call.FallbackToDefaultTenant = &fallback
	}
	call.InParameters = parseIOParameters(dict.PropertyCallactivityIn, dict.ValueInParameters, shape)
	call.OutParameters = parseIOParameters(dict.PropertyCallactivityOut, dict.ValueOutParameters, shape)
	return call, nil
}
