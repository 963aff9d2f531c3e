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
	"strconv"
	"strings"

	"github.com/vine-io/flow-editor/bpmn"
	"github.com/vine-io/flow-editor/codec"
	"github.com/vine-io/flow-editor/dict"
)

// fieldProperty binds an editor property to the field extension carrying
// it on a typed service task.
type fieldProperty struct {
	property string
	field    string
}

var mailFields = []fieldProperty{
	{dict.PropertyMailtaskHeaders, "headers"},
	{dict.PropertyMailtaskTo, "to"},
	{dict.PropertyMailtaskFrom, "from"},
	{dict.PropertyMailtaskSubject, "subject"},
	{dict.PropertyMailtaskCc, "cc"},
	{dict.PropertyMailtaskBcc, "bcc"},
	{dict.PropertyMailtaskText, "text"},
	{dict.PropertyMailtaskTextVar, "textVar"},
	{dict.PropertyMailtaskHTML, "html"},
	{dict.PropertyMailtaskHTMLVar, "htmlVar"},
	{dict.PropertyMailtaskCharset, "charset"},
}

var camelFields = []fieldProperty{
	{dict.PropertyCameltaskCamelcontext, "camelContext"},
}

var muleFields = []fieldProperty{
	{dict.PropertyMuletaskEndpointURL, "endpointUrl"},
	{dict.PropertyMuletaskLanguage, "language"},
	{dict.PropertyMuletaskPayloadExpression, "payloadExpression"},
	{dict.PropertyMuletaskResultVariable, "resultVariable"},
}

var httpFields = []fieldProperty{
	{dict.PropertyHttptaskReqMethod, "requestMethod"},
	{dict.PropertyHttptaskReqURL, "requestUrl"},
	{dict.PropertyHttptaskReqHeaders, "requestHeaders"},
	{dict.PropertyHttptaskReqBody, "requestBody"},
	{dict.PropertyHttptaskReqBodyEncoding, "requestBodyEncoding"},
	{dict.PropertyHttptaskReqTimeout, "requestTimeout"},
	{dict.PropertyHttptaskReqDisallowRedirects, "disallowRedirects"},
	{dict.PropertyHttptaskReqFailStatusCodes, "failStatusCodes"},
	{dict.PropertyHttptaskReqHandleStatusCodes, "handleStatusCodes"},
	{dict.PropertyHttptaskResponseVariableName, "responseVariableName"},
	{dict.PropertyHttptaskReqIgnoreException, "ignoreException"},
	{dict.PropertyHttptaskSaveRequestVariables, "saveRequestVariables"},
	{dict.PropertyHttptaskSaveResponseParameters, "saveResponseParameters"},
	{dict.PropertyHttptaskResultVariablePrefix, "resultVariablePrefix"},
	{dict.PropertyHttptaskSaveResponseTransient, "saveResponseParametersTransient"},
	{dict.PropertyHttptaskSaveResponseAsJSON, "saveResponseVariableAsJson"},
}

var shellFields = []fieldProperty{
	{dict.PropertyShelltaskCommand, "command"},
	{dict.PropertyShelltaskArg1, "arg1"},
	{dict.PropertyShelltaskArg2, "arg2"},
	{dict.PropertyShelltaskArg3, "arg3"},
	{dict.PropertyShelltaskArg4, "arg4"},
	{dict.PropertyShelltaskArg5, "arg5"},
	{dict.PropertyShelltaskWait, "wait"},
	{dict.PropertyShelltaskCleanEnv, "cleanEnv"},
	{dict.PropertyShelltaskErrorCodeVariable, "errorCodeVariable"},
	{dict.PropertyShelltaskErrorRedirect, "errorRedirect"},
	{dict.PropertyShelltaskOutputVariable, "outputVariable"},
	{dict.PropertyShelltaskDirectory, "directory"},
}

// decisionFlags are always written as "true" or "false" fields.
var decisionFlags = []fieldProperty{
	{dict.PropertyDecisiontableThrowErrorNoHits, dict.PropertyDecisiontableThrowErrorNoHitsKey},
	{dict.PropertyDecisiontableFallbackToDefaultTenant, dict.PropertyDecisiontableFallbackToDefaultTenantKey},
	{dict.PropertyDecisiontableSameDeployment, dict.PropertyDecisiontableSameDeploymentKey},
}

const httpDefaultMethod = "GET"

var (
	serviceTaskConverter        = serviceConverter(parsePlainService)
	mailTaskConverter           = serviceConverter(typedServiceParser(bpmn.ServiceTypeMail, mailFields))
	camelTaskConverter          = serviceConverter(typedServiceParser(bpmn.ServiceTypeCamel, camelFields))
	muleTaskConverter           = serviceConverter(typedServiceParser(bpmn.ServiceTypeMule, muleFields))
	shellTaskConverter          = serviceConverter(typedServiceParser(bpmn.ServiceTypeShell, shellFields))
	httpTaskConverter           = serviceConverter(parseHTTPService)
	decisionTaskConverter       = serviceConverter(parseDecisionService)
	externalWorkerTaskConverter = serviceConverter(parseExternalWorkerService)
	sendEventTaskConverter      = serviceConverter(parseSendEventService)
)

// serviceConverter builds the converter of a service task stencil. Every
// stencil writes through the same hook, the sub type of the task selecting
// the properties.
func serviceConverter(parse func(ctx Context, shape codec.Node, task *bpmn.ServiceTask)) *nodeConverter {
	return &nodeConverter{
		stencil: serviceTaskStencil,
		toJSON:  serviceTaskToJSON,
		toDomain: func(ctx Context, shape codec.Node) (bpmn.Element, error) {
			task := &bpmn.ServiceTask{}
			parse(ctx, shape, task)
			task.SkipExpression = codec.String(dict.PropertySkipExpression, shape)
			return task, nil
		},
	}
}

func serviceTaskStencil(elem bpmn.Element) string {
	task, ok := elem.(*bpmn.ServiceTask)
	if !ok {
		return dict.StencilTaskService
	}
	switch strings.ToLower(task.Type) {
	case bpmn.ServiceTypeMail:
		return dict.StencilTaskMail
	case bpmn.ServiceTypeCamel:
		return dict.StencilTaskCamel
	case bpmn.ServiceTypeMule:
		return dict.StencilTaskMule
	case bpmn.ServiceTypeHTTP:
		return dict.StencilTaskHTTP
	case bpmn.ServiceTypeShell:
		return dict.StencilTaskShell
	case bpmn.ServiceTypeDMN:
		return dict.StencilTaskDecision
	case bpmn.ServiceTypeExternalWorker:
		return dict.StencilTaskExternalWorker
	case bpmn.ServiceTypeSendEvent:
		return dict.StencilTaskSendEvent
	default:
		// unknown sub types are drawn as a plain service task
		return dict.StencilTaskService
	}
}

func serviceTaskToJSON(ctx Context, elem bpmn.Element, shape codec.Node) error {
	task, ok := elem.(*bpmn.ServiceTask)
	if !ok {
		return fmt.Errorf("%v is not ServiceTask", elem.GetID())
	}
	props := codec.ShapeProperties(shape)
	codec.PutString(props, dict.PropertySkipExpression, task.SkipExpression)

	switch strings.ToLower(task.Type) {
	case bpmn.ServiceTypeMail:
		typedFieldsToJSON(props, task, mailFields)
	case bpmn.ServiceTypeCamel:
		typedFieldsToJSON(props, task, camelFields)
	case bpmn.ServiceTypeMule:
		typedFieldsToJSON(props, task, muleFields)
	case bpmn.ServiceTypeHTTP:
		typedFieldsToJSON(props, task, httpFields)
		if task.ParallelInSameTransaction != nil {
			props[dict.PropertyHttptaskParallelInSameTransaction] = strconv.FormatBool(*task.ParallelInSameTransaction)
		}
	case bpmn.ServiceTypeShell:
		typedFieldsToJSON(props, task, shellFields)
	case bpmn.ServiceTypeDMN:
		decisionToJSON(ctx, props, task)
	case bpmn.ServiceTypeExternalWorker:
		codec.PutString(props, dict.PropertyExternalWorkerJobTopic, task.JobTopic)
	case bpmn.ServiceTypeSendEvent:
		sendEventToJSON(props, task)
	default:
		implementationToJSON(props, task.ImplementationType, task.Implementation)
		codec.PutTrue(props, dict.PropertyServicetaskTriggerable, task.Triggerable)
		codec.PutTrue(props, dict.PropertyServicetaskUseLocalScopeForResultVariable, task.UseLocalScopeForResult)
		codec.PutTrue(props, dict.PropertyServicetaskStoreTransientVariable, task.StoreResultAsTransient)
		codec.PutString(props, dict.PropertyServicetaskResultVariable, task.ResultVariableName)
		codec.PutString(props, dict.PropertyServicetaskFailedJobRetryTimeCycle, task.FailedJobRetryCycle)
		fieldsToJSON(props, task.FieldExtensions)
		exceptionsToJSON(props, task.MapExceptions)
	}
	return nil
}

// implementationToJSON writes the delegate under the property of its
// implementation type. Throwing implementations have no editor property.
func implementationToJSON(props codec.Node, typ bpmn.ImplementationType, implementation string) {
	switch typ {
	case bpmn.ImplementationClass:
		codec.PutString(props, dict.PropertyServicetaskClass, implementation)
	case bpmn.ImplementationExpression:
		codec.PutString(props, dict.PropertyServicetaskExpression, implementation)
	case bpmn.ImplementationDelegateExpression:
		codec.PutString(props, dict.PropertyServicetaskDelegateExpression, implementation)
	}
}

// parseImplementation takes the class, then the expression, then the
// delegate expression.
func parseImplementation(shape codec.Node) (bpmn.ImplementationType, string) {
	if v := codec.String(dict.PropertyServicetaskClass, shape); len(v) > 0 {
		return bpmn.ImplementationClass, v
	}
	if v := codec.String(dict.PropertyServicetaskExpression, shape); len(v) > 0 {
		return bpmn.ImplementationExpression, v
	}
	if v := codec.String(dict.PropertyServicetaskDelegateExpression, shape); len(v) > 0 {
		return bpmn.ImplementationDelegateExpression, v
	}
	return "", ""
}

func typedFieldsToJSON(props codec.Node, task *bpmn.ServiceTask, table []fieldProperty) {
	for _, row := range table {
		if field := task.Field(row.field); field != nil {
			codec.PutString(props, row.property, field.Value())
		}
	}
}

func parseTypedFields(shape codec.Node, task *bpmn.ServiceTask, table []fieldProperty) {
	for _, row := range table {
		if v := codec.String(row.property, shape); len(v) > 0 {
			task.AddField(bpmn.NewFieldExtension(row.field, v))
		}
	}
}

func typedServiceParser(typ string, table []fieldProperty) func(Context, codec.Node, *bpmn.ServiceTask) {
	return func(ctx Context, shape codec.Node, task *bpmn.ServiceTask) {
		task.Type = typ
		parseTypedFields(shape, task, table)
	}
}

func parsePlainService(ctx Context, shape codec.Node, task *bpmn.ServiceTask) {
	task.ImplementationType, task.Implementation = parseImplementation(shape)
	task.Triggerable = codec.GetBool(dict.PropertyServicetaskTriggerable, shape, false)
	task.UseLocalScopeForResult = codec.GetBool(dict.PropertyServicetaskUseLocalScopeForResultVariable, shape, false)
	task.StoreResultAsTransient = codec.GetBool(dict.PropertyServicetaskStoreTransientVariable, shape, false)
	task.ResultVariableName = codec.String(dict.PropertyServicetaskResultVariable, shape)
	task.FailedJobRetryCycle = codec.String(dict.PropertyServicetaskFailedJobRetryTimeCycle, shape)
	task.FieldExtensions = parseFields(shape)
	task.MapExceptions = parseExceptions(shape)
}

func parseHTTPService(ctx Context, shape codec.Node, task *bpmn.ServiceTask) {
	task.Type = bpmn.ServiceTypeHTTP
	if len(codec.String(dict.PropertyHttptaskReqMethod, shape)) == 0 {
		task.AddField(bpmn.NewFieldExtension("requestMethod", httpDefaultMethod))
	}
	parseTypedFields(shape, task, httpFields)
	if v := codec.String(dict.PropertyHttptaskParallelInSameTransaction, shape); len(v) > 0 {
		parallel := codec.Bool(v, false)
		task.ParallelInSameTransaction = &parallel
	}
}

func parseExternalWorkerService(ctx Context, shape codec.Node, task *bpmn.ServiceTask) {
	task.Type = bpmn.ServiceTypeExternalWorker
	task.JobTopic = codec.String(dict.PropertyExternalWorkerJobTopic, shape)
}

func parseSendEventService(ctx Context, shape codec.Node, task *bpmn.ServiceTask) {
	task.Type = bpmn.ServiceTypeSendEvent
	parseSendEvent(shape, task)
}

// decisionToJSON writes the decision reference of a dmn task. A key the
// resolver does not know is written as a bare reference, placed by the
// decisionReferenceType extension.
func decisionToJSON(ctx Context, props codec.Node, task *bpmn.ServiceTask) {
	if field := task.Field(dict.PropertyDecisiontableReferenceKey); field != nil {
		key := field.Value()
		resolver := ctx.Resolver()
		if info, ok := resolver.InfoForKey(DecisionServiceModel, key); ok {
			props[dict.PropertyDecisionserviceReference] = modelInfoNode(info)
		} else if info, ok = resolver.InfoForKey(DecisionTableModel, key); ok {
			props[dict.PropertyDecisiontableReference] = modelInfoNode(info)
		} else if len(key) > 0 {
			ref := codec.Node{"key": key}
			if task.GetExtensions().Value(dict.ExtensionDecisionReferenceType) == dict.DecisionReferenceService {
				props[dict.PropertyDecisionserviceReference] = ref
			} else {
				props[dict.PropertyDecisiontableReference] = ref
			}
		}
	}

	for _, row := range decisionFlags {
		if field := task.Field(row.field); field != nil {
			props[row.property] = codec.Bool(field.Value(), false)
		}
	}
}

// parseDecisionService reads the table reference, then the service
// reference, which wins when both name a model.
func parseDecisionService(ctx Context, shape codec.Node, task *bpmn.ServiceTask) {
	task.Type = bpmn.ServiceTypeDMN

	var key, refType string
	if ref := codec.GetObject(dict.PropertyDecisiontableReference, shape); ref != nil {
		if v := referenceKey(ctx, DecisionTableModel, ref); len(v) > 0 {
			key, refType = v, dict.DecisionReferenceTable
		}
	}
	if ref := codec.GetObject(dict.PropertyDecisionserviceReference, shape); ref != nil {
		if v := referenceKey(ctx, DecisionServiceModel, ref); len(v) > 0 {
			key, refType = v, dict.DecisionReferenceService
		}
	}
	if len(key) > 0 {
		task.AddField(&bpmn.FieldExtension{FieldName: dict.PropertyDecisiontableReferenceKey, StringValue: key})
		addExtension(task, dict.ExtensionDecisionReferenceType, refType)
	}

	for _, row := range decisionFlags {
		value := strconv.FormatBool(codec.GetBool(row.property, shape, false))
		task.AddField(&bpmn.FieldExtension{FieldName: row.field, StringValue: value})
	}
}
