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

// Property keys of the editor shape properties.
const (
	PropertyValueYes                                  = "Yes"
	PropertyValueNo                                   = "No"
	PropertyOverrideID                                = "overrideid"
	PropertyName                                      = "name"
	PropertyDocumentation                             = "documentation"
	PropertyProcessID                                 = "process_id"
	PropertyProcessVersion                            = "process_version"
	PropertyProcessAuthor                             = "process_author"
	PropertyProcessNamespace                          = "process_namespace"
	PropertyProcessHistorylevel                       = "process_historylevel"
	PropertyIsExecutable                              = "isexecutable"
	PropertyIsEagerExecutionFetching                  = "iseagerexecutionfetch"
	PropertyProcessPotentialstarteruser               = "process_potentialstarteruser"
	PropertyProcessPotentialstartergroup              = "process_potentialstartergroup"
	PropertyTimerDuration                             = "timerdurationdefinition"
	PropertyTimerDate                                 = "timerdatedefinition"
	PropertyTimerCycle                                = "timercycledefinition"
	PropertyTimerCycleEndDate                         = "timerenddatedefinition"
	PropertyCalendarName                              = "calendarname"
	PropertyMessages                                  = "messages"
	PropertyMessageID                                 = "message_id"
	PropertyMessageName                               = "message_name"
	PropertyMessageItemRef                            = "message_item_ref"
	PropertyMessageref                                = "messageref"
	PropertyMessageexpression                         = "messageexpression"
	PropertySignalref                                 = "signalref"
	PropertySignalexpression                          = "signalexpression"
	PropertyVariableListenerVariableName              = "variablelistenervariablename"
	PropertyVariableListenerVariableChangeType        = "variablelistenervariablechangetype"
	PropertyConditionalEventCondition                 = "conditionaleventcondition"
	PropertyErrorref                                  = "errorref"
	PropertyErrorVariableName                         = "errorvariablename"
	PropertyErrorVariableTransient                    = "errorvariabletransient"
	PropertyErrorVariableLocalScope                   = "errorvariablelocalscope"
	PropertyEscalationDefinitions                     = "escalationdefinitions"
	PropertyEscalationDefinitionID                    = "id"
	PropertyEscalationDefinitionName                  = "name"
	PropertyEscalationref                             = "escalationref"
	PropertyInterrupting                              = "interrupting"
	PropertyCancelActivity                            = "cancelactivity"
	PropertyNoneStarteventInitiator                   = "initiator"
	PropertyAsynchronous                              = "asynchronousdefinition"
	PropertyExclusive                                 = "exclusivedefinition"
	PropertyMultiinstanceType                         = "multiinstance_type"
	PropertyMultiinstanceCardinality                  = "multiinstance_cardinality"
	PropertyMultiinstanceCollection                   = "multiinstance_collection"
	PropertyMultiinstanceVariable                     = "multiinstance_variable"
	PropertyMultiinstanceCondition                    = "multiinstance_condition"
	PropertyMultiinstanceIndexVariable                = "multiinstance_index_variable"
	PropertyMultiinstanceVariableAggregations         = "multiinstance_variableaggregations"
	PropertyTaskListeners                             = "tasklisteners"
	PropertyExecutionListeners                        = "executionlisteners"
	PropertyListenerEvent                             = "event"
	PropertyListenerClassName                         = "className"
	PropertyListenerExpression                        = "expression"
	PropertyListenerDelegateExpression                = "delegateExpression"
	PropertyListenerFields                            = "fields"
	PropertyEventListeners                            = "eventlisteners"
	PropertyEventlistenerValue                        = "eventListeners"
	PropertyEventlistenerEvents                       = "events"
	PropertyEventlistenerEvent                        = "event"
	PropertyEventlistenerImplementation               = "implementation"
	PropertyEventlistenerRethrowEvent                 = "rethrowEvent"
	PropertyEventlistenerRethrowType                  = "rethrowType"
	PropertyEventlistenerClassName                    = "className"
	PropertyEventlistenerDelegateExpression           = "delegateExpression"
	PropertyEventlistenerEntityType                   = "entityType"
	PropertyEventlistenerErrorCode                    = "errorcode"
	PropertyEventlistenerSignalName                   = "signalname"
	PropertyEventlistenerMessageName                  = "messagename"
	PropertyFieldName                                 = "name"
	PropertyFieldStringValue                          = "stringValue"
	PropertyFieldExpression                           = "expression"
	PropertyFieldString                               = "string"
	PropertyFormkey                                   = "formkeydefinition"
	PropertyFormFieldValidation                       = "formfieldvalidation"
	PropertyUsertaskAssignment                        = "usertaskassignment"
	PropertyUsertaskPriority                          = "prioritydefinition"
	PropertyUsertaskDuedate                           = "duedatedefinition"
	PropertyUsertaskAssignee                          = "assignee"
	PropertyUsertaskOwner                             = "owner"
	PropertyUsertaskCandidateUsers                    = "candidateUsers"
	PropertyUsertaskCandidateGroups                   = "candidateGroups"
	PropertyUsertaskCategory                          = "categorydefinition"
	PropertyUsertaskTaskIDVariableName                = "taskidvariablename"
	PropertyServicetaskClass                          = "servicetaskclass"
	PropertyServicetaskExpression                     = "servicetaskexpression"
	PropertyServicetaskDelegateExpression             = "servicetaskdelegateexpression"
	PropertyServicetaskResultVariable                 = "servicetaskresultvariable"
	PropertyServicetaskExceptions                     = "servicetaskexceptions"
	PropertyServicetaskExceptionClass                 = "class"
	PropertyServicetaskExceptionCode                  = "code"
	PropertyServicetaskExceptionChildren              = "children"
	PropertyServicetaskFields                         = "servicetaskfields"
	PropertyServicetaskFieldName                      = "name"
	PropertyServicetaskFieldStringValue               = "stringValue"
	PropertyServicetaskFieldString                    = "string"
	PropertyServicetaskFieldExpression                = "expression"
	PropertyServicetaskTriggerable                    = "servicetasktriggerable"
	PropertyServicetaskUseLocalScopeForResultVariable = "servicetaskuselocalscopeforresultvariable"
	PropertyServicetaskFailedJobRetryTimeCycle        = "servicetaskfailedjobretrytimecycle"
	PropertyServicetaskStoreTransientVariable         = "servicetaskstoreresultvariabletransient"
	PropertyFormProperties                            = "formproperties"
	PropertyFormID                                    = "id"
	PropertyFormName                                  = "name"
	PropertyFormType                                  = "type"
	PropertyFormExpression                            = "expression"
	PropertyFormVariable                              = "variable"
	PropertyFormDefault                               = "default"
	PropertyFormDatePattern                           = "datePattern"
	PropertyFormRequired                              = "required"
	PropertyFormReadable                              = "readable"
	PropertyFormWritable                              = "writable"
	PropertyFormEnumValues                            = "enumValues"
	PropertyFormEnumValuesName                        = "name"
	PropertyFormEnumValuesID                          = "id"
	PropertyDataProperties                            = "dataproperties"
	PropertyDataID                                    = "dataproperty_id"
	PropertyDataName                                  = "dataproperty_name"
	PropertyDataType                                  = "dataproperty_type"
	PropertyDataValue                                 = "dataproperty_value"
	PropertyScriptFormat                              = "scriptformat"
	PropertyScriptText                                = "scripttext"
	PropertyScriptAutoStoreVariables                  = "scriptautostorevariables"
	PropertyRuletaskClass                             = "ruletask_class"
	PropertyRuletaskVariablesInput                    = "ruletask_variables_input"
	PropertyRuletaskResult                            = "ruletask_result"
	PropertyRuletaskRules                             = "ruletask_rules"
	PropertyRuletaskExclude                           = "ruletask_exclude"
	PropertyMailtaskHeaders                           = "mailtaskheaders"
	PropertyMailtaskTo                                = "mailtaskto"
	PropertyMailtaskFrom                              = "mailtaskfrom"
	PropertyMailtaskSubject                           = "mailtasksubject"
	PropertyMailtaskCc                                = "mailtaskcc"
	PropertyMailtaskBcc                               = "mailtaskbcc"
	PropertyMailtaskText                              = "mailtasktext"
	PropertyMailtaskHTML                              = "mailtaskhtml"
	PropertyMailtaskHTMLVar                           = "mailtaskhtmlvar"
	PropertyMailtaskTextVar                           = "mailtasktextvar"
	PropertyMailtaskCharset                           = "mailtaskcharset"
	PropertyCallactivityCalledelement                 = "callactivitycalledelement"
	PropertyCallactivityCalledelementtype             = "callactivitycalledelementtype"
	PropertyCallactivityIn                            = "callactivityinparameters"
	PropertyCallactivityOut                           = "callactivityoutparameters"
	PropertyCallactivityFallbackToDefaultTenant       = "callactivityfallbacktodefaulttenant"
	PropertyCallactivityIDVariableName                = "callactivityidvariablename"
	PropertyCallactivityInheritVariables              = "callactivityinheritvariables"
	PropertyCallactivitySameDeployment                = "callactivitysamedeployment"
	PropertyCallactivityProcessInstanceName           = "callactivityprocessinstancename"
	PropertyCallactivityBusinessKey                   = "callactivitybusinesskey"
	PropertyCallactivityInheritBusinessKey            = "callactivityinheritbusinesskey"
	PropertyCallactivityUseLocalscopeForOutparameters = "callactivityuselocalscopeforoutparameters"
	PropertyCallactivityCompleteAsync                 = "callactivitycompleteasync"
	PropertyIoparameterSource                         = "source"
	PropertyIoparameterSourceExpression               = "sourceExpression"
	PropertyIoparameterTarget                         = "target"
	PropertyCameltaskCamelcontext                     = "cameltaskcamelcontext"
	PropertyMuletaskEndpointURL                       = "muletaskendpointurl"
	PropertyMuletaskLanguage                          = "muletasklanguage"
	PropertyMuletaskPayloadExpression                 = "muletaskpayloadexpression"
	PropertyMuletaskResultVariable                    = "muletaskresultvariable"
	PropertySequenceflowDefault                       = "defaultflow"
	PropertySequenceflowCondition                     = "conditionsequenceflow"
	PropertySequenceflowOrder                         = "sequencefloworder"
	PropertyFormReference                             = "formreference"
	PropertyMessageDefinitions                        = "messagedefinitions"
	PropertyMessageDefinitionID                       = "id"
	PropertyMessageDefinitionName                     = "name"
	PropertyMessageDefinitionItemRef                  = "message_item_ref"
	PropertySignalDefinitions                         = "signaldefinitions"
	PropertySignalDefinitionID                        = "id"
	PropertySignalDefinitionName                      = "name"
	PropertySignalDefinitionScope                     = "scope"
	PropertyTerminateAll                              = "terminateall"
	PropertyTerminateMultiInstance                    = "terminateMultiInstance"
	PropertyDecisiontableReference                    = "decisiontaskdecisiontablereference"
	PropertyDecisionserviceReference                  = "decisiontaskdecisionservicereference"
	PropertyDecisiontableReferenceID                  = "decisiontablereferenceid"
	PropertyDecisiontableReferenceName                = "decisiontablereferencename"
	PropertyDecisiontableReferenceKey                 = "decisionTableReferenceKey"
	PropertyDecisionserviceReferenceKey               = "decisionServiceReferenceKey"
	PropertyDecisiontableThrowErrorNoHits             = "decisiontaskthrowerroronnohits"
	PropertyDecisiontableThrowErrorNoHitsKey          = "decisionTaskThrowErrorOnNoHits"
	PropertyDecisiontableFallbackToDefaultTenant      = "decisiontaskfallbacktodefaulttenant"
	PropertyDecisiontableFallbackToDefaultTenantKey   = "fallbackToDefaultTenant"
	PropertyDecisiontableSameDeployment               = "decisiontasksamedeployment"
	PropertyDecisiontableSameDeploymentKey            = "sameDeployment"
	PropertyDecisionReferenceType                     = "decisionReferenceType"
	PropertyHttptaskReqMethod                         = "httptaskrequestmethod"
	PropertyHttptaskReqURL                            = "httptaskrequesturl"
	PropertyHttptaskReqHeaders                        = "httptaskrequestheaders"
	PropertyHttptaskReqBody                           = "httptaskrequestbody"
	PropertyHttptaskReqBodyEncoding                   = "httptaskrequestbodyencoding"
	PropertyHttptaskReqTimeout                        = "httptaskrequesttimeout"
	PropertyHttptaskReqDisallowRedirects              = "httptaskdisallowredirects"
	PropertyHttptaskReqFailStatusCodes                = "httptaskfailstatuscodes"
	PropertyHttptaskReqHandleStatusCodes              = "httptaskhandlestatuscodes"
	PropertyHttptaskReqIgnoreException                = "httptaskignoreexception"
	PropertyHttptaskResponseVariableName              = "httptaskresponsevariablename"
	PropertyHttptaskSaveRequestVariables              = "httptasksaverequestvariables"
	PropertyHttptaskSaveResponseParameters            = "httptasksaveresponseparameters"
	PropertyHttptaskResultVariablePrefix              = "httptaskresultvariableprefix"
	PropertyHttptaskSaveResponseTransient             = "httptasksaveresponseparameterstransient"
	PropertyHttptaskSaveResponseAsJSON                = "httptasksaveresponseasjson"
	PropertyHttptaskParallelInSameTransaction         = "httptaskparallelinsametransaction"
	PropertySkipExpression                            = "skipexpression"
	PropertyShelltaskCommand                          = "shellcommand"
	PropertyShelltaskArg1                             = "shellarg1"
	PropertyShelltaskArg2                             = "shellarg2"
	PropertyShelltaskArg3                             = "shellarg3"
	PropertyShelltaskArg4                             = "shellarg4"
	PropertyShelltaskArg5                             = "shellarg5"
	PropertyShelltaskWait                             = "shellwait"
	PropertyShelltaskOutputVariable                   = "shelloutputvariable"
	PropertyShelltaskErrorCodeVariable                = "shellerrorcodevariable"
	PropertyShelltaskErrorRedirect                    = "shellerrorredirect"
	PropertyShelltaskCleanEnv                         = "shellcleanenv"
	PropertyShelltaskDirectory                        = "shelldirectory"
	PropertyExternalWorkerJobTopic                    = "topic"
	PropertyEventRegistryEventKey                     = "eventkey"
	PropertyEventRegistryEventName                    = "eventname"
	PropertyEventRegistryInParameters                 = "eventinparameters"
	PropertyEventRegistryOutParameters                = "eventoutparameters"
	PropertyEventRegistryCorrelationParameters        = "eventcorrelationparameters"
	PropertyEventRegistryChannelKey                   = "channelkey"
	PropertyEventRegistryChannelName                  = "channelname"
	PropertyEventRegistryChannelType                  = "channeltype"
	PropertyEventRegistryChannelDestination           = "channeldestination"
	PropertyEventRegistryKeyDetectionFixedValue       = "keydetectionfixedvalue"
	PropertyEventRegistryKeyDetectionJSONField        = "keydetectionjsonfield"
	PropertyEventRegistryKeyDetectionJSONPointer      = "keydetectionjsonpointer"
	PropertyEventRegistryTriggerEventKey              = "triggereventkey"
	PropertyEventRegistryTriggerEventName             = "triggereventname"
	PropertyEventRegistryTriggerChannelKey            = "triggerchannelkey"
	PropertyEventRegistryTriggerChannelName           = "triggerchannelname"
	PropertyEventRegistryTriggerChannelType           = "triggerchanneltype"
	PropertyEventRegistryTriggerChannelDestination    = "triggerchanneldestination"
	PropertyEventRegistryParameterEventname           = "eventName"
	PropertyEventRegistryParameterEventtype           = "eventType"
	PropertyEventRegistryParameterVariablename        = "variableName"
	PropertyEventRegistryCorrelationname              = "name"
	PropertyEventRegistryCorrelationtype              = "type"
	PropertyEventRegistryCorrelationvalue             = "value"
	PropertyForCompensation                           = "isforcompensation"
	PropertyCompensationActivityRef                   = "compensationactivityref"
	PropertyText                                      = "text"
	PropertyActivityType                              = "activitytype"
	PropertyIsTransaction                             = "istransaction"
	PropertyCompletionCondition                       = "completioncondition"
	PropertyOrdering                                  = "ordering"
	PropertyCancelRemainingInstances                  = "cancelremaininginstances"
	PropertyDataStoreRef                              = "datastoreref"
	PropertyDataStoreName                             = "datastorename"
	PropertyDataState                                 = "datastate"
	PropertyItemSubjectRef                            = "itemsubjectref"
)

// Inner keys of object valued properties.
const (
	ValueExecutionListeners     = "executionListeners"
	ValueTaskListeners          = "taskListeners"
	ValueFormProperties         = "formProperties"
	ValueFields                 = "fields"
	ValueExceptions             = "exceptions"
	ValueInParameters           = "inParameters"
	ValueOutParameters          = "outParameters"
	ValueCorrelationParameters  = "correlationParameters"
	ValueAggregations           = "aggregations"
	ValueAggregationDefinitions = "definitions"
	ValueSequenceFlowOrder      = "sequenceFlowOrder"
	ValueAssignment             = "assignment"
)
