package bpmn

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	BpmnNamespace   = "http://www.omg.org/spec/BPMN/20100524/MODEL"
	BpmnDINamespace = "http://www.omg.org/spec/BPMN/20100524/DI"
	DCNamespace     = "http://www.omg.org/spec/DD/20100524/DC"
	DINamespace     = "http://www.omg.org/spec/DD/20100524/DI"
	XSINamespace    = "http://www.w3.org/2001/XMLSchema-instance"
)

var serializers = map[Shape]Serializer{
	StartEventShape:       &eventSerde{tag: "startEvent"},
	EndEventShape:         &eventSerde{tag: "endEvent"},
	BoundaryEventShape:    &eventSerde{tag: "boundaryEvent"},
	CatchEventShape:       &eventSerde{tag: "intermediateCatchEvent"},
	ThrowEventShape:       &eventSerde{tag: "intermediateThrowEvent"},
	UserTaskShape:         &taskSerde{tag: "userTask"},
	ServiceTaskShape:      &taskSerde{tag: "serviceTask"},
	ScriptTaskShape:       &taskSerde{tag: "scriptTask"},
	BusinessRuleTaskShape: &taskSerde{tag: "businessRuleTask"},
	ManualTaskShape:       &taskSerde{tag: "manualTask"},
	ReceiveTaskShape:      &taskSerde{tag: "receiveTask"},
	SendTaskShape:         &taskSerde{tag: "sendTask"},
	CallActivityShape:     &taskSerde{tag: "callActivity"},
	ExclusiveGatewayShape: &gatewaySerde{tag: "exclusiveGateway"},
	ParallelGatewayShape:  &gatewaySerde{tag: "parallelGateway"},
	InclusiveGatewayShape: &gatewaySerde{tag: "inclusiveGateway"},
	EventGatewayShape:     &gatewaySerde{tag: "eventBasedGateway"},
	SubProcessShape:       &subProcessSerde{},
	EventSubProcessShape:  &subProcessSerde{},
	AdhocSubProcessShape:  &subProcessSerde{},
	FlowShape:             &sequenceFlowSerde{},
	TextAnnotationShape:   &textAnnotationSerde{},
	AssociationShape:      &associationSerde{},
	DataStoreShape:        &dataStoreReferenceSerde{},
	ProcessShape:          &processSerde{},
}

type Serializer interface {
	Serialize(element Element, start *etree.Element) error
}

// Serialize writes element into start using the serializer of its shape.
func Serialize(element Element, start *etree.Element) error {
	serializer, ok := serializers[element.GetShape()]
	if !ok {
		return fmt.Errorf("%s not support to serialize", element.GetShape())
	}

	return serializer.Serialize(element, start)
}

// WriteTo writes the model as BPMN 2.0 XML.
func (m *Model) WriteTo(w io.Writer) (int64, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("")
	if err := new(definitionSerde).Serialize(m, root); err != nil {
		return 0, err
	}
	doc.Indent(2)

	return doc.WriteTo(w)
}

// WriteToBytes returns the model as BPMN 2.0 XML.
func (m *Model) WriteToBytes() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if _, err := m.WriteTo(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type definitionSerde struct{}

func (s *definitionSerde) Serialize(m *Model, start *etree.Element) error {
	start.Space = "bpmn"
	start.Tag = "definitions"
	start.CreateAttr("xmlns:bpmn", BpmnNamespace)
	start.CreateAttr("xmlns:bpmndi", BpmnDINamespace)
	start.CreateAttr("xmlns:dc", DCNamespace)
	start.CreateAttr("xmlns:di", DINamespace)
	start.CreateAttr("xmlns:xsi", XSINamespace)
	start.CreateAttr("xmlns:"+FlowableNamespacePrefix, FlowableNamespace)

	prefixes := make([]string, 0, len(m.Namespaces))
	for prefix := range m.Namespaces {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)
	for _, prefix := range prefixes {
		if start.SelectAttr("xmlns:"+prefix) == nil {
			start.CreateAttr("xmlns:"+prefix, m.Namespaces[prefix])
		}
	}

	namespace := m.TargetNamespace
	if namespace == "" {
		namespace = DefaultTargetNamespace
	}
	start.CreateAttr("targetNamespace", namespace)
	start.CreateAttr("id", "Definitions_"+uuid.New().String())

	for _, signal := range m.Signals {
		child := start.CreateElement("bpmn:signal")
		child.CreateAttr("id", signal.Id)
		setAttr(child, "name", signal.Name)
		setAttr(child, "flowable:scope", signal.Scope)
	}
	for _, message := range m.Messages {
		child := start.CreateElement("bpmn:message")
		child.CreateAttr("id", message.Id)
		setAttr(child, "name", message.Name)
		setAttr(child, "itemRef", message.ItemRef)
	}
	for _, escalation := range m.Escalations {
		child := start.CreateElement("bpmn:escalation")
		child.CreateAttr("id", escalation.Id)
		setAttr(child, "name", escalation.Name)
		setAttr(child, "escalationCode", escalation.Code)
	}
	ids := make([]string, 0, len(m.DataStores))
	for id := range m.DataStores {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		store := m.DataStores[id]
		child := start.CreateElement("bpmn:dataStore")
		child.CreateAttr("id", store.Id)
		setAttr(child, "name", store.Name)
		setAttr(child, "itemSubjectRef", store.ItemSubjectRef)
	}

	if len(m.Pools) > 0 {
		collaboration := start.CreateElement("bpmn:collaboration")
		collaboration.CreateAttr("id", "Collaboration")
		for _, pool := range m.Pools {
			child := collaboration.CreateElement("bpmn:participant")
			child.CreateAttr("id", pool.Id)
			setAttr(child, "name", pool.Name)
			setAttr(child, "processRef", pool.ProcessRef)
		}
		for _, flow := range m.MessageFlows() {
			child := collaboration.CreateElement("bpmn:messageFlow")
			child.CreateAttr("id", flow.Id)
			setAttr(child, "name", flow.Name)
			setAttr(child, "sourceRef", flow.SourceRef)
			setAttr(child, "targetRef", flow.TargetRef)
			setAttr(child, "messageRef", flow.MessageRef)
		}
	}

	for _, process := range m.Processes {
		child := start.CreateElement("")
		if err := Serialize(process, child); err != nil {
			return err
		}
	}

	diagram := start.CreateElement("")
	return new(diagramSerde).Serialize(m, diagram)
}

type elementSerde struct{}

func (s *elementSerde) serialize(element Element, start *etree.Element) error {
	if element.GetID() != "" {
		start.CreateAttr("id", element.GetID())
	}
	if element.GetName() != "" {
		start.CreateAttr("name", element.GetName())
	}
	if element.GetDocument() != "" {
		child := start.CreateElement("bpmn:documentation")
		child.SetText(element.GetDocument())
	}

	var listeners []*Listener
	if v, ok := element.(FlowElement); ok {
		listeners = v.GetExecutionListeners()
	}
	if element.GetExtensions().Len() == 0 && len(listeners) == 0 {
		return nil
	}

	child := start.CreateElement("")
	return new(extensionElementSerde).serialize(element.GetExtensions().All(), listeners, child)
}

type extensionElementSerde struct{}

func (s *extensionElementSerde) serialize(elems []*ExtensionElement, listeners []*Listener, start *etree.Element) error {
	start.Space = "bpmn"
	start.Tag = "extensionElements"

	for _, listener := range listeners {
		writeListener(start, "flowable:executionListener", listener)
	}
	for _, elem := range elems {
		writeExtension(start, elem)
	}

	return nil
}

func writeExtension(parent *etree.Element, elem *ExtensionElement) {
	tag := elem.Name
	if elem.Prefix != "" {
		tag = elem.Prefix + ":" + elem.Name
	}
	child := parent.CreateElement(tag)
	keys := make([]string, 0, len(elem.Attributes))
	for key := range elem.Attributes {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		child.CreateAttr(key, elem.Attributes[key])
	}
	if elem.Text != "" {
		child.CreateCData(elem.Text)
	}
	for _, item := range elem.Children {
		writeExtension(child, item)
	}
}

func writeListener(parent *etree.Element, tag string, listener *Listener) {
	child := parent.CreateElement(tag)
	setAttr(child, "event", listener.Event)
	setAttr(child, string(listener.ImplementationType), listener.Implementation)
	writeFields(child, listener.FieldExtensions)
}

func writeFields(parent *etree.Element, fields []*FieldExtension) {
	for _, field := range fields {
		child := parent.CreateElement("flowable:field")
		child.CreateAttr("name", field.FieldName)
		if field.Expression != "" {
			child.CreateElement("flowable:expression").CreateCData(field.Expression)
		} else {
			child.CreateElement("flowable:string").CreateCData(field.StringValue)
		}
	}
}

func writeEventDefinitions(parent *etree.Element, definitions []EventDefinition) {
	for _, definition := range definitions {
		switch d := definition.(type) {
		case *TimerEventDefinition:
			child := parent.CreateElement("bpmn:timerEventDefinition")
			setAttr(child, "flowable:businessCalendarName", d.CalendarName)
			setAttr(child, "flowable:endDate", d.EndDate)
			switch {
			case d.TimeDate != "":
				child.CreateElement("bpmn:timeDate").SetText(d.TimeDate)
			case d.TimeCycle != "":
				child.CreateElement("bpmn:timeCycle").SetText(d.TimeCycle)
			case d.TimeDuration != "":
				child.CreateElement("bpmn:timeDuration").SetText(d.TimeDuration)
			}
		case *MessageEventDefinition:
			child := parent.CreateElement("bpmn:messageEventDefinition")
			setAttr(child, "messageRef", d.MessageRef)
			setAttr(child, "flowable:messageExpression", d.MessageExpression)
		case *SignalEventDefinition:
			child := parent.CreateElement("bpmn:signalEventDefinition")
			setAttr(child, "signalRef", d.SignalRef)
			setAttr(child, "flowable:signalExpression", d.SignalExpression)
			if d.Async {
				child.CreateAttr("flowable:async", "true")
			}
		case *ConditionalEventDefinition:
			child := parent.CreateElement("bpmn:conditionalEventDefinition")
			child.CreateElement("bpmn:condition").SetText(d.ConditionExpression)
		case *ErrorEventDefinition:
			child := parent.CreateElement("bpmn:errorEventDefinition")
			setAttr(child, "errorRef", d.ErrorCode)
			setAttr(child, "flowable:errorVariableName", d.VariableName)
			if d.LocalScope != nil {
				child.CreateAttr("flowable:errorVariableLocalScope", fmt.Sprintf("%t", *d.LocalScope))
			}
			if d.Transient != nil {
				child.CreateAttr("flowable:errorVariableTransient", fmt.Sprintf("%t", *d.Transient))
			}
		case *EscalationEventDefinition:
			child := parent.CreateElement("bpmn:escalationEventDefinition")
			setAttr(child, "escalationRef", d.EscalationCode)
		case *CancelEventDefinition:
			parent.CreateElement("bpmn:cancelEventDefinition")
		case *CompensateEventDefinition:
			child := parent.CreateElement("bpmn:compensateEventDefinition")
			setAttr(child, "activityRef", d.ActivityRef)
			if d.WaitForCompletion {
				child.CreateAttr("waitForCompletion", "true")
			}
		case *TerminateEventDefinition:
			child := parent.CreateElement("bpmn:terminateEventDefinition")
			if d.TerminateAll {
				child.CreateAttr("flowable:terminateAll", "true")
			}
			if d.TerminateMultiInstance {
				child.CreateAttr("flowable:terminateMultiInstance", "true")
			}
		case *VariableListenerEventDefinition:
			ext := parent.SelectElement("bpmn:extensionElements")
			if ext == nil {
				ext = parent.CreateElement("bpmn:extensionElements")
			}
			child := ext.CreateElement("flowable:variableListenerEventDefinition")
			setAttr(child, "variableName", d.VariableName)
			setAttr(child, "variableChangeType", d.ChangeType)
		}
	}
}

func writeMultiInstance(parent *etree.Element, mi *MultiInstance) {
	if mi == nil {
		return
	}
	child := parent.CreateElement("bpmn:multiInstanceLoopCharacteristics")
	child.CreateAttr("isSequential", fmt.Sprintf("%t", mi.Sequential))
	setAttr(child, "flowable:collection", mi.InputDataItem)
	setAttr(child, "flowable:elementVariable", mi.ElementVariable)
	setAttr(child, "flowable:elementIndexVariable", mi.ElementIndexVariable)
	if mi.LoopCardinality != "" {
		child.CreateElement("bpmn:loopCardinality").SetText(mi.LoopCardinality)
	}
	if mi.CompletionCondition != "" {
		child.CreateElement("bpmn:completionCondition").SetText(mi.CompletionCondition)
	}
	if len(mi.Aggregations) == 0 {
		return
	}
	ext := child.CreateElement("bpmn:extensionElements")
	for _, aggregation := range mi.Aggregations {
		elem := ext.CreateElement("flowable:variableAggregation")
		setAttr(elem, "target", aggregation.Target)
		setAttr(elem, "targetExpression", aggregation.TargetExpression)
		setAttr(elem, string(aggregation.ImplementationType), aggregation.Implementation)
		if aggregation.StoreAsTransient {
			elem.CreateAttr("storeAsTransientVariable", "true")
		}
		if aggregation.CreateOverview {
			elem.CreateAttr("createOverviewVariable", "true")
		}
		for _, definition := range aggregation.Definitions {
			variable := elem.CreateElement("variable")
			setAttr(variable, "source", definition.Source)
			setAttr(variable, "sourceExpression", definition.SourceExpression)
			setAttr(variable, "target", definition.Target)
			setAttr(variable, "targetExpression", definition.TargetExpression)
		}
	}
}

func writeFormProperties(parent *etree.Element, properties []*FormProperty) {
	for _, property := range properties {
		child := parent.CreateElement("flowable:formProperty")
		child.CreateAttr("id", property.Id)
		setAttr(child, "name", property.Name)
		setAttr(child, "type", property.Type)
		setAttr(child, "expression", property.Expression)
		setAttr(child, "variable", property.Variable)
		setAttr(child, "default", property.DefaultExpression)
		setAttr(child, "datePattern", property.DatePattern)
		if !property.Readable {
			child.CreateAttr("readable", "false")
		}
		if !property.Writeable {
			child.CreateAttr("writable", "false")
		}
		if property.Required {
			child.CreateAttr("required", "true")
		}
		for _, value := range property.FormValues {
			item := child.CreateElement("flowable:value")
			item.CreateAttr("id", value.Id)
			setAttr(item, "name", value.Name)
		}
	}
}

func writeIOParameters(parent *etree.Element, tag string, parameters []*IOParameter) {
	for _, parameter := range parameters {
		child := parent.CreateElement(tag)
		setAttr(child, "source", parameter.Source)
		setAttr(child, "sourceExpression", parameter.SourceExpression)
		setAttr(child, "target", parameter.Target)
		setAttr(child, "targetExpression", parameter.TargetExpression)
		keys := make([]string, 0, len(parameter.Attributes))
		for key := range parameter.Attributes {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			child.CreateAttr(key, parameter.Attributes[key])
		}
	}
}

// extensionsOf returns the extensionElements child, creating it when absent.
func extensionsOf(start *etree.Element) *etree.Element {
	if ext := start.SelectElement("bpmn:extensionElements"); ext != nil {
		return ext
	}
	return start.CreateElement("bpmn:extensionElements")
}

func writeNodeFlags(start *etree.Element, node FlowNode) {
	meta := node.Node()
	if meta.Asynchronous {
		start.CreateAttr("flowable:async", "true")
	}
	if meta.NotExclusive {
		start.CreateAttr("flowable:exclusive", "false")
	}
}

func writeActivity(start *etree.Element, activity Activity) {
	meta := activity.Activity()
	setAttr(start, "default", meta.DefaultFlow)
	if meta.ForCompensation {
		start.CreateAttr("isForCompensation", "true")
	}
	if meta.FailedJobRetryCycle != "" {
		extensionsOf(start).CreateElement("flowable:failedJobRetryTimeCycle").SetText(meta.FailedJobRetryCycle)
	}
	for _, association := range meta.DataInputAssociations {
		child := start.CreateElement("bpmn:dataInputAssociation")
		setAttr(child, "id", association.Id)
		child.CreateElement("bpmn:sourceRef").SetText(association.SourceRef)
	}
	for _, association := range meta.DataOutputAssociations {
		child := start.CreateElement("bpmn:dataOutputAssociation")
		setAttr(child, "id", association.Id)
		child.CreateElement("bpmn:targetRef").SetText(association.TargetRef)
	}
	writeMultiInstance(start, meta.MultiInstance)
}

type eventSerde struct {
	inner elementSerde
	tag   string
}

func (s *eventSerde) Serialize(element Element, start *etree.Element) error {
	event, ok := element.(Event)
	if !ok {
		return fmt.Errorf("%v is not Event", element)
	}
	start.Space = "bpmn"
	start.Tag = s.tag
	if err := s.inner.serialize(event, start); err != nil {
		return err
	}
	writeNodeFlags(start, event)

	switch e := event.(type) {
	case *StartEvent:
		setAttr(start, "flowable:initiator", e.Initiator)
		setAttr(start, "flowable:formKey", e.FormKey)
		if !e.Interrupting {
			start.CreateAttr("isInterrupting", "false")
		}
		if len(e.FormProperties) > 0 {
			writeFormProperties(extensionsOf(start), e.FormProperties)
		}
	case *BoundaryEvent:
		setAttr(start, "attachedToRef", e.AttachedToRefID)
		if !e.CancelActivity {
			start.CreateAttr("cancelActivity", "false")
		}
	}

	writeEventDefinitions(start, event.GetEventDefinitions())
	return nil
}

type taskSerde struct {
	inner elementSerde
	tag   string
}

func (s *taskSerde) Serialize(element Element, start *etree.Element) error {
	activity, ok := element.(Activity)
	if !ok {
		return fmt.Errorf("%v is not Activity", element)
	}
	start.Space = "bpmn"
	start.Tag = s.tag
	if err := s.inner.serialize(activity, start); err != nil {
		return err
	}
	writeNodeFlags(start, activity)

	switch t := activity.(type) {
	case *UserTask:
		setAttr(start, "flowable:assignee", t.Assignee)
		setAttr(start, "flowable:owner", t.Owner)
		setAttr(start, "flowable:candidateUsers", strings.Join(t.CandidateUsers, ","))
		setAttr(start, "flowable:candidateGroups", strings.Join(t.CandidateGroups, ","))
		setAttr(start, "flowable:priority", t.Priority)
		setAttr(start, "flowable:formKey", t.FormKey)
		setAttr(start, "flowable:formFieldValidation", t.ValidateFormFields)
		setAttr(start, "flowable:dueDate", t.DueDate)
		setAttr(start, "flowable:businessCalendarName", t.BusinessCalendarName)
		setAttr(start, "flowable:category", t.Category)
		setAttr(start, "flowable:taskIdVariableName", t.TaskIDVariableName)
		setAttr(start, "flowable:skipExpression", t.SkipExpression)
		if len(t.TaskListeners) > 0 || len(t.FormProperties) > 0 {
			ext := extensionsOf(start)
			for _, listener := range t.TaskListeners {
				writeListener(ext, "flowable:taskListener", listener)
			}
			writeFormProperties(ext, t.FormProperties)
		}
	case *ServiceTask:
		setAttr(start, "flowable:type", t.Type)
		setAttr(start, "flowable:"+string(t.ImplementationType), t.Implementation)
		setAttr(start, "flowable:resultVariableName", t.ResultVariableName)
		setAttr(start, "flowable:skipExpression", t.SkipExpression)
		setAttr(start, "flowable:topic", t.JobTopic)
		if t.Triggerable {
			start.CreateAttr("flowable:triggerable", "true")
		}
		if t.UseLocalScopeForResult {
			start.CreateAttr("flowable:useLocalScopeForResultVariable", "true")
		}
		if t.StoreResultAsTransient {
			start.CreateAttr("flowable:storeResultVariableAsTransient", "true")
		}
		if len(t.FieldExtensions) > 0 || len(t.MapExceptions) > 0 || len(t.EventInParameters) > 0 || len(t.EventOutParameters) > 0 {
			ext := extensionsOf(start)
			writeFields(ext, t.FieldExtensions)
			for _, exception := range t.MapExceptions {
				child := ext.CreateElement("flowable:mapException")
				setAttr(child, "errorCode", exception.ErrorCode)
				if exception.AndChildren {
					child.CreateAttr("includeChildExceptions", "true")
				}
				child.SetText(exception.ClassName)
			}
			writeIOParameters(ext, "flowable:eventInParameter", t.EventInParameters)
			writeIOParameters(ext, "flowable:eventOutParameter", t.EventOutParameters)
		}
	case *ScriptTask:
		setAttr(start, "scriptFormat", t.ScriptFormat)
		setAttr(start, "flowable:resultVariable", t.ResultVariable)
		setAttr(start, "flowable:skipExpression", t.SkipExpression)
		if t.AutoStoreVariables {
			start.CreateAttr("flowable:autoStoreVariables", "true")
		}
		if t.Script != "" {
			start.CreateElement("bpmn:script").CreateCData(t.Script)
		}
	case *BusinessRuleTask:
		setAttr(start, "flowable:class", t.ClassName)
		setAttr(start, "flowable:variablesInput", strings.Join(t.InputVariables, ","))
		setAttr(start, "flowable:rules", strings.Join(t.RuleNames, ","))
		setAttr(start, "flowable:resultVariable", t.ResultVariableName)
		if t.Exclude {
			start.CreateAttr("flowable:exclude", "true")
		}
	case *SendTask:
		setAttr(start, "flowable:type", t.Type)
		setAttr(start, "flowable:"+string(t.ImplementationType), t.Implementation)
		if len(t.FieldExtensions) > 0 {
			writeFields(extensionsOf(start), t.FieldExtensions)
		}
	case *CallActivity:
		setAttr(start, "calledElement", t.CalledElement)
		setAttr(start, "flowable:calledElementType", t.CalledElementType)
		setAttr(start, "flowable:processInstanceName", t.ProcessInstanceName)
		setAttr(start, "flowable:businessKey", t.BusinessKey)
		setAttr(start, "flowable:processInstanceIdVariableName", t.ProcessInstanceIDVariableName)
		if t.InheritVariables {
			start.CreateAttr("flowable:inheritVariables", "true")
		}
		if t.SameDeployment {
			start.CreateAttr("flowable:sameDeployment", "true")
		}
		if t.InheritBusinessKey {
			start.CreateAttr("flowable:inheritBusinessKey", "true")
		}
		if t.UseLocalScopeForOutParameters {
			start.CreateAttr("flowable:useLocalScopeForOutParameters", "true")
		}
		if t.CompleteAsync {
			start.CreateAttr("flowable:completeAsync", "true")
		}
		if t.FallbackToDefaultTenant != nil {
			start.CreateAttr("flowable:fallbackToDefaultTenant", fmt.Sprintf("%t", *t.FallbackToDefaultTenant))
		}
		if len(t.InParameters) > 0 || len(t.OutParameters) > 0 {
			ext := extensionsOf(start)
			writeIOParameters(ext, "flowable:in", t.InParameters)
			writeIOParameters(ext, "flowable:out", t.OutParameters)
		}
	}

	writeActivity(start, activity)
	return nil
}

type gatewaySerde struct {
	inner elementSerde
	tag   string
}

func (s *gatewaySerde) Serialize(element Element, start *etree.Element) error {
	gw, ok := element.(Gateway)
	if !ok {
		return fmt.Errorf("%v is not Gateway", element)
	}
	start.Space = "bpmn"
	start.Tag = s.tag
	if err := s.inner.serialize(gw, start); err != nil {
		return err
	}
	writeNodeFlags(start, gw)
	setAttr(start, "default", gw.Gateway().DefaultFlow)

	return nil
}

type subProcessSerde struct{ inner elementSerde }

func (s *subProcessSerde) Serialize(element Element, start *etree.Element) error {
	sub, ok := element.(SubProcessElement)
	if !ok {
		return fmt.Errorf("%v is not SubProcess", element)
	}
	start.Space = "bpmn"
	start.Tag = "subProcess"
	switch v := sub.(type) {
	case *AdhocSubProcess:
		start.Tag = "adHocSubProcess"
		setAttr(start, "ordering", v.Ordering)
		if !v.CancelRemainingInstances {
			start.CreateAttr("cancelRemainingInstances", "false")
		}
	case *EventSubProcess:
		start.CreateAttr("triggeredByEvent", "true")
	case *SubProcess:
		if v.Transaction {
			start.Tag = "transaction"
		}
	}
	if err := s.inner.serialize(sub, start); err != nil {
		return err
	}
	writeNodeFlags(start, sub)
	writeDataObjects(start, sub.Sub().DataObjects)

	if err := writeContainer(sub, start); err != nil {
		return err
	}
	if v, ok := sub.(*AdhocSubProcess); ok && v.CompletionCondition != "" {
		start.CreateElement("bpmn:completionCondition").SetText(v.CompletionCondition)
	}
	writeActivity(start, sub)

	return nil
}

func writeDataObjects(start *etree.Element, objects []*DataObject) {
	for _, object := range objects {
		child := start.CreateElement("bpmn:dataObject")
		child.CreateAttr("id", object.Id)
		setAttr(child, "name", object.Name)
		setAttr(child, "itemSubjectRef", object.ItemSubjectRef)
		if object.Value != "" {
			ext := child.CreateElement("bpmn:extensionElements")
			ext.CreateElement("flowable:value").SetText(object.Value)
		}
	}
}

func writeContainer(container FlowElementsContainer, start *etree.Element) error {
	for _, elem := range container.FlowElements() {
		child := start.CreateElement("")
		if err := Serialize(elem, child); err != nil {
			return err
		}
	}
	for _, artifact := range container.Artifacts() {
		child := start.CreateElement("")
		if err := Serialize(artifact, child); err != nil {
			return err
		}
	}
	return nil
}

type processSerde struct{ inner elementSerde }

func (s *processSerde) Serialize(element Element, start *etree.Element) error {
	process, ok := element.(*Process)
	if !ok {
		return fmt.Errorf("%v is not Process", element)
	}

	start.Space = "bpmn"
	start.Tag = "process"

	if process.Id != "" {
		start.CreateAttr("id", process.Id)
	}
	if process.Name != "" {
		start.CreateAttr("name", process.Name)
	}
	start.CreateAttr("isExecutable", fmt.Sprintf("%t", process.Executable))
	setAttr(start, "flowable:candidateStarterUsers", strings.Join(process.CandidateStarterUsers, ","))
	setAttr(start, "flowable:candidateStarterGroups", strings.Join(process.CandidateStarterGroups, ","))
	if process.Document != "" {
		start.CreateElement("bpmn:documentation").SetText(process.Document)
	}

	if process.Extensions.Len() > 0 || len(process.ExecutionListeners) > 0 || len(process.EventListeners) > 0 {
		ext := start.CreateElement("")
		if err := new(extensionElementSerde).serialize(process.Extensions.All(), process.ExecutionListeners, ext); err != nil {
			return err
		}
		for _, listener := range process.EventListeners {
			child := ext.CreateElement("flowable:eventListener")
			setAttr(child, "events", listener.Events)
			setAttr(child, "entityType", listener.EntityType)
			switch listener.ImplementationType {
			case ImplementationClass, ImplementationDelegateExpression:
				setAttr(child, string(listener.ImplementationType), listener.Implementation)
			default:
				setAttr(child, "throwEvent", throwEvents[listener.ImplementationType])
				setAttr(child, "eventName", listener.Implementation)
			}
		}
	}

	if len(process.Lanes) > 0 {
		laneSet := start.CreateElement("bpmn:laneSet")
		laneSet.CreateAttr("id", "laneSet_"+process.Id)
		for _, lane := range process.Lanes {
			child := laneSet.CreateElement("bpmn:lane")
			child.CreateAttr("id", lane.Id)
			setAttr(child, "name", lane.Name)
			for _, ref := range lane.FlowReferences {
				child.CreateElement("bpmn:flowNodeRef").SetText(ref)
			}
		}
	}

	writeDataObjects(start, process.DataObjects)
	return writeContainer(process, start)
}

var throwEvents = map[ImplementationType]string{
	ImplementationThrowError:        "error",
	ImplementationThrowMessage:      "message",
	ImplementationThrowSignal:       "signal",
	ImplementationThrowGlobalSignal: "globalSignal",
}

type sequenceFlowSerde struct{ inner elementSerde }

func (s *sequenceFlowSerde) Serialize(element Element, start *etree.Element) error {
	flow, ok := element.(*SequenceFlow)
	if !ok {
		return fmt.Errorf("%v is not SequenceFlow", element)
	}

	start.Space = "bpmn"
	start.Tag = "sequenceFlow"
	if err := s.inner.serialize(flow, start); err != nil {
		return err
	}
	setAttr(start, "sourceRef", flow.SourceRef)
	setAttr(start, "targetRef", flow.TargetRef)
	setAttr(start, "skipExpression", flow.SkipExpression)
	if flow.ConditionExpression != "" {
		child := start.CreateElement("bpmn:conditionExpression")
		child.CreateAttr("xsi:type", "tFormalExpression")
		child.CreateCData(flow.ConditionExpression)
	}

	return nil
}

type textAnnotationSerde struct{}

func (s *textAnnotationSerde) Serialize(element Element, start *etree.Element) error {
	annotation, ok := element.(*TextAnnotation)
	if !ok {
		return fmt.Errorf("%v is not TextAnnotation", element)
	}
	start.Space = "bpmn"
	start.Tag = "textAnnotation"
	start.CreateAttr("id", annotation.Id)
	setAttr(start, "textFormat", annotation.TextFormat)
	if annotation.Text != "" {
		start.CreateElement("bpmn:text").SetText(annotation.Text)
	}

	return nil
}

type associationSerde struct{}

func (s *associationSerde) Serialize(element Element, start *etree.Element) error {
	association, ok := element.(*Association)
	if !ok {
		return fmt.Errorf("%v is not Association", element)
	}
	start.Space = "bpmn"
	start.Tag = "association"
	start.CreateAttr("id", association.Id)
	setAttr(start, "sourceRef", association.SourceRef)
	setAttr(start, "targetRef", association.TargetRef)
	setAttr(start, "associationDirection", string(association.Direction))

	return nil
}

type dataStoreReferenceSerde struct{ inner elementSerde }

func (s *dataStoreReferenceSerde) Serialize(element Element, start *etree.Element) error {
	reference, ok := element.(*DataStoreReference)
	if !ok {
		return fmt.Errorf("%v is not DataStoreReference", element)
	}
	start.Space = "bpmn"
	start.Tag = "dataStoreReference"
	if err := s.inner.serialize(reference, start); err != nil {
		return err
	}
	setAttr(start, "dataStoreRef", reference.DataStoreRef)
	setAttr(start, "itemSubjectRef", reference.ItemSubjectRef)
	if reference.DataState != "" {
		start.CreateElement("bpmn:dataState").CreateAttr("name", reference.DataState)
	}

	return nil
}

type diagramSerde struct{}

func (s *diagramSerde) Serialize(m *Model, start *etree.Element) error {
	start.Space = "bpmndi"
	start.Tag = "BPMNDiagram"

	planeElement := ""
	if len(m.Pools) > 0 {
		planeElement = "Collaboration"
	} else if process := m.MainProcess(); process != nil {
		planeElement = process.Id
	}
	start.CreateAttr("id", "BPMNDiagram_"+planeElement)

	plane := start.CreateElement("bpmndi:BPMNPlane")
	plane.CreateAttr("id", "BPMNPlane_"+planeElement)
	plane.CreateAttr("bpmnElement", planeElement)

	m.Locations(func(id string, info *GraphicInfo) bool {
		shape := plane.CreateElement("bpmndi:BPMNShape")
		shape.CreateAttr("id", "BPMNShape_"+id)
		shape.CreateAttr("bpmnElement", id)
		if info.Expanded != nil {
			shape.CreateAttr("isExpanded", fmt.Sprintf("%t", *info.Expanded))
		}
		writeBounds(shape, info)
		if label := m.GetLabelGraphicInfo(id); label != nil {
			writeBounds(shape.CreateElement("bpmndi:BPMNLabel"), label)
		}
		return true
	})

	m.FlowLocations(func(id string, infos []*GraphicInfo) bool {
		edge := plane.CreateElement("bpmndi:BPMNEdge")
		edge.CreateAttr("id", "BPMNEdge_"+id)
		edge.CreateAttr("bpmnElement", id)
		for _, info := range infos {
			waypoint := edge.CreateElement("di:waypoint")
			waypoint.CreateAttr("x", formatCoordinate(info.X))
			waypoint.CreateAttr("y", formatCoordinate(info.Y))
		}
		if label := m.GetLabelGraphicInfo(id); label != nil {
			writeBounds(edge.CreateElement("bpmndi:BPMNLabel"), label)
		}
		return true
	})

	return nil
}

func writeBounds(parent *etree.Element, info *GraphicInfo) {
	child := parent.CreateElement("dc:Bounds")
	child.CreateAttr("x", formatCoordinate(info.X))
	child.CreateAttr("y", formatCoordinate(info.Y))
	child.CreateAttr("width", formatCoordinate(info.Width))
	child.CreateAttr("height", formatCoordinate(info.Height))
}

func formatCoordinate(v float64) string {
	return decimal.NewFromFloat(v).Round(1).String()
}
