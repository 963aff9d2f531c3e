package bpmn

// Shape is the closed set of element kinds of a process graph.
type Shape int32

const (
	StartEventShape Shape = iota + 1
	EndEventShape
	BoundaryEventShape
	CatchEventShape
	ThrowEventShape
	UserTaskShape
	ServiceTaskShape
	ScriptTaskShape
	BusinessRuleTaskShape
	ManualTaskShape
	ReceiveTaskShape
	SendTaskShape
	CallActivityShape
	ExclusiveGatewayShape
	ParallelGatewayShape
	InclusiveGatewayShape
	EventGatewayShape
	SubProcessShape
	EventSubProcessShape
	AdhocSubProcessShape
	FlowShape
	DataObjectShape
	TextAnnotationShape
	AssociationShape
	DataStoreShape
	MessageFlowShape
	LaneShape
	PoolShape
	ProcessShape
)

var shapeNames = map[Shape]string{
	StartEventShape:       "StartEvent",
	EndEventShape:         "EndEvent",
	BoundaryEventShape:    "BoundaryEvent",
	CatchEventShape:       "IntermediateCatchEvent",
	ThrowEventShape:       "ThrowEvent",
	UserTaskShape:         "UserTask",
	ServiceTaskShape:      "ServiceTask",
	ScriptTaskShape:       "ScriptTask",
	BusinessRuleTaskShape: "BusinessRuleTask",
	ManualTaskShape:       "ManualTask",
	ReceiveTaskShape:      "ReceiveTask",
	SendTaskShape:         "SendTask",
	CallActivityShape:     "CallActivity",
	ExclusiveGatewayShape: "ExclusiveGateway",
	ParallelGatewayShape:  "ParallelGateway",
	InclusiveGatewayShape: "InclusiveGateway",
	EventGatewayShape:     "EventGateway",
	SubProcessShape:       "SubProcess",
	EventSubProcessShape:  "EventSubProcess",
	AdhocSubProcessShape:  "AdhocSubProcess",
	FlowShape:             "SequenceFlow",
	DataObjectShape:       "DataObject",
	TextAnnotationShape:   "TextAnnotation",
	AssociationShape:      "Association",
	DataStoreShape:        "DataStoreReference",
	MessageFlowShape:      "MessageFlow",
	LaneShape:             "Lane",
	PoolShape:             "Pool",
	ProcessShape:          "Process",
}

func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Element is anything with an id in the process graph.
type Element interface {
	GetShape() Shape
	GetID() string
	SetID(string)
	GetName() string
	SetName(string)
	GetDocument() string
	SetDocument(string)
	GetExtensions() *Extensions
}

// FlowElement is an element owned by a flow elements container.
type FlowElement interface {
	Element
	GetExecutionListeners() []*Listener
	SetExecutionListeners([]*Listener)
}

// FlowNode is a flow element that sequence flows connect.
type FlowNode interface {
	FlowElement
	Node() *NodeMeta
}

// Activity is a flow node that does work.
type Activity interface {
	FlowNode
	Activity() *ActivityMeta
}

// Gateway is a flow node that splits or joins the flow.
type Gateway interface {
	FlowNode
	Gateway() *GatewayMeta
}

// Event is a flow node with event definitions.
type Event interface {
	FlowNode
	GetEventDefinitions() []EventDefinition
	SetEventDefinitions([]EventDefinition)
}

// Artifact is an element that documents the process without taking part in it.
type Artifact interface {
	Element
}

var _ Element = (*ModelMeta)(nil)

type ModelMeta struct {
	Id         string
	Name       string
	Document   string
	Extensions Extensions
}

func (m *ModelMeta) GetShape() Shape {
	return 0
}

func (m *ModelMeta) GetID() string {
	return m.Id
}

func (m *ModelMeta) SetID(id string) {
	m.Id = id
}

func (m *ModelMeta) GetName() string {
	return m.Name
}

func (m *ModelMeta) SetName(name string) {
	m.Name = name
}

func (m *ModelMeta) GetDocument() string {
	return m.Document
}

func (m *ModelMeta) SetDocument(document string) {
	m.Document = document
}

func (m *ModelMeta) GetExtensions() *Extensions {
	return &m.Extensions
}

// FlowMeta is embedded by every flow element.
type FlowMeta struct {
	ModelMeta
	ExecutionListeners []*Listener
}

func (m *FlowMeta) GetExecutionListeners() []*Listener {
	return m.ExecutionListeners
}

func (m *FlowMeta) SetExecutionListeners(listeners []*Listener) {
	m.ExecutionListeners = listeners
}

// NodeMeta holds the connections and job flags of a flow node.
type NodeMeta struct {
	Asynchronous bool
	NotExclusive bool
	Incoming     []*SequenceFlow
	Outgoing     []*SequenceFlow
}

func (n *NodeMeta) Node() *NodeMeta {
	return n
}

// ActivityMeta holds what every activity may carry.
type ActivityMeta struct {
	DefaultFlow            string
	ForCompensation        bool
	FailedJobRetryCycle    string
	MultiInstance          *MultiInstance
	BoundaryEvents         []*BoundaryEvent
	DataInputAssociations  []*DataAssociation
	DataOutputAssociations []*DataAssociation
}

func (a *ActivityMeta) Activity() *ActivityMeta {
	return a
}

type GatewayMeta struct {
	DefaultFlow string
}

func (g *GatewayMeta) Gateway() *GatewayMeta {
	return g
}

// ExtensionElement is a vendor specific child element.
type ExtensionElement struct {
	Name       string
	Namespace  string
	Prefix     string
	Text       string
	Attributes map[string]string
	Children   []*ExtensionElement
}

// Attr returns the named attribute, empty when absent.
func (e *ExtensionElement) Attr(name string) string {
	if e == nil || e.Attributes == nil {
		return ""
	}
	return e.Attributes[name]
}

// SetAttr sets an attribute, skipping empty values.
func (e *ExtensionElement) SetAttr(name, value string) {
	if len(value) == 0 {
		return
	}
	if e.Attributes == nil {
		e.Attributes = map[string]string{}
	}
	e.Attributes[name] = value
}

// Extensions keeps extension elements grouped by name in insertion order.
type Extensions struct {
	names []string
	items map[string][]*ExtensionElement
}

// Add appends an extension element.
func (x *Extensions) Add(elem *ExtensionElement) {
	if elem == nil {
		return
	}
	if x.items == nil {
		x.items = map[string][]*ExtensionElement{}
	}
	if _, ok := x.items[elem.Name]; !ok {
		x.names = append(x.names, elem.Name)
	}
	x.items[elem.Name] = append(x.items[elem.Name], elem)
}

// Get returns the extension elements with the given name.
func (x *Extensions) Get(name string) []*ExtensionElement {
	if x.items == nil {
		return nil
	}
	return x.items[name]
}

// Has reports whether an extension element with the name exists.
func (x *Extensions) Has(name string) bool {
	return len(x.Get(name)) > 0
}

// Value returns the text of the first extension element with the name.
func (x *Extensions) Value(name string) string {
	items := x.Get(name)
	if len(items) == 0 {
		return ""
	}
	return items[0].Text
}

// Remove drops every extension element with the name.
func (x *Extensions) Remove(name string) {
	if x.items == nil {
		return
	}
	if _, ok := x.items[name]; !ok {
		return
	}
	delete(x.items, name)
	for i, n := range x.names {
		if n == name {
			x.names = append(x.names[:i], x.names[i+1:]...)
			break
		}
	}
}

// All returns every extension element in insertion order.
func (x *Extensions) All() []*ExtensionElement {
	out := make([]*ExtensionElement, 0, len(x.names))
	for _, name := range x.names {
		out = append(out, x.items[name]...)
	}
	return out
}

// Len returns the number of extension elements.
func (x *Extensions) Len() int {
	n := 0
	for _, items := range x.items {
		n += len(items)
	}
	return n
}

// NewFlowableExtension builds an extension element in the flowable namespace.
func NewFlowableExtension(name, text string) *ExtensionElement {
	return &ExtensionElement{
		Name:      name,
		Namespace: FlowableNamespace,
		Prefix:    FlowableNamespacePrefix,
		Text:      text,
	}
}

const (
	FlowableNamespace       = "http://flowable.org/bpmn"
	FlowableNamespacePrefix = "flowable"
)

// IsFlowNode reports whether the element is connected by sequence flows.
func IsFlowNode(elem Element) bool {
	_, ok := elem.(FlowNode)
	return ok
}

// IsGateway reports whether the element splits or joins the flow.
func IsGateway(elem Element) bool {
	switch elem.GetShape() {
	case ExclusiveGatewayShape, InclusiveGatewayShape, ParallelGatewayShape, EventGatewayShape:
		return true
	default:
		return false
	}
}

// IsSubProcess reports whether the element is any sub process variant.
func IsSubProcess(elem Element) bool {
	switch elem.GetShape() {
	case SubProcessShape, EventSubProcessShape, AdhocSubProcessShape:
		return true
	default:
		return false
	}
}
