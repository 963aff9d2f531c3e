package bpmn

import "strings"

// ImplementationType tells how a listener or task delegates its work.
type ImplementationType string

const (
	ImplementationClass              ImplementationType = "class"
	ImplementationExpression         ImplementationType = "expression"
	ImplementationDelegateExpression ImplementationType = "delegateExpression"
	ImplementationThrowError         ImplementationType = "throwErrorEvent"
	ImplementationThrowMessage       ImplementationType = "throwMessageEvent"
	ImplementationThrowSignal        ImplementationType = "throwSignalEvent"
	ImplementationThrowGlobalSignal  ImplementationType = "throwGlobalSignalEvent"
	ImplementationWebService         ImplementationType = "##WebService"
)

// FieldExtension injects a value into a delegate field.
type FieldExtension struct {
	FieldName   string
	StringValue string
	Expression  string
}

// NewFieldExtension builds a field, storing value as an expression when it
// holds one.
func NewFieldExtension(name, value string) *FieldExtension {
	field := &FieldExtension{FieldName: name}
	if IsExpression(value) {
		field.Expression = value
	} else {
		field.StringValue = value
	}
	return field
}

// Value returns the string value, falling back to the expression.
func (f *FieldExtension) Value() string {
	if len(f.StringValue) > 0 {
		return f.StringValue
	}
	return f.Expression
}

// Listener is an execution or task listener.
type Listener struct {
	Event              string
	ImplementationType ImplementationType
	Implementation     string
	FieldExtensions    []*FieldExtension
}

// EventListener listens to engine events on the process level.
type EventListener struct {
	Events             string
	ImplementationType ImplementationType
	Implementation     string
	EntityType         string
}

type FormValue struct {
	Id   string
	Name string
}

// FormProperty is a legacy form field of a start event or user task.
type FormProperty struct {
	Id                string
	Name              string
	Type              string
	Expression        string
	Variable          string
	DefaultExpression string
	DatePattern       string
	Required          bool
	Readable          bool
	Writeable         bool
	FormValues        []*FormValue
}

// MultiInstance describes the loop characteristics of an activity.
type MultiInstance struct {
	Sequential           bool
	LoopCardinality      string
	InputDataItem        string
	ElementVariable      string
	ElementIndexVariable string
	CompletionCondition  string
	Aggregations         []*VariableAggregation
}

// VariableAggregation gathers variables of the instances of a multi instance
// activity.
type VariableAggregation struct {
	Target             string
	TargetExpression   string
	ImplementationType ImplementationType
	Implementation     string
	StoreAsTransient   bool
	CreateOverview     bool
	Definitions        []*AggregationVariable
}

type AggregationVariable struct {
	Source           string
	SourceExpression string
	Target           string
	TargetExpression string
}

// IOParameter maps a variable between a caller and a callee.
type IOParameter struct {
	Source           string
	SourceExpression string
	Target           string
	TargetExpression string
	Transient        bool
	Attributes       map[string]string
}

// Attr returns the named attribute, empty when absent.
func (p *IOParameter) Attr(name string) string {
	if p.Attributes == nil {
		return ""
	}
	return p.Attributes[name]
}

// SetAttr sets an attribute, skipping empty values.
func (p *IOParameter) SetAttr(name, value string) {
	if len(value) == 0 {
		return
	}
	if p.Attributes == nil {
		p.Attributes = map[string]string{}
	}
	p.Attributes[name] = value
}

// MapException maps a thrown exception to a BPMN error code.
type MapException struct {
	ErrorCode   string
	ClassName   string
	AndChildren bool
}

// DataObject is a typed process variable with an initial value.
type DataObject struct {
	Id             string
	Name           string
	ItemSubjectRef string
	Value          string
}

// DataType returns the item subject type without its namespace prefix.
func (d *DataObject) DataType() string {
	if i := strings.Index(d.ItemSubjectRef, ":"); i >= 0 {
		return d.ItemSubjectRef[i+1:]
	}
	return d.ItemSubjectRef
}

// IsExpression reports whether a value is an ${...} or #{...} expression.
func IsExpression(value string) bool {
	return (strings.Contains(value, "${") || strings.Contains(value, "#{")) && strings.Contains(value, "}")
}
