package bpmn

import "strings"

// Service task sub types.
const (
	ServiceTypeMail           = "mail"
	ServiceTypeCamel          = "camel"
	ServiceTypeMule           = "mule"
	ServiceTypeHTTP           = "http"
	ServiceTypeShell          = "shell"
	ServiceTypeDMN            = "dmn"
	ServiceTypeExternalWorker = "external-worker"
	ServiceTypeSendEvent      = "send-event"
)

// TaskMeta is embedded by every task and call activity.
type TaskMeta struct {
	FlowMeta
	NodeMeta
	ActivityMeta
}

var (
	_ Activity = (*UserTask)(nil)
	_ Activity = (*ServiceTask)(nil)
	_ Activity = (*ScriptTask)(nil)
	_ Activity = (*BusinessRuleTask)(nil)
	_ Activity = (*ManualTask)(nil)
	_ Activity = (*ReceiveTask)(nil)
	_ Activity = (*SendTask)(nil)
	_ Activity = (*CallActivity)(nil)
)

type UserTask struct {
	TaskMeta
	Assignee             string
	Owner                string
	Priority             string
	FormKey              string
	ValidateFormFields   string
	DueDate              string
	BusinessCalendarName string
	Category             string
	TaskIDVariableName   string
	SkipExpression       string
	CandidateUsers       []string
	CandidateGroups      []string
	FormProperties       []*FormProperty
	TaskListeners        []*Listener
}

func (t *UserTask) GetShape() Shape { return UserTaskShape }

// ServiceTask delegates to code. Type selects a specialised behaviour whose
// settings travel as field extensions.
type ServiceTask struct {
	TaskMeta
	Type                      string
	ImplementationType        ImplementationType
	Implementation            string
	ResultVariableName        string
	Triggerable               bool
	UseLocalScopeForResult    bool
	StoreResultAsTransient    bool
	SkipExpression            string
	FieldExtensions           []*FieldExtension
	MapExceptions             []*MapException
	ParallelInSameTransaction *bool

	// external worker
	JobTopic string

	// send event
	EventType          string
	TriggerEventType   string
	EventInParameters  []*IOParameter
	EventOutParameters []*IOParameter
}

func (t *ServiceTask) GetShape() Shape { return ServiceTaskShape }

// IsType reports whether the task has the given sub type, ignoring case.
func (t *ServiceTask) IsType(typ string) bool {
	return strings.EqualFold(t.Type, typ)
}

// Field returns the field extension with the name, ignoring case.
func (t *ServiceTask) Field(name string) *FieldExtension {
	for _, field := range t.FieldExtensions {
		if strings.EqualFold(field.FieldName, name) {
			return field
		}
	}
	return nil
}

// AddField appends a field extension.
func (t *ServiceTask) AddField(field *FieldExtension) {
	t.FieldExtensions = append(t.FieldExtensions, field)
}

type ScriptTask struct {
	TaskMeta
	ScriptFormat       string
	Script             string
	ResultVariable     string
	SkipExpression     string
	AutoStoreVariables bool
}

func (t *ScriptTask) GetShape() Shape { return ScriptTaskShape }

type BusinessRuleTask struct {
	TaskMeta
	ClassName          string
	InputVariables     []string
	RuleNames          []string
	ResultVariableName string
	Exclude            bool
}

func (t *BusinessRuleTask) GetShape() Shape { return BusinessRuleTaskShape }

type ManualTask struct {
	TaskMeta
}

func (t *ManualTask) GetShape() Shape { return ManualTaskShape }

// ReceiveTask waits for a message, or for a registry event when it carries
// an eventType extension.
type ReceiveTask struct {
	TaskMeta
}

func (t *ReceiveTask) GetShape() Shape { return ReceiveTaskShape }

type SendTask struct {
	TaskMeta
	Type               string
	ImplementationType ImplementationType
	Implementation     string
	FieldExtensions    []*FieldExtension
}

func (t *SendTask) GetShape() Shape { return SendTaskShape }

type CallActivity struct {
	TaskMeta
	CalledElement                 string
	CalledElementType             string
	InheritVariables              bool
	SameDeployment                bool
	InheritBusinessKey            bool
	UseLocalScopeForOutParameters bool
	CompleteAsync                 bool
	FallbackToDefaultTenant       *bool
	ProcessInstanceName           string
	BusinessKey                   string
	ProcessInstanceIDVariableName string
	InParameters                  []*IOParameter
	OutParameters                 []*IOParameter
}

func (t *CallActivity) GetShape() Shape { return CallActivityShape }
