package bpmn

// EventDefinitionKind is the closed set of event triggers.
type EventDefinitionKind int32

const (
	TimerDefinition EventDefinitionKind = iota + 1
	MessageDefinition
	SignalDefinition
	ConditionalDefinition
	ErrorDefinition
	EscalationDefinition
	CancelDefinition
	CompensateDefinition
	TerminateDefinition
	VariableListenerDefinition
)

func (k EventDefinitionKind) String() string {
	switch k {
	case TimerDefinition:
		return "timer"
	case MessageDefinition:
		return "message"
	case SignalDefinition:
		return "signal"
	case ConditionalDefinition:
		return "conditional"
	case ErrorDefinition:
		return "error"
	case EscalationDefinition:
		return "escalation"
	case CancelDefinition:
		return "cancel"
	case CompensateDefinition:
		return "compensate"
	case TerminateDefinition:
		return "terminate"
	case VariableListenerDefinition:
		return "variableListener"
	default:
		return "unknown"
	}
}

// EventDefinition is the trigger attached to an event.
type EventDefinition interface {
	Kind() EventDefinitionKind
	GetID() string
}

type DefinitionMeta struct {
	Id string
}

func (m *DefinitionMeta) GetID() string {
	return m.Id
}

type TimerEventDefinition struct {
	DefinitionMeta
	TimeDate     string
	TimeDuration string
	TimeCycle    string
	EndDate      string
	CalendarName string
}

func (d *TimerEventDefinition) Kind() EventDefinitionKind { return TimerDefinition }

type MessageEventDefinition struct {
	DefinitionMeta
	MessageRef        string
	MessageExpression string
}

func (d *MessageEventDefinition) Kind() EventDefinitionKind { return MessageDefinition }

type SignalEventDefinition struct {
	DefinitionMeta
	SignalRef        string
	SignalExpression string
	Async            bool
}

func (d *SignalEventDefinition) Kind() EventDefinitionKind { return SignalDefinition }

type ConditionalEventDefinition struct {
	DefinitionMeta
	ConditionExpression string
}

func (d *ConditionalEventDefinition) Kind() EventDefinitionKind { return ConditionalDefinition }

type ErrorEventDefinition struct {
	DefinitionMeta
	ErrorCode    string
	VariableName string
	Transient    *bool
	LocalScope   *bool
}

func (d *ErrorEventDefinition) Kind() EventDefinitionKind { return ErrorDefinition }

type EscalationEventDefinition struct {
	DefinitionMeta
	EscalationCode string
}

func (d *EscalationEventDefinition) Kind() EventDefinitionKind { return EscalationDefinition }

type CancelEventDefinition struct {
	DefinitionMeta
}

func (d *CancelEventDefinition) Kind() EventDefinitionKind { return CancelDefinition }

type CompensateEventDefinition struct {
	DefinitionMeta
	ActivityRef       string
	WaitForCompletion bool
}

func (d *CompensateEventDefinition) Kind() EventDefinitionKind { return CompensateDefinition }

type TerminateEventDefinition struct {
	DefinitionMeta
	TerminateAll           bool
	TerminateMultiInstance bool
}

func (d *TerminateEventDefinition) Kind() EventDefinitionKind { return TerminateDefinition }

type VariableListenerEventDefinition struct {
	DefinitionMeta
	VariableName string
	ChangeType   string
}

func (d *VariableListenerEventDefinition) Kind() EventDefinitionKind {
	return VariableListenerDefinition
}

var (
	_ EventDefinition = (*TimerEventDefinition)(nil)
	_ EventDefinition = (*MessageEventDefinition)(nil)
	_ EventDefinition = (*SignalEventDefinition)(nil)
	_ EventDefinition = (*ConditionalEventDefinition)(nil)
	_ EventDefinition = (*ErrorEventDefinition)(nil)
	_ EventDefinition = (*EscalationEventDefinition)(nil)
	_ EventDefinition = (*CancelEventDefinition)(nil)
	_ EventDefinition = (*CompensateEventDefinition)(nil)
	_ EventDefinition = (*TerminateEventDefinition)(nil)
	_ EventDefinition = (*VariableListenerEventDefinition)(nil)
)

// SingleDefinition returns the only event definition of an event, nil when
// it has none or several.
func SingleDefinition(event Event) EventDefinition {
	definitions := event.GetEventDefinitions()
	if len(definitions) != 1 {
		return nil
	}
	return definitions[0]
}

// EventMeta is embedded by every event.
type EventMeta struct {
	FlowMeta
	NodeMeta
	Definitions []EventDefinition
}

func (e *EventMeta) GetEventDefinitions() []EventDefinition {
	return e.Definitions
}

func (e *EventMeta) SetEventDefinitions(definitions []EventDefinition) {
	e.Definitions = definitions
}

// AddEventDefinition appends an event definition.
func (e *EventMeta) AddEventDefinition(definition EventDefinition) {
	e.Definitions = append(e.Definitions, definition)
}

var (
	_ Event = (*StartEvent)(nil)
	_ Event = (*EndEvent)(nil)
	_ Event = (*BoundaryEvent)(nil)
	_ Event = (*IntermediateCatchEvent)(nil)
	_ Event = (*ThrowEvent)(nil)
)

type StartEvent struct {
	EventMeta
	Initiator      string
	FormKey        string
	ValidateForm   bool
	Interrupting   bool
	FormProperties []*FormProperty
}

func NewStartEvent() *StartEvent {
	return &StartEvent{Interrupting: true}
}

func (e *StartEvent) GetShape() Shape { return StartEventShape }

type EndEvent struct {
	EventMeta
}

func (e *EndEvent) GetShape() Shape { return EndEventShape }

type BoundaryEvent struct {
	EventMeta
	AttachedToRefID string
	AttachedTo      Activity
	CancelActivity  bool
}

func NewBoundaryEvent() *BoundaryEvent {
	return &BoundaryEvent{CancelActivity: true}
}

func (e *BoundaryEvent) GetShape() Shape { return BoundaryEventShape }

type IntermediateCatchEvent struct {
	EventMeta
}

func (e *IntermediateCatchEvent) GetShape() Shape { return CatchEventShape }

type ThrowEvent struct {
	EventMeta
}

func (e *ThrowEvent) GetShape() Shape { return ThrowEventShape }
