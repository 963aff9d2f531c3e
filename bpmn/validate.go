package bpmn

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var errDuplicateID = errors.New("duplicate element id")

func (s *Signal) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Id, validation.Required),
		validation.Field(&s.Scope, validation.In(SignalScopeGlobal, SignalScopeProcessInstance)),
	)
}

func (m *Message) Validate() error {
	return validation.ValidateStruct(m,
		validation.Field(&m.Id, validation.Required),
	)
}

func (e *Escalation) Validate() error {
	return validation.ValidateStruct(e,
		validation.Field(&e.Id, validation.Required),
		validation.Field(&e.Code, validation.Required),
	)
}

func (p *Process) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Id, validation.Required),
	)
}

func (f *SequenceFlow) Validate() error {
	return validation.ValidateStruct(f,
		validation.Field(&f.Id, validation.Required),
		validation.Field(&f.SourceRef, validation.Required),
		validation.Field(&f.TargetRef, validation.Required),
	)
}

func (e *BoundaryEvent) Validate() error {
	return validation.ValidateStruct(e,
		validation.Field(&e.Id, validation.Required),
		validation.Field(&e.AttachedToRefID, validation.Required),
	)
}

// Validate checks the structure of the model: required ids, unique ids and
// resolvable references. It does not judge process semantics.
func (m *Model) Validate() error {
	errs := validation.Errors{}
	for i, signal := range m.Signals {
		if err := signal.Validate(); err != nil {
			errs[fmt.Sprintf("signals[%d]", i)] = err
		}
	}
	for i, message := range m.Messages {
		if err := message.Validate(); err != nil {
			errs[fmt.Sprintf("messages[%d]", i)] = err
		}
	}
	for i, escalation := range m.Escalations {
		if err := escalation.Validate(); err != nil {
			errs[fmt.Sprintf("escalations[%d]", i)] = err
		}
	}

	seen := map[string]struct{}{}
	for i, process := range m.Processes {
		if err := process.Validate(); err != nil {
			errs[fmt.Sprintf("processes[%d]", i)] = err
			continue
		}
		m.validateContainer(process, seen, errs)
	}

	for _, flow := range m.MessageFlows() {
		if err := validation.Validate(flow.SourceRef, validation.Required, validation.By(m.resolvable)); err != nil {
			errs[flow.Id] = err
		} else if err = validation.Validate(flow.TargetRef, validation.Required, validation.By(m.resolvable)); err != nil {
			errs[flow.Id] = err
		}
	}

	return errs.Filter()
}

func (m *Model) validateContainer(container FlowElementsContainer, seen map[string]struct{}, errs validation.Errors) {
	for _, elem := range container.FlowElements() {
		id := elem.GetID()
		if err := validation.Validate(id, validation.Required); err != nil {
			errs[fmt.Sprintf("%s/%s", container.GetID(), elem.GetShape())] = err
			continue
		}
		if _, ok := seen[id]; ok {
			errs[id] = errDuplicateID
			continue
		}
		seen[id] = struct{}{}

		switch v := elem.(type) {
		case *SequenceFlow:
			if err := v.Validate(); err != nil {
				errs[id] = err
				continue
			}
			if err := validation.Validate(v.SourceRef, validation.By(m.resolvable)); err != nil {
				errs[id] = err
			} else if err = validation.Validate(v.TargetRef, validation.By(m.resolvable)); err != nil {
				errs[id] = err
			}
		case *BoundaryEvent:
			if err := v.Validate(); err != nil {
				errs[id] = err
			}
		case SubProcessElement:
			m.validateContainer(v, seen, errs)
		}
	}
	for _, artifact := range container.Artifacts() {
		id := artifact.GetID()
		if _, ok := seen[id]; ok {
			errs[id] = errDuplicateID
			continue
		}
		seen[id] = struct{}{}
	}
}

func (m *Model) resolvable(value interface{}) error {
	id, _ := value.(string)
	if id == "" {
		return nil
	}
	if m.GetFlowElement(id) != nil || m.GetArtifact(id) != nil || m.Pool(id) != nil {
		return nil
	}
	return fmt.Errorf("reference %s not found", id)
}
