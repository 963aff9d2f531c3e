package bpmn

import (
	"github.com/tidwall/btree"
)

// FlowElementsContainer owns flow elements and artifacts.
type FlowElementsContainer interface {
	GetID() string
	FlowElements() []FlowElement
	AddFlowElement(elem FlowElement)
	RemoveFlowElement(id string)
	GetFlowElement(id string) (FlowElement, bool)
	Artifacts() []Artifact
	AddArtifact(artifact Artifact)
	RemoveArtifact(id string)
	GetArtifact(id string) (Artifact, bool)
}

// Container keeps elements in insertion order with an id index.
type Container struct {
	elements  []FlowElement
	artifacts []Artifact

	elementIndex  *btree.Map[string, FlowElement]
	artifactIndex *btree.Map[string, Artifact]
}

func (c *Container) FlowElements() []FlowElement {
	return c.elements
}

// AddFlowElement appends elem, replacing an element with the same id.
func (c *Container) AddFlowElement(elem FlowElement) {
	if elem == nil {
		return
	}
	if c.elementIndex == nil {
		c.elementIndex = &btree.Map[string, FlowElement]{}
	}
	if _, ok := c.elementIndex.Get(elem.GetID()); ok {
		c.RemoveFlowElement(elem.GetID())
	}
	c.elementIndex.Set(elem.GetID(), elem)
	c.elements = append(c.elements, elem)
}

func (c *Container) RemoveFlowElement(id string) {
	if c.elementIndex == nil {
		return
	}
	if _, ok := c.elementIndex.Delete(id); !ok {
		return
	}
	for i, elem := range c.elements {
		if elem.GetID() == id {
			c.elements = append(c.elements[:i], c.elements[i+1:]...)
			break
		}
	}
}

func (c *Container) GetFlowElement(id string) (FlowElement, bool) {
	if c.elementIndex == nil {
		return nil, false
	}
	return c.elementIndex.Get(id)
}

func (c *Container) Artifacts() []Artifact {
	return c.artifacts
}

func (c *Container) AddArtifact(artifact Artifact) {
	if artifact == nil {
		return
	}
	if c.artifactIndex == nil {
		c.artifactIndex = &btree.Map[string, Artifact]{}
	}
	if _, ok := c.artifactIndex.Get(artifact.GetID()); ok {
		c.RemoveArtifact(artifact.GetID())
	}
	c.artifactIndex.Set(artifact.GetID(), artifact)
	c.artifacts = append(c.artifacts, artifact)
}

func (c *Container) RemoveArtifact(id string) {
	if c.artifactIndex == nil {
		return
	}
	if _, ok := c.artifactIndex.Delete(id); !ok {
		return
	}
	for i, artifact := range c.artifacts {
		if artifact.GetID() == id {
			c.artifacts = append(c.artifacts[:i], c.artifacts[i+1:]...)
			break
		}
	}
}

func (c *Container) GetArtifact(id string) (Artifact, bool) {
	if c.artifactIndex == nil {
		return nil, false
	}
	return c.artifactIndex.Get(id)
}

// FindFlowElement looks the id up in the container and every nested sub process.
func FindFlowElement(container FlowElementsContainer, id string) (FlowElement, FlowElementsContainer) {
	if elem, ok := container.GetFlowElement(id); ok {
		return elem, container
	}
	for _, elem := range container.FlowElements() {
		sub, ok := elem.(FlowElementsContainer)
		if !ok {
			continue
		}
		if found, parent := FindFlowElement(sub, id); found != nil {
			return found, parent
		}
	}
	return nil, nil
}

// FindArtifact looks the id up in the container and every nested sub process.
func FindArtifact(container FlowElementsContainer, id string) (Artifact, FlowElementsContainer) {
	if artifact, ok := container.GetArtifact(id); ok {
		return artifact, container
	}
	for _, elem := range container.FlowElements() {
		sub, ok := elem.(FlowElementsContainer)
		if !ok {
			continue
		}
		if found, parent := FindArtifact(sub, id); found != nil {
			return found, parent
		}
	}
	return nil, nil
}

var (
	_ Element               = (*Process)(nil)
	_ FlowElementsContainer = (*Process)(nil)
)

type Process struct {
	ModelMeta
	Container

	Executable             bool
	EagerExecution         bool
	CandidateStarterUsers  []string
	CandidateStarterGroups []string
	ExecutionListeners     []*Listener
	EventListeners         []*EventListener
	DataObjects            []*DataObject
	Lanes                  []*Lane
}

func NewProcess(id string) *Process {
	p := &Process{Executable: true}
	p.Id = id
	return p
}

func (p *Process) GetShape() Shape {
	return ProcessShape
}

// Lane returns the lane with the id.
func (p *Process) Lane(id string) *Lane {
	for _, lane := range p.Lanes {
		if lane.Id == id {
			return lane
		}
	}
	return nil
}

// Owner returns the lane that references the element, if any.
func (p *Process) Owner(elementID string) *Lane {
	for _, lane := range p.Lanes {
		for _, ref := range lane.FlowReferences {
			if ref == elementID {
				return lane
			}
		}
	}
	return nil
}

// SubProcessElement is any sub process variant.
type SubProcessElement interface {
	Activity
	FlowElementsContainer
	Sub() *SubProcess
}

var (
	_ SubProcessElement = (*SubProcess)(nil)
	_ SubProcessElement = (*EventSubProcess)(nil)
	_ SubProcessElement = (*AdhocSubProcess)(nil)
)

// SubProcess is an embedded process. Transaction marks a transaction sub process.
type SubProcess struct {
	TaskMeta
	Container

	Transaction bool
	DataObjects []*DataObject
}

func (s *SubProcess) GetShape() Shape { return SubProcessShape }

func (s *SubProcess) Sub() *SubProcess {
	return s
}

// EventSubProcess is started by an event instead of a sequence flow.
type EventSubProcess struct {
	SubProcess
}

func (s *EventSubProcess) GetShape() Shape { return EventSubProcessShape }

// AdhocSubProcess runs its activities in no prescribed order.
type AdhocSubProcess struct {
	SubProcess
	CompletionCondition      string
	Ordering                 string
	CancelRemainingInstances bool
}

func NewAdhocSubProcess() *AdhocSubProcess {
	return &AdhocSubProcess{Ordering: "Parallel", CancelRemainingInstances: true}
}

func (s *AdhocSubProcess) GetShape() Shape { return AdhocSubProcessShape }

var _ Element = (*Lane)(nil)

// Lane partitions the elements of a process.
type Lane struct {
	ModelMeta
	FlowReferences []string
	ParentProcess  *Process
}

func (l *Lane) GetShape() Shape { return LaneShape }

// AddReference records that the element lies in the lane.
func (l *Lane) AddReference(id string) {
	for _, ref := range l.FlowReferences {
		if ref == id {
			return
		}
	}
	l.FlowReferences = append(l.FlowReferences, id)
}

var _ Element = (*Pool)(nil)

// Pool is a participant that renders a process.
type Pool struct {
	ModelMeta
	ProcessRef string
	Executable bool
}

func (p *Pool) GetShape() Shape { return PoolShape }
