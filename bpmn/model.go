package bpmn

import (
	"github.com/tidwall/btree"
)

const DefaultTargetNamespace = "http://flowable.org/test"

// GraphicInfo is the absolute placement of a shape or one waypoint of an edge.
type GraphicInfo struct {
	X        float64
	Y        float64
	Width    float64
	Height   float64
	Expanded *bool
}

// Collapsed reports whether the shape is explicitly drawn collapsed.
func (g *GraphicInfo) Collapsed() bool {
	return g != nil && g.Expanded != nil && !*g.Expanded
}

// SetExpanded records the expanded flag.
func (g *GraphicInfo) SetExpanded(expanded bool) {
	g.Expanded = &expanded
}

const (
	SignalScopeGlobal          = "global"
	SignalScopeProcessInstance = "processInstance"
)

type Signal struct {
	Id    string
	Name  string
	Scope string
}

type Message struct {
	Id      string
	Name    string
	ItemRef string
}

type Escalation struct {
	Id   string
	Name string
	Code string
}

type DataStore struct {
	Id             string
	Name           string
	DataState      string
	ItemSubjectRef string
}

// Model is the root of a process graph and its diagram information.
type Model struct {
	TargetNamespace string
	Namespaces      map[string]string

	Processes   []*Process
	Pools       []*Pool
	Signals     []*Signal
	Messages    []*Message
	Escalations []*Escalation
	DataStores  map[string]*DataStore

	messageFlows []*MessageFlow

	locations      *btree.Map[string, *GraphicInfo]
	flowLocations  *btree.Map[string, []*GraphicInfo]
	labelLocations *btree.Map[string, *GraphicInfo]
}

func NewModel() *Model {
	return &Model{
		TargetNamespace: DefaultTargetNamespace,
		Namespaces:      map[string]string{},
		DataStores:      map[string]*DataStore{},
		locations:       &btree.Map[string, *GraphicInfo]{},
		flowLocations:   &btree.Map[string, []*GraphicInfo]{},
		labelLocations:  &btree.Map[string, *GraphicInfo]{},
	}
}

func (m *Model) init() {
	if m.locations == nil {
		m.locations = &btree.Map[string, *GraphicInfo]{}
	}
	if m.flowLocations == nil {
		m.flowLocations = &btree.Map[string, []*GraphicInfo]{}
	}
	if m.labelLocations == nil {
		m.labelLocations = &btree.Map[string, *GraphicInfo]{}
	}
}

func (m *Model) AddNamespace(prefix, uri string) {
	if m.Namespaces == nil {
		m.Namespaces = map[string]string{}
	}
	m.Namespaces[prefix] = uri
}

func (m *Model) AddProcess(process *Process) {
	m.Processes = append(m.Processes, process)
}

// Process returns the process with the id.
func (m *Model) Process(id string) *Process {
	for _, process := range m.Processes {
		if process.Id == id {
			return process
		}
	}
	return nil
}

// MainProcess returns the process of the first pool, or the first process.
func (m *Model) MainProcess() *Process {
	if len(m.Pools) > 0 {
		if process := m.Process(m.Pools[0].ProcessRef); process != nil {
			return process
		}
	}
	if len(m.Processes) > 0 {
		return m.Processes[0]
	}
	return nil
}

func (m *Model) Pool(id string) *Pool {
	for _, pool := range m.Pools {
		if pool.Id == id {
			return pool
		}
	}
	return nil
}

// GetFlowElement searches every process, descending into sub processes.
func (m *Model) GetFlowElement(id string) FlowElement {
	for _, process := range m.Processes {
		if elem, _ := FindFlowElement(process, id); elem != nil {
			return elem
		}
	}
	return nil
}

// GetArtifact searches every process, descending into sub processes.
func (m *Model) GetArtifact(id string) Artifact {
	for _, process := range m.Processes {
		if artifact, _ := FindArtifact(process, id); artifact != nil {
			return artifact
		}
	}
	return nil
}

// ProcessOf returns the process that directly or indirectly owns the element.
func (m *Model) ProcessOf(id string) *Process {
	for _, process := range m.Processes {
		if elem, _ := FindFlowElement(process, id); elem != nil {
			return process
		}
		if artifact, _ := FindArtifact(process, id); artifact != nil {
			return process
		}
	}
	return nil
}

func (m *Model) AddMessageFlow(flow *MessageFlow) {
	for i, item := range m.messageFlows {
		if item.Id == flow.Id {
			m.messageFlows[i] = flow
			return
		}
	}
	m.messageFlows = append(m.messageFlows, flow)
}

// MessageFlows returns the message flows in insertion order.
func (m *Model) MessageFlows() []*MessageFlow {
	return m.messageFlows
}

func (m *Model) MessageFlow(id string) *MessageFlow {
	for _, flow := range m.messageFlows {
		if flow.Id == id {
			return flow
		}
	}
	return nil
}

func (m *Model) AddSignal(signal *Signal) {
	if signal == nil || m.ContainsSignal(signal.Id) {
		return
	}
	m.Signals = append(m.Signals, signal)
}

func (m *Model) ContainsSignal(id string) bool {
	for _, signal := range m.Signals {
		if signal.Id == id {
			return true
		}
	}
	return false
}

func (m *Model) AddMessage(message *Message) {
	if message == nil || m.ContainsMessage(message.Id) {
		return
	}
	m.Messages = append(m.Messages, message)
}

func (m *Model) ContainsMessage(id string) bool {
	for _, message := range m.Messages {
		if message.Id == id {
			return true
		}
	}
	return false
}

func (m *Model) AddEscalation(escalation *Escalation) {
	if escalation == nil {
		return
	}
	for _, item := range m.Escalations {
		if item.Id == escalation.Id {
			return
		}
	}
	m.Escalations = append(m.Escalations, escalation)
}

func (m *Model) AddDataStore(store *DataStore) {
	if m.DataStores == nil {
		m.DataStores = map[string]*DataStore{}
	}
	m.DataStores[store.Id] = store
}

func (m *Model) AddGraphicInfo(id string, info *GraphicInfo) {
	m.init()
	m.locations.Set(id, info)
}

// GetGraphicInfo returns the placement of a shape, nil when unknown.
func (m *Model) GetGraphicInfo(id string) *GraphicInfo {
	m.init()
	info, _ := m.locations.Get(id)
	return info
}

func (m *Model) RemoveGraphicInfo(id string) {
	m.init()
	m.locations.Delete(id)
}

// Locations calls fn for every placed shape in id order.
func (m *Model) Locations(fn func(id string, info *GraphicInfo) bool) {
	m.init()
	m.locations.Scan(fn)
}

func (m *Model) AddFlowGraphicInfoList(id string, infos []*GraphicInfo) {
	m.init()
	m.flowLocations.Set(id, infos)
}

// GetFlowLocationGraphicInfo returns the waypoints of an edge.
func (m *Model) GetFlowLocationGraphicInfo(id string) []*GraphicInfo {
	m.init()
	infos, _ := m.flowLocations.Get(id)
	return infos
}

// FlowLocations calls fn for every edge in id order.
func (m *Model) FlowLocations(fn func(id string, infos []*GraphicInfo) bool) {
	m.init()
	m.flowLocations.Scan(fn)
}

func (m *Model) AddLabelGraphicInfo(id string, info *GraphicInfo) {
	m.init()
	m.labelLocations.Set(id, info)
}

func (m *Model) GetLabelGraphicInfo(id string) *GraphicInfo {
	m.init()
	info, _ := m.labelLocations.Get(id)
	return info
}
