package bpmn

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder(t *testing.T) {
	task := &UserTask{}
	task.SetID("review")

	m, err := NewBuilder("leave").
		Start().
		AppendElem(task).
		End().
		Out()
	if !assert.NoError(t, err) {
		return
	}

	process := m.MainProcess()
	if !assert.NotNil(t, process) {
		return
	}
	assert.Equal(t, "leave", process.Name)
	assert.Len(t, process.FlowElements(), 5, "three nodes and two flows")
	assert.Len(t, task.Incoming, 1)
	assert.Len(t, task.Outgoing, 1)

	info := m.GetGraphicInfo("review")
	if assert.NotNil(t, info) {
		assert.Equal(t, 100.0, info.Width)
		assert.Equal(t, 80.0, info.Height)
	}
	assert.Len(t, m.GetFlowLocationGraphicInfo(task.Outgoing[0].Id), 2)

	assert.NoError(t, m.Validate())
}

func TestBuilderDuplicate(t *testing.T) {
	first := &UserTask{}
	first.SetID("task")
	second := &ScriptTask{}
	second.SetID("task")

	_, err := NewBuilder("dup").Start().AppendElem(first).AppendElem(second).Out()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	m := NewModel()
	process := NewProcess("p1")
	m.AddProcess(process)

	task := &UserTask{}
	task.SetID("task")
	process.AddFlowElement(task)

	flow := &SequenceFlow{SourceRef: "task", TargetRef: "missing"}
	flow.SetID("flow")
	process.AddFlowElement(flow)

	m.AddSignal(&Signal{Id: "s1", Scope: "nowhere"})

	err := m.Validate()
	if !assert.Error(t, err) {
		return
	}
	assert.True(t, strings.Contains(err.Error(), "missing"))
	assert.True(t, strings.Contains(err.Error(), "signals[0]"))
}

func TestValidateDuplicateInSubProcess(t *testing.T) {
	m := NewModel()
	process := NewProcess("p1")
	m.AddProcess(process)

	task := &UserTask{}
	task.SetID("task")
	process.AddFlowElement(task)

	sub := &SubProcess{}
	sub.SetID("sub")
	inner := &ManualTask{}
	inner.SetID("task")
	sub.AddFlowElement(inner)
	process.AddFlowElement(sub)

	err := m.Validate()
	if assert.Error(t, err) {
		assert.True(t, strings.Contains(err.Error(), errDuplicateID.Error()))
	}
}

func TestFindFlowElement(t *testing.T) {
	process := NewProcess("p1")
	sub := &SubProcess{}
	sub.SetID("sub")
	inner := &ManualTask{}
	inner.SetID("inner")
	sub.AddFlowElement(inner)
	process.AddFlowElement(sub)

	elem, container := FindFlowElement(process, "inner")
	assert.Equal(t, inner, elem)
	assert.Equal(t, FlowElementsContainer(sub), container)

	elem, container = FindFlowElement(process, "none")
	assert.Nil(t, elem)
	assert.Nil(t, container)
}

func TestDefaultFlow(t *testing.T) {
	gateway := &ExclusiveGateway{}
	assert.True(t, SetDefaultFlow(gateway, "f1"))
	assert.Equal(t, "f1", DefaultFlowOf(gateway))

	task := &UserTask{}
	assert.True(t, SetDefaultFlow(task, "f2"))
	assert.Equal(t, "f2", DefaultFlowOf(task))

	event := NewStartEvent()
	assert.False(t, SetDefaultFlow(event, "f3"))
	assert.Equal(t, "", DefaultFlowOf(event))
}

func TestExtensions(t *testing.T) {
	var x Extensions
	x.Add(&ExtensionElement{Name: "order", Text: "a"})
	x.Add(&ExtensionElement{Name: "order", Text: "b"})
	x.Add(&ExtensionElement{Name: "level", Text: "full"})

	assert.True(t, x.Has("order"))
	assert.Len(t, x.Get("order"), 2)
	assert.Equal(t, "full", x.Value("level"))

	x.Remove("order")
	assert.False(t, x.Has("order"))
	assert.Equal(t, 1, x.Len())
}

func TestCollapsed(t *testing.T) {
	var info *GraphicInfo
	assert.False(t, info.Collapsed())

	info = &GraphicInfo{}
	assert.False(t, info.Collapsed())
	info.SetExpanded(false)
	assert.True(t, info.Collapsed())
	info.SetExpanded(true)
	assert.False(t, info.Collapsed())
}

func TestWriteToBytes(t *testing.T) {
	m, err := NewBuilder("xml").Start().End().Out()
	if !assert.NoError(t, err) {
		return
	}

	data, err := m.WriteToBytes()
	if !assert.NoError(t, err) {
		return
	}
	text := string(data)
	assert.True(t, strings.Contains(text, "startEvent"))
	assert.True(t, strings.Contains(text, "sequenceFlow"))
	assert.True(t, strings.Contains(text, "BPMNShape"))
}
