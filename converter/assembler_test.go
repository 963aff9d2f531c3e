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

package converter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/vine-io/flow-editor/bpmn"
	"github.com/vine-io/flow-editor/codec"
	"github.com/vine-io/flow-editor/dict"
	"github.com/vine-io/flow-editor/geometry"
)

func place(m *bpmn.Model, elem bpmn.Element, x, y, w, h float64) {
	m.AddGraphicInfo(elem.GetID(), &bpmn.GraphicInfo{X: x, Y: y, Width: w, Height: h})
}

func link(m *bpmn.Model, container bpmn.FlowElementsContainer, id string, source, target bpmn.FlowNode) *bpmn.SequenceFlow {
	flow := &bpmn.SequenceFlow{SourceRef: source.GetID(), TargetRef: target.GetID()}
	flow.SetID(id)
	container.AddFlowElement(flow)
	source.Node().Outgoing = append(source.Node().Outgoing, flow)
	target.Node().Incoming = append(target.Node().Incoming, flow)

	from, to := m.GetGraphicInfo(source.GetID()), m.GetGraphicInfo(target.GetID())
	m.AddFlowGraphicInfoList(id, []*bpmn.GraphicInfo{
		{X: from.X + from.Width/2, Y: from.Y + from.Height/2},
		{X: to.X + to.Width/2, Y: to.Y + to.Height/2},
	})
	return flow
}

// leaveModel is a review process: a user task guarded by a timer, and a
// gateway with a conditional and a default flow.
func leaveModel() *bpmn.Model {
	m := bpmn.NewModel()
	process := bpmn.NewProcess("leave")
	process.Name = "Leave"
	m.AddProcess(process)
	m.AddSignal(&bpmn.Signal{Id: "alert", Name: "Alert", Scope: bpmn.SignalScopeGlobal})

	start := bpmn.NewStartEvent()
	start.SetID("start")
	review := &bpmn.UserTask{Assignee: "kermit", CandidateGroups: []string{"hr"}}
	review.SetID("review")
	review.SetName("Review")
	decide := &bpmn.ExclusiveGateway{}
	decide.SetID("decide")
	approved := &bpmn.EndEvent{}
	approved.SetID("approved")
	rejected := &bpmn.EndEvent{}
	rejected.SetID("rejected")
	timeout := bpmn.NewBoundaryEvent()
	timeout.SetID("timeout")
	timeout.AttachedToRefID = review.Id
	timeout.AttachedTo = review
	timeout.AddEventDefinition(&bpmn.TimerEventDefinition{TimeDuration: "PT1H"})
	review.BoundaryEvents = append(review.BoundaryEvents, timeout)
	escalated := &bpmn.EndEvent{}
	escalated.SetID("escalated")

	for _, elem := range []bpmn.FlowElement{start, review, decide, approved, rejected, timeout, escalated} {
		process.AddFlowElement(elem)
	}
	place(m, start, 100, 145, 30, 30)
	place(m, review, 200, 120, 100, 80)
	place(m, decide, 350, 140, 40, 40)
	place(m, approved, 450, 146, 28, 28)
	place(m, rejected, 450, 246, 28, 28)
	place(m, timeout, 270, 185, 30, 30)
	place(m, escalated, 271, 300, 28, 28)

	link(m, process, "toReview", start, review)
	link(m, process, "toDecide", review, decide)
	ok := link(m, process, "toApproved", decide, approved)
	ok.ConditionExpression = "${approved}"
	link(m, process, "toRejected", decide, rejected)
	decide.DefaultFlow = "toRejected"
	link(m, process, "toEscalated", timeout, escalated)
	return m
}

// reparse runs a document through its text form.
func reparse(t *testing.T, doc codec.Node) codec.Node {
	data, err := codec.Marshal(doc)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	out, err := codec.Parse(data)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	return out
}

func node(id, stencil string, x, y, w, h float64, outgoing ...string) codec.Node {
	shape := codec.NewShape(id, stencil, x+w, y+h, x, y)
	shape[dict.EditorOutgoing] = []interface{}{}
	for _, ref := range outgoing {
		codec.AppendOutgoing(shape, ref)
	}
	return shape
}

func edge(id, stencil, target string, dockers ...geometry.Point) codec.Node {
	shape := codec.NewShape(id, stencil, 0, 0, 0, 0)
	shape[dict.EditorTarget] = codec.ResourceRef(target)
	shape[dict.EditorOutgoing] = []interface{}{codec.ResourceRef(target)}
	items := make([]interface{}, 0, len(dockers))
	for _, p := range dockers {
		items = append(items, codec.NewPoint(p.X, p.Y))
	}
	shape[dict.EditorDockers] = items
	return shape
}

func document(children ...codec.Node) codec.Node {
	root := codec.NewShape(dict.CanvasResourceID, dict.StencilDiagram, 1485, 700, 0, 0)
	for _, child := range children {
		codec.AppendChild(root, child)
	}
	return root
}

func TestRoundTrip(t *testing.T) {
	c := New()
	doc, result := c.ToJSON(leaveModel())
	assert.Equal(t, 0, len(result.Diagnostics), "%v", result.Diagnostics)

	m, result := c.ToDomain(reparse(t, doc))
	assert.False(t, result.Failed(), "%v", result.Diagnostics)

	process := m.MainProcess()
	if !assert.NotNil(t, process) {
		return
	}
	assert.Equal(t, "leave", process.Id)
	assert.Equal(t, "Leave", process.Name)
	assert.Len(t, process.FlowElements(), 12)

	review, ok := m.GetFlowElement("review").(*bpmn.UserTask)
	if !assert.True(t, ok) {
		return
	}
	assert.Equal(t, "Review", review.Name)
	assert.Equal(t, "kermit", review.Assignee)
	assert.Equal(t, []string{"hr"}, review.CandidateGroups)
	assert.Len(t, review.Incoming, 1)
	assert.Len(t, review.Outgoing, 1)

	timeout, ok := m.GetFlowElement("timeout").(*bpmn.BoundaryEvent)
	if assert.True(t, ok) {
		assert.Equal(t, "review", timeout.AttachedToRefID)
		assert.Equal(t, bpmn.Activity(review), timeout.AttachedTo)
		assert.Len(t, review.BoundaryEvents, 1)
		timer, ok := bpmn.SingleDefinition(timeout).(*bpmn.TimerEventDefinition)
		if assert.True(t, ok) {
			assert.Equal(t, "PT1H", timer.TimeDuration)
		}
	}

	decide, ok := m.GetFlowElement("decide").(*bpmn.ExclusiveGateway)
	if assert.True(t, ok) {
		assert.Equal(t, "toRejected", decide.DefaultFlow)
		assert.Len(t, decide.Outgoing, 2)
	}
	flow, ok := m.GetFlowElement("toApproved").(*bpmn.SequenceFlow)
	if assert.True(t, ok) {
		assert.Equal(t, "decide", flow.SourceRef)
		assert.Equal(t, "approved", flow.TargetRef)
		assert.Equal(t, "${approved}", flow.ConditionExpression)
		assert.False(t, flow.Extensions.Has(dict.ExtensionResourceID))
	}

	info := m.GetGraphicInfo("review")
	if assert.NotNil(t, info) {
		assert.InDelta(t, 200, info.X, 0.001)
		assert.InDelta(t, 120, info.Y, 0.001)
		assert.InDelta(t, 100, info.Width, 0.001)
	}
	assert.Len(t, m.GetFlowLocationGraphicInfo("toDecide"), 2)

	if assert.Len(t, m.Signals, 1) {
		assert.Equal(t, bpmn.Signal{Id: "alert", Name: "Alert", Scope: bpmn.SignalScopeGlobal}, *m.Signals[0])
	}
}

func TestIdempotent(t *testing.T) {
	c := New()
	doc, result := c.ToJSON(leaveModel())
	assert.False(t, result.Failed(), "%v", result.Diagnostics)

	m, result := c.ToDomain(reparse(t, doc))
	assert.False(t, result.Failed(), "%v", result.Diagnostics)
	again, result := c.ToJSON(m)
	assert.False(t, result.Failed(), "%v", result.Diagnostics)

	if diff := cmp.Diff(reparse(t, doc), reparse(t, again)); diff != "" {
		t.Errorf("document changed after a round trip (-want +got):\n%s", diff)
	}
}

func TestSubProcessInLaneRoundTrip(t *testing.T) {
	sub := node("sub", dict.StencilSubProcess, 150, 25, 300, 200)
	codec.AppendChild(sub, node("s2", dict.StencilEventStartNone, 20, 40, 30, 30, "f2"))
	codec.AppendChild(sub, edge("f2", dict.StencilSequenceFlow, "e2", geometry.Point{X: 15, Y: 15}, geometry.Point{X: 14, Y: 14}))
	codec.AppendChild(sub, node("e2", dict.StencilEventEndNone, 150, 41, 28, 28))

	lane := node("lane1", dict.StencilLane, 30, 0, 570, 300)
	codec.AppendChild(lane, node("s", dict.StencilEventStartNone, 50, 50, 30, 30, "f1"))
	codec.AppendChild(lane, edge("f1", dict.StencilSequenceFlow, "sub", geometry.Point{X: 15, Y: 15}, geometry.Point{X: 150, Y: 100}))
	codec.AppendChild(lane, sub)

	pool := node("pool1", dict.StencilPool, 0, 0, 600, 300)
	codec.ShapeProperties(pool)[dict.PropertyProcessID] = "hire"
	codec.AppendChild(pool, lane)

	c := New()
	m, result := c.ToDomain(document(pool))
	assert.False(t, result.Failed(), "%v", result.Diagnostics)

	process := m.Process("hire")
	if !assert.NotNil(t, process) {
		return
	}
	flow, container := bpmn.FindFlowElement(process, "f2")
	if assert.NotNil(t, flow) && assert.NotNil(t, container) {
		assert.Equal(t, "sub", container.GetID())
	}
	if assert.Len(t, process.Lanes, 1) {
		assert.Subset(t, process.Lanes[0].FlowReferences, []string{"s", "sub", "f1"})
	}

	doc, result := c.ToJSON(m)
	assert.False(t, result.Failed(), "%v", result.Diagnostics)
	back, result := c.ToDomain(reparse(t, doc))
	assert.False(t, result.Failed(), "%v", result.Diagnostics)
	again, result := c.ToJSON(back)
	assert.False(t, result.Failed(), "%v", result.Diagnostics)

	if diff := cmp.Diff(reparse(t, doc), reparse(t, again)); diff != "" {
		t.Errorf("document changed after a round trip (-want +got):\n%s", diff)
	}
}

func TestToJSONShapes(t *testing.T) {
	doc, _ := New().ToJSON(leaveModel())

	assert.Equal(t, dict.CanvasResourceID, codec.ResourceID(doc))
	assert.Equal(t, "leave", codec.String(dict.PropertyProcessID, doc))
	_, lowerRight := codec.Bounds(doc)
	assert.Equal(t, geometry.Point{X: dict.CanvasMinWidth, Y: dict.CanvasMinHeight}, lowerRight)

	byID := map[string]codec.Node{}
	for _, shape := range codec.ChildShapes(doc) {
		byID[codec.ResourceID(shape)] = shape
	}

	review := byID["review"]
	assert.Equal(t, dict.StencilTaskUser, codec.StencilID(review))
	assert.Equal(t, []string{"toDecide", "timeout"}, codec.Outgoing(review))

	timeout := byID["timeout"]
	assert.Equal(t, dict.StencilEventBoundaryTimer, codec.StencilID(timeout))
	assert.Equal(t, []geometry.Point{{X: 85, Y: 80}}, codec.Dockers(timeout))

	flow := byID["toRejected"]
	assert.Equal(t, "decide", codec.ElementID(byID["decide"]))
	assert.True(t, codec.GetBool(dict.PropertySequenceflowDefault, flow, false))
	assert.Equal(t, "rejected", codec.TargetID(flow))
	assert.Equal(t, []geometry.Point{{X: 20, Y: 20}, {X: 14, Y: 14}}, codec.Dockers(flow))
}

func TestToJSONEmptyModel(t *testing.T) {
	doc, result := New().ToJSON(bpmn.NewModel())
	assert.Empty(t, result.Diagnostics)
	assert.Equal(t, defaultProcessID, codec.String(dict.PropertyProcessID, doc))
	assert.True(t, codec.HasChildShapes(doc))
	assert.Len(t, codec.ChildShapes(doc), 0)

	m, result := New().ToDomain(codec.Node{})
	assert.Empty(t, result.Diagnostics)
	assert.Len(t, m.Processes, 0)
	assert.Equal(t, dict.DefaultTargetNS, m.TargetNamespace)
}

func TestUnplacedElement(t *testing.T) {
	m := leaveModel()
	m.RemoveGraphicInfo("approved")

	doc, result := New().ToJSON(m)
	assert.True(t, result.Failed())
	ids := map[string]bool{}
	for _, item := range result.Diagnostics {
		ids[item.ElementID] = true
	}
	assert.True(t, ids["approved"])
	assert.True(t, ids["toApproved"], "the flow into it is left out as well")
	assert.Len(t, codec.ChildShapes(doc), 10)
}

func TestSubProcessCoordinates(t *testing.T) {
	for _, collapsed := range []bool{false, true} {
		m := bpmn.NewModel()
		process := bpmn.NewProcess("p")
		m.AddProcess(process)

		sub := &bpmn.SubProcess{}
		sub.SetID("sub")
		inner := &bpmn.ManualTask{}
		inner.SetID("inner")
		sub.AddFlowElement(inner)
		process.AddFlowElement(sub)

		place(m, sub, 100, 100, 300, 200)
		place(m, inner, 150, 130, 100, 80)
		if collapsed {
			m.GetGraphicInfo("sub").SetExpanded(false)
		}

		c := New()
		doc, result := c.ToJSON(m)
		assert.False(t, result.Failed())

		shapes := codec.ChildShapes(doc)
		if !assert.Len(t, shapes, 1) {
			return
		}
		children := codec.ChildShapes(shapes[0])
		if !assert.Len(t, children, 1) {
			return
		}
		upperLeft, _ := codec.Bounds(children[0])
		if collapsed {
			assert.Equal(t, dict.StencilCollapsedSubProcess, codec.StencilID(shapes[0]))
			assert.Equal(t, geometry.Point{X: 150, Y: 130}, upperLeft, "collapsed children keep their own diagram")
		} else {
			assert.Equal(t, dict.StencilSubProcess, codec.StencilID(shapes[0]))
			assert.Equal(t, geometry.Point{X: 50, Y: 30}, upperLeft)
		}

		back, result := c.ToDomain(reparse(t, doc))
		assert.False(t, result.Failed())
		info := back.GetGraphicInfo("inner")
		if assert.NotNil(t, info) {
			assert.Equal(t, 150.0, info.X)
			assert.Equal(t, 130.0, info.Y)
		}
		assert.Equal(t, collapsed, back.GetGraphicInfo("sub").Collapsed())
		_, container := bpmn.FindFlowElement(back.MainProcess(), "inner")
		if assert.NotNil(t, container) {
			assert.Equal(t, "sub", container.GetID())
		}
	}
}

func TestUnknownStencil(t *testing.T) {
	doc := document(
		node("start", dict.StencilEventStartNone, 0, 0, 30, 30),
		node("odd", "NoSuchStencil", 100, 0, 100, 80),
	)

	m, result := New().ToDomain(doc)
	assert.True(t, result.Failed())
	if assert.Len(t, result.Diagnostics, 1) {
		assert.Equal(t, LevelError, result.Diagnostics[0].Level)
		assert.Equal(t, "odd", result.Diagnostics[0].ElementID)
	}
	assert.NotNil(t, m.GetFlowElement("start"))
	assert.Nil(t, m.GetFlowElement("odd"))
}

func TestMissingResourceID(t *testing.T) {
	task := node("", dict.StencilTaskManual, 0, 0, 100, 80)
	doc := document(task)

	m, result := New().ToDomain(doc)
	assert.False(t, result.Failed())

	id := codec.ResourceID(task)
	assert.Regexp(t, "^sid-", id)
	assert.NotNil(t, m.GetFlowElement(id))
}

func TestFlowWithoutSource(t *testing.T) {
	doc := document(
		node("a", dict.StencilTaskManual, 0, 0, 100, 80),
		node("b", dict.StencilTaskManual, 200, 0, 100, 80),
		edge("f", dict.StencilSequenceFlow, "b", geometry.Point{X: 50, Y: 40}, geometry.Point{X: 50, Y: 40}),
	)

	m, result := New().ToDomain(doc)
	assert.True(t, result.Failed())
	assert.Nil(t, m.GetFlowElement("f"))
	assert.NotNil(t, m.GetFlowElement("a"))
}

func TestBoundaryHost(t *testing.T) {
	doc := document(
		node("start", dict.StencilEventStartNone, 0, 0, 30, 30, "onStart"),
		node("onStart", dict.StencilEventBoundaryTimer, 15, 15, 30, 30),
		node("loose", dict.StencilEventBoundarySignal, 200, 200, 30, 30),
	)

	m, result := New().ToDomain(doc)
	assert.False(t, result.Failed())
	assert.Equal(t, 2, result.Count(LevelWarn))

	onStart, ok := m.GetFlowElement("onStart").(*bpmn.BoundaryEvent)
	if assert.True(t, ok) {
		assert.Equal(t, "start", onStart.AttachedToRefID)
		assert.Nil(t, onStart.AttachedTo)
	}
	loose, ok := m.GetFlowElement("loose").(*bpmn.BoundaryEvent)
	if assert.True(t, ok) {
		assert.Equal(t, "", loose.AttachedToRefID)
	}
}

func TestGatewayFlowOrder(t *testing.T) {
	gateway := node("g", dict.StencilGatewayExclusive, 100, 0, 40, 40, "f1", "f2")
	codec.ShapeProperties(gateway)[dict.PropertySequenceflowOrder] = codec.Node{
		dict.ValueSequenceFlowOrder: []interface{}{"f2", "f1"},
	}
	doc := document(
		node("s", dict.StencilEventStartNone, 0, 5, 30, 30, "f0"),
		gateway,
		node("e1", dict.StencilEventEndNone, 200, 0, 28, 28),
		node("e2", dict.StencilEventEndNone, 200, 100, 28, 28),
		edge("f0", dict.StencilSequenceFlow, "g", geometry.Point{X: 15, Y: 15}, geometry.Point{X: 20, Y: 20}),
		edge("f1", dict.StencilSequenceFlow, "e1", geometry.Point{X: 20, Y: 20}, geometry.Point{X: 14, Y: 14}),
		edge("f2", dict.StencilSequenceFlow, "e2", geometry.Point{X: 20, Y: 20}, geometry.Point{X: 14, Y: 14}),
	)

	m, result := New().ToDomain(doc)
	assert.False(t, result.Failed())

	g, ok := m.GetFlowElement("g").(*bpmn.ExclusiveGateway)
	if !assert.True(t, ok) {
		return
	}
	outgoing := make([]string, 0)
	for _, flow := range g.Outgoing {
		outgoing = append(outgoing, flow.Id)
	}
	assert.Equal(t, []string{"f2", "f1"}, outgoing)
	assert.False(t, g.Extensions.Has(dict.ExtensionFlowOrder))

	ids := make([]string, 0)
	for _, elem := range m.MainProcess().FlowElements() {
		ids = append(ids, elem.GetID())
	}
	assert.Equal(t, []string{"s", "g", "e1", "e2", "f0", "f2", "f1"}, ids)
}

func TestFlowReparented(t *testing.T) {
	sub := node("sub", dict.StencilSubProcess, 100, 0, 300, 200)
	codec.AppendChild(sub, node("a", dict.StencilTaskManual, 20, 20, 100, 80, "f"))
	codec.AppendChild(sub, node("b", dict.StencilTaskManual, 180, 20, 100, 80))
	doc := document(
		sub,
		edge("f", dict.StencilSequenceFlow, "b", geometry.Point{X: 50, Y: 40}, geometry.Point{X: 50, Y: 40}),
	)

	m, result := New().ToDomain(doc)
	assert.False(t, result.Failed())

	_, container := bpmn.FindFlowElement(m.MainProcess(), "f")
	if assert.NotNil(t, container) {
		assert.Equal(t, "sub", container.GetID())
	}
	_, top := m.MainProcess().GetFlowElement("f")
	assert.False(t, top)
}

func TestDataAssociation(t *testing.T) {
	store := node("ds", dict.StencilDataStore, 0, 0, 60, 60, "read")
	codec.ShapeProperties(store)[dict.PropertyDataStoreRef] = "orders"
	codec.ShapeProperties(store)[dict.PropertyDataStoreName] = "Orders"
	doc := document(
		store,
		node("t", dict.StencilTaskService, 200, 0, 100, 80),
		edge("read", dict.StencilDataAssociation, "t", geometry.Point{X: 30, Y: 30}, geometry.Point{X: 50, Y: 40}),
	)

	m, result := New().ToDomain(doc)
	assert.False(t, result.Failed(), "%v", result.Diagnostics)

	task, ok := m.GetFlowElement("t").(bpmn.Activity)
	if !assert.True(t, ok) {
		return
	}
	inputs := task.Activity().DataInputAssociations
	if assert.Len(t, inputs, 1) {
		assert.Equal(t, bpmn.DataAssociation{Id: "read", SourceRef: "ds", TargetRef: "t"}, *inputs[0])
	}
	if assert.Contains(t, m.DataStores, "orders") {
		assert.Equal(t, "Orders", m.DataStores["orders"].Name)
	}

	out, _ := New().ToJSON(m)
	stencils := map[string]int{}
	for _, shape := range codec.ChildShapes(out) {
		stencils[codec.StencilID(shape)]++
	}
	assert.Equal(t, 1, stencils[dict.StencilDataAssociation])
}

func TestStubDefinitions(t *testing.T) {
	catch := node("wait", dict.StencilEventCatchSignal, 0, 0, 30, 30)
	codec.ShapeProperties(catch)[dict.PropertySignalref] = "go"
	doc := document(catch)

	m, result := New().ToDomain(doc)
	assert.False(t, result.Failed())
	assert.True(t, m.ContainsSignal("go"))
}

func TestPools(t *testing.T) {
	lane := node("lane1", dict.StencilLane, 30, 0, 570, 250)
	codec.AppendChild(lane, node("s", dict.StencilEventStartNone, 50, 50, 30, 30, "f1"))
	codec.AppendChild(lane, node("t", dict.StencilTaskUser, 150, 25, 100, 80))
	codec.AppendChild(lane, edge("f1", dict.StencilSequenceFlow, "t", geometry.Point{X: 15, Y: 15}, geometry.Point{X: 50, Y: 40}))
	pool := node("pool1", dict.StencilPool, 0, 0, 600, 250)
	codec.ShapeProperties(pool)[dict.PropertyProcessID] = "hire"
	codec.ShapeProperties(pool)[dict.PropertyName] = "Hiring"
	codec.AppendChild(pool, lane)

	c := New()
	m, result := c.ToDomain(document(pool))
	assert.False(t, result.Failed(), "%v", result.Diagnostics)

	if !assert.Len(t, m.Pools, 1) {
		return
	}
	assert.Equal(t, "hire", m.Pools[0].ProcessRef)
	process := m.Process("hire")
	if !assert.NotNil(t, process) {
		return
	}
	assert.Equal(t, "Hiring", process.Name)
	assert.Len(t, process.FlowElements(), 3)
	if assert.Len(t, process.Lanes, 1) {
		assert.ElementsMatch(t, []string{"s", "t", "f1"}, process.Lanes[0].FlowReferences)
	}

	info := m.GetGraphicInfo("t")
	if assert.NotNil(t, info) {
		assert.Equal(t, 180.0, info.X)
		assert.Equal(t, 25.0, info.Y)
	}

	doc, result := c.ToJSON(m)
	assert.False(t, result.Failed(), "%v", result.Diagnostics)
	shapes := codec.ChildShapes(doc)
	if !assert.Len(t, shapes, 1) {
		return
	}
	assert.Equal(t, dict.StencilPool, codec.StencilID(shapes[0]))
	lanes := codec.ChildShapes(shapes[0])
	if !assert.Len(t, lanes, 1) {
		return
	}
	children := codec.ChildShapes(lanes[0])
	assert.Len(t, children, 3)
	upperLeft, _ := codec.Bounds(children[1])
	assert.Equal(t, geometry.Point{X: 150, Y: 25}, upperLeft)
}

func TestCanvasGrows(t *testing.T) {
	m := leaveModel()
	far := &bpmn.EndEvent{}
	far.SetID("far")
	m.MainProcess().AddFlowElement(far)
	place(m, far, 2000, 900, 28, 28)

	doc, _ := New().ToJSON(m)
	_, lowerRight := codec.Bounds(doc)
	assert.Equal(t, geometry.Point{X: 2078, Y: 978}, lowerRight)
}

func TestContextIsValue(t *testing.T) {
	process := bpmn.NewProcess("p")
	base := Context{model: bpmn.NewModel()}
	child := base.WithContainer(process).WithOffset(10, 20)

	assert.Nil(t, base.Container())
	assert.Equal(t, geometry.Point{}, base.Offset())
	assert.Equal(t, bpmn.FlowElementsContainer(process), child.Container())
	assert.Equal(t, geometry.Point{X: 10, Y: 20}, child.Offset())
	assert.Equal(t, NopResolver{}, base.Resolver())
}
