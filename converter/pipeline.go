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
	"github.com/google/uuid"
	"github.com/vine-io/flow-editor/bpmn"
	"github.com/vine-io/flow-editor/codec"
	"github.com/vine-io/flow-editor/dict"
	"github.com/vine-io/flow-editor/geometry"
	log "github.com/vine-io/vine/lib/logger"
)

// ToDomain returns the model of an editor document. A shape without a
// resource id gets a generated one written back into doc. Elements that
// cannot be converted are left out and reported in the result.
func (c *Converter) ToDomain(doc codec.Node) (*bpmn.Model, Result) {
	a := &assembly{diag: &Diagnostics{}}
	model := bpmn.NewModel()
	model.TargetNamespace = c.opts.TargetNamespace
	if !codec.HasChildShapes(doc) {
		return model, Result{Diagnostics: a.diag.Items()}
	}

	index := readShapeDI(doc, model)
	edges := filterAllEdges(doc)
	graphics := readEdgeDI(edges, index, model, a.diag)
	log.Debugf("document has %d shapes, %d edges, %d placed", len(index.shapes), len(edges.items), len(graphics))

	ctx := c.context(model, a)
	ctx.index = index
	layout := readPools(ctx, doc)

	parseDefinitions(doc, model)
	validateDefinitions(model, a.diag)

	if layout.pooled() {
		for _, pool := range layout.pools {
			parseProcessDetails(doc, pool.process)
			for _, lane := range pool.lanes {
				a.shapesToDomain(ctx.WithContainer(pool.process).WithLane(lane.lane), codec.ChildShapes(lane.shape))
			}
		}
		a.shapesToDomain(ctx.WithContainer(layout.pools[0].process), codec.ChildShapes(doc))
	} else {
		process := parseProcess(doc, model)
		model.AddProcess(process)
		a.shapesToDomain(ctx.WithContainer(process), codec.ChildShapes(doc))
	}
	a.connect(layout)

	for _, process := range model.Processes {
		reparentFlows(process)
	}
	postProcess(model, edges, a.diag)

	return model, Result{Diagnostics: a.diag.Items()}
}

// shapeIndex is the first stage: every shape by resource id and, for every
// outgoing reference, the first node shape listing it.
type shapeIndex struct {
	shapes  map[string]codec.Node
	sources map[string]codec.Node
}

// readShapeDI indexes the document and records the absolute placement of
// every node shape. Children of a collapsed sub process are drawn on their
// own canvas and keep their coordinates.
func readShapeDI(doc codec.Node, model *bpmn.Model) *shapeIndex {
	index := &shapeIndex{
		shapes:  map[string]codec.Node{},
		sources: map[string]codec.Node{},
	}
	index.read(doc, model, geometry.Point{})
	return index
}

func (x *shapeIndex) read(parent codec.Node, model *bpmn.Model, origin geometry.Point) {
	for _, shape := range codec.ChildShapes(parent) {
		if len(codec.ResourceID(shape)) == 0 {
			shape[dict.EditorShapeID] = "sid-" + uuid.NewString()
		}
		x.shapes[codec.ResourceID(shape)] = shape

		stencil := codec.StencilID(shape)
		if isConnector(stencil) {
			continue
		}

		upperLeft, lowerRight := codec.Bounds(shape)
		at := upperLeft.Add(origin)
		model.AddGraphicInfo(codec.ElementID(shape), &bpmn.GraphicInfo{
			X:      at.X,
			Y:      at.Y,
			Width:  lowerRight.X - upperLeft.X,
			Height: lowerRight.Y - upperLeft.Y,
		})
		for _, id := range codec.Outgoing(shape) {
			if _, ok := x.sources[id]; !ok {
				x.sources[id] = shape
			}
		}

		if stencil == dict.StencilCollapsedSubProcess {
			x.read(shape, model, geometry.Point{})
		} else {
			x.read(shape, model, at)
		}
	}
}

// edgeSet is the second stage: every connector of the document, wherever it
// is nested.
type edgeSet struct {
	items     []codec.Node
	byElement map[string]codec.Node
}

func filterAllEdges(doc codec.Node) *edgeSet {
	edges := &edgeSet{byElement: map[string]codec.Node{}}
	edges.collect(doc)
	return edges
}

func (e *edgeSet) collect(parent codec.Node) {
	for _, shape := range codec.ChildShapes(parent) {
		switch stencil := codec.StencilID(shape); stencil {
		case dict.StencilSubProcess, dict.StencilCollapsedSubProcess, dict.StencilEventSubProcess,
			dict.StencilAdhocSubProcess, dict.StencilPool, dict.StencilLane:
			e.collect(shape)
		default:
			if isConnector(stencil) {
				e.items = append(e.items, shape)
				e.byElement[codec.ElementID(shape)] = shape
			}
		}
	}
}

// edgeGraphics is the third stage: the computed placement of each edge by
// element id.
type edgeGraphics map[string]*geometry.EdgeGraphics

// readEdgeDI computes the waypoints of every edge whose ends are known.
func readEdgeDI(edges *edgeSet, index *shapeIndex, model *bpmn.Model, diag *Diagnostics) edgeGraphics {
	graphics := edgeGraphics{}
	for _, edge := range edges.items {
		id := codec.ElementID(edge)
		source := index.sources[codec.ResourceID(edge)]
		target := index.shapes[codec.TargetID(edge)]
		if source == nil || target == nil {
			diag.Infof(id, "edge has no source or target shape, placement skipped")
			continue
		}

		g := geometry.ComputeEdge(codec.Dockers(edge), anchorOf(model, source), anchorOf(model, target))
		if g == nil {
			diag.Infof(id, "edge has less than two dockers, placement skipped")
			continue
		}
		waypoints := make([]*bpmn.GraphicInfo, 0, len(g.Waypoints))
		for _, p := range g.Waypoints {
			waypoints = append(waypoints, &bpmn.GraphicInfo{X: p.X, Y: p.Y})
		}
		model.AddFlowGraphicInfoList(id, waypoints)
		graphics[id] = g
	}
	return graphics
}

func anchorOf(model *bpmn.Model, shape codec.Node) geometry.Anchor {
	anchor := geometry.Anchor{Kind: geometry.Classify(codec.StencilID(shape))}
	if info := model.GetGraphicInfo(codec.ElementID(shape)); info != nil {
		anchor.Bounds = geometry.Rect{X: info.X, Y: info.Y, Width: info.Width, Height: info.Height}
	}
	return anchor
}

// laneLayout is the fourth stage: the pools of the document with their
// processes and lanes, and the lane every element is drawn in.
type laneLayout struct {
	pools []*poolLayout
	lanes map[string]*bpmn.Lane
}

type poolLayout struct {
	pool    *bpmn.Pool
	process *bpmn.Process
	lanes   []drawnLane
}

type drawnLane struct {
	lane  *bpmn.Lane
	shape codec.Node
}

func (l *laneLayout) pooled() bool {
	return l != nil && len(l.pools) > 0
}

// readPools builds the pools, their processes and lanes. Elements are
// converted later, lane membership is known before that.
func readPools(ctx Context, doc codec.Node) *laneLayout {
	layout := &laneLayout{lanes: map[string]*bpmn.Lane{}}
	for _, shape := range codec.ChildShapes(doc) {
		if codec.StencilID(shape) != dict.StencilPool {
			continue
		}
		elem, err := safeToDomain(poolConverter, ctx, shape)
		if err != nil {
			ctx.Diagnostics().Errorf(codec.ResourceID(shape), "%v", err)
			continue
		}
		pool := elem.(*bpmn.Pool)
		item := &poolLayout{pool: pool, process: ctx.Model().Process(pool.ProcessRef)}

		for _, child := range codec.ChildShapes(shape) {
			if codec.StencilID(child) != dict.StencilLane {
				continue
			}
			elem, err := safeToDomain(laneConverter, ctx.WithContainer(item.process), child)
			if err != nil {
				ctx.Diagnostics().Errorf(codec.ResourceID(child), "%v", err)
				continue
			}
			lane := elem.(*bpmn.Lane)
			item.lanes = append(item.lanes, drawnLane{lane: lane, shape: child})
			layout.member(child, lane)
		}
		layout.pools = append(layout.pools, item)
	}
	return layout
}

// member records the lane of every node drawn inside parent, nested ones
// included.
func (l *laneLayout) member(parent codec.Node, lane *bpmn.Lane) {
	for _, shape := range codec.ChildShapes(parent) {
		if isConnector(codec.StencilID(shape)) {
			continue
		}
		l.lanes[codec.ElementID(shape)] = lane
		l.member(shape, lane)
	}
}

// validateDefinitions reports root definitions the model cannot use.
func validateDefinitions(model *bpmn.Model, diag *Diagnostics) {
	for _, signal := range model.Signals {
		if err := signal.Validate(); err != nil {
			diag.Warnf(signal.Id, "signal: %v", err)
		}
	}
	for _, escalation := range model.Escalations {
		if err := escalation.Validate(); err != nil {
			diag.Warnf(escalation.Id, "escalation: %v", err)
		}
	}
}

// reparentFlows moves every sequence flow into the container holding its
// source. The editor may draw a flow outside of the sub process it belongs to.
func reparentFlows(process *bpmn.Process) {
	owners := map[string]bpmn.FlowElementsContainer{}
	collectOwners(process, owners)
	moveFlows(process, owners)
}

func collectOwners(container bpmn.FlowElementsContainer, owners map[string]bpmn.FlowElementsContainer) {
	for _, elem := range container.FlowElements() {
		owners[elem.GetID()] = container
		if sub, ok := elem.(bpmn.SubProcessElement); ok {
			collectOwners(sub, owners)
		}
	}
}

func moveFlows(container bpmn.FlowElementsContainer, owners map[string]bpmn.FlowElementsContainer) {
	elems := append([]bpmn.FlowElement(nil), container.FlowElements()...)
	for _, elem := range elems {
		switch v := elem.(type) {
		case *bpmn.SequenceFlow:
			if owner, ok := owners[v.SourceRef]; ok && owner != container {
				container.RemoveFlowElement(v.Id)
				owner.AddFlowElement(v)
			}
		case bpmn.SubProcessElement:
			moveFlows(v, owners)
		}
	}
}

// walkElements calls fn for every flow element of container and its sub
// processes.
func walkElements(container bpmn.FlowElementsContainer, fn func(container bpmn.FlowElementsContainer, elem bpmn.FlowElement)) {
	elems := append([]bpmn.FlowElement(nil), container.FlowElements()...)
	for _, elem := range elems {
		fn(container, elem)
		if sub, ok := elem.(bpmn.SubProcessElement); ok {
			walkElements(sub, fn)
		}
	}
}

// postProcess links what only the whole graph knows: boundary events to
// their hosts, flows to their nodes, default flows, the flow order of
// gateways and stub definitions for unknown signal and message refs.
func postProcess(model *bpmn.Model, edges *edgeSet, diag *Diagnostics) {
	flows := map[string]*bpmn.SequenceFlow{}
	var gateways []bpmn.Gateway
	for _, process := range model.Processes {
		walkElements(process, func(container bpmn.FlowElementsContainer, elem bpmn.FlowElement) {
			switch v := elem.(type) {
			case *bpmn.BoundaryEvent:
				attachBoundary(process, v, diag)
			case *bpmn.SequenceFlow:
				linkFlow(model, v, edges)
				if resourceID := v.Extensions.Value(dict.ExtensionResourceID); len(resourceID) > 0 {
					flows[resourceID] = v
				}
				v.Extensions.Remove(dict.ExtensionResourceID)
			case bpmn.Gateway:
				if v.GetExtensions().Has(dict.ExtensionFlowOrder) {
					gateways = append(gateways, v)
				}
			}
			if event, ok := elem.(bpmn.Event); ok {
				stubDefinitions(model, event)
			}
		})
	}

	for _, gateway := range gateways {
		orderFlows(model, gateway, flows)
	}
}

func attachBoundary(process *bpmn.Process, event *bpmn.BoundaryEvent, diag *Diagnostics) {
	if len(event.AttachedToRefID) == 0 {
		diag.Warnf(event.Id, "boundary event is attached to nothing")
		return
	}
	host, _ := bpmn.FindFlowElement(process, event.AttachedToRefID)
	activity, ok := host.(bpmn.Activity)
	if !ok {
		diag.Warnf(event.Id, "host %q of boundary event is not an activity", event.AttachedToRefID)
		return
	}
	event.AttachedTo = activity
	meta := activity.Activity()
	meta.BoundaryEvents = append(meta.BoundaryEvents, event)
}

func linkFlow(model *bpmn.Model, flow *bpmn.SequenceFlow, edges *edgeSet) {
	if source, ok := model.GetFlowElement(flow.SourceRef).(bpmn.FlowNode); ok {
		source.Node().Outgoing = append(source.Node().Outgoing, flow)
		if codec.GetBool(dict.PropertySequenceflowDefault, edges.byElement[flow.Id], false) {
			bpmn.SetDefaultFlow(source, flow.Id)
		}
	}
	if target, ok := model.GetFlowElement(flow.TargetRef).(bpmn.FlowNode); ok {
		target.Node().Incoming = append(target.Node().Incoming, flow)
	}
}

func stubDefinitions(model *bpmn.Model, event bpmn.Event) {
	for _, definition := range event.GetEventDefinitions() {
		switch d := definition.(type) {
		case *bpmn.SignalEventDefinition:
			if len(d.SignalRef) > 0 && !model.ContainsSignal(d.SignalRef) {
				model.AddSignal(&bpmn.Signal{Id: d.SignalRef, Name: d.SignalRef})
			}
		case *bpmn.MessageEventDefinition:
			if len(d.MessageRef) > 0 && !model.ContainsMessage(d.MessageRef) {
				model.AddMessage(&bpmn.Message{Id: d.MessageRef, Name: d.MessageRef})
			}
		}
	}
}

// orderFlows applies the flow order the editor recorded on a gateway: the
// listed flows move to the end of their container in that order, and lead
// the outgoing list of the gateway.
func orderFlows(model *bpmn.Model, gateway bpmn.Gateway, flows map[string]*bpmn.SequenceFlow) {
	ext := gateway.GetExtensions()
	ordered := make([]*bpmn.SequenceFlow, 0)
	for _, item := range ext.Get(dict.ExtensionFlowOrder) {
		flow, ok := flows[item.Text]
		if !ok {
			continue
		}
		for _, process := range model.Processes {
			if _, container := bpmn.FindFlowElement(process, flow.Id); container != nil {
				container.RemoveFlowElement(flow.Id)
				container.AddFlowElement(flow)
				break
			}
		}
		ordered = append(ordered, flow)
	}
	ext.Remove(dict.ExtensionFlowOrder)

	node := gateway.Node()
	node.Outgoing = leading(node.Outgoing, ordered)
}

// leading returns flows with the members of first moved to the front in the
// order of first.
func leading(flows, first []*bpmn.SequenceFlow) []*bpmn.SequenceFlow {
	in := make(map[*bpmn.SequenceFlow]bool, len(flows))
	for _, flow := range flows {
		in[flow] = true
	}
	out := make([]*bpmn.SequenceFlow, 0, len(flows))
	moved := map[*bpmn.SequenceFlow]bool{}
	for _, flow := range first {
		if in[flow] && !moved[flow] {
			out = append(out, flow)
			moved[flow] = true
		}
	}
	for _, flow := range flows {
		if !moved[flow] {
			out = append(out, flow)
		}
	}
	return out
}
