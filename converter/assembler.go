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
	"fmt"
	"math"

	"github.com/vine-io/flow-editor/bpmn"
	"github.com/vine-io/flow-editor/codec"
	"github.com/vine-io/flow-editor/dict"
	log "github.com/vine-io/vine/lib/logger"
)

// Converter converts whole models and editor documents. It holds no state
// of a conversion and is safe for concurrent use.
type Converter struct {
	opts Options
}

func New(opts ...Option) *Converter {
	return &Converter{opts: NewOptions(opts...)}
}

func (c *Converter) Options() Options {
	return c.opts
}

// Result reports what happened to single elements during a conversion.
type Result struct {
	Diagnostics []Diagnostic
}

// Count returns the number of diagnostics at the level.
func (r Result) Count(level Level) int {
	n := 0
	for _, item := range r.Diagnostics {
		if item.Level == level {
			n++
		}
	}
	return n
}

// Failed reports whether some element could not be converted.
func (r Result) Failed() bool {
	return r.Count(LevelError) > 0
}

func (c *Converter) context(model *bpmn.Model, a *assembly) Context {
	return Context{
		model:    model,
		resolver: c.opts.Resolver,
		diag:     a.diag,
		walker:   a,
	}
}

// ToJSON returns the editor document of model. Elements that cannot be
// converted are left out and reported in the result.
func (c *Converter) ToJSON(model *bpmn.Model) (codec.Node, Result) {
	a := &assembly{diag: &Diagnostics{}}
	ctx := c.context(model, a)

	process := model.MainProcess()
	if process == nil {
		process = bpmn.NewProcess(defaultProcessID)
	}

	width, height := canvasSize(model)
	root := codec.NewShape(dict.CanvasResourceID, dict.StencilDiagram, width, height, 0, 0)
	root[dict.EditorStencilSet] = codec.Node{
		"url":       dict.StencilSetURL,
		"namespace": dict.StencilSetNamespace,
	}
	processToJSON(codec.ShapeProperties(root), model, process)

	shapes := make([]interface{}, 0)
	if poolsDrawn(model) {
		for _, pool := range model.Pools {
			if model.GetGraphicInfo(pool.Id) == nil {
				continue
			}
			for _, shape := range a.elementToJSON(ctx, pool) {
				shapes = append(shapes, shape)
			}
			if poolProcess := model.Process(pool.ProcessRef); poolProcess != nil {
				shapes = append(shapes, a.artifactsToJSON(ctx.WithContainer(poolProcess), poolProcess)...)
			}
		}
	} else {
		shapes = append(shapes, a.elementsToJSON(ctx.WithContainer(process), process)...)
	}

	for _, flow := range model.MessageFlows() {
		for _, shape := range a.elementToJSON(ctx, flow) {
			shapes = append(shapes, shape)
		}
	}
	root[dict.EditorChildShapes] = shapes

	return root, Result{Diagnostics: a.diag.Items()}
}

// canvasSize returns the extent of every placed shape plus a margin, never
// less than the default canvas.
func canvasSize(model *bpmn.Model) (float64, float64) {
	var maxX, maxY float64
	model.Locations(func(id string, info *bpmn.GraphicInfo) bool {
		maxX = math.Max(maxX, info.X+info.Width)
		maxY = math.Max(maxY, info.Y+info.Height)
		return true
	})
	return math.Max(maxX+dict.CanvasMargin, dict.CanvasMinWidth), math.Max(maxY+dict.CanvasMargin, dict.CanvasMinHeight)
}

func poolsDrawn(model *bpmn.Model) bool {
	for _, pool := range model.Pools {
		if model.GetGraphicInfo(pool.Id) != nil {
			return true
		}
	}
	return false
}

// pendingEdge is a connector shape waiting for every node to exist.
type pendingEdge struct {
	ctx   Context
	shape codec.Node
}

// assembly walks the elements of one conversion. It is the walker handed to
// container converters.
type assembly struct {
	diag    *Diagnostics
	pending []pendingEdge
}

var _ walker = (*assembly)(nil)

func (a *assembly) elementsToJSON(ctx Context, container bpmn.FlowElementsContainer) []interface{} {
	items := make([]interface{}, 0)
	for _, elem := range container.FlowElements() {
		for _, shape := range a.elementToJSON(ctx, elem) {
			items = append(items, shape)
		}
	}
	return append(items, a.artifactsToJSON(ctx, container)...)
}

func (a *assembly) artifactsToJSON(ctx Context, container bpmn.FlowElementsContainer) []interface{} {
	items := make([]interface{}, 0)
	for _, artifact := range container.Artifacts() {
		for _, shape := range a.elementToJSON(ctx, artifact) {
			items = append(items, shape)
		}
	}
	return items
}

func (a *assembly) elementToJSON(ctx Context, elem bpmn.Element) []codec.Node {
	conv, ok := ForShape(elem.GetShape())
	if !ok {
		a.diag.Errorf(elem.GetID(), "no converter for %s", elem.GetShape())
		return nil
	}
	shapes, err := safeToJSON(conv, ctx, elem)
	if err != nil {
		a.diag.Errorf(elem.GetID(), "%v", err)
		return nil
	}
	return shapes
}

func safeToJSON(conv ElementConverter, ctx Context, elem bpmn.Element) (shapes []codec.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("converter failed: %v", r)
		}
	}()
	return conv.ToJSON(ctx, elem)
}

// shapesToDomain converts the node shapes at once and keeps the connectors
// until every node of the document exists. Pools and lanes are built
// before the walk.
func (a *assembly) shapesToDomain(ctx Context, shapes []codec.Node) {
	for _, shape := range shapes {
		switch stencil := codec.StencilID(shape); {
		case isConnector(stencil):
			a.pending = append(a.pending, pendingEdge{ctx: ctx, shape: shape})
		case stencil == dict.StencilPool, stencil == dict.StencilLane:
		default:
			a.toDomain(ctx, shape)
		}
	}
}

func (a *assembly) toDomain(ctx Context, shape codec.Node) bpmn.Element {
	stencil := codec.StencilID(shape)
	conv, ok := ForStencil(stencil)
	if !ok {
		a.diag.Errorf(codec.ResourceID(shape), "unknown stencil %q", stencil)
		return nil
	}
	elem, err := safeToDomain(conv, ctx, shape)
	if err != nil {
		a.diag.Errorf(codec.ResourceID(shape), "%v", err)
		return nil
	}
	return elem
}

func safeToDomain(conv ElementConverter, ctx Context, shape codec.Node) (elem bpmn.Element, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("converter failed: %v", r)
		}
	}()
	return conv.ToDomain(ctx, shape)
}

// connect converts the pending connectors. In a document with pools a
// connector drawn outside of any lane joins the lane of its source.
func (a *assembly) connect(layout *laneLayout) {
	pending := a.pending
	a.pending = nil
	for _, p := range pending {
		ctx := p.ctx
		stencil := codec.StencilID(p.shape)
		_, topLevel := ctx.Container().(*bpmn.Process)
		if layout.pooled() && topLevel && ctx.Lane() == nil &&
			(stencil == dict.StencilSequenceFlow || stencil == dict.StencilAssociation) {
			source := ctx.sourceOf(codec.ResourceID(p.shape))
			if lane, ok := layout.lanes[source]; ok {
				ctx = ctx.WithLane(lane)
			} else if stencil == dict.StencilSequenceFlow {
				a.diag.Warnf(codec.ElementID(p.shape), "source %q of sequence flow lies in no lane", source)
				continue
			}
		}
		a.toDomain(ctx, p.shape)
	}
	if len(a.pending) > 0 {
		log.Warnf("%d connectors found while connecting are dropped", len(a.pending))
		a.pending = nil
	}
}

func isConnector(stencil string) bool {
	switch stencil {
	case dict.StencilSequenceFlow, dict.StencilMessageFlow, dict.StencilAssociation, dict.StencilDataAssociation:
		return true
	default:
		return false
	}
}
