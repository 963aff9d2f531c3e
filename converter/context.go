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
	"github.com/vine-io/flow-editor/bpmn"
	"github.com/vine-io/flow-editor/codec"
	"github.com/vine-io/flow-editor/geometry"
)

// walker lets container converters hand their children back to the
// assembler.
type walker interface {
	elementsToJSON(ctx Context, container bpmn.FlowElementsContainer) []interface{}
	elementToJSON(ctx Context, elem bpmn.Element) []codec.Node
	shapesToDomain(ctx Context, shapes []codec.Node)
}

// Context is what an element converter sees of the running conversion.
// It is passed by value and every With method returns a modified copy, so
// a converter never changes the context of its siblings.
type Context struct {
	model     *bpmn.Model
	container bpmn.FlowElementsContainer
	lane      *bpmn.Lane
	offset    geometry.Point
	resolver  ReferenceResolver
	diag      *Diagnostics
	index     *shapeIndex
	walker    walker
}

func (c Context) Model() *bpmn.Model {
	return c.model
}

// Container returns the container the element belongs to.
func (c Context) Container() bpmn.FlowElementsContainer {
	return c.container
}

// Lane returns the lane the element is drawn in, nil outside of pools.
func (c Context) Lane() *bpmn.Lane {
	return c.lane
}

// Offset returns the absolute origin of the enclosing shape.
func (c Context) Offset() geometry.Point {
	return c.offset
}

func (c Context) Resolver() ReferenceResolver {
	if c.resolver == nil {
		return NopResolver{}
	}
	return c.resolver
}

func (c Context) Diagnostics() *Diagnostics {
	return c.diag
}

func (c Context) WithContainer(container bpmn.FlowElementsContainer) Context {
	c.container = container
	return c
}

func (c Context) WithLane(lane *bpmn.Lane) Context {
	c.lane = lane
	return c
}

func (c Context) WithOffset(x, y float64) Context {
	c.offset = geometry.Point{X: x, Y: y}
	return c
}

// shape returns the shape with the editor resource id.
func (c Context) shape(resourceID string) codec.Node {
	if c.index == nil {
		return nil
	}
	return c.index.shapes[resourceID]
}

// sourceOf returns the element id of the shape listing resourceID in its
// outgoing array.
func (c Context) sourceOf(resourceID string) string {
	if c.index == nil {
		return ""
	}
	if source, ok := c.index.sources[resourceID]; ok {
		return codec.ElementID(source)
	}
	return ""
}

// targetOf returns the element id of the connector target.
func (c Context) targetOf(connector codec.Node) string {
	if target := c.shape(codec.TargetID(connector)); target != nil {
		return codec.ElementID(target)
	}
	return ""
}
