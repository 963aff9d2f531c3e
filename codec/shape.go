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

package codec

import (
	"strings"

	"github.com/vine-io/flow-editor/dict"
	"github.com/vine-io/flow-editor/geometry"
)

// StencilID returns stencil.id of a shape.
func StencilID(shape Node) string {
	if shape == nil {
		return ""
	}
	return Field(Object(shape[dict.EditorStencil]), dict.EditorStencilID)
}

// ResourceID returns the editor resource id of a shape.
func ResourceID(shape Node) string {
	return Field(shape, dict.EditorShapeID)
}

// ElementID returns the domain id of a shape: the trimmed override id when
// present, otherwise the resource id.
func ElementID(shape Node) string {
	if id := strings.TrimSpace(String(dict.PropertyOverrideID, shape)); len(id) > 0 {
		return id
	}
	return ResourceID(shape)
}

// ChildShapes returns the child shapes of a shape.
func ChildShapes(shape Node) []Node {
	if shape == nil {
		return nil
	}
	return Objects(shape[dict.EditorChildShapes])
}

// HasChildShapes reports whether the shape carries a childShapes array.
func HasChildShapes(shape Node) bool {
	if shape == nil {
		return false
	}
	_, ok := shape[dict.EditorChildShapes].([]interface{})
	return ok
}

// Outgoing returns the resource ids listed in the outgoing array of a shape.
func Outgoing(shape Node) []string {
	if shape == nil {
		return nil
	}
	items := Objects(shape[dict.EditorOutgoing])
	out := make([]string, 0, len(items))
	for _, item := range items {
		if id := Field(item, dict.EditorShapeID); len(id) > 0 {
			out = append(out, id)
		}
	}
	return out
}

// TargetID returns target.resourceId of a connector.
func TargetID(shape Node) string {
	if shape == nil {
		return ""
	}
	return Field(Object(shape[dict.EditorTarget]), dict.EditorShapeID)
}

// Dockers returns the docker points of a connector.
func Dockers(shape Node) []geometry.Point {
	if shape == nil {
		return nil
	}
	items := Objects(shape[dict.EditorDockers])
	out := make([]geometry.Point, 0, len(items))
	for _, item := range items {
		out = append(out, geometry.Point{
			X: Float(item[dict.EditorBoundsX]),
			Y: Float(item[dict.EditorBoundsY]),
		})
	}
	return out
}

// Bounds returns the upper left and lower right corners of a shape.
func Bounds(shape Node) (upperLeft, lowerRight geometry.Point) {
	if shape == nil {
		return
	}
	bounds := Object(shape[dict.EditorBounds])
	if bounds == nil {
		return
	}
	ul := Object(bounds[dict.EditorBoundsUpperLeft])
	lr := Object(bounds[dict.EditorBoundsLowerRight])
	if ul != nil {
		upperLeft = geometry.Point{X: Float(ul[dict.EditorBoundsX]), Y: Float(ul[dict.EditorBoundsY])}
	}
	if lr != nil {
		lowerRight = geometry.Point{X: Float(lr[dict.EditorBoundsX]), Y: Float(lr[dict.EditorBoundsY])}
	}
	return
}

// NewPoint builds an {x, y} object.
func NewPoint(x, y float64) Node {
	return Node{dict.EditorBoundsX: x, dict.EditorBoundsY: y}
}

// NewBounds builds a bounds object from its lower right and upper left corners.
func NewBounds(lowerRightX, lowerRightY, upperLeftX, upperLeftY float64) Node {
	return Node{
		dict.EditorBoundsLowerRight: NewPoint(lowerRightX, lowerRightY),
		dict.EditorBoundsUpperLeft:  NewPoint(upperLeftX, upperLeftY),
	}
}

// NewShape builds an empty shape node.
func NewShape(id, stencilID string, lowerRightX, lowerRightY, upperLeftX, upperLeftY float64) Node {
	return Node{
		dict.EditorBounds:          NewBounds(lowerRightX, lowerRightY, upperLeftX, upperLeftY),
		dict.EditorShapeID:         id,
		dict.EditorChildShapes:     []interface{}{},
		dict.EditorStencil:         Node{dict.EditorStencilID: stencilID},
		dict.EditorShapeProperties: Node{},
	}
}

// ResourceRef builds a {"resourceId": id} reference.
func ResourceRef(id string) Node {
	return Node{dict.EditorShapeID: id}
}

// AppendChild appends a child shape to the childShapes of a shape.
func AppendChild(shape, child Node) {
	children, _ := shape[dict.EditorChildShapes].([]interface{})
	shape[dict.EditorChildShapes] = append(children, child)
}

// AppendOutgoing appends a resource reference to the outgoing array of a shape.
func AppendOutgoing(shape Node, id string) {
	outgoing, _ := shape[dict.EditorOutgoing].([]interface{})
	shape[dict.EditorOutgoing] = append(outgoing, ResourceRef(id))
}

// ShapeProperties returns the mutable properties object of a shape built
// with NewShape.
func ShapeProperties(shape Node) Node {
	props, ok := shape[dict.EditorShapeProperties].(map[string]interface{})
	if !ok {
		props = Node{}
		shape[dict.EditorShapeProperties] = props
	}
	return props
}
