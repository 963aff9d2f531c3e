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

package geometry

import (
	"github.com/vine-io/flow-editor/dict"
)

type Kind int32

const (
	Unknown Kind = iota
	Ellipse
	Rectangle
	Diamond
)

func (k Kind) String() string {
	switch k {
	case Ellipse:
		return "ellipse"
	case Rectangle:
		return "rectangle"
	case Diamond:
		return "diamond"
	default:
		return "unknown"
	}
}

var kinds = map[string]Kind{
	dict.StencilEventStartConditional:      Ellipse,
	dict.StencilEventStartError:            Ellipse,
	dict.StencilEventStartEscalation:       Ellipse,
	dict.StencilEventStartMessage:          Ellipse,
	dict.StencilEventStartNone:             Ellipse,
	dict.StencilEventStartTimer:            Ellipse,
	dict.StencilEventStartSignal:           Ellipse,
	dict.StencilEventStartEventRegistry:    Ellipse,
	dict.StencilEventStartVariableListener: Ellipse,

	dict.StencilEventBoundaryConditional:      Ellipse,
	dict.StencilEventBoundaryError:            Ellipse,
	dict.StencilEventBoundaryEscalation:       Ellipse,
	dict.StencilEventBoundarySignal:           Ellipse,
	dict.StencilEventBoundaryTimer:            Ellipse,
	dict.StencilEventBoundaryMessage:          Ellipse,
	dict.StencilEventBoundaryEventRegistry:    Ellipse,
	dict.StencilEventBoundaryVariableListener: Ellipse,
	dict.StencilEventBoundaryCancel:           Ellipse,
	dict.StencilEventBoundaryCompensation:     Ellipse,

	dict.StencilEventCatchConditional:      Ellipse,
	dict.StencilEventCatchMessage:          Ellipse,
	dict.StencilEventCatchSignal:           Ellipse,
	dict.StencilEventCatchTimer:            Ellipse,
	dict.StencilEventCatchEventRegistry:    Ellipse,
	dict.StencilEventCatchVariableListener: Ellipse,

	dict.StencilEventThrowNone:         Ellipse,
	dict.StencilEventThrowSignal:       Ellipse,
	dict.StencilEventThrowEscalation:   Ellipse,
	dict.StencilEventThrowCompensation: Ellipse,

	dict.StencilEventEndNone:       Ellipse,
	dict.StencilEventEndError:      Ellipse,
	dict.StencilEventEndEscalation: Ellipse,
	dict.StencilEventEndCancel:     Ellipse,
	dict.StencilEventEndTerminate:  Ellipse,

	dict.StencilCallActivity:        Rectangle,
	dict.StencilSubProcess:          Rectangle,
	dict.StencilCollapsedSubProcess: Rectangle,
	dict.StencilEventSubProcess:     Rectangle,
	dict.StencilAdhocSubProcess:     Rectangle,
	dict.StencilTaskBusinessRule:    Rectangle,
	dict.StencilTaskMail:            Rectangle,
	dict.StencilTaskManual:          Rectangle,
	dict.StencilTaskReceive:         Rectangle,
	dict.StencilTaskReceiveEvent:    Rectangle,
	dict.StencilTaskScript:          Rectangle,
	dict.StencilTaskSend:            Rectangle,
	dict.StencilTaskSendEvent:       Rectangle,
	dict.StencilTaskService:         Rectangle,
	dict.StencilTaskUser:            Rectangle,
	dict.StencilTaskCamel:           Rectangle,
	dict.StencilTaskMule:            Rectangle,
	dict.StencilTaskHTTP:            Rectangle,
	dict.StencilTaskDecision:        Rectangle,
	dict.StencilTaskExternalWorker:  Rectangle,
	dict.StencilTaskShell:           Rectangle,
	dict.StencilTextAnnotation:      Rectangle,

	dict.StencilGatewayEvent:     Diamond,
	dict.StencilGatewayExclusive: Diamond,
	dict.StencilGatewayInclusive: Diamond,
	dict.StencilGatewayParallel:  Diamond,
}

// Classify returns the outline kind drawn for the stencil.
func Classify(stencilID string) Kind {
	return kinds[stencilID]
}

// Border returns the border band of a shape with the given absolute bounds.
// Ellipses take their half axes from the docker anchored on them, the way
// the editor places event dockers at the circle center.
func Border(kind Kind, bounds Rect, docker Point) *Band {
	switch kind {
	case Ellipse:
		return &Band{
			Outer: NewEllipse(bounds.X, bounds.Y, 2*docker.X, 2*docker.Y),
			Inner: NewEllipse(bounds.X+LineWidth, bounds.Y+LineWidth,
				2*(docker.X-LineWidth), 2*(docker.Y-LineWidth)),
		}
	case Rectangle:
		return &Band{
			Outer: NewRectangle(bounds),
			Inner: NewRectangle(bounds.Inset(LineWidth)),
		}
	case Diamond:
		return &Band{
			Outer: NewDiamond(bounds),
			Inner: NewDiamond(bounds.Inset(LineWidth)),
		}
	default:
		return nil
	}
}

// Anchor is a connector endpoint shape.
type Anchor struct {
	Kind   Kind
	Bounds Rect
}

// EdgeGraphics is the diagram placement of one connector.
type EdgeGraphics struct {
	Waypoints    []Point
	SourceDocker Point
	TargetDocker Point
}

// ComputeEdge turns editor dockers into absolute waypoints. The first docker
// is relative to the source shape, the last one relative to the target shape
// and every docker in between is absolute. The end points are trimmed to the
// visible border of each shape; an unclassified shape contributes no point.
func ComputeEdge(dockers []Point, source, target Anchor) *EdgeGraphics {
	if len(dockers) < 2 {
		return nil
	}

	first := dockers[0]
	last := dockers[len(dockers)-1]

	start := source.Bounds.Origin().Add(first)
	next := dockers[1]
	if len(dockers) == 2 {
		next = next.Add(target.Bounds.Origin())
	}
	firstLine := Line{P1: start, P2: next}

	waypoints := make([]Point, 0, len(dockers))
	if band := Border(source.Kind, source.Bounds, first); band != nil {
		if p, ok := Intersect(firstLine, band); ok {
			waypoints = append(waypoints, p)
		} else {
			waypoints = append(waypoints, start)
		}
	}

	lastLine := firstLine
	if len(dockers) > 2 {
		for _, p := range dockers[1 : len(dockers)-1] {
			waypoints = append(waypoints, p)
		}
		lastLine = Line{
			P1: dockers[len(dockers)-2],
			P2: last.Add(target.Bounds.Origin()),
		}
	}

	if band := Border(target.Kind, target.Bounds, last); band != nil {
		if p, ok := Intersect(lastLine, band); ok {
			waypoints = append(waypoints, p)
		} else {
			waypoints = append(waypoints, lastLine.P2)
		}
	}

	return &EdgeGraphics{
		Waypoints:    waypoints,
		SourceDocker: first,
		TargetDocker: last,
	}
}
