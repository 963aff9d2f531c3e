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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vine-io/flow-editor/dict"
)

func TestClassify(t *testing.T) {
	assert.Equal(t, Ellipse, Classify(dict.StencilEventStartNone))
	assert.Equal(t, Ellipse, Classify(dict.StencilEventBoundaryCompensation))
	assert.Equal(t, Rectangle, Classify(dict.StencilTaskUser))
	assert.Equal(t, Rectangle, Classify(dict.StencilCollapsedSubProcess))
	assert.Equal(t, Diamond, Classify(dict.StencilGatewayExclusive))
	assert.Equal(t, Unknown, Classify(dict.StencilDataStore))
	assert.Equal(t, Unknown, Classify("NoSuchStencil"))
}

func TestIntersectRectangle(t *testing.T) {
	band := Border(Rectangle, Rect{X: 100, Y: 100, Width: 100, Height: 50}, Point{})
	p, ok := Intersect(Line{P1: Point{X: 150, Y: 125}, P2: Point{X: 300, Y: 125}}, band)
	if !assert.True(t, ok) {
		return
	}
	assert.InDelta(t, 200, p.X, 0.1)
	assert.InDelta(t, 125, p.Y, 0.1)
}

func TestIntersectDiamond(t *testing.T) {
	band := Border(Diamond, Rect{X: 0, Y: 0, Width: 40, Height: 40}, Point{})
	p, ok := Intersect(Line{P1: Point{X: 20, Y: 20}, P2: Point{X: 100, Y: 20}}, band)
	if !assert.True(t, ok) {
		return
	}
	assert.InDelta(t, 40, p.X, 0.1)
	assert.InDelta(t, 20, p.Y, 0.1)
}

func TestIntersectMiss(t *testing.T) {
	band := Border(Rectangle, Rect{X: 0, Y: 0, Width: 10, Height: 10}, Point{})
	_, ok := Intersect(Line{P1: Point{X: 50, Y: 50}, P2: Point{X: 80, Y: 90}}, band)
	assert.False(t, ok)

	_, ok = Intersect(Line{P1: Point{X: 1, Y: 1}, P2: Point{X: 2, Y: 2}}, nil)
	assert.False(t, ok)
}

func TestComputeEdgeTrimsToBorders(t *testing.T) {
	source := Anchor{Kind: Rectangle, Bounds: Rect{X: 100, Y: 100, Width: 100, Height: 50}}
	target := Anchor{Kind: Ellipse, Bounds: Rect{X: 280, Y: 100, Width: 40, Height: 40}}

	eg := ComputeEdge([]Point{{X: 50, Y: 25}, {X: 20, Y: 20}}, source, target)
	if !assert.NotNil(t, eg) || !assert.Len(t, eg.Waypoints, 2) {
		return
	}

	first := eg.Waypoints[0]
	last := eg.Waypoints[1]
	assert.InDelta(t, 200, first.X, 0.1)

	dist := math.Hypot(last.X-300, last.Y-120)
	assert.InDelta(t, 20, dist, 0.5)

	assert.Equal(t, Point{X: 50, Y: 25}, eg.SourceDocker)
	assert.Equal(t, Point{X: 20, Y: 20}, eg.TargetDocker)
}

func TestComputeEdgeWithBends(t *testing.T) {
	source := Anchor{Kind: Rectangle, Bounds: Rect{X: 0, Y: 0, Width: 100, Height: 80}}
	target := Anchor{Kind: Rectangle, Bounds: Rect{X: 300, Y: 300, Width: 100, Height: 80}}

	eg := ComputeEdge([]Point{{X: 50, Y: 40}, {X: 50, Y: 340}, {X: 50, Y: 40}}, source, target)
	if !assert.NotNil(t, eg) || !assert.Len(t, eg.Waypoints, 3) {
		return
	}

	assert.InDelta(t, 80, eg.Waypoints[0].Y, 0.1)
	assert.Equal(t, Point{X: 50, Y: 340}, eg.Waypoints[1])
	assert.InDelta(t, 300, eg.Waypoints[2].X, 0.1)
}

func TestComputeEdgeUnclassifiedSource(t *testing.T) {
	source := Anchor{Kind: Unknown, Bounds: Rect{X: 0, Y: 0, Width: 10, Height: 10}}
	target := Anchor{Kind: Rectangle, Bounds: Rect{X: 100, Y: 0, Width: 10, Height: 10}}

	eg := ComputeEdge([]Point{{X: 5, Y: 5}, {X: 5, Y: 5}}, source, target)
	if !assert.NotNil(t, eg) {
		return
	}
	assert.Len(t, eg.Waypoints, 1)
	assert.InDelta(t, 100, eg.Waypoints[0].X, 0.1)
}

func TestComputeEdgeTooFewDockers(t *testing.T) {
	assert.Nil(t, ComputeEdge([]Point{{X: 1, Y: 1}}, Anchor{}, Anchor{}))
}
