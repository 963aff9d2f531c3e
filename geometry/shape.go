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

// Package geometry computes the visible border of diagram shapes and trims
// connector lines to it.
package geometry

import (
	"math"
	"sort"
)

// LineWidth is the thickness of a shape border band.
const LineWidth = 0.05

const epsilon = 1e-9

type Point struct {
	X float64
	Y float64
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Inset shrinks the rectangle by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, Width: r.Width - 2*d, Height: r.Height - 2*d}
}

type Line struct {
	P1 Point
	P2 Point
}

func (l Line) at(t float64) Point {
	return Point{X: l.P1.X + t*(l.P2.X-l.P1.X), Y: l.P1.Y + t*(l.P2.Y-l.P1.Y)}
}

// Outline is a closed shape outline.
type Outline interface {
	// Contains reports whether p is strictly inside the outline.
	Contains(p Point) bool
	// Crossings returns the line parameters in [0,1] where the segment meets the outline.
	Crossings(l Line) []float64
}

type ellipse struct {
	cx, cy float64
	a, b   float64
}

// NewEllipse returns the ellipse inscribed in the frame (x, y, w, h).
func NewEllipse(x, y, w, h float64) Outline {
	return &ellipse{cx: x + w/2, cy: y + h/2, a: w / 2, b: h / 2}
}

func (e *ellipse) Contains(p Point) bool {
	if e.a <= 0 || e.b <= 0 {
		return false
	}
	dx := (p.X - e.cx) / e.a
	dy := (p.Y - e.cy) / e.b
	return dx*dx+dy*dy < 1
}

func (e *ellipse) Crossings(l Line) []float64 {
	if e.a <= 0 || e.b <= 0 {
		return nil
	}
	ox := (l.P1.X - e.cx) / e.a
	oy := (l.P1.Y - e.cy) / e.b
	dx := (l.P2.X - l.P1.X) / e.a
	dy := (l.P2.Y - l.P1.Y) / e.b

	qa := dx*dx + dy*dy
	qb := 2 * (ox*dx + oy*dy)
	qc := ox*ox + oy*oy - 1
	if qa < epsilon {
		return nil
	}
	disc := qb*qb - 4*qa*qc
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	return clampParams((-qb-sq)/(2*qa), (-qb+sq)/(2*qa))
}

type polygon struct {
	points []Point
}

// NewPolygon returns a closed polygon through the given vertices.
func NewPolygon(points ...Point) Outline {
	return &polygon{points: points}
}

// NewRectangle returns the rectangle outline of r.
func NewRectangle(r Rect) Outline {
	return NewPolygon(
		Point{X: r.X, Y: r.Y},
		Point{X: r.X + r.Width, Y: r.Y},
		Point{X: r.X + r.Width, Y: r.Y + r.Height},
		Point{X: r.X, Y: r.Y + r.Height},
	)
}

// NewDiamond returns the gateway outline whose corners touch the middle of
// each side of r.
func NewDiamond(r Rect) Outline {
	midX := r.X + r.Width/2
	midY := r.Y + r.Height/2
	return NewPolygon(
		Point{X: r.X, Y: midY},
		Point{X: midX, Y: r.Y},
		Point{X: r.X + r.Width, Y: midY},
		Point{X: midX, Y: r.Y + r.Height},
	)
}

func (pg *polygon) Contains(p Point) bool {
	inside := false
	n := len(pg.points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := pg.points[i], pg.points[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

func (pg *polygon) Crossings(l Line) []float64 {
	out := make([]float64, 0, 2)
	n := len(pg.points)
	for i := 0; i < n; i++ {
		a := pg.points[i]
		b := pg.points[(i+1)%n]
		if t, ok := segmentParam(l, Line{P1: a, P2: b}); ok {
			out = append(out, t)
		}
	}
	return out
}

// segmentParam returns the parameter on l where it crosses edge.
func segmentParam(l, edge Line) (float64, bool) {
	rx, ry := l.P2.X-l.P1.X, l.P2.Y-l.P1.Y
	sx, sy := edge.P2.X-edge.P1.X, edge.P2.Y-edge.P1.Y
	denom := rx*sy - ry*sx
	if math.Abs(denom) < epsilon {
		return 0, false
	}
	qx, qy := edge.P1.X-l.P1.X, edge.P1.Y-l.P1.Y
	t := (qx*sy - qy*sx) / denom
	u := (qx*ry - qy*rx) / denom
	if t < -epsilon || t > 1+epsilon || u < -epsilon || u > 1+epsilon {
		return 0, false
	}
	return math.Min(math.Max(t, 0), 1), true
}

func clampParams(ts ...float64) []float64 {
	out := make([]float64, 0, len(ts))
	for _, t := range ts {
		if t >= -epsilon && t <= 1+epsilon {
			out = append(out, math.Min(math.Max(t, 0), 1))
		}
	}
	return out
}

// Band is the area between an outer outline and an inset inner outline.
type Band struct {
	Outer Outline
	Inner Outline
}

func (b *Band) Contains(p Point) bool {
	return b.Outer.Contains(p) && !b.Inner.Contains(p)
}

// Intersect returns the top-left corner of the bounding box of the part of
// the line running through the band.
func Intersect(l Line, b *Band) (Point, bool) {
	if b == nil {
		return Point{}, false
	}

	params := []float64{0, 1}
	params = append(params, b.Outer.Crossings(l)...)
	params = append(params, b.Inner.Crossings(l)...)
	sort.Float64s(params)

	found := false
	minX, minY := math.Inf(1), math.Inf(1)
	for i := 0; i+1 < len(params); i++ {
		t0, t1 := params[i], params[i+1]
		if t1-t0 < epsilon {
			continue
		}
		if !b.Contains(l.at((t0 + t1) / 2)) {
			continue
		}
		found = true
		for _, p := range []Point{l.at(t0), l.at(t1)} {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
		}
	}

	if !found {
		return Point{}, false
	}
	return Point{X: minX, Y: minY}, true
}
