// seehuhn.de/go/sdf - signed distance fields from bitmap masks
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke rasterises the outline of p, using the current line width, cap
// style, join style and miter limit.
//
// The stroke is built from one convex polygon per segment, join and cap.
// All polygons share the same orientation, so filling their union with the
// nonzero rule gives the stroked area.
func (r *Rasteriser) Stroke(p *path.Data, emit EmitFunc) {
	r.polys = r.polys[:0]
	r.polyOffsets = r.polyOffsets[:0]

	d := r.Width / 2
	if d <= 0 {
		return
	}

	r.points = r.points[:0]
	drawn := false
	flush := func(closed bool) {
		if drawn {
			r.strokeSubpath(r.points, closed, d)
		}
		r.points = r.points[:0]
		drawn = false
	}
	moveTo := func(pt vec.Vec2) {
		flush(false)
		r.points = append(r.points, pt)
	}
	line := func(a, b vec.Vec2) {
		drawn = true
		if len(r.points) == 0 {
			r.points = append(r.points, a)
		}
		if b.Sub(r.points[len(r.points)-1]).Length() > zeroLengthThreshold {
			r.points = append(r.points, b)
		}
	}
	closePath := func() {
		if len(r.points) > 0 {
			// A closed subpath at a single point still paints a dot.
			drawn = true
		}
		start := vec.Vec2{}
		if len(r.points) > 0 {
			start = r.points[0]
		}
		flush(true)
		r.points = append(r.points, start)
	}
	r.walkPath(p, moveTo, line, closePath)
	flush(false)

	r.fillPolygons(emit)
}

// strokeSubpath adds the outline polygons for one subpath.
// d is half the line width.
func (r *Rasteriser) strokeSubpath(pts []vec.Vec2, closed bool, d float64) {
	n := len(pts)
	if closed && n > 1 && pts[n-1].Sub(pts[0]).Length() <= zeroLengthThreshold {
		n--
		pts = pts[:n]
	}
	if n == 0 {
		return
	}
	if n == 1 {
		r.addDot(pts[0], d)
		return
	}

	numSegs := n - 1
	if closed {
		numSegs = n
	}
	for i := range numSegs {
		r.addSegment(pts[i], pts[(i+1)%n], d)
	}

	if closed {
		for i := range n {
			prev := pts[(i+n-1)%n]
			r.addJoin(pts[i], direction(prev, pts[i]), direction(pts[i], pts[(i+1)%n]), d)
		}
		return
	}

	for i := 1; i < n-1; i++ {
		r.addJoin(pts[i], direction(pts[i-1], pts[i]), direction(pts[i], pts[i+1]), d)
	}
	r.addCap(pts[0], direction(pts[1], pts[0]), d)
	r.addCap(pts[n-1], direction(pts[n-2], pts[n-1]), d)
}

// direction returns the unit vector pointing from a to b.
func direction(a, b vec.Vec2) vec.Vec2 {
	v := b.Sub(a)
	return v.Mul(1 / v.Length())
}

// normal returns v rotated by 90 degrees.
func normal(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -v.Y, Y: v.X}
}

func (r *Rasteriser) addSegment(a, b vec.Vec2, d float64) {
	n := normal(direction(a, b)).Mul(d)
	r.addPolygon(a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
}

// addJoin fills the wedge on the outer side of the corner at P, where the
// unit tangent changes from t1 to t2.
func (r *Rasteriser) addJoin(P, t1, t2 vec.Vec2, d float64) {
	cos := t1.Dot(t2)
	if cos > 1-collinearityThreshold {
		return
	}

	if r.Join == graphics.LineJoinRound {
		r.addCircle(P, d)
		return
	}

	// The path turns towards +normal if the cross product is positive,
	// the outer side is the other one.
	side := 1.0
	if t1.X*t2.Y-t1.Y*t2.X > 0 {
		side = -1
	}
	n1 := normal(t1).Mul(side)
	n2 := normal(t2).Mul(side)

	if r.Join == graphics.LineJoinMiter && cos > cuspCosineThreshold {
		// ratio of miter length to line width, 1/sin(phi/2) where phi is
		// the angle between the two segments
		ratio := 1 / math.Sqrt((1+cos)/2)
		if ratio <= r.MiterLimit {
			bisector := n1.Add(n2)
			tip := P.Add(bisector.Mul(d * ratio / bisector.Length()))
			r.addPolygon(P, P.Add(n1.Mul(d)), tip, P.Add(n2.Mul(d)))
			return
		}
	}
	r.addPolygon(P, P.Add(n1.Mul(d)), P.Add(n2.Mul(d)))
}

// addCap adds the line cap at the end point P of an open subpath.
// T is the unit tangent pointing away from the line.
func (r *Rasteriser) addCap(P, T vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addCircle(P, d)
	case graphics.LineCapSquare:
		n := normal(T).Mul(d)
		ext := T.Mul(d)
		r.addPolygon(P.Add(n), P.Add(n).Add(ext), P.Sub(n).Add(ext), P.Sub(n))
	}
}

// addDot paints a degenerate subpath. Only round and square caps produce
// output; squares are aligned with the user space axes.
func (r *Rasteriser) addDot(P vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addCircle(P, d)
	case graphics.LineCapSquare:
		r.addPolygon(
			P.Add(vec.Vec2{X: -d, Y: -d}),
			P.Add(vec.Vec2{X: d, Y: -d}),
			P.Add(vec.Vec2{X: d, Y: d}),
			P.Add(vec.Vec2{X: -d, Y: d}),
		)
	}
}

// addCircle adds a polygon approximating the circle of radius d around
// center, within the flatness tolerance.
func (r *Rasteriser) addCircle(center vec.Vec2, d float64) {
	devRadius := max(
		r.transformLinear(vec.Vec2{X: d}).Length(),
		r.transformLinear(vec.Vec2{Y: d}).Length(),
	)

	n := minCircleSegments
	if devRadius > r.Flatness {
		// chord of angle θ deviates by radius*(1-cos(θ/2)) from the arc
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		n = max(n, int(math.Ceil(2*math.Pi/step)))
	}

	start := len(r.polys)
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		r.polys = append(r.polys, center.Add(vec.Vec2{X: d * math.Cos(phi), Y: d * math.Sin(phi)}))
	}
	r.polyOffsets = append(r.polyOffsets, start)
}

// addPolygon stores a polygon with positive orientation.
func (r *Rasteriser) addPolygon(pts ...vec.Vec2) {
	var area float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		area += p.X*q.Y - q.X*p.Y
	}

	start := len(r.polys)
	if area >= 0 {
		r.polys = append(r.polys, pts...)
	} else {
		for i := len(pts) - 1; i >= 0; i-- {
			r.polys = append(r.polys, pts[i])
		}
	}
	r.polyOffsets = append(r.polyOffsets, start)
}

// fillPolygons fills the union of all collected stroke polygons.
func (r *Rasteriser) fillPolygons(emit EmitFunc) {
	r.edges = r.edges[:0]
	for i, start := range r.polyOffsets {
		end := len(r.polys)
		if i+1 < len(r.polyOffsets) {
			end = r.polyOffsets[i+1]
		}
		poly := r.polys[start:end]
		for j, p := range poly {
			r.addEdge(p, poly[(j+1)%len(poly)])
		}
	}
	r.scan(fillNonZero, emit)
}

const (
	// zeroLengthThreshold is the minimal length of a stroked segment.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold detects nearly straight joins, which need no
	// extra geometry.
	collinearityThreshold = 1e-9

	// cuspCosineThreshold detects paths which double back on themselves.
	// Miter joins at cusps are drawn as bevels.
	cuspCosineThreshold = -0.9999

	// minCircleSegments is the minimal number of sides of a round join,
	// round cap or dot.
	minCircleSegments = 8
)
