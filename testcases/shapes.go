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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"
)

// kappa is the control point distance for approximating a quarter circle
// of radius 1 by a cubic Bézier curve.
const kappa = 0.5522847498307936

var fillCases = []TestCase{
	{
		Name:   "rectangle",
		Path:   Rectangle(16, 16, 48, 48),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Inside: pt(32, 32),
	},
	{
		Name:   "triangle",
		Path:   Triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Inside: pt(32, 40),
	},
	{
		Name:   "star_nonzero",
		Path:   Star(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Inside: pt(32, 32),
	},
	{
		Name:   "star_evenodd",
		Path:   Star(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
		Inside: pt(32, 16),
	},
}

var curveCases = []TestCase{
	{
		Name:   "circle",
		Path:   Circle(64, 64, 40),
		Width:  128,
		Height: 128,
		Op:     Fill{Rule: NonZero},
		Inside: pt(64, 64),
	},
	{
		Name:   "ring",
		Path:   Ring(64, 64, 48, 24),
		Width:  128,
		Height: 128,
		Op:     Fill{Rule: NonZero},
		Inside: pt(64, 28),
	},
	{
		Name:   "ellipse",
		Path:   Ellipse(64, 48, 56, 28),
		Width:  128,
		Height: 96,
		Op:     Fill{Rule: NonZero},
		Inside: pt(64, 48),
	},
	{
		Name:   "drop",
		Path:   drop(64, 112, 52),
		Width:  128,
		Height: 128,
		Op:     Fill{Rule: NonZero},
		Inside: pt(64, 90),
	},
}

var strokeCases = []TestCase{
	{
		Name:   "line_butt",
		Path:   polyline(16, 32, 48, 32),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      8,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
		},
		Inside: pt(32, 32),
	},
	{
		Name:   "line_round",
		Path:   polyline(16, 32, 48, 32),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      8,
			Cap:        graphics.LineCapRound,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
		},
		Inside: pt(32, 32),
	},
	{
		Name:   "line_square",
		Path:   polyline(16, 32, 48, 32),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      8,
			Cap:        graphics.LineCapSquare,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
		},
		Inside: pt(32, 32),
	},
	{
		Name:   "corner_miter",
		Path:   polyline(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      6,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
		},
		Inside: pt(32, 16),
	},
	{
		Name:   "corner_round",
		Path:   polyline(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      6,
			Cap:        graphics.LineCapRound,
			Join:       graphics.LineJoinRound,
			MiterLimit: 10,
		},
		Inside: pt(32, 16),
	},
	{
		Name:   "corner_bevel",
		Path:   polyline(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      6,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinBevel,
			MiterLimit: 10,
		},
		Inside: pt(32, 16),
	},
	{
		Name:   "circle_outline",
		Path:   Circle(32, 32, 20),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      4,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinRound,
			MiterLimit: 10,
		},
		Inside: pt(52, 32),
	},
}

// Rectangle builds an axis-aligned rectangle with corners (x1,y1) and (x2,y2).
func Rectangle(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

// Triangle builds a closed triangle.
func Triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

// Star builds a self-intersecting five-pointed star. Under the even-odd
// rule the central pentagon is left empty.
func Star(cx, cy, r float64) *path.Data {
	p := &path.Data{}
	for k, i := range []int{0, 2, 4, 1, 3} {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		v := pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
		if k == 0 {
			p = p.MoveTo(v)
		} else {
			p = p.LineTo(v)
		}
	}
	return p.Close()
}

// Circle builds an approximate circle from four cubic Bézier curves.
func Circle(cx, cy, r float64) *path.Data {
	return Ellipse(cx, cy, r, r)
}

// Ellipse builds an approximate axis-aligned ellipse from four cubic
// Bézier curves.
func Ellipse(cx, cy, rx, ry float64) *path.Data {
	return appendEllipse(&path.Data{}, cx, cy, rx, ry, false)
}

// Ring builds an annulus. The inner circle runs in the opposite direction,
// so the ring has a hole under both fill rules.
func Ring(cx, cy, outer, inner float64) *path.Data {
	p := appendEllipse(&path.Data{}, cx, cy, outer, outer, false)
	return appendEllipse(p, cx, cy, inner, inner, true)
}

func appendEllipse(p *path.Data, cx, cy, rx, ry float64, reverse bool) *path.Data {
	kx := rx * kappa
	ky := ry * kappa
	if reverse {
		return p.
			MoveTo(pt(cx+rx, cy)).
			CubeTo(pt(cx+rx, cy+ky), pt(cx+kx, cy+ry), pt(cx, cy+ry)).
			CubeTo(pt(cx-kx, cy+ry), pt(cx-rx, cy+ky), pt(cx-rx, cy)).
			CubeTo(pt(cx-rx, cy-ky), pt(cx-kx, cy-ry), pt(cx, cy-ry)).
			CubeTo(pt(cx+kx, cy-ry), pt(cx+rx, cy-ky), pt(cx+rx, cy)).
			Close()
	}
	return p.
		MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy-ky), pt(cx+kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx-kx, cy-ry), pt(cx-rx, cy-ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy+ky), pt(cx-kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx+kx, cy+ry), pt(cx+rx, cy+ky), pt(cx+rx, cy)).
		Close()
}

// drop builds a tear drop shape with its tip at the top, from a quadratic
// and a cubic curve. (bx,by) is the bottom of the drop.
func drop(bx, by, h float64) *path.Data {
	r := h / 3
	cy := by - r
	return (&path.Data{}).
		MoveTo(pt(bx, by-h)).
		QuadTo(pt(bx+r, cy-r), pt(bx+r, cy)).
		CubeTo(pt(bx+r, cy+r*kappa), pt(bx+r*kappa, by), pt(bx, by)).
		CubeTo(pt(bx-r*kappa, by), pt(bx-r, cy+r*kappa), pt(bx-r, cy)).
		QuadTo(pt(bx-r, cy-r), pt(bx, by-h)).
		Close()
}

// polyline builds an open path through the given coordinate pairs.
func polyline(coords ...float64) *path.Data {
	p := (&path.Data{}).MoveTo(pt(coords[0], coords[1]))
	for i := 2; i+1 < len(coords); i += 2 {
		p = p.LineTo(pt(coords[i], coords[i+1]))
	}
	return p
}
