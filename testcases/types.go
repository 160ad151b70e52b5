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

// Package testcases provides named vector shapes for tests, benchmarks and
// the sdfgen command.
//
// Every shape comes with the canvas it is meant to be drawn on and a probe
// point inside the painted area, so that callers can check the sign of a
// distance field computed from the shape.
package testcases

import (
	"image"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// TestCase is a shape drawn onto a canvas of fixed size.
type TestCase struct {
	Name   string     // lowercase a-z and _ only
	Path   *path.Data // in pixel coordinates, y pointing down
	Width  int
	Height int
	Op     Operation

	// Inside is a point at least one pixel away from the boundary of the
	// painted area, on the painted side.
	Inside vec.Vec2
}

// Canvas returns the pixel rectangle of the test case.
func (tc *TestCase) Canvas() image.Rectangle {
	return image.Rect(0, 0, tc.Width, tc.Height)
}

// InsidePixel returns the pixel containing tc.Inside.
func (tc *TestCase) InsidePixel() image.Point {
	return image.Pt(int(tc.Inside.X), int(tc.Inside.Y))
}

// Operation is either [Fill] or [Stroke].
type Operation interface {
	isOperation()
}

// FillRule selects how self-overlapping paths are filled.
type FillRule int

// These are the supported fill rules.
const (
	NonZero FillRule = iota
	EvenOdd
)

func (r FillRule) String() string {
	if r == EvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// Fill paints the interior of the path.
type Fill struct {
	Rule FillRule
}

func (Fill) isOperation() {}

// Stroke paints along the path.
type Stroke struct {
	Width      float64
	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64
}

func (Stroke) isOperation() {}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
