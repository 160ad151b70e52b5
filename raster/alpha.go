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
	"image"

	"seehuhn.de/go/geom/rect"
)

// ClipFor returns the device space clip rectangle covering the pixels of b.
func ClipFor(b image.Rectangle) rect.Rect {
	return rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
}

// AlphaEmitter returns an EmitFunc which composites coverage into dst with
// the "source over" operator. Drawing several paths through the same
// emitter gives the union of their shapes. Coverage outside dst is ignored.
func AlphaEmitter(dst *image.Alpha) EmitFunc {
	b := dst.Rect
	return func(y, xMin int, coverage []float32) {
		if y < b.Min.Y || y >= b.Max.Y {
			return
		}
		row := dst.Pix[(y-b.Min.Y)*dst.Stride:]
		for i, c := range coverage {
			x := xMin + i
			if x < b.Min.X || x >= b.Max.X {
				continue
			}
			k := x - b.Min.X
			a := float32(row[k]) / 0xff
			v := a + c*(1-a)
			row[k] = uint8(min(0xff, v*0xff+0.5))
		}
	}
}
