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

package sdf

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// Field holds one distance value per pixel in row-major order.
// For signed fields, values are positive inside the foreground.
type Field struct {
	Width, Height int
	Raw           []float64
}

// RawAt returns the unnormalised distance value at (x,y).
func (f *Field) RawAt(x, y int) float64 {
	return f.Raw[y*f.Width+x]
}

// Display returns the value at (x,y), normalised into [0, 1].
func (f *Field) Display(x, y int, scale float64) float64 {
	return Normalize(f.RawAt(x, y), scale)
}

// Normalized returns all values of the field, normalised into [0, 1].
func (f *Field) Normalized(scale float64) []float64 {
	res := make([]float64, len(f.Raw))
	for i, v := range f.Raw {
		res[i] = Normalize(v, scale)
	}
	return res
}

// Normalize maps a raw distance v into [0, 1]. The distance is multiplied
// by scale and clamped to [-1, 1]; -1 maps to 0, 0 to 0.5 and 1 to 1.
// The scale must be positive.
func Normalize(v, scale float64) float64 {
	return (1 + max(-1, min(v*scale, 1))) / 2
}

// Gray returns the normalised field as an 8-bit gray image.
func (f *Field) Gray(scale float64) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, f.Width, f.Height))
	for y := range f.Height {
		row := img.Pix[y*img.Stride:]
		for x := range f.Width {
			row[x] = uint8(math.Round(f.Display(x, y, scale) * 0xff))
		}
	}
	return img
}

// Gray16 returns the normalised field as a 16-bit gray image.
func (f *Field) Gray16(scale float64) *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, f.Width, f.Height))
	for y := range f.Height {
		for x := range f.Width {
			v := uint16(math.Round(f.Display(x, y, scale) * 0xffff))
			img.SetGray16(x, y, color.Gray16{Y: v})
		}
	}
	return img
}

// RGBA returns the normalised field with the value replicated into the red,
// green and blue channels of an opaque image.
func (f *Field) RGBA(scale float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := range f.Height {
		row := img.Pix[y*img.Stride:]
		for x := range f.Width {
			v := uint8(math.Round(f.Display(x, y, scale) * 0xff))
			row[4*x+0] = v
			row[4*x+1] = v
			row[4*x+2] = v
			row[4*x+3] = 0xff
		}
	}
	return img
}

// Resize resamples the normalised field to the given size using Catmull-Rom
// interpolation. A field generated at a multiple of the target resolution
// and then downscaled is smoother than one generated at the target size.
func (f *Field) Resize(width, height int, scale float64) *image.Gray16 {
	src := f.Gray16(scale)
	if width == f.Width && height == f.Height {
		return src
	}
	dst := image.NewGray16(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
