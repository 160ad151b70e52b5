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
	"fmt"
	"image"
	"image/color"
)

// Mask is a binary classification of a raster into foreground (true) and
// background (false) pixels. Pixels are stored in row-major order.
type Mask struct {
	Width, Height int
	Pix           []bool
}

// NewMask returns an all-background mask of the given size.
func NewMask(width, height int) (*Mask, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("mask %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	return &Mask{
		Width:  width,
		Height: height,
		Pix:    make([]bool, width*height),
	}, nil
}

// At reports whether (x,y) is a foreground pixel.
// Pixels outside the mask are background.
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return false
	}
	return m.Pix[y*m.Width+x]
}

// Set classifies the pixel at (x,y). Set panics if (x,y) is outside the mask.
func (m *Mask) Set(x, y int, foreground bool) {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		panic(fmt.Sprintf("sdf: mask access (%d,%d) outside %dx%d", x, y, m.Width, m.Height))
	}
	m.Pix[y*m.Width+x] = foreground
}

// Count returns the number of foreground pixels.
func (m *Mask) Count() int {
	n := 0
	for _, fg := range m.Pix {
		if fg {
			n++
		}
	}
	return n
}

// Invert returns a new mask with foreground and background swapped.
func (m *Mask) Invert() *Mask {
	res := &Mask{
		Width:  m.Width,
		Height: m.Height,
		Pix:    make([]bool, len(m.Pix)),
	}
	for i, fg := range m.Pix {
		res.Pix[i] = !fg
	}
	return res
}

// Pad returns a new mask with n background pixels added on every side.
// Padding gives the field room to fall off outside shapes which touch the
// border of the original raster.
func (m *Mask) Pad(n int) *Mask {
	if n <= 0 {
		return &Mask{Width: m.Width, Height: m.Height, Pix: append([]bool(nil), m.Pix...)}
	}
	w := m.Width + 2*n
	h := m.Height + 2*n
	res := &Mask{Width: w, Height: h, Pix: make([]bool, w*h)}
	for y := range m.Height {
		copy(res.Pix[(y+n)*w+n:], m.Pix[y*m.Width:(y+1)*m.Width])
	}
	return res
}

// MaskFromImage classifies the pixels of img. A pixel is foreground if its
// brightness, normalised to [0, 1], is strictly greater than threshold.
//
// For alpha and gray images the single channel is used. For all other
// images the red channel is used, which matches gray-scale input stored
// in colour formats. The red value is taken before multiplication with
// alpha, so a partially transparent pixel is classified by its colour.
func MaskFromImage(img image.Image, threshold float64) (*Mask, error) {
	b := img.Bounds()
	m, err := NewMask(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}

	switch img := img.(type) {
	case *image.Alpha:
		for y := range m.Height {
			row := img.Pix[y*img.Stride:]
			for x := range m.Width {
				m.Pix[y*m.Width+x] = float64(row[x])/0xff > threshold
			}
		}
	case *image.Gray:
		for y := range m.Height {
			row := img.Pix[y*img.Stride:]
			for x := range m.Width {
				m.Pix[y*m.Width+x] = float64(row[x])/0xff > threshold
			}
		}
	default:
		for y := range m.Height {
			for x := range m.Width {
				c := color.NRGBA64Model.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA64)
				m.Pix[y*m.Width+x] = float64(c.R)/0xffff > threshold
			}
		}
	}
	return m, nil
}
