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

// Package sdf computes signed distance fields from binary masks.
//
// A [Mask] classifies every pixel as foreground or background. A [Generator]
// turns the mask into a [Field] holding, for every pixel, the distance to the
// nearest background pixel minus the distance to the nearest foreground
// pixel. Values are positive inside the foreground and negative outside.
//
// Distances are computed with the 8-point signed sequential Euclidean
// distance transform (8SSEDT): two grids of offset vectors, one seeded at
// the foreground and one at the background, are each relaxed in two raster
// passes and then merged. The result is an approximation of the Euclidean
// distance which is exact along axis-aligned and diagonal rays.
//
// The field can be used directly, or normalised into [0, 1] for display and
// storage with [Normalize]. A scale of [DefaultScale] maps 200 pixels of
// distance to the full output range.
package sdf

import (
	"errors"
)

// ErrInvalidDimensions is returned when a grid, mask or field is requested
// with a non-positive width or height.
var ErrInvalidDimensions = errors.New("sdf: width and height must be positive")

// Distant is the seed magnitude used for "no seed known yet". Both
// components of an unseeded offset are set to this value.
//
// The value is finite so that seed arithmetic like Distant-0 and
// Distant-Distant stays exact, and it is much larger than any distance
// that can occur inside a raster.
const Distant = 1 << 24

// DefaultScale is the default factor applied to raw distances before they
// are clamped into the display range.
const DefaultScale = 0.005

// DefaultThreshold is the default brightness above which a pixel is
// considered foreground.
const DefaultThreshold = 0.5

// Compute returns the signed distance field of m.
// This is a shortcut for NewGenerator().Generate(m).
func Compute(m *Mask) (*Field, error) {
	return NewGenerator().Generate(m)
}
