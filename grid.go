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
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Grid stores, for every pixel of a rectangular raster, the offset from that
// pixel to the nearest seed pixel found so far. The length of the offset is
// the current distance estimate for the pixel.
//
// Offsets are stored in row-major order in a single slice.
type Grid struct {
	width, height int
	cells         []vec.Vec2
}

// NewGrid allocates a grid of the given size with all offsets set to zero.
// It returns ErrInvalidDimensions if width or height is not positive.
func NewGrid(width, height int) (*Grid, error) {
	g := &Grid{}
	if err := g.reset(width, height); err != nil {
		return nil, err
	}
	return g, nil
}

// reset resizes the grid and zeroes all offsets. Existing capacity is
// reused, so a grid never shrinks.
func (g *Grid) reset(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("grid %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	n := width * height
	g.cells = slices.Grow(g.cells[:0], n)[:n]
	clear(g.cells)
	g.width = width
	g.height = height
	return nil
}

// Size returns the width and height of the grid.
func (g *Grid) Size() (width, height int) {
	return g.width, g.height
}

// Contains reports whether (x,y) lies inside the grid.
func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// index maps (x,y) to a row-major index, panicking for out-of-range
// coordinates.
func (g *Grid) index(x, y int) int {
	if !g.Contains(x, y) {
		panic(fmt.Sprintf("sdf: grid access (%d,%d) outside %dx%d", x, y, g.width, g.height))
	}
	return y*g.width + x
}

// Get returns the offset stored at (x,y).
// Get panics if (x,y) is outside the grid.
func (g *Grid) Get(x, y int) vec.Vec2 {
	return g.cells[g.index(x, y)]
}

// Set overwrites the offset stored at (x,y).
// Set panics if (x,y) is outside the grid.
func (g *Grid) Set(x, y int, offset vec.Vec2) {
	g.cells[g.index(x, y)] = offset
}

// Update relaxes the cell (x,y) against its neighbour at (x+dx, y+dy).
//
// The neighbour's offset, translated by (dx,dy) into the frame of (x,y),
// replaces the current offset if its squared length is strictly smaller.
// Ties keep the existing offset. Neighbours outside the grid are ignored.
// Update panics if (x,y) itself is outside the grid.
func (g *Grid) Update(x, y, dx, dy int) {
	i := g.index(x, y)
	nx, ny := x+dx, y+dy
	if !g.Contains(nx, ny) {
		return
	}

	current := g.cells[i]
	candidate := g.cells[ny*g.width+nx].Add(vec.Vec2{X: float64(dx), Y: float64(dy)})
	if candidate.Dot(candidate) < current.Dot(current) {
		g.cells[i] = candidate
	}
}
