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
	"context"
	"log/slog"
	"time"

	"seehuhn.de/go/geom/vec"
)

// step is a relative neighbour position used during propagation.
type step struct {
	dx, dy int
}

// Neighbour sets for the two propagation passes. The order within each set
// decides which of several equally near candidates wins, and is kept fixed
// so that output is reproducible.
var (
	forwardRow  = []step{{-1, 0}, {0, -1}, {-1, -1}, {1, -1}}
	forwardBack = []step{{1, 0}}

	backwardRow  = []step{{1, 0}, {0, 1}, {-1, 1}, {1, 1}}
	backwardBack = []step{{-1, 0}}
)

// Generator computes distance fields. Create one instance and reuse it for
// multiple masks. The internal grids grow as needed but never shrink.
//
// A Generator is not safe for concurrent use.
type Generator struct {
	// toFG holds offsets to the nearest foreground pixel,
	// toBG holds offsets to the nearest background pixel.
	toFG, toBG Grid
}

// NewGenerator returns a Generator with empty grids.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate computes the signed distance field of m.
//
// The value at each pixel is the distance to the nearest background pixel
// minus the distance to the nearest foreground pixel. If m has no
// background pixels (or no foreground pixels), the corresponding distances
// saturate near [Distant].
func (g *Generator) Generate(m *Mask) (*Field, error) {
	start := time.Now()
	if err := g.seed(m); err != nil {
		return nil, err
	}
	seeded := time.Now()

	propagate(&g.toFG)
	propagate(&g.toBG)
	propagated := time.Now()

	f := &Field{
		Width:  m.Width,
		Height: m.Height,
		Raw:    make([]float64, m.Width*m.Height),
	}
	for i := range f.Raw {
		f.Raw[i] = g.toBG.cells[i].Length() - g.toFG.cells[i].Length()
	}

	logger := Logger()
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		logger.Debug("sdf: field generated",
			slog.Int("width", m.Width),
			slog.Int("height", m.Height),
			slog.Duration("seed", seeded.Sub(start)),
			slog.Duration("propagate", propagated.Sub(seeded)),
			slog.Duration("merge", time.Since(propagated)),
		)
	}
	return f, nil
}

// Unsigned computes the distance from every pixel to the nearest
// foreground pixel. Foreground pixels have distance zero.
func (g *Generator) Unsigned(m *Mask) (*Field, error) {
	if err := g.seed(m); err != nil {
		return nil, err
	}
	propagate(&g.toFG)

	f := &Field{
		Width:  m.Width,
		Height: m.Height,
		Raw:    make([]float64, m.Width*m.Height),
	}
	for i := range f.Raw {
		f.Raw[i] = g.toFG.cells[i].Length()
	}
	return f, nil
}

// seed initialises both grids from the mask. toFG is zero at
// foreground pixels and Distant elsewhere; toBG is its mirror
// image, Distant minus the toFG seed.
func (g *Generator) seed(m *Mask) error {
	if err := g.toFG.reset(m.Width, m.Height); err != nil {
		return err
	}
	if err := g.toBG.reset(m.Width, m.Height); err != nil {
		return err
	}

	for i, fg := range m.Pix[:m.Width*m.Height] {
		d := float64(Distant)
		if fg {
			d = 0
		}
		g.toFG.cells[i] = vec.Vec2{X: d, Y: d}
		g.toBG.cells[i] = vec.Vec2{X: Distant - d, Y: Distant - d}
	}
	return nil
}

// propagate runs the two chamfer passes over g.
//
// The first pass walks rows top to bottom, pulling offsets from the
// upper-left neighbours and then, right to left, from the right neighbour.
// The second pass mirrors this from the bottom-right corner.
// Every update reads neighbour cells which earlier updates in the same pass
// may already have improved; this is what lets two passes suffice.
func propagate(g *Grid) {
	w, h := g.width, g.height

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			relax(g, x, y, forwardRow)
		}
		for x := w - 1; x >= 0; x-- {
			relax(g, x, y, forwardBack)
		}
	}

	for y := h - 1; y >= 0; y-- {
		for x := w - 1; x >= 0; x-- {
			relax(g, x, y, backwardRow)
		}
		for x := 0; x < w; x++ {
			relax(g, x, y, backwardBack)
		}
	}
}

func relax(g *Grid, x, y int, steps []step) {
	for _, s := range steps {
		g.Update(x, y, s.dx, s.dy)
	}
}
