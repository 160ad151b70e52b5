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

// Package glyph computes signed distance fields for font glyphs.
//
// Glyph outlines are read with golang.org/x/image/font/sfnt, rasterised
// into an anti-aliased coverage mask and thresholded before the distance
// transform runs. The resulting fields are the usual input for SDF text
// rendering, where one small field per glyph is scaled on the GPU.
package glyph

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sdf"
	"seehuhn.de/go/sdf/raster"
)

// ErrMissingGlyph is returned when a font has no glyph for a rune.
var ErrMissingGlyph = errors.New("glyph: rune not covered by font")

// Options controls how glyph fields are generated.
type Options struct {
	// Size is the font size in pixels per em.
	Size float64

	// Padding is the number of background pixels added on each side of
	// the glyph bounding box. The distance field can only represent
	// distances up to the padding outside the glyph.
	Padding int

	// Scale maps raw distances to display values, see [sdf.Normalize].
	Scale float64
}

// DefaultOptions are used when nil is passed to [Render].
var DefaultOptions = &Options{
	Size:    64,
	Padding: 8,
	Scale:   1.0 / 8,
}

// Outline returns the outline of the glyph for r at the given size, in
// pixel coordinates with the origin on the baseline and y pointing down.
// The returned rectangle is the smallest pixel rectangle containing the
// outline. Glyphs without contours, like the space character, give an
// empty path and an empty rectangle.
func Outline(f *sfnt.Font, r rune, ppem float64) (*path.Data, image.Rectangle, error) {
	var buf sfnt.Buffer
	idx, err := f.GlyphIndex(&buf, r)
	if err != nil {
		return nil, image.Rectangle{}, fmt.Errorf("glyph %q: %w", r, err)
	}
	if idx == 0 {
		return nil, image.Rectangle{}, fmt.Errorf("glyph %q: %w", r, ErrMissingGlyph)
	}

	segs, err := f.LoadGlyph(&buf, idx, fixed.Int26_6(ppem*64), &sfnt.LoadGlyphOptions{})
	if err != nil {
		return nil, image.Rectangle{}, fmt.Errorf("glyph %q: %w", r, err)
	}

	p := &path.Data{}
	if len(segs) == 0 {
		return p, image.Rectangle{}, nil
	}
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			p = p.MoveTo(toVec(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			p = p.LineTo(toVec(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			p = p.QuadTo(toVec(seg.Args[0]), toVec(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			p = p.CubeTo(toVec(seg.Args[0]), toVec(seg.Args[1]), toVec(seg.Args[2]))
		}
	}
	// sfnt leaves the contours implicitly closed
	p = closeSubpaths(p)

	b := segs.Bounds()
	bbox := image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil())
	return p, bbox, nil
}

// closeSubpaths returns a copy of p where every subpath ends with a
// close command.
func closeSubpaths(p *path.Data) *path.Data {
	res := &path.Data{}
	open := false
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				res = res.Close()
			}
			res = res.MoveTo(p.Coords[k])
			open = true
			k++
		case path.CmdLineTo:
			res = res.LineTo(p.Coords[k])
			k++
		case path.CmdQuadTo:
			res = res.QuadTo(p.Coords[k], p.Coords[k+1])
			k += 2
		case path.CmdCubeTo:
			res = res.CubeTo(p.Coords[k], p.Coords[k+1], p.Coords[k+2])
			k += 3
		case path.CmdClose:
			res = res.Close()
			open = false
		}
	}
	if open {
		res = res.Close()
	}
	return res
}

func toVec(p fixed.Point26_6) vec.Vec2 {
	return vec.Vec2{X: float64(p.X) / 64, Y: float64(p.Y) / 64}
}

// Mask rasterises the glyph for r into a thresholded mask. The glyph
// bounding box is placed at (opts.Padding, opts.Padding).
func Mask(f *sfnt.Font, r rune, opts *Options) (*sdf.Mask, error) {
	if opts == nil {
		opts = DefaultOptions
	}
	p, bbox, err := Outline(f, r, opts.Size)
	if err != nil {
		return nil, err
	}

	pad := max(opts.Padding, 0)
	w := bbox.Dx() + 2*pad
	h := bbox.Dy() + 2*pad
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("glyph %q: %dx%d: %w", r, w, h, sdf.ErrInvalidDimensions)
	}

	alpha := image.NewAlpha(image.Rect(0, 0, w, h))
	rast := raster.NewRasteriser(raster.ClipFor(alpha.Rect))
	rast.CTM = matrix.Matrix{1, 0, 0, 1, float64(pad - bbox.Min.X), float64(pad - bbox.Min.Y)}
	rast.FillNonZero(p, raster.AlphaEmitter(alpha))

	sdf.Logger().Debug("glyph: rasterised",
		slog.String("rune", string(r)),
		slog.Float64("ppem", opts.Size),
		slog.Int("width", w),
		slog.Int("height", h))

	return sdf.MaskFromImage(alpha, sdf.DefaultThreshold)
}

// Render computes the signed distance field of the glyph for r.
// If opts is nil, [DefaultOptions] is used.
func Render(f *sfnt.Font, r rune, opts *Options) (*sdf.Field, error) {
	m, err := Mask(f, r, opts)
	if err != nil {
		return nil, err
	}
	return sdf.Compute(m)
}

// RenderGray computes the signed distance field of the glyph for r and
// converts it to an 8-bit image using opts.Scale.
func RenderGray(f *sfnt.Font, r rune, opts *Options) (*image.Gray, error) {
	if opts == nil {
		opts = DefaultOptions
	}
	field, err := Render(f, r, opts)
	if err != nil {
		return nil, err
	}
	return field.Gray(opts.Scale), nil
}

// Advance returns the horizontal advance of the glyph for r in pixels.
func Advance(f *sfnt.Font, r rune, ppem float64) (float64, error) {
	var buf sfnt.Buffer
	idx, err := f.GlyphIndex(&buf, r)
	if err != nil {
		return 0, fmt.Errorf("glyph %q: %w", r, err)
	}
	if idx == 0 {
		return 0, fmt.Errorf("glyph %q: %w", r, ErrMissingGlyph)
	}
	adv, err := f.GlyphAdvance(&buf, idx, fixed.Int26_6(ppem*64), font.HintingNone)
	if err != nil {
		return 0, fmt.Errorf("glyph %q: %w", r, err)
	}
	return float64(adv) / 64, nil
}
