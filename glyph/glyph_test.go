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

package glyph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"

	"seehuhn.de/go/geom/path"
)

func goRegular(t testing.TB) *sfnt.Font {
	t.Helper()
	f, err := sfnt.Parse(goregular.TTF)
	require.NoError(t, err)
	return f
}

func TestOutline(t *testing.T) {
	f := goRegular(t)

	p, bbox, err := Outline(f, 'O', 64)
	require.NoError(t, err)
	assert.False(t, bbox.Empty())
	assert.Less(t, bbox.Min.Y, 0, "glyph should sit above the baseline")
	assert.LessOrEqual(t, bbox.Max.Y, 2)

	// 'O' has two contours, each ending with a close command
	var moves, closes int
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			moves++
		case path.CmdClose:
			closes++
		}
	}
	assert.Equal(t, 2, moves)
	assert.Equal(t, 2, closes)
}

func TestOutlineScales(t *testing.T) {
	f := goRegular(t)

	_, small, err := Outline(f, 'H', 32)
	require.NoError(t, err)
	_, large, err := Outline(f, 'H', 128)
	require.NoError(t, err)

	assert.InDelta(t, 4*small.Dy(), large.Dy(), 8)
}

func TestMissingGlyph(t *testing.T) {
	f := goRegular(t)

	_, _, err := Outline(f, '\U0010FFFD', 64)
	assert.ErrorIs(t, err, ErrMissingGlyph)

	_, err = Render(f, '\U0010FFFD', nil)
	assert.ErrorIs(t, err, ErrMissingGlyph)

	_, err = Advance(f, '\U0010FFFD', 64)
	assert.ErrorIs(t, err, ErrMissingGlyph)
}

func TestRenderO(t *testing.T) {
	f := goRegular(t)
	opts := &Options{Size: 64, Padding: 6, Scale: 1.0 / 6}

	field, err := Render(f, 'O', opts)
	require.NoError(t, err)

	_, bbox, err := Outline(f, 'O', opts.Size)
	require.NoError(t, err)
	assert.Equal(t, bbox.Dx()+12, field.Width)
	assert.Equal(t, bbox.Dy()+12, field.Height)

	// Along the middle row the field goes outside, ring, hole, ring, outside.
	y := field.Height / 2
	var signs []bool
	for x := range field.Width {
		inside := field.RawAt(x, y) > 0
		if len(signs) == 0 || signs[len(signs)-1] != inside {
			signs = append(signs, inside)
		}
	}
	assert.Equal(t, []bool{false, true, false, true, false}, signs)

	// the hole is outside the glyph
	assert.Less(t, field.Display(field.Width/2, y, opts.Scale), 0.5)
	// the padding corner is as far out as the scale can express
	assert.Equal(t, 0.0, field.Display(0, 0, opts.Scale))
}

func TestRenderSpace(t *testing.T) {
	f := goRegular(t)
	opts := &Options{Size: 32, Padding: 4, Scale: 0.25}

	p, bbox, err := Outline(f, ' ', opts.Size)
	require.NoError(t, err)
	assert.Empty(t, p.Cmds)
	assert.True(t, bbox.Empty())

	field, err := Render(f, ' ', opts)
	require.NoError(t, err)
	assert.Equal(t, 8, field.Width)
	assert.Equal(t, 8, field.Height)
	for i, v := range field.Raw {
		assert.Negative(t, v, "pixel %d", i)
	}

	// without padding there is nothing to render
	_, err = Render(f, ' ', &Options{Size: 32})
	assert.Error(t, err)
}

func TestRenderGray(t *testing.T) {
	f := goRegular(t)

	img, err := RenderGray(f, 'l', nil)
	require.NoError(t, err)

	b := img.Bounds()
	// the stem of the 'l' is in the middle, the padding is background
	assert.Greater(t, img.GrayAt(b.Dx()/2, b.Dy()/2).Y, uint8(128))
	assert.Equal(t, uint8(0), img.GrayAt(0, 0).Y)
}

func TestAdvance(t *testing.T) {
	f := goRegular(t)

	adv, err := Advance(f, 'M', 64)
	require.NoError(t, err)
	assert.Greater(t, adv, 30.0)
	assert.Less(t, adv, 64.0)

	narrow, err := Advance(f, 'i', 64)
	require.NoError(t, err)
	assert.Less(t, narrow, adv)
}

func BenchmarkRender(b *testing.B) {
	f := goRegular(b)
	for b.Loop() {
		if _, err := Render(f, 'g', DefaultOptions); err != nil {
			b.Fatal(err)
		}
	}
}
