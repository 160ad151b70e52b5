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
	"bytes"
	"image"
	"image/png"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		v, scale, want float64
	}{
		{0, 1, 0.5},
		{1, 1, 1},
		{-1, 1, 0},
		{0.5, 1, 0.75},
		{-0.5, 1, 0.25},
		{1000, 1, 1},
		{-1000, 1, 0},
		{100, DefaultScale, 0.75},
		{-200, DefaultScale, 0},
	}
	for _, c := range cases {
		if got := Normalize(c.v, c.scale); got != c.want {
			t.Errorf("Normalize(%g, %g) = %g, want %g", c.v, c.scale, got, c.want)
		}
	}
}

func testField() *Field {
	return &Field{
		Width:  3,
		Height: 2,
		Raw: []float64{
			-2, -1, 0,
			1, 2, 0.5,
		},
	}
}

func TestFieldNormalized(t *testing.T) {
	f := testField()
	want := []float64{
		0, 0, 0.5,
		1, 1, 0.75,
	}
	if d := cmp.Diff(want, f.Normalized(1)); d != "" {
		t.Errorf("Normalized (-want +got):\n%s", d)
	}
	if got := f.Display(2, 1, 1); got != 0.75 {
		t.Errorf("Display(2,1): expected 0.75, got %g", got)
	}
}

func TestFieldImages(t *testing.T) {
	f := testField()

	gray := f.Gray(1)
	wantGray := []uint8{0, 0, 128, 255, 255, 191}
	if d := cmp.Diff(wantGray, gray.Pix); d != "" {
		t.Errorf("Gray (-want +got):\n%s", d)
	}

	g16 := f.Gray16(1)
	if got := g16.Gray16At(2, 0).Y; got != 32768 {
		t.Errorf("Gray16(2,0): expected 32768, got %d", got)
	}
	if got := g16.Gray16At(0, 1).Y; got != 0xffff {
		t.Errorf("Gray16(0,1): expected 65535, got %d", got)
	}

	rgba := f.RGBA(1)
	for y := range f.Height {
		for x := range f.Width {
			c := rgba.RGBAAt(x, y)
			g := gray.GrayAt(x, y).Y
			if c.R != g || c.G != g || c.B != g || c.A != 0xff {
				t.Errorf("RGBA(%d,%d): expected gray %d, got %v", x, y, g, c)
			}
		}
	}
}

func TestFieldResize(t *testing.T) {
	m := discMask(t, 64, 64, 32, 32, 20)
	f, err := Compute(m)
	if err != nil {
		t.Fatal(err)
	}

	same := f.Resize(64, 64, 0.05)
	if d := cmp.Diff(f.Gray16(0.05).Pix, same.Pix); d != "" {
		t.Errorf("Resize to the same size changed the image (-want +got):\n%s", d)
	}

	small := f.Resize(16, 16, 0.05)
	if b := small.Bounds(); b != image.Rect(0, 0, 16, 16) {
		t.Fatalf("expected 16x16 image, got %v", b)
	}
	centre := small.Gray16At(8, 8).Y
	corner := small.Gray16At(0, 0).Y
	if centre <= 0x8000 || corner >= 0x8000 {
		t.Errorf("expected centre inside and corner outside, got %d and %d", centre, corner)
	}
}

// TestFieldPNG checks that the display image survives a PNG round trip.
func TestFieldPNG(t *testing.T) {
	f := testField()
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, f.Gray(1)); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	m, err := MaskFromImage(img, DefaultThreshold)
	if err != nil {
		t.Fatal(err)
	}
	want := []bool{false, false, true, true, true, true}
	if d := cmp.Diff(want, m.Pix); d != "" {
		t.Errorf("mask from PNG (-want +got):\n%s", d)
	}
}

func TestLogger(t *testing.T) {
	defer SetLogger(nil)

	buf := &strings.Builder{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	m := discMask(t, 8, 8, 4, 4, 2)
	if _, err := Compute(m); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "sdf: field generated") || !strings.Contains(out, "width=8") {
		t.Errorf("unexpected log output: %q", out)
	}

	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger must be silent")
	}
}
