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

package main

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/sdf"
	"seehuhn.de/go/sdf/glyph"
	"seehuhn.de/go/sdf/raster"
	"seehuhn.de/go/sdf/testcases"
)

var errUnknownShape = errors.New("unknown shape")

// config holds the settings shared by all commands.
type config struct {
	Scale      float64
	Threshold  float64
	Pad        int
	Oversample int

	// Width and Height give the output size. Zero means the size of the
	// (padded) input.
	Width, Height int

	Depth    int // 8 or 16
	Unsigned bool
}

func (c *config) check() error {
	if c.Oversample < 1 {
		return fmt.Errorf("invalid oversampling factor %d", c.Oversample)
	}
	if c.Pad < 0 {
		return fmt.Errorf("invalid padding %d", c.Pad)
	}
	if c.Threshold < 0 || c.Threshold >= 1 {
		return fmt.Errorf("threshold %g outside [0, 1)", c.Threshold)
	}
	if c.Depth != 8 && c.Depth != 16 {
		return fmt.Errorf("invalid depth %d", c.Depth)
	}
	return nil
}

// parseSize parses a size given as "WxH".
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q, expected WxH", s)
	}
	w, err1 := strconv.Atoi(ws)
	h, err2 := strconv.Atoi(hs)
	if err1 != nil || err2 != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q, expected WxH", s)
	}
	return w, h, nil
}

// parseRune accepts either a single character or a code point written
// as U+XXXX.
func parseRune(s string) (rune, error) {
	if hex, ok := strings.CutPrefix(strings.ToUpper(s), "U+"); ok && len(s) > 2 {
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil || v > utf8.MaxRune {
			return 0, fmt.Errorf("invalid code point %q", s)
		}
		return rune(v), nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("expected a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// render pads m, computes its distance field and converts the field to an
// output image. The mask is at c.Oversample times the output resolution
// and has already been padded by done pixels.
func (c *config) render(m *sdf.Mask, done int) (image.Image, error) {
	n := c.Oversample
	m = m.Pad(c.Pad*n - done)

	gen := sdf.NewGenerator()
	var field *sdf.Field
	var err error
	if c.Unsigned {
		field, err = gen.Unsigned(m)
	} else {
		field, err = gen.Generate(m)
	}
	if err != nil {
		return nil, err
	}
	if c.Unsigned {
		// shown as the outside half of a signed field
		for i, v := range field.Raw {
			field.Raw[i] = -v
		}
	}

	w, h := c.Width, c.Height
	if w == 0 || h == 0 {
		w = (field.Width + n - 1) / n
		h = (field.Height + n - 1) / n
	}

	if w == field.Width && h == field.Height {
		if c.Depth == 16 {
			return field.Gray16(c.Scale), nil
		}
		return field.Gray(c.Scale), nil
	}

	g16 := field.Resize(w, h, c.Scale)
	if c.Depth == 16 {
		return g16, nil
	}
	gray := image.NewGray(g16.Bounds())
	draw.Draw(gray, gray.Bounds(), g16, image.Point{}, draw.Src)
	return gray, nil
}

// fieldFromImage computes the output image for a decoded source image.
func (c *config) fieldFromImage(src image.Image) (image.Image, error) {
	if c.Oversample > 1 {
		b := src.Bounds()
		big := image.NewRGBA(image.Rect(0, 0, b.Dx()*c.Oversample, b.Dy()*c.Oversample))
		draw.CatmullRom.Scale(big, big.Bounds(), src, b, draw.Src, nil)
		src = big
	}
	m, err := sdf.MaskFromImage(src, c.Threshold)
	if err != nil {
		return nil, err
	}
	return c.render(m, 0)
}

// fieldFromShape rasterises a built-in shape and computes its output image.
func (c *config) fieldFromShape(tc testcases.TestCase) (image.Image, error) {
	n := c.Oversample
	alpha := image.NewAlpha(image.Rect(0, 0, tc.Width*n, tc.Height*n))
	r := raster.NewRasteriser(raster.ClipFor(alpha.Rect))
	r.CTM = matrix.Matrix{float64(n), 0, 0, float64(n), 0, 0}

	emit := raster.AlphaEmitter(alpha)
	switch op := tc.Op.(type) {
	case testcases.Fill:
		if op.Rule == testcases.EvenOdd {
			r.FillEvenOdd(tc.Path, emit)
		} else {
			r.FillNonZero(tc.Path, emit)
		}
	case testcases.Stroke:
		r.Width = op.Width
		r.Cap = op.Cap
		r.Join = op.Join
		r.MiterLimit = op.MiterLimit
		r.Stroke(tc.Path, emit)
	}

	m, err := sdf.MaskFromImage(alpha, c.Threshold)
	if err != nil {
		return nil, err
	}
	return c.render(m, 0)
}

// fieldFromGlyph renders one glyph of f and computes its output image.
func (c *config) fieldFromGlyph(f *sfnt.Font, r rune, ppem float64) (image.Image, error) {
	n := c.Oversample
	opts := &glyph.Options{
		Size:    ppem * float64(n),
		Padding: c.Pad * n,
		Scale:   c.Scale,
	}
	m, err := glyph.Mask(f, r, opts)
	if err != nil {
		return nil, err
	}
	return c.render(m, opts.Padding)
}

func runImage(c *config, src, dest string) error {
	fd, err := os.Open(src)
	if err != nil {
		return err
	}
	defer fd.Close()

	img, format, err := image.Decode(fd)
	if err != nil {
		return fmt.Errorf("%s: %w", src, err)
	}
	sdf.Logger().Debug("sdfgen: decoded input",
		slog.String("file", src),
		slog.String("format", format),
		slog.Int("width", img.Bounds().Dx()),
		slog.Int("height", img.Bounds().Dy()))

	out, err := c.fieldFromImage(img)
	if err != nil {
		return fmt.Errorf("%s: %w", src, err)
	}
	return savePNG(dest, out)
}

func runGlyph(c *config, fontFile string, ppem float64, arg, dest string) error {
	r, err := parseRune(arg)
	if err != nil {
		return err
	}
	f, err := loadFont(fontFile)
	if err != nil {
		return err
	}
	out, err := c.fieldFromGlyph(f, r, ppem)
	if err != nil {
		return err
	}
	return savePNG(dest, out)
}

func runShape(c *config, name, dest string) error {
	tc, ok := testcases.Lookup(name)
	if !ok {
		return fmt.Errorf("%q: %w", name, errUnknownShape)
	}
	out, err := c.fieldFromShape(tc)
	if err != nil {
		return err
	}
	return savePNG(dest, out)
}

// loadFont reads a font file. An empty name selects the Go Regular font.
func loadFont(fname string) (*sfnt.Font, error) {
	data := goregular.TTF
	if fname != "" {
		var err error
		data, err = os.ReadFile(fname)
		if err != nil {
			return nil, err
		}
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return f, nil
}

func savePNG(fname string, img image.Image) (err error) {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, fd.Close())
	}()

	if err := png.Encode(fd, img); err != nil {
		return err
	}

	b := img.Bounds()
	sdf.Logger().Info("sdfgen: wrote field",
		slog.String("file", fname),
		slog.Int("width", b.Dx()),
		slog.Int("height", b.Dy()))
	return nil
}
