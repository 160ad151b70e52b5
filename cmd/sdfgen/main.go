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

// Sdfgen writes signed distance fields as PNG images.
//
// The input can be a raster image, a font glyph or one of the built-in
// test shapes:
//
//	sdfgen image logo.png logo-sdf.png
//	sdfgen --pad 8 glyph --ppem 64 A a.png
//	sdfgen --depth 16 shape curve_ring ring.png
//	sdfgen list
package main

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"seehuhn.de/go/sdf"
	"seehuhn.de/go/sdf/testcases"
)

var (
	app = kingpin.New("sdfgen", "Generate signed distance fields.")

	scaleFlag      = app.Flag("scale", "multiply distances by this before mapping to [0, 1].").Default("0.005").Float64()
	thresholdFlag  = app.Flag("threshold", "input intensity above which a pixel is foreground.").Default("0.5").Float64()
	padFlag        = app.Flag("pad", "pad the input with this many background pixels on all sides.").Default("0").Int()
	oversampleFlag = app.Flag("oversample", "compute the field at this many times the output resolution.").Default("1").Int()
	sizeFlag       = app.Flag("size", "output size as WxH (default: input size).").String()
	depthFlag      = app.Flag("depth", "bits per output sample.").Default("8").Enum("8", "16")
	modeFlag       = app.Flag("mode", "signed distance, or unsigned distance to the foreground.").Default("signed").Enum("signed", "unsigned")
	verboseFlag    = app.Flag("verbose", "log progress information.").Short('v').Bool()

	imageCmd  = app.Command("image", "compute the field of a raster image.")
	imageSrc  = imageCmd.Arg("src", "source image (png, jpeg, gif, bmp, tiff or webp)").Required().ExistingFile()
	imageDest = imageCmd.Arg("dest", "destination PNG file").Required().String()

	glyphCmd  = app.Command("glyph", "compute the field of a font glyph.")
	glyphFont = glyphCmd.Flag("font", "TrueType or OpenType font file (default: Go Regular).").ExistingFile()
	glyphPPEM = glyphCmd.Flag("ppem", "font size in pixels per em.").Default("64").Float64()
	glyphRune = glyphCmd.Arg("rune", "the character, or its code point as U+XXXX").Required().String()
	glyphDest = glyphCmd.Arg("dest", "destination PNG file").Required().String()

	shapeCmd  = app.Command("shape", "compute the field of a built-in shape.")
	shapeName = shapeCmd.Arg("name", "shape name, see the list command").Required().String()
	shapeDest = shapeCmd.Arg("dest", "destination PNG file").Required().String()

	listCmd = app.Command("list", "list the built-in shapes.")
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	level := slog.LevelInfo
	if *verboseFlag {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	sdf.SetLogger(logger)

	cfg, err := configFromFlags()
	app.FatalIfError(err, "")

	switch command {
	case imageCmd.FullCommand():
		err = runImage(cfg, *imageSrc, *imageDest)
	case glyphCmd.FullCommand():
		err = runGlyph(cfg, *glyphFont, *glyphPPEM, *glyphRune, *glyphDest)
	case shapeCmd.FullCommand():
		err = runShape(cfg, *shapeName, *shapeDest)
	case listCmd.FullCommand():
		for _, name := range testcases.Names() {
			fmt.Println(name)
		}
	}
	app.FatalIfError(err, "")
}

func configFromFlags() (*config, error) {
	cfg := &config{
		Scale:      *scaleFlag,
		Threshold:  *thresholdFlag,
		Pad:        *padFlag,
		Oversample: *oversampleFlag,
		Depth:      8,
		Unsigned:   *modeFlag == "unsigned",
	}
	if *depthFlag == "16" {
		cfg.Depth = 16
	}
	if *sizeFlag != "" {
		w, h, err := parseSize(*sizeFlag)
		if err != nil {
			return nil, err
		}
		cfg.Width, cfg.Height = w, h
	}
	if err := cfg.check(); err != nil {
		return nil, err
	}
	return cfg, nil
}
