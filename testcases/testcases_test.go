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

package testcases

import (
	"regexp"
	"slices"
	"testing"
)

var validName = regexp.MustCompile(`^[a-z_]+$`)

func TestNames(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("no test cases")
	}
	if !slices.IsSorted(names) {
		t.Errorf("names are not sorted: %v", names)
	}
	for i, name := range names {
		if !validName.MatchString(name) {
			t.Errorf("invalid name %q", name)
		}
		if i > 0 && names[i-1] == name {
			t.Errorf("duplicate name %q", name)
		}
	}
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		tc, ok := Lookup(name)
		if !ok {
			t.Errorf("Lookup(%q) failed", name)
			continue
		}
		if tc.Path == nil || len(tc.Path.Cmds) == 0 {
			t.Errorf("%s: empty path", name)
		}
		if tc.Width <= 0 || tc.Height <= 0 {
			t.Errorf("%s: invalid canvas %dx%d", name, tc.Width, tc.Height)
		}
		switch op := tc.Op.(type) {
		case Fill:
		case Stroke:
			if op.Width <= 0 {
				t.Errorf("%s: invalid line width %g", name, op.Width)
			}
		default:
			t.Errorf("%s: unexpected operation %T", name, tc.Op)
		}
	}

	if _, ok := Lookup("fill_no_such_shape"); ok {
		t.Error("Lookup found a missing shape")
	}
	if _, ok := Lookup("rectangle"); ok {
		t.Error("Lookup must require the category prefix")
	}
}

func TestFillRuleString(t *testing.T) {
	if NonZero.String() != "nonzero" || EvenOdd.String() != "evenodd" {
		t.Errorf("unexpected names %q, %q", NonZero, EvenOdd)
	}
}

func TestShapesInsideCanvas(t *testing.T) {
	for category, cases := range All {
		for _, tc := range cases {
			for _, p := range tc.Path.Coords {
				if p.X < 0 || p.Y < 0 || p.X > float64(tc.Width) || p.Y > float64(tc.Height) {
					t.Errorf("%s_%s: point %v outside the %dx%d canvas",
						category, tc.Name, p, tc.Width, tc.Height)
					break
				}
			}
		}
	}
}

func TestInsidePixel(t *testing.T) {
	for category, cases := range All {
		for _, tc := range cases {
			if p := tc.InsidePixel(); !p.In(tc.Canvas()) {
				t.Errorf("%s_%s: probe %v outside the canvas", category, tc.Name, p)
			}
		}
	}
}
