// seehuhn.de/go/pdfview - interactive viewer components for PDF files
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

package view

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/pdf"
)

func TestRoundTrip(t *testing.T) {
	boundary := pdf.Rectangle{LLx: 10, LLy: 20, URx: 610, URy: 820}
	pageRect := pdf.Rectangle{LLx: 72, LLy: 100, URx: 287, URy: 250}

	approx := cmpopts.EquateApprox(0, 1e-9)

	for _, rot := range []int{0, 90, 180, 270} {
		for _, zoom := range []float64{0.5, 1.0, 2.0} {
			t.Run(fmt.Sprintf("rot%d-zoom%g", rot, zoom), func(t *testing.T) {
				tr := Transform{
					Boundary: boundary,
					Rotation: rot,
					Zoom:     zoom,
					OffsetX:  37,
					OffsetY:  -12.5,
				}
				got := tr.ToPage(tr.ToView(pageRect))
				if d := cmp.Diff(pageRect, got, approx); d != "" {
					t.Errorf("round trip changed rectangle (-want +got):\n%s", d)
				}
			})
		}
	}
}

func TestOrientation(t *testing.T) {
	boundary := pdf.Rectangle{LLx: 0, LLy: 0, URx: 600, URy: 800}
	// a small square in the top-left corner of the upright page
	r := pdf.Rectangle{LLx: 0, LLy: 790, URx: 10, URy: 800}

	type expect struct {
		rot  int
		want Bounds
	}
	cases := []expect{
		// upright: top-left corner of the page is top-left on screen
		{0, Bounds{X: 0, Y: 0, W: 10, H: 10}},
		// 90 degrees: the page's top edge becomes the right edge
		{90, Bounds{X: 790, Y: 0, W: 10, H: 10}},
		// 180 degrees: the corner moves to the bottom right
		{180, Bounds{X: 590, Y: 790, W: 10, H: 10}},
		// 270 degrees: the page's top edge becomes the left edge
		{270, Bounds{X: 0, Y: 590, W: 10, H: 10}},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("rot%d", c.rot), func(t *testing.T) {
			tr := Transform{Boundary: boundary, Rotation: c.rot, Zoom: 1}
			got := tr.ToView(r)
			if d := cmp.Diff(c.want, got, cmpopts.EquateApprox(0, 1e-9)); d != "" {
				t.Errorf("unexpected view bounds (-want +got):\n%s", d)
			}
		})
	}
}

func TestZoomScalesBounds(t *testing.T) {
	tr := Transform{
		Boundary: pdf.Rectangle{LLx: 0, LLy: 0, URx: 600, URy: 800},
		Zoom:     2,
	}
	got := tr.ToView(pdf.Rectangle{LLx: 100, LLy: 100, URx: 200, URy: 300})
	if got.W != 200 || got.H != 400 {
		t.Errorf("zoom 2 gave size %gx%g, want 200x400", got.W, got.H)
	}
}

func TestOffset(t *testing.T) {
	tr := Transform{
		Boundary: pdf.Rectangle{LLx: 0, LLy: 0, URx: 100, URy: 100},
		Zoom:     1,
		OffsetX:  50,
		OffsetY:  60,
	}
	got := tr.ToView(pdf.Rectangle{LLx: 0, LLy: 90, URx: 10, URy: 100})
	want := Bounds{X: 50, Y: 60, W: 10, H: 10}
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Errorf("offset not applied (-want +got):\n%s", d)
	}
}

func TestToPageNormalizes(t *testing.T) {
	// Under rotation the transformed corners can swap; the page-space
	// result must still have LL <= UR.
	for _, rot := range []int{0, 90, 180, 270} {
		tr := Transform{
			Boundary: pdf.Rectangle{LLx: 0, LLy: 0, URx: 600, URy: 800},
			Rotation: rot,
			Zoom:     1.5,
		}
		got := tr.ToPage(Bounds{X: 30, Y: 40, W: 215, H: 150})
		if got.LLx > got.URx || got.LLy > got.URy {
			t.Errorf("rot %d: rectangle not normalized: %v", rot, got)
		}
		if math.IsNaN(got.LLx) || math.IsInf(got.LLx, 0) {
			t.Errorf("rot %d: bad coordinates: %v", rot, got)
		}
	}
}
