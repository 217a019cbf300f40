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

// Package view converts between page space and view space.
//
// Page space is PDF user space: origin at the lower-left corner of the
// page boundary, y growing upwards, units of 1/72 inch.  View space is
// the coordinate system of the rendered page on screen: origin at the
// top-left corner of the document view, y growing downwards, units of
// device pixels.  The two are related by the page boundary, the view
// rotation, the zoom factor, and the on-screen position of the page.
package view

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
)

// Bounds is an on-screen rectangle in view space.
type Bounds struct {
	X, Y, W, H float64
}

// IsEmpty reports whether the rectangle has no area.
func (b Bounds) IsEmpty() bool {
	return b.W <= 0 || b.H <= 0
}

// Transform maps between page space and view space for one page at its
// current rotation, zoom and on-screen position.
//
// Both directions are pure functions of the Transform value.  ToView
// and ToPage are mutual inverses, up to floating point rounding.
type Transform struct {
	// Boundary is the visible page area in page space, normally the
	// page's crop box.
	Boundary pdf.Rectangle

	// Rotation is the view rotation in degrees, one of 0, 90, 180 and
	// 270.  Other values are reduced modulo 360.
	Rotation int

	// Zoom is the view scale factor.  Zoom 1 maps one page unit to one
	// pixel.
	Zoom float64

	// OffsetX, OffsetY is the view-space position of the rendered
	// page's top-left corner within the document view.
	OffsetX, OffsetY float64
}

// ToView maps a page-space rectangle to its on-screen bounds.
func (t Transform) ToView(r pdf.Rectangle) Bounds {
	m := t.pageToView()
	x0, y0 := m.Apply(r.LLx, r.LLy)
	x1, y1 := m.Apply(r.URx, r.URy)
	return Bounds{
		X: math.Min(x0, x1) + t.OffsetX,
		Y: math.Min(y0, y1) + t.OffsetY,
		W: math.Abs(x1 - x0),
		H: math.Abs(y1 - y0),
	}
}

// ToPage maps on-screen bounds back to a page-space rectangle.  The
// result is normalized, so that the lower-left corner really is the
// corner with the smaller coordinates, regardless of the rotation.
func (t Transform) ToPage(b Bounds) pdf.Rectangle {
	m := t.viewToPage()
	x0, y0 := m.Apply(b.X-t.OffsetX, b.Y-t.OffsetY)
	x1, y1 := m.Apply(b.X-t.OffsetX+b.W, b.Y-t.OffsetY+b.H)
	return pdf.Rectangle{
		LLx: math.Min(x0, x1),
		LLy: math.Min(y0, y1),
		URx: math.Max(x0, x1),
		URy: math.Max(y0, y1),
	}
}

// pageToView returns the page-to-view matrix, excluding the viewport
// offset.
func (t Transform) pageToView() matrix.Matrix {
	b := t.Boundary
	z := t.Zoom
	switch normalizeRotation(t.Rotation) {
	case 90:
		return matrix.Matrix{0, z, z, 0, -z * b.LLy, -z * b.LLx}
	case 180:
		return matrix.Matrix{-z, 0, 0, z, z * b.URx, -z * b.LLy}
	case 270:
		return matrix.Matrix{0, -z, -z, 0, z * b.URy, z * b.URx}
	default:
		return matrix.Matrix{z, 0, 0, -z, -z * b.LLx, z * b.URy}
	}
}

// viewToPage returns the inverse of pageToView.
func (t Transform) viewToPage() matrix.Matrix {
	b := t.Boundary
	z := 1 / t.Zoom
	switch normalizeRotation(t.Rotation) {
	case 90:
		return matrix.Matrix{0, z, z, 0, b.LLx, b.LLy}
	case 180:
		return matrix.Matrix{-z, 0, 0, z, b.URx, b.LLy}
	case 270:
		return matrix.Matrix{0, -z, -z, 0, b.URx, b.URy}
	default:
		return matrix.Matrix{z, 0, 0, -z, b.LLx, b.URy}
	}
}

func normalizeRotation(deg int) int {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return deg
}
