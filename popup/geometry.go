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

package popup

import (
	"seehuhn.de/go/pdfview/view"
)

// SetTransform installs the current page view geometry and recomputes
// the widget's on-screen bounds from the stored page-space rectangle.
// The embedding viewer calls this whenever zoom, rotation or the
// page's on-screen position change.
func (w *Widget) SetTransform(t view.Transform) {
	w.transform = t
	w.RefreshBounds()
}

// Transform returns the page view geometry the widget currently uses.
func (w *Widget) Transform() view.Transform {
	return w.transform
}

// Bounds returns the widget's on-screen bounds.
func (w *Widget) Bounds() view.Bounds {
	return w.bounds
}

// SetDocumentSize sets the size of the enclosing document view, used
// to keep the widget on-canvas while it is being dragged or resized.
func (w *Widget) SetDocumentSize(width, height float64) {
	w.docW = width
	w.docH = height
}

// SetDragging marks the start or end of an interactive move/resize.
// While a drag is pending, bounds changes are clamped to the document
// view.
func (w *Widget) SetDragging(dragging bool) {
	w.dragging = dragging
}

// SetBounds moves or resizes the widget on screen and writes the new
// position back to the annotation's page-space rectangle, so that the
// stored and the displayed geometry cannot drift apart.
func (w *Widget) SetBounds(b view.Bounds) {
	if w.dragging {
		b = clampBounds(b, w.bounds, w.docW, w.docH)
	}
	w.bounds = b
	w.SyncRect()
	w.requestRefresh()
}

// RefreshBounds recomputes the on-screen bounds from the annotation's
// stored page-space rectangle and the current view transform.
func (w *Widget) RefreshBounds() {
	if w.root == nil {
		return
	}
	w.bounds = w.transform.ToView(w.root.Rect)
	w.requestRefresh()
}

// SyncRect transforms the current on-screen bounds back to page space
// and stores them in the annotation.  Without this step the annotation
// would be mislocated on the next repaint after any UI manipulation.
func (w *Widget) SyncRect() {
	if w.root == nil || w.transform.Zoom <= 0 {
		return
	}
	w.root.Rect = w.transform.ToPage(w.bounds)
}

// SetBoundsRelativeTo places the popup near a point in view space,
// using the minimum usable size, and syncs the page-space rectangle.
// This is used when a popup is first created for an annotation which
// has no stored popup rectangle yet.
func (w *Widget) SetBoundsRelativeTo(x, y float64) {
	w.bounds = view.Bounds{
		X: x + w.transform.OffsetX,
		Y: y + w.transform.OffsetY,
		W: DefaultWidth,
		H: DefaultHeight,
	}
	w.SyncRect()
	w.requestRefresh()
}

// ensureMinSize grows the widget to the minimum usable size, so the
// popup can never collapse into something the user cannot interact
// with.
func (w *Widget) ensureMinSize() {
	b := w.bounds
	if b.W >= DefaultWidth && b.H >= DefaultHeight {
		return
	}
	if b.W < DefaultWidth {
		b.W = DefaultWidth
	}
	if b.H < DefaultHeight {
		b.H = DefaultHeight
	}
	w.bounds = b
	w.SyncRect()
}

// clampBounds keeps an interactively moved or resized widget within
// the document view.  Moving past an edge pins the widget to that
// edge; resizing past an edge shrinks the widget instead of letting it
// leave the canvas.
func clampBounds(b, cur view.Bounds, docW, docH float64) view.Bounds {
	if docW <= 0 || docH <= 0 {
		return b
	}
	if b.X != cur.X || b.Y != cur.Y {
		if b.X < 0 {
			if cur.W != b.W {
				b.W += b.X
			}
			b.X = 0
		} else if b.X+b.W > docW {
			b.X = docW - cur.W
		}
		if b.Y < 0 {
			if cur.H != b.H {
				b.H += b.Y
			}
			b.Y = 0
		} else if b.Y+b.H > docH {
			b.Y = docH - cur.H
		}
	}
	if b.W != cur.W || b.H != cur.H {
		if b.X+b.W > docW {
			b.W = docW - b.X
		} else if b.Y+b.H > docH {
			b.H = docH - b.Y
		}
	}
	return b
}
