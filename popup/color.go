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
	"seehuhn.de/go/pdfview/markup"
)

// reconcileColor restores the invariant that all annotations of one
// thread share a single color.
//
// When trigger is a member of this widget's tree, every other member
// whose color differs is rewritten to trigger's color, stamped with a
// new modification time, and persisted, so that widgets bound to those
// annotations repaint.  Annotations outside the thread are never
// touched.  If nothing differed, this is a no-op.
func (w *Widget) reconcileColor(trigger *markup.Annotation) {
	if !w.tree.Contains(trigger.Ref) {
		return
	}

	changed := false
	for _, a := range w.tree.Annotations() {
		if a.Ref == trigger.Ref || a.Color == trigger.Color {
			continue
		}
		a.Color = trigger.Color
		a.Modified = w.now()
		w.persist(a)
		changed = true
	}

	if changed {
		w.refreshDisplay()
		w.requestRefresh()
	}
}
