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
	"seehuhn.de/go/pdf"

	"seehuhn.de/go/pdfview/markup"
)

// HandleEvent keeps the widget's comment tree in sync with annotation
// notifications from the rest of the viewer.
//
// Events about annotations unrelated to this thread are ignored; this
// is the common case and costs no more than a membership scan of the
// tree (plus one ancestry walk for added annotations).
func (w *Widget) HandleEvent(e markup.Event) {
	if e.Source == w || e.Annotation == nil {
		return
	}
	switch e.Kind {
	case markup.AnnotationDeleted:
		if !w.tree.Contains(e.Annotation.Ref) {
			return
		}
		w.rebuild()
		w.requestRefresh()

	case markup.AnnotationAdded:
		if w.tree.Contains(e.Annotation.Ref) {
			return
		}
		if w.replyChainReachesTree(e.Annotation) {
			w.rebuild()
			w.requestRefresh()
		}

	case markup.AnnotationUpdated:
		// Content and color edits do not change the thread structure,
		// so no rebuild is needed; only the shared thread color may
		// have to be reconciled.
		w.reconcileColor(e.Annotation)

	case markup.SummaryUpdated:
		// A summary widget edited an annotation of this thread; mirror
		// the new contents and privacy flag without treating the
		// update as a local edit.
		if w.tree.Contains(e.Annotation.Ref) && e.Annotation.Ref == w.selected {
			w.refreshDisplay()
			w.requestRefresh()
		}
	}
}

// replyChainReachesTree walks the in-reply-to chain of a and reports
// whether it reaches an annotation of the current tree.  The walk is
// depth-bounded: a chain long enough to hit the bound indicates a
// reference cycle in the document, which is logged and treated as
// "unrelated".
func (w *Widget) replyChainReachesTree(a *markup.Annotation) bool {
	byRef := make(map[pdf.Reference]*markup.Annotation)
	for _, b := range w.store.Annotations() {
		byRef[b.Ref] = b
	}

	ref := a.InReplyTo
	for depth := 0; ref != 0; depth++ {
		if depth >= maxThreadDepth {
			w.log.Warn().Stringer("annotation", a.Ref).
				Msg("in-reply-to chain too deep, possible reference cycle")
			return false
		}
		if w.tree.Contains(ref) {
			return true
		}
		parent := byRef[ref]
		if parent == nil {
			return false
		}
		ref = parent.InReplyTo
	}
	return false
}
