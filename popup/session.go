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
	"errors"

	"golang.org/x/text/message"

	"seehuhn.de/go/pdf"

	"seehuhn.de/go/pdfview/markup"
	"seehuhn.de/go/pdfview/view"
)

// ErrEmptyThread is returned when an edit operation needs a selected
// comment but the thread has none.
var ErrEmptyThread = errors.New("no comment selected")

// Selected returns the currently selected annotation, or nil.
func (w *Widget) Selected() *markup.Annotation {
	if n := w.tree.Find(w.selected); n != nil {
		return n.Annot
	}
	return nil
}

// SelectNode changes the selection to the annotation with the given
// reference and refreshes the displayed fields.  References not in the
// current tree are ignored.
func (w *Widget) SelectNode(ref pdf.Reference) {
	n := w.tree.Find(ref)
	if n == nil || n.Annot == nil {
		return
	}
	w.selected = ref
	w.refreshDisplay()
}

// ContentsChanged is called by the embedding text widget whenever the
// user edits the popup text.  The new text is read from the buffer and
// written through to the selected annotation.
//
// A failure to read the buffer is transient: it is logged and the edit
// is dropped; the next keystroke tries again.
func (w *Widget) ContentsChanged() {
	if w.updating || w.buffer == nil {
		return
	}
	text, err := w.buffer.Text()
	if err != nil {
		w.log.Debug().Err(err).Msg("cannot read comment text")
		return
	}
	sel := w.Selected()
	if sel == nil {
		return
	}
	sel.Contents = text
	sel.Modified = w.now()
	w.persist(sel)
	w.notifySelf()
}

// SetPrivate changes the privacy flag of the selected annotation.
func (w *Widget) SetPrivate(private bool) {
	sel := w.Selected()
	if sel == nil {
		return
	}
	sel.Private = private
	sel.Modified = w.now()
	w.displayPrivate = private
	w.persist(sel)
	w.notifySelf()
}

// SetOpen shows or hides the popup and records the new state in the
// document, so that it is restored when the file is opened again.
func (w *Widget) SetOpen(open bool) {
	w.visible = open
	w.ensureMinSize()
	if w.root != nil {
		w.root.Open = open
		w.root.Modified = w.now()
		w.persist(w.root)
	}
	w.requestRefresh()
}

// Reply adds a reply to the currently selected comment and selects it.
//
// The new annotation inherits the thread color from the selected
// comment and the privacy default from the widget configuration.  It
// is placed off-screen and closed; the embedding viewer opens it when
// the user asks for it.  If nothing is selected, the reply is attached
// under the thread's first leaf.
func (w *Widget) Reply(contents string) (*markup.Annotation, error) {
	return w.newReply(w.cfg.UserName, contents, markup.StatusUnknown)
}

// SetReviewStatus records a review state for the selected comment.
// The status is stored as a tagged reply whose title and text are
// generated in the configured locale.
func (w *Widget) SetReviewStatus(status markup.Status) (*markup.Annotation, error) {
	sel := w.Selected()
	if sel == nil {
		return nil, ErrEmptyThread
	}
	title, body := statusText(w.printer, status, sel.Title)
	a, err := w.newReply(title, body, status)
	if err != nil {
		return nil, err
	}
	a.StatusOf = sel.Ref
	return a, nil
}

func (w *Widget) newReply(title, contents string, status markup.Status) (*markup.Annotation, error) {
	sel := w.Selected()
	if sel == nil {
		if leaf := w.tree.FirstLeaf(); leaf != nil {
			sel = leaf.Annot
		}
	}
	if sel == nil {
		return nil, ErrEmptyThread
	}

	now := w.now()
	a := &markup.Annotation{
		Ref:       w.store.NewRef(),
		InReplyTo: sel.Ref,
		Title:     title,
		Contents:  contents,
		Color:     sel.Color,
		Private:   w.cfg.DefaultPrivate,
		Created:   now,
		Modified:  now,
		Status:    status,
	}
	if w.transform.Zoom > 0 {
		// off-screen until the new popup is explicitly opened
		a.Rect = w.transform.ToPage(view.Bounds{X: -20, Y: -20, W: 20, H: 20})
	}
	if err := w.store.Add(a); err != nil {
		return nil, err
	}

	// Attach the new comment as a leaf under the selected node; the
	// flat list and the tree stay consistent without a full rebuild.
	if n := w.tree.Find(sel.Ref); n != nil {
		n.Children = append(n.Children, &Node{Annot: a})
	}
	w.hasReplies = true
	w.selected = a.Ref
	w.refreshDisplay()
	w.requestRefresh()

	w.bus.Publish(markup.Event{
		Kind:       markup.AnnotationAdded,
		Annotation: a,
		Source:     w,
	})
	return a, nil
}

// DeleteSelected removes the selected comment, or the whole thread if
// wholeThread is set.  Every annotation whose reply chain leads to the
// deleted one is removed as well, and the tree is rebuilt from the
// reduced annotation list.
func (w *Widget) DeleteSelected(wholeThread bool) error {
	target := w.Selected()
	if wholeThread {
		target = w.root
	}
	if target == nil {
		return ErrEmptyThread
	}

	if err := w.store.Delete(target.Ref); err != nil {
		return err
	}
	w.bus.Publish(markup.Event{
		Kind:       markup.AnnotationDeleted,
		Annotation: target,
		Source:     w,
	})

	w.deleteReplies(target.Ref)
	w.rebuild()
	w.requestRefresh()
	return nil
}

// deleteReplies removes every annotation which transitively replies to
// ref.  Replies are removed bottom-up, so that no annotation ever
// refers to an already deleted one.
func (w *Widget) deleteReplies(ref pdf.Reference) {
	if ref == 0 {
		return
	}
	// Collect the direct replies before deleting anything; the store
	// slice changes under us otherwise.
	var replies []*markup.Annotation
	for _, a := range w.store.Annotations() {
		if a.InReplyTo == ref {
			replies = append(replies, a)
		}
	}
	for _, a := range replies {
		w.deleteReplies(a.Ref)
		if err := w.store.Delete(a.Ref); err != nil {
			w.log.Warn().Err(err).Stringer("annotation", a.Ref).
				Msg("cannot delete reply")
			continue
		}
		w.bus.Publish(markup.Event{
			Kind:       markup.AnnotationDeleted,
			Annotation: a,
			Source:     w,
		})
	}
}

// notifySelf announces a change of the popup itself (contents shown,
// privacy, open state), so that the enclosing view can relayout.
func (w *Widget) notifySelf() {
	if w.root == nil {
		return
	}
	sel := w.Selected()
	if sel == w.root {
		return // already announced by persist
	}
	w.bus.Publish(markup.Event{
		Kind:       markup.AnnotationUpdated,
		Annotation: w.root,
		Source:     w,
	})
}

func statusText(p *message.Printer, s markup.Status, user string) (title, body string) {
	switch s {
	case markup.StatusAccepted:
		return p.Sprintf("Accepted by %s", user), p.Sprintf("Accepted set by %s.", user)
	case markup.StatusRejected:
		return p.Sprintf("Rejected by %s", user), p.Sprintf("Rejected set by %s.", user)
	case markup.StatusCancelled:
		return p.Sprintf("Cancelled by %s", user), p.Sprintf("Cancelled set by %s.", user)
	case markup.StatusCompleted:
		return p.Sprintf("Completed by %s", user), p.Sprintf("Completed set by %s.", user)
	case markup.StatusMarked:
		return p.Sprintf("Marked by %s", user), p.Sprintf("Marked set by %s.", user)
	case markup.StatusUnmarked:
		return p.Sprintf("Unmarked by %s", user), p.Sprintf("Unmarked set by %s.", user)
	default:
		return p.Sprintf("Reviewed by %s", user), p.Sprintf("Review state cleared by %s.", user)
	}
}
