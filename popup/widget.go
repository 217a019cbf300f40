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

// Package popup implements the comment-thread widgets of the viewer.
//
// A popup widget shows the reply thread of one markup annotation: the
// thread tree is derived from the page's flat annotation list by
// following in-reply-to references, edits are written back through the
// page's annotation store, and notifications on the page bus keep all
// widgets bound to the same annotations consistent.
package popup

import (
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"seehuhn.de/go/pdf"

	"seehuhn.de/go/pdfview/markup"
	"seehuhn.de/go/pdfview/view"
)

// Minimum usable popup size, in view-space pixels.
const (
	DefaultWidth  = 215
	DefaultHeight = 150
)

// Config carries the viewer settings a popup widget needs.  All
// values are fixed at construction time.
type Config struct {
	// UserName is the name recorded as the title of new comments.
	UserName string

	// DefaultPrivate is the privacy flag for newly created comments.
	DefaultPrivate bool

	// Locale selects the language for generated review-status text.
	// The zero value means English.
	Locale language.Tag

	// Log receives diagnostics.  The zero value discards everything.
	Log zerolog.Logger
}

// TextBuffer is the editable text area of a popup widget.
//
// The embedding UI implements this interface and calls
// [Widget.ContentsChanged] whenever the user changes the text.  The
// widget calls SetText when the selection changes or when another
// component edited the same annotation; such programmatic updates must
// not be reported back through ContentsChanged (the widget guards
// against this internally, so implementations may simply always call
// ContentsChanged).
type TextBuffer interface {
	// Text returns the current buffer contents.  An error indicates a
	// transient UI problem; the widget logs it and skips the edit.
	Text() (string, error)

	// SetText replaces the buffer contents.
	SetText(string)
}

// Widget is the comment-thread component for one markup annotation.
//
// All methods must be called from the viewer's event goroutine; the
// widget does no locking of its own.
type Widget struct {
	cfg     Config
	store   markup.Store
	bus     *markup.Bus
	log     zerolog.Logger
	printer *message.Printer
	now     func() time.Time
	unsub   func()

	root       *markup.Annotation
	tree       *Node
	selected   pdf.Reference
	hasReplies bool

	transform    view.Transform
	bounds       view.Bounds
	docW, docH   float64
	dragging     bool
	visible      bool

	buffer         TextBuffer
	displayPrivate bool
	updating       bool

	// OnRefresh, if set, is called whenever the widget needs visual
	// revalidation (tree rebuilt, colors changed, bounds changed).
	OnRefresh func()
}

// New creates the popup widget for the given top-level annotation and
// subscribes it to the page bus.  Call [Widget.Close] when the widget
// is removed from the page.
func New(cfg Config, store markup.Store, bus *markup.Bus, root *markup.Annotation) *Widget {
	if cfg.Locale == (language.Tag{}) {
		cfg.Locale = language.English
	}
	w := &Widget{
		cfg:     cfg,
		store:   store,
		bus:     bus,
		log:     cfg.Log,
		printer: message.NewPrinter(cfg.Locale),
		now:     time.Now,
	}
	if root != nil {
		w.selected = root.Ref
		w.visible = root.Open
	}
	w.root = root
	w.rebuild()
	w.unsub = bus.Subscribe(w.HandleEvent)
	return w
}

// Close removes the widget's bus subscription.
func (w *Widget) Close() {
	if w.unsub != nil {
		w.unsub()
		w.unsub = nil
	}
}

// SetBuffer attaches the widget's editable text area and fills it with
// the selected comment's text.
func (w *Widget) SetBuffer(buf TextBuffer) {
	w.buffer = buf
	w.refreshDisplay()
}

// Root returns the thread's top-level annotation.
func (w *Widget) Root() *markup.Annotation {
	return w.root
}

// Thread returns the current comment tree.  The tree is replaced as a
// whole on every rebuild; callers must not hold on to it across
// events.
func (w *Widget) Thread() *Node {
	return w.tree
}

// HasReplies reports whether the thread holds more than the top-level
// annotation.  It decides whether the tree view is shown.
func (w *Widget) HasReplies() bool {
	return w.hasReplies
}

// Visible reports whether the popup is currently shown.
func (w *Widget) Visible() bool {
	return w.visible
}

// SetVisible shows or hides the popup without touching the document.
// Showing the popup enforces the minimum usable size.
func (w *Widget) SetVisible(visible bool) {
	w.visible = visible
	w.ensureMinSize()
	w.requestRefresh()
}

// rebuild derives a fresh comment tree from the page's annotation
// list and re-anchors the selection.
func (w *Widget) rebuild() {
	w.tree, w.hasReplies = BuildThread(w.root, w.store.Annotations())
	if !w.hasReplies || !w.tree.Contains(w.selected) {
		if w.root != nil {
			w.selected = w.root.Ref
		} else {
			w.selected = 0
		}
	}
	w.refreshDisplay()
}

// refreshDisplay repopulates the displayed fields from the selected
// annotation.  The edit callback is muted while the buffer is
// rewritten, so that the update does not loop back as a user edit.
func (w *Widget) refreshDisplay() {
	sel := w.Selected()
	if sel == nil {
		return
	}
	w.displayPrivate = sel.Private
	if w.buffer != nil {
		w.updating = true
		w.buffer.SetText(sel.Contents)
		w.updating = false
	}
}

func (w *Widget) requestRefresh() {
	if w.OnRefresh != nil {
		w.OnRefresh()
	}
}

// DisplayPrivate returns the privacy flag currently shown by the
// widget's privacy toggle.
func (w *Widget) DisplayPrivate() bool {
	return w.displayPrivate
}

// persist writes an annotation back through the store and announces
// the update on the bus.
func (w *Widget) persist(a *markup.Annotation) {
	if err := w.store.Update(a); err != nil {
		w.log.Warn().Err(err).Stringer("annotation", a.Ref).
			Msg("cannot persist annotation")
		return
	}
	w.bus.Publish(markup.Event{
		Kind:       markup.AnnotationUpdated,
		Annotation: a,
		Source:     w,
	})
}
