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
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/pdfview/markup"
)

func TestSelectNode(t *testing.T) {
	r, a := annot(1, 0), annot(2, 1)
	w, _, _ := newTestWidget(t, r, a)
	buf := &echoBuffer{w: w}
	w.SetBuffer(buf)

	w.SelectNode(a.Ref)

	if w.Selected() != a {
		t.Error("selection did not move to the reply")
	}
	if buf.text != a.Contents {
		t.Errorf("buffer shows %q, want %q", buf.text, a.Contents)
	}

	// references outside the tree are ignored
	w.SelectNode(ref(99))
	if w.Selected() != a {
		t.Error("selecting an unknown reference changed the selection")
	}
}

func TestContentsChanged(t *testing.T) {
	r := annot(1, 0)
	w, _, bus := newTestWidget(t, r)
	buf := &echoBuffer{w: w}
	w.SetBuffer(buf)
	updates := record(t, bus, markup.AnnotationUpdated)

	buf.userEdit("new text")

	if r.Contents != "new text" {
		t.Errorf("comment text is %q, want %q", r.Contents, "new text")
	}
	if r.Modified.IsZero() {
		t.Error("modification time not updated")
	}
	if got := len(*updates); got != 1 {
		t.Errorf("got %d update events, want 1", got)
	}
}

func TestContentsReadError(t *testing.T) {
	r := annot(1, 0)
	w, _, _ := newTestWidget(t, r)
	buf := &echoBuffer{w: w}
	w.SetBuffer(buf)

	buf.err = errors.New("text component disposed")
	buf.userEdit("lost edit")

	if r.Contents != "comment 1" {
		t.Errorf("failed buffer read still changed the comment to %q", r.Contents)
	}
}

func TestReply(t *testing.T) {
	yellow := color.DeviceRGB(1, 1, 0)
	r := annot(1, 0)
	r.Color = yellow
	w, store, bus := newTestWidget(t, r)
	added := record(t, bus, markup.AnnotationAdded)

	a, err := w.Reply("I agree")
	if err != nil {
		t.Fatal(err)
	}

	if a.InReplyTo != r.Ref {
		t.Error("reply does not point at the selected comment")
	}
	if a.Title != "alice" {
		t.Errorf("reply title is %q, want the configured user name", a.Title)
	}
	if a.Contents != "I agree" {
		t.Errorf("reply text is %q", a.Contents)
	}
	if a.Color != yellow {
		t.Error("reply did not inherit the thread color")
	}
	if a.Created.IsZero() || a.Modified.IsZero() {
		t.Error("reply timestamps not set")
	}
	if a.Open {
		t.Error("new reply popup starts open")
	}

	if !w.HasReplies() || !w.Thread().Contains(a.Ref) {
		t.Error("reply missing from the thread tree")
	}
	if w.Selected() != a {
		t.Error("selection did not move to the new reply")
	}
	if len(store.Annotations()) != 2 {
		t.Error("reply not added to the page")
	}
	if len(*added) != 1 || (*added)[0].Source != w {
		t.Error("reply was not announced on the bus")
	}
}

func TestReplyChains(t *testing.T) {
	// each reply goes under the current selection, so replying twice
	// builds a chain
	r := annot(1, 0)
	w, _, _ := newTestWidget(t, r)

	first, err := w.Reply("one")
	if err != nil {
		t.Fatal(err)
	}
	second, err := w.Reply("two")
	if err != nil {
		t.Fatal(err)
	}

	if second.InReplyTo != first.Ref {
		t.Error("second reply does not answer the first")
	}
	want := []string{"1@0", "2@1", "3@2"}
	if d := cmp.Diff(want, flatten(w.Thread())); d != "" {
		t.Errorf("unexpected tree after two replies (-want +got):\n%s", d)
	}
}

func TestSetReviewStatus(t *testing.T) {
	r, a := annot(1, 0), annot(2, 1)
	w, _, _ := newTestWidget(t, r, a)
	w.SelectNode(a.Ref)

	s, err := w.SetReviewStatus(markup.StatusAccepted)
	if err != nil {
		t.Fatal(err)
	}

	if s.Title != "Accepted by user2" {
		t.Errorf("status title is %q", s.Title)
	}
	if s.Contents != "Accepted set by user2." {
		t.Errorf("status text is %q", s.Contents)
	}
	if s.Status != markup.StatusAccepted {
		t.Errorf("status is %v, want Accepted", s.Status)
	}
	if s.StatusOf != a.Ref {
		t.Error("status reply does not name the reviewed comment")
	}
	if s.InReplyTo != a.Ref {
		t.Error("status reply is not attached under the reviewed comment")
	}
}

func TestEmptyThread(t *testing.T) {
	store := markup.NewMemStore()
	bus := markup.NewBus()
	w := New(Config{UserName: "alice"}, store, bus, nil)
	defer w.Close()

	if _, err := w.Reply("hello"); err != ErrEmptyThread {
		t.Errorf("Reply returned %v, want ErrEmptyThread", err)
	}
	if _, err := w.SetReviewStatus(markup.StatusAccepted); err != ErrEmptyThread {
		t.Errorf("SetReviewStatus returned %v, want ErrEmptyThread", err)
	}
	if err := w.DeleteSelected(false); err != ErrEmptyThread {
		t.Errorf("DeleteSelected returned %v, want ErrEmptyThread", err)
	}
}

func TestDeleteSelected(t *testing.T) {
	r, a, b := annot(1, 0), annot(2, 1), annot(3, 2)
	w, store, bus := newTestWidget(t, r, a, b)
	deleted := record(t, bus, markup.AnnotationDeleted)

	w.SelectNode(a.Ref)
	if err := w.DeleteSelected(false); err != nil {
		t.Fatal(err)
	}

	// the reply and everything answering it are gone
	if got := len(store.Annotations()); got != 1 {
		t.Fatalf("store holds %d annotations, want 1", got)
	}
	if store.Annotations()[0] != r {
		t.Error("wrong annotation survived the delete")
	}
	if w.HasReplies() {
		t.Error("thread still shows replies")
	}
	if w.Selected() != r {
		t.Error("selection did not fall back to the root")
	}
	if got := len(*deleted); got != 2 {
		t.Errorf("got %d delete events, want 2", got)
	}
}

func TestDeleteWholeThread(t *testing.T) {
	r := annot(1, 0)
	a, b := annot(2, 1), annot(3, 1)
	c := annot(4, 2)
	other := annot(9, 0)
	w, store, bus := newTestWidget(t, r, a, b, c, other)
	deleted := record(t, bus, markup.AnnotationDeleted)

	w.SelectNode(b.Ref)
	if err := w.DeleteSelected(true); err != nil {
		t.Fatal(err)
	}

	if got := len(store.Annotations()); got != 1 || store.Annotations()[0] != other {
		t.Errorf("unrelated annotations affected, store holds %d entries", got)
	}
	if got := len(*deleted); got != 4 {
		t.Errorf("got %d delete events, want 4", got)
	}
}

func TestSetPrivate(t *testing.T) {
	r := annot(1, 0)
	w, _, _ := newTestWidget(t, r)

	w.SetPrivate(true)

	if !r.Private {
		t.Error("privacy flag not set on the annotation")
	}
	if !w.DisplayPrivate() {
		t.Error("privacy toggle not updated")
	}
	if r.Modified.IsZero() {
		t.Error("modification time not updated")
	}
}

func TestSetOpen(t *testing.T) {
	r := annot(1, 0)
	w, _, _ := newTestWidget(t, r)

	if w.Visible() {
		t.Fatal("popup starts visible although the annotation is closed")
	}

	w.SetOpen(true)
	if !w.Visible() || !r.Open {
		t.Error("open state not recorded")
	}

	w.SetOpen(false)
	if w.Visible() || r.Open {
		t.Error("closed state not recorded")
	}
}
