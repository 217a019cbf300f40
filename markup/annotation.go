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

package markup

import (
	"time"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/graphics/color"
)

// Annotation is the viewer's working copy of one markup annotation.
// The document model owns the underlying PDF object; an Annotation
// holds the fields the popup widgets display and edit.  After changing
// any field, callers must persist the annotation through a [Store] and
// announce the change on the page's [Bus].
type Annotation struct {
	// Ref identifies the annotation within the document.
	// The zero reference is never used for a real annotation.
	Ref pdf.Reference

	// InReplyTo refers to the annotation this one is a reply to.
	// Zero if the annotation starts a thread of its own.
	//
	// This corresponds to the /IRT entry in the PDF annotation
	// dictionary.
	InReplyTo pdf.Reference

	// Title is the text label of the annotation's popup title bar,
	// normally the name of the user who added the annotation.
	//
	// This corresponds to the /T entry.
	Title string

	// Subject is the subject of the annotation, if any.
	Subject string

	// Contents is the text of the comment.
	Contents string

	// Color is the annotation color.  All annotations of one reply
	// thread share the same color; see the popup package for how this
	// invariant is restored after edits.
	Color color.Color

	// Created and Modified are the annotation timestamps.  Modified
	// must be updated on every edit.
	Created  time.Time
	Modified time.Time

	// Private marks the annotation contents as private to its author.
	Private bool

	// Open records whether the annotation's popup is shown.
	Open bool

	// Rect is the annotation rectangle in page space (PDF user space).
	Rect pdf.Rectangle

	// Status is the review status carried by this annotation, if it is
	// a review-state reply.  StatusUnknown for ordinary comments.
	Status Status

	// StatusOf refers to the annotation the review status applies to.
	// Only set when Status is not StatusUnknown.
	StatusOf pdf.Reference
}

// IsReply reports whether the annotation is a reply to another
// annotation.
func (a *Annotation) IsReply() bool {
	return a.InReplyTo != 0
}
