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
	"errors"

	"seehuhn.de/go/pdf"
)

// ErrNotFound is returned by [Store] operations which refer to an
// annotation not present in the store.
var ErrNotFound = errors.New("annotation not found")

// Store gives access to the markup annotations of one page.
//
// The store is the boundary between the viewer and the document model:
// reading the flat annotation list, persisting field changes, and
// adding or deleting annotations all go through it.  Implementations
// are not required to be safe for concurrent use; all viewer
// operations for one page happen on a single goroutine.
type Store interface {
	// Annotations returns the page's markup annotations, in document
	// order.  The returned slice must not be modified by the caller;
	// the *Annotation values are shared.
	Annotations() []*Annotation

	// Add inserts a new annotation into the page.
	Add(*Annotation) error

	// Update persists the current field values of an annotation which
	// is already part of the page.
	Update(*Annotation) error

	// Delete removes the annotation with the given reference.
	Delete(pdf.Reference) error

	// NewRef allocates an unused reference for a new annotation.
	NewRef() pdf.Reference
}

// MemStore is an in-memory [Store].  It is used by the command line
// tools and in tests; a full viewer wires the popup widgets to the
// document file instead.
type MemStore struct {
	annots  []*Annotation
	nextNum uint32
}

// NewMemStore creates a store holding the given annotations.
func NewMemStore(annots ...*Annotation) *MemStore {
	s := &MemStore{}
	s.annots = append(s.annots, annots...)
	return s
}

// Annotations implements the [Store] interface.
func (s *MemStore) Annotations() []*Annotation {
	return s.annots
}

// Add implements the [Store] interface.
func (s *MemStore) Add(a *Annotation) error {
	if a.Ref == 0 {
		return errors.New("annotation has no reference")
	}
	if s.lookup(a.Ref) >= 0 {
		return errors.New("reference already in use")
	}
	s.annots = append(s.annots, a)
	return nil
}

// Update implements the [Store] interface.  Since the annotations are
// shared in memory, there is nothing to write back; Update only checks
// that the annotation is still part of the page.
func (s *MemStore) Update(a *Annotation) error {
	if s.lookup(a.Ref) < 0 {
		return ErrNotFound
	}
	return nil
}

// Delete implements the [Store] interface.
func (s *MemStore) Delete(ref pdf.Reference) error {
	i := s.lookup(ref)
	if i < 0 {
		return ErrNotFound
	}
	s.annots = append(s.annots[:i], s.annots[i+1:]...)
	return nil
}

// NewRef implements the [Store] interface.
func (s *MemStore) NewRef() pdf.Reference {
	for {
		s.nextNum++
		ref := pdf.NewReference(s.nextNum, 0)
		if s.lookup(ref) < 0 {
			return ref
		}
	}
}

func (s *MemStore) lookup(ref pdf.Reference) int {
	for i, a := range s.annots {
		if a.Ref == ref {
			return i
		}
	}
	return -1
}
