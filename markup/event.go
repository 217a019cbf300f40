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

// EventKind identifies the type of a viewer notification.
type EventKind int

const (
	// AnnotationAdded announces a new annotation on the page.
	AnnotationAdded EventKind = iota + 1

	// AnnotationDeleted announces that an annotation has been removed
	// from the page.  Event.Annotation is the removed annotation.
	AnnotationDeleted

	// AnnotationUpdated announces a field change (contents, color,
	// privacy, geometry) of an existing annotation.
	AnnotationUpdated

	// SummaryUpdated announces that an annotation's contents or
	// privacy flag were edited through a summary widget, so that the
	// popup widget bound to the same annotation can refresh its
	// display.
	SummaryUpdated
)

func (k EventKind) String() string {
	switch k {
	case AnnotationAdded:
		return "AnnotationAdded"
	case AnnotationDeleted:
		return "AnnotationDeleted"
	case AnnotationUpdated:
		return "AnnotationUpdated"
	case SummaryUpdated:
		return "SummaryUpdated"
	default:
		return "Unknown"
	}
}

// Event is one viewer notification.
type Event struct {
	Kind       EventKind
	Annotation *Annotation

	// Source identifies the component which published the event, so
	// that publishers can recognize their own notifications.  May be
	// nil.
	Source any
}

// Bus delivers viewer notifications for one page.
//
// Delivery is synchronous and strictly in publish order: Publish calls
// every subscriber before it returns, and a subscriber which publishes
// further events sees them delivered before its own Publish call
// returns.  All use of a Bus must happen on a single goroutine.
type Bus struct {
	handlers []*func(Event)
}

// NewBus creates an empty notification bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a handler for all events on the bus.  The
// returned function removes the subscription again.
func (b *Bus) Subscribe(fn func(Event)) func() {
	h := &fn
	b.handlers = append(b.handlers, h)
	return func() {
		for i, hi := range b.handlers {
			if hi == h {
				b.handlers = append(b.handlers[:i], b.handlers[i+1:]...)
				break
			}
		}
	}
}

// Publish delivers an event to all subscribers, in subscription order.
func (b *Bus) Publish(e Event) {
	// Iterate over a copy, so that handlers can unsubscribe while an
	// event is being delivered.
	hh := make([]*func(Event), len(b.handlers))
	copy(hh, b.handlers)
	for _, h := range hh {
		if b.subscribed(h) {
			(*h)(e)
		}
	}
}

func (b *Bus) subscribed(h *func(Event)) bool {
	for _, hi := range b.handlers {
		if hi == h {
			return true
		}
	}
	return false
}
