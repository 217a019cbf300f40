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
	"seehuhn.de/go/pdfview/view"
)

// Manager owns the popup widgets of one page.
type Manager struct {
	cfg     Config
	store   markup.Store
	bus     *markup.Bus
	widgets []*Widget
}

// NewManager creates a widget manager for one page.
func NewManager(cfg Config, store markup.Store, bus *markup.Bus) *Manager {
	return &Manager{
		cfg:   cfg,
		store: store,
		bus:   bus,
	}
}

// Add creates the popup widget for the given top-level annotation.
func (m *Manager) Add(root *markup.Annotation) *Widget {
	w := New(m.cfg, m.store, m.bus, root)
	m.widgets = append(m.widgets, w)
	return w
}

// Remove closes a widget and drops it from the page.
func (m *Manager) Remove(w *Widget) {
	for i, wi := range m.widgets {
		if wi == w {
			m.widgets = append(m.widgets[:i], m.widgets[i+1:]...)
			w.Close()
			return
		}
	}
}

// Widgets returns the page's popup widgets in creation order.
func (m *Manager) Widgets() []*Widget {
	return m.widgets
}

// ShowAll opens or closes every popup whose annotation starts a thread
// of its own.  Popups of reply annotations are left alone; they are
// reachable through their thread's popup.
func (m *Manager) ShowAll(open bool) {
	for _, w := range m.widgets {
		if w.root != nil && !w.root.IsReply() {
			w.SetOpen(open)
		}
	}
}

// SetTransform installs new page view geometry on all widgets.
func (m *Manager) SetTransform(t view.Transform) {
	for _, w := range m.widgets {
		w.SetTransform(t)
	}
}

// Close closes all widgets of the page.
func (m *Manager) Close() {
	for _, w := range m.widgets {
		w.Close()
	}
	m.widgets = nil
}
