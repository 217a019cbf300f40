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

// Package drop routes files dropped onto popup widgets to handlers
// registered by file extension.  The handlers themselves are supplied
// by the embedding application; the viewer core only dispatches.
package drop

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"seehuhn.de/go/pdfview/popup"
)

// Handler processes a file dropped onto a popup widget.
type Handler interface {
	HandleDrop(path string, target *popup.Widget) error
}

// HandlerFunc adapts a function to the [Handler] interface.
type HandlerFunc func(path string, target *popup.Widget) error

// HandleDrop implements the [Handler] interface.
func (f HandlerFunc) HandleDrop(path string, target *popup.Widget) error {
	return f(path, target)
}

// Registry maps file extensions to drop handlers.
type Registry struct {
	log      zerolog.Logger
	handlers map[string]Handler
}

// NewRegistry creates an empty handler registry.
func NewRegistry(log zerolog.Logger) *Registry {
	return &Registry{
		log:      log,
		handlers: make(map[string]Handler),
	}
}

// Register installs a handler for files with the given extension
// (including the leading dot, compared case-insensitively).  Any
// previous handler for the extension is replaced.
func (r *Registry) Register(ext string, h Handler) {
	r.handlers[strings.ToLower(ext)] = h
}

// Dispatch routes a dropped file to the handler registered for its
// extension.  It reports whether a handler accepted the file.
//
// Unsupported extensions and handler errors abort the drop with a log
// entry; no partial state change survives a failed drop.
func (r *Registry) Dispatch(path string, target *popup.Widget) bool {
	ext := strings.ToLower(filepath.Ext(path))
	h, ok := r.handlers[ext]
	if !ok {
		r.log.Debug().Str("file", path).Msg("no drop handler for extension")
		return false
	}
	if err := h.HandleDrop(path, target); err != nil {
		r.log.Debug().Err(err).Str("file", path).Msg("file drop failed")
		return false
	}
	return true
}
