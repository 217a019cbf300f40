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

// Status represents the review status of a markup annotation.
//
// A status is recorded in the document as a text annotation which
// replies to the reviewed annotation and carries /State and
// /StateModel entries.
type Status int

// Status values, following the two state models of the PDF
// specification.
const (
	// StatusUnknown indicates an ordinary comment without /State and
	// /StateModel entries.
	StatusUnknown Status = iota

	// Values following the "Marked" state model.
	StatusUnmarked
	StatusMarked

	// Values following the "Review" state model.
	StatusAccepted
	StatusRejected
	StatusCancelled
	StatusCompleted
	StatusNone
)

// Model returns the name of the state model the status belongs to, or
// the empty string for StatusUnknown.
func (s Status) Model() string {
	switch s {
	case StatusUnmarked, StatusMarked:
		return "Marked"
	case StatusAccepted, StatusRejected, StatusCancelled, StatusCompleted, StatusNone:
		return "Review"
	default:
		return ""
	}
}

func (s Status) String() string {
	switch s {
	case StatusUnmarked:
		return "Unmarked"
	case StatusMarked:
		return "Marked"
	case StatusAccepted:
		return "Accepted"
	case StatusRejected:
		return "Rejected"
	case StatusCancelled:
		return "Cancelled"
	case StatusCompleted:
		return "Completed"
	case StatusNone:
		return "None"
	default:
		return "Unknown"
	}
}
