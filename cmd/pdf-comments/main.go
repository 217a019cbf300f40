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

// Pdf-comments lists the markup annotation threads of a PDF file.
//
// Usage:
//
//	pdf-comments [-p password] file.pdf
//
// For every page, the comments are printed as indented reply trees, in
// the same structure a viewer's popup widgets would show.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/pdf/pagetree"

	"seehuhn.de/go/pdfview/markup"
	"seehuhn.de/go/pdfview/popup"
)

func main() {
	passwdArg := flag.String("p", "", "PDF password")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: pdf-comments [-p password] file.pdf")
		os.Exit(1)
	}

	tryPasswd := func(_ []byte, try int) string {
		if *passwdArg != "" && try == 0 {
			return *passwdArg
		}
		fmt.Print("password: ")
		passwd, err := term.ReadPassword(syscall.Stdin)
		fmt.Println("***")
		check(err)
		return string(passwd)
	}

	err := listComments(flag.Arg(0), tryPasswd)
	check(err)
}

func check(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func listComments(fname string, readPwd func([]byte, int) string) error {
	fd, err := os.Open(fname)
	if err != nil {
		return err
	}
	defer fd.Close()

	opt := &pdf.ReaderOptions{
		ReadPassword: readPwd,
	}
	r, err := pdf.NewReader(fd, opt)
	if err != nil {
		return err
	}

	numPages, err := pagetree.NumPages(r)
	if err != nil {
		return err
	}

	for pageNo := 0; pageNo < numPages; pageNo++ {
		_, pageDict, err := pagetree.GetPage(r, pageNo)
		if err != nil {
			return err
		}

		annots, err := readMarkup(r, pageDict)
		if err != nil {
			return err
		}
		if len(annots) == 0 {
			continue
		}

		fmt.Printf("page %d:\n", pageNo+1)
		for _, a := range annots {
			if a.IsReply() {
				continue
			}
			tree, _ := popup.BuildThread(a, annots)
			printThread(tree, 0)
		}
		fmt.Println()
	}
	return nil
}

func printThread(n *popup.Node, depth int) {
	if n.Annot != nil {
		indent := strings.Repeat("    ", depth)
		a := n.Annot
		line := a.Contents
		if i := strings.IndexByte(line, '\n'); i >= 0 {
			line = line[:i] + " ..."
		}
		fmt.Printf("%s- %s", indent, a.Title)
		if !a.Created.IsZero() {
			fmt.Printf(" (%s)", a.Created.Format("2006-01-02 15:04"))
		}
		if a.Status != markup.StatusUnknown {
			fmt.Printf(" [%s]", a.Status)
		}
		fmt.Printf(": %s\n", line)
		depth++
	}
	for _, c := range n.Children {
		printThread(c, depth)
	}
}

// markupTypes lists the annotation subtypes which take part in comment
// threads.
var markupTypes = map[pdf.Name]bool{
	"Text":           true,
	"FreeText":       true,
	"Line":           true,
	"Square":         true,
	"Circle":         true,
	"Polygon":        true,
	"PolyLine":       true,
	"Highlight":      true,
	"Underline":      true,
	"Squiggly":       true,
	"StrikeOut":      true,
	"Stamp":          true,
	"Caret":          true,
	"Ink":            true,
	"FileAttachment": true,
	"Sound":          true,
	"Redact":         true,
}

// readMarkup collects the markup annotations of one page into the
// viewer's working model.  Annotations without an indirect reference
// cannot take part in reply threads and are skipped.
func readMarkup(r pdf.Getter, pageDict pdf.Dict) ([]*markup.Annotation, error) {
	annots, err := pdf.GetArray(r, pageDict["Annots"])
	if err != nil {
		return nil, err
	}

	var res []*markup.Annotation
	for _, obj := range annots {
		ref, ok := obj.(pdf.Reference)
		if !ok {
			continue
		}
		dict, err := pdf.GetDict(r, obj)
		if err != nil || dict == nil {
			continue
		}
		subtype, err := pdf.GetName(r, dict["Subtype"])
		if err != nil || !markupTypes[subtype] {
			continue
		}

		a := &markup.Annotation{Ref: ref}
		if irt, ok := dict["IRT"].(pdf.Reference); ok {
			a.InReplyTo = irt
		}
		if s, err := pdf.GetString(r, dict["Contents"]); err == nil {
			a.Contents = string(s.AsTextString())
		}
		if s, err := pdf.GetString(r, dict["T"]); err == nil {
			a.Title = string(s.AsTextString())
		}
		if s, err := pdf.GetString(r, dict["Subj"]); err == nil {
			a.Subject = string(s.AsTextString())
		}
		if s, err := pdf.GetString(r, dict["CreationDate"]); err == nil {
			if t, err := s.AsDate(); err == nil {
				a.Created = time.Time(t)
			}
		}
		if s, err := pdf.GetString(r, dict["M"]); err == nil {
			if t, err := s.AsDate(); err == nil {
				a.Modified = time.Time(t)
			}
		}
		if open, err := pdf.GetBoolean(r, dict["Open"]); err == nil {
			a.Open = bool(open)
		}
		if rect, err := pdf.GetRectangle(r, dict["Rect"]); err == nil && rect != nil {
			a.Rect = *rect
		}
		if s, err := pdf.GetString(r, dict["State"]); err == nil {
			a.Status = parseStatus(string(s.AsTextString()))
		}
		a.Color = readColor(r, dict["C"])

		res = append(res, a)
	}
	return res, nil
}

func readColor(r pdf.Getter, obj pdf.Object) color.Color {
	arr, _ := pdf.GetArray(r, obj)
	vals := make([]float64, len(arr))
	for i, v := range arr {
		if num, err := pdf.GetNumber(r, v); err == nil {
			vals[i] = float64(num)
		}
	}
	switch len(vals) {
	case 1:
		return color.DeviceGray(vals[0])
	case 3:
		return color.DeviceRGB(vals[0], vals[1], vals[2])
	case 4:
		return color.DeviceCMYK(vals[0], vals[1], vals[2], vals[3])
	default:
		return nil
	}
}

func parseStatus(state string) markup.Status {
	switch state {
	case "Marked":
		return markup.StatusMarked
	case "Unmarked":
		return markup.StatusUnmarked
	case "Accepted":
		return markup.StatusAccepted
	case "Rejected":
		return markup.StatusRejected
	case "Cancelled":
		return markup.StatusCancelled
	case "Completed":
		return markup.StatusCompleted
	case "None":
		return markup.StatusNone
	default:
		return markup.StatusUnknown
	}
}
