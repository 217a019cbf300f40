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
	"golang.org/x/exp/maps"

	"seehuhn.de/go/pdf"

	"seehuhn.de/go/pdfview/markup"
)

// maxThreadDepth bounds the reply nesting the builder and the
// synchronizer will follow.  The in-reply-to references in a PDF file
// form a tree in well-formed documents, but nothing stops a broken
// file from containing a reference cycle; the bound turns such a cycle
// into a truncated thread instead of unbounded recursion.
const maxThreadDepth = 64

// Node is one entry of a popup widget's comment tree.
//
// The root of every tree is synthetic: its Annot field is nil and it
// has exactly one child, the node of the thread's top-level
// annotation.
type Node struct {
	Annot    *markup.Annotation
	Children []*Node
}

// BuildThread builds the reply tree for the given top-level annotation
// from the page's flat annotation list.
//
// Children of a node are the annotations whose InReplyTo field equals
// the node's reference, in the order they appear in all.  The second
// return value reports whether any annotation replies to root, which
// is what decides whether the widget shows the thread view at all.
//
// A nil root yields a tree holding only the synthetic root and a
// single nil child node.
func BuildThread(root *markup.Annotation, all []*markup.Annotation) (*Node, bool) {
	top := &Node{Annot: root}
	tree := &Node{Children: []*Node{top}}
	if root == nil || !hasDirectReply(root.Ref, all) {
		return tree, false
	}
	attachReplies(top, all, 1)
	return tree, true
}

func hasDirectReply(ref pdf.Reference, all []*markup.Annotation) bool {
	if ref == 0 {
		return false
	}
	for _, a := range all {
		if a.InReplyTo == ref {
			return true
		}
	}
	return false
}

func attachReplies(n *Node, all []*markup.Annotation, depth int) {
	if depth >= maxThreadDepth {
		return
	}
	ref := n.Annot.Ref
	if ref == 0 {
		return
	}
	for _, a := range all {
		if a.InReplyTo == ref {
			n.Children = append(n.Children, &Node{Annot: a})
		}
	}
	for _, c := range n.Children {
		attachReplies(c, all, depth+1)
	}
}

// Contains reports whether the subtree holds an annotation with the
// given reference.
func (n *Node) Contains(ref pdf.Reference) bool {
	return n.Find(ref) != nil
}

// Find returns the node wrapping the annotation with the given
// reference, or nil.
func (n *Node) Find(ref pdf.Reference) *Node {
	if n == nil || ref == 0 {
		return nil
	}
	if n.Annot != nil && n.Annot.Ref == ref {
		return n
	}
	for _, c := range n.Children {
		if m := c.Find(ref); m != nil {
			return m
		}
	}
	return nil
}

// Walk calls fn for every annotation in the subtree, parents before
// their replies.  The synthetic root is skipped.
func (n *Node) Walk(fn func(*markup.Annotation)) {
	if n == nil {
		return
	}
	if n.Annot != nil {
		fn(n.Annot)
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Annotations returns all annotations of the subtree, parents before
// their replies.
func (n *Node) Annotations() []*markup.Annotation {
	var res []*markup.Annotation
	n.Walk(func(a *markup.Annotation) {
		res = append(res, a)
	})
	return res
}

// Refs returns the set of references in the subtree, in no particular
// order.
func (n *Node) Refs() []pdf.Reference {
	set := make(map[pdf.Reference]struct{})
	n.Walk(func(a *markup.Annotation) {
		set[a.Ref] = struct{}{}
	})
	return maps.Keys(set)
}

// FirstLeaf returns the leftmost leaf of the subtree.
func (n *Node) FirstLeaf() *Node {
	if n == nil {
		return nil
	}
	for len(n.Children) > 0 {
		n = n.Children[0]
	}
	return n
}
