// Package view is the renderable tree the fragments are built into.
package view

import "cupid_fragments/internal/style"

// Markup is HTML the caller guarantees is already sanitized.
// It is inserted verbatim; plain strings never take this path.
type Markup string

type Attr struct {
	Key, Val string
}

// Node is one element of a fragment. A node carries either Text, Markup or
// Children; Text is escaped on output, Markup is not.
type Node struct {
	Tag      string
	Key      string
	Class    string
	Attrs    []Attr
	Styles   []style.Fragment
	Text     string
	Markup   Markup
	Children []*Node
}

func El(tag string, styles ...style.Fragment) *Node {
	return &Node{Tag: tag, Styles: styles}
}

// Style merges the node's fragments in order.
func (n *Node) Style() style.Fragment { return style.Merge(n.Styles...) }

func (n *Node) SetAttr(key, val string) *Node {
	for i := range n.Attrs {
		if n.Attrs[i].Key == key {
			n.Attrs[i].Val = val
			return n
		}
	}
	n.Attrs = append(n.Attrs, Attr{Key: key, Val: val})
	return n
}

func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// Find returns the first node in depth-first order whose class or tag matches sel.
func (n *Node) Find(sel string) *Node {
	if n == nil {
		return nil
	}
	if n.Class == sel || n.Tag == sel {
		return n
	}
	for _, c := range n.Children {
		if f := c.Find(sel); f != nil {
			return f
		}
	}
	return nil
}
