// Package htmlrender serializes a view tree to HTML.
package htmlrender

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"cupid_fragments/internal/style"
	"cupid_fragments/internal/view"
)

// Render writes n as HTML. Text is escaped; Markup is written byte for
// byte, unparsed, so callers must only pass already-sanitized markup.
func Render(w io.Writer, n *view.Node) error {
	root, err := convert(n)
	if err != nil {
		return err
	}
	return html.Render(w, root)
}

func String(n *view.Node) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func convert(n *view.Node) (*html.Node, error) {
	if n == nil || n.Tag == "" {
		return nil, fmt.Errorf("htmlrender: node without tag")
	}
	el := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}
	if n.Class != "" {
		el.Attr = append(el.Attr, html.Attribute{Key: "class", Val: n.Class})
	}
	for _, a := range n.Attrs {
		el.Attr = append(el.Attr, html.Attribute{Key: a.Key, Val: a.Val})
	}
	if css := style.CSS(n.Style()); css != "" {
		el.Attr = append(el.Attr, html.Attribute{Key: "style", Val: css})
	}

	if n.Text != "" {
		el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Text})
	}
	if n.Markup != "" {
		el.AppendChild(&html.Node{Type: html.RawNode, Data: string(n.Markup)})
	}
	for _, c := range n.Children {
		child, err := convert(c)
		if err != nil {
			return nil, err
		}
		el.AppendChild(child)
	}
	return el, nil
}
