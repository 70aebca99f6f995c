package view

import (
	"testing"

	"cupid_fragments/internal/style"
)

func TestNodeHelpers(t *testing.T) {
	n := El("p", style.Fragment{"color": "red"}, nil, style.Fragment{"color": "blue", "margin": "0"})
	n.SetAttr("href", "a").SetAttr("href", "b")
	if len(n.Attrs) != 1 {
		t.Fatalf("SetAttr should replace: %+v", n.Attrs)
	}
	if v, ok := n.Attr("href"); !ok || v != "b" {
		t.Fatalf("attr: %q %v", v, ok)
	}
	if s := n.Style(); s["color"] != "blue" || s["margin"] != "0" {
		t.Fatalf("style: %+v", s)
	}

	a := &Node{Tag: "a", Class: "Link"}
	n.Append(nil, a)
	if len(n.Children) != 1 || n.Find("Link") != a || n.Find("a") != a {
		t.Fatalf("append/find broken: %+v", n.Children)
	}
	if n.Find("missing") != nil {
		t.Fatalf("find should return nil for unknown selector")
	}
}
