// Package ariahtml adapts golang.org/x/net/html nodes to the aria
// accessor's node contract.
package ariahtml

import (
	"golang.org/x/net/html"

	"github.com/webaccess/aria/pkg/aria"
)

// Node implements aria.Node over a parsed HTML element node.
type Node struct {
	n *html.Node
}

var _ aria.Node = (*Node)(nil)

// Wrap returns an adapter for the given element node.
func Wrap(n *html.Node) *Node {
	return &Node{n: n}
}

// HTML returns the underlying node.
func (w *Node) HTML() *html.Node {
	return w.n
}

func (w *Node) GetAttribute(name string) (value string, ok bool) {
	for _, attr := range w.n.Attr {
		if attr.Namespace == "" && attr.Key == name {
			return attr.Val, true
		}
	}
	return
}

func (w *Node) SetAttribute(name string, value string) {
	for i, attr := range w.n.Attr {
		if attr.Namespace == "" && attr.Key == name {
			w.n.Attr[i].Val = value
			return
		}
	}
	w.n.Attr = append(w.n.Attr, html.Attribute{Key: name, Val: value})
}

func (w *Node) RemoveAttribute(name string) {
	attrs := w.n.Attr[:0]
	for _, attr := range w.n.Attr {
		if attr.Namespace != "" || attr.Key != name {
			attrs = append(attrs, attr)
		}
	}
	w.n.Attr = attrs
}

func (w *Node) ID() string {
	value, _ := w.GetAttribute("id")
	return value
}

func (w *Node) SetID(id string) {
	w.SetAttribute("id", id)
}
