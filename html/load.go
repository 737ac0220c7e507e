// Package html builds spec elements from markup. The tree itself is not kept:
// each element is created in document order and its attributes are replayed
// through the element's attribute store, so every hook chain sees them.
package html

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	xhtml "golang.org/x/net/html"

	"github.com/heathj/htmlattrs/spec"
)

var attrNamespaces = map[string]string{
	"xlink": "http://www.w3.org/1999/xlink",
	"xml":   "http://www.w3.org/XML/1998/namespace",
	"xmlns": "http://www.w3.org/2000/xmlns/",
}

var elementNamespaces = map[string]spec.Namespace{
	"svg":  spec.Svgns,
	"math": spec.Mathmlns,
}

// Load parses r as an HTML document and returns its elements in document order.
func Load(doc *spec.Document, r io.Reader) ([]*spec.Element, error) {
	root, err := xhtml.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "parse html")
	}

	var elements []*spec.Element
	var walk func(n *xhtml.Node)
	walk = func(n *xhtml.Node) {
		if n.Type == xhtml.ElementNode {
			elements = append(elements, createElement(doc, n))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	logrus.WithField("method", "Load").Debugf("loaded %d elements", len(elements))
	return elements, nil
}

func createElement(doc *spec.Document, n *xhtml.Node) *spec.Element {
	var e *spec.Element
	if ns, ok := elementNamespaces[n.Namespace]; ok {
		e = doc.CreateElementNS(ns, n.Data)
	} else {
		e = doc.CreateElement(n.Data)
	}

	for _, a := range n.Attr {
		if a.Namespace == "" {
			e.SetAttribute(a.Key, a.Val)
			continue
		}
		e.SetAttributeNS(attrNamespaces[a.Namespace], a.Key, a.Val)
	}
	return e
}

// ByID returns the first element whose id is id.
func ByID(elements []*spec.Element, id string) *spec.Element {
	for _, e := range elements {
		if e.ID == id {
			return e
		}
	}
	return nil
}
