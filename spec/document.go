package spec

import "strings"

// DocumentOption configures a document at creation time.
type DocumentOption func(*Document)

// WithDispatcher replaces the default attribute dispatch chains.
func WithDispatcher(d *Dispatcher) DocumentOption {
	return func(doc *Document) { doc.mutations = d }
}

// WithInstrumentation reports dispatch and handler activity to i.
func WithInstrumentation(i Instrumentation) DocumentOption {
	return func(doc *Document) { doc.instrument = i }
}

// Document is https://dom.spec.whatwg.org/#interface-document
type Document struct {
	URL  string
	Type string

	defaultView *Window
	mutations   *Dispatcher
	instrument  Instrumentation
}

func NewHTMLDocument(opts ...DocumentOption) *Document {
	d := &Document{URL: "about:blank", Type: "html"}
	for _, opt := range opts {
		opt(d)
	}
	if d.instrument == nil {
		d.instrument = nopInstrumentation{}
	}
	if d.mutations == nil {
		d.mutations = NewDefaultDispatcher()
	}
	return d
}

// DefaultView is nil for documents without a browsing context.
func (d *Document) DefaultView() *Window {
	if d == nil {
		return nil
	}
	return d.defaultView
}

func (d *Document) dispatcher() *Dispatcher {
	if d == nil || d.mutations == nil {
		return defaultDispatcher
	}
	return d.mutations
}

func (d *Document) instrumentation() Instrumentation {
	if d == nil || d.instrument == nil {
		return nopInstrumentation{}
	}
	return d.instrument
}

// CreateElement is https://dom.spec.whatwg.org/#dom-document-createelement
func (d *Document) CreateElement(localName string) *Element {
	if d.Type == "html" {
		localName = asciiLowercase(localName)
	}
	return newElement(d, localName, Htmlns, htmlElementType(localName), "")
}

// CreateElementNS creates an element outside the type table. Only the HTML
// namespace gets HTML element types.
func (d *Document) CreateElementNS(ns Namespace, qualifiedName string) *Element {
	prefix, localName := "", qualifiedName
	if i := strings.IndexByte(qualifiedName, ':'); i >= 0 {
		prefix, localName = qualifiedName[:i], qualifiedName[i+1:]
	}
	t := GenericElement
	if ns == Htmlns {
		t = htmlElementType(localName)
	}
	return newElement(d, localName, ns, t, prefix)
}
