package spec

import (
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/net/html/atom"
)

type Namespace uint

const (
	Htmlns Namespace = iota
	Mathmlns
	Svgns
	Xlinkns
	Xmlns
	Xmlnsns
)

// ElementType is the immutable type tag of an element. It picks the chain of
// attribute hooks that runs after every attribute write.
type ElementType uint

const (
	GenericElement ElementType = iota
	HtmlElement
	AnchorElement
	BodyElement
	ButtonElement
	FormElement
	FrameSetElement
	InputElement
	ScriptElement
	TableElement
	TemplateElement
)

var elementTypeNames = [...]string{
	GenericElement:  "Element",
	HtmlElement:     "HTMLElement",
	AnchorElement:   "HTMLAnchorElement",
	BodyElement:     "HTMLBodyElement",
	ButtonElement:   "HTMLButtonElement",
	FormElement:     "HTMLFormElement",
	FrameSetElement: "HTMLFrameSetElement",
	InputElement:    "HTMLInputElement",
	ScriptElement:   "HTMLScriptElement",
	TableElement:    "HTMLTableElement",
	TemplateElement: "HTMLTemplateElement",
}

func (t ElementType) String() string {
	if int(t) < len(elementTypeNames) && elementTypeNames[t] != "" {
		return elementTypeNames[t]
	}
	return "ElementType(" + strconv.Itoa(int(t)) + ")"
}

// htmlElementType maps a lowercase HTML tag name to its type tag. Tags without a
// dedicated interface are plain HTMLElements.
func htmlElementType(localName string) ElementType {
	switch atom.Lookup([]byte(localName)) {
	case atom.A:
		return AnchorElement
	case atom.Body:
		return BodyElement
	case atom.Button:
		return ButtonElement
	case atom.Form:
		return FormElement
	case atom.Frameset:
		return FrameSetElement
	case atom.Input:
		return InputElement
	case atom.Script:
		return ScriptElement
	case atom.Table:
		return TableElement
	case atom.Template:
		return TemplateElement
	}
	return HtmlElement
}

// Reflector is the identity of the script-side object that reflects a node.
type Reflector uuid.UUID

func NewReflector() Reflector { return Reflector(uuid.New()) }

func (r Reflector) String() string { return uuid.UUID(r).String() }

// Element is an individual element that owns an attribute list.
// https://dom.spec.whatwg.org/#interface-element
type Element struct {
	NamespaceURI      Namespace
	Prefix, LocalName string
	ID, ClassName     string
	Attributes        *NamedNodeMap
	OwnerDocument     *Document
	Type              ElementType

	reflector  Reflector
	activation Activatable
	style      LazySlot[*CSSStyleDeclaration]
	dataset    LazySlot[*DOMStringMap]

	*EventTarget
	*HTMLElement
}

func newElement(od *Document, localName string, ns Namespace, t ElementType, prefix string) *Element {
	e := &Element{
		NamespaceURI:  ns,
		Prefix:        prefix,
		LocalName:     localName,
		OwnerDocument: od,
		Type:          t,
		reflector:     NewReflector(),
		EventTarget:   newEventTarget(od.instrumentation()),
	}
	e.Attributes = NewNamedNodeMap(e)
	if ns == Htmlns {
		e.HTMLElement = newHTMLElement(e)
	}
	return e
}

// Reflector returns the identity of the object reflecting this element.
func (e *Element) Reflector() Reflector { return e.reflector }

// IsHTML reports whether the element lives in the HTML namespace.
func (e *Element) IsHTML() bool { return e.NamespaceURI == Htmlns }

// https://dom.spec.whatwg.org/#concept-element-qualified-name
func (e *Element) QualifiedName() string {
	if e.Prefix == "" {
		return e.LocalName
	}
	return e.Prefix + ":" + e.LocalName
}

// attribute names are ASCII-lowercased on HTML elements in HTML documents.
func (e *Element) normalizeName(qualifiedName string) string {
	if e.IsHTML() && e.OwnerDocument != nil && e.OwnerDocument.Type == "html" {
		return asciiLowercase(qualifiedName)
	}
	return qualifiedName
}

// https://infra.spec.whatwg.org/#ascii-lowercase
func asciiLowercase(s string) string {
	for i := 0; i < len(s); i++ {
		if !isASCIIUpper(s[i]) {
			continue
		}
		b := []byte(s)
		for j := i; j < len(b); j++ {
			if isASCIIUpper(b[j]) {
				b[j] += 'a' - 'A'
			}
		}
		return string(b)
	}
	return s
}

func (e *Element) HasAttributes() bool { return e.Attributes.Length() > 0 }

func (e *Element) GetAttributeNames() []string {
	names := make([]string, 0, e.Attributes.Length())
	for _, a := range e.Attributes.attrs {
		names = append(names, a.Name())
	}
	return names
}

// https://dom.spec.whatwg.org/#dom-element-getattribute
func (e *Element) GetAttribute(qualifiedName string) (string, bool) {
	a := e.Attributes.GetNamedItem(qualifiedName)
	if a == nil {
		return "", false
	}
	return a.Value, true
}

func (e *Element) GetAttributeNS(namespace, localName string) (string, bool) {
	return e.Attributes.GetAttribute(namespace, localName)
}

// https://dom.spec.whatwg.org/#dom-element-setattribute
func (e *Element) SetAttribute(qualifiedName, value string) {
	e.Attributes.SetAttribute("", e.normalizeName(qualifiedName), value)
}

func (e *Element) SetAttributeNS(namespace, localName, value string) {
	e.Attributes.SetAttribute(namespace, localName, value)
}

func (e *Element) RemoveAttribute(qualifiedName string) {
	e.Attributes.RemoveAttribute("", e.normalizeName(qualifiedName))
}

func (e *Element) RemoveAttributeNS(namespace, localName string) {
	e.Attributes.RemoveAttribute(namespace, localName)
}

func (e *Element) HasAttribute(qualifiedName string) bool {
	return e.Attributes.GetNamedItem(qualifiedName) != nil
}

func (e *Element) HasAttributeNS(namespace, localName string) bool {
	_, ok := e.Attributes.GetAttribute(namespace, localName)
	return ok
}

func (e *Element) GetAttributeNode(qualifiedName string) *Attr {
	return e.Attributes.GetNamedItem(qualifiedName)
}

// afterSetAttr runs once the store has committed attr.
func (e *Element) afterSetAttr(attr *Attr) {
	e.OwnerDocument.dispatcher().NotifyAttributeSet(e, attr)
}

// AsMaybeActivatable returns the element's activation behavior, if it has one.
func (e *Element) AsMaybeActivatable() Activatable { return e.activation }

// WindowFromNode looks the owning window up through the element's document.
// Elements never hold the window themselves.
func WindowFromNode(e *Element) *Window {
	if e == nil || e.OwnerDocument == nil {
		return nil
	}
	return e.OwnerDocument.DefaultView()
}
