package spec

// AttributeStore is the storage side of an element's attribute list. Writes go
// through it and the element's dispatch chain observes them afterwards.
type AttributeStore interface {
	SetAttribute(namespace, localName, value string)
	GetAttribute(namespace, localName string) (string, bool)
	RemoveAttribute(namespace, localName string)
}

func NewNamedNodeMap(oe *Element) *NamedNodeMap {
	return &NamedNodeMap{AssociatedElement: oe}
}

// NamedNodeMap is https://dom.spec.whatwg.org/#interface-namednodemap
// It keeps attributes in insertion order.
type NamedNodeMap struct {
	attrs             []*Attr
	AssociatedElement *Element
}

func (n *NamedNodeMap) Length() int { return len(n.attrs) }

func (n *NamedNodeMap) Item(i int) *Attr {
	if i < 0 || i >= len(n.attrs) {
		return nil
	}
	return n.attrs[i]
}

func (n *NamedNodeMap) GetNamedItem(qn string) *Attr {
	return n.getAttributeByName(qn)
}

// https://dom.spec.whatwg.org/#concept-element-attributes-get-by-name
func (n *NamedNodeMap) getAttributeByName(qn string) *Attr {
	if n.AssociatedElement != nil {
		qn = n.AssociatedElement.normalizeName(qn)
	}

	for _, a := range n.attrs {
		if a.Name() == qn {
			return a
		}
	}

	return nil
}

func (n *NamedNodeMap) indexByNSLocalName(ns, ln string) int {
	for i, a := range n.attrs {
		if a.Namespace == ns && a.LocalName == ln {
			return i
		}
	}
	return -1
}

func (n *NamedNodeMap) GetNamedItemNS(ns, ln string) *Attr {
	if i := n.indexByNSLocalName(ns, ln); i >= 0 {
		return n.attrs[i]
	}
	return nil
}

func (n *NamedNodeMap) GetAttribute(ns, ln string) (string, bool) {
	if a := n.GetNamedItemNS(ns, ln); a != nil {
		return a.Value, true
	}
	return "", false
}

// SetAttribute stores the value, appending a new attribute when none matches
// (ns, ln), and then notifies the owning element.
// https://dom.spec.whatwg.org/#concept-element-attributes-set-value
func (n *NamedNodeMap) SetAttribute(ns, ln, value string) {
	attr := n.GetNamedItemNS(ns, ln)
	if attr == nil {
		attr = &Attr{
			Namespace:    ns,
			LocalName:    ln,
			OwnerElement: n.AssociatedElement,
		}
		n.attrs = append(n.attrs, attr)
	}
	attr.Value = value

	if n.AssociatedElement != nil {
		n.AssociatedElement.afterSetAttr(attr)
	}
}

func (n *NamedNodeMap) RemoveAttribute(ns, ln string) {
	n.RemoveNamedItemNS(ns, ln)
}

// RemoveNamedItemNS returns the removed attribute, or nil if there was none.
func (n *NamedNodeMap) RemoveNamedItemNS(ns, ln string) *Attr {
	i := n.indexByNSLocalName(ns, ln)
	if i < 0 {
		return nil
	}
	attr := n.attrs[i]
	n.attrs = append(n.attrs[:i], n.attrs[i+1:]...)
	attr.OwnerElement = nil
	return attr
}
