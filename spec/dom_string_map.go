package spec

// DOMStringMap is the dataset view of an element's data-* attributes.
// https://html.spec.whatwg.org/#domstringmap
type DOMStringMap struct {
	element *Element
}

func (m *DOMStringMap) Get(key string) (string, bool) { return m.element.GetCustomAttr(key) }
func (m *DOMStringMap) Set(key, value string) error   { return m.element.SetCustomAttr(key, value) }
func (m *DOMStringMap) Delete(key string)             { m.element.DeleteCustomAttr(key) }

// Keys returns the dataset keys of the element's data-* attributes in
// attribute order. Names with ASCII upper-case letters after the prefix have no
// key and are skipped.
// https://html.spec.whatwg.org/#concept-domstringmap-pairs
func (m *DOMStringMap) Keys() []string {
	var keys []string
	for _, a := range m.element.Attributes.attrs {
		if a.Namespace != "" || hasASCIIUpper(a.LocalName) {
			continue
		}
		if key, ok := DecodeCustomAttrName(a.LocalName); ok {
			keys = append(keys, key)
		}
	}
	return keys
}

func hasASCIIUpper(s string) bool {
	for i := 0; i < len(s); i++ {
		if isASCIIUpper(s[i]) {
			return true
		}
	}
	return false
}
