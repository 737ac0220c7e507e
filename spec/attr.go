package spec

// Attr is https://dom.spec.whatwg.org/#attr
type Attr struct {
	Namespace    string
	Prefix       string
	LocalName    string
	Value        string
	OwnerElement *Element
}

// https://dom.spec.whatwg.org/#concept-attribute-qualified-name
func (a *Attr) Name() string {
	if a.Prefix == "" {
		return a.LocalName
	}
	return a.Prefix + ":" + a.LocalName
}
