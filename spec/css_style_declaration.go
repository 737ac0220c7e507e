package spec

type CSSModificationAccess uint

const (
	CSSModificationReadWrite CSSModificationAccess = iota
	CSSModificationReadOnly
)

// CSSStyleDeclaration stands in for the element's inline style object. Its
// property model belongs to the CSS object model, not to this package.
// https://drafts.csswg.org/cssom/#the-cssstyledeclaration-interface
type CSSStyleDeclaration struct {
	owner  *Element
	access CSSModificationAccess
}

func newCSSStyleDeclaration(owner *Element, access CSSModificationAccess) *CSSStyleDeclaration {
	return &CSSStyleDeclaration{owner: owner, access: access}
}

func (s *CSSStyleDeclaration) OwnerElement() *Element { return s.owner }
func (s *CSSStyleDeclaration) ReadOnly() bool         { return s.access == CSSModificationReadOnly }

// CSSText reflects the element's style attribute.
func (s *CSSStyleDeclaration) CSSText() string {
	v, _ := s.owner.Attributes.GetAttribute("", "style")
	return v
}
