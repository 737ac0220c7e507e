package spec

// HTMLAnchorElement is https://html.spec.whatwg.org/#htmlanchorelement
type HTMLAnchorElement struct {
	element *Element
}

// https://html.spec.whatwg.org/#dom-hyperlink-href
func (a *HTMLAnchorElement) Href() string {
	v, _ := a.element.Attributes.GetAttribute("", "href")
	return v
}

// SyntheticClickActivation fires click and, unless it was canceled, asks the
// window to follow the hyperlink.
// https://html.spec.whatwg.org/#the-a-element:activation-behaviour
func (a *HTMLAnchorElement) SyntheticClickActivation(ctrl, shift, alt, meta bool) {
	if !a.element.DispatchEvent(NewEvent("click", true)) {
		return
	}
	href, ok := a.element.Attributes.GetAttribute("", "href")
	if !ok {
		return
	}
	if win := WindowFromNode(a.element); win != nil {
		win.RequestNavigation(href)
	}
}
