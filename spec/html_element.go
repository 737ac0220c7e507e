package spec

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// HTMLElement holds the per-tag state of elements in the HTML namespace. It is
// nil on every other element.
// https://html.spec.whatwg.org/#htmlelement
type HTMLElement struct {
	element *Element

	*HTMLInputElement
	*HTMLAnchorElement
}

func newHTMLElement(e *Element) *HTMLElement {
	h := &HTMLElement{element: e}
	switch e.Type {
	case InputElement:
		h.HTMLInputElement = newHTMLInputElement(e)
		e.activation = h.HTMLInputElement
	case AnchorElement:
		h.HTMLAnchorElement = &HTMLAnchorElement{element: e}
		e.activation = h.HTMLAnchorElement
	}
	return h
}

func (h *HTMLElement) reflectedAttr(name string) string {
	if h == nil {
		return ""
	}
	v, _ := h.element.Attributes.GetAttribute("", name)
	return v
}

func (h *HTMLElement) setReflectedAttr(name, value string) {
	if h == nil {
		return
	}
	h.element.Attributes.SetAttribute("", name, value)
}

// https://html.spec.whatwg.org/#dom-title
func (h *HTMLElement) Title() string         { return h.reflectedAttr("title") }
func (h *HTMLElement) SetTitle(title string) { h.setReflectedAttr("title", title) }

// https://html.spec.whatwg.org/#dom-lang
func (h *HTMLElement) Lang() string        { return h.reflectedAttr("lang") }
func (h *HTMLElement) SetLang(lang string) { h.setReflectedAttr("lang", lang) }

// https://html.spec.whatwg.org/#dom-hidden
func (h *HTMLElement) Hidden() bool {
	if h == nil {
		return false
	}
	_, ok := h.element.Attributes.GetAttribute("", "hidden")
	return ok
}

func (h *HTMLElement) SetHidden(hidden bool) {
	if h == nil {
		return
	}
	if hidden {
		h.element.Attributes.SetAttribute("", "hidden", "")
		return
	}
	h.element.Attributes.RemoveAttribute("", "hidden")
}

func (e *Element) isBodyOrFrameSet() bool {
	return e.Type == BodyElement || e.Type == FrameSetElement
}

func (e *Element) isDisabledInput() bool {
	return e.HTMLElement != nil && e.HTMLInputElement != nil && e.HTMLInputElement.Disabled()
}

// https://drafts.csswg.org/cssom/#dom-elementcssinlinestyle-style
func (e *Element) Style() *CSSStyleDeclaration {
	return e.style.GetOrInit(func() *CSSStyleDeclaration {
		return newCSSStyleDeclaration(e, CSSModificationReadWrite)
	})
}

// https://html.spec.whatwg.org/#dom-dataset
func (e *Element) Dataset() *DOMStringMap {
	return e.dataset.GetOrInit(func() *DOMStringMap {
		return &DOMStringMap{element: e}
	})
}

// GetOnload reads the window's handler on body and frameset elements.
// https://html.spec.whatwg.org/#handler-onload
func (e *Element) GetOnload() EventHandler {
	if e.isBodyOrFrameSet() {
		if win := WindowFromNode(e); win != nil {
			return win.GetOnload()
		}
		return nil
	}
	return e.GetEventHandlerCommon("load")
}

// SetOnload installs the window's handler on body and frameset elements.
func (e *Element) SetOnload(listener EventHandler) {
	if e.isBodyOrFrameSet() {
		if win := WindowFromNode(e); win != nil {
			win.SetOnload(listener)
		}
		return
	}
	e.SetEventHandlerCommon("load", listener)
}

// GetEventHandler is the IDL getter for the on<eventType> attribute.
func (e *Element) GetEventHandler(eventType string) EventHandler {
	if eventType == "load" {
		return e.GetOnload()
	}
	return e.GetEventHandlerCommon(eventType)
}

// SetEventHandler is the IDL setter for the on<eventType> attribute.
func (e *Element) SetEventHandler(eventType string, listener EventHandler) {
	if eventType == "load" {
		e.SetOnload(listener)
		return
	}
	e.SetEventHandlerCommon(eventType, listener)
}

// Activatable is implemented by elements with an activation behavior.
// https://html.spec.whatwg.org/#activation-behaviour
type Activatable interface {
	SyntheticClickActivation(ctrl, shift, alt, meta bool)
}

// Click runs the element's activation behavior as an unmodified click.
// Disabled inputs and elements without activation behavior are left alone.
// https://html.spec.whatwg.org/#dom-click
func (e *Element) Click() {
	if e.isDisabledInput() {
		return
	}
	if a := e.AsMaybeActivatable(); a != nil {
		a.SyntheticClickActivation(false, false, false, false)
	}
}

// bindEventHandlerAttr turns on* content attributes into uncompiled handlers
// on the element, replacing whatever was registered for the event.
// https://html.spec.whatwg.org/#event-handler-attributes
func bindEventHandlerAttr(e *Element, attr *Attr) {
	if attr.Namespace != "" || !strings.HasPrefix(attr.LocalName, "on") {
		return
	}

	eventType := attr.LocalName[2:]
	win := WindowFromNode(e)
	if win == nil {
		logrus.WithFields(logrus.Fields{
			"method": "bindEventHandlerAttr",
			"event":  eventType,
		}).Debug("element has no window, handler not bound")
		return
	}

	e.SetEventHandlerUncompiled(win.Context(), win.URL(), e.Reflector(), eventType, attr.Value)
}
