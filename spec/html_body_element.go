package spec

import "strings"

// Event handler attributes of body and frameset elements that are also
// installed on the window.
// https://html.spec.whatwg.org/#window-reflecting-body-element-event-handler-set
// https://html.spec.whatwg.org/#windoweventhandlers
var windowReflectingEventHandlers = map[string]bool{
	"onblur":           true,
	"onerror":          true,
	"onfocus":          true,
	"onload":           true,
	"onscroll":         true,
	"onafterprint":     true,
	"onbeforeprint":    true,
	"onbeforeunload":   true,
	"onhashchange":     true,
	"onlanguagechange": true,
	"onmessage":        true,
	"onoffline":        true,
	"ononline":         true,
	"onpagehide":       true,
	"onpageshow":       true,
	"onpopstate":       true,
	"onstorage":        true,
	"onresize":         true,
	"onunload":         true,
}

func bindWindowEventHandlerAttr(e *Element, attr *Attr) {
	if attr.Namespace != "" || !windowReflectingEventHandlers[attr.LocalName] {
		return
	}
	win := WindowFromNode(e)
	if win == nil {
		return
	}
	win.SetEventHandlerUncompiled(win.Context(), win.URL(), win.Reflector(),
		strings.TrimPrefix(attr.LocalName, "on"), attr.Value)
}
