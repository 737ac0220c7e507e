package spec

// ScriptContext compiles event handler sources for a window. Compilation is
// deferred until the handler is first read or dispatched.
type ScriptContext interface {
	CompileEventHandler(url string, reflector Reflector, eventType, source string) (EventHandler, error)
}

// Window is https://html.spec.whatwg.org/#the-window-object
// It is shared by every element of its document.
type Window struct {
	*EventTarget

	url         string
	cx          ScriptContext
	reflector   Reflector
	document    *Document
	navigations []string
}

// NewWindow creates a window and its associated HTML document. A nil cx
// disables scripting: handler attributes are still recorded but never run.
func NewWindow(url string, cx ScriptContext, opts ...DocumentOption) *Window {
	w := &Window{
		url:       url,
		cx:        cx,
		reflector: NewReflector(),
	}
	w.document = NewHTMLDocument(opts...)
	w.document.URL = url
	w.document.defaultView = w
	w.EventTarget = newEventTarget(w.document.instrumentation())
	return w
}

func (w *Window) Context() ScriptContext { return w.cx }
func (w *Window) URL() string            { return w.url }
func (w *Window) Reflector() Reflector   { return w.reflector }
func (w *Window) Document() *Document    { return w.document }

// https://html.spec.whatwg.org/#handler-onload
func (w *Window) GetOnload() EventHandler       { return w.GetEventHandlerCommon("load") }
func (w *Window) SetOnload(h EventHandler)      { w.SetEventHandlerCommon("load", h) }
func (w *Window) RequestNavigation(href string) { w.navigations = append(w.navigations, href) }

// NavigationRequests returns the hrefs that followed hyperlinks asked to load,
// oldest first.
func (w *Window) NavigationRequests() []string {
	return append([]string(nil), w.navigations...)
}
