package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchRunsBaseBeforeDerived(t *testing.T) {
	var order []string
	record := func(name string) AttrHook {
		return AttrHookFunc(func(e *Element, attr *Attr) {
			order = append(order, name+":"+attr.LocalName+"="+attr.Value)
		})
	}

	d := NewDispatcher()
	d.RegisterRoot(HtmlElement, "generic", record("generic"))
	require.NoError(t, d.Register(InputElement, HtmlElement, "specific", record("specific")))

	w, _ := newTestWindow(WithDispatcher(d))
	input := w.Document().CreateElement("input")
	input.SetAttribute("name", "q")

	assert.Equal(t, []string{"generic:name=q", "specific:name=q"}, order)
	assert.Equal(t, []string{"generic", "specific"}, d.VirtualMethodsFor(InputElement).Chain())
}

func TestDispatchWalksEveryLink(t *testing.T) {
	var order []string
	d := NewDispatcher()
	d.RegisterRoot(GenericElement, "a", AttrHookFunc(func(*Element, *Attr) { order = append(order, "a") }))
	require.NoError(t, d.Register(HtmlElement, GenericElement, "b", nil))
	require.NoError(t, d.Register(BodyElement, HtmlElement, "c", AttrHookFunc(func(*Element, *Attr) { order = append(order, "c") })))

	w, _ := newTestWindow(WithDispatcher(d))
	body := w.Document().CreateElement("body")
	body.SetAttribute("x", "1")
	body.SetAttribute("x", "2")

	assert.Equal(t, []string{"a", "c", "a", "c"}, order)
	assert.Nil(t, d.VirtualMethodsFor(GenericElement).SuperType())
}

func TestHookObservesCommittedValue(t *testing.T) {
	var seen string
	d := NewDispatcher()
	d.RegisterRoot(HtmlElement, "probe", AttrHookFunc(func(e *Element, attr *Attr) {
		seen, _ = e.GetAttribute(attr.LocalName)
	}))

	w, _ := newTestWindow(WithDispatcher(d))
	div := w.Document().CreateElement("div")
	div.SetAttribute("lang", "en")
	div.SetAttribute("lang", "fr")

	assert.Equal(t, "fr", seen)
	assert.Equal(t, 1, div.Attributes.Length())
}

func TestRegisterRequiresBase(t *testing.T) {
	d := NewDispatcher()
	err := d.Register(InputElement, HtmlElement, "HTMLInputElement", nil)
	assert.EqualError(t, err, "spec: base type HTMLElement of HTMLInputElement is not registered")
	assert.Nil(t, d.VirtualMethodsFor(InputElement))
}

func TestUnregisteredTypeIsIgnored(t *testing.T) {
	instr := newCountingInstrumentation()
	w, _ := newTestWindow(WithDispatcher(NewDispatcher()), WithInstrumentation(instr))
	div := w.Document().CreateElement("div")
	div.SetAttribute("onclick", "go()")

	assert.False(t, div.HasEventHandler("click"))
	assert.Empty(t, instr.dispatched)
}

func TestDefaultChains(t *testing.T) {
	d := NewDefaultDispatcher()
	assert.Equal(t, []string{"Element", "HTMLElement", "HTMLBodyElement"}, d.VirtualMethodsFor(BodyElement).Chain())
	assert.Equal(t, []string{"Element", "HTMLElement", "HTMLInputElement"}, d.VirtualMethodsFor(InputElement).Chain())
	assert.Equal(t, []string{"Element", "HTMLElement"}, d.VirtualMethodsFor(HtmlElement).Chain())
}

func TestElementReflectsIDAndClass(t *testing.T) {
	instr := newCountingInstrumentation()
	w, _ := newTestWindow(WithInstrumentation(instr))
	div := w.Document().CreateElement("DIV")
	div.SetAttribute("ID", "main")
	div.SetAttribute("class", "a b")
	div.SetAttributeNS("urn:x", "id", "ignored")

	assert.Equal(t, "div", div.LocalName)
	assert.Equal(t, "main", div.ID)
	assert.Equal(t, "a b", div.ClassName)
	assert.Equal(t, 2, instr.dispatched["HTMLElement/id"])
	assert.Equal(t, 1, instr.dispatched["HTMLElement/class"])
}

func TestCreateElementTypeTags(t *testing.T) {
	doc := NewHTMLDocument()
	tests := map[string]ElementType{
		"div":      HtmlElement,
		"body":     BodyElement,
		"frameset": FrameSetElement,
		"input":    InputElement,
		"a":        AnchorElement,
		"BUTTON":   ButtonElement,
		"x-widget": HtmlElement,
	}
	for name, want := range tests {
		assert.Equal(t, want, doc.CreateElement(name).Type, name)
	}

	svg := doc.CreateElementNS(Svgns, "svg:rect")
	assert.Equal(t, GenericElement, svg.Type)
	assert.Equal(t, "svg", svg.Prefix)
	assert.Equal(t, "svg:rect", svg.QualifiedName())
	assert.Nil(t, svg.HTMLElement)
	assert.Equal(t, "ElementType(99)", ElementType(99).String())
}
