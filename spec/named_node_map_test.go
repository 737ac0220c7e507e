package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamedNodeMapKeepsOrder(t *testing.T) {
	doc := NewHTMLDocument()
	div := doc.CreateElement("div")
	div.SetAttribute("b", "1")
	div.SetAttribute("a", "2")
	div.SetAttribute("b", "3")

	require.Equal(t, 2, div.Attributes.Length())
	assert.Equal(t, "b", div.Attributes.Item(0).LocalName)
	assert.Equal(t, "3", div.Attributes.Item(0).Value)
	assert.Equal(t, "a", div.Attributes.Item(1).LocalName)
	assert.Nil(t, div.Attributes.Item(2))
	assert.Nil(t, div.Attributes.Item(-1))
	assert.Same(t, div, div.Attributes.Item(0).OwnerElement)
}

func TestNamedNodeMapNamespaces(t *testing.T) {
	doc := NewHTMLDocument()
	div := doc.CreateElement("div")
	div.SetAttribute("href", "plain")
	div.SetAttributeNS("http://www.w3.org/1999/xlink", "href", "linked")

	v, ok := div.GetAttributeNS("", "href")
	assert.True(t, ok)
	assert.Equal(t, "plain", v)
	v, ok = div.GetAttributeNS("http://www.w3.org/1999/xlink", "href")
	assert.True(t, ok)
	assert.Equal(t, "linked", v)

	div.RemoveAttributeNS("http://www.w3.org/1999/xlink", "href")
	assert.False(t, div.HasAttributeNS("http://www.w3.org/1999/xlink", "href"))
	assert.True(t, div.HasAttribute("HREF"))
}

func TestNamedNodeMapRemove(t *testing.T) {
	doc := NewHTMLDocument()
	div := doc.CreateElement("div")
	div.SetAttribute("id", "x")

	attr := div.GetAttributeNode("id")
	removed := div.Attributes.RemoveNamedItemNS("", "id")
	assert.Same(t, attr, removed)
	assert.Nil(t, removed.OwnerElement)
	assert.Nil(t, div.Attributes.RemoveNamedItemNS("", "id"))
	assert.NotPanics(t, func() { div.RemoveAttribute("id") })
	assert.False(t, div.HasAttributes())
}

func TestNamedNodeMapIsAttributeStore(t *testing.T) {
	doc := NewHTMLDocument()
	var store AttributeStore = doc.CreateElement("div").Attributes

	setCustomAttr(store, "someProp", "1")
	v, ok := getCustomAttr(store, "someProp")
	assert.True(t, ok)
	assert.Equal(t, "1", v)
	deleteCustomAttr(store, "someProp")
	_, ok = store.GetAttribute("", "data-some-prop")
	assert.False(t, ok)
}

func TestAttributeNamesLowercaseASCIIOnly(t *testing.T) {
	doc := NewHTMLDocument()
	div := doc.CreateElement("DIV")
	assert.Equal(t, "div", div.LocalName)

	div.SetAttribute("DATA-X", "1")
	assert.Equal(t, []string{"data-x"}, div.GetAttributeNames())

	div.SetAttribute("data-É", "v")
	v, ok := div.GetCustomAttr("É")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
	assert.True(t, div.HasAttribute("data-É"))
	assert.False(t, div.HasAttribute("data-é"))

	input := doc.CreateElement("input")
	input.SetAttribute("type", "CHECKBOX")
	assert.Equal(t, "checkbox", input.InputType())

	assert.Equal(t, "kelvinK", asciiLowercase("KELVINK"))
}
