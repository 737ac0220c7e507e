package spec

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/heathj/htmlattrs/webidl"
)

const customAttrPrefix = "data-"

func isASCIILower(c byte) bool { return c >= 'a' && c <= 'z' }
func isASCIIUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

// EncodeCustomAttrName maps a dataset key to its content attribute name:
// every ASCII upper-case letter becomes a hyphen and its lower-case form.
// "someProp" encodes to "data-some-prop".
func EncodeCustomAttrName(key string) string {
	var b strings.Builder
	b.Grow(len(customAttrPrefix) + len(key) + 4)
	b.WriteString(customAttrPrefix)
	for i := 0; i < len(key); i++ {
		c := key[i]
		if isASCIIUpper(c) {
			b.WriteByte('-')
			b.WriteByte(c + ('a' - 'A'))
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// DecodeCustomAttrName is the inverse of EncodeCustomAttrName. It reports false
// for names outside the data-* family.
// https://html.spec.whatwg.org/#dom-domstringmap-nameditem
func DecodeCustomAttrName(name string) (string, bool) {
	if !strings.HasPrefix(name, customAttrPrefix) {
		return "", false
	}
	rest := name[len(customAttrPrefix):]

	var b strings.Builder
	b.Grow(len(rest))
	for i := 0; i < len(rest); i++ {
		c := rest[i]
		if c == '-' && i+1 < len(rest) && isASCIILower(rest[i+1]) {
			b.WriteByte(rest[i+1] - ('a' - 'A'))
			i++
			continue
		}
		b.WriteByte(c)
	}
	return b.String(), true
}

// validCustomAttrKey rejects keys whose first hyphen is followed by an ASCII
// lower-case letter. Those keys would not survive an encode/decode round trip.
func validCustomAttrKey(key string) bool {
	i := strings.IndexByte(key, '-')
	return i < 0 || i+1 >= len(key) || !isASCIILower(key[i+1])
}

// https://html.spec.whatwg.org/#dom-domstringmap-setitem
func (e *Element) SetCustomAttr(key, value string) error {
	if !validCustomAttrKey(key) {
		e.OwnerDocument.instrumentation().CustomAttrRejected(key)
		return errors.WithStack(webidl.ErrSyntax)
	}
	setCustomAttr(e.Attributes, key, value)
	return nil
}

func (e *Element) GetCustomAttr(key string) (string, bool) {
	return getCustomAttr(e.Attributes, key)
}

// https://html.spec.whatwg.org/#dom-domstringmap-removeitem
func (e *Element) DeleteCustomAttr(key string) {
	deleteCustomAttr(e.Attributes, key)
}

func setCustomAttr(store AttributeStore, key, value string) {
	store.SetAttribute("", EncodeCustomAttrName(key), value)
}

func getCustomAttr(store AttributeStore, key string) (string, bool) {
	return store.GetAttribute("", EncodeCustomAttrName(key))
}

func deleteCustomAttr(store AttributeStore, key string) {
	store.RemoveAttribute("", EncodeCustomAttrName(key))
}
