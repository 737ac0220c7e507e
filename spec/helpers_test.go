package spec

import "github.com/pkg/errors"

// fakeContext compiles a source into a handler that records it ran.
type fakeContext struct {
	compiled []string
	ran      []string
	fail     bool
}

func (c *fakeContext) CompileEventHandler(url string, reflector Reflector, eventType, source string) (EventHandler, error) {
	c.compiled = append(c.compiled, source)
	if c.fail {
		return nil, errors.Errorf("%s: unexpected token in %q", url, source)
	}
	return func(e *Event) {
		c.ran = append(c.ran, source)
		if source == "return false" {
			e.PreventDefault()
		}
	}, nil
}

type recordingActivation struct {
	calls [][4]bool
}

func (r *recordingActivation) SyntheticClickActivation(ctrl, shift, alt, meta bool) {
	r.calls = append(r.calls, [4]bool{ctrl, shift, alt, meta})
}

type countingInstrumentation struct {
	dispatched map[string]int
	bound      []string
	compiled   []string
	failed     []string
	rejected   []string
}

func newCountingInstrumentation() *countingInstrumentation {
	return &countingInstrumentation{dispatched: map[string]int{}}
}

func (c *countingInstrumentation) AttributeDispatched(t ElementType, name string) {
	c.dispatched[t.String()+"/"+name]++
}
func (c *countingInstrumentation) HandlerBound(eventType string) {
	c.bound = append(c.bound, eventType)
}
func (c *countingInstrumentation) HandlerCompiled(eventType string, err error) {
	if err != nil {
		c.failed = append(c.failed, eventType)
		return
	}
	c.compiled = append(c.compiled, eventType)
}
func (c *countingInstrumentation) CustomAttrRejected(key string) {
	c.rejected = append(c.rejected, key)
}

func newTestWindow(opts ...DocumentOption) (*Window, *fakeContext) {
	cx := &fakeContext{}
	return NewWindow("https://example.test/index.html", cx, opts...), cx
}
