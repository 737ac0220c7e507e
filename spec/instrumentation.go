package spec

// Instrumentation receives notifications about attribute dispatch and handler
// lifecycle. The metrics package provides a Prometheus implementation.
type Instrumentation interface {
	AttributeDispatched(t ElementType, localName string)
	HandlerBound(eventType string)
	HandlerCompiled(eventType string, err error)
	CustomAttrRejected(key string)
}

type nopInstrumentation struct{}

func (nopInstrumentation) AttributeDispatched(ElementType, string) {}
func (nopInstrumentation) HandlerBound(string)                     {}
func (nopInstrumentation) HandlerCompiled(string, error)           {}
func (nopInstrumentation) CustomAttrRejected(string)               {}
