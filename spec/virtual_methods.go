package spec

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// AttrHook is the type-specific reaction to an attribute write.
type AttrHook interface {
	AfterSetAttr(e *Element, attr *Attr)
}

// AttrHookFunc adapts a function to AttrHook.
type AttrHookFunc func(e *Element, attr *Attr)

func (f AttrHookFunc) AfterSetAttr(e *Element, attr *Attr) { f(e, attr) }

// VirtualMethods is one link of a type's hook chain. Each link points at the
// link of its base type, standing in for a base class.
type VirtualMethods struct {
	name  string
	super *VirtualMethods
	hook  AttrHook
}

func (v *VirtualMethods) Name() string { return v.name }

// SuperType returns the base type's link, or nil at the root of the chain.
func (v *VirtualMethods) SuperType() *VirtualMethods { return v.super }

// AfterSetAttr runs the base chain first and then this link's own hook.
func (v *VirtualMethods) AfterSetAttr(e *Element, attr *Attr) {
	if s := v.SuperType(); s != nil {
		s.AfterSetAttr(e, attr)
	}
	if v.hook != nil {
		v.hook.AfterSetAttr(e, attr)
	}
}

// Chain returns the link names from the root type down to this one.
func (v *VirtualMethods) Chain() []string {
	var names []string
	for l := v; l != nil; l = l.super {
		names = append([]string{l.name}, names...)
	}
	return names
}

// Dispatcher maps element type tags to their hook chains.
type Dispatcher struct {
	chains map[ElementType]*VirtualMethods
}

// NewDispatcher returns a dispatcher with no registered types.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{chains: map[ElementType]*VirtualMethods{}}
}

// RegisterRoot registers t as a chain root with no base type.
func (d *Dispatcher) RegisterRoot(t ElementType, name string, hook AttrHook) {
	d.chains[t] = &VirtualMethods{name: name, hook: hook}
}

// Register registers t with super as its base type. The base must already be
// registered; the link captures the base chain as it is at this point.
func (d *Dispatcher) Register(t, super ElementType, name string, hook AttrHook) error {
	s, ok := d.chains[super]
	if !ok {
		return errors.Errorf("spec: base type %s of %s is not registered", super, t)
	}
	d.chains[t] = &VirtualMethods{name: name, super: s, hook: hook}
	return nil
}

func (d *Dispatcher) mustRegister(t, super ElementType, name string, hook AttrHook) {
	if err := d.Register(t, super, name, hook); err != nil {
		panic(err)
	}
}

// VirtualMethodsFor returns the chain for t, or nil if t is unknown.
func (d *Dispatcher) VirtualMethodsFor(t ElementType) *VirtualMethods {
	return d.chains[t]
}

// NotifyAttributeSet runs the chain of e's type tag for attr. The store calls it
// after the new value has been committed.
func (d *Dispatcher) NotifyAttributeSet(e *Element, attr *Attr) {
	vm := d.chains[e.Type]
	if vm == nil {
		logrus.WithField("method", "NotifyAttributeSet").
			Debugf("no hooks registered for %s", e.Type)
		return
	}

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.WithFields(logrus.Fields{
			"method":  "NotifyAttributeSet",
			"element": e.LocalName,
			"attr":    attr.Name(),
		}).Debugf("dispatching through %v", vm.Chain())
	}

	vm.AfterSetAttr(e, attr)
	e.OwnerDocument.instrumentation().AttributeDispatched(e.Type, attr.LocalName)
}

var defaultDispatcher = NewDefaultDispatcher()

// NewDefaultDispatcher returns the chains for the built-in element types.
func NewDefaultDispatcher() *Dispatcher {
	d := NewDispatcher()
	d.RegisterRoot(GenericElement, "Element", AttrHookFunc(reflectElementAttr))
	d.mustRegister(HtmlElement, GenericElement, "HTMLElement", AttrHookFunc(bindEventHandlerAttr))
	d.mustRegister(BodyElement, HtmlElement, "HTMLBodyElement", AttrHookFunc(bindWindowEventHandlerAttr))
	d.mustRegister(FrameSetElement, HtmlElement, "HTMLFrameSetElement", AttrHookFunc(bindWindowEventHandlerAttr))
	d.mustRegister(InputElement, HtmlElement, "HTMLInputElement", AttrHookFunc(inputAfterSetAttr))
	d.mustRegister(AnchorElement, HtmlElement, "HTMLAnchorElement", nil)
	d.mustRegister(ButtonElement, HtmlElement, "HTMLButtonElement", nil)
	d.mustRegister(FormElement, HtmlElement, "HTMLFormElement", nil)
	d.mustRegister(ScriptElement, HtmlElement, "HTMLScriptElement", nil)
	d.mustRegister(TableElement, HtmlElement, "HTMLTableElement", nil)
	d.mustRegister(TemplateElement, HtmlElement, "HTMLTemplateElement", nil)
	return d
}

// reflectElementAttr keeps the id and class reflections current.
func reflectElementAttr(e *Element, attr *Attr) {
	if attr.Namespace != "" {
		return
	}
	switch attr.LocalName {
	case "id":
		e.ID = attr.Value
	case "class":
		e.ClassName = attr.Value
	}
}
