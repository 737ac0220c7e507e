// Package script compiles event handler content attributes with goja.
package script

import (
	"github.com/dop251/goja"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/heathj/htmlattrs/spec"
)

// Runtime is the script context of one window. It is not safe for concurrent
// use; all calls happen on the thread that mutates the document.
type Runtime struct {
	vm      *goja.Runtime
	objects map[spec.Reflector]*goja.Object
}

func New() *Runtime {
	return &Runtime{
		vm:      goja.New(),
		objects: map[spec.Reflector]*goja.Object{},
	}
}

// VM exposes the underlying goja runtime, e.g. to install globals.
func (r *Runtime) VM() *goja.Runtime { return r.vm }

// ObjectFor returns the object reflecting reflector, creating it on first use.
func (r *Runtime) ObjectFor(reflector spec.Reflector) *goja.Object {
	if obj, ok := r.objects[reflector]; ok {
		return obj
	}
	obj := r.vm.NewObject()
	if err := obj.Set("id", reflector.String()); err != nil {
		logrus.WithField("method", "ObjectFor").WithError(err).Warn("could not set reflector id")
	}
	r.objects[reflector] = obj
	return obj
}

// CompileEventHandler wraps source in a function taking the event and binds
// it to the object reflecting the target.
// https://html.spec.whatwg.org/#getting-the-current-value-of-the-event-handler
func (r *Runtime) CompileEventHandler(url string, reflector spec.Reflector, eventType, source string) (spec.EventHandler, error) {
	prg, err := goja.Compile(url, "(function(event) {\n"+source+"\n})", false)
	if err != nil {
		return nil, errors.Wrapf(err, "compile on%s", eventType)
	}
	v, err := r.vm.RunProgram(prg)
	if err != nil {
		return nil, errors.Wrapf(err, "evaluate on%s", eventType)
	}
	fn, ok := goja.AssertFunction(v)
	if !ok {
		return nil, errors.Errorf("on%s did not evaluate to a function", eventType)
	}

	this := r.ObjectFor(reflector)
	return func(e *spec.Event) {
		log := logrus.WithFields(logrus.Fields{
			"method": "EventHandler",
			"event":  eventType,
			"url":    url,
		})
		event, err := r.eventObject(e)
		if err != nil {
			log.WithError(err).Warn("could not build event object")
			return
		}
		ret, err := fn(this, event)
		if err != nil {
			log.WithError(err).Warn("uncaught exception in event handler")
			return
		}
		if ret != nil && ret.StrictEquals(r.vm.ToValue(false)) {
			e.PreventDefault()
		}
	}, nil
}

func (r *Runtime) eventObject(e *spec.Event) (*goja.Object, error) {
	vm := r.vm
	obj := vm.NewObject()
	props := []struct {
		name  string
		value interface{}
	}{
		{"type", e.Type},
		{"cancelable", e.Cancelable},
		{"preventDefault", func(goja.FunctionCall) goja.Value {
			e.PreventDefault()
			return goja.Undefined()
		}},
		{"stopPropagation", func(goja.FunctionCall) goja.Value {
			e.StopPropagation()
			return goja.Undefined()
		}},
	}
	for _, p := range props {
		if err := obj.Set(p.name, p.value); err != nil {
			return nil, errors.Wrapf(err, "set event.%s", p.name)
		}
	}
	getter := vm.ToValue(func(goja.FunctionCall) goja.Value {
		return vm.ToValue(e.DefaultPrevented)
	})
	if err := obj.DefineAccessorProperty("defaultPrevented", getter, nil, goja.FLAG_FALSE, goja.FLAG_TRUE); err != nil {
		return nil, errors.Wrap(err, "define event.defaultPrevented")
	}
	return obj, nil
}
