package spec

import (
	"github.com/sirupsen/logrus"
)

// uncompiledHandler is an event handler attribute value waiting for its first
// use. Everything compilation needs is captured when the attribute is set.
type uncompiledHandler struct {
	cx        ScriptContext
	url       string
	reflector Reflector
	source    string
}

// https://html.spec.whatwg.org/#event-handlers
// A slot holds either an uncompiled source or a compiled handler, never both.
type eventHandlerSlot struct {
	compiled   EventHandler
	uncompiled *uncompiledHandler
}

// EventTarget owns the event handler slots of a node or window.
// https://dom.spec.whatwg.org/#interface-eventtarget
type EventTarget struct {
	handlers   map[string]*eventHandlerSlot
	instrument Instrumentation
}

func newEventTarget(i Instrumentation) *EventTarget {
	if i == nil {
		i = nopInstrumentation{}
	}
	return &EventTarget{
		handlers:   map[string]*eventHandlerSlot{},
		instrument: i,
	}
}

// SetEventHandlerUncompiled replaces whatever is registered for eventType with
// source. The source is compiled by cx on first use.
func (t *EventTarget) SetEventHandlerUncompiled(cx ScriptContext, url string, reflector Reflector, eventType, source string) {
	t.handlers[eventType] = &eventHandlerSlot{
		uncompiled: &uncompiledHandler{
			cx:        cx,
			url:       url,
			reflector: reflector,
			source:    source,
		},
	}
	t.instrument.HandlerBound(eventType)
}

// SetEventHandlerCommon installs a compiled handler. A nil handler clears the slot.
func (t *EventTarget) SetEventHandlerCommon(eventType string, h EventHandler) {
	if h == nil {
		delete(t.handlers, eventType)
		return
	}
	t.handlers[eventType] = &eventHandlerSlot{compiled: h}
}

// GetEventHandlerCommon returns the handler for eventType, compiling a pending
// source first. A source that fails to compile is reported and dropped.
// https://html.spec.whatwg.org/#getting-the-current-value-of-the-event-handler
func (t *EventTarget) GetEventHandlerCommon(eventType string) EventHandler {
	slot, ok := t.handlers[eventType]
	if !ok {
		return nil
	}
	if slot.uncompiled == nil {
		return slot.compiled
	}

	u := slot.uncompiled
	log := logrus.WithFields(logrus.Fields{
		"method": "GetEventHandlerCommon",
		"event":  eventType,
		"url":    u.url,
	})
	if u.cx == nil {
		log.Debug("no script context, dropping handler")
		delete(t.handlers, eventType)
		return nil
	}

	h, err := u.cx.CompileEventHandler(u.url, u.reflector, eventType, u.source)
	t.instrument.HandlerCompiled(eventType, err)
	if err != nil {
		log.WithError(err).Warn("event handler failed to compile")
		delete(t.handlers, eventType)
		return nil
	}

	slot.compiled, slot.uncompiled = h, nil
	return h
}

// HasEventHandler reports whether a source or compiled handler is registered.
func (t *EventTarget) HasEventHandler(eventType string) bool {
	_, ok := t.handlers[eventType]
	return ok
}

// EventHandlerSource returns the pending source for eventType, if it has not
// been compiled yet.
func (t *EventTarget) EventHandlerSource(eventType string) (string, bool) {
	slot, ok := t.handlers[eventType]
	if !ok || slot.uncompiled == nil {
		return "", false
	}
	return slot.uncompiled.source, true
}

// EventHandlerCount returns the number of registered handlers.
func (t *EventTarget) EventHandlerCount() int { return len(t.handlers) }

// DispatchEvent runs the handler registered for e.Type on this target and
// reports whether the default action should still happen.
func (t *EventTarget) DispatchEvent(e *Event) bool {
	e.Target = t
	e.eventPhase = atTargetPhase
	defer func() { e.eventPhase = noneEventPhase }()

	if h := t.GetEventHandlerCommon(e.Type); h != nil {
		h(e)
	}
	return !e.DefaultPrevented
}
