package spec

type eventPhase uint

const (
	noneEventPhase eventPhase = iota
	capturingPhase
	atTargetPhase
	bubblingPhase
)

// https://html.spec.whatwg.org/#eventhandler
type EventHandler func(e *Event)

// https://dom.spec.whatwg.org/#interface-event
type Event struct {
	Type             string
	Target           *EventTarget
	Bubbles          bool
	Cancelable       bool
	DefaultPrevented bool
	IsTrusted        bool

	eventPhase eventPhase
	stopped    bool
}

func NewEvent(eventType string, cancelable bool) *Event {
	return &Event{Type: eventType, Cancelable: cancelable}
}

func (e *Event) StopPropagation() { e.stopped = true }

// https://dom.spec.whatwg.org/#dom-event-preventdefault
func (e *Event) PreventDefault() {
	if e.Cancelable {
		e.DefaultPrevented = true
	}
}

func (e *Event) Phase() uint { return uint(e.eventPhase) }
