// internal/event/event.go
package event

// EventType: тип события
type EventType string

// Event is delivered synchronously, inside the tick that produced it.
type Event struct {
	Type EventType
	Data any
}

// Listener: интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher fans events out to listeners in subscription order.
// Listeners subscribed to All receive every event after the typed listeners.
type Dispatcher struct {
	listeners map[EventType][]Listener
	wildcard  []Listener
}

// All subscribes a listener to every event type.
const All EventType = "*"

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	if eventType == All {
		d.wildcard = append(d.wildcard, listener)
		return
	}
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Dispatch is a no-op on a nil dispatcher so entities can run without one in tests.
func (d *Dispatcher) Dispatch(e Event) {
	if d == nil {
		return
	}
	for _, l := range d.listeners[e.Type] {
		l.OnEvent(e)
	}
	for _, l := range d.wildcard {
		l.OnEvent(e)
	}
}
