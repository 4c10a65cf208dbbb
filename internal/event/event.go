package event

import (
	"sync"
	"time"

	"golang.org/x/net/html"
)

// Type names an event, e.g. "mouseup".
type Type string

const (
	MouseUp   Type = "mouseup"
	MouseDown Type = "mousedown"
	KeyUp     Type = "keyup"
)

// Button identifies a mouse button using the 1-based numbering of
// event.which: 1 is the primary button.
type Button int

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonMiddle
	ButtonSecondary
)

// Event is a user input event aimed at a node.
type Event struct {
	Type   Type
	Button Button
	Target *html.Node
	Time   time.Time
}

// Handler receives dispatched events.
type Handler func(Event)

// Subscription identifies one binding made with Bind.
type Subscription struct {
	id     uint64
	target *html.Node
}

type binding struct {
	id      uint64
	typ     Type
	handler Handler
}

// Dispatcher routes events to handlers bound on the target node or any of
// its ancestors, innermost first.
type Dispatcher struct {
	mu     sync.Mutex
	nextID uint64
	bound  map[*html.Node][]binding
}

// NewDispatcher returns an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{bound: map[*html.Node][]binding{}}
}

// Bind registers h for events of type typ reaching target.
func (d *Dispatcher) Bind(target *html.Node, typ Type, h Handler) Subscription {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextID++
	d.bound[target] = append(d.bound[target], binding{id: d.nextID, typ: typ, handler: h})
	return Subscription{id: d.nextID, target: target}
}

// Unbind removes a binding. It reports whether the binding was still active.
func (d *Dispatcher) Unbind(s Subscription) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	list := d.bound[s.target]
	for i, b := range list {
		if b.id == s.id {
			list = append(list[:i:i], list[i+1:]...)
			if len(list) == 0 {
				delete(d.bound, s.target)
			} else {
				d.bound[s.target] = list
			}
			return true
		}
	}
	return false
}

// Dispatch delivers ev synchronously, bubbling from ev.Target to the root,
// and returns how many handlers ran.
func (d *Dispatcher) Dispatch(ev Event) int {
	var run []Handler
	d.mu.Lock()
	for n := ev.Target; n != nil; n = n.Parent {
		for _, b := range d.bound[n] {
			if b.typ == ev.Type {
				run = append(run, b.handler)
			}
		}
	}
	d.mu.Unlock()
	for _, h := range run {
		h(ev)
	}
	return len(run)
}

// Len returns the number of active bindings.
func (d *Dispatcher) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := 0
	for _, l := range d.bound {
		n += len(l)
	}
	return n
}
