// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package input

// Event is a kind of change to a [Field].
type Event int

const (
	// EventTextChanged is dispatched after the text of a field changes.
	EventTextChanged Event = iota

	// EventValueChanged is dispatched when a field's value changes,
	// including changes between the empty and invalid states.
	EventValueChanged

	// EventValidChanged is dispatched when a field becomes valid or stops
	// being valid.
	EventValidChanged
)

func (e Event) String() string {
	switch e {
	case EventTextChanged:
		return "text changed"
	case EventValueChanged:
		return "value changed"
	case EventValidChanged:
		return "valid changed"
	default:
		return "unknown"
	}
}

func (e Event) known() bool {
	return e >= EventTextChanged && e <= EventValidChanged
}

// Listener is called with the field that changed.
type Listener func(Field)

type subscription struct {
	listener Listener
}

// Notifier holds per-event listener lists. The zero value is ready to use.
type Notifier struct {
	listeners map[Event][]*subscription
}

// Subscribe adds l to the listeners of e and returns a function that removes
// it again. Listeners are called in the order they subscribed. Subscribing
// to an unknown event does nothing.
func (n *Notifier) Subscribe(e Event, l Listener) (unsubscribe func()) {
	if !e.known() || l == nil {
		return func() {}
	}
	if n.listeners == nil {
		n.listeners = make(map[Event][]*subscription)
	}

	s := &subscription{listener: l}
	n.listeners[e] = append(n.listeners[e], s)

	return func() {
		subs := n.listeners[e]
		for i, sub := range subs {
			if sub == s {
				n.listeners[e] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

// Dispatch calls the listeners of e with f.
func (n *Notifier) Dispatch(e Event, f Field) {
	// Copy so listeners may unsubscribe while being called.
	subs := append([]*subscription(nil), n.listeners[e]...)
	for _, s := range subs {
		s.listener(f)
	}
}

// Len returns the number of listeners subscribed to e.
func (n *Notifier) Len(e Event) int {
	return len(n.listeners[e])
}
