package multiselect

import tea "github.com/charmbracelet/bubbletea"

// PointerListener receives every pointer press the host dispatches.
type PointerListener func(tea.MouseMsg)

// Document stands in for the page a widget lives on. The host program owns
// one, forwards every mouse message to Dispatch, and widgets register a
// listener for the span of their mount.
//
// Document is not safe for concurrent use; drive it from the Bubble Tea
// update loop.
type Document struct {
	listeners map[int]PointerListener
	order     []int
	next      int
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{listeners: make(map[int]PointerListener)}
}

// AddListener registers l and returns the function that releases it.
// Calling the release function more than once is a no-op.
func (d *Document) AddListener(l PointerListener) (release func()) {
	id := d.next
	d.next++
	d.listeners[id] = l
	d.order = append(d.order, id)

	released := false
	return func() {
		if released {
			return
		}
		released = true
		d.remove(id)
	}
}

// Dispatch delivers a pointer press to every listener registered at the
// time of the call. Motion, release and wheel events are ignored.
func (d *Document) Dispatch(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || tea.MouseEvent(msg).IsWheel() {
		return
	}
	ids := make([]int, len(d.order))
	copy(ids, d.order)
	for _, id := range ids {
		if l, ok := d.listeners[id]; ok {
			l(msg)
		}
	}
}

// Len reports how many listeners are registered.
func (d *Document) Len() int {
	return len(d.listeners)
}

func (d *Document) remove(id int) {
	delete(d.listeners, id)
	for i, v := range d.order {
		if v == id {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}
