package engine

// Event calls every listener, in the order they were added, when invoked.
// The zero value is ready to use.
type Event struct {
	listeners []func()
}

// AddListener registers fn. A nil fn is ignored.
func (e *Event) AddListener(fn func()) {
	if fn != nil {
		e.listeners = append(e.listeners, fn)
	}
}

func (e *Event) RemoveAllListeners() {
	e.listeners = nil
}

func (e *Event) Invoke() {
	for _, fn := range e.listeners {
		fn()
	}
}

// Listeners reports how many listeners are registered.
func (e *Event) Listeners() int {
	return len(e.listeners)
}
