package engine

// EventWithArg is a multicast notification carrying one value.
type EventWithArg[T any] struct {
	listeners []func(T)
}

// AddListener registers callback. Nil callbacks are ignored.
func (e *EventWithArg[T]) AddListener(callback func(T)) {
	if callback == nil {
		return
	}
	e.listeners = append(e.listeners, callback)
}

// Invoke calls every listener in registration order.
func (e *EventWithArg[T]) Invoke(arg T) {
	for _, listener := range e.listeners {
		listener(arg)
	}
}
