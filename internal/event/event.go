// Package event provides typed signals that controls raise and consumers
// subscribe to.
package event

// Signal delivers values of type T to every connected handler, in the order
// the handlers were connected.
type Signal[T any] struct {
	handlers []func(T)
}

// Connect registers h.
func (s *Signal[T]) Connect(h func(T)) {
	if h == nil {
		return
	}
	s.handlers = append(s.handlers, h)
}

// Emit calls every handler with v.
func (s *Signal[T]) Emit(v T) {
	for _, h := range s.handlers {
		h(v)
	}
}

// Trigger is a Signal without a payload.
type Trigger struct {
	sig Signal[struct{}]
}

func (t *Trigger) Connect(h func()) {
	if h == nil {
		return
	}
	t.sig.Connect(func(struct{}) { h() })
}

func (t *Trigger) Emit() {
	t.sig.Emit(struct{}{})
}
