package pager

import "sync"

// Surface is anything the host can measure: a DOM node, a terminal box, a widget
type Surface interface {
	Width() float64
	Height() float64
}

// ResizeObserver notifies the pager when an observed surface changes size
type ResizeObserver interface {
	Observe(s Surface, onResize func())
	Unobserve(s Surface)
}

// Box is a Surface with explicitly assigned dimensions
type Box struct {
	W float64
	H float64
}

// NewBox returns a box of the given size
func NewBox(width, height float64) *Box {
	return &Box{W: width, H: height}
}

func (b *Box) Width() float64  { return b.W }
func (b *Box) Height() float64 { return b.H }

// Resize updates the box dimensions
func (b *Box) Resize(width, height float64) {
	b.W = width
	b.H = height
}

// Registry is a ResizeObserver driven by the host: the host calls Notify
// after it changes the size of a surface.
type Registry struct {
	mu        sync.Mutex
	callbacks map[Surface]func()
}

// NewRegistry creates an empty surface registry
func NewRegistry() *Registry {
	return &Registry{callbacks: make(map[Surface]func())}
}

// Observe registers the resize callback for s, replacing any previous one
func (r *Registry) Observe(s Surface, onResize func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.callbacks[s] = onResize
}

// Unobserve forgets s
func (r *Registry) Unobserve(s Surface) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.callbacks, s)
}

// Observed reports whether s has a registered callback
func (r *Registry) Observed(s Surface) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.callbacks[s]
	return ok
}

// Notify runs the callback registered for s, if any
func (r *Registry) Notify(s Surface) {
	r.mu.Lock()
	cb := r.callbacks[s]
	r.mu.Unlock()
	if cb != nil {
		cb()
	}
}
