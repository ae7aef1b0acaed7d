package stage

import (
	"sort"
	"sync"
)

// Element is a visual unit on a slide. Its appearance is written by the
// renderer and read by whatever draws the stage.
type Element struct {
	mu       sync.RWMutex
	id       string
	text     string
	attrs    map[string]string
	opacity  float64
	rotation float64 // degrees
	classes  map[string]bool
}

func newElement(id, text string, attrs map[string]string) *Element {
	return &Element{
		id:      id,
		text:    text,
		attrs:   attrs,
		opacity: 1,
		classes: make(map[string]bool),
	}
}

// ID returns the element id
func (e *Element) ID() string { return e.id }

// Text returns the element content
func (e *Element) Text() string { return e.text }

// Attr returns a declared attribute, "" when absent.
func (e *Element) Attr(name string) string { return e.attrs[name] }

// Opacity returns the current opacity in [0, 1].
func (e *Element) Opacity() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.opacity
}

// SetOpacity clamps v to [0, 1].
func (e *Element) SetOpacity(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	e.mu.Lock()
	e.opacity = v
	e.mu.Unlock()
}

// Visible reports whether the element is shown at all.
func (e *Element) Visible() bool {
	return e.Opacity() > 0
}

// Rotation returns the current rotation in degrees.
func (e *Element) Rotation() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.rotation
}

// SetRotation sets the rotation in degrees.
func (e *Element) SetRotation(deg float64) {
	e.mu.Lock()
	e.rotation = deg
	e.mu.Unlock()
}

// AddClass marks the element with class.
func (e *Element) AddClass(class string) {
	e.mu.Lock()
	e.classes[class] = true
	e.mu.Unlock()
}

// RemoveClasses drops every given class.
func (e *Element) RemoveClasses(classes ...string) {
	e.mu.Lock()
	for _, c := range classes {
		delete(e.classes, c)
	}
	e.mu.Unlock()
}

// HasClass reports whether the element carries class.
func (e *Element) HasClass(class string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.classes[class]
}

// Classes returns the marker classes, sorted.
func (e *Element) Classes() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]string, 0, len(e.classes))
	for c := range e.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
