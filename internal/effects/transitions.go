package effects

import (
	"sync"
	"time"
)

// DefaultTransition is used for missing or unknown transition names.
const DefaultTransition = "fade"

// Transition describes how the display moves between two slides.
type Transition struct {
	Name     string
	Enter    func(forward bool) string
	Exit     func(forward bool) string
	Duration time.Duration
}

func fixed(class string) func(bool) string {
	return func(bool) string { return class }
}

func directional(forward, backward string) func(bool) string {
	return func(fwd bool) string {
		if fwd {
			return forward
		}
		return backward
	}
}

// Transitions maps transition names to transitions.
type Transitions struct {
	mu       sync.RWMutex
	byName   map[string]Transition
	fallback string
}

// NewTransitions creates a registry holding fade, slide and jump, each lasting
// duration. Unknown names resolve to defaultName.
func NewTransitions(defaultName string, duration time.Duration) *Transitions {
	t := &Transitions{byName: map[string]Transition{
		"fade": {
			Name:     "fade",
			Enter:    fixed("fade-in"),
			Exit:     fixed("fade-out"),
			Duration: duration,
		},
		"slide": {
			Name:     "slide",
			Enter:    directional("slide-in-right", "slide-in-left"),
			Exit:     directional("slide-out-left", "slide-out-right"),
			Duration: duration,
		},
		"jump": {
			Name:     "jump",
			Enter:    fixed("jump-in"),
			Exit:     fixed("fade-out"),
			Duration: duration,
		},
	}}
	if _, ok := t.byName[defaultName]; !ok {
		defaultName = DefaultTransition
	}
	t.fallback = defaultName
	return t
}

// Register adds or replaces a transition. Missing class functions default to
// the fade classes.
func (t *Transitions) Register(tr Transition) {
	if tr.Enter == nil {
		tr.Enter = fixed("fade-in")
	}
	if tr.Exit == nil {
		tr.Exit = fixed("fade-out")
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.byName[tr.Name] = tr
}

// Lookup returns the transition registered under name, or the default one
// and false.
func (t *Transitions) Lookup(name string) (Transition, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if tr, ok := t.byName[name]; ok {
		return tr, true
	}
	return t.byName[t.fallback], false
}
