// Package renderer plays element effects and slide transitions on a stage.
package renderer

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ivlev/revealer/internal/descriptor"
	"github.com/ivlev/revealer/internal/effects"
)

// Target is an element the animator can draw on.
type Target interface {
	descriptor.Element
	Opacity() float64
	SetOpacity(v float64)
	SetRotation(deg float64)
	AddClass(class string)
	RemoveClasses(classes ...string)
}

// Animator plays catalog effects on stage elements frame by frame.
type Animator struct {
	Catalog  *effects.Catalog
	Duration time.Duration // used by effects without their own duration
	FPS      int
	Curve    Curve
	Logger   *log.Logger
	OnFrame  func() // called after every drawn frame

	mu     sync.Mutex
	warned map[string]bool
}

// NewAnimator creates an animator. A zero duration applies effects at once.
func NewAnimator(catalog *effects.Catalog, duration time.Duration, fps int) *Animator {
	return &Animator{
		Catalog:  catalog,
		Duration: duration,
		FPS:      fps,
		Curve:    CurveByName(DefaultCurve),
		Logger:   log.Default(),
		warned:   make(map[string]bool),
	}
}

func target(el descriptor.Element) (Target, error) {
	t, ok := el.(Target)
	if !ok {
		return nil, fmt.Errorf("element %s cannot be drawn", el.ID())
	}
	return t, nil
}

func opacityOf(visible bool) float64 {
	if visible {
		return 1
	}
	return 0
}

// lookup resolves name, warning once per unknown name.
func (a *Animator) lookup(name string) effects.Effect {
	e, ok := a.Catalog.Lookup(name)
	if ok {
		return e
	}

	a.mu.Lock()
	seen := a.warned[name]
	a.warned[name] = true
	a.mu.Unlock()
	if !seen {
		if s := a.Catalog.Suggest(name); s != "" {
			a.Logger.Printf("[!] Unknown animation %q (did you mean %q?), using %q", name, s, e.Name)
		} else {
			a.Logger.Printf("[!] Unknown animation %q, using %q", name, e.Name)
		}
	}
	return e
}

// kindOf returns the kind of the element's animation at index i; negative
// indices count from the end.
func (a *Animator) kindOf(el descriptor.Element, i int) effects.Kind {
	names := descriptor.ParseNames(el.Attr(descriptor.AttrAnimation))
	if len(names) == 0 {
		return effects.Maintain
	}
	if i < 0 {
		i = len(names) + i
	}
	if i < 0 || i >= len(names) {
		i = 0
	}
	return a.lookup(names[i]).Kind
}

// Play runs an effect and returns once its last frame is drawn.
func (a *Animator) Play(el descriptor.Element, animation string, forward bool) error {
	t, err := target(el)
	if err != nil {
		return err
	}

	e := a.lookup(animation)
	t.RemoveClasses(a.Catalog.Classes()...)
	t.AddClass(e.ClassFor(forward))

	from := opacityOf(effects.StartState(e.Kind, forward))
	to := opacityOf(effects.EndState(e.Kind, forward))
	spin := 360 * e.Turns
	if !forward {
		spin = -spin
	}

	d := e.Duration
	if d == 0 {
		d = a.Duration
	}
	frames(d, a.FPS, func(p float64) {
		t.SetOpacity(Interpolate(from, to, p, a.Curve))
		if e.Kind == effects.Maintain && p < 1 {
			t.SetRotation(Interpolate(0, spin, p, a.Curve))
		} else {
			t.SetRotation(0)
		}
		if a.OnFrame != nil {
			a.OnFrame()
		}
	})
	return nil
}

// Settle puts the element in the end state of an effect without drawing it.
func (a *Animator) Settle(el descriptor.Element, animation string, forward bool) {
	t, err := target(el)
	if err != nil {
		return
	}
	e := a.lookup(animation)
	t.RemoveClasses(a.Catalog.Classes()...)
	t.SetRotation(0)
	t.SetOpacity(opacityOf(effects.EndState(e.Kind, forward)))
}

// SetBaseline puts elements in the state they have before their first effect,
// or, when revealed, in the state left by their last effect.
func (a *Animator) SetBaseline(els []descriptor.Element, revealed bool) {
	for _, el := range els {
		t, err := target(el)
		if err != nil {
			continue
		}
		var visible bool
		if revealed {
			visible = effects.EndState(a.kindOf(el, -1), true)
		} else {
			visible = effects.Baseline(a.kindOf(el, 0))
		}
		t.RemoveClasses(a.Catalog.Classes()...)
		t.SetRotation(0)
		t.SetOpacity(opacityOf(visible))
	}
	if a.OnFrame != nil {
		a.OnFrame()
	}
}

// SetVisible shows or hides the element at once.
func (a *Animator) SetVisible(el descriptor.Element, visible bool) {
	if t, err := target(el); err == nil {
		t.SetOpacity(opacityOf(visible))
	}
}

// Visible reports whether the element is shown.
func (a *Animator) Visible(el descriptor.Element) bool {
	t, err := target(el)
	if err != nil {
		return false
	}
	return t.Opacity() > 0
}

// RemoveMarkers drops every effect class from the element.
func (a *Animator) RemoveMarkers(el descriptor.Element) {
	if t, err := target(el); err == nil {
		t.RemoveClasses(a.Catalog.Classes()...)
	}
}
