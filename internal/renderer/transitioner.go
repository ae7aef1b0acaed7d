package renderer

import (
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/revealer/internal/descriptor"
	"github.com/ivlev/revealer/internal/effects"
	"github.com/ivlev/revealer/internal/stage"
)

// Transitioner moves the stage between slides.
type Transitioner struct {
	Stage    *stage.Stage
	Registry *effects.Transitions
	FPS      int
	Curve    Curve
	Logger   *log.Logger
	OnFrame  func()
}

// NewTransitioner creates a transitioner for st.
func NewTransitioner(st *stage.Stage, registry *effects.Transitions, fps int) *Transitioner {
	return &Transitioner{
		Stage:    st,
		Registry: registry,
		FPS:      fps,
		Curve:    CurveByName(DefaultCurve),
		Logger:   log.Default(),
	}
}

// Resolve returns the transition used between from and to. Going forward the
// arriving slide decides, going backward the slide being left does.
func (t *Transitioner) Resolve(from, to int, forward bool) effects.Transition {
	slide := to
	if !forward {
		slide = from
	}
	name := t.Stage.SlideAttr(slide, descriptor.AttrTransition)
	tr, ok := t.Registry.Lookup(name)
	if !ok && name != "" {
		t.Logger.Printf("[!] Slide %d: unknown transition %q, using %q", slide+1, name, tr.Name)
	}
	return tr
}

// Transition runs the exit effect on from and the enter effect on to, then
// makes to the active slide.
func (t *Transitioner) Transition(from, to int, forward bool) error {
	src, dst := t.Stage.Slide(from), t.Stage.Slide(to)
	if src == nil || dst == nil {
		return fmt.Errorf("transition %d -> %d: slide out of range", from, to)
	}
	tr := t.Resolve(from, to, forward)

	exit, enter := tr.Exit(forward), tr.Enter(forward)
	var g errgroup.Group
	g.Go(func() error {
		frames(tr.Duration, t.FPS, func(p float64) {
			opacity, offset := transitionFrame(exit, false, Interpolate(0, 1, p, t.Curve))
			src.SetFrame(opacity, offset, exit)
		})
		return nil
	})
	g.Go(func() error {
		frames(tr.Duration, t.FPS, func(p float64) {
			opacity, offset := transitionFrame(enter, true, Interpolate(0, 1, p, t.Curve))
			dst.SetFrame(opacity, offset, enter)
			if t.OnFrame != nil {
				t.OnFrame()
			}
		})
		return nil
	})
	err := g.Wait()

	src.SetFrame(0, 0, "")
	dst.SetFrame(1, 0, "")
	t.Stage.SetActive(to)
	if t.OnFrame != nil {
		t.OnFrame()
	}
	return err
}

// transitionFrame returns a slide's opacity and horizontal offset at progress p
// of the effect named by class.
func transitionFrame(class string, entering bool, p float64) (opacity, offset float64) {
	switch class {
	case "slide-out-left":
		return 1, -p
	case "slide-out-right":
		return 1, p
	case "slide-in-right":
		return 1, 1 - p
	case "slide-in-left":
		return 1, p - 1
	}
	if entering {
		return p, 0
	}
	return 1 - p, 0
}
