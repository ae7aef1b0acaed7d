// Package controller turns forward/backward requests into animation steps,
// repeats and slide changes.
package controller

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/ivlev/revealer/internal/descriptor"
	"github.com/ivlev/revealer/internal/ledger"
	"github.com/ivlev/revealer/internal/progress"
	"github.com/ivlev/revealer/internal/repeat"
	"github.com/ivlev/revealer/internal/sequence"
)

var (
	// ErrNoSlides is returned when the presentation has nothing to show.
	ErrNoSlides = errors.New("presentation has no slides")
	// ErrBusy is returned by Reset while a request is in flight.
	ErrBusy = errors.New("animation in flight")
)

// Controller sequences a presentation. Only one request runs at a time;
// requests arriving meanwhile are dropped.
type Controller struct {
	mu    sync.Mutex
	state State
	pos   Position

	query       ElementQuery
	animator    AnimationRunner
	transitions TransitionRunner
	logger      *log.Logger

	sequences []*sequence.Sequence
	ledger    *ledger.Ledger
	store     *progress.Store
	repeats   *repeat.Counter
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for warnings and slide changes.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// New builds one sequence per slide and puts the first slide on its baseline.
func New(query ElementQuery, animator AnimationRunner, transitions TransitionRunner, opts ...Option) (*Controller, error) {
	count := query.SlideCount()
	if count == 0 {
		return nil, ErrNoSlides
	}

	c := &Controller{
		query:       query,
		animator:    animator,
		transitions: transitions,
		logger:      log.Default(),
		sequences:   make([]*sequence.Sequence, count),
		ledger:      ledger.New(count),
		store:       progress.NewStore(),
	}
	for _, opt := range opts {
		opt(c)
	}

	limits := make([]int, count)
	for i := 0; i < count; i++ {
		els := query.Elements(i)
		for _, el := range els {
			if descriptor.Malformed(el) {
				c.logger.Printf("[!] Slide %d: element %q has an unusable order %q, using discovery order",
					i, el.ID(), el.Attr(descriptor.AttrOrder))
			}
		}
		c.sequences[i] = sequence.New(els)
		limits[i] = repeat.ParseMax(query.SlideAttr(i, descriptor.AttrRepeats))
	}
	c.repeats = repeat.New(limits)

	c.initFresh(0)
	c.pos = c.position()

	return c, nil
}

// Forward plays the next step, starts the next repeat or advances the slide.
func (c *Controller) Forward() (Outcome, error) {
	if !c.acquire() {
		return Busy, nil
	}
	defer c.release()
	return c.forward()
}

// Backward reverses the last step, resumes the previous repeat or returns
// to the previously visited slide.
func (c *Controller) Backward() (Outcome, error) {
	if !c.acquire() {
		return Busy, nil
	}
	defer c.release()
	return c.backward()
}

// JumpTo moves to slide index without stepping through the slides in between.
// Backward from there returns to the slide the jump started from.
func (c *Controller) JumpTo(index int) (Outcome, error) {
	if !c.acquire() {
		return Busy, nil
	}
	defer c.release()

	from := c.ledger.Current()
	c.save(from)
	if !c.ledger.Jump(index) {
		return None, nil
	}
	c.repeats.Reset(from)
	return Advanced, c.enter(from, index, index > from)
}

// Reset forgets all progress and returns to the first slide.
func (c *Controller) Reset() error {
	if !c.acquire() {
		return ErrBusy
	}
	defer c.release()

	from := c.ledger.Current()
	c.ledger.Reset()
	c.store.ResetAll()
	c.repeats.ResetAll()
	for _, seq := range c.sequences {
		seq.Reset()
	}

	var err error
	if from != 0 {
		if terr := c.transitions.Transition(from, 0, false); terr != nil {
			err = fmt.Errorf("transition %d -> 0: %w", from, terr)
		}
	}
	c.initFresh(0)
	return err
}

// Position returns the last settled position and the current gate state.
func (c *Controller) Position() Position {
	c.mu.Lock()
	defer c.mu.Unlock()
	pos := c.pos
	pos.State = c.state
	return pos
}

// State returns the gate state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) acquire() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Animating {
		return false
	}
	c.state = Animating
	return true
}

func (c *Controller) release() {
	pos := c.position()
	c.mu.Lock()
	c.pos = pos
	c.state = Idle
	c.mu.Unlock()
}

// position must only be called while the gate is held or before New returns.
func (c *Controller) position() Position {
	slide := c.ledger.Current()
	seq := c.sequences[slide]
	return Position{
		Slide:   slide,
		Slides:  c.ledger.Count(),
		Step:    seq.Cursor(),
		Steps:   seq.Len(),
		Repeat:  c.repeats.Current(slide),
		Repeats: c.repeats.Max(slide),
	}
}

func (c *Controller) forward() (Outcome, error) {
	slide := c.ledger.Current()
	seq := c.sequences[slide]

	if seq.HasNext() {
		return Stepped, c.playNext(slide, seq)
	}

	if seq.Len() > 0 && c.repeats.Advance(slide) {
		c.logger.Printf("[*] Slide %d: repeat %d/%d", slide+1, c.repeats.Current(slide), c.repeats.Max(slide))
		seq.Reset()
		c.animator.SetBaseline(seq.Elements(), false)
		return Repeated, c.playNext(slide, seq)
	}

	c.save(slide)
	if !c.ledger.Next() {
		return None, nil
	}
	c.repeats.Reset(slide)
	return Advanced, c.enter(slide, c.ledger.Current(), true)
}

func (c *Controller) backward() (Outcome, error) {
	slide := c.ledger.Current()
	seq := c.sequences[slide]

	if seq.HasPrevious() {
		r, _ := seq.Previous()
		c.animator.RemoveMarkers(r.Element)
		err := c.animator.Play(r.Element, r.Animation, false)
		c.save(slide)
		if err != nil {
			return Stepped, fmt.Errorf("reverse %s on %s: %w", r.Animation, r.Element.ID(), err)
		}
		return Stepped, nil
	}

	if seq.Len() > 0 && c.repeats.Regress(slide) {
		c.logger.Printf("[*] Slide %d: back to repeat %d/%d", slide+1, c.repeats.Current(slide), c.repeats.Max(slide))
		c.fastForward(seq)
		c.save(slide)
		return Rewound, nil
	}

	c.save(slide)
	if !c.ledger.Previous() {
		return None, nil
	}
	return Retreated, c.enter(slide, c.ledger.Current(), false)
}

func (c *Controller) playNext(slide int, seq *sequence.Sequence) error {
	r, ok := seq.Next()
	if !ok {
		return nil
	}
	err := c.animator.Play(r.Element, r.Animation, true)
	c.save(slide)
	if err != nil {
		return fmt.Errorf("play %s on %s: %w", r.Animation, r.Element.ID(), err)
	}
	return nil
}

// enter runs the transition and sets up the arrival slide. The slide is set
// up even if the transition failed so that the view matches the sequence.
func (c *Controller) enter(from, to int, forward bool) error {
	c.logger.Printf("[*] Slide %d -> %d", from+1, to+1)

	var err error
	if terr := c.transitions.Transition(from, to, forward); terr != nil {
		err = fmt.Errorf("transition %d -> %d: %w", from, to, terr)
	}

	if state, ok := c.store.Get(to); ok {
		c.restore(to, state)
	} else if forward {
		c.initFresh(to)
	} else {
		c.revealAll(to)
	}
	return err
}

func (c *Controller) save(slide int) {
	seq := c.sequences[slide]
	c.store.Save(slide, progress.Snapshot(seq, c.animator.Visible, c.repeats.Current(slide)))
}

func (c *Controller) restore(slide int, state progress.SlideState) {
	seq := c.sequences[slide]
	seq.Reset()
	els := seq.Elements()
	c.animator.SetBaseline(els, false)
	for _, el := range els {
		if es, ok := state.Visibility[el.ID()]; ok {
			c.animator.SetVisible(el, es.Visible)
		}
	}
	if n := seq.Restore(state.History); n != len(state.History) {
		c.logger.Printf("[!] Slide %d: restored %d of %d steps", slide+1, n, len(state.History))
	}
	c.repeats.Set(slide, state.RepeatCount)
}

func (c *Controller) initFresh(slide int) {
	seq := c.sequences[slide]
	seq.Reset()
	c.animator.SetBaseline(seq.Elements(), false)
	c.repeats.Reset(slide)
}

// revealAll shows a slide reached backward without a saved state, with its
// sequence at the end of its last repeat.
func (c *Controller) revealAll(slide int) {
	seq := c.sequences[slide]
	seq.Reset()
	for seq.HasNext() {
		seq.Next()
	}
	c.animator.SetBaseline(seq.Elements(), true)
	c.repeats.Set(slide, c.repeats.Max(slide))
}

// fastForward replays seq to its end, settling each step without animation.
func (c *Controller) fastForward(seq *sequence.Sequence) {
	seq.Reset()
	c.animator.SetBaseline(seq.Elements(), false)
	for {
		r, ok := seq.Next()
		if !ok {
			return
		}
		c.animator.Settle(r.Element, r.Animation, true)
	}
}
