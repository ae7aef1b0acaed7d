// Package sequence holds the ordered, reversible list of animation steps of a slide.
package sequence

import (
	"sort"

	"github.com/ivlev/revealer/internal/descriptor"
)

// Element is the handle steps refer to.
type Element = descriptor.Element

// Step is one (element, animation) unit of work.
type Step struct {
	Element        Element
	Animation      string
	Order          int
	Explicit       bool
	AnimationIndex int // position of the animation on its element
	Discovery      int // position of the step before sorting
}

// Result is what Next and Previous hand to the animation runner.
type Result struct {
	Element   Element
	Animation string
	First     bool // first animation of the element in this pass
}

// HistoryEntry records an executed step.
type HistoryEntry struct {
	Step      Step
	StepIndex int
	First     bool
}

// sortKey orders explicit steps before implicit ones, then by order, then by discovery.
type sortKey struct {
	implicit  bool
	order     int
	discovery int
}

func (k sortKey) less(o sortKey) bool {
	if k.implicit != o.implicit {
		return !k.implicit
	}
	if k.order != o.order {
		return k.order < o.order
	}
	return k.discovery < o.discovery
}

func keyOf(s Step) sortKey {
	return sortKey{implicit: !s.Explicit, order: s.Order, discovery: s.Discovery}
}

// Sequence is the steppable step list of one slide.
type Sequence struct {
	steps    []Step
	elements []Element
	cursor   int
	animated map[string]bool
	history  []HistoryEntry
}

// New builds the sequence for the elements of a slide, in discovery order.
// Elements without declared animations are left out.
func New(elements []Element) *Sequence {
	s := &Sequence{animated: make(map[string]bool)}

	for pos, el := range elements {
		decls := descriptor.Parse(el, pos)
		if len(decls) == 0 {
			continue
		}
		s.elements = append(s.elements, el)
		for i, d := range decls {
			s.steps = append(s.steps, Step{
				Element:        el,
				Animation:      d.Name,
				Order:          d.Order,
				Explicit:       d.Explicit,
				AnimationIndex: i,
				Discovery:      len(s.steps),
			})
		}
	}

	sort.SliceStable(s.steps, func(i, j int) bool {
		return keyOf(s.steps[i]).less(keyOf(s.steps[j]))
	})

	return s
}

// Len returns the number of steps.
func (s *Sequence) Len() int { return len(s.steps) }

// Cursor returns the index of the next step to execute.
func (s *Sequence) Cursor() int { return s.cursor }

// HasNext reports whether a step remains to execute forward.
func (s *Sequence) HasNext() bool { return s.cursor < len(s.steps) }

// HasPrevious reports whether an executed step can be reversed.
func (s *Sequence) HasPrevious() bool { return len(s.history) > 0 }

// Next executes the step at the cursor.
func (s *Sequence) Next() (Result, bool) {
	if !s.HasNext() {
		return Result{}, false
	}

	step := s.steps[s.cursor]
	id := step.Element.ID()
	first := !s.animated[id]
	if first {
		s.animated[id] = true
	}

	s.history = append(s.history, HistoryEntry{Step: step, StepIndex: s.cursor, First: first})
	s.cursor++

	return Result{Element: step.Element, Animation: step.Animation, First: first}, true
}

// Previous reverses the last executed step.
func (s *Sequence) Previous() (Result, bool) {
	if !s.HasPrevious() {
		return Result{}, false
	}

	last := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	if last.First {
		delete(s.animated, last.Step.Element.ID())
	}
	s.cursor = last.StepIndex

	return Result{Element: last.Step.Element, Animation: last.Step.Animation, First: last.First}, true
}

// Reset rewinds the sequence. Visual state is left to the caller.
func (s *Sequence) Reset() {
	s.cursor = 0
	s.animated = make(map[string]bool)
	s.history = nil
}

// Steps returns the ordered steps.
func (s *Sequence) Steps() []Step {
	out := make([]Step, len(s.steps))
	copy(out, s.steps)
	return out
}

// Elements returns every element contributing a step, in discovery order.
func (s *Sequence) Elements() []Element {
	out := make([]Element, len(s.elements))
	copy(out, s.elements)
	return out
}

// Animated returns the elements touched in the current pass.
func (s *Sequence) Animated() []Element {
	var out []Element
	for _, el := range s.elements {
		if s.animated[el.ID()] {
			out = append(out, el)
		}
	}
	return out
}

// NonAnimated returns the elements not yet touched in the current pass.
func (s *Sequence) NonAnimated() []Element {
	var out []Element
	for _, el := range s.elements {
		if !s.animated[el.ID()] {
			out = append(out, el)
		}
	}
	return out
}

// IsAnimated reports whether the element with id was touched in the current pass.
func (s *Sequence) IsAnimated(id string) bool { return s.animated[id] }

// History returns a copy of the executed steps.
func (s *Sequence) History() []HistoryEntry {
	out := make([]HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

// Restore rebuilds the cursor from a captured history without visual effects.
// Entries are replayed while they form a valid prefix of the step order;
// it returns how many were restored.
func (s *Sequence) Restore(history []HistoryEntry) int {
	s.Reset()
	for _, entry := range history {
		if !s.HasNext() || !s.matches(entry) {
			break
		}
		s.Next()
	}
	return s.cursor
}

func (s *Sequence) matches(entry HistoryEntry) bool {
	if entry.StepIndex != s.cursor || entry.Step.Element == nil {
		return false
	}
	step := s.steps[s.cursor]
	return step.Element.ID() == entry.Step.Element.ID() && step.Animation == entry.Step.Animation
}
