// Package progress remembers, per slide, how far its sequence went and what
// every element looked like when the slide was left.
package progress

import (
	"github.com/ivlev/revealer/internal/descriptor"
	"github.com/ivlev/revealer/internal/sequence"
)

// ElementState is the observed appearance of one element.
type ElementState struct {
	Visible    bool
	Animations []string
}

// SlideState is a snapshot of one slide.
type SlideState struct {
	History     []sequence.HistoryEntry
	Visibility  map[string]ElementState // keyed by element id
	RepeatCount int
}

// Snapshot captures the state of seq and its elements.
func Snapshot(seq *sequence.Sequence, visible func(sequence.Element) bool, repeat int) SlideState {
	state := SlideState{
		History:     seq.History(),
		Visibility:  make(map[string]ElementState),
		RepeatCount: repeat,
	}
	for _, el := range seq.Elements() {
		state.Visibility[el.ID()] = ElementState{
			Visible:    visible(el),
			Animations: descriptor.ParseNames(el.Attr(descriptor.AttrAnimation)),
		}
	}
	return state
}

func (s SlideState) clone() SlideState {
	out := SlideState{
		History:     make([]sequence.HistoryEntry, len(s.History)),
		Visibility:  make(map[string]ElementState, len(s.Visibility)),
		RepeatCount: s.RepeatCount,
	}
	copy(out.History, s.History)
	for id, es := range s.Visibility {
		names := make([]string, len(es.Animations))
		copy(names, es.Animations)
		out.Visibility[id] = ElementState{Visible: es.Visible, Animations: names}
	}
	return out
}

// Store keeps the last snapshot of every slide.
type Store struct {
	states map[int]SlideState
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{states: make(map[int]SlideState)}
}

// Save overwrites the snapshot of slide index.
func (s *Store) Save(index int, state SlideState) {
	s.states[index] = state.clone()
}

// Get returns the last snapshot of slide index.
func (s *Store) Get(index int) (SlideState, bool) {
	state, ok := s.states[index]
	if !ok {
		return SlideState{}, false
	}
	return state.clone(), true
}

// Has reports whether slide index was saved.
func (s *Store) Has(index int) bool {
	_, ok := s.states[index]
	return ok
}

// Reset forgets slide index.
func (s *Store) Reset(index int) {
	delete(s.states, index)
}

// ResetAll forgets every slide.
func (s *Store) ResetAll() {
	s.states = make(map[int]SlideState)
}

// Len returns the number of saved slides.
func (s *Store) Len() int { return len(s.states) }
