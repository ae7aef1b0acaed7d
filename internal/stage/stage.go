// Package stage holds the in-memory view tree of a presentation.
package stage

import (
	"strconv"
	"strings"
	"sync"

	"github.com/ivlev/revealer/internal/deck"
	"github.com/ivlev/revealer/internal/descriptor"
)

// Slide is one page of the stage.
type Slide struct {
	mu       sync.RWMutex
	id       string
	attrs    map[string]string
	elements []*Element
	opacity  float64
	offset   float64 // horizontal shift in slide widths, used by slide transitions
	class    string
}

// ID returns the slide id
func (s *Slide) ID() string { return s.id }

// Elements returns the slide elements in document order.
func (s *Slide) Elements() []*Element {
	out := make([]*Element, len(s.elements))
	copy(out, s.elements)
	return out
}

// Opacity returns the slide opacity in [0, 1].
func (s *Slide) Opacity() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.opacity
}

// Offset returns the horizontal shift of the slide.
func (s *Slide) Offset() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.offset
}

// Class returns the transition class currently applied, if any.
func (s *Slide) Class() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.class
}

// SetFrame updates the slide's transition appearance.
func (s *Slide) SetFrame(opacity, offset float64, class string) {
	s.mu.Lock()
	s.opacity = opacity
	s.offset = offset
	s.class = class
	s.mu.Unlock()
}

// Stage is the whole view tree. It implements controller.ElementQuery.
type Stage struct {
	mu     sync.RWMutex
	title  string
	slides []*Slide
	active int
}

// New builds a stage from a compiled deck.
func New(d *deck.Deck) *Stage {
	st := &Stage{title: d.Title}
	for i, ds := range d.Slides {
		attrs := map[string]string{
			descriptor.AttrTransition: deck.NormalizeTransition(ds.Transition),
		}
		if ds.Repeats > 0 {
			attrs[descriptor.AttrRepeats] = strconv.Itoa(ds.Repeats)
		}
		id := ds.ID
		if id == "" {
			id = "slide-" + strconv.Itoa(i+1)
		}

		sl := &Slide{id: id, attrs: attrs}
		for _, de := range ds.Elements {
			ea := make(map[string]string)
			if a := strings.TrimSpace(de.Animation); a != "" {
				ea[descriptor.AttrAnimation] = a
			}
			if o := strings.TrimSpace(de.Order); o != "" {
				ea[descriptor.AttrOrder] = o
			}
			sl.elements = append(sl.elements, newElement(de.ID, de.Text, ea))
		}
		st.slides = append(st.slides, sl)
	}
	if len(st.slides) > 0 {
		st.slides[0].opacity = 1
	}
	return st
}

// Title returns the deck title.
func (s *Stage) Title() string { return s.title }

// SlideCount returns the number of slides.
func (s *Stage) SlideCount() int { return len(s.slides) }

// Slide returns slide i, or nil when out of range.
func (s *Stage) Slide(i int) *Slide {
	if i < 0 || i >= len(s.slides) {
		return nil
	}
	return s.slides[i]
}

// Elements returns the elements of slide i in document order.
func (s *Stage) Elements(i int) []descriptor.Element {
	sl := s.Slide(i)
	if sl == nil {
		return nil
	}
	out := make([]descriptor.Element, len(sl.elements))
	for j, el := range sl.elements {
		out[j] = el
	}
	return out
}

// SlideAttr returns an attribute of slide i.
func (s *Stage) SlideAttr(i int, name string) string {
	sl := s.Slide(i)
	if sl == nil {
		return ""
	}
	return sl.attrs[name]
}

// Lookup finds an element of slide i by id.
func (s *Stage) Lookup(i int, id string) *Element {
	sl := s.Slide(i)
	if sl == nil {
		return nil
	}
	for _, el := range sl.elements {
		if el.id == id {
			return el
		}
	}
	return nil
}

// Active returns the displayed slide.
func (s *Stage) Active() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// SetActive displays slide i. Out of range indices are ignored.
func (s *Stage) SetActive(i int) {
	if i < 0 || i >= len(s.slides) {
		return
	}
	s.mu.Lock()
	s.active = i
	s.mu.Unlock()
}
