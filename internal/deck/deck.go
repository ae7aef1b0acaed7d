package deck

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrNoSlides is returned for a deck without slides.
	ErrNoSlides = errors.New("deck has no slides")
	// ErrUnknownTarget is returned when a sequence step names a missing element.
	ErrUnknownTarget = errors.New("sequence targets an unknown element")
)

// Deck is a presentation document
type Deck struct {
	Version string  `yaml:"version"`
	Title   string  `yaml:"title,omitempty"`
	Slides  []Slide `yaml:"slides"`
}

// Slide is one page of the presentation
type Slide struct {
	ID         string    `yaml:"id"`
	Transition string    `yaml:"transition,omitempty"` // fade | slide | jump
	Repeats    int       `yaml:"repeats,omitempty"`
	Elements   []Element `yaml:"elements"`
	Sequence   []Step    `yaml:"sequence,omitempty"`
}

// Element is a visual unit on a slide
type Element struct {
	ID        string `yaml:"id"`
	Text      string `yaml:"text,omitempty"`
	Animation string `yaml:"animation,omitempty"` // space separated names
	Order     string `yaml:"order,omitempty"`     // single base or comma separated list
}

// Step is one entry of a slide's sequence block
type Step struct {
	Target    string `yaml:"target"`
	Animation string `yaml:"animation"`
}

var transitionAliases = map[string]string{
	"fade_into": "fade",
	"jump_into": "jump",
}

// NormalizeTransition maps legacy transition names to the registered ones.
func NormalizeTransition(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if alias, ok := transitionAliases[name]; ok {
		return alias
	}
	return name
}

// Validate checks the structure of the deck.
func (d *Deck) Validate() error {
	if len(d.Slides) == 0 {
		return ErrNoSlides
	}
	slideIDs := make(map[string]bool)
	for i, s := range d.Slides {
		if s.ID != "" {
			if slideIDs[s.ID] {
				return fmt.Errorf("slide %d: duplicate id %q", i+1, s.ID)
			}
			slideIDs[s.ID] = true
		}
		if s.Repeats < 0 {
			return fmt.Errorf("slide %d: negative repeats %d", i+1, s.Repeats)
		}
		ids := make(map[string]bool)
		for _, el := range s.Elements {
			if el.ID == "" {
				return fmt.Errorf("slide %d: element without id", i+1)
			}
			key := strings.ToLower(el.ID)
			if ids[key] {
				return fmt.Errorf("slide %d: duplicate element %q", i+1, el.ID)
			}
			ids[key] = true
		}
		for _, step := range s.Sequence {
			if !ids[strings.ToLower(step.Target)] {
				return fmt.Errorf("slide %d: %w: %q", i+1, ErrUnknownTarget, step.Target)
			}
		}
	}
	return nil
}

// Compile writes every slide's sequence block into the animation and order
// fields of its elements. Step numbers start at 1 and targets match
// case-insensitively. Elements a sequence does not mention keep their fields.
func (d *Deck) Compile() error {
	for i := range d.Slides {
		s := &d.Slides[i]
		s.Transition = NormalizeTransition(s.Transition)
		if len(s.Sequence) == 0 {
			continue
		}

		index := make(map[string]int, len(s.Elements))
		for j, el := range s.Elements {
			index[strings.ToLower(el.ID)] = j
		}

		names := make(map[int][]string)
		orders := make(map[int][]string)
		for n, step := range s.Sequence {
			j, ok := index[strings.ToLower(step.Target)]
			if !ok {
				return fmt.Errorf("slide %d: %w: %q", i+1, ErrUnknownTarget, step.Target)
			}
			names[j] = append(names[j], strings.TrimSpace(step.Animation))
			orders[j] = append(orders[j], strconv.Itoa(n+1))
		}

		for j := range s.Elements {
			if _, ok := names[j]; !ok {
				continue
			}
			s.Elements[j].Animation = strings.Join(names[j], " ")
			s.Elements[j].Order = strings.Join(orders[j], ", ")
		}
		s.Sequence = nil
	}
	return nil
}
