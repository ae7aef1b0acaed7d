package controller

import "github.com/ivlev/revealer/internal/descriptor"

// Element is an opaque handle to a visual unit owned by the view tree.
type Element = descriptor.Element

// AnimationRunner renders element effects.
//
// Play must return once the effect has completed, including for unknown
// animation names, which are rendered as a plain show/hide. A runner that
// never returns stalls the controller.
//
// SetBaseline puts elements in their state before the first animation of the
// sequence: hidden when that animation shows the element, visible otherwise.
// With revealed set it puts them in the state left by their last animation.
// Settle applies the end state of one animation without drawing it.
type AnimationRunner interface {
	Play(el Element, animation string, forward bool) error
	Settle(el Element, animation string, forward bool)
	SetBaseline(els []Element, revealed bool)
	SetVisible(el Element, visible bool)
	Visible(el Element) bool
	RemoveMarkers(el Element)
}

// TransitionRunner moves the display from one slide to another and returns
// once the transition has completed.
type TransitionRunner interface {
	Transition(from, to int, forward bool) error
}

// ElementQuery exposes the slides and their animatable elements.
type ElementQuery interface {
	SlideCount() int
	Elements(slide int) []Element
	SlideAttr(slide int, name string) string
}
