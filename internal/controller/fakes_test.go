package controller

import (
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"github.com/ivlev/revealer/internal/descriptor"
)

type fakeElement struct {
	id    string
	attrs map[string]string
}

func (e *fakeElement) ID() string              { return e.id }
func (e *fakeElement) Attr(name string) string { return e.attrs[name] }

func el(id, animation, order string) *fakeElement {
	attrs := map[string]string{descriptor.AttrAnimation: animation}
	if order != "" {
		attrs[descriptor.AttrOrder] = order
	}
	return &fakeElement{id: id, attrs: attrs}
}

type fakeSlide struct {
	attrs    map[string]string
	elements []Element
}

type fakeQuery struct {
	slides []fakeSlide
}

func (q *fakeQuery) SlideCount() int { return len(q.slides) }

func (q *fakeQuery) Elements(slide int) []Element { return q.slides[slide].elements }

func (q *fakeQuery) SlideAttr(slide int, name string) string { return q.slides[slide].attrs[name] }

func slide(attrs map[string]string, els ...Element) fakeSlide {
	return fakeSlide{attrs: attrs, elements: els}
}

// hidden kinds: appear starts hidden, disappear and rotate start visible.
func startsVisible(animation string) bool {
	first := strings.Fields(animation)
	if len(first) == 0 {
		return true
	}
	return first[0] == "disappear" || first[0] == "rotate"
}

func endVisible(animation string, forward bool) bool {
	switch animation {
	case "disappear":
		return !forward
	case "rotate":
		return true
	default:
		return forward
	}
}

type play struct {
	id        string
	animation string
	forward   bool
}

type fakeAnimator struct {
	mu      sync.Mutex
	visible map[string]bool
	plays   []play
	markers []string

	started chan struct{}
	release chan struct{}
	fail    error
	panics  bool
}

func newAnimator() *fakeAnimator {
	return &fakeAnimator{visible: make(map[string]bool)}
}

func (a *fakeAnimator) Play(el Element, animation string, forward bool) error {
	if a.started != nil {
		a.started <- struct{}{}
	}
	if a.release != nil {
		<-a.release
	}
	if a.panics {
		panic("renderer exploded")
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.plays = append(a.plays, play{el.ID(), animation, forward})
	if a.fail != nil {
		return a.fail
	}
	a.visible[el.ID()] = endVisible(animation, forward)
	return nil
}

func (a *fakeAnimator) Settle(el Element, animation string, forward bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.visible[el.ID()] = endVisible(animation, forward)
}

func (a *fakeAnimator) SetBaseline(els []Element, revealed bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, e := range els {
		a.visible[e.ID()] = revealed || startsVisible(e.Attr(descriptor.AttrAnimation))
	}
}

func (a *fakeAnimator) SetVisible(el Element, visible bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.visible[el.ID()] = visible
}

func (a *fakeAnimator) Visible(el Element) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.visible[el.ID()]
}

func (a *fakeAnimator) RemoveMarkers(el Element) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.markers = append(a.markers, el.ID())
}

func (a *fakeAnimator) isVisible(id string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.visible[id]
}

func (a *fakeAnimator) playCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.plays)
}

type fakeTransitions struct {
	calls []string
	fail  error
}

func (t *fakeTransitions) Transition(from, to int, forward bool) error {
	t.calls = append(t.calls, fmt.Sprintf("%d->%d:%v", from, to, forward))
	return t.fail
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}
