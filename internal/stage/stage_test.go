package stage

import (
	"strings"
	"testing"

	"github.com/ivlev/revealer/internal/deck"
	"github.com/ivlev/revealer/internal/descriptor"
)

func testDeck(t *testing.T) *deck.Deck {
	t.Helper()
	d, err := deck.Decode(strings.NewReader(`
title: stage test
slides:
  - transition: jump_into
    repeats: 2
    elements:
      - id: a
        text: Alpha
        animation: appear
        order: "1"
      - id: b
        text: Beta
  - id: second
    elements:
      - id: c
    sequence:
      - target: c
        animation: disappear
`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	return d
}

func TestNewStage(t *testing.T) {
	st := New(testDeck(t))

	if st.SlideCount() != 2 || st.Title() != "stage test" {
		t.Fatalf("unexpected stage: %d slides, title %q", st.SlideCount(), st.Title())
	}
	if st.Slide(0).ID() != "slide-1" || st.Slide(1).ID() != "second" {
		t.Errorf("unexpected slide ids %q, %q", st.Slide(0).ID(), st.Slide(1).ID())
	}
	if got := st.SlideAttr(0, descriptor.AttrTransition); got != "jump" {
		t.Errorf("Expected jump transition, got %q", got)
	}
	if got := st.SlideAttr(0, descriptor.AttrRepeats); got != "2" {
		t.Errorf("Expected repeats 2, got %q", got)
	}
	if got := st.SlideAttr(1, descriptor.AttrRepeats); got != "" {
		t.Errorf("Expected no repeats attribute, got %q", got)
	}

	els := st.Elements(0)
	if len(els) != 2 || els[0].ID() != "a" || els[1].ID() != "b" {
		t.Fatalf("unexpected elements %v", els)
	}
	if els[0].Attr(descriptor.AttrAnimation) != "appear" || els[0].Attr(descriptor.AttrOrder) != "1" {
		t.Errorf("unexpected attributes on a")
	}
	if els[1].Attr(descriptor.AttrAnimation) != "" {
		t.Error("b should have no animation")
	}
	if c := st.Lookup(1, "c"); c == nil || c.Attr(descriptor.AttrAnimation) != "disappear" {
		t.Error("c should carry its compiled animation")
	}

	if st.Elements(5) != nil || st.SlideAttr(-1, "x") != "" || st.Lookup(9, "a") != nil {
		t.Error("out of range slides should be empty")
	}
}

func TestActive(t *testing.T) {
	st := New(testDeck(t))
	if st.Active() != 0 || st.Slide(0).Opacity() != 1 || st.Slide(1).Opacity() != 0 {
		t.Fatal("first slide should be displayed initially")
	}
	st.SetActive(1)
	st.SetActive(7)
	if st.Active() != 1 {
		t.Errorf("Expected slide 1, got %d", st.Active())
	}
}

func TestElementAppearance(t *testing.T) {
	el := newElement("x", "text", nil)
	if !el.Visible() || el.Opacity() != 1 {
		t.Fatal("elements start fully visible")
	}
	el.SetOpacity(-3)
	if el.Visible() {
		t.Error("opacity should clamp to 0")
	}
	el.SetOpacity(2)
	if el.Opacity() != 1 {
		t.Error("opacity should clamp to 1")
	}

	el.AddClass("appear")
	el.AddClass("barrel-roll")
	if !el.HasClass("appear") {
		t.Error("Expected appear class")
	}
	el.RemoveClasses("appear", "unknown")
	if got := el.Classes(); len(got) != 1 || got[0] != "barrel-roll" {
		t.Errorf("unexpected classes %v", got)
	}
	if el.Attr("anything") != "" {
		t.Error("missing attributes should be empty")
	}
}
