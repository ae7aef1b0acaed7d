package engine

import (
	"bytes"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/ivlev/revealer/internal/config"
	"github.com/ivlev/revealer/internal/controller"
	"github.com/ivlev/revealer/internal/deck"
)

func testConfig() *config.Config {
	return &config.Config{
		Animation:  config.AnimationConfig{Default: "appear", Duration: 0, FPS: 30},
		Transition: config.TransitionConfig{Default: "fade", Duration: 0},
	}
}

func quiet() *log.Logger { return log.New(io.Discard, "", 0) }

func decode(t *testing.T, doc string) *deck.Deck {
	t.Helper()
	d, err := deck.Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	return d
}

func TestNewPresentationPlaysSample(t *testing.T) {
	d := SampleDeck()
	if err := d.Validate(); err != nil {
		t.Fatalf("sample deck is invalid: %v", err)
	}
	if err := d.Compile(); err != nil {
		t.Fatalf("sample deck does not compile: %v", err)
	}

	p, err := NewPresentation(testConfig(), d, quiet())
	if err != nil {
		t.Fatalf("NewPresentation failed: %v", err)
	}

	// intro: 2 steps; sequence: 3 steps twice; outro: 2 steps.
	want := []controller.Outcome{
		controller.Stepped, controller.Stepped, controller.Advanced,
		controller.Stepped, controller.Stepped, controller.Stepped,
		controller.Repeated, controller.Stepped, controller.Stepped, controller.Advanced,
		controller.Stepped, controller.Stepped, controller.None,
	}
	for i, w := range want {
		out, err := p.Controller.Forward()
		if err != nil {
			t.Fatalf("forward %d: %v", i, err)
		}
		if out != w {
			t.Fatalf("forward %d: expected %s, got %s", i, w, out)
		}
	}

	if p.Stage.Active() != 2 {
		t.Errorf("Expected the last slide active, got %d", p.Stage.Active())
	}
	thanks := p.Stage.Lookup(2, "thanks")
	if !thanks.Visible() || thanks.Rotation() != 0 {
		t.Error("thanks should be shown and upright after its rotation")
	}
}

func TestDescribe(t *testing.T) {
	d := decode(t, `
slides:
  - id: one
    transition: sparkle
    elements:
      - id: a
        animation: apear
      - id: b
        animation: appear
        order: "x"
  - id: two
    repeats: 3
    elements:
      - id: c
        animation: appear disappear
        order: "2,1"
`)
	p, err := NewPresentation(testConfig(), d, quiet())
	if err != nil {
		t.Fatalf("NewPresentation failed: %v", err)
	}

	var buf bytes.Buffer
	problems := p.Describe(&buf)
	out := buf.String()

	if problems != 3 {
		t.Errorf("Expected 3 problems, got %d:\n%s", problems, out)
	}
	for _, want := range []string{
		"Slide 1 (one) transition=fade repeats=1",
		`unknown transition "sparkle"`,
		`unusable order "x"`,
		`did you mean "appear"?`,
		"Slide 2 (two) transition=fade repeats=3",
		"1. c disappear (order 1)",
		"2. c appear (order 2)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q:\n%s", want, out)
		}
	}
}

func TestEstimate(t *testing.T) {
	d := decode(t, `
slides:
  - elements:
      - id: a
        animation: appear
      - id: b
        animation: disappear
  - transition: slide
    repeats: 2
    elements:
      - id: c
        animation: barrel-roll
`)
	cfg := testConfig()
	cfg.Animation.Duration = 500 * time.Millisecond
	cfg.Transition.Duration = 800 * time.Millisecond
	p, err := NewPresentation(cfg, d, quiet())
	if err != nil {
		t.Fatalf("NewPresentation failed: %v", err)
	}

	durations, total := p.Estimate()
	if len(durations) != 2 {
		t.Fatalf("Expected 2 durations, got %d", len(durations))
	}
	if durations[0] != time.Second {
		t.Errorf("slide 1: expected 1s, got %v", durations[0])
	}
	if durations[1] != 1800*time.Millisecond {
		t.Errorf("slide 2: expected 1.8s, got %v", durations[1])
	}
	if total != 2800*time.Millisecond {
		t.Errorf("Expected 2.8s in total, got %v", total)
	}
}

func TestWriteSample(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteSample(dir, quiet())
	if err != nil {
		t.Fatalf("WriteSample failed: %v", err)
	}

	latest, err := deck.FindLatestDeck(dir)
	if err != nil || latest != path {
		t.Fatalf("Expected %s to be the latest deck, got %s (%v)", path, latest, err)
	}
	d, err := deck.ReadDeck(path)
	if err != nil {
		t.Fatalf("sample deck does not read back: %v", err)
	}
	if len(d.Slides) != 3 || d.Slides[1].Elements[0].Animation != "disappear" {
		t.Errorf("unexpected sample deck %+v", d.Slides)
	}
}
