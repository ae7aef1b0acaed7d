package engine

import (
	"fmt"
	"io"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ivlev/revealer/internal/config"
	"github.com/ivlev/revealer/internal/controller"
	"github.com/ivlev/revealer/internal/deck"
	"github.com/ivlev/revealer/internal/descriptor"
	"github.com/ivlev/revealer/internal/effects"
	"github.com/ivlev/revealer/internal/remote"
	"github.com/ivlev/revealer/internal/renderer"
	"github.com/ivlev/revealer/internal/repeat"
	"github.com/ivlev/revealer/internal/sequence"
	"github.com/ivlev/revealer/internal/stage"
	"github.com/ivlev/revealer/internal/tui"
)

type Presentation struct {
	Config       *config.Config
	Deck         *deck.Deck
	Stage        *stage.Stage
	Catalog      *effects.Catalog
	Animator     *renderer.Animator
	Transitioner *renderer.Transitioner
	Controller   *controller.Controller
	Logger       *log.Logger
}

// NewPresentation wires a deck to a stage, the renderers and a controller.
func NewPresentation(cfg *config.Config, d *deck.Deck, logger *log.Logger) (*Presentation, error) {
	if logger == nil {
		logger = log.Default()
	}

	catalog := effects.NewCatalog(cfg.Animation.Default)
	st := stage.New(d)

	anim := renderer.NewAnimator(catalog, cfg.Animation.Duration, cfg.Animation.FPS)
	anim.Curve = renderer.CurveByName(cfg.Animation.Curve)
	anim.Logger = logger

	registry := effects.NewTransitions(deck.NormalizeTransition(cfg.Transition.Default), cfg.Transition.Duration)
	trans := renderer.NewTransitioner(st, registry, cfg.Animation.FPS)
	trans.Curve = anim.Curve
	trans.Logger = logger

	ctrl, err := controller.New(st, anim, trans, controller.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("controller: %w", err)
	}

	return &Presentation{
		Config:       cfg,
		Deck:         d,
		Stage:        st,
		Catalog:      catalog,
		Animator:     anim,
		Transitioner: trans,
		Controller:   ctrl,
		Logger:       logger,
	}, nil
}

// Run plays the presentation in the terminal until the user quits. The remote
// clicker is started first when enabled.
func (p *Presentation) Run() error {
	startTime := time.Now()
	model := tui.New(p.Controller, p.Stage)

	var clicker *remote.Clicker
	model.OnMove = func(action string, outcome controller.Outcome, err error) {
		if clicker != nil {
			clicker.Notify(action, outcome, err)
		}
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	redraw := func() { program.Send(tui.FrameMsg{}) }
	p.Animator.OnFrame = redraw
	p.Transitioner.OnFrame = redraw

	if p.Config.Remote.Enabled {
		var err error
		clicker, err = remote.Dial(p.Config.Remote, p.Controller, p.Logger)
		if err != nil {
			return fmt.Errorf("remote: %w", err)
		}
		defer clicker.Close()
	}

	p.Logger.Printf("[*] Playing %d slides", p.Stage.SlideCount())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("player: %w", err)
	}

	pos := p.Controller.Position()
	p.Logger.Printf("[*] Session: %s, stopped on slide %d/%d", time.Since(startTime).Round(time.Second), pos.Slide+1, pos.Slides)
	return nil
}

// Describe writes the step order of every slide to w and returns the number
// of problems found, such as unknown animation names.
func (p *Presentation) Describe(w io.Writer) int {
	problems := 0
	for i := 0; i < p.Stage.SlideCount(); i++ {
		tr, ok := p.Transitioner.Registry.Lookup(p.Stage.SlideAttr(i, descriptor.AttrTransition))
		fmt.Fprintf(w, "Slide %d (%s) transition=%s repeats=%d\n",
			i+1, p.Stage.Slide(i).ID(), tr.Name, repeat.ParseMax(p.Stage.SlideAttr(i, descriptor.AttrRepeats)))
		if !ok && p.Stage.SlideAttr(i, descriptor.AttrTransition) != "" {
			fmt.Fprintf(w, "  ! unknown transition %q\n", p.Stage.SlideAttr(i, descriptor.AttrTransition))
			problems++
		}

		for _, el := range p.Stage.Elements(i) {
			if descriptor.Malformed(el) {
				fmt.Fprintf(w, "  ! %s: unusable order %q\n", el.ID(), el.Attr(descriptor.AttrOrder))
				problems++
			}
		}

		for n, step := range sequence.New(p.Stage.Elements(i)).Steps() {
			order := "auto"
			if step.Explicit {
				order = fmt.Sprintf("%d", step.Order)
			}
			fmt.Fprintf(w, "  %d. %s %s (order %s)\n", n+1, step.Element.ID(), step.Animation, order)
			if _, known := p.Catalog.Lookup(step.Animation); !known {
				if s := p.Catalog.Suggest(step.Animation); s != "" {
					fmt.Fprintf(w, "     ! unknown animation %q, did you mean %q?\n", step.Animation, s)
				} else {
					fmt.Fprintf(w, "     ! unknown animation %q\n", step.Animation)
				}
				problems++
			}
		}
	}
	return problems
}
