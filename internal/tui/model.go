// Package tui is a terminal player for a presentation.
package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ivlev/revealer/internal/controller"
	"github.com/ivlev/revealer/internal/stage"
)

// Navigator is the part of the controller the player drives.
type Navigator interface {
	Forward() (controller.Outcome, error)
	Backward() (controller.Outcome, error)
	JumpTo(index int) (controller.Outcome, error)
	Reset() error
	Position() controller.Position
}

// FrameMsg asks the player to redraw; the renderer sends one per frame.
type FrameMsg struct{}

type moveMsg struct {
	action  string
	outcome controller.Outcome
	err     error
}

// Model is the bubbletea model of the player.
type Model struct {
	nav    Navigator
	stage  *stage.Stage
	width  int
	status string

	// OnMove is called after every finished move with its action name:
	// forward, backward, jump or reset.
	OnMove func(action string, outcome controller.Outcome, err error)
}

// New creates a player for st driven through nav.
func New(nav Navigator, st *stage.Stage) Model {
	return Model{nav: nav, stage: st, width: 80}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case FrameMsg:
		return m, nil
	case moveMsg:
		m.status = ""
		if msg.err != nil {
			m.status = fmt.Sprintf("%s: %v", msg.action, msg.err)
		}
		if m.OnMove != nil {
			m.OnMove(msg.action, msg.outcome, msg.err)
		}
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "right", " ", "space", "l", "pgdown", "enter":
		return m, m.move("forward", m.nav.Forward)
	case "left", "h", "pgup", "backspace":
		return m, m.move("backward", m.nav.Backward)
	case "r":
		return m, m.reset()
	}
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		index := int(key[0] - '1')
		return m, m.move("jump", func() (controller.Outcome, error) {
			return m.nav.JumpTo(index)
		})
	}
	return m, nil
}

// move runs a navigation call off the update loop so frames keep drawing.
func (m Model) move(action string, call func() (controller.Outcome, error)) tea.Cmd {
	return func() tea.Msg {
		outcome, err := call()
		return moveMsg{action: action, outcome: outcome, err: err}
	}
}

func (m Model) reset() tea.Cmd {
	return func() tea.Msg {
		err := m.nav.Reset()
		if errors.Is(err, controller.ErrBusy) {
			return moveMsg{action: "reset", outcome: controller.Busy}
		}
		return moveMsg{action: "reset", err: err}
	}
}

func (m Model) View() string {
	var b strings.Builder

	if title := m.stage.Title(); title != "" {
		b.WriteString(titleStyle.Render(title))
		b.WriteString("\n")
	}

	slide := m.stage.Slide(m.stage.Active())
	if slide != nil {
		b.WriteString(m.renderSlide(slide))
		b.WriteString("\n")
	}

	pos := m.nav.Position()
	footer := fmt.Sprintf("slide %d/%d · step %d/%d", pos.Slide+1, pos.Slides, pos.Step, pos.Steps)
	if pos.Repeats > 1 {
		footer += fmt.Sprintf(" · repeat %d/%d", pos.Repeat, pos.Repeats)
	}
	footer += " · " + pos.State.String()
	b.WriteString(footerStyle.Render(footer))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(errorStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(footerStyle.Render("→/space next · ← back · 1-9 jump · r reset · q quit"))
	return b.String()
}

func (m Model) renderSlide(slide *stage.Slide) string {
	lines := make([]string, 0, len(slide.Elements())+1)
	lines = append(lines, titleStyle.Render(slide.ID()))

	fade := slide.Opacity()
	for _, el := range slide.Elements() {
		text := el.Text()
		if text == "" {
			text = el.ID()
		}
		opacity := el.Opacity() * fade
		if opacity <= 0 {
			lines = append(lines, strings.Repeat(" ", lipgloss.Width(text)))
			continue
		}
		colour := Blend(textColour, baseColour, opacity)
		line := lipgloss.NewStyle().Foreground(lipgloss.Color(colour.Hex())).Render(text)
		if el.Rotation() != 0 {
			line += " " + markerStyle.Render("↻")
		}
		lines = append(lines, line)
	}

	body := slideStyle.Render(strings.Join(lines, "\n"))
	if shift := int(slide.Offset() * float64(m.width) / 4); shift > 0 {
		body = lipgloss.NewStyle().PaddingLeft(shift).Render(body)
	}
	return body
}
