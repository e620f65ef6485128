// Package ui provides the terminal chart view using Bubble Tea.
package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-sidereal/internal/astro"
	"github.com/litescript/ls-sidereal/internal/chart"
	"github.com/litescript/ls-sidereal/internal/julian"
	"github.com/litescript/ls-sidereal/internal/returns"
)

// Model is the Bubble Tea model for the chart view.
type Model struct {
	instant  julian.Instant
	observer astro.Observer
	ayanamsa astro.Ayanamsa
	natal    *returns.NatalPoint

	snapshot chart.Snapshot
	err      error
	status   string

	width  int
	height int
}

// New creates a chart view model for an instant and location. natal is
// optional; when set, the "r" key jumps to the next solar return.
func New(instant julian.Instant, obs astro.Observer, ay astro.Ayanamsa, natal *returns.NatalPoint) Model {
	m := Model{
		instant:  instant,
		observer: obs,
		ayanamsa: ay,
		natal:    natal,
	}
	m.recompute()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit

		case "l", "right":
			m.step(1)
		case "h", "left":
			m.step(-1)
		case "k", "up":
			m.step(1.0 / 24)
		case "j", "down":
			m.step(-1.0 / 24)
		case "L":
			m.step(30)
		case "H":
			m.step(-30)

		case "a":
			m.toggleAyanamsa()

		case "r":
			m.jumpToReturn()
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) step(days float64) {
	m.instant = m.instant.AddDays(days)
	m.status = ""
	m.recompute()
}

func (m *Model) toggleAyanamsa() {
	if m.ayanamsa.Name() == "lahiri" {
		m.ayanamsa = astro.Linear{}
	} else {
		m.ayanamsa = astro.Lahiri{}
	}
	m.status = fmt.Sprintf("ayanamsa: %s", m.ayanamsa.Name())
	m.recompute()
}

// jumpToReturn moves the view to the next return of the natal body after
// the current instant, searching just under one full apparent cycle ahead.
func (m *Model) jumpToReturn() {
	if m.natal == nil {
		m.status = "no natal chart loaded"
		return
	}

	// Start a day ahead so repeated presses advance to the next cycle.
	res, err := returns.FindReturn(returns.Search{
		Body:       m.natal.Body,
		TargetDeg:  m.natal.LongitudeDeg,
		Start:      m.instant.AddDays(1),
		WindowDays: 360/m.natal.Body.MeanMotion() - 2,
		Ayanamsa:   m.ayanamsa,
	})
	if err != nil {
		m.status = fmt.Sprintf("return search: %v", err)
		return
	}

	m.instant = res.Instant
	m.status = fmt.Sprintf("%s return (error %.5f°, %d iterations)",
		m.natal.Body, res.SeparationDeg, res.Iterations)
	m.recompute()
}

func (m *Model) recompute() {
	m.snapshot, m.err = chart.Cast(m.instant, m.observer, m.ayanamsa)
}
