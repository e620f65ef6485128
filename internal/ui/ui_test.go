package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-sidereal/internal/astro"
	"github.com/litescript/ls-sidereal/internal/ephem"
	"github.com/litescript/ls-sidereal/internal/julian"
	"github.com/litescript/ls-sidereal/internal/returns"
)

var uiObserver = astro.Observer{LatDeg: 13.0827, LonDeg: 80.2707, Name: "Chennai"}

func newTestModel() Model {
	return New(julian.FromCivil(2024, 6, 15, 6, 30, 0), uiObserver, astro.Lahiri{}, nil)
}

func TestView_ContainsChartSections(t *testing.T) {
	view := newTestModel().View()

	for _, want := range []string{
		"Positions", "Houses", "Aspects",
		"Sun", "Moon", "Asc",
		"2024-06-15", "Ayanamsa", "lahiri",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestUpdate_TimeStepping(t *testing.T) {
	m := newTestModel()
	before := m.instant

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	m = next.(Model)
	if m.instant != before.AddDays(1) {
		t.Errorf("l should step +1 day: %v -> %v", float64(before), float64(m.instant))
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})
	m = next.(Model)
	if m.instant != before {
		t.Errorf("h should step back -1 day")
	}
}

func TestUpdate_AyanamsaToggle(t *testing.T) {
	m := newTestModel()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	m = next.(Model)
	if m.ayanamsa.Name() != "linear" {
		t.Errorf("ayanamsa after toggle = %q, want linear", m.ayanamsa.Name())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	m = next.(Model)
	if m.ayanamsa.Name() != "lahiri" {
		t.Errorf("ayanamsa after second toggle = %q, want lahiri", m.ayanamsa.Name())
	}
}

func TestUpdate_Quit(t *testing.T) {
	m := newTestModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should produce a quit command")
	}
}

func TestUpdate_ReturnJump(t *testing.T) {
	natalInstant := julian.FromCivil(1990, 6, 15, 8, 30, 0)
	ay := astro.Lahiri{}
	natal := &returns.NatalPoint{
		Body:         ephem.Sun,
		LongitudeDeg: astro.Normalize360(ephem.SunLongitude(natalInstant) - ay.OffsetDeg(natalInstant)),
	}

	m := New(julian.FromCivil(2024, 1, 1, 0, 0, 0), uiObserver, ay, natal)
	before := m.instant

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = next.(Model)

	if m.instant == before {
		t.Error("r should jump to the next solar return")
	}

	// The solar return from January lands in June.
	civil, err := m.instant.Civil()
	if err != nil {
		t.Fatalf("Civil() error: %v", err)
	}
	if civil.Month != 6 {
		t.Errorf("solar return month = %d, want 6", civil.Month)
	}
}

func TestUpdate_ReturnWithoutNatal(t *testing.T) {
	m := newTestModel()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = next.(Model)

	if m.instant != newTestModel().instant {
		t.Error("r without natal chart should not move the instant")
	}
	if m.status == "" {
		t.Error("r without natal chart should set a status message")
	}
}
