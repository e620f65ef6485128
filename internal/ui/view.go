package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-sidereal/internal/astro"
	"github.com/litescript/ls-sidereal/internal/chart"
	"github.com/litescript/ls-sidereal/internal/ephem"
	"github.com/litescript/ls-sidereal/internal/version"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	aspectStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("213"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("ls-sidereal "+version.Version) + "\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("error: %v", m.err)) + "\n")
		return b.String()
	}

	b.WriteString(m.renderHeader())
	b.WriteString(m.renderBodies())
	b.WriteString(m.renderHouses())
	b.WriteString(m.renderAspects())

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render(
		"h/l day  j/k hour  H/L month  a ayanamsa  r next return  q quit") + "\n")

	return b.String()
}

func (m Model) renderHeader() string {
	snap := m.snapshot

	civil, err := m.instant.Civil()
	dateStr := "out of range"
	if err == nil {
		dateStr = fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d UTC",
			civil.Year, civil.Month, civil.Day, civil.Hour, civil.Minute, civil.Second)
	}

	lst := astro.LocalSidereal(astro.GreenwichSidereal(m.instant), m.observer.LonDeg)

	var b strings.Builder
	b.WriteString(kv("Date", dateStr))
	b.WriteString(kv("Site", fmt.Sprintf("%s  %.4f°, %.4f°", m.observer.Name, m.observer.LatDeg, m.observer.LonDeg)))
	b.WriteString(kv("JD", fmt.Sprintf("%.5f", float64(m.instant))))
	b.WriteString(kv("LST", fmt.Sprintf("%.4f°", lst)))
	b.WriteString(kv("Ayanamsa", fmt.Sprintf("%s %.4f°", snap.Ayanamsa, snap.AyanamsaDeg)))
	b.WriteString(kv("Eq. of time", fmt.Sprintf("%+.1f min", ephem.EquationOfTime(m.instant))))
	b.WriteString(kv("Moon", fmt.Sprintf("%s (%.0f%%)", snap.Phase.Name, snap.Phase.Illumination*100)))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderBodies() string {
	snap := m.snapshot

	var b strings.Builder
	b.WriteString(headerStyle.Render("Positions") + "\n")

	bodies := make([]ephem.Body, 0, len(snap.Bodies))
	for body := range snap.Bodies {
		bodies = append(bodies, body)
	}
	sort.Slice(bodies, func(i, j int) bool { return bodies[i] < bodies[j] })

	b.WriteString(kv("Asc", fmt.Sprintf("%-16s %8.4f°", chart.FormatLongitude(snap.AscendantDeg), snap.AscendantDeg)))
	for _, body := range bodies {
		lon := snap.Bodies[body]
		b.WriteString(kv(body.String(), fmt.Sprintf("%-16s %8.4f°  house %d",
			chart.FormatLongitude(lon), lon, snap.House(lon))))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderHouses() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Houses") + "\n")

	for i := 0; i < 12; i += 3 {
		row := make([]string, 0, 3)
		for j := i; j < i+3; j++ {
			row = append(row, fmt.Sprintf("%2d %s", j+1, chart.FormatLongitude(m.snapshot.Houses[j])))
		}
		b.WriteString("  " + valueStyle.Render(strings.Join(row, "    ")) + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderAspects() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Aspects") + "\n")

	if len(m.snapshot.Aspects) == 0 {
		b.WriteString("  " + labelStyle.Render("none within orb") + "\n")
		return b.String()
	}

	for _, a := range m.snapshot.Aspects {
		b.WriteString("  " + aspectStyle.Render(fmt.Sprintf("%s %s %s (orb %.2f°)",
			a.A, a.Kind, a.B, a.OrbDeg)) + "\n")
	}
	return b.String()
}

func kv(label, value string) string {
	return fmt.Sprintf("  %s %s\n",
		labelStyle.Render(fmt.Sprintf("%-12s", label)),
		valueStyle.Render(value))
}
