package chart

import (
	"fmt"
	"io"
	"sort"

	"github.com/litescript/ls-sidereal/internal/ephem"
)

// WriteTable writes a plain-text chart summary, for headless mode.
func WriteTable(w io.Writer, snap Snapshot) {
	civil, err := snap.Instant.Civil()
	if err == nil {
		fmt.Fprintf(w, "Chart for %04d-%02d-%02d %02d:%02d:%02d UTC",
			civil.Year, civil.Month, civil.Day, civil.Hour, civil.Minute, civil.Second)
	} else {
		fmt.Fprintf(w, "Chart for JD %.5f", float64(snap.Instant))
	}
	if snap.Observer.Name != "" {
		fmt.Fprintf(w, " at %s", snap.Observer.Name)
	}
	fmt.Fprintf(w, " (%.4f°, %.4f°)\n", snap.Observer.LatDeg, snap.Observer.LonDeg)
	fmt.Fprintf(w, "Ayanamsa: %s %.4f°   Moon: %s (%.0f%% lit)\n\n",
		snap.Ayanamsa, snap.AyanamsaDeg, snap.Phase.Name, snap.Phase.Illumination*100)

	fmt.Fprintf(w, "%-6s %-18s %10s %9s %6s\n", "BODY", "SIGN", "LONGITUDE", "DEC", "HOUSE")
	fmt.Fprintf(w, "%-6s %-18s %10.4f %9s %6s\n", "Asc", FormatLongitude(snap.AscendantDeg), snap.AscendantDeg, "", "1")

	bodies := make([]ephem.Body, 0, len(snap.Bodies))
	for b := range snap.Bodies {
		bodies = append(bodies, b)
	}
	sort.Slice(bodies, func(i, j int) bool { return bodies[i] < bodies[j] })

	for _, b := range bodies {
		lon := snap.Bodies[b]
		fmt.Fprintf(w, "%-6s %-18s %10.4f %+9.4f %6d\n",
			b, FormatLongitude(lon), lon, snap.Declinations[b], snap.House(lon))
	}

	if len(snap.Aspects) > 0 {
		fmt.Fprintln(w)
		for _, a := range snap.Aspects {
			fmt.Fprintf(w, "%s %s %s (orb %.2f°)\n", a.A, a.Kind, a.B, a.OrbDeg)
		}
	}
}

// WriteHouses writes the 12 house cusps.
func WriteHouses(w io.Writer, snap Snapshot) {
	for i, h := range snap.Houses {
		fmt.Fprintf(w, "house %2d  %-18s %10.4f\n", i+1, FormatLongitude(h), h)
	}
}

// WritePositionsLine writes a single-line position summary, for watch mode.
func WritePositionsLine(w io.Writer, snap Snapshot) {
	civil, err := snap.Instant.Civil()
	if err != nil {
		return
	}

	line := fmt.Sprintf("%02d:%02d:%02d", civil.Hour, civil.Minute, civil.Second)
	line += fmt.Sprintf("  Asc %s", FormatLongitude(snap.AscendantDeg))

	bodies := make([]ephem.Body, 0, len(snap.Bodies))
	for b := range snap.Bodies {
		bodies = append(bodies, b)
	}
	sort.Slice(bodies, func(i, j int) bool { return bodies[i] < bodies[j] })
	for _, b := range bodies {
		line += fmt.Sprintf("  %s %s", b, FormatLongitude(snap.Bodies[b]))
	}

	fmt.Fprintln(w, line)
}
