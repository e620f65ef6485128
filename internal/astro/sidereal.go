package astro

import (
	"github.com/litescript/ls-sidereal/internal/julian"
)

// GreenwichSidereal calculates the Greenwich mean sidereal angle in degrees
// for a given Instant, using the IAU 1982 polynomial.
func GreenwichSidereal(t julian.Instant) float64 {
	d := t.Days()
	T := t.Centuries()

	// GMST = 280.46061837 + 360.98564736629*(JD-2451545) + 0.000387933*T^2 - T^3/38710000
	gmst := 280.46061837 +
		360.98564736629*d +
		0.000387933*T*T -
		T*T*T/38710000.0

	return Normalize360(gmst)
}

// LocalSidereal returns the local sidereal angle in degrees for a Greenwich
// sidereal angle and an observer longitude (east positive).
func LocalSidereal(gmstDeg, lonDeg float64) float64 {
	return Normalize360(gmstDeg + lonDeg)
}
