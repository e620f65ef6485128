package ephem

import (
	"math"

	"github.com/litescript/ls-sidereal/internal/astro"
	"github.com/litescript/ls-sidereal/internal/julian"
)

// sunMeanElements returns the Sun's mean longitude and mean anomaly in
// degrees (not normalized) for Julian centuries T since J2000.
func sunMeanElements(T float64) (L0, M float64) {
	L0 = 280.46646 + 36000.76983*T + 0.0003032*T*T
	M = 357.52911 + 35999.05029*T - 0.0001537*T*T
	return L0, M
}

// SunLongitude returns the Sun's true tropical ecliptic longitude in
// degrees, normalized to [0, 360).
//
// Mean longitude plus the equation of center, a three-term sine series in
// the mean anomaly.
func SunLongitude(t julian.Instant) float64 {
	T := t.Centuries()
	L0, M := sunMeanElements(T)
	Mrad := deg2rad(astro.Normalize360(M))

	C := (1.914602-0.004817*T-0.000014*T*T)*math.Sin(Mrad) +
		(0.019993-0.000101*T)*math.Sin(2*Mrad) +
		0.000289*math.Sin(3*Mrad)

	return astro.Normalize360(L0 + C)
}

// Obliquity returns the mean obliquity of the ecliptic in degrees.
func Obliquity(t julian.Instant) float64 {
	T := t.Centuries()
	return 23.439291111 - 0.013004167*T - 0.00000164*T*T + 0.000000504*T*T*T
}

// EquationOfTime returns apparent-minus-mean solar time in minutes.
//
// Derived from the Sun's mean longitude, mean anomaly, orbital
// eccentricity and obliquity (Meeus ch. 28). Stays within about ±17 min.
func EquationOfTime(t julian.Instant) float64 {
	T := t.Centuries()
	L0, M := sunMeanElements(T)
	L0rad := deg2rad(astro.Normalize360(L0))
	Mrad := deg2rad(astro.Normalize360(M))

	e := 0.016708634 - 0.000042037*T - 0.0000001267*T*T

	eps := deg2rad(Obliquity(t))
	y := math.Tan(eps / 2)
	y *= y

	E := y*math.Sin(2*L0rad) -
		2*e*math.Sin(Mrad) +
		4*e*y*math.Sin(Mrad)*math.Cos(2*L0rad) -
		0.5*y*y*math.Sin(4*L0rad) -
		1.25*e*e*math.Sin(2*Mrad)

	// Radians of hour angle to minutes of time: deg * 4.
	return rad2deg(E) * 4
}

func deg2rad(deg float64) float64 { return deg * math.Pi / 180 }
func rad2deg(rad float64) float64 { return rad * 180 / math.Pi }
