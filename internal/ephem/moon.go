package ephem

import (
	"math"

	"github.com/litescript/ls-sidereal/internal/astro"
	"github.com/litescript/ls-sidereal/internal/julian"
)

// MoonLongitude returns the Moon's tropical ecliptic longitude in degrees,
// normalized to [0, 360).
//
// Mean longitude plus the dominant periodic terms of the Meeus ch. 47
// series: lunar anomaly (evection/equation of center), elongation from the
// Sun (variation), solar anomaly (annual equation) and the argument of
// latitude.
func MoonLongitude(t julian.Instant) float64 {
	T := t.Centuries()

	// Mean longitude.
	L := 218.3164477 +
		481267.88123421*T -
		0.0015786*T*T +
		T*T*T/538841 -
		T*T*T*T/65194000

	// Mean elongation from the Sun.
	D := 297.8501921 +
		445267.1114034*T -
		0.0018819*T*T +
		T*T*T/545868 -
		T*T*T*T/113065000

	// Solar mean anomaly.
	M := 357.5291092 + 35999.0502909*T - 0.0001536*T*T

	// Lunar mean anomaly.
	Mp := 134.9633964 +
		477198.8675055*T +
		0.0087414*T*T +
		T*T*T/69699 -
		T*T*T*T/14712000

	// Argument of latitude.
	F := 93.2720950 +
		483202.0175233*T -
		0.0036539*T*T -
		T*T*T/3526000

	Drad := deg2rad(astro.Normalize360(D))
	Mrad := deg2rad(astro.Normalize360(M))
	Mprad := deg2rad(astro.Normalize360(Mp))
	Frad := deg2rad(astro.Normalize360(F))

	lon := L +
		6.288774*math.Sin(Mprad) +
		1.274027*math.Sin(2*Drad-Mprad) +
		0.658314*math.Sin(2*Drad) +
		0.213618*math.Sin(2*Mprad) -
		0.185116*math.Sin(Mrad) -
		0.114332*math.Sin(2*Frad) +
		0.058793*math.Sin(2*Drad-2*Mprad) +
		0.057066*math.Sin(2*Drad-Mrad-Mprad) +
		0.053322*math.Sin(2*Drad+Mprad) +
		0.045758*math.Sin(2*Drad-Mrad)

	return astro.Normalize360(lon)
}

// MoonLatitude returns the Moon's ecliptic latitude in degrees, from the
// dominant terms of the Meeus ch. 47 latitude series.
func MoonLatitude(t julian.Instant) float64 {
	T := t.Centuries()

	D := 297.8501921 +
		445267.1114034*T -
		0.0018819*T*T +
		T*T*T/545868

	Mp := 134.9633964 +
		477198.8675055*T +
		0.0087414*T*T +
		T*T*T/69699

	F := 93.2720950 +
		483202.0175233*T -
		0.0036539*T*T -
		T*T*T/3526000

	Drad := deg2rad(astro.Normalize360(D))
	Mprad := deg2rad(astro.Normalize360(Mp))
	Frad := deg2rad(astro.Normalize360(F))

	return 5.128122*math.Sin(Frad) +
		0.280602*math.Sin(Mprad+Frad) +
		0.277693*math.Sin(Mprad-Frad) +
		0.173237*math.Sin(2*Drad-Frad)
}
