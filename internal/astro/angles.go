// Package astro provides angle math, sidereal time, ayanamsa strategies and
// ecliptic/equatorial coordinate transformations.
package astro

import (
	"math"
)

// Observer represents a geographic location on Earth.
type Observer struct {
	LatDeg float64 // Latitude in degrees (north positive)
	LonDeg float64 // Longitude in degrees (east positive)
	Name   string  // Optional name for the site
}

// Normalize360 normalizes an angle to [0, 360) degrees.
func Normalize360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// A tiny negative input can round up to exactly 360 here.
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// SignedSeparation returns the wrap-aware signed difference a-b in degrees,
// wrapped into (-180, 180]. A target near 359° and a candidate near 1° are
// 2° apart, not 358°.
func SignedSeparation(a, b float64) float64 {
	d := math.Mod(a-b, 360)
	if d <= -180 {
		d += 360
	} else if d > 180 {
		d -= 360
	}
	return d
}

// Separation returns the absolute shortest-path separation between two
// longitudes in degrees, in [0, 180].
func Separation(a, b float64) float64 {
	return math.Abs(SignedSeparation(a, b))
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
