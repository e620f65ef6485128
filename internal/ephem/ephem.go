package ephem

import (
	"math"

	"github.com/litescript/ls-sidereal/internal/astro"
	"github.com/litescript/ls-sidereal/internal/julian"
)

// Longitude returns the tropical ecliptic longitude of a body in degrees.
func Longitude(b Body, t julian.Instant) (float64, error) {
	switch b {
	case Sun:
		return SunLongitude(t), nil
	case Moon:
		return MoonLongitude(t), nil
	default:
		return 0, ErrUnknownBody
	}
}

// Snapshot returns the tropical longitudes of all supported bodies at t.
// A fresh map is built on every call; the engine never caches positions.
func Snapshot(t julian.Instant) map[Body]float64 {
	return map[Body]float64{
		Sun:  SunLongitude(t),
		Moon: MoonLongitude(t),
	}
}

// LunarPhase describes the Sun-Moon geometry at an instant.
type LunarPhase struct {
	ElongationDeg float64 // Sun-to-Moon angle along the ecliptic [0, 360)
	Illumination  float64 // Illuminated fraction [0, 1]
	Waxing        bool
	Name          string
}

// SynodicMonth is the mean length of the lunar cycle in days.
const SynodicMonth = 29.530588853

// Phase computes the lunar phase from the ecliptic elongation of the Moon
// from the Sun.
func Phase(t julian.Instant) LunarPhase {
	elong := astro.Normalize360(MoonLongitude(t) - SunLongitude(t))
	illum := (1 - math.Cos(deg2rad(elong))) / 2
	waxing := elong < 180

	return LunarPhase{
		ElongationDeg: elong,
		Illumination:  illum,
		Waxing:        waxing,
		Name:          phaseName(illum, waxing),
	}
}

func phaseName(illumination float64, waxing bool) string {
	switch {
	case illumination < 0.01:
		return "New Moon"
	case illumination > 0.99:
		return "Full Moon"
	case illumination >= 0.49 && illumination <= 0.51:
		if waxing {
			return "First Quarter"
		}
		return "Third Quarter"
	case illumination < 0.5:
		if waxing {
			return "Waxing Crescent"
		}
		return "Waning Crescent"
	default:
		if waxing {
			return "Waxing Gibbous"
		}
		return "Waning Gibbous"
	}
}
