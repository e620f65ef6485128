package astro

import (
	"errors"
	"strings"

	"github.com/litescript/ls-sidereal/internal/julian"
)

// Ayanamsa computes the angular offset between the tropical and sidereal
// zodiacs at a given Instant. Subtracting the offset from a tropical
// longitude yields the sidereal longitude.
//
// Implementations must be stateless; OffsetDeg is called concurrently.
type Ayanamsa interface {
	// Name returns the strategy name for display/logging.
	Name() string

	// OffsetDeg returns the precession offset in degrees.
	OffsetDeg(t julian.Instant) float64
}

// Lahiri ayanamsa at the J2000 epoch, in degrees (23°51'09").
const lahiriJ2000 = 23.85236

// Precession rates in arcseconds per Julian year. The quadratic term is the
// Newcomb secular drift of the precession rate itself.
const (
	precessionRate      = 50.2564
	precessionRateDrift = 0.000111
	linearRate          = 50.27
)

// Lahiri is the accumulated-precession ayanamsa: the standard strategy for
// sidereal chart work. It integrates the Newcomb precession rate from J2000,
// giving a slowly accelerating offset.
type Lahiri struct{}

func (Lahiri) Name() string { return "lahiri" }

func (Lahiri) OffsetDeg(t julian.Instant) float64 {
	y := t.Days() / 365.25
	return lahiriJ2000 + (precessionRate*y+precessionRateDrift*y*y)/3600
}

// Linear is a fixed-rate approximation of the same offset. It is cheaper
// and agrees with Lahiri to well under 0.01° within a few centuries of
// J2000, which is plenty for window sizing and display.
type Linear struct{}

func (Linear) Name() string { return "linear" }

func (Linear) OffsetDeg(t julian.Instant) float64 {
	y := t.Days() / 365.25
	return lahiriJ2000 + linearRate*y/3600
}

// ErrUnknownAyanamsa is returned for a strategy name that is not
// recognized.
var ErrUnknownAyanamsa = errors.New("astro: unknown ayanamsa")

// ParseAyanamsa parses a strategy name (case-insensitive).
func ParseAyanamsa(s string) (Ayanamsa, error) {
	switch strings.ToLower(s) {
	case "lahiri":
		return Lahiri{}, nil
	case "linear":
		return Linear{}, nil
	default:
		return nil, ErrUnknownAyanamsa
	}
}
