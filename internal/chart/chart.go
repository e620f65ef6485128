// Package chart casts immutable sidereal chart snapshots: ascendant, equal
// house cusps, body longitudes and aspects for one instant and location.
package chart

import (
	"errors"
	"math"
	"sort"

	"github.com/litescript/ls-sidereal/internal/astro"
	"github.com/litescript/ls-sidereal/internal/ephem"
	"github.com/litescript/ls-sidereal/internal/julian"
)

// ErrInvalidLocation is returned for non-finite coordinates or a latitude
// outside [-90, 90].
var ErrInvalidLocation = errors.New("chart: invalid location")

// AspectKind is one of the canonical aspect angles.
type AspectKind int

const (
	Conjunction AspectKind = iota // 0°
	Sextile                       // 60°
	Square                        // 90°
	Trine                         // 120°
	Opposition                    // 180°
)

// AspectOrb is the maximum deviation from the canonical angle for a
// separation to count as an aspect.
const AspectOrb = 6.0

var aspectAngles = map[AspectKind]float64{
	Conjunction: 0,
	Sextile:     60,
	Square:      90,
	Trine:       120,
	Opposition:  180,
}

// String returns the aspect name.
func (k AspectKind) String() string {
	switch k {
	case Conjunction:
		return "Conjunction"
	case Sextile:
		return "Sextile"
	case Square:
		return "Square"
	case Trine:
		return "Trine"
	case Opposition:
		return "Opposition"
	default:
		return "Unknown"
	}
}

// Aspect is an angular relation between two bodies.
type Aspect struct {
	A, B   ephem.Body
	Kind   AspectKind
	OrbDeg float64 // deviation from the canonical angle
}

// Snapshot is an immutable positional chart. It is constructed once by
// Cast and read-only afterwards; an "updated" chart is a new Snapshot.
type Snapshot struct {
	Instant      julian.Instant
	Observer     astro.Observer
	Ayanamsa     string  // strategy name used
	AyanamsaDeg  float64 // offset applied to all longitudes
	AscendantDeg float64 // sidereal
	Houses       [12]float64
	Bodies       map[ephem.Body]float64 // sidereal longitudes
	Declinations map[ephem.Body]float64 // equatorial declinations
	Aspects      []Aspect
	Phase        ephem.LunarPhase
}

// Cast composes sidereal time, the ascendant routine, the position
// approximator, the equatorial transform and the aspect scan into one
// snapshot. Identical inputs
// always produce a structurally identical snapshot.
func Cast(t julian.Instant, obs astro.Observer, ay astro.Ayanamsa) (Snapshot, error) {
	if math.IsNaN(obs.LatDeg) || math.IsInf(obs.LatDeg, 0) ||
		math.IsNaN(obs.LonDeg) || math.IsInf(obs.LonDeg, 0) ||
		obs.LatDeg < -90 || obs.LatDeg > 90 {
		return Snapshot{}, ErrInvalidLocation
	}
	if ay == nil {
		ay = astro.Lahiri{}
	}

	offset := ay.OffsetDeg(t)
	eps := ephem.Obliquity(t)

	lst := astro.LocalSidereal(astro.GreenwichSidereal(t), obs.LonDeg)
	asc := astro.Normalize360(ascendant(lst, obs.LatDeg, eps) - offset)

	var houses [12]float64
	for i := range houses {
		houses[i] = astro.Normalize360(asc + float64(i)*30)
	}

	bodies := make(map[ephem.Body]float64, len(ephem.Bodies()))
	decls := make(map[ephem.Body]float64, len(ephem.Bodies()))
	for b, lon := range ephem.Snapshot(t) {
		bodies[b] = astro.Normalize360(lon - offset)

		// Declination comes from the tropical frame; the ayanamsa only
		// rotates longitudes.
		lat := 0.0
		if b == ephem.Moon {
			lat = ephem.MoonLatitude(t)
		}
		_, decls[b] = astro.EclipticToEquatorial(lon, lat, eps)
	}

	return Snapshot{
		Instant:      t,
		Observer:     obs,
		Ayanamsa:     ay.Name(),
		AyanamsaDeg:  offset,
		AscendantDeg: asc,
		Houses:       houses,
		Bodies:       bodies,
		Declinations: decls,
		Aspects:      scanAspects(bodies),
		Phase:        ephem.Phase(t),
	}, nil
}

// ascendant returns the tropical ecliptic longitude rising on the eastern
// horizon for a local sidereal angle, latitude and obliquity (degrees).
func ascendant(lstDeg, latDeg, epsDeg float64) float64 {
	theta := lstDeg * math.Pi / 180
	phi := latDeg * math.Pi / 180
	eps := epsDeg * math.Pi / 180

	asc := math.Atan2(math.Cos(theta),
		-(math.Sin(theta)*math.Cos(eps) + math.Tan(phi)*math.Sin(eps)))

	return astro.Normalize360(asc * 180 / math.Pi)
}

// scanAspects runs a pairwise separation scan over all bodies against the
// canonical angles. Pairs are ordered canonically so the result is stable.
func scanAspects(bodies map[ephem.Body]float64) []Aspect {
	ids := make([]ephem.Body, 0, len(bodies))
	for b := range bodies {
		ids = append(ids, b)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var aspects []Aspect
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			sep := astro.Separation(bodies[ids[i]], bodies[ids[j]])

			best := AspectKind(-1)
			bestOrb := AspectOrb
			for kind, angle := range aspectAngles {
				orb := math.Abs(sep - angle)
				if orb < bestOrb {
					best = kind
					bestOrb = orb
				}
			}
			if best >= 0 {
				aspects = append(aspects, Aspect{
					A:      ids[i],
					B:      ids[j],
					Kind:   best,
					OrbDeg: bestOrb,
				})
			}
		}
	}
	return aspects
}

// House returns the 1-based house index containing a sidereal longitude.
func (s Snapshot) House(lonDeg float64) int {
	rel := astro.Normalize360(lonDeg - s.Houses[0])
	return int(rel/30) + 1
}
