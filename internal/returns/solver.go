// Package returns finds the instant a body's sidereal longitude comes back
// to a recorded reference longitude (solar/lunar returns).
package returns

import (
	"errors"
	"fmt"
	"math"

	"github.com/litescript/ls-sidereal/internal/astro"
	"github.com/litescript/ls-sidereal/internal/ephem"
	"github.com/litescript/ls-sidereal/internal/julian"
)

// Default solver settings.
const (
	DefaultToleranceDeg = 0.0001
	DefaultMaxIter      = 50
)

// Errors for search validation and cancellation.
var (
	ErrInvalidWindow = errors.New("returns: window length must be positive and finite")
	ErrWindowTooWide = errors.New("returns: window exceeds one apparent cycle of the body")
	ErrCanceled      = errors.New("returns: search canceled")
)

// ConvergenceError reports that the solver exhausted its iteration cap
// without reaching the angular tolerance. The last separation achieved is
// kept as a diagnostic; callers may retry with a widened or shifted window
// or treat it as "no return in range".
type ConvergenceError struct {
	SeparationDeg float64 // last wrap-aware separation from the target
	Iterations    int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("returns: no convergence after %d iterations (last separation %.6f°)",
		e.Iterations, e.SeparationDeg)
}

// NatalPoint is an immutable (body, longitude) reference captured at chart
// creation time, used as the target of a return search.
type NatalPoint struct {
	Body         ephem.Body
	LongitudeDeg float64 // sidereal
}

// Search describes one return-solving request. Each call is independent
// and stateless; nothing persists between invocations.
type Search struct {
	Body       ephem.Body
	TargetDeg  float64        // target sidereal longitude
	Start      julian.Instant // window start
	WindowDays float64
	Ayanamsa   astro.Ayanamsa

	// ToleranceDeg and MaxIterations default to DefaultToleranceDeg and
	// DefaultMaxIter when zero.
	ToleranceDeg  float64
	MaxIterations int

	// Cancel, if set, is polled once per iteration. A true return stops
	// the search with ErrCanceled.
	Cancel func() bool
}

// Result is a converged return event.
type Result struct {
	Instant       julian.Instant
	SeparationDeg float64 // achieved angular error
	Iterations    int
}

// FindReturn locates the instant within the search window at which the
// body's sidereal longitude matches the target.
//
// The window must be shorter than one full apparent cycle of the body
// (360/MeanMotion days); within such a window the longitude is monotonic
// and bisection is sound. Bodies with apparent retrograde motion inside
// the window would break that assumption and are not supported without
// pre-bracketing.
func FindReturn(s Search) (Result, error) {
	if !(s.WindowDays > 0) || math.IsInf(s.WindowDays, 0) {
		return Result{}, ErrInvalidWindow
	}
	if math.IsNaN(s.TargetDeg) || math.IsInf(s.TargetDeg, 0) ||
		math.IsNaN(float64(s.Start)) || math.IsInf(float64(s.Start), 0) {
		return Result{}, ErrInvalidWindow
	}

	rate := s.Body.MeanMotion()
	if rate <= 0 {
		return Result{}, ephem.ErrUnknownBody
	}
	if s.WindowDays >= 360/rate {
		return Result{}, ErrWindowTooWide
	}

	ay := s.Ayanamsa
	if ay == nil {
		ay = astro.Lahiri{}
	}

	longitude := func(t julian.Instant) (float64, error) {
		trop, err := ephem.Longitude(s.Body, t)
		if err != nil {
			return 0, err
		}
		return astro.Normalize360(trop - ay.OffsetDeg(t)), nil
	}

	return solve(longitude, s.TargetDeg, s.Start, s.WindowDays,
		tolerance(s.ToleranceDeg), maxIter(s.MaxIterations), s.Cancel)
}

// FindNatalReturn is FindReturn with the target taken from a natal point.
func FindNatalReturn(p NatalPoint, start julian.Instant, windowDays float64, ay astro.Ayanamsa) (Result, error) {
	return FindReturn(Search{
		Body:       p.Body,
		TargetDeg:  p.LongitudeDeg,
		Start:      start,
		WindowDays: windowDays,
		Ayanamsa:   ay,
	})
}

// solve bisects over [start, start+windowDays] for the instant where fn
// reaches target (mod 360).
//
// fn is assumed monotonically increasing modulo 360 across the window,
// with total motion under one full turn. Bracketing therefore works on
// motion accumulated since the window start: wrapping the difference from
// the start longitude into [0, 360) recovers the true forward motion, so
// the 0°/360° seam can never produce a false bracket.
func solve(fn func(julian.Instant) (float64, error), target float64,
	start julian.Instant, windowDays float64,
	tolDeg float64, maxIterations int, cancel func() bool) (Result, error) {

	startLon, err := fn(start)
	if err != nil {
		return Result{}, err
	}

	// Forward motion needed from window start to reach the target.
	need := astro.Normalize360(target - startLon)

	lo, hi := start, start.AddDays(windowDays)
	lastSep := astro.SignedSeparation(startLon, target)

	for i := 0; i < maxIterations; i++ {
		if cancel != nil && cancel() {
			return Result{}, ErrCanceled
		}

		mid := lo + (hi-lo)/2
		lon, err := fn(mid)
		if err != nil {
			return Result{}, err
		}

		sep := astro.SignedSeparation(lon, target)
		if math.Abs(sep) < tolDeg {
			return Result{
				Instant:       mid,
				SeparationDeg: math.Abs(sep),
				Iterations:    i + 1,
			}, nil
		}
		lastSep = sep

		moved := astro.Normalize360(lon - startLon)
		if moved < need {
			lo = mid
		} else {
			hi = mid
		}
	}

	return Result{}, &ConvergenceError{
		SeparationDeg: lastSep,
		Iterations:    maxIterations,
	}
}

func tolerance(v float64) float64 {
	if v > 0 {
		return v
	}
	return DefaultToleranceDeg
}

func maxIter(v int) int {
	if v > 0 {
		return v
	}
	return DefaultMaxIter
}
