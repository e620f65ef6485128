// Package ephem approximates tropical ecliptic positions of the Sun and
// Moon with truncated trigonometric series.
//
// Accuracy is roughly 0.01° for the Sun and 0.3° for the Moon, which is
// sufficient for chart casting and return solving; this is deliberately
// not a full perturbation theory.
package ephem

import (
	"errors"
	"strings"
)

// Body identifies a celestial body the engine can position.
type Body int

const (
	Sun Body = iota
	Moon
)

// ErrUnknownBody is returned for body identifiers outside the closed set.
var ErrUnknownBody = errors.New("ephem: unknown body")

// String returns the body name.
func (b Body) String() string {
	switch b {
	case Sun:
		return "Sun"
	case Moon:
		return "Moon"
	default:
		return "Unknown"
	}
}

// MeanMotion returns the body's mean apparent rate along the ecliptic in
// degrees per day. The return solver sizes its search windows from this
// rate: a window must stay under one full apparent cycle (360/rate days)
// for longitude to be monotonic across it.
func (b Body) MeanMotion() float64 {
	switch b {
	case Sun:
		return 0.98564736
	case Moon:
		return 13.17639648
	default:
		return 0
	}
}

// ParseBody parses a body name (case-insensitive).
func ParseBody(s string) (Body, error) {
	switch strings.ToLower(s) {
	case "sun":
		return Sun, nil
	case "moon":
		return Moon, nil
	default:
		return 0, ErrUnknownBody
	}
}

// Bodies lists all supported bodies in canonical order.
func Bodies() []Body {
	return []Body{Sun, Moon}
}
