// Package config loads natal chart files for the CLI.
//
// The computation engine itself reads no configuration; this package only
// serves cmd/ls-sidereal, which passes the decoded values into the engine
// as plain arguments.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/litescript/ls-sidereal/internal/astro"
	"github.com/litescript/ls-sidereal/internal/julian"
)

// Natal is a TOML natal chart file:
//
//	[observer]
//	name = "Chennai"
//	latitude = 13.0827
//	longitude = 80.2707
//
//	[birth]
//	year = 1990
//	month = 6
//	day = 15
//	hour = 8
//	minute = 30
type Natal struct {
	Observer ObserverSection `toml:"observer"`
	Birth    BirthSection    `toml:"birth"`
}

type ObserverSection struct {
	Name      string  `toml:"name"`
	Latitude  float64 `toml:"latitude"`
	Longitude float64 `toml:"longitude"`
}

type BirthSection struct {
	Year   int `toml:"year"`
	Month  int `toml:"month"`
	Day    int `toml:"day"`
	Hour   int `toml:"hour"`
	Minute int `toml:"minute"`
	Second int `toml:"second"`
}

// Load reads and validates a natal chart file.
func Load(path string) (Natal, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Natal{}, err
	}
	return Parse(data)
}

// Parse decodes and validates natal TOML data.
func Parse(data []byte) (Natal, error) {
	var n Natal
	if err := toml.Unmarshal(data, &n); err != nil {
		return Natal{}, fmt.Errorf("decode natal file: %w", err)
	}
	if err := n.validate(); err != nil {
		return Natal{}, err
	}
	return n, nil
}

func (n Natal) validate() error {
	o := n.Observer
	if o.Latitude < -90 || o.Latitude > 90 {
		return fmt.Errorf("latitude %v outside [-90, 90]", o.Latitude)
	}
	if o.Longitude < -180 || o.Longitude > 180 {
		return fmt.Errorf("longitude %v outside [-180, 180]", o.Longitude)
	}

	b := n.Birth
	if b.Year == 0 {
		return fmt.Errorf("birth year is required")
	}
	if b.Month < 1 || b.Month > 12 {
		return fmt.Errorf("birth month %d outside [1, 12]", b.Month)
	}
	if b.Day < 1 || b.Day > 31 {
		return fmt.Errorf("birth day %d outside [1, 31]", b.Day)
	}
	if b.Hour < 0 || b.Hour > 23 || b.Minute < 0 || b.Minute > 59 || b.Second < 0 || b.Second > 59 {
		return fmt.Errorf("birth time %02d:%02d:%02d invalid", b.Hour, b.Minute, b.Second)
	}
	return nil
}

// Instant returns the birth moment as a Julian instant (UTC).
func (n Natal) Instant() julian.Instant {
	b := n.Birth
	return julian.FromCivil(b.Year, b.Month, b.Day, b.Hour, b.Minute, float64(b.Second))
}

// Site returns the observer location.
func (n Natal) Site() astro.Observer {
	return astro.Observer{
		LatDeg: n.Observer.Latitude,
		LonDeg: n.Observer.Longitude,
		Name:   n.Observer.Name,
	}
}
