// Package julian converts between civil dates and Julian Day numbers.
//
// All other time math in the engine operates on Instant values; the civil
// calendar only appears at the edges (user input, display).
package julian

import (
	"errors"
	"math"
	"time"
)

// Instant is a Julian Day number. The integer part counts days since noon
// UTC on -4712-01-01 (Julian proleptic); the fractional part is time of day.
type Instant float64

// J2000 is the standard reference epoch: 2000-01-01 12:00:00 UTC.
const J2000 Instant = 2451545.0

// DaysPerCentury is the length of a Julian century in days.
const DaysPerCentury = 36525.0

// Sane range for Civil conversion. Outside of it the Gregorian inverse
// formula (and the ephemeris series downstream) are meaningless.
const (
	minInstant Instant = 0         // -4712-01-01
	maxInstant Instant = 5373484.5 // 10000-01-01
)

// ErrOutOfRange is returned when an Instant cannot be represented as a
// civil date, either because it is non-finite or falls outside the
// supported astronomical range.
var ErrOutOfRange = errors.New("julian: instant out of range")

// Civil is a broken-down UTC date and time.
type Civil struct {
	Year   int
	Month  int // 1-12
	Day    int // 1-31
	Hour   int // 0-23
	Minute int // 0-59
	Second int // 0-59
}

// FromCivil converts a proleptic-Gregorian UTC date to an Instant.
//
// The function is pure and total: it applies the day-count formula to any
// finite input without validating calendar sanity. Out-of-range fields
// (month 13, day 40) simply roll over, which callers may rely on for
// date arithmetic.
func FromCivil(year, month, day, hour, minute int, second float64) Instant {
	y := float64(year)
	m := float64(month)

	// January and February count as months 13 and 14 of the prior year.
	if m <= 2 {
		y--
		m += 12
	}

	// Gregorian century correction.
	a := math.Floor(y / 100)
	b := 2 - a + math.Floor(a/4)

	dayFrac := (float64(hour) + float64(minute)/60 + second/3600) / 24

	jd := math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		float64(day) + dayFrac + b - 1524.5

	return Instant(jd)
}

// FromTime converts a time.Time (taken in UTC) to an Instant.
func FromTime(t time.Time) Instant {
	t = t.UTC()
	sec := float64(t.Second()) + float64(t.Nanosecond())/1e9
	return FromCivil(t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), sec)
}

// Civil converts the Instant back to a UTC calendar date.
//
// The half-day offset is added before taking the integer part so that the
// reported day never shifts from fractional rounding; the remaining
// fraction is rounded to the nearest second with carry into the next day.
func (i Instant) Civil() (Civil, error) {
	jd := float64(i)
	if math.IsNaN(jd) || math.IsInf(jd, 0) {
		return Civil{}, ErrOutOfRange
	}
	if i < minInstant || i > maxInstant {
		return Civil{}, ErrOutOfRange
	}

	total := jd + 0.5
	z := math.Floor(total)
	f := total - z

	// Round time of day to whole seconds, carrying over midnight.
	secOfDay := int(math.Round(f * 86400))
	if secOfDay >= 86400 {
		secOfDay -= 86400
		z++
	}

	// Gregorian calendar correction (Meeus, ch. 7).
	a := z
	if z >= 2299161 {
		alpha := math.Floor((z - 1867216.25) / 36524.25)
		a = z + 1 + alpha - math.Floor(alpha/4)
	}

	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	day := int(b - d - math.Floor(30.6001*e))

	month := int(e) - 1
	if e >= 14 {
		month = int(e) - 13
	}

	year := int(c) - 4716
	if month <= 2 {
		year = int(c) - 4715
	}

	return Civil{
		Year:   year,
		Month:  month,
		Day:    day,
		Hour:   secOfDay / 3600,
		Minute: (secOfDay % 3600) / 60,
		Second: secOfDay % 60,
	}, nil
}

// Time converts the Instant to a time.Time in UTC.
func (i Instant) Time() (time.Time, error) {
	c, err := i.Civil()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(c.Year, time.Month(c.Month), c.Day, c.Hour, c.Minute, c.Second, 0, time.UTC), nil
}

// Centuries returns Julian centuries elapsed since J2000.
func (i Instant) Centuries() float64 {
	return (float64(i) - float64(J2000)) / DaysPerCentury
}

// Days returns the day count elapsed since J2000.
func (i Instant) Days() float64 {
	return float64(i) - float64(J2000)
}

// AddDays returns the Instant shifted by d days.
func (i Instant) AddDays(d float64) Instant {
	return i + Instant(d)
}
