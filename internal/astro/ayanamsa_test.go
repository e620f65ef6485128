package astro

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/litescript/ls-sidereal/internal/julian"
)

func TestAyanamsa_StrategiesAgreeAtEpoch(t *testing.T) {
	// The two strategies are interchangeable near the reference epoch:
	// they must agree within 0.01° at J2000.
	lahiri := Lahiri{}.OffsetDeg(julian.J2000)
	linear := Linear{}.OffsetDeg(julian.J2000)

	if math.Abs(lahiri-linear) > 0.01 {
		t.Errorf("strategies disagree at J2000: lahiri=%v linear=%v", lahiri, linear)
	}
}

func TestAyanamsa_EpochValue(t *testing.T) {
	// Lahiri ayanamsa at J2000 is about 23°51'.
	got := Lahiri{}.OffsetDeg(julian.J2000)
	if math.Abs(got-23.85) > 0.01 {
		t.Errorf("Lahiri at J2000 = %v, want ~23.85", got)
	}
}

func TestAyanamsa_GrowsWithPrecession(t *testing.T) {
	strategies := []Ayanamsa{Lahiri{}, Linear{}}

	for _, s := range strategies {
		prev := s.OffsetDeg(julian.FromCivil(1900, 1, 1, 0, 0, 0))
		for year := 1910; year <= 2100; year += 10 {
			cur := s.OffsetDeg(julian.FromCivil(year, 1, 1, 0, 0, 0))
			if cur <= prev {
				t.Errorf("%s: offset not increasing at %d: %v then %v", s.Name(), year, prev, cur)
			}
			prev = cur
		}
	}

	// Accumulation rate is ~50.27"/yr, i.e. ~1.4° per century.
	century := Lahiri{}.OffsetDeg(julian.J2000.AddDays(36525)) - Lahiri{}.OffsetDeg(julian.J2000)
	if math.Abs(century-1.4) > 0.05 {
		t.Errorf("Lahiri accumulation over a century = %v°, want ~1.4°", century)
	}
}

func TestAyanamsa_StrategiesStayClose(t *testing.T) {
	// Within a couple of centuries of J2000 the linear approximation
	// tracks the accumulated formula to a small fraction of a degree.
	for year := 1800; year <= 2200; year += 25 {
		inst := julian.FromCivil(year, 1, 1, 0, 0, 0)
		d := math.Abs(Lahiri{}.OffsetDeg(inst) - Linear{}.OffsetDeg(inst))
		if d > 0.05 {
			t.Errorf("strategies diverge at %d: %v°", year, d)
		}
	}
}

func TestParseAyanamsa(t *testing.T) {
	for _, name := range []string{"lahiri", "Lahiri", "linear", "LINEAR"} {
		ay, err := ParseAyanamsa(name)
		if err != nil {
			t.Fatalf("ParseAyanamsa(%q): %v", name, err)
		}
		if want := strings.ToLower(name); ay.Name() != want {
			t.Errorf("ParseAyanamsa(%q).Name() = %q, want %q", name, ay.Name(), want)
		}
	}

	if _, err := ParseAyanamsa("bogus"); !errors.Is(err, ErrUnknownAyanamsa) {
		t.Errorf("ParseAyanamsa(bogus) err = %v, want ErrUnknownAyanamsa", err)
	}
	if _, err := ParseAyanamsa(""); !errors.Is(err, ErrUnknownAyanamsa) {
		t.Errorf("ParseAyanamsa(\"\") err = %v, want ErrUnknownAyanamsa", err)
	}
}
