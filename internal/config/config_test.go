package config

import (
	"strings"
	"testing"

	"github.com/litescript/ls-sidereal/internal/julian"
)

const validNatal = `
[observer]
name = "Chennai"
latitude = 13.0827
longitude = 80.2707

[birth]
year = 1990
month = 6
day = 15
hour = 8
minute = 30
`

func TestParse_Valid(t *testing.T) {
	n, err := Parse([]byte(validNatal))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if n.Observer.Name != "Chennai" {
		t.Errorf("observer name = %q", n.Observer.Name)
	}
	if n.Site().LatDeg != 13.0827 || n.Site().LonDeg != 80.2707 {
		t.Errorf("site = %+v", n.Site())
	}

	want := julian.FromCivil(1990, 6, 15, 8, 30, 0)
	if n.Instant() != want {
		t.Errorf("Instant() = %v, want %v", float64(n.Instant()), float64(want))
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mangle  func(string) string
		wantMsg string
	}{
		{
			name:    "latitude out of range",
			mangle:  func(s string) string { return strings.Replace(s, "latitude = 13.0827", "latitude = 95", 1) },
			wantMsg: "latitude",
		},
		{
			name:    "longitude out of range",
			mangle:  func(s string) string { return strings.Replace(s, "longitude = 80.2707", "longitude = 200", 1) },
			wantMsg: "longitude",
		},
		{
			name:    "missing year",
			mangle:  func(s string) string { return strings.Replace(s, "year = 1990\n", "", 1) },
			wantMsg: "year",
		},
		{
			name:    "bad month",
			mangle:  func(s string) string { return strings.Replace(s, "month = 6", "month = 13", 1) },
			wantMsg: "month",
		},
		{
			name:    "bad hour",
			mangle:  func(s string) string { return strings.Replace(s, "hour = 8", "hour = 24", 1) },
			wantMsg: "time",
		},
		{
			name:    "not TOML",
			mangle:  func(string) string { return "{json: păȑșe}" },
			wantMsg: "decode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.mangle(validNatal)))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}
