package chart

import (
	"fmt"

	"github.com/litescript/ls-sidereal/internal/astro"
)

// signNames lists the zodiac signs in longitude order, 30° each.
var signNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// Sign returns the zodiac sign name containing a longitude.
func Sign(lonDeg float64) string {
	return signNames[int(astro.Normalize360(lonDeg)/30)%12]
}

// SignIndex returns the 0-based sign index for a longitude.
func SignIndex(lonDeg float64) int {
	return int(astro.Normalize360(lonDeg)/30) % 12
}

// FormatLongitude renders a longitude as degrees and minutes within its
// sign, e.g. "Taurus 12°34'".
func FormatLongitude(lonDeg float64) string {
	lon := astro.Normalize360(lonDeg)
	within := lon - float64(SignIndex(lon))*30

	deg := int(within)
	min := int((within - float64(deg)) * 60)
	return fmt.Sprintf("%s %2d°%02d'", Sign(lon), deg, min)
}
