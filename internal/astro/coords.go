package astro

import (
	"math"
)

// EquatorialToEcliptic converts equatorial coordinates (right ascension and
// declination, degrees) to ecliptic longitude and latitude (degrees) for a
// given obliquity. Longitude is normalized to [0, 360); the atan2 form keeps
// it continuous across the 0°/360° seam.
func EquatorialToEcliptic(raDeg, decDeg, epsDeg float64) (lonDeg, latDeg float64) {
	ra := degToRad(raDeg)
	dec := degToRad(decDeg)
	eps := degToRad(epsDeg)

	sinEps := math.Sin(eps)
	cosEps := math.Cos(eps)

	sinLat := math.Sin(dec)*cosEps - math.Cos(dec)*sinEps*math.Sin(ra)
	if sinLat > 1 {
		sinLat = 1
	} else if sinLat < -1 {
		sinLat = -1
	}
	lat := math.Asin(sinLat)

	y := math.Sin(ra)*cosEps + math.Tan(dec)*sinEps
	x := math.Cos(ra)
	lon := math.Atan2(y, x)

	return Normalize360(radToDeg(lon)), radToDeg(lat)
}

// EclipticToEquatorial converts ecliptic longitude and latitude (degrees) to
// right ascension and declination (degrees) for a given obliquity. Right
// ascension is normalized to [0, 360).
func EclipticToEquatorial(lonDeg, latDeg, epsDeg float64) (raDeg, decDeg float64) {
	lon := degToRad(lonDeg)
	lat := degToRad(latDeg)
	eps := degToRad(epsDeg)

	sinEps := math.Sin(eps)
	cosEps := math.Cos(eps)

	sinDec := math.Sin(lat)*cosEps + math.Cos(lat)*sinEps*math.Sin(lon)
	if sinDec > 1 {
		sinDec = 1
	} else if sinDec < -1 {
		sinDec = -1
	}
	dec := math.Asin(sinDec)

	y := math.Sin(lon)*cosEps - math.Tan(lat)*sinEps
	x := math.Cos(lon)
	ra := math.Atan2(y, x)

	return Normalize360(radToDeg(ra)), radToDeg(dec)
}
