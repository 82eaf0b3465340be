package astro

import (
	"math"
)

// Separation returns the great-circle angle between two coordinates in
// radians, in [0, π]. When the frames differ, c2 is first converted into
// c1's frame. The Vincenty form stays accurate at poles and antipodes,
// where the plain arccos formula loses precision.
func Separation(c1, c2 Coord) float64 {
	if !c2.Frame.Equal(c1.Frame) {
		c2 = Convert(c1.Frame, c2)
	}
	sinDLon, cosDLon := math.Sincos(c2.Lon - c1.Lon)
	sinLat1, cosLat1 := math.Sincos(c1.Lat)
	sinLat2, cosLat2 := math.Sincos(c2.Lat)

	num := math.Hypot(cosLat2*sinDLon, cosLat1*sinLat2-sinLat1*cosLat2*cosDLon)
	den := sinLat1*sinLat2 + cosLat1*cosLat2*cosDLon
	return math.Atan2(num, den)
}

// PositionAngle returns the bearing from c1 to c2 in radians, measured
// from north toward increasing longitude, normalized into [0, 2π). When
// the frames differ, c2 is first converted into c1's frame.
func PositionAngle(c1, c2 Coord) float64 {
	if !c2.Frame.Equal(c1.Frame) {
		c2 = Convert(c1.Frame, c2)
	}
	sinDLon, cosDLon := math.Sincos(c2.Lon - c1.Lon)
	sinLat1, cosLat1 := math.Sincos(c1.Lat)
	sinLat2, cosLat2 := math.Sincos(c2.Lat)

	x := sinLat2*cosLat1 - cosLat2*sinLat1*cosDLon
	y := sinDLon * cosLat2
	return pmod(math.Atan2(y, x), 2*math.Pi)
}

// pmod returns x mod y in [0, y) for positive y.
func pmod(x, y float64) float64 {
	r := math.Mod(x, y)
	if r < 0 {
		r += y
	}
	return r
}
