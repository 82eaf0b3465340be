package astro

import (
	"math"
)

// Coord is a point on the celestial sphere in a specific reference frame.
// Lon is right ascension (equatorial frames) or galactic longitude, Lat is
// declination or galactic latitude, both in radians.
//
// Values are stored as given: construction neither wraps the longitude
// into [0, 2π) nor checks the latitude against [-π/2, π/2]. The trig
// identities downstream are total over the reals, and only FromCartesian
// produces normalized angles.
type Coord struct {
	Frame Frame
	Lon   float64
	Lat   float64
}

// ICRSCoords returns a coordinate in the ICRS frame.
func ICRSCoords(ra, dec float64) Coord {
	return Coord{Frame: ICRSFrame(), Lon: ra, Lat: dec}
}

// GalCoords returns a coordinate in the Galactic frame.
func GalCoords(l, b float64) Coord {
	return Coord{Frame: GalacticFrame(), Lon: l, Lat: b}
}

// FK5Coords returns a coordinate in the FK5 frame of the given equinox.
func FK5Coords(epoch, ra, dec float64) Coord {
	return Coord{Frame: FK5Frame(epoch), Lon: ra, Lat: dec}
}

// ToCartesian maps spherical angles to a unit Cartesian vector.
func ToCartesian(lon, lat float64) Vec3 {
	return Vec3{
		X: math.Cos(lat) * math.Cos(lon),
		Y: math.Cos(lat) * math.Sin(lon),
		Z: math.Sin(lat),
	}
}

// FromCartesian maps a Cartesian vector back to spherical angles, with
// lon in (-π, π] and lat in [-π/2, π/2].
func FromCartesian(v Vec3) (lon, lat float64) {
	lon = math.Atan2(v.Y, v.X)
	lat = math.Atan2(v.Z, math.Hypot(v.X, v.Y))
	return lon, lat
}

// Convert returns c expressed in the target frame. When c is already in
// that frame it is returned unchanged, preserving the input bits exactly.
func Convert(target Frame, c Coord) Coord {
	if c.Frame.Equal(target) {
		return c
	}
	v := RotationBetween(target, c.Frame).MulVec(ToCartesian(c.Lon, c.Lat))
	lon, lat := FromCartesian(v)
	return Coord{Frame: target, Lon: lon, Lat: lat}
}
