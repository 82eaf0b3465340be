package astro

import (
	"fmt"
	"math"
)

// FrameKind identifies a celestial reference frame family.
type FrameKind int

const (
	// ICRS is the International Celestial Reference System, the anchor
	// frame of this package.
	ICRS FrameKind = iota

	// Galactic is aligned to the Milky Way's plane and center.
	Galactic

	// FK5 is the equatorial frame of a given Julian-year equinox,
	// related to J2000 by precession.
	FK5
)

func (k FrameKind) String() string {
	switch k {
	case ICRS:
		return "ICRS"
	case Galactic:
		return "Galactic"
	case FK5:
		return "FK5"
	default:
		return "UNKNOWN"
	}
}

// Frame describes a concrete reference frame. Epoch is the Julian year of
// the equinox and is meaningful only when Kind is FK5; FK5 frames with
// different epochs are distinct.
type Frame struct {
	Kind  FrameKind
	Epoch float64
}

// ICRSFrame returns the ICRS frame descriptor.
func ICRSFrame() Frame { return Frame{Kind: ICRS} }

// GalacticFrame returns the Galactic frame descriptor.
func GalacticFrame() Frame { return Frame{Kind: Galactic} }

// FK5Frame returns the FK5 frame of the given Julian-year equinox.
func FK5Frame(epoch float64) Frame { return Frame{Kind: FK5, Epoch: epoch} }

// Equal reports whether two descriptors name the same frame. Epoch is
// compared only for FK5.
func (f Frame) Equal(g Frame) bool {
	if f.Kind != g.Kind {
		return false
	}
	return f.Kind != FK5 || f.Epoch == g.Epoch
}

func (f Frame) String() string {
	if f.Kind == FK5 {
		return fmt.Sprintf("FK5(J%g)", f.Epoch)
	}
	return f.Kind.String()
}

// Defining constants. The eta/xi/dA triple is the ICRS-to-FK5 frame bias
// in degrees; the NGP position and node longitude define the Galactic
// frame relative to FK5 J2000.
const (
	biasEta0Deg = -19.9 / 3_600_000
	biasXi0Deg  = 9.1 / 3_600_000
	biasDA0Deg  = -22.9 / 3_600_000

	ngpRADeg   = 192.8594812065348
	ngpDecDeg  = 27.12825118085622
	galLon0Deg = 122.9319185680026
)

// Fixed inter-frame rotations, computed once at package initialization
// and immutable afterwards.
var (
	icrsToFK5J2000 = func() Mat3 {
		eta0 := DegToRad(biasEta0Deg)
		xi0 := DegToRad(biasXi0Deg)
		da0 := DegToRad(biasDA0Deg)
		return RotationX(-eta0).Mul(RotationY(xi0)).Mul(RotationZ(da0))
	}()
	fk5J2000ToICRS = icrsToFK5J2000.Transposed()

	fk5J2000ToGal = RotationZ(math.Pi - DegToRad(galLon0Deg)).
			Mul(RotationY(math.Pi/2 - DegToRad(ngpDecDeg))).
			Mul(RotationZ(DegToRad(ngpRADeg)))
	galToFK5J2000 = fk5J2000ToGal.Transposed()

	galToICRS = fk5J2000ToICRS.Mul(galToFK5J2000)
	icrsToGal = galToICRS.Transposed()
)

// RotationBetween returns the matrix mapping a unit vector expressed in
// the source frame's Cartesian basis to the target frame's basis. FK5
// matrices are recomputed per call; the precession polynomial is cheap
// enough that caching per epoch is not worth it.
func RotationBetween(target, source Frame) Mat3 {
	switch source.Kind {
	case ICRS:
		switch target.Kind {
		case Galactic:
			return icrsToGal
		case FK5:
			return PrecessFromJ2000(target.Epoch).Mul(icrsToFK5J2000)
		}
	case Galactic:
		switch target.Kind {
		case ICRS:
			return galToICRS
		case FK5:
			return PrecessFromJ2000(target.Epoch).Mul(galToFK5J2000)
		}
	case FK5:
		switch target.Kind {
		case ICRS:
			return fk5J2000ToICRS.Mul(PrecessFromJ2000(source.Epoch).Transposed())
		case Galactic:
			return fk5J2000ToGal.Mul(PrecessFromJ2000(source.Epoch).Transposed())
		case FK5:
			if target.Epoch == source.Epoch {
				return Identity()
			}
			return PrecessFromJ2000(target.Epoch).Mul(PrecessFromJ2000(source.Epoch).Transposed())
		}
	}
	return Identity()
}
