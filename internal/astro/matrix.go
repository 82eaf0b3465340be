// Package astro represents points on the celestial sphere in standard
// reference frames and converts between them via composed 3D rotations.
package astro

import (
	"math"
)

// Vec3 represents a 3D Cartesian vector in any reference frame.
type Vec3 struct {
	X, Y, Z float64
}

// Norm returns the magnitude of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(u Vec3) float64 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// Mat3 is a 3x3 matrix in row-major order. Every matrix produced by this
// package is orthonormal, so the inverse is always the transpose.
type Mat3 [3][3]float64

// Identity returns the 3x3 identity matrix.
func Identity() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Mul returns the matrix product m*n. Applied to a vector, the rightmost
// factor acts first.
func (m Mat3) Mul(n Mat3) Mat3 {
	var p Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			p[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j]
		}
	}
	return p
}

// MulVec returns the matrix-vector product m*v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Transposed returns the transpose of m. For the rotation matrices built
// here this is the inverse.
func (m Mat3) Transposed() Mat3 {
	return Mat3{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

// RotationX returns the passive rotation matrix about the x axis by
// theta radians: it re-expresses a fixed direction in the basis of a
// frame rotated by +theta.
func RotationX(theta float64) Mat3 {
	s, c := math.Sincos(theta)
	return Mat3{
		{1, 0, 0},
		{0, c, s},
		{0, -s, c},
	}
}

// RotationY returns the passive rotation matrix about the y axis by
// theta radians.
func RotationY(theta float64) Mat3 {
	s, c := math.Sincos(theta)
	return Mat3{
		{c, 0, -s},
		{0, 1, 0},
		{s, 0, c},
	}
}

// RotationZ returns the passive rotation matrix about the z axis by
// theta radians.
func RotationZ(theta float64) Mat3 {
	s, c := math.Sincos(theta)
	return Mat3{
		{c, s, 0},
		{-s, c, 0},
		{0, 0, 1},
	}
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
