package astro

// FK5 precession angle polynomials (arcseconds) in Julian centuries from
// J2000.0, per Capitaine et al. The constant terms of zeta and z cancel
// the frame-bias offset between the mean equinox and the ICRS origin.
var (
	precZeta  = [6]float64{2.650545, 2306.083227, 0.2988499, 0.01801828, -0.000005971, -0.0000003173}
	precZ     = [6]float64{-2.650545, 2306.077181, 1.0927348, 0.01826837, -0.000028596, -0.0000002904}
	precTheta = [6]float64{0.0, 2004.191903, -0.4294934, -0.04182264, -0.000007089, -0.0000001274}
)

// precAngle evaluates one precession polynomial at t Julian centuries and
// converts the arcsecond result to radians.
func precAngle(c [6]float64, t float64) float64 {
	arcsec := c[0] + t*(c[1]+t*(c[2]+t*(c[3]+t*(c[4]+t*c[5]))))
	return DegToRad(arcsec / 3600)
}

// PrecessFromJ2000 returns the rotation matrix taking mean equatorial
// coordinates of epoch J2000.0 to the mean equinox of the given Julian
// year. At equinox 2000.0 the zeta and z rotations cancel and theta is
// zero, so the result is the identity matrix.
func PrecessFromJ2000(equinox float64) Mat3 {
	t := (equinox - 2000.0) / 100
	zeta := precAngle(precZeta, t)
	z := precAngle(precZ, t)
	theta := precAngle(precTheta, t)
	return RotationZ(-z).Mul(RotationY(theta)).Mul(RotationZ(-zeta))
}
