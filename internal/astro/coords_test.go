package astro

import (
	"math"
	"testing"
)

func TestToCartesianFromCartesian(t *testing.T) {
	tests := []struct {
		name     string
		lon, lat float64
	}{
		{"origin", 0, 0},
		{"quarter turn", math.Pi / 2, 0},
		{"mid latitude", DegToRad(30), DegToRad(45)},
		{"southern", DegToRad(200) - 2*math.Pi, DegToRad(-60)},
		{"near pole", DegToRad(10), DegToRad(89.9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ToCartesian(tt.lon, tt.lat)
			if math.Abs(v.Norm()-1) > 1e-12 {
				t.Errorf("|v| = %v, want 1", v.Norm())
			}
			lon, lat := FromCartesian(v)
			if math.Abs(lon-tt.lon) > 1e-12 || math.Abs(lat-tt.lat) > 1e-12 {
				t.Errorf("round trip = (%v, %v), want (%v, %v)", lon, lat, tt.lon, tt.lat)
			}
		})
	}
}

func TestFromCartesianPoles(t *testing.T) {
	_, lat := FromCartesian(Vec3{0, 0, 1})
	if math.Abs(lat-math.Pi/2) > 1e-15 {
		t.Errorf("north pole lat = %v, want pi/2", lat)
	}
	_, lat = FromCartesian(Vec3{0, 0, -1})
	if math.Abs(lat+math.Pi/2) > 1e-15 {
		t.Errorf("south pole lat = %v, want -pi/2", lat)
	}
}

func TestConvertRoundTrip(t *testing.T) {
	frames := []Frame{
		ICRSFrame(),
		GalacticFrame(),
		FK5Frame(2000),
		FK5Frame(1950),
		FK5Frame(2100),
	}
	for _, a := range frames {
		for _, b := range frames {
			c := Coord{Frame: a, Lon: DegToRad(30), Lat: DegToRad(45)}
			back := Convert(a, Convert(b, c))
			if math.Abs(back.Lon-c.Lon) > 1e-9 || math.Abs(back.Lat-c.Lat) > 1e-9 {
				t.Errorf("%v -> %v -> back = (%v, %v), want (%v, %v)",
					a, b, back.Lon, back.Lat, c.Lon, c.Lat)
			}
		}
	}
}

func TestConvertIdentityShortCircuit(t *testing.T) {
	// Same-frame conversion must return the input bits untouched, even
	// for angles outside the normalized ranges.
	c := FK5Coords(1975, DegToRad(370), DegToRad(95))
	got := Convert(FK5Frame(1975), c)
	if got != c {
		t.Errorf("Convert(same frame) = %+v, want %+v", got, c)
	}

	g := GalCoords(-3, 1.7)
	if got := Convert(GalacticFrame(), g); got != g {
		t.Errorf("Convert(same frame) = %+v, want %+v", got, g)
	}
}

func TestConvertTargetFrameAttached(t *testing.T) {
	c := ICRSCoords(DegToRad(10), DegToRad(20))
	out := Convert(FK5Frame(2025), c)
	if out.Frame.Kind != FK5 || out.Frame.Epoch != 2025 {
		t.Errorf("converted frame = %v, want FK5(J2025)", out.Frame)
	}
}

func TestConvertKnownGalacticPositions(t *testing.T) {
	// Published galactic positions: Sirius and the direction of the
	// galactic center, both to a few milliarcseconds.
	tests := []struct {
		name   string
		in     Coord
		target Frame
		lonDeg float64
		latDeg float64
	}{
		{
			name:   "Sirius to galactic",
			in:     ICRSCoords(DegToRad(101.287), DegToRad(-16.716)),
			target: GalacticFrame(),
			lonDeg: 227.2301201733479,
			latDeg: -8.890364778849834,
		},
		{
			name:   "galactic center to ICRS",
			in:     GalCoords(0, 0),
			target: ICRSFrame(),
			lonDeg: 266.4049882865447,
			latDeg: -28.936177761791473,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Convert(tt.target, tt.in)
			lon := math.Mod(RadToDeg(out.Lon)+360, 360)
			if math.Abs(lon-tt.lonDeg) > 1e-6 {
				t.Errorf("lon = %v deg, want %v", lon, tt.lonDeg)
			}
			if math.Abs(RadToDeg(out.Lat)-tt.latDeg) > 1e-6 {
				t.Errorf("lat = %v deg, want %v", RadToDeg(out.Lat), tt.latDeg)
			}
		})
	}
}

func TestConvertThroughFK5MatchesDirect(t *testing.T) {
	// Galactic -> FK5(e) -> Galactic and Galactic -> FK5(e) -> ICRS must
	// agree with the direct paths for any epoch.
	g := GalCoords(DegToRad(123.4), DegToRad(-21.9))
	direct := Convert(ICRSFrame(), g)
	for _, epoch := range []float64{1900, 1950, 2000, 2042.25, 2100} {
		via := Convert(ICRSFrame(), Convert(FK5Frame(epoch), g))
		if math.Abs(via.Lon-direct.Lon) > 1e-9 || math.Abs(via.Lat-direct.Lat) > 1e-9 {
			t.Errorf("epoch %v: via FK5 = (%v, %v), direct = (%v, %v)",
				epoch, via.Lon, via.Lat, direct.Lon, direct.Lat)
		}

		back := Convert(GalacticFrame(), Convert(FK5Frame(epoch), g))
		if math.Abs(back.Lon-g.Lon) > 1e-9 || math.Abs(back.Lat-g.Lat) > 1e-9 {
			t.Errorf("epoch %v: round trip = (%v, %v), want (%v, %v)",
				epoch, back.Lon, back.Lat, g.Lon, g.Lat)
		}
	}
}

func TestConstructorsPreserveInput(t *testing.T) {
	// No wrapping or clamping on construction.
	c := ICRSCoords(DegToRad(725), DegToRad(-100))
	if c.Lon != DegToRad(725) || c.Lat != DegToRad(-100) {
		t.Errorf("constructor altered input: %+v", c)
	}
	if c.Frame != ICRSFrame() {
		t.Errorf("frame = %v, want ICRS", c.Frame)
	}
}
