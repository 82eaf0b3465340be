package catalog

import (
	"math"
	"testing"

	"github.com/litescript/ls-skyframes/internal/astro"
)

func TestBrightParses(t *testing.T) {
	objs, err := Bright()
	if err != nil {
		t.Fatalf("Bright() error: %v", err)
	}
	if len(objs) < 30 {
		t.Errorf("expected at least 30 stars, got %d", len(objs))
	}
	for _, o := range objs {
		if o.Coord.Frame.Kind != astro.ICRS {
			t.Errorf("%s: frame = %v, want ICRS", o.Name, o.Coord.Frame)
		}
		if o.Coord.Lat < -math.Pi/2 || o.Coord.Lat > math.Pi/2 {
			t.Errorf("%s: dec = %v out of range", o.Name, o.Coord.Lat)
		}
	}
}

func TestBrightKnownPositions(t *testing.T) {
	objs, err := Bright()
	if err != nil {
		t.Fatalf("Bright() error: %v", err)
	}

	tests := []struct {
		name          string
		raDeg, decDeg float64
	}{
		{"Sirius", 101.287, -16.716},
		{"Vega", 279.235, 38.784},
		{"Polaris", 37.954, 89.264},
		{"Canopus", 95.988, -52.696},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, ok := Find(objs, tt.name)
			if !ok {
				t.Fatalf("%s not in catalog", tt.name)
			}
			if math.Abs(astro.RadToDeg(o.Coord.Lon)-tt.raDeg) > 0.001 {
				t.Errorf("RA = %v deg, want %v", astro.RadToDeg(o.Coord.Lon), tt.raDeg)
			}
			if math.Abs(astro.RadToDeg(o.Coord.Lat)-tt.decDeg) > 0.001 {
				t.Errorf("Dec = %v deg, want %v", astro.RadToDeg(o.Coord.Lat), tt.decDeg)
			}
		})
	}
}

func TestFindCaseInsensitive(t *testing.T) {
	objs, err := Bright()
	if err != nil {
		t.Fatalf("Bright() error: %v", err)
	}
	if _, ok := Find(objs, "sirius"); !ok {
		t.Error("Find(sirius) failed")
	}
	if _, ok := Find(objs, "BETELGEUSE"); !ok {
		t.Error("Find(BETELGEUSE) failed")
	}
	if _, ok := Find(objs, "Nonexistent"); ok {
		t.Error("Find(Nonexistent) succeeded")
	}
}
