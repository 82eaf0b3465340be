// Package catalog provides a bright-star catalog with ICRS positions.
package catalog

import (
	"fmt"
	"strings"
	"sync"

	"github.com/litescript/ls-skyframes/internal/astro"
)

// Star is a catalog entry as published: sexagesimal RA (hour angle) and
// Dec (degrees) strings, plus apparent visual magnitude.
type Star struct {
	Name string
	RA   string
	Dec  string
	Mag  float64
}

// Object is a catalog entry with its position parsed into ICRS radians.
type Object struct {
	Name  string
	Coord astro.Coord
	Mag   float64
}

// Bright returns the built-in bright-star catalog, positions parsed into
// ICRS coordinates. The parse runs once; subsequent calls return the same
// slice, which callers must not modify.
var Bright = sync.OnceValues(func() ([]Object, error) {
	objs := make([]Object, 0, len(brightStars))
	for _, s := range brightStars {
		ra, err := astro.ParseAngle(s.RA, false)
		if err != nil {
			return nil, fmt.Errorf("star %s: bad RA: %w", s.Name, err)
		}
		dec, err := astro.ParseAngle(s.Dec, false)
		if err != nil {
			return nil, fmt.Errorf("star %s: bad Dec: %w", s.Name, err)
		}
		objs = append(objs, Object{
			Name:  s.Name,
			Coord: astro.ICRSCoords(ra, dec),
			Mag:   s.Mag,
		})
	}
	return objs, nil
})

// Find returns the catalog object with the given name, case-insensitive.
func Find(objs []Object, name string) (Object, bool) {
	for _, o := range objs {
		if strings.EqualFold(o.Name, name) {
			return o, true
		}
	}
	return Object{}, false
}

// brightStars lists well-known bright stars, ordered by magnitude.
// Positions are J2000 from the Yale Bright Star Catalog, kept in their
// published sexagesimal form and parsed at load.
var brightStars = []Star{
	{"Sirius", "06h45m08.880s", "-16°42'57.60\"", -1.46},
	{"Canopus", "06h23m57.120s", "-52°41'45.60\"", -0.74},
	{"Arcturus", "14h15m39.600s", "+19°10'55.20\"", -0.05},
	{"Vega", "18h36m56.400s", "+38°47'02.40\"", 0.03},
	{"Capella", "05h16m41.280s", "+45°59'52.80\"", 0.08},
	{"Rigel", "05h14m32.160s", "-08°12'07.20\"", 0.13},
	{"Procyon", "07h39m18.240s", "+05°13'30.00\"", 0.34},
	{"Achernar", "01h37m42.960s", "-57°14'13.20\"", 0.46},
	{"Betelgeuse", "05h55m10.320s", "+07°24'25.20\"", 0.50},
	{"Hadar", "14h03m49.440s", "-60°22'22.80\"", 0.61},
	{"Altair", "19h50m47.040s", "+08°52'04.80\"", 0.76},
	{"Acrux", "12h26m36.000s", "-63°05'56.40\"", 0.76},
	{"Aldebaran", "04h35m55.200s", "+16°30'32.40\"", 0.85},
	{"Antares", "16h29m24.480s", "-26°25'55.20\"", 0.96},
	{"Spica", "13h25m11.520s", "-11°09'39.60\"", 0.97},
	{"Pollux", "07h45m18.960s", "+28°01'33.60\"", 1.14},
	{"Fomalhaut", "22h57m39.120s", "-29°37'19.20\"", 1.16},
	{"Deneb", "20h41m25.920s", "+45°16'48.00\"", 1.25},
	{"Regulus", "10h08m22.320s", "+11°58'01.20\"", 1.35},
	{"Castor", "07h34m36.000s", "+31°53'20.40\"", 1.58},
	{"Bellatrix", "05h25m07.920s", "+06°21'00.00\"", 1.64},
	{"Alioth", "12h54m01.680s", "+55°57'36.00\"", 1.77},
	{"Dubhe", "11h03m43.680s", "+61°45'03.60\"", 1.79},
	{"Mirfak", "03h24m19.440s", "+49°51'39.60\"", 1.79},
	{"Alkaid", "13h47m32.400s", "+49°18'46.80\"", 1.86},
	{"Polaris", "02h31m48.960s", "+89°15'50.40\"", 2.02},
	{"Alphard", "09h27m35.280s", "-08°39'32.40\"", 2.00},
	{"Hamal", "02h07m10.320s", "+23°27'46.80\"", 2.00},
	{"Mizar", "13h23m55.440s", "+54°55'30.00\"", 2.04},
	{"Alpheratz", "00h08m23.280s", "+29°05'27.60\"", 2.06},
	{"Rasalhague", "17h34m56.160s", "+12°33'36.00\"", 2.08},
	{"Denebola", "11h49m03.600s", "+14°34'19.20\"", 2.13},
}
