package astro

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// ParseError reports an angle string that matches neither the hour-angle
// nor the degree grammar.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse angle %q", e.Input)
}

// Sexagesimal grammars. Three numeric fields are required; the seconds
// unit suffix is optional. The sign is attached to the first field and
// applies to the whole value.
var (
	// Strict hour-angle form: the leading unit must be "h".
	hourAngleRe = regexp.MustCompile(`^([+-]?\d+(?:\.\d*)?)h(\d+(?:\.\d*)?)['′m:](\d+(?:\.\d*)?)(?:["″s])?$`)

	// Loose hour-angle form: the leading unit may also be ":".
	looseHourAngleRe = regexp.MustCompile(`^([+-]?\d+(?:\.\d*)?)[h:](\d+(?:\.\d*)?)['′m:](\d+(?:\.\d*)?)(?:["″s])?$`)

	// Degree form.
	degreeRe = regexp.MustCompile(`^([+-]?\d+(?:\.\d*)?)[°d:](\d+(?:\.\d*)?)['′m:](\d+(?:\.\d*)?)(?:["″s])?$`)
)

// ParseAngle parses a sexagesimal angle string into radians.
//
// With forceHourAngle false, the strict hour-angle grammar is tried first
// ("12h52m64.300s") and then the degree grammar ("0°12'5\"", "12d0m0s",
// "12:0:0"). With forceHourAngle true, only the loose hour-angle grammar
// is tried, so colon-separated values read as hours ("12:0:0" is 12h).
func ParseAngle(text string, forceHourAngle bool) (float64, error) {
	stripped := stripSpace(text)

	if forceHourAngle {
		if m := looseHourAngleRe.FindStringSubmatch(stripped); m != nil {
			return hoursToRad(fields(m)), nil
		}
		return 0, &ParseError{Input: text}
	}

	if m := hourAngleRe.FindStringSubmatch(stripped); m != nil {
		return hoursToRad(fields(m)), nil
	}
	if m := degreeRe.FindStringSubmatch(stripped); m != nil {
		d, min, sec := fields(m)
		return DegToRad(d) + DegToRad(min/60) + DegToRad(sec/3600), nil
	}
	return 0, &ParseError{Input: text}
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// fields extracts the three numeric fields from a grammar match, folding
// the leading sign over the minute and second terms.
func fields(m []string) (first, min, sec float64) {
	first, _ = strconv.ParseFloat(m[1], 64)
	min, _ = strconv.ParseFloat(m[2], 64)
	sec, _ = strconv.ParseFloat(m[3], 64)
	if strings.HasPrefix(m[1], "-") {
		min, sec = -min, -sec
	}
	return first, min, sec
}

func hoursToRad(h, m, s float64) float64 {
	return math.Pi * (h + m/60 + s/3600) / 12
}
