package ui

import (
	"fmt"
	"strings"

	"github.com/litescript/ls-skyframes/internal/astro"
	"github.com/litescript/ls-skyframes/internal/catalog"
)

// pairView renders the two marked stars in the active frame together
// with their great-circle separation and position angle.
func (m Model) pairView() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Pair"))
	b.WriteString("\n")

	if m.markA < 0 || m.markB < 0 {
		b.WriteString(dimStyle.Render("mark two stars with space in the catalog view"))
		b.WriteString("\n")
		return b.String()
	}

	frame := m.ActiveFrame()
	first := m.stars[m.markA]
	second := m.stars[m.markB]

	b.WriteString(m.pairLine("A", first, frame))
	b.WriteString(m.pairLine("B", second, frame))

	ca := astro.Convert(frame, first.Coord)
	cb := astro.Convert(frame, second.Coord)
	sep := astro.Separation(ca, cb)
	pa := astro.PositionAngle(ca, cb)

	b.WriteString(fmt.Sprintf("\nseparation     %9.4f°\n", astro.RadToDeg(sep)))
	b.WriteString(fmt.Sprintf("position angle %9.4f°\n", astro.RadToDeg(pa)))
	return b.String()
}

func (m Model) pairLine(tag string, o catalog.Object, frame astro.Frame) string {
	c := astro.Convert(frame, o.Coord)
	return fmt.Sprintf("%s %-12s %11.4f° %+11.4f°\n",
		markStyle.Render(tag), o.Name, lonDeg360(c.Lon), astro.RadToDeg(c.Lat))
}
