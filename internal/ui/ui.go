// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-skyframes/internal/astro"
	"github.com/litescript/ls-skyframes/internal/catalog"
	"github.com/litescript/ls-skyframes/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewCatalog ViewMode = iota
	ViewPair
)

// Epoch stepping for the FK5 frame selector.
const (
	epochStep    = 10.0
	defaultEpoch = 2000.0
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	frameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#d0c8ff"))

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Underline(true)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	markStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("213"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// Model is the root Bubble Tea model.
type Model struct {
	width  int
	height int
	ready  bool

	viewMode ViewMode

	stars   []catalog.Object
	loadErr error

	cursor int
	offset int

	// Display frame selection
	frameKind astro.FrameKind
	fk5Epoch  float64

	// Marked pair for the separation view; -1 means unset.
	markA int
	markB int
}

// New creates the root UI model with the bright-star catalog loaded.
func New() Model {
	stars, err := catalog.Bright()
	return Model{
		stars:     stars,
		loadErr:   err,
		frameKind: astro.ICRS,
		fk5Epoch:  defaultEpoch,
		markA:     -1,
		markB:     -1,
	}
}

// ActiveFrame returns the frame currently selected for display.
func (m Model) ActiveFrame() astro.Frame {
	switch m.frameKind {
	case astro.Galactic:
		return astro.GalacticFrame()
	case astro.FK5:
		return astro.FK5Frame(m.fk5Epoch)
	default:
		return astro.ICRSFrame()
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.stars)-1 {
			m.cursor++
		}

	case "f":
		m.frameKind = nextFrameKind(m.frameKind)

	case "[":
		if m.frameKind == astro.FK5 {
			m.fk5Epoch -= epochStep
		}

	case "]":
		if m.frameKind == astro.FK5 {
			m.fk5Epoch += epochStep
		}

	case " ":
		m = m.markCursor()

	case "tab":
		if m.viewMode == ViewCatalog {
			m.viewMode = ViewPair
		} else {
			m.viewMode = ViewCatalog
		}

	case "esc":
		m.viewMode = ViewCatalog
	}

	m = m.clampScroll()
	return m, nil
}

func nextFrameKind(k astro.FrameKind) astro.FrameKind {
	switch k {
	case astro.ICRS:
		return astro.Galactic
	case astro.Galactic:
		return astro.FK5
	default:
		return astro.ICRS
	}
}

// markCursor records the highlighted star as one end of the pair. The
// oldest mark is replaced once both slots are taken.
func (m Model) markCursor() Model {
	switch {
	case m.markA == m.cursor:
		m.markA = -1
	case m.markB == m.cursor:
		m.markB = -1
	case m.markA < 0:
		m.markA = m.cursor
	case m.markB < 0:
		m.markB = m.cursor
	default:
		m.markA, m.markB = m.markB, m.cursor
	}
	return m
}

func (m Model) visibleRows() int {
	// Header, frame line, column header, footer.
	rows := m.height - 5
	if rows < 1 {
		rows = 10
	}
	return rows
}

func (m Model) clampScroll() Model {
	rows := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	if m.loadErr != nil {
		return errorStyle.Render(fmt.Sprintf("catalog error: %v", m.loadErr)) + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("ls-skyframes " + version.Version))
	b.WriteString("  ")
	b.WriteString(frameStyle.Render("frame: " + m.ActiveFrame().String()))
	b.WriteString("\n")

	switch m.viewMode {
	case ViewPair:
		b.WriteString(m.pairView())
	default:
		b.WriteString(m.catalogView())
	}

	b.WriteString(dimStyle.Render("j/k move · f frame · [/] epoch · space mark · tab pair · q quit"))
	return b.String()
}

func (m Model) catalogView() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-2s %-12s %6s %12s %12s", "", "Star", "Mag", lonLabel(m.frameKind), latLabel(m.frameKind))))
	b.WriteString("\n")

	frame := m.ActiveFrame()
	rows := m.visibleRows()
	end := m.offset + rows
	if end > len(m.stars) {
		end = len(m.stars)
	}

	for i := m.offset; i < end; i++ {
		o := m.stars[i]
		c := astro.Convert(frame, o.Coord)
		line := fmt.Sprintf("%-2s %-12s %6.2f %11.4f° %+11.4f°",
			m.markGlyph(i), o.Name, o.Mag, lonDeg360(c.Lon), astro.RadToDeg(c.Lat))
		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) markGlyph(i int) string {
	switch i {
	case m.markA:
		return markStyle.Render("A")
	case m.markB:
		return markStyle.Render("B")
	default:
		return " "
	}
}

func lonLabel(k astro.FrameKind) string {
	if k == astro.Galactic {
		return "l"
	}
	return "RA"
}

func latLabel(k astro.FrameKind) string {
	if k == astro.Galactic {
		return "b"
	}
	return "Dec"
}

// lonDeg360 renders a longitude in degrees normalized into [0, 360).
func lonDeg360(rad float64) float64 {
	deg := math.Mod(astro.RadToDeg(rad), 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
