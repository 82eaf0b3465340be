// Command ls-skyframes is a terminal tool for converting celestial
// coordinates between the ICRS, Galactic, and FK5 reference frames.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-skyframes/internal/astro"
	"github.com/litescript/ls-skyframes/internal/catalog"
	"github.com/litescript/ls-skyframes/internal/logging"
	"github.com/litescript/ls-skyframes/internal/ui"
	"github.com/litescript/ls-skyframes/internal/version"
)

// CLI flags for headless mode
var (
	raText    string
	decText   string
	raHours   bool
	fromName  string
	fromEpoch float64
	toName    string
	toEpoch   float64
	sepPair   string
	listMode  bool
)

func main() {
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.StringVar(&raText, "ra", "", "Longitude angle, sexagesimal (e.g. 06h45m08.9s or 101°17'13\")")
	flag.StringVar(&decText, "dec", "", "Latitude angle, sexagesimal (e.g. -16°42'58\")")
	flag.BoolVar(&raHours, "ra-hours", false, "Read a colon-separated -ra as hours instead of degrees")
	flag.StringVar(&fromName, "from", "icrs", "Source frame (icrs, galactic, fk5)")
	flag.Float64Var(&fromEpoch, "from-epoch", 2000, "Julian-year equinox when -from is fk5")
	flag.StringVar(&toName, "to", "", "Destination frame; converts and exits")
	flag.Float64Var(&toEpoch, "to-epoch", 2000, "Julian-year equinox when -to is fk5")
	flag.StringVar(&sepPair, "sep", "", "Two catalog stars, comma separated; prints separation and position angle")
	flag.BoolVar(&listMode, "list", false, "Print the star catalog and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("ls-skyframes " + version.Version)
		return
	}

	logger := logging.New(logging.ParseLevel(*logLevel))

	headless := toName != "" || sepPair != "" || listMode
	if headless {
		if err := runHeadless(logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "stdout is not a terminal; use -to, -sep, or -list for headless output")
		os.Exit(1)
	}

	p := tea.NewProgram(ui.New(), tea.WithAltScreen())

	// Quit cleanly on SIGINT/SIGTERM so the alt screen is restored.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		p.Quit()
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// runHeadless handles the one-shot modes without starting the TUI.
func runHeadless(logger *logging.Logger) error {
	if listMode {
		return printCatalog()
	}
	if sepPair != "" {
		return printSeparation(logger)
	}
	return printConversion(logger)
}

func printConversion(logger *logging.Logger) error {
	if raText == "" || decText == "" {
		return fmt.Errorf("-to requires both -ra and -dec")
	}

	lon, err := astro.ParseAngle(raText, raHours)
	if err != nil {
		return err
	}
	lat, err := astro.ParseAngle(decText, false)
	if err != nil {
		return err
	}

	source, err := parseFrame(fromName, fromEpoch)
	if err != nil {
		return err
	}
	target, err := parseFrame(toName, toEpoch)
	if err != nil {
		return err
	}

	in := astro.Coord{Frame: source, Lon: lon, Lat: lat}
	out := astro.Convert(target, in)
	logger.Debug("converted %v -> %v", source, target)

	fmt.Printf("%-10s %14.10f rad  %12.6f°\n", target.String()+" lon", out.Lon, lonDeg(out.Lon))
	fmt.Printf("%-10s %14.10f rad  %12.6f°\n", target.String()+" lat", out.Lat, astro.RadToDeg(out.Lat))
	return nil
}

func printSeparation(logger *logging.Logger) error {
	names := strings.SplitN(sepPair, ",", 2)
	if len(names) != 2 {
		return fmt.Errorf("-sep wants two names, e.g. -sep Sirius,Vega")
	}

	objs, err := catalog.Bright()
	if err != nil {
		return err
	}
	a, ok := catalog.Find(objs, strings.TrimSpace(names[0]))
	if !ok {
		return fmt.Errorf("unknown star %q", names[0])
	}
	b, ok := catalog.Find(objs, strings.TrimSpace(names[1]))
	if !ok {
		return fmt.Errorf("unknown star %q", names[1])
	}

	sep := astro.Separation(a.Coord, b.Coord)
	pa := astro.PositionAngle(a.Coord, b.Coord)
	logger.Debug("pair %s / %s", a.Name, b.Name)

	fmt.Printf("separation(%s, %s)     = %.6f° (%.10f rad)\n", a.Name, b.Name, astro.RadToDeg(sep), sep)
	fmt.Printf("position angle(%s, %s) = %.6f° (%.10f rad)\n", a.Name, b.Name, astro.RadToDeg(pa), pa)
	return nil
}

func printCatalog() error {
	objs, err := catalog.Bright()
	if err != nil {
		return err
	}
	fmt.Printf("%-14s %6s %12s %12s\n", "Star", "Mag", "RA", "Dec")
	for _, o := range objs {
		fmt.Printf("%-14s %6.2f %11.4f° %+11.4f°\n",
			o.Name, o.Mag, lonDeg(o.Coord.Lon), astro.RadToDeg(o.Coord.Lat))
	}
	return nil
}

func parseFrame(name string, epoch float64) (astro.Frame, error) {
	switch strings.ToLower(name) {
	case "icrs":
		return astro.ICRSFrame(), nil
	case "galactic", "gal":
		return astro.GalacticFrame(), nil
	case "fk5":
		return astro.FK5Frame(epoch), nil
	default:
		return astro.Frame{}, fmt.Errorf("unknown frame %q (want icrs, galactic, or fk5)", name)
	}
}

// lonDeg renders a longitude in degrees normalized into [0, 360).
func lonDeg(rad float64) float64 {
	deg := math.Mod(astro.RadToDeg(rad), 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
