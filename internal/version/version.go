// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.2.0"

// Milestones:
// 0.2.0 - Bright-star catalog with sexagesimal positions, pair view with
//         separation and position angle
// 0.1.0 - Initial release: ICRS/Galactic/FK5 frame conversions, TUI
//         catalog view, headless conversion mode
