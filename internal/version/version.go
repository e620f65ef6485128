// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Lunar returns, natal chart files, lunar phase in the chart view
// 0.2.0 - Return-time solver, ayanamsa strategies, headless positions mode
// 0.1.0 - Initial release: chart casting, sidereal positions, TUI chart view
