// Package shell is the root of an appshell program.
//
// A Bridge holds the resolved locale and the mounted navigator and turns platform
// events into navigation and locale changes. Model runs the bridge inside a Bubble Tea
// program and composes each frame from a Description whose layers wrap the current
// page in a fixed order:
//
//	content → text style → performance overlay → debug overlay → inspector →
//	non-production banner → localizations → title
//
// Each layer encloses every layer before it.
package shell
