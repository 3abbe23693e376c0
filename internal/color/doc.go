// Package color holds the lipgloss palette and styles of the trainctl TUI.
//
// Colors are adaptive: each one has a light and a dark variant and lipgloss
// picks one from the terminal background. Initialize forces the choice, which
// keeps rendering deterministic in tests and lets the user override detection.
package color
