// Package tui implements the chronik terminal user interface.
//
// An interactive commit history browser built with Charmbracelet's
// BubbleTea, Lipgloss, and Bubbles libraries.
//
// Component architecture:
//
//	model.go   — root model, message routing, Init/Update/View
//	theme.go   — centralized color + style definitions
//	keys.go    — keyboard binding table
//	header.go  — top bar with branch context + bottom status bar
//	layout.go  — column width calculation over the commit sequence
//	frame.go   — frame assembly: commit rows and expanded file rows
//	icons.go   — extension-keyed file type glyphs
//	helpers.go — padding, truncation, clamping
package tui
