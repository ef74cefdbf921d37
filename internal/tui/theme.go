package tui

import "github.com/charmbracelet/lipgloss"

// ────────────────────────────────────────────────────────────
// Color Palette — GitHub Dark aesthetic
// ────────────────────────────────────────────────────────────
//
// All colors are defined here. No ad-hoc color literals anywhere.
// Designed for readability in dark terminals (iTerm2, Windows
// Terminal, Ghostty, Alacritty).

var (
	// Base
	colorBgSurface = lipgloss.Color("#1c2128")

	// Text
	colorText      = lipgloss.Color("#e6edf3")
	colorTextDim   = lipgloss.Color("#8b949e")
	colorTextMuted = lipgloss.Color("#484f58")

	// Accents
	colorBlue   = lipgloss.Color("#58a6ff")
	colorGreen  = lipgloss.Color("#3fb950")
	colorRed    = lipgloss.Color("#f85149")
	colorPurple = lipgloss.Color("#bc8cff")

	// Structural
	colorHighlight = lipgloss.Color("#1f6feb")
)

// Header bar
var (
	headerBarStyle = lipgloss.NewStyle().
			Background(colorBgSurface).
			Foreground(colorText).
			Padding(0, 1)

	headerBrandStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorBlue)

	headerSepStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	headerMetaStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)
)

// Commit rows
var (
	instructionStyle = lipgloss.NewStyle().
				Foreground(colorTextDim)

	commitRowStyle = lipgloss.NewStyle().
			Foreground(colorText)

	commitSelectedStyle = lipgloss.NewStyle().
				Background(colorHighlight).
				Foreground(colorText).
				Bold(true)
)

// File rows, colored per status. Modified stays uncolored.
var (
	fileAddedStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	fileDeletedStyle = lipgloss.NewStyle().
				Foreground(colorRed)

	fileRenamedStyle = lipgloss.NewStyle().
				Foreground(colorBlue)

	fileCopiedStyle = lipgloss.NewStyle().
			Foreground(colorPurple)

	fileModifiedStyle = lipgloss.NewStyle().
				Foreground(colorText)
)

// Footer / status bar
var (
	statusStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorBgSurface).
			Padding(0, 1)

	hintKeyStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	hintDescStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)
)

// Empty state
var emptyStateStyle = lipgloss.NewStyle().
	Foreground(colorTextMuted).
	Padding(2, 4)
