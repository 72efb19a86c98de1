package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TermTheme holds all color values for a TUI theme.
type TermTheme struct {
	Name string

	// Brand
	Accent    lipgloss.Color
	AccentDim lipgloss.Color

	// Semantic
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	// Text
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Dim       lipgloss.Color

	// Surfaces
	Border       lipgloss.Color
	ActiveBorder lipgloss.Color
}

// DarkTheme is the default dark terminal theme.
var DarkTheme = TermTheme{
	Name:         "dark",
	Accent:       lipgloss.Color("#6366f1"),
	AccentDim:    lipgloss.Color("#4338ca"),
	Success:      lipgloss.Color("#22c55e"),
	Warning:      lipgloss.Color("#eab308"),
	Error:        lipgloss.Color("#ef4444"),
	Primary:      lipgloss.Color("#e5e7eb"),
	Secondary:    lipgloss.Color("#9ca3af"),
	Dim:          lipgloss.Color("#6b7280"),
	Border:       lipgloss.Color("#374151"),
	ActiveBorder: lipgloss.Color("#6366f1"),
}

// LightTheme is the light terminal theme.
var LightTheme = TermTheme{
	Name:         "light",
	Accent:       lipgloss.Color("#4338ca"),
	AccentDim:    lipgloss.Color("#312e81"),
	Success:      lipgloss.Color("#15803d"),
	Warning:      lipgloss.Color("#a16207"),
	Error:        lipgloss.Color("#b91c1c"),
	Primary:      lipgloss.Color("#111827"),
	Secondary:    lipgloss.Color("#374151"),
	Dim:          lipgloss.Color("#6b7280"),
	Border:       lipgloss.Color("#d1d5db"),
	ActiveBorder: lipgloss.Color("#4338ca"),
}

// DetectTheme picks a theme from the configured name, then SIGNUP_THEME,
// then the COLORFGBG background hint, defaulting to dark.
func DetectTheme(name string) TermTheme {
	if t, ok := themeByName(name); ok {
		return t
	}
	if t, ok := themeByName(os.Getenv("SIGNUP_THEME")); ok {
		return t
	}

	// COLORFGBG is "fg;bg"; bg 7 and 15 are light backgrounds
	if colorfgbg := os.Getenv("COLORFGBG"); colorfgbg != "" {
		parts := strings.Split(colorfgbg, ";")
		if bg := parts[len(parts)-1]; len(parts) >= 2 && (bg == "15" || bg == "7") {
			return LightTheme
		}
	}
	return DarkTheme
}

func themeByName(name string) (TermTheme, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dark":
		return DarkTheme, true
	case "light":
		return LightTheme, true
	}
	return TermTheme{}, false
}

// StyleSet contains pre-computed lipgloss styles derived from a theme.
type StyleSet struct {
	Theme TermTheme

	// Text styles
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	AccentTxt    lipgloss.Style
	DimTxt       lipgloss.Style
	SuccessTxt   lipgloss.Style
	WarningTxt   lipgloss.Style
	ErrorTxt     lipgloss.Style
	PrimaryTxt   lipgloss.Style
	SecondaryTxt lipgloss.Style

	// Input borders by state
	ActiveBorder   lipgloss.Style
	InactiveBorder lipgloss.Style
	ErrorBorder    lipgloss.Style

	// Kbd hint
	KbdKey  lipgloss.Style
	KbdDesc lipgloss.Style

	// Banner
	Banner lipgloss.Style

	// Summary
	SummaryKey   lipgloss.Style
	SummaryValue lipgloss.Style
	BorderedBox  lipgloss.Style

	// Progress badges
	StepBadgeComplete lipgloss.Style
	StepBadgeActive   lipgloss.Style
	StepBadgePending  lipgloss.Style

	VersionPill lipgloss.Style
}

// NewStyleSet creates a StyleSet from a theme.
func NewStyleSet(theme TermTheme) *StyleSet {
	border := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c).
			Padding(0, 1)
	}
	badge := func(bg, fg lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().
			Background(bg).
			Foreground(fg).
			Bold(true).
			Padding(0, 1)
	}
	white := lipgloss.Color("#ffffff")

	return &StyleSet{
		Theme: theme,

		Title:        lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
		Subtitle:     lipgloss.NewStyle().Foreground(theme.Secondary),
		AccentTxt:    lipgloss.NewStyle().Foreground(theme.Accent),
		DimTxt:       lipgloss.NewStyle().Foreground(theme.Dim),
		SuccessTxt:   lipgloss.NewStyle().Foreground(theme.Success),
		WarningTxt:   lipgloss.NewStyle().Foreground(theme.Warning),
		ErrorTxt:     lipgloss.NewStyle().Foreground(theme.Error),
		PrimaryTxt:   lipgloss.NewStyle().Foreground(theme.Primary),
		SecondaryTxt: lipgloss.NewStyle().Foreground(theme.Secondary),

		ActiveBorder:   border(theme.ActiveBorder),
		InactiveBorder: border(theme.Border),
		ErrorBorder:    border(theme.Error),

		KbdKey: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Background(theme.Dim).
			Padding(0, 1),
		KbdDesc: lipgloss.NewStyle().Foreground(theme.Dim),

		Banner: lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),

		SummaryKey:   lipgloss.NewStyle().Foreground(theme.Secondary).Width(12),
		SummaryValue: lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		BorderedBox:  border(theme.Border),

		StepBadgeComplete: badge(theme.Success, white),
		StepBadgeActive:   badge(theme.Accent, white),
		StepBadgePending:  lipgloss.NewStyle().Background(theme.Border).Foreground(theme.Secondary).Padding(0, 1),
		VersionPill:       badge(theme.Accent, white),
	}
}
