package color

import "github.com/charmbracelet/lipgloss"

// Initialize sets the background mode the adaptive colors resolve against.
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}

var (
	accent   = lipgloss.AdaptiveColor{Light: "#1F5FAF", Dark: "#7AB8FF"}
	muted    = lipgloss.AdaptiveColor{Light: "#707070", Dark: "#8A8A9A"}
	success  = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#8BD68F"}
	warning  = lipgloss.AdaptiveColor{Light: "#B26A00", Dark: "#FFC66D"}
	danger   = lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#FF7A7A"}
	surface  = lipgloss.AdaptiveColor{Light: "#F8F8F8", Dark: "#2A2A3A"}
	backdrop = lipgloss.AdaptiveColor{Light: "#E0E0E0", Dark: "#15151F"}
)

// Dashboard
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(0, 1)

	TileStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1)

	TileFocusedStyle = TileStyle.
				BorderForeground(accent).
				Bold(true)

	TileSubtitleStyle = lipgloss.NewStyle().Foreground(muted)
)

// Schedule dialog
var (
	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Background(surface).
			Padding(0, 1)

	DialogTitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(accent)
	DialogSubtitleStyle  = lipgloss.NewStyle().Italic(true)
	JourneyTimeStyle     = lipgloss.NewStyle().Bold(true)
	JourneyDurationStyle = lipgloss.NewStyle().Foreground(muted)
	DialogErrorStyle     = lipgloss.NewStyle().Foreground(danger)
	DialogHintStyle      = lipgloss.NewStyle().Foreground(muted)

	BackdropStyle = lipgloss.NewStyle().Background(backdrop)
)

// Overlays and status bar
var (
	LogPanelTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)

	LogOverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1)

	HelpTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1)

	CenteredOverlayContainerStyle = lipgloss.NewStyle().
					Border(lipgloss.RoundedBorder()).
					BorderForeground(accent).
					Padding(1, 2)

	StatusBarStyle        = lipgloss.NewStyle().Foreground(muted).Padding(0, 1)
	StatusBarSuccessStyle = lipgloss.NewStyle().Foreground(success).Padding(0, 1)
	StatusBarErrorStyle   = lipgloss.NewStyle().Foreground(danger).Padding(0, 1)

	LogDebugStyle = lipgloss.NewStyle().Foreground(muted)
	LogWarnStyle  = lipgloss.NewStyle().Foreground(warning)
	LogErrorStyle = lipgloss.NewStyle().Foreground(danger)
)
