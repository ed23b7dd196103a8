package report

import "github.com/charmbracelet/lipgloss"

// Color constants using the ANSI 256-color palette, shared by the pretty
// formatter.
const (
	// ColorPrimary is used for headers and digests (bright blue).
	ColorPrimary = lipgloss.Color("39")

	// ColorSuccess is used for keeper paths and completed moves (green).
	ColorSuccess = lipgloss.Color("42")

	// ColorWarning is used for duplicate paths pending quarantine (orange).
	ColorWarning = lipgloss.Color("214")

	// ColorDanger is used for errors (red).
	ColorDanger = lipgloss.Color("196")

	// ColorMuted is used for secondary text (gray).
	ColorMuted = lipgloss.Color("245")
)

var (
	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// DigestStyle renders the group checksum.
	DigestStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	// KeeperStyle renders the path that stays in place.
	KeeperStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// DuplicateStyle renders paths slated for quarantine.
	DuplicateStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// ErrorStyle renders per-file failure lines.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger)

	// MutedStyle renders counts and footers.
	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// HeaderBox frames the scan summary.
	HeaderBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1).
			MarginBottom(1)
)
