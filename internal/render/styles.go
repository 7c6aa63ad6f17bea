package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles used to draw the board
type Styles struct {
	Title     lipgloss.Style
	Prompt    lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
	FaceDown  lipgloss.Style
	Empty     lipgloss.Style
	Header    lipgloss.Style
	Selected  lipgloss.Style
	Info      lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Win       lipgloss.Style
}

// NewStyles builds the palette against a lipgloss renderer so that the
// colour profile of that renderer is honoured.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Prompt: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		RedCard: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		BlackCard: r.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FAFAFA"}).
			Bold(true),
		FaceDown: r.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Empty: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")),
		Selected: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Info: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Success: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Error: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Win: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
	}
}

// Profile maps a colour setting ("auto", "always", "never") to a termenv
// profile. "auto" asks the terminal behind w and honours NO_COLOR.
func Profile(setting string, w io.Writer) termenv.Profile {
	switch setting {
	case "always":
		return termenv.TrueColor
	case "never":
		return termenv.Ascii
	default:
		return termenv.NewOutput(w).EnvColorProfile()
	}
}
