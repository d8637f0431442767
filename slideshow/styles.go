package slideshow

import "github.com/charmbracelet/lipgloss"

const (
	padding  = 2
	maxWidth = 80
)

type styles struct {
	Base      lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Error     lipgloss.Style
	Badge     lipgloss.Style
}

func newStyles(dark bool) styles {
	main := lipgloss.Color("#1f2937")
	secondary := lipgloss.Color("#6d28d9")
	hint := lipgloss.Color("#6b7280")

	if dark {
		main = lipgloss.Color("#f9fafb")
		secondary = lipgloss.Color("#c4b5fd")
		hint = lipgloss.Color("#9ca3af")
	}

	return styles{
		Base:      lipgloss.NewStyle().Padding(1, padding),
		Main:      lipgloss.NewStyle().Bold(true).Foreground(main),
		Secondary: lipgloss.NewStyle().Foreground(secondary),
		Hint:      lipgloss.NewStyle().Foreground(hint),
		Error:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ef4444")),
		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(secondary).
			Padding(0, 1),
	}
}
