package pipeline

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/itsmostafa/conceptgraph/internal/config"
)

var (
	// titleStyle for bold blue headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("33"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for counts and paths
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// boxStyle for the summary box with rounded border
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 1)

	// headerBoxStyle for the run header
	headerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 1)

	// watchBannerStyle for re-run banners in watch mode
	watchBannerStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("255")).
				Background(lipgloss.Color("33")).
				Padding(0, 2)
)

// FormatHeader renders the run header with the effective parameters
func FormatHeader(w io.Writer, p config.Params, runID string) {
	content := fmt.Sprintf("%s %s  %s %s\n%s %s\n%s %s\n%s nodes %d  window %d  seed %d",
		dimStyle.Render("Run:"), titleStyle.Render(runID),
		dimStyle.Render("Iterations:"), titleStyle.Render(fmt.Sprintf("%d", p.Iterations)),
		dimStyle.Render("Corpus:"), p.Root,
		dimStyle.Render("Output:"), successStyle.Render(p.OutDir),
		dimStyle.Render("Limits:"), p.MaxNodes, p.Window, p.Seed,
	)

	fmt.Fprintln(w, headerBoxStyle.Render(content))
}

// FormatSummary renders the completion summary box
func FormatSummary(w io.Writer, res Result) {
	line1 := fmt.Sprintf("%s %d  %s %d  %s %.2fs",
		dimStyle.Render("Documents:"), res.Documents,
		dimStyle.Render("Terms:"), res.Terms,
		dimStyle.Render("Duration:"), res.Duration.Seconds(),
	)

	line2 := fmt.Sprintf("%s %s nodes, %s edges",
		dimStyle.Render("Graph:"),
		successStyle.Render(fmt.Sprintf("%d", res.Nodes)),
		successStyle.Render(fmt.Sprintf("%d", res.Edges)),
	)

	content := titleStyle.Render("Graph Complete") + "\n" + line1 + "\n" + line2
	fmt.Fprintln(w, boxStyle.Render(content))
}

// FormatWatchBanner renders the banner printed before each watch re-run
func FormatWatchBanner(w io.Writer, run int) {
	banner := fmt.Sprintf(" REBUILD %d ", run)
	fmt.Fprintln(w)
	fmt.Fprintln(w, watchBannerStyle.Render(banner))
	fmt.Fprintln(w)
}
