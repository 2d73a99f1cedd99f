package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#737373"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#fbbf24"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
)

var cliWriteLine = func(w io.Writer, msg string) error {
	_, err := fmt.Fprintln(w, msg)
	return err
}

var cliWritef = func(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func cliRenderTitle(msg string) string { return titleStyle.Render(msg) }

func cliRenderMuted(msg string) string { return mutedStyle.Render(msg) }

func cliRenderSuccess(msg string) string { return successStyle.Render("✓ " + msg) }

func cliRenderWarning(msg string) string { return warningStyle.Render("! " + msg) }

func cliRenderError(msg string) string { return errorStyle.Render("✗ " + msg) }

func cliRenderMeta(label, value string) string {
	return titleStyle.Render(label) + " " + value
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func formatSize(n int64) string {
	if n < 0 {
		return "-"
	}
	return humanize.IBytes(uint64(n))
}

func formatCreatedAt(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format("2006-01-02T15:04:05Z") + " (" + humanize.Time(t) + ")"
}

func formatDuration(d time.Duration) string {
	return d.Round(time.Millisecond).String()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
