package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"ticketdesk/internal/ui"
	"ticketdesk/internal/ui/theme"
)

// ExitSummary holds data for the summary printed after the TUI exits.
type ExitSummary struct {
	Version string
	Session ui.SessionInfo
}

var summaryNow = time.Now

// printExitSummary prints a two-line summary to the writer.
// This is displayed after the TUI leaves alt screen mode.
func printExitSummary(w io.Writer, summary ExitSummary) {
	palette := theme.Current()
	appStyle := lipgloss.NewStyle().Bold(true).Foreground(palette.Primary)
	dimStyle := lipgloss.NewStyle().Foreground(palette.TextMuted)
	statsStyle := lipgloss.NewStyle().Foreground(palette.Text)
	changeStyle := lipgloss.NewStyle().Foreground(palette.Success)

	versionStr := ""
	if summary.Version != "" {
		versionStr = dimStyle.Render(fmt.Sprintf(" v%s", summary.Version))
	}
	s := summary.Session
	duration := formatDuration(summaryNow().Sub(s.StartTime))
	sessionStr := dimStyle.Render(fmt.Sprintf(" • %s session", duration))

	statsStr := fmt.Sprintf("%d %s: %d Open", s.Tickets, plural(s.Tickets, "Ticket"), s.Open)

	var changes []string
	if s.Created > 0 {
		changes = append(changes, fmt.Sprintf("%d created", s.Created))
	}
	if s.StatusChanges > 0 {
		changes = append(changes, fmt.Sprintf("%d %s", s.StatusChanges, plural(s.StatusChanges, "status change")))
	}
	if len(changes) > 0 {
		statsStr += " " + changeStyle.Render("("+strings.Join(changes, ", ")+")")
	}

	_, _ = fmt.Fprintln(w, appStyle.Render("Ticketdesk")+versionStr+sessionStr)
	_, _ = fmt.Fprintln(w, statsStyle.Render(statsStr))
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// formatDuration formats a duration into a human-readable string.
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		mins := int(d.Minutes())
		secs := int(d.Seconds()) % 60
		if secs == 0 {
			return fmt.Sprintf("%dm", mins)
		}
		return fmt.Sprintf("%dm %ds", mins, secs)
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}
