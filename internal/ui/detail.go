package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ticketdesk/internal/domain"
)

// detailPane shows one ticket's full description in a scrollable viewport.
type detailPane struct {
	ticket   domain.Ticket
	viewport viewport.Model
	format   string
}

func newDetailPane(t domain.Ticket, format string, width, height int) *detailPane {
	d := &detailPane{ticket: t, format: format, viewport: viewport.New(width, height)}
	d.render()
	return d
}

func (d *detailPane) SetSize(width, height int) {
	d.viewport.Width = width
	d.viewport.Height = height
	d.render()
}

func (d *detailPane) render() {
	renderer := buildMarkdownRenderer(d.format, max(20, d.viewport.Width-2))
	d.viewport.SetContent(renderer(ticketMarkdown(d.ticket)))
}

func (d *detailPane) Update(msg tea.Msg) (*detailPane, tea.Cmd) {
	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return d, cmd
}

func (d *detailPane) View() string {
	header := stylePaneTitle().Render(fmt.Sprintf("Ticket #%s", d.ticket.ID))
	footer := styleFooter().Render("j/k scroll · esc close")
	return stylePane(true).Render(lipgloss.JoinVertical(lipgloss.Left, header, d.viewport.View(), footer))
}

// ticketMarkdown renders the full ticket as markdown. The description is
// quoted verbatim; it is never truncated here.
func ticketMarkdown(t domain.Ticket) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", t.Title)
	fmt.Fprintf(&b, "| Field | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Status | %s |\n", titleLabel(string(t.Status)))
	fmt.Fprintf(&b, "| Category | %s |\n", titleLabel(string(t.Category)))
	fmt.Fprintf(&b, "| Priority | %s |\n", titleLabel(string(t.Priority)))
	fmt.Fprintf(&b, "| Created | %s |\n\n", FormatCreatedAt(t.CreatedAt))
	b.WriteString("## Description\n\n")
	b.WriteString(t.Description)
	b.WriteString("\n")
	return b.String()
}
