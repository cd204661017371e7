package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"ticketdesk/internal/ui/theme"
)

// layout pushes the terminal size down to the components.
func (m *App) layout() {
	w := max(40, m.width)
	if w >= sideBySideMinWidth {
		formW := w * 3 / 5
		m.form.SetWidth(formW)
		m.stats.SetWidth(w - formW)
	} else {
		m.form.SetWidth(w)
		m.stats.SetWidth(w)
	}
	m.filterBar.SetWidth(w)
	m.list.SetSize(w, m.height/2)
	if m.detail != nil {
		m.detail.SetSize(m.detailSize())
	}
}

func (m *App) detailSize() (int, int) {
	return max(20, m.width-6), max(5, m.height-8)
}

// View implements tea.Model.
func (m *App) View() string {
	header := m.headerView()
	footer := m.footerView()
	bodyHeight := max(1, m.height-lipgloss.Height(header)-lipgloss.Height(footer))

	var body string
	switch {
	case m.statusOverlay != nil:
		body = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, m.statusOverlay.View())
	case m.detail != nil:
		body = m.detail.View()
	default:
		body = m.mainView(bodyHeight)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m *App) mainView(height int) string {
	var top string
	if m.width >= sideBySideMinWidth {
		top = lipgloss.JoinHorizontal(lipgloss.Top, m.form.View(), m.stats.View())
	} else {
		top = lipgloss.JoinVertical(lipgloss.Left, m.form.View(), m.stats.View())
	}
	filter := m.filterBar.View()

	remaining := height - lipgloss.Height(top) - lipgloss.Height(filter)
	m.list.SetSize(max(40, m.width), remaining-2)
	return lipgloss.JoinVertical(lipgloss.Left, top, filter, m.list.View())
}

func (m *App) headerView() string {
	parts := []string{"ticketdesk"}
	if m.version != "" {
		parts[0] += " v" + m.version
	}
	if desc := m.filter.Describe(); desc != "" {
		parts = append(parts, "filter: "+desc)
	}
	if m.loading {
		parts = append(parts, "loading…")
	}
	parts = append(parts, theme.CurrentName())
	return styleAppHeader().Width(max(20, m.width)).Render(strings.Join(parts, "  ·  "))
}

func (m *App) footerView() string {
	if m.toast != nil {
		if m.toast.isError {
			return styleErrorToast().Render("⚠ " + m.toast.text)
		}
		return styleSuccessToast().Render(m.toast.text)
	}

	var hints []key.Binding
	switch {
	case m.statusOverlay != nil, m.detail != nil:
		return ""
	case m.focus == FocusForm:
		hints = []key.Binding{keySubmit, m.keys.Tab, m.keys.Escape}
	case m.focus == FocusFilter:
		hints = []key.Binding{keyFilterClear, m.keys.Tab, m.keys.Escape}
	default:
		hints = m.keys.footerHints()
	}
	out := make([]string, 0, len(hints))
	for _, h := range hints {
		help := h.Help()
		out = append(out, help.Key+" "+help.Desc)
	}
	return styleFooter().Render(strings.Join(out, " · "))
}
