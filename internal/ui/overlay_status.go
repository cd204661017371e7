package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ticketdesk/internal/domain"
)

// StatusOverlay is a compact popup for picking a ticket's status.
type StatusOverlay struct {
	ticketID    domain.TicketID
	ticketTitle string
	current     domain.Status
	selected    int
	options     []domain.Status
}

// StatusChangedMsg is sent when a status choice is confirmed.
type StatusChangedMsg struct {
	TicketID  domain.TicketID
	NewStatus domain.Status
}

// StatusCancelledMsg is sent when the overlay is dismissed without a choice.
type StatusCancelledMsg struct{}

// hotkeys map a letter to a status: o=Open, i=In Progress, r=Resolved, c=Closed.
var statusHotkeys = map[string]domain.Status{
	"o": domain.StatusOpen,
	"i": domain.StatusInProgress,
	"r": domain.StatusResolved,
	"c": domain.StatusClosed,
}

// NewStatusOverlay creates a picker positioned on current.
func NewStatusOverlay(id domain.TicketID, title string, current domain.Status) *StatusOverlay {
	options := domain.AllStatuses()
	selected := current.Index()
	if selected < 0 {
		selected = 0
	}
	return &StatusOverlay{
		ticketID:    id,
		ticketTitle: title,
		current:     current,
		selected:    selected,
		options:     options,
	}
}

// Selected returns the highlighted status.
func (m *StatusOverlay) Selected() domain.Status {
	return m.options[m.selected]
}

// Update handles navigation and confirmation keys.
func (m *StatusOverlay) Update(msg tea.Msg) (*StatusOverlay, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("j", "down"))):
		m.selected = (m.selected + 1) % len(m.options)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("k", "up"))):
		m.selected = (m.selected - 1 + len(m.options)) % len(m.options)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter"))):
		return m, m.confirm()
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("esc", "q"))):
		return m, emit(StatusCancelledMsg{})
	default:
		if s, ok := statusHotkeys[keyMsg.String()]; ok {
			m.selected = s.Index()
			return m, m.confirm()
		}
	}
	return m, nil
}

func (m *StatusOverlay) confirm() tea.Cmd {
	return emit(StatusChangedMsg{TicketID: m.ticketID, NewStatus: m.options[m.selected]})
}

func (m *StatusOverlay) View() string {
	title := domain.Truncate(m.ticketTitle, 30)
	lines := []string{
		styleID().Render("#"+m.ticketID.String()) + styleDim().Render(" › ") + styleText().Render(title),
		styleDim().Render("Status"),
	}
	for i, s := range m.options {
		indicator := "○"
		if s == m.current {
			indicator = "●"
		}
		label := indicator + " " + titleLabel(string(s))
		if i == m.selected {
			label += "  ←"
		}
		lines = append(lines, styleStatusOption(i == m.selected).Render("  "+label))
	}
	lines = append(lines, "", styleFooter().Render("o/i/r/c pick · enter confirm · esc cancel"))
	return styleOverlay().Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
