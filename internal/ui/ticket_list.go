package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ticketdesk/internal/api"
	"ticketdesk/internal/domain"
)

// EmptyListMessage is shown when the collection is empty.
const EmptyListMessage = "No tickets found."

// TicketList renders the collection as cards. Cards are keyed by id so a
// card's control state survives list replacement.
type TicketList struct {
	client  api.Client
	tickets []domain.Ticket
	cards   map[domain.TicketID]*TicketCard

	cursor  int
	offset  int
	focused bool
	width   int
	height  int
}

// NewTicketList creates an empty list.
func NewTicketList(client api.Client) *TicketList {
	return &TicketList{
		client: client,
		cards:  make(map[domain.TicketID]*TicketCard),
		width:  80,
		height: 20,
	}
}

// SetTickets replaces the collection. Cards for ids no longer present are
// discarded; surviving cards keep their control state.
func (l *TicketList) SetTickets(tickets []domain.Ticket) {
	cards := make(map[domain.TicketID]*TicketCard, len(tickets))
	for _, t := range tickets {
		if existing, ok := l.cards[t.ID]; ok {
			existing.refresh(t)
			cards[t.ID] = existing
			continue
		}
		cards[t.ID] = newTicketCard(t)
	}

	var selectedID domain.TicketID
	if sel, ok := l.Selected(); ok {
		selectedID = sel.ID
	}
	l.tickets = tickets
	l.cards = cards

	l.cursor = 0
	for i, t := range tickets {
		if t.ID == selectedID {
			l.cursor = i
			break
		}
	}
	l.clampOffset()
}

// Tickets returns the collection as displayed.
func (l *TicketList) Tickets() []domain.Ticket {
	return l.tickets
}

// Card returns the card for id.
func (l *TicketList) Card(id domain.TicketID) (*TicketCard, bool) {
	c, ok := l.cards[id]
	return c, ok
}

// Selected returns the ticket under the cursor.
func (l *TicketList) Selected() (domain.Ticket, bool) {
	if l.cursor < 0 || l.cursor >= len(l.tickets) {
		return domain.Ticket{}, false
	}
	return l.tickets[l.cursor], true
}

// Cursor returns the selected index.
func (l *TicketList) Cursor() int {
	return l.cursor
}

// SetSize sets the rendering area.
func (l *TicketList) SetSize(width, height int) {
	l.width = width
	l.height = max(4, height)
	l.clampOffset()
}

// SetFocused toggles keyboard focus.
func (l *TicketList) SetFocused(focused bool) {
	l.focused = focused
}

// Move shifts the cursor by delta, clamped to the collection.
func (l *TicketList) Move(delta int) {
	if len(l.tickets) == 0 {
		return
	}
	l.cursor = min(max(l.cursor+delta, 0), len(l.tickets)-1)
	l.clampOffset()
}

// ChangeStatus starts a status change on the card for id.
func (l *TicketList) ChangeStatus(id domain.TicketID, s domain.Status) tea.Cmd {
	card, ok := l.cards[id]
	if !ok {
		return nil
	}
	return card.ChangeStatus(l.client, s)
}

// Update routes status results to their card.
func (l *TicketList) Update(msg tea.Msg) (*TicketList, tea.Cmd) {
	if msg, ok := msg.(statusUpdateDoneMsg); ok {
		card, found := l.cards[msg.id]
		if !found {
			return l, nil
		}
		return l, card.finish(msg)
	}
	return l, nil
}

// cardHeight is the rendered height of one card: four content lines plus
// border. Descriptions may wrap to more lines; the view accounts for that
// when filling the area.
const cardHeight = 6

func (l *TicketList) visibleCount() int {
	return max(1, l.height/cardHeight)
}

func (l *TicketList) clampOffset() {
	visible := l.visibleCount()
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+visible {
		l.offset = l.cursor - visible + 1
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

func (l *TicketList) View() string {
	title := stylePaneTitle().Render("Tickets")
	if len(l.tickets) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left, title, styleDim().Render(EmptyListMessage))
		return stylePane(l.focused).Width(max(20, l.width-2)).Render(content)
	}

	inner := max(20, l.width-4)
	var cards []string
	used := 0
	for i := l.offset; i < len(l.tickets); i++ {
		card := l.cards[l.tickets[i].ID]
		rendered := card.View(inner, l.focused && i == l.cursor)
		h := lipgloss.Height(rendered)
		if used > 0 && used+h > l.height-1 {
			break
		}
		cards = append(cards, rendered)
		used += h
	}

	header := title + styleDim().Render(" "+countLabel(len(l.tickets)))
	content := lipgloss.JoinVertical(lipgloss.Left, header, strings.Join(cards, "\n"))
	return stylePane(l.focused).Width(max(20, l.width-2)).Render(content)
}

func countLabel(n int) string {
	if n == 1 {
		return "(1 ticket)"
	}
	return fmt.Sprintf("(%d tickets)", n)
}
