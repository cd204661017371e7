package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"
	"go.uber.org/zap"

	"ticketdesk/internal/api"
	"ticketdesk/internal/debug"
	"ticketdesk/internal/domain"
)

// ControlState tracks a card's status control.
type ControlState int

const (
	ControlIdle ControlState = iota
	ControlPending
)

// TicketCard renders one ticket and owns its status control.
type TicketCard struct {
	ticket domain.Ticket

	// shown is the status displayed in the control. It follows the user's
	// choice immediately and is not rolled back when the update fails.
	shown   domain.Status
	control ControlState
}

func newTicketCard(t domain.Ticket) *TicketCard {
	return &TicketCard{ticket: t, shown: t.Status}
}

// Ticket returns the card's snapshot.
func (c *TicketCard) Ticket() domain.Ticket {
	return c.ticket
}

// ShownStatus returns the status displayed in the control.
func (c *TicketCard) ShownStatus() domain.Status {
	return c.shown
}

// Control returns the status control state.
func (c *TicketCard) Control() ControlState {
	return c.control
}

// refresh adopts a new snapshot for the same id. The shown status only
// follows the snapshot when the backend's status actually moved.
func (c *TicketCard) refresh(t domain.Ticket) {
	if c.control == ControlIdle && t.Status != c.ticket.Status {
		c.shown = t.Status
	}
	c.ticket = t
}

// ChangeStatus issues a status-only update. It is a no-op while a previous
// change is pending.
func (c *TicketCard) ChangeStatus(client api.Client, s domain.Status) tea.Cmd {
	if c.control == ControlPending {
		return nil
	}
	c.shown = s
	c.control = ControlPending
	return updateStatusCmd(client, c.ticket.ID, s)
}

// finish completes a status change and reports the server's ticket upward.
func (c *TicketCard) finish(msg statusUpdateDoneMsg) tea.Cmd {
	c.control = ControlIdle
	if msg.err != nil {
		debug.L().Debug("status update failed",
			zap.String("ticket", msg.id.String()),
			zap.String("status", string(c.shown)),
			zap.Error(msg.err),
		)
		return nil
	}
	c.ticket = msg.ticket
	c.shown = msg.ticket.Status
	return emit(TicketUpdatedMsg{Ticket: msg.ticket})
}

func (c *TicketCard) View(width int, selected bool) string {
	inner := max(10, width-4)
	t := c.ticket

	title := styleTitle().Render(ansi.Truncate(t.Title, inner-lipgloss.Width("#"+t.ID.String())-1, "…"))
	header := styleID().Render("#"+t.ID.String()) + " " + title

	desc := wordwrap.String(domain.Truncate(t.Description, domain.DescriptionPreviewLength), inner)

	badges := strings.Join([]string{
		styleCategoryBadge().Render(t.Category.Label()),
		stylePriorityBadge(t.Priority).Render(t.Priority.Label()),
		styleDim().Render(FormatCreatedAt(t.CreatedAt)),
	}, styleDim().Render(" · "))

	statusLine := styleFieldLabel(false).Render("Status") + c.statusControlView()

	body := lipgloss.JoinVertical(lipgloss.Left, header, styleText().Render(desc), badges, statusLine)
	return styleCard(selected).Width(max(12, width-2)).Render(body)
}

// statusControlView renders every status in canonical order with the shown
// one highlighted.
func (c *TicketCard) statusControlView() string {
	parts := make([]string, 0, len(domain.AllStatuses()))
	for _, s := range domain.AllStatuses() {
		label := titleLabel(string(s))
		if s == c.shown {
			parts = append(parts, styleStatusBadge(s).Render("["+label+"]"))
			continue
		}
		parts = append(parts, styleDim().Render(label))
	}
	line := strings.Join(parts, " ")
	if c.control == ControlPending {
		line += styleDim().Render(" (updating…)")
	}
	return line
}
