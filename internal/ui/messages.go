package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"ticketdesk/internal/api"
	"ticketdesk/internal/domain"
)

// FilterChangedMsg is emitted by the filter bar with the complete new criteria.
type FilterChangedMsg struct {
	Filter domain.Filter
}

// TicketCreatedMsg is emitted by the form after the backend accepted a ticket.
type TicketCreatedMsg struct {
	Ticket domain.Ticket
}

// TicketUpdatedMsg is emitted by a card with the server's copy of the ticket.
type TicketUpdatedMsg struct {
	Ticket domain.Ticket
}

// ticketsLoadedMsg carries the list response for request seq.
type ticketsLoadedMsg struct {
	seq     uint64
	tickets []domain.Ticket
	err     error
}

// statsLoadedMsg carries the stats response for mount token.
type statsLoadedMsg struct {
	token int
	stats domain.Stats
	err   error
}

type classifyDoneMsg struct {
	gen        uint64
	suggestion domain.Suggestion
	err        error
}

type createDoneMsg struct {
	gen    uint64
	result api.CreateResult
	err    error
}

type statusUpdateDoneMsg struct {
	id     domain.TicketID
	ticket domain.Ticket
	err    error
}

type toastTickMsg struct{}

func scheduleToastTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return toastTickMsg{}
	})
}
