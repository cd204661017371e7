package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"ticketdesk/internal/api"
	"ticketdesk/internal/domain"
)

func fetchTicketsCmd(client api.Client, filter domain.Filter, seq uint64) tea.Cmd {
	return func() tea.Msg {
		tickets, err := client.ListTickets(context.Background(), filter)
		return ticketsLoadedMsg{seq: seq, tickets: tickets, err: err}
	}
}

func fetchStatsCmd(client api.Client, token int) tea.Cmd {
	return func() tea.Msg {
		stats, err := client.GetStats(context.Background())
		return statsLoadedMsg{token: token, stats: stats, err: err}
	}
}

func classifyCmd(client api.Client, description string, gen uint64) tea.Cmd {
	return func() tea.Msg {
		suggestion, err := client.Classify(context.Background(), description)
		return classifyDoneMsg{gen: gen, suggestion: suggestion, err: err}
	}
}

func createTicketCmd(client api.Client, ticket domain.NewTicket, gen uint64) tea.Cmd {
	return func() tea.Msg {
		result, err := client.CreateTicket(context.Background(), ticket)
		return createDoneMsg{gen: gen, result: result, err: err}
	}
}

func updateStatusCmd(client api.Client, id domain.TicketID, status domain.Status) tea.Cmd {
	return func() tea.Msg {
		ticket, err := client.UpdateTicket(context.Background(), id, domain.StatusPatch(status))
		return statusUpdateDoneMsg{id: id, ticket: ticket, err: err}
	}
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
