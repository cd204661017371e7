// Package api talks to the ticket backend over HTTP.
package api

import (
	"context"
	"encoding/json"

	"ticketdesk/internal/domain"
)

// Backend paths. Every path keeps its trailing slash; the backend redirects
// without it.
const (
	ticketsPath  = "/api/tickets/"
	statsPath    = "/api/tickets/stats/"
	classifyPath = "/api/tickets/classify/"
)

// Client is the set of backend operations the UI depends on.
type Client interface {
	// ListTickets returns tickets matching the filter, in backend order.
	ListTickets(ctx context.Context, filter domain.Filter) ([]domain.Ticket, error)
	// CreateTicket submits a new ticket. A backend rejection is reported in
	// the result rather than as an error.
	CreateTicket(ctx context.Context, ticket domain.NewTicket) (CreateResult, error)
	// UpdateTicket applies a partial update and returns the server's ticket.
	UpdateTicket(ctx context.Context, id domain.TicketID, patch domain.TicketPatch) (domain.Ticket, error)
	// GetStats returns the aggregate statistics snapshot.
	GetStats(ctx context.Context) (domain.Stats, error)
	// Classify asks the backend to suggest a category and priority.
	Classify(ctx context.Context, description string) (domain.Suggestion, error)
}

// CreateResult reports the outcome of CreateTicket. When OK is false, Errors
// holds the backend payload verbatim.
type CreateResult struct {
	OK         bool
	StatusCode int
	Ticket     domain.Ticket
	Errors     json.RawMessage
}

// ErrorText renders the rejection payload as compact JSON for display.
func (r CreateResult) ErrorText() string {
	if len(r.Errors) == 0 {
		return "null"
	}
	return compactJSON(r.Errors)
}
