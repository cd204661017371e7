package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"ticketdesk/internal/api"
	"ticketdesk/internal/domain"
)

// printTicketsJSON writes the tickets matching filter as an indented JSON array.
func printTicketsJSON(ctx context.Context, w io.Writer, client api.Client, filter domain.Filter) error {
	tickets, err := client.ListTickets(ctx, filter)
	if err != nil {
		return fmt.Errorf("list tickets: %w", err)
	}
	if tickets == nil {
		tickets = []domain.Ticket{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tickets)
}
