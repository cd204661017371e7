package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	// TitleMaxLength mirrors the backend's title validation.
	TitleMaxLength = 200
	// DescriptionPreviewLength caps descriptions shown on list cards.
	DescriptionPreviewLength = 150
	// ClassifyMinLength is the trimmed description length that triggers classification.
	ClassifyMinLength = 10
)

// RequiredFieldsMessage is shown when a ticket is submitted without title or description.
const RequiredFieldsMessage = "Title and description are required."

// TicketID is the backend-assigned identifier. It is treated as opaque:
// the backend may send it as a JSON number or string and it is echoed
// back verbatim in request paths.
type TicketID string

// UnmarshalJSON accepts both numeric and string identifiers.
func (id *TicketID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = TicketID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("ticket id: %w", err)
	}
	*id = TicketID(n.String())
	return nil
}

// String returns the identifier as text.
func (id TicketID) String() string {
	return string(id)
}

// Ticket is a snapshot of a backend ticket. The client never edits one in
// place; updates arrive as full server-returned tickets.
type Ticket struct {
	ID          TicketID  `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	Priority    Priority  `json:"priority"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewTicket carries the fields a user submits when creating a ticket.
type NewTicket struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Priority    Priority `json:"priority"`
}

// DefaultNewTicket returns the blank form values.
func DefaultNewTicket() NewTicket {
	return NewTicket{Category: DefaultCategory, Priority: DefaultPriority}
}

// Validate checks the fields the client can verify locally.
func (n NewTicket) Validate() error {
	if strings.TrimSpace(n.Title) == "" || strings.TrimSpace(n.Description) == "" {
		return validationError(RequiredFieldsMessage)
	}
	return nil
}

// TicketPatch is a partial update. Nil fields are omitted from the request.
type TicketPatch struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Category    *Category `json:"category,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
	Status      *Status   `json:"status,omitempty"`
}

// StatusPatch builds a patch carrying only the status field.
func StatusPatch(s Status) TicketPatch {
	return TicketPatch{Status: &s}
}

// IsEmpty reports whether the patch would change nothing.
func (p TicketPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Category == nil && p.Priority == nil && p.Status == nil
}

// ReplaceByID returns a copy of tickets where the entry matching updated.ID
// is replaced. Entries with other ids are returned untouched; when no entry
// matches, the copy equals the input.
func ReplaceByID(tickets []Ticket, updated Ticket) []Ticket {
	out := make([]Ticket, len(tickets))
	for i, t := range tickets {
		if t.ID == updated.ID {
			out[i] = updated
			continue
		}
		out[i] = t
	}
	return out
}

// CountOpen returns how many tickets are in the open status.
func CountOpen(tickets []Ticket) int {
	n := 0
	for _, t := range tickets {
		if t.Status.IsOpen() {
			n++
		}
	}
	return n
}
