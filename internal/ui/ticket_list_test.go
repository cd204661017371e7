package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"ticketdesk/internal/api"
	"ticketdesk/internal/domain"
)

// runList executes cmd, routing status results back through the list, and
// returns the remaining non-timer messages.
func runList(l *TicketList, cmd tea.Cmd) []tea.Msg {
	var out []tea.Msg
	for _, msg := range runCmd(cmd) {
		if done, ok := msg.(statusUpdateDoneMsg); ok {
			_, next := l.Update(done)
			out = append(out, runList(l, next)...)
			continue
		}
		if !isTimerMsg(msg) {
			out = append(out, msg)
		}
	}
	return out
}

func TestTicketListEmptyMessage(t *testing.T) {
	l := NewTicketList(api.NewMockClient())
	l.SetTickets([]domain.Ticket{})
	mustContain(t, plainView(l), EmptyListMessage)
	if _, ok := l.Selected(); ok {
		t.Fatal("empty list has no selection")
	}
}

func TestTicketListRendersCardsInOrder(t *testing.T) {
	l := NewTicketList(api.NewMockClient())
	l.SetSize(100, 60)
	l.SetTickets(sampleTickets())

	view := plainView(l)
	first := strings.Index(view, "#41")
	second := strings.Index(view, "#42")
	third := strings.Index(view, "#43")
	if first < 0 || second < first || third < second {
		t.Fatalf("cards out of order:\n%s", view)
	}
	mustContain(t, view, "(3 tickets)")
	mustContain(t, view, "Refund request")
	mustContain(t, view, "[Open]")
}

func TestTicketCardTruncatesLongDescription(t *testing.T) {
	long := strings.Repeat("x", domain.DescriptionPreviewLength+20)
	card := newTicketCard(domain.Ticket{ID: "1", Title: "t", Description: long, Status: domain.StatusOpen})

	view := strings.ReplaceAll(ansiPlain(card.View(400, false)), "\n", "")
	mustContain(t, view, strings.Repeat("x", domain.DescriptionPreviewLength)+"...")
	if strings.Contains(view, strings.Repeat("x", domain.DescriptionPreviewLength+1)) {
		t.Fatal("description was not truncated")
	}
}

func TestTicketListMoveClamps(t *testing.T) {
	l := NewTicketList(api.NewMockClient())
	l.SetTickets(sampleTickets())

	l.Move(-5)
	if l.Cursor() != 0 {
		t.Fatalf("cursor = %d, want 0", l.Cursor())
	}
	l.Move(10)
	if l.Cursor() != 2 {
		t.Fatalf("cursor = %d, want 2", l.Cursor())
	}
}

func TestTicketListReplacementKeepsSelectionAndCards(t *testing.T) {
	l := NewTicketList(api.NewMockClient())
	tickets := sampleTickets()
	l.SetTickets(tickets)
	l.Move(1)
	before, _ := l.Card("42")

	// Same ids in a new order.
	l.SetTickets([]domain.Ticket{tickets[2], tickets[1], tickets[0]})
	if sel, _ := l.Selected(); sel.ID != "42" {
		t.Fatalf("selection moved to %s", sel.ID)
	}
	after, _ := l.Card("42")
	if before != after {
		t.Fatal("card for a surviving id must be reused")
	}

	l.SetTickets(tickets[:1])
	if _, ok := l.Card("42"); ok {
		t.Fatal("card for a removed id must be dropped")
	}
	if l.Cursor() != 0 {
		t.Fatalf("cursor = %d, want 0 after the selection vanished", l.Cursor())
	}
}

func TestTicketCardStatusChange(t *testing.T) {
	mock := api.NewMockClient()
	release := make(chan struct{})
	mock.UpdateTicketFn = func(_ context.Context, id domain.TicketID, patch domain.TicketPatch) (domain.Ticket, error) {
		<-release
		tk := sampleTickets()[1]
		tk.Status = *patch.Status
		return tk, nil
	}
	l := NewTicketList(mock)
	l.SetTickets(sampleTickets())

	cmd := l.ChangeStatus("42", domain.StatusResolved)
	card, _ := l.Card("42")
	if card.Control() != ControlPending || card.ShownStatus() != domain.StatusResolved {
		t.Fatalf("control=%v shown=%s", card.Control(), card.ShownStatus())
	}
	mustContain(t, ansiPlain(card.View(100, false)), "(updating…)")

	if again := l.ChangeStatus("42", domain.StatusClosed); again != nil {
		t.Fatal("a pending control must not accept another change")
	}

	close(release)
	msgs := runList(l, cmd)

	if card.Control() != ControlIdle {
		t.Fatal("control should return to idle")
	}
	if len(mock.UpdateTicketCallArgs) != 1 {
		t.Fatalf("expected one PATCH, got %d", len(mock.UpdateTicketCallArgs))
	}
	arg := mock.UpdateTicketCallArgs[0]
	if arg.ID != "42" || arg.Patch.Status == nil || *arg.Patch.Status != domain.StatusResolved {
		t.Fatalf("unexpected patch %+v", arg)
	}
	if arg.Patch.Title != nil || arg.Patch.Description != nil || arg.Patch.Category != nil || arg.Patch.Priority != nil {
		t.Fatal("patch must carry only the status")
	}
	if len(msgs) != 1 {
		t.Fatalf("expected one TicketUpdatedMsg, got %v", msgs)
	}
	updated, ok := msgs[0].(TicketUpdatedMsg)
	if !ok || updated.Ticket.Status != domain.StatusResolved {
		t.Fatalf("unexpected message %#v", msgs[0])
	}
}

func TestTicketCardStatusFailureKeepsShownStatus(t *testing.T) {
	mock := api.NewMockClient()
	mock.UpdateTicketFn = func(context.Context, domain.TicketID, domain.TicketPatch) (domain.Ticket, error) {
		return domain.Ticket{}, errors.New("503")
	}
	l := NewTicketList(mock)
	l.SetTickets(sampleTickets())

	msgs := runList(l, l.ChangeStatus("41", domain.StatusClosed))
	card, _ := l.Card("41")
	if len(msgs) != 0 {
		t.Fatalf("failure must not report upward: %v", msgs)
	}
	if card.Control() != ControlIdle {
		t.Fatal("control should return to idle after failure")
	}
	if card.ShownStatus() != domain.StatusClosed {
		t.Fatalf("shown status = %s, want the chosen value", card.ShownStatus())
	}
	if card.Ticket().Status != domain.StatusOpen {
		t.Fatal("snapshot must keep the server status")
	}

	// A refetch with an unchanged server status leaves the control alone.
	l.SetTickets(sampleTickets())
	if card.ShownStatus() != domain.StatusClosed {
		t.Fatalf("unchanged refresh reset shown status to %s", card.ShownStatus())
	}

	// A server-side change is adopted.
	moved := sampleTickets()
	moved[0].Status = domain.StatusResolved
	l.SetTickets(moved)
	if card.ShownStatus() != domain.StatusResolved {
		t.Fatalf("shown status = %s, want resolved", card.ShownStatus())
	}
}
