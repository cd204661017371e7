package ui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"ticketdesk/internal/api"
	"ticketdesk/internal/domain"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// cmdTimeout bounds how long a command may run before it is treated as a
// timer (cursor blink, spinner frame, toast countdown) and dropped.
const cmdTimeout = 50 * time.Millisecond

// runCmd executes cmd, flattening batches, and returns the produced messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		switch msg := msg.(type) {
		case nil:
			return nil
		case tea.BatchMsg:
			var out []tea.Msg
			for _, c := range msg {
				out = append(out, runCmd(c)...)
			}
			return out
		default:
			return []tea.Msg{msg}
		}
	case <-time.After(cmdTimeout):
		return nil
	}
}

// isTimerMsg reports messages that only drive animations.
func isTimerMsg(msg tea.Msg) bool {
	switch msg.(type) {
	case spinner.TickMsg, toastTickMsg:
		return true
	}
	return false
}

// drain feeds every message produced by cmd back into the app until the
// queue is empty. It returns true when a quit was requested.
func drain(t *testing.T, m *App, cmd tea.Cmd) bool {
	t.Helper()
	queue := runCmd(cmd)
	quit := false
	for i := 0; len(queue) > 0; i++ {
		if i > 200 {
			t.Fatal("drain: message loop did not settle")
		}
		msg := queue[0]
		queue = queue[1:]
		if isTimerMsg(msg) {
			continue
		}
		if _, ok := msg.(tea.QuitMsg); ok {
			quit = true
			continue
		}
		_, next := m.Update(msg)
		queue = append(queue, runCmd(next)...)
	}
	return quit
}

// send delivers msg to the app and drains the resulting commands.
func send(t *testing.T, m *App, msg tea.Msg) bool {
	t.Helper()
	_, cmd := m.Update(msg)
	return drain(t, m, cmd)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(kt tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: kt}
}

func sampleTickets() []domain.Ticket {
	created := time.Date(2025, 3, 1, 10, 15, 0, 0, time.UTC)
	return []domain.Ticket{
		{ID: "41", Title: "Refund request", Description: "Charged twice for March", Category: domain.CategoryBilling,
			Priority: domain.PriorityHigh, Status: domain.StatusOpen, CreatedAt: created},
		{ID: "42", Title: "VPN drops", Description: "Connection resets every hour", Category: domain.CategoryTechnical,
			Priority: domain.PriorityMedium, Status: domain.StatusOpen, CreatedAt: created},
		{ID: "43", Title: "Change email", Description: "Please update my address", Category: domain.CategoryAccount,
			Priority: domain.PriorityLow, Status: domain.StatusClosed, CreatedAt: created},
	}
}

func sampleStats() domain.Stats {
	return domain.Stats{
		TotalTickets:      3,
		OpenTickets:       2,
		AvgTicketsPerDay:  1.5,
		PriorityBreakdown: map[string]int{"low": 1, "medium": 1, "high": 1},
		CategoryBreakdown: map[string]int{"billing": 1, "technical": 1, "account": 1},
	}
}

// newMockBackend returns a mock that serves tickets and stats.
func newMockBackend(tickets []domain.Ticket) *api.MockClient {
	mock := api.NewMockClient()
	mock.ListTicketsFn = func(context.Context, domain.Filter) ([]domain.Ticket, error) {
		return tickets, nil
	}
	mock.GetStatsFn = func(context.Context) (domain.Stats, error) {
		return sampleStats(), nil
	}
	return mock
}

// newTestApp builds an App with a plain renderer and runs Init to completion.
func newTestApp(t *testing.T, mock *api.MockClient) *App {
	t.Helper()
	m, err := NewApp(Config{
		Client:       mock,
		OutputFormat: "plain",
		Clipboard:    func(string) error { return nil },
	})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	send(t, m, tea.WindowSizeMsg{Width: 120, Height: 60})
	drain(t, m, m.Init())
	return m
}

func plainView(m interface{ View() string }) string {
	return ansi.Strip(m.View())
}

func ansiPlain(s string) string {
	return ansi.Strip(s)
}

func mustContain(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected view to contain %q:\n%s", needle, haystack)
	}
}

func ticketIDs(tickets []domain.Ticket) string {
	ids := make([]string, len(tickets))
	for i, tk := range tickets {
		ids[i] = tk.ID.String()
	}
	return strings.Join(ids, ",")
}
