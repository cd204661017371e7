package ui

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"ticketdesk/internal/api"
	"ticketdesk/internal/domain"
)

// runForm executes cmd, feeding async results back into the form, and
// returns every other non-timer message.
func runForm(f *TicketForm, cmd tea.Cmd) []tea.Msg {
	var out []tea.Msg
	for _, msg := range runCmd(cmd) {
		switch msg.(type) {
		case classifyDoneMsg, createDoneMsg:
			_, next := f.Update(msg)
			out = append(out, runForm(f, next)...)
		default:
			if !isTimerMsg(msg) {
				out = append(out, msg)
			}
		}
	}
	return out
}

func fillForm(f *TicketForm, title, desc string) {
	f.title.SetValue(title)
	f.description.SetValue(desc)
}

func TestTicketFormDefaults(t *testing.T) {
	f := NewTicketForm(api.NewMockClient())
	v := f.Values()
	if v.Title != "" || v.Description != "" || v.Category != domain.CategoryGeneral || v.Priority != domain.PriorityMedium {
		t.Fatalf("unexpected defaults: %+v", v)
	}
	if f.State() != FormIdle {
		t.Fatalf("state = %v, want idle", f.State())
	}
}

func TestTicketFormRequiresTitleAndDescription(t *testing.T) {
	mock := api.NewMockClient()
	f := NewTicketForm(mock)
	fillForm(f, "   ", "something broke")

	if cmd := f.Submit(); cmd != nil {
		t.Fatal("invalid form must not issue a request")
	}
	if f.State() != FormError || f.ErrorText() != domain.RequiredFieldsMessage {
		t.Fatalf("state=%v err=%q", f.State(), f.ErrorText())
	}
	if mock.Calls()["CreateTicket"] != 0 {
		t.Fatal("create must not be called")
	}
	mustContain(t, plainView(f), domain.RequiredFieldsMessage)
}

func TestTicketFormClassifiesWhenDescriptionLosesFocus(t *testing.T) {
	mock := api.NewMockClient()
	mock.ClassifyFn = func(_ context.Context, desc string) (domain.Suggestion, error) {
		return domain.Suggestion{SuggestedCategory: domain.CategoryTechnical, SuggestedPriority: domain.PriorityHigh}, nil
	}
	f := NewTicketForm(mock)
	f.Focus(false)
	f.Advance(1) // description
	fillForm(f, "", "The VPN drops every hour")

	_, cmd := f.Advance(1)
	if f.State() != FormClassifying {
		t.Fatalf("state = %v, want classifying", f.State())
	}
	mustContain(t, plainView(f), "Classifying...")
	runForm(f, cmd)

	if f.State() != FormSuggested {
		t.Fatalf("state = %v, want suggested", f.State())
	}
	v := f.Values()
	if v.Category != domain.CategoryTechnical || v.Priority != domain.PriorityHigh {
		t.Fatalf("suggestion not applied: %+v", v)
	}
	if got := mock.ClassifyCallArgs; len(got) != 1 || got[0] != "The VPN drops every hour" {
		t.Fatalf("classify args = %v", got)
	}
	mustContain(t, plainView(f), "Suggested: Technical / High")
}

func TestTicketFormSkipsShortDescriptions(t *testing.T) {
	mock := api.NewMockClient()
	f := NewTicketForm(mock)
	f.Focus(false)
	f.Advance(1)
	fillForm(f, "", "  too short ")

	if cmd := f.Blur(); cmd != nil {
		runForm(f, cmd)
	}
	if mock.Calls()["Classify"] != 0 {
		t.Fatal("short description must not be classified")
	}
	if f.State() != FormIdle {
		t.Fatalf("state = %v, want idle", f.State())
	}
}

func TestTicketFormClassifyFailureKeepsSelection(t *testing.T) {
	cases := map[string]func(context.Context, string) (domain.Suggestion, error){
		"error": func(context.Context, string) (domain.Suggestion, error) {
			return domain.Suggestion{}, errors.New("boom")
		},
		"partial": func(context.Context, string) (domain.Suggestion, error) {
			return domain.Suggestion{SuggestedCategory: domain.CategoryBilling}, nil
		},
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			mock := api.NewMockClient()
			mock.ClassifyFn = fn
			f := NewTicketForm(mock)
			f.Focus(false)
			f.Advance(1)
			fillForm(f, "", "Invoice shows the wrong amount")
			runForm(f, f.Blur())

			if f.State() != FormIdle {
				t.Fatalf("state = %v, want idle", f.State())
			}
			if _, ok := f.Suggestion(); ok {
				t.Fatal("no suggestion should be shown")
			}
			v := f.Values()
			if v.Category != domain.CategoryGeneral || v.Priority != domain.PriorityMedium {
				t.Fatalf("selection changed: %+v", v)
			}
		})
	}
}

func TestTicketFormDropsClassificationAfterSubmit(t *testing.T) {
	mock := api.NewMockClient()
	mock.ClassifyFn = func(context.Context, string) (domain.Suggestion, error) {
		return domain.Suggestion{SuggestedCategory: domain.CategoryAccount, SuggestedPriority: domain.PriorityCritical}, nil
	}
	mock.CreateTicketFn = func(_ context.Context, n domain.NewTicket) (api.CreateResult, error) {
		return api.CreateResult{OK: true, StatusCode: 201, Ticket: domain.Ticket{ID: "77", Title: n.Title}}, nil
	}
	f := NewTicketForm(mock)
	f.Focus(false)
	f.Advance(1)
	fillForm(f, "Printer jam", "Paper stuck in tray two")

	classify := f.Blur()
	submit := f.Submit()
	if f.State() != FormSubmitting {
		t.Fatalf("state = %v, want submitting", f.State())
	}

	// The late classification must not touch the submitting form.
	runForm(f, classify)
	if _, ok := f.Suggestion(); ok {
		t.Fatal("late classification was applied")
	}
	if got := mock.CreateTicketCallArgs; len(got) != 0 {
		t.Fatalf("create called too early: %v", got)
	}

	msgs := runForm(f, submit)
	created := mock.CreateTicketCallArgs
	if len(created) != 1 || created[0].Category != domain.CategoryGeneral || created[0].Priority != domain.PriorityMedium {
		t.Fatalf("submitted values = %+v", created)
	}
	var got *TicketCreatedMsg
	for _, msg := range msgs {
		if c, ok := msg.(TicketCreatedMsg); ok {
			got = &c
		}
	}
	if got == nil || got.Ticket.ID != "77" {
		t.Fatalf("expected TicketCreatedMsg, got %v", msgs)
	}
	if f.State() != FormIdle || f.Values().Title != "" {
		t.Fatalf("form not reset: state=%v values=%+v", f.State(), f.Values())
	}
}

func TestTicketFormShowsBackendRejection(t *testing.T) {
	mock := api.NewMockClient()
	mock.CreateTicketFn = func(context.Context, domain.NewTicket) (api.CreateResult, error) {
		return api.CreateResult{StatusCode: 400, Errors: json.RawMessage(`{ "title": ["too long"] }`)}, nil
	}
	f := NewTicketForm(mock)
	fillForm(f, "Title", "Description")

	msgs := runForm(f, f.Submit())
	if len(msgs) != 0 {
		t.Fatalf("rejection must not emit messages: %v", msgs)
	}
	if f.State() != FormError {
		t.Fatalf("state = %v, want error", f.State())
	}
	if want := `{"title":["too long"]}`; f.ErrorText() != want {
		t.Fatalf("error text = %q, want %q", f.ErrorText(), want)
	}
	if f.Values().Title != "Title" {
		t.Fatal("values must be kept after a rejection")
	}
}

func TestTicketFormNetworkFailure(t *testing.T) {
	mock := api.NewMockClient()
	mock.CreateTicketFn = func(context.Context, domain.NewTicket) (api.CreateResult, error) {
		return api.CreateResult{}, errors.New("connection refused")
	}
	f := NewTicketForm(mock)
	fillForm(f, "Title", "Description")

	runForm(f, f.Submit())
	if f.State() != FormError || f.ErrorText() != SubmitFailedMessage {
		t.Fatalf("state=%v err=%q", f.State(), f.ErrorText())
	}
}

func TestTicketFormIgnoresDoubleSubmit(t *testing.T) {
	mock := api.NewMockClient()
	mock.CreateTicketFn = func(context.Context, domain.NewTicket) (api.CreateResult, error) {
		return api.CreateResult{OK: true, StatusCode: 201, Ticket: domain.Ticket{ID: "1"}}, nil
	}
	f := NewTicketForm(mock)
	fillForm(f, "Title", "Description")

	first := f.Submit()
	if second := f.Submit(); second != nil {
		t.Fatal("second submit while in flight must be ignored")
	}
	runForm(f, first)
	if n := mock.Calls()["CreateTicket"]; n != 1 {
		t.Fatalf("create called %d times", n)
	}
}

func TestTicketFormKeyboardSubmit(t *testing.T) {
	mock := api.NewMockClient()
	mock.CreateTicketFn = func(_ context.Context, n domain.NewTicket) (api.CreateResult, error) {
		return api.CreateResult{OK: true, StatusCode: 201, Ticket: domain.Ticket{ID: "5", Title: n.Title}}, nil
	}
	f := NewTicketForm(mock)
	f.Focus(false)

	f, _ = f.Update(keyRunes("Hi"))
	_, cmd := f.Update(keyOf(tea.KeyEnter)) // title -> description
	runForm(f, cmd)
	f, _ = f.Update(keyRunes("Laptop fan is loud"))
	_, cmd = f.Advance(1) // category; unclassifiable without a stub
	runForm(f, cmd)
	f, _ = f.Update(keyOf(tea.KeyRight))

	// general is the last category, so moving right wraps to billing.
	if got := f.Values(); got.Title != "Hi" || got.Category != domain.CategoryBilling {
		t.Fatalf("unexpected values: %+v", got)
	}

	_, cmd = f.Update(keyOf(tea.KeyCtrlS))
	msgs := runForm(f, cmd)
	if len(mock.CreateTicketCallArgs) != 1 || mock.CreateTicketCallArgs[0].Title != "Hi" {
		t.Fatalf("create args = %+v", mock.CreateTicketCallArgs)
	}
	if len(msgs) != 1 {
		t.Fatalf("expected one TicketCreatedMsg, got %v", msgs)
	}
}
