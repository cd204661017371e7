package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"ticketdesk/internal/domain"
)

// filterMsgs runs cmd and returns the FilterChangedMsgs it produced.
func filterMsgs(cmd tea.Cmd) []FilterChangedMsg {
	var out []FilterChangedMsg
	for _, msg := range runCmd(cmd) {
		if fc, ok := msg.(FilterChangedMsg); ok {
			out = append(out, fc)
		}
	}
	return out
}

func TestFilterBarSearchEmitsPerKeystroke(t *testing.T) {
	bar := NewFilterBar()
	bar.Focus(false)

	var last []FilterChangedMsg
	for _, r := range "vpn" {
		var cmd tea.Cmd
		bar, cmd = bar.Update(keyRunes(string(r)))
		last = filterMsgs(cmd)
		if len(last) != 1 {
			t.Fatalf("expected one change per keystroke, got %d", len(last))
		}
	}
	if last[0].Filter.Search != "vpn" {
		t.Fatalf("search = %q, want vpn", last[0].Filter.Search)
	}
}

func TestFilterBarBackspaceToEmptyRemovesSearch(t *testing.T) {
	bar := NewFilterBar()
	bar.Focus(false)

	bar, _ = bar.Update(keyRunes("a"))
	_, cmd := bar.Update(keyOf(tea.KeyBackspace))
	msgs := filterMsgs(cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected one change, got %d", len(msgs))
	}
	if _, ok := msgs[0].Filter.Query()["search"]; ok {
		t.Fatal("empty search must be removed from the query")
	}
	if !msgs[0].Filter.IsEmpty() {
		t.Fatalf("filter should be empty, got %+v", msgs[0].Filter)
	}
}

func TestFilterBarSelectorsCycleAndMerge(t *testing.T) {
	bar := NewFilterBar()
	bar.Focus(false)

	bar.Advance(1) // category
	bar, cmd := bar.Update(keyOf(tea.KeyRight))
	msgs := filterMsgs(cmd)
	if len(msgs) != 1 || msgs[0].Filter.Category != domain.CategoryBilling {
		t.Fatalf("expected category billing, got %+v", msgs)
	}

	bar.Advance(1) // priority
	bar, cmd = bar.Update(keyOf(tea.KeyLeft))
	msgs = filterMsgs(cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected one change, got %d", len(msgs))
	}
	got := msgs[0].Filter
	if got.Category != domain.CategoryBilling || got.Priority != domain.PriorityCritical {
		t.Fatalf("merge lost a field: %+v", got)
	}

	// Cycling the priority back round to All removes it.
	_, cmd = bar.Update(keyOf(tea.KeyRight))
	msgs = filterMsgs(cmd)
	if msgs[0].Filter.Priority != "" {
		t.Fatalf("All should clear priority, got %q", msgs[0].Filter.Priority)
	}
	if _, ok := msgs[0].Filter.Query()["priority"]; ok {
		t.Fatal("cleared priority still in query")
	}
}

func TestFilterBarClearEmitsExactlyOnce(t *testing.T) {
	bar := NewFilterBar()
	bar.SetFilter(domain.Filter{Search: "x", Category: domain.CategoryAccount, Status: domain.StatusResolved})
	bar.Focus(false)

	_, cmd := bar.Update(keyOf(tea.KeyCtrlX))
	msgs := filterMsgs(cmd)
	if len(msgs) != 1 {
		t.Fatalf("clear must emit exactly one change, got %d", len(msgs))
	}
	if !msgs[0].Filter.IsEmpty() {
		t.Fatalf("clear must produce the empty filter, got %+v", msgs[0].Filter)
	}
	if bar.search.Value() != "" || bar.category.Value() != "" || bar.status.Value() != "" {
		t.Fatal("controls were not reset")
	}
}

func TestFilterBarClearButton(t *testing.T) {
	bar := NewFilterBar()
	bar.SetFilter(domain.Filter{Priority: domain.PriorityLow})
	bar.Focus(true) // lands on Clear

	_, cmd := bar.Update(keyOf(tea.KeyEnter))
	msgs := filterMsgs(cmd)
	if len(msgs) != 1 || !msgs[0].Filter.IsEmpty() {
		t.Fatalf("unexpected clear result: %+v", msgs)
	}
}

func TestFilterBarAdvanceEdges(t *testing.T) {
	bar := NewFilterBar()
	bar.Focus(false)
	if ok, _ := bar.Advance(-1); ok {
		t.Fatal("moving back from the first control should leave the bar")
	}
	for i := 0; i < int(filterControlCount)-1; i++ {
		if ok, _ := bar.Advance(1); !ok {
			t.Fatalf("advance %d should stay inside", i)
		}
	}
	if ok, _ := bar.Advance(1); ok {
		t.Fatal("moving past Clear should leave the bar")
	}
}

func TestFilterBarIgnoresKeysWhenBlurred(t *testing.T) {
	bar := NewFilterBar()
	_, cmd := bar.Update(keyRunes("x"))
	if msgs := filterMsgs(cmd); len(msgs) != 0 {
		t.Fatalf("blurred bar emitted %d changes", len(msgs))
	}
}

func TestFilterBarSetFilterReflectsControls(t *testing.T) {
	bar := NewFilterBar()
	bar.SetWidth(160)
	bar.SetFilter(domain.Filter{Search: "printer", Status: domain.StatusInProgress})
	view := plainView(bar)
	mustContain(t, view, "printer")
	mustContain(t, view, "In Progress")
}
