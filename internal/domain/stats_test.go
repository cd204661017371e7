package domain

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestBarWidth(t *testing.T) {
	cases := map[int]int{
		-1: 0,
		0:  0,
		1:  10,
		5:  50,
		20: 200,
		25: 200,
	}
	for count, want := range cases {
		if got := BarWidth(count); got != want {
			t.Errorf("BarWidth(%d) = %d, want %d", count, got, want)
		}
	}
	if got := BarCells(25); got != 20 {
		t.Errorf("BarCells(25) = %d, want 20", got)
	}
	if got := BarCells(5); got != 5 {
		t.Errorf("BarCells(5) = %d, want 5", got)
	}
}

func TestStatsKeysAreExactlySupplied(t *testing.T) {
	payload := `{"total_tickets":10,"open_tickets":3,"avg_tickets_per_day":1.4,
		"priority_breakdown":{"low":2,"high":1},"category_breakdown":{"general":3}}`

	var stats Stats
	if err := json.Unmarshal([]byte(payload), &stats); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if stats.TotalTickets != 10 || stats.OpenTickets != 3 || stats.AvgTicketsPerDay != 1.4 {
		t.Fatalf("unexpected counters: %+v", stats)
	}
	if got := stats.PriorityKeys(); !reflect.DeepEqual(got, []string{"low", "high"}) {
		t.Fatalf("PriorityKeys() = %v", got)
	}
	if got := stats.CategoryKeys(); !reflect.DeepEqual(got, []string{"general"}) {
		t.Fatalf("CategoryKeys() = %v", got)
	}
}

func TestOrderedKeysPutsUnknownLast(t *testing.T) {
	m := map[string]int{"zeta": 1, "critical": 4, "alpha": 2, "low": 1}
	got := OrderedKeys(m, []string{"low", "medium", "high", "critical"})
	want := []string{"low", "critical", "alpha", "zeta"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("OrderedKeys = %v, want %v", got, want)
	}
}

func TestSuggestionComplete(t *testing.T) {
	cases := []struct {
		s    Suggestion
		want bool
	}{
		{Suggestion{SuggestedCategory: CategoryTechnical, SuggestedPriority: PriorityHigh}, true},
		{Suggestion{SuggestedCategory: CategoryTechnical}, false},
		{Suggestion{SuggestedPriority: PriorityHigh}, false},
		{Suggestion{}, false},
		{Suggestion{SuggestedCategory: "sales", SuggestedPriority: PriorityHigh}, false},
	}
	for _, tc := range cases {
		if got := tc.s.Complete(); got != tc.want {
			t.Errorf("%+v.Complete() = %v, want %v", tc.s, got, tc.want)
		}
	}
}

func TestShouldClassify(t *testing.T) {
	if ShouldClassify("   short    ") {
		t.Fatal("trimmed length below 10 must not classify")
	}
	if !ShouldClassify("  0123456789  ") {
		t.Fatal("trimmed length of 10 must classify")
	}
}
