package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ticketdesk/internal/domain"
)

type filterControl int

const (
	filterControlSearch filterControl = iota
	filterControlCategory
	filterControlPriority
	filterControlStatus
	filterControlClear
	filterControlCount
)

var (
	keyFilterClear = key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("Ctrl+X", "Clear filters"))
	keyCycleNext   = key.NewBinding(key.WithKeys("right"))
	keyCyclePrev   = key.NewBinding(key.WithKeys("left"))
	keyActivate    = key.NewBinding(key.WithKeys("enter"))
)

// FilterBar edits the list criteria. Every change emits one FilterChangedMsg
// carrying the complete new filter.
type FilterBar struct {
	search   textinput.Model
	category selector
	priority selector
	status   selector

	filter  domain.Filter
	control filterControl
	focused bool
	width   int
}

// NewFilterBar creates an empty filter bar.
func NewFilterBar() *FilterBar {
	search := textinput.New()
	search.Placeholder = "Search title or description"
	search.Prompt = ""
	search.CharLimit = domain.TitleMaxLength

	return &FilterBar{
		search:   search,
		category: newSelector("Category", stringsOf(domain.AllCategories()), titleLabel, true),
		priority: newSelector("Priority", stringsOf(domain.AllPriorities()), titleLabel, true),
		status:   newSelector("Status", stringsOf(domain.AllStatuses()), titleLabel, true),
		width:    80,
	}
}

// Filter returns the criteria currently shown.
func (b *FilterBar) Filter() domain.Filter {
	return b.filter
}

// SetFilter replaces the criteria without emitting a change.
func (b *FilterBar) SetFilter(f domain.Filter) {
	b.filter = f
	b.search.SetValue(f.Search)
	b.category.SetValue(string(f.Category))
	b.priority.SetValue(string(f.Priority))
	b.status.SetValue(string(f.Status))
}

// SetWidth sets the rendering width.
func (b *FilterBar) SetWidth(w int) {
	b.width = w
	b.search.Width = max(10, w/3)
}

// Focus gives the bar keyboard focus on its first (or last) control.
func (b *FilterBar) Focus(last bool) tea.Cmd {
	b.focused = true
	b.control = filterControlSearch
	if last {
		b.control = filterControlClear
	}
	return b.syncFocus()
}

// FocusSearch focuses the search input.
func (b *FilterBar) FocusSearch() tea.Cmd {
	b.focused = true
	b.control = filterControlSearch
	return b.syncFocus()
}

// Blur removes keyboard focus.
func (b *FilterBar) Blur() {
	b.focused = false
	b.search.Blur()
	b.syncSelectors()
}

// Advance moves focus by dir (+1/-1). It returns false when focus would leave
// the bar, leaving the current control unchanged.
func (b *FilterBar) Advance(dir int) (bool, tea.Cmd) {
	next := int(b.control) + dir
	if next < 0 || next >= int(filterControlCount) {
		return false, nil
	}
	b.control = filterControl(next)
	return true, b.syncFocus()
}

func (b *FilterBar) syncFocus() tea.Cmd {
	b.syncSelectors()
	if b.focused && b.control == filterControlSearch {
		return b.search.Focus()
	}
	b.search.Blur()
	return nil
}

func (b *FilterBar) syncSelectors() {
	b.category.focused = b.focused && b.control == filterControlCategory
	b.priority.focused = b.focused && b.control == filterControlPriority
	b.status.focused = b.focused && b.control == filterControlStatus
}

// Update handles keys while focused.
func (b *FilterBar) Update(msg tea.Msg) (*FilterBar, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !b.focused {
		return b, nil
	}

	if key.Matches(keyMsg, keyFilterClear) {
		return b, b.clear()
	}

	switch b.control {
	case filterControlSearch:
		before := b.search.Value()
		var cmd tea.Cmd
		b.search, cmd = b.search.Update(keyMsg)
		if after := b.search.Value(); after != before {
			return b, tea.Batch(cmd, b.change(domain.FilterSearch, after))
		}
		return b, cmd
	case filterControlCategory:
		return b, b.cycle(&b.category, domain.FilterCategory, keyMsg)
	case filterControlPriority:
		return b, b.cycle(&b.priority, domain.FilterPriority, keyMsg)
	case filterControlStatus:
		return b, b.cycle(&b.status, domain.FilterStatus, keyMsg)
	case filterControlClear:
		if key.Matches(keyMsg, keyActivate) {
			return b, b.clear()
		}
	}
	return b, nil
}

func (b *FilterBar) cycle(s *selector, field domain.FilterField, msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keyCycleNext):
		s.Next()
	case key.Matches(msg, keyCyclePrev):
		s.Prev()
	default:
		return nil
	}
	return b.change(field, s.Value())
}

func (b *FilterBar) change(field domain.FilterField, value string) tea.Cmd {
	b.filter = b.filter.With(field, value)
	return emit(FilterChangedMsg{Filter: b.filter})
}

// clear resets every control and emits a single change.
func (b *FilterBar) clear() tea.Cmd {
	b.filter = domain.Filter{}
	b.search.SetValue("")
	b.category.Reset()
	b.priority.Reset()
	b.status.Reset()
	return emit(FilterChangedMsg{Filter: b.filter})
}

func (b *FilterBar) View() string {
	searchLabel := styleFieldLabel(b.focused && b.control == filterControlSearch).Render("Search")
	row1 := lipgloss.JoinHorizontal(lipgloss.Left, searchLabel, b.search.View())

	clearBtn := styleButton(b.focused && b.control == filterControlClear, false).Render("Clear")
	row2 := lipgloss.JoinHorizontal(lipgloss.Center,
		b.category.View(), "  ",
		b.priority.View(), "  ",
		b.status.View(), "  ",
		clearBtn,
	)

	content := lipgloss.JoinVertical(lipgloss.Left, stylePaneTitle().Render("Filters"), row1, row2)
	return stylePane(b.focused).Width(max(20, b.width-2)).Render(content)
}
