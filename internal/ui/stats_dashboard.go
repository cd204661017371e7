package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"ticketdesk/internal/api"
	"ticketdesk/internal/debug"
	"ticketdesk/internal/domain"
)

const (
	StatsLoadingMessage = "Loading stats..."
	StatsFailedMessage  = "Could not load stats."
)

// DashboardState is the lifecycle of one stats mount.
type DashboardState int

const (
	DashboardLoading DashboardState = iota
	DashboardLoaded
	DashboardFailed
)

// StatsDashboard shows aggregate counts. Each mount is identified by a token;
// responses for any other token are ignored.
type StatsDashboard struct {
	client  api.Client
	token   int
	state   DashboardState
	stats   domain.Stats
	spinner spinner.Model
	width   int
}

// NewStatsDashboard creates an unmounted dashboard.
func NewStatsDashboard(client api.Client) *StatsDashboard {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return &StatsDashboard{client: client, spinner: sp, width: 40}
}

// Mount discards any snapshot and fetches stats for token.
func (d *StatsDashboard) Mount(token int) tea.Cmd {
	d.token = token
	d.state = DashboardLoading
	d.stats = domain.Stats{}
	return tea.Batch(fetchStatsCmd(d.client, token), d.spinner.Tick)
}

// State returns the current state.
func (d *StatsDashboard) State() DashboardState {
	return d.state
}

// Stats returns the loaded snapshot.
func (d *StatsDashboard) Stats() domain.Stats {
	return d.stats
}

// SetWidth sets the rendering width.
func (d *StatsDashboard) SetWidth(w int) {
	d.width = w
}

// Update applies stats results for the current mount.
func (d *StatsDashboard) Update(msg tea.Msg) (*StatsDashboard, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.token != d.token {
			debug.L().Debug("stale stats dropped", zap.Int("token", msg.token), zap.Int("current", d.token))
			return d, nil
		}
		if msg.err != nil {
			debug.L().Debug("stats fetch failed", zap.Error(msg.err))
			d.state = DashboardFailed
			return d, nil
		}
		d.stats = msg.stats
		d.state = DashboardLoaded
	case spinner.TickMsg:
		if d.state != DashboardLoading {
			return d, nil
		}
		var cmd tea.Cmd
		d.spinner, cmd = d.spinner.Update(msg)
		return d, cmd
	}
	return d, nil
}

func (d *StatsDashboard) View() string {
	title := stylePaneTitle().Render("Stats")
	var body string
	switch d.state {
	case DashboardLoading:
		body = styleDim().Render(d.spinner.View() + " " + StatsLoadingMessage)
	case DashboardFailed:
		body = styleError().Render(StatsFailedMessage)
	default:
		body = d.loadedView()
	}
	return stylePane(false).Width(max(20, d.width-2)).Render(lipgloss.JoinVertical(lipgloss.Left, title, body))
}

func (d *StatsDashboard) loadedView() string {
	s := d.stats
	counters := lipgloss.JoinHorizontal(lipgloss.Top,
		counter("Total", strconv.Itoa(s.TotalTickets)),
		counter("Open", strconv.Itoa(s.OpenTickets)),
		counter("Avg/Day", strconv.FormatFloat(s.AvgTicketsPerDay, 'f', -1, 64)),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		counters,
		"",
		breakdownView("By Priority", s.PriorityBreakdown, s.PriorityKeys()),
		"",
		breakdownView("By Category", s.CategoryBreakdown, s.CategoryKeys()),
	)
}

func counter(label, value string) string {
	return lipgloss.NewStyle().MarginRight(3).Render(
		lipgloss.JoinVertical(lipgloss.Left, styleStatValue().Render(value), styleDim().Render(label)),
	)
}

// breakdownView renders one row per supplied key with a bar of
// domain.BarCells(count) cells.
func breakdownView(title string, counts map[string]int, keys []string) string {
	rows := []string{styleText().Bold(true).Render(title)}
	labelWidth := 0
	for _, k := range keys {
		labelWidth = max(labelWidth, lipgloss.Width(titleLabel(k)))
	}
	for _, k := range keys {
		n := counts[k]
		label := lipgloss.NewStyle().Width(labelWidth + 1).Render(titleLabel(k))
		bar := styleBar().Render(strings.Repeat("█", domain.BarCells(n)))
		rows = append(rows, fmt.Sprintf("%s %s %d", label, bar, n))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
