package ui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"ticketdesk/internal/api"
	"ticketdesk/internal/debug"
	"ticketdesk/internal/domain"
	"ticketdesk/internal/ui/theme"
)

const (
	defaultWidth       = 100
	defaultHeight      = 32
	sideBySideMinWidth = 100
	errorToastDuration = 10 * time.Second
	infoToastDuration  = 4 * time.Second
)

// Config configures the UI application.
type Config struct {
	Client       api.Client
	OutputFormat string
	Filter       domain.Filter
	Version      string
	// SaveTheme persists a theme choice. Nil disables persistence.
	SaveTheme func(string) error
	// Clipboard copies text. Defaults to the system clipboard.
	Clipboard func(string) error
}

// FocusArea is the component that receives keys.
type FocusArea int

const (
	FocusList FocusArea = iota
	FocusForm
	FocusFilter
)

// focusRing is the tab order.
var focusRing = []FocusArea{FocusForm, FocusFilter, FocusList}

// SessionInfo summarises a session for the exit summary.
type SessionInfo struct {
	StartTime     time.Time
	Tickets       int
	Open          int
	Created       int
	StatusChanges int
}

type toast struct {
	text    string
	isError bool
	until   time.Time
}

// App is the root model. It owns the ticket collection and the active filter,
// and routes results to the components that issued them.
type App struct {
	client  api.Client
	keys    KeyMap
	version string

	tickets []domain.Ticket
	filter  domain.Filter
	// listSeq identifies the latest list request; older responses are dropped.
	listSeq uint64
	loading bool
	// statsToken identifies the current stats mount.
	statsToken int

	form      *TicketForm
	filterBar *FilterBar
	list      *TicketList
	stats     *StatsDashboard

	statusOverlay *StatusOverlay
	detail        *detailPane

	focus        FocusArea
	width        int
	height       int
	outputFormat string

	toast     *toast
	toastTick bool

	saveTheme func(string) error
	copyText  func(string) error

	session SessionInfo
}

// NewApp builds the root model.
func NewApp(cfg Config) (*App, error) {
	if cfg.Client == nil {
		return nil, fmt.Errorf("ui: client is required")
	}
	copyText := cfg.Clipboard
	if copyText == nil {
		copyText = clipboard.WriteAll
	}

	m := &App{
		client:       cfg.Client,
		keys:         DefaultKeyMap(),
		version:      cfg.Version,
		filter:       cfg.Filter,
		form:         NewTicketForm(cfg.Client),
		filterBar:    NewFilterBar(),
		list:         NewTicketList(cfg.Client),
		stats:        NewStatsDashboard(cfg.Client),
		focus:        FocusList,
		width:        defaultWidth,
		height:       defaultHeight,
		outputFormat: cfg.OutputFormat,
		saveTheme:    cfg.SaveTheme,
		copyText:     copyText,
		session:      SessionInfo{StartTime: timeNow()},
	}
	m.filterBar.SetFilter(cfg.Filter)
	m.list.SetFocused(true)
	m.layout()
	return m, nil
}

// Init fetches the list and mounts the stats dashboard.
func (m *App) Init() tea.Cmd {
	m.statsToken++
	return tea.Batch(m.fetchTickets(), m.stats.Mount(m.statsToken))
}

// Tickets returns the current collection.
func (m *App) Tickets() []domain.Ticket {
	return m.tickets
}

// Filter returns the active criteria.
func (m *App) Filter() domain.Filter {
	return m.filter
}

// Focus returns the focused component.
func (m *App) Focus() FocusArea {
	return m.focus
}

// Session returns the summary of this session so far.
func (m *App) Session() SessionInfo {
	s := m.session
	s.Tickets = len(m.tickets)
	s.Open = domain.CountOpen(m.tickets)
	return s
}

// fetchTickets issues a list request for the active filter under a new seq.
func (m *App) fetchTickets() tea.Cmd {
	m.listSeq++
	m.loading = true
	return fetchTicketsCmd(m.client, m.filter, m.listSeq)
}

// remountStats discards the dashboard snapshot and refetches.
func (m *App) remountStats() tea.Cmd {
	m.statsToken++
	return m.stats.Mount(m.statsToken)
}

func (m *App) handleTicketsLoaded(msg ticketsLoadedMsg) tea.Cmd {
	if msg.seq != m.listSeq {
		debug.L().Debug("stale ticket list dropped", zap.Uint64("seq", msg.seq), zap.Uint64("current", m.listSeq))
		return nil
	}
	m.loading = false
	if msg.err != nil {
		debug.L().Debug("list tickets failed", zap.Error(msg.err))
		return m.showToast("Could not load tickets: "+msg.err.Error(), true)
	}
	m.tickets = msg.tickets
	m.list.SetTickets(m.tickets)
	return nil
}

func (m *App) handleTicketUpdated(t domain.Ticket) {
	m.session.StatusChanges++
	m.tickets = domain.ReplaceByID(m.tickets, t)
	m.list.SetTickets(m.tickets)
	if m.detail != nil && m.detail.ticket.ID == t.ID {
		m.detail.ticket = t
		m.detail.render()
	}
}

func (m *App) showToast(text string, isError bool) tea.Cmd {
	d := infoToastDuration
	if isError {
		d = errorToastDuration
	}
	m.toast = &toast{text: text, isError: isError, until: timeNow().Add(d)}
	if m.toastTick {
		return nil
	}
	m.toastTick = true
	return scheduleToastTick()
}

func (m *App) handleToastTick() tea.Cmd {
	if m.toast == nil || !timeNow().Before(m.toast.until) {
		m.toast = nil
		m.toastTick = false
		return nil
	}
	return scheduleToastTick()
}

// setFocus moves focus to area. last places the cursor on the area's final
// control, used when tabbing backwards.
func (m *App) setFocus(area FocusArea, last bool) tea.Cmd {
	var cmds []tea.Cmd
	if m.focus == FocusForm && area != FocusForm {
		cmds = append(cmds, m.form.Blur())
	}
	if m.focus == FocusFilter && area != FocusFilter {
		m.filterBar.Blur()
	}
	m.focus = area
	m.list.SetFocused(area == FocusList)
	switch area {
	case FocusForm:
		cmds = append(cmds, m.form.Focus(last))
	case FocusFilter:
		cmds = append(cmds, m.filterBar.Focus(last))
	}
	return tea.Batch(cmds...)
}

// advanceFocus moves within the focused component first, then along the ring.
func (m *App) advanceFocus(dir int) tea.Cmd {
	switch m.focus {
	case FocusForm:
		if ok, cmd := m.form.Advance(dir); ok {
			return cmd
		}
	case FocusFilter:
		if ok, cmd := m.filterBar.Advance(dir); ok {
			return cmd
		}
	}
	idx := 0
	for i, area := range focusRing {
		if area == m.focus {
			idx = i
			break
		}
	}
	next := focusRing[(idx+dir+len(focusRing))%len(focusRing)]
	return m.setFocus(next, dir < 0)
}

func (m *App) openStatusOverlay() {
	t, ok := m.list.Selected()
	if !ok {
		return
	}
	card, ok := m.list.Card(t.ID)
	if !ok || card.Control() == ControlPending {
		return
	}
	m.statusOverlay = NewStatusOverlay(t.ID, t.Title, card.ShownStatus())
}

func (m *App) openDetail() {
	t, ok := m.list.Selected()
	if !ok {
		return
	}
	w, h := m.detailSize()
	m.detail = newDetailPane(t, m.outputFormat, w, h)
}

func (m *App) copySelectedID() tea.Cmd {
	t, ok := m.list.Selected()
	if !ok {
		return nil
	}
	if err := m.copyText(t.ID.String()); err != nil {
		return m.showToast("Copy failed: "+err.Error(), true)
	}
	return m.showToast(fmt.Sprintf("Copied '%s' to clipboard.", t.ID), false)
}

func (m *App) cycleTheme() tea.Cmd {
	name := theme.Cycle()
	if m.detail != nil {
		m.detail.render()
	}
	if m.saveTheme != nil {
		if err := m.saveTheme(name); err != nil {
			debug.L().Debug("save theme failed", zap.Error(err))
			return m.showToast("Theme: "+name+" (not saved)", true)
		}
	}
	return m.showToast("Theme: "+name, false)
}

func (m *App) refresh() tea.Cmd {
	return tea.Batch(m.fetchTickets(), m.remountStats())
}
