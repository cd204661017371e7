package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case FilterChangedMsg:
		m.filter = msg.Filter
		cmd = m.fetchTickets()
	case ticketsLoadedMsg:
		cmd = m.handleTicketsLoaded(msg)
	case TicketCreatedMsg:
		m.session.Created++
		cmd = tea.Batch(
			m.fetchTickets(),
			m.remountStats(),
			m.showToast("Created ticket #"+msg.Ticket.ID.String(), false),
		)
	case TicketUpdatedMsg:
		m.handleTicketUpdated(msg.Ticket)

	case StatusChangedMsg:
		m.statusOverlay = nil
		cmd = m.list.ChangeStatus(msg.TicketID, msg.NewStatus)
	case StatusCancelledMsg:
		m.statusOverlay = nil

	case statusUpdateDoneMsg:
		m.list, cmd = m.list.Update(msg)
	case classifyDoneMsg, createDoneMsg:
		m.form, cmd = m.form.Update(msg)
	case statsLoadedMsg:
		m.stats, cmd = m.stats.Update(msg)
	case spinner.TickMsg:
		var formCmd, statsCmd tea.Cmd
		m.form, formCmd = m.form.Update(msg)
		m.stats, statsCmd = m.stats.Update(msg)
		cmd = tea.Batch(formCmd, statsCmd)
	case toastTickMsg:
		cmd = m.handleToastTick()
	}
	return m, cmd
}

func (m *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.ForceQuit) {
		return tea.Quit
	}

	if m.statusOverlay != nil {
		var cmd tea.Cmd
		m.statusOverlay, cmd = m.statusOverlay.Update(msg)
		return cmd
	}

	if m.detail != nil {
		if key.Matches(msg, m.keys.Escape, m.keys.Enter, m.keys.Quit) {
			m.detail = nil
			return nil
		}
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.Tab):
		return m.advanceFocus(1)
	case key.Matches(msg, m.keys.ShiftTab):
		return m.advanceFocus(-1)
	}

	var cmd tea.Cmd
	switch m.focus {
	case FocusForm:
		if key.Matches(msg, m.keys.Escape) {
			return m.setFocus(FocusList, false)
		}
		m.form, cmd = m.form.Update(msg)
		return cmd
	case FocusFilter:
		if key.Matches(msg, m.keys.Escape) {
			return m.setFocus(FocusList, false)
		}
		m.filterBar, cmd = m.filterBar.Update(msg)
		return cmd
	}
	return m.handleListKey(msg)
}

func (m *App) handleListKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.list.Move(1)
	case key.Matches(msg, m.keys.Up):
		m.list.Move(-1)
	case key.Matches(msg, m.keys.PageDown):
		m.list.Move(m.list.visibleCount())
	case key.Matches(msg, m.keys.PageUp):
		m.list.Move(-m.list.visibleCount())
	case key.Matches(msg, m.keys.Enter):
		m.openDetail()
	case key.Matches(msg, m.keys.Status):
		m.openStatusOverlay()
	case key.Matches(msg, m.keys.Copy):
		return m.copySelectedID()
	case key.Matches(msg, m.keys.Refresh):
		return m.refresh()
	case key.Matches(msg, m.keys.Search):
		cmd := m.setFocus(FocusFilter, false)
		return tea.Batch(cmd, m.filterBar.FocusSearch())
	case key.Matches(msg, m.keys.Theme):
		return m.cycleTheme()
	}
	return nil
}
