// Package theme provides the semantic colour palettes used by the ticketdesk UI.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"ticketdesk/internal/domain"
)

// Palette holds the semantic colours of one theme. Every colour is adaptive so
// light and dark terminals both stay readable.
type Palette struct {
	Primary   lipgloss.AdaptiveColor // focused borders, header
	Secondary lipgloss.AdaptiveColor // field labels
	Accent    lipgloss.AdaptiveColor // titles, ids

	Error   lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Success lipgloss.AdaptiveColor
	Info    lipgloss.AdaptiveColor

	Text      lipgloss.AdaptiveColor
	TextMuted lipgloss.AdaptiveColor

	Selected      lipgloss.AdaptiveColor // selected card background
	BorderNormal  lipgloss.AdaptiveColor
	BorderFocused lipgloss.AdaptiveColor
}

// StatusColor maps a ticket status to a palette colour.
func (p Palette) StatusColor(s domain.Status) lipgloss.AdaptiveColor {
	switch s {
	case domain.StatusOpen:
		return p.Info
	case domain.StatusInProgress:
		return p.Warning
	case domain.StatusResolved:
		return p.Success
	default:
		return p.TextMuted
	}
}

// PriorityColor maps a ticket priority to a palette colour.
func (p Palette) PriorityColor(pr domain.Priority) lipgloss.AdaptiveColor {
	switch pr {
	case domain.PriorityCritical:
		return p.Error
	case domain.PriorityHigh:
		return p.Warning
	case domain.PriorityMedium:
		return p.Info
	default:
		return p.TextMuted
	}
}
