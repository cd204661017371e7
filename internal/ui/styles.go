package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"ticketdesk/internal/domain"
	"ticketdesk/internal/ui/theme"
)

// Styles are built on demand so a theme switch takes effect on the next render.

func styleAppHeader() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Selected).
		Bold(true).
		Padding(0, 1)
}

func stylePane(focused bool) lipgloss.Style {
	t := theme.Current()
	if focused {
		return lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(t.BorderFocused).
			Padding(0, 1)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(t.BorderNormal).
		Padding(0, 1)
}

func stylePaneTitle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Primary).Bold(true)
}

func styleFieldLabel(focused bool) lipgloss.Style {
	t := theme.Current()
	s := lipgloss.NewStyle().Foreground(t.Secondary).Width(12)
	if focused {
		s = s.Foreground(t.Primary).Bold(true)
	}
	return s
}

func styleDim() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted)
}

func styleText() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Text)
}

func styleTitle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Accent).Bold(true)
}

func styleID() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Warning).Bold(true)
}

func styleError() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Error).Bold(true)
}

func styleSuccess() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Success)
}

func styleButton(focused, disabled bool) lipgloss.Style {
	t := theme.Current()
	s := lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder())
	switch {
	case disabled:
		return s.Foreground(t.TextMuted).BorderForeground(t.BorderNormal)
	case focused:
		return s.Foreground(t.Primary).BorderForeground(t.BorderFocused).Bold(true)
	default:
		return s.Foreground(t.Text).BorderForeground(t.BorderNormal)
	}
}

func styleSelectorValue(focused bool) lipgloss.Style {
	t := theme.Current()
	if focused {
		return lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(t.Text)
}

func styleCard(selected bool) lipgloss.Style {
	t := theme.Current()
	s := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderNormal).
		Padding(0, 1)
	if selected {
		s = s.BorderForeground(t.BorderFocused)
	}
	return s
}

func styleBadge(color lipgloss.AdaptiveColor) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(color).Bold(true)
}

func stylePriorityBadge(p domain.Priority) lipgloss.Style {
	return styleBadge(theme.Current().PriorityColor(p))
}

func styleStatusBadge(s domain.Status) lipgloss.Style {
	return styleBadge(theme.Current().StatusColor(s))
}

func styleCategoryBadge() lipgloss.Style {
	return styleBadge(theme.Current().Secondary)
}

func styleBar() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Primary)
}

func styleStatValue() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Accent).Bold(true)
}

func styleErrorToast() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Error).
		Foreground(t.Text).
		Padding(0, 1)
}

func styleSuccessToast() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Success).
		Foreground(t.Text).
		Padding(0, 1)
}

func styleOverlay() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderFocused).
		Padding(0, 2)
}

func styleStatusOption(selected bool) lipgloss.Style {
	t := theme.Current()
	if selected {
		return lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(t.Text)
}

func styleFooter() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted)
}

// buildMarkdownRenderer returns a glamour renderer for the given output
// format. "plain" (or any glamour failure) falls back to word wrapping.
func buildMarkdownRenderer(format string, width int) func(string) string {
	fallback := func(input string) string {
		return wordwrap.String(input, width)
	}

	style := strings.ToLower(strings.TrimSpace(format))
	switch style {
	case "", "rich", "dark":
		style = "dark"
	case "plain":
		return fallback
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fallback
	}
	return func(input string) string {
		out, err := renderer.Render(input)
		if err != nil {
			return fallback(input)
		}
		return strings.TrimSpace(out)
	}
}
