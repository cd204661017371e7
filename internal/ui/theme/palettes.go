package theme

import "github.com/charmbracelet/lipgloss"

func adaptive(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// TokyoNight is the default palette.
var TokyoNight = Palette{
	Primary:       adaptive("#2e7de9", "#82aaff"),
	Secondary:     adaptive("#9854f1", "#c099ff"),
	Accent:        adaptive("#b15c00", "#ff966c"),
	Error:         adaptive("#f52a65", "#ff757f"),
	Warning:       adaptive("#8c6c3e", "#ffc777"),
	Success:       adaptive("#587539", "#c3e88d"),
	Info:          adaptive("#0db9d7", "#7dcfff"),
	Text:          adaptive("#3760bf", "#c8d3f5"),
	TextMuted:     adaptive("#848cb5", "#636da6"),
	Selected:      adaptive("#c8c9ce", "#2f334d"),
	BorderNormal:  adaptive("#a8aecb", "#3b4261"),
	BorderFocused: adaptive("#2e7de9", "#82aaff"),
}

// Dracula palette, https://draculatheme.com/contribute
var Dracula = Palette{
	Primary:       adaptive("#7e57c2", "#bd93f9"),
	Secondary:     adaptive("#c2185b", "#ff79c6"),
	Accent:        adaptive("#00838f", "#8be9fd"),
	Error:         adaptive("#d32f2f", "#ff5555"),
	Warning:       adaptive("#ef6c00", "#ffb86c"),
	Success:       adaptive("#2e7d32", "#50fa7b"),
	Info:          adaptive("#0277bd", "#8be9fd"),
	Text:          adaptive("#282a36", "#f8f8f2"),
	TextMuted:     adaptive("#6272a4", "#6272a4"),
	Selected:      adaptive("#e0e0e0", "#44475a"),
	BorderNormal:  adaptive("#bdbdbd", "#44475a"),
	BorderFocused: adaptive("#7e57c2", "#bd93f9"),
}

// Nord palette, https://www.nordtheme.com/docs/colors-and-palettes
var Nord = Palette{
	Primary:       adaptive("#5E81AC", "#88C0D0"),
	Secondary:     adaptive("#5E81AC", "#81A1C1"),
	Accent:        adaptive("#B48EAD", "#B48EAD"),
	Error:         adaptive("#BF616A", "#BF616A"),
	Warning:       adaptive("#D08770", "#EBCB8B"),
	Success:       adaptive("#A3BE8C", "#A3BE8C"),
	Info:          adaptive("#5E81AC", "#8FBCBB"),
	Text:          adaptive("#2E3440", "#ECEFF4"),
	TextMuted:     adaptive("#4C566A", "#4C566A"),
	Selected:      adaptive("#E5E9F0", "#3B4252"),
	BorderNormal:  adaptive("#D8DEE9", "#434C5E"),
	BorderFocused: adaptive("#5E81AC", "#88C0D0"),
}

func init() {
	Register("tokyonight", TokyoNight)
	Register("dracula", Dracula)
	Register("nord", Nord)
}
