package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/qline/internal/config"
)

type Styles struct {
	Main   tcell.Style
	Cursor tcell.Style
	Marker tcell.Style
	Prompt tcell.Style
	Status tcell.Style
	Help   tcell.Style
}

func NewStyles(theme config.Theme) Styles {
	main := tcell.StyleDefault.
		Foreground(tcell.GetColor(theme.Foreground)).
		Background(tcell.GetColor(theme.Background))
	return Styles{
		Main: main,
		Cursor: tcell.StyleDefault.
			Foreground(tcell.GetColor(theme.CursorForeground)).
			Background(tcell.GetColor(theme.CursorBackground)),
		Marker: main.Foreground(tcell.GetColor(theme.MarkerForeground)),
		Prompt: main.Foreground(tcell.GetColor(theme.PromptForeground)),
		Status: tcell.StyleDefault.
			Foreground(tcell.GetColor(theme.StatusForeground)).
			Background(tcell.GetColor(theme.StatusBackground)),
		Help: tcell.StyleDefault.
			Foreground(tcell.GetColor(theme.HelpForeground)).
			Background(tcell.GetColor(theme.HelpBackground)),
	}
}
