package interactionui

import (
	"fmt"
	"path/filepath"

	"fileencryptor/stages/interaction"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type Layout struct {
	app *tview.Application

	// Elements for the layout
	title     *tview.TextView
	subtitles *tview.TextView

	infoFlex *tview.Grid

	errorText   *tview.TextView
	confirmText *tview.TextView
	statusText  *tview.TextView

	tips *tview.TextView
}

func newLayout(app *tview.Application) *Layout {
	return &Layout{
		app: app,
	}
}

// initLayout sets up all the layout components like title and footer
func (s *Layout) initLayout(cmd interaction.Command) {
	// Title
	s.title = tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetText(cmd.Title()).
		SetDynamicColors(true).
		SetTextColor(tcell.ColorWhite)

	// Subtitles, the current selection
	s.subtitles = tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetText("").
		SetDynamicColors(true).
		SetTextColor(tcell.ColorLightGray)

	// Used to show error messages
	s.errorText = tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetText("").
		SetDynamicColors(true).
		SetTextColor(tcell.ColorIndianRed)

	// Used to show confirmation messages
	s.confirmText = tview.NewTextView().
		SetTextAlign(tview.AlignLeft).
		SetText("").
		SetDynamicColors(true).
		SetTextColor(tcell.ColorLightGray)

	// Used to show status messages
	s.statusText = tview.NewTextView().
		SetTextAlign(tview.AlignRight).
		SetText("").
		SetDynamicColors(true).
		SetTextColor(tcell.ColorForestGreen)

	s.tips = tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetText("").
		SetDynamicColors(true).
		SetTextColor(tcell.ColorDarkGreen).SetWrap(true).SetWordWrap(true)

	s.infoFlex = tview.NewGrid().
		SetRows(1).
		SetColumns(0, 0, 0).
		AddItem(s.confirmText, 0, 0, 1, 1, 0, 0, false).
		AddItem(s.errorText, 0, 1, 1, 1, 0, 0, false).
		AddItem(s.statusText, 0, 2, 1, 1, 0, 0, false)
}

func (s *Layout) setStep(state *State) {
	if state.Path == "" {
		s.subtitles.SetText("Select a file")
		return
	}
	text := fmt.Sprintf("File: [white]%s[-]", tview.Escape(filepath.Base(state.Path)))
	if state.Command.NeedsMethod() {
		text += fmt.Sprintf("   Method: [white]%s[-]", state.Algorithm.Label())
	}
	s.subtitles.SetText(text)
}
