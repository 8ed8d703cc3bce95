package entryui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type Layout struct {
	app *tview.Application

	// Elements for the layout
	title       *tview.TextView
	titleHeight int
	subtitles   *tview.TextView

	infoFlex *tview.Grid

	errorText  *tview.TextView
	statusText *tview.TextView

	tips *tview.TextView
}

func newLayout(app *tview.Application) *Layout {
	return &Layout{
		app: app,
	}
}

// initLayout sets up all the layout components like title and footer
func (s *Layout) initLayout(banner string) {
	// Title
	s.title = tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetText(banner).
		SetDynamicColors(true).
		SetTextColor(tcell.ColorWhite)
	s.titleHeight = strings.Count(banner, "\n") + 1

	// Subtitles
	s.subtitles = tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetText("Passphrase Encryption for Single Files. Nothing Leaves Your Disk.").
		SetDynamicColors(true).
		SetTextColor(tcell.ColorLightGray)

	// Used to show error messages
	s.errorText = tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetText("").
		SetDynamicColors(true).
		SetTextColor(tcell.ColorIndianRed)

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
		AddItem(s.errorText, 0, 1, 1, 1, 0, 0, false).
		AddItem(s.statusText, 0, 2, 1, 1, 0, 0, false)
}
