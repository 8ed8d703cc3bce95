package interactionui

import (
	"fmt"
	"strings"
	"time"

	"fileencryptor/consts/pages"
	"fileencryptor/stages/interaction"

	"github.com/docker/go-units"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type Result struct {
	app     *tview.Application
	flex    *tview.Flex
	updater *Updater
	state   *State

	summary *tview.TextView
	buttons *tview.Form
}

func newResult(app *tview.Application, updater *Updater, state *State) *Result {
	return &Result{
		app:     app,
		flex:    tview.NewFlex().SetDirection(tview.FlexRow),
		updater: updater,
		state:   state,
	}
}

func (s *Result) buildResult() {
	s.flex.Clear()
	s.addItems()
	s.setFlex()
}

func (s *Result) addItems() {
	s.summary = tview.NewTextView().
		SetDynamicColors(true).
		SetText(summarize(s.state.Result))
	s.summary.SetBorder(true).SetTitle(" Result ").SetTitleAlign(tview.AlignLeft)

	s.buttons = tview.NewForm().
		AddButton("Main Menu", s.menu).
		AddButton("Another File", s.another).
		SetButtonsAlign(tview.AlignCenter)
	s.buttons.SetInputCapture(doneShortcuts(s.menu, s.another))
}

func (s *Result) setFlex() {
	s.flex.
		AddItem(s.summary, 9, 1, false).
		AddItem(s.buttons, 3, 1, true).
		AddItem(tview.NewBox(), 0, 1, false)
}

func (s *Result) menu() {
	s.updater.switchStage(pages.PAGE_L1_ENTRY)
}

func (s *Result) another() {
	s.state.Path = ""
	s.state.Result = nil
	s.updater.switchPage(pages.Interaction.FILES)
}

func summarize(res *interaction.Result) string {
	if res == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "[forestgreen]%s[-]\n\n", res.Message)
	fmt.Fprintf(&b, "File     : %s\n", tview.Escape(res.Path))
	if res.Algorithm != 0 {
		fmt.Fprintf(&b, "Method   : %s\n", res.Algorithm.Label())
	}
	fmt.Fprintf(&b, "Size     : %s -> %s\n", units.HumanSize(float64(res.InSize)), units.HumanSize(float64(res.OutSize)))
	fmt.Fprintf(&b, "Took     : %s\n", res.Duration.Round(time.Millisecond))
	return b.String()
}

func doneShortcuts(menu, another func()) func(event *tcell.EventKey) *tcell.EventKey {
	return func(event *tcell.EventKey) *tcell.EventKey {
		if event.Modifiers() == tcell.ModAlt {
			switch event.Rune() {
			case 'M', 'm':
				menu()
				return nil
			case 'A', 'a':
				another()
				return nil
			}
		}
		return event
	}
}
