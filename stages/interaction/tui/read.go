package interactionui

import (
	"fmt"
	"path/filepath"

	"fileencryptor/consts/pages"

	"github.com/docker/go-units"
	"github.com/rivo/tview"
)

type Read struct {
	app     *tview.Application
	flex    *tview.Flex
	updater *Updater
	state   *State

	text *tview.TextView
}

func newRead(app *tview.Application, updater *Updater, state *State) *Read {
	return &Read{
		app:     app,
		flex:    tview.NewFlex().SetDirection(tview.FlexRow),
		updater: updater,
		state:   state,
	}
}

func (s *Read) buildRead() {
	s.flex.Clear()
	s.addItems()
	s.setFlex()
}

func (s *Read) addItems() {
	content, title := "", " Read "
	if res := s.state.Result; res != nil {
		content = res.Text
		title = fmt.Sprintf(" %s (%s) ", filepath.Base(res.Path), units.HumanSize(float64(res.OutSize)))
	}

	// plain text, markup in the file must not be interpreted
	s.text = tview.NewTextView().
		SetDynamicColors(false).
		SetRegions(false).
		SetScrollable(true).
		SetWrap(true).
		SetText(content)
	s.text.SetBorder(true).SetTitle(title).SetTitleAlign(tview.AlignLeft)
	s.text.SetInputCapture(doneShortcuts(s.menu, s.another))
}

func (s *Read) setFlex() {
	s.flex.AddItem(s.text, 0, 1, true)
}

// The text lives only in the view, it is dropped when leaving.
func (s *Read) menu() {
	s.clear()
	s.updater.switchStage(pages.PAGE_L1_ENTRY)
}

func (s *Read) another() {
	s.clear()
	s.updater.switchPage(pages.Interaction.FILES)
}

func (s *Read) clear() {
	s.text.Clear()
	s.state.Path = ""
	s.state.Result = nil
}
