package interactionui

import (
	"fileencryptor/cipher"
	"fileencryptor/consts/pages"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type Method struct {
	app     *tview.Application
	flex    *tview.Flex
	updater *Updater
	state   *State

	methods *tview.List
}

func newMethod(app *tview.Application, updater *Updater, state *State) *Method {
	return &Method{
		app:     app,
		flex:    tview.NewFlex().SetDirection(tview.FlexRow),
		updater: updater,
		state:   state,
	}
}

func (s *Method) buildMethod() {
	s.flex.Clear()
	s.addItems()
	s.setFlex()
}

var methodNotes = map[cipher.Algorithm]string{
	cipher.AESGCM:           "Default choice, fast with AES hardware",
	cipher.AESGCMSIV:        "Tolerates nonce reuse",
	cipher.ChaCha20Poly1305: "Fast without AES hardware",
}

func (s *Method) addItems() {
	s.methods = tview.NewList()
	for i, alg := range cipher.Algorithms {
		s.methods.AddItem(alg.Label(), methodNotes[alg], rune('1'+i), nil)
		if alg == s.state.Algorithm {
			s.methods.SetCurrentItem(i)
		}
	}
	s.methods.SetBorder(true).SetTitle(" Select Method ").SetTitleAlign(tview.AlignLeft)

	s.methods.SetSelectedFunc(func(idx int, mainText, secondaryText string, shortcut rune) {
		s.state.Algorithm = cipher.Algorithms[idx]
		s.updater.switchPage(pages.Interaction.PASSPHRASE)
	})

	s.methods.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Modifiers() == tcell.ModAlt {
			switch event.Rune() {
			case 'B', 'b':
				s.state.Path = ""
				s.updater.switchPage(pages.Interaction.FILES)
				return nil
			}
		}
		return event
	})
}

func (s *Method) setFlex() {
	s.flex.
		AddItem(s.methods, (s.methods.GetItemCount()*2)+2, 1, true).
		AddItem(tview.NewBox(), 0, 1, false)
}
