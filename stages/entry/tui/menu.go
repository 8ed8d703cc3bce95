package entryui

import (
	"fileencryptor/consts"
	"fileencryptor/consts/pages"
	"fileencryptor/stages/entry"

	"github.com/rivo/tview"
)

type Menu struct {
	app     *tview.Application
	flex    *tview.Flex
	service *entry.Service
	updater *Updater

	entryMenu *tview.List
}

func newMenu(app *tview.Application, service *entry.Service, updater *Updater) *Menu {
	return &Menu{
		app:     app,
		flex:    tview.NewFlex(),
		service: service,
		updater: updater,
	}
}

func (s *Menu) buildMenu() {
	s.flex.Clear()
	s.addItems()
	s.setFlex()
	s.updater.setStatus("v" + consts.APP_VERSION)
}

func (s *Menu) addItems() {
	s.entryMenu = tview.NewList().
		AddItem("Encrypt", "Encrypt a file in place", '1', nil).
		AddItem("Decrypt", "Decrypt a file in place", '2', nil).
		AddItem("Read", "Show an encrypted text file without decrypting it on disk", '3', nil).
		AddItem("Help", "Instructions and usage tips", '4', nil).
		AddItem("About", "App information and version", '5', nil).
		AddItem("Quit", "Exit FileEncryptor", 'q', nil)

	s.entryMenu.SetSelectedFunc(func(idx int, mainText, secondaryText string, shortcut rune) {
		switch shortcut {
		case '1':
			s.updater.switchStage(pages.PAGE_L1_ENCRYPT)
		case '2':
			s.updater.switchStage(pages.PAGE_L1_DECRYPT)
		case '3':
			s.updater.switchStage(pages.PAGE_L1_READ)
		case '4':
			s.updater.switchPage(pages.Entry.HELP)
		case '5':
			s.updater.switchPage(pages.Entry.ABOUT)
		case 'q':
			s.service.Quit()
			s.app.Stop()
		}
	})
}

func (s *Menu) setFlex() {
	s.flex.SetDirection(tview.FlexRow).
		AddItem(s.entryMenu, (s.entryMenu.GetItemCount() * 2), 1, true)
}
