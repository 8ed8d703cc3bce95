package entryui

import (
	"fmt"
	"strings"

	"fileencryptor/consts/pages"
	"fileencryptor/stages/entry"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type Help struct {
	app     *tview.Application
	flex    *tview.Flex
	service *entry.Service
	updater *Updater

	help *tview.TextView
}

func newHelp(app *tview.Application, service *entry.Service, updater *Updater) *Help {
	return &Help{
		app:     app,
		flex:    tview.NewFlex().SetDirection(tview.FlexRow),
		service: service,
		updater: updater,
	}
}

func (a *Help) buildHelp() {
	a.flex.Clear()
	a.addItems()
	a.setFlex()
}

func (a *Help) addItems() {
	a.help = tview.NewTextView().
		SetText(a.service.Help()).
		SetScrollable(true).
		SetWrap(true)
	a.help.SetBorder(true).SetTitle("Help").SetTitleAlign(tview.AlignLeft)
	a.help.SetInputCapture(backToMenu(a.updater))
}

func (a *Help) setFlex() {
	a.flex.AddItem(a.help, 0, 1, true)
}

// >>>

type About struct {
	app     *tview.Application
	flex    *tview.Flex
	service *entry.Service
	updater *Updater

	about *tview.TextView
}

func newAbout(app *tview.Application, service *entry.Service, updater *Updater) *About {
	return &About{
		app:     app,
		flex:    tview.NewFlex().SetDirection(tview.FlexRow),
		service: service,
		updater: updater,
	}
}

func (a *About) buildAbout() {
	a.flex.Clear()
	a.addItems()
	a.setFlex()
}

func (a *About) addItems() {
	info := a.service.About()

	var b strings.Builder
	fmt.Fprintf(&b, "[white]%s[-] v%s\n\n", info.Name, info.Version)
	fmt.Fprintf(&b, "Key derivation : PBKDF2-HMAC-SHA256, %d iterations\n", info.Iterations)
	fmt.Fprintf(&b, "File overhead  : %d bytes (%d header + tag)\n\n", info.Overhead, info.HeaderSize)
	b.WriteString("Methods:\n")
	for _, alg := range info.Algorithms {
		def := ""
		if alg.Name == info.DefaultAlgorithm {
			def = " [yellow](default)[-]"
		}
		fmt.Fprintf(&b, "  %d  %-20s %s%s\n", alg.ID, alg.Label, alg.Name, def)
	}
	if info.LogPath != "" {
		fmt.Fprintf(&b, "\nLogs: %s\n", info.LogPath)
	}

	a.about = tview.NewTextView().
		SetDynamicColors(true).
		SetText(b.String())
	a.about.SetBorder(true).SetTitle("About").SetTitleAlign(tview.AlignLeft)
	a.about.SetInputCapture(backToMenu(a.updater))
}

func (a *About) setFlex() {
	a.flex.AddItem(a.about, 0, 1, true)
}

func backToMenu(updater *Updater) func(event *tcell.EventKey) *tcell.EventKey {
	return func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyESC {
			updater.switchPage(pages.Entry.MENU)
			return nil
		}
		if event.Modifiers() == tcell.ModAlt {
			switch event.Rune() {
			case 'B', 'b':
				updater.switchPage(pages.Entry.MENU)
				return nil
			}
		}
		return event
	}
}
