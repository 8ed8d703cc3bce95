package interactionui

import (
	"fmt"
	"strings"
	"time"

	"fileencryptor/cipher"
	"fileencryptor/consts/pages"
	"fileencryptor/stages/interaction"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type AppTUI struct {
	app       *tview.Application
	pages     *tview.Pages
	Flex      *tview.Flex
	service   *interaction.Service
	updater   *Updater
	buildPage map[string]func()
	l1Page    string
	state     *State

	layout     *Layout
	files      *Files
	method     *Method
	passphrase *Passphrase
	result     *Result
	read       *Read
}

// State is what the pages of one operation hand to each other. It is only
// touched from the event loop.
type State struct {
	Command   interaction.Command
	Path      string
	Algorithm cipher.Algorithm
	Result    *interaction.Result
}

// Updater for sub-level pages
type Updater struct {
	switchPage  func(string)
	setStatus   func(string, int)
	setError    func(string, int)
	setConfirm  func(string, func(key tcell.Key))
	switchStage func(string)
}

func NewAppTUI(app *tview.Application, service *interaction.Service, l1Page string, cmd interaction.Command) *AppTUI {
	ui := &AppTUI{
		app:       app,
		pages:     tview.NewPages(),
		Flex:      tview.NewFlex(),
		service:   service,
		buildPage: make(map[string]func()),
		l1Page:    l1Page,
		state:     &State{Command: cmd},
	}
	if settings := service.Settings(); settings != nil {
		ui.state.Algorithm = settings.DefaultAlgorithm
	} else {
		ui.state.Algorithm = cipher.AESGCM
	}
	ui.updater = &Updater{
		switchPage: ui.SwitchTo,
		setStatus:  ui.SetStatus,
		setError:   ui.SetError,
		setConfirm: ui.SetConfirm,
	}

	ui.layout = newLayout(ui.app)
	ui.layout.initLayout(cmd)

	ui.files = newFiles(ui.app, ui.updater, ui.service, ui.state)
	ui.method = newMethod(ui.app, ui.updater, ui.state)
	ui.passphrase = newPassphrase(ui.app, ui.updater, ui.service, ui.state)
	ui.result = newResult(ui.app, ui.updater, ui.state)
	ui.read = newRead(ui.app, ui.updater, ui.state)

	ui.buildPage[pages.Interaction.FILES] = ui.files.buildFiles
	ui.buildPage[pages.Interaction.METHOD] = ui.method.buildMethod
	ui.buildPage[pages.Interaction.PASSPHRASE] = ui.passphrase.buildPassphrase
	ui.buildPage[pages.Interaction.RESULT] = ui.result.buildResult
	ui.buildPage[pages.Interaction.READ] = ui.read.buildRead

	ui.pages.AddPage(pages.Interaction.FILES, ui.files.flex, true, true)
	ui.pages.AddPage(pages.Interaction.METHOD, ui.method.flex, true, false)
	ui.pages.AddPage(pages.Interaction.PASSPHRASE, ui.passphrase.flex, true, false)
	ui.pages.AddPage(pages.Interaction.RESULT, ui.result.flex, true, false)
	ui.pages.AddPage(pages.Interaction.READ, ui.read.flex, true, false)

	ui.Flex.SetDirection(tview.FlexRow).
		AddItem(tview.NewBox(), 1, 1, false).
		AddItem(ui.layout.title, 1, 1, false).
		AddItem(ui.layout.subtitles, 1, 1, false).
		AddItem(tview.NewBox(), 1, 1, false).
		//
		AddItem(ui.pages, 0, 1, true).
		//
		AddItem(tview.NewBox(), 1, 1, false).
		AddItem(ui.layout.infoFlex, 1, 1, false).
		AddItem(tview.NewBox(), 1, 1, false).
		AddItem(ui.layout.tips, 2, 1, false)

	ui.SwitchTo(pages.Interaction.FILES)

	return ui
}

func (ui *AppTUI) SwitchTo(name string) {
	build, exists := ui.buildPage[name]
	if !exists {
		panic("build not found")
	}
	build()
	ui.pages.SwitchToPage(name)
	ui.app.SetFocus(ui.pages.GetPage(name))
	ui.setTips(name)
	ui.layout.setStep(ui.state)
}

// delay = 0: default time out
// delay = -1: not time out
// delay = +ve: delay time out
func (ui *AppTUI) SetError(errTxt string, delay int) {
	ui.setTimed(ui.layout.errorText, errTxt, delay)
}

// Same delays as SetError.
func (ui *AppTUI) SetStatus(txt string, delay int) {
	ui.setTimed(ui.layout.statusText, txt, delay)
}

// setTimed may be called from any goroutine. A later text is never cleared
// by the timer of an earlier one.
func (ui *AppTUI) setTimed(view *tview.TextView, txt string, delay int) {
	go ui.app.QueueUpdateDraw(func() {
		view.SetText(txt)
	})
	if txt == "" || delay == -1 {
		return
	}
	if delay < 1 {
		delay = 5
	}
	time.AfterFunc(time.Duration(delay)*time.Second, func() {
		ui.app.QueueUpdateDraw(func() {
			if view.GetText(false) == txt {
				view.SetText("")
			}
		})
	})
}

func (ui *AppTUI) SetConfirm(txt string, proceed func(key tcell.Key)) {
	if txt == "" {
		ui.layout.confirmText.SetText("")
		return
	}

	txt += " (Esc to cancel, Enter to confirm)"
	ui.layout.confirmText.SetText(txt)
	ui.layout.confirmText.SetDoneFunc(proceed)
	ui.app.SetFocus(ui.layout.confirmText)
}

func (ui *AppTUI) SetSwitchStage(fn func(string)) {
	ui.updater.switchStage = fn
}

func (ui *AppTUI) setTips(name string) {
	tips, exists := pages.TipsMap[ui.l1Page][name]
	if !exists {
		panic("tips dont exist")
	}

	text := "       "
	new := ""
	for _, tip := range tips {
		if tip.ShortCut == "" {
			new = strings.ReplaceAll(fmt.Sprintf("[yellow]~ [-]%s", tip.Label), " ", "\u00A0")
		} else {
			new = strings.ReplaceAll(fmt.Sprintf("[yellow]<%s> [-]%s", tip.ShortCut, tip.Label), " ", "\u00A0")
		}
		text += new + "       "
	}
	ui.layout.tips.SetText(text)
}
