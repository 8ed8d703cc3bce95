package interactionui

import (
	"path/filepath"
	"strings"

	"fileencryptor/consts/pages"
	"fileencryptor/stages/interaction"
	"fileencryptor/utils"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	labelPass    = "Passphrase :"
	labelConfirm = "Confirm :"
	labelShow    = "Show passphrase :"
)

type Passphrase struct {
	app     *tview.Application
	flex    *tview.Flex
	updater *Updater
	service *interaction.Service
	state   *State

	form     *tview.Form
	hint     *tview.TextView
	pass     *tview.InputField
	confirm  *tview.InputField
	show     *tview.Checkbox
	inFlight bool
}

func newPassphrase(app *tview.Application, updater *Updater, service *interaction.Service, state *State) *Passphrase {
	return &Passphrase{
		app:     app,
		flex:    tview.NewFlex().SetDirection(tview.FlexRow),
		updater: updater,
		service: service,
		state:   state,
	}
}

func (s *Passphrase) buildPassphrase() {
	s.flex.Clear()
	s.addItems()
	s.setFlex()
}

func (s *Passphrase) addItems() {
	s.hint = tview.NewTextView().
		SetDynamicColors(true).
		SetText("")

	s.form = tview.NewForm().
		AddPasswordField(labelPass, "", 40, '*', s.onChange).
		AddPasswordField(labelConfirm, "", 40, '*', s.onChange).
		AddCheckbox(labelShow, false, s.onShow).
		AddButton("Back", s.back).
		AddButton(submitLabel(s.state.Command), s.submit)
	s.form.SetBorder(true).
		SetTitle(" " + filepath.Base(s.state.Path) + " ").
		SetTitleAlign(tview.AlignLeft)

	s.pass = s.form.GetFormItemByLabel(labelPass).(*tview.InputField)
	s.confirm = s.form.GetFormItemByLabel(labelConfirm).(*tview.InputField)
	s.show = s.form.GetFormItemByLabel(labelShow).(*tview.Checkbox)

	s.form.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Modifiers() == tcell.ModAlt {
			switch event.Rune() {
			case 'S', 's':
				s.show.SetChecked(!s.show.IsChecked())
				s.onShow(s.show.IsChecked())
				return nil
			case 'B', 'b':
				s.back()
				return nil
			}
		}
		return event
	})
}

func (s *Passphrase) setFlex() {
	s.flex.
		AddItem(s.form, 11, 1, true).
		AddItem(s.hint, 1, 1, false).
		AddItem(tview.NewBox(), 0, 1, false)
}

func submitLabel(cmd interaction.Command) string {
	return strings.ToUpper(string(cmd[:1])) + string(cmd[1:])
}

func (s *Passphrase) onShow(checked bool) {
	var mask rune = '*'
	if checked {
		mask = 0
	}
	s.pass.SetMaskCharacter(mask)
	s.confirm.SetMaskCharacter(mask)
}

// onChange refreshes the strength hint while encrypting. Decrypting takes
// whatever passphrase the file was made with, so no hint there.
func (s *Passphrase) onChange(string) {
	if s.state.Command != interaction.CmdEncrypt {
		return
	}
	pwd := []byte(s.pass.GetText())
	defer utils.Zero(pwd)

	hint := utils.PassHint(pwd, filepath.Base(s.state.Path))
	if hint != "" && s.confirm.GetText() != "" && s.confirm.GetText() != s.pass.GetText() {
		hint += "  [indianred]" + interaction.MsgMismatch + "[-]"
	}
	s.hint.SetText(hint)
}

func (s *Passphrase) back() {
	if s.inFlight {
		return
	}
	if s.state.Command.NeedsMethod() {
		s.updater.switchPage(pages.Interaction.METHOD)
		return
	}
	s.state.Path = ""
	s.updater.switchPage(pages.Interaction.FILES)
}

func (s *Passphrase) submit() {
	if s.inFlight {
		return
	}
	s.inFlight = true

	req := &interaction.Request{
		Command:   s.state.Command,
		Path:      s.state.Path,
		Algorithm: s.state.Algorithm,
		Pwd:       []byte(s.pass.GetText()),
		Confirm:   []byte(s.confirm.GetText()),
	}
	s.pass.SetText("")
	s.confirm.SetText("")
	s.app.SetFocus(s.pass)

	go s.process(req)
}

func (s *Passphrase) process(req *interaction.Request) {
	s.updater.setStatus(workingLabel(req.Command), -1)
	res, err := s.service.Do(req)
	s.updater.setStatus("", 0)

	s.app.QueueUpdateDraw(func() {
		s.inFlight = false
		if err != nil {
			s.updater.setError(err.Error(), 0)
			return
		}
		s.state.Result = res
		if res.Command == interaction.CmdRead {
			s.updater.switchPage(pages.Interaction.READ)
			return
		}
		s.updater.switchPage(pages.Interaction.RESULT)
	})
}

func workingLabel(cmd interaction.Command) string {
	switch cmd {
	case interaction.CmdEncrypt:
		return "Encrypting ..."
	case interaction.CmdDecrypt:
		return "Decrypting ..."
	default:
		return "Reading ..."
	}
}
