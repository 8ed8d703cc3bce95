package router

import (
	"fileencryptor/consts/pages"
	"fileencryptor/core"
	"fileencryptor/logger"
	"fileencryptor/stages/auxiliary"
	"fileencryptor/stages/entry"
	entryui "fileencryptor/stages/entry/tui"
	"fileencryptor/stages/interaction"
	interactionui "fileencryptor/stages/interaction/tui"

	"github.com/rivo/tview"
)

type Stages struct {
	logger   logger.Logger
	core     *core.Core
	settings *auxiliary.Settings

	app          *tview.Application
	pages        *tview.Pages
	constructors map[string]func()
	activePage   string

	entry       *entryui.AppTUI
	interaction *interactionui.AppTUI
}

func NewStages(app *tview.Application, logger logger.Logger, core *core.Core,
	settings *auxiliary.Settings) *Stages {
	s := &Stages{
		logger:       logger,
		core:         core,
		settings:     settings,
		app:          app,
		constructors: make(map[string]func()),
	}
	s.registerConstructors()

	return s
}

func (s *Stages) InitStages() (*tview.Pages, error) {
	s.pages = tview.NewPages()
	s.SwitchTo(pages.PAGE_L1_ENTRY)

	return s.pages, nil
}

// SwitchTo rebuilds the stage from scratch, so nothing selected or typed in
// an earlier visit survives.
func (s *Stages) SwitchTo(name string) {
	if s.pages.HasPage(name) {
		s.pages.RemovePage(name)
	}
	constructor, ok := s.constructors[name]
	if !ok {
		panic("internal error: constructor not found")
	}
	constructor()
	s.pages.SwitchToPage(name)
	if s.activePage != "" && s.activePage != name {
		s.pages.RemovePage(s.activePage)
	}
	s.activePage = name
	s.logger.Log(logger.DebugLevel, "switched to stage %s", name)
}

func (s *Stages) registerConstructors() {
	s.constructors[pages.PAGE_L1_ENTRY] = func() {
		entryService := entry.NewService(s.logger, s.settings)
		s.entry = entryui.NewAppTUI(s.app, entryService)
		s.entry.SetSwitchStage(s.SwitchTo)
		s.pages.AddPage(pages.PAGE_L1_ENTRY, s.entry.Flex, true, true)
	}

	operations := map[string]interaction.Command{
		pages.PAGE_L1_ENCRYPT: interaction.CmdEncrypt,
		pages.PAGE_L1_DECRYPT: interaction.CmdDecrypt,
		pages.PAGE_L1_READ:    interaction.CmdRead,
	}
	for page, cmd := range operations {
		s.constructors[page] = func() {
			interactionService := interaction.NewService(s.logger, s.core, s.settings)
			s.interaction = interactionui.NewAppTUI(s.app, interactionService, page, cmd)
			s.interaction.SetSwitchStage(s.SwitchTo)
			s.pages.AddPage(page, s.interaction.Flex, true, false)
		}
	}
}
