package interactionui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode"

	"fileencryptor/consts/pages"
	"fileencryptor/stages/interaction"

	"github.com/docker/go-units"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type Files struct {
	app     *tview.Application
	flex    *tview.Flex
	updater *Updater
	service *interaction.Service
	state   *State

	fileTree    *tview.TreeView
	searchInp   *tview.InputField
	searchTable *tview.Table

	rootDir    string
	showHidden bool
	searchDone context.CancelFunc
}

func newFiles(app *tview.Application, updater *Updater, service *interaction.Service, state *State) *Files {
	f := &Files{
		app:     app,
		flex:    tview.NewFlex().SetDirection(tview.FlexRow),
		updater: updater,
		service: service,
		state:   state,
	}
	if settings := service.Settings(); settings != nil {
		f.rootDir = settings.StartDir
		f.showHidden = settings.ShowHidden
	}
	return f
}

func (s *Files) buildFiles() {
	s.stopSearch()
	s.flex.Clear()
	s.addItems()
	s.setFlex()
}

func (s *Files) addItems() {
	s.searchInp = tview.NewInputField().
		SetPlaceholder(" Search ").
		SetPlaceholderTextColor(tcell.ColorFloralWhite).
		SetFieldTextColor(tcell.ColorWhite)

	// >>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>
	if s.rootDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			s.updater.setError("Unable to find the home directory", 0)
			home = "/"
		}
		s.rootDir = home
	}
	root := tview.NewTreeNode(s.rootDir).
		SetColor(tcell.ColorRed).SetReference(s.rootDir)
	s.fileTree = tview.NewTreeView().
		SetRoot(root).
		SetCurrentNode(root)
	s.fileTree.SetBorder(true).
		SetTitle(s.treeTitle()).
		SetTitleAlign(tview.AlignLeft)

	s.searchInp.SetLabel(fmt.Sprintf(" Current: %s/ ", s.rootDir))
	s.fileTree.SetChangedFunc(func(node *tview.TreeNode) {
		ref, ok := node.GetReference().(string)
		if !ok {
			return
		}
		stat, err := os.Stat(ref)
		if err != nil {
			return
		}

		if stat.IsDir() {
			ref = fmt.Sprintf(" Current: %s/ ", ref)
		} else {
			ref = fmt.Sprintf(" Current: %s  %s ", ref, units.HumanSize(float64(stat.Size())))
		}
		s.searchInp.SetLabel(ref)
	})

	s.addToTree(root, s.rootDir)
	s.fileTree.SetSelectedFunc(func(node *tview.TreeNode) {
		ref, ok := node.GetReference().(string)
		if !ok {
			return
		}
		if len(node.GetChildren()) == 0 {
			s.addToTree(node, ref)
		} else {
			node.SetExpanded(!node.IsExpanded())
		}
	})

	// >>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>

	s.searchTable = tview.NewTable().SetSeparator(tview.Borders.Vertical)
	s.searchTable.SetBorder(true).
		SetTitle("Files").
		SetTitleAlign(tview.AlignLeft)
	s.searchTable.SetSelectedFunc(func(row, column int) {
		ref, ok := s.searchTable.GetCell(row, 0).GetReference().(string)
		if !ok {
			return
		}
		s.selectFile(ref)
	})

	// >>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>

	s.searchTable.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Modifiers() == 0 || event.Modifiers() == tcell.ModShift {
			query := []rune(s.searchInp.GetText())
			switch event.Key() {
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(query) > 0 {
					query = query[:len(query)-1]
				}
				s.processSearch(string(query))
			case tcell.KeyESC:
				query = nil
			default:
				r := event.Rune()
				if r != 0 && unicode.IsPrint(r) {
					query = append(query, r)
					s.processSearch(string(query))
				}
			}
			if len(query) == 0 {
				s.closeSearch()
				return nil
			}
		}
		return event
	})

	s.fileTree.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Modifiers() == tcell.ModAlt {
			switch event.Rune() {
			case 'H', 'h':
				s.showHidden = !s.showHidden
				s.fileTree.SetTitle(s.treeTitle())
				root.ClearChildren()
				s.addToTree(root, s.rootDir)
				return nil
			case 'B', 'b':
				s.stopSearch()
				s.updater.switchStage(pages.PAGE_L1_ENTRY)
				return nil
			}
		} else if event.Modifiers() == 0 || event.Modifiers() == tcell.ModShift {
			r := event.Rune()
			if event.Key() == tcell.KeyRune && r != 0 && unicode.IsPrint(r) {
				s.processSearch(s.searchInp.GetText() + string(r))
				return nil
			}
		}

		if event.Key() == tcell.KeyESC {
			for _, child := range root.GetChildren() {
				child.CollapseAll()
			}
		}

		return event
	})
}

func (s *Files) setFlex() {
	s.flex.
		AddItem(s.searchInp, 2, 1, false).
		AddItem(s.fileTree, 0, 1, true)
}

func (s *Files) treeTitle() string {
	title := s.state.Command.Title()
	if exts := s.state.Command.Extensions(); exts != nil {
		title += fmt.Sprintf(" %v", exts)
	}
	if s.showHidden {
		title += " (showing hidden)"
	}
	return " " + title + " "
}

// TREE FUNCTIONALITY
func (s *Files) addToTree(target *tview.TreeNode, path string) {
	info, err := os.Stat(path)
	if err != nil {
		s.updater.setError(fmt.Sprintf("Unable to open %s", filepath.Base(path)), 0)
		return
	}

	if !info.IsDir() {
		s.selectFile(path)
		return
	}

	entries, err := s.service.ListDir(s.state.Command, path, s.showHidden)
	if err != nil {
		s.updater.setError(err.Error(), 0)
		return
	}

	if len(entries) == 0 {
		target.AddChild(tview.NewTreeNode("empty").SetSelectable(false))
		return
	}

	for _, entry := range entries {
		node := tview.NewTreeNode(entry.Name).
			SetReference(entry.Path)
		if entry.IsDir {
			node.SetColor(tcell.ColorGreen)
		}
		target.AddChild(node)
	}
}

// SEARCH FUNCTIONALITY

func (s *Files) setSearchTableHeaders() {
	headers := []string{"Sr.No.", "Name", "Size", "Modified"}
	for col, h := range headers {
		cell := tview.NewTableCell(h).
			SetSelectable(false).
			SetAttributes(tcell.AttrBold)

		if col > 1 {
			cell.SetAlign(tview.AlignCenter)
		}
		if col == 1 {
			cell.SetExpansion(1)
		} else {
			cell.SetExpansion(0)
		}
		s.searchTable.SetCell(0, col, cell)
		s.searchTable.SetCell(1, col, tview.NewTableCell("").SetSelectable(false))
	}
}

func (s *Files) processSearch(query string) {
	// cancel any previous ongoing search
	s.stopSearch()

	if query == "" {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.searchDone = cancel
	results := make(chan interaction.FileEntry, 100)

	// set UI
	s.searchInp.SetText(query)
	s.flex.RemoveItem(s.fileTree)
	s.flex.RemoveItem(s.searchTable)
	s.searchTable.Clear()
	s.setSearchTableHeaders()
	s.flex.AddItem(s.searchTable, 0, 1, true)
	s.app.SetFocus(s.searchTable)
	s.searchTable.
		SetFixed(2, 0).
		SetSelectable(true, false).
		SetSelectedStyle(tcell.StyleDefault.
			Background(tcell.ColorWhite).
			Foreground(tcell.ColorBlack)).
		Select(2, 0)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case result, ok := <-results:
				if !ok {
					return
				}
				s.app.QueueUpdateDraw(func() {
					if ctx.Err() == nil {
						s.appendSearchResult(result)
					}
				})
			}
		}
	}()

	currRoot := s.rootDir
	if currNode := s.fileTree.GetCurrentNode(); currNode != nil {
		if ref, ok := currNode.GetReference().(string); ok {
			if info, err := os.Stat(ref); err == nil && info.IsDir() {
				currRoot = ref
			}
		}
	}

	go s.service.Search(ctx, s.state.Command, currRoot, query, s.showHidden, results)
}

func (s *Files) stopSearch() {
	if s.searchDone != nil {
		s.searchDone()
		s.searchDone = nil
	}
}

func (s *Files) closeSearch() {
	s.stopSearch()
	s.searchInp.SetText("")
	s.flex.RemoveItem(s.searchTable)
	s.flex.AddItem(s.fileTree, 0, 1, true)
	s.app.SetFocus(s.fileTree)
}

func (s *Files) appendSearchResult(result interaction.FileEntry) {
	i := s.searchTable.GetRowCount()
	currRow, _ := s.searchTable.GetSelection()
	s.searchTable.SetCell(i, 0, tview.NewTableCell(fmt.Sprintf(" %d  ", i-1)).SetExpansion(0).SetReference(result.Path))
	s.searchTable.SetCell(i, 1, tview.NewTableCell(fmt.Sprintf(" %s  ", tview.Escape(result.Name))).SetExpansion(1).SetAlign(tview.AlignLeft))
	s.searchTable.SetCell(i, 2, tview.NewTableCell(fmt.Sprintf("  %s  ", units.HumanSize(float64(result.Size)))).SetAlign(tview.AlignCenter).SetExpansion(0))
	s.searchTable.SetCell(i, 3, tview.NewTableCell(fmt.Sprintf("  %s ago  ", units.HumanDuration(time.Since(result.ModTime)))).SetAlign(tview.AlignCenter).SetExpansion(0))
	s.searchTable.Select(currRow, 0)
}

// SELECT
func (s *Files) selectFile(path string) {
	s.stopSearch()
	if s.state.Command == interaction.CmdEncrypt && s.service.LooksEncrypted(path) {
		msg := fmt.Sprintf("%s looks encrypted already, encrypt again?", filepath.Base(path))
		s.updater.setConfirm(msg, func(key tcell.Key) {
			s.updater.setConfirm("", nil)
			if key == tcell.KeyEnter {
				s.proceed(path)
				return
			}
			s.app.SetFocus(s.flex)
		})
		return
	}
	s.proceed(path)
}

func (s *Files) proceed(path string) {
	s.state.Path = path
	if s.state.Command.NeedsMethod() {
		s.updater.switchPage(pages.Interaction.METHOD)
		return
	}
	s.updater.switchPage(pages.Interaction.PASSPHRASE)
}
