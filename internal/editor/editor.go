// Package editor is the interactive shell: a Bubble Tea program wired to the
// preferences store, the format dispatcher, and the converter capability. The
// core packages stay UI-free; everything terminal-specific lives here.
package editor

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mrcise612/ZorinPad/internal/document"
	"github.com/mrcise612/ZorinPad/internal/logger"
	"github.com/mrcise612/ZorinPad/internal/prefs"
	"github.com/mrcise612/ZorinPad/internal/state"
	"github.com/mrcise612/ZorinPad/internal/styles"
)

type mode int

const (
	modeEdit mode = iota
	modeOpenPrompt
	modeSavePrompt
	modeRecent
	modeConfirmDiscard
	modeConfirmOverwrite
)

type pendingAction int

const (
	pendingNone pendingAction = iota
	pendingNew
	pendingOpen
	pendingOpenRecent
	pendingQuit
)

// loadedMsg is sent when a document load finishes
type loadedMsg struct {
	Path    string
	Content document.Content
	Err     error
}

// savedMsg is sent when a document save finishes
type savedMsg struct {
	Path string // path actually written, may differ from the requested one
	Err  error
}

type editorModel struct {
	store *prefs.Store
	prefs *prefs.Preferences
	disp  *document.Dispatcher
	log   *logger.Logger

	ta     textarea.Model
	input  textinput.Model
	recent table.Model

	mode        mode
	pending     pendingAction
	pendingPath string

	currentPath string
	markup      bool
	stamp       state.Stamp
	hasStamp    bool
	dirty       bool

	status    string
	statusErr bool
	width     int
	height    int
}

// InitModel creates the editor model, applying persisted preferences.
func InitModel(store *prefs.Store, p *prefs.Preferences, disp *document.Dispatcher, lg *logger.Logger) editorModel {
	ta := textarea.New()
	ta.Placeholder = "Start typing…"
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.ShowLineNumbers = false
	ta.Focus()

	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = styles.PromptStyle

	rt := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 3},
			{Title: "Path", Width: 70},
		}),
		table.WithFocused(true),
		table.WithHeight(prefs.RecentMax+2),
	)
	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(styles.Border)).
		BorderBottom(true).
		Bold(false)
	ts.Selected = ts.Selected.
		Foreground(lipgloss.Color(styles.Background)).
		Background(lipgloss.Color(styles.Yellow)).
		Bold(false)
	rt.SetStyles(ts)

	m := editorModel{
		store:  store,
		prefs:  p,
		disp:   disp,
		log:    lg,
		ta:     ta,
		input:  ti,
		recent: rt,
	}
	m.rebuildRecentRows()
	return m
}

func (m editorModel) Init() tea.Cmd {
	// Startup reopen, pref gated.
	if m.prefs.ReopenLast && m.prefs.LastFile != "" {
		if _, err := os.Stat(m.prefs.LastFile); err == nil {
			return tea.Batch(textarea.Blink, m.loadCmd(m.prefs.LastFile))
		}
	}
	return textarea.Blink
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ta.SetWidth(msg.Width)
		m.ta.SetHeight(msg.Height - 3)
		m.input.Width = msg.Width - 4
		return m, nil

	case loadedMsg:
		return m.applyLoaded(msg)

	case savedMsg:
		return m.applySaved(msg)

	case tea.KeyMsg:
		switch m.mode {
		case modeEdit:
			return m.updateEdit(msg)
		case modeOpenPrompt, modeSavePrompt:
			return m.updatePrompt(msg)
		case modeRecent:
			return m.updateRecent(msg)
		case modeConfirmDiscard:
			return m.updateConfirmDiscard(msg)
		case modeConfirmOverwrite:
			return m.updateConfirmOverwrite(msg)
		}
	}

	var cmd tea.Cmd
	if m.mode == modeEdit {
		m.ta, cmd = m.ta.Update(msg)
	}
	return m, cmd
}

func (m editorModel) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+q":
		if m.dirty {
			return m.confirm(pendingQuit), nil
		}
		return m, tea.Quit

	case "ctrl+n":
		if m.dirty {
			return m.confirm(pendingNew), nil
		}
		return m.doNew(), nil

	case "ctrl+o":
		if m.dirty {
			return m.confirm(pendingOpen), nil
		}
		return m.openPrompt(), nil

	case "ctrl+r":
		m.rebuildRecentRows()
		m.mode = modeRecent
		m.ta.Blur()
		return m, nil

	case "ctrl+s":
		return m.saveFlow()

	case "f2":
		return m.savePrompt(), nil

	case "ctrl+w":
		m.prefs.WordWrap = !m.prefs.WordWrap
		m.persistPrefs()
		m.setStatus(fmt.Sprintf("Word wrap: %v", m.prefs.WordWrap), false)
		return m, nil

	case "alt+=":
		m.prefs.ZoomSteps++
		m.persistPrefs()
		m.setStatus(fmt.Sprintf("Zoom: %+d", m.prefs.ZoomSteps), false)
		return m, nil

	case "alt+-":
		m.prefs.ZoomSteps--
		m.persistPrefs()
		m.setStatus(fmt.Sprintf("Zoom: %+d", m.prefs.ZoomSteps), false)
		return m, nil

	case "alt+0":
		m.prefs.ZoomSteps = 0
		m.persistPrefs()
		m.setStatus("Zoom reset", false)
		return m, nil
	}

	before := m.ta.Value()
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	if m.ta.Value() != before {
		m.dirty = true
		m.status = ""
	}
	return m, cmd
}

func (m editorModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.backToEdit(), nil

	case "enter":
		path := strings.TrimSpace(m.input.Value())
		if path == "" {
			return m.backToEdit(), nil
		}
		isOpen := m.mode == modeOpenPrompt
		next := m.backToEdit()
		if isOpen {
			return next, next.loadCmd(path)
		}
		return next, next.saveCmd(path)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m editorModel) updateRecent(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "ctrl+r":
		return m.backToEdit(), nil

	case "c":
		if err := m.store.ClearRecent(m.prefs); err != nil {
			m.log.PrefsSaveFailed(err)
		}
		m.rebuildRecentRows()
		m.setStatus("Recent files cleared", false)
		return m, nil

	case "enter":
		files := m.prefs.Recent()
		idx := m.recent.Cursor()
		if idx < 0 || idx >= len(files) {
			return m, nil
		}
		path := files[idx]
		if _, err := os.Stat(path); err != nil {
			m.setStatus("File not found: "+path, true)
			return m, nil
		}
		if m.dirty {
			next := m.confirm(pendingOpenRecent)
			next.pendingPath = path
			return next, nil
		}
		next := m.backToEdit()
		return next, next.loadCmd(path)
	}

	var cmd tea.Cmd
	m.recent, cmd = m.recent.Update(msg)
	return m, cmd
}

func (m editorModel) updateConfirmDiscard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		pending, path := m.pending, m.pendingPath
		next := m.backToEdit()
		next.dirty = false
		switch pending {
		case pendingQuit:
			return next, tea.Quit
		case pendingNew:
			return next.doNew(), nil
		case pendingOpen:
			return next.openPrompt(), nil
		case pendingOpenRecent:
			return next, next.loadCmd(path)
		}
		return next, nil

	case "n", "esc":
		return m.backToEdit(), nil
	}
	return m, nil
}

func (m editorModel) updateConfirmOverwrite(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		next := m.backToEdit()
		return next, next.saveCmd(next.currentPath)

	case "n", "esc":
		next := m.backToEdit()
		next.setStatus("Save cancelled", false)
		return next, nil
	}
	return m, nil
}

// saveFlow routes ctrl+s: prompt when untitled, warn when the file changed on
// disk since we last touched it, otherwise save in place.
func (m editorModel) saveFlow() (tea.Model, tea.Cmd) {
	if m.currentPath == "" {
		return m.savePrompt(), nil
	}

	if m.hasStamp {
		changed, err := m.stamp.Changed(m.currentPath)
		if err == nil && changed {
			m.log.ExternalChange(m.currentPath)
			m.mode = modeConfirmOverwrite
			m.ta.Blur()
			return m, nil
		}
	}

	return m, m.saveCmd(m.currentPath)
}

// loadCmd loads a document through the dispatcher.
func (m editorModel) loadCmd(path string) tea.Cmd {
	disp := m.disp
	return func() tea.Msg {
		content, err := disp.Load(path)
		return loadedMsg{Path: path, Content: content, Err: err}
	}
}

// saveCmd saves the buffer through the dispatcher, supplying both the markup
// and plain projections so the dispatcher can route by target extension.
func (m editorModel) saveCmd(path string) tea.Cmd {
	disp := m.disp
	var mk, pl string
	if m.markup {
		mk = m.ta.Value()
		pl = plainFromMarkup(mk)
	} else {
		pl = m.ta.Value()
		mk = plainToMarkup(pl)
	}
	return func() tea.Msg {
		written, err := disp.Save(path, mk, pl)
		return savedMsg{Path: written, Err: err}
	}
}

func (m editorModel) applyLoaded(msg loadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.log.FileError("open", msg.Path, msg.Err)
		if errors.Is(msg.Err, document.ErrConverterRequired) {
			m.setStatus(msg.Err.Error(), true)
		} else {
			m.setStatus("Failed to open: "+msg.Err.Error(), true)
		}
		return m, nil
	}

	m.currentPath = msg.Path
	m.markup = msg.Content.Markup
	m.ta.SetValue(msg.Content.Text)
	m.ta.CursorStart()
	m.dirty = false

	if stamp, err := state.Take(msg.Path); err == nil {
		m.stamp = stamp
		m.hasStamp = true
	} else {
		m.hasStamp = false
	}

	m.addRecent(msg.Path)
	m.log.FileOpened(msg.Path, msg.Content.Markup)
	m.setStatus("Opened: "+msg.Path, false)
	return m, nil
}

func (m editorModel) applySaved(msg savedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.log.FileError("save", msg.Path, msg.Err)
		if errors.Is(msg.Err, document.ErrConverterRequired) {
			m.setStatus(msg.Err.Error(), true)
		} else {
			m.setStatus("Failed to save: "+msg.Err.Error(), true)
		}
		return m, nil
	}

	m.currentPath = msg.Path
	m.dirty = false

	if stamp, err := state.Take(msg.Path); err == nil {
		m.stamp = stamp
		m.hasStamp = true
	} else {
		m.hasStamp = false
	}

	m.addRecent(msg.Path)
	m.log.FileSaved(msg.Path)
	m.setStatus("Saved to: "+msg.Path, false)
	return m, nil
}

func (m *editorModel) addRecent(path string) {
	if err := m.store.AddRecent(m.prefs, path); err != nil {
		m.log.PrefsSaveFailed(err)
	}
	m.rebuildRecentRows()
}

func (m *editorModel) persistPrefs() {
	if err := m.store.Save(m.prefs); err != nil {
		m.log.PrefsSaveFailed(err)
	}
}

func (m *editorModel) rebuildRecentRows() {
	files := m.prefs.Recent()
	rows := make([]table.Row, 0, len(files))
	for i, f := range files {
		rows = append(rows, table.Row{fmt.Sprintf("%d", i+1), f})
	}
	m.recent.SetRows(rows)
}

func (m *editorModel) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

func (m editorModel) confirm(p pendingAction) editorModel {
	m.pending = p
	m.pendingPath = ""
	m.mode = modeConfirmDiscard
	m.ta.Blur()
	return m
}

func (m editorModel) backToEdit() editorModel {
	m.mode = modeEdit
	m.pending = pendingNone
	m.pendingPath = ""
	m.input.Blur()
	m.input.SetValue("")
	m.ta.Focus()
	return m
}

func (m editorModel) doNew() editorModel {
	m.ta.SetValue("")
	m.currentPath = ""
	m.markup = true
	m.hasStamp = false
	m.dirty = false
	m.setStatus("New document", false)
	return m
}

func (m editorModel) openPrompt() editorModel {
	m.mode = modeOpenPrompt
	m.input.SetValue("")
	m.input.Focus()
	m.ta.Blur()
	return m
}

func (m editorModel) savePrompt() editorModel {
	m.mode = modeSavePrompt
	if m.currentPath != "" {
		m.input.SetValue(m.currentPath)
	} else {
		m.input.SetValue("untitled" + document.DefaultExt)
	}
	m.input.Focus()
	m.ta.Blur()
	return m
}
