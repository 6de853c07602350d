package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/git-pick/internal/branch"
	"github.com/atomicstack/git-pick/internal/git"
	"github.com/atomicstack/git-pick/internal/theme"
	uistate "github.com/atomicstack/git-pick/internal/ui/state"
)

// Mode tracks which input surface owns keystrokes.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeConfirm
	ModeRename
)

// Outcome reports how the session ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeDone
	OutcomeCancelled
	OutcomeFailed
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Config wires a picker session to one subcommand's behaviour.
type Config struct {
	Repo         *git.Repository
	Title        string
	Action       branch.Action
	ActionName   string
	Scope        git.Scope
	Confirm      bool
	Force        bool
	Wrap         bool
	Fuzzy        bool
	Verbose      bool
	ShowFooter   bool
	InitialQuery string
	Width        int
	Height       int
}

// Model implements the Bubble Tea model for the branch picker.
type Model struct {
	cfg     Config
	list    *uistate.List
	loading bool

	pendingLabel string
	errMsg       string
	infoMsg      string
	infoExpire   time.Time

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	mode        Mode
	confirmItem *branch.Item
	renameForm  *branch.RenameForm

	filterCursor      cursor.Model
	filterCursorDirty bool

	outcome    Outcome
	outcomeErr error

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the picker for one subcommand. The ref snapshot is
// loaded once by Init; nothing refreshes it afterwards.
func NewModel(cfg Config) *Model {
	mode := uistate.MatchSubstring
	if cfg.Fuzzy {
		mode = uistate.MatchFuzzy
	}
	list := uistate.NewList(nil, mode)
	list.Wrap = cfg.Wrap
	m := &Model{
		cfg:     cfg,
		list:    list,
		loading: true,
		mode:    ModeBrowse,
	}
	if cfg.Width > 0 {
		m.width = cfg.Width
		m.fixedWidth = true
	}
	if cfg.Height > 0 {
		m.height = cfg.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// Outcome reports how the session ended, with the failure when it failed.
func (m *Model) Outcome() (Outcome, error) {
	return m.outcome, m.outcomeErr
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadRefsCmd()}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if m.mode == ModeRename {
		if handled, cmd := m.handleRenameForm(msg); handled {
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
			return m, m.finishUpdate(cmds)
		}
	}

	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):          m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):   m.handleWindowSizeMsg,
		reflect.TypeOf(refsLoadedMsg{}):       m.handleRefsLoadedMsg,
		reflect.TypeOf(branch.ActionResult{}): m.handleActionResultMsg,
		reflect.TypeOf(branch.RenamePrompt{}): m.handleRenamePromptMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
