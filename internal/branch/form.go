package branch

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// RenameForm collects the new name for a branch rename. Submitting an
// empty or unchanged name cancels instead of erroring.
type RenameForm struct {
	input    textinput.Model
	existing map[string]struct{}
	ctx      Context
	target   string
	err      string
}

func NewRenameForm(prompt RenamePrompt, taken []string) *RenameForm {
	ti := textinput.New()
	ti.Placeholder = "branch-name"
	ti.CharLimit = 128
	ti.Focus()
	if prompt.Initial != "" {
		ti.SetValue(prompt.Initial)
		ti.CursorEnd()
	}
	form := &RenameForm{
		input:  ti,
		ctx:    prompt.Context,
		target: strings.TrimSpace(prompt.Target),
	}
	form.SetTaken(taken)
	return form
}

// SetCursorMode applies the caret mode to the input and returns the
// command that keeps the caret in sync.
func (f *RenameForm) SetCursorMode(mode cursor.Mode) tea.Cmd {
	return f.input.Cursor.SetMode(mode)
}

// CursorMode reports the input caret mode.
func (f *RenameForm) CursorMode() cursor.Mode {
	return f.input.Cursor.Mode()
}

func (f *RenameForm) Context() Context  { return f.ctx }
func (f *RenameForm) Target() string    { return f.target }
func (f *RenameForm) Value() string     { return strings.TrimSpace(f.input.Value()) }
func (f *RenameForm) InputView() string { return f.input.View() }
func (f *RenameForm) Error() string     { return f.err }

func (f *RenameForm) Title() string {
	return fmt.Sprintf("Rename %s", f.target)
}

func (f *RenameForm) Help() string {
	return "Press Enter to rename. Esc to cancel."
}

// SetTaken records the names that already exist; the target itself is
// excluded so resubmitting the current name cancels rather than conflicts.
func (f *RenameForm) SetTaken(names []string) {
	f.existing = make(map[string]struct{}, len(names))
	for _, name := range names {
		trim := strings.TrimSpace(name)
		if trim == "" || trim == f.target {
			continue
		}
		f.existing[trim] = struct{}{}
	}
	f.err = f.validate(f.Value())
}

// Update feeds a message into the form. The returned flags report whether
// a command was submitted and whether the form was cancelled.
func (f *RenameForm) Update(msg tea.Msg) (cmd tea.Cmd, submitted, cancelled bool) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		switch m.String() {
		case "ctrl+u":
			if f.input.Value() != "" {
				f.input.SetValue("")
				f.input.CursorStart()
				f.err = f.validate("")
			}
			return nil, false, false
		}
		switch m.Type {
		case tea.KeyEsc:
			return nil, false, true
		case tea.KeyEnter:
			value := f.Value()
			if value == "" || value == f.target {
				return nil, false, true
			}
			if err := f.validate(value); err != "" {
				f.err = err
				return nil, false, false
			}
			f.err = ""
			return RenameCommand(f.ctx, f.target, value), true, false
		}
	}

	updated, cmd := f.input.Update(msg)
	f.input = updated
	f.err = f.validate(f.Value())
	return cmd, false, false
}

func (f *RenameForm) validate(name string) string {
	if name == "" || name == f.target {
		return ""
	}
	if strings.ContainsAny(name, " ~^:?*[\\") || strings.Contains(name, "..") {
		return "Invalid branch name"
	}
	if strings.HasPrefix(name, "-") || strings.HasSuffix(name, "/") || strings.HasSuffix(name, ".lock") {
		return "Invalid branch name"
	}
	if _, exists := f.existing[name]; exists {
		return "Branch already exists"
	}
	return ""
}
