// Package app bootstraps and runs a picker session.
package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/git-pick/internal/branch"
	"github.com/atomicstack/git-pick/internal/git"
	"github.com/atomicstack/git-pick/internal/ui"
)

// Config describes one picker session.
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

// Run executes the Bubble Tea program in the alternate screen and reports
// how the session ended. Raw mode is held only while the program runs.
func Run(cfg Config) (ui.Outcome, error) {
	model := ui.NewModel(ui.Config{
		Repo:         cfg.Repo,
		Title:        cfg.Title,
		Action:       cfg.Action,
		ActionName:   cfg.ActionName,
		Scope:        cfg.Scope,
		Confirm:      cfg.Confirm,
		Force:        cfg.Force,
		Wrap:         cfg.Wrap,
		Fuzzy:        cfg.Fuzzy,
		Verbose:      cfg.Verbose,
		ShowFooter:   cfg.ShowFooter,
		InitialQuery: cfg.InitialQuery,
		Width:        cfg.Width,
		Height:       cfg.Height,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return ui.OutcomeCancelled, nil
		}
		return ui.OutcomeFailed, err
	}
	return model.Outcome()
}
