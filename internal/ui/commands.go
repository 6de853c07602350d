package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/git-pick/internal/branch"
	"github.com/atomicstack/git-pick/internal/logging"
	"github.com/atomicstack/git-pick/internal/logging/events"
)

// refsLoadedMsg carries the one-shot ref snapshot into the model.
type refsLoadedMsg struct {
	items []branch.Item
	err   error
}

func (m *Model) loadRefsCmd() tea.Cmd {
	return func() tea.Msg {
		refs, err := m.cfg.Repo.ListRefs(context.Background(), m.cfg.Scope)
		if err != nil {
			logging.Error(err)
			return refsLoadedMsg{err: err}
		}
		return refsLoadedMsg{items: branch.Items(refs)}
	}
}

func (m *Model) handleRefsLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(refsLoadedMsg)
	if !ok {
		return nil
	}
	m.loading = false
	if loaded.err != nil {
		m.outcome = OutcomeFailed
		m.outcomeErr = loaded.err
		return tea.Quit
	}
	events.UI.RefsLoaded(m.cfg.Scope.String(), len(loaded.items))
	m.list.SetItems(loaded.items)
	if query := m.cfg.InitialQuery; query != "" {
		m.list.SetFilter(query, len([]rune(query)))
	}
	m.syncViewport()
	return nil
}

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(branch.ActionResult)
	if !ok {
		return nil
	}
	m.pendingLabel = ""
	if result.Err != nil {
		// The worktree is untouched after a failed action; drop back to
		// browsing so another ref can be picked.
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		m.mode = ModeBrowse
		m.confirmItem = nil
		events.Action.Error(result.Err)
		return nil
	}
	if result.Info != "" && m.cfg.Verbose {
		m.setInfo(result.Info)
	} else {
		m.forceClearInfo()
	}
	events.Action.Success(result.Info)
	m.outcome = OutcomeDone
	return tea.Quit
}

func (m *Model) handleRenamePromptMsg(msg tea.Msg) tea.Cmd {
	prompt, ok := msg.(branch.RenamePrompt)
	if !ok {
		return nil
	}
	taken := branch.Names(m.list.Full)
	m.renameForm = branch.NewRenameForm(prompt, taken)
	// The form caret follows the filter caret's mode so both stay in step.
	cmd := m.renameForm.SetCursorMode(m.filterCursor.Mode())
	m.mode = ModeRename
	m.errMsg = ""
	m.forceClearInfo()
	return cmd
}

func (m *Model) handleRenameForm(msg tea.Msg) (bool, tea.Cmd) {
	if m.renameForm == nil {
		return false, nil
	}
	cmd, submitted, cancelled := m.renameForm.Update(msg)
	if cancelled {
		events.UI.Cancel("rename")
		m.renameForm = nil
		m.mode = ModeBrowse
		return true, cmd
	}
	if submitted {
		target := m.renameForm.Target()
		m.renameForm = nil
		m.mode = ModeBrowse
		m.pendingLabel = target
		return true, cmd
	}
	if cmd != nil {
		return true, cmd
	}
	return true, nil
}

// dispatch executes the configured action for the selected item.
func (m *Model) dispatch(item branch.Item) tea.Cmd {
	m.pendingLabel = item.ID
	m.errMsg = ""
	m.forceClearInfo()
	ctx := branch.Context{Repo: m.cfg.Repo, Force: m.cfg.Force}
	return m.cfg.Action(ctx, item)
}
