package branch

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/git-pick/internal/logging/events"
)

// CheckoutAction switches to the selected branch. Remote-tracking refs go
// through the tracking-branch path so a local counterpart exists afterwards.
func CheckoutAction(ctx Context, item Item) tea.Cmd {
	target := trimTarget(item)
	if target == "" {
		return invalidTarget()
	}
	return func() tea.Msg {
		events.Action.Dispatch("checkout", target)
		var err error
		if item.Remote {
			err = ctx.Repo.CheckoutRemote(context.Background(), target)
		} else {
			err = ctx.Repo.Checkout(context.Background(), target)
		}
		if err != nil {
			return ActionResult{Err: err}
		}
		return ActionResult{Info: fmt.Sprintf("Switched to %s", target)}
	}
}

// DeleteAction removes the selected local branch. ctx.Force maps to -D.
func DeleteAction(ctx Context, item Item) tea.Cmd {
	target := trimTarget(item)
	if target == "" {
		return invalidTarget()
	}
	return func() tea.Msg {
		events.Action.Dispatch("delete", target)
		if err := ctx.Repo.Delete(context.Background(), target, ctx.Force); err != nil {
			return ActionResult{Err: err}
		}
		return ActionResult{Info: fmt.Sprintf("Deleted %s", target)}
	}
}

// RenameAction opens the rename form for the selected branch.
func RenameAction(ctx Context, item Item) tea.Cmd {
	target := trimTarget(item)
	if target == "" {
		return invalidTarget()
	}
	return func() tea.Msg {
		return RenamePrompt{Context: ctx, Target: target, Initial: target}
	}
}

// RenameCommand performs the rename once the form submits.
func RenameCommand(ctx Context, target, name string) tea.Cmd {
	return func() tea.Msg {
		if target == "" {
			return ActionResult{Err: fmt.Errorf("branch target required")}
		}
		if name == "" {
			return ActionResult{Err: fmt.Errorf("branch name required")}
		}
		events.Action.Dispatch("rename", target)
		if err := ctx.Repo.Rename(context.Background(), target, name); err != nil {
			return ActionResult{Err: err}
		}
		return ActionResult{Info: fmt.Sprintf("Renamed %s to %s", target, name)}
	}
}

func invalidTarget() tea.Cmd {
	return func() tea.Msg { return ActionResult{Err: fmt.Errorf("invalid branch target")} }
}
