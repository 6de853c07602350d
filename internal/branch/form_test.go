package branch

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/git-pick/internal/git"
)

func newTestForm(taken ...string) *RenameForm {
	prompt := RenamePrompt{Target: "feature", Initial: "feature"}
	return NewRenameForm(prompt, taken)
}

func typeRunes(f *RenameForm, s string) {
	for _, r := range s {
		f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestRenameFormStartsWithTarget(t *testing.T) {
	form := newTestForm("main", "feature")
	assert.Equal(t, "feature", form.Value())
	assert.Empty(t, form.Error())
	assert.Equal(t, "Rename feature", form.Title())
}

func TestRenameFormSubmitUnchangedCancels(t *testing.T) {
	form := newTestForm("main")
	cmd, submitted, cancelled := form.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.False(t, submitted)
	assert.True(t, cancelled)
}

func TestRenameFormEscapeCancels(t *testing.T) {
	form := newTestForm()
	_, submitted, cancelled := form.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, submitted)
	assert.True(t, cancelled)
}

func TestRenameFormRejectsDuplicate(t *testing.T) {
	form := newTestForm("main", "feature-v2")
	form.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	typeRunes(form, "feature-v2")
	assert.Equal(t, "Branch already exists", form.Error())

	_, submitted, cancelled := form.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, submitted)
	assert.False(t, cancelled)
}

func TestRenameFormRejectsInvalidNames(t *testing.T) {
	for _, name := range []string{"has space", "a..b", "-leading", "trailing/", "x.lock", "ca^ret"} {
		form := newTestForm()
		form.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
		typeRunes(form, name)
		assert.Equal(t, "Invalid branch name", form.Error(), "name %q", name)
	}
}

func TestRenameFormSubmitRunsRename(t *testing.T) {
	runner := git.NewMockRunner()
	prompt := RenamePrompt{
		Context: Context{Repo: git.NewRepository("/tmp/repo", runner)},
		Target:  "feature",
		Initial: "feature",
	}
	form := NewRenameForm(prompt, []string{"main", "feature"})
	form.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	typeRunes(form, "feature-v2")
	require.Empty(t, form.Error())

	cmd, submitted, cancelled := form.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, submitted)
	assert.False(t, cancelled)

	result := cmd().(ActionResult)
	require.NoError(t, result.Err)
	assert.Equal(t, "Renamed feature to feature-v2", result.Info)
	assert.True(t, runner.CalledWith("branch", "-m", "feature", "feature-v2"))
}

func TestRenameFormCtrlUClears(t *testing.T) {
	form := newTestForm()
	form.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	assert.Empty(t, form.Value())
}
