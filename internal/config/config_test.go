package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvironDefaults(t *testing.T) {
	cfg := FromEnviron(nil)
	assert.Zero(t, cfg.UI.Width)
	assert.Zero(t, cfg.UI.Height)
	assert.False(t, cfg.UI.ShowFooter)
	assert.False(t, cfg.UI.Fuzzy)
	assert.False(t, cfg.Logging.Trace)
	assert.Empty(t, cfg.Logging.FilePath)
}

func TestFromEnvironReadsValues(t *testing.T) {
	cfg := FromEnviron([]string{
		"GIT_PICK_WIDTH=120",
		"GIT_PICK_HEIGHT=40",
		"GIT_PICK_FOOTER=1",
		"GIT_PICK_FUZZY=true",
		"GIT_PICK_WRAP=true",
		"GIT_PICK_TRACE=1",
		"GIT_PICK_LOG_FILE=/tmp/git-pick.log",
	})
	assert.Equal(t, 120, cfg.UI.Width)
	assert.Equal(t, 40, cfg.UI.Height)
	assert.True(t, cfg.UI.ShowFooter)
	assert.True(t, cfg.UI.Fuzzy)
	assert.True(t, cfg.UI.Wrap)
	assert.True(t, cfg.Logging.Trace)
	assert.Equal(t, "/tmp/git-pick.log", cfg.Logging.FilePath)
}

func TestFromEnvironIgnoresMalformedValues(t *testing.T) {
	cfg := FromEnviron([]string{
		"GIT_PICK_WIDTH=wide",
		"GIT_PICK_FUZZY=sure",
		"not-an-assignment",
	})
	assert.Zero(t, cfg.UI.Width)
	assert.False(t, cfg.UI.Fuzzy)
}
