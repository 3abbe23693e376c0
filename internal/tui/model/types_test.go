package model

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trainctl/internal/config"
	"trainctl/pkg/logging"
)

func TestAppModeString(t *testing.T) {
	tests := []struct {
		mode AppMode
		want string
	}{
		{ModeDashboard, "Dashboard"},
		{ModeHelpOverlay, "HelpOverlay"},
		{ModeLogOverlay, "LogOverlay"},
		{ModeQuitting, "Quitting"},
		{AppMode(42), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mode.String())
		})
	}
}

func TestAddRawLineToActivityLog(t *testing.T) {
	m := &Model{}
	for i := 0; i < MaxActivityLogLines+10; i++ {
		AddRawLineToActivityLog(m, fmt.Sprintf("line %d", i))
	}

	assert.Len(t, m.ActivityLog, MaxActivityLogLines)
	assert.Equal(t, "line 10", m.ActivityLog[0])
	assert.True(t, m.ActivityLogDirty)
}

func TestStatusMessage(t *testing.T) {
	m := &Model{}

	cmd := m.SetStatusMessage("first", StatusBarInfo, time.Millisecond)
	require.NotNil(t, cmd)
	m.SetStatusMessage("second", StatusBarError, time.Millisecond)

	m.ClearStatusMessage(ClearStatusBarMsg{Seq: 1})
	assert.Equal(t, "second", m.StatusBarMessage, "a stale clear keeps the newer message")
	assert.Equal(t, StatusBarError, m.StatusBarMessageType)

	m.ClearStatusMessage(ClearStatusBarMsg{Seq: 2})
	assert.Empty(t, m.StatusBarMessage)
}

func TestListenForLogEntriesCmd(t *testing.T) {
	assert.Nil(t, ListenForLogEntriesCmd(nil))

	ch := make(chan logging.LogEntry, 1)
	ch <- logging.LogEntry{Subsystem: "TUI", Message: "hello"}
	msg := ListenForLogEntriesCmd(ch)()
	entry, ok := msg.(NewLogEntryMsg)
	require.True(t, ok)
	assert.Equal(t, "hello", entry.Entry.Message)

	close(ch)
	assert.Nil(t, ListenForLogEntriesCmd(ch)())
}

func TestInitializeModel(t *testing.T) {
	cfg := config.GetDefaultConfig()
	animate := false
	cfg.Tile.Animate = &animate
	cfg.Tile.Label = ""

	m := InitializeModel(cfg, true, nil)

	assert.Equal(t, ModeDashboard, m.CurrentAppMode)
	assert.True(t, m.DebugMode)
	assert.False(t, m.Animate)
	assert.Equal(t, config.DefaultTileLabel, m.TileLabel)
	assert.Len(t, m.Plans, 4)
	assert.Nil(t, m.ScheduleDialog())

	m.Width, m.Height = 120, 40
	w, h := m.Size()
	assert.Equal(t, 120, w)
	assert.Equal(t, 40, h)
}
