package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapTiler map[string]int

func (m mapTiler) BestTile(id string) (int, error) {
	if v, ok := m[id]; ok {
		return v, nil
	}
	return 0, errors.New("no games")
}

func updateMenu(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(MenuModel)
	require.True(t, ok)
	return model, cmd
}

func TestMenuCursorWraps(t *testing.T) {
	m := NewMenuModel(nil, testRuntime())
	require.Greater(t, len(m.items), 1)

	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, len(m.items)-1, m.cursor)

	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, m.cursor)
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, testRuntime())

	m, _ = updateMenu(t, m, runeKey("j"))
	m, cmd := updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	require.NotNil(t, m.Selected())
	assert.Equal(t, m.items[1].GameID, m.Selected().GameID)
	assert.False(t, m.IsQuitting())
}

func TestMenuHistoryAndQuit(t *testing.T) {
	m, cmd := updateMenu(t, NewMenuModel(nil, testRuntime()), tea.KeyMsg{Type: tea.KeyTab})
	assert.NotNil(t, cmd)
	assert.True(t, m.WantsHistory())
	assert.Nil(t, m.Selected())

	m, cmd = updateMenu(t, NewMenuModel(nil, testRuntime()), runeKey("q"))
	assert.NotNil(t, cmd)
	assert.True(t, m.IsQuitting())
	assert.Empty(t, m.View())
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m, _ := updateMenu(t, NewMenuModel(nil, testRuntime()), tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, m.Config().ScreenW)
	assert.Equal(t, 40, m.Config().ScreenH)
}

func TestMenuViewShowsBestTiles(t *testing.T) {
	m := NewMenuModel(mapTiler{"2048": 512}, testRuntime())

	var classic *MenuItem
	for i := range m.items {
		if m.items[i].GameID == "2048" {
			classic = &m.items[i]
		}
	}
	require.NotNil(t, classic)
	assert.Equal(t, 512, classic.BestTile)

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "2 0 4 8")
	assert.Contains(t, view, "best: 512")
	assert.Contains(t, view, "4x4")
}
