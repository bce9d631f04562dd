package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// BestTiler reports the best tile reached on a preset. *storage.Store implements it.
type BestTiler interface {
	BestTile(gameID string) (int, error)
}

// MenuItem represents a selectable preset in the menu.
type MenuItem struct {
	GameID   string
	Title    string
	Rows     int
	Cols     int
	BestTile int
}

// MenuModel is the Bubble Tea model for the preset picker.
type MenuModel struct {
	items       []MenuItem
	cursor      int
	width       int
	height      int
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	quitting    bool
	selected    *MenuItem // Set when user selects a preset
	openHistory bool      // True if user pressed Tab for history
}

// NewMenuModel creates a new menu model. best may be nil.
func NewMenuModel(best BestTiler, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))

	for _, g := range games {
		item := MenuItem{
			GameID: g.ID,
			Title:  g.Title,
			Rows:   g.Rows,
			Cols:   g.Cols,
		}
		if best != nil {
			if tile, err := best.BestTile(g.ID); err == nil {
				item.BestTile = tile
			}
		}
		items = append(items, item)
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
// The cursor wraps around at both ends.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if n := len(m.items); n > 0 {
			m.cursor = (m.cursor - 1 + n) % n
		}

	case MenuActionDown:
		if n := len(m.items); n > 0 {
			m.cursor = (m.cursor + 1) % n
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionHistory:
		m.openHistory = true
		return m, tea.Quit
	}

	return m, nil
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")).MarginBottom(1)
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuPanelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("245")).Padding(0, 1)
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		menuTitleStyle.Render("2 0 4 8"),
		lipgloss.JoinHorizontal(lipgloss.Top, m.viewList(), "  ", m.viewPreview()),
		"",
		menuDimStyle.Render("↑/↓ navigate · enter play · tab history · q quit"),
	)

	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// viewList renders one line per preset.
func (m MenuModel) viewList() string {
	lines := make([]string, 0, len(m.items))
	for i, item := range m.items {
		best := menuDimStyle.Render("-")
		if item.BestTile > 0 {
			best = styleFor(core.TileColor(item.BestTile)).Render(strconv.Itoa(item.BestTile))
		}

		line := fmt.Sprintf("%-18s %5s  best: %s", item.Title, fmt.Sprintf("%dx%d", item.Rows, item.Cols), best)
		if i == m.cursor {
			line = menuCursorStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	return menuPanelStyle.Render(strings.Join(lines, "\n"))
}

// viewPreview draws the selected board as a grid of dots.
func (m MenuModel) viewPreview() string {
	if len(m.items) == 0 {
		return ""
	}
	item := m.items[m.cursor]

	row := strings.TrimSuffix(strings.Repeat("· ", item.Cols), " ")
	rows := make([]string, item.Rows)
	for r := range rows {
		rows[r] = row
	}
	return menuPanelStyle.Render(menuDimStyle.Render(strings.Join(rows, "\n")))
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsHistory returns true if user requested the history screen.
func (m MenuModel) WantsHistory() bool {
	return m.openHistory
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID       string
	Config       core.RuntimeConfig
	WantsHistory bool
	Quit         bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(best BestTiler, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(best, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	switch {
	case m.WantsHistory():
		result.WantsHistory = true
	case m.Selected() != nil:
		result.GameID = m.Selected().GameID
	default:
		result.Quit = true
	}

	return result, nil
}
