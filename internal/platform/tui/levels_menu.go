package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pipeflow/internal/core"
	"github.com/vovakirdan/pipeflow/internal/games/pipes"
	"github.com/vovakirdan/pipeflow/internal/storage"
)

// LevelSelection holds the user's choice from the level picker.
type LevelSelection struct {
	Level int // 0 = start from beginning, 1-N = specific level
}

// LevelMenuModel is the level picker for the pipes games.
type LevelMenuModel struct {
	gameID       string
	cursor       int
	width        int
	height       int
	tickRate     int
	keyMapper    *KeyMapper
	levelIDs     []string
	levelNames   []string
	best         map[string]storage.LevelRecord
	selection    LevelSelection
	choosing     bool
	quitting     bool
	back         bool
	scrollOffset int
	theme        Theme
}

// NewLevelMenuModel creates a level picker for gameID. Best results are
// read from store when it is not nil.
func NewLevelMenuModel(store *storage.Store, gameID string, cfg core.RuntimeConfig) LevelMenuModel {
	ids := pipes.LevelIDs()
	names := pipes.LevelNames()
	if len(names) != len(ids) {
		names = ids
	}

	var best map[string]storage.LevelRecord
	if store != nil {
		if records, err := store.LevelResults(gameID); err == nil {
			best = records
		} else {
			getLogger().Warn("could not load level results", "game", gameID, "error", err)
		}
	}

	return LevelMenuModel{
		gameID:     gameID,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		tickRate:   cfg.TickRate,
		keyMapper:  NewKeyMapper(),
		levelIDs:   ids,
		levelNames: names,
		best:       best,
		choosing:   true,
		theme:      GetTheme(),
	}
}

// Init initializes the model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateScroll()
		return m, nil
	}
	return m, nil
}

func (m LevelMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}
	case MenuActionDown:
		if m.cursor < len(m.levelNames) {
			m.cursor++
			m.updateScroll()
		}
	case MenuActionSelect:
		if len(m.levelIDs) == 0 {
			return m, nil
		}
		m.choosing = false
		m.selection = LevelSelection{Level: m.cursor}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m LevelMenuModel) visibleItems() int {
	return max(m.height-10, 3)
}

// updateScroll keeps the cursor row on screen. Row 0 is "Start from
// Beginning", rows 1-N are levels.
func (m *LevelMenuModel) updateScroll() {
	visible := m.visibleItems()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
}

// bestLabel formats the stored best result for a level.
func (m LevelMenuModel) bestLabel(id string) string {
	rec, ok := m.best[id]
	if !ok {
		return ""
	}
	rate := m.tickRate
	if rate <= 0 {
		rate = 30
	}
	return fmt.Sprintf("  ✓ %d moves, %ds", rec.Moves, rec.Ticks/rate)
}

// View renders the level selection.
func (m LevelMenuModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("P I P E F L O W"), m.width))
	b.WriteString("\n\n")

	if len(m.levelIDs) == 0 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("No levels found"), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(m.theme.Controls.Render("Esc: Back  |  Q: Quit"), m.width))
		b.WriteString("\n")
		return b.String()
	}

	subtitle := fmt.Sprintf("Select a level (%d/%d cleared):", len(m.best), len(m.levelIDs))
	b.WriteString(centerText(m.theme.MenuDescription.Render(subtitle), m.width))
	b.WriteString("\n\n")

	visible := m.visibleItems()
	end := min(m.scrollOffset+visible, len(m.levelIDs)+1)

	for row := m.scrollOffset; row < end; row++ {
		cursor := "  "
		style := m.theme.MenuItemNormal
		if row == m.cursor {
			cursor = "> "
			style = m.theme.MenuItemActive
		}

		if row == 0 {
			b.WriteString(centerText(style.Render(cursor+"Start from Beginning"), m.width))
			b.WriteString("\n")
			continue
		}

		i := row - 1
		line := style.Render(fmt.Sprintf("%s%2d. %s", cursor, row, m.levelNames[i]))
		if label := m.bestLabel(m.levelIDs[i]); label != "" {
			line += m.theme.MenuCleared.Render(label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if m.scrollOffset > 0 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}
	if end < len(m.levelIDs)+1 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := m.theme.Controls.Render("Up/Down: Navigate  |  Enter: Select  |  Esc: Back  |  Q: Quit")
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m LevelMenuModel) Selected() *LevelSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m LevelMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelMenuModel) WantsBack() bool {
	return m.back
}

// RunLevelSelector runs the level picker for gameID and returns the
// selection, or nil when the user backed out.
func RunLevelSelector(store *storage.Store, gameID string, cfg core.RuntimeConfig) (*LevelSelection, core.RuntimeConfig, error) {
	model := NewLevelMenuModel(store, gameID, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(LevelMenuModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	cfg.ScreenW, cfg.ScreenH = m.width, m.height
	return m.Selected(), cfg, nil
}
