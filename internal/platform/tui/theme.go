package tui

import (
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the lipgloss styles used by menus and the scoreboard.
type Theme struct {
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
	MenuCleared     lipgloss.Style // Best result next to a cleared level
	MenuValue       lipgloss.Style // Selected option, e.g. difficulty
	Controls        lipgloss.Style

	TableBorder   lipgloss.Color
	TableSelectFg lipgloss.Color
	TableSelectBg lipgloss.Color
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true), // Water blue
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		MenuCleared:     lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		MenuValue:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Controls:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		TableBorder:   lipgloss.Color("240"),
		TableSelectFg: lipgloss.Color("229"),
		TableSelectBg: lipgloss.Color("25"),
	}
}

// MonochromeTheme returns a grayscale theme for terminals with poor colour.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.MenuTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Underline(true)
	theme.MenuCleared = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	theme.MenuValue = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.TableSelectFg = lipgloss.Color("232")
	theme.TableSelectBg = lipgloss.Color("250")
	return theme
}

var themes = map[string]func() Theme{
	"default": DefaultTheme,
	"mono":    MonochromeTheme,
}

// ThemeNames lists the selectable theme names.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName looks up a theme. ok is false for an unknown name.
func ThemeByName(name string) (Theme, bool) {
	f, ok := themes[name]
	if !ok {
		return Theme{}, false
	}
	return f(), true
}

var (
	themeMu      sync.RWMutex
	currentTheme = DefaultTheme()
)

// SetTheme sets the global theme.
func SetTheme(theme Theme) {
	themeMu.Lock()
	defer themeMu.Unlock()
	currentTheme = theme
}

// GetTheme returns the current global theme.
func GetTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}
