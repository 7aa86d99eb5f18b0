package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pipeflow/internal/config"
)

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	s, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return s
}

func TestSessionFlow(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	store := testStore(t)

	m := NewSessionModel(store, testRuntime(), "tester", config.DifficultyHard)
	if m.menu.Difficulty() != config.DifficultyHard {
		t.Errorf("menu difficulty = %s, want hard", m.menu.Difficulty())
	}
	if !strings.Contains(m.View(), "Pipes") {
		t.Error("menu should list the pipes game")
	}

	// Enter on the first game opens the level picker.
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenLevels {
		t.Fatalf("expected level picker, screen = %d", m.screen)
	}
	if !strings.Contains(m.View(), "First Flow") {
		t.Error("level picker should list built-in levels")
	}

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.screen != screenMenu {
		t.Fatalf("esc should return to the menu, screen = %d", m.screen)
	}

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("tab should open scores, screen = %d", m.screen)
	}
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.screen != screenMenu {
		t.Fatalf("esc should leave scores, screen = %d", m.screen)
	}

	// Pick level 2 and start playing.
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("expected game screen, screen = %d", m.screen)
	}
	if !strings.Contains(m.View(), "Bend") {
		t.Error("game should start on the second level")
	}

	next, cmd := m.Update(runeKey('q'))
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("q in game should end the session")
	}
}

func TestSessionQuitFromMenu(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), "tester", "")
	if m.difficulty != config.DifficultyNormal {
		t.Errorf("empty preset should default to normal, got %s", m.difficulty)
	}
	m = sessionUpdate(t, m, runeKey('q'))
	if !m.quitting || m.View() != "" {
		t.Error("q in menu should quit")
	}
}
