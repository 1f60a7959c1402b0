package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/khemadeva/lighttable/pkg/media"
)

func testAssets() []media.Asset {
	return []media.Asset{
		{Path: "a.png", Kind: media.KindImage},
		{Path: "b.mp4", Kind: media.KindVideo},
		{Path: "c.svg", Kind: media.KindVector},
	}
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func updateModel(t *testing.T, m pickModel, msgs ...tea.Msg) (pickModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(pickModel)
		if !ok {
			t.Fatalf("Update() returned %T, want pickModel", next)
		}
	}
	return m, cmd
}

func TestPickModelToggleAndConfirm(t *testing.T) {
	m := newPickModel(testAssets())

	m, cmd := updateModel(t, m,
		tea.KeyMsg{Type: tea.KeySpace},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeySpace},
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	if !m.confirmed {
		t.Error("enter should confirm the selection")
	}
	if cmd == nil {
		t.Error("enter should quit the program")
	}

	got := m.Selection()
	want := []string{"a.png", "b.mp4"}
	if len(got) != len(want) {
		t.Fatalf("Selection() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Selection()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPickModelCursorFallback(t *testing.T) {
	m := newPickModel(testAssets())

	m, _ = updateModel(t, m,
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	got := m.Selection()
	if len(got) != 1 || got[0] != "b.mp4" {
		t.Errorf("Selection() = %v, want the cursor entry", got)
	}
}

func TestPickModelToggleTwiceFallsBack(t *testing.T) {
	m := newPickModel(testAssets())

	m, _ = updateModel(t, m,
		tea.KeyMsg{Type: tea.KeySpace},
		tea.KeyMsg{Type: tea.KeySpace},
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	got := m.Selection()
	if len(got) != 1 || got[0] != "a.png" {
		t.Errorf("Selection() = %v, want the cursor fallback", got)
	}
}

func TestPickModelQuitWithoutConfirm(t *testing.T) {
	m := newPickModel(testAssets())

	m, cmd := updateModel(t, m, keyRune('q'))

	if m.confirmed {
		t.Error("q should not confirm")
	}
	if cmd == nil {
		t.Error("q should quit the program")
	}
}

func TestPickModelNavigationBounds(t *testing.T) {
	m := newPickModel(testAssets())

	m, _ = updateModel(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up at top, want 0", m.cursor)
	}

	m, _ = updateModel(t, m,
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
	)
	if m.cursor != 2 {
		t.Errorf("cursor = %d after down past end, want 2", m.cursor)
	}
}

func TestPickModelView(t *testing.T) {
	m := newPickModel(testAssets())
	m, _ = updateModel(t, m, tea.KeyMsg{Type: tea.KeySpace})

	view := m.View()
	for _, want := range []string{"Select Media", "a.png", "b.mp4", "c.svg", "[x]", "1 selected"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() should contain %q", want)
		}
	}
}

func TestPickModelWindowResize(t *testing.T) {
	m := newPickModel(testAssets())

	m, _ = updateModel(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
	if m.height != 24 {
		t.Errorf("height = %d after resize, want 24", m.height)
	}

	m, _ = updateModel(t, m, tea.WindowSizeMsg{Width: 80, Height: 8})
	if m.height != 5 {
		t.Errorf("height = %d after small resize, want the floor of 5", m.height)
	}
}
