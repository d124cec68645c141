package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-spawner/internal/core"
	"github.com/vovakirdan/tui-spawner/internal/storage"
)

type stubScenario struct {
	resets int
	steps  int
	last   core.InputFrame
	state  core.SimState
}

func (s *stubScenario) ID() string    { return "stub" }
func (s *stubScenario) Title() string { return "Stub" }
func (s *stubScenario) Reset(core.RuntimeConfig) {
	s.resets++
	s.state = core.SimState{}
}
func (s *stubScenario) Step(in core.InputFrame) core.StepResult {
	s.steps++
	s.last = in
	s.state.Spawned++
	s.state.Elapsed += 0.1
	return core.StepResult{State: s.state}
}
func (s *stubScenario) Render(dst *core.Screen) { dst.Clear() }
func (s *stubScenario) State() core.SimState   { return s.state }

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"space tries", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionTrySpawn, false},
		{"f forces", keyRunes("f"), core.ActionSpawn, false},
		{"enter forces", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionSpawn, false},
		{"x removes", keyRunes("x"), core.ActionRemoveOldest, false},
		{"c clears", keyRunes("c"), core.ActionClear, false},
		{"p pauses", keyRunes("p"), core.ActionPause, false},
		{"r restarts", keyRunes("r"), core.ActionRestart, false},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q quits", keyRunes("q"), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", keyRunes("z"), core.ActionNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey() = (%v, %v), want (%v, %v)", action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{keyRunes("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionHistory},
		{keyRunes("q"), MenuActionQuit},
		{keyRunes("z"), MenuActionNone},
	}
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestModelForwardsActions(t *testing.T) {
	sc := &stubScenario{}
	m := NewModel(sc, nil, testConfig(), Options{})
	m.Init()

	m = update(t, m, keyRunes("x"))
	m = update(t, m, TickMsg{})

	if sc.steps != 1 {
		t.Fatalf("steps = %d, want 1", sc.steps)
	}
	if !sc.last.Has(core.ActionRemoveOldest) {
		t.Error("remove-oldest action not forwarded")
	}

	first := sc.last
	m = update(t, m, TickMsg{})
	if !first.Has(core.ActionRemoveOldest) {
		t.Error("frame from the first tick was modified by the next one")
	}
	if len(sc.last.Actions) != 0 {
		t.Errorf("second tick frame = %v, want empty", sc.last.Actions)
	}
	if m.State().Spawned != 2 {
		t.Errorf("state not tracked, got %+v", m.State())
	}
}

func TestModelSavesSessionOnQuit(t *testing.T) {
	store := openStore(t)
	sc := &stubScenario{}
	m := NewModel(sc, store, testConfig(), Options{})
	m.Init()

	for i := 0; i < 3; i++ {
		m = update(t, m, TickMsg{})
	}
	m = update(t, m, keyRunes("q"))
	if !m.IsQuitting() {
		t.Fatal("expected quitting")
	}

	sessions, err := store.RecentSessions("stub", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(sessions) != 1 || sessions[0].Spawned != 3 {
		t.Errorf("unexpected sessions: %+v", sessions)
	}
}

func TestModelRestartSavesAndResets(t *testing.T) {
	store := openStore(t)
	sc := &stubScenario{}
	m := NewModel(sc, store, testConfig(), Options{})
	m.Init()

	m = update(t, m, TickMsg{})
	m = update(t, m, keyRunes("r"))
	m = update(t, m, TickMsg{})

	if sc.resets != 2 {
		t.Errorf("resets = %d, want 2", sc.resets)
	}
	if m.State().Spawned != 0 {
		t.Errorf("state after restart = %+v", m.State())
	}
	sessions, _ := store.RecentSessions("stub", 10)
	if len(sessions) != 1 {
		t.Errorf("expected one saved session, got %d", len(sessions))
	}
}

func TestModelBackOnlyWhenEmbedded(t *testing.T) {
	standalone := NewModel(&stubScenario{}, nil, testConfig(), Options{})
	standalone = update(t, standalone, tea.KeyMsg{Type: tea.KeyEsc})
	if standalone.BackToMenu() {
		t.Error("standalone model should ignore back")
	}

	embedded := NewModel(&stubScenario{}, nil, testConfig(), Options{Embedded: true})
	embedded = update(t, embedded, tea.KeyMsg{Type: tea.KeyEsc})
	if !embedded.BackToMenu() {
		t.Error("embedded model should return to menu")
	}
}

func TestModelResizeResetsScenario(t *testing.T) {
	sc := &stubScenario{}
	m := NewModel(sc, nil, testConfig(), Options{})
	m.Init()

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if sc.resets != 2 {
		t.Errorf("resets = %d, want 2", sc.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30-helpRows {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}
