package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-spawner/internal/config"
	"github.com/vovakirdan/tui-spawner/internal/core"
	"github.com/vovakirdan/tui-spawner/internal/registry"
	"github.com/vovakirdan/tui-spawner/internal/storage"
)

// helpRows is the number of terminal rows reserved below the scene.
const helpRows = 1

// Options holds optional collaborators for a play model.
type Options struct {
	// Watcher, when set, triggers a scenario reload on every preset file change.
	Watcher *config.Watcher

	// Logger receives session and reload events. Defaults to discarding.
	Logger *log.Logger

	// Embedded marks a model hosted by a session model; Back returns to the
	// menu instead of being ignored.
	Embedded bool
}

// Model is the Bubble Tea model for running a spawner scenario.
type Model struct {
	scenario   registry.Scenario
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	fixedSeed  bool
	inputFrame core.InputFrame
	state      core.SimState
	keyMapper  *KeyMapper
	help       help.Model
	watcher    *config.Watcher
	logger     *log.Logger
	embedded   bool
	status     string
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given scenario.
func NewModel(scenario registry.Scenario, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	fixedSeed := cfg.Seed != 0
	if !fixedSeed {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		scenario:   scenario,
		screen:     core.NewScreen(cfg.ScreenW, sceneHeight(cfg.ScreenH)),
		store:      store,
		config:     cfg,
		fixedSeed:  fixedSeed,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       h,
		watcher:    opts.Watcher,
		logger:     logger,
		embedded:   opts.Embedded,
	}
}

// sceneHeight returns the rows available to the scenario.
func sceneHeight(h int) int {
	return core.Max(h-helpRows, 1)
}

// sceneConfig returns the runtime config handed to the scenario.
func (m Model) sceneConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = sceneHeight(cfg.ScreenH)
	return cfg
}

// Init initializes the model and starts the scenario.
func (m Model) Init() tea.Cmd {
	m.scenario.Reset(m.sceneConfig())
	// state will be set on first tick (value receiver limitation)

	return tea.Batch(tickCmd(m.config.TickRate), watchCmd(m.watcher))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case ReloadMsg:
		return m.handleReload(msg)

	case WatchErrorMsg:
		m.logger.Warn("preset watcher error", "error", msg.Err)
		m.status = "watch error: " + msg.Err.Error()
		return m, watchCmd(m.watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "?":
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveSession()
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) && m.embedded {
		m.saveSession()
		m.backToMenu = true
		return m, nil
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, sceneHeight(msg.Height))
	m.help.Width = msg.Width

	// Bounds depend on the screen, so the scenario restarts
	m.saveSession()
	m.scenario.Reset(m.sceneConfig())
	m.state = m.scenario.State()

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) {
		m.restart()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.scenario.Step(m.inputFrame)
	m.state = result.State

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// handleReload re-reads the preset after the watcher saw a change.
func (m Model) handleReload(msg ReloadMsg) (tea.Model, tea.Cmd) {
	r, ok := m.scenario.(registry.Reloader)
	if !ok {
		return m, watchCmd(m.watcher)
	}

	m.saveSession()
	if err := r.Reload(); err != nil {
		m.logger.Warn("preset reload failed", "path", msg.Path, "error", err)
		m.status = "reload failed: " + err.Error()
	} else {
		m.logger.Info("preset reloaded", "path", msg.Path)
		m.status = "reloaded " + filepath.Base(msg.Path)
	}
	m.state = m.scenario.State()

	return m, watchCmd(m.watcher)
}

// restart saves the finished run and starts a fresh one.
func (m *Model) restart() {
	m.saveSession()
	if !m.fixedSeed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.scenario.Reset(m.sceneConfig())
	m.state = m.scenario.State()
	m.status = ""
}

// saveSession records the current run if anything was spawned.
func (m *Model) saveSession() {
	st := m.scenario.State()
	if m.store == nil || st.Spawned == 0 {
		return
	}
	if _, err := m.store.SaveSession(storage.SessionFromState(m.scenario.ID(), st)); err != nil {
		m.logger.Warn("could not save session", "preset", m.scenario.ID(), "error", err)
		return
	}
	m.logger.Debug("session saved", "preset", m.scenario.ID(), "spawned", st.Spawned)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.scenario.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".spawner", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.scenario.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.status = "saved " + filename
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.scenario.Render(m.screen)

	footer := m.help.View(m.keyMapper.Keys())
	if m.status != "" {
		footer = statusStyle.Render(m.status) + "  " + footer
	}
	return RenderScreen(m.screen) + "\n" + footer
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))

// State returns the last observed simulation counters.
func (m Model) State() core.SimState {
	return m.state
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given scenario.
func Run(scenario registry.Scenario, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(scenario, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
