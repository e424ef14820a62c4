package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// helpHeight is the number of rows reserved below the game for the help bar.
const helpHeight = 1

// Resizer is implemented by games that react to terminal resizes without
// starting over.
type Resizer interface {
	Resize(width, height int)
}

// pieceSeeder is implemented by games that can report the seed of the
// running game, so saved scores can be replayed.
type pieceSeeder interface {
	PieceSeed() uint32
}

// configReporter is implemented by games that can fall back to a default
// config when loading fails.
type configReporter interface {
	ConfigError() error
}

// Options tune the terminal loop.
type Options struct {
	SoftDropThrottle time.Duration    // Minimum gap between accepted soft drops
	Logger           *log.Logger      // Defaults to a discarding logger
	Now              func() time.Time // Clock for the soft drop throttle
	ScreenshotDir    string           // Defaults to ~/.blockfall/screenshots
}

// Model is the Bubble Tea model for a running game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	frame     core.InputFrame
	gameState core.GameState

	keys GameKeyMap
	help help.Model

	logger        *log.Logger
	now           func() time.Time
	throttle      time.Duration
	lastSoftDrop  time.Time
	screenshotDir string

	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a model and starts a session of the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = core.DefaultConfig().TickInterval
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = filepath.Join(os.Getenv("HOME"), ".blockfall", "screenshots")
	}

	gameCfg := cfg
	gameCfg.ScreenH = gameHeight(cfg.ScreenH)
	game.Reset(gameCfg)

	h := help.New()
	h.Width = cfg.ScreenW

	opts.Logger.Info("session started", "game", game.ID(), "seed", cfg.Seed, "best", cfg.BestScore)
	if r, ok := game.(configReporter); ok {
		if err := r.ConfigError(); err != nil {
			opts.Logger.Warn("using default config", "game", game.ID(), "error", err)
		}
	}

	return Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, gameCfg.ScreenH),
		store:         store,
		config:        cfg,
		frame:         core.NewInputFrame(),
		gameState:     game.State(),
		keys:          DefaultGameKeyMap(),
		help:          h,
		logger:        opts.Logger,
		now:           opts.Now,
		throttle:      opts.SoftDropThrottle,
		screenshotDir: opts.ScreenshotDir,
	}
}

func gameHeight(screenH int) int {
	return max(screenH-helpHeight, 0)
}

// Init starts the gravity timer.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		m.apply(core.ActionTick)
		return m, tickCmd(m.config.TickInterval)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionSoftDrop:
		if !m.allowSoftDrop() {
			return m, nil
		}
	}

	m.apply(action)
	return m, nil
}

// allowSoftDrop rate-limits soft drops to one per throttle interval.
func (m *Model) allowSoftDrop() bool {
	now := m.now()
	if m.throttle > 0 && !m.lastSoftDrop.IsZero() && now.Sub(m.lastSoftDrop) < m.throttle {
		return false
	}
	m.lastSoftDrop = now
	return true
}

// apply steps the game with a single action and records the outcome.
func (m *Model) apply(a core.Action) {
	m.frame.Clear()
	m.frame.Push(a)
	result := m.game.Step(m.frame)

	wasOver := m.gameState.GameOver
	m.gameState = result.State

	if result.Restarted {
		m.scoreSaved = false
		m.logger.Info("restart", "game", m.game.ID())
	}
	if m.gameState.GameOver && !wasOver {
		m.logger.Info("game over", "game", m.game.ID(), "score", m.gameState.Score, "level", m.gameState.Level)
		m.saveScore()
	}
}

// saveScore records the finished game once.
func (m *Model) saveScore() {
	if m.scoreSaved || m.store == nil || m.gameState.Score <= 0 {
		return
	}
	m.scoreSaved = true

	seed := m.config.Seed
	if s, ok := m.game.(pieceSeeder); ok {
		seed = int64(s.PieceSeed())
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.Level, seed); err != nil {
		m.logger.Error("save score", "game", m.game.ID(), "error", err)
	}
}

// handleResize processes window resize events.
// The running game is kept; games that cannot resize keep their old layout.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	h := gameHeight(msg.Height)
	m.screen.Resize(msg.Width, h)
	m.help.Width = msg.Width

	if r, ok := m.game.(Resizer); ok {
		r.Resize(msg.Width, h)
		m.gameState = m.game.State()
	}
	return m, nil
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.logger.Error("screenshot", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), m.now().Format("20060102_150405"))
	path := filepath.Join(m.screenshotDir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Error("screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// GameState returns the state after the last step.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// View renders the game and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
