package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brick-breaker/internal/core"
	"github.com/vovakirdan/brick-breaker/internal/games/breakout"
)

// Model is the Bubble Tea model for one breakout session.
type Model struct {
	game     *breakout.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	mapper   *KeyMapper
	queue    *core.EventQueue
	help     help.Model
	palette  Palette
	logger   *log.Logger
	quitting bool
}

// NewModel creates a Bubble Tea model around game. A nil logger discards
// session logs.
func NewModel(game *breakout.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = game.Config().Gameplay.FrameRate
	}

	keys := DefaultKeyMap()
	h := help.New()
	h.Width = cfg.ScreenW

	w, ph := playfieldSize(cfg.ScreenW, cfg.ScreenH)
	return Model{
		game:    game,
		screen:  core.NewScreen(w, ph),
		config:  cfg,
		keys:    keys,
		mapper:  NewKeyMapper(keys, game.Config().Input.HoldTicks),
		queue:   &core.EventQueue{},
		help:    h,
		palette: NewPalette(game.Config().Colors.Palette().Background),
		logger:  logger,
	}
}

// playfieldSize reserves the bottom terminal row for the help line.
func playfieldSize(w, h int) (int, int) {
	return w, core.Max(h-1, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started",
		"width", m.config.ScreenW,
		"height", m.config.ScreenH,
		"fps", m.config.TickRate,
	)
	return tickCmd(m.config.TickRate)
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
	}

	return m, nil
}

// handleKey queues the events for a key press. Quit is applied at once;
// everything else waits for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mapper.MapKey(msg, m.queue) && m.dispatch() {
		return m.quit()
	}
	return m, nil
}

// handleResize adapts the screen buffer. The simulation keeps running in its
// own coordinate space, so the game is not reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(playfieldSize(msg.Width, msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one frame: synthesized releases, queued events, then the
// simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	m.mapper.Tick(m.queue)
	if m.dispatch() {
		return m.quit()
	}

	result := m.game.Update()
	switch {
	case result.GameOver:
		m.logger.Info("game over", "score", m.game.Score())
	case result.LifeLost:
		m.logger.Info("life lost", "lives", m.game.Lives(), "score", m.game.Score())
	}
	if result.BricksRemoved > 0 {
		m.logger.Debug("bricks destroyed",
			"count", result.BricksRemoved,
			"remaining", len(m.game.Bricks()),
		)
	}

	return m, tickCmd(m.config.TickRate)
}

// dispatch feeds queued events to the game in arrival order.
// Returns true if the game asked to quit.
func (m Model) dispatch() bool {
	for _, ev := range m.queue.Drain() {
		wasOver := m.game.GameOver()
		if m.game.HandleEvent(ev) {
			return true
		}
		if wasOver && !m.game.GameOver() {
			// Fresh paddle is at rest; held keys must press again.
			m.mapper.Reset()
			m.logger.Info("game restarted")
		}
	}
	return false
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.logger.Info("session ended",
		"score", m.game.Score(),
		"lives", m.game.Lives(),
		"phase", m.game.Phase(),
	)
	return m, tea.Quit
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen, m.palette) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for game.
func Run(game *breakout.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
