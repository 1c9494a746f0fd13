package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brick-breaker/internal/config"
	"github.com/vovakirdan/brick-breaker/internal/core"
	"github.com/vovakirdan/brick-breaker/internal/games/breakout"
)

func newTestModel(t *testing.T, cfg config.BreakoutConfig) (Model, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := log.New(&buf)
	m := NewModel(breakout.New(cfg), core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, logger)
	return m, &buf
}

// step feeds a message to the model and returns the updated model.
func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = step(t, m, TickMsg(time.Time{}))
	return m
}

// doomedConfig starts the ball below the bottom edge with a single life,
// so the first tick ends the game.
func doomedConfig() config.BreakoutConfig {
	cfg := config.DefaultBreakoutConfig()
	cfg.Gameplay.Lives = 1
	cfg.Ball.BottomOffset = 5
	cfg.Ball.SpeedY = 3
	return cfg
}

func TestNewModelScreenReservesHelpRow(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultBreakoutConfig())

	if m.screen.Width() != 80 || m.screen.Height() != 23 {
		t.Errorf("screen = %dx%d, want 80x23", m.screen.Width(), m.screen.Height())
	}
}

func TestNewModelDefaultsTickRate(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Gameplay.FrameRate = 30
	m := NewModel(breakout.New(cfg), core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, nil)

	if m.config.TickRate != 30 {
		t.Errorf("TickRate = %d, want 30", m.config.TickRate)
	}
}

func TestTickAdvancesGame(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultBreakoutConfig())

	m, cmd := step(t, m, TickMsg(time.Time{}))
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}

	ball := m.game.Ball()
	if ball.X != 398 || ball.Y != 527 {
		t.Errorf("ball = (%d, %d), want (398, 527)", ball.X, ball.Y)
	}
}

func TestMovementAppliedOnNextTick(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultBreakoutConfig())

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.game.Paddle().X != 350 {
		t.Fatalf("paddle moved before tick: x = %d", m.game.Paddle().X)
	}

	m = tick(t, m)
	if m.game.Paddle().X != 345 {
		t.Errorf("paddle x = %d, want 345", m.game.Paddle().X)
	}
}

func TestHeldKeyStopsAfterHoldWindow(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	hold := cfg.Input.HoldTicks
	m, _ := newTestModel(t, cfg)

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	for i := 0; i < hold+10; i++ {
		m = tick(t, m)
	}

	// The release is synthesized on tick number hold, before that tick's update.
	want := 350 - (hold-1)*cfg.Paddle.MoveSpeed
	if got := m.game.Paddle().X; got != want {
		t.Errorf("paddle x = %d, want %d", got, want)
	}
}

func TestQuitKey(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		t.Run(msg.String(), func(t *testing.T) {
			m, buf := newTestModel(t, config.DefaultBreakoutConfig())

			m, cmd := step(t, m, msg)
			if cmd == nil {
				t.Fatal("quit should return a command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("quit command produced %T, want tea.QuitMsg", cmd())
			}
			if m.View() != "" {
				t.Error("View should be empty after quit")
			}
			if !strings.Contains(buf.String(), "session ended") {
				t.Errorf("log missing session end: %q", buf.String())
			}
		})
	}
}

func TestQuitDuringGameOver(t *testing.T) {
	m, _ := newTestModel(t, doomedConfig())
	m = tick(t, m)
	if !m.game.GameOver() {
		t.Fatal("expected game over after first tick")
	}

	_, cmd := step(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command in game over")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestGameOverAndRestartAreLogged(t *testing.T) {
	m, buf := newTestModel(t, doomedConfig())

	m = tick(t, m)
	if !m.game.GameOver() {
		t.Fatal("expected game over after first tick")
	}

	// Hold left during game over, then restart
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = step(t, m, runeKey('r'))
	m = tick(t, m)

	if m.mapper.left.down || m.mapper.right.down {
		t.Error("restart should forget held keys")
	}

	out := buf.String()
	if !strings.Contains(out, "game restarted") {
		t.Errorf("log missing restart: %q", out)
	}
	// The doomed ball ends the restarted game on the same tick.
	if n := strings.Count(out, "game over"); n != 2 {
		t.Errorf("logged %d game overs, want 2: %q", n, out)
	}
}

func TestGameOverFreezesOnTick(t *testing.T) {
	m, _ := newTestModel(t, doomedConfig())
	m = tick(t, m)

	before := m.game.Snapshot()
	for i := 0; i < 5; i++ {
		m = tick(t, m)
	}
	after := m.game.Snapshot()

	if before.Hash() != after.Hash() {
		t.Error("game state changed after game over")
	}
}

func TestResizeKeepsGame(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultBreakoutConfig())
	m = tick(t, m)
	ball := m.game.Ball()

	m, _ = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, want 120x39", m.screen.Width(), m.screen.Height())
	}
	if m.game.Ball() != ball {
		t.Error("resize should not reset the game")
	}
}

func TestResizeTinyTerminal(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultBreakoutConfig())
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 10, Height: 1})

	if m.screen.Height() != 1 {
		t.Errorf("screen height = %d, want 1", m.screen.Height())
	}
	// Must not panic
	_ = m.View()
}

func TestViewShowsHUDAndHelp(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultBreakoutConfig())
	view := m.View()

	for _, want := range []string{"Lives: 3", "Score: 0", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("View missing %q", want)
		}
	}
}

func TestInitLogsSessionStart(t *testing.T) {
	m, buf := newTestModel(t, config.DefaultBreakoutConfig())

	if cmd := m.Init(); cmd == nil {
		t.Error("Init should start the tick loop")
	}
	if !strings.Contains(buf.String(), "session started") {
		t.Errorf("log missing session start: %q", buf.String())
	}
}
