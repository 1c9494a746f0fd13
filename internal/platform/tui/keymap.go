package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brick-breaker/internal/core"
)

// KeyMap defines the key bindings for a breakout session.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Restart, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Restart, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// heldKey tracks one direction key between auto-repeats.
type heldKey struct {
	down bool
	idle int // ticks since the last press or repeat
}

// KeyMapper translates Bubble Tea key messages into core events.
//
// Terminals deliver a press followed by auto-repeats but never a release.
// The mapper emits a Down event on the first press and synthesizes the
// matching Up once no repeat has arrived for holdTicks ticks, or as soon
// as the opposite direction is pressed.
type KeyMapper struct {
	keys      KeyMap
	holdTicks int
	left      heldKey
	right     heldKey
}

// NewKeyMapper creates a key mapper. holdTicks below 1 is raised to 1.
func NewKeyMapper(keys KeyMap, holdTicks int) *KeyMapper {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &KeyMapper{
		keys:      keys,
		holdTicks: holdTicks,
	}
}

// MapKey pushes the events produced by a key message onto q.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, q *core.EventQueue) bool {
	switch {
	case key.Matches(msg, km.keys.Quit):
		q.Push(core.EventQuit)
		return true
	case key.Matches(msg, km.keys.Restart):
		q.Push(core.EventRestart)
	case key.Matches(msg, km.keys.Left):
		if km.right.down {
			km.right = heldKey{}
			q.Push(core.EventRightUp)
		}
		km.press(&km.left, core.EventLeftDown, q)
	case key.Matches(msg, km.keys.Right):
		if km.left.down {
			km.left = heldKey{}
			q.Push(core.EventLeftUp)
		}
		km.press(&km.right, core.EventRightDown, q)
	}
	return false
}

func (km *KeyMapper) press(h *heldKey, down core.Event, q *core.EventQueue) {
	if !h.down {
		q.Push(down)
	}
	h.down = true
	h.idle = 0
}

// Tick advances the hold timers by one frame and pushes any synthesized
// releases onto q.
func (km *KeyMapper) Tick(q *core.EventQueue) {
	km.expire(&km.left, core.EventLeftUp, q)
	km.expire(&km.right, core.EventRightUp, q)
}

func (km *KeyMapper) expire(h *heldKey, up core.Event, q *core.EventQueue) {
	if !h.down {
		return
	}
	h.idle++
	if h.idle >= km.holdTicks {
		*h = heldKey{}
		q.Push(up)
	}
}

// Reset forgets every held key without emitting events.
func (km *KeyMapper) Reset() {
	km.left = heldKey{}
	km.right = heldKey{}
}
