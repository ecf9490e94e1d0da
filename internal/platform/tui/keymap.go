package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-fighter/internal/core"
)

// DefaultHoldTicks is how long a key press keeps its button held. Terminals
// only report presses, so a held key shows up as a stream of auto-repeats and
// each repeat extends the hold.
const DefaultHoldTicks = 8

// Binding maps one terminal key to a player's pad button.
type Binding struct {
	Player core.PlayerID
	Button core.Button
}

// DefaultBindings returns the two-players-on-one-keyboard layout.
func DefaultBindings() map[string]Binding {
	p1 := func(b core.Button) Binding { return Binding{Player: core.Player1, Button: b} }
	p2 := func(b core.Button) Binding { return Binding{Player: core.Player2, Button: b} }

	return map[string]Binding{
		// Player 1: WASD + JKL/UIO
		"w":     p1(core.ButtonUp),
		"s":     p1(core.ButtonDown),
		"a":     p1(core.ButtonLeft),
		"d":     p1(core.ButtonRight),
		"j":     p1(core.ButtonA),
		"k":     p1(core.ButtonB),
		"u":     p1(core.ButtonX),
		"l":     p1(core.ButtonY),
		"i":     p1(core.ButtonL),
		"o":     p1(core.ButtonR),
		"tab":   p1(core.ButtonSelect),
		"enter": p1(core.ButtonStart),

		// Player 2: arrows + number row
		"up":    p2(core.ButtonUp),
		"down":  p2(core.ButtonDown),
		"left":  p2(core.ButtonLeft),
		"right": p2(core.ButtonRight),
		"1":     p2(core.ButtonA),
		"2":     p2(core.ButtonB),
		"3":     p2(core.ButtonX),
		"4":     p2(core.ButtonY),
		"5":     p2(core.ButtonL),
		"6":     p2(core.ButtonR),
		"7":     p2(core.ButtonSelect),
		"8":     p2(core.ButtonStart),
	}
}

// KeyMapper translates Bubble Tea key messages to pad buttons.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	bindings map[string]Binding
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{bindings: DefaultBindings()}
}

// IsQuit reports whether the key ends the program.
func (km *KeyMapper) IsQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+c", "esc":
		return true
	}
	return false
}

// Map returns the binding for a key, if any.
func (km *KeyMapper) Map(msg tea.KeyMsg) (Binding, bool) {
	b, ok := km.bindings[msg.String()]
	return b, ok
}

// HoldTracker turns key press events into held-button frames. Each press
// keeps its button down for a fixed number of ticks.
type HoldTracker struct {
	holdTicks int
	left      [core.NumPlayers][core.NumButtons]int
}

// NewHoldTracker creates a tracker. Non-positive holdTicks uses the default.
func NewHoldTracker(holdTicks int) HoldTracker {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return HoldTracker{holdTicks: holdTicks}
}

// Press holds a button for the next holdTicks frames.
func (h *HoldTracker) Press(b Binding) {
	if !b.Player.Valid() || b.Button < 0 || int(b.Button) >= core.NumButtons {
		return
	}
	h.left[b.Player][b.Button] = h.holdTicks
}

// Frame returns the buttons currently held.
func (h *HoldTracker) Frame() core.MultiInputFrame {
	var m core.MultiInputFrame
	for p := range core.NumPlayers {
		var f core.InputFrame
		for b, n := range h.left[p] {
			if n > 0 {
				f.Set(core.Button(b))
			}
		}
		m.SetPlayer(core.PlayerID(p), f)
	}
	return m
}

// Advance counts down every hold by one tick.
func (h *HoldTracker) Advance() {
	for p := range h.left {
		for b := range h.left[p] {
			if h.left[p][b] > 0 {
				h.left[p][b]--
			}
		}
	}
}

// Release drops every held button.
func (h *HoldTracker) Release() {
	h.left = [core.NumPlayers][core.NumButtons]int{}
}
