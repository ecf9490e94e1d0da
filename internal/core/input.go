package core

import (
	"errors"
	"fmt"
	"strings"
)

// Button is a logical pad button, abstracted from physical keys.
// The order matches the input provider's per-slot state layout.
type Button int

const (
	ButtonUp Button = iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonA // Attack
	ButtonB // Block
	ButtonX
	ButtonY // Special move
	ButtonL
	ButtonR
	ButtonSelect
	ButtonStart

	// NumButtons is the number of logical buttons per player slot.
	NumButtons = 12
)

var buttonNames = [NumButtons]string{
	"Up", "Down", "Left", "Right", "A", "B", "X", "Y", "L", "R", "Select", "Start",
}

// String returns a human-readable name for the button.
func (b Button) String() string {
	if b < 0 || int(b) >= NumButtons {
		return "Unknown"
	}
	return buttonNames[b]
}

// ParseButton converts a case-sensitive or lowercase button name to a Button.
func ParseButton(name string) (Button, error) {
	for i, n := range buttonNames {
		if n == name || strings.ToLower(n) == name {
			return Button(i), nil
		}
	}
	return 0, fmt.Errorf("core: unknown button %q", name)
}

// InputFrame is the held-button state of one player for a single tick.
type InputFrame uint16

// NewInputFrame creates a frame with the given buttons held.
func NewInputFrame(buttons ...Button) InputFrame {
	var f InputFrame
	for _, b := range buttons {
		f.Set(b)
	}
	return f
}

// FrameFromStates builds a frame from raw per-button values as delivered by
// the input provider. Any non-zero value counts as pressed.
func FrameFromStates(states [NumButtons]int16) InputFrame {
	var f InputFrame
	for i, v := range states {
		if v != 0 {
			f.Set(Button(i))
		}
	}
	return f
}

// Set marks a button as held.
func (f *InputFrame) Set(b Button) {
	*f |= 1 << uint(b)
}

// Unset releases a button.
func (f *InputFrame) Unset(b Button) {
	*f &^= 1 << uint(b)
}

// Has returns true if the button is held this frame.
func (f InputFrame) Has(b Button) bool {
	return f&(1<<uint(b)) != 0
}

// Clear releases all buttons.
func (f *InputFrame) Clear() {
	*f = 0
}

// Buttons returns the held buttons in declaration order.
func (f InputFrame) Buttons() []Button {
	var out []Button
	for i := range NumButtons {
		if f.Has(Button(i)) {
			out = append(out, Button(i))
		}
	}
	return out
}

// ErrInvalidPlayer reports a player id outside the two slots.
var ErrInvalidPlayer = errors.New("core: invalid player slot")

// PlayerID identifies one of the two player slots.
type PlayerID int

const (
	Player1 PlayerID = 0
	Player2 PlayerID = 1

	// NumPlayers is the number of player slots.
	NumPlayers = 2
)

// Valid reports whether the id names an existing slot.
func (id PlayerID) Valid() bool {
	return id == Player1 || id == Player2
}

// Opponent returns the other slot.
func (id PlayerID) Opponent() PlayerID {
	if id == Player1 {
		return Player2
	}
	return Player1
}

// String returns "P1" or "P2".
func (id PlayerID) String() string {
	switch id {
	case Player1:
		return "P1"
	case Player2:
		return "P2"
	default:
		return "P?"
	}
}

// MultiInputFrame contains input from both players for a single tick.
type MultiInputFrame struct {
	ByPlayer [NumPlayers]InputFrame
}

// Player returns the input frame for a specific player.
// Returns an empty frame for an invalid id.
func (m MultiInputFrame) Player(id PlayerID) InputFrame {
	if !id.Valid() {
		return 0
	}
	return m.ByPlayer[id]
}

// SetPlayer sets the input frame for a specific player. It panics if id is
// not a valid slot.
func (m *MultiInputFrame) SetPlayer(id PlayerID, frame InputFrame) {
	if !id.Valid() {
		panic(fmt.Errorf("%w: %d", ErrInvalidPlayer, id))
	}
	m.ByPlayer[id] = frame
}

// Player1 returns the input frame for Player 1 (convenience method).
func (m MultiInputFrame) Player1() InputFrame {
	return m.ByPlayer[Player1]
}

// Player2 returns the input frame for Player 2 (convenience method).
func (m MultiInputFrame) Player2() InputFrame {
	return m.ByPlayer[Player2]
}

// Clear resets all player inputs for the next frame.
func (m *MultiInputFrame) Clear() {
	for i := range m.ByPlayer {
		m.ByPlayer[i].Clear()
	}
}

// EdgeTracker turns held-button state into press-once events. It keeps the
// previous frame for each slot so menu actions fire on the rising edge only.
type EdgeTracker struct {
	last [NumPlayers]InputFrame
}

// Update records this tick's input and returns, per player, the buttons that
// went from released to held.
func (e *EdgeTracker) Update(in MultiInputFrame) MultiInputFrame {
	var pressed MultiInputFrame
	for i := range NumPlayers {
		pressed.ByPlayer[i] = in.ByPlayer[i] &^ e.last[i]
		e.last[i] = in.ByPlayer[i]
	}
	return pressed
}

// Reset forgets previous state. The next Update treats every held button as a
// fresh press.
func (e *EdgeTracker) Reset() {
	e.last = [NumPlayers]InputFrame{}
}
