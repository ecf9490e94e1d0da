package core

import (
	"errors"
	"testing"
)

func TestInputFrameSetHas(t *testing.T) {
	var f InputFrame
	f.Set(ButtonA)
	f.Set(ButtonLeft)

	if !f.Has(ButtonA) || !f.Has(ButtonLeft) {
		t.Fatal("expected A and Left to be held")
	}
	if f.Has(ButtonB) {
		t.Error("B should not be held")
	}

	f.Unset(ButtonA)
	if f.Has(ButtonA) {
		t.Error("A should be released after Unset")
	}

	f.Clear()
	if f != 0 {
		t.Errorf("Clear() left %v", f.Buttons())
	}
}

func TestFrameFromStates(t *testing.T) {
	var states [NumButtons]int16
	states[ButtonUp] = 1
	states[ButtonY] = -32768 // analog values count as pressed
	states[ButtonStart] = 0

	f := FrameFromStates(states)
	if !f.Has(ButtonUp) || !f.Has(ButtonY) {
		t.Errorf("expected Up and Y held, got %v", f.Buttons())
	}
	if f.Has(ButtonStart) {
		t.Error("zero state should be released")
	}
}

func TestParseButton(t *testing.T) {
	tests := []struct {
		in   string
		want Button
	}{
		{"Up", ButtonUp},
		{"select", ButtonSelect},
		{"a", ButtonA},
		{"Y", ButtonY},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseButton(tc.in)
			if err != nil {
				t.Fatalf("ParseButton(%q) error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseButton(%q) = %v, expected %v", tc.in, got, tc.want)
			}
		})
	}

	if _, err := ParseButton("turbo"); err == nil {
		t.Error("expected error for unknown button")
	}
}

func TestPlayerID(t *testing.T) {
	if Player1.Opponent() != Player2 || Player2.Opponent() != Player1 {
		t.Error("Opponent() should swap slots")
	}
	if PlayerID(2).Valid() || PlayerID(-1).Valid() {
		t.Error("out of range ids must be invalid")
	}

	var m MultiInputFrame
	if m.Player(PlayerID(5)) != 0 {
		t.Error("invalid slot should read back empty")
	}
	func() {
		defer func() {
			err, ok := recover().(error)
			if !ok || !errors.Is(err, ErrInvalidPlayer) {
				t.Errorf("SetPlayer() on invalid slot recovered %v", err)
			}
		}()
		m.SetPlayer(PlayerID(5), NewInputFrame(ButtonA))
	}()
	m.SetPlayer(Player2, NewInputFrame(ButtonB))
	if !m.Player2().Has(ButtonB) {
		t.Error("Player2 input lost")
	}
}

func TestEdgeTracker(t *testing.T) {
	var e EdgeTracker

	held := MultiInputFrame{}
	held.SetPlayer(Player1, NewInputFrame(ButtonA, ButtonRight))

	pressed := e.Update(held)
	if !pressed.Player1().Has(ButtonA) || !pressed.Player1().Has(ButtonRight) {
		t.Fatal("first frame should report rising edges")
	}

	// Holding the same buttons produces no new presses.
	pressed = e.Update(held)
	if pressed.Player1() != 0 {
		t.Errorf("held buttons re-triggered: %v", pressed.Player1().Buttons())
	}

	// Release and press again.
	e.Update(MultiInputFrame{})
	pressed = e.Update(held)
	if !pressed.Player1().Has(ButtonA) {
		t.Error("re-press after release should trigger")
	}

	e.Reset()
	pressed = e.Update(held)
	if !pressed.Player1().Has(ButtonRight) {
		t.Error("Reset should make held buttons count as new presses")
	}
}
