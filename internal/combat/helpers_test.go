package combat

import (
	"testing"

	"github.com/vovakirdan/tui-fighter/internal/chars"
	"github.com/vovakirdan/tui-fighter/internal/config"
	"github.com/vovakirdan/tui-fighter/internal/core"
)

func newTestSim(t *testing.T, p1Char, p2Char int) *Sim {
	t.Helper()
	s, err := NewSim(config.DefaultFighterConfig(), nil, p1Char, p2Char)
	if err != nil {
		t.Fatalf("NewSim() error: %v", err)
	}
	return s
}

func newTestSimWithStore(t *testing.T, store *chars.Store) *Sim {
	t.Helper()
	s, err := NewSim(config.DefaultFighterConfig(), store, CharFire, CharFire)
	if err != nil {
		t.Fatalf("NewSim() error: %v", err)
	}
	return s
}

// input builds a two-player frame from held buttons.
func input(p1, p2 []core.Button) core.MultiInputFrame {
	var m core.MultiInputFrame
	m.SetPlayer(core.Player1, core.NewInputFrame(p1...))
	m.SetPlayer(core.Player2, core.NewInputFrame(p2...))
	return m
}

func p1Holds(buttons ...core.Button) core.MultiInputFrame {
	return input(buttons, nil)
}

func idle() core.MultiInputFrame {
	return core.MultiInputFrame{}
}

// stepN runs n ticks with the same input and collects every effect.
func stepN(s *Sim, n int, in core.MultiInputFrame) []Effect {
	var all []Effect
	for range n {
		all = append(all, s.Step(in).Effects...)
	}
	return all
}

func countEffects(effects []Effect, kind EffectKind) int {
	n := 0
	for _, e := range effects {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
