// Package fighter implements the session flow around a fight: title screen,
// character select, the match itself and the winner screen.
package fighter

import (
	"fmt"

	"github.com/vovakirdan/tui-fighter/internal/chars"
	"github.com/vovakirdan/tui-fighter/internal/combat"
	"github.com/vovakirdan/tui-fighter/internal/config"
	"github.com/vovakirdan/tui-fighter/internal/core"
)

// Mode is the current screen of a session.
type Mode string

const (
	ModeTitle  Mode = "title"
	ModeSelect Mode = "select"
	ModeFight  Mode = "fight"
	ModeWinner Mode = "winner"
)

// MatchResult summarises a finished match.
type MatchResult struct {
	P1Char   int
	P2Char   int
	P1Rounds int
	P2Rounds int
	Winner   core.PlayerID
	Rounds   int // Rounds played
	Ticks    int // Gameplay ticks across all rounds
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	Mode    Mode
	Effects []combat.Effect
	Result  *MatchResult // Set only on the tick a match ends
	Err     error        // A confirmed pick the fight could not start with
}

// Game drives one local two-player session.
type Game struct {
	sim     *combat.Sim
	store   *chars.Store
	runtime core.RuntimeConfig

	mode   Mode
	edges  core.EdgeTracker
	cursor [core.NumPlayers]int
	ready  [core.NumPlayers]bool
	debug  bool
	last   *MatchResult
}

// New creates a session. The store supplies character tables; nil runs on
// built-in geometry.
func New(cfg config.FighterConfig, store *chars.Store) (*Game, error) {
	if store == nil {
		store = chars.NewStore()
	}
	sim, err := combat.NewSim(cfg, store, combat.CharFire, combat.CharWater)
	if err != nil {
		return nil, fmt.Errorf("fighter: %w", err)
	}
	g := &Game{sim: sim, store: store}
	g.Reset(core.DefaultConfig())
	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "fighter"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "HAMOOPI"
}

// Reset returns to the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.mode = ModeTitle
	g.edges.Reset()
	g.cursor = [core.NumPlayers]int{combat.CharFire, combat.CharWater}
	g.ready = [core.NumPlayers]bool{}
	g.debug = runtime.Debug
	g.last = nil
}

// Step advances the session by one tick. held is the raw button state; press
// edges for menus are derived here.
func (g *Game) Step(held core.MultiInputFrame) StepResult {
	pressed := g.edges.Update(held)

	switch g.mode {
	case ModeTitle:
		if pressed.Player1().Has(core.ButtonStart) || pressed.Player2().Has(core.ButtonStart) {
			g.enterSelect()
		}

	case ModeSelect:
		if err := g.stepSelect(pressed); err != nil {
			return StepResult{Mode: g.mode, Err: err}
		}

	case ModeFight:
		return g.stepFight(held, pressed)

	case ModeWinner:
		if pressed.Player1().Has(core.ButtonStart) || pressed.Player2().Has(core.ButtonStart) {
			// Rematch keeps the previous picks under the cursors
			g.cursor[core.Player1] = g.sim.Player(core.Player1).CharacterID
			g.cursor[core.Player2] = g.sim.Player(core.Player2).CharacterID
			g.enterSelect()
		}
	}

	return StepResult{Mode: g.mode}
}

// StartFight skips the menus and begins a match between two characters.
func (g *Game) StartFight(p1Char, p2Char int) error {
	if err := g.sim.SetCharacters(p1Char, p2Char); err != nil {
		return fmt.Errorf("fighter: %w", err)
	}
	g.cursor = [core.NumPlayers]int{p1Char, p2Char}
	g.ready = [core.NumPlayers]bool{true, true}
	g.mode = ModeFight
	g.last = nil
	return nil
}

func (g *Game) enterSelect() {
	g.mode = ModeSelect
	g.ready = [core.NumPlayers]bool{}
}

// stepSelect moves the cursors and starts the fight once both slots are
// ready. A pick the fight rejects sends both players back to choosing.
func (g *Game) stepSelect(pressed core.MultiInputFrame) error {
	for i := range core.NumPlayers {
		id := core.PlayerID(i)
		if g.ready[id] {
			continue
		}
		in := pressed.Player(id)
		if in.Has(core.ButtonLeft) {
			g.cursor[id] = (g.cursor[id] - 1 + chars.NumCharacterSlots) % chars.NumCharacterSlots
		}
		if in.Has(core.ButtonRight) {
			g.cursor[id] = (g.cursor[id] + 1) % chars.NumCharacterSlots
		}
		if in.Has(core.ButtonA) {
			g.ready[id] = true
		}
	}

	if !g.ready[core.Player1] || !g.ready[core.Player2] {
		return nil
	}
	if err := g.StartFight(g.cursor[core.Player1], g.cursor[core.Player2]); err != nil {
		g.ready = [core.NumPlayers]bool{}
		return err
	}
	return nil
}

func (g *Game) stepFight(held, pressed core.MultiInputFrame) StepResult {
	if pressed.Player1().Has(core.ButtonSelect) {
		g.debug = !g.debug
	}

	res := g.sim.Step(held)
	out := StepResult{Mode: g.mode, Effects: res.Effects}

	if res.Phase == combat.PhaseMatchOver {
		m := g.sim.Match()
		winner, _ := m.Winner()
		g.last = &MatchResult{
			P1Char:   g.sim.Player(core.Player1).CharacterID,
			P2Char:   g.sim.Player(core.Player2).CharacterID,
			P1Rounds: m.P1Rounds,
			P2Rounds: m.P2Rounds,
			Winner:   winner,
			Rounds:   m.Round,
			Ticks:    res.Tick,
		}
		g.mode = ModeWinner
		out.Mode = g.mode
		out.Result = g.last
	}
	return out
}

// Store returns the character tables the session fights with.
func (g *Game) Store() *chars.Store {
	return g.store
}

// Mode returns the current screen.
func (g *Game) Mode() Mode {
	return g.mode
}

// Cursor returns the highlighted character of a slot on the select screen.
func (g *Game) Cursor(id core.PlayerID) int {
	if !id.Valid() {
		return 0
	}
	return g.cursor[id]
}

// Ready reports whether a slot confirmed its pick.
func (g *Game) Ready(id core.PlayerID) bool {
	if !id.Valid() {
		return false
	}
	return g.ready[id]
}

// Debug reports whether collision boxes should be drawn.
func (g *Game) Debug() bool {
	return g.debug
}

// Sim exposes the fight for read-only rendering.
func (g *Game) Sim() *combat.Sim {
	return g.sim
}

// LastResult returns the most recent finished match, if any.
func (g *Game) LastResult() *MatchResult {
	return g.last
}
