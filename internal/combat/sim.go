package combat

import (
	"fmt"

	"github.com/vovakirdan/tui-fighter/internal/chars"
	"github.com/vovakirdan/tui-fighter/internal/config"
	"github.com/vovakirdan/tui-fighter/internal/core"
)

// StepResult is returned by Sim.Step after each tick.
type StepResult struct {
	Effects []Effect // Cues raised this tick, in order
	Phase   Phase
	Tick    int // Gameplay ticks run so far this match
}

// Sim owns the whole fight: both players, the projectile pool and the round
// controller. It is not safe for concurrent use.
type Sim struct {
	cfg     config.FighterConfig
	geo     Geometry
	players [core.NumPlayers]Player
	pool    Pool
	match   Match
	effects []Effect
	ticks   int
}

// NewSim creates a fight between two roster characters. A nil store runs
// every character on built-in geometry.
func NewSim(cfg config.FighterConfig, store *chars.Store, p1Char, p2Char int) (*Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("combat: %w", err)
	}
	if store == nil {
		store = chars.NewStore()
	}

	s := &Sim{
		cfg: cfg,
		geo: Geometry{
			store: store,
			window: attackWindow{
				activeStart: cfg.Combat.ActiveStart,
				activeEnd:   cfg.Combat.ActiveEnd,
				clashStart:  cfg.Combat.ClashStart,
				clashEnd:    cfg.Combat.ClashEnd,
			},
		},
	}
	if err := s.SetCharacters(p1Char, p2Char); err != nil {
		return nil, err
	}
	return s, nil
}

// Step advances the fight by one tick. During the post-round freeze and
// after the match ends only the round controller runs.
func (s *Sim) Step(in core.MultiInputFrame) StepResult {
	s.effects = nil

	if s.match.Phase() == PhasePlaying {
		s.ticks++

		s.updatePlayer(core.Player1, in.Player1())
		s.updatePlayer(core.Player2, in.Player2())

		for i := range s.players {
			s.animate(&s.players[i])
			s.deriveState(&s.players[i])
		}

		s.resolveClash()
		s.separateBodies()
		s.updateProjectiles()
	}

	s.advanceRound()

	return StepResult{
		Effects: s.effects,
		Phase:   s.match.Phase(),
		Tick:    s.ticks,
	}
}

func (s *Sim) emit(kind EffectKind, source core.PlayerID) {
	s.effects = append(s.effects, Effect{Kind: kind, Source: source})
}

// SetCharacters picks both fighters and starts a fresh match.
func (s *Sim) SetCharacters(p1Char, p2Char int) error {
	for _, id := range []int{p1Char, p2Char} {
		if !chars.ValidID(id) {
			return fmt.Errorf("%w: %d", ErrInvalidCharacter, id)
		}
	}
	s.players[core.Player1].CharacterID = p1Char
	s.players[core.Player2].CharacterID = p2Char
	s.Rematch()
	return nil
}

// Rematch resets round counters, both players and the projectile pool.
// Character picks are kept.
func (s *Sim) Rematch() {
	s.match = newMatch()
	s.ticks = 0
	s.resetPlayers()
}

// resetPlayers puts both players back at their start positions and clears
// any projectile still in flight.
func (s *Sim) resetPlayers() {
	for i := range s.players {
		id := core.PlayerID(i)
		s.players[i] = newPlayer(id, s.players[i].CharacterID, &s.cfg)
	}
	s.pool.Clear()
}

// SpawnProjectile places a projectile owned by a slot. It reports false when
// the pool is full.
func (s *Sim) SpawnProjectile(owner core.PlayerID, typ int, x, y, vx, vy float64) (bool, error) {
	if !owner.Valid() {
		return false, fmt.Errorf("%w: %d", ErrInvalidPlayer, owner)
	}
	ok := s.pool.Spawn(Projectile{
		X: x, Y: y, VX: vx, VY: vy,
		Owner:    owner,
		Type:     typ,
		Lifetime: s.cfg.Projectiles.Lifetime,
	}, s.cfg.Projectiles.Size)
	return ok, nil
}

// ExecuteSpecial casts the special move of a slot right away, ignoring the
// cooldown and button state. Effects raised are returned.
func (s *Sim) ExecuteSpecial(id core.PlayerID) ([]Effect, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPlayer, id)
	}
	s.effects = nil
	s.executeSpecial(id)
	return s.effects, nil
}

// Player returns a copy of a slot's state. It panics if id is not a valid
// slot.
func (s *Sim) Player(id core.PlayerID) Player {
	mustBeSlot(id)
	return s.players[id]
}

func mustBeSlot(id core.PlayerID) {
	if !id.Valid() {
		panic(fmt.Errorf("%w: %d", ErrInvalidPlayer, id))
	}
}

// Projectiles returns every pool slot.
func (s *Sim) Projectiles() [PoolSize]Projectile {
	return s.pool.Slots()
}

// Match returns the round controller state.
func (s *Sim) Match() Match {
	return s.match
}

// Boxes derives the current collision boxes of a slot for debug drawing.
// It panics if id is not a valid slot.
func (s *Sim) Boxes(id core.PlayerID) DebugBoxes {
	mustBeSlot(id)
	return s.geo.All(&s.players[id])
}

// Config returns the tuning the fight runs with.
func (s *Sim) Config() config.FighterConfig {
	return s.cfg
}
