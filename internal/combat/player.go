package combat

import (
	"github.com/vovakirdan/tui-fighter/internal/config"
	"github.com/vovakirdan/tui-fighter/internal/core"
)

// Player is the per-round state of one fighter.
type Player struct {
	X, Y   float64
	VX, VY float64
	Health int
	State  State
	Facing int // +1 right, -1 left

	OnGround  bool
	Blocking  bool
	Crouching bool
	Dashing   bool

	CharacterID     int
	SpecialCooldown int
	DashTimer       int
	AttackFrame     int // Ticks since the attack started, 0 when not attacking
	AttackCooldown  int

	AnimFrame int // Grows without bound; wrap by the animation frame count
	AnimTimer int
}

// Alive reports whether the player still has health.
func (p *Player) Alive() bool {
	return p.Health > 0
}

// newPlayer returns the round-start state for a slot.
func newPlayer(id core.PlayerID, characterID int, cfg *config.FighterConfig) Player {
	p := Player{
		Y:           cfg.Physics.GroundY,
		Health:      cfg.Round.MaxHealth,
		State:       StateIdle,
		OnGround:    true,
		CharacterID: characterID,
	}
	if id == core.Player1 {
		p.X = cfg.Arena.P1StartX
		p.Facing = 1
	} else {
		p.X = cfg.Arena.P2StartX
		p.Facing = -1
	}
	return p
}

// applyDamage subtracts damage and clamps health at zero.
func (p *Player) applyDamage(amount int) {
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
}

// heal adds health up to max.
func (p *Player) heal(amount, max int) {
	p.Health += amount
	if p.Health > max {
		p.Health = max
	}
}
