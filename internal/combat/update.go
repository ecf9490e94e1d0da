package combat

import "github.com/vovakirdan/tui-fighter/internal/core"

// updatePlayer runs one tick of input, attack and physics for a slot.
func (s *Sim) updatePlayer(id core.PlayerID, in core.InputFrame) {
	p := &s.players[id]
	phys := &s.cfg.Physics

	// The melee cooldown runs even for a knocked-out player
	if p.AttackCooldown > 0 {
		p.AttackCooldown--
	}

	if !p.Alive() {
		return
	}

	p.Crouching = in.Has(core.ButtonDown) && p.OnGround

	wasBlocking := p.Blocking
	p.Blocking = in.Has(core.ButtonB)
	if p.Blocking && !wasBlocking {
		s.emit(EffectBlock, id)
	}

	// Horizontal movement; crouching only decays
	if !p.Crouching {
		mult := 1.0
		if p.Blocking {
			mult = phys.BlockSpeedMultiplier
		}
		switch {
		case in.Has(core.ButtonLeft):
			p.VX = -phys.WalkSpeed * mult
			p.Facing = -1
		case in.Has(core.ButtonRight):
			p.VX = phys.WalkSpeed * mult
			p.Facing = 1
		default:
			p.VX *= phys.Friction
		}
	} else {
		p.VX *= phys.Friction
	}

	// Jump
	if in.Has(core.ButtonUp) && p.OnGround && !p.Blocking && !p.Crouching {
		p.VY = phys.JumpImpulse
		p.OnGround = false
		s.emit(EffectJump, id)
	}

	// Attack start
	if in.Has(core.ButtonA) && p.AttackCooldown == 0 && !p.Blocking {
		s.emit(EffectAttack, id)
		if p.Crouching {
			p.State = StateCrouchAttack
		} else {
			p.State = StateAttack
		}
		p.AttackFrame = 0
		p.AttackCooldown = s.cfg.Combat.AttackCooldown
	}

	if p.State.Attacking() {
		s.advanceAttack(id)
	}

	if p.SpecialCooldown > 0 {
		p.SpecialCooldown--
	}

	// Dash overrides walking velocity until the timer runs out
	if p.Dashing {
		p.DashTimer--
		p.VX = s.cfg.Specials.WindSpeed * float64(p.Facing)
		if p.DashTimer <= 0 {
			p.Dashing = false
		}
	}

	if in.Has(core.ButtonY) && p.SpecialCooldown == 0 && !p.Blocking {
		s.executeSpecial(id)
	}

	// Physics
	p.VY += phys.Gravity
	p.X += p.VX
	p.Y += p.VY

	if p.Y >= phys.GroundY {
		p.Y = phys.GroundY
		p.VY = 0
		p.OnGround = true
	}

	p.X = core.ClampF(p.X, phys.MinX, phys.MaxX)
}

// animate advances the animation counter of a player, alive or not.
func (s *Sim) animate(p *Player) {
	p.AnimTimer++
	if p.AnimTimer >= s.cfg.Animation.TicksPerFrame {
		p.AnimTimer = 0
		p.AnimFrame++
	}
}

// deriveState sets the movement state of a living player that is neither
// attacking nor blocking.
func (s *Sim) deriveState(p *Player) {
	if !p.Alive() || p.State.Attacking() || p.Blocking {
		return
	}
	switch {
	case !p.OnGround:
		p.State = StateJump
	case p.Crouching:
		p.State = StateCrouch
	case core.AbsF(p.VX) > s.cfg.Physics.WalkThreshold:
		p.State = StateWalk
	default:
		p.State = StateIdle
	}
}
