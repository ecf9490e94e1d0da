package combat

import "github.com/vovakirdan/tui-fighter/internal/core"

// advanceAttack moves an attack forward one frame and applies its hit. Damage
// lands only on the damage frame, so one swing hits at most once.
func (s *Sim) advanceAttack(id core.PlayerID) {
	p := &s.players[id]
	cb := &s.cfg.Combat

	p.AttackFrame++
	if p.AttackFrame >= cb.AttackDuration {
		p.State = StateIdle
		p.AttackFrame = 0
	}

	if !s.geo.window.active(p.AttackFrame) {
		return
	}

	def := &s.players[id.Opponent()]
	if !def.Alive() {
		return
	}

	hit, _ := s.geo.Hitbox(p)
	hurt, _ := s.geo.Hurtbox(def)
	if core.Overlaps(hit, hurt) && p.AttackFrame == cb.DamageFrame {
		s.strike(id, cb.NormalDamage)
	}
}

// strike damages the attacker's opponent. A blocking defender takes the
// blocked amount instead.
func (s *Sim) strike(attacker core.PlayerID, damage int) {
	def := &s.players[attacker.Opponent()]
	if def.Blocking {
		def.applyDamage(s.cfg.Combat.BlockedDamage)
		s.emit(EffectBlock, attacker)
		return
	}
	def.applyDamage(damage)
	s.emit(EffectHit, attacker)
}

// resolveClash cancels both attacks when their clash boxes meet. It runs
// after both players have updated and does not undo damage already dealt.
func (s *Sim) resolveClash() {
	p1 := &s.players[core.Player1]
	p2 := &s.players[core.Player2]
	if !p1.State.Attacking() || !p2.State.Attacking() {
		return
	}

	if !core.Overlaps(s.geo.ClashBox(p1), s.geo.ClashBox(p2)) {
		return
	}

	kb := s.cfg.Combat.ClashKnockback
	for _, p := range []*Player{p1, p2} {
		p.State = StateIdle
		p.AttackFrame = 0
		p.VX = -kb * float64(p.Facing)
	}
	s.emit(EffectBlock, core.Player1)
}

// separateBodies pushes overlapping players apart by one fixed step.
func (s *Sim) separateBodies() {
	p1 := &s.players[core.Player1]
	p2 := &s.players[core.Player2]
	if !core.Overlaps(s.geo.Body(p1), s.geo.Body(p2)) {
		return
	}

	step := s.cfg.Combat.PushStep
	if p1.X < p2.X {
		p1.X -= step
		p2.X += step
	} else {
		p1.X += step
		p2.X -= step
	}
}
