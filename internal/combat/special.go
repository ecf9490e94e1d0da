package combat

import "github.com/vovakirdan/tui-fighter/internal/core"

// executeSpecial performs the caster's character move and starts the
// special cooldown. Every cast emits a special effect, even when nothing
// lands.
func (s *Sim) executeSpecial(id core.PlayerID) {
	p := &s.players[id]
	opp := &s.players[id.Opponent()]
	sp := &s.cfg.Specials

	s.emit(EffectSpecial, id)

	facing := float64(p.Facing)
	switch p.CharacterID {
	case CharFire:
		s.pool.Spawn(Projectile{
			X:        p.X + sp.FireOffset*facing,
			Y:        p.Y,
			VX:       sp.FireSpeed * facing,
			Owner:    id,
			Type:     p.CharacterID,
			Lifetime: s.cfg.Projectiles.Lifetime,
		}, s.cfg.Projectiles.Size)

	case CharWater:
		p.heal(sp.WaterHeal, s.cfg.Round.MaxHealth)

	case CharEarth:
		// Ground stomp only reaches a grounded opponent
		if core.AbsF(p.X-opp.X) < sp.EarthRange && opp.OnGround && opp.Alive() {
			s.strike(id, sp.EarthDamage)
		}

	case CharWind:
		p.Dashing = true
		p.DashTimer = sp.WindDuration
		// Range is checked once at cast time, not during the dash
		if core.AbsF(p.X-opp.X) < sp.WindRange && opp.Alive() {
			s.strike(id, sp.WindDamage)
		}
	}

	p.SpecialCooldown = sp.Cooldown
}
