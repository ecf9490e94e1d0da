package combat

import "github.com/vovakirdan/tui-fighter/internal/core"

// PoolSize is the number of projectiles that can be in flight at once.
const PoolSize = 4

// Projectile is one pooled projectile slot.
type Projectile struct {
	Active   bool
	X, Y     float64
	VX, VY   float64
	Owner    core.PlayerID
	Type     int // Character id of the caster
	Lifetime int // Ticks remaining
	Hitbox   core.Box
}

// Pool is a fixed set of projectile slots. A slot is free when inactive.
type Pool struct {
	slots [PoolSize]Projectile
}

// projectileBox returns a square box of side size centered on (x, y).
func projectileBox(x, y, size float64) core.Box {
	half := size / 2
	return core.NewBox(x-half, y-half, size, size)
}

// Spawn fills the first free slot. It returns false and drops the request
// when every slot is in use.
func (p *Pool) Spawn(pr Projectile, size float64) bool {
	for i := range p.slots {
		if p.slots[i].Active {
			continue
		}
		pr.Active = true
		pr.Hitbox = projectileBox(pr.X, pr.Y, size)
		p.slots[i] = pr
		return true
	}
	return false
}

// ActiveCount returns the number of slots in use.
func (p *Pool) ActiveCount() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].Active {
			n++
		}
	}
	return n
}

// Slots returns a copy of every slot, active or not.
func (p *Pool) Slots() [PoolSize]Projectile {
	return p.slots
}

// Clear frees every slot.
func (p *Pool) Clear() {
	p.slots = [PoolSize]Projectile{}
}

// updateProjectiles moves every active projectile and resolves hits against
// the owner's opponent. A projectile is spent on its first hit.
func (s *Sim) updateProjectiles() {
	pc := &s.cfg.Projectiles

	for i := range s.pool.slots {
		pr := &s.pool.slots[i]
		if !pr.Active {
			continue
		}

		pr.X += pr.VX
		pr.Y += pr.VY
		pr.Lifetime--
		pr.Hitbox = projectileBox(pr.X, pr.Y, pc.Size)

		if pr.X < 0 || pr.X > pc.BoundsW || pr.Y < 0 || pr.Y > pc.BoundsH || pr.Lifetime <= 0 {
			pr.Active = false
			continue
		}

		target := &s.players[pr.Owner.Opponent()]
		hurt, _ := s.geo.Hurtbox(target)
		if core.Overlaps(pr.Hitbox, hurt) && target.Alive() {
			s.strike(pr.Owner, s.cfg.Specials.FireDamage)
			pr.Active = false
		}
	}
}
