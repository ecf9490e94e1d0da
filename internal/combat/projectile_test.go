package combat

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-fighter/internal/core"
)

func TestPoolCapacity(t *testing.T) {
	s := newTestSim(t, CharFire, CharFire)

	for i := range 5 {
		ok, err := s.SpawnProjectile(core.Player1, 0, 320, 100, 0, 0)
		if err != nil {
			t.Fatalf("SpawnProjectile() error: %v", err)
		}
		if want := i < PoolSize; ok != want {
			t.Errorf("spawn %d ok = %v, expected %v", i+1, ok, want)
		}
	}
	if n := s.pool.ActiveCount(); n != PoolSize {
		t.Errorf("active = %d, expected %d", n, PoolSize)
	}

	if _, err := s.SpawnProjectile(core.PlayerID(3), 0, 0, 0, 0, 0); !errors.Is(err, ErrInvalidPlayer) {
		t.Errorf("invalid owner error = %v", err)
	}
}

func TestSpawnHitbox(t *testing.T) {
	s := newTestSim(t, CharFire, CharFire)
	s.SpawnProjectile(core.Player1, 0, 300, 200, 8, 0)

	pr := s.Projectiles()[0]
	if !pr.Active || pr.Lifetime != 180 {
		t.Errorf("projectile = %+v", pr)
	}
	if pr.Hitbox != core.NewBox(285, 185, 30, 30) {
		t.Errorf("Hitbox = %+v, expected centered 30x30", pr.Hitbox)
	}
}

func TestProjectileLifetime(t *testing.T) {
	s := newTestSim(t, CharFire, CharFire)
	s.SpawnProjectile(core.Player1, 0, 320, 100, 0, 0)

	stepN(s, 179, idle())
	if pr := s.Projectiles()[0]; !pr.Active || pr.Lifetime != 1 {
		t.Fatalf("after 179 ticks: %+v", pr)
	}
	s.Step(idle())
	if s.Projectiles()[0].Active {
		t.Error("projectile should expire after 180 ticks")
	}
}

func TestProjectileBounds(t *testing.T) {
	tests := []struct {
		name           string
		x, y, vx, vy   float64
		activeAfterOne bool
	}{
		{"leaves right edge", 636, 100, 8, 0, false},
		{"leaves left edge", 4, 100, -8, 0, false},
		{"leaves top", 320, 3, 0, -4, false},
		{"leaves bottom", 320, 478, 0, 4, false},
		{"on the edge stays", 632, 100, 8, 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSim(t, CharFire, CharFire)
			s.SpawnProjectile(core.Player1, 0, tc.x, tc.y, tc.vx, tc.vy)
			s.Step(idle())
			if got := s.Projectiles()[0].Active; got != tc.activeAfterOne {
				t.Errorf("active = %v, expected %v", got, tc.activeAfterOne)
			}
		})
	}
}

func TestProjectileHitsOpponentOnce(t *testing.T) {
	s := newTestSim(t, CharFire, CharFire)
	s.SpawnProjectile(core.Player1, 0, 470, 330, 8, 0)

	res := s.Step(idle())
	if h := s.Player(core.Player2).Health; h != 90 {
		t.Errorf("P2 health = %d, expected 90", h)
	}
	if s.Projectiles()[0].Active {
		t.Error("projectile should be spent on hit")
	}
	if countEffects(res.Effects, EffectHit) != 1 {
		t.Errorf("effects = %v", res.Effects)
	}
}

func TestProjectileIgnoresOwner(t *testing.T) {
	s := newTestSim(t, CharFire, CharFire)
	// Passes straight through its owner.
	s.SpawnProjectile(core.Player1, 0, 140, 330, 1, 0)
	s.Step(idle())
	if h := s.Player(core.Player1).Health; h != 100 {
		t.Errorf("owner took damage: %d", h)
	}
	if !s.Projectiles()[0].Active {
		t.Error("projectile should still be flying")
	}
}

func TestProjectileBlocked(t *testing.T) {
	s := newTestSim(t, CharFire, CharFire)
	s.SpawnProjectile(core.Player2, 0, 170, 330, -8, 0)

	res := s.Step(input([]core.Button{core.ButtonB}, nil))
	if h := s.Player(core.Player1).Health; h != 99 {
		t.Errorf("P1 health = %d, expected 99", h)
	}
	if countEffects(res.Effects, EffectHit) != 0 {
		t.Error("blocked projectile emitted a hit")
	}
}
