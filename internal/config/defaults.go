package config

import (
	_ "embed"
)

//go:embed defaults/fighter.yaml
var defaultFighterYAML []byte

// DefaultFighterConfig returns the stock tuning.
func DefaultFighterConfig() FighterConfig {
	return FighterConfig{
		Physics: PhysicsConfig{
			Gravity:              0.5,
			JumpImpulse:          -12,
			WalkSpeed:            3,
			Friction:             0.8,
			BlockSpeedMultiplier: 0.5,
			GroundY:              350,
			MinX:                 20,
			MaxX:                 620,
			WalkThreshold:        0.5,
		},
		Combat: CombatConfig{
			NormalDamage:   5,
			BlockedDamage:  1,
			AttackDuration: 10,
			AttackCooldown: 15,
			DamageFrame:    2,
			ActiveStart:    2,
			ActiveEnd:      6,
			ClashStart:     1,
			ClashEnd:       7,
			ClashKnockback: 4,
			PushStep:       2,
		},
		Specials: SpecialsConfig{
			Cooldown:     180,
			FireDamage:   10,
			FireSpeed:    8,
			FireOffset:   30,
			WaterHeal:    15,
			EarthDamage:  12,
			EarthRange:   80,
			WindDamage:   8,
			WindSpeed:    12,
			WindDuration: 15,
			WindRange:    50,
		},
		Projectiles: ProjectileConfig{
			Lifetime: 180,
			Size:     30,
			BoundsW:  640,
			BoundsH:  480,
		},
		Round: RoundConfig{
			TransitionTicks: 120, // 2 seconds at 60 ticks
			RoundsToWin:     2,
			MaxHealth:       100,
		},
		Animation: AnimationConfig{
			TicksPerFrame: 5,
		},
		Arena: ArenaConfig{
			P1StartX: 150,
			P2StartX: 490,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultFighterYAML
}
