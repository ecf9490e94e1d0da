// Package config provides YAML-based tuning for the fighter: physics, melee
// and special-move numbers, round rules and arena layout.
package config

import (
	"errors"
	"fmt"
)

// FighterConfig contains every tunable of the combat simulation.
type FighterConfig struct {
	Physics     PhysicsConfig    `yaml:"physics"`
	Combat      CombatConfig     `yaml:"combat"`
	Specials    SpecialsConfig   `yaml:"specials"`
	Projectiles ProjectileConfig `yaml:"projectiles"`
	Round       RoundConfig      `yaml:"round"`
	Animation   AnimationConfig  `yaml:"animation"`
	Arena       ArenaConfig      `yaml:"arena"`
}

// PhysicsConfig defines movement and world bounds.
type PhysicsConfig struct {
	Gravity              float64 `yaml:"gravity"`
	JumpImpulse          float64 `yaml:"jump_impulse"`
	WalkSpeed            float64 `yaml:"walk_speed"`
	Friction             float64 `yaml:"friction"`               // Velocity multiplier with no input
	BlockSpeedMultiplier float64 `yaml:"block_speed_multiplier"` // Walk speed scale while blocking
	GroundY              float64 `yaml:"ground_y"`
	MinX                 float64 `yaml:"min_x"`
	MaxX                 float64 `yaml:"max_x"`
	WalkThreshold        float64 `yaml:"walk_threshold"` // |vx| above this shows as walking
}

// CombatConfig defines melee timing and damage.
type CombatConfig struct {
	NormalDamage   int     `yaml:"normal_damage"`
	BlockedDamage  int     `yaml:"blocked_damage"`
	AttackDuration int     `yaml:"attack_duration"`
	AttackCooldown int     `yaml:"attack_cooldown"`
	DamageFrame    int     `yaml:"damage_frame"` // The one attack frame that applies damage
	ActiveStart    int     `yaml:"active_start"`
	ActiveEnd      int     `yaml:"active_end"`
	ClashStart     int     `yaml:"clash_start"`
	ClashEnd       int     `yaml:"clash_end"`
	ClashKnockback float64 `yaml:"clash_knockback"`
	PushStep       float64 `yaml:"push_step"`
}

// SpecialsConfig defines the per-character special moves.
type SpecialsConfig struct {
	Cooldown     int     `yaml:"cooldown"`
	FireDamage   int     `yaml:"fire_damage"`
	FireSpeed    float64 `yaml:"fire_speed"`
	FireOffset   float64 `yaml:"fire_offset"`
	WaterHeal    int     `yaml:"water_heal"`
	EarthDamage  int     `yaml:"earth_damage"`
	EarthRange   float64 `yaml:"earth_range"`
	WindDamage   int     `yaml:"wind_damage"`
	WindSpeed    float64 `yaml:"wind_speed"`
	WindDuration int     `yaml:"wind_duration"`
	WindRange    float64 `yaml:"wind_range"`
}

// ProjectileConfig defines projectile lifetime, size and the live area.
type ProjectileConfig struct {
	Lifetime int     `yaml:"lifetime"`
	Size     float64 `yaml:"size"`
	BoundsW  float64 `yaml:"bounds_w"`
	BoundsH  float64 `yaml:"bounds_h"`
}

// RoundConfig defines the best-of-N structure.
type RoundConfig struct {
	TransitionTicks int `yaml:"transition_ticks"`
	RoundsToWin     int `yaml:"rounds_to_win"`
	MaxHealth       int `yaml:"max_health"`
}

// AnimationConfig defines the animation cadence.
type AnimationConfig struct {
	TicksPerFrame int `yaml:"ticks_per_frame"`
}

// ArenaConfig defines the round start positions.
type ArenaConfig struct {
	P1StartX float64 `yaml:"p1_start_x"`
	P2StartX float64 `yaml:"p2_start_x"`
}

// ErrInvalidConfig is wrapped by Validate failures.
var ErrInvalidConfig = errors.New("config: invalid fighter config")

// Validate rejects values the simulation cannot run with.
func (c FighterConfig) Validate() error {
	switch {
	case c.Physics.MinX >= c.Physics.MaxX:
		return fmt.Errorf("%w: min_x %v must be below max_x %v", ErrInvalidConfig, c.Physics.MinX, c.Physics.MaxX)
	case c.Combat.AttackDuration <= 0:
		return fmt.Errorf("%w: attack_duration must be positive", ErrInvalidConfig)
	case c.Combat.ActiveStart > c.Combat.ActiveEnd:
		return fmt.Errorf("%w: active window [%d,%d] is empty", ErrInvalidConfig, c.Combat.ActiveStart, c.Combat.ActiveEnd)
	case c.Combat.AttackCooldown < c.Combat.AttackDuration:
		return fmt.Errorf("%w: attack_cooldown %d shorter than attack_duration %d", ErrInvalidConfig, c.Combat.AttackCooldown, c.Combat.AttackDuration)
	case c.Combat.ClashStart > c.Combat.ClashEnd:
		return fmt.Errorf("%w: clash window [%d,%d] is empty", ErrInvalidConfig, c.Combat.ClashStart, c.Combat.ClashEnd)
	case c.Combat.DamageFrame < c.Combat.ActiveStart || c.Combat.DamageFrame > c.Combat.ActiveEnd:
		return fmt.Errorf("%w: damage_frame %d outside active window", ErrInvalidConfig, c.Combat.DamageFrame)
	case c.Round.RoundsToWin <= 0:
		return fmt.Errorf("%w: rounds_to_win must be positive", ErrInvalidConfig)
	case c.Round.MaxHealth <= 0:
		return fmt.Errorf("%w: max_health must be positive", ErrInvalidConfig)
	case c.Round.TransitionTicks <= 0:
		return fmt.Errorf("%w: transition_ticks must be positive", ErrInvalidConfig)
	case c.Animation.TicksPerFrame <= 0:
		return fmt.Errorf("%w: ticks_per_frame must be positive", ErrInvalidConfig)
	case c.Projectiles.Lifetime <= 0:
		return fmt.Errorf("%w: projectile lifetime must be positive", ErrInvalidConfig)
	}
	return nil
}
