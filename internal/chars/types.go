// Package chars holds per-character data tables: animation timing, collision
// boxes keyed by (state, frame) and the special-move list. The tables are
// plain data; parsing lives in the formats sub-package.
package chars

import "github.com/vovakirdan/tui-fighter/internal/core"

// Table limits. Entries beyond these are dropped when a config is stored.
const (
	MaxAnimations     = 50
	MaxAnimFrames     = 30
	MaxBoxConfigs     = 100
	MaxBoxesPerFrame  = 10
	MaxSpecialMoves   = 10
	MaxCommandLength  = 10
	NumCharacterSlots = 4
)

// DefaultAnimGravity is used for animations that do not set their own gravity.
const DefaultAnimGravity = 0.5

// AnimationConfig is the timing and alignment of one animation state.
type AnimationConfig struct {
	StateID    int
	XAlign     int
	YAlign     int
	FrameTimes []int
	HSpeed     float64
	VSpeed     float64
	Gravity    float64
}

// FrameCount returns the number of frames in the animation.
func (a AnimationConfig) FrameCount() int {
	return len(a.FrameTimes)
}

// WrapFrame maps a running frame counter onto the animation's frame range.
// Returns 0 for an animation without frames.
func (a AnimationConfig) WrapFrame(frame int) int {
	n := len(a.FrameTimes)
	if n == 0 || frame < 0 {
		return 0
	}
	return frame % n
}

// CollisionBoxConfig lists the sprite-relative boxes active on one frame of
// one state. Offsets are relative to the player anchor while facing right.
type CollisionBoxConfig struct {
	StateID   int
	Frame     int
	Hurtboxes []core.Box
	Hitboxes  []core.Box
}

// FirstHurtbox returns the first hurtbox, if any.
func (c CollisionBoxConfig) FirstHurtbox() (core.Box, bool) {
	if len(c.Hurtboxes) == 0 {
		return core.Box{}, false
	}
	return c.Hurtboxes[0], true
}

// FirstHitbox returns the first hitbox, if any.
func (c CollisionBoxConfig) FirstHitbox() (core.Box, bool) {
	if len(c.Hitboxes) == 0 {
		return core.Box{}, false
	}
	return c.Hitboxes[0], true
}

// SpecialKind classifies a special move.
type SpecialKind int

const (
	KindProjectile SpecialKind = iota
	KindMelee
	KindBuff
)

var kindNames = [...]string{"projectile", "melee", "buff"}

// String returns the lowercase kind name.
func (k SpecialKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseSpecialKind accepts a kind name or its numeric form.
func ParseSpecialKind(s string) (SpecialKind, bool) {
	for i, n := range kindNames {
		if s == n {
			return SpecialKind(i), true
		}
	}
	switch s {
	case "0":
		return KindProjectile, true
	case "1":
		return KindMelee, true
	case "2":
		return KindBuff, true
	}
	return KindProjectile, false
}

// SpecialMoveConfig describes one special move as shown to players.
type SpecialMoveConfig struct {
	Name    string
	Command []int
	Damage  int
	Kind    SpecialKind
}

// CharacterConfig is the full data set for one character.
type CharacterConfig struct {
	Name       string
	Animations []AnimationConfig
	Boxes      []CollisionBoxConfig
	Specials   []SpecialMoveConfig
}

// Empty reports whether the config carries no tables at all.
func (c CharacterConfig) Empty() bool {
	return len(c.Animations) == 0 && len(c.Boxes) == 0 && len(c.Specials) == 0
}

// truncate enforces the table limits on a copy of cfg.
func truncate(cfg CharacterConfig) CharacterConfig {
	out := CharacterConfig{Name: cfg.Name}

	anims := cfg.Animations
	if len(anims) > MaxAnimations {
		anims = anims[:MaxAnimations]
	}
	for _, a := range anims {
		if len(a.FrameTimes) > MaxAnimFrames {
			a.FrameTimes = a.FrameTimes[:MaxAnimFrames]
		}
		a.FrameTimes = append([]int(nil), a.FrameTimes...)
		out.Animations = append(out.Animations, a)
	}

	boxes := cfg.Boxes
	if len(boxes) > MaxBoxConfigs {
		boxes = boxes[:MaxBoxConfigs]
	}
	for _, b := range boxes {
		b.Hurtboxes = capBoxes(b.Hurtboxes)
		b.Hitboxes = capBoxes(b.Hitboxes)
		out.Boxes = append(out.Boxes, b)
	}

	specials := cfg.Specials
	if len(specials) > MaxSpecialMoves {
		specials = specials[:MaxSpecialMoves]
	}
	for _, s := range specials {
		if len(s.Command) > MaxCommandLength {
			s.Command = s.Command[:MaxCommandLength]
		}
		s.Command = append([]int(nil), s.Command...)
		out.Specials = append(out.Specials, s)
	}

	return out
}

func capBoxes(in []core.Box) []core.Box {
	if len(in) > MaxBoxesPerFrame {
		in = in[:MaxBoxesPerFrame]
	}
	return append([]core.Box(nil), in...)
}
