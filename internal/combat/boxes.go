package combat

import (
	"github.com/vovakirdan/tui-fighter/internal/chars"
	"github.com/vovakirdan/tui-fighter/internal/core"
)

// BoxSource tells where a derived box came from.
type BoxSource int

const (
	SourceNone    BoxSource = iota // No box this tick
	SourceConfig                   // Character box table
	SourceDefault                  // Built-in geometry
)

var sourceNames = [...]string{"none", "config", "default"}

// String returns the lowercase source name.
func (s BoxSource) String() string {
	if s < 0 || int(s) >= len(sourceNames) {
		return "unknown"
	}
	return sourceNames[s]
}

// Built-in geometry, relative to the player anchor while facing right.
var (
	bodyBox       = core.NewBox(-15, -40, 30, 40)
	hurtStanding  = core.NewBox(-12, -38, 24, 38)
	hurtCrouching = core.NewBox(-12, -19, 24, 19)
	hurtBlocking  = core.NewBox(-10, -35, 20, 35)
	hitStanding   = core.NewBox(10, -30, 35, 20)
	hitCrouching  = core.NewBox(10, -15, 35, 15)
	clashBox      = core.NewBox(0, -30, 45, 25)
)

// Geometry derives collision boxes for players from the character tables,
// falling back to the built-in boxes when a table has no entry. Boxes are
// derived fresh on every call.
type Geometry struct {
	store  *chars.Store
	window attackWindow
}

type attackWindow struct {
	activeStart, activeEnd int
	clashStart, clashEnd   int
}

func (w attackWindow) active(frame int) bool {
	return frame >= w.activeStart && frame <= w.activeEnd
}

func (w attackWindow) clashing(frame int) bool {
	return frame >= w.clashStart && frame <= w.clashEnd
}

// Body returns the push box used to keep players apart.
func (g Geometry) Body(p *Player) core.Box {
	return bodyBox.Translate(p.X, p.Y)
}

// hurtKey maps a player's state onto the box table state id.
func hurtKey(p *Player) int {
	switch p.State {
	case StateWalk:
		if p.Facing > 0 {
			return KeyWalkRight
		}
		return KeyWalkLeft
	case StateJump:
		return KeyJump
	case StateAttack:
		return KeyAttack
	case StateCrouch:
		return KeyCrouch
	case StateCrouchAttack:
		return KeyCrouchAttack
	}
	if p.Blocking && p.Crouching {
		return KeyCrouchBlock
	}
	return KeyIdle
}

// Hurtbox returns the vulnerable area of a player.
func (g Geometry) Hurtbox(p *Player) (core.Box, BoxSource) {
	if entry, ok := g.store.Lookup(p.CharacterID, hurtKey(p), p.AnimFrame); ok {
		if rel, ok := entry.FirstHurtbox(); ok {
			return core.Place(rel, p.X, p.Y, p.Facing), SourceConfig
		}
	}

	rel := hurtStanding
	switch {
	case p.Crouching:
		rel = hurtCrouching
	case p.Blocking:
		rel = hurtBlocking
	}
	return core.Place(rel, p.X, p.Y, p.Facing), SourceDefault
}

// Hitbox returns the attacking area of a player. It is inactive outside the
// attack states and outside the active window.
func (g Geometry) Hitbox(p *Player) (core.Box, BoxSource) {
	if !p.State.Attacking() || !g.window.active(p.AttackFrame) {
		return core.InactiveBox(p.X, p.Y), SourceNone
	}

	key, rel := KeyAttack, hitStanding
	if p.State == StateCrouchAttack {
		key, rel = KeyCrouchAttack, hitCrouching
	}

	if entry, ok := g.store.Lookup(p.CharacterID, key, p.AnimFrame); ok {
		if cfgRel, ok := entry.FirstHitbox(); ok {
			return core.Place(cfgRel, p.X, p.Y, p.Facing), SourceConfig
		}
	}
	return core.Place(rel, p.X, p.Y, p.Facing), SourceDefault
}

// ClashBox returns the priority box of a standing attack during startup and
// active frames. Crouch attacks never clash.
func (g Geometry) ClashBox(p *Player) core.Box {
	if p.State != StateAttack || !g.window.clashing(p.AttackFrame) {
		return core.InactiveBox(p.X, p.Y)
	}
	return core.Place(clashBox, p.X, p.Y, p.Facing)
}

// DebugBoxes is the full box set of a player for overlay rendering.
type DebugBoxes struct {
	Body       core.Box
	Hurt       core.Box
	HurtSource BoxSource
	Hit        core.Box
	HitSource  BoxSource
	Clash      core.Box
	Frame      int // Animation frame wrapped onto the loaded animation
}

// DisplayFrame maps the running animation counter onto the frames of the
// animation loaded for the player's current state. Without one the raw
// counter is returned.
func (g Geometry) DisplayFrame(p *Player) int {
	anim, ok := g.store.Animation(p.CharacterID, hurtKey(p))
	if !ok || len(anim.FrameTimes) == 0 {
		return p.AnimFrame
	}
	return anim.WrapFrame(p.AnimFrame)
}

// All derives every box of a player.
func (g Geometry) All(p *Player) DebugBoxes {
	hurt, hurtSrc := g.Hurtbox(p)
	hit, hitSrc := g.Hitbox(p)
	return DebugBoxes{
		Body:       g.Body(p),
		Hurt:       hurt,
		HurtSource: hurtSrc,
		Hit:        hit,
		HitSource:  hitSrc,
		Clash:      g.ClashBox(p),
		Frame:      g.DisplayFrame(p),
	}
}
