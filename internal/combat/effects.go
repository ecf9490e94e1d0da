package combat

import "github.com/vovakirdan/tui-fighter/internal/core"

// EffectKind identifies a one-shot audiovisual cue raised by the simulation.
type EffectKind int

const (
	EffectJump EffectKind = iota
	EffectAttack
	EffectHit
	EffectBlock
	EffectSpecial
)

var effectNames = [...]string{"jump", "attack", "hit", "block", "special"}

// String returns the lowercase effect name.
func (k EffectKind) String() string {
	if k < 0 || int(k) >= len(effectNames) {
		return "unknown"
	}
	return effectNames[k]
}

// Effect is a cue emitted during a tick. Source is the player whose action
// caused it.
type Effect struct {
	Kind   EffectKind
	Source core.PlayerID
}
