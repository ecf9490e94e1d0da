package tui

import (
	"github.com/vovakirdan/tui-fighter/internal/combat"
)

// Effect sink sizing. The sink mirrors a small mixer: a fixed number of
// channels, each cue occupying one until it fades.
const (
	EffectSlots = 4
	effectTTL   = 20
)

type effectSlot struct {
	effect combat.Effect
	ttl    int
	age    int
}

// EffectSink holds the cues currently on screen. When every slot is busy the
// oldest cue is replaced.
type EffectSink struct {
	slots [EffectSlots]effectSlot
}

// Push plays a batch of cues in order.
func (s *EffectSink) Push(effects []combat.Effect) {
	for _, e := range effects {
		s.play(e)
	}
}

func (s *EffectSink) play(e combat.Effect) {
	idx, oldest := 0, -1
	for i := range s.slots {
		if s.slots[i].ttl == 0 {
			idx = i
			oldest = -1
			break
		}
		if s.slots[i].age > oldest {
			idx, oldest = i, s.slots[i].age
		}
	}
	s.slots[idx] = effectSlot{effect: e, ttl: effectTTL}
}

// Tick ages every cue by one frame.
func (s *EffectSink) Tick() {
	for i := range s.slots {
		if s.slots[i].ttl > 0 {
			s.slots[i].ttl--
			s.slots[i].age++
		}
	}
}

// Active returns the cues still playing, in slot order.
func (s *EffectSink) Active() []combat.Effect {
	var out []combat.Effect
	for _, sl := range s.slots {
		if sl.ttl > 0 {
			out = append(out, sl.effect)
		}
	}
	return out
}

// Reset silences every slot.
func (s *EffectSink) Reset() {
	s.slots = [EffectSlots]effectSlot{}
}

// effectLabel is the on-screen text for a cue.
func effectLabel(k combat.EffectKind) string {
	switch k {
	case combat.EffectJump:
		return "hop"
	case combat.EffectAttack:
		return "swing"
	case combat.EffectHit:
		return "HIT!"
	case combat.EffectBlock:
		return "BLOCK"
	case combat.EffectSpecial:
		return "SPECIAL!"
	default:
		return ""
	}
}
