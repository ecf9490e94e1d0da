package combat

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-fighter/internal/chars"
	"github.com/vovakirdan/tui-fighter/internal/core"
)

func TestHurtboxDefaults(t *testing.T) {
	s := newTestSim(t, CharFire, CharFire)

	tests := []struct {
		name   string
		player Player
		want   core.Box
	}{
		{
			name:   "standing",
			player: Player{X: 100, Y: 350, Facing: 1, State: StateIdle},
			want:   core.NewBox(88, 312, 24, 38),
		},
		{
			name:   "standing facing left is symmetric",
			player: Player{X: 100, Y: 350, Facing: -1, State: StateIdle},
			want:   core.NewBox(88, 312, 24, 38),
		},
		{
			name:   "crouching",
			player: Player{X: 100, Y: 350, Facing: 1, State: StateCrouch, Crouching: true},
			want:   core.NewBox(88, 331, 24, 19),
		},
		{
			name:   "blocking",
			player: Player{X: 100, Y: 350, Facing: 1, Blocking: true},
			want:   core.NewBox(90, 315, 20, 35),
		},
		{
			name:   "crouch blocking uses the crouch box",
			player: Player{X: 100, Y: 350, Facing: 1, Blocking: true, Crouching: true},
			want:   core.NewBox(88, 331, 24, 19),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, src := s.geo.Hurtbox(&tc.player)
			if got != tc.want {
				t.Errorf("Hurtbox() = %+v, expected %+v", got, tc.want)
			}
			if src != SourceDefault {
				t.Errorf("source = %v, expected default", src)
			}
		})
	}
}

func TestHurtKey(t *testing.T) {
	tests := []struct {
		player Player
		want   int
	}{
		{Player{State: StateWalk, Facing: 1}, KeyWalkRight},
		{Player{State: StateWalk, Facing: -1}, KeyWalkLeft},
		{Player{State: StateJump}, KeyJump},
		{Player{State: StateAttack}, KeyAttack},
		{Player{State: StateCrouch}, KeyCrouch},
		{Player{State: StateCrouchAttack}, KeyCrouchAttack},
		{Player{State: StateIdle, Blocking: true, Crouching: true}, KeyCrouchBlock},
		{Player{State: StateIdle, Blocking: true}, KeyIdle},
	}
	for _, tc := range tests {
		if got := hurtKey(&tc.player); got != tc.want {
			t.Errorf("hurtKey(%v, facing %d) = %d, expected %d", tc.player.State, tc.player.Facing, got, tc.want)
		}
	}
}

func TestHitboxWindowAndMirroring(t *testing.T) {
	s := newTestSim(t, CharFire, CharFire)

	tests := []struct {
		name   string
		player Player
		want   core.Box
		src    BoxSource
	}{
		{
			name:   "startup frame is inactive",
			player: Player{X: 100, Y: 350, Facing: 1, State: StateAttack, AttackFrame: 1},
			want:   core.InactiveBox(100, 350),
			src:    SourceNone,
		},
		{
			name:   "active facing right",
			player: Player{X: 100, Y: 350, Facing: 1, State: StateAttack, AttackFrame: 2},
			want:   core.NewBox(110, 320, 35, 20),
			src:    SourceDefault,
		},
		{
			name:   "active facing left",
			player: Player{X: 100, Y: 350, Facing: -1, State: StateAttack, AttackFrame: 6},
			want:   core.NewBox(55, 320, 35, 20),
			src:    SourceDefault,
		},
		{
			name:   "crouch attack",
			player: Player{X: 100, Y: 350, Facing: 1, State: StateCrouchAttack, AttackFrame: 3},
			want:   core.NewBox(110, 335, 35, 15),
			src:    SourceDefault,
		},
		{
			name:   "recovery frame is inactive",
			player: Player{X: 100, Y: 350, Facing: 1, State: StateAttack, AttackFrame: 7},
			want:   core.InactiveBox(100, 350),
			src:    SourceNone,
		},
		{
			name:   "not attacking",
			player: Player{X: 100, Y: 350, Facing: 1, State: StateWalk, AttackFrame: 3},
			want:   core.InactiveBox(100, 350),
			src:    SourceNone,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, src := s.geo.Hitbox(&tc.player)
			if got != tc.want || src != tc.src {
				t.Errorf("Hitbox() = %+v (%v), expected %+v (%v)", got, src, tc.want, tc.src)
			}
		})
	}
}

func TestClashBox(t *testing.T) {
	s := newTestSim(t, CharFire, CharFire)

	right := Player{X: 100, Y: 350, Facing: 1, State: StateAttack, AttackFrame: 1}
	if got := s.geo.ClashBox(&right); got != core.NewBox(100, 320, 45, 25) {
		t.Errorf("ClashBox() facing right = %+v", got)
	}

	left := Player{X: 100, Y: 350, Facing: -1, State: StateAttack, AttackFrame: 7}
	if got := s.geo.ClashBox(&left); got != core.NewBox(55, 320, 45, 25) {
		t.Errorf("ClashBox() facing left = %+v", got)
	}

	for _, p := range []Player{
		{X: 100, Y: 350, Facing: 1, State: StateAttack, AttackFrame: 0},
		{X: 100, Y: 350, Facing: 1, State: StateAttack, AttackFrame: 8},
		{X: 100, Y: 350, Facing: 1, State: StateCrouchAttack, AttackFrame: 3},
	} {
		if s.geo.ClashBox(&p).Active() {
			t.Errorf("ClashBox() should be inactive for %v frame %d", p.State, p.AttackFrame)
		}
	}
}

func TestConfigBoxesTakePrecedence(t *testing.T) {
	store := chars.NewStore()
	err := store.Set(CharFire, chars.CharacterConfig{
		Boxes: []chars.CollisionBoxConfig{
			{StateID: KeyIdle, Frame: 0, Hurtboxes: []core.Box{core.NewBox(-20, -50, 30, 50)}},
			{StateID: KeyAttack, Frame: 0, Hitboxes: []core.Box{core.NewBox(5, -40, 50, 10)}},
			{StateID: KeyJump, Frame: 0}, // no boxes: fall back
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	s := newTestSimWithStore(t, store)

	right := Player{X: 100, Y: 350, Facing: 1, State: StateIdle}
	if got, src := s.geo.Hurtbox(&right); got != core.NewBox(80, 300, 30, 50) || src != SourceConfig {
		t.Errorf("Hurtbox() facing right = %+v (%v)", got, src)
	}

	// Mirrored: x - cfgX - cfgW
	left := Player{X: 490, Y: 350, Facing: -1, State: StateIdle}
	if got, _ := s.geo.Hurtbox(&left); got != core.NewBox(480, 300, 30, 50) {
		t.Errorf("Hurtbox() facing left = %+v", got)
	}

	// Lookups use the animation frame; frame 1 has no entry.
	later := Player{X: 100, Y: 350, Facing: 1, State: StateIdle, AnimFrame: 1}
	if got, src := s.geo.Hurtbox(&later); got != core.NewBox(88, 312, 24, 38) || src != SourceDefault {
		t.Errorf("Hurtbox() at frame 1 = %+v (%v)", got, src)
	}

	airborne := Player{X: 100, Y: 300, Facing: 1, State: StateJump}
	if _, src := s.geo.Hurtbox(&airborne); src != SourceDefault {
		t.Errorf("entry without hurtboxes should fall back, got %v", src)
	}

	attacking := Player{X: 100, Y: 350, Facing: -1, State: StateAttack, AttackFrame: 2}
	if got, src := s.geo.Hitbox(&attacking); got != core.NewBox(45, 310, 50, 10) || src != SourceConfig {
		t.Errorf("Hitbox() = %+v (%v)", got, src)
	}

	// The active window still gates configured hitboxes.
	attacking.AttackFrame = 8
	if got, _ := s.geo.Hitbox(&attacking); got.Active() {
		t.Errorf("configured hitbox outside window = %+v", got)
	}
}

func TestBoxesDebugView(t *testing.T) {
	s := newTestSim(t, CharFire, CharFire)

	b := s.Boxes(core.Player1)
	if b.Body != core.NewBox(135, 310, 30, 40) {
		t.Errorf("Body = %+v", b.Body)
	}
	if b.Hit.Active() || b.HitSource != SourceNone {
		t.Errorf("idle player has hitbox %+v", b.Hit)
	}
	if b.HurtSource != SourceDefault {
		t.Errorf("HurtSource = %v", b.HurtSource)
	}
	if b.Frame != 0 {
		t.Errorf("Frame = %d", b.Frame)
	}
}

func TestDisplayFrameWraps(t *testing.T) {
	store := chars.NewStore()
	if err := store.Set(CharFire, chars.CharacterConfig{
		Animations: []chars.AnimationConfig{{StateID: KeyIdle, FrameTimes: []int{6, 6, 6, 6}}},
	}); err != nil {
		t.Fatal(err)
	}
	s := newTestSimWithStore(t, store)

	tests := []struct {
		name     string
		anim     int
		state    State
		expected int
	}{
		{"inside range", 3, StateIdle, 3},
		{"wraps", 10, StateIdle, 2},
		{"no animation keeps raw counter", 10, StateJump, 10},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s.players[core.Player1].AnimFrame = tc.anim
			s.players[core.Player1].State = tc.state
			if got := s.Boxes(core.Player1).Frame; got != tc.expected {
				t.Errorf("Frame = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestInvalidSlotPanics(t *testing.T) {
	s := newTestSim(t, CharFire, CharFire)

	for name, call := range map[string]func(){
		"Player": func() { s.Player(core.PlayerID(7)) },
		"Boxes":  func() { s.Boxes(core.PlayerID(-1)) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || !errors.Is(err, ErrInvalidPlayer) {
					t.Errorf("recovered %v, expected ErrInvalidPlayer", r)
				}
			}()
			call()
		})
	}
}
