package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-fighter/internal/chars"
	"github.com/vovakirdan/tui-fighter/internal/combat"
	"github.com/vovakirdan/tui-fighter/internal/config"
	"github.com/vovakirdan/tui-fighter/internal/core"
	"github.com/vovakirdan/tui-fighter/internal/games/fighter"
	"github.com/vovakirdan/tui-fighter/internal/storage"
)

func TestCanvasBasics(t *testing.T) {
	c := NewCanvas(5, 2)
	c.Text(1, 0, "abc", "")
	c.Set(9, 9, 'x', "") // out of bounds
	c.Set(4, 1, '#', colorHit)

	if got := c.String(); got != " abc \n    #" {
		t.Errorf("String() = %q", got)
	}
	if c.Get(4, 1).Color != colorHit {
		t.Error("cell color lost")
	}
	if c.Get(-1, 0).Rune != ' ' {
		t.Error("out of bounds Get should be blank")
	}

	c.Resize(0, 0)
	if c.Width() != 1 || c.Height() != 1 {
		t.Errorf("Resize(0,0) = %dx%d, expected 1x1", c.Width(), c.Height())
	}
}

func TestCanvasOutline(t *testing.T) {
	c := NewCanvas(4, 3)
	c.Outline(0, 0, 4, 3, "")
	expected := "+--+\n|  |\n+--+"
	if got := c.String(); got != expected {
		t.Errorf("Outline() =\n%s\nexpected\n%s", got, expected)
	}
}

func TestEffectSink(t *testing.T) {
	var s EffectSink

	for i := range EffectSlots {
		s.Push([]combat.Effect{{Kind: combat.EffectKind(i), Source: core.Player1}})
		s.Tick()
	}
	if n := len(s.Active()); n != EffectSlots {
		t.Fatalf("Active() = %d, expected %d", n, EffectSlots)
	}

	// A fifth cue replaces the oldest (the jump)
	s.Push([]combat.Effect{{Kind: combat.EffectSpecial, Source: core.Player2}})
	for _, e := range s.Active() {
		if e.Kind == combat.EffectJump {
			t.Error("oldest cue should have been replaced")
		}
	}
	if n := len(s.Active()); n != EffectSlots {
		t.Errorf("Active() = %d after overflow", n)
	}

	for range effectTTL {
		s.Tick()
	}
	if n := len(s.Active()); n != 0 {
		t.Errorf("cues should fade, %d left", n)
	}

	s.Push([]combat.Effect{{Kind: combat.EffectHit}})
	s.Reset()
	if len(s.Active()) != 0 {
		t.Error("Reset() should silence every slot")
	}
}

func TestHealthBar(t *testing.T) {
	tests := []struct {
		health, max, width int
		expected           string
	}{
		{100, 100, 4, "####"},
		{50, 100, 4, "##.."},
		{0, 100, 4, "...."},
		{150, 100, 4, "####"},
		{10, 0, 4, ""},
	}
	for _, tc := range tests {
		if got := healthBar(tc.health, tc.max, tc.width); got != tc.expected {
			t.Errorf("healthBar(%d, %d, %d) = %q, expected %q", tc.health, tc.max, tc.width, got, tc.expected)
		}
	}
}

func newTestGame(t *testing.T) *fighter.Game {
	t.Helper()
	g, err := fighter.New(config.DefaultFighterConfig(), nil)
	if err != nil {
		t.Fatalf("fighter.New() error: %v", err)
	}
	return g
}

func TestDrawScreens(t *testing.T) {
	g := newTestGame(t)
	c := NewCanvas(80, 24)

	Draw(c, g, nil)
	if !strings.Contains(c.String(), "H A M O O P I") {
		t.Error("title screen missing title")
	}

	var start core.MultiInputFrame
	start.SetPlayer(core.Player1, core.NewInputFrame(core.ButtonStart))
	g.Step(start)
	Draw(c, g, nil)
	if !strings.Contains(c.String(), "CHOOSE YOUR FIGHTER") || !strings.Contains(c.String(), "> FIRE") {
		t.Errorf("select screen:\n%s", c.String())
	}

	if err := g.StartFight(combat.CharEarth, combat.CharWind); err != nil {
		t.Fatal(err)
	}
	var sink EffectSink
	sink.Push([]combat.Effect{{Kind: combat.EffectHit, Source: core.Player2}})
	Draw(c, g, &sink)
	out := c.String()
	for _, want := range []string{"EARTH", "WIND", "R1", "P2 HIT!", "===="} {
		if !strings.Contains(out, want) {
			t.Errorf("fight screen missing %q:\n%s", want, out)
		}
	}
}

func TestSelectShowsLoadedSpecials(t *testing.T) {
	store := chars.NewStore()
	if err := store.Set(combat.CharFire, chars.CharacterConfig{
		Specials: []chars.SpecialMoveConfig{{Name: "Blaze Wave", Damage: 10}, {Name: "Taunt"}},
	}); err != nil {
		t.Fatal(err)
	}
	g, err := fighter.New(config.DefaultFighterConfig(), store)
	if err != nil {
		t.Fatal(err)
	}

	var start core.MultiInputFrame
	start.SetPlayer(core.Player1, core.NewInputFrame(core.ButtonStart))
	g.Step(start)

	c := NewCanvas(80, 24)
	Draw(c, g, nil)
	out := c.String()
	for _, want := range []string{"Blaze Wave  dmg 10", "Taunt", "Healing Wave"} {
		if !strings.Contains(out, want) {
			t.Errorf("select screen missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Fireball") {
		t.Error("built-in move name shown although a table is loaded")
	}
}

func TestDrawDebugOverlay(t *testing.T) {
	g := newTestGame(t)
	if err := g.StartFight(combat.CharFire, combat.CharWater); err != nil {
		t.Fatal(err)
	}
	var sel core.MultiInputFrame
	sel.SetPlayer(core.Player1, core.NewInputFrame(core.ButtonSelect))
	g.Step(sel)
	if !g.Debug() {
		t.Fatal("debug not enabled")
	}

	c := NewCanvas(80, 24)
	Draw(c, g, nil)
	if !strings.Contains(c.String(), "hurt:default") {
		t.Errorf("debug overlay missing box sources:\n%s", c.String())
	}
}

func TestMatchRecord(t *testing.T) {
	r := fighter.MatchResult{P1Char: 1, P2Char: 2, P1Rounds: 1, P2Rounds: 2, Winner: core.Player2, Rounds: 3, Ticks: 900}
	rec := MatchRecord(r, "ssh")
	expected := storage.MatchRecord{P1Char: 1, P2Char: 2, P1Rounds: 1, P2Rounds: 2, Winner: 1, Rounds: 3, Ticks: 900, Source: "ssh"}
	if rec != expected {
		t.Errorf("MatchRecord() = %+v, expected %+v", rec, expected)
	}
}
