package packs

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-fighter/internal/chars"
	"github.com/vovakirdan/tui-fighter/internal/combat"
	"github.com/vovakirdan/tui-fighter/internal/core"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestEmbeddedDefaults(t *testing.T) {
	l := &Loader{Logger: quietLogger()}

	tests := []struct {
		dir    string
		format Format
		name   string
	}{
		{"fire", FormatYAML, "FIRE"},
		{"water", FormatTOML, "WATER"},
		{"earth", FormatINI, ""},
		{"wind", FormatYAML, "WIND"},
	}
	for _, tc := range tests {
		t.Run(tc.dir, func(t *testing.T) {
			cfg, format, err := l.LoadCharacter(tc.dir)
			if err != nil {
				t.Fatalf("LoadCharacter() error: %v", err)
			}
			if format != tc.format {
				t.Errorf("format = %v, expected %v", format, tc.format)
			}
			if cfg.Name != tc.name {
				t.Errorf("name = %q, expected %q", cfg.Name, tc.name)
			}
			if len(cfg.Boxes) == 0 || len(cfg.Specials) != 1 {
				t.Errorf("boxes %d specials %d", len(cfg.Boxes), len(cfg.Specials))
			}
		})
	}
}

func TestLoadRosterEmbedded(t *testing.T) {
	store := chars.NewStore()
	l := &Loader{Logger: quietLogger()}

	if n := l.LoadRoster(store); n != chars.NumCharacterSlots {
		t.Fatalf("LoadRoster() = %d, expected %d", n, chars.NumCharacterSlots)
	}
	for id := range chars.NumCharacterSlots {
		if !store.Loaded(id) {
			t.Errorf("slot %d not loaded", id)
		}
	}

	// INI packs get the roster name filled in
	if got := store.Name(combat.CharEarth); got != "EARTH" {
		t.Errorf("earth name = %q", got)
	}
	entry, ok := store.Lookup(combat.CharEarth, 151, 0)
	if !ok {
		t.Fatal("earth attack boxes missing")
	}
	hit, _ := entry.FirstHitbox()
	if hit != core.NewBox(10, -28, 34, 18) {
		t.Errorf("earth hitbox = %+v", hit)
	}
}

func TestLoadCharacterFromDisk(t *testing.T) {
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "yamlpack"), "character.yml", "name: Y\nspecials:\n  - name: Zap\n    kind: melee\n")
	writeFile(t, filepath.Join(root, "tomlpack"), "character.toml", "name = \"T\"\n")
	writeFile(t, filepath.Join(root, "inipack"), "chbox.ini", "[000_00]\nHurtBox1=-10,-30,10,0\n")
	writeFile(t, filepath.Join(root, "both"), "character.yaml", "name: STRUCTURED\n")
	writeFile(t, filepath.Join(root, "both"), "char.ini", "[000]\nFrameTime_0=5\n")
	if err := os.MkdirAll(filepath.Join(root, "empty"), 0o755); err != nil {
		t.Fatal(err)
	}

	l := &Loader{Root: root, Logger: quietLogger()}

	tests := []struct {
		dir    string
		format Format
		name   string
	}{
		{"yamlpack", FormatYAML, "Y"},
		{"tomlpack", FormatTOML, "T"},
		{"inipack", FormatINI, ""},
		{"both", FormatYAML, "STRUCTURED"},
	}
	for _, tc := range tests {
		t.Run(tc.dir, func(t *testing.T) {
			cfg, format, err := l.LoadCharacter(tc.dir)
			if err != nil {
				t.Fatalf("LoadCharacter() error: %v", err)
			}
			if format != tc.format || cfg.Name != tc.name {
				t.Errorf("got %v %q, expected %v %q", format, cfg.Name, tc.format, tc.name)
			}
		})
	}

	t.Run("empty", func(t *testing.T) {
		_, _, err := l.LoadCharacter("empty")
		if !errors.Is(err, ErrNoPack) {
			t.Errorf("error = %v, expected ErrNoPack", err)
		}
	})
	t.Run("missing", func(t *testing.T) {
		_, _, err := l.LoadCharacter("nope")
		if !errors.Is(err, ErrNoPack) {
			t.Errorf("error = %v, expected ErrNoPack", err)
		}
	})
}

func TestLoadRosterFallsBack(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "fire"), "character.yaml", "name: FIRE\nboxes:\n  - state: 0\n    frame: 0\n    hurt:\n      - [-5, -20, 10, 20]\n")
	writeFile(t, filepath.Join(root, "water"), "character.yaml", "boxes: [[[broken\n")

	store := chars.NewStore()
	l := &Loader{Root: root, Logger: quietLogger()}
	if n := l.LoadRoster(store); n != 1 {
		t.Fatalf("LoadRoster() = %d, expected 1", n)
	}

	if _, ok := store.Lookup(combat.CharFire, 0, 0); !ok {
		t.Error("fire boxes should be loaded")
	}
	// Failed packs still occupy their slot with empty tables
	for _, id := range []int{combat.CharWater, combat.CharEarth, combat.CharWind} {
		cfg, ok := store.Config(id)
		if !ok || !cfg.Empty() {
			t.Errorf("slot %d: loaded=%v cfg=%+v", id, ok, cfg)
		}
	}
}
