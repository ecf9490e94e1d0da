// Package packs locates character directories on disk and loads them into a
// chars.Store. Each directory holds one of three layouts: character.yaml,
// character.toml, or the legacy char.ini/chbox.ini/special.ini trio.
package packs

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-fighter/internal/chars"
	"github.com/vovakirdan/tui-fighter/internal/chars/formats"
	"github.com/vovakirdan/tui-fighter/internal/registry"
)

//go:embed defaults
var defaultPacks embed.FS

// ErrNoPack is returned when a directory holds none of the known layouts.
var ErrNoPack = errors.New("no character files found")

// Format names the layout a pack was read from.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatINI  Format = "ini"
)

// Loader reads character packs from a directory tree. An empty Root uses the
// packs built into the binary.
type Loader struct {
	Root   string
	Logger *log.Logger
}

func (l *Loader) fsys() (fs.FS, error) {
	if l.Root == "" {
		return fs.Sub(defaultPacks, "defaults")
	}
	return os.DirFS(l.Root), nil
}

func (l *Loader) logger() *log.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return log.Default()
}

// LoadCharacter reads the pack in dir. Structured formats win over the INI
// trio when both are present.
func (l *Loader) LoadCharacter(dir string) (chars.CharacterConfig, Format, error) {
	fsys, err := l.fsys()
	if err != nil {
		return chars.CharacterConfig{}, "", err
	}

	for _, name := range []string{"character.yaml", "character.yml"} {
		data, err := readOptional(fsys, path.Join(dir, name))
		if err != nil {
			return chars.CharacterConfig{}, "", err
		}
		if data != nil {
			cfg, err := formats.ParseYAML(data)
			if err != nil {
				return chars.CharacterConfig{}, "", fmt.Errorf("packs: %s/%s: %w", dir, name, err)
			}
			return cfg, FormatYAML, nil
		}
	}

	data, err := readOptional(fsys, path.Join(dir, "character.toml"))
	if err != nil {
		return chars.CharacterConfig{}, "", err
	}
	if data != nil {
		cfg, err := formats.ParseTOML(data)
		if err != nil {
			return chars.CharacterConfig{}, "", fmt.Errorf("packs: %s/character.toml: %w", dir, err)
		}
		return cfg, FormatTOML, nil
	}

	var trio [3][]byte
	found := false
	for i, name := range []string{"char.ini", "chbox.ini", "special.ini"} {
		data, err := readOptional(fsys, path.Join(dir, name))
		if err != nil {
			return chars.CharacterConfig{}, "", err
		}
		trio[i] = data
		found = found || data != nil
	}
	if !found {
		return chars.CharacterConfig{}, "", fmt.Errorf("packs: %s: %w", dir, ErrNoPack)
	}
	cfg, err := formats.ParseINI(trio[0], trio[1], trio[2])
	if err != nil {
		return chars.CharacterConfig{}, "", fmt.Errorf("packs: %s: %w", dir, err)
	}
	return cfg, FormatINI, nil
}

// LoadRoster loads every registered character into the store. A pack that
// fails to load leaves its slot empty so the fight runs on built-in geometry.
// It returns the number of packs loaded.
func (l *Loader) LoadRoster(store *chars.Store) int {
	logger := l.logger()
	loaded := 0

	for _, c := range registry.List() {
		cfg, format, err := l.LoadCharacter(c.Dir())
		if err != nil {
			logger.Warn("character pack not loaded, using built-in boxes", "character", c.Name, "err", err)
			cfg = chars.CharacterConfig{}
		} else {
			if cfg.Name == "" {
				cfg.Name = c.Name
			}
			logger.Debug("character pack loaded",
				"character", c.Name,
				"format", format,
				"animations", len(cfg.Animations),
				"boxes", len(cfg.Boxes),
				"specials", len(cfg.Specials),
			)
			loaded++
		}
		if err := store.Set(c.ID, cfg); err != nil {
			logger.Error("character slot rejected", "character", c.Name, "err", err)
		}
	}
	return loaded
}

// readOptional returns nil without error when the file does not exist.
func readOptional(fsys fs.FS, name string) ([]byte, error) {
	data, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("packs: read %s: %w", name, err)
	}
	if data == nil {
		data = []byte{}
	}
	return data, nil
}
