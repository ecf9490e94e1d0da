// Package formats provides pluggable character data file parsers.
package formats

import (
	"fmt"

	"github.com/vovakirdan/tui-fighter/internal/chars"
	"github.com/vovakirdan/tui-fighter/internal/core"
)

// Document is the structured form shared by the YAML and TOML formats.
// Boxes are written as [x, y, w, h] relative to the player anchor.
type Document struct {
	Name       string       `yaml:"name" toml:"name"`
	Animations []AnimDoc    `yaml:"animations" toml:"animations"`
	Boxes      []BoxDoc     `yaml:"boxes" toml:"boxes"`
	Specials   []SpecialDoc `yaml:"specials" toml:"specials"`
}

// AnimDoc is one animation entry.
type AnimDoc struct {
	State      int      `yaml:"state" toml:"state"`
	XAlign     int      `yaml:"x_align" toml:"x_align"`
	YAlign     int      `yaml:"y_align" toml:"y_align"`
	FrameTimes []int    `yaml:"frame_times" toml:"frame_times"`
	HSpeed     float64  `yaml:"h_speed" toml:"h_speed"`
	VSpeed     float64  `yaml:"v_speed" toml:"v_speed"`
	Gravity    *float64 `yaml:"gravity" toml:"gravity"`
}

// BoxDoc is the box set of one (state, frame) pair.
type BoxDoc struct {
	State int         `yaml:"state" toml:"state"`
	Frame int         `yaml:"frame" toml:"frame"`
	Hurt  [][]float64 `yaml:"hurt" toml:"hurt"`
	Hit   [][]float64 `yaml:"hit" toml:"hit"`
}

// SpecialDoc is one special move entry.
type SpecialDoc struct {
	Name    string `yaml:"name" toml:"name"`
	Command []int  `yaml:"command" toml:"command"`
	Damage  int    `yaml:"damage" toml:"damage"`
	Kind    string `yaml:"kind" toml:"kind"`
}

// ToConfig converts a decoded document into character tables.
func (d Document) ToConfig() (chars.CharacterConfig, error) {
	cfg := chars.CharacterConfig{Name: d.Name}

	for _, a := range d.Animations {
		gravity := chars.DefaultAnimGravity
		if a.Gravity != nil {
			gravity = *a.Gravity
		}
		cfg.Animations = append(cfg.Animations, chars.AnimationConfig{
			StateID:    a.State,
			XAlign:     a.XAlign,
			YAlign:     a.YAlign,
			FrameTimes: a.FrameTimes,
			HSpeed:     a.HSpeed,
			VSpeed:     a.VSpeed,
			Gravity:    gravity,
		})
	}

	for _, b := range d.Boxes {
		entry := chars.CollisionBoxConfig{StateID: b.State, Frame: b.Frame}
		for _, v := range b.Hurt {
			box, err := boxFromSlice(v)
			if err != nil {
				return chars.CharacterConfig{}, fmt.Errorf("hurtbox %d_%d: %w", b.State, b.Frame, err)
			}
			entry.Hurtboxes = append(entry.Hurtboxes, box)
		}
		for _, v := range b.Hit {
			box, err := boxFromSlice(v)
			if err != nil {
				return chars.CharacterConfig{}, fmt.Errorf("hitbox %d_%d: %w", b.State, b.Frame, err)
			}
			entry.Hitboxes = append(entry.Hitboxes, box)
		}
		cfg.Boxes = append(cfg.Boxes, entry)
	}

	for _, s := range d.Specials {
		kind := chars.KindProjectile
		if s.Kind != "" {
			k, ok := chars.ParseSpecialKind(s.Kind)
			if !ok {
				return chars.CharacterConfig{}, fmt.Errorf("special %q: unknown kind %q", s.Name, s.Kind)
			}
			kind = k
		}
		cfg.Specials = append(cfg.Specials, chars.SpecialMoveConfig{
			Name:    s.Name,
			Command: s.Command,
			Damage:  s.Damage,
			Kind:    kind,
		})
	}

	return cfg, nil
}

func boxFromSlice(v []float64) (core.Box, error) {
	if len(v) != 4 {
		return core.Box{}, fmt.Errorf("expected [x, y, w, h], got %d values", len(v))
	}
	return core.NewBox(v[0], v[1], v[2], v[3]), nil
}

// FormatExtensions returns the supported structured file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".toml"}
}
