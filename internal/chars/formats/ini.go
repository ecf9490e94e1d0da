package formats

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/vovakirdan/tui-fighter/internal/chars"
	"github.com/vovakirdan/tui-fighter/internal/core"
)

// Legacy character directories carry three files:
//
//	char.ini     [NNN] sections with XAlign, YAlign, Hspeed, Vspeed, Gravity, FrameTime_N
//	chbox.ini    [SSS_FF] sections with HurtBoxN=x1,y1,x2,y2 and HitBoxN=x1,y1,x2,y2
//	special.ini  [N] sections with name, cN command entries and V1_Damage
var iniOptions = ini.LoadOptions{
	Insensitive:             false,
	IgnoreInlineComment:     false,
	SkipUnrecognizableLines: true,
	AllowShadows:            false,
	AllowNonUniqueSections:  true,
}

// ParseINI parses the legacy INI trio. A nil slice means the file is absent
// and its table stays empty. Malformed sections and values are skipped.
func ParseINI(charINI, chboxINI, specialINI []byte) (chars.CharacterConfig, error) {
	var cfg chars.CharacterConfig

	if charINI != nil {
		anims, err := parseCharINI(charINI)
		if err != nil {
			return chars.CharacterConfig{}, fmt.Errorf("char.ini: %w", err)
		}
		cfg.Animations = anims
	}
	if chboxINI != nil {
		boxes, err := parseChboxINI(chboxINI)
		if err != nil {
			return chars.CharacterConfig{}, fmt.Errorf("chbox.ini: %w", err)
		}
		cfg.Boxes = boxes
	}
	if specialINI != nil {
		specials, err := parseSpecialINI(specialINI)
		if err != nil {
			return chars.CharacterConfig{}, fmt.Errorf("special.ini: %w", err)
		}
		cfg.Specials = specials
	}

	return cfg, nil
}

func loadINI(data []byte) ([]*ini.Section, error) {
	f, err := ini.LoadSources(iniOptions, data)
	if err != nil {
		return nil, err
	}
	var out []*ini.Section
	for _, sec := range f.Sections() {
		if sec.Name() == ini.DefaultSection {
			continue
		}
		out = append(out, sec)
	}
	return out, nil
}

func parseCharINI(data []byte) ([]chars.AnimationConfig, error) {
	sections, err := loadINI(data)
	if err != nil {
		return nil, err
	}

	var anims []chars.AnimationConfig
	for _, sec := range sections {
		var state int
		if _, err := fmt.Sscanf(sec.Name(), "%d", &state); err != nil {
			continue
		}
		a := chars.AnimationConfig{StateID: state, Gravity: chars.DefaultAnimGravity}
		for _, k := range sec.Keys() {
			switch name := k.Name(); {
			case name == "XAlign":
				a.XAlign = k.MustInt(0)
			case name == "YAlign":
				a.YAlign = k.MustInt(0)
			case name == "Hspeed":
				a.HSpeed = k.MustFloat64(0)
			case name == "Vspeed":
				a.VSpeed = k.MustFloat64(0)
			case name == "Gravity":
				a.Gravity = k.MustFloat64(chars.DefaultAnimGravity)
			case strings.HasPrefix(name, "FrameTime_"):
				n, err := strconv.Atoi(strings.TrimPrefix(name, "FrameTime_"))
				if err != nil || n < 0 || n >= chars.MaxAnimFrames {
					continue
				}
				// Frame count follows the highest index seen; gaps stay zero.
				for len(a.FrameTimes) <= n {
					a.FrameTimes = append(a.FrameTimes, 0)
				}
				a.FrameTimes[n] = k.MustInt(0)
			}
		}
		anims = append(anims, a)
	}
	return anims, nil
}

func parseChboxINI(data []byte) ([]chars.CollisionBoxConfig, error) {
	sections, err := loadINI(data)
	if err != nil {
		return nil, err
	}

	var boxes []chars.CollisionBoxConfig
	for _, sec := range sections {
		var state, frame int
		if _, err := fmt.Sscanf(sec.Name(), "%d_%d", &state, &frame); err != nil {
			continue
		}
		entry := chars.CollisionBoxConfig{StateID: state, Frame: frame}
		for _, k := range sec.Keys() {
			box, ok := parseCorners(k.Value())
			if !ok {
				continue
			}
			switch name := k.Name(); {
			case strings.HasPrefix(name, "HurtBox"):
				entry.Hurtboxes = append(entry.Hurtboxes, box)
			case strings.HasPrefix(name, "HitBox"):
				entry.Hitboxes = append(entry.Hitboxes, box)
			}
		}
		boxes = append(boxes, entry)
	}
	return boxes, nil
}

// parseCorners reads "x1,y1,x2,y2" into a box with w = x2-x1, h = y2-y1.
func parseCorners(v string) (core.Box, bool) {
	parts := strings.Split(v, ",")
	if len(parts) != 4 {
		return core.Box{}, false
	}
	var n [4]int
	for i, p := range parts {
		val, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return core.Box{}, false
		}
		n[i] = val
	}
	return core.NewBox(float64(n[0]), float64(n[1]), float64(n[2]-n[0]), float64(n[3]-n[1])), true
}

func parseSpecialINI(data []byte) ([]chars.SpecialMoveConfig, error) {
	sections, err := loadINI(data)
	if err != nil {
		return nil, err
	}

	var specials []chars.SpecialMoveConfig
	for _, sec := range sections {
		var id int
		if _, err := fmt.Sscanf(sec.Name(), "%d", &id); err != nil {
			continue
		}
		sp := chars.SpecialMoveConfig{Name: "Special"}
		for _, k := range sec.Keys() {
			switch name := k.Name(); {
			case name == "name":
				sp.Name = k.Value()
			case name == "type":
				if kind, ok := chars.ParseSpecialKind(k.Value()); ok {
					sp.Kind = kind
				}
			case name == "V1_Damage" || name == "V2_Damage" || name == "V3_Damage":
				sp.Damage = k.MustInt(0)
			case len(name) > 1 && name[0] == 'c':
				n, err := strconv.Atoi(name[1:])
				if err != nil || n < 1 || n > chars.MaxCommandLength {
					continue
				}
				for len(sp.Command) < n {
					sp.Command = append(sp.Command, 0)
				}
				sp.Command[n-1] = k.MustInt(0)
			}
		}
		specials = append(specials, sp)
	}
	return specials, nil
}
