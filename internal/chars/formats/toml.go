package formats

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/vovakirdan/tui-fighter/internal/chars"
)

// ParseTOML parses a character.toml file. Tables use the same keys as the
// YAML format ([[animations]], [[boxes]], [[specials]]).
func ParseTOML(data []byte) (chars.CharacterConfig, error) {
	var doc Document
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return chars.CharacterConfig{}, fmt.Errorf("toml decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return chars.CharacterConfig{}, fmt.Errorf("toml decode: unknown key %q", undecoded[0].String())
	}
	return doc.ToConfig()
}
