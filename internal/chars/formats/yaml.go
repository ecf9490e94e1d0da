package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-fighter/internal/chars"
)

// ParseYAML parses a character.yaml file.
func ParseYAML(data []byte) (chars.CharacterConfig, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return chars.CharacterConfig{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return doc.ToConfig()
}
