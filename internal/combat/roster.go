package combat

import "github.com/vovakirdan/tui-fighter/internal/registry"

// Roster character ids.
const (
	CharFire = iota
	CharWater
	CharEarth
	CharWind
)

func init() {
	registry.Register(registry.Character{
		ID:      CharFire,
		Name:    "FIRE",
		Color:   "#ff6464",
		Special: "Fireball",
		Summary: "Throws a projectile along the facing direction",
	})
	registry.Register(registry.Character{
		ID:      CharWater,
		Name:    "WATER",
		Color:   "#6464ff",
		Special: "Healing Wave",
		Summary: "Restores health up to the maximum",
	})
	registry.Register(registry.Character{
		ID:      CharEarth,
		Name:    "EARTH",
		Color:   "#64ff64",
		Special: "Ground Stomp",
		Summary: "Hits a grounded opponent at close range",
	})
	registry.Register(registry.Character{
		ID:      CharWind,
		Name:    "WIND",
		Color:   "#ffff64",
		Special: "Gale Dash",
		Summary: "Dashes forward, striking an opponent within reach",
	})
}
