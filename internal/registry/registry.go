// Package registry provides a global roster of playable characters.
// The combat package registers the roster in init(), allowing the platform
// and CLI to list characters without hardcoding them.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Character contains display metadata about a roster character.
type Character struct {
	ID      int    // Slot id used by the simulation (0..3)
	Name    string // Display name, also the pack directory name in lowercase
	Color   string // Hex colour used by renderers
	Special string // Name of the special move
	Summary string // One-line description of the special move
}

// Dir returns the character pack directory name.
func (c Character) Dir() string {
	return strings.ToLower(c.Name)
}

var (
	roster = make(map[int]Character)
	mu     sync.RWMutex
)

// Register adds a character to the roster.
// Typically called from an init() function.
// Panics if a character with the same ID is already registered.
func Register(c Character) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := roster[c.ID]; exists {
		panic(fmt.Sprintf("registry: character %d already registered", c.ID))
	}
	roster[c.ID] = c
}

// List returns all registered characters, sorted by ID.
func List() []Character {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Character, 0, len(roster))
	for _, c := range roster {
		result = append(result, c)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns a character by its ID.
// Returns an error if the ID is not registered.
func Get(id int) (Character, error) {
	mu.RLock()
	defer mu.RUnlock()

	c, ok := roster[id]
	if !ok {
		return Character{}, fmt.Errorf("registry: unknown character %d", id)
	}
	return c, nil
}

// ByName finds a character by name, ignoring case.
func ByName(name string) (Character, error) {
	mu.RLock()
	defer mu.RUnlock()

	for _, c := range roster {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return Character{}, fmt.Errorf("registry: unknown character %q", name)
}

// Exists checks if a character with the given ID is registered.
func Exists(id int) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := roster[id]
	return ok
}

// Name returns the display name of a character, or "?" if unknown.
func Name(id int) string {
	c, err := Get(id)
	if err != nil {
		return "?"
	}
	return c.Name
}
