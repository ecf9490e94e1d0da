package chars

import (
	"errors"
	"fmt"
	"sync"
)

// ErrInvalidCharacter is returned for a character id outside 0..3.
var ErrInvalidCharacter = errors.New("chars: invalid character id")

type boxKey struct {
	state int
	frame int
}

type slot struct {
	loaded bool
	cfg    CharacterConfig
	boxes  map[boxKey]int // index of the first entry for the pair
	anims  map[int]int
}

// Store holds the configuration of the four roster slots. Reads are safe for
// concurrent use once loading has finished; SSH sessions share one Store.
type Store struct {
	mu    sync.RWMutex
	slots [NumCharacterSlots]slot
}

// NewStore creates an empty store. Every slot starts unloaded.
func NewStore() *Store {
	return &Store{}
}

// ValidID reports whether id names a roster slot.
func ValidID(id int) bool {
	return id >= 0 && id < NumCharacterSlots
}

// Set replaces the configuration of a slot and marks it loaded. Tables longer
// than the limits are truncated.
func (s *Store) Set(id int, cfg CharacterConfig) error {
	if !ValidID(id) {
		return fmt.Errorf("%w: %d", ErrInvalidCharacter, id)
	}

	cfg = truncate(cfg)
	sl := slot{
		loaded: true,
		cfg:    cfg,
		boxes:  make(map[boxKey]int, len(cfg.Boxes)),
		anims:  make(map[int]int, len(cfg.Animations)),
	}
	for i, b := range cfg.Boxes {
		k := boxKey{b.StateID, b.Frame}
		if _, dup := sl.boxes[k]; !dup {
			sl.boxes[k] = i
		}
	}
	for i, a := range cfg.Animations {
		if _, dup := sl.anims[a.StateID]; !dup {
			sl.anims[a.StateID] = i
		}
	}

	s.mu.Lock()
	s.slots[id] = sl
	s.mu.Unlock()
	return nil
}

// Clear marks a slot unloaded. Invalid ids are ignored.
func (s *Store) Clear(id int) {
	if !ValidID(id) {
		return
	}
	s.mu.Lock()
	s.slots[id] = slot{}
	s.mu.Unlock()
}

// Loaded reports whether a configuration was stored for the slot.
func (s *Store) Loaded(id int) bool {
	if !ValidID(id) {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.slots[id].loaded
}

// Lookup returns the first collision box entry loaded for (state, frame).
// Not found for an unloaded slot, an invalid id or a missing pair.
func (s *Store) Lookup(id, state, frame int) (CollisionBoxConfig, bool) {
	if !ValidID(id) {
		return CollisionBoxConfig{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	sl := &s.slots[id]
	if !sl.loaded {
		return CollisionBoxConfig{}, false
	}
	i, ok := sl.boxes[boxKey{state, frame}]
	if !ok {
		return CollisionBoxConfig{}, false
	}
	return sl.cfg.Boxes[i], true
}

// Animation returns the first animation entry for a state.
func (s *Store) Animation(id, state int) (AnimationConfig, bool) {
	if !ValidID(id) {
		return AnimationConfig{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	sl := &s.slots[id]
	if !sl.loaded {
		return AnimationConfig{}, false
	}
	i, ok := sl.anims[state]
	if !ok {
		return AnimationConfig{}, false
	}
	return sl.cfg.Animations[i], true
}

// Specials returns a copy of the special-move list of a character.
func (s *Store) Specials(id int) []SpecialMoveConfig {
	if !ValidID(id) {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	sl := &s.slots[id]
	if !sl.loaded {
		return nil
	}
	return append([]SpecialMoveConfig(nil), sl.cfg.Specials...)
}

// Name returns the display name stored with a character, or "" if unloaded.
func (s *Store) Name(id int) string {
	if !ValidID(id) {
		return ""
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.slots[id].cfg.Name
}

// Config returns the stored configuration of a slot.
func (s *Store) Config(id int) (CharacterConfig, bool) {
	if !ValidID(id) {
		return CharacterConfig{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	sl := &s.slots[id]
	return sl.cfg, sl.loaded
}
