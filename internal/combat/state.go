// Package combat implements the deterministic fighting simulation: player
// state machines, hit/hurt/clash geometry, special moves, projectiles and the
// best-of-three round controller. A Sim owns all mutable state and advances
// it one fixed tick at a time from logical button input.
package combat

import "errors"

// Errors returned by Sim operations.
var (
	ErrInvalidPlayer    = errors.New("combat: invalid player slot")
	ErrInvalidCharacter = errors.New("combat: invalid character id")
)

// State is the logical animation state of a player.
type State int

const (
	StateIdle State = iota
	StateWalk
	StateJump
	StateAttack
	StateHit // reserved, never entered by the current rules
	StateCrouch
	StateCrouchAttack
)

var stateNames = [...]string{"idle", "walk", "jump", "attack", "hit", "crouch", "crouch_attack"}

// String returns the lowercase state name.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Attacking reports whether the state is one of the two attack states.
func (s State) Attacking() bool {
	return s == StateAttack || s == StateCrouchAttack
}

// Animation state ids used as keys into the character box tables.
const (
	KeyIdle         = 0
	KeyJump         = 300
	KeyWalkLeft     = 410
	KeyWalkRight    = 420
	KeyAttack       = 151
	KeyCrouch       = 200
	KeyCrouchAttack = 201
	KeyCrouchBlock  = 208
)
