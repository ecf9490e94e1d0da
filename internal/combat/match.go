package combat

import "github.com/vovakirdan/tui-fighter/internal/core"

// Phase is the round controller state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseRoundTransition
	PhaseMatchOver
)

var phaseNames = [...]string{"playing", "round_transition", "match_over"}

// String returns the lowercase phase name.
func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// Match tracks round wins and the post-round freeze.
type Match struct {
	P1Rounds        int
	P2Rounds        int
	Round           int // Starts at 1
	TransitionTimer int // Ticks left in the post-round freeze, 0 when playing
	roundWinner     core.PlayerID
	over            bool
}

func newMatch() Match {
	return Match{Round: 1}
}

// Phase returns the current controller state. Exactly one phase holds.
func (m Match) Phase() Phase {
	switch {
	case m.over:
		return PhaseMatchOver
	case m.TransitionTimer > 0:
		return PhaseRoundTransition
	default:
		return PhasePlaying
	}
}

// Wins returns the rounds won by a slot.
func (m Match) Wins(id core.PlayerID) int {
	if id == core.Player1 {
		return m.P1Rounds
	}
	return m.P2Rounds
}

// RoundWinner returns the winner of the round that just ended. It is only
// known during the post-round freeze.
func (m Match) RoundWinner() (core.PlayerID, bool) {
	if m.Phase() != PhaseRoundTransition {
		return 0, false
	}
	return m.roundWinner, true
}

// Winner returns the match winner once the match is over.
func (m Match) Winner() (core.PlayerID, bool) {
	if !m.over {
		return 0, false
	}
	if m.P1Rounds > m.P2Rounds {
		return core.Player1, true
	}
	return core.Player2, true
}

// advanceRound runs the round controller once per tick.
func (s *Sim) advanceRound() {
	m := &s.match
	if m.over {
		return
	}

	if m.TransitionTimer > 0 {
		m.TransitionTimer--
		if m.TransitionTimer > 0 {
			return
		}
		need := s.cfg.Round.RoundsToWin
		if m.P1Rounds >= need || m.P2Rounds >= need {
			m.over = true
			return
		}
		m.Round++
		s.resetPlayers()
		return
	}

	p1 := &s.players[core.Player1]
	p2 := &s.players[core.Player2]
	if p1.Alive() && p2.Alive() {
		return
	}

	// P1 is checked first, so a double knockout goes to P2
	if !p1.Alive() {
		m.P2Rounds++
		m.roundWinner = core.Player2
	} else {
		m.P1Rounds++
		m.roundWinner = core.Player1
	}
	m.TransitionTimer = s.cfg.Round.TransitionTicks
}
