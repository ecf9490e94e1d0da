package fighter

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-fighter/internal/chars"
	"github.com/vovakirdan/tui-fighter/internal/combat"
	"github.com/vovakirdan/tui-fighter/internal/config"
	"github.com/vovakirdan/tui-fighter/internal/core"
	"github.com/vovakirdan/tui-fighter/internal/registry"
)

// ErrInvalidScript is returned when a script cannot be parsed or names
// unknown characters or buttons.
var ErrInvalidScript = errors.New("invalid script")

// Script is a headless fight: two characters and a list of held-input steps.
//
//	p1: fire
//	p2: earth
//	steps:
//	  - ticks: 40
//	    p1: [right]
//	  - ticks: 20
//	    p1: [a]
//	    p2: [b]
type Script struct {
	P1    string       `yaml:"p1"`
	P2    string       `yaml:"p2"`
	Steps []ScriptStep `yaml:"steps"`
}

// ScriptStep holds the listed buttons for a number of ticks.
type ScriptStep struct {
	Ticks int      `yaml:"ticks"`
	P1    []string `yaml:"p1"`
	P2    []string `yaml:"p2"`
}

// Report is the outcome of a script run.
type Report struct {
	Ticks   int
	Phase   combat.Phase
	Effects map[combat.EffectKind]int
	Players [core.NumPlayers]combat.Player
	Match   combat.Match
	Result  *MatchResult // Set when the match finished during the run
}

// ParseScript decodes a YAML script.
func ParseScript(r io.Reader) (Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Script{}, fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}
	return s, nil
}

// compiledStep is a step with its buttons resolved.
type compiledStep struct {
	ticks int
	in    core.MultiInputFrame
}

func (s Script) compile() (p1, p2 int, steps []compiledStep, err error) {
	c1, err := registry.ByName(s.P1)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("%w: p1: %v", ErrInvalidScript, err)
	}
	c2, err := registry.ByName(s.P2)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("%w: p2: %v", ErrInvalidScript, err)
	}

	for i, st := range s.Steps {
		if st.Ticks <= 0 {
			return 0, 0, nil, fmt.Errorf("%w: step %d: ticks must be positive", ErrInvalidScript, i)
		}
		var in core.MultiInputFrame
		for id, names := range [][]string{st.P1, st.P2} {
			f, err := parseButtons(names)
			if err != nil {
				return 0, 0, nil, fmt.Errorf("%w: step %d: %v", ErrInvalidScript, i, err)
			}
			in.SetPlayer(core.PlayerID(id), f)
		}
		steps = append(steps, compiledStep{ticks: st.Ticks, in: in})
	}
	return c1.ID, c2.ID, steps, nil
}

func parseButtons(names []string) (core.InputFrame, error) {
	var f core.InputFrame
	for _, n := range names {
		b, err := core.ParseButton(strings.TrimSpace(n))
		if err != nil {
			return 0, err
		}
		f.Set(b)
	}
	return f, nil
}

// RunScript plays a script against a fresh fight. The run stops early when
// the match ends.
func RunScript(cfg config.FighterConfig, store *chars.Store, s Script) (Report, error) {
	p1, p2, steps, err := s.compile()
	if err != nil {
		return Report{}, err
	}
	sim, err := combat.NewSim(cfg, store, p1, p2)
	if err != nil {
		return Report{}, err
	}

	rep := Report{Effects: make(map[combat.EffectKind]int)}
	var res combat.StepResult

run:
	for _, st := range steps {
		for range st.ticks {
			res = sim.Step(st.in)
			for _, e := range res.Effects {
				rep.Effects[e.Kind]++
			}
			if res.Phase == combat.PhaseMatchOver {
				break run
			}
		}
	}

	rep.Ticks = res.Tick
	rep.Phase = res.Phase
	rep.Match = sim.Match()
	rep.Players[core.Player1] = sim.Player(core.Player1)
	rep.Players[core.Player2] = sim.Player(core.Player2)
	if winner, ok := rep.Match.Winner(); ok {
		rep.Result = &MatchResult{
			P1Char:   p1,
			P2Char:   p2,
			P1Rounds: rep.Match.P1Rounds,
			P2Rounds: rep.Match.P2Rounds,
			Winner:   winner,
			Rounds:   rep.Match.Round,
			Ticks:    res.Tick,
		}
	}
	return rep, nil
}
