package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-fighter/internal/combat"
	"github.com/vovakirdan/tui-fighter/internal/core"
	"github.com/vovakirdan/tui-fighter/internal/games/fighter"
	"github.com/vovakirdan/tui-fighter/internal/storage"
)

// Model is the Bubble Tea model for a local fight session.
type Model struct {
	game     *fighter.Game
	canvas   *Canvas
	store    *storage.Store
	logger   *log.Logger
	config   core.RuntimeConfig
	source   string // Recorded with saved matches
	keys     *KeyMapper
	holds    HoldTracker
	sink     EffectSink
	quitting bool
}

// NewModel creates a new Bubble Tea model around a session.
func NewModel(game *fighter.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.Default()
	}
	return Model{
		game:   game,
		canvas: NewCanvas(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		logger: logger,
		config: cfg,
		source: "local",
		keys:   NewKeyMapper(),
		holds:  NewHoldTracker(DefaultHoldTicks),
	}
}

// WithSource sets the origin tag stored with finished matches.
func (m Model) WithSource(source string) Model {
	m.source = source
	return m
}

// Init starts the tick loop. The session keeps whatever screen it was
// prepared on.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.canvas.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsQuit(msg) {
		m.quitting = true
		return m, tea.Quit
	}
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if b, ok := m.keys.Map(msg); ok {
		m.holds.Press(b)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.game.Step(m.holds.Frame())
	m.holds.Advance()

	m.sink.Tick()
	m.sink.Push(res.Effects)

	if res.Err != nil {
		m.logger.Warn("could not start fight", "err", res.Err)
	}
	if res.Result != nil {
		m.saveResult(*res.Result)
	}

	return m, tickCmd(m.config.TickRate)
}

// saveResult records a finished match. Storage is optional.
func (m Model) saveResult(r fighter.MatchResult) {
	m.logger.Info("match finished",
		"winner", r.Winner,
		"score", fmt.Sprintf("%d-%d", r.P1Rounds, r.P2Rounds),
		"ticks", r.Ticks,
	)
	if m.store == nil {
		return
	}
	id, err := m.store.SaveMatch(MatchRecord(r, m.source))
	if err != nil {
		m.logger.Warn("could not save match", "err", err)
		return
	}
	m.logger.Debug("match saved", "match_id", id)
}

// MatchRecord converts a session result into a storage row.
func MatchRecord(r fighter.MatchResult, source string) storage.MatchRecord {
	return storage.MatchRecord{
		P1Char:   r.P1Char,
		P2Char:   r.P2Char,
		P1Rounds: r.P1Rounds,
		P2Rounds: r.P2Rounds,
		Winner:   int(r.Winner),
		Rounds:   r.Rounds,
		Ticks:    r.Ticks,
		Source:   source,
	}
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	Draw(m.canvas, m.game, &m.sink)

	dir := filepath.Join(os.Getenv("HOME"), ".fighter", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.canvas.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	Draw(m.canvas, m.game, &m.sink)
	return m.canvas.Render()
}

// Effects returns the cues currently on screen.
func (m Model) Effects() []combat.Effect {
	return m.sink.Active()
}

// Run starts the Bubble Tea program with the given session.
func Run(game *fighter.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
