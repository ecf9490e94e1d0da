package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-fighter/internal/chars"
	"github.com/vovakirdan/tui-fighter/internal/combat"
	"github.com/vovakirdan/tui-fighter/internal/core"
	"github.com/vovakirdan/tui-fighter/internal/games/fighter"
	"github.com/vovakirdan/tui-fighter/internal/registry"
)

// Palette used outside character colors.
const (
	colorText   = lipgloss.Color("252")
	colorDim    = lipgloss.Color("241")
	colorTitle  = lipgloss.Color("229")
	colorGround = lipgloss.Color("94")
	colorBody   = lipgloss.Color("245")
	colorHurt   = lipgloss.Color("39")
	colorHit    = lipgloss.Color("196")
	colorClash  = lipgloss.Color("226")
)

// Layout rows reserved around the arena.
const (
	hudRows    = 2
	footerRows = 1

	// World rows shown above the ground and below it.
	viewAbove = 160.0
	viewBelow = 20.0
)

func characterColor(id int) lipgloss.Color {
	c, err := registry.Get(id)
	if err != nil {
		return colorText
	}
	return lipgloss.Color(c.Color)
}

// viewport maps world coordinates onto canvas cells.
type viewport struct {
	x0, y0 float64
	sx, sy float64
	top    int
}

func newViewport(c *Canvas, worldW, groundY float64) viewport {
	rows := c.Height() - hudRows - footerRows
	if rows < 1 {
		rows = 1
	}
	if worldW <= 0 {
		worldW = 640
	}
	return viewport{
		x0:  0,
		y0:  groundY - viewAbove,
		sx:  float64(c.Width()) / worldW,
		sy:  float64(rows) / (viewAbove + viewBelow),
		top: hudRows,
	}
}

func (v viewport) cell(x, y float64) (int, int) {
	return int(math.Floor((x - v.x0) * v.sx)), v.top + int(math.Floor((y-v.y0)*v.sy))
}

// rect returns the cell rectangle covering a world box, at least one cell.
func (v viewport) rect(b core.Box) (x, y, w, h int) {
	x, y = v.cell(b.X, b.Y)
	x2, y2 := v.cell(b.Right(), b.Bottom())
	return x, y, max(x2-x, 1), max(y2-y, 1)
}

// Draw renders the session onto the canvas.
func Draw(c *Canvas, g *fighter.Game, sink *EffectSink) {
	c.Clear()

	switch g.Mode() {
	case fighter.ModeTitle:
		drawTitle(c)
	case fighter.ModeSelect:
		drawSelect(c, g)
	case fighter.ModeFight:
		drawFight(c, g, sink)
	case fighter.ModeWinner:
		drawFight(c, g, sink)
		drawWinner(c, g)
	}
}

func drawTitle(c *Canvas) {
	mid := c.Height() / 2
	c.CenterText(mid-4, "H A M O O P I", colorTitle)
	c.CenterText(mid-2, "two-player elemental fighter", colorDim)

	roster := registry.List()
	x := (c.Width() - len(roster)*10) / 2
	for i, ch := range roster {
		c.Text(x+i*10, mid, ch.Name, characterColor(ch.ID))
	}

	c.CenterText(mid+2, "P1: ENTER   P2: 8   to start", colorText)
	c.CenterText(mid+4, "esc / ctrl+c to quit", colorDim)
}

func drawSelect(c *Canvas, g *fighter.Game) {
	c.CenterText(1, "CHOOSE YOUR FIGHTER", colorTitle)

	roster := registry.List()
	colW := c.Width() / 2
	for p := range core.NumPlayers {
		id := core.PlayerID(p)
		x := p*colW + 4
		header := fmt.Sprintf("%s  %s", id, keyHint(id))
		if g.Ready(id) {
			header = fmt.Sprintf("%s  READY", id)
		}
		c.Text(x, 3, header, colorText)

		for i, ch := range roster {
			marker := "  "
			if g.Cursor(id) == ch.ID {
				marker = "> "
			}
			c.Text(x, 5+i, marker+ch.Name, characterColor(ch.ID))
		}

		if ch, err := registry.Get(g.Cursor(id)); err == nil {
			row := 6 + len(roster)
			c.Text(x, row, truncate(ch.Summary, colW-6), colorDim)
			for i, line := range specialLines(g.Store(), ch) {
				c.Text(x, row+1+i, truncate(line, colW-6), colorText)
			}
		}
	}
}

// specialLines lists the special moves loaded for a character with their
// damage. Characters without a table show the built-in move name.
func specialLines(store *chars.Store, ch registry.Character) []string {
	var lines []string
	for _, sp := range store.Specials(ch.ID) {
		if sp.Damage > 0 {
			lines = append(lines, fmt.Sprintf("%s  dmg %d", sp.Name, sp.Damage))
		} else {
			lines = append(lines, sp.Name)
		}
	}
	if len(lines) == 0 {
		lines = append(lines, ch.Special)
	}
	return lines
}

func keyHint(id core.PlayerID) string {
	if id == core.Player1 {
		return "a/d move  j pick"
	}
	return "left/right move  1 pick"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	return string(r[:n])
}

func drawFight(c *Canvas, g *fighter.Game, sink *EffectSink) {
	sim := g.Sim()
	cfg := sim.Config()
	v := newViewport(c, cfg.Projectiles.BoundsW, cfg.Physics.GroundY)

	drawHUD(c, sim)

	// Ground
	_, gy := v.cell(0, cfg.Physics.GroundY)
	for x := range c.Width() {
		c.Set(x, gy, '=', colorGround)
	}

	for p := range core.NumPlayers {
		drawPlayer(c, v, sim, core.PlayerID(p))
	}

	for _, pr := range sim.Projectiles() {
		if !pr.Active {
			continue
		}
		x, y := v.cell(pr.X, pr.Y)
		c.Set(x, y, 'O', characterColor(pr.Type))
	}

	if g.Debug() {
		for p := range core.NumPlayers {
			drawDebug(c, v, sim, core.PlayerID(p))
		}
	}

	drawFeed(c, sim, sink)
}

func drawPlayer(c *Canvas, v viewport, sim *combat.Sim, id core.PlayerID) {
	p := sim.Player(id)
	boxes := sim.Boxes(id)
	color := characterColor(p.CharacterID)

	fill := '#'
	switch {
	case !p.Alive():
		fill = 'x'
	case p.Blocking:
		fill = '%'
	case p.Dashing:
		fill = '~'
	}

	x, y, w, h := v.rect(boxes.Hurt)
	c.Fill(x, y, w, h, fill, color)

	// Facing marker on the head row
	if p.Facing > 0 {
		c.Set(x+w, y, '>', color)
	} else {
		c.Set(x-1, y, '<', color)
	}

	if boxes.Hit.Active() {
		hx, hy, hw, _ := v.rect(boxes.Hit)
		for dx := range hw {
			c.Set(hx+dx, hy, '-', color)
		}
	}
}

func drawDebug(c *Canvas, v viewport, sim *combat.Sim, id core.PlayerID) {
	p := sim.Player(id)
	boxes := sim.Boxes(id)

	x, y, w, h := v.rect(boxes.Body)
	c.Outline(x, y, w, h, colorBody)
	x, y, w, h = v.rect(boxes.Hurt)
	c.Outline(x, y, w, h, colorHurt)
	if boxes.Clash.Active() {
		x, y, w, h = v.rect(boxes.Clash)
		c.Outline(x, y, w, h, colorClash)
	}
	if boxes.Hit.Active() {
		x, y, w, h = v.rect(boxes.Hit)
		c.Outline(x, y, w, h, colorHit)
	}

	info := fmt.Sprintf("%s %s f%d hurt:%s hit:%s", id, p.State, boxes.Frame, boxes.HurtSource, boxes.HitSource)
	row := c.Height() - footerRows - 2 + int(id)
	if id == core.Player1 {
		c.Text(0, row, info, colorDim)
	} else {
		c.Text(c.Width()-len(info), row, info, colorDim)
	}
}

// healthBar renders a fixed-width bar for health out of max.
func healthBar(health, maxHealth, width int) string {
	if maxHealth <= 0 || width <= 0 {
		return ""
	}
	filled := health * width / maxHealth
	filled = core.Clamp(filled, 0, width)
	return strings.Repeat("#", filled) + strings.Repeat(".", width-filled)
}

func roundPips(won, need int) string {
	return strings.Repeat("*", won) + strings.Repeat("o", max(need-won, 0))
}

func drawHUD(c *Canvas, sim *combat.Sim) {
	cfg := sim.Config()
	m := sim.Match()
	barW := max(c.Width()/4, 5)

	p1 := sim.Player(core.Player1)
	p2 := sim.Player(core.Player2)

	left := fmt.Sprintf("%s [%s] %s", registry.Name(p1.CharacterID),
		healthBar(p1.Health, cfg.Round.MaxHealth, barW), roundPips(m.P1Rounds, cfg.Round.RoundsToWin))
	right := fmt.Sprintf("%s [%s] %s", roundPips(m.P2Rounds, cfg.Round.RoundsToWin),
		healthBar(p2.Health, cfg.Round.MaxHealth, barW), registry.Name(p2.CharacterID))

	c.Text(0, 0, left, characterColor(p1.CharacterID))
	c.Text(c.Width()-len([]rune(right)), 0, right, characterColor(p2.CharacterID))
	c.CenterText(0, fmt.Sprintf("R%d", m.Round), colorTitle)

	c.Text(0, 1, specialStatus(p1), colorDim)
	r2 := specialStatus(p2)
	c.Text(c.Width()-len(r2), 1, r2, colorDim)

	if w, ok := m.RoundWinner(); ok {
		c.CenterText(1, fmt.Sprintf("%s WINS THE ROUND", w), colorTitle)
	}
}

// specialStatus shows the special move cooldown in whole seconds at 60 Hz.
func specialStatus(p combat.Player) string {
	if p.SpecialCooldown == 0 {
		return "special: ready"
	}
	return fmt.Sprintf("special: %ds", (p.SpecialCooldown+59)/60)
}

func drawFeed(c *Canvas, sim *combat.Sim, sink *EffectSink) {
	if sink == nil {
		return
	}
	x := 0
	y := c.Height() - 1
	for _, e := range sink.Active() {
		label := fmt.Sprintf("%s %s ", e.Source, effectLabel(e.Kind))
		c.Text(x, y, label, characterColor(sim.Player(e.Source).CharacterID))
		x += len(label)
	}
}

func drawWinner(c *Canvas, g *fighter.Game) {
	res := g.LastResult()
	if res == nil {
		return
	}
	charID := res.P1Char
	if res.Winner == core.Player2 {
		charID = res.P2Char
	}
	mid := c.Height() / 2
	c.CenterText(mid-1, fmt.Sprintf("  %s (%s) WINS %d-%d  ", res.Winner, registry.Name(charID),
		max(res.P1Rounds, res.P2Rounds), min(res.P1Rounds, res.P2Rounds)), characterColor(charID))
	c.CenterText(mid+1, "  press START for a rematch  ", colorText)
}
