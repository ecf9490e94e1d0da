package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Cell is one character on the canvas. An empty Color uses the terminal
// default.
type Cell struct {
	Rune  rune
	Color lipgloss.Color
}

// Canvas is a fixed-size grid of cells that the renderer draws into each
// frame before converting it to a styled string.
type Canvas struct {
	width  int
	height int
	cells  []Cell
}

// NewCanvas creates a blank canvas.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in cells.
func (c *Canvas) Height() int { return c.height }

// Resize changes the dimensions and clears the canvas.
func (c *Canvas) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c.width = width
	c.height = height
	c.cells = make([]Cell, width*height)
	c.Clear()
}

// Clear fills the canvas with blanks.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = Cell{Rune: ' '}
	}
}

// InBounds reports whether (x, y) lies on the canvas.
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Set writes a cell. Out-of-bounds writes are ignored.
func (c *Canvas) Set(x, y int, r rune, color lipgloss.Color) {
	if !c.InBounds(x, y) {
		return
	}
	c.cells[y*c.width+x] = Cell{Rune: r, Color: color}
}

// Get returns the cell at (x, y), or a blank outside the canvas.
func (c *Canvas) Get(x, y int) Cell {
	if !c.InBounds(x, y) {
		return Cell{Rune: ' '}
	}
	return c.cells[y*c.width+x]
}

// Text writes a string starting at (x, y).
func (c *Canvas) Text(x, y int, s string, color lipgloss.Color) {
	for i, r := range []rune(s) {
		c.Set(x+i, y, r, color)
	}
}

// CenterText writes a string centered on row y.
func (c *Canvas) CenterText(y int, s string, color lipgloss.Color) {
	c.Text((c.width-len([]rune(s)))/2, y, s, color)
}

// Fill paints a rectangle of cells.
func (c *Canvas) Fill(x, y, w, h int, r rune, color lipgloss.Color) {
	for dy := range h {
		for dx := range w {
			c.Set(x+dx, y+dy, r, color)
		}
	}
}

// Outline draws the border of a rectangle.
func (c *Canvas) Outline(x, y, w, h int, color lipgloss.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	for dx := range w {
		c.Set(x+dx, y, '-', color)
		c.Set(x+dx, y+h-1, '-', color)
	}
	for dy := range h {
		c.Set(x, y+dy, '|', color)
		c.Set(x+w-1, y+dy, '|', color)
	}
	c.Set(x, y, '+', color)
	c.Set(x+w-1, y, '+', color)
	c.Set(x, y+h-1, '+', color)
	c.Set(x+w-1, y+h-1, '+', color)
}

// String returns the canvas as plain text without colors.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.width*c.height + c.height)
	for y := range c.height {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := range c.width {
			sb.WriteRune(c.cells[y*c.width+x].Rune)
		}
	}
	return sb.String()
}

// Render converts the canvas to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (c *Canvas) Render() string {
	var sb strings.Builder
	sb.Grow(c.width*c.height*2 + c.height)

	for y := range c.height {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < c.width {
			color := c.cells[y*c.width+x].Color

			var run strings.Builder
			for x < c.width && c.cells[y*c.width+x].Color == color {
				run.WriteRune(c.cells[y*c.width+x].Rune)
				x++
			}

			if color == "" {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(lipgloss.NewStyle().Foreground(color).Render(run.String()))
		}
	}
	return sb.String()
}
