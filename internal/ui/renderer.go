package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/samdwyer/fogmaze/internal/gamedata"
)

const (
	helpText  = "WASD/arrows move  R reset  C clear fog  Esc quit"
	deathText = "You died! Press any key to exit."
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	palette *gamedata.Palette
	printer *message.Printer
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette *gamedata.Palette) *Renderer {
	return &Renderer{
		screen:  screen,
		palette: palette,
		printer: message.NewPrinter(language.English),
	}
}

// Render draws the fogged grid and the status panel below it. Each cell
// takes two columns so the board reads as roughly square.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()

	for row, cells := range f.Cells {
		for col, kind := range cells {
			def := r.palette.Get(kind.String())
			r.screen.SetContent(col*2, row, def.GlyphRune(), def.Style())
			r.screen.SetContent(col*2+1, row, ' ', def.Style())
		}
	}

	y := len(f.Cells) + 1
	r.drawText(0, y, f.Status, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
	r.drawText(0, y+1, r.healthLine(f), tcell.StyleDefault.Foreground(tcell.ColorRed))
	r.drawText(0, y+2, r.moneyLine(f), tcell.StyleDefault.Foreground(tcell.ColorYellow))

	footer, style := helpText, tcell.StyleDefault.Foreground(tcell.ColorGray)
	if f.Dead {
		footer, style = deathText, tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	}
	r.drawText(0, y+4, footer, style)

	r.screen.Show()
}

func (r *Renderer) healthLine(f Frame) string {
	return fmt.Sprintf("Health: %d/%d%s", f.Health, f.MaxHealth, delta(f.HealthDelta))
}

func (r *Renderer) moneyLine(f Frame) string {
	return r.printer.Sprintf("Money: %d", f.Money) + delta(f.MoneyDelta)
}

// delta formats a stat change like "( + 10 )", or nothing for zero.
func delta(d int) string {
	switch {
	case d > 0:
		return fmt.Sprintf(" ( + %d )", d)
	case d < 0:
		return fmt.Sprintf(" ( - %d )", -d)
	default:
		return ""
	}
}

// drawText writes a single line of text starting at x, y.
func (r *Renderer) drawText(x, y int, msg string, style tcell.Style) {
	for _, ch := range msg {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
}
