package sprint

import (
	"fmt"

	"github.com/APorkolab/SprintSolve/internal/core"
)

// Rendering glyphs.
const (
	WallChar      = '█'
	CharacterChar = '●'
	WingChar      = '>'
)

// Render draws the current game state into the provided screen buffer.
// The simulation runs in world units; rendering scales everything down to
// whatever cell grid the platform hands us.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.phase {
	case PhaseMenu:
		g.renderMenu(dst)
		return
	case PhaseCategorySelect:
		g.renderCategorySelect(dst)
		return
	}

	g.renderWorld(dst)
	g.renderHUD(dst)

	if g.phase == PhasePaused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.phase == PhaseGameOver {
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  R: retry  Enter: categories", g.score))
	}
}

func (g *Game) renderMenu(dst *core.Screen) {
	h := dst.Height()
	dst.DrawTextCentered(h/2-2, "S P R I N T   S O L V E")
	dst.DrawTextCentered(h/2, "Fly through the tunnel with the right answer")
	dst.DrawTextCentered(h/2+2, "Press Enter to start")
}

func (g *Game) renderCategorySelect(dst *core.Screen) {
	h := dst.Height()
	top := h/2 - len(g.categories)/2 - 2
	dst.DrawTextCentered(top, "Choose a category")

	for i, cat := range g.categories {
		line := "  " + cat.Name
		if i == g.cursor {
			line = "> " + cat.Name
		}
		y := top + 2 + i
		x := (dst.Width() - len(line)) / 2
		if i == g.cursor {
			dst.DrawTextColored(x, y, line, core.ColorYellow)
		} else {
			dst.DrawText(x, y, line)
		}
	}
}

func (g *Game) renderWorld(dst *core.Screen) {
	sx := float64(dst.Width()) / g.conf.Canvas.Width
	sy := float64(dst.Height()) / g.conf.Canvas.Height

	// Solid wall segments
	for _, w := range g.pool.ActiveWalls() {
		x0 := int(w.X * sx)
		x1 := int((w.X + w.Width) * sx)
		y0 := int(w.Y * sy)
		y1 := int((w.Y + w.Height) * sy)
		for y := y0; y < y1; y++ {
			for x := x0; x <= x1; x++ {
				dst.SetColored(x, y, WallChar, core.ColorGreen)
			}
		}
	}

	// Tunnel answer labels, centered in each opening
	for _, t := range g.pool.ActiveTunnels() {
		label := t.AnswerText
		if label == "" {
			continue
		}
		y := int((t.Y + t.Height/2) * sy)
		x := int((t.X+t.Width/2)*sx) - len(label)/2
		dst.DrawTextColored(x, y, label, core.ColorCyan)
	}

	// Pickups
	for _, p := range g.pickups {
		if !p.Active {
			continue
		}
		dst.SetColored(int(p.X*sx), int(p.Y*sy), p.Type.Glyph(), core.ColorMagenta)
	}

	// Character (body plus a trailing wing cell when it fits)
	cx := int(g.character.X * sx)
	cy := int(g.character.Y * sy)
	dst.SetColored(cx, cy, CharacterChar, core.ColorYellow)
	if cx > 0 {
		dst.Set(cx-1, cy, WingChar)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	if g.question.Display && g.question.Text != "" {
		dst.DrawTextCentered(0, g.question.Text)
	}

	hud := fmt.Sprintf(" Score: %d  Lives: %d ", g.score, g.lives)
	if g.hasShield {
		hud += "[Shield] "
	}
	dst.DrawText(1, 1, hud)

	if g.message != "" {
		dst.DrawTextCentered(2, g.message)
	}
	if g.awaitingQuestion {
		dst.DrawTextCentered(dst.Height()-1, "Loading question...")
	}
}

// drawCenteredMessage draws a boxed message in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
