package mazerun

import (
	"fmt"

	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/core"
	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/maze"
)

// Glyphs drawn in cell centers.
const (
	glyphPlayer = '@'
	glyphFriend = 'F'
	glyphEnemy  = 'X'
)

// screenEmitter draws wall segments into a screen through the camera.
type screenEmitter struct {
	dst *core.Screen
	cam *camera
}

func (e screenEmitter) EmitWall(seg maze.Segment) {
	x0, y0 := seg.X*maze.CellCols, seg.Y*maze.CellRows
	switch seg.Side {
	case maze.North:
		e.hline(x0, y0)
	case maze.South:
		e.hline(x0, y0+maze.CellRows)
	case maze.West:
		e.vline(x0, y0)
	case maze.East:
		e.vline(x0+maze.CellCols, y0)
	}
}

func (e screenEmitter) set(x, y int, r rune) {
	sx, sy := e.cam.toScreen(x, y)
	if e.cam.visible(sx, sy) {
		e.dst.SetColored(sx, sy, r, core.ColorWall)
	}
}

func (e screenEmitter) hline(x, y int) {
	e.set(x, y, '+')
	for i := 1; i < maze.CellCols; i++ {
		e.set(x+i, y, '-')
	}
	e.set(x+maze.CellCols, y, '+')
}

func (e screenEmitter) vline(x, y int) {
	e.set(x, y, '+')
	for i := 1; i < maze.CellRows; i++ {
		e.set(x, y+i, '|')
	}
	e.set(x, y+maze.CellRows, '+')
}

// Render draws the maze, the characters, the HUD and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		dst.DrawPanel([]string{"Cannot build maze", g.err.Error(), "Q to quit"}, core.ColorEnemy)
		return
	}
	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorHUD)
		dst.DrawTextCentered(dst.Height()/2+1, "Resize to continue", core.ColorHint)
		return
	}

	g.renderHUD(dst)
	maze.Emit(g.grid, screenEmitter{dst: dst, cam: &g.cam})

	g.drawGlyph(dst, g.friend.pos, glyphFriend, core.ColorFriend)
	for _, e := range g.enemies {
		g.drawGlyph(dst, e.pos, glyphEnemy, core.ColorEnemy)
	}
	g.drawGlyph(dst, g.player.pos, glyphPlayer, core.ColorPlayer)

	switch {
	case g.outcome == core.OutcomeCaught:
		dst.DrawPanel([]string{
			"CAUGHT!",
			"An enemy got you.",
			"",
			"R new maze   Q quit",
		}, core.ColorEnemy)
	case g.outcome == core.OutcomeFinished:
		dst.DrawPanel([]string{
			"YOU FOUND YOUR FRIEND!",
			fmt.Sprintf("Score: %d", g.score),
			fmt.Sprintf("Moves: %d (shortest %d)  Time: %s", g.moves, g.bestPath, g.elapsed()),
			"",
			"R new maze   Q quit",
		}, core.ColorFriend)
	case g.paused:
		dst.DrawPanel([]string{"PAUSED", "P to resume"}, core.ColorHUD)
	}
}

func (g *Game) drawGlyph(dst *core.Screen, p maze.Point, r rune, c core.Color) {
	x, y := g.cam.cellCenter(p)
	if g.cam.visible(x, y) {
		dst.SetColored(x, y, r, c)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s  %dx%d  Moves: %d  Time: %s", g.Title(),
		g.grid.Width(), g.grid.Height(), g.moves, g.elapsed())
	dst.DrawTextColored(0, 0, hud, core.ColorHUD)

	legend := "@ you  F friend"
	if g.mode == ModeChase {
		legend += "  X enemy"
	}
	if x := dst.Width() - len(legend) - 1; x > len(hud)+2 {
		dst.DrawTextColored(x, 0, legend, core.ColorHint)
	}
}

// elapsed formats the playing time as m:ss.
func (g *Game) elapsed() string {
	secs := g.playTicks / g.tickRate
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
