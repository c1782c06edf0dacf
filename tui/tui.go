package tui

import (
	"fmt"

	"snake-autopilot/game"
	"snake-autopilot/game/types"

	"github.com/gdamore/tcell/v2"
)

var (
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHead   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0x38, 0xa1, 0x69))
	styleBody   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0x48, 0xbb, 0x78))
	styleFood   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xe5, 0x3e, 0x3e))
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleRecord = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
)

// Action is a host command decoded from a key event.
type Action int

const (
	ActionNone Action = iota
	ActionSteer
	ActionTogglePause
	ActionToggleAuto
	ActionReset
	ActionFaster
	ActionSlower
	ActionQuit
)

// Decode maps a key event onto an action; dir is set for ActionSteer.
func Decode(ev *tcell.EventKey) (Action, types.Direction) {
	return decodeKey(ev.Key(), ev.Rune())
}

func decodeKey(key tcell.Key, ch rune) (Action, types.Direction) {
	switch key {
	case tcell.KeyUp:
		return ActionSteer, types.Up
	case tcell.KeyRight:
		return ActionSteer, types.Right
	case tcell.KeyDown:
		return ActionSteer, types.Down
	case tcell.KeyLeft:
		return ActionSteer, types.Left
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit, types.None
	case tcell.KeyRune:
		switch ch {
		case 'w', 'W':
			return ActionSteer, types.Up
		case 'd', 'D':
			return ActionSteer, types.Right
		case 's', 'S':
			return ActionSteer, types.Down
		case 'a', 'A':
			return ActionSteer, types.Left
		case ' ':
			return ActionTogglePause, types.None
		case 'm', 'M':
			return ActionToggleAuto, types.None
		case 'r', 'R':
			return ActionReset, types.None
		case '+', '=':
			return ActionFaster, types.None
		case '-', '_':
			return ActionSlower, types.None
		case 'q', 'Q':
			return ActionQuit, types.None
		}
	}
	return ActionNone, types.None
}

// Renderer draws a game on a tcell screen, two columns per cell so the
// board looks square.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

func (r *Renderer) Draw(g *game.Game, speed string) {
	r.screen.Clear()
	st := g.State()
	grid := g.Grid()

	// Border
	for x := -1; x <= grid.Width; x++ {
		r.cell(x, -1, '█', '█', styleBorder)
		r.cell(x, grid.Height, '█', '█', styleBorder)
	}
	for y := 0; y < grid.Height; y++ {
		r.cell(-1, y, '█', '█', styleBorder)
		r.cell(grid.Width, y, '█', '█', styleBorder)
	}

	for i, p := range st.Snake.Body {
		if i == 0 {
			r.cell(p.X, p.Y, '█', '█', styleHead)
		} else {
			r.cell(p.X, p.Y, '▓', '▓', styleBody)
		}
	}
	r.cell(st.Food.X, st.Food.Y, '●', ' ', styleFood)

	mode := "MANUAL"
	if st.Auto {
		mode = "AUTO"
	}
	statusY := grid.Height + 3
	r.text(0, statusY, fmt.Sprintf("Score %d  High %d  Length %d  %s  %s  %s",
		st.Score, g.HighScore, st.Snake.Len(), mode, speed, st.Phase), styleText)
	r.text(0, statusY+1, "arrows/WASD steer  SPACE start/pause  M auto  R reset  +/- speed  Q quit", styleBorder)

	switch st.Phase {
	case game.GameOver:
		r.text(0, statusY+2, fmt.Sprintf("GAME OVER! Final score %d. SPACE restarts.", st.Score), styleText)
		if g.NewRecord && st.Score > 0 {
			r.text(0, statusY+3, "NEW RECORD!", styleRecord)
		}
	case game.Paused:
		r.text(0, statusY+2, "PAUSED", styleText)
	case game.Idle:
		r.text(0, statusY+2, "Press SPACE to start", styleText)
	}
	r.screen.Show()
}

// cell draws grid cell (x, y), offset by the one-cell border.
func (r *Renderer) cell(x, y int, left, right rune, style tcell.Style) {
	sx := (x + 1) * 2
	sy := y + 1
	r.screen.SetContent(sx, sy, left, nil, style)
	r.screen.SetContent(sx+1, sy, right, nil, style)
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// Fits reports whether the screen can hold the board and status lines.
func Fits(screen tcell.Screen, grid types.Grid) bool {
	w, h := screen.Size()
	return w >= (grid.Width+2)*2 && h >= grid.Height+6
}
