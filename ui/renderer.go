package ui

import (
	"fmt"

	"snake-autopilot/game"
	"snake-autopilot/game/types"
	"snake-autopilot/stats"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	maxScores     = 200 // Maximum number of scores to show in graph
	borderPadding = 10  // Padding around game area
)

var (
	background = rl.Color{R: 0x2d, G: 0x37, B: 0x48, A: 255}
	bodyColor  = rl.Color{R: 0x48, G: 0xbb, B: 0x78, A: 255}
	headColor  = rl.Color{R: 0x38, G: 0xa1, B: 0x69, A: 255}
	foodColor  = rl.Color{R: 0xe5, G: 0x3e, B: 0x3e, A: 255}
	gridColor  = rl.Color{R: 255, G: 255, B: 255, A: 25}
	gold       = rl.Color{R: 255, G: 215, B: 0, A: 255}
)

type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	graphHeight     int32
	graphWidth      int32
	gameWidth       int32
	gameHeight      int32
	statsPanel      int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	// Stats panel takes a seventh of the window
	r.statsPanel = r.screenWidth / 7
	r.gameWidth = r.screenWidth - r.statsPanel
	r.gameHeight = r.screenHeight

	r.graphWidth = r.statsPanel - 20
	r.graphHeight = r.screenHeight / 5
}

// Draw renders one frame. history feeds the score graph and may be nil.
func (r *Renderer) Draw(g *game.Game, history *stats.GameStats, interval string) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	fontSize := min(r.screenHeight/45, r.statsPanel/15)
	lineHeight := min(r.screenHeight/35, r.statsPanel/12)

	st := g.State()
	grid := g.Grid()
	r.layout(grid)

	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.totalGridWidth+2, r.totalGridHeight+2, background)
	for x := 0; x < grid.Width; x++ {
		for y := 0; y < grid.Height; y++ {
			rl.DrawRectangleLines(r.cellX(x), r.cellY(y), r.cellSize, r.cellSize, gridColor)
		}
	}

	for i, p := range st.Snake.Body {
		color := bodyColor
		if i == 0 {
			color = headColor
		}
		rl.DrawRectangle(r.cellX(p.X)+1, r.cellY(p.Y)+1, r.cellSize-2, r.cellSize-2, color)
	}
	r.drawHeading(st.Snake.GetHead(), st.Snake.Direction)

	rl.DrawRectangle(r.cellX(st.Food.X)+2, r.cellY(st.Food.Y)+2, r.cellSize-4, r.cellSize-4, foodColor)

	r.drawStatsPanel(g, st, history, interval, fontSize, lineHeight)
	r.drawOverlay(g, st, fontSize)
	rl.EndDrawing()
}

func (r *Renderer) layout(grid types.Grid) {
	availableWidth := r.gameWidth - (borderPadding * 2)
	availableHeight := r.gameHeight - (borderPadding * 2)

	cellW := availableWidth / int32(grid.Width)
	cellH := availableHeight / int32(grid.Height)
	r.cellSize = max(min(cellW, cellH), 1)

	r.totalGridWidth = r.cellSize * int32(grid.Width)
	r.totalGridHeight = r.cellSize * int32(grid.Height)

	r.offsetX = borderPadding + (availableWidth-r.totalGridWidth)/2
	r.offsetY = (r.screenHeight - r.totalGridHeight) / 2
}

func (r *Renderer) cellX(x int) int32 { return r.offsetX + int32(x)*r.cellSize }
func (r *Renderer) cellY(y int) int32 { return r.offsetY + int32(y)*r.cellSize }

// drawHeading marks the head with a triangle pointing along dir.
func (r *Renderer) drawHeading(head types.Point, dir types.Direction) {
	headX := float32(r.cellX(head.X))
	headY := float32(r.cellY(head.Y))
	cell := float32(r.cellSize)
	half := cell / 2

	var a, b, c rl.Vector2
	switch dir {
	case types.Right:
		a, b, c = rl.Vector2{X: headX + cell, Y: headY + half}, rl.Vector2{X: headX + half, Y: headY}, rl.Vector2{X: headX + half, Y: headY + cell}
	case types.Left:
		a, b, c = rl.Vector2{X: headX, Y: headY + half}, rl.Vector2{X: headX + half, Y: headY + cell}, rl.Vector2{X: headX + half, Y: headY}
	case types.Down:
		a, b, c = rl.Vector2{X: headX + half, Y: headY + cell}, rl.Vector2{X: headX + cell, Y: headY + half}, rl.Vector2{X: headX, Y: headY + half}
	case types.Up:
		a, b, c = rl.Vector2{X: headX + half, Y: headY}, rl.Vector2{X: headX, Y: headY + half}, rl.Vector2{X: headX + cell, Y: headY + half}
	default:
		return
	}
	rl.DrawTriangle(a, b, c, rl.Yellow)
}

func (r *Renderer) drawStatsPanel(g *game.Game, st game.State, history *stats.GameStats, interval string, fontSize, lineHeight int32) {
	statsX := r.gameWidth + 5
	statsY := int32(10)

	rl.DrawRectangle(statsX-5, 0, r.statsPanel+5, r.screenHeight, rl.DarkGray)

	lines := []string{
		fmt.Sprintf("Score: %d", st.Score),
		fmt.Sprintf("High: %d", g.HighScore),
		fmt.Sprintf("Length: %d", st.Snake.Len()),
		fmt.Sprintf("Mode: %s", modeLabel(st.Auto)),
		fmt.Sprintf("Speed: %s", interval),
		fmt.Sprintf("State: %s", st.Phase),
	}
	if history != nil {
		lines = append(lines,
			"",
			fmt.Sprintf("Games: %d", history.GetGamesPlayed()),
			fmt.Sprintf("Avg: %.1f", history.GetAverageScore()),
			fmt.Sprintf("Median: %.1f", history.GetMedianScore()),
			fmt.Sprintf("Avg time: %.1fs", history.GetAverageDuration()),
		)
	}
	for _, line := range lines {
		rl.DrawText(line, statsX, statsY, fontSize, rl.White)
		statsY += lineHeight
	}

	statsY += lineHeight / 2
	for _, help := range []string{"SPACE start/pause", "M auto/manual", "R reset", "+/- speed", "Q quit"} {
		rl.DrawText(help, statsX, statsY, fontSize, rl.LightGray)
		statsY += lineHeight
	}

	if history != nil {
		r.drawPerformanceGraph(history, statsX, fontSize)
	}
}

func (r *Renderer) drawPerformanceGraph(history *stats.GameStats, graphX, fontSize int32) {
	graphHeight := r.graphHeight
	graphY := r.screenHeight - graphHeight - fontSize*2

	rl.DrawRectangleLines(graphX, graphY, r.graphWidth, graphHeight, rl.White)
	rl.DrawText("Scores", graphX, graphY-fontSize-5, fontSize, rl.White)

	records := history.GetStats()
	if len(records) > maxScores {
		records = records[len(records)-maxScores:]
	}
	maxScore := 1
	for _, rec := range records {
		maxScore = max(maxScore, rec.MaxScore)
	}
	if len(records) < 2 {
		return
	}

	scale := func(score float64) int32 {
		return graphY + graphHeight - int32(float32(graphHeight)*float32(score)/float32(maxScore))
	}
	for j := 1; j < len(records); j++ {
		x1 := graphX + int32(float32(r.graphWidth)*float32(j-1)/float32(maxScores))
		x2 := graphX + int32(float32(r.graphWidth)*float32(j)/float32(maxScores))
		rl.DrawLine(x1, scale(records[j-1].AverageScore), x2, scale(records[j].AverageScore), bodyColor)
	}

	// Dashed average line
	avgY := scale(history.GetAverageScore())
	for x := graphX; x < graphX+r.graphWidth; x += 5 {
		rl.DrawLine(x, avgY, x+2, avgY, gold)
	}
}

func (r *Renderer) drawOverlay(g *game.Game, st game.State, fontSize int32) {
	centerX := r.offsetX + r.totalGridWidth/2
	centerY := r.offsetY + r.totalGridHeight/2

	drawCentered := func(text string, y, size int32, color rl.Color) {
		width := rl.MeasureText(text, size)
		rl.DrawText(text, centerX-width/2, y, size, color)
	}

	switch st.Phase {
	case game.GameOver:
		rl.DrawRectangle(r.offsetX, r.offsetY, r.totalGridWidth, r.totalGridHeight, rl.Color{A: 204})
		drawCentered("GAME OVER!", centerY-fontSize*3, fontSize*2, rl.White)
		drawCentered(fmt.Sprintf("Final Score: %d", st.Score), centerY, fontSize, rl.White)
		if g.NewRecord && st.Score > 0 {
			drawCentered("NEW RECORD!", centerY+fontSize*2, fontSize, gold)
		}
		drawCentered("Press SPACE to restart or R to reset", centerY+fontSize*4, fontSize, rl.White)
	case game.Paused:
		drawCentered("PAUSED", centerY, fontSize*2, rl.White)
	case game.Idle:
		drawCentered("Press SPACE to start", centerY+fontSize*2, fontSize, rl.White)
	}
}

func modeLabel(auto bool) string {
	if auto {
		return "AUTO"
	}
	return "MANUAL"
}
