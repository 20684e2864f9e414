package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const headerHeight = 50

type RunConfig struct {
	Difficulty Difficulty
	Seed       int64

	// Optional computer player
	Director Director
}

var numberColors = [...]color.RGBA{
	colornames.Gainsboro, // zero cells carry no number
	colornames.Blue,
	colornames.Green,
	colornames.Red,
	colornames.Navy,
	colornames.Maroon,
	colornames.Teal,
	colornames.Black,
	colornames.Gray,
}

var difficultyKeys = []pixelgl.Button{pixelgl.Key1, pixelgl.Key2, pixelgl.Key3}

// Run opens the game window and dispatches user intents into the engine
// until the window is closed.
func Run(config RunConfig) {
	minWindowWidth := float64(200)

	g := New(config.Difficulty, config.Seed)

	windowBounds := func() pixel.Rect {
		board := g.Board()
		return pixel.R(
			0, 0,
			math.Max(float64(board.Cols()*cellWidth), minWindowWidth),
			float64(board.Rows()*cellWidth+headerHeight),
		)
	}

	win, err := pixelgl.NewWindow(pixelgl.WindowConfig{
		Title:  "minesweep",
		Bounds: windowBounds(),
	})
	if err != nil {
		panic(err)
	}

	basicAtlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	scoreText := text.New(pixel.ZV, basicAtlas)
	timeText := text.New(pixel.ZV, basicAtlas)
	numText := text.New(pixel.ZV, basicAtlas)

	if config.Director != nil {
		config.Director.Init(g)
		config.Director.ActContinuously()
		defer config.Director.End()
	}

	for !win.Closed() {
		win.Update()
		win.Clear(colornames.Gainsboro)

		drawBoard(win, g, numText)
		drawHeader(win, g, scoreText, timeText)

		// Start a new game with Enter, from any state
		if win.JustPressed(pixelgl.KeyEnter) {
			g.Restart()
		}

		// 1/2/3 restart on the chosen difficulty preset
		for i, key := range difficultyKeys {
			if win.JustPressed(key) {
				if err := g.SetDifficulty(Difficulties[i].Name); err == nil {
					win.SetBounds(windowBounds())
				}
			}
		}

		if win.JustPressed(pixelgl.MouseButtonLeft) || win.JustPressed(pixelgl.MouseButtonRight) {
			row, col := screenToGridCoords(g.Board(), win.MousePosition())

			if win.JustPressed(pixelgl.MouseButtonLeft) {
				g.Reveal(row, col)
			}
			if win.JustPressed(pixelgl.MouseButtonRight) {
				g.ToggleFlag(row, col)
			}
		}
	}
}

func screenToGridCoords(board *Board, pos pixel.Vec) (row, col int) {
	col = int(pos.X) / cellWidth
	row = board.Rows() - 1 - int(pos.Y)/cellWidth
	return
}

func cellMin(board *Board, cell *Cell) pixel.Vec {
	return pixel.V(
		float64(cell.Col()*cellWidth),
		float64((board.Rows()-1-cell.Row())*cellWidth),
	)
}

func drawBoard(win *pixelgl.Window, g *Game, numText *text.Text) {
	board := g.Board()
	status := g.Status()

	imd := imdraw.New(nil)

	for cell := range board.Cells() {
		min := cellMin(board, cell)
		max := min.Add(pixel.V(cellWidth, cellWidth))
		center := min.Add(pixel.V(cellWidth/2, cellWidth/2))

		state := cell.DisplayState(status)

		switch state {
		case Unrevealed, Flag, FlagWrong:
			imd.Color = colornames.Silver
		case MineLosing:
			imd.Color = colornames.Lightcoral
		default:
			imd.Color = colornames.Whitesmoke
		}
		imd.Push(min, max)
		imd.Rectangle(0)

		imd.Color = colornames.Darkgray
		imd.Push(min, max)
		imd.Rectangle(1)

		switch state {
		case Flag, FlagWrong:
			imd.Color = colornames.Crimson
			imd.Push(center.Sub(pixel.V(3, 3)), center.Add(pixel.V(3, 3)))
			imd.Rectangle(0)

			if state == FlagWrong {
				imd.Color = colornames.Black
				imd.Push(min.Add(pixel.V(2, 2)), max.Sub(pixel.V(2, 2)))
				imd.Line(1)
			}
		case Mine, MineLosing:
			imd.Color = colornames.Black
			imd.Push(center)
			imd.Circle(4, 0)
		}
	}

	imd.Draw(win)

	// Numbers go on top of the tile batch
	for cell := range board.Cells() {
		state := cell.DisplayState(status)
		if state < Number1 || state > Number8 {
			continue
		}

		numText.Clear()
		numText.Color = numberColors[state]
		numText.Dot = cellMin(board, cell).Add(pixel.V(5, 4))
		fmt.Fprintf(numText, "%d", cell.NeighborMines())
		numText.Draw(win, pixel.IM)
	}
}

func drawHeader(win *pixelgl.Window, g *Game, scoreText, timeText *text.Text) {
	topLeft := win.Bounds().Vertices()[1]
	topRight := win.Bounds().Max

	scoreText.Clear()
	scoreText.Color = colornames.Black
	scoreText.Dot = topLeft.Add(pixel.V(20, -30))

	fmt.Fprintf(scoreText, "%03d", g.MinesRemaining())
	switch g.Status() {
	case Won:
		scoreText.Color = colornames.Green
		fmt.Fprint(scoreText, "   WIN!")
	case Lost:
		scoreText.Color = colornames.Red
		fmt.Fprint(scoreText, "   LOSE :(")
	}
	scoreText.Draw(win, pixel.IM)

	timeText.Clear()
	timeText.Color = colornames.Black
	timeText.Dot = topRight.Add(pixel.V(-60, -30))
	fmt.Fprintf(timeText, "%03d", g.ElapsedSeconds())
	timeText.Draw(win, pixel.IM)
}
