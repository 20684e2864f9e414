package deduce

import (
	"time"

	"minesweep/director/random"
	"minesweep/game"
	"minesweep/util/collections"
)

// Director plays single-point deductions: a revealed number whose hidden
// neighbors all must be mines gets them flagged; a number already satisfied
// by flags gets its remaining neighbors revealed. When no deduction fires it
// falls back to a random probe.
type Director struct {
	game *game.Game
	done chan struct{}
}

func (director *Director) Init(g *game.Game) {
	director.game = g
	director.done = make(chan struct{})
}

func (director *Director) Act() {
	status := director.game.Status()
	if status == game.Won || status == game.Lost {
		return
	}

	board := director.game.Board()
	if !board.MinesPlaced() {
		// No numbers to reason about yet; open in the middle of the board
		director.game.Reveal(board.Rows()/2, board.Cols()/2)
		return
	}

	toFlag := make(collections.Set[*game.Cell])
	toReveal := make(collections.Set[*game.Cell])

	for cell := range board.Cells() {
		if !cell.IsRevealed() || cell.IsMine() || cell.NeighborMines() == 0 {
			continue
		}

		var hidden []*game.Cell
		numFlagged := 0
		for neighbor := range cell.Neighbors() {
			switch {
			case neighbor.IsFlagged():
				numFlagged++
			case !neighbor.IsRevealed():
				hidden = append(hidden, neighbor)
			}
		}
		if len(hidden) == 0 {
			continue
		}

		switch {
		case numFlagged+len(hidden) == cell.NeighborMines():
			for _, neighbor := range hidden {
				toFlag.Add(neighbor)
			}
		case numFlagged == cell.NeighborMines():
			for _, neighbor := range hidden {
				toReveal.Add(neighbor)
			}
		}
	}

	if toFlag.Len() == 0 && toReveal.Len() == 0 {
		director.actRandom()
		return
	}

	for cell := range toFlag {
		director.game.ToggleFlag(cell.Row(), cell.Col())
	}
	for cell := range toReveal {
		if toFlag.Contains(cell) {
			continue
		}
		director.game.Reveal(cell.Row(), cell.Col())
	}
}

func (director *Director) actRandom() {
	fallback := &random.Director{}
	fallback.Init(director.game)
	fallback.Act()
	fallback.End()
}

func (director *Director) ActContinuously() {
	go func() {
		tick := time.NewTicker(500 * time.Millisecond)
		defer tick.Stop()

		for {
			select {
			case <-director.done:
				return
			case <-tick.C:
				director.Act()
			}
		}
	}()
}

func (director *Director) End() {
	close(director.done)
}
