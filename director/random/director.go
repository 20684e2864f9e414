package random

import (
	"math/rand"
	"time"

	"minesweep/game"
)

// Director reveals a random unrevealed, unflagged cell on each step.
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

	var candidates []*game.Cell
	for cell := range director.game.Board().Cells() {
		if !cell.IsRevealed() && !cell.IsFlagged() {
			candidates = append(candidates, cell)
		}
	}
	if len(candidates) == 0 {
		return
	}

	cell := candidates[rand.Intn(len(candidates))]
	director.game.Reveal(cell.Row(), cell.Col())
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
