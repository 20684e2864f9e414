package game

import "fmt"

type Cell struct {
	board *Board

	row, col      int
	neighborMines int

	isMine, isRevealed, isFlagged bool
	isLosingMine                  bool
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell(%v, %v)", cell.row, cell.col)
}

func (cell *Cell) Row() int {
	return cell.row
}

func (cell *Cell) Col() int {
	return cell.col
}

func (cell *Cell) IsMine() bool {
	return cell.isMine
}

func (cell *Cell) IsRevealed() bool {
	return cell.isRevealed
}

func (cell *Cell) IsFlagged() bool {
	return cell.isFlagged
}

func (cell *Cell) NeighborMines() int {
	return cell.neighborMines
}

// Neighbors streams the up-to-8 cells of the Moore neighborhood, clipped at
// the board edges.
func (cell *Cell) Neighbors() <-chan *Cell {
	out := make(chan *Cell)
	go func() {
		cell.forEachNeighbor(func(neighbor *Cell) {
			out <- neighbor
		})
		close(out)
	}()
	return out
}

func (cell *Cell) forEachNeighbor(fn func(*Cell)) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if neighbor := cell.board.CellAt(cell.row+dr, cell.col+dc); neighbor != nil {
				fn(neighbor)
			}
		}
	}
}

// DisplayState maps the cell's flags onto the state the renderer draws.
// Flagged mines keep their flag after a loss; flags on safe cells are
// crossed out.
func (cell *Cell) DisplayState(status GameStatus) CellState {
	if cell.isRevealed {
		switch {
		case !cell.isMine:
			return CellState(cell.neighborMines)
		case cell.isLosingMine:
			return MineLosing
		case cell.isFlagged:
			return Flag
		default:
			return Mine
		}
	}

	if cell.isFlagged {
		if status == Lost && !cell.isMine {
			return FlagWrong
		}
		return Flag
	}
	return Unrevealed
}
