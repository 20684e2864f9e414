package game

import "math/rand"

type Board struct {
	rows, cols int
	numMines   int
	cells      [][]Cell

	minesPlaced bool
}

// newBoard builds an empty rows x cols grid for the given preset. No mines
// are placed until the first reveal.
func newBoard(config Difficulty) *Board {
	board := &Board{
		rows:     config.Rows,
		cols:     config.Cols,
		numMines: config.Mines,
		cells:    make([][]Cell, config.Rows),
	}

	for row := 0; row < board.rows; row++ {
		board.cells[row] = make([]Cell, board.cols)
		for col := 0; col < board.cols; col++ {
			cell := &board.cells[row][col]
			cell.board = board
			cell.row, cell.col = row, col
		}
	}

	return board
}

func (board *Board) Rows() int {
	return board.rows
}

func (board *Board) Cols() int {
	return board.cols
}

func (board *Board) NumMines() int {
	return board.numMines
}

func (board *Board) NumCells() int {
	return board.rows * board.cols
}

func (board *Board) MinesPlaced() bool {
	return board.minesPlaced
}

func (board *Board) CellAt(row, col int) *Cell {
	if row >= 0 && col >= 0 && row < board.rows && col < board.cols {
		return &board.cells[row][col]
	}
	return nil
}

func (board *Board) Cells() <-chan *Cell {
	out := make(chan *Cell)
	go func() {
		for row := 0; row < board.rows; row++ {
			for col := 0; col < board.cols; col++ {
				out <- board.CellAt(row, col)
			}
		}
		close(out)
	}()
	return out
}

// placeMines scatters numMines mines by rejection sampling: random draws are
// retried until the quota is met, skipping cells already mined and the 3x3
// exclusion zone around the anchor, so the first reveal never touches a mine.
func (board *Board) placeMines(anchorRow, anchorCol int, rng *rand.Rand) {
	placed := 0
	for placed < board.numMines {
		row, col := rng.Intn(board.rows), rng.Intn(board.cols)

		inExclusionZone := row >= anchorRow-1 && row <= anchorRow+1 &&
			col >= anchorCol-1 && col <= anchorCol+1
		if inExclusionZone || board.cells[row][col].isMine {
			continue
		}

		board.cells[row][col].isMine = true
		placed++
	}

	board.countNeighborMines()
	board.minesPlaced = true
}

func (board *Board) countNeighborMines() {
	for row := 0; row < board.rows; row++ {
		for col := 0; col < board.cols; col++ {
			cell := &board.cells[row][col]
			if cell.isMine {
				continue
			}

			count := 0
			cell.forEachNeighbor(func(neighbor *Cell) {
				if neighbor.isMine {
					count++
				}
			})
			cell.neighborMines = count
		}
	}
}

// revealMines discloses every mine on the board. Called once on loss.
func (board *Board) revealMines() {
	for row := 0; row < board.rows; row++ {
		for col := 0; col < board.cols; col++ {
			if board.cells[row][col].isMine {
				board.cells[row][col].isRevealed = true
			}
		}
	}
}

func (board *Board) unrevealedCount() int {
	count := 0
	for row := 0; row < board.rows; row++ {
		for col := 0; col < board.cols; col++ {
			if !board.cells[row][col].isRevealed {
				count++
			}
		}
	}
	return count
}
