package game

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

// BoardSnapshot is a text rendering of a board, one rune per cell:
//
//	'*' the mine that was revealed and lost the game
//	'F' a flagged mine
//	'O' an untouched mine
//	'f' a flag on a safe cell
//	'.' a revealed safe cell
//	'#' an unrevealed safe cell
//
// Snapshots are logged at debug level when a game ends, and parsed to build
// fixture boards in tests.
type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	SerializedBoard string `yaml:"board,flow"`
}

func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}
	return string(out)
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (board *Board) snapshot(seed int64) *BoardSnapshot {
	var builder strings.Builder
	for row := 0; row < board.rows; row++ {
		if row > 0 {
			builder.WriteString("\n")
		}
		for col := 0; col < board.cols; col++ {
			builder.WriteString(board.cells[row][col].serialize())
		}
	}

	return &BoardSnapshot{
		Seed:            seed,
		SerializedBoard: builder.String(),
	}
}

// CreateBoard parses the serialized grid back into a Board. With fresh set,
// flags and reveals are dropped and only mine positions survive, as after a
// restart on the same layout.
func (snapshot *BoardSnapshot) CreateBoard(fresh bool) (*Board, error) {
	rows := strings.Split(snapshot.SerializedBoard, "\n")
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("empty board snapshot")
	}

	board := newBoard(Difficulty{
		Name: "snapshot",
		Rows: len(rows),
		Cols: len(rows[0]),
	})

	for row, line := range rows {
		if len(line) != board.cols {
			return nil, fmt.Errorf("ragged board snapshot: row %d has %d cells, want %d",
				row, len(line), board.cols)
		}
		for col, c := range line {
			cell := board.CellAt(row, col)
			if !cell.deserialize(string(c), fresh) {
				return nil, fmt.Errorf("bad cell %q at (%d, %d)", string(c), row, col)
			}
			if cell.isMine {
				board.numMines++
			}
		}
	}

	board.countNeighborMines()
	board.minesPlaced = board.numMines > 0
	return board, nil
}

func (cell *Cell) serialize() string {
	switch {
	case cell.isMine:
		switch {
		case cell.isLosingMine:
			return "*"
		case cell.isFlagged:
			return "F"
		default:
			return "O"
		}
	case cell.isFlagged:
		return "f"
	case cell.isRevealed:
		return "."
	default:
		return "#"
	}
}

func (cell *Cell) deserialize(c string, fresh bool) bool {
	switch c {
	case "*":
		cell.isMine = true
		if !fresh {
			cell.isLosingMine = true
			cell.isRevealed = true
		}
	case "F":
		cell.isMine = true
		if !fresh {
			cell.isFlagged = true
		}
	case "O":
		cell.isMine = true
	case "f":
		if !fresh {
			cell.isFlagged = true
		}
	case ".":
		if !fresh {
			cell.isRevealed = true
		}
	case "#":
	default:
		return false
	}
	return true
}
