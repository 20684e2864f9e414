package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mineWall is a 5x5 board split by a wall of mines down the middle column.
// Columns 0-1 form a zero region bordered by numbers in column 1; columns
// 3-4 mirror it on the far side.
func mineWall(t *testing.T) *Board {
	return boardFromRows(t,
		"##O##",
		"##O##",
		"##O##",
		"##O##",
		"##O##",
	)
}

func TestFirstRevealDefersMinePlacement(t *testing.T) {
	g := New(Beginner, 42)

	require.Equal(t, Idle, g.Status())
	require.False(t, g.Board().MinesPlaced())

	g.Reveal(4, 4)

	require.Equal(t, Playing, g.Status())
	require.True(t, g.Board().MinesPlaced())

	cell := g.Board().CellAt(4, 4)
	require.True(t, cell.IsRevealed())
	require.False(t, cell.IsMine())
	for neighbor := range cell.Neighbors() {
		assert.False(t, neighbor.IsMine(), "%v borders the first reveal", neighbor)
	}
}

func TestCascadeRevealsZeroRegionAndItsBorder(t *testing.T) {
	g := NewWithBoard(mineWall(t), 1)
	require.Equal(t, Playing, g.Status())

	g.Reveal(2, 0)

	board := g.Board()
	for row := 0; row < 5; row++ {
		assert.True(t, board.CellAt(row, 0).IsRevealed(), "zero region (%d, 0)", row)
		assert.True(t, board.CellAt(row, 1).IsRevealed(), "border number (%d, 1)", row)
		assert.False(t, board.CellAt(row, 2).IsRevealed(), "mine (%d, 2)", row)
		assert.False(t, board.CellAt(row, 3).IsRevealed(), "far side (%d, 3)", row)
		assert.False(t, board.CellAt(row, 4).IsRevealed(), "far side (%d, 4)", row)
	}
	assert.Equal(t, Playing, g.Status())
}

func TestRevealNumberedCellDoesNotCascade(t *testing.T) {
	g := NewWithBoard(mineWall(t), 1)

	g.Reveal(0, 1)

	revealed := 0
	for cell := range g.Board().Cells() {
		if cell.IsRevealed() {
			revealed++
		}
	}
	require.Equal(t, 1, revealed)
}

func TestRevealMineLosesAndDisclosesAllMines(t *testing.T) {
	g := NewWithBoard(boardFromRows(t,
		"O###",
		"####",
		"##O#",
	), 1)

	g.Reveal(0, 0)

	require.Equal(t, Lost, g.Status())

	board := g.Board()
	losing := board.CellAt(0, 0)
	other := board.CellAt(2, 2)
	require.True(t, losing.IsRevealed())
	require.True(t, other.IsRevealed(), "loss discloses every mine")
	assert.Equal(t, MineLosing, losing.DisplayState(Lost))
	assert.Equal(t, Mine, other.DisplayState(Lost))

	// terminal state: no further mutation accepted except restart
	g.Reveal(1, 1)
	assert.False(t, board.CellAt(1, 1).IsRevealed())

	before := g.MinesRemaining()
	g.ToggleFlag(1, 1)
	assert.False(t, board.CellAt(1, 1).IsFlagged())
	assert.Equal(t, before, g.MinesRemaining())

	assert.Nil(t, g.stopTick, "timer must be cancelled on loss")
}

func TestFlagBlocksRevealUntilUnflagged(t *testing.T) {
	g := New(Beginner, 7)

	g.ToggleFlag(0, 0)
	g.Reveal(0, 0)

	// flag guard wins over first-reveal placement
	require.Equal(t, Idle, g.Status())
	require.False(t, g.Board().MinesPlaced())
	require.False(t, g.Board().CellAt(0, 0).IsRevealed())

	g.ToggleFlag(0, 0)
	g.Reveal(0, 0)

	require.Equal(t, Playing, g.Status())
	require.True(t, g.Board().CellAt(0, 0).IsRevealed())
}

func TestMineCounterFollowsFlags(t *testing.T) {
	g := New(Beginner, 3)
	require.Equal(t, 10, g.MinesRemaining())

	g.ToggleFlag(0, 0)
	g.ToggleFlag(0, 1)
	g.ToggleFlag(0, 2)
	assert.Equal(t, 7, g.MinesRemaining())

	g.ToggleFlag(0, 2)
	assert.Equal(t, 8, g.MinesRemaining())

	// over-flagging goes negative, no clamping
	for col := 0; col < 9; col++ {
		g.ToggleFlag(1, col)
		g.ToggleFlag(2, col)
	}
	assert.Equal(t, 10-20, g.MinesRemaining())
}

func TestFlaggingRevealedCellIsNoop(t *testing.T) {
	g := NewWithBoard(mineWall(t), 1)

	g.Reveal(0, 1)
	g.ToggleFlag(0, 1)

	assert.False(t, g.Board().CellAt(0, 1).IsFlagged())
	assert.Equal(t, 5, g.MinesRemaining())
}

func TestWinWhenOnlyMinesRemain(t *testing.T) {
	g := New(Beginner, 99)

	for cell := range g.Board().Cells() {
		if !cell.IsMine() {
			g.Reveal(cell.Row(), cell.Col())
		}
	}

	require.Equal(t, Won, g.Status())

	board := g.Board()
	revealed, unrevealed := 0, 0
	for cell := range board.Cells() {
		if cell.IsRevealed() {
			revealed++
		} else {
			unrevealed++
			assert.True(t, cell.IsMine(), "only mines may remain unrevealed")
		}
	}
	assert.Equal(t, 71, revealed)
	assert.Equal(t, 10, unrevealed)

	assert.Nil(t, g.stopTick, "timer must be cancelled on win")

	// terminal: nothing else to reveal or flag
	g.ToggleFlag(0, 0)
	assert.Equal(t, 10, g.MinesRemaining())
}

func TestWinCheckCountsFlaggedSafeCells(t *testing.T) {
	g := NewWithBoard(boardFromRows(t, "O##"), 1)

	g.ToggleFlag(0, 1)
	g.Reveal(0, 2)

	// the flagged safe cell stays unrevealed, so unrevealed != mines
	require.Equal(t, Playing, g.Status())

	g.ToggleFlag(0, 1)
	g.Reveal(0, 1)

	require.Equal(t, Won, g.Status())
}

func TestRestartReturnsToIdle(t *testing.T) {
	g := New(Beginner, 5)
	g.Reveal(4, 4)
	g.ToggleFlag(0, 0)
	require.Equal(t, Playing, g.Status())

	g.Restart()

	require.Equal(t, Idle, g.Status())
	require.False(t, g.Board().MinesPlaced())
	assert.Equal(t, 10, g.MinesRemaining())
	assert.Equal(t, 0, g.ElapsedSeconds())
	assert.Nil(t, g.stopTick)

	for cell := range g.Board().Cells() {
		assert.False(t, cell.IsMine())
		assert.False(t, cell.IsRevealed())
		assert.False(t, cell.IsFlagged())
	}

	// first reveal triggers deferred placement again
	g.Reveal(4, 4)
	require.Equal(t, Playing, g.Status())
	require.True(t, g.Board().MinesPlaced())
}

func TestRestartFromTerminalState(t *testing.T) {
	g := NewWithBoard(boardFromRows(t, "O#"), 1)
	g.Reveal(0, 0)
	require.Equal(t, Lost, g.Status())

	g.Restart()

	require.Equal(t, Idle, g.Status())
	require.False(t, g.Board().CellAt(0, 0).IsRevealed())
}

func TestSetDifficulty(t *testing.T) {
	g := New(Beginner, 5)
	g.Reveal(4, 4)

	require.NoError(t, g.SetDifficulty("expert"))

	require.Equal(t, Idle, g.Status())
	assert.Equal(t, 16, g.Board().Rows())
	assert.Equal(t, 30, g.Board().Cols())
	assert.Equal(t, 99, g.MinesRemaining())

	require.Error(t, g.SetDifficulty("nightmare"))
	assert.Equal(t, "expert", g.Config().Name)
}

func TestRevealOutOfBoundsIsNoop(t *testing.T) {
	g := New(Beginner, 5)

	g.Reveal(-1, 0)
	g.Reveal(0, -1)
	g.Reveal(9, 0)
	g.Reveal(0, 100)

	require.Equal(t, Idle, g.Status())
}

func TestTimerRunsWhilePlaying(t *testing.T) {
	g := New(Beginner, 5)
	require.Nil(t, g.stopTick)

	g.Reveal(4, 4)
	require.NotNil(t, g.stopTick)

	g.Restart()
	require.Nil(t, g.stopTick)
	require.Equal(t, 0, g.ElapsedSeconds())
}
