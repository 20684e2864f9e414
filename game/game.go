package game

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

var log = logrus.StandardLogger()

// Game runs the Minesweeper state machine: idle until the first reveal
// places the mines, then playing until a mine is hit (lost) or only mines
// remain unrevealed (won). Restart returns to idle from any state.
//
// Intents are serialized by a single mutex; the elapsed-seconds ticker is
// the only background activity.
type Game struct {
	mu sync.Mutex

	config Difficulty
	board  *Board
	status GameStatus

	numFlags int

	seed int64
	rng  *rand.Rand

	elapsed  atomic.Int32
	stopTick chan struct{}
}

func New(config Difficulty, seed int64) *Game {
	return &Game{
		config: config,
		board:  newBoard(config),
		status: Idle,
		seed:   seed,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// NewWithBoard wraps a prepared board, e.g. one parsed from a snapshot.
// The game starts playing if the board already has mines, idle otherwise.
func NewWithBoard(board *Board, seed int64) *Game {
	g := &Game{
		config: Difficulty{
			Name:  "fixture",
			Rows:  board.rows,
			Cols:  board.cols,
			Mines: board.numMines,
		},
		board: board,
		seed:  seed,
		rng:   rand.New(rand.NewSource(seed)),
	}

	g.status = Idle
	if board.minesPlaced {
		g.status = Playing
	}
	for cell := range board.Cells() {
		if cell.isFlagged {
			g.numFlags++
		}
	}
	return g
}

// Reveal opens the cell at (row, col). On the first reveal of a game it
// places the mines anchored there, guaranteeing the 3x3 zone around the
// anchor is mine-free. No-op on terminal status and on revealed or flagged
// cells.
func (g *Game) Reveal(row, col int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.status == Won || g.status == Lost {
		return
	}

	cell := g.board.CellAt(row, col)
	if cell == nil || cell.isRevealed || cell.isFlagged {
		return
	}

	if g.status == Idle {
		g.board.placeMines(row, col, g.rng)
		g.status = Playing
		g.startTimer()
		log.WithFields(logrus.Fields{
			"difficulty": g.config.Name,
			"anchor":     cell.String(),
		}).Debug("mines placed")
	}

	if cell.isMine {
		cell.isRevealed = true
		cell.isLosingMine = true
		g.board.revealMines()
		g.status = Lost
		g.stopTimer()
		g.logGameEnd(cell)
		return
	}

	g.board.floodReveal(cell)

	// Only mines left unrevealed means every safe cell is open. The check
	// inspects counts only; no cell state changes on win.
	if g.board.unrevealedCount() == g.board.numMines {
		g.status = Won
		g.stopTimer()
		g.logGameEnd(nil)
	}
}

// ToggleFlag flips the flag on the cell at (row, col). No-op on terminal
// status and on revealed cells. Flagging never reveals and never affects
// mine placement.
func (g *Game) ToggleFlag(row, col int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.status == Won || g.status == Lost {
		return
	}

	cell := g.board.CellAt(row, col)
	if cell == nil || cell.isRevealed {
		return
	}

	cell.isFlagged = !cell.isFlagged
	if cell.isFlagged {
		g.numFlags++
	} else {
		g.numFlags--
	}
}

// Restart discards the board and returns to idle; mines are placed again on
// the next first reveal.
func (g *Game) Restart() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.reset(g.config)
}

// SetDifficulty switches to the named preset and restarts on it.
func (g *Game) SetDifficulty(name string) error {
	difficulty, err := DifficultyByName(name)
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.reset(difficulty)
	return nil
}

func (g *Game) reset(config Difficulty) {
	g.stopTimer()
	g.config = config
	g.board = newBoard(config)
	g.status = Idle
	g.numFlags = 0
	g.elapsed.Store(0)
	log.WithField("difficulty", config.Name).Debug("board reset")
}

func (g *Game) Status() GameStatus {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status
}

func (g *Game) Board() *Board {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board
}

func (g *Game) Config() Difficulty {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.config
}

// MinesRemaining is the display counter: total mines minus flags placed.
// Over-flagging drives it negative; it is never clamped.
func (g *Game) MinesRemaining() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.numMines - g.numFlags
}

func (g *Game) ElapsedSeconds() int {
	return int(g.elapsed.Load())
}

// startTimer begins the 1-second tick. Callers hold g.mu.
func (g *Game) startTimer() {
	g.elapsed.Store(0)
	stop := make(chan struct{})
	g.stopTick = stop

	go func() {
		tick := time.NewTicker(time.Second)
		defer tick.Stop()
		for {
			select {
			case <-stop:
				return
			case <-tick.C:
				g.elapsed.Add(1)
			}
		}
	}()
}

// stopTimer cancels the tick and discards its handle. Callers hold g.mu.
func (g *Game) stopTimer() {
	if g.stopTick != nil {
		close(g.stopTick)
		g.stopTick = nil
	}
}

func (g *Game) logGameEnd(losingCell *Cell) {
	entry := log.WithFields(logrus.Fields{
		"status":  g.status.String(),
		"elapsed": g.elapsed.Load(),
	})
	if losingCell != nil {
		entry = entry.WithField("mine", losingCell.String())
	}
	entry.Info("game over")

	if log.IsLevelEnabled(logrus.DebugLevel) {
		snapshot := g.board.snapshot(g.seed)
		log.WithField("snapshot", "\n"+snapshot.Serialize()).Debug("final board")
	}
}
