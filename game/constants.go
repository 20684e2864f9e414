package game

type CellState int
type GameStatus int

const (
	Unrevealed CellState = iota - 1
	Empty
	Number1
	Number2
	Number3
	Number4
	Number5
	Number6
	Number7
	Number8
	Flag
	FlagWrong
	Mine
	MineLosing
)

const (
	cellWidth = 16
)

const (
	Idle GameStatus = iota
	Playing
	Won
	Lost
)

func (status GameStatus) String() string {
	switch status {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "unknown"
}
