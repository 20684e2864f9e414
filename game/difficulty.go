package game

import (
	"fmt"
	"strings"
)

// Difficulty is one entry of the fixed preset table: board dimensions and
// the number of mines placed on first reveal.
type Difficulty struct {
	Name       string
	Rows, Cols int
	Mines      int
}

var (
	Beginner     = Difficulty{Name: "beginner", Rows: 9, Cols: 9, Mines: 10}
	Intermediate = Difficulty{Name: "intermediate", Rows: 16, Cols: 16, Mines: 40}
	Expert       = Difficulty{Name: "expert", Rows: 16, Cols: 30, Mines: 99}
)

var Difficulties = []Difficulty{Beginner, Intermediate, Expert}

func DifficultyByName(name string) (Difficulty, error) {
	for _, difficulty := range Difficulties {
		if strings.EqualFold(name, difficulty.Name) {
			return difficulty, nil
		}
	}
	return Difficulty{}, fmt.Errorf("unknown difficulty %q", name)
}
