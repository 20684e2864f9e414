package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/faiface/pixel/pixelgl"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"minesweep/director/deduce"
	"minesweep/director/random"
	"minesweep/game"
)

var (
	difficultyName string
	directorName   string
	seed           int64
	verbose        bool
)

var rootCmd = &cobra.Command{
	Use:   "minesweep",
	Short: "Play manual or computer-driven Minesweeper",
	Long: `minesweep is a classic Minesweeper game. Mines are only placed once
you make your first move, so the first revealed cell and its eight
neighbors are always mine-free.

Run with no arguments to play the Beginner board manually
	minesweep

Pick a difficulty preset
	minesweep -d expert

Let the computer play
	minesweep --director deduce
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()

		difficulty, err := game.DifficultyByName(difficultyName)
		if err != nil {
			return err
		}

		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		var director game.Director
		switch strings.ToLower(directorName) {
		case "":
		case "random":
			director = &random.Director{}
		case "deduce":
			director = &deduce.Director{}
		default:
			return fmt.Errorf("unknown director %q (want random or deduce)", directorName)
		}

		pixelgl.Run(func() {
			game.Run(game.RunConfig{
				Difficulty: difficulty,
				Seed:       seed,
				Director:   director,
			})
		})
		return nil
	},
}

func setupLogging() {
	logLevel := logrus.InfoLevel
	if verbose {
		logLevel = logrus.DebugLevel
	}
	logrus.SetLevel(logLevel)

	logrus.SetFormatter(&logrus.TextFormatter{ForceColors: true})
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&difficultyName, "difficulty", "d", game.Beginner.Name,
		"Difficulty preset: beginner (9x9, 10 mines), intermediate (16x16, 40) or expert (16x30, 99)")
	rootCmd.Flags().StringVar(&directorName, "director", "",
		"Make the computer play: random or deduce")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "Mine placement seed (0 = current time)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
