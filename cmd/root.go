package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/faiface/pixel/pixelgl"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/hexsweep/game"
	"github.com/they4kman/hexsweep/hexgrid"
)

var gameConfig = game.NewGameConfig()
var snapshotPath string
var logLevel = logrus.InfoLevel

var rootCmd = &cobra.Command{
	Use:   "hexsweep",
	Short: "Play hot-seat Minesweeper on a hexagonal board",
	Long: `hexsweep is a Minesweeper game for several players sharing one
hexagonal board. Players take turns revealing tiles; whoever hits a mine
is out. Revealing a cascade of k tiles passes the turn k places onwards.

Run with no arguments for three human players
	hexsweep

Let the computer take the last two seats
	hexsweep --computers 2
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logrus.SetLevel(logLevel)

		if gameConfig.ComputerDelay <= 0 {
			return fmt.Errorf("computer delay must be positive, got %v", gameConfig.ComputerDelay)
		}

		if snapshotPath != "" {
			in, err := os.ReadFile(snapshotPath)
			if err != nil {
				return err
			}
			snapshot, err := hexgrid.LoadSnapshot(string(in))
			if err != nil {
				return fmt.Errorf("loading %s: %w", snapshotPath, err)
			}
			gameConfig.Snapshot = snapshot
		}

		var err error
		pixelgl.Run(func() {
			err = game.Run(gameConfig)
		})
		return err
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

type logLevelValue logrus.Level

func newLogLevelValue(val logrus.Level, p *logrus.Level) *logLevelValue {
	*p = val
	return (*logLevelValue)(p)
}

func (levelVal *logLevelValue) String() string {
	return logrus.Level(*levelVal).String()
}

func (levelVal *logLevelValue) Set(value string) error {
	level, err := logrus.ParseLevel(value)
	if err != nil {
		return err
	}
	*levelVal = logLevelValue(level)
	return nil
}

func (levelVal *logLevelValue) Type() string {
	return "logrus.Level"
}

func init() {
	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	flags := rootCmd.Flags()
	flags.IntVarP(&gameConfig.Grid.Width, "width", "w", 10, "Width of game board, in tiles")
	flags.IntVarP(&gameConfig.Grid.Height, "height", "h", 10, "Height of game board, in tiles")
	flags.IntVarP(&gameConfig.Grid.NumMines, "mines", "m", 10, "Number of mines to place in the game board")
	flags.Int64Var(&gameConfig.Grid.Seed, "seed", 0, "Seed for mine placement (0 picks one from the clock)")
	flags.StringSliceVarP(&gameConfig.PlayerNames, "players", "p", gameConfig.PlayerNames, "Names of the players, in turn order")
	flags.IntVarP(&gameConfig.NumComputers, "computers", "c", 0, "Number of players, counted from the last, driven by the computer")
	flags.DurationVar(&gameConfig.ComputerDelay, "computer-delay", 500*time.Millisecond, "Pause between computer moves")
	flags.StringVar(&snapshotPath, "snapshot", "", "Load the board from a saved snapshot")
	flags.BoolVar(&gameConfig.LoadSnapshotFresh, "fresh", true, "Hide all tiles of a loaded snapshot, keeping only its mines")
	flags.StringVar(&gameConfig.SavedSnapshotsDir, "snapshots-dir", "", "Directory to save a snapshot of every finished board to")
	flags.Var(newLogLevelValue(logrus.InfoLevel, &logLevel), "log-level", "Logging level (debug, info, warn, error)")
}
