package game

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/hexsweep/director/random"
	"github.com/they4kman/hexsweep/hexgrid"
	"github.com/they4kman/hexsweep/match"
	"github.com/they4kman/hexsweep/players"
)

type GameConfig struct {
	Grid hexgrid.Config

	PlayerNames []string
	// The last NumComputers players are driven by a random director
	NumComputers int
	// Pause between computer moves
	ComputerDelay time.Duration

	// Snapshot to load board configuration from
	Snapshot *hexgrid.Snapshot
	// Whether to set all tiles as unrevealed when loading the Snapshot
	LoadSnapshotFresh bool

	// Path to directory where final snapshots of boards should be saved
	SavedSnapshotsDir string
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Grid:              hexgrid.NewConfig(),
		PlayerNames:       []string{"Player 1", "Player 2", "Player 3"},
		NumComputers:      0,
		ComputerDelay:     500 * time.Millisecond,
		LoadSnapshotFresh: true,
	}
}

func (config GameConfig) createGrid() (*hexgrid.Grid, error) {
	if config.Snapshot == nil {
		return config.Grid.Create()
	}
	return config.Snapshot.CreateGrid(config.Grid, config.LoadSnapshotFresh)
}

// createMatch builds the grid, the roster and the director for one game
func (config GameConfig) createMatch() (*match.Match, match.Director, error) {
	if config.NumComputers < 0 || config.NumComputers > len(config.PlayerNames) {
		return nil, nil, fmt.Errorf("cannot have %d computer players out of %d", config.NumComputers, len(config.PlayerNames))
	}

	grid, err := config.createGrid()
	if err != nil {
		return nil, nil, err
	}

	roster, err := players.NewRoster(config.PlayerNames...)
	if err != nil {
		return nil, nil, err
	}
	all := roster.Players()
	for _, player := range all[len(all)-config.NumComputers:] {
		player.Computer = true
	}

	m := match.New(grid, roster)
	m.OnEnd(config.onMatchEnd)

	director := random.New(grid.Seed())
	director.Init(m)

	logrus.WithFields(logrus.Fields{
		"width":     grid.Width(),
		"height":    grid.Height(),
		"mines":     grid.NumMines(),
		"players":   roster.Len(),
		"computers": config.NumComputers,
		"seed":      grid.Seed(),
	}).Info("Starting match")

	return m, director, nil
}

func (config GameConfig) onMatchEnd(m *match.Match) {
	config.saveSnapshot(m)
}

func (config GameConfig) saveSnapshot(m *match.Match) {
	if config.SavedSnapshotsDir == "" {
		return
	}
	log := logrus.WithField("dir", config.SavedSnapshotsDir)

	stat, err := os.Stat(config.SavedSnapshotsDir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).Error("Cannot read snapshots directory")
			return
		}
		if err := os.MkdirAll(config.SavedSnapshotsDir, 0777); err != nil {
			log.WithError(err).Error("Cannot create snapshots directory")
			return
		}
	} else if !stat.Mode().IsDir() {
		log.Error("Not a directory; cannot save snapshots to it")
		return
	}

	snapshot, err := m.Grid().Snapshot()
	if err != nil {
		log.WithError(err).Error("Cannot snapshot board")
		return
	}
	serialized, err := snapshot.Serialize()
	if err != nil {
		log.WithError(err).Error("Cannot serialize snapshot")
		return
	}

	// TODO: prevent duplicate filenames
	path := filepath.Join(config.SavedSnapshotsDir, generateSnapshotFilename(m, time.Now()))
	if err := os.WriteFile(path, []byte(serialized), 0666); err != nil {
		log.WithError(err).Error("Cannot write snapshot")
		return
	}
	log.WithField("path", path).Info("Saved snapshot")
}

func generateSnapshotFilename(m *match.Match, t time.Time) string {
	filenameBuilder := strings.Builder{}

	filenameBuilder.WriteString(t.Format("20060102_150405_"))
	filenameBuilder.WriteString(strings.ReplaceAll(m.State().String(), " ", "_"))
	if winner := m.Winner(); winner != nil {
		filenameBuilder.WriteString(fmt.Sprintf("_p%d", winner.ID+1))
	}
	filenameBuilder.WriteString(".yaml")

	return filenameBuilder.String()
}
