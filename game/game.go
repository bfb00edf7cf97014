package game

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/hexsweep/hexgrid"
	"github.com/they4kman/hexsweep/match"
	"github.com/they4kman/hexsweep/players"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	panelWidth     = 240
	playerRowPitch = 100
	borderWidth    = 2
)

var (
	bgColor     = pixel.RGB(0.42, 0.42, 0.42)
	hiddenColor = pixel.RGB(0.8, 0.8, 0.8)

	playerColors = []color.RGBA{
		colornames.Green,
		colornames.Blue,
		colornames.Yellow,
		colornames.Orange,
		colornames.Purple,
		colornames.Cyan,
		colornames.Magenta,
		colornames.Pink,
		colornames.Brown,
	}
)

func playerColor(id hexgrid.PlayerID) color.RGBA {
	return playerColors[int(id)%len(playerColors)]
}

// screen converts between grid space (y down) and window space (y up)
type screen struct {
	height float64
}

func (s screen) toGrid(v pixel.Vec) hexgrid.Point {
	return hexgrid.Point{X: v.X, Y: s.height - v.Y}
}

func (s screen) toWindow(p hexgrid.Point) pixel.Vec {
	return pixel.V(p.X, s.height-p.Y)
}

func windowBounds(m *match.Match) pixel.Rect {
	bounds := m.Grid().Bounds()
	height := math.Max(bounds.Y, float64(m.Roster().Len()*playerRowPitch+playerRowPitch/2))
	return pixel.R(0, 0, bounds.X+panelWidth, height)
}

func Run(config GameConfig) error {
	m, director, err := config.createMatch()
	if err != nil {
		return err
	}

	cfg := pixelgl.WindowConfig{
		Title:  "Hexsweeper",
		Bounds: windowBounds(m),
		VSync:  true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return err
	}

	basicAtlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	labels := text.New(pixel.ZV, basicAtlas)
	panel := text.New(pixel.ZV, basicAtlas)
	imd := imdraw.New(nil)

	resetMatch := func() error {
		config.Grid.Seed = 0
		next, nextDirector, err := config.createMatch()
		if err != nil {
			return err
		}
		m, director = next, nextDirector
		win.SetBounds(windowBounds(m))
		return nil
	}

	var (
		frames   = 0
		second   = time.Tick(time.Second)
		computer = time.Tick(config.ComputerDelay)
	)

	for !win.Closed() {
		win.Update()
		win.Clear(bgColor)

		frames++
		select {
		case <-second:
			win.SetTitle(fmt.Sprintf("%s | FPS: %d", cfg.Title, frames))
			frames = 0
		default:
		}

		view := screen{height: win.Bounds().H()}

		imd.Clear()
		labels.Clear()
		drawGrid(imd, labels, m, view)
		panel.Clear()
		drawPanel(imd, panel, m, view)

		imd.Draw(win)
		labels.Draw(win, pixel.IM)
		panel.Draw(win, pixel.IM)

		if !m.CanPlay() {
			// Start a new game with Enter
			if win.JustPressed(pixelgl.KeyEnter) {
				if err := resetMatch(); err != nil {
					return err
				}
			}
			continue
		}

		if m.Roster().Current().Computer {
			select {
			case <-computer:
				m.Step(director)
			default:
			}
			continue
		}

		point := view.toGrid(win.MousePosition())
		if win.JustReleased(pixelgl.MouseButtonLeft) {
			result := m.Reveal(point)
			logrus.WithFields(logrus.Fields{
				"point":   point,
				"outcome": result.Outcome,
			}).Debug("Reveal click")
		}
		if win.JustReleased(pixelgl.MouseButtonRight) {
			m.Mark(point)
		}
	}

	return nil
}

func drawGrid(imd *imdraw.IMDraw, labels *text.Text, m *match.Match, view screen) {
	isOver := !m.CanPlay()

	for _, tile := range m.Grid().Tiles() {
		var fill color.Color = hiddenColor
		switch {
		case tile.IsRevealed():
			owner, _ := tile.Owner()
			fill = playerColor(owner)
		case tile.IsMarked():
			fill = colornames.Red
		case isOver && tile.IsMine():
			fill = colornames.Darkslategray
		}

		polygon := make([]pixel.Vec, 0, 6)
		for _, vertex := range tile.Vertices() {
			polygon = append(polygon, view.toWindow(vertex))
		}

		imd.Color = fill
		imd.Push(polygon...)
		imd.Polygon(0)

		imd.Color = colornames.White
		imd.Push(polygon...)
		imd.Polygon(borderWidth)

		if count, ok := tile.RevealedCount(); ok {
			labels.Color = colornames.Black
			if tile.IsMine() {
				labels.Color = colornames.Red
			}
			labels.Dot = view.toWindow(tile.Center()).Sub(pixel.V(3, 4))
			fmt.Fprint(labels, count)
		}
	}
}

func drawPanel(imd *imdraw.IMDraw, panel *text.Text, m *match.Match, view screen) {
	roster := m.Roster()
	left := m.Grid().Bounds().X + 20

	for i, player := range roster.Players() {
		top := view.height - float64(i*playerRowPitch) - 30

		imd.Color = playerColor(player.ID)
		imd.Push(pixel.V(left, top-20), pixel.V(left+20, top))
		imd.Rectangle(0)
		if player == roster.Current() && m.CanPlay() {
			imd.Color = colornames.White
			imd.Push(pixel.V(left-4, top-24), pixel.V(left+24, top+4))
			imd.Rectangle(borderWidth)
		}

		panel.Color = colornames.White
		if !player.Alive {
			panel.Color = colornames.Black
		}
		panel.Dot = pixel.V(left+32, top-14)
		fmt.Fprintf(panel, "%s  %d", player.Name, player.Score)
		panel.Dot = pixel.V(left+32, top-32)
		fmt.Fprint(panel, playerStatus(m, player))
	}

	panel.Color = colornames.White
	panel.Dot = pixel.V(left, 20)
	fmt.Fprintf(panel, "Mines %d  Marked %d", m.Grid().NumMines(), m.Grid().NumMarked())
}

func playerStatus(m *match.Match, player *players.Player) string {
	switch {
	case !player.Alive:
		return "dead"
	case !m.CanPlay():
		if player == m.Winner() {
			return "winner! (Enter for a new game)"
		}
		return "survived"
	case player == m.Roster().Current():
		if player.Computer {
			return "thinking..."
		}
		return "to move"
	default:
		return ""
	}
}
