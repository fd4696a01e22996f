package terminal

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Simulation is a Terminal backed by tcell's in-memory screen
type Simulation struct {
	*tcellTerminal
	sim    tcell.SimulationScreen
	width  int
	height int
}

// NewSimulation creates an in-memory terminal of the given size
func NewSimulation(width, height int) *Simulation {
	sim := tcell.NewSimulationScreen("UTF-8")
	return &Simulation{
		tcellTerminal: newTcellTerminal(sim),
		sim:           sim,
		width:         width,
		height:        height,
	}
}

func (s *Simulation) Init() error {
	if err := s.tcellTerminal.Init(); err != nil {
		return err
	}
	s.sim.SetSize(s.width, s.height)
	return nil
}

// Inject delivers ev through tcell as if typed or clicked.
// Events without a tcell equivalent are posted directly.
func (s *Simulation) Inject(ev Event) error {
	tev := toTcellEvent(ev)
	if tev == nil || (ev.Type == EventKey && ev.Phase != PhasePress) {
		return s.PostEvent(ev)
	}
	return s.sim.PostEvent(tev)
}

// Resize changes the simulated size and delivers a resize event
func (s *Simulation) Resize(width, height int) error {
	s.width, s.height = width, height
	s.sim.SetSize(width, height)
	return s.sim.PostEvent(tcell.NewEventResize(width, height))
}

// Rows returns the last shown frame as one string per row
func (s *Simulation) Rows() []string {
	cells, w, h := s.sim.GetContents()
	rows := make([]string, h)
	for y := 0; y < h; y++ {
		var b strings.Builder
		for x := 0; x < w; x++ {
			c := cells[y*w+x]
			r := ' '
			if len(c.Runes) > 0 && c.Runes[0] != 0 {
				r = c.Runes[0]
			}
			b.WriteRune(r)
			if runewidth.RuneWidth(r) == 2 {
				x++
			}
		}
		rows[y] = b.String()
	}
	return rows
}

// StyleAt returns foreground, background and attributes shown at (x, y)
func (s *Simulation) StyleAt(x, y int) (fg, bg tcell.Color, attrs tcell.AttrMask) {
	cells, w, h := s.sim.GetContents()
	if x < 0 || y < 0 || x >= w || y >= h {
		return tcell.ColorDefault, tcell.ColorDefault, tcell.AttrNone
	}
	return cells[y*w+x].Style.Decompose()
}
