package cascade

import (
	"strconv"

	"cascade-ca/internal/core"
	rng "cascade-ca/pkg/core"
)

// DisplayFlash is the display value of a cell that flashed in the latest
// step. Resting cells display their energy, 0..9.
const DisplayFlash uint8 = Threshold

// Sim adapts a Grid to the core.Sim contract used by the viewer.
type Sim struct {
	cfg     Config
	initial []string

	grid    *Grid
	display []uint8

	total    int
	syncStep int
}

// NewSim returns a sim over a random grid drawn from cfg.Seed.
func NewSim(cfg Config) *Sim {
	s := &Sim{cfg: cfg}
	s.Reset(0)
	return s
}

// NewSimFromGrid returns a sim that starts from g. Reset(0) restores the
// starting energies; any other seed draws a random grid of the same size.
func NewSimFromGrid(g *Grid, cfg Config) *Sim {
	cfg.Width = g.Width()
	cfg.Height = g.Height()
	s := &Sim{cfg: cfg, initial: g.Rows()}
	s.Reset(0)
	return s
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "cascade" }

// Size reports the grid dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// Cells exposes the display buffer.
func (s *Sim) Cells() []uint8 { return s.display }

// Grid exposes the underlying grid.
func (s *Sim) Grid() *Grid { return s.grid }

// TotalFlashes returns the flashes counted since the last Reset.
func (s *Sim) TotalFlashes() int { return s.total }

// SyncStep returns the first synchronized step since the last Reset, or 0.
func (s *Sim) SyncStep() int { return s.syncStep }

// Reset rebuilds the grid. Seed 0 restores the starting grid when the sim was
// built from one, and otherwise uses the configured seed.
func (s *Sim) Reset(seed int64) {
	rows := s.initial
	if seed != 0 || rows == nil {
		if seed == 0 {
			seed = s.cfg.Seed
		}
		rows = rng.NewRNG(seed).DigitRows(s.cfg.Width, s.cfg.Height)
	}
	g, err := New(rows)
	if err != nil {
		// rows come from Rows() or DigitRows and are always well formed
		panic(err)
	}
	g.SetMaxSyncSteps(s.cfg.MaxSyncSteps)
	s.grid = g
	s.total = 0
	s.syncStep = 0
	if len(s.display) != g.Cells() {
		s.display = make([]uint8, g.Cells())
	}
	s.refresh()
}

// Step advances the grid once.
func (s *Sim) Step() {
	n := s.grid.Step()
	s.total += n
	if n == s.grid.Cells() && s.syncStep == 0 {
		s.syncStep = s.grid.Steps()
	}
	s.refresh()
}

func (s *Sim) refresh() {
	g := s.grid
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			v := uint8(g.Energy(x, y))
			if g.Flashed(x, y) {
				v = DisplayFlash
			}
			s.display[y*g.Width()+x] = v
		}
	}
}

// Parameters reports live statistics for the HUD.
func (s *Sim) Parameters() core.ParameterSnapshot {
	sync := "--"
	if s.syncStep > 0 {
		sync = strconv.Itoa(s.syncStep)
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Cascade",
		Params: []core.Parameter{
			{Key: "step", Label: "Step", Type: core.ParamTypeInt, Value: strconv.Itoa(s.grid.Steps())},
			{Key: "flashes", Label: "Flashes", Type: core.ParamTypeInt, Value: strconv.Itoa(s.grid.LastFlashes())},
			{Key: "total", Label: "Total", Type: core.ParamTypeInt, Value: strconv.Itoa(s.total)},
			{Key: "sync", Label: "Synced at", Type: core.ParamTypeInt, Value: sync},
			{Key: "synced", Label: "All flashed", Type: core.ParamTypeBool, Value: strconv.FormatBool(s.grid.LastFlashes() == s.grid.Cells())},
		},
	}}}
}

func init() {
	core.Register("cascade", func(cfg map[string]string) core.Sim {
		return NewSim(FromMap(cfg))
	})
}
