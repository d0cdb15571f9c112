package cascade

import (
	"fmt"
	"math"
	"strings"

	"cascade-ca/internal/core"
)

const (
	// Threshold is the energy at which a cell flashes.
	Threshold = 10
	// DefaultMaxSyncSteps bounds RunUntilAllFlash.
	DefaultMaxSyncSteps = 1_000_000

	// sentinel can absorb far more than the three increments a ring cell
	// receives per step before it is re-armed.
	sentinel int16 = math.MinInt16
)

// StepHook observes every completed step.
type StepHook func(step, flashes int)

// Grid is a rectangular field of energy cells.
type Grid struct {
	layout  core.Layout
	offsets [8]int
	border  []int

	energy []int16
	stamp  []uint32
	gen    uint32

	steps   int
	last    int
	queue   []int
	maxSync int
	hook    StepHook
}

// New builds a grid from rows of ASCII digits. All rows must share the same
// non-zero length.
func New(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidInput)
	}
	w := len(rows[0])
	if w == 0 {
		return nil, fmt.Errorf("%w: row 0 is empty", ErrInvalidInput)
	}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidInput, y, len(row), w)
		}
		for x := 0; x < w; x++ {
			if c := row[x]; c < '0' || c > '9' {
				return nil, fmt.Errorf("%w: byte %q at (%d,%d) is not a digit", ErrInvalidInput, c, x, y)
			}
		}
	}

	g := newGrid(core.NewLayout(w, len(rows)))
	for y, row := range rows {
		for x := 0; x < w; x++ {
			g.energy[g.layout.Index(x, y)] = int16(row[x] - '0')
		}
	}
	return g, nil
}

func newGrid(l core.Layout) *Grid {
	g := &Grid{
		layout:  l,
		offsets: l.Neighbors8(),
		border:  l.Border(),
		energy:  make([]int16, l.Len()),
		stamp:   make([]uint32, l.Len()),
		queue:   make([]int, 0, l.Cells()),
		maxSync: DefaultMaxSyncSteps,
	}
	g.rearm()
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.layout.W }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.layout.H }

// Cells returns the number of cells, excluding the sentinel ring.
func (g *Grid) Cells() int { return g.layout.Cells() }

// Steps returns how many steps have run since construction.
func (g *Grid) Steps() int { return g.steps }

// LastFlashes returns the flash count of the most recent step.
func (g *Grid) LastFlashes() int { return g.last }

// SetMaxSyncSteps changes the RunUntilAllFlash cap. Non-positive values
// restore DefaultMaxSyncSteps.
func (g *Grid) SetMaxSyncSteps(n int) {
	if n <= 0 {
		n = DefaultMaxSyncSteps
	}
	g.maxSync = n
}

// Observe installs a hook called after every step. A nil hook removes it.
func (g *Grid) Observe(h StepHook) { g.hook = h }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.layout.W && y < g.layout.H
}

// Energy returns the energy of cell (x, y). It panics if the coordinates are
// out of bounds.
func (g *Grid) Energy(x, y int) int {
	return int(g.energy[g.mustIndex(x, y)])
}

// Flashed reports whether cell (x, y) flashed during the latest step.
func (g *Grid) Flashed(x, y int) bool {
	i := g.mustIndex(x, y)
	return g.steps > 0 && g.stamp[i] == g.gen
}

func (g *Grid) mustIndex(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("cascade: cell (%d,%d) outside %dx%d grid", x, y, g.layout.W, g.layout.H))
	}
	return g.layout.Index(x, y)
}

// Step advances the grid by one step and returns how many cells flashed.
func (g *Grid) Step() int {
	g.advanceGeneration()
	e, st, gen := g.energy, g.stamp, g.gen
	l := g.layout
	q := g.queue[:0]

	// charge
	for y := 1; y <= l.H; y++ {
		row := y * l.Stride
		for i := row + 1; i <= row+l.W; i++ {
			e[i]++
			if e[i] >= Threshold && st[i] != gen {
				st[i] = gen
				q = append(q, i)
			}
		}
	}

	// cascade; q doubles as the worklist and the record of flashed cells
	for head := 0; head < len(q); head++ {
		i := q[head]
		for _, off := range g.offsets {
			n := i + off
			e[n]++
			if e[n] >= Threshold && st[n] != gen {
				st[n] = gen
				q = append(q, n)
			}
		}
	}

	for _, i := range q {
		e[i] = 0
	}
	g.rearm()

	g.queue = q
	g.steps++
	g.last = len(q)
	if g.hook != nil {
		g.hook(g.steps, g.last)
	}
	return g.last
}

// advanceGeneration moves to a fresh stamp. Stamps are only cleared when the
// counter wraps.
func (g *Grid) advanceGeneration() {
	g.gen++
	if g.gen == 0 {
		clear(g.stamp)
		g.gen = 1
	}
}

func (g *Grid) rearm() {
	for _, i := range g.border {
		g.energy[i] = sentinel
	}
}

// Run calls Step n times and returns the total number of flashes.
func (g *Grid) Run(n int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += g.Step()
	}
	return total
}

// RunUntilAllFlash steps until every cell flashes in the same step and
// returns that step's 1-based index, counted from construction. It gives up
// with ErrNeverSynchronizes after the configured number of attempts.
func (g *Grid) RunUntilAllFlash() (int, error) {
	all := g.layout.Cells()
	for i := 0; i < g.maxSync; i++ {
		if g.Step() == all {
			return g.steps, nil
		}
	}
	return 0, fmt.Errorf("%w: gave up after %d steps (at step %d)", ErrNeverSynchronizes, g.maxSync, g.steps)
}

// Clone returns an independent copy of the grid. The step hook is not copied.
func (g *Grid) Clone() *Grid {
	c := *g
	c.energy = append([]int16(nil), g.energy...)
	c.stamp = append([]uint32(nil), g.stamp...)
	c.queue = make([]int, 0, cap(g.queue))
	c.hook = nil
	return &c
}

// Equal reports whether both grids have the same dimensions and energies.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.layout != o.layout {
		return false
	}
	for y := 0; y < g.layout.H; y++ {
		for x := 0; x < g.layout.W; x++ {
			i := g.layout.Index(x, y)
			if g.energy[i] != o.energy[i] {
				return false
			}
		}
	}
	return true
}

// Rows renders the energies as digit rows, the inverse of New.
func (g *Grid) Rows() []string {
	rows := make([]string, g.layout.H)
	buf := make([]byte, g.layout.W)
	for y := range rows {
		for x := range buf {
			buf[x] = '0' + byte(g.energy[g.layout.Index(x, y)])
		}
		rows[y] = string(buf)
	}
	return rows
}

func (g *Grid) String() string { return strings.Join(g.Rows(), "\n") }
