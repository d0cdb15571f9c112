package cascade

import (
	"errors"
	"math"
	"testing"

	rng "cascade-ca/pkg/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleRows = []string{
	"5483143223",
	"2745854711",
	"5264556173",
	"6141336146",
	"6357385478",
	"4167524645",
	"2176841721",
	"6882881134",
	"4846848554",
	"5283751526",
}

func mustNew(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g, err := New(rows)
	require.NoError(t, err)
	return g
}

func TestNewRejectsMalformedRows(t *testing.T) {
	cases := []struct {
		name string
		rows []string
	}{
		{"NoRows", nil},
		{"EmptyRow", []string{""}},
		{"Ragged", []string{"123", "12"}},
		{"Letter", []string{"12a"}},
		{"Space", []string{"1 3"}},
		{"Sign", []string{"-13"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.rows)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput), "error %v does not wrap ErrInvalidInput", err)
		})
	}
}

func TestNewArmsBorder(t *testing.T) {
	g := mustNew(t, "123", "456")
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, 6, g.Cells())
	assert.Equal(t, []string{"123", "456"}, g.Rows())
	for _, i := range g.border {
		assert.Equal(t, sentinel, g.energy[i])
	}
}

func TestStepSmallCascade(t *testing.T) {
	g := mustNew(t,
		"11111",
		"19991",
		"19191",
		"19991",
		"11111",
	)

	require.Equal(t, 9, g.Step())
	assert.Equal(t, []string{
		"34543",
		"40004",
		"50005",
		"40004",
		"34543",
	}, g.Rows())
	assert.True(t, g.Flashed(2, 2))
	assert.False(t, g.Flashed(0, 0))

	require.Equal(t, 0, g.Step())
	assert.Equal(t, []string{
		"45654",
		"51115",
		"61116",
		"51115",
		"45654",
	}, g.Rows())
	assert.False(t, g.Flashed(2, 2))
}

func TestStepAllNines(t *testing.T) {
	rows := make([]string, 5)
	for i := range rows {
		rows[i] = "99999"
	}
	g := mustNew(t, rows...)

	require.Equal(t, 25, g.Step())
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			assert.Equal(t, 0, g.Energy(x, y), "cell (%d,%d)", x, y)
			assert.True(t, g.Flashed(x, y), "cell (%d,%d)", x, y)
		}
	}
}

func TestSampleGolden(t *testing.T) {
	g := mustNew(t, sampleRows...)
	assert.Equal(t, 204, g.Run(10))
	assert.Equal(t, 1656-204, g.Run(90))
	assert.Equal(t, 100, g.Steps())

	sync, err := g.RunUntilAllFlash()
	require.NoError(t, err)
	assert.Equal(t, 195, sync)
	assert.Equal(t, g.Cells(), g.LastFlashes())
}

func TestRunMatchesRepeatedStep(t *testing.T) {
	a := mustNew(t, sampleRows...)
	b := a.Clone()

	sum := 0
	for i := 0; i < 37; i++ {
		sum += a.Step()
	}
	assert.Equal(t, sum, b.Run(37))
	assert.True(t, a.Equal(b))
	assert.Zero(t, b.Run(0))
	assert.Zero(t, b.Run(-3))
}

func TestRunUntilAllFlashSingleCell(t *testing.T) {
	g := mustNew(t, "0")
	sync, err := g.RunUntilAllFlash()
	require.NoError(t, err)
	assert.Equal(t, 10, sync)

	// numbering continues from earlier steps
	sync, err = g.RunUntilAllFlash()
	require.NoError(t, err)
	assert.Equal(t, 20, sync)
}

func TestRunUntilAllFlashGivesUp(t *testing.T) {
	g := mustNew(t, sampleRows...)
	g.SetMaxSyncSteps(50)

	_, err := g.RunUntilAllFlash()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNeverSynchronizes))
	assert.Equal(t, 50, g.Steps())

	g.SetMaxSyncSteps(0)
	assert.Equal(t, DefaultMaxSyncSteps, g.maxSync)
}

func TestCloneIsIndependent(t *testing.T) {
	g := mustNew(t, sampleRows...)
	g.Run(5)
	c := g.Clone()
	require.True(t, g.Equal(c))
	require.Equal(t, g.Steps(), c.Steps())

	c.Step()
	assert.False(t, g.Equal(c))
	assert.Equal(t, 5, g.Steps())
	assert.Equal(t, 6, c.Steps())
}

func TestStepDeterministicFromSnapshot(t *testing.T) {
	g := mustNew(t, sampleRows...)
	g.Run(12)
	a, b := g.Clone(), g.Clone()

	for i := 0; i < 2; i++ {
		require.Equal(t, a.Step(), b.Step())
		require.True(t, a.Equal(b))
		require.Equal(t, a.Rows(), b.Rows())
	}
}

func TestEqualComparesDimensions(t *testing.T) {
	a := mustNew(t, "12", "34")
	assert.False(t, a.Equal(nil))
	assert.False(t, a.Equal(mustNew(t, "1234")))
	assert.True(t, a.Equal(mustNew(t, "12", "34")))
	assert.False(t, a.Equal(mustNew(t, "12", "35")))
}

func TestBorderStaysInert(t *testing.T) {
	rows := make([]string, 4)
	for i := range rows {
		rows[i] = "9999"
	}
	g := mustNew(t, rows...)
	g.Run(5000)
	for _, i := range g.border {
		require.Equal(t, sentinel, g.energy[i], "ring slot %d drifted", i)
	}
}

func TestGenerationWrapClearsStamps(t *testing.T) {
	g := mustNew(t, sampleRows...)
	ref := g.Clone()

	// pretend every cell flashed in the generation that follows the wrap
	g.gen = math.MaxUint32
	for i := range g.stamp {
		g.stamp[i] = 1
	}

	for i := 0; i < 20; i++ {
		require.Equal(t, ref.Step(), g.Step(), "step %d", i+1)
		require.True(t, ref.Equal(g))
	}
	assert.Equal(t, uint32(20), g.gen)
}

func TestObserveReportsEveryStep(t *testing.T) {
	g := mustNew(t, sampleRows...)
	var steps, flashes []int
	g.Observe(func(step, n int) {
		steps = append(steps, step)
		flashes = append(flashes, n)
	})
	total := g.Run(10)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, steps)
	sum := 0
	for _, n := range flashes {
		sum += n
	}
	assert.Equal(t, total, sum)

	c := g.Clone()
	c.Step()
	assert.Len(t, steps, 10, "clone must not inherit the hook")

	g.Observe(nil)
	g.Step()
	assert.Len(t, steps, 10)
}

func TestEnergyPanicsOutOfBounds(t *testing.T) {
	g := mustNew(t, "12", "34")
	assert.Panics(t, func() { g.Energy(2, 0) })
	assert.Panics(t, func() { g.Flashed(0, -1) }, "fresh grid must still check bounds")
	g.Step()
	assert.Panics(t, func() { g.Flashed(0, -1) })
	assert.Panics(t, func() { g.Flashed(5, 5) })
	assert.False(t, g.InBounds(-1, 0))
	assert.True(t, g.InBounds(1, 1))
}

// naiveStep is a bounds-checked reference that marks cells in a visited set.
func naiveStep(e [][]int) int {
	h, w := len(e), len(e[0])
	flashed := make(map[[2]int]bool)
	var stack [][2]int
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			e[y][x]++
			if e[y][x] >= Threshold {
				flashed[[2]int{x, y}] = true
				stack = append(stack, [2]int{x, y})
			}
		}
	}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				nx, ny := c[0]+dx, c[1]+dy
				if (dx == 0 && dy == 0) || nx < 0 || ny < 0 || nx >= w || ny >= h {
					continue
				}
				e[ny][nx]++
				if e[ny][nx] >= Threshold && !flashed[[2]int{nx, ny}] {
					flashed[[2]int{nx, ny}] = true
					stack = append(stack, [2]int{nx, ny})
				}
			}
		}
	}
	for c := range flashed {
		e[c[1]][c[0]] = 0
	}
	return len(flashed)
}

func TestStepMatchesNaiveReference(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 7}, {7, 1}, {3, 5}, {10, 10}, {17, 9}}
	for seed := int64(1); seed <= 6; seed++ {
		for _, size := range sizes {
			rows := rng.NewRNG(seed).DigitRows(size[0], size[1])
			g := mustNew(t, rows...)
			ref := make([][]int, len(rows))
			for y, row := range rows {
				ref[y] = make([]int, len(row))
				for x := range row {
					ref[y][x] = int(row[x] - '0')
				}
			}

			for step := 1; step <= 60; step++ {
				want := naiveStep(ref)
				got := g.Step()
				require.Equal(t, want, got, "seed %d size %v step %d", seed, size, step)
				zeros := 0
				for y := range ref {
					for x := range ref[y] {
						require.Equal(t, ref[y][x], g.Energy(x, y))
						require.Less(t, g.Energy(x, y), Threshold)
						require.Equal(t, g.Energy(x, y) == 0, g.Flashed(x, y))
						if g.Energy(x, y) == 0 {
							zeros++
						}
					}
				}
				require.Equal(t, got, zeros)
				require.LessOrEqual(t, got, g.Cells())
			}
		}
	}
}
