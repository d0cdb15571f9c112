package cascade

// DefaultSteps is the number of steps counted for the flash total.
const DefaultSteps = 100

// Answer holds both results extracted from one simulation.
type Answer struct {
	// Flashes is the total flash count over the first Steps steps.
	Flashes int
	// SyncStep is the 1-based index of the first step in which every cell
	// flashed.
	SyncStep int
}

// Solve runs g for steps steps, then keeps going until the grid
// synchronizes. A synchronization observed during the counted steps is
// reported as is; the search does not restart at step steps+1, so SyncStep
// is always the first step in which every cell flashed.
func Solve(g *Grid, steps int) (Answer, error) {
	var ans Answer
	all := g.Cells()
	for i := 0; i < steps; i++ {
		n := g.Step()
		ans.Flashes += n
		if n == all && ans.SyncStep == 0 {
			ans.SyncStep = g.Steps()
		}
	}
	if ans.SyncStep != 0 {
		return ans, nil
	}
	sync, err := g.RunUntilAllFlash()
	if err != nil {
		return ans, err
	}
	ans.SyncStep = sync
	return ans, nil
}
