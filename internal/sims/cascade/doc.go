// Package cascade simulates a grid of energy cells that flash in chain
// reactions.
//
// Every step charges each cell by one. A cell reaching Threshold flashes:
// its eight neighbours gain one unit each and may flash in turn during the
// same step. Each cell flashes at most once per step and flashed cells drop
// back to zero once the cascade settles.
//
// The grid is stored inside a ring of sentinel cells whose energy can never
// reach the threshold, so neighbour lookups are constant index offsets with
// no edge handling. A per-cell generation stamp records the last step in
// which a cell flashed, which replaces a visited set that would otherwise
// need clearing before every step.
//
// A Grid is not safe for concurrent use; use Clone to explore futures in
// parallel.
package cascade
