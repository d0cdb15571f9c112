package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// DigitRows returns h strings of w random ASCII digits.
func (r *RNG) DigitRows(w, h int) []string {
	rows := make([]string, h)
	buf := make([]byte, w)
	for y := range rows {
		FillDigits(r.r, buf)
		rows[y] = string(buf)
	}
	return rows
}

// FillDigits fills the buffer with ASCII digits '0'..'9'.
func FillDigits(r *rand.Rand, buf []byte) {
	for i := range buf {
		buf[i] = '0' + byte(r.IntN(10))
	}
}
