package core

// Layout describes a W×H grid stored row-major inside a one-cell border ring.
// Interior cell (x, y) lives at index (y+1)*Stride + (x+1); the ring occupies
// the first and last rows and the first and last column of every row.
type Layout struct {
	W, H   int
	Stride int
}

// NewLayout returns the padded layout for a w×h interior. Non-positive
// dimensions are clamped to 1.
func NewLayout(w, h int) Layout {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return Layout{W: w, H: h, Stride: w + 2}
}

// Len returns the number of slots including the border ring.
func (l Layout) Len() int { return l.Stride * (l.H + 2) }

// Cells returns the number of interior cells.
func (l Layout) Cells() int { return l.W * l.H }

// Index returns the padded slice index for interior coordinates (x, y).
func (l Layout) Index(x, y int) int { return (y+1)*l.Stride + x + 1 }

// Neighbors8 returns the index offsets of the Moore neighbourhood.
func (l Layout) Neighbors8() [8]int {
	s := l.Stride
	return [8]int{-s - 1, -s, -s + 1, -1, 1, s - 1, s, s + 1}
}

// IsBorder reports whether slot i belongs to the sentinel ring.
func (l Layout) IsBorder(i int) bool {
	x, y := i%l.Stride, i/l.Stride
	return x == 0 || y == 0 || x == l.Stride-1 || y == l.H+1
}

// Border lists the ring slots in row-major order.
func (l Layout) Border() []int {
	out := make([]int, 0, l.Len()-l.Cells())
	for i := 0; i < l.Len(); i++ {
		if l.IsBorder(i) {
			out = append(out, i)
		}
	}
	return out
}
