package core

// View is a read-only window over a grid's cell buffer. It shares storage
// with its grid and offers no way to write through it.
type View struct {
	cells []Cell
	width int
}

// Len returns the number of cells.
func (v View) Len() int { return len(v.cells) }

// Width returns the row length.
func (v View) Width() int { return v.width }

// Get returns the cell at linear index i.
func (v View) Get(i int) Cell { return v.cells[i] }

// At returns the cell at column x, row y.
func (v View) At(x, y int) Cell { return v.cells[y*v.width+x] }

// Bytes returns a copy of the buffer as raw bytes, 0 for Dead and 1 for Alive.
func (v View) Bytes() []byte {
	out := make([]byte, len(v.cells))
	for i, c := range v.cells {
		out[i] = byte(c)
	}
	return out
}

// Alive counts live cells.
func (v View) Alive() int {
	n := 0
	for _, c := range v.cells {
		if c == Alive {
			n++
		}
	}
	return n
}
