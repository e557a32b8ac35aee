package render

import (
	"strings"
	"unicode/utf8"
)

// Glyphs maps binary cell values to the runes used in text output.
type Glyphs struct {
	Dead  rune
	Alive rune
}

// DefaultGlyphs renders dead cells as ◻ and live cells as ◼.
var DefaultGlyphs = Glyphs{Dead: '◻', Alive: '◼'}

// Valid reports whether the glyphs are distinct printable runes that cannot
// be confused with a line terminator.
func (g Glyphs) Valid() bool {
	if g.Dead == g.Alive {
		return false
	}
	for _, r := range []rune{g.Dead, g.Alive} {
		if !utf8.ValidRune(r) || r == '\n' || r == '\r' || r == utf8.RuneError || r < ' ' {
			return false
		}
	}
	return true
}

// Symbol returns the glyph for a cell value. Any non-zero value is alive.
func (g Glyphs) Symbol(c uint8) rune {
	if c != 0 {
		return g.Alive
	}
	return g.Dead
}

// Text renders cells as width-sized rows, one glyph per cell, each row
// terminated by a newline. A trailing partial row is rendered as-is.
func Text[C ~uint8](cells []C, width int, g Glyphs) string {
	if width <= 0 || len(cells) == 0 {
		return ""
	}
	rows := (len(cells) + width - 1) / width
	var b strings.Builder
	b.Grow(len(cells)*utf8.UTFMax + rows)
	for start := 0; start < len(cells); start += width {
		end := start + width
		if end > len(cells) {
			end = len(cells)
		}
		for _, c := range cells[start:end] {
			b.WriteRune(g.Symbol(uint8(c)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ParseText is the inverse of Text. Runes other than g.Alive read as dead.
// width is the length of the longest row; shorter rows are padded dead.
func ParseText(text string, g Glyphs) (cells []uint8, width, height int) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil, 0, 0
	}
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > width {
			width = n
		}
	}
	height = len(lines)
	cells = make([]uint8, width*height)
	for y, line := range lines {
		x := 0
		for _, r := range line {
			if r == g.Alive {
				cells[y*width+x] = 1
			}
			x++
		}
	}
	return cells, width, height
}
