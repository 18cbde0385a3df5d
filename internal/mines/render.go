package mines

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Rows returns one string of glyphs per row, top row first.
func (f *Field) Rows(revealHidden bool) []string {
	rows := make([]string, 0, f.height)
	var b strings.Builder
	for y := 1; y <= f.height; y++ {
		b.Reset()
		for x := 1; x <= f.width; x++ {
			b.WriteRune(f.at(x, y).Glyph(revealHidden))
		}
		rows = append(rows, b.String())
	}
	return rows
}

// Render draws the field with a column ruler on top and the row number in
// front of every row:
//
//	 │123456789│
//	—│—————————│
//	1│.........│
//	—│—————————│
func (f *Field) Render(w io.Writer, revealHidden bool) error {
	pad := len(strconv.Itoa(f.height))

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", pad) + "│")
	for x := 1; x <= f.width; x++ {
		b.WriteString(strconv.Itoa(x % 10))
	}
	b.WriteString("│\n")

	rule := strings.Repeat("—", pad) + "│" + strings.Repeat("—", f.width) + "│\n"
	b.WriteString(rule)
	for i, row := range f.Rows(revealHidden) {
		fmt.Fprintf(&b, "%*d│%s│\n", pad, i+1, row)
	}
	b.WriteString(rule)

	_, err := io.WriteString(w, b.String())
	return err
}

// [Field] implements [fmt.Stringer]
func (f *Field) String() string {
	var b strings.Builder
	f.Render(&b, false)
	return b.String()
}
