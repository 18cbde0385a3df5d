package mines

const (
	GlyphMarked = '*'
	GlyphMine   = 'X'
	GlyphEmpty  = '/'
	GlyphHidden = '.'
)

// notApplicable is stored as the adjacency count of a mine cell.
const notApplicable = -1

// Cell is a single field position. X and Y are 1-based.
type Cell struct {
	X, Y int

	mine     bool
	visible  bool
	marked   bool
	adjacent int
}

func (c *Cell) IsMine() bool { return c.mine }
func (c *Cell) IsVisible() bool { return c.visible }
func (c *Cell) IsMarked() bool { return c.marked }
func (c *Cell) AdjacentMines() int { return c.adjacent }

// SetMarked sets the mark of a hidden cell. Visible cells are left unchanged.
func (c *Cell) SetMarked(value bool) {
	if c.visible {
		return
	}
	c.marked = value
}

func (c *Cell) ToggleMark() {
	c.SetMarked(!c.marked)
}

// SetAdjacentMines stores the neighbouring mine count. Mine cells always hold
// -1 and values outside [0, 8] fall back to 0.
func (c *Cell) SetAdjacentMines(value int) {
	switch {
	case c.mine:
		c.adjacent = notApplicable
	case value < 0 || value > 8:
		c.adjacent = 0
	default:
		c.adjacent = value
	}
}

// show makes the cell visible, dropping any mark it carried.
func (c *Cell) show() {
	c.visible = true
	c.marked = false
}

// Glyph returns the character the cell is drawn with. With revealHidden set,
// mines and counts of hidden cells are shown as well.
func (c *Cell) Glyph(revealHidden bool) rune {
	shown := revealHidden || c.visible
	switch {
	case c.marked && !c.visible:
		return GlyphMarked
	case c.mine && shown:
		return GlyphMine
	case c.adjacent > 0 && shown:
		return rune('0' + c.adjacent)
	case c.visible && c.adjacent == 0:
		return GlyphEmpty
	default:
		return GlyphHidden
	}
}
