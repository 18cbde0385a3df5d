package mines

import (
	"fmt"
	"hash/maphash"
	"iter"
	"log/slog"
	"math/rand/v2"
)

var Log *slog.Logger = slog.Default()

type Point struct {
	X, Y int
}

// offsets lists the relative positions of the eight neighbours of a cell.
var offsets = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Field is a rectangular grid of cells indexed by 1-based (x, y).
type Field struct {
	width, height int
	mineCount     int
	cells         []Cell
	rnd           *rand.Rand
}

// NewRand returns a generator seeded from the runtime's random hash seeds.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// NewField builds a width x height field and scatters mines over it. A mine
// count outside [0, width*height] is replaced by width*height-1.
func NewField(width, height, mines int, r *rand.Rand) (*Field, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w (have %dx%d)", ErrInvalidSize, width, height)
	}
	total := width * height
	if mines < 0 || mines > total {
		mines = total - 1
	}
	if r == nil {
		r = NewRand()
	}

	f := &Field{
		width:     width,
		height:    height,
		mineCount: mines,
		cells:     make([]Cell, total),
		rnd:       r,
	}
	for p := range f.Points() {
		c := f.at(p.X, p.Y)
		c.X, c.Y = p.X, p.Y
	}

	f.placeMines(nil)
	f.computeAdjacency()

	return f, nil
}

func (f *Field) Width() int     { return f.width }
func (f *Field) Height() int    { return f.height }
func (f *Field) MineCount() int { return f.mineCount }

func (f *Field) InBounds(x, y int) bool {
	return 1 <= x && x <= f.width && 1 <= y && y <= f.height
}

// at skips the bounds check.
func (f *Field) at(x, y int) *Cell {
	return &f.cells[(y-1)*f.width+(x-1)]
}

// Cell returns the cell at (x, y); ok is false when the point is outside the
// field.
func (f *Field) Cell(x, y int) (c *Cell, ok bool) {
	if !f.InBounds(x, y) {
		return nil, false
	}
	return f.at(x, y), true
}

// Points yields every coordinate row by row, x ascending within a row.
func (f *Field) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for y := 1; y <= f.height; y++ {
			for x := 1; x <= f.width; x++ {
				if !yield(Point{x, y}) {
					return
				}
			}
		}
	}
}

// Cells yields every cell in the same order as [Field.Points].
func (f *Field) Cells() iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for i := range f.cells {
			if !yield(&f.cells[i]) {
				return
			}
		}
	}
}

// Neighbors yields the in-bounds cells around (x, y).
func Neighbors(f *Field, x, y int) iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for _, d := range offsets {
			c, ok := f.Cell(x+d.X, y+d.Y)
			if !ok {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

/*
 * placeMines walks the grid once in raster order and turns each cell into a
 * mine with probability minesLeft/cellsLeft. The ratio reaches 1 once every
 * remaining cell is needed and 0 once the supply runs out, so the sweep
 * always places exactly mineCount mines (fewer only if the exclusion leaves
 * too few cells). The layout is not a uniform sample of all subsets.
 */
func (f *Field) placeMines(exclude *Point) {
	minesLeft := f.mineCount
	cellsLeft := len(f.cells)
	if exclude != nil && f.InBounds(exclude.X, exclude.Y) {
		cellsLeft--
	} else {
		exclude = nil
	}

	for c := range f.Cells() {
		c.visible = false

		if exclude != nil && c.X == exclude.X && c.Y == exclude.Y {
			c.mine = false
			continue
		}

		c.mine = f.rnd.Float64() < float64(minesLeft)/float64(cellsLeft)
		if c.mine {
			minesLeft--
		}
		cellsLeft--
	}
}

func (f *Field) computeAdjacency() {
	for c := range f.Cells() {
		n := 0
		for adj := range Neighbors(f, c.X, c.Y) {
			if adj.mine {
				n++
			}
		}
		c.SetAdjacentMines(n)
	}
}

// Regenerate reshuffles the mines so that (x, y) is free. The game calls it
// right before the first reveal.
func (f *Field) Regenerate(x, y int) {
	f.placeMines(&Point{x, y})
	f.computeAdjacency()
	Log.Debug("field regenerated", "x", x, "y", y, "mines", f.mineCount)
}

// Reveal opens (x, y) and reports false if it holds a mine, in which case
// nothing is changed. Opening a cell with no adjacent mines opens its
// neighbours as well, stopping at marked cells and numbered cells. Points
// outside the field are ignored.
func (f *Field) Reveal(x, y int) bool {
	target, ok := f.Cell(x, y)
	if !ok {
		return true
	}
	if target.mine {
		return false
	}

	target.show()
	if target.adjacent != 0 {
		return true
	}

	todo := []*Cell{target}
	for len(todo) > 0 {
		c := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		for adj := range Neighbors(f, c.X, c.Y) {
			if adj.visible || adj.marked || adj.mine {
				continue
			}
			adj.show()
			if adj.adjacent == 0 {
				todo = append(todo, adj)
			}
		}
	}

	return true
}

func (f *Field) ToggleMark(x, y int) {
	if c, ok := f.Cell(x, y); ok {
		c.ToggleMark()
	}
}

// RevealMines makes every mine visible.
func (f *Field) RevealMines() {
	for c := range f.Cells() {
		if c.mine {
			c.show()
		}
	}
}

// CheckWin reports whether exactly the mines are marked, or whether every
// free cell has been opened. Either is enough.
func (f *Field) CheckWin() bool {
	return f.all(func(c *Cell) bool { return c.marked == c.mine }) ||
		f.all(func(c *Cell) bool { return c.mine || c.visible })
}

func (f *Field) all(cond func(*Cell) bool) bool {
	for c := range f.Cells() {
		if !cond(c) {
			return false
		}
	}
	return true
}

// Execute validates cmd against the field and applies it. The boolean result
// is false only when a mine was revealed.
func (f *Field) Execute(cmd Command) (bool, error) {
	if err := f.Validate(cmd); err != nil {
		return false, err
	}
	if cmd.Action == Mark {
		f.ToggleMark(cmd.X, cmd.Y)
		return true, nil
	}
	return f.Reveal(cmd.X, cmd.Y), nil
}

// Validate reports the error [Field.Execute] would return for cmd without
// applying it.
func (f *Field) Validate(cmd Command) error {
	if !f.InBounds(cmd.X, cmd.Y) {
		return invalidCommand(fmt.Sprintf(
			"coordinates must be within 1..%d and 1..%d", f.width, f.height,
		))
	}
	if cmd.Action != Reveal && cmd.Action != Mark {
		return badAction()
	}
	return nil
}

func (f *Field) MarkedCount() (n int) {
	for c := range f.Cells() {
		if c.marked {
			n++
		}
	}
	return
}

func (f *Field) HiddenCount() (n int) {
	for c := range f.Cells() {
		if !c.visible {
			n++
		}
	}
	return
}
