package wordsearch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
		"strings"

	"crosswarped.com/wordsearch/pkg/primitives"
)

var (
	ErrEmptyGrid  = errors.New("grid has no rows")
	ErrUnevenRows = errors.New("grid must have equally sized rows")
	ErrNotLetter  = errors.New("grid must contain only letters")
)

// FormatError reports a malformed grid. Col is -1 when the problem concerns
// the whole row.
type FormatError struct {
	Row int
	Col int
	Err error
}

func (e *FormatError) Error() string {
	if e.Col < 0 {
		return fmt.Sprintf("format error at row %d: %v", e.Row+1, e.Err)
	}
	return fmt.Sprintf("format error at row %d, column %d: %v", e.Row+1, e.Col+1, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

const noNeighbor = -1

// Cell is one letter of the grid.
type Cell struct {
	letter    rune
	neighbors [numDirections]int
}

// Letter returns the upper-case letter held by the cell.
func (c *Cell) Letter() rune {
	return c.letter
}

// Neighbor returns the index of the adjacent cell in direction d, or false
// at the edge of the grid.
func (c *Cell) Neighbor(d Direction) (int, bool) {
	n := c.neighbors[d]
	return n, n != noNeighbor
}

// Grid is a rectangular grid of letters.
//
// Cells are stored row-major; every cell knows the index of its neighbour in
// each direction. The links are computed once by NewGrid and never change,
// and searching never writes to the grid, so one Grid can be shared by any
// number of solvers.
type Grid struct {
	width   int
	height  int
	cells   []Cell
	letters *primitives.CharSet
}

// NewGrid validates rows and builds a Grid from them. Lower-case letters are
// folded to upper case. Rows of different lengths, or any character that is
// not an ASCII letter, produce a *FormatError and no grid.
func NewGrid(rows [][]rune) (*Grid, error) {
	if len(rows) == 0 {
		return nil, &FormatError{Row: 0, Col: -1, Err: ErrEmptyGrid}
	}

	g := &Grid{
		width:   len(rows[0]),
		height:  len(rows),
		letters: primitives.LetterSet(),
	}
	g.cells = make([]Cell, 0, g.width*g.height)

	for y, row := range rows {
		if len(row) != g.width {
			return nil, &FormatError{Row: y, Col: -1, Err: ErrUnevenRows}
		}
		for x, r := range row {
			if r >= 'a' && r <= 'z' {
				r += 'A' - 'a'
			}
			if err := g.letters.Add(r); err != nil {
				return nil, &FormatError{Row: y, Col: x, Err: fmt.Errorf("%w: %v", ErrNotLetter, err)}
			}
			g.cells = append(g.cells, Cell{letter: r})
		}
	}
	if g.width == 0 {
		return nil, &FormatError{Row: 0, Col: -1, Err: ErrEmptyGrid}
	}

	g.link()
	return g, nil
}

// ParseGrid reads a grid with one row per line. Trailing blank lines are
// ignored.
func ParseGrid(r io.Reader) (*Grid, error) {
	var rows [][]rune
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		rows = append(rows, []rune(strings.TrimRight(scanner.Text(), "\r")))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading grid: %w", err)
	}

	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	return NewGrid(rows)
}

// GridFromStrings is a convenience wrapper around NewGrid.
func GridFromStrings(rows []string) (*Grid, error) {
	runes := make([][]rune, len(rows))
	for i, row := range rows {
		runes[i] = []rune(row)
	}
	return NewGrid(runes)
}

func (g *Grid) link() {
	for y := range g.height {
		for x := range g.width {
			cell := &g.cells[g.Index(x, y)]
			for _, d := range Directions {
				dRow, dCol := d.Delta()
				nx, ny := x+dCol, y+dRow
				if nx < 0 || nx >= g.width || ny < 0 || ny >= g.height {
					cell.neighbors[d] = noNeighbor
					continue
				}
				cell.neighbors[d] = g.Index(nx, ny)
			}
		}
	}
}

func (g *Grid) Width() int {
	return g.width
}

func (g *Grid) Height() int {
	return g.height
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Index returns the position of (x, y) in row-major order.
func (g *Grid) Index(x, y int) int {
	return y*g.width + x
}

func (g *Grid) Get(x, y int) rune {
	return g.cells[g.Index(x, y)].letter
}

// Cell returns the cell at index i.
func (g *Grid) Cell(i int) *Cell {
	return &g.cells[i]
}

// Neighbor returns the index of the cell next to i in direction d.
func (g *Grid) Neighbor(i int, d Direction) (int, bool) {
	return g.cells[i].Neighbor(d)
}

// Letters returns the set of letters appearing in the grid.
func (g *Grid) Letters() *primitives.CharSet {
	return g.letters
}

func (g *Grid) Repr() string {
	lines := make([]string, g.height)
	for y := range g.height {
		row := make([]rune, g.width)
		for x := range g.width {
			row[x] = g.Get(x, y)
		}
		lines[y] = string(row)
	}
	return strings.Join(lines, "\n")
}

func (g *Grid) DebugString() string {
	return fmt.Sprintf("Grid{width: %d, height: %d, letters: %s, grid: %q}", g.width, g.height, g.letters, g.Repr())
}
