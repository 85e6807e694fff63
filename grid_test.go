package wordsearch

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustGrid(t testing.TB, rows ...string) *Grid {
	t.Helper()
	g, err := GridFromStrings(rows)
	if err != nil {
		t.Fatalf("GridFromStrings(%q) error = %v", rows, err)
	}
	return g
}

func TestNewGrid_FoldsCase(t *testing.T) {
	g := mustGrid(t, "cAt", "ArE", "tEn")

	if g.Width() != 3 || g.Height() != 3 || g.Len() != 9 {
		t.Fatalf("got %dx%d (%d cells), want 3x3 (9 cells)", g.Width(), g.Height(), g.Len())
	}
	if diff := cmp.Diff("CAT\nARE\nTEN", g.Repr()); diff != "" {
		t.Errorf("Repr() mismatch (-want +got):\n%s", diff)
	}
	if got := g.Letters().String(); got != "ACENRT" {
		t.Errorf("Letters() = %q, want %q", got, "ACENRT")
	}
	if g.Get(2, 1) != 'E' {
		t.Errorf("Get(2, 1) = %q, want 'E'", g.Get(2, 1))
	}
}

func TestNewGrid_FormatErrors(t *testing.T) {
	tests := []struct {
		name    string
		rows    []string
		wantErr error
		wantRow int
		wantCol int
	}{
		{"no rows", nil, ErrEmptyGrid, 0, -1},
		{"empty first row", []string{""}, ErrEmptyGrid, 0, -1},
		{"only empty rows", []string{"", ""}, ErrEmptyGrid, 0, -1},
		{"empty row before letters", []string{"", "ABC"}, ErrUnevenRows, 1, -1},
		{"empty row after letters", []string{"ABC", ""}, ErrUnevenRows, 1, -1},
		{"short row", []string{"ABC", "AB", "ABC"}, ErrUnevenRows, 1, -1},
		{"long row", []string{"ABC", "ABC", "ABCD"}, ErrUnevenRows, 2, -1},
		{"digit", []string{"ABC", "A1C"}, ErrNotLetter, 1, 1},
		{"space", []string{"AB ", "ABC"}, ErrNotLetter, 0, 2},
		{"punctuation", []string{"AB", "C!"}, ErrNotLetter, 1, 1},
		{"non ascii", []string{"ÉA"}, ErrNotLetter, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := GridFromStrings(tt.rows)
			if g != nil {
				t.Errorf("got grid %v, want nil", g.DebugString())
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("error %T is not a *FormatError", err)
			}
			if fe.Row != tt.wantRow || fe.Col != tt.wantCol {
				t.Errorf("error at (%d, %d), want (%d, %d)", fe.Row, fe.Col, tt.wantRow, tt.wantCol)
			}
			if !strings.HasPrefix(err.Error(), "format error") {
				t.Errorf("error message %q should start with \"format error\"", err)
			}
		})
	}
}

func TestParseGrid(t *testing.T) {
	g, err := ParseGrid(strings.NewReader("cat\r\nare\r\nten\r\n\r\n\n"))
	if err != nil {
		t.Fatalf("ParseGrid() error = %v", err)
	}
	if diff := cmp.Diff("CAT\nARE\nTEN", g.Repr()); diff != "" {
		t.Errorf("Repr() mismatch (-want +got):\n%s", diff)
	}

	if _, err := ParseGrid(strings.NewReader("CAT\n\nTEN\n")); !errors.Is(err, ErrUnevenRows) {
		t.Errorf("blank line inside the grid: error = %v, want %v", err, ErrUnevenRows)
	}
	if _, err := ParseGrid(strings.NewReader("")); !errors.Is(err, ErrEmptyGrid) {
		t.Errorf("empty input: error = %v, want %v", err, ErrEmptyGrid)
	}
}

func TestGrid_AdjacencySymmetry(t *testing.T) {
	grids := map[string][]string{
		"1x1": {"A"},
		"1x5": {"ABCDE"},
		"5x1": {"A", "B", "C", "D", "E"},
		"3x4": {"ABCD", "EFGH", "IJKL"},
		"4x4": {"ABCD", "EFGH", "IJKL", "MNOP"},
	}

	for name, rows := range grids {
		t.Run(name, func(t *testing.T) {
			g := mustGrid(t, rows...)
			for i := range g.Len() {
				for _, d := range Directions {
					n, ok := g.Neighbor(i, d)
					if !ok {
						continue
					}
					back, ok := g.Neighbor(n, d.Opposite())
					if !ok || back != i {
						t.Errorf("cell %d -> %v -> %d, but %d -> %v -> (%d, %v)", i, d, n, n, d.Opposite(), back, ok)
					}
				}
			}
		})
	}
}

func TestGrid_Neighbors(t *testing.T) {
	g := mustGrid(t, "ABC", "DEF", "GHI")

	letterAt := func(i int, d Direction) rune {
		n, ok := g.Neighbor(i, d)
		if !ok {
			return 0
		}
		return g.Cell(n).Letter()
	}

	centre := g.Index(1, 1)
	want := map[Direction]rune{
		DirectionUpLeft:    'A',
		DirectionUp:        'B',
		DirectionUpRight:   'C',
		DirectionRight:     'F',
		DirectionDownRight: 'I',
		DirectionDown:      'H',
		DirectionDownLeft:  'G',
		DirectionLeft:      'D',
	}
	for d, r := range want {
		if got := letterAt(centre, d); got != r {
			t.Errorf("neighbour of E going %v = %q, want %q", d, got, r)
		}
	}

	corner := g.Index(0, 0)
	var count int
	for _, d := range Directions {
		if _, ok := g.Neighbor(corner, d); ok {
			count++
		}
	}
	if count != 3 {
		t.Errorf("top-left corner has %d neighbours, want 3", count)
	}
}

func TestDirection(t *testing.T) {
	for _, d := range Directions {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v.Opposite().Opposite() = %v", d, d.Opposite().Opposite())
		}
		dRow, dCol := d.Delta()
		oRow, oCol := d.Opposite().Delta()
		if dRow != -oRow || dCol != -oCol {
			t.Errorf("%v delta (%d, %d) is not the reverse of %v delta (%d, %d)", d, dRow, dCol, d.Opposite(), oRow, oCol)
		}
	}
	if DirectionRight.Opposite() != DirectionLeft || DirectionUpLeft.Opposite() != DirectionDownRight {
		t.Error("unexpected opposite directions")
	}
	if Direction(9).String() != "invalid" {
		t.Errorf("Direction(9).String() = %q, want \"invalid\"", Direction(9).String())
	}
}
