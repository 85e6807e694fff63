package wordsearch

import (
	"io"
	"maps"
	"path/filepath"
	"slices"
	"strings"
)

// Placeholder stands in for cells that are not part of a word in a mask.
const Placeholder = '-'

// Solution is the outcome of a search: which words were found, and the
// grid cells that spell each of them.
type Solution struct {
	grid   *Grid
	status WordStatus
	// marks[i] holds the found words that cell i is part of.
	marks []map[string]struct{}
}

// FoundWord is a found word with its mask, one string per grid row.
type FoundWord struct {
	Word string   `json:"word"`
	Mask []string `json:"mask"`
}

// Report is the serialisable form of a Solution.
type Report struct {
	Found   []FoundWord `json:"found"`
	Missing []string    `json:"missing"`
}

// Status returns a copy of the word status table.
func (s *Solution) Status() WordStatus {
	return maps.Clone(s.status)
}

// IsFound reports whether word was a target and was found.
func (s *Solution) IsFound(word string) bool {
	missing, ok := s.status[word]
	return ok && !missing
}

// Found returns the found words, sorted.
func (s *Solution) Found() []string {
	return s.words(false)
}

// Missing returns the words that were not found, sorted.
func (s *Solution) Missing() []string {
	return s.words(true)
}

func (s *Solution) words(missing bool) []string {
	var words []string
	for w, m := range s.status {
		if m == missing {
			words = append(words, w)
		}
	}
	slices.Sort(words)
	return words
}

// UsedIn reports whether cell i is part of a found occurrence of word.
func (s *Solution) UsedIn(i int, word string) bool {
	_, ok := s.marks[i][word]
	return ok
}

// CellWords returns the found words that cell i takes part in, sorted.
func (s *Solution) CellWords(i int) []string {
	return slices.Sorted(maps.Keys(s.marks[i]))
}

// Mask renders the grid with only the letters of word showing. It returns
// nil if word was not found.
func (s *Solution) Mask(word string) []string {
	if !s.IsFound(word) {
		return nil
	}

	g := s.grid
	mask := make([]string, g.Height())
	row := make([]rune, g.Width())
	for y := range g.Height() {
		for x := range g.Width() {
			i := g.Index(x, y)
			if s.UsedIn(i, word) {
				row[x] = g.Cell(i).letter
			} else {
				row[x] = Placeholder
			}
		}
		mask[y] = string(row)
	}
	return mask
}

// Report builds the serialisable form of the solution.
func (s *Solution) Report() Report {
	found := s.Found()
	r := Report{
		Found:   make([]FoundWord, 0, len(found)),
		Missing: s.Missing(),
	}
	for _, w := range found {
		r.Found = append(r.Found, FoundWord{Word: w, Mask: s.Mask(w)})
	}
	if r.Missing == nil {
		r.Missing = []string{}
	}
	return r
}

// WriteTo writes the text report: one block per found word, then the list
// of words that were not found.
func (s *Solution) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder

	for _, word := range s.Found() {
		b.WriteString(word)
		b.WriteString(":\n")
		for _, row := range s.Mask(word) {
			b.WriteString(row)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}

	if missing := s.Missing(); len(missing) > 0 {
		b.WriteString("Words that were not found:\n")
		for _, word := range missing {
			b.WriteByte('*')
			b.WriteString(word)
			b.WriteByte('\n')
		}
	}

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// SolutionPath returns where the report for the puzzle in name is written:
// "puzzle.txt" becomes "puzzle_solution.txt".
func SolutionPath(name string) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + "_solution" + ext
}
