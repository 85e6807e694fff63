package wordsearch

import (
	"context"
	"log/slog"
	"maps"
	"slices"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"crosswarped.com/wordsearch/pkg/primitives"
)

var tracer = otel.Tracer("crosswarped.com/wordsearch")

// WordStatus maps each target word to whether it is still missing. A word
// starts out true and flips to false the first time it is found.
type WordStatus map[string]bool

// SolverParams holds optional collaborators for a Solver.
type SolverParams struct {
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Solver searches a single grid for a fixed set of words.
type Solver struct {
	grid   *Grid
	trie   *primitives.Trie
	cursor *primitives.Cursor
	status WordStatus
	marks  []map[string]struct{}
	logger *slog.Logger
}

// CreateSolver prepares a search of grid for words. Words are expected to be
// normalised already (upper case, no spaces); empty words are ignored.
//
// A word using a letter that does not appear anywhere in the grid cannot be
// found, so it is recorded as missing without being added to the trie.
func CreateSolver(grid *Grid, words []string, params SolverParams) *Solver {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Solver{
		grid:   grid,
		trie:   primitives.NewTrie(),
		status: make(WordStatus, len(words)),
		logger: logger,
	}
	s.cursor = s.trie.Cursor()

	letters := grid.Letters()
	for _, w := range words {
		if w == "" {
			continue
		}
		s.status[w] = true
		if !letters.ContainsAll(w) {
			logger.Debug("Word uses letters absent from the grid", "word", w, "letters", letters.String())
			continue
		}
		s.trie.Insert(w)
	}

	if logger.Enabled(context.Background(), slog.LevelDebug) {
		logger.Debug("Solver ready",
			"words", slices.Collect(s.trie.Words()),
			"unplaceable", len(s.status)-s.trie.NumWords(),
		)
	}
	return s
}

// outcome is the result of walking one straight line: either nothing was
// completed, or word was.
type outcome struct {
	word string
	ok   bool
}

// Solve walks every line of the grid, from every cell in all eight
// directions, and returns which words were found and where. The grid is
// only read; where each word was found is kept in the returned Solution.
func (s *Solver) Solve(ctx context.Context) (*Solution, error) {
	ctx, span := tracer.Start(ctx, "wordsearch.Solve", trace.WithAttributes(
		attribute.Int("grid.width", s.grid.Width()),
		attribute.Int("grid.height", s.grid.Height()),
		attribute.Int("grid.letters", s.grid.Letters().Count()),
		attribute.Int("words.total", len(s.status)),
		attribute.Int("words.searchable", s.trie.NumWords()),
		attribute.Int("trie.nodes", s.trie.NumNodes()),
	))
	defer span.End()

	s.marks = make([]map[string]struct{}, s.grid.Len())

	for i := range s.grid.Len() {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "search cancelled")
			return nil, err
		}
		for _, d := range Directions {
			s.cursor.Reset()
			s.walk(i, d)
		}
	}

	sol := &Solution{grid: s.grid, status: maps.Clone(s.status), marks: s.marks}
	found, missing := len(sol.Found()), len(sol.Missing())
	span.SetAttributes(
		attribute.Int("words.found", found),
		attribute.Int("words.missing", missing),
	)
	s.logger.Info("Search complete",
		"width", s.grid.Width(),
		"height", s.grid.Height(),
		"searchable", s.trie.NumWords(),
		"found", found,
		"missing", missing,
	)
	return sol, nil
}

// walk advances the cursor over cell i and then keeps going in direction d.
//
// When a longer word completes further along the line, every cell on the
// way is marked with that longer word and any shorter word ending at i gets
// no credit from this line. Its status is left alone, so it can still be
// found on another line.
func (s *Solver) walk(i int, d Direction) outcome {
	cell := s.grid.Cell(i)
	if !s.cursor.Advance(cell.letter) {
		return outcome{}
	}

	wordEnd := s.cursor.IsWordEnd()
	var word string
	var length int
	if wordEnd {
		word, length = s.cursor.Word(), s.cursor.Depth()
	}

	if next, ok := cell.Neighbor(d); ok {
		if res := s.walk(next, d); res.ok {
			s.mark(i, res.word)
			return res
		}
	}

	if !wordEnd {
		return outcome{}
	}

	if s.status[word] {
		s.status[word] = false
		s.logger.Debug("Word found", "word", word, "direction", d.String(), "end", i, "length", length)
	}
	s.mark(i, word)
	return outcome{word: word, ok: true}
}

func (s *Solver) mark(i int, word string) {
	if s.marks[i] == nil {
		s.marks[i] = make(map[string]struct{})
	}
	s.marks[i][word] = struct{}{}
}
