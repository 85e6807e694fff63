package wordsearch

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSolution_WriteTo(t *testing.T) {
	sol := solve(t, mustGrid(t, "CAT", "ARE", "TEN"), "CAT", "ARE", "TEN", "DOG", "EMU")

	var b strings.Builder
	n, err := sol.WriteTo(&b)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}

	want := `ARE:
-A-
ARE
-E-

CAT:
CAT
A--
T--

TEN:
--T
--E
TEN

Words that were not found:
*DOG
*EMU
`
	if diff := cmp.Diff(want, b.String()); diff != "" {
		t.Errorf("WriteTo() mismatch (-want +got):\n%s", diff)
	}
	if n != int64(len(want)) {
		t.Errorf("WriteTo() = %d bytes, want %d", n, len(want))
	}
}

func TestSolution_WriteToAllFound(t *testing.T) {
	sol := solve(t, mustGrid(t, "CAT"), "CAT")

	var b strings.Builder
	if _, err := sol.WriteTo(&b); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if strings.Contains(b.String(), "not found") {
		t.Errorf("report lists missing words although all were found:\n%s", b.String())
	}
}

func TestSolution_Report(t *testing.T) {
	sol := solve(t, mustGrid(t, "CAT", "XYZ"), "CAT")

	got, err := json.Marshal(sol.Report())
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	want := `{"found":[{"word":"CAT","mask":["CAT","---"]}],"missing":[]}`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("Report() mismatch (-want +got):\n%s", diff)
	}
}

func TestSolution_StatusIsCopy(t *testing.T) {
	sol := solve(t, mustGrid(t, "CAT"), "CAT", "DOG")

	status := sol.Status()
	status["DOG"] = false

	if sol.IsFound("DOG") {
		t.Error("changing the returned status changed the solution")
	}
	if sol.IsFound("EMU") {
		t.Error("IsFound() = true for a word that was never a target")
	}
}

func TestSolutionPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"puzzle.txt", "puzzle_solution.txt"},
		{"dir/puzzle.txt", "dir/puzzle_solution.txt"},
		{"puzzle", "puzzle_solution"},
		{"my.puzzle.txt", "my.puzzle_solution.txt"},
		{"v1.2/puzzle", "v1.2/puzzle_solution"},
	}

	for _, tt := range tests {
		if got := SolutionPath(tt.in); got != tt.want {
			t.Errorf("SolutionPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
