package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"slices"

	"cloud.google.com/go/bigquery"
	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/google/uuid"
	"github.com/gorilla/schema"
	"google.golang.org/api/iterator"

	"crosswarped.com/wordsearch"
	"crosswarped.com/wordsearch/internal"
	"crosswarped.com/wordsearch/internal/config"
	"crosswarped.com/wordsearch/internal/logging"
)

const maxGridSide = 64

type SolvePuzzleRequest struct {
	Grid          []string `json:"grid" schema:"grid"`
	Words         []string `json:"words" schema:"word"`
	ExcludedWords []string `json:"excludedWords" schema:"exclude"`
	WordScope     string   `json:"wordScope" schema:"scope"`
	MinWordLength int      `json:"minWordLength" schema:"min_length"`
}

type SolvePuzzleResponse struct {
	Success   bool               `json:"success"`
	RequestID string             `json:"requestId"`
	Report    *wordsearch.Report `json:"report,omitempty"`
	Error     string             `json:"error,omitempty"`
}

// badRequestError marks errors caused by the request itself.
type badRequestError struct {
	err error
}

func (e *badRequestError) Error() string { return e.err.Error() }
func (e *badRequestError) Unwrap() error { return e.err }

func badRequest(format string, args ...any) error {
	return &badRequestError{err: fmt.Errorf(format, args...)}
}

// loadScopeWords is replaced in tests.
var loadScopeWords = getWords

// solverConfig holds the defaults every request starts from. main replaces
// it with the loaded configuration.
var solverConfig = config.DefaultConfig().Solver

func getWords(ctx context.Context, scope string) ([]string, error) {
	client, err := bigquery.NewClient(ctx, "xword-x")
	if err != nil {
		return nil, fmt.Errorf("bigquery.NewClient: %w", err)
	}
	defer client.Close()

	q := client.Query("SELECT word_key FROM `xword-x.FirestoreQuery.all_words` WHERE scope = @scope AND obscure = false")
	q.Location = "US"
	q.Parameters = []bigquery.QueryParameter{{Name: "scope", Value: scope}}

	job, err := q.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.Run: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Wait: %w", err)
	}
	if err := status.Err(); err != nil {
		return nil, fmt.Errorf("status.Err: %w", err)
	}
	it, err := job.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Read: %w", err)
	}

	var words []string
	for {
		var row []bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("it.Next: %w", err)
		}

		word, ok := row[0].(string)
		if !ok {
			return nil, fmt.Errorf("row[0] is not a string: %v", row[0])
		}
		words = append(words, word)
	}
	return words, nil
}

func execute(ctx context.Context, logger *slog.Logger, cfg config.SolverConfig, req SolvePuzzleRequest) (*wordsearch.Report, error) {
	if len(req.Grid) == 0 {
		return nil, badRequest("grid must not be empty")
	}
	if len(req.Grid) > maxGridSide || len(req.Grid[0]) > maxGridSide {
		return nil, badRequest("grid must be at most %dx%d", maxGridSide, maxGridSide)
	}
	if req.MinWordLength < 0 {
		return nil, badRequest("minWordLength must not be negative")
	}

	grid, err := wordsearch.GridFromStrings(req.Grid)
	if err != nil {
		return nil, &badRequestError{err: err}
	}

	words := req.Words
	if req.WordScope != "" {
		scopeWords, err := loadScopeWords(ctx, req.WordScope)
		if err != nil {
			return nil, fmt.Errorf("getWords: %w", err)
		}
		logger.Info("Loaded scope words", "scope", req.WordScope, "count", len(scopeWords))
		words = append(words, scopeWords...)
	}

	minWordLength := cfg.MinWordLength
	if req.MinWordLength > 0 {
		minWordLength = req.MinWordLength
	}
	words = internal.BuildWordList(internal.WordListParams{
		Words:         words,
		ExcludedWords: slices.Concat(cfg.ExcludedWords, req.ExcludedWords),
		MinWordLength: &minWordLength,
	})

	solver := wordsearch.CreateSolver(grid, words, wordsearch.SolverParams{Logger: logger})
	sol, err := solver.Solve(ctx)
	if err != nil {
		return nil, err
	}

	report := sol.Report()
	return &report, nil
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Content-Type", "application/json")
}

func writeResponse(w http.ResponseWriter, logger *slog.Logger, status int, response SolvePuzzleResponse) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error("Error marshaling response", "error", err)
	}
}

func solvePuzzle(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	requestID := uuid.New().String()
	logger := slog.With("request_id", requestID)
	response := SolvePuzzleResponse{RequestID: requestID}

	var req SolvePuzzleRequest
	switch r.Method {
	case http.MethodGet:
		decoder := schema.NewDecoder()
		decoder.IgnoreUnknownKeys(true)
		if err := decoder.Decode(&req, r.URL.Query()); err != nil {
			logger.Warn("Invalid query parameters", "error", err)
			response.Error = fmt.Sprintf("Invalid query parameters: %v", err)
			writeResponse(w, logger, http.StatusBadRequest, response)
			return
		}
	case http.MethodPost:
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Error parsing JSON body", "error", err)
			response.Error = fmt.Sprintf("Invalid JSON: %v", err)
			writeResponse(w, logger, http.StatusBadRequest, response)
			return
		}
	default:
		response.Error = fmt.Sprintf("Method %s not allowed", r.Method)
		writeResponse(w, logger, http.StatusMethodNotAllowed, response)
		return
	}

	logger.Info("Solving puzzle", "rows", len(req.Grid), "words", len(req.Words), "scope", req.WordScope)

	report, err := execute(r.Context(), logger, solverConfig, req)
	if err != nil {
		response.Error = err.Error()
		status := http.StatusInternalServerError
		var bre *badRequestError
		if errors.As(err, &bre) {
			status = http.StatusBadRequest
			logger.Warn("Rejected puzzle", "error", err)
		} else {
			logger.Error("Failed to solve puzzle", "error", err)
		}
		writeResponse(w, logger, status, response)
		return
	}

	response.Success = true
	response.Report = report
	writeResponse(w, logger, http.StatusOK, response)
}

func main() {
	cfg, err := config.LoadConfig(os.Getenv("WORDSEARCH_CONFIG"))
	if err != nil {
		log.Fatalf("config.LoadConfig: %v\n", err)
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		log.Fatalf("logging.Initialize: %v\n", err)
	}
	defer logging.Shutdown()
	solverConfig = cfg.Solver

	funcframework.RegisterHTTPFunction("/solve-puzzle", solvePuzzle)

	port := "8080"
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}
	hostname := ""
	if localOnly := os.Getenv("LOCAL_ONLY"); localOnly == "true" {
		hostname = "127.0.0.1"
	}
	if err := funcframework.StartHostPort(hostname, port); err != nil {
		log.Fatalf("funcframework.StartHostPort: %v\n", err)
	}
}
