package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"crosswarped.com/wordsearch"
	"crosswarped.com/wordsearch/internal"
	"crosswarped.com/wordsearch/internal/config"
	"crosswarped.com/wordsearch/internal/logging"
)

const usage = "Use: wscli [flags] <FileName>.txt"

type options struct {
	gridFile      string
	wordsFile     string
	excludedFile  string
	out           string
	format        string
	minWordLength int
	print         bool
}

type flagValues struct {
	configFile    string
	wordsFile     string
	excludedFile  string
	minWordLength int
	out           string
	format        string
	print         bool
	timeout       time.Duration
}

func registerFlags(fs *flag.FlagSet) *flagValues {
	v := &flagValues{}
	fs.StringVar(&v.configFile, "config", "", "The YAML file to load configuration from")
	fs.StringVar(&v.wordsFile, "words", "", "The file to load target words from (default: ask on standard input)")
	fs.StringVar(&v.excludedFile, "exclude", "", "The file to load excluded words from")
	fs.IntVar(&v.minWordLength, "min_length", 0, "The minimum word length (overrides the config file)")
	fs.StringVar(&v.out, "out", "", "The file to write the solution to (default: <FileName>_solution.txt)")
	fs.StringVar(&v.format, "format", "", "The report format, text or json (overrides the config file)")
	fs.BoolVar(&v.print, "print", false, "Also print the solution to standard output")
	fs.DurationVar(&v.timeout, "timeout", 1*time.Minute, "The timeout for the solver")
	return v
}

// resolveOptions starts from cfg and applies the flags that were set on the
// command line.
func resolveOptions(cfg *config.Config, fs *flag.FlagSet, v *flagValues) (options, error) {
	opts := options{
		gridFile:      fs.Arg(0),
		wordsFile:     v.wordsFile,
		excludedFile:  v.excludedFile,
		out:           v.out,
		format:        cfg.Report.Format,
		minWordLength: cfg.Solver.MinWordLength,
		print:         v.print,
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			opts.format = v.format
		case "min_length":
			opts.minWordLength = v.minWordLength
		}
	})

	if opts.minWordLength < 1 {
		return options{}, fmt.Errorf("minimum word length must be at least 1, got %d", opts.minWordLength)
	}
	return opts, nil
}

func main() {
	flags := registerFlags(flag.CommandLine)
	flag.Parse()

	switch flag.NArg() {
	case 0:
		fmt.Println("File name was not provided.", usage)
		os.Exit(1)
	case 1:
	default:
		fmt.Println("Arguments not recognized.", usage)
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(flags.configFile)
	if err != nil {
		fmt.Println("Error loading configuration:", err)
		os.Exit(1)
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Println("Error initializing logging:", err)
		os.Exit(1)
	}
	defer logging.Shutdown()

	opts, err := resolveOptions(cfg, flag.CommandLine, flags)
	if err != nil {
		fmt.Println("Error:", err)
		logging.Shutdown()
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), flags.timeout)
	defer cancel()

	if err := run(ctx, opts, cfg.Solver.ExcludedWords, os.Stdin, os.Stdout); err != nil {
		fmt.Println("Error:", err)
		logging.Shutdown()
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, excluded []string, stdin io.Reader, stdout io.Writer) error {
	if opts.format != "text" && opts.format != "json" {
		return fmt.Errorf("unknown report format %q, use text or json", opts.format)
	}

	f, err := os.Open(opts.gridFile)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("file with name %s not found, make sure it exists and is in the directory", opts.gridFile)
	} else if err != nil {
		return fmt.Errorf("opening grid: %w", err)
	}
	grid, err := wordsearch.ParseGrid(f)
	f.Close()
	if err != nil {
		var fe *wordsearch.FormatError
		if errors.As(err, &fe) {
			return fmt.Errorf("%s: %w", opts.gridFile, err)
		}
		return fmt.Errorf("reading grid: %w", err)
	}
	slog.Debug("Grid loaded", "file", opts.gridFile, "width", grid.Width(), "height", grid.Height())

	var words []string
	if opts.wordsFile != "" {
		if words, err = internal.LoadWordsFile(ctx, opts.wordsFile); err != nil {
			return fmt.Errorf("loading words from file: %w", err)
		}
	} else {
		fmt.Fprintln(stdout, "What words must be found?")
		if words, err = internal.ReadWords(ctx, stdin); err != nil {
			return fmt.Errorf("reading words: %w", err)
		}
	}

	if opts.excludedFile != "" {
		more, err := internal.LoadWordsFile(ctx, opts.excludedFile)
		if err != nil {
			return fmt.Errorf("loading excluded words from file: %w", err)
		}
		excluded = append(excluded, more...)
	}

	minWordLength := opts.minWordLength
	words = internal.BuildWordList(internal.WordListParams{
		Words:         words,
		ExcludedWords: excluded,
		MinWordLength: &minWordLength,
	})
	slog.Debug("Target words", "count", len(words))

	solver := wordsearch.CreateSolver(grid, words, wordsearch.SolverParams{})
	sol, err := solver.Solve(ctx)
	if err != nil {
		return fmt.Errorf("solving puzzle: %w", err)
	}

	outPath := opts.out
	if outPath == "" {
		outPath = wordsearch.SolutionPath(opts.gridFile)
	}
	if err := writeReport(outPath, sol, opts.format); err != nil {
		return fmt.Errorf("could not create or write the solution file: %w", err)
	}

	if opts.print {
		if err := encodeReport(stdout, sol, opts.format); err != nil {
			return err
		}
	}

	fmt.Fprintf(stdout, "Found %d of %d words. Solution written to %s\n", len(sol.Found()), len(words), outPath)
	return nil
}

func writeReport(path string, sol *wordsearch.Solution, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encodeReport(f, sol, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func encodeReport(w io.Writer, sol *wordsearch.Solution, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(sol.Report())
	}
	_, err := sol.WriteTo(w)
	return err
}
