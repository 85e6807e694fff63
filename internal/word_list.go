package internal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/exp/mmap"
)

// NormalizeWord strips all whitespace from s and upper-cases it, so
// " c a t " and "CAT" name the same word.
func NormalizeWord(s string) string {
	return strings.ToUpper(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s))
}

// ReadWords reads one target word per line until a line that is blank once
// normalised, or EOF. An immediately blank input yields no words.
func ReadWords(ctx context.Context, r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		word := NormalizeWord(scanner.Text())
		if word == "" {
			break
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading words: %w", err)
	}
	return words, nil
}

// LoadWordsFile reads a word list file. Unlike ReadWords, blank lines and
// lines starting with '#' are skipped rather than ending the list.
func LoadWordsFile(ctx context.Context, path string) ([]string, error) {
	f, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(io.NewSectionReader(f, 0, int64(f.Len())))
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, NormalizeWord(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list %s: %w", path, err)
	}
	return words, nil
}

type WordListParams struct {
	Words         []string
	ExcludedWords []string
	MinWordLength *int
}

type params struct {
	words         []string
	excludedWords map[string]bool
	minWordLength int
}

func asParams(p WordListParams) params {
	pp := params{
		words:         p.Words,
		excludedWords: make(map[string]bool, len(p.ExcludedWords)),
	}

	if p.MinWordLength == nil {
		pp.minWordLength = 1
	} else {
		pp.minWordLength = *p.MinWordLength
	}

	for _, word := range p.ExcludedWords {
		pp.excludedWords[NormalizeWord(word)] = true
	}

	return pp
}

// BuildWordList normalises the target words, drops excluded and short words
// and removes duplicates, keeping the order words were first seen in.
func BuildWordList(p WordListParams) []string {
	params := asParams(p)

	seen := make(map[string]bool, len(params.words))
	words := make([]string, 0, len(params.words))
	for _, word := range params.words {
		word = NormalizeWord(word)
		if word == "" || seen[word] {
			continue
		}
		if len([]rune(word)) < params.minWordLength {
			continue
		}
		if params.excludedWords[word] {
			continue
		}
		seen[word] = true
		words = append(words, word)
	}
	return words
}
